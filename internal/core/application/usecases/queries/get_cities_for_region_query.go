package queries

import (
	"errors"

	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrGetCitiesForRegionQueryIsNotConstructed = errors.New(
	"get cities for region query must be created via NewGetCitiesForRegionQuery")

// GetCitiesForRegionQuery lists the cities of one region for the order
// form's dependent city selector.
type GetCitiesForRegionQuery struct {
	guard guard.ConstructorGuard

	regionCode string
}

// NewGetCitiesForRegionQuery creates a city list query for a region.
func NewGetCitiesForRegionQuery(regionCode string) (GetCitiesForRegionQuery, error) {
	if regionCode == "" {
		return GetCitiesForRegionQuery{}, errs.NewValueIsRequiredError("regionCode")
	}

	return GetCitiesForRegionQuery{
		guard:      guard.NewConstructorGuard(),
		regionCode: regionCode,
	}, nil
}

// RegionCode returns the region whose cities are requested.
func (q GetCitiesForRegionQuery) RegionCode() string {
	return q.regionCode
}

// Validate ensures the query was created through the constructor.
func (q GetCitiesForRegionQuery) Validate() error {
	return q.guard.Validate(ErrGetCitiesForRegionQueryIsNotConstructed)
}
