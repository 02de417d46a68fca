package queries

import (
	"context"

	"storefront/internal/core/domain/model/geo"
)

// GetCitiesForRegionQueryHandler serves a region's city list from the
// geography table. Unknown regions yield an ObjectNotFoundError rather
// than an empty list, so a stale region code on the client is visible.
type GetCitiesForRegionQueryHandler struct{}

// NewGetCitiesForRegionQueryHandler creates a handler for city list queries.
func NewGetCitiesForRegionQueryHandler() GetCitiesForRegionQueryHandler {
	return GetCitiesForRegionQueryHandler{}
}

// Handle returns the region's cities in table order.
func (h GetCitiesForRegionQueryHandler) Handle(
	_ context.Context,
	query GetCitiesForRegionQuery,
) ([]string, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return geo.CitiesForRegion(query.RegionCode())
}
