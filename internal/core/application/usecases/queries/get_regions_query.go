package queries

import (
	"errors"

	"storefront/internal/pkg/guard"
)

var ErrGetRegionsQueryIsNotConstructed = errors.New(
	"get regions query must be created via NewGetRegionsQuery")

// GetRegionsQuery lists every delivery region with its fees, for the order
// form's region selector. The list is served from the built-in geography
// table; no database access is involved.
type GetRegionsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetRegionsQuery creates a parameterless region list query.
func NewGetRegionsQuery() GetRegionsQuery {
	return GetRegionsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetRegionsQuery) Validate() error {
	return q.guard.Validate(ErrGetRegionsQueryIsNotConstructed)
}

// GetRegionsQueryResponse is one region entry with both fee amounts, so the
// order form can preview the delivery fee as the merchant toggles the mode.
type GetRegionsQueryResponse struct {
	Code       string
	Name       string
	ArabicName string
	HomeFee    float64
	PickupFee  float64
}
