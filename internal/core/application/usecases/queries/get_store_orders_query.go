package queries

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrGetStoreOrdersQueryIsNotConstructed = errors.New(
	"get store orders query must be created via NewGetStoreOrdersQuery")

// GetStoreOrdersQuery retrieves the order list of one store, with the
// merchant's filters and sort applied, plus the dropdown collections the
// dashboard needs to build its filter controls.
type GetStoreOrdersQuery struct {
	guard guard.ConstructorGuard

	storeID kernel.UUID
	filters OrderFilterSet
}

// NewGetStoreOrdersQuery creates a query for a store's order list.
func NewGetStoreOrdersQuery(storeID kernel.UUID, filters OrderFilterSet) (GetStoreOrdersQuery, error) {
	if err := storeID.Validate(); err != nil {
		return GetStoreOrdersQuery{}, errs.NewValueIsRequiredError("storeID")
	}
	if err := filters.Validate(); err != nil {
		return GetStoreOrdersQuery{}, err
	}

	return GetStoreOrdersQuery{
		guard:   guard.NewConstructorGuard(),
		storeID: storeID,
		filters: filters,
	}, nil
}

// StoreID returns the store whose orders are requested.
func (q GetStoreOrdersQuery) StoreID() kernel.UUID {
	return q.storeID
}

// Filters returns the filter set to apply.
func (q GetStoreOrdersQuery) Filters() OrderFilterSet {
	return q.filters
}

// Validate ensures the query was created through the constructor.
func (q GetStoreOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetStoreOrdersQueryIsNotConstructed)
}

// GetStoreOrdersQueryResponse carries the filtered order list together with
// the dropdown collections. The dropdowns are always built from the store's
// full order set, never from the filtered one, so applying a filter does not
// shrink the remaining filter choices.
type GetStoreOrdersQueryResponse struct {
	Orders   []OrderView
	Products []ProductOption
	Regions  []RegionOption
}
