package queries

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrOrderFilterSetIsNotConstructed = errors.New(
	"order filter set must be created via NewOrderFilterSet")

// SortKey selects the ordering applied to a filtered order list.
type SortKey int

const (
	SortNewest SortKey = iota
	SortOldest
	SortPriceHigh
	SortPriceLow
)

// SortKeyFromString maps a wire value to a SortKey. The empty string means
// the default newest-first ordering.
func SortKeyFromString(s string) (SortKey, error) {
	switch s {
	case "", "newest":
		return SortNewest, nil
	case "oldest":
		return SortOldest, nil
	case "price_high":
		return SortPriceHigh, nil
	case "price_low":
		return SortPriceLow, nil
	default:
		return SortNewest, errs.NewValueIsInvalidError("sort")
	}
}

// OrderFilterSet is an immutable set of conjunctive filters over a store's
// order list. An empty set matches every order. The With... methods return a
// modified copy, so a shared base set is safe to derive from.
type OrderFilterSet struct {
	guard guard.ConstructorGuard

	status    order.Status
	hasStatus bool

	regionCode string

	homeDelivery bool
	hasMode      bool

	productID    kernel.UUID
	hasProductID bool

	customer string

	sort SortKey
}

// NewOrderFilterSet creates an empty filter set with the given sort order.
func NewOrderFilterSet(sort SortKey) OrderFilterSet {
	return OrderFilterSet{
		guard: guard.NewConstructorGuard(),
		sort:  sort,
	}
}

// Validate ensures the filter set was created through the constructor.
func (f OrderFilterSet) Validate() error {
	return f.guard.Validate(ErrOrderFilterSetIsNotConstructed)
}

// WithStatus narrows the set to orders in exactly the given status.
func (f OrderFilterSet) WithStatus(status order.Status) OrderFilterSet {
	f.status = status
	f.hasStatus = true
	return f
}

// WithRegion narrows the set to orders delivered to the given region.
func (f OrderFilterSet) WithRegion(regionCode string) OrderFilterSet {
	f.regionCode = regionCode
	return f
}

// WithDeliveryMode narrows the set to home deliveries or desk pickups.
func (f OrderFilterSet) WithDeliveryMode(homeDelivery bool) OrderFilterSet {
	f.homeDelivery = homeDelivery
	f.hasMode = true
	return f
}

// WithProduct narrows the set to orders of one product.
func (f OrderFilterSet) WithProduct(productID kernel.UUID) OrderFilterSet {
	f.productID = productID
	f.hasProductID = true
	return f
}

// WithCustomer narrows the set to orders whose customer name contains the
// given text, matched case-insensitively.
func (f OrderFilterSet) WithCustomer(customer string) OrderFilterSet {
	f.customer = customer
	return f
}

// Sort returns the requested ordering.
func (f OrderFilterSet) Sort() SortKey {
	return f.sort
}
