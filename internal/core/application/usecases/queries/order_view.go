package queries

import (
	"time"

	"storefront/internal/core/domain/model/kernel"
)

// OrderView is the read model of one order as the merchant dashboard shows
// it. The phone is already masked or revealed according to the store's plan
// and the order's reveal flag; the raw number never leaves the query layer
// when it should be hidden.
type OrderView struct {
	ID              kernel.UUID
	CustomerName    string
	Phone           string
	RegionCode      string
	RegionName      string
	City            string
	ProductID       kernel.UUID
	ProductName     string
	ProductImageURL string
	UnitPrice       float64
	Quantity        int
	DeliveryFee     float64
	Total           float64
	HomeDelivery    bool
	Status          string
	Note            string
	OfferName       string
	ContactRevealed bool
	CreatedAt       time.Time
}

// ProductOption is one entry of the product filter dropdown: a distinct
// product that appears somewhere in the store's orders.
type ProductOption struct {
	ID   kernel.UUID
	Name string
}

// RegionOption is one entry of the region filter dropdown.
type RegionOption struct {
	Code string
	Name string
}
