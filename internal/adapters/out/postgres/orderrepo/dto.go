// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, converting between domain entities and database rows.
package orderrepo

import (
	"time"

	"storefront/internal/core/domain/model/geo"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/product"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The status is stored as its string wire value so that the dispatch write
// path can express its precondition as a plain WHERE clause, and so the rows
// stay readable in ad-hoc SQL.
//
// The region's fee amounts are denormalized onto the row: they were copied
// from the geography table when the order was created, and later fee-table
// edits must not change this order.
type OrderDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	StoreID         uuid.UUID `gorm:"type:uuid;index"`
	CustomerName    string
	Phone           string
	RegionCode      string
	City            string
	ProductID       uuid.UUID `gorm:"type:uuid"`
	ProductName     string
	ProductPrice    float64
	ProductImageURL string
	UnitPrice       float64
	Quantity        int
	HomeFee         float64
	PickupFee       float64
	HomeDelivery    bool
	Status          string `gorm:"index"`
	Note            string
	OfferName       string
	RevealContact   bool
	CreatedAt       time.Time
}

// TableName overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	snapshot := aggregate.Product()

	return OrderDTO{
		ID:              aggregate.ID().Bytes(),
		StoreID:         aggregate.StoreID().Bytes(),
		CustomerName:    aggregate.CustomerName(),
		Phone:           aggregate.Phone(),
		RegionCode:      aggregate.RegionCode(),
		City:            aggregate.City(),
		ProductID:       snapshot.ProductID().Bytes(),
		ProductName:     snapshot.Name(),
		ProductPrice:    snapshot.UnitPrice(),
		ProductImageURL: snapshot.ImageURL(),
		UnitPrice:       aggregate.UnitPrice(),
		Quantity:        aggregate.Quantity(),
		HomeFee:         aggregate.Fees().HomeFee(),
		PickupFee:       aggregate.Fees().PickupFee(),
		HomeDelivery:    aggregate.IsHomeDelivery(),
		Status:          aggregate.Status().String(),
		Note:            aggregate.Note(),
		OfferName:       aggregate.OfferName(),
		RevealContact:   aggregate.IsContactRevealed(),
		CreatedAt:       aggregate.CreatedAt(),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	storeID, err := kernel.UUIDFromBytes(dto.StoreID[:])
	if err != nil {
		return nil, err
	}
	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}

	snapshot, err := product.NewSnapshot(productID, dto.ProductName, dto.ProductPrice, dto.ProductImageURL)
	if err != nil {
		return nil, err
	}

	fees, err := geo.NewRegionFees(dto.HomeFee, dto.PickupFee)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		storeID,
		dto.CustomerName,
		dto.Phone,
		dto.RegionCode,
		dto.City,
		snapshot,
		dto.UnitPrice,
		dto.Quantity,
		fees,
		dto.HomeDelivery,
		status,
		dto.Note,
		dto.OfferName,
		dto.RevealContact,
		dto.CreatedAt,
	)
}
