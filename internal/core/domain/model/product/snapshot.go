// Package product defines the product snapshot embedded in orders.
package product

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

// ErrSnapshotIsNotConstructed is returned when a Snapshot was not created via
// NewSnapshot.
var ErrSnapshotIsNotConstructed = errors.New("Snapshot must be created via NewSnapshot constructor")

// Snapshot is a denormalized copy of a product's attributes taken at order
// creation time. It is deliberately not a live reference: edits to the
// product catalog after the order is placed must not retroactively alter
// historical orders, so a snapshot is copied once and never resynced.
type Snapshot struct {
	productID kernel.UUID
	name      string
	unitPrice float64
	imageURL  string

	isConstructed bool
}

// NewSnapshot copies a product's attributes into a Snapshot.
// The product ID and name are required; the unit price must be non-negative.
// The image URL is an opaque reference to the external image host and may be
// empty.
func NewSnapshot(productID kernel.UUID, name string, unitPrice float64, imageURL string) (Snapshot, error) {
	if err := productID.Validate(); err != nil {
		return Snapshot{}, err
	}
	if name == "" {
		return Snapshot{}, errs.NewValueIsRequiredError("product name")
	}
	if unitPrice < 0 {
		return Snapshot{}, errs.NewValueIsInvalidError("product unit price")
	}

	return Snapshot{
		productID:     productID,
		name:          name,
		unitPrice:     unitPrice,
		imageURL:      imageURL,
		isConstructed: true,
	}, nil
}

// Validate ensures the snapshot was created via NewSnapshot.
func (s Snapshot) Validate() error {
	if !s.isConstructed {
		return ErrSnapshotIsNotConstructed
	}
	return nil
}

// ProductID returns the identifier of the product the snapshot was taken from.
func (s Snapshot) ProductID() kernel.UUID {
	return s.productID
}

// Name returns the product name as it was at order time.
func (s Snapshot) Name() string {
	return s.name
}

// UnitPrice returns the product unit price as it was at order time.
func (s Snapshot) UnitPrice() float64 {
	return s.unitPrice
}

// ImageURL returns the product image reference as it was at order time.
func (s Snapshot) ImageURL() string {
	return s.imageURL
}

// IsEqual compares two snapshots by their source product identifier.
func (s Snapshot) IsEqual(other Snapshot) bool {
	return s.productID.IsEqual(other.productID)
}
