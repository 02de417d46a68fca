// Package ports defines repository and collaborator interfaces for the order
// lifecycle core. These interfaces establish contracts between the domain
// layer and infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
//
// Update always takes the full aggregate, never a partial patch: a status
// change and a note edit issued close together arrive as one merged order
// object, so two near-simultaneous edits cannot clobber each other's
// unrelated fields.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists the full state of an existing order aggregate.
	Update(ctx context.Context, aggregate *order.Order) error

	// UpdateFromReady persists the full state of an order whose stored row is
	// still in ready status, as a single conditional write. It is the
	// carrier-dispatch write path: when the stored status is no longer ready
	// (for example a second merchant session dispatched first), it fails with
	// a StateIsLockedError and writes nothing.
	UpdateFromReady(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns an ObjectNotFoundError for unknown ids.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllByStore retrieves all orders of a store, newest first.
	GetAllByStore(ctx context.Context, storeID kernel.UUID) ([]*order.Order, error)

	// Delete removes an order permanently. This backs the explicit merchant
	// delete action only; no other code path hard-deletes orders.
	Delete(ctx context.Context, id kernel.UUID) error
}
