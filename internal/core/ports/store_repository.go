package ports

import (
	"context"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/store"
)

// StoreRepository defines the persistence contract for store aggregates,
// including the embedded carrier binding.
type StoreRepository interface {
	// Add persists a new store aggregate to storage.
	Add(ctx context.Context, aggregate *store.Store) error

	// Update persists changes to an existing store aggregate. Binding or
	// unbinding a carrier goes through this method: the binding is embedded
	// in the store record.
	Update(ctx context.Context, aggregate *store.Store) error

	// Get retrieves a store aggregate by its unique identifier.
	// Returns an ObjectNotFoundError for unknown ids.
	Get(ctx context.Context, id kernel.UUID) (*store.Store, error)
}
