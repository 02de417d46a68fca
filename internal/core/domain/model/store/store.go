// Package store provides the store aggregate: the merchant's shop, its
// subscription tier, and its optional delivery carrier binding.
package store

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

// ErrStoreIsNotConstructed is returned when a Store instance was not created
// through the NewStore or RestoreStore factory methods.
var ErrStoreIsNotConstructed = errors.New("Store must be created via NewStore constructor")

// Store represents a merchant's shop. It owns the orders created under its
// id, carries the subscription tier that drives contact masking, and holds at
// most one carrier binding.
//
// The carrier binding lifecycle is strict: BindCarrier is called only after
// the carrier's validation endpoint accepted the credentials, and
// UnbindCarrier removes the association entirely. An absent binding means no
// carrier is configured and no order of the store can be dispatched.
type Store struct {
	id      kernel.UUID
	name    string
	paid    bool
	carrier *CarrierBinding

	isConstructed bool
}

// NewStore creates a new Store without a carrier binding.
func NewStore(id kernel.UUID, name string, paid bool) (*Store, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("store name")
	}

	return &Store{
		id:            id,
		name:          name,
		paid:          paid,
		isConstructed: true,
	}, nil
}

// RestoreStore rehydrates a Store from persistence, including its carrier
// binding when one was persisted.
func RestoreStore(id kernel.UUID, name string, paid bool, carrier *CarrierBinding) (*Store, error) {
	s, err := NewStore(id, name, paid)
	if err != nil {
		return nil, err
	}

	if carrier != nil {
		if err = carrier.Validate(); err != nil {
			return nil, err
		}
		binding := *carrier
		s.carrier = &binding
	}

	return s, nil
}

// Validate ensures the Store instance was properly constructed.
func (s *Store) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrStoreIsNotConstructed
	}
	return nil
}

// ID returns the store's unique identifier.
func (s *Store) ID() kernel.UUID {
	return s.id
}

// Name returns the store's display name.
func (s *Store) Name() string {
	return s.name
}

// IsPaid reports whether the store is on the paid subscription tier.
// The flag reflects the current subscription state; contact masking reads it
// at render time and never caches the decision.
func (s *Store) IsPaid() bool {
	return s.paid
}

// Carrier returns the store's carrier binding, or nil when no carrier is
// configured. The returned value is a copy.
func (s *Store) Carrier() *CarrierBinding {
	if s.carrier == nil {
		return nil
	}
	binding := *s.carrier
	return &binding
}

// HasCarrier reports whether the store has a carrier binding with a
// non-empty carrier name, the precondition for offering dispatch at all.
func (s *Store) HasCarrier() bool {
	return s.carrier != nil && s.carrier.Name() != ""
}

// BindCarrier associates the store with a delivery carrier. The caller must
// have validated the credentials against the carrier's endpoint first;
// binding unvalidated credentials would let dispatch fail far from its cause.
// Rebinding replaces any previous carrier.
func (s *Store) BindCarrier(binding CarrierBinding) error {
	if err := binding.Validate(); err != nil {
		return err
	}

	s.carrier = &binding
	return nil
}

// UnbindCarrier removes the store's carrier association. Orders already
// handed to the carrier keep their in_carrier status.
func (s *Store) UnbindCarrier() {
	s.carrier = nil
}
