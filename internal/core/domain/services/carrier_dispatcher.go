package services

import (
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/store"
	"storefront/internal/pkg/errs"
)

// CarrierDispatcher is the domain service guarding the handoff of orders to
// the store's delivery carrier.
//
// Business rules:
//   - The store must have a carrier binding with a non-empty carrier name
//   - The order must be exactly in ready status
//   - An order already in the carrier cannot be dispatched again
//
// Callers use CanDispatch to decide whether to offer the dispatch action at
// all: an order that fails eligibility must not present the action, since
// offering and then rejecting invites retry loops. Dispatch re-evaluates the
// same conditions immediately before the transition, so a stale UI cannot
// push an ineligible order through.
//
// Dispatching itself makes no external call. Credential validation happened
// once when the carrier was bound; label and tracking generation belong to
// the carrier's own system.
//
// Example usage:
//
//	dispatcher := services.NewCarrierDispatcher()
//	if err := dispatcher.Dispatch(order, store); err != nil {
//	    // order was not eligible, status unchanged
//	    return err
//	}
//	// order is now in_carrier and locked
type CarrierDispatcher struct{}

// NewCarrierDispatcher creates a new CarrierDispatcher instance.
func NewCarrierDispatcher() CarrierDispatcher {
	return CarrierDispatcher{}
}

// CanDispatch reports whether the order is eligible for carrier handoff.
// Returns nil when eligible, a StateIsLockedError when the order is already
// in the carrier, and a descriptive error for the other failed conditions.
func (d CarrierDispatcher) CanDispatch(o *order.Order, s *store.Store) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := s.Validate(); err != nil {
		return err
	}

	if o.Status().IsLocked() {
		return errs.NewStateIsLockedError("order", o.Status().String())
	}
	if !s.HasCarrier() {
		return errs.NewValueIsRequiredError("carrier binding")
	}
	if o.Status() != order.Ready {
		return errs.NewValueIsInvalidError("order status must be ready to dispatch")
	}

	return nil
}

// Dispatch hands the order to the carrier: it re-checks eligibility and
// transitions the order to in_carrier. On failure the order is left exactly
// as it was.
func (d CarrierDispatcher) Dispatch(o *order.Order, s *store.Store) error {
	if err := d.CanDispatch(o, s); err != nil {
		return err
	}

	return o.EnterCarrier()
}
