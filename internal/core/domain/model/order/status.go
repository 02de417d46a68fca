package order

import (
	"fmt"

	"storefront/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine in which the merchant may move an order
// between any two states except in_carrier, which is entered only through
// the carrier dispatch gate and locks the order once reached.
//
// State transitions:
//
//	pending ──┬──> any merchant-set status <──┐
//	          │       (free movement)         │
//	          └───────────────────────────────┘
//	               ready ──(dispatch gate)──> in_carrier (locked)
//
// There are no timeout-based transitions; every change is merchant-initiated.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of every newly created order.
	Pending

	// ConnectionFailed1 through ConnectionFailed3 record successive failed
	// attempts to reach the customer by phone.
	ConnectionFailed1
	ConnectionFailed2
	ConnectionFailed3

	// Confirmed indicates the customer confirmed the order.
	Confirmed

	// Ready indicates the order is packed and ready for carrier handoff.
	// Only ready orders are eligible for dispatch.
	Ready

	// Postponed indicates the customer asked to deliver later.
	Postponed

	// Cancelled indicates the customer or merchant cancelled the order.
	Cancelled

	// Failed indicates the delivery attempt failed.
	Failed

	// InCarrier indicates the order was handed to the delivery carrier.
	// This is the terminal state: it is reachable only through the dispatch
	// gate and blocks all further status changes.
	InCarrier
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:           "unknown",
		Pending:           "pending",
		ConnectionFailed1: "connection_failed_1",
		ConnectionFailed2: "connection_failed_2",
		ConnectionFailed3: "connection_failed_3",
		Confirmed:         "confirmed",
		Ready:             "ready",
		Postponed:         "postponed",
		Cancelled:         "cancelled",
		Failed:            "failed",
		InCarrier:         "in_carrier",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:           "pending",
		ConnectionFailed1: "connection_failed_1",
		ConnectionFailed2: "connection_failed_2",
		ConnectionFailed3: "connection_failed_3",
		Confirmed:         "confirmed",
		Ready:             "ready",
		Postponed:         "postponed",
		Cancelled:         "cancelled",
		Failed:            "failed",
		InCarrier:         "in_carrier",
	}
}

// StatusFromString parses a persisted or wire status value.
// Returns an error for unrecognized values; the set of legal values is
// closed, so anything else indicates corrupted data or an illegal request.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// MerchantStatuses returns the statuses a merchant may set directly,
// in workflow order. InCarrier is excluded: it is reachable only through
// the dispatch gate.
func MerchantStatuses() []Status {
	return []Status{
		Pending,
		ConnectionFailed1,
		ConnectionFailed2,
		ConnectionFailed3,
		Confirmed,
		Ready,
		Postponed,
		Cancelled,
		Failed,
	}
}

// Validate checks if the Status value is one of the closed set of legal
// statuses. Unknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire representation of the status ("pending",
// "in_carrier", ...). It implements fmt.Stringer and is safe to call on any
// Status value, including invalid ones, for which it returns "unknown".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsLocked reports whether the status blocks further status changes.
// Only InCarrier is locked.
func (s Status) IsLocked() bool {
	return s == InCarrier
}

// ChangeTo transitions to the target status via explicit merchant action.
//
// Valid transitions:
//   - any unlocked status -> any merchant-settable status
//
// Invalid transitions:
//   - InCarrier -> anything (StateIsLockedError: the order left the store)
//   - anything -> InCarrier (only the dispatch gate may set it)
//   - to or from Unknown or any out-of-range value
//
// Returns the new status, or (Unknown, error) if the transition is not
// allowed. The caller's status is left untouched on failure.
func (s Status) ChangeTo(target Status) (Status, error) {
	if s.IsLocked() {
		return Unknown, errs.NewStateIsLockedError("order status", s.String())
	}
	if err := s.Validate(); err != nil {
		return Unknown, err
	}
	if target == InCarrier {
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is reachable only through carrier dispatch", target.String()),
		)
	}
	if err := target.Validate(); err != nil {
		return Unknown, err
	}

	return target, nil
}

// EnterCarrier transitions the status to InCarrier.
//
// Valid transitions:
//   - Ready -> InCarrier (carrier handoff)
//
// Invalid transitions:
//   - InCarrier -> InCarrier (StateIsLockedError: already dispatched)
//   - anything else -> InCarrier (order is not ready for handoff)
//
// This method is used by the carrier dispatch gate only; merchant status
// changes go through ChangeTo.
func (s Status) EnterCarrier() (Status, error) {
	if s.IsLocked() {
		return Unknown, errs.NewStateIsLockedError("order status", s.String())
	}
	if s != Ready {
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to hand to a carrier", s.String()),
		)
	}

	return InCarrier, nil
}
