package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrChangeOrderStatusCommandIsNotConstructed = errors.New(
	"ChangeOrderStatusCommand must be created via NewChangeOrderStatusCommand constructor",
)

// ChangeOrderStatusCommand represents a merchant-initiated status change.
// The note travels with the status so both land in one persisted update;
// two near-simultaneous edits of the same order cannot clobber each other.
type ChangeOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	status  order.Status
	note    string

	guard guard.ConstructorGuard
}

// NewChangeOrderStatusCommand creates a command to move an order to the
// target status with an updated note. The target must be one of the closed
// set of statuses; whether it is legal from the order's current state is the
// state machine's decision at handle time.
func NewChangeOrderStatusCommand(orderID kernel.UUID, status order.Status, note string) (ChangeOrderStatusCommand, error) {
	cmd := ChangeOrderStatusCommand{
		note:  note,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setStatus(status),
	); err != nil {
		return ChangeOrderStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to update.
func (c ChangeOrderStatusCommand) OrderID() kernel.UUID { return c.orderID }

// Status returns the target status.
func (c ChangeOrderStatusCommand) Status() order.Status { return c.status }

// Note returns the note persisted together with the status change.
func (c ChangeOrderStatusCommand) Note() string { return c.note }

func (c *ChangeOrderStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *ChangeOrderStatusCommand) setStatus(status order.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	// in_carrier is reachable only through the dispatch gate
	if status == order.InCarrier {
		return errs.NewValueIsInvalidError("status")
	}
	c.status = status
	return nil
}
