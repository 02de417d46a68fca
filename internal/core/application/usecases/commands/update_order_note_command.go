package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrUpdateOrderNoteCommandIsNotConstructed = errors.New(
	"update order note command must be created via NewUpdateOrderNoteCommand")

// UpdateOrderNoteCommand replaces the free-form note of an order. Notes
// stay editable even after the order was handed to the carrier.
type UpdateOrderNoteCommand struct {
	guard guard.ConstructorGuard

	orderID kernel.UUID
	note    string
}

func NewUpdateOrderNoteCommand(orderID kernel.UUID, note string) (UpdateOrderNoteCommand, error) {
	cmd := UpdateOrderNoteCommand{
		guard: guard.NewConstructorGuard(),
		note:  note,
	}

	err := cmd.setOrderID(orderID)
	if err != nil {
		return UpdateOrderNoteCommand{}, err
	}

	return cmd, nil
}

func (c UpdateOrderNoteCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c UpdateOrderNoteCommand) Note() string {
	return c.note
}

func (c UpdateOrderNoteCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderNoteCommandIsNotConstructed)
}

func (c *UpdateOrderNoteCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsRequiredError("orderID")
	}

	c.orderID = orderID
	return nil
}
