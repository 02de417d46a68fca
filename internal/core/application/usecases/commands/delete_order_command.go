package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrDeleteOrderCommandIsNotConstructed = errors.New(
	"delete order command must be created via NewDeleteOrderCommand")

// DeleteOrderCommand removes an order permanently. Orders already handed
// to the carrier are locked and cannot be deleted.
type DeleteOrderCommand struct {
	guard guard.ConstructorGuard

	orderID kernel.UUID
}

func NewDeleteOrderCommand(orderID kernel.UUID) (DeleteOrderCommand, error) {
	cmd := DeleteOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	err := cmd.setOrderID(orderID)
	if err != nil {
		return DeleteOrderCommand{}, err
	}

	return cmd, nil
}

func (c DeleteOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c DeleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeleteOrderCommandIsNotConstructed)
}

func (c *DeleteOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsRequiredError("orderID")
	}

	c.orderID = orderID
	return nil
}
