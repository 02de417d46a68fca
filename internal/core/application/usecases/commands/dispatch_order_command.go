package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrDispatchOrderCommandIsNotConstructed = errors.New(
	"dispatch order command must be created via NewDispatchOrderCommand")

// DispatchOrderCommand hands a ready order over to the store's carrier.
type DispatchOrderCommand struct {
	guard guard.ConstructorGuard

	orderID kernel.UUID
	storeID kernel.UUID
}

func NewDispatchOrderCommand(orderID, storeID kernel.UUID) (DispatchOrderCommand, error) {
	cmd := DispatchOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setStoreID(storeID),
	)
	if err != nil {
		return DispatchOrderCommand{}, err
	}

	return cmd, nil
}

func (c DispatchOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c DispatchOrderCommand) StoreID() kernel.UUID {
	return c.storeID
}

func (c DispatchOrderCommand) Validate() error {
	return c.guard.Validate(ErrDispatchOrderCommandIsNotConstructed)
}

func (c *DispatchOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsRequiredError("orderID")
	}

	c.orderID = orderID
	return nil
}

func (c *DispatchOrderCommand) setStoreID(storeID kernel.UUID) error {
	if err := storeID.Validate(); err != nil {
		return errs.NewValueIsRequiredError("storeID")
	}

	c.storeID = storeID
	return nil
}
