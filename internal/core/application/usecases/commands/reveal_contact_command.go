package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrRevealContactCommandIsNotConstructed = errors.New(
	"reveal contact command must be created via NewRevealContactCommand")

// RevealContactCommand marks a single order's phone number as revealed.
// The flag is one-way, a revealed contact cannot be hidden again.
type RevealContactCommand struct {
	guard guard.ConstructorGuard

	orderID kernel.UUID
}

func NewRevealContactCommand(orderID kernel.UUID) (RevealContactCommand, error) {
	cmd := RevealContactCommand{
		guard: guard.NewConstructorGuard(),
	}

	err := cmd.setOrderID(orderID)
	if err != nil {
		return RevealContactCommand{}, err
	}

	return cmd, nil
}

func (c RevealContactCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c RevealContactCommand) Validate() error {
	return c.guard.Validate(ErrRevealContactCommandIsNotConstructed)
}

func (c *RevealContactCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsRequiredError("orderID")
	}

	c.orderID = orderID
	return nil
}
