package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrUnbindCarrierCommandIsNotConstructed = errors.New(
	"unbind carrier command must be created via NewUnbindCarrierCommand")

// UnbindCarrierCommand detaches the carrier account from a store. Orders
// already handed to the carrier are unaffected.
type UnbindCarrierCommand struct {
	guard guard.ConstructorGuard

	storeID kernel.UUID
}

func NewUnbindCarrierCommand(storeID kernel.UUID) (UnbindCarrierCommand, error) {
	cmd := UnbindCarrierCommand{
		guard: guard.NewConstructorGuard(),
	}

	err := cmd.setStoreID(storeID)
	if err != nil {
		return UnbindCarrierCommand{}, err
	}

	return cmd, nil
}

func (c UnbindCarrierCommand) StoreID() kernel.UUID {
	return c.storeID
}

func (c UnbindCarrierCommand) Validate() error {
	return c.guard.Validate(ErrUnbindCarrierCommandIsNotConstructed)
}

func (c *UnbindCarrierCommand) setStoreID(storeID kernel.UUID) error {
	if err := storeID.Validate(); err != nil {
		return errs.NewValueIsRequiredError("storeID")
	}

	c.storeID = storeID
	return nil
}
