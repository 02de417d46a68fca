package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrBindCarrierCommandIsNotConstructed = errors.New(
	"bind carrier command must be created via NewBindCarrierCommand")

// BindCarrierCommand attaches a carrier account to a store. The
// credentials are checked against the carrier before anything is saved,
// so a store never ends up with a binding that was rejected upstream.
type BindCarrierCommand struct {
	guard guard.ConstructorGuard

	storeID     kernel.UUID
	carrierName string
	key         string
	token       string
	logoURL     string
}

func NewBindCarrierCommand(
	storeID kernel.UUID, carrierName, key, token, logoURL string) (BindCarrierCommand, error) {
	cmd := BindCarrierCommand{
		guard:   guard.NewConstructorGuard(),
		logoURL: logoURL,
	}

	err := errors.Join(
		cmd.setStoreID(storeID),
		cmd.setCarrierName(carrierName),
		cmd.setCredentials(key, token),
	)
	if err != nil {
		return BindCarrierCommand{}, err
	}

	return cmd, nil
}

func (c BindCarrierCommand) StoreID() kernel.UUID {
	return c.storeID
}

func (c BindCarrierCommand) CarrierName() string {
	return c.carrierName
}

func (c BindCarrierCommand) Key() string {
	return c.key
}

func (c BindCarrierCommand) Token() string {
	return c.token
}

func (c BindCarrierCommand) LogoURL() string {
	return c.logoURL
}

func (c BindCarrierCommand) Validate() error {
	return c.guard.Validate(ErrBindCarrierCommandIsNotConstructed)
}

func (c *BindCarrierCommand) setStoreID(storeID kernel.UUID) error {
	if err := storeID.Validate(); err != nil {
		return errs.NewValueIsRequiredError("storeID")
	}

	c.storeID = storeID
	return nil
}

func (c *BindCarrierCommand) setCarrierName(carrierName string) error {
	if carrierName == "" {
		return errs.NewValueIsRequiredError("carrierName")
	}

	c.carrierName = carrierName
	return nil
}

func (c *BindCarrierCommand) setCredentials(key, token string) error {
	if key == "" {
		return errs.NewValueIsRequiredError("key")
	}
	if token == "" {
		return errs.NewValueIsRequiredError("token")
	}

	c.key = key
	c.token = token
	return nil
}
