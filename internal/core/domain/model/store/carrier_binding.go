package store

import (
	"errors"

	"storefront/internal/pkg/errs"
)

// ErrCarrierBindingIsNotConstructed is returned when a CarrierBinding was not
// created via NewCarrierBinding.
var ErrCarrierBindingIsNotConstructed = errors.New("CarrierBinding must be created via NewCarrierBinding constructor")

// CarrierBinding is the association between a store and its delivery carrier:
// the carrier's name and the API credentials the carrier issued to the
// merchant. A store has at most one binding, and a binding is persisted only
// after the carrier's validation endpoint accepted the credentials.
type CarrierBinding struct {
	name    string
	key     string
	token   string
	logoURL string

	isConstructed bool
}

// NewCarrierBinding creates a CarrierBinding. The carrier name and both
// credential parts are required; the logo reference is an opaque URL and may
// be empty.
func NewCarrierBinding(name, key, token, logoURL string) (CarrierBinding, error) {
	if name == "" {
		return CarrierBinding{}, errs.NewValueIsRequiredError("carrier name")
	}
	if key == "" {
		return CarrierBinding{}, errs.NewValueIsRequiredError("carrier API key")
	}
	if token == "" {
		return CarrierBinding{}, errs.NewValueIsRequiredError("carrier API token")
	}

	return CarrierBinding{
		name:          name,
		key:           key,
		token:         token,
		logoURL:       logoURL,
		isConstructed: true,
	}, nil
}

// Validate ensures the binding was created via NewCarrierBinding.
func (b CarrierBinding) Validate() error {
	if !b.isConstructed {
		return ErrCarrierBindingIsNotConstructed
	}
	return nil
}

// Name returns the carrier's display name.
func (b CarrierBinding) Name() string {
	return b.name
}

// Key returns the carrier API key.
func (b CarrierBinding) Key() string {
	return b.key
}

// Token returns the carrier API token.
func (b CarrierBinding) Token() string {
	return b.token
}

// LogoURL returns the optional carrier logo reference.
func (b CarrierBinding) LogoURL() string {
	return b.logoURL
}
