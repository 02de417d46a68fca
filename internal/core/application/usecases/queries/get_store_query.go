package queries

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrGetStoreQueryIsNotConstructed = errors.New(
	"get store query must be created via NewGetStoreQuery")

// GetStoreQuery retrieves one store's profile, including the carrier binding
// if one is attached. Credentials are never part of the response.
type GetStoreQuery struct {
	guard guard.ConstructorGuard

	storeID kernel.UUID
}

// NewGetStoreQuery creates a query for a store profile.
func NewGetStoreQuery(storeID kernel.UUID) (GetStoreQuery, error) {
	if err := storeID.Validate(); err != nil {
		return GetStoreQuery{}, errs.NewValueIsRequiredError("storeID")
	}

	return GetStoreQuery{
		guard:   guard.NewConstructorGuard(),
		storeID: storeID,
	}, nil
}

// StoreID returns the requested store's identifier.
func (q GetStoreQuery) StoreID() kernel.UUID {
	return q.storeID
}

// Validate ensures the query was created through the constructor.
func (q GetStoreQuery) Validate() error {
	return q.guard.Validate(ErrGetStoreQueryIsNotConstructed)
}

// CarrierView describes the carrier bound to a store. The key and token stay
// server-side.
type CarrierView struct {
	Name    string
	LogoURL string
}

// GetStoreQueryResponse is the store profile read model.
type GetStoreQueryResponse struct {
	ID      kernel.UUID
	Name    string
	Paid    bool
	Carrier *CarrierView
}
