package commands

import (
	"context"

	"storefront/internal/core/domain/model/store"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"
)

// BindCarrierCommandHandler runs the two-phase carrier handshake: first
// the credentials are validated against the carrier's test endpoint,
// only a positive answer is followed by persisting the binding. A
// transport failure aborts the command without touching the store, so
// the merchant can retry once the carrier is reachable again.
type BindCarrierCommandHandler struct {
	uowFactory       StoreUoWFactory
	carrierValidator ports.CarrierValidator
}

func NewBindCarrierCommandHandler(
	uowFactory StoreUoWFactory, carrierValidator ports.CarrierValidator) BindCarrierCommandHandler {
	return BindCarrierCommandHandler{
		uowFactory:       uowFactory,
		carrierValidator: carrierValidator,
	}
}

func (h BindCarrierCommandHandler) Handle(ctx context.Context, cmd BindCarrierCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	valid, err := h.carrierValidator.ValidateCredentials(ctx, cmd.CarrierName(), cmd.Key(), cmd.Token())
	if err != nil {
		return err
	}
	if !valid {
		return errs.NewCredentialsAreInvalidError(cmd.CarrierName())
	}

	binding, err := store.NewCarrierBinding(cmd.CarrierName(), cmd.Key(), cmd.Token(), cmd.LogoURL())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	storeRepo := uow.StoreRepository()
	aggregate, err := storeRepo.Get(ctx, cmd.StoreID())
	if err != nil {
		return err
	}

	if err = aggregate.BindCarrier(binding); err != nil {
		return err
	}

	if err = storeRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
