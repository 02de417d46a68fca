package commands

import "context"

type UnbindCarrierCommandHandler struct {
	uowFactory StoreUoWFactory
}

func NewUnbindCarrierCommandHandler(uowFactory StoreUoWFactory) UnbindCarrierCommandHandler {
	return UnbindCarrierCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h UnbindCarrierCommandHandler) Handle(ctx context.Context, cmd UnbindCarrierCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
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

	aggregate.UnbindCarrier()

	if err = storeRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
