package commands

import (
	"context"

	"storefront/internal/core/domain/services"
	"storefront/internal/pkg/errs"
)

// DispatchOrderCommandHandler moves a ready order into the carrier's
// hands. Eligibility is decided by the dispatch service, and the write
// is conditional on the stored status still being ready, so two
// concurrent dispatches of the same order cannot both succeed.
type DispatchOrderCommandHandler struct {
	uowFactory UoWFactory
	dispatcher services.CarrierDispatcher
}

func NewDispatchOrderCommandHandler(
	uowFactory UoWFactory, dispatcher services.CarrierDispatcher) DispatchOrderCommandHandler {
	return DispatchOrderCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
	}
}

func (h DispatchOrderCommandHandler) Handle(ctx context.Context, cmd DispatchOrderCommand) error {
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

	orderRepo := uow.OrderRepository()
	orderAggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if !orderAggregate.StoreID().IsEqual(cmd.StoreID()) {
		return errs.NewObjectNotFoundError("orderID", cmd.OrderID())
	}

	storeAggregate, err := uow.StoreRepository().Get(ctx, cmd.StoreID())
	if err != nil {
		return err
	}

	if err = h.dispatcher.Dispatch(orderAggregate, storeAggregate); err != nil {
		return err
	}

	if err = orderRepo.UpdateFromReady(ctx, orderAggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
