package commands

import (
	"context"

	"storefront/internal/core/domain/model/geo"
	"storefront/internal/core/domain/model/product"
	"storefront/internal/pkg/errs"
)

// EditOrderCommandHandler applies a full order edit in one transaction.
// Region changes re-fetch the region's fees from the geography table and
// reset the city; every touched pricing operand flows into a recomputed
// total. The whole merged aggregate is written back in one update.
type EditOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewEditOrderCommandHandler creates a handler for full order edits.
func NewEditOrderCommandHandler(uowFactory OrderUoWFactory) EditOrderCommandHandler {
	return EditOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the edit. An unknown region aborts the edit with a
// not-found error; a city outside the region is rejected; a locked
// (in_carrier) order rejects the whole edit and is left as it was.
func (h EditOrderCommandHandler) Handle(ctx context.Context, cmd EditOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if cmd.City() != "" && !geo.CityBelongsToRegion(cmd.RegionCode(), cmd.City()) {
		return errs.NewValueIsInvalidError("city does not belong to the selected region")
	}

	snapshot, err := product.NewSnapshot(cmd.ProductID(), cmd.ProductName(), cmd.ProductPrice(), cmd.ProductImageURL())
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

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.ChangeCustomer(cmd.CustomerName(), cmd.Phone()); err != nil {
		return err
	}

	if cmd.RegionCode() != aggregate.RegionCode() {
		fees, feesErr := geo.FeesForRegion(cmd.RegionCode())
		if feesErr != nil {
			return feesErr
		}
		if err = aggregate.ChangeRegion(cmd.RegionCode(), fees); err != nil {
			return err
		}
	}
	if err = aggregate.ChangeCity(cmd.City()); err != nil {
		return err
	}

	if err = aggregate.ChangeProduct(snapshot); err != nil {
		return err
	}
	if err = aggregate.ChangePricing(cmd.UnitPrice(), cmd.Quantity()); err != nil {
		return err
	}
	if err = aggregate.ChangeDeliveryMode(cmd.HomeDelivery()); err != nil {
		return err
	}
	if err = aggregate.ChangeOffer(cmd.OfferName()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
