package commands

import (
	"context"

	"storefront/internal/core/domain/model/geo"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/product"
	"storefront/internal/pkg/errs"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// It snapshots the ordered product, resolves the region's delivery fees from
// the geography table, and persists the order in pending status.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires an OrderUoWFactory for transactional persistence.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command.
// The region's fees are looked up once here and cached on the order, so
// later edits to the price table never change this order. An unknown region
// or a city outside the region aborts creation before anything is persisted.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	fees, err := geo.FeesForRegion(cmd.RegionCode())
	if err != nil {
		return err
	}
	if cmd.City() != "" && !geo.CityBelongsToRegion(cmd.RegionCode(), cmd.City()) {
		return errs.NewValueIsInvalidError("city does not belong to the selected region")
	}

	snapshot, err := product.NewSnapshot(cmd.ProductID(), cmd.ProductName(), cmd.ProductPrice(), cmd.ProductImageURL())
	if err != nil {
		return err
	}

	newOrder, err := order.NewOrder(
		cmd.OrderID(),
		cmd.StoreID(),
		cmd.CustomerName(),
		cmd.Phone(),
		cmd.RegionCode(),
		cmd.City(),
		snapshot,
		cmd.Quantity(),
		fees,
		cmd.HomeDelivery(),
		cmd.OfferName(),
	)
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

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
