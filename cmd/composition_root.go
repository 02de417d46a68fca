package cmd

import (
	"storefront/internal/adapters/in/http"
	"storefront/internal/adapters/out/carrier"
	"storefront/internal/adapters/out/postgres"
	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/services"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB           *gorm.DB
	uowFactory       postgres.GormUnitOfWorkFactory
	carrierValidator *carrier.Client
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:           gormDB,
		uowFactory:       *postgres.NewGormUnitOfWorkFactory(gormDB),
		carrierValidator: carrier.NewClient(configs.CarrierBaseURL),
	}
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) storeUoWFactory() commands.StoreUoWFactory {
	return FuncStoreUoWFactory(func() commands.StoreUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateEditOrderCommandHandler() commands.EditOrderCommandHandler {
	return commands.NewEditOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	return commands.NewChangeOrderStatusCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateUpdateOrderNoteCommandHandler() commands.UpdateOrderNoteCommandHandler {
	return commands.NewUpdateOrderNoteCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateRevealContactCommandHandler() commands.RevealContactCommandHandler {
	return commands.NewRevealContactCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateBindCarrierCommandHandler() commands.BindCarrierCommandHandler {
	return commands.NewBindCarrierCommandHandler(c.storeUoWFactory(), c.carrierValidator)
}

func (c *CompositionRoot) CreateUnbindCarrierCommandHandler() commands.UnbindCarrierCommandHandler {
	return commands.NewUnbindCarrierCommandHandler(c.storeUoWFactory())
}

func (c *CompositionRoot) CreateDispatchOrderCommandHandler() commands.DispatchOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewDispatchOrderCommandHandler(f, services.NewCarrierDispatcher())
}

func (c *CompositionRoot) CreateGetStoreOrdersQueryHandler() queries.GetStoreOrdersQueryHandler {
	return queries.NewGetStoreOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetStoreQueryHandler() queries.GetStoreQueryHandler {
	return queries.NewGetStoreQueryHandler(c.gormDB)
}

// CreateServer wires every handler into the HTTP server.
func (c *CompositionRoot) CreateServer() *http.Server {
	return http.NewServer(
		c.CreateCreateOrderCommandHandler(),
		c.CreateEditOrderCommandHandler(),
		c.CreateChangeOrderStatusCommandHandler(),
		c.CreateUpdateOrderNoteCommandHandler(),
		c.CreateRevealContactCommandHandler(),
		c.CreateDeleteOrderCommandHandler(),
		c.CreateBindCarrierCommandHandler(),
		c.CreateUnbindCarrierCommandHandler(),
		c.CreateDispatchOrderCommandHandler(),
		c.CreateGetStoreOrdersQueryHandler(),
		c.CreateGetStoreQueryHandler(),
	)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncStoreUoWFactory func() commands.StoreUoW

func (f FuncStoreUoWFactory) Create() commands.StoreUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
