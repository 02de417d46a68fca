// Package http provides the inbound HTTP API. It binds request payloads,
// translates them into commands and queries, and maps domain errors onto
// status codes.
package http

import (
	"errors"
	"net/http"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/pricing"
	"storefront/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	createOrderHandler       commands.CreateOrderCommandHandler
	editOrderHandler         commands.EditOrderCommandHandler
	changeStatusHandler      commands.ChangeOrderStatusCommandHandler
	updateNoteHandler        commands.UpdateOrderNoteCommandHandler
	revealContactHandler     commands.RevealContactCommandHandler
	deleteOrderHandler       commands.DeleteOrderCommandHandler
	bindCarrierHandler       commands.BindCarrierCommandHandler
	unbindCarrierHandler     commands.UnbindCarrierCommandHandler
	dispatchOrderHandler     commands.DispatchOrderCommandHandler
	getStoreOrdersHandler    queries.GetStoreOrdersQueryHandler
	getStoreHandler          queries.GetStoreQueryHandler
	getRegionsHandler        queries.GetRegionsQueryHandler
	getCitiesHandler         queries.GetCitiesForRegionQueryHandler
}

// NewServer creates an HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	editOrderHandler commands.EditOrderCommandHandler,
	changeStatusHandler commands.ChangeOrderStatusCommandHandler,
	updateNoteHandler commands.UpdateOrderNoteCommandHandler,
	revealContactHandler commands.RevealContactCommandHandler,
	deleteOrderHandler commands.DeleteOrderCommandHandler,
	bindCarrierHandler commands.BindCarrierCommandHandler,
	unbindCarrierHandler commands.UnbindCarrierCommandHandler,
	dispatchOrderHandler commands.DispatchOrderCommandHandler,
	getStoreOrdersHandler queries.GetStoreOrdersQueryHandler,
	getStoreHandler queries.GetStoreQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:    createOrderHandler,
		editOrderHandler:      editOrderHandler,
		changeStatusHandler:   changeStatusHandler,
		updateNoteHandler:     updateNoteHandler,
		revealContactHandler:  revealContactHandler,
		deleteOrderHandler:    deleteOrderHandler,
		bindCarrierHandler:    bindCarrierHandler,
		unbindCarrierHandler:  unbindCarrierHandler,
		dispatchOrderHandler:  dispatchOrderHandler,
		getStoreOrdersHandler: getStoreOrdersHandler,
		getStoreHandler:       getStoreHandler,
		getRegionsHandler:     queries.NewGetRegionsQueryHandler(),
		getCitiesHandler:      queries.NewGetCitiesForRegionQueryHandler(),
	}
}

// RegisterRoutes attaches every endpoint under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.GET("/health", s.Health)

	api.POST("/stores/:storeID/orders", s.CreateOrder)
	api.GET("/stores/:storeID/orders", s.GetStoreOrders)
	api.POST("/stores/:storeID/orders/:orderID/dispatch", s.DispatchOrder)

	api.PUT("/orders/:orderID", s.EditOrder)
	api.PATCH("/orders/:orderID/status", s.ChangeOrderStatus)
	api.PATCH("/orders/:orderID/note", s.UpdateOrderNote)
	api.POST("/orders/:orderID/reveal", s.RevealContact)
	api.DELETE("/orders/:orderID", s.DeleteOrder)

	api.GET("/stores/:storeID", s.GetStore)
	api.POST("/stores/:storeID/carrier", s.BindCarrier)
	api.DELETE("/stores/:storeID/carrier", s.UnbindCarrier)

	api.GET("/regions", s.GetRegions)
	api.GET("/regions/:code/cities", s.GetCitiesForRegion)
}

// Health handles GET /api/v1/health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "healthy"})
}

// errorResponse maps a domain error onto an HTTP status code.
func errorResponse(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrStateIsLocked):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrCredentialsAreInvalid):
		code = http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrTransportFailed):
		code = http.StatusBadGateway
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code = http.StatusBadRequest
	}

	return ctx.JSON(code, ErrorResponse{
		Code:    code,
		Message: err.Error(),
	})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func pathUUID(ctx echo.Context, name string) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param(name))
}

// CreateOrder handles POST /api/v1/stores/:storeID/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	storeID, err := pathUUID(ctx, "storeID")
	if err != nil {
		return badRequest(ctx, "invalid store id")
	}

	var req CreateOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	productID, err := kernel.UUIDFromString(req.ProductID)
	if err != nil {
		return badRequest(ctx, "invalid product id")
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		orderID, storeID,
		req.CustomerName, req.Phone,
		req.RegionCode, req.City,
		productID, req.ProductName, pricing.ParseAmount(req.ProductPrice), req.ProductImageURL,
		pricing.ParseQuantity(req.Quantity), req.HomeDelivery, req.OfferName)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": orderID.String()})
}

// EditOrder handles PUT /api/v1/orders/:orderID.
func (s *Server) EditOrder(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderID")
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	var req EditOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	productID, err := kernel.UUIDFromString(req.ProductID)
	if err != nil {
		return badRequest(ctx, "invalid product id")
	}

	cmd, err := commands.NewEditOrderCommand(
		orderID,
		req.CustomerName, req.Phone,
		req.RegionCode, req.City,
		productID, req.ProductName, pricing.ParseAmount(req.ProductPrice), req.ProductImageURL,
		pricing.ParseAmount(req.UnitPrice), pricing.ParseQuantity(req.Quantity), req.HomeDelivery, req.OfferName)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.editOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ChangeOrderStatus handles PATCH /api/v1/orders/:orderID/status.
func (s *Server) ChangeOrderStatus(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderID")
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	var req ChangeStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	status, err := order.StatusFromString(req.Status)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, status, req.Note)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.changeStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateOrderNote handles PATCH /api/v1/orders/:orderID/note.
func (s *Server) UpdateOrderNote(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderID")
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	var req UpdateNoteRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewUpdateOrderNoteCommand(orderID, req.Note)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.updateNoteHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RevealContact handles POST /api/v1/orders/:orderID/reveal.
func (s *Server) RevealContact(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderID")
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	cmd, err := commands.NewRevealContactCommand(orderID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.revealContactHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteOrder handles DELETE /api/v1/orders/:orderID.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderID")
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	cmd, err := commands.NewDeleteOrderCommand(orderID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.deleteOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DispatchOrder handles POST /api/v1/stores/:storeID/orders/:orderID/dispatch.
func (s *Server) DispatchOrder(ctx echo.Context) error {
	storeID, err := pathUUID(ctx, "storeID")
	if err != nil {
		return badRequest(ctx, "invalid store id")
	}
	orderID, err := pathUUID(ctx, "orderID")
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	cmd, err := commands.NewDispatchOrderCommand(orderID, storeID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.dispatchOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetStoreOrders handles GET /api/v1/stores/:storeID/orders.
// Filters arrive as query parameters: status, region, mode (home|pickup),
// product_id, customer, sort (newest|oldest|price_high|price_low).
func (s *Server) GetStoreOrders(ctx echo.Context) error {
	storeID, err := pathUUID(ctx, "storeID")
	if err != nil {
		return badRequest(ctx, "invalid store id")
	}

	sortKey, err := queries.SortKeyFromString(ctx.QueryParam("sort"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	filters := queries.NewOrderFilterSet(sortKey)

	if raw := ctx.QueryParam("status"); raw != "" {
		status, statusErr := order.StatusFromString(raw)
		if statusErr != nil {
			return errorResponse(ctx, statusErr)
		}
		filters = filters.WithStatus(status)
	}
	if raw := ctx.QueryParam("region"); raw != "" {
		filters = filters.WithRegion(raw)
	}
	switch ctx.QueryParam("mode") {
	case "":
	case "home":
		filters = filters.WithDeliveryMode(true)
	case "pickup":
		filters = filters.WithDeliveryMode(false)
	default:
		return badRequest(ctx, "invalid delivery mode")
	}
	if raw := ctx.QueryParam("product_id"); raw != "" {
		productID, productErr := kernel.UUIDFromString(raw)
		if productErr != nil {
			return badRequest(ctx, "invalid product id")
		}
		filters = filters.WithProduct(productID)
	}
	if raw := ctx.QueryParam("customer"); raw != "" {
		filters = filters.WithCustomer(raw)
	}

	query, err := queries.NewGetStoreOrdersQuery(storeID, filters)
	if err != nil {
		return errorResponse(ctx, err)
	}

	resp, err := s.getStoreOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderListResponse(resp))
}

// GetStore handles GET /api/v1/stores/:storeID.
func (s *Server) GetStore(ctx echo.Context) error {
	storeID, err := pathUUID(ctx, "storeID")
	if err != nil {
		return badRequest(ctx, "invalid store id")
	}

	query, err := queries.NewGetStoreQuery(storeID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	resp, err := s.getStoreHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	storeResp := StoreResponse{
		ID:   resp.ID.String(),
		Name: resp.Name,
		Paid: resp.Paid,
	}
	if resp.Carrier != nil {
		storeResp.Carrier = &CarrierResponse{
			Name:    resp.Carrier.Name,
			LogoURL: resp.Carrier.LogoURL,
		}
	}

	return ctx.JSON(http.StatusOK, storeResp)
}

// BindCarrier handles POST /api/v1/stores/:storeID/carrier.
func (s *Server) BindCarrier(ctx echo.Context) error {
	storeID, err := pathUUID(ctx, "storeID")
	if err != nil {
		return badRequest(ctx, "invalid store id")
	}

	var req BindCarrierRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewBindCarrierCommand(storeID, req.CarrierName, req.Key, req.Token, req.LogoURL)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.bindCarrierHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UnbindCarrier handles DELETE /api/v1/stores/:storeID/carrier.
func (s *Server) UnbindCarrier(ctx echo.Context) error {
	storeID, err := pathUUID(ctx, "storeID")
	if err != nil {
		return badRequest(ctx, "invalid store id")
	}

	cmd, err := commands.NewUnbindCarrierCommand(storeID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.unbindCarrierHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetRegions handles GET /api/v1/regions.
func (s *Server) GetRegions(ctx echo.Context) error {
	regions, err := s.getRegionsHandler.Handle(ctx.Request().Context(), queries.NewGetRegionsQuery())
	if err != nil {
		return errorResponse(ctx, err)
	}

	resp := make([]RegionResponse, 0, len(regions))
	for _, region := range regions {
		resp = append(resp, RegionResponse{
			Code:       region.Code,
			Name:       region.Name,
			ArabicName: region.ArabicName,
			HomeFee:    region.HomeFee,
			PickupFee:  region.PickupFee,
		})
	}

	return ctx.JSON(http.StatusOK, resp)
}

// GetCitiesForRegion handles GET /api/v1/regions/:code/cities.
func (s *Server) GetCitiesForRegion(ctx echo.Context) error {
	query, err := queries.NewGetCitiesForRegionQuery(ctx.Param("code"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	cities, err := s.getCitiesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, cities)
}

func toOrderListResponse(resp queries.GetStoreOrdersQueryResponse) OrderListResponse {
	out := OrderListResponse{
		Orders:   make([]OrderResponse, 0, len(resp.Orders)),
		Products: make([]ProductOptionResponse, 0, len(resp.Products)),
		Regions:  make([]RegionOptionResponse, 0, len(resp.Regions)),
	}

	for _, view := range resp.Orders {
		out.Orders = append(out.Orders, OrderResponse{
			ID:              view.ID.String(),
			CustomerName:    view.CustomerName,
			Phone:           view.Phone,
			RegionCode:      view.RegionCode,
			RegionName:      view.RegionName,
			City:            view.City,
			ProductID:       view.ProductID.String(),
			ProductName:     view.ProductName,
			ProductImageURL: view.ProductImageURL,
			UnitPrice:       view.UnitPrice,
			Quantity:        view.Quantity,
			DeliveryFee:     view.DeliveryFee,
			Total:           view.Total,
			HomeDelivery:    view.HomeDelivery,
			Status:          view.Status,
			Note:            view.Note,
			OfferName:       view.OfferName,
			ContactRevealed: view.ContactRevealed,
			CreatedAt:       view.CreatedAt,
		})
	}
	for _, option := range resp.Products {
		out.Products = append(out.Products, ProductOptionResponse{
			ID:   option.ID.String(),
			Name: option.Name,
		})
	}
	for _, option := range resp.Regions {
		out.Regions = append(out.Regions, RegionOptionResponse{
			Code: option.Code,
			Name: option.Name,
		})
	}

	return out
}
