// Package http exposes the order lifecycle over the REST API consumed by
// the customer site and the operator console.
package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/SahilRouthan/Devbhoomi-Drycleaner/internal/core/application/usecases/commands"
	"github.com/SahilRouthan/Devbhoomi-Drycleaner/internal/core/application/usecases/queries"
	"github.com/SahilRouthan/Devbhoomi-Drycleaner/internal/core/domain/model/kernel"
	"github.com/SahilRouthan/Devbhoomi-Drycleaner/internal/core/domain/model/order"
	"github.com/SahilRouthan/Devbhoomi-Drycleaner/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// DefaultPageLimit is the admin listing page size when the request does not
// carry one.
const DefaultPageLimit = 50

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	placeOrderHandler        commands.PlaceOrderCommandHandler
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler

	// Query handlers
	getOrderHandler          queries.GetOrderQueryHandler
	getCustomerOrdersHandler queries.GetCustomerOrdersQueryHandler
	listOrdersHandler        queries.ListOrdersQueryHandler
	getDashboardStatsHandler queries.GetDashboardStatsQueryHandler
}

// NewServer creates an HTTP server with the required command and query
// handlers.
func NewServer(
	placeOrderHandler commands.PlaceOrderCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getCustomerOrdersHandler queries.GetCustomerOrdersQueryHandler,
	listOrdersHandler queries.ListOrdersQueryHandler,
	getDashboardStatsHandler queries.GetDashboardStatsQueryHandler,
) *Server {
	return &Server{
		placeOrderHandler:        placeOrderHandler,
		updateOrderStatusHandler: updateOrderStatusHandler,
		getOrderHandler:          getOrderHandler,
		getCustomerOrdersHandler: getCustomerOrdersHandler,
		listOrdersHandler:        listOrdersHandler,
		getDashboardStatsHandler: getDashboardStatsHandler,
	}
}

// RegisterRoutes mounts the API on the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api")
	api.POST("/orders", s.PlaceOrder)
	api.GET("/orders/:orderId", s.GetOrder)
	api.GET("/orders/customer/:phone", s.GetCustomerOrders)

	admin := api.Group("/admin")
	admin.GET("/orders", s.ListOrders)
	admin.PATCH("/orders/:orderId/status", s.UpdateOrderStatus)
	admin.GET("/stats", s.GetDashboardStats)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// PlaceOrder handles POST /api/orders - places a new order.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	var request placeOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse("Invalid request body"))
	}

	cmd, violations := request.toCommand()
	if violations != nil {
		return ctx.JSON(http.StatusBadRequest, map[string]any{
			"success": false,
			"errors":  violations,
		})
	}

	placed, err := s.placeOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, errorResponse("Failed to create order"))
	}

	return ctx.JSON(http.StatusCreated, map[string]any{
		"success": true,
		"message": "Order placed successfully",
		"order": orderSummaryPayload{
			OrderID:       placed.ID().String(),
			Total:         placed.Amounts().Total().InexactFloat64(),
			PaymentMethod: placed.PaymentMethod().String(),
			OrderStatus:   placed.Status().String(),
		},
	})
}

// GetOrder handles GET /api/orders/:orderId - fetches one order.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.OrderIDFromString(ctx.Param("orderId"))
	if err != nil {
		return ctx.JSON(http.StatusNotFound, errorResponse("Order not found"))
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse("Invalid order id"))
	}

	projection, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusNotFound, errorResponse("Order not found"))
		}
		return ctx.JSON(http.StatusInternalServerError, errorResponse("Failed to fetch order"))
	}

	return ctx.JSON(http.StatusOK, map[string]any{
		"success": true,
		"order":   orderPayloadFromProjection(projection),
	})
}

// GetCustomerOrders handles GET /api/orders/customer/:phone - fetches the
// most recent orders of one customer.
func (s *Server) GetCustomerOrders(ctx echo.Context) error {
	phone, err := kernel.NewPhone(ctx.Param("phone"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse("Invalid phone number"))
	}

	query, err := queries.NewGetCustomerOrdersQuery(phone)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse("Invalid phone number"))
	}

	projections, err := s.getCustomerOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, errorResponse("Failed to fetch orders"))
	}

	orders := make([]orderPayload, 0, len(projections))
	for _, projection := range projections {
		orders = append(orders, orderPayloadFromProjection(projection))
	}

	return ctx.JSON(http.StatusOK, map[string]any{
		"success": true,
		"orders":  orders,
	})
}

// ListOrders handles GET /api/admin/orders - lists orders for the operator
// console with optional status filter and pagination.
func (s *Server) ListOrders(ctx echo.Context) error {
	page := intQueryParam(ctx, "page", 1)
	limit := intQueryParam(ctx, "limit", DefaultPageLimit)

	query, err := queries.NewListOrdersQuery(ctx.QueryParam("status"), page, limit)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse("Invalid listing parameters: "+err.Error()))
	}

	result, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, errorResponse("Failed to fetch orders"))
	}

	orders := make([]orderPayload, 0, len(result.Orders))
	for _, projection := range result.Orders {
		orders = append(orders, orderPayloadFromProjection(projection))
	}

	return ctx.JSON(http.StatusOK, map[string]any{
		"success": true,
		"orders":  orders,
		"pagination": paginationPayload{
			Total: result.Total,
			Page:  result.Page,
			Pages: result.Pages,
		},
	})
}

// UpdateOrderStatus handles PATCH /api/admin/orders/:orderId/status -
// advances an order through the fulfillment chain.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.OrderIDFromString(ctx.Param("orderId"))
	if err != nil {
		return ctx.JSON(http.StatusNotFound, errorResponse("Order not found"))
	}

	var request updateOrderStatusRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse("Invalid request body"))
	}

	status, err := order.StatusFromString(request.Status)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse("Unknown status: "+request.Status))
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, status, request.Note)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse("Invalid status update: "+err.Error()))
	}

	updated, err := s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrObjectNotFound):
			return ctx.JSON(http.StatusNotFound, errorResponse("Order not found"))
		case errors.Is(err, errs.ErrValueIsInvalid):
			return ctx.JSON(http.StatusBadRequest, errorResponse("Invalid transition: "+err.Error()))
		default:
			return ctx.JSON(http.StatusInternalServerError, errorResponse("Failed to update order"))
		}
	}

	return ctx.JSON(http.StatusOK, map[string]any{
		"success": true,
		"message": "Order status updated",
		"order":   orderPayloadFromAggregate(updated),
	})
}

// GetDashboardStats handles GET /api/admin/stats - serves the operator
// dashboard counters.
func (s *Server) GetDashboardStats(ctx echo.Context) error {
	stats, err := s.getDashboardStatsHandler.Handle(ctx.Request().Context(), queries.NewGetDashboardStatsQuery())
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, errorResponse("Failed to fetch stats"))
	}

	return ctx.JSON(http.StatusOK, map[string]any{
		"success": true,
		"stats":   statsPayloadFromResponse(stats),
	})
}

func errorResponse(message string) map[string]any {
	return map[string]any{
		"success": false,
		"message": message,
	}
}

func intQueryParam(ctx echo.Context, name string, fallback int) int {
	raw := ctx.QueryParam(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}
