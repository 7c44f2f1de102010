// Package http contains the inbound HTTP adapter: an echo server that
// translates waiter requests into commands and queries and renders order
// snapshots back as JSON.
package http

import (
	"errors"
	"net/http"
	"strconv"

	"restaurant/internal/adapters/out/memory/orderrepo"
	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Error is the JSON error payload returned for every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// OpenOrderRequest is the body of POST /api/v1/orders.
type OpenOrderRequest struct {
	TableID int `json:"table_id"`
}

// SubmitMealItemsRequest is the body of POST /api/v1/orders/:table_id/meal-items.
type SubmitMealItemsRequest struct {
	MenuItems []MenuItemRequest `json:"menu_items"`
}

// MenuItemRequest is one requested dish: catalog id, display name, and
// formatted price, all as text.
type MenuItemRequest struct {
	MenuItemID string `json:"menu_item_id"`
	Name       string `json:"name"`
	Price      string `json:"price"`
}

// MenuItemResponse echoes the catalog reference of a meal item.
type MenuItemResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price string `json:"price"`
}

// MealItemResponse is one meal item in an order snapshot. Status is the
// reported status, so removed items show as Removed.
type MealItemResponse struct {
	ID       string           `json:"id"`
	MenuItem MenuItemResponse `json:"menu_item"`
	Status   string           `json:"status"`
}

// OrderResponse is a table's order snapshot at the moment of the request.
type OrderResponse struct {
	TableID   int                `json:"table_id"`
	Status    string             `json:"status"`
	MealItems []MealItemResponse `json:"meal_items"`
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	openOrderHandler       commands.OpenOrderCommandHandler
	submitMealItemsHandler commands.SubmitMealItemsCommandHandler
	removeMealItemHandler  commands.RemoveMealItemCommandHandler

	// Query handlers
	getOrderHandler queries.GetOrderQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	openOrderHandler commands.OpenOrderCommandHandler,
	submitMealItemsHandler commands.SubmitMealItemsCommandHandler,
	removeMealItemHandler commands.RemoveMealItemCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
) *Server {
	return &Server{
		openOrderHandler:       openOrderHandler,
		submitMealItemsHandler: submitMealItemsHandler,
		removeMealItemHandler:  removeMealItemHandler,
		getOrderHandler:        getOrderHandler,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.POST("/orders", s.OpenOrder)
	api.GET("/orders/:table_id", s.GetOrder)
	api.POST("/orders/:table_id/meal-items", s.SubmitMealItems)
	api.DELETE("/orders/:table_id/meal-items/:meal_item_id", s.RemoveMealItem)
}

// Health handles GET /health - liveness probe.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "healthy"})
}

// OpenOrder handles POST /api/v1/orders - opens an order for a table.
func (s *Server) OpenOrder(ctx echo.Context) error {
	var request OpenOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewOpenOrderCommand(request.TableID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order data: " + err.Error(),
		})
	}

	if handleErr := s.openOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		if errors.Is(handleErr, orderrepo.ErrOrderAlreadyExists) {
			return ctx.JSON(http.StatusConflict, Error{
				Code:    http.StatusConflict,
				Message: "Table already has an active order",
			})
		}
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to open order",
		})
	}

	return ctx.NoContent(http.StatusCreated)
}

// GetOrder handles GET /api/v1/orders/:table_id - retrieves a table's
// order snapshot.
func (s *Server) GetOrder(ctx echo.Context) error {
	tableID, err := tableIDParam(ctx)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid table id",
		})
	}

	query, err := queries.NewGetOrderQuery(tableID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid table id: " + err.Error(),
		})
	}

	snapshot, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusNotFound, Error{
				Code:    http.StatusNotFound,
				Message: "No order for this table",
			})
		}
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve order",
		})
	}

	return ctx.JSON(http.StatusOK, orderToResponse(snapshot))
}

// SubmitMealItems handles POST /api/v1/orders/:table_id/meal-items -
// attaches a batch of meal items to the table's order and returns the
// snapshot taken right after the cooking jobs were dispatched.
func (s *Server) SubmitMealItems(ctx echo.Context) error {
	tableID, err := tableIDParam(ctx)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid table id",
		})
	}

	var request SubmitMealItemsRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	requests := make([]commands.MenuItemRequest, len(request.MenuItems))
	for i, item := range request.MenuItems {
		requests[i] = commands.MenuItemRequest{
			MenuItemID: item.MenuItemID,
			Name:       item.Name,
			Price:      item.Price,
		}
	}

	cmd, err := commands.NewSubmitMealItemsCommand(tableID, requests)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid meal item data: " + err.Error(),
		})
	}

	snapshot, err := s.submitMealItemsHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrSnapshotUnavailable):
			return ctx.JSON(http.StatusInternalServerError, Error{
				Code:    http.StatusInternalServerError,
				Message: "Failed to read order after registration",
			})
		case errors.Is(err, errs.ErrObjectNotFound):
			return ctx.JSON(http.StatusNotFound, Error{
				Code:    http.StatusNotFound,
				Message: "No order for this table",
			})
		}
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to submit meal items",
		})
	}

	return ctx.JSON(http.StatusOK, orderToResponse(snapshot))
}

// RemoveMealItem handles DELETE /api/v1/orders/:table_id/meal-items/:meal_item_id -
// flags a meal item as removed.
func (s *Server) RemoveMealItem(ctx echo.Context) error {
	tableID, err := tableIDParam(ctx)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid table id",
		})
	}

	mealItemID, err := kernel.UUIDFromString(ctx.Param("meal_item_id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid meal item id",
		})
	}

	cmd, err := commands.NewRemoveMealItemCommand(tableID, mealItemID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid removal data: " + err.Error(),
		})
	}

	if handleErr := s.removeMealItemHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		if errors.Is(handleErr, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusNotFound, Error{
				Code:    http.StatusNotFound,
				Message: "No such meal item",
			})
		}
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to remove meal item",
		})
	}

	return ctx.NoContent(http.StatusNoContent)
}

func tableIDParam(ctx echo.Context) (int, error) {
	return strconv.Atoi(ctx.Param("table_id"))
}

func orderToResponse(snapshot *order.Order) OrderResponse {
	items := make([]MealItemResponse, len(snapshot.MealItems()))
	for i, item := range snapshot.MealItems() {
		items[i] = MealItemResponse{
			ID: item.ID().String(),
			MenuItem: MenuItemResponse{
				ID:    item.MenuItem().ID().String(),
				Name:  item.MenuItem().Name(),
				Price: item.MenuItem().Price().String(),
			},
			Status: item.ReportedStatus().String(),
		}
	}

	return OrderResponse{
		TableID:   snapshot.TableID(),
		Status:    snapshot.Status().String(),
		MealItems: items,
	}
}
