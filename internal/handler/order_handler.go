package handler

import (
	"net/http"
	"strconv"
	"time"

	"shopadmin/internal/usecase"

	"github.com/labstack/echo/v4"
)

type OrderItemRequest struct {
	ProductID int64 `json:"product_id"`
	Quantity  int64 `json:"quantity"`
}

type CreateOrderRequest struct {
	CustomerID int64              `json:"customer_id"`
	Status     string             `json:"status"`
	Notes      string             `json:"notes"`
	Items      []OrderItemRequest `json:"items"`
}

type UpdateOrderRequest struct {
	CustomerID int64  `json:"customer_id"`
	Status     string `json:"status"`
	Notes      string `json:"notes"`
}

type OrderStatusRequest struct {
	Status string `json:"status"`
}

type OrderItemQuantityRequest struct {
	Quantity int64 `json:"quantity"`
}

type OrderHandler struct {
	uc *usecase.OrderUsecase
}

// DI
func NewOrderHandler(uc *usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

func (h *OrderHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/admin/orders")
	g.GET("", h.list)
	g.POST("", h.create)
	g.POST("/bulk-delete", h.bulkDelete)
	g.GET("/:id", h.detail)
	g.PUT("/:id", h.update)
	g.DELETE("/:id", h.delete)
	g.PUT("/:id/status", h.updateStatus)
	g.POST("/:id/items", h.addItem)
	g.PUT("/:id/items/:itemID", h.updateItemQuantity)
	g.DELETE("/:id/items/:itemID", h.removeItem)
}

// parseDay accepts RFC3339 or a bare date; bare dates cover the whole day
// when used as the upper bound.
func parseDay(v string, endOfDay bool) (*time.Time, bool) {
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return &t, true
	}
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return nil, false
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return &t, true
}

func (h *OrderHandler) list(c echo.Context) error {
	page, limit, err := queryPage(c, 20)
	if err != nil {
		return writeError(c, err)
	}

	in := usecase.ListOrdersInput{
		Page:   page,
		Limit:  limit,
		Q:      c.QueryParam("q"),
		Sort:   c.QueryParam("sort"),
		Status: c.QueryParam("status"),
	}

	if v := c.QueryParam("customer_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid customer_id"})
		}
		in.CustomerID = &id
	}
	if v := c.QueryParam("from"); v != "" {
		t, ok := parseDay(v, false)
		if !ok {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid from"})
		}
		in.From = t
	}
	if v := c.QueryParam("to"); v != "" {
		t, ok := parseDay(v, true)
		if !ok {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid to"})
		}
		in.To = t
	}

	out, err := h.uc.List(c.Request().Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *OrderHandler) detail(c echo.Context) error {
	id, ok := paramID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}
	o, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, o)
}

func (h *OrderHandler) create(c echo.Context) error {
	var req CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	items := make([]usecase.OrderItemInput, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, usecase.OrderItemInput{ProductID: it.ProductID, Quantity: it.Quantity})
	}

	o, err := h.uc.Create(c.Request().Context(), actor(c), usecase.CreateOrderInput{
		CustomerID: req.CustomerID,
		Status:     req.Status,
		Notes:      req.Notes,
		Items:      items,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, o)
}

func (h *OrderHandler) update(c echo.Context) error {
	id, ok := paramID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}
	var req UpdateOrderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	o, err := h.uc.Update(c.Request().Context(), actor(c), id, usecase.UpdateOrderInput{
		CustomerID: req.CustomerID,
		Status:     req.Status,
		Notes:      req.Notes,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, o)
}

func (h *OrderHandler) updateStatus(c echo.Context) error {
	id, ok := paramID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}
	var req OrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := h.uc.UpdateStatus(c.Request().Context(), actor(c), id, req.Status); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Message: "status updated"})
}

func (h *OrderHandler) addItem(c echo.Context) error {
	id, ok := paramID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}
	var req OrderItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	o, err := h.uc.AddItem(c.Request().Context(), actor(c), id, usecase.OrderItemInput{
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, o)
}

func (h *OrderHandler) updateItemQuantity(c echo.Context) error {
	id, ok := paramID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}
	itemID, ok := paramID(c, "itemID")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid item id"})
	}
	var req OrderItemQuantityRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	o, err := h.uc.UpdateItemQuantity(c.Request().Context(), actor(c), id, itemID, req.Quantity)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, o)
}

func (h *OrderHandler) removeItem(c echo.Context) error {
	id, ok := paramID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}
	itemID, ok := paramID(c, "itemID")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid item id"})
	}

	o, err := h.uc.RemoveItem(c.Request().Context(), actor(c), id, itemID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, o)
}

func (h *OrderHandler) delete(c echo.Context) error {
	id, ok := paramID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}
	if err := h.uc.Delete(c.Request().Context(), actor(c), id); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Message: "deleted"})
}

func (h *OrderHandler) bulkDelete(c echo.Context) error {
	var req BulkDeleteRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	deleted, err := h.uc.BulkDelete(c.Request().Context(), actor(c), req.IDs)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, BulkDeleteResponse{Deleted: deleted})
}
