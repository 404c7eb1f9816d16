package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/freshbasket/grocery-system/internal/api/metrics"
	"github.com/freshbasket/grocery-system/internal/core/domain"
	"github.com/freshbasket/grocery-system/internal/core/ports"
)

// OrderHandler handles HTTP requests for order operations.
type OrderHandler struct {
	orders ports.OrderService
}

func NewOrderHandler(orders ports.OrderService) *OrderHandler {
	return &OrderHandler{orders: orders}
}

type createOrderRequest struct {
	Email string                     `json:"email" validate:"required"`
	Items map[string]decimal.Decimal `json:"items" validate:"required"`
}

type updateOrderRequest struct {
	Status string `json:"status" validate:"required,oneof=pending shipped delivered cancelled"`
}

type orderResponse struct {
	OrderID        string                     `json:"order_id"`
	Email          string                     `json:"email"`
	Username       string                     `json:"username"`
	Items          map[string]decimal.Decimal `json:"items"`
	Subtotal       decimal.Decimal            `json:"subtotal"`
	DiscountAmount decimal.Decimal            `json:"discount_amount"`
	TaxAmount      decimal.Decimal            `json:"tax_amount"`
	Total          decimal.Decimal            `json:"total"`
	Status         string                     `json:"status"`
	Date           time.Time                  `json:"date"`
}

type overviewResponse struct {
	Users    int             `json:"users"`
	Products int             `json:"products"`
	Orders   int             `json:"orders"`
	Revenue  decimal.Decimal `json:"revenue"`
}

func toOrderResponse(o *domain.Order) orderResponse {
	return orderResponse{
		OrderID:        o.OrderID,
		Email:          o.Email,
		Username:       o.Username,
		Items:          o.Items,
		Subtotal:       o.Subtotal,
		DiscountAmount: o.DiscountAmount,
		TaxAmount:      o.TaxAmount,
		Total:          o.Total,
		Status:         string(o.Status),
		Date:           o.Date,
	}
}

// Create places an order from a cart. Pricing happens server-side against the
// current catalog; the response carries the frozen snapshot.
//
// @Summary      Place an order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        body  body      createOrderRequest  true  "Owner email and cart"
// @Success      200   {object}  orderResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /orders [post]
func (h *OrderHandler) Create(c echo.Context) error {
	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	order, err := h.orders.CreateOrder(c.Request().Context(), ports.CreateOrderInput{
		Email: req.Email,
		Items: domain.Cart(req.Items),
	})
	if err != nil {
		return err
	}

	metrics.OrdersCreatedTotal.Inc()
	return c.JSON(http.StatusOK, toOrderResponse(order))
}

// List returns orders, optionally filtered by owner email and status.
// `?sort=newest` reverses into newest-first presentation order.
//
// @Summary      List orders
// @Tags         orders
// @Produce      json
// @Param        email   query     string  false  "Filter by owner email"
// @Param        status  query     string  false  "Filter by status"
// @Param        sort    query     string  false  "newest for newest-first"
// @Success      200     {array}   orderResponse
// @Failure      400     {object}  map[string]string
// @Router       /orders [get]
func (h *OrderHandler) List(c echo.Context) error {
	status := domain.OrderStatus(c.QueryParam("status"))
	if status != "" && !domain.ValidStatus(status) {
		return echo.NewHTTPError(http.StatusBadRequest, "unknown status filter")
	}

	orders, err := h.orders.ListOrders(c.Request().Context(), ports.ListOrdersFilter{
		Email:       c.QueryParam("email"),
		Status:      status,
		NewestFirst: c.QueryParam("sort") == "newest",
	})
	if err != nil {
		return err
	}

	resp := make([]orderResponse, 0, len(orders))
	for i := range orders {
		resp = append(resp, toOrderResponse(&orders[i]))
	}
	return c.JSON(http.StatusOK, resp)
}

// UpdateStatus overwrites the status of an order.
//
// @Summary      Update order status
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        order_id  path      string              true  "Order id"
// @Param        body      body      updateOrderRequest  true  "New status"
// @Success      200       {object}  orderResponse
// @Failure      400       {object}  map[string]string
// @Failure      404       {object}  map[string]string
// @Router       /orders/{order_id} [put]
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	var req updateOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	order, err := h.orders.UpdateStatus(c.Request().Context(), c.Param("order_id"), domain.OrderStatus(req.Status))
	if err != nil {
		return err
	}

	metrics.OrderStatusUpdatesTotal.WithLabelValues(req.Status).Inc()
	return c.JSON(http.StatusOK, toOrderResponse(order))
}

// Overview returns the administrator dashboard aggregates.
//
// @Summary      Store overview
// @Tags         admin
// @Produce      json
// @Success      200  {object}  overviewResponse
// @Router       /admin/overview [get]
func (h *OrderHandler) Overview(c echo.Context) error {
	overview, err := h.orders.Overview(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, overviewResponse{
		Users:    overview.Users,
		Products: overview.Products,
		Orders:   overview.Orders,
		Revenue:  overview.Revenue,
	})
}
