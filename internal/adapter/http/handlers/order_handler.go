package handlers

import (
	response "auto_accessories/internal/adapter/http/dto/response"
	"auto_accessories/internal/adapter/http/middleware"
	"auto_accessories/internal/usecase"
	"auto_accessories/pkg"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// OrderHandler turns the session cart into orders and tracks them.
type OrderHandler struct {
	usecase usecase.IOrderUseCase
}

func NewOrderHandler(uc usecase.IOrderUseCase) *OrderHandler {
	return &OrderHandler{usecase: uc}
}

// PlaceOrder godoc
// @Summary  Place an order from the cart
// @Tags     orders
// @Produce  json
// @Success  201 {object} response.OrderResponse
// @Failure  409 {object} pkg.HTTPError
// @Router   /orders [post]
func (h *OrderHandler) PlaceOrder(c *gin.Context) {
	order, err := h.usecase.PlaceOrder(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		respondError(c, mapOrderError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromOrder(order))
}

// GetOrder godoc
// @Summary  Track an order
// @Tags     orders
// @Produce  json
// @Param    id path string true "Order ID"
// @Success  200 {object} response.OrderResponse
// @Failure  404 {object} pkg.HTTPError
// @Router   /orders/{id} [get]
func (h *OrderHandler) GetOrder(c *gin.Context) {
	order, err := h.usecase.GetByID(c.Request.Context(), middleware.SessionID(c), c.Param("id"))
	if err != nil {
		respondError(c, mapOrderError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(order))
}

// ListOrders godoc
// @Summary  Orders of the session, newest first
// @Tags     orders
// @Produce  json
// @Success  200 {array} response.OrderResponse
// @Router   /orders [get]
func (h *OrderHandler) ListOrders(c *gin.Context) {
	orders, err := h.usecase.ListBySession(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		respondError(c, mapOrderError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromOrders(orders))
}

// CancelOrder godoc
// @Summary  Cancel a pending order
// @Tags     orders
// @Produce  json
// @Param    id path string true "Order ID"
// @Success  200 {object} response.OrderResponse
// @Failure  409 {object} pkg.HTTPError
// @Router   /orders/{id}/cancel [patch]
func (h *OrderHandler) CancelOrder(c *gin.Context) {
	order, err := h.usecase.CancelOrder(c.Request.Context(), middleware.SessionID(c), c.Param("id"))
	if err != nil {
		respondError(c, mapOrderError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(order))
}

func mapOrderError(err error) *pkg.AppError {
	if appErr := mapCommonError(err); appErr != nil {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderID):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrEmptyCart):
		return pkg.NewDomainErrorSimple("CART_EMPTY", "Cart is empty", http.StatusConflict)
	case errors.Is(err, usecase.ErrOrderNotPending):
		return pkg.NewDomainErrorSimple("ORDER_NOT_PENDING", "Order is not pending", http.StatusConflict)
	}
	return internalError(err)
}
