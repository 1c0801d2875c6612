package handlers

import (
	request "auto_accessories/internal/adapter/http/dto/request"
	response "auto_accessories/internal/adapter/http/dto/response"
	"auto_accessories/internal/adapter/http/middleware"
	"auto_accessories/internal/domain/entities"
	"auto_accessories/internal/usecase"
	"auto_accessories/pkg"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// CartHandler serves the session cart. Every mutation replies with the full cart.
type CartHandler struct {
	usecase usecase.ICartUseCase
}

func NewCartHandler(uc usecase.ICartUseCase) *CartHandler {
	return &CartHandler{usecase: uc}
}

// GetCart godoc
// @Summary  Cart lines and total
// @Tags     cart
// @Produce  json
// @Success  200 {object} response.CartResponse
// @Router   /cart [get]
func (h *CartHandler) GetCart(c *gin.Context) {
	cart, err := h.usecase.GetCart(c.Request.Context(), middleware.SessionID(c))
	h.reply(c, cart, err)
}

// AddToCart godoc
// @Summary  Add units of a product, optionally with installation
// @Tags     cart
// @Accept   json
// @Produce  json
// @Param    payload body request.AddToCartRequest true "Item"
// @Success  200 {object} response.CartResponse
// @Failure  400 {object} pkg.HTTPError
// @Failure  404 {object} pkg.HTTPError
// @Failure  409 {object} pkg.HTTPError
// @Router   /cart/items [post]
func (h *CartHandler) AddToCart(c *gin.Context) {
	var payload request.AddToCartRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidRequest)
		return
	}
	cart, err := h.usecase.AddToCart(c.Request.Context(), middleware.SessionID(c), payload.ProductID, payload.ResolveQuantity(), payload.InstallationOption())
	h.reply(c, cart, err)
}

// UpdateQuantity godoc
// @Summary  Set the quantity of a product; zero or less removes it
// @Tags     cart
// @Accept   json
// @Produce  json
// @Param    product_id path string                        true "Product ID"
// @Param    payload    body request.UpdateQuantityRequest true "Quantity"
// @Success  200 {object} response.CartResponse
// @Router   /cart/items/{product_id} [patch]
func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	var payload request.UpdateQuantityRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidRequest)
		return
	}
	cart, err := h.usecase.UpdateQuantity(c.Request.Context(), middleware.SessionID(c), c.Param("product_id"), *payload.Quantity)
	h.reply(c, cart, err)
}

// RemoveFromCart godoc
// @Summary  Remove every line of a product
// @Tags     cart
// @Produce  json
// @Param    product_id path string true "Product ID"
// @Success  200 {object} response.CartResponse
// @Router   /cart/items/{product_id} [delete]
func (h *CartHandler) RemoveFromCart(c *gin.Context) {
	cart, err := h.usecase.RemoveFromCart(c.Request.Context(), middleware.SessionID(c), c.Param("product_id"))
	h.reply(c, cart, err)
}

// RemoveLine godoc
// @Summary  Remove a single cart line
// @Tags     cart
// @Produce  json
// @Param    line_id path string true "Line ID"
// @Success  200 {object} response.CartResponse
// @Failure  404 {object} pkg.HTTPError
// @Router   /cart/lines/{line_id} [delete]
func (h *CartHandler) RemoveLine(c *gin.Context) {
	cart, err := h.usecase.RemoveLine(c.Request.Context(), middleware.SessionID(c), c.Param("line_id"))
	h.reply(c, cart, err)
}

// ClearCart godoc
// @Summary  Empty the cart
// @Tags     cart
// @Produce  json
// @Success  200 {object} response.CartResponse
// @Router   /cart [delete]
func (h *CartHandler) ClearCart(c *gin.Context) {
	cart, err := h.usecase.ClearCart(c.Request.Context(), middleware.SessionID(c))
	h.reply(c, cart, err)
}

func (h *CartHandler) reply(c *gin.Context, cart entities.Cart, err error) {
	if err != nil {
		respondError(c, mapCartError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromCart(cart))
}

func mapCartError(err error) *pkg.AppError {
	if appErr := mapCommonError(err); appErr != nil {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrInvalidQuantity):
		return pkg.NewDomainErrorSimple("INVALID_QUANTITY", "Quantity must be at least 1", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidInstallationCost):
		return pkg.NewDomainErrorSimple("INVALID_INSTALLATION_COST", "Installation cost is required and cannot be negative", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidLineID):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrCartLineNotFound):
		return pkg.NewDomainErrorSimple("CART_LINE_NOT_FOUND", "Cart line not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrProductOutOfStock):
		return pkg.NewDomainErrorSimple("OUT_OF_STOCK", "Product out of stock", http.StatusConflict)
	}
	return internalError(err)
}
