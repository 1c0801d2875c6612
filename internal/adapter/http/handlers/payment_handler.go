package handlers

import (
	response "auto_accessories/internal/adapter/http/dto/response"
	"auto_accessories/internal/adapter/http/middleware"
	"auto_accessories/internal/usecase"
	"auto_accessories/pkg"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PaymentHandler charges orders through the payment gateway.
type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
}

func NewPaymentHandler(uc usecase.IPaymentUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

// CreatePaymentByOrderID godoc
// @Summary  Create and approve the payment of a pending order
// @Description The body is a Mercado Pago payment payload, bare or wrapped in mp_payload. The amount is always the order total.
// @Tags     payments
// @Accept   json
// @Produce  json
// @Param    order_id path string                       true  "Order ID"
// @Param    payload  body request.PaymentCreateRequest false "Mercado Pago payload"
// @Success  200 {object} response.PaymentResponse
// @Failure  400 {object} pkg.HTTPError
// @Failure  409 {object} pkg.HTTPError
// @Router   /payments/{order_id} [post]
func (h *PaymentHandler) CreatePaymentByOrderID(c *gin.Context) {
	orderID := c.Param("order_id")
	log := zap.L().With(zap.String("order_id", orderID))
	mpPayload, err := readMPPayload(c)
	if err != nil {
		if !usecase.PaymentGatewayMockEnabled() {
			log.Warn("payment.handler invalid payload", zap.Error(err))
			respondError(c, errInvalidRequest)
			return
		}
		log.Info("payment.handler payload invalid in mock mode; using empty payload", zap.Error(err))
		mpPayload = json.RawMessage("{}")
	}

	created, err := h.usecase.CreateAndApprove(c.Request.Context(), middleware.SessionID(c), orderID, mpPayload)
	if err != nil {
		respondError(c, mapPaymentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPayment(created))
}

// GetPaymentByOrderID godoc
// @Summary  Latest payment of an order
// @Tags     payments
// @Produce  json
// @Param    order_id path string true "Order ID"
// @Success  200 {object} response.PaymentResponse
// @Failure  404 {object} pkg.HTTPError
// @Router   /payments/{order_id} [get]
func (h *PaymentHandler) GetPaymentByOrderID(c *gin.Context) {
	payments, err := h.usecase.ListByOrderID(c.Request.Context(), middleware.SessionID(c), c.Param("order_id"))
	if err != nil {
		respondError(c, mapPaymentError(err))
		return
	}
	if len(payments) == 0 {
		respondError(c, pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound))
		return
	}

	latest := payments[0]
	for _, p := range payments[1:] {
		if p.Date.After(latest.Date) {
			latest = p
		}
	}
	c.JSON(http.StatusOK, response.FromPayment(latest))
}

// ListOrderPayments godoc
// @Summary  Every payment of an order
// @Tags     payments
// @Produce  json
// @Param    id path string true "Order ID"
// @Success  200 {array} response.PaymentResponse
// @Router   /orders/{id}/payments [get]
func (h *PaymentHandler) ListOrderPayments(c *gin.Context) {
	payments, err := h.usecase.ListByOrderID(c.Request.Context(), middleware.SessionID(c), c.Param("id"))
	if err != nil {
		respondError(c, mapPaymentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPayments(payments))
}

// GetOrderPayment godoc
// @Summary  One payment of an order
// @Tags     payments
// @Produce  json
// @Param    id         path string true "Order ID"
// @Param    payment_id path string true "Payment ID"
// @Success  200 {object} response.PaymentResponse
// @Failure  404 {object} pkg.HTTPError
// @Router   /orders/{id}/payments/{payment_id} [get]
func (h *PaymentHandler) GetOrderPayment(c *gin.Context) {
	p, err := h.usecase.GetByID(c.Request.Context(), middleware.SessionID(c), c.Param("payment_id"))
	if err == nil && p.OrderID != strings.TrimSpace(c.Param("id")) {
		err = usecase.ErrPaymentNotFound
	}
	if err != nil {
		respondError(c, mapPaymentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPayment(p))
}

func readMPPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["mp_payload"]; ok {
			trimmed := strings.TrimSpace(string(wrapped))
			if trimmed == "" || trimmed == "null" {
				return nil, errors.New("mp_payload cannot be empty")
			}
			return wrapped, nil
		}
	}
	return json.RawMessage(raw), nil
}

func mapPaymentError(err error) *pkg.AppError {
	if appErr := mapCommonError(err); appErr != nil {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderID), errors.Is(err, usecase.ErrInvalidPaymentID), errors.Is(err, usecase.ErrInvalidMPPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this Mercado Pago test context", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved between seller token and payer test user", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainError("PAYMENT_PROVIDER_UNAVAILABLE", "Payment provider not configured", err, http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOrderNotPending):
		return pkg.NewDomainErrorSimple("ORDER_NOT_PENDING", "Order is not pending", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	}
	return internalError(err)
}
