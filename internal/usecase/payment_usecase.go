package usecase

import (
	"auto_accessories/internal/domain/entities"
	"auto_accessories/internal/usecase/interfaces"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"
)

var (
	ErrPaymentNotFound                = errors.New("payment not found")
	ErrInvalidPaymentID               = errors.New("invalid payment id")
	ErrInvalidMPPayload               = errors.New("invalid mercado pago payload")
	ErrPaymentGatewayNotConfigured    = errors.New("payment gateway not configured")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

// IPaymentUseCase charges a pending order through the payment gateway.
//
// The charged amount always comes from the stored order total; a successful
// charge marks the order paid.
type IPaymentUseCase interface {
	CreateAndApprove(ctx context.Context, sessionID, orderID string, mpPayload json.RawMessage) (entities.Payment, error)
	GetByID(ctx context.Context, sessionID, id string) (entities.Payment, error)
	ListByOrderID(ctx context.Context, sessionID, orderID string) ([]entities.Payment, error)
}

type PaymentUseCase struct {
	repo      interfaces.IPaymentRepository
	orderRepo interfaces.IOrderRepository
	gateway   interfaces.IPaymentGateway
	mockMode  bool
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(repo interfaces.IPaymentRepository, orderRepo interfaces.IOrderRepository, gateway interfaces.IPaymentGateway) *PaymentUseCase {
	return &PaymentUseCase{repo: repo, orderRepo: orderRepo, gateway: gateway, mockMode: PaymentGatewayMockEnabled()}
}

func (u *PaymentUseCase) CreateAndApprove(ctx context.Context, sessionID, orderID string, mpPayload json.RawMessage) (entities.Payment, error) {
	orderID = strings.TrimSpace(orderID)
	log := zap.L().With(zap.String("order_id", orderID), zap.Bool("mock_mode", u.mockMode))
	log.Info("payment.create start", zap.Int("payload_len", len(mpPayload)))

	if orderID == "" {
		return entities.Payment{}, ErrInvalidOrderID
	}
	if len(mpPayload) == 0 || !json.Valid(mpPayload) {
		if !u.mockMode {
			log.Warn("payment.create invalid payload")
			return entities.Payment{}, ErrInvalidMPPayload
		}
		mpPayload = json.RawMessage("{}")
	}
	if u.gateway == nil {
		return entities.Payment{}, ErrPaymentGatewayNotConfigured
	}

	order, err := loadOrder(ctx, u.orderRepo, orderID)
	if err != nil {
		log.Warn("payment.create order lookup failed", zap.Error(err))
		return entities.Payment{}, err
	}
	if sid := strings.TrimSpace(sessionID); sid != "" && order.SessionID != sid {
		return entities.Payment{}, ErrOrderNotFound
	}
	if order.Status != entities.OrderStatusPending {
		log.Warn("payment.create order not pending", zap.String("status", string(order.Status)))
		return entities.Payment{}, ErrOrderNotPending
	}

	var reqMap map[string]any
	if err := json.Unmarshal(mpPayload, &reqMap); err != nil || reqMap == nil {
		if !u.mockMode {
			return entities.Payment{}, ErrInvalidMPPayload
		}
		reqMap = map[string]any{}
	}
	if !u.mockMode {
		if !hasNonEmptyString(reqMap, "payment_method_id") {
			log.Warn("payment.create missing payment_method_id")
			return entities.Payment{}, ErrInvalidMPPayload
		}
		ensurePayerDefaults(reqMap)
		if !hasPayer(reqMap) {
			log.Warn("payment.create missing payer")
			return entities.Payment{}, ErrInvalidMPPayload
		}
	}
	if err := u.checkNotCharged(ctx, order.ID); err != nil {
		return entities.Payment{}, err
	}
	if !hasNonEmptyString(reqMap, "external_reference") {
		reqMap["external_reference"] = order.ID
	}
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = fmt.Sprintf("Order %s", order.ID)
	}
	reqMap["transaction_amount"] = order.Total
	payload, err := json.Marshal(reqMap)
	if err != nil {
		return entities.Payment{}, err
	}

	providerPaymentID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, payload)
	if err != nil {
		log.Error("payment.create gateway failed", zap.Error(err))
		return entities.Payment{}, classifyGatewayError(err)
	}
	log.Info("payment.create gateway success",
		zap.String("provider_payment_id", providerPaymentID),
		zap.String("provider_status", providerStatus),
	)

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		log.Warn("payment.create provider response unmarshal failed", zap.Error(err))
	}

	p := entities.Payment{
		ID:           providerPaymentID,
		OrderID:      order.ID,
		Amount:       order.Total,
		Date:         time.Now().UTC(),
		Status:       entities.PaymentStatusApproved,
		MPPayloadRaw: providerResp,
		MPPayload:    parsed,
	}
	created, err := u.repo.Create(ctx, p)
	if err != nil {
		log.Error("payment.create repository failed", zap.String("payment_id", p.ID), zap.Error(err))
		return entities.Payment{}, err
	}

	if _, err := u.orderRepo.UpdateStatusByID(ctx, order.ID, entities.OrderStatusPaid); err != nil {
		// The order stays pending; checkNotCharged blocks a second charge on retry.
		log.Error("payment.create charged order left pending",
			zap.String("payment_id", created.ID),
			zap.Error(err),
		)
		return entities.Payment{}, err
	}
	log.Info("payment.create success", zap.String("payment_id", created.ID), zap.Float64("amount", created.Amount))
	return created, nil
}

// checkNotCharged rejects an order that already has an approved payment and
// repairs its status.
func (u *PaymentUseCase) checkNotCharged(ctx context.Context, orderID string) error {
	payments, err := u.repo.ListByOrderID(ctx, orderID)
	if err != nil {
		return err
	}
	for _, p := range payments {
		if p.Status != entities.PaymentStatusApproved {
			continue
		}
		log := zap.L().With(zap.String("order_id", orderID), zap.String("payment_id", p.ID))
		log.Warn("payment.create order already charged")
		if _, err := u.orderRepo.UpdateStatusByID(ctx, orderID, entities.OrderStatusPaid); err != nil {
			log.Error("payment.create mark order paid failed", zap.Error(err))
		}
		return ErrOrderNotPending
	}
	return nil
}

// GetByID hides payments of orders owned by another session.
func (u *PaymentUseCase) GetByID(ctx context.Context, sessionID, id string) (entities.Payment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Payment{}, ErrInvalidPaymentID
	}
	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Payment{}, err
	}
	if p.ID == "" {
		return entities.Payment{}, ErrPaymentNotFound
	}
	if sid := strings.TrimSpace(sessionID); sid != "" {
		order, err := u.orderRepo.GetByID(ctx, p.OrderID)
		if err != nil {
			return entities.Payment{}, err
		}
		if order.SessionID != sid {
			return entities.Payment{}, ErrPaymentNotFound
		}
	}
	return p, nil
}

// ListByOrderID returns the payments of an order owned by the session.
func (u *PaymentUseCase) ListByOrderID(ctx context.Context, sessionID, orderID string) ([]entities.Payment, error) {
	order, err := loadOrder(ctx, u.orderRepo, orderID)
	if err != nil {
		return nil, err
	}
	if sid := strings.TrimSpace(sessionID); sid != "" && order.SessionID != sid {
		return nil, ErrOrderNotFound
	}
	return u.repo.ListByOrderID(ctx, order.ID)
}

// PaymentGatewayMockEnabled reports whether payments skip the provider checks.
func PaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}

func classifyGatewayError(err error) error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "customer not found") || strings.Contains(msg, "\"code\":2002"):
		return ErrPaymentGatewayCustomerNotFound
	case strings.Contains(msg, "invalid users involved") || strings.Contains(msg, "\"code\":2034"):
		return ErrPaymentGatewayInvalidUsers
	case strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401"):
		return ErrPaymentGatewayUnauthorized
	case strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400"):
		return ErrPaymentGatewayBadRequest
	}
	return err
}

func hasNonEmptyString(m map[string]any, key string) bool {
	s, ok := m[key].(string)
	return ok && strings.TrimSpace(s) != ""
}

func hasPayer(m map[string]any) bool {
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		return false
	}
	return hasNonEmptyString(payer, "email") || hasPayerID(payer)
}

func hasPayerID(payer map[string]any) bool {
	v, ok := payer["id"]
	if !ok || v == nil {
		return false
	}
	s := strings.TrimSpace(fmt.Sprintf("%v", v))
	return s != "" && s != "<nil>"
}

// ensurePayerDefaults fills the sandbox payer email when the request names no payer.
func ensurePayerDefaults(m map[string]any) {
	if m["payer"] == nil {
		m["payer"] = map[string]any{}
	}
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		return
	}
	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}
	if hasPayerID(payer) || hasNonEmptyString(payer, "email") {
		return
	}
	if email := strings.TrimSpace(os.Getenv("MERCADOPAGO_TEST_PAYER_EMAIL")); email != "" {
		payer["email"] = email
	} else if strings.HasPrefix(strings.TrimSpace(os.Getenv("MERCADOPAGO_ACCESS_TOKEN")), "TEST-") {
		payer["email"] = "test_user_br@testuser.com"
	}
}
