package payments

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
)

func TestNewMercadoPagoGateway(t *testing.T) {
	t.Run("missing token", func(t *testing.T) {
		t.Setenv("PAYMENT_GATEWAY_MOCK", "")
		t.Setenv("MERCADOPAGO_MOCK", "")
		if _, err := NewMercadoPagoGateway(""); !errors.Is(err, ErrMissingMercadoPagoAccessToken) {
			t.Fatalf("expected ErrMissingMercadoPagoAccessToken, got %v", err)
		}
	})

	t.Run("mock mode needs no token", func(t *testing.T) {
		t.Setenv("PAYMENT_GATEWAY_MOCK", "true")
		g, err := NewMercadoPagoGateway("")
		if err != nil || g == nil || !g.mockMode {
			t.Fatalf("expected mock gateway, got %+v err=%v", g, err)
		}
	})
}

func TestMercadoPagoGateway_CreatePayment(t *testing.T) {
	t.Run("nil gateway", func(t *testing.T) {
		var g *MercadoPagoGateway
		_, _, _, err := g.CreatePayment(context.Background(), json.RawMessage(`{}`))
		if !errors.Is(err, ErrMercadoPagoGatewayNotConfigured) {
			t.Fatalf("expected ErrMercadoPagoGatewayNotConfigured, got %v", err)
		}
	})

	t.Run("mock keeps payload fields", func(t *testing.T) {
		g := &MercadoPagoGateway{mockMode: true}
		id, status, raw, err := g.CreatePayment(context.Background(), json.RawMessage(`{"external_reference":"ord-1","transaction_amount":10}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if id == "" || status != "approved" {
			t.Fatalf("unexpected id=%q status=%q", id, status)
		}
		var body map[string]any
		if err := json.Unmarshal(raw, &body); err != nil {
			t.Fatalf("invalid response json: %v", err)
		}
		if body["external_reference"] != "ord-1" || body["status_detail"] != "accredited" {
			t.Fatalf("unexpected body: %s", raw)
		}
	})

	t.Run("mock tolerates invalid payload", func(t *testing.T) {
		g := &MercadoPagoGateway{mockMode: true}
		_, status, _, err := g.CreatePayment(context.Background(), json.RawMessage(`{`))
		if err != nil || status != "approved" {
			t.Fatalf("expected approved, got status=%q err=%v", status, err)
		}
	})
}
