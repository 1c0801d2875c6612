package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"auto_accessories/internal/domain/entities"
	mock_interfaces "auto_accessories/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func newTestPaymentUseCase(t *testing.T, ctrl *gomock.Controller) (*PaymentUseCase, *mock_interfaces.MockIPaymentRepository, *mock_interfaces.MockIOrderRepository, *mock_interfaces.MockIPaymentGateway) {
	t.Helper()
	t.Setenv("PAYMENT_GATEWAY_MOCK", "")
	t.Setenv("MERCADOPAGO_MOCK", "")
	repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
	orderRepo := mock_interfaces.NewMockIOrderRepository(ctrl)
	gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
	return NewPaymentUseCase(repo, orderRepo, gateway), repo, orderRepo, gateway
}

func pendingOrder() entities.Order {
	return entities.Order{ID: "ord-1", SessionID: "s1", Total: 1598, Status: entities.OrderStatusPending}
}

func TestPaymentUseCase_CreateAndApprove_Validations(t *testing.T) {
	t.Run("empty order id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc, _, _, _ := newTestPaymentUseCase(t, ctrl)
		_, err := uc.CreateAndApprove(context.Background(), "s1", " ", json.RawMessage(`{}`))
		if !errors.Is(err, ErrInvalidOrderID) {
			t.Fatalf("expected ErrInvalidOrderID, got %v", err)
		}
	})

	t.Run("empty payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc, _, _, _ := newTestPaymentUseCase(t, ctrl)
		_, err := uc.CreateAndApprove(context.Background(), "s1", "ord-1", nil)
		if !errors.Is(err, ErrInvalidMPPayload) {
			t.Fatalf("expected ErrInvalidMPPayload, got %v", err)
		}
	})

	t.Run("invalid json payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc, _, _, _ := newTestPaymentUseCase(t, ctrl)
		_, err := uc.CreateAndApprove(context.Background(), "s1", "ord-1", json.RawMessage(`{`))
		if !errors.Is(err, ErrInvalidMPPayload) {
			t.Fatalf("expected ErrInvalidMPPayload, got %v", err)
		}
	})

	t.Run("gateway not configured", func(t *testing.T) {
		t.Setenv("PAYMENT_GATEWAY_MOCK", "")
		uc := NewPaymentUseCase(nil, nil, nil)
		_, err := uc.CreateAndApprove(context.Background(), "s1", "ord-1", json.RawMessage(`{"payment_method_id":"pix"}`))
		if !errors.Is(err, ErrPaymentGatewayNotConfigured) {
			t.Fatalf("expected ErrPaymentGatewayNotConfigured, got %v", err)
		}
	})

	t.Run("missing payment_method_id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc, _, orderRepo, _ := newTestPaymentUseCase(t, ctrl)
		orderRepo.EXPECT().GetByID(gomock.Any(), "ord-1").Return(pendingOrder(), nil)

		_, err := uc.CreateAndApprove(context.Background(), "s1", "ord-1", json.RawMessage(`{"payer":{"email":"x@test.com"}}`))
		if !errors.Is(err, ErrInvalidMPPayload) {
			t.Fatalf("expected ErrInvalidMPPayload, got %v", err)
		}
	})

	t.Run("missing payer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc, _, orderRepo, _ := newTestPaymentUseCase(t, ctrl)
		t.Setenv("MERCADOPAGO_ACCESS_TOKEN", "")
		t.Setenv("MERCADOPAGO_TEST_PAYER_EMAIL", "")
		orderRepo.EXPECT().GetByID(gomock.Any(), "ord-1").Return(pendingOrder(), nil)

		_, err := uc.CreateAndApprove(context.Background(), "s1", "ord-1", json.RawMessage(`{"payment_method_id":"pix"}`))
		if !errors.Is(err, ErrInvalidMPPayload) {
			t.Fatalf("expected ErrInvalidMPPayload, got %v", err)
		}
	})
}

func TestPaymentUseCase_CreateAndApprove_OrderChecks(t *testing.T) {
	payload := json.RawMessage(`{"payment_method_id":"pix","payer":{"email":"x@test.com"}}`)

	t.Run("order repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc, _, orderRepo, _ := newTestPaymentUseCase(t, ctrl)
		orderRepo.EXPECT().GetByID(gomock.Any(), "ord-1").Return(entities.Order{}, errors.New("db"))

		_, err := uc.CreateAndApprove(context.Background(), "s1", "ord-1", payload)
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("order not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc, _, orderRepo, _ := newTestPaymentUseCase(t, ctrl)
		orderRepo.EXPECT().GetByID(gomock.Any(), "ord-1").Return(entities.Order{}, nil)

		_, err := uc.CreateAndApprove(context.Background(), "s1", "ord-1", payload)
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("order of another session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc, _, orderRepo, _ := newTestPaymentUseCase(t, ctrl)
		orderRepo.EXPECT().GetByID(gomock.Any(), "ord-1").Return(pendingOrder(), nil)

		_, err := uc.CreateAndApprove(context.Background(), "other", "ord-1", payload)
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("order already paid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc, _, orderRepo, _ := newTestPaymentUseCase(t, ctrl)
		paid := pendingOrder()
		paid.Status = entities.OrderStatusPaid
		orderRepo.EXPECT().GetByID(gomock.Any(), "ord-1").Return(paid, nil)

		_, err := uc.CreateAndApprove(context.Background(), "s1", "ord-1", payload)
		if !errors.Is(err, ErrOrderNotPending) {
			t.Fatalf("expected ErrOrderNotPending, got %v", err)
		}
	})
}

func TestPaymentUseCase_CreateAndApprove_GatewayErrorMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want error
	}{
		{name: "customer not found", err: errors.New(`{"code":2002}`), want: ErrPaymentGatewayCustomerNotFound},
		{name: "invalid users", err: errors.New(`invalid users involved`), want: ErrPaymentGatewayInvalidUsers},
		{name: "unauthorized", err: errors.New(`{"error":"unauthorized"}`), want: ErrPaymentGatewayUnauthorized},
		{name: "bad request", err: errors.New(`{"status":400}`), want: ErrPaymentGatewayBadRequest},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			uc, repo, orderRepo, gateway := newTestPaymentUseCase(t, ctrl)
			orderRepo.EXPECT().GetByID(gomock.Any(), "ord-1").Return(pendingOrder(), nil)
			repo.EXPECT().ListByOrderID(gomock.Any(), "ord-1").Return(nil, nil)
			gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("", "", nil, tc.err)

			_, err := uc.CreateAndApprove(context.Background(), "s1", "ord-1", json.RawMessage(`{"payment_method_id":"pix","payer":{"email":"x@test.com"}}`))
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}

	t.Run("unknown gateway error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc, repo, orderRepo, gateway := newTestPaymentUseCase(t, ctrl)
		orderRepo.EXPECT().GetByID(gomock.Any(), "ord-1").Return(pendingOrder(), nil)
		repo.EXPECT().ListByOrderID(gomock.Any(), "ord-1").Return(nil, nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("", "", nil, errors.New("boom"))

		_, err := uc.CreateAndApprove(context.Background(), "s1", "ord-1", json.RawMessage(`{"payment_method_id":"pix","payer":{"email":"x@test.com"}}`))
		if err == nil || err.Error() != "boom" {
			t.Fatalf("expected boom, got %v", err)
		}
	})
}

func TestPaymentUseCase_CreateAndApprove_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc, repo, orderRepo, gateway := newTestPaymentUseCase(t, ctrl)
	t.Setenv("MERCADOPAGO_ACCESS_TOKEN", "TEST-token")
	t.Setenv("MERCADOPAGO_TEST_PAYER_EMAIL", "sandbox@test.com")

	orderRepo.EXPECT().GetByID(gomock.Any(), "ord-1").Return(pendingOrder(), nil)
	repo.EXPECT().ListByOrderID(gomock.Any(), "ord-1").Return(nil, nil)
	gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, payload json.RawMessage) (string, string, json.RawMessage, error) {
			var body map[string]any
			if err := json.Unmarshal(payload, &body); err != nil {
				t.Fatalf("payload should be valid json: %v", err)
			}
			if body["external_reference"] != "ord-1" {
				t.Fatalf("external_reference not set")
			}
			if body["description"] != "Order ord-1" {
				t.Fatalf("description not set")
			}
			if body["transaction_amount"] != float64(1598) {
				t.Fatalf("transaction_amount should come from the order, got %v", body["transaction_amount"])
			}
			payer := body["payer"].(map[string]any)
			if payer["email"] != "sandbox@test.com" {
				t.Fatalf("expected payer email fallback, got %v", payer["email"])
			}
			return "pay-1", "approved", json.RawMessage(`{"id":123}`), nil
		},
	)
	repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Payment{})).DoAndReturn(
		func(_ context.Context, p entities.Payment) (entities.Payment, error) {
			if p.ID != "pay-1" || p.OrderID != "ord-1" || p.Amount != 1598 || p.Status != entities.PaymentStatusApproved {
				t.Fatalf("unexpected payment: %+v", p)
			}
			if p.Date.IsZero() {
				t.Fatalf("date must be set")
			}
			return p, nil
		},
	)
	orderRepo.EXPECT().UpdateStatusByID(gomock.Any(), "ord-1", entities.OrderStatusPaid).Return(entities.Order{ID: "ord-1", Status: entities.OrderStatusPaid}, nil)

	// The client-supplied amount is ignored.
	res, err := uc.CreateAndApprove(context.Background(), "s1", "ord-1", json.RawMessage(`{"payment_method_id":"pix","transaction_amount":1}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Status != entities.PaymentStatusApproved || res.MPPayload["id"] != float64(123) {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestPaymentUseCase_CreateAndApprove_MockMode(t *testing.T) {
	ctrl := gomock.NewController(t)
	t.Setenv("PAYMENT_GATEWAY_MOCK", "true")
	repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
	orderRepo := mock_interfaces.NewMockIOrderRepository(ctrl)
	gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
	uc := NewPaymentUseCase(repo, orderRepo, gateway)

	orderRepo.EXPECT().GetByID(gomock.Any(), "ord-1").Return(pendingOrder(), nil)
	repo.EXPECT().ListByOrderID(gomock.Any(), "ord-1").Return(nil, nil)
	gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("mock-1", "approved", json.RawMessage(`{}`), nil)
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p entities.Payment) (entities.Payment, error) { return p, nil })
	orderRepo.EXPECT().UpdateStatusByID(gomock.Any(), "ord-1", entities.OrderStatusPaid).Return(entities.Order{ID: "ord-1"}, nil)

	// Mock mode tolerates a body that is not JSON.
	res, err := uc.CreateAndApprove(context.Background(), "s1", "ord-1", json.RawMessage(`not-json`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.ID != "mock-1" {
		t.Fatalf("unexpected payment id %q", res.ID)
	}
}

func TestPaymentUseCase_CreateAndApprove_PersistenceErrors(t *testing.T) {
	payload := json.RawMessage(`{"payment_method_id":"pix","payer":{"email":"x@test.com"}}`)

	t.Run("repository create error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc, repo, orderRepo, gateway := newTestPaymentUseCase(t, ctrl)
		orderRepo.EXPECT().GetByID(gomock.Any(), "ord-1").Return(pendingOrder(), nil)
		repo.EXPECT().ListByOrderID(gomock.Any(), "ord-1").Return(nil, nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("pay-1", "approved", json.RawMessage(`{"id":123}`), nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Payment{}, errors.New("db-create"))

		_, err := uc.CreateAndApprove(context.Background(), "s1", "ord-1", payload)
		if err == nil || err.Error() != "db-create" {
			t.Fatalf("expected db-create error, got %v", err)
		}
	})

	t.Run("mark order paid error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc, repo, orderRepo, gateway := newTestPaymentUseCase(t, ctrl)
		orderRepo.EXPECT().GetByID(gomock.Any(), "ord-1").Return(pendingOrder(), nil)
		repo.EXPECT().ListByOrderID(gomock.Any(), "ord-1").Return(nil, nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("pay-1", "approved", json.RawMessage(`{"id":123}`), nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p entities.Payment) (entities.Payment, error) { return p, nil })
		orderRepo.EXPECT().UpdateStatusByID(gomock.Any(), "ord-1", entities.OrderStatusPaid).Return(entities.Order{}, errors.New("db-update"))

		_, err := uc.CreateAndApprove(context.Background(), "s1", "ord-1", payload)
		if err == nil || err.Error() != "db-update" {
			t.Fatalf("expected db-update error, got %v", err)
		}
	})
}

func TestPaymentUseCase_CreateAndApprove_AlreadyCharged(t *testing.T) {
	payload := json.RawMessage(`{"payment_method_id":"pix","payer":{"email":"x@test.com"}}`)

	t.Run("approved payment blocks a second charge", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc, repo, orderRepo, _ := newTestPaymentUseCase(t, ctrl)
		orderRepo.EXPECT().GetByID(gomock.Any(), "ord-1").Return(pendingOrder(), nil)
		repo.EXPECT().ListByOrderID(gomock.Any(), "ord-1").Return([]entities.Payment{
			{ID: "pay-1", OrderID: "ord-1", Status: entities.PaymentStatusApproved},
		}, nil)
		orderRepo.EXPECT().UpdateStatusByID(gomock.Any(), "ord-1", entities.OrderStatusPaid).Return(entities.Order{ID: "ord-1", Status: entities.OrderStatusPaid}, nil)

		_, err := uc.CreateAndApprove(context.Background(), "s1", "ord-1", payload)
		if !errors.Is(err, ErrOrderNotPending) {
			t.Fatalf("expected ErrOrderNotPending, got %v", err)
		}
	})

	t.Run("retry after a failed status update", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc, repo, orderRepo, gateway := newTestPaymentUseCase(t, ctrl)
		var stored []entities.Payment

		orderRepo.EXPECT().GetByID(gomock.Any(), "ord-1").Return(pendingOrder(), nil).Times(2)
		repo.EXPECT().ListByOrderID(gomock.Any(), "ord-1").DoAndReturn(
			func(_ context.Context, _ string) ([]entities.Payment, error) { return stored, nil },
		).Times(2)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("pay-1", "approved", json.RawMessage(`{}`), nil).Times(1)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p entities.Payment) (entities.Payment, error) {
			stored = append(stored, p)
			return p, nil
		})
		orderRepo.EXPECT().UpdateStatusByID(gomock.Any(), "ord-1", entities.OrderStatusPaid).Return(entities.Order{}, errors.New("db-update"))
		orderRepo.EXPECT().UpdateStatusByID(gomock.Any(), "ord-1", entities.OrderStatusPaid).Return(entities.Order{ID: "ord-1", Status: entities.OrderStatusPaid}, nil)

		if _, err := uc.CreateAndApprove(context.Background(), "s1", "ord-1", payload); err == nil {
			t.Fatalf("expected the status update error")
		}
		_, err := uc.CreateAndApprove(context.Background(), "s1", "ord-1", payload)
		if !errors.Is(err, ErrOrderNotPending) {
			t.Fatalf("expected ErrOrderNotPending on retry, got %v", err)
		}
	})

	t.Run("payment lookup error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc, repo, orderRepo, _ := newTestPaymentUseCase(t, ctrl)
		orderRepo.EXPECT().GetByID(gomock.Any(), "ord-1").Return(pendingOrder(), nil)
		repo.EXPECT().ListByOrderID(gomock.Any(), "ord-1").Return(nil, errors.New("db-list"))

		_, err := uc.CreateAndApprove(context.Background(), "s1", "ord-1", payload)
		if err == nil || err.Error() != "db-list" {
			t.Fatalf("expected db-list error, got %v", err)
		}
	})
}

func TestPaymentUseCase_Getters(t *testing.T) {
	t.Run("GetByID invalid", func(t *testing.T) {
		uc := NewPaymentUseCase(nil, nil, nil)
		_, err := uc.GetByID(context.Background(), "s1", "")
		if !errors.Is(err, ErrInvalidPaymentID) {
			t.Fatalf("expected ErrInvalidPaymentID, got %v", err)
		}
	})

	t.Run("GetByID not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc, repo, _, _ := newTestPaymentUseCase(t, ctrl)
		repo.EXPECT().GetByID(gomock.Any(), "id-1").Return(entities.Payment{}, nil)

		_, err := uc.GetByID(context.Background(), "s1", "id-1")
		if !errors.Is(err, ErrPaymentNotFound) {
			t.Fatalf("expected ErrPaymentNotFound, got %v", err)
		}
	})

	t.Run("GetByID other session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc, repo, orderRepo, _ := newTestPaymentUseCase(t, ctrl)
		repo.EXPECT().GetByID(gomock.Any(), "id-1").Return(entities.Payment{ID: "id-1", OrderID: "ord-1"}, nil)
		orderRepo.EXPECT().GetByID(gomock.Any(), "ord-1").Return(pendingOrder(), nil)

		_, err := uc.GetByID(context.Background(), "s2", "id-1")
		if !errors.Is(err, ErrPaymentNotFound) {
			t.Fatalf("expected ErrPaymentNotFound, got %v", err)
		}
	})

	t.Run("GetByID success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc, repo, orderRepo, _ := newTestPaymentUseCase(t, ctrl)
		repo.EXPECT().GetByID(gomock.Any(), "id-1").Return(entities.Payment{ID: "id-1", OrderID: "ord-1"}, nil)
		orderRepo.EXPECT().GetByID(gomock.Any(), "ord-1").Return(pendingOrder(), nil)

		p, err := uc.GetByID(context.Background(), "s1", "id-1")
		if err != nil || p.ID != "id-1" {
			t.Fatalf("unexpected result: %+v err=%v", p, err)
		}
	})

	t.Run("ListByOrderID invalid", func(t *testing.T) {
		uc := NewPaymentUseCase(nil, nil, nil)
		_, err := uc.ListByOrderID(context.Background(), "s1", " ")
		if !errors.Is(err, ErrInvalidOrderID) {
			t.Fatalf("expected ErrInvalidOrderID, got %v", err)
		}
	})

	t.Run("ListByOrderID success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc, repo, orderRepo, _ := newTestPaymentUseCase(t, ctrl)
		orderRepo.EXPECT().GetByID(gomock.Any(), "ord-1").Return(pendingOrder(), nil)
		repo.EXPECT().ListByOrderID(gomock.Any(), "ord-1").Return([]entities.Payment{{ID: "a"}}, nil)

		list, err := uc.ListByOrderID(context.Background(), "s1", "ord-1")
		if err != nil || len(list) != 1 {
			t.Fatalf("unexpected result: %+v err=%v", list, err)
		}
	})
}
