package response

import (
	"auto_accessories/internal/domain/entities"
	"time"
)

type PaymentResponse struct {
	ID      string    `json:"id"`
	OrderID string    `json:"order_id"`
	Amount  float64   `json:"amount"`
	Date    time.Time `json:"date"`
	Status  string    `json:"status"`

	MPPayloadRaw string                 `json:"mp_payload_raw,omitempty"`
	MPPayload    map[string]interface{} `json:"mp_payload,omitempty"`
}

func FromPayment(p entities.Payment) PaymentResponse {
	return PaymentResponse{
		ID:           p.ID,
		OrderID:      p.OrderID,
		Amount:       p.Amount,
		Date:         p.Date,
		Status:       string(p.Status),
		MPPayloadRaw: string(p.MPPayloadRaw),
		MPPayload:    p.MPPayload,
	}
}

func FromPayments(ps []entities.Payment) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromPayment(p))
	}
	return out
}
