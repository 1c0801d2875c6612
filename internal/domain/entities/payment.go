package entities

import (
	"encoding/json"
	"time"
)

// PaymentStatus represents the payment processing outcome.
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusApproved PaymentStatus = "approved"
	PaymentStatusDenied   PaymentStatus = "denied"
)

// Payment is the order payment persisted after the gateway call.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (order_id-index): order_id
//
// MPPayloadRaw keeps the provider response body as received; MPPayload is its
// parsed form for querying.
type Payment struct {
	ID      string        `json:"id"`
	OrderID string        `json:"order_id"`
	Amount  float64       `json:"amount"`
	Date    time.Time     `json:"date"`
	Status  PaymentStatus `json:"status"`

	MPPayloadRaw json.RawMessage        `json:"mp_payload_raw,omitempty"`
	MPPayload    map[string]interface{} `json:"mp_payload,omitempty"`
}
