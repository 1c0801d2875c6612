package request

import "encoding/json"

// PaymentCreateRequest is the payload for the order payment route.
//
// `mp_payload` is forwarded as raw JSON to support varying Mercado Pago schemas;
// a bare Mercado Pago body is accepted as well.
type PaymentCreateRequest struct {
	MPPayload json.RawMessage `json:"mp_payload"`
}
