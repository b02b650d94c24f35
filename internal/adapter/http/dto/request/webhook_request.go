package request

import "strings"

// PaymentWebhookRequest accepts provider payment notifications. Flat fields
// cover the internal format; the nested data block covers Mercado Pago's
// native notification shape ({"action": "...", "data": {"id": "..."}}).
type PaymentWebhookRequest struct {
	ExternalReference string `json:"external_reference"`
	Status            string `json:"status"`
	PaymentID         string `json:"payment_id"`
	Action            string `json:"action"`
	Data              struct {
		ID string `json:"id"`
	} `json:"data"`
}

func (r PaymentWebhookRequest) ResolveReference() string {
	return strings.TrimSpace(r.ExternalReference)
}

func (r PaymentWebhookRequest) ResolvePaymentID() string {
	if v := strings.TrimSpace(r.PaymentID); v != "" {
		return v
	}
	return strings.TrimSpace(r.Data.ID)
}

// PollCryptoRequest triggers a blockchain confirmation check for an order's
// on-chain payment.
type PollCryptoRequest struct {
	PaymentID string `json:"payment_id" binding:"required"`
}
