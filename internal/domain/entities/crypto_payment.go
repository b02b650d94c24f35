package entities

import "time"

// CryptoType enumerates the on-chain payment options offered at checkout.

type CryptoType string

const (
	CryptoTypeBitcoin CryptoType = "bitcoin"
	CryptoTypeUSDT    CryptoType = "usdt"
)

// CryptoPaymentStatus follows the provider's confirmation vocabulary.

type CryptoPaymentStatus string

const (
	CryptoPaymentStatusPending         CryptoPaymentStatus = "pending"
	CryptoPaymentStatusAwaitingPayment CryptoPaymentStatus = "awaiting_payment"
	CryptoPaymentStatusConfirming      CryptoPaymentStatus = "confirming"
	CryptoPaymentStatusConfirmed       CryptoPaymentStatus = "confirmed"
	CryptoPaymentStatusExpired         CryptoPaymentStatus = "expired"
	CryptoPaymentStatusFailed          CryptoPaymentStatus = "failed"
)

// CryptoPayment is the provider-shaped payment record for on-chain methods.
// It is owned by the crypto gateway, not by the Order aggregate; the order only
// keeps the provider payment id.
//
// ExchangeRate and CryptoAmount are locked at creation time: confirmation is
// always validated against this snapshot, never against a re-fetched rate.
// CryptoAmount is the provider's decimal string (8 places); Money stays integer.

type CryptoPayment struct {
	PaymentID             string              `json:"payment_id"`
	OrderID               string              `json:"order_id"`
	Crypto                CryptoType          `json:"crypto_type"`
	Network               string              `json:"network"`
	WalletAddress         string              `json:"wallet_address"`
	CryptoAmount          string              `json:"crypto_amount"`
	FiatAmount            Money               `json:"fiat_amount"`
	ExchangeRate          float64             `json:"exchange_rate"`
	Confirmations         int                 `json:"confirmations"`
	RequiredConfirmations int                 `json:"required_confirmations"`
	Status                CryptoPaymentStatus `json:"status"`
	ExpiresAt             time.Time           `json:"expires_at"`
	CreatedAt             time.Time           `json:"created_at"`
}

// IsConfirmed reports whether the chain reached the required depth.
func (p CryptoPayment) IsConfirmed() bool {
	return p.Status == CryptoPaymentStatusConfirmed ||
		(p.RequiredConfirmations > 0 && p.Confirmations >= p.RequiredConfirmations)
}
