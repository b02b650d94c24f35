package interfaces

import (
	"context"
	"time"

	"trilha_vertical/internal/domain/entities"
)

// Payment gateway ports. Each wraps one external provider; the processors in
// internal/usecase/processor are the only callers.

// CheckoutPreference is the hosted-checkout redirect created at the provider.
type CheckoutPreference struct {
	ID               string
	InitPoint        string
	SandboxInitPoint string
}

type CheckoutItem struct {
	Title     string
	UnitPrice entities.Money
	Quantity  int
}

type CheckoutPayer struct {
	Name  string
	Email string
}

// ICheckoutGateway abstracts the Mercado Pago hosted checkout (preferences).
type ICheckoutGateway interface {
	CreatePreference(ctx context.Context, items []CheckoutItem, payer CheckoutPayer, externalReference string, metadata map[string]any) (CheckoutPreference, error)
	GetPreference(ctx context.Context, id string) (CheckoutPreference, error)
	GetPayment(ctx context.Context, id string) (providerStatus string, err error)
}

// PixCharge is the instant-payment charge returned by the PIX provider.
type PixCharge struct {
	ID           string
	QRCode       string
	QRCodeBase64 string
	TicketURL    string
}

// IPixGateway abstracts the PIX instant-payment provider.
type IPixGateway interface {
	CreateCharge(ctx context.Context, amount entities.Money, payerName, payerEmail, description, externalReference string) (PixCharge, error)
}

// CryptoQuote is the provider's creation-time snapshot: address, locked amount
// and locked exchange rate.
type CryptoQuote struct {
	PaymentID     string
	WalletAddress string
	Network       string
	CryptoAmount  string
	ExchangeRate  float64
	ExpiresAt     time.Time
}

// ICryptoGateway abstracts the on-chain payment provider.
//
// CheckPaymentStatus is polled by reconciliation only; the quote returned by
// CreatePayment is locked for the full payment window.
type ICryptoGateway interface {
	CreatePayment(ctx context.Context, orderID string, crypto entities.CryptoType, fiatAmount entities.Money) (CryptoQuote, error)
	GetExchangeRate(ctx context.Context, crypto entities.CryptoType) (float64, error)
	CheckPaymentStatus(ctx context.Context, paymentID string) (entities.CryptoPayment, error)
}

// ISponsorshipGateway abstracts the GitHub Sponsors handoff.
type ISponsorshipGateway interface {
	CreatePayment(ctx context.Context, orderID string, amount entities.Money, sponsorUsername, frequency string, metadata map[string]string) (sponsorshipURL string, err error)
}
