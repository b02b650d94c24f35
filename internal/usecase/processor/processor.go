// Package processor wraps each external payment provider behind a uniform
// create-payment contract. Every processor validates its own preconditions,
// calls its gateway port and maps the provider response into one variant of
// the closed Result set, so exactly one payment payload exists per order.
package processor

import "time"

// Result is the closed set of provider payloads a payment dispatch can yield.
// One variant per payment method; the orchestrator's switch over the method
// enum is the only producer.

type Result interface {
	// ProviderPaymentID is the provider-issued id attached to the order after
	// dispatch. Empty for methods with no provider-side record (WhatsApp).
	ProviderPaymentID() string

	paymentResult()
}

// PixResult carries the instant-payment charge the payer scans or copies.
type PixResult struct {
	ID           string
	QRCode       string
	QRCodeBase64 string
	TicketURL    string
	ExpiresAt    time.Time
}

func (PixResult) paymentResult()              {}
func (r PixResult) ProviderPaymentID() string { return r.ID }

// CheckoutResult carries the hosted-checkout redirect.
type CheckoutResult struct {
	PreferenceID     string
	InitPoint        string
	SandboxInitPoint string
}

func (CheckoutResult) paymentResult()              {}
func (r CheckoutResult) ProviderPaymentID() string { return r.PreferenceID }

// CryptoResult carries the on-chain payment intent. Amount and rate are the
// creation-time lock; confirmation is validated against them, never re-quoted.
type CryptoResult struct {
	PaymentID     string
	WalletAddress string
	Network       string
	CryptoAmount  string
	ExchangeRate  float64
	ExpiresAt     time.Time
}

func (CryptoResult) paymentResult()              {}
func (r CryptoResult) ProviderPaymentID() string { return r.PaymentID }

// SponsorshipResult carries the GitHub Sponsors redirect. Confirmation arrives
// later through the sponsor platform's webhook.
type SponsorshipResult struct {
	SponsorshipURL string
}

func (SponsorshipResult) paymentResult()            {}
func (SponsorshipResult) ProviderPaymentID() string { return "" }

// WhatsAppResult carries the manual-handoff deep link. No provider record
// exists; the order stays pending_payment until manually reconciled.
type WhatsAppResult struct {
	DeepLink string
}

func (WhatsAppResult) paymentResult()            {}
func (WhatsAppResult) ProviderPaymentID() string { return "" }
