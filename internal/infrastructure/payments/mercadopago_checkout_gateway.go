package payments

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"trilha_vertical/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/mercadopago/sdk-go/pkg/preference"
)

var (
	ErrMissingMercadoPagoAccessToken   = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
	ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")
)

// MercadoPagoCheckoutGateway creates hosted-checkout preferences and reads
// payment status back from Mercado Pago.
//
// Mock mode (PAYMENT_GATEWAY_MOCK / MERCADOPAGO_MOCK) short-circuits every
// call with deterministic local responses so the storefront runs without
// provider credentials.

type MercadoPagoCheckoutGateway struct {
	preferences     preference.Client
	payments        payment.Client
	notificationURL string
	mockMode        bool
}

var _ interfaces.ICheckoutGateway = (*MercadoPagoCheckoutGateway)(nil)

func NewMercadoPagoCheckoutGateway(accessToken string) (*MercadoPagoCheckoutGateway, error) {
	notificationURL := os.Getenv("PAYMENT_NOTIFICATION_URL")

	if isPaymentGatewayMockEnabled() {
		log.Printf("[payment][checkout] mock mode enabled")
		return &MercadoPagoCheckoutGateway{mockMode: true, notificationURL: notificationURL}, nil
	}

	if accessToken == "" {
		log.Printf("[payment][checkout] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[payment][checkout] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[payment][checkout] Mercado Pago client initialized")

	return &MercadoPagoCheckoutGateway{
		preferences:     preference.NewClient(cfg),
		payments:        payment.NewClient(cfg),
		notificationURL: notificationURL,
	}, nil
}

func (g *MercadoPagoCheckoutGateway) CreatePreference(ctx context.Context, items []interfaces.CheckoutItem, payer interfaces.CheckoutPayer, externalReference string, metadata map[string]any) (interfaces.CheckoutPreference, error) {
	if g != nil && g.mockMode {
		id := "mock-pref-" + strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
		log.Printf("[payment][checkout] mock preference created id=%s external_reference=%s", id, externalReference)
		return interfaces.CheckoutPreference{
			ID:               id,
			InitPoint:        "https://sandbox.mercadopago.com.br/checkout/v1/redirect?pref_id=" + id,
			SandboxInitPoint: "https://sandbox.mercadopago.com.br/checkout/v1/redirect?pref_id=" + id,
		}, nil
	}
	if g == nil || g.preferences == nil {
		return interfaces.CheckoutPreference{}, ErrMercadoPagoGatewayNotConfigured
	}

	reqItems := make([]preference.ItemRequest, 0, len(items))
	for _, it := range items {
		reqItems = append(reqItems, preference.ItemRequest{
			Title:      it.Title,
			Quantity:   it.Quantity,
			UnitPrice:  it.UnitPrice.Float64(),
			CurrencyID: string(it.UnitPrice.Currency),
		})
	}

	req := preference.Request{
		Items:             reqItems,
		ExternalReference: externalReference,
		NotificationURL:   g.notificationURL,
		Metadata:          metadata,
		Payer: &preference.PayerRequest{
			Name:  payer.Name,
			Email: payer.Email,
		},
	}

	resp, err := g.preferences.Create(ctx, req)
	if err != nil {
		log.Printf("[payment][checkout] sdk create failed external_reference=%s err=%v", externalReference, err)
		return interfaces.CheckoutPreference{}, err
	}
	log.Printf("[payment][checkout] preference created id=%s external_reference=%s", resp.ID, externalReference)

	return interfaces.CheckoutPreference{
		ID:               resp.ID,
		InitPoint:        resp.InitPoint,
		SandboxInitPoint: resp.SandboxInitPoint,
	}, nil
}

func (g *MercadoPagoCheckoutGateway) GetPreference(ctx context.Context, id string) (interfaces.CheckoutPreference, error) {
	if g != nil && g.mockMode {
		return interfaces.CheckoutPreference{
			ID:               id,
			InitPoint:        "https://sandbox.mercadopago.com.br/checkout/v1/redirect?pref_id=" + id,
			SandboxInitPoint: "https://sandbox.mercadopago.com.br/checkout/v1/redirect?pref_id=" + id,
		}, nil
	}
	if g == nil || g.preferences == nil {
		return interfaces.CheckoutPreference{}, ErrMercadoPagoGatewayNotConfigured
	}

	resp, err := g.preferences.Get(ctx, id)
	if err != nil {
		log.Printf("[payment][checkout] sdk get failed id=%s err=%v", id, err)
		return interfaces.CheckoutPreference{}, err
	}
	return interfaces.CheckoutPreference{
		ID:               resp.ID,
		InitPoint:        resp.InitPoint,
		SandboxInitPoint: resp.SandboxInitPoint,
	}, nil
}

func (g *MercadoPagoCheckoutGateway) GetPayment(ctx context.Context, id string) (string, error) {
	if g != nil && g.mockMode {
		return "approved", nil
	}
	if g == nil || g.payments == nil {
		return "", ErrMercadoPagoGatewayNotConfigured
	}

	paymentID, err := strconv.Atoi(id)
	if err != nil {
		return "", fmt.Errorf("invalid mercado pago payment id %q: %w", id, err)
	}
	resp, err := g.payments.Get(ctx, paymentID)
	if err != nil {
		log.Printf("[payment][checkout] sdk payment get failed id=%s err=%v", id, err)
		return "", err
	}
	return resp.Status, nil
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
