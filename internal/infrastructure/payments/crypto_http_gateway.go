package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"trilha_vertical/internal/domain/entities"
	"trilha_vertical/internal/usecase/interfaces"
)

var ErrMissingCryptoGatewayURL = errors.New("missing CRYPTO_GATEWAY_URL")

const cryptoHTTPTimeout = 10 * time.Second

// CryptoHTTPGateway talks JSON over HTTP to the crypto payment provider.
//
// Env vars:
//   - CRYPTO_GATEWAY_URL (e.g. https://crypto-provider.example.com)
//   - CRYPTO_GATEWAY_API_KEY (sent as X-Api-Key)
//
// Mock mode (PAYMENT_GATEWAY_MOCK / MERCADOPAGO_MOCK) skips the provider and
// serves fixed rates and deterministic addresses for local runs.

type CryptoHTTPGateway struct {
	baseURL  string
	apiKey   string
	client   *http.Client
	mockMode bool
}

var _ interfaces.ICryptoGateway = (*CryptoHTTPGateway)(nil)

func NewCryptoHTTPGateway() (*CryptoHTTPGateway, error) {
	if isPaymentGatewayMockEnabled() {
		log.Printf("[payment][crypto] mock mode enabled")
		return &CryptoHTTPGateway{mockMode: true}, nil
	}

	baseURL := strings.TrimRight(os.Getenv("CRYPTO_GATEWAY_URL"), "/")
	if baseURL == "" {
		log.Printf("[payment][crypto] missing CRYPTO_GATEWAY_URL")
		return nil, ErrMissingCryptoGatewayURL
	}

	return &CryptoHTTPGateway{
		baseURL: baseURL,
		apiKey:  os.Getenv("CRYPTO_GATEWAY_API_KEY"),
		client:  &http.Client{Timeout: cryptoHTTPTimeout},
	}, nil
}

type cryptoCreateRequest struct {
	OrderID      string `json:"order_id"`
	Crypto       string `json:"crypto"`
	FiatAmount   int64  `json:"fiat_amount"`
	FiatCurrency string `json:"fiat_currency"`
}

type cryptoCreateResponse struct {
	PaymentID     string    `json:"payment_id"`
	WalletAddress string    `json:"wallet_address"`
	Network       string    `json:"network"`
	CryptoAmount  string    `json:"crypto_amount"`
	ExchangeRate  float64   `json:"exchange_rate"`
	ExpiresAt     time.Time `json:"expires_at"`
}

type cryptoRateResponse struct {
	Crypto string  `json:"crypto"`
	Rate   float64 `json:"rate"`
}

type cryptoStatusResponse struct {
	PaymentID             string    `json:"payment_id"`
	OrderID               string    `json:"order_id"`
	Crypto                string    `json:"crypto"`
	Network               string    `json:"network"`
	WalletAddress         string    `json:"wallet_address"`
	CryptoAmount          string    `json:"crypto_amount"`
	FiatAmount            int64     `json:"fiat_amount"`
	FiatCurrency          string    `json:"fiat_currency"`
	ExchangeRate          float64   `json:"exchange_rate"`
	Confirmations         int       `json:"confirmations"`
	RequiredConfirmations int       `json:"required_confirmations"`
	Status                string    `json:"status"`
	ExpiresAt             time.Time `json:"expires_at"`
	CreatedAt             time.Time `json:"created_at"`
}

func (g *CryptoHTTPGateway) CreatePayment(ctx context.Context, orderID string, crypto entities.CryptoType, fiatAmount entities.Money) (interfaces.CryptoQuote, error) {
	if g != nil && g.mockMode {
		return g.mockCreatePayment(orderID, crypto, fiatAmount), nil
	}

	body := cryptoCreateRequest{
		OrderID:      orderID,
		Crypto:       string(crypto),
		FiatAmount:   fiatAmount.Amount,
		FiatCurrency: string(fiatAmount.Currency),
	}

	var resp cryptoCreateResponse
	if err := g.doJSON(ctx, http.MethodPost, "/v1/payments", body, &resp); err != nil {
		log.Printf("[payment][crypto] create failed order_id=%s err=%v", orderID, err)
		return interfaces.CryptoQuote{}, err
	}
	log.Printf("[payment][crypto] payment created order_id=%s payment_id=%s network=%s", orderID, resp.PaymentID, resp.Network)

	return interfaces.CryptoQuote{
		PaymentID:     resp.PaymentID,
		WalletAddress: resp.WalletAddress,
		Network:       resp.Network,
		CryptoAmount:  resp.CryptoAmount,
		ExchangeRate:  resp.ExchangeRate,
		ExpiresAt:     resp.ExpiresAt,
	}, nil
}

func (g *CryptoHTTPGateway) GetExchangeRate(ctx context.Context, crypto entities.CryptoType) (float64, error) {
	if g != nil && g.mockMode {
		return mockRate(crypto), nil
	}

	var resp cryptoRateResponse
	if err := g.doJSON(ctx, http.MethodGet, "/v1/rates/"+string(crypto), nil, &resp); err != nil {
		log.Printf("[payment][crypto] rate fetch failed crypto=%s err=%v", crypto, err)
		return 0, err
	}
	return resp.Rate, nil
}

func (g *CryptoHTTPGateway) CheckPaymentStatus(ctx context.Context, paymentID string) (entities.CryptoPayment, error) {
	if g != nil && g.mockMode {
		return entities.CryptoPayment{
			PaymentID:             paymentID,
			Status:                entities.CryptoPaymentStatusConfirming,
			Confirmations:         1,
			RequiredConfirmations: 3,
		}, nil
	}

	var resp cryptoStatusResponse
	if err := g.doJSON(ctx, http.MethodGet, "/v1/payments/"+paymentID, nil, &resp); err != nil {
		log.Printf("[payment][crypto] status fetch failed payment_id=%s err=%v", paymentID, err)
		return entities.CryptoPayment{}, err
	}

	currency := entities.Currency(resp.FiatCurrency)
	if currency == "" {
		currency = entities.CurrencyBRL
	}
	return entities.CryptoPayment{
		PaymentID:             resp.PaymentID,
		OrderID:               resp.OrderID,
		Crypto:                entities.CryptoType(resp.Crypto),
		Network:               resp.Network,
		WalletAddress:         resp.WalletAddress,
		CryptoAmount:          resp.CryptoAmount,
		FiatAmount:            entities.Money{Amount: resp.FiatAmount, Currency: currency},
		ExchangeRate:          resp.ExchangeRate,
		Confirmations:         resp.Confirmations,
		RequiredConfirmations: resp.RequiredConfirmations,
		Status:                entities.CryptoPaymentStatus(resp.Status),
		ExpiresAt:             resp.ExpiresAt,
		CreatedAt:             resp.CreatedAt,
	}, nil
}

func (g *CryptoHTTPGateway) doJSON(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, g.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if g.apiKey != "" {
		req.Header.Set("X-Api-Key", g.apiKey)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("crypto gateway %s %s: status %d: %s", method, path, resp.StatusCode, strings.TrimSpace(string(b)))
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (g *CryptoHTTPGateway) mockCreatePayment(orderID string, crypto entities.CryptoType, fiatAmount entities.Money) interfaces.CryptoQuote {
	rate := mockRate(crypto)
	network := "bitcoin"
	address := "bc1qmock" + orderID
	if crypto == entities.CryptoTypeUSDT {
		network = "tron"
		address = "TMock" + orderID
	}
	id := "mock-crypto-" + strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
	log.Printf("[payment][crypto] mock payment created order_id=%s payment_id=%s", orderID, id)
	return interfaces.CryptoQuote{
		PaymentID:     id,
		WalletAddress: address,
		Network:       network,
		CryptoAmount:  strconv.FormatFloat(fiatAmount.Float64()/rate, 'f', 8, 64),
		ExchangeRate:  rate,
		ExpiresAt:     time.Now().UTC().Add(time.Hour),
	}
}

func mockRate(crypto entities.CryptoType) float64 {
	if crypto == entities.CryptoTypeUSDT {
		return 5.0
	}
	return 350000.0
}
