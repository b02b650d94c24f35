package processor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"trilha_vertical/internal/domain/entities"
	"trilha_vertical/internal/logging"
	"trilha_vertical/internal/usecase/interfaces"
)

const cryptoExpiry = 60 * time.Minute

var (
	ErrCryptoInvalidOrderID = errors.New("invalid order id for crypto payment")
	ErrCryptoInvalidAmount  = errors.New("invalid amount for crypto payment")
	ErrCryptoInvalidType    = errors.New("unsupported crypto type")
	ErrCryptoRateFailed     = errors.New("failed to fetch crypto exchange rate")
	ErrCryptoCreateFailed   = errors.New("failed to create crypto payment")
)

type CryptoRequest struct {
	OrderID    string
	Crypto     entities.CryptoType
	FiatAmount entities.Money
}

// CryptoProcessor creates on-chain payment intents. It only creates the
// intent; blockchain confirmation is polled by reconciliation through
// ICryptoGateway.CheckPaymentStatus, not here.

type CryptoProcessor struct {
	gateway interfaces.ICryptoGateway
	log     *slog.Logger
}

func NewCryptoProcessor(gateway interfaces.ICryptoGateway) *CryptoProcessor {
	return &CryptoProcessor{gateway: gateway, log: logging.New("processor.crypto")}
}

func (p *CryptoProcessor) Create(ctx context.Context, req CryptoRequest) (CryptoResult, error) {
	if req.OrderID == "" {
		return CryptoResult{}, ErrCryptoInvalidOrderID
	}
	if req.FiatAmount.Amount <= 0 {
		return CryptoResult{}, ErrCryptoInvalidAmount
	}
	if req.Crypto != entities.CryptoTypeBitcoin && req.Crypto != entities.CryptoTypeUSDT {
		return CryptoResult{}, ErrCryptoInvalidType
	}

	p.log.Info("creating crypto payment", "order_id", req.OrderID, "crypto", req.Crypto, "fiat_amount", req.FiatAmount.Amount)

	rate, err := p.gateway.GetExchangeRate(ctx, req.Crypto)
	if err != nil {
		p.log.Error("exchange rate fetch failed", "order_id", req.OrderID, "crypto", req.Crypto, "err", err)
		return CryptoResult{}, fmt.Errorf("%w: %v", ErrCryptoRateFailed, err)
	}
	if rate <= 0 {
		return CryptoResult{}, fmt.Errorf("%w: non-positive rate %f", ErrCryptoRateFailed, rate)
	}

	quote, err := p.gateway.CreatePayment(ctx, req.OrderID, req.Crypto, req.FiatAmount)
	if err != nil {
		p.log.Error("crypto payment failed", "order_id", req.OrderID, "err", err)
		return CryptoResult{}, fmt.Errorf("%w: %v", ErrCryptoCreateFailed, err)
	}

	// The provider's quote wins; the locally computed amount only fills gaps
	// so the caller always gets a locked amount and rate.
	cryptoAmount := quote.CryptoAmount
	if cryptoAmount == "" {
		cryptoAmount = strconv.FormatFloat(req.FiatAmount.Float64()/rate, 'f', 8, 64)
	}
	lockedRate := quote.ExchangeRate
	if lockedRate == 0 {
		lockedRate = rate
	}
	expiresAt := quote.ExpiresAt
	if expiresAt.IsZero() {
		expiresAt = time.Now().UTC().Add(cryptoExpiry)
	}

	p.log.Info("crypto payment created", "order_id", req.OrderID, "payment_id", quote.PaymentID, "crypto_amount", cryptoAmount)
	return CryptoResult{
		PaymentID:     quote.PaymentID,
		WalletAddress: quote.WalletAddress,
		Network:       quote.Network,
		CryptoAmount:  cryptoAmount,
		ExchangeRate:  lockedRate,
		ExpiresAt:     expiresAt,
	}, nil
}
