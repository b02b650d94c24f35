package processor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"trilha_vertical/internal/domain/entities"
	"trilha_vertical/internal/logging"
	"trilha_vertical/internal/usecase/interfaces"
)

// PIX charges expire after a fixed short window; enforcement is the gateway's
// and reconciliation's job, the expiry here is data returned to the caller.
const pixExpiry = 30 * time.Minute

var (
	ErrPixInvalidOrderID = errors.New("invalid order id for PIX payment")
	ErrPixInvalidAmount  = errors.New("invalid amount for PIX payment")
	ErrPixMissingPayer   = errors.New("payer name and email are required for PIX payment")
	ErrPixCreateFailed   = errors.New("failed to create PIX payment")
)

type PixRequest struct {
	OrderID     string
	Amount      entities.Money
	PayerName   string
	PayerEmail  string
	Description string
}

// PixProcessor creates instant-payment charges. No retry happens here; retries
// are a caller concern.

type PixProcessor struct {
	gateway interfaces.IPixGateway
	log     *slog.Logger
}

func NewPixProcessor(gateway interfaces.IPixGateway) *PixProcessor {
	return &PixProcessor{gateway: gateway, log: logging.New("processor.pix")}
}

func (p *PixProcessor) Create(ctx context.Context, req PixRequest) (PixResult, error) {
	if req.OrderID == "" {
		return PixResult{}, ErrPixInvalidOrderID
	}
	if req.Amount.Amount <= 0 {
		return PixResult{}, ErrPixInvalidAmount
	}
	if req.PayerName == "" || req.PayerEmail == "" {
		return PixResult{}, ErrPixMissingPayer
	}

	p.log.Info("creating pix charge", "order_id", req.OrderID, "amount", req.Amount.Amount)

	charge, err := p.gateway.CreateCharge(ctx, req.Amount, req.PayerName, req.PayerEmail, req.Description, req.OrderID)
	if err != nil {
		p.log.Error("pix charge failed", "order_id", req.OrderID, "err", err)
		return PixResult{}, fmt.Errorf("%w: %v", ErrPixCreateFailed, err)
	}

	p.log.Info("pix charge created", "order_id", req.OrderID, "charge_id", charge.ID)
	return PixResult{
		ID:           charge.ID,
		QRCode:       charge.QRCode,
		QRCodeBase64: charge.QRCodeBase64,
		TicketURL:    charge.TicketURL,
		ExpiresAt:    time.Now().UTC().Add(pixExpiry),
	}, nil
}
