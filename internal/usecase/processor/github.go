package processor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"trilha_vertical/internal/domain/entities"
	"trilha_vertical/internal/logging"
	"trilha_vertical/internal/usecase/interfaces"
)

const (
	SponsorshipFrequencyOneTime = "one_time"
	SponsorshipFrequencyMonthly = "monthly"
)

var (
	ErrSponsorshipInvalidOrderID   = errors.New("invalid order id for sponsorship payment")
	ErrSponsorshipInvalidAmount    = errors.New("invalid amount for sponsorship payment")
	ErrSponsorshipMissingUsername  = errors.New("sponsor username is required")
	ErrSponsorshipInvalidFrequency = errors.New("sponsorship frequency must be one_time or monthly")
	ErrSponsorshipCreateFailed     = errors.New("failed to create sponsorship payment")
)

type SponsorshipRequest struct {
	OrderID         string
	Amount          entities.Money
	SponsorUsername string
	Frequency       string
	Metadata        map[string]string
}

// SponsorshipProcessor hands the payer off to GitHub Sponsors; confirmation
// arrives later via the sponsor platform webhook.

type SponsorshipProcessor struct {
	gateway interfaces.ISponsorshipGateway
	log     *slog.Logger
}

func NewSponsorshipProcessor(gateway interfaces.ISponsorshipGateway) *SponsorshipProcessor {
	return &SponsorshipProcessor{gateway: gateway, log: logging.New("processor.sponsorship")}
}

func (p *SponsorshipProcessor) Create(ctx context.Context, req SponsorshipRequest) (SponsorshipResult, error) {
	if req.OrderID == "" {
		return SponsorshipResult{}, ErrSponsorshipInvalidOrderID
	}
	if req.Amount.Amount <= 0 {
		return SponsorshipResult{}, ErrSponsorshipInvalidAmount
	}
	if req.SponsorUsername == "" {
		return SponsorshipResult{}, ErrSponsorshipMissingUsername
	}
	if req.Frequency != SponsorshipFrequencyOneTime && req.Frequency != SponsorshipFrequencyMonthly {
		return SponsorshipResult{}, ErrSponsorshipInvalidFrequency
	}

	p.log.Info("creating sponsorship payment", "order_id", req.OrderID, "sponsor", req.SponsorUsername, "frequency", req.Frequency)

	url, err := p.gateway.CreatePayment(ctx, req.OrderID, req.Amount, req.SponsorUsername, req.Frequency, req.Metadata)
	if err != nil {
		p.log.Error("sponsorship payment failed", "order_id", req.OrderID, "err", err)
		return SponsorshipResult{}, fmt.Errorf("%w: %v", ErrSponsorshipCreateFailed, err)
	}

	return SponsorshipResult{SponsorshipURL: url}, nil
}
