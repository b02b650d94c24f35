package processor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"trilha_vertical/internal/logging"
	"trilha_vertical/internal/usecase/interfaces"
)

var (
	ErrCheckoutNoItems      = errors.New("checkout requires at least one item")
	ErrCheckoutInvalidItem  = errors.New("checkout item requires title, positive price and quantity")
	ErrCheckoutMissingPayer = errors.New("payer name and email are required for checkout")
	ErrCheckoutCreateFailed = errors.New("failed to create checkout preference")
)

type CheckoutRequest struct {
	OrderID  string
	Items    []interfaces.CheckoutItem
	Payer    interfaces.CheckoutPayer
	Metadata map[string]any
}

// CheckoutProcessor creates hosted-checkout preferences; the payer is
// redirected to the provider's init point. Sandbox vs production selection
// belongs to the gateway, not here.

type CheckoutProcessor struct {
	gateway interfaces.ICheckoutGateway
	log     *slog.Logger
}

func NewCheckoutProcessor(gateway interfaces.ICheckoutGateway) *CheckoutProcessor {
	return &CheckoutProcessor{gateway: gateway, log: logging.New("processor.checkout")}
}

func (p *CheckoutProcessor) Create(ctx context.Context, req CheckoutRequest) (CheckoutResult, error) {
	if len(req.Items) == 0 {
		return CheckoutResult{}, ErrCheckoutNoItems
	}
	for _, it := range req.Items {
		if it.Title == "" || it.UnitPrice.Amount <= 0 || it.Quantity <= 0 {
			return CheckoutResult{}, ErrCheckoutInvalidItem
		}
	}
	if req.Payer.Name == "" || req.Payer.Email == "" {
		return CheckoutResult{}, ErrCheckoutMissingPayer
	}

	p.log.Info("creating checkout preference", "order_id", req.OrderID, "items", len(req.Items))

	pref, err := p.gateway.CreatePreference(ctx, req.Items, req.Payer, req.OrderID, req.Metadata)
	if err != nil {
		p.log.Error("checkout preference failed", "order_id", req.OrderID, "err", err)
		return CheckoutResult{}, fmt.Errorf("%w: %v", ErrCheckoutCreateFailed, err)
	}

	p.log.Info("checkout preference created", "order_id", req.OrderID, "preference_id", pref.ID)
	return CheckoutResult{
		PreferenceID:     pref.ID,
		InitPoint:        pref.InitPoint,
		SandboxInitPoint: pref.SandboxInitPoint,
	}, nil
}
