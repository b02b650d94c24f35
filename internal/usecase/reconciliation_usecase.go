package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"trilha_vertical/internal/domain/entities"
	"trilha_vertical/internal/logging"
	"trilha_vertical/internal/usecase/interfaces"
)

var (
	ErrOrderNotFound      = errors.New("order not found")
	ErrInvalidWebhookRef  = errors.New("webhook missing external reference")
	ErrIllegalTransition  = errors.New("illegal order status transition")
	ErrCryptoPaymentIDReq = errors.New("crypto payment id is required")
)

// WebhookEvent is the already-authenticated provider payload consumed by
// reconciliation. Signature verification happens before this layer.
type WebhookEvent struct {
	ExternalReference string
	ProviderStatus    string
	ProviderPaymentID string
	ProcessedAt       time.Time
}

// IReconciliationUseCase moves orders from pending_payment toward a terminal
// state based on asynchronous provider signals (webhook or blockchain poll).

type IReconciliationUseCase interface {
	ProcessWebhook(ctx context.Context, event WebhookEvent) (entities.Order, error)
	PollCryptoPayment(ctx context.Context, orderID, paymentID string) (entities.Order, error)
}

// ReconciliationUseCase is idempotent by construction: duplicate events are
// dropped by the processed-event store, and the order state machine treats
// re-applying a terminal status as a no-op.

type ReconciliationUseCase struct {
	repo   interfaces.IOrderRepository
	crypto interfaces.ICryptoGateway
	events interfaces.IProcessedEventStore
	log    *slog.Logger
	now    func() time.Time
}

var _ IReconciliationUseCase = (*ReconciliationUseCase)(nil)

func NewReconciliationUseCase(repo interfaces.IOrderRepository, crypto interfaces.ICryptoGateway, events interfaces.IProcessedEventStore) *ReconciliationUseCase {
	return &ReconciliationUseCase{
		repo:   repo,
		crypto: crypto,
		events: events,
		log:    logging.New("usecase.reconciliation"),
		now:    time.Now,
	}
}

func (u *ReconciliationUseCase) ProcessWebhook(ctx context.Context, event WebhookEvent) (entities.Order, error) {
	orderID := strings.TrimSpace(event.ExternalReference)
	if orderID == "" {
		return entities.Order{}, ErrInvalidWebhookRef
	}

	order, err := u.repo.GetByID(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	if order.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}

	eventKey := event.ProviderPaymentID + ":" + event.ProviderStatus
	marked := false
	if u.events != nil && event.ProviderPaymentID != "" {
		first, err := u.events.MarkProcessed(ctx, eventKey)
		if err != nil {
			// Dedup store being down must not drop provider signals; the state
			// machine still guards terminal orders below.
			u.log.Warn("event dedup unavailable", "order_id", orderID, "err", err)
		} else if !first {
			u.log.Info("duplicate provider event ignored", "order_id", orderID, "provider_payment_id", event.ProviderPaymentID, "provider_status", event.ProviderStatus)
			return order, nil
		} else {
			marked = true
		}
	}

	paymentStatus := mapProviderStatus(event.ProviderStatus)
	updated, err := u.applyPaymentStatus(ctx, order, paymentStatus, event.ProviderPaymentID, event.ProcessedAt)
	if err != nil && marked {
		// Release the marker so the provider's retry of this event is applied
		// instead of dropped as a duplicate.
		if ferr := u.events.Forget(ctx, eventKey); ferr != nil {
			u.log.Warn("processed-event release failed", "order_id", orderID, "event_key", eventKey, "err", ferr)
		}
	}
	return updated, err
}

// PollCryptoPayment checks blockchain confirmations for an on-chain payment
// and applies the implied transition. The provider record carries the locked
// creation-time amount and rate; confirmation is judged against it, never
// against a fresh quote.
func (u *ReconciliationUseCase) PollCryptoPayment(ctx context.Context, orderID, paymentID string) (entities.Order, error) {
	if strings.TrimSpace(paymentID) == "" {
		return entities.Order{}, ErrCryptoPaymentIDReq
	}
	order, err := u.repo.GetByID(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	if order.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}

	payment, err := u.crypto.CheckPaymentStatus(ctx, paymentID)
	if err != nil {
		return entities.Order{}, err
	}
	u.log.Info("crypto payment polled", "order_id", orderID, "payment_id", paymentID,
		"status", payment.Status, "confirmations", payment.Confirmations, "required", payment.RequiredConfirmations)

	var paymentStatus entities.PaymentStatus
	switch {
	case payment.IsConfirmed():
		paymentStatus = entities.PaymentStatusCompleted
	case payment.Status == entities.CryptoPaymentStatusExpired, payment.Status == entities.CryptoPaymentStatusFailed:
		paymentStatus = entities.PaymentStatusFailed
	default:
		paymentStatus = entities.PaymentStatusProcessing
	}
	return u.applyPaymentStatus(ctx, order, paymentStatus, paymentID, u.now().UTC())
}

func (u *ReconciliationUseCase) applyPaymentStatus(ctx context.Context, order entities.Order, paymentStatus entities.PaymentStatus, providerPaymentID string, processedAt time.Time) (entities.Order, error) {
	nextOrderStatus := orderStatusFor(paymentStatus, order.Status)

	if order.Status.IsTerminal() {
		if nextOrderStatus == order.Status {
			u.log.Info("terminal status re-applied; no-op", "order_id", order.ID, "status", order.Status)
			return order, nil
		}
		u.log.Warn("event for terminalized order dropped", "order_id", order.ID, "status", order.Status, "implied", nextOrderStatus)
		return order, nil
	}
	if !order.Status.CanTransitionTo(nextOrderStatus) {
		u.log.Error("illegal transition", "order_id", order.ID, "from", order.Status, "to", nextOrderStatus)
		return entities.Order{}, ErrIllegalTransition
	}

	if processedAt.IsZero() {
		processedAt = u.now().UTC()
	}
	order.Payment.Status = paymentStatus
	order.Payment.ProcessedAt = &processedAt
	if providerPaymentID != "" {
		order.Payment.ProviderPaymentID = providerPaymentID
	}
	order.Status = nextOrderStatus
	order.UpdatedAt = u.now().UTC()

	updated, err := u.repo.Update(ctx, order)
	if err != nil {
		return entities.Order{}, err
	}
	u.log.Info("order reconciled", "order_id", updated.ID, "payment_status", paymentStatus, "order_status", updated.Status)
	return updated, nil
}

// mapProviderStatus folds each provider's vocabulary into the internal
// payment status enum. Unknown words map to pending, which parks the order in
// pending_review for a human.
func mapProviderStatus(providerStatus string) entities.PaymentStatus {
	switch strings.ToLower(strings.TrimSpace(providerStatus)) {
	case "approved", "paid", "confirmed", "completed", "accredited":
		return entities.PaymentStatusCompleted
	case "rejected", "failed", "cancelled", "canceled", "expired":
		return entities.PaymentStatusFailed
	case "pending", "in_process", "in_progress", "processing", "confirming", "awaiting_payment":
		return entities.PaymentStatusProcessing
	case "refunded", "charged_back":
		return entities.PaymentStatusRefunded
	default:
		return entities.PaymentStatusPending
	}
}

// orderStatusFor derives the booking transition implied by a payment status.
func orderStatusFor(paymentStatus entities.PaymentStatus, current entities.OrderStatus) entities.OrderStatus {
	switch paymentStatus {
	case entities.PaymentStatusCompleted:
		return entities.OrderStatusConfirmed
	case entities.PaymentStatusFailed, entities.PaymentStatusRefunded:
		return entities.OrderStatusCancelled
	case entities.PaymentStatusProcessing:
		return current
	default:
		// Ambiguous provider signal: park for manual review.
		return entities.OrderStatusPendingReview
	}
}
