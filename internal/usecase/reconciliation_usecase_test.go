package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"trilha_vertical/internal/domain/entities"
	mock_interfaces "trilha_vertical/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func pendingOrder() entities.Order {
	return entities.Order{
		ID:     "ord-1",
		UserID: "user-1",
		Status: entities.OrderStatusPendingPayment,
		Payment: entities.PaymentInfo{
			Method: entities.PaymentMethodPix,
			Status: entities.PaymentStatusProcessing,
		},
		Subtotal: entities.BRL(40000),
		Total:    entities.BRL(40000),
	}
}

func newReconciliation(t *testing.T) (*ReconciliationUseCase, *mock_interfaces.MockIOrderRepository, *mock_interfaces.MockICryptoGateway, *mock_interfaces.MockIProcessedEventStore) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := mock_interfaces.NewMockIOrderRepository(ctrl)
	crypto := mock_interfaces.NewMockICryptoGateway(ctrl)
	events := mock_interfaces.NewMockIProcessedEventStore(ctrl)
	return NewReconciliationUseCase(repo, crypto, events), repo, crypto, events
}

func TestProcessWebhook_Validation(t *testing.T) {
	uc, _, _, _ := newReconciliation(t)
	if _, err := uc.ProcessWebhook(context.Background(), WebhookEvent{}); !errors.Is(err, ErrInvalidWebhookRef) {
		t.Fatalf("expected ErrInvalidWebhookRef, got %v", err)
	}
}

func TestProcessWebhook_OrderNotFound(t *testing.T) {
	uc, repo, _, _ := newReconciliation(t)
	repo.EXPECT().GetByID(gomock.Any(), "ord-x").Return(entities.Order{}, nil)

	_, err := uc.ProcessWebhook(context.Background(), WebhookEvent{ExternalReference: "ord-x", ProviderStatus: "approved"})
	if !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
}

func TestProcessWebhook_StatusMapping(t *testing.T) {
	cases := []struct {
		name            string
		providerStatus  string
		wantPayment     entities.PaymentStatus
		wantOrderStatus entities.OrderStatus
	}{
		{name: "approved confirms", providerStatus: "approved", wantPayment: entities.PaymentStatusCompleted, wantOrderStatus: entities.OrderStatusConfirmed},
		{name: "paid confirms", providerStatus: "paid", wantPayment: entities.PaymentStatusCompleted, wantOrderStatus: entities.OrderStatusConfirmed},
		{name: "rejected cancels", providerStatus: "rejected", wantPayment: entities.PaymentStatusFailed, wantOrderStatus: entities.OrderStatusCancelled},
		{name: "expired cancels", providerStatus: "expired", wantPayment: entities.PaymentStatusFailed, wantOrderStatus: entities.OrderStatusCancelled},
		{name: "in_process keeps pending_payment", providerStatus: "in_process", wantPayment: entities.PaymentStatusProcessing, wantOrderStatus: entities.OrderStatusPendingPayment},
		{name: "unknown parks for review", providerStatus: "weird_status", wantPayment: entities.PaymentStatusPending, wantOrderStatus: entities.OrderStatusPendingReview},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc, repo, _, events := newReconciliation(t)
			repo.EXPECT().GetByID(gomock.Any(), "ord-1").Return(pendingOrder(), nil)
			events.EXPECT().MarkProcessed(gomock.Any(), "pay-1:"+tc.providerStatus).Return(true, nil)
			repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Order{})).DoAndReturn(
				func(_ context.Context, o entities.Order) (entities.Order, error) { return o, nil },
			)

			got, err := uc.ProcessWebhook(context.Background(), WebhookEvent{
				ExternalReference: "ord-1",
				ProviderStatus:    tc.providerStatus,
				ProviderPaymentID: "pay-1",
			})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Payment.Status != tc.wantPayment {
				t.Fatalf("payment status: expected %s, got %s", tc.wantPayment, got.Payment.Status)
			}
			if got.Status != tc.wantOrderStatus {
				t.Fatalf("order status: expected %s, got %s", tc.wantOrderStatus, got.Status)
			}
			if got.Payment.ProcessedAt == nil {
				t.Fatalf("processedAt not stamped")
			}
		})
	}
}

func TestProcessWebhook_DuplicateEventIsNoOp(t *testing.T) {
	uc, repo, _, events := newReconciliation(t)
	repo.EXPECT().GetByID(gomock.Any(), "ord-1").Return(pendingOrder(), nil)
	events.EXPECT().MarkProcessed(gomock.Any(), "pay-1:approved").Return(false, nil)
	// No Update: the event was already processed.

	got, err := uc.ProcessWebhook(context.Background(), WebhookEvent{
		ExternalReference: "ord-1",
		ProviderStatus:    "approved",
		ProviderPaymentID: "pay-1",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Status != entities.OrderStatusPendingPayment {
		t.Fatalf("duplicate must not mutate the order: %+v", got)
	}
}

func TestProcessWebhook_TerminalOrderIsIdempotent(t *testing.T) {
	t.Run("same terminal status re-applied", func(t *testing.T) {
		uc, repo, _, events := newReconciliation(t)
		cancelled := pendingOrder()
		cancelled.Status = entities.OrderStatusCancelled
		repo.EXPECT().GetByID(gomock.Any(), "ord-1").Return(cancelled, nil)
		events.EXPECT().MarkProcessed(gomock.Any(), gomock.Any()).Return(true, nil)
		// No Update either way.

		got, err := uc.ProcessWebhook(context.Background(), WebhookEvent{
			ExternalReference: "ord-1",
			ProviderStatus:    "rejected",
			ProviderPaymentID: "pay-2",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != entities.OrderStatusCancelled {
			t.Fatalf("terminal state must not change: %s", got.Status)
		}
	})

	t.Run("conflicting event for terminal order is dropped", func(t *testing.T) {
		uc, repo, _, events := newReconciliation(t)
		completed := pendingOrder()
		completed.Status = entities.OrderStatusCompleted
		repo.EXPECT().GetByID(gomock.Any(), "ord-1").Return(completed, nil)
		events.EXPECT().MarkProcessed(gomock.Any(), gomock.Any()).Return(true, nil)

		got, err := uc.ProcessWebhook(context.Background(), WebhookEvent{
			ExternalReference: "ord-1",
			ProviderStatus:    "rejected",
			ProviderPaymentID: "pay-3",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != entities.OrderStatusCompleted {
			t.Fatalf("terminal state must not change: %s", got.Status)
		}
	})
}

func TestProcessWebhook_DedupStoreDownStillProcesses(t *testing.T) {
	uc, repo, _, events := newReconciliation(t)
	repo.EXPECT().GetByID(gomock.Any(), "ord-1").Return(pendingOrder(), nil)
	events.EXPECT().MarkProcessed(gomock.Any(), gomock.Any()).Return(false, errors.New("redis down"))
	repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Order{})).DoAndReturn(
		func(_ context.Context, o entities.Order) (entities.Order, error) { return o, nil },
	)

	got, err := uc.ProcessWebhook(context.Background(), WebhookEvent{
		ExternalReference: "ord-1",
		ProviderStatus:    "approved",
		ProviderPaymentID: "pay-4",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Status != entities.OrderStatusConfirmed {
		t.Fatalf("expected confirmed, got %s", got.Status)
	}
}

func TestProcessWebhook_PersistFailureReleasesEventMarker(t *testing.T) {
	event := WebhookEvent{
		ExternalReference: "ord-1",
		ProviderStatus:    "approved",
		ProviderPaymentID: "pay-5",
	}

	t.Run("failed application forgets the marker", func(t *testing.T) {
		uc, repo, _, events := newReconciliation(t)
		repo.EXPECT().GetByID(gomock.Any(), "ord-1").Return(pendingOrder(), nil)
		events.EXPECT().MarkProcessed(gomock.Any(), "pay-5:approved").Return(true, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Order{})).
			Return(entities.Order{}, errors.New("dynamodb throttled"))
		events.EXPECT().Forget(gomock.Any(), "pay-5:approved").Return(nil)

		if _, err := uc.ProcessWebhook(context.Background(), event); err == nil {
			t.Fatal("expected persist error to surface")
		}
	})

	t.Run("retry after transient failure is applied", func(t *testing.T) {
		uc, repo, _, events := newReconciliation(t)
		repo.EXPECT().GetByID(gomock.Any(), "ord-1").Return(pendingOrder(), nil)
		// The marker was released, so the retry is first again.
		events.EXPECT().MarkProcessed(gomock.Any(), "pay-5:approved").Return(true, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Order{})).DoAndReturn(
			func(_ context.Context, o entities.Order) (entities.Order, error) { return o, nil },
		)

		got, err := uc.ProcessWebhook(context.Background(), event)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != entities.OrderStatusConfirmed {
			t.Fatalf("retried confirmation must land, got %s", got.Status)
		}
	})
}

func TestProcessWebhook_OrderVanishedDuringUpdate(t *testing.T) {
	uc, repo, _, events := newReconciliation(t)
	repo.EXPECT().GetByID(gomock.Any(), "ord-1").Return(pendingOrder(), nil)
	events.EXPECT().MarkProcessed(gomock.Any(), "pay-6:approved").Return(true, nil)
	repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Order{})).
		Return(entities.Order{}, ErrOrderNotFound)
	events.EXPECT().Forget(gomock.Any(), "pay-6:approved").Return(nil)

	_, err := uc.ProcessWebhook(context.Background(), WebhookEvent{
		ExternalReference: "ord-1",
		ProviderStatus:    "approved",
		ProviderPaymentID: "pay-6",
	})
	if !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
}

func TestPollCryptoPayment(t *testing.T) {
	t.Run("missing payment id", func(t *testing.T) {
		uc, _, _, _ := newReconciliation(t)
		if _, err := uc.PollCryptoPayment(context.Background(), "ord-1", " "); !errors.Is(err, ErrCryptoPaymentIDReq) {
			t.Fatalf("expected ErrCryptoPaymentIDReq, got %v", err)
		}
	})

	t.Run("enough confirmations confirms the order", func(t *testing.T) {
		uc, repo, crypto, _ := newReconciliation(t)
		repo.EXPECT().GetByID(gomock.Any(), "ord-1").Return(pendingOrder(), nil)
		crypto.EXPECT().CheckPaymentStatus(gomock.Any(), "cp-1").Return(entities.CryptoPayment{
			PaymentID:             "cp-1",
			OrderID:               "ord-1",
			Status:                entities.CryptoPaymentStatusConfirming,
			Confirmations:         3,
			RequiredConfirmations: 3,
		}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Order{})).DoAndReturn(
			func(_ context.Context, o entities.Order) (entities.Order, error) { return o, nil },
		)

		got, err := uc.PollCryptoPayment(context.Background(), "ord-1", "cp-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != entities.OrderStatusConfirmed || got.Payment.Status != entities.PaymentStatusCompleted {
			t.Fatalf("expected confirmed/completed, got %s/%s", got.Status, got.Payment.Status)
		}
	})

	t.Run("expired payment cancels the order", func(t *testing.T) {
		uc, repo, crypto, _ := newReconciliation(t)
		repo.EXPECT().GetByID(gomock.Any(), "ord-1").Return(pendingOrder(), nil)
		crypto.EXPECT().CheckPaymentStatus(gomock.Any(), "cp-1").Return(entities.CryptoPayment{
			PaymentID: "cp-1",
			OrderID:   "ord-1",
			Status:    entities.CryptoPaymentStatusExpired,
			ExpiresAt: time.Now().Add(-time.Hour),
		}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Order{})).DoAndReturn(
			func(_ context.Context, o entities.Order) (entities.Order, error) { return o, nil },
		)

		got, err := uc.PollCryptoPayment(context.Background(), "ord-1", "cp-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != entities.OrderStatusCancelled {
			t.Fatalf("expected cancelled, got %s", got.Status)
		}
	})

	t.Run("still confirming keeps order pending", func(t *testing.T) {
		uc, repo, crypto, _ := newReconciliation(t)
		repo.EXPECT().GetByID(gomock.Any(), "ord-1").Return(pendingOrder(), nil)
		crypto.EXPECT().CheckPaymentStatus(gomock.Any(), "cp-1").Return(entities.CryptoPayment{
			PaymentID:             "cp-1",
			OrderID:               "ord-1",
			Status:                entities.CryptoPaymentStatusConfirming,
			Confirmations:         1,
			RequiredConfirmations: 3,
		}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Order{})).DoAndReturn(
			func(_ context.Context, o entities.Order) (entities.Order, error) { return o, nil },
		)

		got, err := uc.PollCryptoPayment(context.Background(), "ord-1", "cp-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != entities.OrderStatusPendingPayment || got.Payment.Status != entities.PaymentStatusProcessing {
			t.Fatalf("expected pending_payment/processing, got %s/%s", got.Status, got.Payment.Status)
		}
	})
}
