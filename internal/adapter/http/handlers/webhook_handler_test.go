package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"trilha_vertical/internal/adapter/http/handlers/mocks"
	"trilha_vertical/internal/domain/entities"
	"trilha_vertical/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newWebhookRouter(t *testing.T) (*gin.Engine, *mocks.MockIReconciliationUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	rec := mocks.NewMockIReconciliationUseCase(ctrl)
	h := NewWebhookHandler(rec)

	r := gin.New()
	r.POST("/v1/webhooks/payment", h.PaymentWebhook)
	return r, rec
}

func TestWebhookHandler_PaymentWebhook(t *testing.T) {
	t.Run("invalid json", func(t *testing.T) {
		r, _ := newWebhookRouter(t)

		req := httptest.NewRequest(http.MethodPost, "/v1/webhooks/payment", bytes.NewBufferString("not json"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing reference maps to 400", func(t *testing.T) {
		r, rec := newWebhookRouter(t)
		rec.EXPECT().ProcessWebhook(gomock.Any(), gomock.Any()).Return(entities.Order{}, usecase.ErrInvalidWebhookRef)

		req := httptest.NewRequest(http.MethodPost, "/v1/webhooks/payment", bytes.NewBufferString(`{"status":"approved"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown order maps to 404", func(t *testing.T) {
		r, rec := newWebhookRouter(t)
		rec.EXPECT().ProcessWebhook(gomock.Any(), gomock.Any()).Return(entities.Order{}, usecase.ErrOrderNotFound)

		body := `{"external_reference":"missing","status":"approved"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/webhooks/payment", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("flat payload is forwarded to reconciliation", func(t *testing.T) {
		r, rec := newWebhookRouter(t)
		rec.EXPECT().ProcessWebhook(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, event usecase.WebhookEvent) (entities.Order, error) {
				if event.ExternalReference != "ord-1" || event.ProviderStatus != "approved" || event.ProviderPaymentID != "pay-1" {
					t.Fatalf("unexpected event: %+v", event)
				}
				if event.ProcessedAt.IsZero() {
					t.Fatal("expected ProcessedAt to be stamped")
				}
				order := placedOrder()
				order.Status = entities.OrderStatusConfirmed
				order.Payment.Status = entities.PaymentStatusCompleted
				return order, nil
			},
		)

		body := `{"external_reference":"ord-1","status":"approved","payment_id":"pay-1"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/webhooks/payment", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp struct {
			Success bool `json:"success"`
			Order   struct {
				Status string `json:"status"`
			} `json:"order"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if !resp.Success || resp.Order.Status != "confirmed" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("provider shaped payload resolves data.id", func(t *testing.T) {
		r, rec := newWebhookRouter(t)
		rec.EXPECT().ProcessWebhook(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, event usecase.WebhookEvent) (entities.Order, error) {
				if event.ProviderPaymentID != "123456" {
					t.Fatalf("expected data.id to win, got %q", event.ProviderPaymentID)
				}
				return placedOrder(), nil
			},
		)

		body := `{"external_reference":"ord-1","status":"approved","action":"payment.updated","data":{"id":"123456"}}`
		req := httptest.NewRequest(http.MethodPost, "/v1/webhooks/payment", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
