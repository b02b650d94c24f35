package handlers

import (
	"errors"
	"net/http"
	"time"

	request "trilha_vertical/internal/adapter/http/dto/request"
	response "trilha_vertical/internal/adapter/http/dto/response"
	"trilha_vertical/internal/logging"
	"trilha_vertical/internal/usecase"
	"trilha_vertical/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidWebhookPayload = pkg.NewDomainErrorSimple("INVALID_WEBHOOK_INPUT", "Invalid webhook payload", http.StatusBadRequest)

// WebhookHandler receives provider payment notifications. Providers retry on
// non-2xx, so only genuinely retryable failures return an error status.

type WebhookHandler struct {
	reconciliation usecase.IReconciliationUseCase
}

func NewWebhookHandler(rec usecase.IReconciliationUseCase) *WebhookHandler {
	return &WebhookHandler{reconciliation: rec}
}

// PaymentWebhook applies a provider status notification to its order.
func (h *WebhookHandler) PaymentWebhook(c *gin.Context) {
	var payload request.PaymentWebhookRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWebhookPayload.HTTPStatus, errInvalidWebhookPayload.ToHTTPError())
		return
	}

	event := usecase.WebhookEvent{
		ExternalReference: payload.ResolveReference(),
		ProviderStatus:    payload.Status,
		ProviderPaymentID: payload.ResolvePaymentID(),
		ProcessedAt:       time.Now().UTC(),
	}

	order, err := h.reconciliation.ProcessWebhook(c.Request.Context(), event)
	if err != nil {
		logging.From(c).Warn("webhook processing failed", "external_reference", event.ExternalReference, "err", err)
		appErr := mapWebhookError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "order": response.FromOrder(order)})
}

func mapWebhookError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidWebhookRef):
		return pkg.NewDomainErrorSimple("INVALID_WEBHOOK_INPUT", "Webhook missing external reference", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		// 404 stops provider retries for references that will never resolve.
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrIllegalTransition):
		return pkg.NewDomainErrorSimple("ILLEGAL_TRANSITION", "Order cannot move to the requested status", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
