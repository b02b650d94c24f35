package handlers

import (
	"errors"
	"net/http"

	request "trilha_vertical/internal/adapter/http/dto/request"
	response "trilha_vertical/internal/adapter/http/dto/response"
	"trilha_vertical/internal/adapter/http/middleware"
	"trilha_vertical/internal/logging"
	"trilha_vertical/internal/usecase"
	"trilha_vertical/internal/usecase/processor"
	"trilha_vertical/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidOrderPayload = pkg.NewDomainErrorSimple("INVALID_ORDER_INPUT", "Invalid order payload", http.StatusBadRequest)
	errInvalidPollPayload  = pkg.NewDomainErrorSimple("INVALID_POLL_INPUT", "Invalid poll payload", http.StatusBadRequest)
)

// OrderHandler handles HTTP requests for climbing bookings.

type OrderHandler struct {
	orders         usecase.ICreateOrderUseCase
	reconciliation usecase.IReconciliationUseCase
}

func NewOrderHandler(orders usecase.ICreateOrderUseCase, reconciliation usecase.IReconciliationUseCase) *OrderHandler {
	return &OrderHandler{orders: orders, reconciliation: reconciliation}
}

// CreateOrder places a booking and dispatches the chosen payment method.
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var payload request.CreateOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	out, err := h.orders.Execute(c.Request.Context(), payload.ToInput())
	if err != nil {
		logging.From(c).Warn("order creation failed", "user_id", payload.UserID, "err", err)
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	middleware.CountOrderCreated(string(out.Order.Payment.Method))
	c.JSON(http.StatusCreated, response.FromOrderCreation(out))
}

// GetOrder returns a single booking by id.
func (h *OrderHandler) GetOrder(c *gin.Context) {
	orderID := c.Param("order_id")

	order, err := h.orders.GetByID(c.Request.Context(), orderID)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrder(order))
}

// GetUserOrders lists a user's bookings, newest first.
func (h *OrderHandler) GetUserOrders(c *gin.Context) {
	userID := c.Param("user_id")

	orders, err := h.orders.ListByUser(c.Request.Context(), userID)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	out := make([]response.OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, response.FromOrder(o))
	}
	c.JSON(http.StatusOK, gin.H{"orders": out})
}

// PollCryptoPayment checks blockchain confirmations for an order's on-chain
// payment and applies the implied status transition.
func (h *OrderHandler) PollCryptoPayment(c *gin.Context) {
	orderID := c.Param("order_id")

	var payload request.PollCryptoRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPollPayload.HTTPStatus, errInvalidPollPayload.ToHTTPError())
		return
	}

	order, err := h.reconciliation.PollCryptoPayment(c.Request.Context(), orderID, payload.PaymentID)
	if err != nil {
		logging.From(c).Warn("crypto poll failed", "order_id", orderID, "err", err)
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrder(order))
}

func mapOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidUserID),
		errors.Is(err, usecase.ErrEmptyCart),
		errors.Is(err, usecase.ErrClimbingDateNotFuture),
		errors.Is(err, usecase.ErrIncompleteParticipant),
		errors.Is(err, usecase.ErrInvalidOrderItem),
		errors.Is(err, usecase.ErrCryptoPaymentIDReq):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUnsupportedPaymentMethod):
		return pkg.NewDomainErrorSimple("UNSUPPORTED_PAYMENT_METHOD", "Unsupported payment method", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrIllegalTransition):
		return pkg.NewDomainErrorSimple("ILLEGAL_TRANSITION", "Order cannot move to the requested status", http.StatusConflict)
	case errors.Is(err, processor.ErrPixCreateFailed),
		errors.Is(err, processor.ErrCheckoutCreateFailed),
		errors.Is(err, processor.ErrCryptoCreateFailed),
		errors.Is(err, processor.ErrCryptoRateFailed),
		errors.Is(err, processor.ErrSponsorshipCreateFailed):
		return pkg.NewDomainError("PAYMENT_PROVIDER_ERROR", "Payment provider unavailable, order kept pending", err, http.StatusBadGateway)
	case errors.Is(err, processor.ErrPixInvalidOrderID),
		errors.Is(err, processor.ErrPixInvalidAmount),
		errors.Is(err, processor.ErrPixMissingPayer),
		errors.Is(err, processor.ErrCheckoutNoItems),
		errors.Is(err, processor.ErrCheckoutInvalidItem),
		errors.Is(err, processor.ErrCheckoutMissingPayer),
		errors.Is(err, processor.ErrCryptoInvalidOrderID),
		errors.Is(err, processor.ErrCryptoInvalidAmount),
		errors.Is(err, processor.ErrCryptoInvalidType),
		errors.Is(err, processor.ErrSponsorshipInvalidOrderID),
		errors.Is(err, processor.ErrSponsorshipInvalidAmount),
		errors.Is(err, processor.ErrSponsorshipMissingUsername),
		errors.Is(err, processor.ErrSponsorshipInvalidFrequency),
		errors.Is(err, processor.ErrWhatsAppEmptyOrder):
		return pkg.NewDomainErrorSimple("INVALID_PAYMENT_INPUT", err.Error(), http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
