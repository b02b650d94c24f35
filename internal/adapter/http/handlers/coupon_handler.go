package handlers

import (
	"errors"
	"net/http"

	request "trilha_vertical/internal/adapter/http/dto/request"
	response "trilha_vertical/internal/adapter/http/dto/response"
	"trilha_vertical/internal/domain/entities"
	"trilha_vertical/internal/logging"
	"trilha_vertical/internal/usecase"
	"trilha_vertical/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidCouponPayload = pkg.NewDomainErrorSimple("INVALID_COUPON_INPUT", "Invalid coupon payload", http.StatusBadRequest)

// CouponHandler handles coupon validation from the checkout plus the admin
// create and lookup routes.
type CouponHandler struct {
	usecase usecase.ICouponUseCase
}

func NewCouponHandler(uc usecase.ICouponUseCase) *CouponHandler {
	return &CouponHandler{usecase: uc}
}

// ValidateCoupon runs the side-effect-free validation pass. Rejections come
// back as 200 with valid=false; only transport and store failures error.
func (h *CouponHandler) ValidateCoupon(c *gin.Context) {
	var payload request.ValidateCouponRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCouponPayload.HTTPStatus, errInvalidCouponPayload.ToHTTPError())
		return
	}

	validation, err := h.usecase.Validate(
		c.Request.Context(),
		payload.ResolveCode(),
		entities.BRL(payload.OrderAmount),
		payload.ResolveMethod(),
		payload.UserID,
	)
	if err != nil {
		logging.From(c).Warn("coupon validation failed", "code", payload.Code, "err", err)
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCouponValidation(validation))
}

// CreateCoupon registers a discount code. Intended for the admin surface; the
// deployment gates this route behind its own auth layer.
func (h *CouponHandler) CreateCoupon(c *gin.Context) {
	var payload request.CreateCouponRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCouponPayload.HTTPStatus, errInvalidCouponPayload.ToHTTPError())
		return
	}

	coupon, err := h.usecase.Create(c.Request.Context(), payload.ToCoupon())
	if err != nil {
		logging.From(c).Warn("coupon create failed", "code", payload.Code, "err", err)
		appErr := mapCouponError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromCoupon(coupon))
}

// GetCoupon looks a coupon up by code, case-insensitively.
func (h *CouponHandler) GetCoupon(c *gin.Context) {
	coupon, err := h.usecase.GetByCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		appErr := mapCouponError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCoupon(coupon))
}

func mapCouponError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCouponCode),
		errors.Is(err, usecase.ErrInvalidCouponType),
		errors.Is(err, usecase.ErrInvalidCouponValue),
		errors.Is(err, usecase.ErrInvalidCouponWindow):
		return pkg.NewDomainErrorSimple("INVALID_COUPON_INPUT", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCouponNotFound):
		return pkg.NewDomainErrorSimple("COUPON_NOT_FOUND", "Coupon not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
