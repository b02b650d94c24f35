package request

import (
	"strings"
	"time"

	"trilha_vertical/internal/domain/entities"
)

// ValidateCouponRequest is the pre-checkout coupon check payload.
type ValidateCouponRequest struct {
	Code          string `json:"code" binding:"required"`
	OrderAmount   int64  `json:"order_amount" binding:"required"`
	PaymentMethod string `json:"payment_method"`
	UserID        string `json:"user_id"`
}

func (r ValidateCouponRequest) ResolveCode() string {
	return strings.TrimSpace(r.Code)
}

func (r ValidateCouponRequest) ResolveMethod() entities.PaymentMethod {
	return entities.PaymentMethod(strings.ToLower(strings.TrimSpace(r.PaymentMethod)))
}

// CreateCouponRequest registers a discount code. Amounts are in minor units;
// value is a whole percentage or minor units depending on type.
type CreateCouponRequest struct {
	Code           string    `json:"code" binding:"required"`
	Type           string    `json:"type" binding:"required"`
	Value          int64     `json:"value" binding:"required"`
	ValidFrom      time.Time `json:"valid_from"`
	ValidUntil     time.Time `json:"valid_until" binding:"required"`
	MaxUses        int       `json:"max_uses"`
	MinOrderAmount int64     `json:"min_order_amount"`
	PaymentMethods []string  `json:"payment_methods"`
	IsActive       *bool     `json:"is_active"`
}

func (r CreateCouponRequest) ToCoupon() entities.Coupon {
	methods := make([]entities.PaymentMethod, 0, len(r.PaymentMethods))
	for _, m := range r.PaymentMethods {
		methods = append(methods, entities.PaymentMethod(strings.ToLower(strings.TrimSpace(m))))
	}
	active := true
	if r.IsActive != nil {
		active = *r.IsActive
	}
	return entities.Coupon{
		Code:           strings.TrimSpace(r.Code),
		Type:           entities.DiscountType(strings.ToLower(strings.TrimSpace(r.Type))),
		Value:          r.Value,
		ValidFrom:      r.ValidFrom,
		ValidUntil:     r.ValidUntil,
		MaxUses:        r.MaxUses,
		MinOrderAmount: r.MinOrderAmount,
		PaymentMethods: methods,
		IsActive:       active,
	}
}
