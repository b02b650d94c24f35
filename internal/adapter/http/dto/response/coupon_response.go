package response

import (
	"time"

	"trilha_vertical/internal/domain/entities"
	"trilha_vertical/internal/usecase"
)

type CouponSummaryResponse struct {
	Code  string `json:"code"`
	Type  string `json:"type"`
	Value int64  `json:"value"`
}

// ValidateCouponResponse always returns 200: an invalid coupon is a business
// outcome, not a transport failure.
type ValidateCouponResponse struct {
	Valid          bool                   `json:"valid"`
	Error          string                 `json:"error,omitempty"`
	Coupon         *CouponSummaryResponse `json:"coupon,omitempty"`
	DiscountAmount int64                  `json:"discount_amount,omitempty"`
	FinalAmount    int64                  `json:"final_amount,omitempty"`
}

// CouponResponse is the full coupon record returned by the admin endpoints.
type CouponResponse struct {
	ID             string    `json:"id"`
	Code           string    `json:"code"`
	Type           string    `json:"type"`
	Value          int64     `json:"value"`
	ValidFrom      time.Time `json:"valid_from"`
	ValidUntil     time.Time `json:"valid_until"`
	MaxUses        int       `json:"max_uses,omitempty"`
	UsedCount      int       `json:"used_count"`
	MinOrderAmount int64     `json:"min_order_amount,omitempty"`
	PaymentMethods []string  `json:"payment_methods,omitempty"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func FromCoupon(c entities.Coupon) CouponResponse {
	methods := make([]string, 0, len(c.PaymentMethods))
	for _, m := range c.PaymentMethods {
		methods = append(methods, string(m))
	}
	return CouponResponse{
		ID:             c.ID,
		Code:           c.Code,
		Type:           string(c.Type),
		Value:          c.Value,
		ValidFrom:      c.ValidFrom,
		ValidUntil:     c.ValidUntil,
		MaxUses:        c.MaxUses,
		UsedCount:      c.UsedCount,
		MinOrderAmount: c.MinOrderAmount,
		PaymentMethods: methods,
		IsActive:       c.IsActive,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}

func FromCouponValidation(v usecase.CouponValidation) ValidateCouponResponse {
	if !v.IsValid {
		return ValidateCouponResponse{Valid: false, Error: v.Error}
	}
	return ValidateCouponResponse{
		Valid: true,
		Coupon: &CouponSummaryResponse{
			Code:  v.Coupon.Code,
			Type:  string(v.Coupon.Type),
			Value: v.Coupon.Value,
		},
		DiscountAmount: v.DiscountAmount.Amount,
		FinalAmount:    v.FinalAmount.Amount,
	}
}
