package entities

import "time"

// DiscountType defines how a coupon value is applied to an order subtotal.

type DiscountType string

const (
	DiscountTypePercentage  DiscountType = "percentage"
	DiscountTypeFixedAmount DiscountType = "fixed_amount"
)

// Coupon is a discount code persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (code-index): code (stored lowercased; lookups are case-insensitive)
//
// Domain notes:
//   - Value is a whole percentage for percentage coupons and minor units for
//     fixed-amount coupons.
//   - UsedCount is the only cross-request mutable field; it is incremented
//     exclusively through the store's conditional update so a limited coupon
//     can never be over-consumed by concurrent redemptions.

type Coupon struct {
	ID             string          `json:"id"`
	Code           string          `json:"code"`
	Type           DiscountType    `json:"type"`
	Value          int64           `json:"value"`
	ValidFrom      time.Time       `json:"valid_from"`
	ValidUntil     time.Time       `json:"valid_until"`
	MaxUses        int             `json:"max_uses,omitempty"`
	UsedCount      int             `json:"used_count"`
	MinOrderAmount int64           `json:"min_order_amount,omitempty"`
	PaymentMethods []PaymentMethod `json:"payment_methods,omitempty"`
	IsActive       bool            `json:"is_active"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// DiscountFor computes the discount this coupon grants over a subtotal.
// Pure integer arithmetic: percentage discounts floor, and both branches clamp
// to the subtotal so the final total can never go negative, even for a stored
// percentage above 100.
func (c Coupon) DiscountFor(subtotal Money) Money {
	switch c.Type {
	case DiscountTypePercentage:
		d := subtotal.Amount * c.Value / 100
		if d > subtotal.Amount {
			d = subtotal.Amount
		}
		return Money{Amount: d, Currency: subtotal.Currency}
	case DiscountTypeFixedAmount:
		if c.Value > subtotal.Amount {
			return Money{Amount: subtotal.Amount, Currency: subtotal.Currency}
		}
		return Money{Amount: c.Value, Currency: subtotal.Currency}
	}
	return Money{Amount: 0, Currency: subtotal.Currency}
}

// AppliesToMethod reports whether the coupon is restricted to payment methods
// and, if so, whether the given method is allowed.
func (c Coupon) AppliesToMethod(method PaymentMethod) bool {
	if len(c.PaymentMethods) == 0 {
		return true
	}
	for _, m := range c.PaymentMethods {
		if m == method {
			return true
		}
	}
	return false
}
