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

	"github.com/google/uuid"
)

var (
	ErrCouponNotFound      = errors.New("coupon not found")
	ErrInvalidCouponID     = errors.New("invalid coupon id")
	ErrCouponExhausted     = errors.New("coupon usage limit reached")
	ErrInvalidCouponCode   = errors.New("coupon code is required")
	ErrInvalidCouponType   = errors.New("unknown coupon discount type")
	ErrInvalidCouponValue  = errors.New("coupon value out of range")
	ErrInvalidCouponWindow = errors.New("coupon validity window is inverted")
)

// Validation failure messages surfaced to the checkout UI.
const (
	couponErrEmptyCode        = "Coupon code is required"
	couponErrInvalidAmount    = "Order amount must be positive"
	couponErrNotFound         = "Coupon not found or inactive"
	couponErrOutsideWindow    = "Coupon is not valid at this time"
	couponErrExhausted        = "Coupon usage limit reached"
	couponErrBelowMinimum     = "Order amount below coupon minimum"
	couponErrMethodNotAllowed = "Coupon not valid for this payment method"
)

// CouponValidation is the outcome of a side-effect-free validation pass.
type CouponValidation struct {
	IsValid        bool
	Error          string
	Coupon         entities.Coupon
	DiscountAmount entities.Money
	FinalAmount    entities.Money
}

// ICouponUseCase exposes coupon operations.
//
// Validate is idempotent and side-effect-free so the checkout can call it on
// every re-render without consuming the coupon; only MarkAsUsed touches
// used_count, and it does so through the store's atomic conditional increment.

type ICouponUseCase interface {
	Validate(ctx context.Context, code string, orderAmount entities.Money, method entities.PaymentMethod, userID string) (CouponValidation, error)
	MarkAsUsed(ctx context.Context, couponID, userID string) error
	GetByCode(ctx context.Context, code string) (entities.Coupon, error)
	Create(ctx context.Context, c entities.Coupon) (entities.Coupon, error)
}

type CouponUseCase struct {
	store interfaces.ICouponStore
	log   *slog.Logger
	now   func() time.Time
}

var _ ICouponUseCase = (*CouponUseCase)(nil)

func NewCouponUseCase(store interfaces.ICouponStore) *CouponUseCase {
	return &CouponUseCase{store: store, log: logging.New("usecase.coupon"), now: time.Now}
}

// Validate runs the precondition chain in order, short-circuiting on the
// first failure. Store lookup errors are returned as errors so the caller can
// decide to proceed without a discount.
func (u *CouponUseCase) Validate(ctx context.Context, code string, orderAmount entities.Money, method entities.PaymentMethod, userID string) (CouponValidation, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return CouponValidation{Error: couponErrEmptyCode}, nil
	}
	if orderAmount.Amount <= 0 {
		return CouponValidation{Error: couponErrInvalidAmount}, nil
	}

	coupon, err := u.store.GetByCode(ctx, code)
	if err != nil {
		u.log.Warn("coupon lookup failed", "code", code, "err", err)
		return CouponValidation{}, err
	}
	if coupon.ID == "" || !coupon.IsActive {
		return CouponValidation{Error: couponErrNotFound}, nil
	}

	now := u.now().UTC()
	if now.Before(coupon.ValidFrom) || now.After(coupon.ValidUntil) {
		return CouponValidation{Error: couponErrOutsideWindow}, nil
	}
	if coupon.MaxUses > 0 && coupon.UsedCount >= coupon.MaxUses {
		return CouponValidation{Error: couponErrExhausted}, nil
	}
	if coupon.MinOrderAmount > 0 && orderAmount.Amount < coupon.MinOrderAmount {
		return CouponValidation{Error: couponErrBelowMinimum}, nil
	}
	if method != "" && !coupon.AppliesToMethod(method) {
		return CouponValidation{Error: couponErrMethodNotAllowed}, nil
	}

	discount := coupon.DiscountFor(orderAmount)
	final := orderAmount.SubClamped(discount)

	u.log.Info("coupon valid", "code", code, "user_id", userID, "discount", discount.Amount, "final", final.Amount)
	return CouponValidation{
		IsValid:        true,
		Coupon:         coupon,
		DiscountAmount: discount,
		FinalAmount:    final,
	}, nil
}

// MarkAsUsed consumes one use of the coupon. The store performs the increment
// conditionally (used_count < max_uses) in a single update; a failed condition
// surfaces as ErrCouponExhausted.
func (u *CouponUseCase) MarkAsUsed(ctx context.Context, couponID, userID string) error {
	couponID = strings.TrimSpace(couponID)
	if couponID == "" {
		return ErrInvalidCouponID
	}
	if err := u.store.MarkUsed(ctx, couponID, userID); err != nil {
		u.log.Warn("coupon mark-used failed", "coupon_id", couponID, "user_id", userID, "err", err)
		return err
	}
	u.log.Info("coupon marked used", "coupon_id", couponID, "user_id", userID)
	return nil
}

// Create registers a new coupon. Percentage values above 100 are rejected at
// the door; DiscountFor still clamps for rows written by other tools.
func (u *CouponUseCase) Create(ctx context.Context, c entities.Coupon) (entities.Coupon, error) {
	c.Code = strings.TrimSpace(c.Code)
	if c.Code == "" {
		return entities.Coupon{}, ErrInvalidCouponCode
	}
	switch c.Type {
	case entities.DiscountTypePercentage:
		if c.Value <= 0 || c.Value > 100 {
			return entities.Coupon{}, ErrInvalidCouponValue
		}
	case entities.DiscountTypeFixedAmount:
		if c.Value <= 0 {
			return entities.Coupon{}, ErrInvalidCouponValue
		}
	default:
		return entities.Coupon{}, ErrInvalidCouponType
	}
	if !c.ValidUntil.IsZero() && !c.ValidFrom.IsZero() && c.ValidUntil.Before(c.ValidFrom) {
		return entities.Coupon{}, ErrInvalidCouponWindow
	}

	now := u.now().UTC()
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if c.ValidFrom.IsZero() {
		c.ValidFrom = now
	}
	c.UsedCount = 0
	c.CreatedAt = now
	c.UpdatedAt = now

	created, err := u.store.Create(ctx, c)
	if err != nil {
		u.log.Warn("coupon create failed", "code", c.Code, "err", err)
		return entities.Coupon{}, err
	}
	u.log.Info("coupon created", "coupon_id", created.ID, "code", created.Code, "type", created.Type)
	return created, nil
}

func (u *CouponUseCase) GetByCode(ctx context.Context, code string) (entities.Coupon, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return entities.Coupon{}, ErrCouponNotFound
	}
	c, err := u.store.GetByCode(ctx, code)
	if err != nil {
		return entities.Coupon{}, err
	}
	if c.ID == "" {
		return entities.Coupon{}, ErrCouponNotFound
	}
	return c, nil
}
