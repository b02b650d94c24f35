package interfaces

import (
	"context"
	"trilha_vertical/internal/domain/entities"
)

// ICouponStore abstracts DynamoDB persistence for Coupon.
//
// GetByCode is case-insensitive (codes are stored lowercased).
//
// MarkUsed must be an atomic conditional increment: used_count is bumped only
// while used_count < max_uses, in a single update. Implementations signal an
// exhausted coupon with usecase.ErrCouponExhausted semantics (zero rows
// affected), never with an unsynchronized read-then-write.

type ICouponStore interface {
	Create(ctx context.Context, c entities.Coupon) (entities.Coupon, error)
	GetByCode(ctx context.Context, code string) (entities.Coupon, error)
	MarkUsed(ctx context.Context, couponID, userID string) error
}
