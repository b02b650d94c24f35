package interfaces

import (
	"context"
	"trilha_vertical/internal/domain/entities"
)

// IOrderRepository abstracts DynamoDB persistence for Order.
//
// The booking core must be able to:
//   - create an order in pending_payment before any payment dispatch
//   - attach the provider payment id after a processor succeeds
//   - move the status during webhook/poll reconciliation
//   - list a user's bookings for the account area

type IOrderRepository interface {
	Create(ctx context.Context, o entities.Order) (entities.Order, error)
	Update(ctx context.Context, o entities.Order) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	UpdateStatus(ctx context.Context, id string, status entities.OrderStatus) (entities.Order, error)
	ListByUserID(ctx context.Context, userID string) ([]entities.Order, error)
}
