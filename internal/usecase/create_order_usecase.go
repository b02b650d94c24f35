package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"trilha_vertical/internal/domain/entities"
	"trilha_vertical/internal/logging"
	"trilha_vertical/internal/usecase/interfaces"
	"trilha_vertical/internal/usecase/processor"

	"github.com/google/uuid"
)

var (
	ErrInvalidUserID            = errors.New("invalid user id")
	ErrEmptyCart                = errors.New("cart cannot be empty")
	ErrUnsupportedPaymentMethod = errors.New("unsupported payment method")

	// Surfaced verbatim to the checkout UI.
	ErrClimbingDateNotFuture = errors.New("Climbing date must be in the future")
	ErrIncompleteParticipant = errors.New("Complete participant details required")
	ErrInvalidOrderItem      = errors.New("invalid price or quantity")
)

type CreateOrderInput struct {
	UserID        string
	Items         []entities.OrderItem
	Climbing      entities.ClimbingDetails
	PaymentMethod entities.PaymentMethod
	CouponCode    string

	// Payer fields consumed by the pix/mercadopago processors.
	PayerName  string
	PayerEmail string

	// Sponsorship fields consumed by the github processor.
	SponsorUsername      string
	SponsorshipFrequency string
}

type CreateOrderOutput struct {
	OrderID string
	Order   entities.Order
	Payment processor.Result
}

// Processors groups the five payment dispatch targets.
type Processors struct {
	Pix         *processor.PixProcessor
	Checkout    *processor.CheckoutProcessor
	Crypto      *processor.CryptoProcessor
	Sponsorship *processor.SponsorshipProcessor
	WhatsApp    *processor.WhatsAppProcessor
}

// ICreateOrderUseCase turns a validated cart into a persisted order with a
// dispatched payment.

type ICreateOrderUseCase interface {
	Execute(ctx context.Context, in CreateOrderInput) (CreateOrderOutput, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	ListByUser(ctx context.Context, userID string) ([]entities.Order, error)
}

// CreateOrderUseCase orchestrates order creation:
// validate -> subtotal -> coupon -> persist (pending_payment) -> dispatch ->
// normalize. Persistence happens before dispatch so a gateway failure always
// leaves a recoverable order row, never an orphaned payment. There is no
// rollback of persisted orders; stale pending_payment rows are swept by an
// operational job outside this service.

type CreateOrderUseCase struct {
	repo    interfaces.IOrderRepository
	coupons ICouponUseCase
	procs   Processors
	log     *slog.Logger
	now     func() time.Time
}

var _ ICreateOrderUseCase = (*CreateOrderUseCase)(nil)

func NewCreateOrderUseCase(repo interfaces.IOrderRepository, coupons ICouponUseCase, procs Processors) *CreateOrderUseCase {
	return &CreateOrderUseCase{
		repo:    repo,
		coupons: coupons,
		procs:   procs,
		log:     logging.New("usecase.create_order"),
		now:     time.Now,
	}
}

func (u *CreateOrderUseCase) Execute(ctx context.Context, in CreateOrderInput) (CreateOrderOutput, error) {
	if err := u.validate(in); err != nil {
		u.log.Warn("order validation failed", "user_id", in.UserID, "err", err)
		return CreateOrderOutput{}, err
	}

	subtotal := entities.BRL(0)
	for _, it := range in.Items {
		subtotal = subtotal.Add(it.UnitPrice.MulQty(it.Quantity))
	}

	total := subtotal
	var discount *entities.DiscountInfo
	if in.CouponCode != "" {
		discount, total = u.applyCoupon(ctx, in, subtotal)
	}

	now := u.now().UTC()
	order := entities.Order{
		ID:     uuid.NewString(),
		UserID: in.UserID,
		Items:  in.Items,
		Status: entities.OrderStatusPendingPayment,
		Payment: entities.PaymentInfo{
			Method: in.PaymentMethod,
			Status: entities.PaymentStatusPending,
		},
		Climbing:  in.Climbing,
		Subtotal:  subtotal,
		Discount:  discount,
		Total:     total,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := u.repo.Create(ctx, order)
	if err != nil {
		u.log.Error("order persist failed", "user_id", in.UserID, "err", err)
		return CreateOrderOutput{}, err
	}
	u.log.Info("order persisted", "order_id", created.ID, "method", in.PaymentMethod, "total", created.Total.Amount)

	result, err := u.dispatch(ctx, created, in)
	if err != nil {
		// The order stays pending_payment; no compensation here.
		u.log.Error("payment dispatch failed", "order_id", created.ID, "method", in.PaymentMethod, "err", err)
		return CreateOrderOutput{}, err
	}

	if providerID := result.ProviderPaymentID(); providerID != "" {
		created.Payment.ProviderPaymentID = providerID
		created.Payment.Status = entities.PaymentStatusProcessing
		created.UpdatedAt = u.now().UTC()
		if created, err = u.repo.Update(ctx, created); err != nil {
			u.log.Error("provider id attach failed", "order_id", created.ID, "provider_payment_id", providerID, "err", err)
			return CreateOrderOutput{}, err
		}
	}

	// The coupon is consumed only once the order is placed. A lost race on the
	// conditional increment keeps the counter honest; the quoted discount on
	// this already-placed order stands.
	if discount != nil {
		if err := u.coupons.MarkAsUsed(ctx, discount.CouponID, in.UserID); err != nil {
			u.log.Warn("coupon not consumed after placement", "order_id", created.ID, "coupon_id", discount.CouponID, "err", err)
		}
	}

	u.log.Info("order created", "order_id", created.ID, "method", in.PaymentMethod)
	return CreateOrderOutput{OrderID: created.ID, Order: created, Payment: result}, nil
}

func (u *CreateOrderUseCase) validate(in CreateOrderInput) error {
	if in.UserID == "" {
		return ErrInvalidUserID
	}
	if len(in.Items) == 0 {
		return ErrEmptyCart
	}
	if in.Climbing.SelectedDate.IsZero() || !in.Climbing.SelectedDate.After(u.now()) {
		return ErrClimbingDateNotFuture
	}
	for _, it := range in.Items {
		if it.Quantity <= 0 || it.UnitPrice.Amount <= 0 {
			return fmt.Errorf("%w for %s", ErrInvalidOrderItem, it.PackageName)
		}
		if !it.Participant.IsComplete() {
			return fmt.Errorf("%w for %s", ErrIncompleteParticipant, it.PackageName)
		}
	}
	return nil
}

// applyCoupon resolves the coupon and computes the reduced total. Any failure
// to resolve or validate is neutralized: checkout must be completable without
// the coupon.
func (u *CreateOrderUseCase) applyCoupon(ctx context.Context, in CreateOrderInput, subtotal entities.Money) (*entities.DiscountInfo, entities.Money) {
	validation, err := u.coupons.Validate(ctx, in.CouponCode, subtotal, in.PaymentMethod, in.UserID)
	if err != nil {
		u.log.Warn("coupon resolution failed; proceeding without discount", "code", in.CouponCode, "err", err)
		return nil, subtotal
	}
	if !validation.IsValid {
		u.log.Info("coupon rejected; proceeding without discount", "code", in.CouponCode, "reason", validation.Error)
		return nil, subtotal
	}
	return &entities.DiscountInfo{
		CouponID:       validation.Coupon.ID,
		CouponCode:     validation.Coupon.Code,
		Type:           validation.Coupon.Type,
		Value:          validation.Coupon.Value,
		DiscountAmount: validation.DiscountAmount,
	}, validation.FinalAmount
}

// dispatch is a closed, exhaustive mapping over the payment method enum. An
// unrecognized method is a contract violation and fails loudly.
func (u *CreateOrderUseCase) dispatch(ctx context.Context, order entities.Order, in CreateOrderInput) (processor.Result, error) {
	switch in.PaymentMethod {
	case entities.PaymentMethodWhatsApp:
		return u.procs.WhatsApp.Create(order)

	case entities.PaymentMethodMercadoPago:
		items := make([]interfaces.CheckoutItem, 0, len(order.Items))
		for _, it := range order.Items {
			items = append(items, interfaces.CheckoutItem{
				Title:     it.PackageName,
				UnitPrice: it.UnitPrice,
				Quantity:  it.Quantity,
			})
		}
		return u.procs.Checkout.Create(ctx, processor.CheckoutRequest{
			OrderID: order.ID,
			Items:   items,
			Payer:   interfaces.CheckoutPayer{Name: in.PayerName, Email: in.PayerEmail},
			Metadata: map[string]any{
				"order_id": order.ID,
				"user_id":  order.UserID,
			},
		})

	case entities.PaymentMethodPix:
		return u.procs.Pix.Create(ctx, processor.PixRequest{
			OrderID:     order.ID,
			Amount:      order.Total,
			PayerName:   in.PayerName,
			PayerEmail:  in.PayerEmail,
			Description: fmt.Sprintf("Reserva de escalada %s", order.ID),
		})

	case entities.PaymentMethodBitcoin, entities.PaymentMethodUSDT:
		crypto := entities.CryptoTypeBitcoin
		if in.PaymentMethod == entities.PaymentMethodUSDT {
			crypto = entities.CryptoTypeUSDT
		}
		return u.procs.Crypto.Create(ctx, processor.CryptoRequest{
			OrderID:    order.ID,
			Crypto:     crypto,
			FiatAmount: order.Total,
		})

	case entities.PaymentMethodGitHub:
		frequency := in.SponsorshipFrequency
		if frequency == "" {
			frequency = processor.SponsorshipFrequencyOneTime
		}
		return u.procs.Sponsorship.Create(ctx, processor.SponsorshipRequest{
			OrderID:         order.ID,
			Amount:          order.Total,
			SponsorUsername: in.SponsorUsername,
			Frequency:       frequency,
			Metadata:        map[string]string{"order_id": order.ID},
		})

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedPaymentMethod, in.PaymentMethod)
	}
}

func (u *CreateOrderUseCase) GetByID(ctx context.Context, id string) (entities.Order, error) {
	if id == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	o, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if o.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return o, nil
}

// ListByUser returns a user's bookings for the account area, newest first.
func (u *CreateOrderUseCase) ListByUser(ctx context.Context, userID string) ([]entities.Order, error) {
	if userID == "" {
		return nil, ErrInvalidUserID
	}
	orders, err := u.repo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	sort.Slice(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
	return orders, nil
}
