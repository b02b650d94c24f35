package entities

import "time"

// OrderStatus represents the booking lifecycle of an order.
//
// State machine:
//
//	pending_payment -> confirmed -> in_progress -> completed
//	pending_payment -> cancelled
//	pending_payment -> pending_review -> confirmed | cancelled
//
// completed and cancelled are terminal: no transition leaves them, and
// re-applying the same terminal status is an idempotent no-op.

type OrderStatus string

const (
	OrderStatusPendingPayment OrderStatus = "pending_payment"
	OrderStatusConfirmed      OrderStatus = "confirmed"
	OrderStatusInProgress     OrderStatus = "in_progress"
	OrderStatusCompleted      OrderStatus = "completed"
	OrderStatusCancelled      OrderStatus = "cancelled"
	OrderStatusPendingReview  OrderStatus = "pending_review"
)

var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPendingPayment: {OrderStatusConfirmed, OrderStatusCancelled, OrderStatusPendingReview},
	OrderStatusConfirmed:      {OrderStatusInProgress, OrderStatusCompleted, OrderStatusCancelled},
	OrderStatusInProgress:     {OrderStatusCompleted},
	OrderStatusPendingReview:  {OrderStatusConfirmed, OrderStatusCancelled},
}

func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusCompleted || s == OrderStatusCancelled
}

// CanTransitionTo reports whether moving to next is a legal transition.
// Same-state transitions are allowed (idempotent re-application).
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	if s == next {
		return true
	}
	if s.IsTerminal() {
		return false
	}
	for _, allowed := range orderTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// PaymentMethod enumerates the supported checkout methods.

type PaymentMethod string

const (
	PaymentMethodWhatsApp    PaymentMethod = "whatsapp"
	PaymentMethodMercadoPago PaymentMethod = "mercadopago"
	PaymentMethodPix         PaymentMethod = "pix"
	PaymentMethodBitcoin     PaymentMethod = "bitcoin"
	PaymentMethodUSDT        PaymentMethod = "usdt"
	PaymentMethodGitHub      PaymentMethod = "github"
)

// Label is the human-readable method name used in order summaries.
func (m PaymentMethod) Label() string {
	switch m {
	case PaymentMethodWhatsApp:
		return "WhatsApp"
	case PaymentMethodMercadoPago:
		return "Mercado Pago"
	case PaymentMethodPix:
		return "PIX"
	case PaymentMethodBitcoin:
		return "Bitcoin"
	case PaymentMethodUSDT:
		return "USDT"
	case PaymentMethodGitHub:
		return "GitHub Sponsors"
	}
	return string(m)
}

// PaymentStatus tracks the payment leg independently of the booking status.

type PaymentStatus string

const (
	PaymentStatusPending    PaymentStatus = "pending"
	PaymentStatusProcessing PaymentStatus = "processing"
	PaymentStatusCompleted  PaymentStatus = "completed"
	PaymentStatusFailed     PaymentStatus = "failed"
	PaymentStatusRefunded   PaymentStatus = "refunded"
)

type PaymentInfo struct {
	Method            PaymentMethod `json:"method"`
	Status            PaymentStatus `json:"status"`
	ProviderPaymentID string        `json:"provider_payment_id,omitempty"`
	ProcessedAt       *time.Time    `json:"processed_at,omitempty"`
}

// ParticipantDetails is the per-item climber information collected at checkout.
// Every field is mandatory; HealthDeclaration must be an affirmative answer.

type ParticipantDetails struct {
	Name              string `json:"name"`
	Age               int    `json:"age"`
	ExperienceLevel   string `json:"experience_level"`
	HealthDeclaration bool   `json:"health_declaration"`
}

func (p ParticipantDetails) IsComplete() bool {
	return p.Name != "" && p.Age > 0 && p.ExperienceLevel != "" && p.HealthDeclaration
}

type ClimbingDetails struct {
	SelectedDate time.Time `json:"selected_date"`
	Notes        string    `json:"notes,omitempty"`
}

type OrderItem struct {
	PackageID   string             `json:"package_id"`
	PackageName string             `json:"package_name"`
	UnitPrice   Money              `json:"unit_price"`
	Quantity    int                `json:"quantity"`
	Participant ParticipantDetails `json:"participant"`
}

// DiscountInfo is the applied-coupon snapshot embedded in an order. It is
// derived at creation time and never stored independently of its order.

type DiscountInfo struct {
	CouponID       string       `json:"coupon_id"`
	CouponCode     string       `json:"coupon_code"`
	Type           DiscountType `json:"type"`
	Value          int64        `json:"value"`
	DiscountAmount Money        `json:"discount_amount"`
}

// Order is the booking aggregate persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (user_id-index): user_id
//
// Invariants:
//   - Items is never empty and every item carries complete participant details.
//   - Total.Amount = Subtotal.Amount - discount (>= 0).
//   - Climbing.SelectedDate is strictly in the future at creation time.
//
// Orders are created in pending_payment and only ever terminalized, never
// deleted.

type Order struct {
	ID        string          `json:"id"`
	UserID    string          `json:"user_id"`
	Items     []OrderItem     `json:"items"`
	Status    OrderStatus     `json:"status"`
	Payment   PaymentInfo     `json:"payment"`
	Climbing  ClimbingDetails `json:"climbing_details"`
	Subtotal  Money           `json:"subtotal"`
	Discount  *DiscountInfo   `json:"discount,omitempty"`
	Total     Money           `json:"total"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
