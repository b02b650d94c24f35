package response

import (
	"time"

	"trilha_vertical/internal/domain/entities"
	"trilha_vertical/internal/usecase"
	"trilha_vertical/internal/usecase/processor"
)

type ParticipantResponse struct {
	Name              string `json:"name"`
	Age               int    `json:"age"`
	ExperienceLevel   string `json:"experience_level"`
	HealthDeclaration bool   `json:"health_declaration"`
}

type OrderItemResponse struct {
	PackageID   string              `json:"package_id"`
	PackageName string              `json:"package_name"`
	UnitPrice   int64               `json:"unit_price"`
	Quantity    int                 `json:"quantity"`
	Participant ParticipantResponse `json:"participant"`
}

type DiscountResponse struct {
	CouponID       string `json:"coupon_id"`
	CouponCode     string `json:"coupon_code"`
	Type           string `json:"type"`
	Value          int64  `json:"value"`
	DiscountAmount int64  `json:"discount_amount"`
}

type OrderResponse struct {
	ID                string              `json:"id"`
	UserID            string              `json:"user_id"`
	Items             []OrderItemResponse `json:"items"`
	Status            string              `json:"status"`
	PaymentMethod     string              `json:"payment_method"`
	PaymentStatus     string              `json:"payment_status"`
	ProviderPaymentID string              `json:"provider_payment_id,omitempty"`
	SelectedDate      time.Time           `json:"selected_date"`
	Notes             string              `json:"notes,omitempty"`
	Currency          string              `json:"currency"`
	Subtotal          int64               `json:"subtotal"`
	Discount          *DiscountResponse   `json:"discount,omitempty"`
	Total             int64               `json:"total"`
	CreatedAt         time.Time           `json:"created_at"`
	UpdatedAt         time.Time           `json:"updated_at"`
}

func FromOrder(o entities.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, OrderItemResponse{
			PackageID:   it.PackageID,
			PackageName: it.PackageName,
			UnitPrice:   it.UnitPrice.Amount,
			Quantity:    it.Quantity,
			Participant: ParticipantResponse{
				Name:              it.Participant.Name,
				Age:               it.Participant.Age,
				ExperienceLevel:   it.Participant.ExperienceLevel,
				HealthDeclaration: it.Participant.HealthDeclaration,
			},
		})
	}

	currency := string(o.Subtotal.Currency)
	if currency == "" {
		currency = string(entities.CurrencyBRL)
	}

	resp := OrderResponse{
		ID:                o.ID,
		UserID:            o.UserID,
		Items:             items,
		Status:            string(o.Status),
		PaymentMethod:     string(o.Payment.Method),
		PaymentStatus:     string(o.Payment.Status),
		ProviderPaymentID: o.Payment.ProviderPaymentID,
		SelectedDate:      o.Climbing.SelectedDate,
		Notes:             o.Climbing.Notes,
		Currency:          currency,
		Subtotal:          o.Subtotal.Amount,
		Total:             o.Total.Amount,
		CreatedAt:         o.CreatedAt,
		UpdatedAt:         o.UpdatedAt,
	}
	if o.Discount != nil {
		resp.Discount = &DiscountResponse{
			CouponID:       o.Discount.CouponID,
			CouponCode:     o.Discount.CouponCode,
			Type:           string(o.Discount.Type),
			Value:          o.Discount.Value,
			DiscountAmount: o.Discount.DiscountAmount.Amount,
		}
	}
	return resp
}

// PaymentPayloadResponse is the method-specific payload the checkout needs to
// continue the flow. Exactly one group of fields is populated, matching the
// order's payment method.
type PaymentPayloadResponse struct {
	// pix
	PaymentID    string `json:"payment_id,omitempty"`
	QRCode       string `json:"qr_code,omitempty"`
	QRCodeBase64 string `json:"qr_code_base64,omitempty"`
	TicketURL    string `json:"ticket_url,omitempty"`

	// mercadopago hosted checkout
	PreferenceID     string `json:"preference_id,omitempty"`
	InitPoint        string `json:"init_point,omitempty"`
	SandboxInitPoint string `json:"sandbox_init_point,omitempty"`

	// bitcoin / usdt
	WalletAddress string  `json:"wallet_address,omitempty"`
	Network       string  `json:"network,omitempty"`
	CryptoAmount  string  `json:"crypto_amount,omitempty"`
	ExchangeRate  float64 `json:"exchange_rate,omitempty"`

	// github
	SponsorshipURL string `json:"sponsorship_url,omitempty"`

	// whatsapp
	WhatsAppURL string `json:"whatsapp_url,omitempty"`

	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

type CreateOrderResponse struct {
	Success bool                   `json:"success"`
	OrderID string                 `json:"order_id"`
	Order   OrderResponse          `json:"order"`
	Payment PaymentPayloadResponse `json:"payment"`
}

func FromOrderCreation(out usecase.CreateOrderOutput) CreateOrderResponse {
	var payment PaymentPayloadResponse
	switch p := out.Payment.(type) {
	case processor.PixResult:
		expires := p.ExpiresAt
		payment = PaymentPayloadResponse{
			PaymentID:    p.ID,
			QRCode:       p.QRCode,
			QRCodeBase64: p.QRCodeBase64,
			TicketURL:    p.TicketURL,
			ExpiresAt:    &expires,
		}
	case processor.CheckoutResult:
		payment = PaymentPayloadResponse{
			PreferenceID:     p.PreferenceID,
			InitPoint:        p.InitPoint,
			SandboxInitPoint: p.SandboxInitPoint,
		}
	case processor.CryptoResult:
		expires := p.ExpiresAt
		payment = PaymentPayloadResponse{
			PaymentID:     p.PaymentID,
			WalletAddress: p.WalletAddress,
			Network:       p.Network,
			CryptoAmount:  p.CryptoAmount,
			ExchangeRate:  p.ExchangeRate,
			ExpiresAt:     &expires,
		}
	case processor.SponsorshipResult:
		payment = PaymentPayloadResponse{SponsorshipURL: p.SponsorshipURL}
	case processor.WhatsAppResult:
		payment = PaymentPayloadResponse{WhatsAppURL: p.DeepLink}
	}

	return CreateOrderResponse{
		Success: true,
		OrderID: out.OrderID,
		Order:   FromOrder(out.Order),
		Payment: payment,
	}
}
