package request

import (
	"strings"
	"time"

	"trilha_vertical/internal/domain/entities"
	"trilha_vertical/internal/usecase"
)

type ParticipantRequest struct {
	Name              string `json:"name"`
	Age               int    `json:"age"`
	ExperienceLevel   string `json:"experience_level"`
	HealthDeclaration bool   `json:"health_declaration"`
}

type OrderItemRequest struct {
	PackageID   string             `json:"package_id" binding:"required"`
	PackageName string             `json:"package_name" binding:"required"`
	UnitPrice   int64              `json:"unit_price" binding:"required"`
	Quantity    int                `json:"quantity" binding:"required"`
	Participant ParticipantRequest `json:"participant"`
}

type ClimbingRequest struct {
	SelectedDate time.Time `json:"selected_date" binding:"required"`
	Notes        string    `json:"notes"`
}

// CreateOrderRequest is the checkout payload. Amounts arrive in minor units
// (centavos); participant completeness and date rules are enforced by the use
// case so their failures surface with domain messages, not binding errors.
type CreateOrderRequest struct {
	UserID        string             `json:"user_id" binding:"required"`
	Items         []OrderItemRequest `json:"items" binding:"required"`
	Climbing      ClimbingRequest    `json:"climbing_details" binding:"required"`
	PaymentMethod string             `json:"payment_method" binding:"required"`
	CouponCode    string             `json:"coupon_code"`

	PayerName  string `json:"payer_name"`
	PayerEmail string `json:"payer_email"`

	SponsorUsername      string `json:"sponsor_username"`
	SponsorshipFrequency string `json:"sponsorship_frequency"`
}

func (r CreateOrderRequest) ToInput() usecase.CreateOrderInput {
	items := make([]entities.OrderItem, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, entities.OrderItem{
			PackageID:   it.PackageID,
			PackageName: it.PackageName,
			UnitPrice:   entities.BRL(it.UnitPrice),
			Quantity:    it.Quantity,
			Participant: entities.ParticipantDetails{
				Name:              strings.TrimSpace(it.Participant.Name),
				Age:               it.Participant.Age,
				ExperienceLevel:   it.Participant.ExperienceLevel,
				HealthDeclaration: it.Participant.HealthDeclaration,
			},
		})
	}

	return usecase.CreateOrderInput{
		UserID: strings.TrimSpace(r.UserID),
		Items:  items,
		Climbing: entities.ClimbingDetails{
			SelectedDate: r.Climbing.SelectedDate,
			Notes:        strings.TrimSpace(r.Climbing.Notes),
		},
		PaymentMethod:        entities.PaymentMethod(strings.ToLower(strings.TrimSpace(r.PaymentMethod))),
		CouponCode:           strings.TrimSpace(r.CouponCode),
		PayerName:            strings.TrimSpace(r.PayerName),
		PayerEmail:           strings.TrimSpace(r.PayerEmail),
		SponsorUsername:      strings.TrimSpace(r.SponsorUsername),
		SponsorshipFrequency: strings.TrimSpace(r.SponsorshipFrequency),
	}
}
