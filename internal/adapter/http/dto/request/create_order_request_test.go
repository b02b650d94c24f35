package request

import (
	"testing"
	"time"

	"trilha_vertical/internal/domain/entities"
)

func TestCreateOrderRequest_ToInput(t *testing.T) {
	date := time.Date(2026, 9, 12, 8, 0, 0, 0, time.UTC)
	req := CreateOrderRequest{
		UserID: "  user-1  ",
		Items: []OrderItemRequest{{
			PackageID:   "pkg-pedra-grande",
			PackageName: "Pedra Grande Day Climb",
			UnitPrice:   40000,
			Quantity:    2,
			Participant: ParticipantRequest{Name: "  Ana Souza  ", Age: 28, ExperienceLevel: "intermediate", HealthDeclaration: true},
		}},
		Climbing:      ClimbingRequest{SelectedDate: date, Notes: " vegetarian lunch "},
		PaymentMethod: " PIX ",
		CouponCode:    " climb20 ",
		PayerName:     "Ana Souza",
		PayerEmail:    "ana@example.com",
	}

	in := req.ToInput()

	if in.UserID != "user-1" {
		t.Errorf("expected trimmed user id, got %q", in.UserID)
	}
	if in.PaymentMethod != entities.PaymentMethodPix {
		t.Errorf("expected normalized payment method, got %q", in.PaymentMethod)
	}
	if in.CouponCode != "climb20" {
		t.Errorf("expected trimmed coupon code, got %q", in.CouponCode)
	}
	if in.Climbing.Notes != "vegetarian lunch" {
		t.Errorf("expected trimmed notes, got %q", in.Climbing.Notes)
	}
	if len(in.Items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(in.Items))
	}
	item := in.Items[0]
	if item.UnitPrice != entities.BRL(40000) || item.Quantity != 2 {
		t.Errorf("unexpected item pricing: %+v", item)
	}
	if item.Participant.Name != "Ana Souza" {
		t.Errorf("expected trimmed participant name, got %q", item.Participant.Name)
	}
}

func TestValidateCouponRequest_Resolvers(t *testing.T) {
	req := ValidateCouponRequest{Code: "  CLIMB20  ", PaymentMethod: " MercadoPago "}

	if got := req.ResolveCode(); got != "CLIMB20" {
		t.Errorf("expected trimmed code, got %q", got)
	}
	if got := req.ResolveMethod(); got != entities.PaymentMethodMercadoPago {
		t.Errorf("expected normalized method, got %q", got)
	}
}

func TestPaymentWebhookRequest_Resolvers(t *testing.T) {
	t.Run("flat payment id wins", func(t *testing.T) {
		req := PaymentWebhookRequest{ExternalReference: " ord-1 ", PaymentID: "pay-1"}
		req.Data.ID = "999"

		if got := req.ResolveReference(); got != "ord-1" {
			t.Errorf("expected trimmed reference, got %q", got)
		}
		if got := req.ResolvePaymentID(); got != "pay-1" {
			t.Errorf("expected flat payment id, got %q", got)
		}
	})

	t.Run("falls back to data id", func(t *testing.T) {
		req := PaymentWebhookRequest{ExternalReference: "ord-1"}
		req.Data.ID = "123456"

		if got := req.ResolvePaymentID(); got != "123456" {
			t.Errorf("expected data id, got %q", got)
		}
	})
}
