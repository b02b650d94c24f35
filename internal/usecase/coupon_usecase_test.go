package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"trilha_vertical/internal/domain/entities"
	mock_interfaces "trilha_vertical/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func activeCoupon() entities.Coupon {
	now := time.Now().UTC()
	return entities.Coupon{
		ID:         "cpn-1",
		Code:       "climb20",
		Type:       entities.DiscountTypePercentage,
		Value:      20,
		ValidFrom:  now.Add(-24 * time.Hour),
		ValidUntil: now.Add(24 * time.Hour),
		IsActive:   true,
	}
}

func TestCouponUseCase_Validate_Preconditions(t *testing.T) {
	t.Run("empty code", func(t *testing.T) {
		uc := NewCouponUseCase(nil)
		v, err := uc.Validate(context.Background(), "  ", entities.BRL(40000), entities.PaymentMethodPix, "user-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if v.IsValid || v.Error != "Coupon code is required" {
			t.Fatalf("unexpected validation: %+v", v)
		}
	})

	t.Run("non-positive amount", func(t *testing.T) {
		uc := NewCouponUseCase(nil)
		v, err := uc.Validate(context.Background(), "CLIMB20", entities.BRL(0), entities.PaymentMethodPix, "user-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if v.IsValid || v.Error != "Order amount must be positive" {
			t.Fatalf("unexpected validation: %+v", v)
		}
	})

	t.Run("lookup error is surfaced", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockICouponStore(ctrl)
		store.EXPECT().GetByCode(gomock.Any(), "CLIMB20").Return(entities.Coupon{}, errors.New("db down"))

		uc := NewCouponUseCase(store)
		_, err := uc.Validate(context.Background(), "CLIMB20", entities.BRL(40000), entities.PaymentMethodPix, "user-1")
		if err == nil || err.Error() != "db down" {
			t.Fatalf("expected db down, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockICouponStore(ctrl)
		store.EXPECT().GetByCode(gomock.Any(), "NOPE").Return(entities.Coupon{}, nil)

		uc := NewCouponUseCase(store)
		v, err := uc.Validate(context.Background(), "NOPE", entities.BRL(40000), entities.PaymentMethodPix, "user-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if v.IsValid || v.Error != "Coupon not found or inactive" {
			t.Fatalf("unexpected validation: %+v", v)
		}
	})

	t.Run("inactive", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		c := activeCoupon()
		c.IsActive = false
		store := mock_interfaces.NewMockICouponStore(ctrl)
		store.EXPECT().GetByCode(gomock.Any(), "climb20").Return(c, nil)

		uc := NewCouponUseCase(store)
		v, _ := uc.Validate(context.Background(), "climb20", entities.BRL(40000), entities.PaymentMethodPix, "user-1")
		if v.IsValid || v.Error != "Coupon not found or inactive" {
			t.Fatalf("unexpected validation: %+v", v)
		}
	})
}

func TestCouponUseCase_Validate_Rules(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*entities.Coupon)
		amount  int64
		method  entities.PaymentMethod
		wantErr string
	}{
		{
			name:    "expired window",
			mutate:  func(c *entities.Coupon) { c.ValidUntil = time.Now().UTC().Add(-time.Hour) },
			amount:  40000,
			method:  entities.PaymentMethodPix,
			wantErr: "Coupon is not valid at this time",
		},
		{
			name:    "not yet valid",
			mutate:  func(c *entities.Coupon) { c.ValidFrom = time.Now().UTC().Add(time.Hour) },
			amount:  40000,
			method:  entities.PaymentMethodPix,
			wantErr: "Coupon is not valid at this time",
		},
		{
			name:    "exhausted",
			mutate:  func(c *entities.Coupon) { c.MaxUses = 5; c.UsedCount = 5 },
			amount:  40000,
			method:  entities.PaymentMethodPix,
			wantErr: "Coupon usage limit reached",
		},
		{
			name:    "below minimum order",
			mutate:  func(c *entities.Coupon) { c.MinOrderAmount = 50000 },
			amount:  40000,
			method:  entities.PaymentMethodPix,
			wantErr: "Order amount below coupon minimum",
		},
		{
			name:    "method restricted",
			mutate:  func(c *entities.Coupon) { c.PaymentMethods = []entities.PaymentMethod{entities.PaymentMethodMercadoPago} },
			amount:  40000,
			method:  entities.PaymentMethodPix,
			wantErr: "Coupon not valid for this payment method",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			c := activeCoupon()
			tc.mutate(&c)
			store := mock_interfaces.NewMockICouponStore(ctrl)
			store.EXPECT().GetByCode(gomock.Any(), "climb20").Return(c, nil)

			uc := NewCouponUseCase(store)
			v, err := uc.Validate(context.Background(), "climb20", entities.BRL(tc.amount), tc.method, "user-1")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if v.IsValid || v.Error != tc.wantErr {
				t.Fatalf("expected %q, got %+v", tc.wantErr, v)
			}
		})
	}
}

func TestCouponUseCase_Validate_Success(t *testing.T) {
	t.Run("percentage", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockICouponStore(ctrl)
		store.EXPECT().GetByCode(gomock.Any(), "CLIMB20").Return(activeCoupon(), nil)

		uc := NewCouponUseCase(store)
		v, err := uc.Validate(context.Background(), "CLIMB20", entities.BRL(40000), entities.PaymentMethodPix, "user-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !v.IsValid {
			t.Fatalf("expected valid, got %+v", v)
		}
		if v.DiscountAmount.Amount != 8000 || v.FinalAmount.Amount != 32000 {
			t.Fatalf("unexpected amounts: discount=%d final=%d", v.DiscountAmount.Amount, v.FinalAmount.Amount)
		}
	})

	t.Run("fixed amount clamps", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		c := activeCoupon()
		c.Type = entities.DiscountTypeFixedAmount
		c.Value = 99999
		store := mock_interfaces.NewMockICouponStore(ctrl)
		store.EXPECT().GetByCode(gomock.Any(), "climb20").Return(c, nil)

		uc := NewCouponUseCase(store)
		v, _ := uc.Validate(context.Background(), "climb20", entities.BRL(40000), entities.PaymentMethodPix, "user-1")
		if !v.IsValid || v.DiscountAmount.Amount != 40000 || v.FinalAmount.Amount != 0 {
			t.Fatalf("expected full clamp, got %+v", v)
		}
	})

	t.Run("validation has no side effects", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockICouponStore(ctrl)
		// GetByCode twice, MarkUsed never.
		store.EXPECT().GetByCode(gomock.Any(), "CLIMB20").Return(activeCoupon(), nil).Times(2)

		uc := NewCouponUseCase(store)
		for i := 0; i < 2; i++ {
			if v, err := uc.Validate(context.Background(), "CLIMB20", entities.BRL(40000), entities.PaymentMethodPix, "user-1"); err != nil || !v.IsValid {
				t.Fatalf("attempt %d: unexpected result %+v err=%v", i, v, err)
			}
		}
	})
}

func TestCouponUseCase_MarkAsUsed(t *testing.T) {
	t.Run("empty id", func(t *testing.T) {
		uc := NewCouponUseCase(nil)
		if err := uc.MarkAsUsed(context.Background(), " ", "user-1"); !errors.Is(err, ErrInvalidCouponID) {
			t.Fatalf("expected ErrInvalidCouponID, got %v", err)
		}
	})

	t.Run("exhausted propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockICouponStore(ctrl)
		store.EXPECT().MarkUsed(gomock.Any(), "cpn-1", "user-1").Return(ErrCouponExhausted)

		uc := NewCouponUseCase(store)
		if err := uc.MarkAsUsed(context.Background(), "cpn-1", "user-1"); !errors.Is(err, ErrCouponExhausted) {
			t.Fatalf("expected ErrCouponExhausted, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockICouponStore(ctrl)
		store.EXPECT().MarkUsed(gomock.Any(), "cpn-1", "user-1").Return(nil)

		uc := NewCouponUseCase(store)
		if err := uc.MarkAsUsed(context.Background(), "cpn-1", "user-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestCouponUseCase_Create(t *testing.T) {
	newStore := func(t *testing.T) *mock_interfaces.MockICouponStore {
		t.Helper()
		ctrl := gomock.NewController(t)
		t.Cleanup(ctrl.Finish)
		return mock_interfaces.NewMockICouponStore(ctrl)
	}

	t.Run("rejects invalid definitions", func(t *testing.T) {
		now := time.Now().UTC()
		cases := []struct {
			name   string
			coupon entities.Coupon
			want   error
		}{
			{name: "empty code", coupon: entities.Coupon{Type: entities.DiscountTypePercentage, Value: 10}, want: ErrInvalidCouponCode},
			{name: "percentage above 100", coupon: entities.Coupon{Code: "mega", Type: entities.DiscountTypePercentage, Value: 150}, want: ErrInvalidCouponValue},
			{name: "non-positive value", coupon: entities.Coupon{Code: "zero", Type: entities.DiscountTypeFixedAmount, Value: 0}, want: ErrInvalidCouponValue},
			{name: "unknown type", coupon: entities.Coupon{Code: "odd", Type: "bogof", Value: 10}, want: ErrInvalidCouponType},
			{name: "inverted window", coupon: entities.Coupon{Code: "flip", Type: entities.DiscountTypePercentage, Value: 10, ValidFrom: now, ValidUntil: now.Add(-time.Hour)}, want: ErrInvalidCouponWindow},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				uc := NewCouponUseCase(newStore(t))
				if _, err := uc.Create(context.Background(), tc.coupon); !errors.Is(err, tc.want) {
					t.Fatalf("expected %v, got %v", tc.want, err)
				}
			})
		}
	})

	t.Run("mints id and defaults on success", func(t *testing.T) {
		store := newStore(t)
		var stored entities.Coupon
		store.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Coupon{})).DoAndReturn(
			func(_ context.Context, c entities.Coupon) (entities.Coupon, error) {
				stored = c
				return c, nil
			},
		)

		uc := NewCouponUseCase(store)
		created, err := uc.Create(context.Background(), entities.Coupon{
			Code:       "climb20",
			Type:       entities.DiscountTypePercentage,
			Value:      20,
			ValidUntil: time.Now().UTC().Add(30 * 24 * time.Hour),
			UsedCount:  7,
			IsActive:   true,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.ID == "" {
			t.Fatal("expected a minted coupon id")
		}
		if stored.ValidFrom.IsZero() {
			t.Fatal("expected ValidFrom to default to now")
		}
		if stored.UsedCount != 0 {
			t.Fatalf("expected used count reset, got %d", stored.UsedCount)
		}
		if stored.CreatedAt.IsZero() || stored.UpdatedAt.IsZero() {
			t.Fatalf("expected timestamps, got %+v", stored)
		}
	})

	t.Run("store failure is surfaced", func(t *testing.T) {
		store := newStore(t)
		store.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Coupon{}, errors.New("duplicate id"))

		uc := NewCouponUseCase(store)
		if _, err := uc.Create(context.Background(), entities.Coupon{
			Code:       "climb20",
			Type:       entities.DiscountTypePercentage,
			Value:      20,
			ValidUntil: time.Now().UTC().Add(time.Hour),
		}); err == nil {
			t.Fatal("expected store error to surface")
		}
	})
}

func TestCouponUseCase_GetByCode(t *testing.T) {
	t.Run("empty code", func(t *testing.T) {
		uc := NewCouponUseCase(nil)
		if _, err := uc.GetByCode(context.Background(), "  "); !errors.Is(err, ErrCouponNotFound) {
			t.Fatalf("expected ErrCouponNotFound, got %v", err)
		}
	})

	t.Run("missing coupon", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockICouponStore(ctrl)
		store.EXPECT().GetByCode(gomock.Any(), "GHOST").Return(entities.Coupon{}, nil)

		uc := NewCouponUseCase(store)
		if _, err := uc.GetByCode(context.Background(), "GHOST"); !errors.Is(err, ErrCouponNotFound) {
			t.Fatalf("expected ErrCouponNotFound, got %v", err)
		}
	})

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockICouponStore(ctrl)
		store.EXPECT().GetByCode(gomock.Any(), "climb20").Return(activeCoupon(), nil)

		uc := NewCouponUseCase(store)
		c, err := uc.GetByCode(context.Background(), "climb20")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.ID != "cpn-1" {
			t.Fatalf("unexpected coupon: %+v", c)
		}
	})
}
