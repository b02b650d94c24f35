package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"trilha_vertical/internal/adapter/http/handlers/mocks"
	"trilha_vertical/internal/domain/entities"
	"trilha_vertical/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newCouponRouter(t *testing.T) (*gin.Engine, *mocks.MockICouponUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	uc := mocks.NewMockICouponUseCase(ctrl)
	h := NewCouponHandler(uc)

	r := gin.New()
	r.POST("/v1/coupons", h.CreateCoupon)
	r.GET("/v1/coupons/:code", h.GetCoupon)
	r.POST("/v1/coupons/validate", h.ValidateCoupon)
	return r, uc
}

func TestCouponHandler_ValidateCoupon(t *testing.T) {
	t.Run("invalid json", func(t *testing.T) {
		r, _ := newCouponRouter(t)

		req := httptest.NewRequest(http.MethodPost, "/v1/coupons/validate", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("rejection stays 200 with valid=false", func(t *testing.T) {
		r, uc := newCouponRouter(t)
		uc.EXPECT().
			Validate(gomock.Any(), "CLIMB20", entities.BRL(40000), entities.PaymentMethodPix, "user-1").
			Return(usecase.CouponValidation{IsValid: false, Error: "Coupon expired"}, nil)

		body := `{"code":"CLIMB20","order_amount":40000,"payment_method":"pix","user_id":"user-1"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/coupons/validate", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp struct {
			Valid bool   `json:"valid"`
			Error string `json:"error"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp.Valid || resp.Error != "Coupon expired" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("valid coupon returns the discounted total", func(t *testing.T) {
		r, uc := newCouponRouter(t)
		coupon := entities.Coupon{
			ID:         "cpn-1",
			Code:       "climb20",
			Type:       entities.DiscountTypePercentage,
			Value:      20,
			IsActive:   true,
			ValidUntil: time.Now().UTC().Add(24 * time.Hour),
		}
		uc.EXPECT().
			Validate(gomock.Any(), "climb20", entities.BRL(40000), entities.PaymentMethodPix, "user-1").
			Return(usecase.CouponValidation{
				IsValid:        true,
				Coupon:         coupon,
				DiscountAmount: entities.BRL(8000),
				FinalAmount:    entities.BRL(32000),
			}, nil)

		body := `{"code":"climb20","order_amount":40000,"payment_method":"pix","user_id":"user-1"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/coupons/validate", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp struct {
			Valid          bool  `json:"valid"`
			DiscountAmount int64 `json:"discount_amount"`
			FinalAmount    int64 `json:"final_amount"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if !resp.Valid || resp.DiscountAmount != 8000 || resp.FinalAmount != 32000 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("store failure returns 500", func(t *testing.T) {
		r, uc := newCouponRouter(t)
		uc.EXPECT().
			Validate(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(usecase.CouponValidation{}, errors.New("dynamodb unavailable"))

		body := `{"code":"climb20","order_amount":40000}`
		req := httptest.NewRequest(http.MethodPost, "/v1/coupons/validate", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestCouponHandler_CreateCoupon(t *testing.T) {
	t.Run("invalid json", func(t *testing.T) {
		r, _ := newCouponRouter(t)

		req := httptest.NewRequest(http.MethodPost, "/v1/coupons", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("out of range value maps to 400", func(t *testing.T) {
		r, uc := newCouponRouter(t)
		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Coupon{}, usecase.ErrInvalidCouponValue)

		body := `{"code":"mega","type":"percentage","value":150,"valid_until":"2027-01-01T00:00:00Z"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/coupons", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success returns the stored coupon", func(t *testing.T) {
		r, uc := newCouponRouter(t)
		uc.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, c entities.Coupon) (entities.Coupon, error) {
				if c.Code != "climb20" || c.Type != entities.DiscountTypePercentage || c.Value != 20 || !c.IsActive {
					t.Fatalf("payload not converted: %+v", c)
				}
				c.ID = "cpn-9"
				return c, nil
			},
		)

		body := `{"code":"climb20","type":"Percentage","value":20,"valid_until":"2027-01-01T00:00:00Z","payment_methods":["PIX"]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/coupons", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var resp struct {
			ID   string `json:"id"`
			Code string `json:"code"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp.ID != "cpn-9" || resp.Code != "climb20" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestCouponHandler_GetCoupon(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		r, uc := newCouponRouter(t)
		uc.EXPECT().GetByCode(gomock.Any(), "ghost").Return(entities.Coupon{}, usecase.ErrCouponNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/coupons/ghost", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("found", func(t *testing.T) {
		r, uc := newCouponRouter(t)
		coupon := entities.Coupon{
			ID:         "cpn-1",
			Code:       "climb20",
			Type:       entities.DiscountTypePercentage,
			Value:      20,
			IsActive:   true,
			ValidUntil: time.Now().UTC().Add(24 * time.Hour),
		}
		uc.EXPECT().GetByCode(gomock.Any(), "climb20").Return(coupon, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/coupons/climb20", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp struct {
			Code  string `json:"code"`
			Value int64  `json:"value"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp.Code != "climb20" || resp.Value != 20 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}
