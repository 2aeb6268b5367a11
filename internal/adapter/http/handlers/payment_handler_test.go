package handlers

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"voice_billing/internal/adapter/http/handlers/mocks"
	"voice_billing/internal/domain/entities"
	"voice_billing/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestPaymentHandler_Checkout(t *testing.T) {
	gin.SetMode(gin.TestMode)

	routes := []struct {
		path   string
		expect func(uc *mocks.MockIPaymentUseCase) *gomock.Call
		bind   func(h *PaymentHandler) gin.HandlerFunc
	}{
		{
			path:   "/v1/payments/razorpay/order",
			expect: func(uc *mocks.MockIPaymentUseCase) *gomock.Call { return uc.EXPECT().CreateRazorpayOrder(gomock.Any(), "tok") },
			bind:   func(h *PaymentHandler) gin.HandlerFunc { return h.CreateRazorpayOrder },
		},
		{
			path:   "/v1/payments/stripe/session",
			expect: func(uc *mocks.MockIPaymentUseCase) *gomock.Call { return uc.EXPECT().CreateStripeSession(gomock.Any(), "tok") },
			bind:   func(h *PaymentHandler) gin.HandlerFunc { return h.CreateStripeSession },
		},
		{
			path: "/v1/payments/mercadopago/preference",
			expect: func(uc *mocks.MockIPaymentUseCase) *gomock.Call {
				return uc.EXPECT().CreateMercadoPagoPreference(gomock.Any(), "tok")
			},
			bind: func(h *PaymentHandler) gin.HandlerFunc { return h.CreateMercadoPagoPreference },
		},
	}

	for _, rt := range routes {
		t.Run(rt.path+" success", func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc := mocks.NewMockIPaymentUseCase(ctrl)
			rt.expect(uc).Return(usecase.CheckoutResult{InvoiceID: "ACM092025", OrderID: "order_1", AmountMinor: 118000, Currency: "INR"}, nil)
			h := NewPaymentHandler(uc)

			r := gin.New()
			r.POST(rt.path, rt.bind(h))
			req := httptest.NewRequest(http.MethodPost, rt.path, bytes.NewBufferString(`{"token":"tok"}`))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d", w.Code)
			}
		})

		t.Run(rt.path+" already paid", func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc := mocks.NewMockIPaymentUseCase(ctrl)
			rt.expect(uc).Return(usecase.CheckoutResult{}, usecase.ErrInvoiceAlreadyPaid)
			h := NewPaymentHandler(uc)

			r := gin.New()
			r.POST(rt.path, rt.bind(h))
			req := httptest.NewRequest(http.MethodPost, rt.path, bytes.NewBufferString(`{"token":"tok"}`))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != http.StatusConflict {
				t.Fatalf("expected 409, got %d", w.Code)
			}
		})
	}

	t.Run("missing token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewPaymentHandler(mocks.NewMockIPaymentUseCase(ctrl))

		r := gin.New()
		r.POST("/v1/payments/razorpay/order", h.CreateRazorpayOrder)
		req := httptest.NewRequest(http.MethodPost, "/v1/payments/razorpay/order", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("processor not configured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		uc.EXPECT().CreateStripeSession(gomock.Any(), "tok").Return(usecase.CheckoutResult{}, usecase.ErrProcessorNotConfigured)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/payments/stripe/session", h.CreateStripeSession)
		req := httptest.NewRequest(http.MethodPost, "/v1/payments/stripe/session", bytes.NewBufferString(`{"token":"tok"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})
}

func TestPaymentHandler_VerifyRazorpayPayment(t *testing.T) {
	gin.SetMode(gin.TestMode)
	body := `{"token":"tok","razorpay_payment_id":"pay_1","razorpay_order_id":"order_1","razorpay_signature":"sig"}`

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		uc.EXPECT().VerifyRazorpayPayment(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, cmd usecase.VerifyPaymentCommand) (usecase.ConfirmResult, error) {
			if cmd.Token != "tok" || cmd.PaymentID != "pay_1" || cmd.OrderID != "order_1" || cmd.Signature != "sig" {
				t.Fatalf("unexpected command: %+v", cmd)
			}
			inv := sampleInvoice()
			inv.PaymentStatus = entities.PaymentStatusPaid
			return usecase.ConfirmResult{
				Outcome: usecase.OutcomeSuccess,
				Invoice: inv,
				Record:  entities.PaymentRecord{ID: "pay_1", AmountPaid: decimal.RequireFromString("1180"), Currency: "INR"},
			}, nil
		})
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/payments/razorpay/verify", h.VerifyRazorpayPayment)
		req := httptest.NewRequest(http.MethodPost, "/v1/payments/razorpay/verify", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if !bytes.Contains(w.Body.Bytes(), []byte(`"amount_paid":"1180.00"`)) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("signature mismatch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		uc.EXPECT().VerifyRazorpayPayment(gomock.Any(), gomock.Any()).Return(usecase.ConfirmResult{}, usecase.ErrSignatureMismatch)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/payments/razorpay/verify", h.VerifyRazorpayPayment)
		req := httptest.NewRequest(http.MethodPost, "/v1/payments/razorpay/verify", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})
}
