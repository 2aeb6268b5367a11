package handlers

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"voice_billing/internal/adapter/http/handlers/mocks"
	"voice_billing/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

type failingReadCloser struct{}

func (failingReadCloser) Read(_ []byte) (int, error) { return 0, errors.New("read error") }
func (failingReadCloser) Close() error               { return nil }

func TestWebhookHandler_Razorpay(t *testing.T) {
	gin.SetMode(gin.TestMode)
	payload := []byte(`{"event":"payment.captured"}`)

	cases := []struct {
		name       string
		result     usecase.WebhookResult
		err        error
		wantStatus int
		wantBody   string
	}{
		{name: "processed", result: usecase.WebhookResult{Outcome: usecase.OutcomeSuccess, InvoiceID: "ACM092025"}, wantStatus: http.StatusOK, wantBody: `"status":"success"`},
		{name: "duplicate", result: usecase.WebhookResult{Outcome: usecase.OutcomeAlreadyProcessed}, wantStatus: http.StatusOK, wantBody: `"status":"already_processed"`},
		{name: "bad signature", err: usecase.ErrWebhookSignature, wantStatus: http.StatusUnauthorized},
		{name: "malformed payload", err: usecase.ErrWebhookPayload, wantStatus: http.StatusBadRequest},
		{name: "unknown invoice", err: usecase.ErrInvoiceNotFound, wantStatus: http.StatusNotFound},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc := mocks.NewMockIPaymentUseCase(ctrl)
			uc.EXPECT().HandleRazorpayWebhook(gomock.Any(), payload, "sig").Return(tc.result, tc.err)
			h := NewWebhookHandler(uc)

			r := gin.New()
			r.POST("/v1/webhooks/razorpay", h.RazorpayWebhook)
			req := httptest.NewRequest(http.MethodPost, "/v1/webhooks/razorpay", bytes.NewReader(payload))
			req.Header.Set("X-Razorpay-Signature", "sig")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tc.wantStatus {
				t.Fatalf("expected %d, got %d", tc.wantStatus, w.Code)
			}
			if tc.wantBody != "" && !bytes.Contains(w.Body.Bytes(), []byte(tc.wantBody)) {
				t.Fatalf("unexpected body: %s", w.Body.String())
			}
		})
	}

	t.Run("unreadable body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewWebhookHandler(mocks.NewMockIPaymentUseCase(ctrl))

		r := gin.New()
		r.POST("/v1/webhooks/razorpay", h.RazorpayWebhook)
		req := httptest.NewRequest(http.MethodPost, "/v1/webhooks/razorpay", nil)
		req.Body = failingReadCloser{}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestWebhookHandler_Stripe(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIPaymentUseCase(ctrl)
	uc.EXPECT().HandleStripeWebhook(gomock.Any(), []byte(`{}`), "t=1,v1=abc").Return(usecase.WebhookResult{Outcome: usecase.OutcomeIgnored}, nil)
	h := NewWebhookHandler(uc)

	r := gin.New()
	r.POST("/v1/webhooks/stripe", h.StripeWebhook)
	req := httptest.NewRequest(http.MethodPost, "/v1/webhooks/stripe", bytes.NewBufferString(`{}`))
	req.Header.Set("Stripe-Signature", "t=1,v1=abc")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestWebhookHandler_MercadoPago(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("query parameters win over the body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		uc.EXPECT().HandleMercadoPagoWebhook(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, n usecase.MercadoPagoNotification) (usecase.WebhookResult, error) {
			want := usecase.MercadoPagoNotification{Type: "payment", DataID: "123", RequestID: "req-1", Signature: "ts=1,v1=ff"}
			if n != want {
				t.Fatalf("unexpected notification: %+v", n)
			}
			return usecase.WebhookResult{Outcome: usecase.OutcomeSuccess}, nil
		})
		h := NewWebhookHandler(uc)

		r := gin.New()
		r.POST("/v1/webhooks/mercadopago", h.MercadoPagoWebhook)
		req := httptest.NewRequest(http.MethodPost, "/v1/webhooks/mercadopago?type=payment&data.id=123", bytes.NewBufferString(`{"type":"merchant_order","data":{"id":"999"}}`))
		req.Header.Set("x-signature", "ts=1,v1=ff")
		req.Header.Set("x-request-id", "req-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("legacy topic and id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		uc.EXPECT().HandleMercadoPagoWebhook(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, n usecase.MercadoPagoNotification) (usecase.WebhookResult, error) {
			if n.Type != "payment" || n.DataID != "77" {
				t.Fatalf("unexpected notification: %+v", n)
			}
			return usecase.WebhookResult{Outcome: usecase.OutcomeIgnored}, nil
		})
		h := NewWebhookHandler(uc)

		r := gin.New()
		r.POST("/v1/webhooks/mercadopago", h.MercadoPagoWebhook)
		req := httptest.NewRequest(http.MethodPost, "/v1/webhooks/mercadopago?topic=payment&id=77", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("body only", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		uc.EXPECT().HandleMercadoPagoWebhook(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, n usecase.MercadoPagoNotification) (usecase.WebhookResult, error) {
			if n.Type != "payment" || n.DataID != "55" {
				t.Fatalf("unexpected notification: %+v", n)
			}
			return usecase.WebhookResult{}, usecase.ErrWebhookSignature
		})
		h := NewWebhookHandler(uc)

		r := gin.New()
		r.POST("/v1/webhooks/mercadopago", h.MercadoPagoWebhook)
		req := httptest.NewRequest(http.MethodPost, "/v1/webhooks/mercadopago", bytes.NewBufferString(`{"type":"payment","data":{"id":"55"}}`))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})
}
