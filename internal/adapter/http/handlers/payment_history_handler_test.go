package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"voice_billing/internal/adapter/http/handlers/mocks"
	"voice_billing/internal/domain/entities"
	"voice_billing/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestPaymentHistoryHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	acme := entities.TopLevelEntity{Company: "acme"}

	t.Run("invoice payment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentHistoryUseCase(ctrl)
		uc.EXPECT().GetByInvoice(gomock.Any(), acme, "ACM092025").Return(entities.PaymentRecord{
			ID: "REC_ACM092025", InvoiceNumber: "ACM092025", AmountPaid: decimal.RequireFromString("1180"), Currency: "INR",
		}, nil)
		h := NewPaymentHistoryHandler(uc)

		r := gin.New()
		r.GET("/v1/invoices/:company_id/:invoice_id/payment", h.GetInvoicePayment)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/invoices/acme/ACM092025/payment", nil))

		if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"amount_paid":"1180.00"`) {
			t.Fatalf("unexpected response %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("no payment yet", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentHistoryUseCase(ctrl)
		uc.EXPECT().GetByInvoice(gomock.Any(), acme, "ACM102025").Return(entities.PaymentRecord{}, usecase.ErrPaymentNotFound)
		h := NewPaymentHistoryHandler(uc)

		r := gin.New()
		r.GET("/v1/invoices/:company_id/:invoice_id/payment", h.GetInvoicePayment)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/invoices/acme/ACM102025/payment", nil))

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("list for a tenant", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentHistoryUseCase(ctrl)
		uc.EXPECT().List(gomock.Any(), entities.SubEntity{Parent: acme, Tenant: "north"}).Return(nil, nil)
		h := NewPaymentHistoryHandler(uc)

		r := gin.New()
		r.GET("/v1/payments/:company_id", h.ListPayments)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/payments/acme?tenant_id=north", nil))

		if w.Code != http.StatusOK || strings.TrimSpace(w.Body.String()) != "[]" {
			t.Fatalf("unexpected response %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("list failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentHistoryUseCase(ctrl)
		uc.EXPECT().List(gomock.Any(), acme).Return(nil, errors.New("throttled"))
		h := NewPaymentHistoryHandler(uc)

		r := gin.New()
		r.GET("/v1/payments/:company_id", h.ListPayments)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/payments/acme", nil))

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}
