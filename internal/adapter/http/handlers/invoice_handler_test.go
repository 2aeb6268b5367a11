package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"voice_billing/internal/adapter/http/handlers/mocks"
	"voice_billing/internal/domain/entities"
	"voice_billing/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func sampleInvoice() entities.Invoice {
	period, _ := entities.NewBillingPeriod(9, 2025)
	return entities.Invoice{
		ID:            "ACM092025",
		CompanyID:     "acme",
		BillingPeriod: period,
		InvoiceDate:   time.Date(2025, 10, 1, 6, 0, 0, 0, time.UTC),
		DueDate:       time.Date(2025, 10, 8, 6, 0, 0, 0, time.UTC),
		Subtotal:      decimal.RequireFromString("1000"),
		TaxAmount:     decimal.RequireFromString("180"),
		Total:         decimal.RequireFromString("1180"),
		Currency:      "INR",
		PaymentStatus: entities.PaymentStatusPending,
	}
}

func TestInvoiceHandler_GenerateInvoice(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name       string
		body       string
		setup      func(uc *mocks.MockIInvoiceUseCase)
		wantStatus int
	}{
		{
			name:       "invalid payload",
			body:       "{",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "blank company",
			body:       `{"company_id":"  "}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "month out of range",
			body:       `{"company_id":"acme","month":13,"year":2025}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "created",
			body: `{"company_id":"acme","month":9,"year":2025,"send":true}`,
			setup: func(uc *mocks.MockIInvoiceUseCase) {
				uc.EXPECT().Generate(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, cmd usecase.GenerateInvoiceCommand) (entities.Invoice, bool, error) {
					if cmd.CompanyID != "acme" || *cmd.Month != 9 || *cmd.Year != 2025 || !cmd.Send {
						t.Fatalf("unexpected command: %+v", cmd)
					}
					return sampleInvoice(), true, nil
				})
			},
			wantStatus: http.StatusCreated,
		},
		{
			name: "existing",
			body: `{"company_id":"acme"}`,
			setup: func(uc *mocks.MockIInvoiceUseCase) {
				uc.EXPECT().Generate(gomock.Any(), gomock.Any()).Return(sampleInvoice(), false, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "future period",
			body: `{"company_id":"acme","month":12,"year":2030}`,
			setup: func(uc *mocks.MockIInvoiceUseCase) {
				uc.EXPECT().Generate(gomock.Any(), gomock.Any()).Return(entities.Invoice{}, false, entities.ErrFuturePeriod)
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "missing rate card",
			body: `{"company_id":"beta"}`,
			setup: func(uc *mocks.MockIInvoiceUseCase) {
				uc.EXPECT().Generate(gomock.Any(), gomock.Any()).Return(entities.Invoice{}, false, usecase.ErrMissingRateCard)
			},
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name: "unknown entity",
			body: `{"company_id":"ghost"}`,
			setup: func(uc *mocks.MockIInvoiceUseCase) {
				uc.EXPECT().Generate(gomock.Any(), gomock.Any()).Return(entities.Invoice{}, false, usecase.ErrEntityNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name: "store failure",
			body: `{"company_id":"acme"}`,
			setup: func(uc *mocks.MockIInvoiceUseCase) {
				uc.EXPECT().Generate(gomock.Any(), gomock.Any()).Return(entities.Invoice{}, false, errors.New("dynamo down"))
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc := mocks.NewMockIInvoiceUseCase(ctrl)
			if tc.setup != nil {
				tc.setup(uc)
			}
			h := NewInvoiceHandler(uc)

			r := gin.New()
			r.POST("/v1/invoices/generate", h.GenerateInvoice)

			req := httptest.NewRequest(http.MethodPost, "/v1/invoices/generate", bytes.NewBufferString(tc.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tc.wantStatus {
				t.Fatalf("expected %d, got %d: %s", tc.wantStatus, w.Code, w.Body.String())
			}
		})
	}

	t.Run("response body carries fixed money strings", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		uc.EXPECT().Generate(gomock.Any(), gomock.Any()).Return(sampleInvoice(), true, nil)
		h := NewInvoiceHandler(uc)

		r := gin.New()
		r.POST("/v1/invoices/generate", h.GenerateInvoice)
		req := httptest.NewRequest(http.MethodPost, "/v1/invoices/generate", bytes.NewBufferString(`{"company_id":"acme"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		var body struct {
			Created bool `json:"created"`
			Invoice struct {
				ID    string `json:"invoice_number"`
				Total string `json:"total"`
			} `json:"invoice"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if !body.Created || body.Invoice.ID != "ACM092025" || body.Invoice.Total != "1180.00" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestInvoiceHandler_GetInvoice(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("tenant scoped lookup", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		want := entities.SubEntity{Parent: entities.TopLevelEntity{Company: "acme"}, Tenant: "north"}
		uc.EXPECT().GetByID(gomock.Any(), want, "NOR092025").Return(sampleInvoice(), nil)
		h := NewInvoiceHandler(uc)

		r := gin.New()
		r.GET("/v1/invoices/:company_id/:invoice_id", h.GetInvoice)
		req := httptest.NewRequest(http.MethodGet, "/v1/invoices/acme/NOR092025?tenant_id=north", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		uc.EXPECT().GetByID(gomock.Any(), entities.TopLevelEntity{Company: "acme"}, "ACM012020").Return(entities.Invoice{}, usecase.ErrInvoiceNotFound)
		h := NewInvoiceHandler(uc)

		r := gin.New()
		r.GET("/v1/invoices/:company_id/:invoice_id", h.GetInvoice)
		req := httptest.NewRequest(http.MethodGet, "/v1/invoices/acme/ACM012020", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestInvoiceHandler_GetPublicInvoice(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewInvoiceHandler(mocks.NewMockIInvoiceUseCase(ctrl))

		r := gin.New()
		r.GET("/v1/public/invoice", h.GetPublicInvoice)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/public/invoice", nil))

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("valid token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		uc.EXPECT().GetByToken(gomock.Any(), "tok").Return(sampleInvoice(), nil)
		h := NewInvoiceHandler(uc)

		r := gin.New()
		r.GET("/v1/public/invoice", h.GetPublicInvoice)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/public/invoice?token=tok", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("expired token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		uc.EXPECT().GetByToken(gomock.Any(), "old").Return(entities.Invoice{}, usecase.ErrInvalidToken)
		h := NewInvoiceHandler(uc)

		r := gin.New()
		r.GET("/v1/public/invoice", h.GetPublicInvoice)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/public/invoice?token=old", nil))

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})
}
