package request

import (
	"errors"
	"testing"
	"time"

	"voice_billing/internal/usecase"
)

func TestGenerateInvoiceRequest_Validate(t *testing.T) {
	month := 13
	cases := []struct {
		name string
		req  GenerateInvoiceRequest
		want error
	}{
		{name: "blank company", req: GenerateInvoiceRequest{CompanyID: "  "}, want: usecase.ErrInvalidCompanyID},
		{name: "month out of range", req: GenerateInvoiceRequest{CompanyID: "acme", Month: &month}, want: ErrInvalidMonth},
		{name: "defaults", req: GenerateInvoiceRequest{CompanyID: "acme"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.req.Validate(); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}

	cmd := GenerateInvoiceRequest{CompanyID: " acme ", TenantID: " north ", Send: true}.ToCommand()
	if cmd.CompanyID != "acme" || cmd.TenantID != "north" || !cmd.Send {
		t.Fatalf("unexpected command: %+v", cmd)
	}
}

func TestVerifyPaymentRequest_ToCommand(t *testing.T) {
	cmd := VerifyPaymentRequest{Token: " t ", RazorpayPaymentID: "pay_1", RazorpayOrderID: "order_1", RazorpaySignature: " sig "}.ToCommand()
	if cmd.Token != "t" || cmd.PaymentID != "pay_1" || cmd.OrderID != "order_1" || cmd.Signature != "sig" {
		t.Fatalf("unexpected command: %+v", cmd)
	}
}

func TestCallLogsQuery_Range(t *testing.T) {
	t.Run("end day is inclusive", func(t *testing.T) {
		start, end, err := CallLogsQuery{StartDate: "2025-09-01", EndDate: "2025-09-30"}.Range()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !start.Equal(time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)) {
			t.Fatalf("unexpected start %s", start)
		}
		if !end.Equal(time.Date(2025, 9, 30, 23, 59, 59, 0, time.UTC)) {
			t.Fatalf("unexpected end %s", end)
		}
	})

	t.Run("malformed date", func(t *testing.T) {
		if _, _, err := (CallLogsQuery{StartDate: "09/01/2025", EndDate: "2025-09-30"}).Range(); !errors.Is(err, usecase.ErrInvalidDateRange) {
			t.Fatalf("expected ErrInvalidDateRange, got %v", err)
		}
	})

	t.Run("inverted", func(t *testing.T) {
		if _, _, err := (CallLogsQuery{StartDate: "2025-09-30", EndDate: "2025-09-01"}).Range(); !errors.Is(err, usecase.ErrInvalidDateRange) {
			t.Fatalf("expected ErrInvalidDateRange, got %v", err)
		}
	})
}
