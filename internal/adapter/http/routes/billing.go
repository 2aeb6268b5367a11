package routes

import (
	"voice_billing/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathInvoices  = "/invoices"
	PathPublic    = "/public"
	PathPayments  = "/payments"
	PathWebhooks  = "/webhooks"
	PathCallLogs  = "/call-logs"
	PathScheduler = "/scheduler"
)

func addInvoiceRoutes(rg *gin.RouterGroup, admin gin.HandlerFunc, invoiceHandler *handlers.InvoiceHandler, sweepHandler *handlers.SweepHandler, historyHandler *handlers.PaymentHistoryHandler) {
	invoices := rg.Group(PathInvoices, admin)
	{
		invoices.POST("/generate", invoiceHandler.GenerateInvoice)
		invoices.POST("/sweep-overdue", sweepHandler.SweepOverdue)
		invoices.POST("/send-reminders", sweepHandler.SendReminders)
		invoices.GET("/:company_id/:invoice_id", invoiceHandler.GetInvoice)
		invoices.GET("/:company_id/:invoice_id/payment", historyHandler.GetInvoicePayment)
	}

	// Token-authorized, used by the hosted payment page.
	public := rg.Group(PathPublic)
	{
		public.GET("/invoice", invoiceHandler.GetPublicInvoice)
	}
}

func addPaymentRoutes(rg *gin.RouterGroup, admin gin.HandlerFunc, paymentHandler *handlers.PaymentHandler, webhookHandler *handlers.WebhookHandler, historyHandler *handlers.PaymentHistoryHandler) {
	payments := rg.Group(PathPayments)
	{
		payments.POST("/razorpay/order", paymentHandler.CreateRazorpayOrder)
		payments.POST("/razorpay/verify", paymentHandler.VerifyRazorpayPayment)
		payments.POST("/stripe/session", paymentHandler.CreateStripeSession)
		payments.POST("/mercadopago/preference", paymentHandler.CreateMercadoPagoPreference)
		payments.GET("/:company_id", admin, historyHandler.ListPayments)
	}

	// Signed by the processors.
	webhooks := rg.Group(PathWebhooks)
	{
		webhooks.POST("/razorpay", webhookHandler.RazorpayWebhook)
		webhooks.POST("/stripe", webhookHandler.StripeWebhook)
		webhooks.POST("/mercadopago", webhookHandler.MercadoPagoWebhook)
	}
}

func addCallLogRoutes(rg *gin.RouterGroup, admin gin.HandlerFunc, callLogsHandler *handlers.CallLogsHandler) {
	rg.GET(PathCallLogs+"/:company_id", admin, callLogsHandler.ListCallLogs)
}

func addSchedulerRoutes(rg *gin.RouterGroup, admin gin.HandlerFunc, schedulerHandler *handlers.SchedulerHandler) {
	scheduler := rg.Group(PathScheduler, admin)
	{
		scheduler.GET("/status", schedulerHandler.Status)
		scheduler.POST("/run/:job_id", schedulerHandler.RunJob)
	}
}
