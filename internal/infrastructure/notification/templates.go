package notification

import (
	"bytes"
	"html/template"

	"voice_billing/internal/infrastructure/document"
)

var funcs = template.FuncMap{
	"money":  document.FormatMoney,
	"count":  document.FormatCount,
	"status": document.StatusLabel,
}

const layoutHTML = `{{define "layout"}}<!DOCTYPE html>
<html><body style="font-family:Helvetica,Arial,sans-serif;color:#222;max-width:640px">
{{template "content" .}}
<p style="color:#777;font-size:12px">Questions? Reply to this email or write to {{.SupportEmail}}.</p>
</body></html>{{end}}`

const invoiceHTML = `{{define "content"}}
<h2>Tax Invoice {{.Invoice.ID}}</h2>
<p>Dear {{.Invoice.BilledTo.Name}},</p>
<p>Please find attached the invoice for voice agent services for <b>{{.Period}}</b>.</p>
<table cellpadding="4" style="border-collapse:collapse">
<tr><td>Total calls</td><td align="right">{{count .TotalCalls}}</td></tr>
<tr><td>Billed minutes</td><td align="right">{{count .Invoice.Usage.BilledMinutes}}</td></tr>
{{range .Invoice.LineItems}}<tr><td>{{.Description}}</td><td align="right">{{money .Amount $.Invoice.Currency}}</td></tr>
{{end}}<tr><td>Subtotal</td><td align="right">{{money .Invoice.Subtotal .Invoice.Currency}}</td></tr>
<tr><td>GST ({{.Invoice.Rates.TaxRate}}%)</td><td align="right">{{money .Invoice.TaxAmount .Invoice.Currency}}</td></tr>
<tr><td><b>Total</b></td><td align="right"><b>{{money .Invoice.Total .Invoice.Currency}}</b></td></tr>
</table>
<p>Payment is due by <b>{{.DueDate}}</b>.</p>
{{if .PaymentURL}}<p><a href="{{.PaymentURL}}">Pay invoice online</a></p>{{end}}
{{end}}`

const receiptHTML = `{{define "content"}}
<h2>Payment received for invoice {{.Invoice.ID}}</h2>
<p>Dear {{.Invoice.BilledTo.Name}},</p>
<p>We have received your payment of <b>{{money .Record.AmountPaid .Record.Currency}}</b> on {{.PaymentDate}}.</p>
<p>Payment id: {{.Record.PaymentID}}<br>Status: {{status .Record.InvoiceStatus}}</p>
<p>The receipt is attached. Thank you for your business.</p>
{{end}}`

const reminderHTML = `{{define "content"}}
<h2>{{if .Final}}Final reminder{{else}}Payment reminder{{end}}: invoice {{.Invoice.ID}}</h2>
<p>Dear {{.Invoice.BilledTo.Name}},</p>
{{if .Final}}<p>Invoice {{.Invoice.ID}} for {{.Period}} is due <b>today</b>.</p>
{{else}}<p>This is a friendly reminder that invoice {{.Invoice.ID}} for {{.Period}} is due on <b>{{.DueDate}}</b>.</p>
{{end}}<p>Amount due: <b>{{money .Invoice.Total .Invoice.Currency}}</b></p>
{{if .PaymentURL}}<p><a href="{{.PaymentURL}}">Pay invoice online</a></p>{{end}}
{{end}}`

var (
	invoiceTemplate  = template.Must(template.Must(template.New("invoice").Funcs(funcs).Parse(layoutHTML)).Parse(invoiceHTML))
	receiptTemplate  = template.Must(template.Must(template.New("receipt").Funcs(funcs).Parse(layoutHTML)).Parse(receiptHTML))
	reminderTemplate = template.Must(template.Must(template.New("reminder").Funcs(funcs).Parse(layoutHTML)).Parse(reminderHTML))
)

func render(t *template.Template, data interface{}) (string, error) {
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
