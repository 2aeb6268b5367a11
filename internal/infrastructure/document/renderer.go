// Package document renders the invoice and receipt PDFs and the usage CSV
// attached to billing emails.
//
// Invoice layout (A4):
//
//	┌──────────────────────────────────────────────────────────┐
//	│  Vendor name + GSTIN          │  TAX INVOICE / number    │
//	│  Billed to                    │  Dates / period / status │
//	│  ──────────────────────────────────────────────────────  │
//	│  # | Description | Qty | Rate | Amount                   │
//	│  ──────────────────────────────────────────────────────  │
//	│  Subtotal / GST / Round off / Total                      │
//	│  Amount in words                                         │
//	│  Bank details                 │  Authorized signatory    │
//	└──────────────────────────────────────────────────────────┘
package document

import (
	"fmt"
	"strings"
	"time"

	"voice_billing/internal/domain/entities"
	"voice_billing/internal/usecase/interfaces"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"
)

var (
	colorPrimary = &props.Color{Red: 24, Green: 54, Blue: 104}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// Renderer implements interfaces.IDocumentRenderer with maroto and encoding/csv.
type Renderer struct {
	loc *time.Location
}

var _ interfaces.IDocumentRenderer = (*Renderer)(nil)

// NewRenderer prints dates in loc, the billing timezone.
func NewRenderer(loc *time.Location) *Renderer {
	if loc == nil {
		loc = time.UTC
	}
	return &Renderer{loc: loc}
}

func newDocument(title, author string) core.Maroto {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).WithRightMargin(12).
		WithTopMargin(12).WithBottomMargin(12).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(title, true).
		WithAuthor(author, true).
		Build()
	return maroto.New(cfg)
}

func (r *Renderer) InvoicePDF(inv entities.Invoice) ([]byte, error) {
	m := newDocument("Tax Invoice "+inv.ID, inv.Vendor.Name)

	m.AddRows(r.invoiceHeaderRow(inv))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(r.partiesRow(inv))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(lineItemsHeaderRow())
	m.AddRows(lineItemRows(inv)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRows(inv)...)

	m.AddRows(row.New(10).Add(col.New(12).Add(
		text.New("Amount in words: "+inv.TotalInWords, props.Text{Style: fontstyle.Italic, Size: 9, Top: 3}),
	)))
	m.AddRows(line.NewRow(3))
	m.AddRows(bankAndSignatoryRow(inv))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generate invoice %s: %w", inv.ID, err)
	}
	return doc.GetBytes(), nil
}

func (r *Renderer) ReceiptPDF(inv entities.Invoice, rec entities.PaymentRecord) ([]byte, error) {
	m := newDocument("Payment Receipt "+rec.ID, inv.Vendor.Name)

	m.AddRows(row.New(18).Add(
		col.New(7).Add(
			text.New(pdfText(nonEmpty(inv.Vendor.Name, "Voice Agent Services")), props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("GSTIN: "+nonEmpty(inv.Vendor.GSTIN, "-"), props.Text{Size: 8, Top: 9, Color: colorGray}),
		),
		col.New(5).Add(
			text.New("PAYMENT RECEIPT", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Color: colorPrimary, Top: 1}),
			text.New(rec.ID, props.Text{Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7}),
		),
	))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	fields := [][2]string{
		{"Received from", pdfText(inv.BilledTo.Name)},
		{"Invoice number", inv.ID},
		{"Billing period", inv.BillingPeriod.Label()},
		{"Amount paid", pdfMoney(rec.AmountPaid, rec.Currency)},
		{"Payment date", FormatDate(rec.PaymentDate, r.loc)},
		{"Payment mode", nonEmpty(rec.PaymentMode, "online")},
		{"Payment id", nonEmpty(rec.PaymentID, "-")},
		{"Order id", nonEmpty(rec.OrderID, "-")},
		{"Invoice status", StatusLabel(rec.InvoiceStatus)},
	}
	for _, f := range fields {
		m.AddRows(labelValueRow(f[0], f[1]))
	}

	m.AddRows(line.NewRow(4))
	m.AddRows(row.New(8).Add(col.New(12).Add(
		text.New("This is a computer generated receipt and does not require a signature.", props.Text{
			Size: 7, Color: colorGray, Align: align.Center,
		}),
	)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generate receipt %s: %w", rec.ID, err)
	}
	return doc.GetBytes(), nil
}

func (r *Renderer) invoiceHeaderRow(inv entities.Invoice) core.Row {
	return row.New(20).Add(
		col.New(7).Add(
			text.New(pdfText(nonEmpty(inv.Vendor.Name, "Voice Agent Services")), props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(pdfText(inv.Vendor.Address), props.Text{Size: 8, Top: 8, Color: colorGray}),
			text.New("GSTIN: "+nonEmpty(inv.Vendor.GSTIN, "-")+"   PAN: "+nonEmpty(inv.Vendor.PAN, "-"), props.Text{
				Size: 8, Top: 13, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("TAX INVOICE", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Color: colorPrimary, Top: 1}),
			text.New(inv.ID, props.Text{Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 6}),
			text.New("Date: "+FormatDate(inv.InvoiceDate, r.loc)+"   Due: "+FormatDate(inv.DueDate, r.loc), props.Text{
				Size: 8, Align: align.Right, Top: 13, Color: colorGray,
			}),
		),
	)
}

func (r *Renderer) partiesRow(inv entities.Invoice) core.Row {
	billed := inv.BilledTo
	po := "-"
	if inv.Rates.PurchaseOrder != "" {
		po = inv.Rates.PurchaseOrder + " (" + nonEmpty(inv.Rates.PODate, "-") + ")"
	}
	return row.New(26).Add(
		col.New(7).Add(
			text.New("BILLED TO", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}),
			text.New(pdfText(nonEmpty(billed.Name, billed.ID)), props.Text{Style: fontstyle.Bold, Size: 10, Top: 6}),
			text.New(pdfText(billed.Address), props.Text{Size: 8, Top: 12, Color: colorGray}),
			text.New("GSTIN: "+nonEmpty(billed.GSTIN, "-")+"   Email: "+nonEmpty(billed.Email, "-"), props.Text{
				Size: 8, Top: 17, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Billing period: "+inv.BillingPeriod.Label(), props.Text{Size: 8, Align: align.Right, Top: 6}),
			text.New("Place of supply: "+nonEmpty(inv.PlaceOfSupply, "-"), props.Text{Size: 8, Align: align.Right, Top: 11}),
			text.New("PO: "+po, props.Text{Size: 8, Align: align.Right, Top: 16}),
			text.New("Status: "+StatusLabel(inv.PaymentStatus), props.Text{Size: 8, Align: align.Right, Top: 21}),
		),
	)
}

func lineItemsHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("#", 1, align.Center),
		h("Description", 5, align.Left),
		h("Qty", 2, align.Right),
		h("Rate", 2, align.Right),
		h("Amount", 2, align.Right),
	)
}

func lineItemRows(inv entities.Invoice) []core.Row {
	rows := make([]core.Row, 0, len(inv.LineItems))
	for i, li := range inv.LineItems {
		qty := li.Quantity.String()
		if li.Unit != "" {
			qty += " " + li.Unit
		}
		rows = append(rows, row.New(7).Add(
			col.New(1).Add(text.New(fmt.Sprintf("%d", i+1), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(5).Add(text.New(pdfText(li.Description), props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(qty, props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(2).Add(text.New(pdfMoney(li.Rate, inv.Currency), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(2).Add(text.New(pdfMoney(li.Amount, inv.Currency), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return rows
}

func totalsRows(inv entities.Invoice) []core.Row {
	rows := []core.Row{
		totalRow("Subtotal", pdfMoney(inv.Subtotal, inv.Currency), false),
		totalRow("GST @ "+inv.Rates.TaxRate.String()+"%", pdfMoney(inv.TaxAmount, inv.Currency), false),
	}
	if !inv.RoundOff.IsZero() {
		rows = append(rows, totalRow("Round off", pdfMoney(inv.RoundOff, inv.Currency), false))
	}
	return append(rows, totalRow("TOTAL", pdfMoney(inv.Total, inv.Currency), true))
}

func totalRow(label, value string, grand bool) core.Row {
	style := props.Text{Size: 9, Align: align.Right, Right: 1}
	if grand {
		style = props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Right: 1}
	}
	return row.New(6).Add(
		col.New(6),
		col.New(3).Add(text.New(label, style)),
		col.New(3).Add(text.New(value, style)),
	)
}

func bankAndSignatoryRow(inv entities.Invoice) core.Row {
	bank := inv.Bank
	return row.New(28).Add(
		col.New(7).Add(
			text.New("BANK DETAILS", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}),
			text.New("Bank: "+nonEmpty(bank.BankName, "-"), props.Text{Size: 8, Top: 6}),
			text.New("Account name: "+pdfText(nonEmpty(bank.AccountName, "-")), props.Text{Size: 8, Top: 11}),
			text.New("Account no: "+nonEmpty(bank.AccountNumber, "-"), props.Text{Size: 8, Top: 16}),
			text.New("IFSC: "+nonEmpty(bank.IFSC, "-"), props.Text{Size: 8, Top: 21}),
		),
		col.New(5).Add(
			text.New("For "+pdfText(nonEmpty(inv.Vendor.Name, "Voice Agent Services")), props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Top: 1,
			}),
			text.New(pdfText(nonEmpty(inv.AuthorizedSignatory, "Authorized Signatory")), props.Text{
				Size: 8, Align: align.Right, Top: 21,
			}),
		),
	)
}

func labelValueRow(label, value string) core.Row {
	return row.New(7).Add(
		col.New(4).Add(text.New(label, props.Text{Style: fontstyle.Bold, Size: 9, Top: 1, Color: colorGray})),
		col.New(8).Add(text.New(value, props.Text{Size: 9, Top: 1})),
	)
}

// pdfMoney avoids the rupee sign, which the built-in PDF fonts cannot draw.
func pdfMoney(amount decimal.Decimal, currency string) string {
	return pdfText(FormatMoney(amount, currency))
}

func pdfText(s string) string {
	return strings.ReplaceAll(s, "₹", "Rs. ")
}

func nonEmpty(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}
