package pdf

import (
	"github.com/shopspring/decimal"

	"github.com/rezonia/invoice-maker/internal/model"
)

// PreviewLineItem is one line item with display-formatted amounts
// alongside the raw numbers.
type PreviewLineItem struct {
	Number          int             `json:"number"`
	Description     string          `json:"description"`
	Amount          int             `json:"amount"`
	Price           string          `json:"price"`
	Subtotal        string          `json:"subtotal"`
	PriceNumeric    decimal.Decimal `json:"price_numeric"`
	SubtotalNumeric decimal.Decimal `json:"subtotal_numeric"`
}

// PreviewData is a display-ready rendition of an invoice, matching
// what the generated document will show.
type PreviewData struct {
	InvoiceNumber   string            `json:"invoice_number"`
	InvoiceDate     string            `json:"invoice_date"`
	CustomerName    string            `json:"customer_name"`
	CustomerAddress string            `json:"customer_address"`
	LineItems       []PreviewLineItem `json:"line_items"`
	Total           string            `json:"total"`
	TotalNumeric    decimal.Decimal   `json:"total_numeric"`
}

// Preview builds display data for an invoice without rendering a
// document. Works on invalid invoices too, so a UI can show live
// values while the user is still editing.
func (g *Generator) Preview(inv *model.Invoice) *PreviewData {
	data := &PreviewData{
		InvoiceNumber:   inv.Number,
		InvoiceDate:     inv.Date,
		CustomerName:    inv.CustomerName,
		CustomerAddress: inv.CustomerAddress,
		LineItems:       make([]PreviewLineItem, 0, len(inv.LineItems)),
		Total:           g.formatter.Format(inv.Total()),
		TotalNumeric:    inv.Total(),
	}

	for _, item := range inv.LineItems {
		data.LineItems = append(data.LineItems, PreviewLineItem{
			Number:          item.Number,
			Description:     item.Description,
			Amount:          item.Amount,
			Price:           g.formatter.Format(item.Price),
			Subtotal:        g.formatter.Format(item.Subtotal()),
			PriceNumeric:    item.Price,
			SubtotalNumeric: item.Subtotal(),
		})
	}

	return data
}
