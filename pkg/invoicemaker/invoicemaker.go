// Package invoicemaker provides a public API for building, validating,
// and exporting invoice PDFs.
//
// This package exposes the core types and operations a presentation
// layer needs: construct an invoice, validate it, format currency
// values, and export the finished document.
//
// Example usage:
//
//	inv := invoicemaker.CreateDefault()
//	inv.CustomerName = "PT Maju Jaya"
//	inv.LineItems[0].Description = "Consulting"
//	inv.LineItems[0].Price = decimal.NewFromInt(1500000)
//
//	if errs := invoicemaker.ValidateInvoice(inv); len(errs) > 0 {
//	    log.Fatal(errs)
//	}
//	ok, msg := invoicemaker.ExportInvoice(inv, "")
//	fmt.Println(ok, msg)
package invoicemaker

import (
	"io"

	"github.com/shopspring/decimal"

	"github.com/rezonia/invoice-maker/internal/export"
	"github.com/rezonia/invoice-maker/internal/model"
	"github.com/rezonia/invoice-maker/internal/money"
	"github.com/rezonia/invoice-maker/internal/pdf"
)

// Re-export core types for public API
type (
	Invoice  = model.Invoice
	LineItem = model.LineItem
)

// Re-export error types
type (
	ValidationFailedError = model.ValidationFailedError
	GenerationError       = model.GenerationError
)

// Re-export quantity and price bounds
const (
	DefaultQuantity = model.DefaultQuantity
	MinQuantity     = model.MinQuantity
	MaxQuantity     = model.MaxQuantity
	MaxPrice        = model.MaxPrice
)

// CreateDefault returns a fresh invoice with a generated number, the
// current date, and one empty line item.
func CreateDefault() *Invoice {
	return model.CreateDefault()
}

// ValidateInvoice returns all validation errors, empty means valid.
func ValidateInvoice(inv *Invoice) []string {
	return model.ValidateInvoice(inv)
}

// FormatCurrency formats an amount with the default currency symbol.
func FormatCurrency(amount decimal.Decimal) string {
	return money.Format(amount)
}

// ExportInvoice renders the invoice to PDF and writes it to path, or
// to the documents folder when path is empty. Returns success and a
// user-facing message.
func ExportInvoice(inv *Invoice, path string) (bool, string) {
	res := defaultManager().Export(inv, path)
	return res.OK, res.Message
}

// ExportAndOpen exports the invoice and opens the result with the
// platform's default viewer. A viewer failure does not fail the
// export.
func ExportAndOpen(inv *Invoice, path string) (bool, string) {
	res := defaultManager().ExportAndOpen(inv, path)
	return res.OK, res.Message
}

func defaultManager() *export.Manager {
	return export.NewManager(pdf.NewDefaultGenerator(), export.WithLogWriter(io.Discard))
}
