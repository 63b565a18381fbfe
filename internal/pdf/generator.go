// Package pdf renders invoices into fixed-layout paginated PDF
// documents.
package pdf

import (
	"bytes"
	"os"
	"strconv"

	"github.com/jung-kurt/gofpdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/rezonia/invoice-maker/internal/config"
	"github.com/rezonia/invoice-maker/internal/model"
	"github.com/rezonia/invoice-maker/internal/money"
)

const fontFamily = "Helvetica"

// Layout holds the page geometry for a generated document. All values
// are millimetres on an A4 portrait page.
type Layout struct {
	MarginTop    float64
	MarginRight  float64
	MarginBottom float64
	MarginLeft   float64
	ColumnWidths [5]float64
	FooterText   string
}

// DefaultLayout returns the built-in page geometry.
func DefaultLayout() Layout {
	return FromConfig(config.Default())
}

// FromConfig converts a loaded configuration into a Layout.
func FromConfig(c *config.Config) Layout {
	l := Layout{
		MarginTop:    c.Margins.Top,
		MarginRight:  c.Margins.Right,
		MarginBottom: c.Margins.Bottom,
		MarginLeft:   c.Margins.Left,
		FooterText:   c.FooterText,
	}
	copy(l.ColumnWidths[:], c.ColumnWidths)
	return l
}

// Generator renders invoices as PDF documents.
type Generator struct {
	layout    Layout
	formatter money.Formatter
}

// NewGenerator creates a generator with the given layout and currency
// formatter.
func NewGenerator(layout Layout, formatter money.Formatter) *Generator {
	return &Generator{layout: layout, formatter: formatter}
}

// NewDefaultGenerator creates a generator with the default layout and
// currency symbol.
func NewDefaultGenerator() *Generator {
	return NewGenerator(DefaultLayout(), money.DefaultFormatter())
}

// Generate renders the invoice and returns the complete document
// bytes. The invoice is re-validated first: callers are expected to
// validate, but an invalid invoice must never produce a document.
// Returns *model.ValidationFailedError for data problems and
// *model.GenerationError for rendering failures.
func (g *Generator) Generate(inv *model.Invoice) ([]byte, error) {
	if errs := model.ValidateInvoice(inv); len(errs) > 0 {
		return nil, model.NewValidationFailedError(errs)
	}

	doc := gofpdf.New("P", "mm", "A4", "")
	doc.SetMargins(g.layout.MarginLeft, g.layout.MarginTop, g.layout.MarginRight)
	doc.SetAutoPageBreak(true, g.layout.MarginBottom)
	doc.AddPage()

	g.writeTitle(doc)
	g.writeHeader(doc, inv)
	g.writeCustomer(doc, inv)
	g.writeItemsTable(doc, inv)
	g.writeFooter(doc)

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, model.NewGenerationError("render", "failed to render document", err)
	}

	// Output-integrity gate: a document that does not survive a full
	// PDF validation pass is never handed to the caller.
	if err := api.Validate(bytes.NewReader(buf.Bytes()), nil); err != nil {
		return nil, model.NewGenerationError("verify", "generated document failed validation", err)
	}

	return buf.Bytes(), nil
}

// GenerateFile renders the invoice and writes it to path.
func (g *Generator) GenerateFile(inv *model.Invoice, path string) error {
	data, err := g.Generate(inv)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return model.NewGenerationError("write", "failed to write document", err)
	}
	return nil
}

func (g *Generator) writeTitle(doc *gofpdf.Fpdf) {
	doc.SetFont(fontFamily, "B", 18)
	doc.CellFormat(0, 10, "INVOICE", "", 1, "C", false, 0, "")
	doc.Ln(5)
}

func (g *Generator) writeHeader(doc *gofpdf.Fpdf, inv *model.Invoice) {
	labelWidth := 22.0

	doc.SetFont(fontFamily, "B", 10)
	doc.CellFormat(labelWidth, 6, "Invoice #:", "", 0, "L", false, 0, "")
	doc.SetFont(fontFamily, "", 10)
	doc.CellFormat(0, 6, inv.Number, "", 1, "L", false, 0, "")

	doc.SetFont(fontFamily, "B", 10)
	doc.CellFormat(labelWidth, 6, "Date:", "", 0, "L", false, 0, "")
	doc.SetFont(fontFamily, "", 10)
	doc.CellFormat(0, 6, inv.Date, "", 1, "L", false, 0, "")

	doc.Ln(5)
}

func (g *Generator) writeCustomer(doc *gofpdf.Fpdf, inv *model.Invoice) {
	doc.SetFont(fontFamily, "B", 12)
	doc.CellFormat(0, 7, "Bill To:", "", 1, "L", false, 0, "")

	doc.SetFont(fontFamily, "B", 10)
	doc.CellFormat(0, 6, inv.CustomerName, "", 1, "L", false, 0, "")

	doc.SetFont(fontFamily, "", 10)
	doc.MultiCell(0, 5, inv.CustomerAddress, "", "L", false)

	doc.Ln(8)
}

func (g *Generator) writeItemsTable(doc *gofpdf.Fpdf, inv *model.Invoice) {
	widths := g.layout.ColumnWidths
	headers := [5]string{"#", "Description", "Qty", "Price", "Subtotal"}

	// Header row: light grey fill, bold, centered, full grid.
	doc.SetFont(fontFamily, "B", 10)
	doc.SetFillColor(211, 211, 211)
	doc.SetDrawColor(0, 0, 0)
	doc.SetLineWidth(0.2)
	for i, h := range headers {
		doc.CellFormat(widths[i], 8, h, "1", 0, "CM", true, 0, "")
	}
	doc.Ln(-1)

	// Data rows: number and quantity centered, price and subtotal
	// right-aligned, full grid.
	aligns := [5]string{"CM", "LM", "CM", "RM", "RM"}
	doc.SetFont(fontFamily, "", 10)
	for _, item := range inv.LineItems {
		cells := [5]string{
			strconv.Itoa(item.Number),
			item.Description,
			strconv.Itoa(item.Amount),
			g.formatter.Format(item.Price),
			g.formatter.Format(item.Subtotal()),
		}
		for i, c := range cells {
			doc.CellFormat(widths[i], 7, c, "1", 0, aligns[i], false, 0, "")
		}
		doc.Ln(-1)
	}

	// Total row: no grid, a single rule above, bold, extra top padding.
	doc.SetFont(fontFamily, "B", 10)
	doc.CellFormat(widths[0], 11, "", "T", 0, "CM", false, 0, "")
	doc.CellFormat(widths[1], 11, "", "T", 0, "CM", false, 0, "")
	doc.CellFormat(widths[2], 11, "", "T", 0, "CM", false, 0, "")
	doc.CellFormat(widths[3], 11, "Total:", "T", 0, "RM", false, 0, "")
	doc.CellFormat(widths[4], 11, g.formatter.Format(inv.Total()), "T", 1, "RM", false, 0, "")

	doc.Ln(10)
}

func (g *Generator) writeFooter(doc *gofpdf.Fpdf) {
	doc.SetFont(fontFamily, "", 10)
	doc.SetTextColor(128, 128, 128)
	doc.CellFormat(0, 6, g.layout.FooterText, "", 1, "C", false, 0, "")
	doc.SetTextColor(0, 0, 0)
}
