package export_test

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezonia/invoice-maker/internal/export"
	"github.com/rezonia/invoice-maker/internal/model"
	"github.com/rezonia/invoice-maker/internal/pdf"
)

func testInvoice() *model.Invoice {
	return &model.Invoice{
		Number:          "INV-20260831",
		Date:            "2026-08-31",
		CustomerName:    "PT Maju Jaya",
		CustomerAddress: "Jl. Sudirman No. 1, Jakarta",
		LineItems: []model.LineItem{
			{Number: 1, Description: "Consulting", Amount: 2, Price: decimal.NewFromInt(1500000)},
			{Number: 2, Description: "Hosting", Amount: 1, Price: decimal.NewFromInt(250000)},
		},
	}
}

func newTestManager(opts ...export.Option) *export.Manager {
	opts = append([]export.Option{export.WithLogWriter(io.Discard)}, opts...)
	return export.NewManager(pdf.NewDefaultGenerator(), opts...)
}

func TestExport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "invoice.pdf")
	m := newTestManager()

	res := m.Export(testInvoice(), path)
	require.True(t, res.OK, res.Message)
	assert.Equal(t, "Invoice PDF saved to: "+path, res.Message)
	assert.Equal(t, path, res.Path)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestExport_InvalidInvoice(t *testing.T) {
	inv := testInvoice()
	inv.CustomerName = ""
	path := filepath.Join(t.TempDir(), "invoice.pdf")

	m := newTestManager()
	res := m.Export(inv, path)

	assert.False(t, res.OK)
	assert.Equal(t, "Failed to generate PDF", res.Message)
	assert.NoFileExists(t, path)
}

func TestExport_InvalidInvoiceLeavesPreviousFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "invoice.pdf")
	m := newTestManager()

	require.True(t, m.Export(testInvoice(), path).OK)
	before, err := os.ReadFile(path)
	require.NoError(t, err)

	bad := testInvoice()
	bad.LineItems[0].Amount = 0
	assert.False(t, m.Export(bad, path).OK)

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, before, after, "failed export must not touch the previous file")
}

func TestExport_CannotCreateDirectory(t *testing.T) {
	// A path whose parent is a regular file cannot be created.
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))
	path := filepath.Join(blocker, "sub", "invoice.pdf")

	var log bytes.Buffer
	m := newTestManager(export.WithLogWriter(&log))
	res := m.Export(testInvoice(), path)

	assert.False(t, res.OK)
	assert.Equal(t, "Cannot create directory: "+filepath.Dir(path), res.Message)
	assert.NotEmpty(t, log.String())
}

func TestExportAndOpen(t *testing.T) {
	t.Run("viewer opens", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "invoice.pdf")
		var opened string
		m := newTestManager(export.WithOpener(func(p string) error {
			opened = p
			return nil
		}))

		res := m.ExportAndOpen(testInvoice(), path)
		require.True(t, res.OK)
		assert.Equal(t, path, opened)
		assert.Contains(t, res.Message, "Invoice PDF saved to: "+path)
		assert.Contains(t, res.Message, "Opened with default application.")
	})

	t.Run("viewer failure keeps export successful", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "invoice.pdf")
		m := newTestManager(export.WithOpener(func(string) error {
			return errors.New("no viewer")
		}))

		res := m.ExportAndOpen(testInvoice(), path)
		require.True(t, res.OK)
		assert.Contains(t, res.Message, "Could not open automatically.")
		assert.FileExists(t, path)
	})

	t.Run("export failure skips viewer", func(t *testing.T) {
		inv := testInvoice()
		inv.Number = " "
		called := false
		m := newTestManager(export.WithOpener(func(string) error {
			called = true
			return nil
		}))

		res := m.ExportAndOpen(inv, filepath.Join(t.TempDir(), "invoice.pdf"))
		assert.False(t, res.OK)
		assert.False(t, called)
	})
}

func TestSafeFilename(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"clean", "INV-20260831", "INV-20260831"},
		{"reserved characters", `a<b>c:d"e/f\g|h?i*j`, "a_b_c_d_e_f_g_h_i_j"},
		{"trims spaces and dots", "  INV-1. ", "INV-1"},
		{"empty", "", "invoice"},
		{"only reserved trims to fallback", " .. ", "invoice"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, export.SafeFilename(tt.input))
		})
	}
}

func TestDefaultFilename(t *testing.T) {
	inv := testInvoice()
	assert.Equal(t, "Invoice_INV-20260831.pdf", export.DefaultFilename(inv))

	inv.Number = `A/B:C`
	assert.Equal(t, "Invoice_A_B_C.pdf", export.DefaultFilename(inv))
}

func TestSuggestPath(t *testing.T) {
	path := export.SuggestPath("Invoice_X.pdf")
	assert.True(t, filepath.IsAbs(path) || path == "Invoice_X.pdf")
	assert.Contains(t, path, "Invoice_X.pdf")
}
