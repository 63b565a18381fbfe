package model_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezonia/invoice-maker/internal/model"
)

func validInvoice() *model.Invoice {
	return &model.Invoice{
		Number:          "INV-20260831",
		Date:            "2026-08-31",
		CustomerName:    "PT Maju Jaya",
		CustomerAddress: "Jl. Sudirman No. 1, Jakarta",
		LineItems: []model.LineItem{
			{Number: 1, Description: "Consulting", Amount: 2, Price: decimal.NewFromInt(1500000)},
			{Number: 2, Description: "Hosting", Amount: 12, Price: decimal.NewFromInt(250000)},
		},
	}
}

func TestValidateInvoice_Valid(t *testing.T) {
	assert.Empty(t, model.ValidateInvoice(validInvoice()))
}

func TestValidateLineItem(t *testing.T) {
	tests := []struct {
		name     string
		item     model.LineItem
		expected []string
	}{
		{
			name: "valid",
			item: model.LineItem{Number: 1, Description: "Item", Amount: 1, Price: decimal.Zero},
		},
		{
			name:     "blank description",
			item:     model.LineItem{Number: 1, Description: "   ", Amount: 1, Price: decimal.NewFromInt(100)},
			expected: []string{"Description cannot be empty"},
		},
		{
			name:     "amount below minimum",
			item:     model.LineItem{Number: 1, Description: "Item", Amount: 0, Price: decimal.NewFromInt(100)},
			expected: []string{"Amount must be at least 1"},
		},
		{
			name:     "amount above maximum",
			item:     model.LineItem{Number: 1, Description: "Item", Amount: 1000, Price: decimal.NewFromInt(100)},
			expected: []string{"Amount cannot exceed 999"},
		},
		{
			name:     "negative price",
			item:     model.LineItem{Number: 1, Description: "Item", Amount: 1, Price: decimal.NewFromInt(-1)},
			expected: []string{"Price cannot be negative"},
		},
		{
			name:     "price above maximum",
			item:     model.LineItem{Number: 1, Description: "Item", Amount: 1, Price: decimal.NewFromInt(1000000000)},
			expected: []string{"Price cannot exceed 999999999"},
		},
		{
			name: "boundary values pass",
			item: model.LineItem{Number: 1, Description: "Item", Amount: 999, Price: decimal.NewFromInt(999999999)},
		},
		{
			name: "multiple violations",
			item: model.LineItem{Number: 1, Description: "", Amount: 0, Price: decimal.NewFromInt(-5)},
			expected: []string{
				"Description cannot be empty",
				"Amount must be at least 1",
				"Price cannot be negative",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, model.ValidateLineItem(tt.item))
		})
	}
}

func TestValidateInvoice_HeaderErrors(t *testing.T) {
	t.Run("blank invoice number", func(t *testing.T) {
		inv := validInvoice()
		inv.Number = "  "
		assert.Equal(t, []string{"Invoice number cannot be empty"}, model.ValidateInvoice(inv))
	})

	t.Run("blank customer name", func(t *testing.T) {
		inv := validInvoice()
		inv.CustomerName = ""
		assert.Equal(t, []string{"Customer name cannot be empty"}, model.ValidateInvoice(inv))
	})

	t.Run("no line items", func(t *testing.T) {
		inv := validInvoice()
		inv.LineItems = nil
		assert.Equal(t, []string{"Invoice must have at least one line item"}, model.ValidateInvoice(inv))
	})
}

func TestValidateInvoice_LinePrefixes(t *testing.T) {
	inv := validInvoice()
	inv.LineItems[0].Amount = 0
	inv.LineItems[1].Description = ""
	inv.LineItems[1].Price = decimal.NewFromInt(-10)

	errors := model.ValidateInvoice(inv)
	assert.Equal(t, []string{
		"Line 1: Amount must be at least 1",
		"Line 2: Description cannot be empty",
		"Line 2: Price cannot be negative",
	}, errors)
}

func TestValidateInvoice_CollectsEverything(t *testing.T) {
	inv := &model.Invoice{
		LineItems: []model.LineItem{
			{Number: 1, Description: "", Amount: 0, Price: decimal.NewFromInt(-1)},
		},
	}

	errors := model.ValidateInvoice(inv)
	require.Len(t, errors, 5)
	assert.Contains(t, errors, "Invoice number cannot be empty")
	assert.Contains(t, errors, "Customer name cannot be empty")
	assert.Contains(t, errors, "Line 1: Description cannot be empty")
	assert.Contains(t, errors, "Line 1: Amount must be at least 1")
	assert.Contains(t, errors, "Line 1: Price cannot be negative")
}

func TestFormatErrors(t *testing.T) {
	assert.Equal(t, "", model.FormatErrors(nil))
	assert.Equal(t, "Customer name cannot be empty",
		model.FormatErrors([]string{"Customer name cannot be empty"}))

	formatted := model.FormatErrors([]string{"first issue", "second issue"})
	assert.Equal(t, "The following issues were found:\n1. first issue\n2. second issue", formatted)
}

func TestValidationFailedError(t *testing.T) {
	err := model.NewValidationFailedError([]string{"a", "b"})
	assert.Equal(t, "invalid invoice data: a, b", err.Error())
}

func TestGenerationError(t *testing.T) {
	cause := assert.AnError
	err := model.NewGenerationError("write", "cannot write output", cause)
	assert.Contains(t, err.Error(), "generation failed [write]")
	assert.ErrorIs(t, err, cause)
}
