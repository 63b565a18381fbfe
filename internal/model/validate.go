package model

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var maxPrice = decimal.NewFromInt(MaxPrice)

// ValidateLineItem checks a single line item and returns all error
// messages. All rules run independently, so one item can produce
// several errors at once.
func ValidateLineItem(item LineItem) []string {
	var errors []string

	if strings.TrimSpace(item.Description) == "" {
		errors = append(errors, "Description cannot be empty")
	}

	if item.Amount < MinQuantity {
		errors = append(errors, fmt.Sprintf("Amount must be at least %d", MinQuantity))
	}

	if item.Amount > MaxQuantity {
		errors = append(errors, fmt.Sprintf("Amount cannot exceed %d", MaxQuantity))
	}

	if item.Price.IsNegative() {
		errors = append(errors, "Price cannot be negative")
	}

	if item.Price.GreaterThan(maxPrice) {
		errors = append(errors, fmt.Sprintf("Price cannot exceed %d", MaxPrice))
	}

	return errors
}

// ValidateInvoice checks an invoice and returns all error messages.
// An empty result means the invoice is valid. Line item errors are
// prefixed with their 1-based position.
func ValidateInvoice(inv *Invoice) []string {
	var errors []string

	if strings.TrimSpace(inv.Number) == "" {
		errors = append(errors, "Invoice number cannot be empty")
	}

	if strings.TrimSpace(inv.CustomerName) == "" {
		errors = append(errors, "Customer name cannot be empty")
	}

	if len(inv.LineItems) == 0 {
		errors = append(errors, "Invoice must have at least one line item")
	}

	for i, item := range inv.LineItems {
		for _, e := range ValidateLineItem(item) {
			errors = append(errors, fmt.Sprintf("Line %d: %s", i+1, e))
		}
	}

	return errors
}

// FormatErrors renders a validation error list for display. A single
// error is returned verbatim, several become a numbered list.
func FormatErrors(errors []string) string {
	if len(errors) == 0 {
		return ""
	}
	if len(errors) == 1 {
		return errors[0]
	}

	var b strings.Builder
	b.WriteString("The following issues were found:")
	for i, e := range errors {
		b.WriteString(fmt.Sprintf("\n%d. %s", i+1, e))
	}
	return b.String()
}
