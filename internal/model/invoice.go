// Package model defines the invoice domain types and their validation
// rules.
package model

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Quantity and price bounds for a valid line item.
const (
	DefaultQuantity = 1
	MinQuantity     = 1
	MaxQuantity     = 999
	MaxPrice        = 999999999
)

// Display formats for generated invoice numbers and dates.
const (
	DateFormat       = "2006-01-02"
	NumberDateFormat = "20060102"
	NumberPrefix     = "INV"
)

// LineItem is one billable row on an invoice. Number is the 1-based
// position and is kept contiguous by the invoice it belongs to.
type LineItem struct {
	Number      int             `json:"number"`
	Description string          `json:"description"`
	Amount      int             `json:"amount"`
	Price       decimal.Decimal `json:"price"`
}

// Subtotal returns Amount * Price. Always recomputed, never cached.
func (li LineItem) Subtotal() decimal.Decimal {
	return decimal.NewFromInt(int64(li.Amount)).Mul(li.Price)
}

// Invoice is a complete invoice document. Date is opaque display text,
// not a parsed date.
type Invoice struct {
	Number          string     `json:"invoice_number"`
	Date            string     `json:"invoice_date"`
	CustomerName    string     `json:"customer_name"`
	CustomerAddress string     `json:"customer_address"`
	LineItems       []LineItem `json:"line_items"`
}

// Total returns the sum of all line item subtotals.
func (inv *Invoice) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range inv.LineItems {
		total = total.Add(item.Subtotal())
	}
	return total
}

// AddLineItem appends an item. Numbering is the caller's concern at
// creation time (typically len+1).
func (inv *Invoice) AddLineItem(item LineItem) {
	inv.LineItems = append(inv.LineItems, item)
}

// RemoveLineItem removes the item at index and renumbers the remainder
// to 1..N-1. Returns false if index is out of bounds or removal would
// leave the invoice without items.
func (inv *Invoice) RemoveLineItem(index int) bool {
	if index < 0 || index >= len(inv.LineItems) || len(inv.LineItems) <= 1 {
		return false
	}
	inv.LineItems = append(inv.LineItems[:index], inv.LineItems[index+1:]...)
	inv.renumber()
	return true
}

func (inv *Invoice) renumber() {
	for i := range inv.LineItems {
		inv.LineItems[i].Number = i + 1
	}
}

// GenerateNumber produces an invoice number from a prefix and the
// current date, e.g. "INV-20260831".
func GenerateNumber(prefix string) string {
	return fmt.Sprintf("%s-%s", prefix, time.Now().Format(NumberDateFormat))
}

// CurrentDate returns today formatted for invoice display.
func CurrentDate() string {
	return time.Now().Format(DateFormat)
}

// CreateDefault returns a fresh invoice with a generated number and
// date, empty customer fields, and one empty line item.
func CreateDefault() *Invoice {
	return &Invoice{
		Number: GenerateNumber(NumberPrefix),
		Date:   CurrentDate(),
		LineItems: []LineItem{
			{Number: 1, Description: "", Amount: DefaultQuantity, Price: decimal.Zero},
		},
	}
}
