// Package money wraps shopspring/decimal for whole-unit currency
// arithmetic and display formatting.
package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultSymbol is the currency symbol used when no formatter is configured.
const DefaultSymbol = "Rp "

// Zero is decimal zero
var Zero = decimal.Zero

// FromInt creates decimal from int
func FromInt(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

// FromFloat creates decimal from float with rounding
func FromFloat(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v).Round(2)
}

// MustFromString parses decimal from string, panics on error
func MustFromString(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Sum sums a slice of decimals
func Sum(values []decimal.Decimal) decimal.Decimal {
	result := Zero
	for _, v := range values {
		result = result.Add(v)
	}
	return result
}

// Formatter renders amounts with a currency symbol prefix.
type Formatter struct {
	Symbol string
}

// DefaultFormatter returns a formatter with the default symbol.
func DefaultFormatter() Formatter {
	return Formatter{Symbol: DefaultSymbol}
}

// Format renders an amount as "{symbol}{thousands-grouped integer}",
// rounded to whole units: 1234567 -> "Rp 1,234,567".
func (f Formatter) Format(d decimal.Decimal) string {
	s := d.Round(0).String()
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign = "-"
		s = s[1:]
	}
	return f.Symbol + sign + groupThousands(s)
}

// Format renders an amount using the default currency symbol.
func Format(d decimal.Decimal) string {
	return DefaultFormatter().Format(d)
}

// Parse extracts the numeric value from a formatted currency string.
// Returns zero on anything unparseable.
func (f Formatter) Parse(s string) decimal.Decimal {
	clean := strings.ReplaceAll(s, f.Symbol, "")
	clean = strings.ReplaceAll(clean, ",", "")
	clean = strings.TrimSpace(clean)
	d, err := decimal.NewFromString(clean)
	if err != nil {
		return Zero
	}
	return d
}

// Parse extracts the numeric value from a string formatted with the
// default symbol.
func Parse(s string) decimal.Decimal {
	return DefaultFormatter().Parse(s)
}

func groupThousands(digits string) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}
	var b strings.Builder
	head := n % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
