package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

var (
	thousand = decimal.NewFromInt(1000)
	million  = decimal.NewFromInt(1000000)
	twelve   = decimal.NewFromInt(12)
)

// Money represents a dollar amount for display and period conversion
type Money struct {
	decimal.Decimal
}

// New creates a Money instance from a decimal.Decimal
func New(d decimal.Decimal) Money {
	return Money{d}
}

// NewFromInt creates a Money instance from whole dollars
func NewFromInt(dollars int64) Money {
	return Money{decimal.NewFromInt(dollars)}
}

// NewFromString creates a Money instance from a string
func NewFromString(value string) (Money, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Money{}, err
	}
	return Money{d}, nil
}

// Whole rounds to whole dollars, half away from zero
func (m Money) Whole() Money {
	return Money{m.Decimal.Round(0)}
}

// Cents rounds to cents
func (m Money) Cents() Money {
	return Money{m.Decimal.Round(2)}
}

// Annual converts a monthly amount to annual
func (m Money) Annual() Money {
	return Money{m.Decimal.Mul(twelve)}
}

// Monthly converts an annual amount to monthly
func (m Money) Monthly() Money {
	return Money{m.Decimal.Div(twelve)}
}

// String returns the amount with two decimals and no symbol
func (m Money) String() string {
	return m.Decimal.StringFixed(2)
}

// Format renders whole US dollars with thousands separators, e.g. "$1,234,568"
func (m Money) Format() string {
	rounded := m.Decimal.Round(0)
	return sign(rounded) + "$" + groupThousands(rounded.Abs().StringFixed(0))
}

// FormatCents renders US dollars and cents with thousands separators, e.g. "$1,234.57"
func (m Money) FormatCents() string {
	rounded := m.Decimal.Round(2)
	whole, frac, _ := strings.Cut(rounded.Abs().StringFixed(2), ".")
	return sign(rounded) + "$" + groupThousands(whole) + "." + frac
}

// Compact renders chart-axis labels: "$1.2M", "$250K", "$500"
func (m Money) Compact() string {
	abs := m.Decimal.Abs()
	switch {
	case abs.GreaterThanOrEqual(million):
		return sign(m.Decimal) + "$" + abs.Div(million).StringFixed(1) + "M"
	case abs.GreaterThanOrEqual(thousand):
		return sign(m.Decimal) + "$" + abs.Div(thousand).StringFixed(0) + "K"
	default:
		return sign(m.Decimal) + "$" + abs.StringFixed(0)
	}
}

// Format is shorthand for New(d).Format()
func Format(d decimal.Decimal) string { return New(d).Format() }

// FormatCents is shorthand for New(d).FormatCents()
func FormatCents(d decimal.Decimal) string { return New(d).FormatCents() }

// FormatPercent renders a percentage value (already scaled to 0-100) with one decimal
func FormatPercent(pct decimal.Decimal) string { return pct.StringFixed(1) + "%" }

// FormatRate renders a fraction such as 0.093 as a percentage with the given decimals
func FormatRate(rate decimal.Decimal, places int32) string {
	return rate.Mul(decimal.NewFromInt(100)).StringFixed(places) + "%"
}

func sign(d decimal.Decimal) string {
	if d.IsNegative() {
		return "-"
	}
	return ""
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
