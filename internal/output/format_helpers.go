package output

import (
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/stephenkarpeles/money-for-life/internal/domain"
	"github.com/stephenkarpeles/money-for-life/pkg/money"
)

var decimalHundred = decimal.NewFromInt(100)

// FormatCurrency formats a decimal as whole US dollars with thousands separators.
func FormatCurrency(amount decimal.Decimal) string { return money.Format(amount) }

// FormatCurrencyCents formats a decimal as US dollars and cents.
func FormatCurrencyCents(amount decimal.Decimal) string { return money.FormatCents(amount) }

// FormatPercentage formats a value already scaled to 0-100 with one decimal.
func FormatPercentage(pct decimal.Decimal) string { return money.FormatPercent(pct) }

// FormatRate formats a fraction such as 0.09 as "9.0%".
func FormatRate(rate decimal.Decimal) string { return money.FormatRate(rate, 1) }

func intToString(i int) string { return strconv.Itoa(i) }

// chartPoints keeps every fifth year of a projection plus the final year.
func chartPoints(projection []domain.InvestmentSnapshot) []domain.InvestmentSnapshot {
	var pts []domain.InvestmentSnapshot
	for i, s := range projection {
		if s.Year%5 == 0 || i == len(projection)-1 {
			pts = append(pts, s)
		}
	}
	return pts
}
