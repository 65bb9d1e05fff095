package calculation

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/stephenkarpeles/money-for-life/internal/domain"
)

// stateRates2025 are simplified flat rates. Several states are progressive in
// reality; the top or typical rate is used here.
var stateRates2025 = map[string]float64{
	"Alabama":        0.05,
	"Alaska":         0.00,
	"Arizona":        0.025,
	"Arkansas":       0.045,
	"California":     0.093, // top rate, simplified
	"Colorado":       0.044,
	"Connecticut":    0.0699,
	"Delaware":       0.066,
	"Florida":        0.00,
	"Georgia":        0.0575,
	"Hawaii":         0.11, // top rate
	"Idaho":          0.058,
	"Illinois":       0.0495,
	"Indiana":        0.0323,
	"Iowa":           0.06,
	"Kansas":         0.057,
	"Kentucky":       0.04,
	"Louisiana":      0.0425,
	"Maine":          0.0715,
	"Maryland":       0.0575,
	"Massachusetts":  0.05,
	"Michigan":       0.0425,
	"Minnesota":      0.0985,
	"Mississippi":    0.05,
	"Missouri":       0.048,
	"Montana":        0.0675,
	"Nebraska":       0.0684,
	"Nevada":         0.00,
	"New Hampshire":  0.00, // dividends/interest only
	"New Jersey":     0.1075,
	"New Mexico":     0.059,
	"New York":       0.109,
	"North Carolina": 0.0475,
	"North Dakota":   0.029,
	"Ohio":           0.0385,
	"Oklahoma":       0.0475,
	"Oregon":         0.099,
	"Pennsylvania":   0.0307,
	"Rhode Island":   0.0599,
	"South Carolina": 0.065,
	"South Dakota":   0.00,
	"Tennessee":      0.00,
	"Texas":          0.00,
	"Utah":           0.0465,
	"Vermont":        0.0875,
	"Virginia":       0.0575,
	"Washington":     0.00,
	"West Virginia":  0.065,
	"Wisconsin":      0.0765,
	"Wyoming":        0.00,
}

// StateTaxCalculator applies a flat income tax rate looked up by exact state name
type StateTaxCalculator struct {
	rates map[string]decimal.Decimal
}

// NewStateTaxCalculator creates a state calculator with the 2025 rate table
func NewStateTaxCalculator() *StateTaxCalculator {
	rates := make(map[string]decimal.Decimal, len(stateRates2025))
	for name, rate := range stateRates2025 {
		rates[name] = decimal.NewFromFloat(rate)
	}
	return &StateTaxCalculator{rates: rates}
}

// NewStateTaxCalculatorWithConfig starts from the 2025 table and overrides the
// configured states. Overrides may add names outside the default table.
func NewStateTaxCalculatorWithConfig(config domain.StateTaxConfig) *StateTaxCalculator {
	stc := NewStateTaxCalculator()
	for name, rate := range config.Rates {
		stc.rates[name] = rate
	}
	return stc
}

// Rate returns the flat rate for state, or zero when the state is unknown
func (stc *StateTaxCalculator) Rate(state string) decimal.Decimal {
	if rate, ok := stc.rates[state]; ok {
		return rate
	}
	return decimal.Zero
}

// CalculateTax applies the state's flat rate to taxable income
func (stc *StateTaxCalculator) CalculateTax(taxableIncome decimal.Decimal, state string) decimal.Decimal {
	return taxableIncome.Mul(stc.Rate(state))
}

// IsKnown reports whether the state has an entry in the rate table
func (stc *StateTaxCalculator) IsKnown(state string) bool {
	_, ok := stc.rates[state]
	return ok
}

// States returns the state names in ascending order
func (stc *StateTaxCalculator) States() []string {
	names := make([]string, 0, len(stc.rates))
	for name := range stc.rates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
