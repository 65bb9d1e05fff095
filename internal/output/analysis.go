package output

import (
	"github.com/shopspring/decimal"

	"github.com/stephenkarpeles/money-for-life/internal/domain"
)

// Recommendation encapsulates the selection result of the best scenario.
type Recommendation struct {
	ScenarioName     string
	FinalValue       decimal.Decimal
	ValueChange      decimal.Decimal // against the baseline
	PercentageChange decimal.Decimal
}

// AnalyzeScenarios picks the scenario with the highest final portfolio value and
// compares it with the baseline. Ties keep the earlier scenario.
func AnalyzeScenarios(results *domain.PlanComparison) Recommendation {
	if results == nil || len(results.Scenarios) == 0 {
		return Recommendation{}
	}

	best := results.Scenarios[0]
	for _, sc := range results.Scenarios[1:] {
		if sc.Summary.FinalValue.GreaterThan(best.Summary.FinalValue) {
			best = sc
		}
	}

	baseline := decimal.Zero
	if results.Baseline != nil {
		baseline = results.Baseline.Summary.FinalValue
	}
	delta := best.Summary.FinalValue.Sub(baseline)
	pct := decimal.Zero
	if !baseline.IsZero() {
		pct = delta.Div(baseline).Mul(decimalHundred)
	}
	return Recommendation{ScenarioName: best.Name, FinalValue: best.Summary.FinalValue, ValueChange: delta, PercentageChange: pct}
}
