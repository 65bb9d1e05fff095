package output

import (
	"bytes"
	"fmt"

	"github.com/stephenkarpeles/money-for-life/internal/domain"
)

// ConsoleLiteFormatter provides a concise console style summary via the formatter interface.
type ConsoleLiteFormatter struct{}

func (c ConsoleLiteFormatter) Name() string { return "console-lite" }

func (c ConsoleLiteFormatter) Format(results *domain.PlanComparison) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "INVESTMENT PLAN SUMMARY")
	fmt.Fprintln(&buf, "================================")
	if results.Baseline != nil {
		fmt.Fprintf(&buf, "Net Income: %s (%s/month)\n",
			FormatCurrency(results.Baseline.Taxes.NetIncome), FormatCurrency(results.Baseline.Summary.MonthlyNetIncome))
	}
	fmt.Fprintln(&buf)
	for _, plan := range results.All() {
		fmt.Fprintf(&buf, "%s: Invest=%s/yr Return=%s FinalValue=%s\n",
			plan.Name,
			FormatCurrency(plan.Summary.AnnualInvestment),
			FormatRate(plan.AnnualReturn),
			FormatCurrency(plan.Summary.FinalValue),
		)
		fmt.Fprintf(&buf, "  Invested=%s Gains=%s Age=%d Milestones=%d\n",
			FormatCurrency(plan.Summary.TotalInvested), FormatCurrency(plan.Summary.TotalGains),
			plan.Summary.FinalAge, len(plan.Milestones))
	}
	rec := AnalyzeScenarios(results)
	if rec.ScenarioName != "" {
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "Best scenario: %s (Δ %s / %s)\n", rec.ScenarioName, FormatCurrency(rec.ValueChange), FormatPercentage(rec.PercentageChange))
	}
	return buf.Bytes(), nil
}
