package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/stephenkarpeles/money-for-life/internal/domain"
)

// ConsoleFormatter renders the detailed console report: tax breakdown, plan
// summary, milestones and a five-year projection table for every plan.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(results *domain.PlanComparison) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintln(&buf, strings.Repeat("=", 81))
	fmt.Fprintln(&buf, "MONEY FOR LIFE: TAKE-HOME PAY AND INVESTMENT GROWTH")
	fmt.Fprintln(&buf, strings.Repeat("=", 81))
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "KEY ASSUMPTIONS:")
	for _, a := range assumptionsFor(results) {
		fmt.Fprintf(&buf, "• %s\n", a)
	}
	fmt.Fprintln(&buf)

	if results.Baseline != nil {
		writeTaxBreakdown(&buf, results.Baseline)
	}

	for i, plan := range results.All() {
		title := fmt.Sprintf("PLAN %d: %s", i+1, plan.Name)
		fmt.Fprintln(&buf, title)
		fmt.Fprintln(&buf, strings.Repeat("=", len(title)))
		writePlan(&buf, &plan)
		fmt.Fprintln(&buf)
	}

	rec := AnalyzeScenarios(results)
	if rec.ScenarioName != "" {
		fmt.Fprintln(&buf, "SUMMARY & RECOMMENDATIONS")
		fmt.Fprintln(&buf, "=========================")
		fmt.Fprintf(&buf, "Best scenario: %s\n", rec.ScenarioName)
		fmt.Fprintf(&buf, "Final Value: %s\n", FormatCurrency(rec.FinalValue))
		sign := ""
		if rec.ValueChange.IsPositive() {
			sign = "+"
		}
		fmt.Fprintf(&buf, "Change vs Baseline: %s%s (%s%s)\n", sign, FormatCurrency(rec.ValueChange), sign, FormatPercentage(rec.PercentageChange))
	}

	return buf.Bytes(), nil
}

func writeTaxBreakdown(buf *bytes.Buffer, plan *domain.PlanResult) {
	t := plan.Taxes
	fmt.Fprintln(buf, "TAX BREAKDOWN")
	fmt.Fprintln(buf, "=============")
	fmt.Fprintf(buf, "  Gross Income:          %15s\n", FormatCurrency(t.GrossIncome))
	fmt.Fprintf(buf, "  Standard Deduction:    %15s\n", FormatCurrency(t.StandardDeduction))
	fmt.Fprintf(buf, "  Taxable Income:        %15s\n", FormatCurrency(t.TaxableIncome))
	fmt.Fprintln(buf, strings.Repeat("-", 40))
	fmt.Fprintf(buf, "  Federal Tax:           %15s\n", FormatCurrency(t.FederalTax))
	if t.DependentCredit.IsPositive() {
		fmt.Fprintf(buf, "    (after credit of %s for %d dependents)\n", FormatCurrency(t.DependentCredit), plan.Profile.Dependents)
	}
	fmt.Fprintf(buf, "  State Tax (%s %s): %s\n", displayState(t.State), FormatRate(t.StateRate), FormatCurrency(t.StateTax))
	fmt.Fprintf(buf, "  Social Security:       %15s\n", FormatCurrency(t.SocialSecurity))
	fmt.Fprintf(buf, "  Medicare:              %15s\n", FormatCurrency(t.Medicare))
	fmt.Fprintln(buf, strings.Repeat("-", 40))
	fmt.Fprintf(buf, "  TOTAL TAX:             %15s\n", FormatCurrency(t.TotalTax))
	fmt.Fprintf(buf, "  Effective Tax Rate:    %15s\n", FormatPercentage(t.EffectiveTaxRate))
	fmt.Fprintf(buf, "  NET INCOME:            %15s\n", FormatCurrency(t.NetIncome))
	fmt.Fprintf(buf, "  Monthly Take-Home:     %15s\n", FormatCurrency(t.MonthlyNetIncome()))
	fmt.Fprintln(buf)
}

func writePlan(buf *bytes.Buffer, plan *domain.PlanResult) {
	s := plan.Summary
	fmt.Fprintf(buf, "Investing %s of net income from age %d at %s per year\n",
		FormatPercentage(plan.Profile.InvestPercent), plan.Profile.StartingAge, FormatRate(plan.AnnualReturn))
	fmt.Fprintf(buf, "  Annual Investment:     %15s (%s/month)\n", FormatCurrency(s.AnnualInvestment), FormatCurrency(s.MonthlyInvestment))
	fmt.Fprintf(buf, "  Total Invested:        %15s\n", FormatCurrency(s.TotalInvested))
	fmt.Fprintf(buf, "  Value at Age %-3d       %15s\n", s.FinalAge, FormatCurrency(s.FinalValue))
	fmt.Fprintf(buf, "  Total Gains:           %15s\n", FormatCurrency(s.TotalGains))
	fmt.Fprintln(buf)

	fmt.Fprintln(buf, "MILESTONES:")
	if len(plan.Milestones) == 0 {
		fmt.Fprintln(buf, "  none reached")
	}
	for _, m := range plan.Milestones {
		fmt.Fprintf(buf, "  %-12s in %2d years (age %d)\n", FormatCurrency(m.Amount), m.Years, plan.Profile.StartingAge+m.Years)
	}
	fmt.Fprintln(buf)

	fmt.Fprintf(buf, "%6s %5s %15s %15s %15s\n", "YEAR", "AGE", "INVESTED", "VALUE", "GAINS")
	fmt.Fprintln(buf, strings.Repeat("-", 60))
	for _, p := range chartPoints(plan.Projection) {
		fmt.Fprintf(buf, "%6d %5d %15s %15s %15s\n", p.Year, p.Age, FormatCurrency(p.Invested), FormatCurrency(p.Value), FormatCurrency(p.Gains()))
	}
}

func displayState(state string) string {
	if state == "" {
		return "none"
	}
	return state
}
