package output

import (
	"bytes"
	"encoding/csv"

	"github.com/stephenkarpeles/money-for-life/internal/domain"
)

// CSVSummarizer implements the simple summary CSV output (one row per plan,
// baseline first).
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(results *domain.PlanComparison) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "GrossIncome", "State", "Dependents", "FederalTax", "StateTax", "SocialSecurity", "Medicare", "TotalTax", "NetIncome", "EffectiveTaxRate", "InvestPercent", "AnnualReturn", "AnnualInvestment", "StartingAge", "FinalAge", "TotalInvested", "FinalValue", "TotalGains", "Milestones"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, plan := range results.All() {
		t := plan.Taxes
		s := plan.Summary
		row := []string{
			plan.Name,
			t.GrossIncome.StringFixed(2),
			t.State,
			intToString(plan.Profile.Dependents),
			t.FederalTax.StringFixed(2),
			t.StateTax.StringFixed(2),
			t.SocialSecurity.StringFixed(2),
			t.Medicare.StringFixed(2),
			t.TotalTax.StringFixed(2),
			t.NetIncome.StringFixed(2),
			t.EffectiveTaxRate.StringFixed(2),
			plan.Profile.InvestPercent.String(),
			plan.AnnualReturn.String(),
			s.AnnualInvestment.StringFixed(2),
			intToString(plan.Profile.StartingAge),
			intToString(s.FinalAge),
			s.TotalInvested.StringFixed(0),
			s.FinalValue.StringFixed(0),
			s.TotalGains.StringFixed(0),
			intToString(len(plan.Milestones)),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
