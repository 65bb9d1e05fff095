package domain

import (
	"github.com/shopspring/decimal"
)

// TaxResult is the full tax breakdown for one gross income figure.
// TotalTax is always FederalTax + StateTax + SocialSecurity + Medicare and
// NetIncome is always GrossIncome - TotalTax.
type TaxResult struct {
	GrossIncome       decimal.Decimal `json:"gross_income"`
	TaxableIncome     decimal.Decimal `json:"taxable_income"`
	StandardDeduction decimal.Decimal `json:"standard_deduction"`
	DependentCredit   decimal.Decimal `json:"dependent_credit"`
	State             string          `json:"state"`
	StateRate         decimal.Decimal `json:"state_rate"`

	FederalTax       decimal.Decimal `json:"federal_tax"`
	StateTax         decimal.Decimal `json:"state_tax"`
	SocialSecurity   decimal.Decimal `json:"social_security"`
	Medicare         decimal.Decimal `json:"medicare"`
	TotalTax         decimal.Decimal `json:"total_tax"`
	NetIncome        decimal.Decimal `json:"net_income"`
	EffectiveTaxRate decimal.Decimal `json:"effective_tax_rate"` // percentage, 0 when gross income is 0
}

// MonthlyNetIncome returns the monthly take-home amount
func (tr TaxResult) MonthlyNetIncome() decimal.Decimal {
	return tr.NetIncome.Div(decimal.NewFromInt(12))
}

// PayrollTax returns Social Security plus Medicare
func (tr TaxResult) PayrollTax() decimal.Decimal {
	return tr.SocialSecurity.Add(tr.Medicare)
}

// InvestmentSnapshot is one year of a growth projection, rounded to whole currency units
type InvestmentSnapshot struct {
	Year     int             `json:"year"`
	Age      int             `json:"age"`
	Invested decimal.Decimal `json:"invested"`
	Value    decimal.Decimal `json:"value"`
}

// Gains returns the growth earned on top of contributions
func (s InvestmentSnapshot) Gains() decimal.Decimal {
	return s.Value.Sub(s.Invested)
}

// RetirementMilestone records the first year a portfolio threshold was reached
type RetirementMilestone struct {
	Years  int             `json:"years"`
	Amount decimal.Decimal `json:"amount"`
}

// PlanSummary holds the headline figures shown next to the projection
type PlanSummary struct {
	MonthlyNetIncome  decimal.Decimal `json:"monthly_net_income"`
	AnnualInvestment  decimal.Decimal `json:"annual_investment"`
	MonthlyInvestment decimal.Decimal `json:"monthly_investment"`
	TotalInvested     decimal.Decimal `json:"total_invested"`
	FinalValue        decimal.Decimal `json:"final_value"`
	TotalGains        decimal.Decimal `json:"total_gains"`
	ProjectionYears   int             `json:"projection_years"`
	FinalAge          int             `json:"final_age"`
}

// PlanResult is the complete output of one plan run: taxes, projection and milestones
type PlanResult struct {
	Name         string                `json:"name"`
	Profile      Profile               `json:"profile"`
	AnnualReturn decimal.Decimal       `json:"annual_return"`
	Taxes        TaxResult             `json:"taxes"`
	Summary      PlanSummary           `json:"summary"`
	Projection   []InvestmentSnapshot  `json:"projection"`
	Milestones   []RetirementMilestone `json:"milestones"`
}

// FinalSnapshot returns the last projected year, or a zero snapshot for an empty projection
func (pr *PlanResult) FinalSnapshot() InvestmentSnapshot {
	if len(pr.Projection) == 0 {
		return InvestmentSnapshot{Age: pr.Profile.StartingAge}
	}
	return pr.Projection[len(pr.Projection)-1]
}

// PlanComparison collects the results of every scenario in a plan file
type PlanComparison struct {
	Baseline     *PlanResult  `json:"baseline"`
	Scenarios    []PlanResult `json:"scenarios"`
	BestScenario string       `json:"best_scenario"`
	Assumptions  []string     `json:"assumptions"`
}

// All returns the baseline followed by every scenario
func (pc *PlanComparison) All() []PlanResult {
	out := make([]PlanResult, 0, len(pc.Scenarios)+1)
	if pc.Baseline != nil {
		out = append(out, *pc.Baseline)
	}
	return append(out, pc.Scenarios...)
}
