package calculation

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/stephenkarpeles/money-for-life/internal/domain"
)

// CalculationEngine runs the full plan: taxes, then investment growth of a share
// of net income, then milestones
type CalculationEngine struct {
	TaxCalc    *ComprehensiveTaxCalculator
	HorizonAge int
	Logger     Logger
}

// NewCalculationEngine creates a new calculation engine with 2025 tax rules
func NewCalculationEngine() *CalculationEngine {
	return &CalculationEngine{
		TaxCalc:    NewComprehensiveTaxCalculator(),
		HorizonAge: DefaultHorizonAge,
		Logger:     NopLogger{},
	}
}

// NewCalculationEngineWithConfig creates a calculation engine with configurable tax settings
func NewCalculationEngineWithConfig(rules *domain.TaxRules) *CalculationEngine {
	ce := NewCalculationEngine()
	ce.TaxCalc = NewComprehensiveTaxCalculatorWithConfig(rules)
	return ce
}

// SetLogger sets the logger for the calculation engine. If nil is provided, a no-op logger is used.
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		ce.Logger = NopLogger{}
		return
	}
	ce.Logger = l
}

// RunPlan calculates one plan. The profile is expected to be normalized already;
// the only error is a cancelled context.
func (ce *CalculationEngine) RunPlan(ctx context.Context, profile domain.Profile, assumptions domain.Assumptions) (*domain.PlanResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	horizon := assumptions.HorizonAge
	if horizon <= 0 {
		horizon = ce.HorizonAge
	}

	taxes := ce.TaxCalc.CalculateTaxes(profile.GrossIncome, profile.Dependents, profile.State)
	if !ce.TaxCalc.StateTaxCalc.IsKnown(profile.State) {
		ce.Logger.Warnf("unknown state %q, state tax set to zero", profile.State)
	}

	annual := AnnualInvestment(taxes.NetIncome, profile.InvestPercent)
	years := ProjectionYears(profile.StartingAge, horizon)
	projection := CalculateCompoundGrowth(annual, years, profile.StartingAge, assumptions.AnnualReturn)
	milestones := CalculateRetirementMilestones(annual, assumptions.AnnualReturn)

	ce.Logger.Debugf("plan %q: net=%s annual=%s years=%d return=%s", profile.Name,
		taxes.NetIncome.StringFixed(2), annual.StringFixed(2), years, assumptions.AnnualReturn.String())

	result := &domain.PlanResult{
		Name:         profile.Name,
		Profile:      profile,
		AnnualReturn: assumptions.AnnualReturn,
		Taxes:        taxes,
		Projection:   projection,
		Milestones:   milestones,
	}

	final := result.FinalSnapshot()
	result.Summary = domain.PlanSummary{
		MonthlyNetIncome:  taxes.MonthlyNetIncome(),
		AnnualInvestment:  annual,
		MonthlyInvestment: annual.Div(decimal.NewFromInt(12)),
		TotalInvested:     final.Invested,
		FinalValue:        final.Value,
		TotalGains:        final.Gains(),
		ProjectionYears:   years,
		FinalAge:          final.Age,
	}

	return result, nil
}

// RunScenarios runs the baseline profile and every scenario in the configuration
func (ce *CalculationEngine) RunScenarios(ctx context.Context, config *domain.Configuration) (*domain.PlanComparison, error) {
	baselineProfile := config.Profile
	if baselineProfile.Name == "" {
		baselineProfile.Name = "Baseline"
	}

	baseline, err := ce.RunPlan(ctx, baselineProfile, config.Assumptions)
	if err != nil {
		return nil, fmt.Errorf("failed to run baseline: %w", err)
	}

	comparison := &domain.PlanComparison{
		Baseline:     baseline,
		BestScenario: baseline.Name,
		Assumptions:  GenerateAssumptions(config.Assumptions, ce.TaxCalc),
	}
	best := baseline.Summary.FinalValue

	for i, sc := range config.Scenarios {
		profile, assumptions := sc.Apply(config.Profile, config.Assumptions)
		profile.Name = sc.Name
		if profile.Name == "" {
			profile.Name = fmt.Sprintf("Scenario %d", i+1)
		}

		result, err := ce.RunPlan(ctx, profile, assumptions)
		if err != nil {
			return nil, fmt.Errorf("failed to run scenario %q: %w", profile.Name, err)
		}
		comparison.Scenarios = append(comparison.Scenarios, *result)

		if result.Summary.FinalValue.GreaterThan(best) {
			best = result.Summary.FinalValue
			comparison.BestScenario = result.Name
		}
	}

	ce.Logger.Infof("ran %d scenarios, best: %s", len(comparison.Scenarios)+1, comparison.BestScenario)
	return comparison, nil
}

// GenerateAssumptions lists the modeling assumptions behind a comparison
func GenerateAssumptions(assumptions domain.Assumptions, taxCalc *ComprehensiveTaxCalculator) []string {
	horizon := assumptions.HorizonAge
	if horizon <= 0 {
		horizon = DefaultHorizonAge
	}
	fed := taxCalc.FederalTaxCalc
	fica := taxCalc.FICATaxCalc
	return []string{
		fmt.Sprintf("Annual return: %s%% compounded yearly, contributions added before growth", assumptions.AnnualReturn.Mul(decimalHundred).StringFixed(1)),
		fmt.Sprintf("Projection runs to age %d", horizon),
		fmt.Sprintf("Federal tax: %d single-filer brackets, standard deduction $%s", fed.Year, fed.StandardDeductions.Single.StringFixed(0)),
		fmt.Sprintf("Dependent credit: $%s per dependent, limited to federal tax owed", fed.CreditPerDependent.StringFixed(0)),
		fmt.Sprintf("Social Security: %s%% up to $%s; Medicare %s%% plus %s%% above $%s",
			fica.SSRate.Mul(decimalHundred).StringFixed(1), fica.SSWageBase.StringFixed(0),
			fica.MedicareRate.Mul(decimalHundred).StringFixed(2), fica.AdditionalRate.Mul(decimalHundred).StringFixed(1),
			fica.HighIncomeThreshold.StringFixed(0)),
		"State tax: simplified flat rate on federal taxable income",
	}
}
