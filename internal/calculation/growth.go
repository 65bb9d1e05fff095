package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/stephenkarpeles/money-for-life/internal/domain"
)

// GROWTH PROJECTION ASSUMPTIONS:
//
// Each year's contribution is added before that year's return is applied:
//   value = (value + contribution) * (1 + annualReturn)
// Snapshots are rounded to whole dollars; the running totals are not.

const (
	// DefaultStartingAge is used when no starting age is supplied
	DefaultStartingAge = 25
	// DefaultHorizonAge is the age projections run to
	DefaultHorizonAge = 80
	// MilestoneYearCap bounds the milestone search
	MilestoneYearCap = 80
)

// DefaultAnnualReturn is the 9% long-run average used when no return is supplied
var DefaultAnnualReturn = decimal.NewFromFloat(0.09)

var milestoneThresholds = []decimal.Decimal{
	decimal.NewFromInt(100000),
	decimal.NewFromInt(250000),
	decimal.NewFromInt(500000),
	decimal.NewFromInt(1000000),
	decimal.NewFromInt(2000000),
}

// MilestoneThresholds returns the portfolio values tracked as milestones, ascending
func MilestoneThresholds() []decimal.Decimal {
	out := make([]decimal.Decimal, len(milestoneThresholds))
	copy(out, milestoneThresholds)
	return out
}

// GrowthProjector projects compound growth of a fixed annual contribution
type GrowthProjector struct {
	StartingAge  int
	AnnualReturn decimal.Decimal
}

// NewGrowthProjector creates a projector with the default age and return
func NewGrowthProjector() *GrowthProjector {
	return &GrowthProjector{
		StartingAge:  DefaultStartingAge,
		AnnualReturn: DefaultAnnualReturn,
	}
}

// Project runs CalculateCompoundGrowth with the projector's age and return
func (gp *GrowthProjector) Project(annualInvestment decimal.Decimal, years int) []domain.InvestmentSnapshot {
	return CalculateCompoundGrowth(annualInvestment, years, gp.StartingAge, gp.AnnualReturn)
}

// Milestones runs CalculateRetirementMilestones with the projector's return
func (gp *GrowthProjector) Milestones(annualInvestment decimal.Decimal) []domain.RetirementMilestone {
	return CalculateRetirementMilestones(annualInvestment, gp.AnnualReturn)
}

// CalculateCompoundGrowth returns years+1 snapshots starting with an empty year 0.
// Negative years are treated as zero.
func CalculateCompoundGrowth(annualInvestment decimal.Decimal, years, startingAge int, annualReturn decimal.Decimal) []domain.InvestmentSnapshot {
	if years < 0 {
		years = 0
	}
	growth := decimal.NewFromInt(1).Add(annualReturn)

	data := make([]domain.InvestmentSnapshot, 0, years+1)
	totalInvested := decimal.Zero
	portfolioValue := decimal.Zero

	for year := 0; year <= years; year++ {
		if year > 0 {
			totalInvested = totalInvested.Add(annualInvestment)
			portfolioValue = portfolioValue.Add(annualInvestment).Mul(growth)
		}
		data = append(data, domain.InvestmentSnapshot{
			Year:     year,
			Age:      startingAge + year,
			Invested: totalInvested.Round(0),
			Value:    portfolioValue.Round(0),
		})
	}

	return data
}

// CalculateRetirementMilestones reports the first year each threshold is reached.
// One threshold is checked per year, so a year that jumps past two thresholds
// records the second one the following year.
func CalculateRetirementMilestones(annualInvestment, annualReturn decimal.Decimal) []domain.RetirementMilestone {
	growth := decimal.NewFromInt(1).Add(annualReturn)

	var results []domain.RetirementMilestone
	portfolioValue := decimal.Zero
	year := 0
	next := 0

	for next < len(milestoneThresholds) && year < MilestoneYearCap {
		year++
		portfolioValue = portfolioValue.Add(annualInvestment).Mul(growth)

		if portfolioValue.GreaterThanOrEqual(milestoneThresholds[next]) {
			results = append(results, domain.RetirementMilestone{
				Years:  year,
				Amount: milestoneThresholds[next],
			})
			next++
		}
	}

	return results
}

// ProjectionYears returns the number of years from startingAge to horizonAge, at least one
func ProjectionYears(startingAge, horizonAge int) int {
	if years := horizonAge - startingAge; years > 1 {
		return years
	}
	return 1
}

// AnnualInvestment returns percent (0-100) of net income
func AnnualInvestment(netIncome, percent decimal.Decimal) decimal.Decimal {
	return netIncome.Mul(percent).Div(decimalHundred)
}
