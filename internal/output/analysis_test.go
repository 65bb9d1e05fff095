package output

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/stephenkarpeles/money-for-life/internal/domain"
)

func planWithValue(name string, value int64) domain.PlanResult {
	return domain.PlanResult{Name: name, Summary: domain.PlanSummary{FinalValue: decimal.NewFromInt(value)}}
}

func TestAnalyzeScenarios_SelectsHighestFinalValue(t *testing.T) {
	baseline := planWithValue("Baseline", 1000000)
	comparison := &domain.PlanComparison{
		Baseline: &baseline,
		Scenarios: []domain.PlanResult{
			planWithValue("Scenario A", 900000),
			planWithValue("Scenario B", 1250000),
			planWithValue("Scenario C", 1250000),
		},
	}

	rec := AnalyzeScenarios(comparison)
	assert.Equal(t, "Scenario B", rec.ScenarioName)
	assert.True(t, rec.FinalValue.Equal(decimal.NewFromInt(1250000)))
	assert.True(t, rec.ValueChange.Equal(decimal.NewFromInt(250000)))
	assert.True(t, rec.PercentageChange.Equal(decimal.NewFromInt(25)))
}

func TestAnalyzeScenarios_Empty(t *testing.T) {
	assert.Equal(t, Recommendation{}, AnalyzeScenarios(&domain.PlanComparison{}))
	assert.Equal(t, Recommendation{}, AnalyzeScenarios(nil))
}

func TestAnalyzeScenarios_ZeroBaseline(t *testing.T) {
	rec := AnalyzeScenarios(&domain.PlanComparison{Scenarios: []domain.PlanResult{planWithValue("A", 500)}})
	assert.Equal(t, "A", rec.ScenarioName)
	assert.True(t, rec.PercentageChange.IsZero())
}
