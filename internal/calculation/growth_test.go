package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateCompoundGrowth(t *testing.T) {
	data := CalculateCompoundGrowth(dec("1000"), 3, 30, dec("0.10"))

	require.Len(t, data, 4)
	expected := []struct {
		age      int
		invested string
		value    string
	}{
		{30, "0", "0"},
		{31, "1000", "1100"},
		{32, "2000", "2310"},
		{33, "3000", "3641"},
	}
	for i, e := range expected {
		assert.Equal(t, i, data[i].Year)
		assert.Equal(t, e.age, data[i].Age)
		assertDecimal(t, dec(e.invested), data[i].Invested, "year %d invested", i)
		assertDecimal(t, dec(e.value), data[i].Value, "year %d value", i)
	}
}

func TestCalculateCompoundGrowth_RoundsSnapshotsOnly(t *testing.T) {
	// 1.5 -> 2, then (1.5 + 1) * 1.5 = 3.75 -> 4. Rounding the running value would give 5.
	data := CalculateCompoundGrowth(dec("1"), 2, 25, dec("0.5"))

	require.Len(t, data, 3)
	assertDecimal(t, dec("2"), data[1].Value)
	assertDecimal(t, dec("4"), data[2].Value)
}

func TestCalculateCompoundGrowth_ZeroContribution(t *testing.T) {
	data := CalculateCompoundGrowth(decimal.Zero, 10, DefaultStartingAge, DefaultAnnualReturn)

	require.Len(t, data, 11)
	for _, s := range data {
		assert.True(t, s.Invested.IsZero())
		assert.True(t, s.Value.IsZero())
	}
}

func TestCalculateCompoundGrowth_ZeroYears(t *testing.T) {
	for _, years := range []int{0, -5} {
		data := CalculateCompoundGrowth(dec("5000"), years, 40, DefaultAnnualReturn)

		require.Len(t, data, 1)
		assert.Equal(t, 0, data[0].Year)
		assert.Equal(t, 40, data[0].Age)
		assert.True(t, data[0].Invested.IsZero())
		assert.True(t, data[0].Value.IsZero())
	}
}

func TestCalculateCompoundGrowth_Shape(t *testing.T) {
	for _, years := range []int{1, 2, 17, 55} {
		data := CalculateCompoundGrowth(dec("7500.25"), years, DefaultStartingAge, DefaultAnnualReturn)

		require.Len(t, data, years+1)
		assert.Equal(t, DefaultStartingAge, data[0].Age)
		assert.True(t, data[0].Invested.IsZero())
		assert.True(t, data[0].Value.IsZero())
		for i, s := range data {
			assert.Equal(t, i, s.Year)
			assert.Equal(t, DefaultStartingAge+i, s.Age)
			if i > 0 {
				assert.True(t, s.Value.GreaterThan(data[i-1].Value))
				assert.True(t, s.Value.GreaterThanOrEqual(s.Invested), "positive return never loses principal")
			}
		}
	}
}

func TestCalculateCompoundGrowth_Idempotent(t *testing.T) {
	a := CalculateCompoundGrowth(dec("9138.225"), 55, 25, dec("0.09"))
	b := CalculateCompoundGrowth(dec("9138.225"), 55, 25, dec("0.09"))

	require.Len(t, b, len(a))
	for i := range a {
		assert.Equal(t, a[i].Year, b[i].Year)
		assert.Equal(t, a[i].Age, b[i].Age)
		assert.True(t, a[i].Invested.Equal(b[i].Invested))
		assert.True(t, a[i].Value.Equal(b[i].Value))
	}
}

func TestGrowthProjectorDefaults(t *testing.T) {
	gp := NewGrowthProjector()
	assert.Equal(t, 25, gp.StartingAge)
	assertDecimal(t, dec("0.09"), gp.AnnualReturn)

	data := gp.Project(dec("1000"), 2)
	require.Len(t, data, 3)
	assert.Equal(t, 27, data[2].Age)
	assertDecimal(t, dec("1090"), data[1].Value)
	assertDecimal(t, dec("2278"), data[2].Value) // 2278.1
}

func TestCalculateRetirementMilestones(t *testing.T) {
	tests := []struct {
		name     string
		annual   string
		rate     string
		expected []struct {
			years  int
			amount string
		}
	}{
		{
			name:   "cap reached first",
			annual: "10000",
			rate:   "0",
			expected: []struct {
				years  int
				amount string
			}{{10, "100000"}, {25, "250000"}, {50, "500000"}},
		},
		{
			name:   "one threshold per year",
			annual: "300000",
			rate:   "0",
			expected: []struct {
				years  int
				amount string
			}{{1, "100000"}, {2, "250000"}, {3, "500000"}, {4, "1000000"}, {7, "2000000"}},
		},
		{
			name:   "compounding",
			annual: "10000",
			rate:   "0.10",
			expected: []struct {
				years  int
				amount string
			}{{7, "100000"}, {13, "250000"}, {18, "500000"}, {25, "1000000"}, {31, "2000000"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateRetirementMilestones(dec(tt.annual), dec(tt.rate))
			require.Len(t, got, len(tt.expected))
			for i, e := range tt.expected {
				assert.Equal(t, e.years, got[i].Years, "milestone %d years", i)
				assertDecimal(t, dec(e.amount), got[i].Amount)
			}
		})
	}
}

func TestCalculateRetirementMilestones_Invariants(t *testing.T) {
	allowed := map[string]bool{}
	for _, th := range MilestoneThresholds() {
		allowed[th.String()] = true
	}

	for _, annual := range []string{"0", "500", "2500", "9138.225", "40000", "5000000"} {
		got := CalculateRetirementMilestones(dec(annual), DefaultAnnualReturn)

		assert.LessOrEqual(t, len(got), 5)
		for i, m := range got {
			assert.True(t, allowed[m.Amount.String()], "unexpected threshold %s", m.Amount)
			assert.LessOrEqual(t, m.Years, MilestoneYearCap)
			if i > 0 {
				assert.Greater(t, m.Years, got[i-1].Years)
				assert.True(t, m.Amount.GreaterThan(got[i-1].Amount))
			}
		}
	}

	assert.Empty(t, CalculateRetirementMilestones(decimal.Zero, DefaultAnnualReturn))
}

func TestMilestoneThresholdsCopy(t *testing.T) {
	th := MilestoneThresholds()
	require.Len(t, th, 5)
	th[0] = decimal.Zero
	assertDecimal(t, dec("100000"), MilestoneThresholds()[0])
}

func TestProjectionYears(t *testing.T) {
	assert.Equal(t, 55, ProjectionYears(25, 80))
	assert.Equal(t, 1, ProjectionYears(79, 80))
	assert.Equal(t, 1, ProjectionYears(80, 80))
	assert.Equal(t, 1, ProjectionYears(95, 80))
	assert.Equal(t, 65, ProjectionYears(15, 80))
}

func TestAnnualInvestment(t *testing.T) {
	assertDecimal(t, dec("9138.225"), AnnualInvestment(dec("60921.5"), dec("15")))
	assertDecimal(t, decimal.Zero, AnnualInvestment(dec("60921.5"), decimal.Zero))
	assertDecimal(t, dec("60921.5"), AnnualInvestment(dec("60921.5"), dec("100")))
}
