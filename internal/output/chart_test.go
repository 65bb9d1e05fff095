package output

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stephenkarpeles/money-for-life/internal/calculation"
)

func TestBuildChart(t *testing.T) {
	projection := calculation.CalculateCompoundGrowth(decimal.NewFromInt(10000), 12, 30, decimal.RequireFromString("0.08"))
	c := BuildChart(projection)

	// years 0, 5, 10 and the final year 12
	require.Len(t, c.Value, 4)
	require.Len(t, c.Invested, 4)
	require.Len(t, c.XTicks, 4)
	assert.Equal(t, "30", c.XTicks[0].Label)
	assert.Equal(t, "42", c.XTicks[3].Label)

	bottom := c.Top + c.PlotH
	assert.InDelta(t, c.Left, c.Value[0].X, 1e-9)
	assert.InDelta(t, bottom, c.Value[0].Y, 1e-9)
	assert.InDelta(t, c.Left+c.PlotW, c.Value[3].X, 1e-9)
	assert.InDelta(t, c.Top, c.Value[3].Y, 1e-9, "largest value touches the top")
	assert.Greater(t, c.Invested[3].Y, c.Value[3].Y, "invested line stays under value")

	require.Len(t, c.YTicks, chartYTicks+1)
	assert.Equal(t, "$0", c.YTicks[0].Label)
	assert.NotEmpty(t, c.ValueLine)
	assert.NotEmpty(t, c.ValueArea)
}

func TestBuildChart_Empty(t *testing.T) {
	c := BuildChart(nil)
	assert.Empty(t, c.ValueLine)
	assert.Empty(t, c.XTicks)
	assert.Equal(t, chartWidth, c.Width)
}

func TestChartPoints(t *testing.T) {
	projection := calculation.CalculateCompoundGrowth(decimal.NewFromInt(1), 10, 25, decimal.Zero)
	pts := chartPoints(projection)
	require.Len(t, pts, 3)
	assert.Equal(t, []int{0, 5, 10}, []int{pts[0].Year, pts[1].Year, pts[2].Year})
}

func TestFormatHelpers(t *testing.T) {
	assert.Equal(t, "$1,234,568", FormatCurrency(decimal.RequireFromString("1234567.89")))
	assert.Equal(t, "$1,234,567.89", FormatCurrencyCents(decimal.RequireFromString("1234567.89")))
	assert.Equal(t, "12.3%", FormatPercentage(decimal.RequireFromString("12.3456")))
	assert.Equal(t, "9.0%", FormatRate(decimal.RequireFromString("0.09")))
	assert.Equal(t, "42", intToString(42))
}
