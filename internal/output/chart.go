package output

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/stephenkarpeles/money-for-life/internal/domain"
	"github.com/stephenkarpeles/money-for-life/pkg/money"
)

const (
	chartWidth  = 720.0
	chartHeight = 300.0
	chartLeft   = 70.0
	chartBottom = 30.0
	chartTop    = 10.0
	chartRight  = 10.0
	chartYTicks = 4
)

// Chart is the geometry of an SVG growth chart: portfolio value and total
// invested against age, sampled every five years.
type Chart struct {
	Width, Height float64
	Left, Top     float64
	PlotW, PlotH  float64
	Value         []ChartPoint
	Invested      []ChartPoint
	ValueLine     string
	InvestedLine  string
	ValueArea     string
	XTicks        []ChartTick
	YTicks        []ChartTick
}

// ChartPoint is a plotted position in SVG user units.
type ChartPoint struct {
	X, Y float64
}

// ChartTick is an axis label at a position in SVG user units.
type ChartTick struct {
	Pos   float64
	Label string
}

// BuildChart lays out the chart for one projection. Geometry is display-only,
// so float conversion is fine here.
func BuildChart(projection []domain.InvestmentSnapshot) Chart {
	c := Chart{
		Width:  chartWidth,
		Height: chartHeight,
		Left:   chartLeft,
		Top:    chartTop,
		PlotW:  chartWidth - chartLeft - chartRight,
		PlotH:  chartHeight - chartTop - chartBottom,
	}
	pts := chartPoints(projection)
	if len(pts) == 0 {
		return c
	}

	maxValue := decimal.NewFromInt(1)
	for _, p := range pts {
		maxValue = decimal.Max(maxValue, p.Value, p.Invested)
	}
	top := maxValue.InexactFloat64()
	span := float64(pts[len(pts)-1].Year - pts[0].Year)
	if span == 0 {
		span = 1
	}

	x := func(year int) float64 { return c.Left + float64(year-pts[0].Year)/span*c.PlotW }
	y := func(v decimal.Decimal) float64 { return c.Top + c.PlotH - v.InexactFloat64()/top*c.PlotH }

	for _, p := range pts {
		c.Value = append(c.Value, ChartPoint{x(p.Year), y(p.Value)})
		c.Invested = append(c.Invested, ChartPoint{x(p.Year), y(p.Invested)})
		c.XTicks = append(c.XTicks, ChartTick{Pos: x(p.Year), Label: strconv.Itoa(p.Age)})
	}
	c.ValueLine = polyline(c.Value)
	c.InvestedLine = polyline(c.Invested)

	baseline := c.Top + c.PlotH
	c.ValueArea = polyline(append(append([]ChartPoint{{c.Value[0].X, baseline}}, c.Value...), ChartPoint{c.Value[len(c.Value)-1].X, baseline}))

	for i := 0; i <= chartYTicks; i++ {
		v := maxValue.Mul(decimal.NewFromInt(int64(i))).Div(decimal.NewFromInt(chartYTicks))
		c.YTicks = append(c.YTicks, ChartTick{Pos: y(v), Label: money.New(v).Compact()})
	}
	return c
}

func polyline(pts []ChartPoint) string {
	parts := make([]string, len(pts))
	for i, p := range pts {
		parts[i] = strconv.FormatFloat(p.X, 'f', 1, 64) + "," + strconv.FormatFloat(p.Y, 'f', 1, 64)
	}
	return strings.Join(parts, " ")
}
