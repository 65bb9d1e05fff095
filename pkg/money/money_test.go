package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructors(t *testing.T) {
	m, err := NewFromString("123.45")
	require.NoError(t, err)
	assert.Equal(t, "123.45", m.String())

	_, err = NewFromString("not-a-number")
	assert.Error(t, err)

	assert.Equal(t, "75000.00", NewFromInt(75000).String())
	assert.True(t, New(decimal.NewFromFloat(10.125)).Decimal.Equal(decimal.NewFromFloat(10.125)))
}

func TestRounding(t *testing.T) {
	cases := []struct{ in, whole, cents string }{
		{"2.344", "2", "2.34"},
		{"2.5", "3", "2.50"},
		{"3.5", "4", "3.50"},
		{"-2.5", "-3", "-2.50"},
		{"1090.499", "1090", "1090.50"},
	}
	for _, c := range cases {
		m, err := NewFromString(c.in)
		require.NoError(t, err)
		assert.Equal(t, c.whole, m.Whole().Decimal.String(), "whole(%s)", c.in)
		assert.Equal(t, c.cents, m.Cents().String(), "cents(%s)", c.in)
	}
}

func TestPeriodConversions(t *testing.T) {
	m := NewFromInt(100)
	assert.Equal(t, "1200.00", m.Annual().String())
	assert.Equal(t, "100.00", m.Annual().Monthly().String())
	assert.Equal(t, "5076.79", New(decimal.RequireFromString("60921.5")).Monthly().String())
}

func TestFormat(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"0", "$0"},
		{"7", "$7"},
		{"999.5", "$1,000"},
		{"75000", "$75,000"},
		{"60921.5", "$60,922"},
		{"1234567.89", "$1,234,568"},
		{"-14078.5", "-$14,079"},
		{"-0.4", "$0"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.expected, Format(decimal.RequireFromString(tt.in)))
		})
	}
}

func TestFormatCents(t *testing.T) {
	assert.Equal(t, "$60,921.50", FormatCents(decimal.RequireFromString("60921.5")))
	assert.Equal(t, "$0.00", FormatCents(decimal.Zero))
	assert.Equal(t, "$999.99", FormatCents(decimal.RequireFromString("999.994")))
	assert.Equal(t, "-$1,087.50", FormatCents(decimal.RequireFromString("-1087.5")))
}

func TestCompact(t *testing.T) {
	assert.Equal(t, "$500", NewFromInt(500).Compact())
	assert.Equal(t, "$250K", NewFromInt(250000).Compact())
	assert.Equal(t, "$1.2M", NewFromInt(1234567).Compact())
	assert.Equal(t, "$2.0M", NewFromInt(2000000).Compact())
}

func TestPercentFormatting(t *testing.T) {
	assert.Equal(t, "18.8%", FormatPercent(decimal.RequireFromString("18.771333")))
	assert.Equal(t, "9.3%", FormatRate(decimal.RequireFromString("0.093"), 1))
	assert.Equal(t, "6.99%", FormatRate(decimal.RequireFromString("0.0699"), 2))
}
