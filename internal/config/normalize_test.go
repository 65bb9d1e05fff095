package config

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stephenkarpeles/money-for-life/internal/domain"
)

func TestParseSalary(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"75000", "75000", false},
		{"75,000", "75000", false},
		{" 1,250,000 ", "1250000", false},
		{"", "0", false},
		{"   ", "0", false},
		{"75000.50", "0", true},
		{"-5000", "0", true},
		{"$75000", "0", true},
		{"abc", "0", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseSalary(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidSalary)
			} else {
				require.NoError(t, err)
			}
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)), "got %s", got)
			assert.True(t, ParseSalaryOrZero(tt.in).Equal(decimal.RequireFromString(tt.want)))
		})
	}
}

func TestParseIntDefault(t *testing.T) {
	assert.Equal(t, 3, ParseIntDefault("3", 0))
	assert.Equal(t, 3, ParseIntDefault(" 3 ", 0))
	assert.Equal(t, 0, ParseIntDefault("", 0))
	assert.Equal(t, 25, ParseIntDefault("twenty", 25))
	assert.Equal(t, -2, ParseIntDefault("-2", 0))
}

func TestClampPercent(t *testing.T) {
	assert.True(t, ClampPercent(decimal.NewFromInt(-5)).IsZero())
	assert.True(t, ClampPercent(decimal.NewFromInt(15)).Equal(decimal.NewFromInt(15)))
	assert.True(t, ClampPercent(decimal.NewFromInt(250)).Equal(decimal.NewFromInt(100)))
}

func TestClampAge(t *testing.T) {
	assert.Equal(t, 25, ClampAge(0))
	assert.Equal(t, 15, ClampAge(3))
	assert.Equal(t, 15, ClampAge(-40))
	assert.Equal(t, 42, ClampAge(42))
	assert.Equal(t, 80, ClampAge(99))
}

func TestNormalizeProfile(t *testing.T) {
	p := NormalizeProfile(domain.Profile{
		GrossIncome:   decimal.NewFromInt(-100),
		Dependents:    -2,
		State:         "  Oregon ",
		InvestPercent: decimal.NewFromInt(120),
		StartingAge:   12,
	})

	assert.True(t, p.GrossIncome.IsZero())
	assert.Equal(t, 0, p.Dependents)
	assert.Equal(t, "Oregon", p.State)
	assert.True(t, p.InvestPercent.Equal(decimal.NewFromInt(100)))
	assert.Equal(t, 15, p.StartingAge)

	// unknown states survive normalization
	assert.Equal(t, "Atlantis", NormalizeProfile(domain.Profile{State: "Atlantis"}).State)
}

func TestProfileFromRaw(t *testing.T) {
	p := ProfileFromRaw(RawProfile{
		Name:          "form",
		Salary:        "75,000",
		Dependents:    "1",
		State:         "Texas",
		InvestPercent: "15",
		StartingAge:   "30",
	})
	assert.Equal(t, "form", p.Name)
	assert.True(t, p.GrossIncome.Equal(decimal.NewFromInt(75000)))
	assert.Equal(t, 1, p.Dependents)
	assert.True(t, p.InvestPercent.Equal(decimal.NewFromInt(15)))
	assert.Equal(t, 30, p.StartingAge)

	junk := ProfileFromRaw(RawProfile{Salary: "lots", Dependents: "x", InvestPercent: "most", StartingAge: ""})
	assert.True(t, junk.GrossIncome.IsZero())
	assert.Equal(t, 0, junk.Dependents)
	assert.True(t, junk.InvestPercent.IsZero())
	assert.Equal(t, 25, junk.StartingAge)
}

func TestValidateYears(t *testing.T) {
	assert.NoError(t, ValidateYears(0))
	assert.NoError(t, ValidateYears(MaxProjectionYears))
	assert.Error(t, ValidateYears(-1))
	assert.Error(t, ValidateYears(MaxProjectionYears+1))
	assert.Error(t, ValidateYears(int(^uint(0)>>1)))
}

func TestValidateReturn(t *testing.T) {
	tests := []struct {
		in string
		ok bool
	}{
		{"0", true},
		{"0.09", true},
		{"-0.5", true},
		{"1", true},
		{"-1", false},
		{"-1.5", false},
		{"1.01", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			err := ValidateReturn(decimal.RequireFromString(tt.in))
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
