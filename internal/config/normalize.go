package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/stephenkarpeles/money-for-life/internal/calculation"
	"github.com/stephenkarpeles/money-for-life/internal/domain"
)

// Starting age bounds accepted by the calculator form
const (
	MinStartingAge = 15
	MaxStartingAge = 80
)

// MaxProjectionYears bounds an explicit projection length
const MaxProjectionYears = 120

// ErrInvalidSalary is returned when a salary string contains anything other
// than digits once commas and whitespace are removed
var ErrInvalidSalary = errors.New("salary must contain digits only")

var hundred = decimal.NewFromInt(100)

// ParseSalary accepts whole-dollar amounts such as "75,000". An empty string is zero.
func ParseSalary(s string) (decimal.Decimal, error) {
	cleaned := strings.Map(func(r rune) rune {
		if r == ',' || r == ' ' || r == '\t' {
			return -1
		}
		return r
	}, strings.TrimSpace(s))

	if cleaned == "" {
		return decimal.Zero, nil
	}
	for _, r := range cleaned {
		if r < '0' || r > '9' {
			return decimal.Zero, ErrInvalidSalary
		}
	}
	return decimal.NewFromString(cleaned)
}

// ParseSalaryOrZero is ParseSalary with malformed input treated as zero
func ParseSalaryOrZero(s string) decimal.Decimal {
	d, err := ParseSalary(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// ValidateYears rejects projection lengths outside 0..MaxProjectionYears
func ValidateYears(years int) error {
	if years < 0 || years > MaxProjectionYears {
		return fmt.Errorf("years must be between 0 and %d", MaxProjectionYears)
	}
	return nil
}

// ParseIntDefault parses a base-10 integer, returning def for empty or malformed input
func ParseIntDefault(s string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return def
	}
	return n
}

// ClampPercent limits pct to 0..100
func ClampPercent(pct decimal.Decimal) decimal.Decimal {
	if pct.IsNegative() {
		return decimal.Zero
	}
	if pct.GreaterThan(hundred) {
		return hundred
	}
	return pct
}

// ClampAge limits a starting age to the accepted range; zero means the default age
func ClampAge(age int) int {
	switch {
	case age == 0:
		return calculation.DefaultStartingAge
	case age < MinStartingAge:
		return MinStartingAge
	case age > MaxStartingAge:
		return MaxStartingAge
	default:
		return age
	}
}

// NormalizeProfile returns p with every field inside the domain the calculators
// expect. Unknown states are kept; they are taxed at 0%.
func NormalizeProfile(p domain.Profile) domain.Profile {
	if p.GrossIncome.IsNegative() {
		p.GrossIncome = decimal.Zero
	}
	if p.Dependents < 0 {
		p.Dependents = 0
	}
	p.State = strings.TrimSpace(p.State)
	p.InvestPercent = ClampPercent(p.InvestPercent)
	p.StartingAge = ClampAge(p.StartingAge)
	return p
}

// RawProfile is the form-style input accepted by the CLI and the plan endpoint:
// every field is free text the way a user typed it
type RawProfile struct {
	Name          string `json:"name,omitempty"`
	Salary        string `json:"salary"`
	Dependents    string `json:"dependents"`
	State         string `json:"state"`
	InvestPercent string `json:"invest_percent"`
	StartingAge   string `json:"starting_age"`
}

// ProfileFromRaw converts form input into a normalized profile. Malformed
// numbers fall back to zero or the default age.
func ProfileFromRaw(raw RawProfile) domain.Profile {
	pct, err := decimal.NewFromString(strings.TrimSpace(raw.InvestPercent))
	if err != nil {
		pct = decimal.Zero
	}
	return NormalizeProfile(domain.Profile{
		Name:          raw.Name,
		GrossIncome:   ParseSalaryOrZero(raw.Salary),
		Dependents:    ParseIntDefault(raw.Dependents, 0),
		State:         raw.State,
		InvestPercent: pct,
		StartingAge:   ParseIntDefault(raw.StartingAge, calculation.DefaultStartingAge),
	})
}
