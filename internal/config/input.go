package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/stephenkarpeles/money-for-life/internal/calculation"
	"github.com/stephenkarpeles/money-for-life/internal/domain"
)

// InputParser handles parsing of plan configuration files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a plan configuration from a YAML file
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes, defaults and validates a YAML plan configuration
func (ip *InputParser) Parse(data []byte) (*domain.Configuration, error) {
	var config domain.Configuration
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	ApplyDefaults(&config)

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// ApplyDefaults fills assumptions left at zero and a missing starting age.
// A 0% return has to be requested through a scenario override.
func ApplyDefaults(config *domain.Configuration) {
	if config.Assumptions.AnnualReturn.IsZero() {
		config.Assumptions.AnnualReturn = calculation.DefaultAnnualReturn
	}
	if config.Assumptions.HorizonAge == 0 {
		config.Assumptions.HorizonAge = calculation.DefaultHorizonAge
	}
	if config.Profile.StartingAge == 0 {
		config.Profile.StartingAge = calculation.DefaultStartingAge
	}
}

// ValidateConfiguration validates the loaded configuration
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if err := ip.validateProfile(&config.Profile); err != nil {
		return fmt.Errorf("profile validation failed: %w", err)
	}

	if err := ip.validateAssumptions(&config.Assumptions); err != nil {
		return fmt.Errorf("assumptions validation failed: %w", err)
	}

	if config.TaxRules != nil {
		if err := ip.validateTaxRules(config.TaxRules); err != nil {
			return fmt.Errorf("tax rules validation failed: %w", err)
		}
	}

	names := make(map[string]bool, len(config.Scenarios))
	for i, scenario := range config.Scenarios {
		if err := ip.validateScenario(&scenario); err != nil {
			return fmt.Errorf("scenario %d validation failed: %w", i, err)
		}
		if scenario.Name != "" {
			if names[scenario.Name] {
				return fmt.Errorf("scenario %d validation failed: duplicate name %q", i, scenario.Name)
			}
			names[scenario.Name] = true
		}
	}

	return nil
}

func (ip *InputParser) validateProfile(profile *domain.Profile) error {
	if profile.GrossIncome.IsNegative() {
		return fmt.Errorf("gross income cannot be negative")
	}
	if profile.Dependents < 0 {
		return fmt.Errorf("dependents cannot be negative")
	}
	if profile.State == "" {
		return fmt.Errorf("state is required")
	}
	if err := validatePercent(profile.InvestPercent); err != nil {
		return err
	}
	return validateAge(profile.StartingAge)
}

func (ip *InputParser) validateAssumptions(assumptions *domain.Assumptions) error {
	if err := ValidateReturn(assumptions.AnnualReturn); err != nil {
		return err
	}
	if assumptions.HorizonAge < MinStartingAge || assumptions.HorizonAge > 120 {
		return fmt.Errorf("horizon age must be between %d and 120", MinStartingAge)
	}
	return nil
}

func (ip *InputParser) validateTaxRules(rules *domain.TaxRules) error {
	brackets := rules.FederalTaxConfig.TaxBracketsSingle
	for i, b := range brackets {
		if b.Rate.IsNegative() || b.Rate.GreaterThan(decimal.NewFromInt(1)) {
			return fmt.Errorf("bracket %d: rate must be between 0 and 1", i)
		}
		if i == 0 && !b.Min.IsZero() {
			return fmt.Errorf("bracket 0: brackets must start at 0")
		}
		if i > 0 && !b.Min.Equal(brackets[i-1].Max) {
			return fmt.Errorf("bracket %d: min %s must equal previous max %s", i, b.Min, brackets[i-1].Max)
		}
		last := i == len(brackets)-1
		if last && !b.Max.IsZero() {
			return fmt.Errorf("bracket %d: last bracket must be unbounded (max 0)", i)
		}
		if !last && b.Max.LessThanOrEqual(b.Min) {
			return fmt.Errorf("bracket %d: max must exceed min", i)
		}
	}
	for state, rate := range rules.StateTaxConfig.Rates {
		if rate.IsNegative() || rate.GreaterThan(decimal.NewFromInt(1)) {
			return fmt.Errorf("state %s: rate must be between 0 and 1", state)
		}
	}
	return nil
}

func (ip *InputParser) validateScenario(scenario *domain.Scenario) error {
	if scenario.InvestPercent != nil {
		if err := validatePercent(*scenario.InvestPercent); err != nil {
			return err
		}
	}
	if scenario.AnnualReturn != nil {
		if err := ValidateReturn(*scenario.AnnualReturn); err != nil {
			return err
		}
	}
	if scenario.StartingAge != nil {
		return validateAge(*scenario.StartingAge)
	}
	return nil
}

func validatePercent(pct decimal.Decimal) error {
	if pct.IsNegative() || pct.GreaterThan(decimal.NewFromInt(100)) {
		return fmt.Errorf("invest percent must be between 0 and 100")
	}
	return nil
}

// ValidateReturn reports whether r is a usable annual return: above -100% and at most 100%
func ValidateReturn(r decimal.Decimal) error {
	if r.LessThanOrEqual(decimal.NewFromInt(-1)) || r.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("annual return must be greater than -100%% and at most 100%%")
	}
	return nil
}

func validateAge(age int) error {
	if age < MinStartingAge || age > MaxStartingAge {
		return fmt.Errorf("starting age must be between %d and %d", MinStartingAge, MaxStartingAge)
	}
	return nil
}

// CreateExampleConfiguration creates an example configuration
func (ip *InputParser) CreateExampleConfiguration() *domain.Configuration {
	twentyPercent := decimal.NewFromInt(20)
	conservative := decimal.NewFromFloat(0.06)
	lateStart := 35

	return &domain.Configuration{
		Profile: domain.Profile{
			Name:          "Current Plan",
			GrossIncome:   decimal.NewFromInt(75000),
			Dependents:    0,
			State:         "California",
			InvestPercent: decimal.NewFromInt(15),
			StartingAge:   25,
		},
		Assumptions: domain.Assumptions{
			AnnualReturn: calculation.DefaultAnnualReturn,
			HorizonAge:   calculation.DefaultHorizonAge,
		},
		Scenarios: []domain.Scenario{
			{Name: "Invest 20%", InvestPercent: &twentyPercent},
			{Name: "Conservative 6% Return", AnnualReturn: &conservative},
			{Name: "Start at 35", StartingAge: &lateStart},
		},
	}
}

// SaveConfiguration writes a configuration as YAML
func SaveConfiguration(config *domain.Configuration, filename string) error {
	b, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to encode configuration: %w", err)
	}
	if err := os.WriteFile(filename, b, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", filename, err)
	}
	return nil
}
