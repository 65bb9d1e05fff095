package domain

import (
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Profile holds the user inputs that drive a single plan calculation
type Profile struct {
	Name          string          `yaml:"name,omitempty" json:"name,omitempty"`
	GrossIncome   decimal.Decimal `yaml:"gross_income" json:"gross_income"`
	Dependents    int             `yaml:"dependents" json:"dependents"`
	State         string          `yaml:"state" json:"state"`
	InvestPercent decimal.Decimal `yaml:"invest_percent" json:"invest_percent"` // 0-100, share of net income invested
	StartingAge   int             `yaml:"starting_age" json:"starting_age"`
}

// Assumptions groups the market and horizon assumptions applied to every scenario
type Assumptions struct {
	AnnualReturn decimal.Decimal `yaml:"annual_return" json:"annual_return"` // Default: 0.09
	HorizonAge   int             `yaml:"horizon_age" json:"horizon_age"`     // Default: 80
}

// Scenario overrides selected profile inputs for a what-if comparison
type Scenario struct {
	Name          string           `yaml:"name" json:"name"`
	InvestPercent *decimal.Decimal `yaml:"invest_percent,omitempty" json:"invest_percent,omitempty"`
	AnnualReturn  *decimal.Decimal `yaml:"annual_return,omitempty" json:"annual_return,omitempty"`
	StartingAge   *int             `yaml:"starting_age,omitempty" json:"starting_age,omitempty"`
}

// UnmarshalYAML implements custom YAML unmarshaling for Scenario so optional
// decimal overrides can be written as plain numbers
func (s *Scenario) UnmarshalYAML(value *yaml.Node) error {
	type Alias struct {
		Name          string  `yaml:"name"`
		InvestPercent *string `yaml:"invest_percent,omitempty"`
		AnnualReturn  *string `yaml:"annual_return,omitempty"`
		StartingAge   *int    `yaml:"starting_age,omitempty"`
	}

	var aux Alias
	if err := value.Decode(&aux); err != nil {
		return err
	}

	s.Name = aux.Name
	s.StartingAge = aux.StartingAge

	if aux.InvestPercent != nil {
		val, err := decimal.NewFromString(*aux.InvestPercent)
		if err != nil {
			return err
		}
		s.InvestPercent = &val
	}

	if aux.AnnualReturn != nil {
		val, err := decimal.NewFromString(*aux.AnnualReturn)
		if err != nil {
			return err
		}
		s.AnnualReturn = &val
	}

	return nil
}

// Apply returns a copy of the profile and assumptions with the scenario overrides applied
func (s Scenario) Apply(p Profile, a Assumptions) (Profile, Assumptions) {
	if s.InvestPercent != nil {
		p.InvestPercent = *s.InvestPercent
	}
	if s.StartingAge != nil {
		p.StartingAge = *s.StartingAge
	}
	if s.AnnualReturn != nil {
		a.AnnualReturn = *s.AnnualReturn
	}
	return p, a
}

// TaxRules carries optional overrides for the 2025 reference tax constants.
// Zero values fall back to the built-in defaults.
type TaxRules struct {
	FederalTaxConfig FederalTaxConfig `yaml:"federal_tax_config" json:"federal_tax_config"`
	FICATaxConfig    FICATaxConfig    `yaml:"fica_tax_config" json:"fica_tax_config"`
	StateTaxConfig   StateTaxConfig   `yaml:"state_tax_config" json:"state_tax_config"`
}

// FederalTaxConfig contains federal income tax configuration (updated annually)
type FederalTaxConfig struct {
	// Standard deduction amounts (2025 defaults: 14600 / 29200 / 21900).
	// Only the single amount is applied; the others are kept as reference data.
	StandardDeductionSingle          decimal.Decimal `yaml:"standard_deduction_single" json:"standard_deduction_single"`
	StandardDeductionMarriedJoint    decimal.Decimal `yaml:"standard_deduction_married_joint" json:"standard_deduction_married_joint"`
	StandardDeductionHeadOfHousehold decimal.Decimal `yaml:"standard_deduction_head_of_household" json:"standard_deduction_head_of_household"`

	// Flat credit per dependent (default 2000)
	CreditPerDependent decimal.Decimal `yaml:"credit_per_dependent" json:"credit_per_dependent"`

	TaxBracketsSingle []TaxBracket `yaml:"tax_brackets_single" json:"tax_brackets_single"`
}

// TaxBracket represents a federal tax bracket. A zero Max on the last bracket means unbounded.
type TaxBracket struct {
	Min  decimal.Decimal `yaml:"min" json:"min"`
	Max  decimal.Decimal `yaml:"max" json:"max"`
	Rate decimal.Decimal `yaml:"rate" json:"rate"`
}

// FICATaxConfig contains payroll tax configuration (updated annually).
// Defaults: wage base 168600 at 6.2%, Medicare 1.45% plus 0.9% above 200000.
type FICATaxConfig struct {
	SocialSecurityWageBase decimal.Decimal `yaml:"social_security_wage_base" json:"social_security_wage_base"`
	SocialSecurityRate     decimal.Decimal `yaml:"social_security_rate" json:"social_security_rate"`
	MedicareRate           decimal.Decimal `yaml:"medicare_rate" json:"medicare_rate"`
	AdditionalMedicareRate decimal.Decimal `yaml:"additional_medicare_rate" json:"additional_medicare_rate"`
	AdditionalMedicareOver decimal.Decimal `yaml:"additional_medicare_threshold" json:"additional_medicare_threshold"`
}

// StateTaxConfig overrides flat state rates by exact state name
type StateTaxConfig struct {
	Rates map[string]decimal.Decimal `yaml:"rates" json:"rates"`
}

// Configuration represents a complete plan file
type Configuration struct {
	Profile     Profile     `yaml:"profile" json:"profile"`
	Assumptions Assumptions `yaml:"assumptions" json:"assumptions"`
	TaxRules    *TaxRules   `yaml:"tax_rules,omitempty" json:"tax_rules,omitempty"`
	Scenarios   []Scenario  `yaml:"scenarios" json:"scenarios"`
}
