package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/stephenkarpeles/money-for-life/internal/domain"
)

// TAX CALCULATION ASSUMPTIONS:
//
// 1. Federal Tax Brackets: 2025 single-filer brackets
//    - Standard deduction: $14,600 (single). Joint and head-of-household amounts
//      are carried as reference data only; no other filing status is modeled.
//    - Flat $2,000 credit per dependent, never reducing federal tax below zero
//
// 2. Payroll taxes are computed on gross income:
//    - Social Security: 6.2% up to the $168,600 wage base
//    - Medicare: 1.45% on everything plus 0.9% above $200,000
//
// 3. State Tax: one flat rate per state applied to federal taxable income.
//    Unknown states are taxed at 0%.

var decimalHundred = decimal.NewFromInt(100)

// TaxBracket represents a federal tax bracket
type TaxBracket struct {
	Min       decimal.Decimal
	Max       decimal.Decimal
	Rate      decimal.Decimal
	Unbounded bool // top bracket, Max is ignored
}

// amountIn returns the part of taxableIncome that falls inside the bracket
func (b TaxBracket) amountIn(taxableIncome decimal.Decimal) decimal.Decimal {
	if taxableIncome.LessThanOrEqual(b.Min) {
		return decimal.Zero
	}
	above := taxableIncome.Sub(b.Min)
	if b.Unbounded {
		return above
	}
	return decimal.Min(above, b.Max.Sub(b.Min))
}

// StandardDeductions holds the 2025 standard deduction per filing status
type StandardDeductions struct {
	Single          decimal.Decimal
	MarriedJoint    decimal.Decimal
	HeadOfHousehold decimal.Decimal
}

// FederalTaxCalculator handles federal income tax calculations
type FederalTaxCalculator struct {
	Year               int
	StandardDeductions StandardDeductions
	CreditPerDependent decimal.Decimal
	BracketsSingle     []TaxBracket
}

func defaultBracketsSingle2025() []TaxBracket {
	return []TaxBracket{
		{Min: decimal.Zero, Max: decimal.NewFromInt(11600), Rate: decimal.NewFromFloat(0.10)},
		{Min: decimal.NewFromInt(11600), Max: decimal.NewFromInt(47150), Rate: decimal.NewFromFloat(0.12)},
		{Min: decimal.NewFromInt(47150), Max: decimal.NewFromInt(100525), Rate: decimal.NewFromFloat(0.22)},
		{Min: decimal.NewFromInt(100525), Max: decimal.NewFromInt(191950), Rate: decimal.NewFromFloat(0.24)},
		{Min: decimal.NewFromInt(191950), Max: decimal.NewFromInt(243725), Rate: decimal.NewFromFloat(0.32)},
		{Min: decimal.NewFromInt(243725), Max: decimal.NewFromInt(609350), Rate: decimal.NewFromFloat(0.35)},
		{Min: decimal.NewFromInt(609350), Rate: decimal.NewFromFloat(0.37), Unbounded: true},
	}
}

// NewFederalTaxCalculator2025 creates a new federal tax calculator for 2025
func NewFederalTaxCalculator2025() *FederalTaxCalculator {
	return &FederalTaxCalculator{
		Year: 2025,
		StandardDeductions: StandardDeductions{
			Single:          decimal.NewFromInt(14600),
			MarriedJoint:    decimal.NewFromInt(29200),
			HeadOfHousehold: decimal.NewFromInt(21900),
		},
		CreditPerDependent: decimal.NewFromInt(2000),
		BracketsSingle:     defaultBracketsSingle2025(),
	}
}

// NewFederalTaxCalculator creates a federal tax calculator from configuration,
// keeping the 2025 value for every field left at zero
func NewFederalTaxCalculator(config domain.FederalTaxConfig) *FederalTaxCalculator {
	ftc := NewFederalTaxCalculator2025()
	if !config.StandardDeductionSingle.IsZero() {
		ftc.StandardDeductions.Single = config.StandardDeductionSingle
	}
	if !config.StandardDeductionMarriedJoint.IsZero() {
		ftc.StandardDeductions.MarriedJoint = config.StandardDeductionMarriedJoint
	}
	if !config.StandardDeductionHeadOfHousehold.IsZero() {
		ftc.StandardDeductions.HeadOfHousehold = config.StandardDeductionHeadOfHousehold
	}
	if !config.CreditPerDependent.IsZero() {
		ftc.CreditPerDependent = config.CreditPerDependent
	}
	if len(config.TaxBracketsSingle) > 0 {
		brackets := make([]TaxBracket, 0, len(config.TaxBracketsSingle))
		for _, b := range config.TaxBracketsSingle {
			brackets = append(brackets, TaxBracket{Min: b.Min, Max: b.Max, Rate: b.Rate, Unbounded: b.Max.IsZero()})
		}
		ftc.BracketsSingle = brackets
	}
	return ftc
}

// TaxableIncome subtracts the single standard deduction, flooring at zero
func (ftc *FederalTaxCalculator) TaxableIncome(grossIncome decimal.Decimal) decimal.Decimal {
	return decimal.Max(decimal.Zero, grossIncome.Sub(ftc.StandardDeductions.Single))
}

// CalculateBracketTax applies the marginal brackets to taxable income
func (ftc *FederalTaxCalculator) CalculateBracketTax(taxableIncome decimal.Decimal) decimal.Decimal {
	totalTax := decimal.Zero
	for _, bracket := range ftc.BracketsSingle {
		if taxableIncome.LessThanOrEqual(bracket.Min) {
			break
		}
		totalTax = totalTax.Add(bracket.amountIn(taxableIncome).Mul(bracket.Rate))
	}
	return totalTax
}

// CalculateDependentCredit returns the credit actually usable against taxBeforeCredit
func (ftc *FederalTaxCalculator) CalculateDependentCredit(taxBeforeCredit decimal.Decimal, dependents int) decimal.Decimal {
	if dependents <= 0 {
		return decimal.Zero
	}
	credit := ftc.CreditPerDependent.Mul(decimal.NewFromInt(int64(dependents)))
	return decimal.Max(decimal.Zero, decimal.Min(taxBeforeCredit, credit))
}

// CalculateFederalTax returns federal tax after the dependent credit along with the
// taxable income and the credit applied
func (ftc *FederalTaxCalculator) CalculateFederalTax(grossIncome decimal.Decimal, dependents int) (tax, taxableIncome, credit decimal.Decimal) {
	taxableIncome = ftc.TaxableIncome(grossIncome)
	beforeCredit := ftc.CalculateBracketTax(taxableIncome)
	credit = ftc.CalculateDependentCredit(beforeCredit, dependents)
	tax = decimal.Max(decimal.Zero, beforeCredit.Sub(credit))
	return tax, taxableIncome, credit
}

// FICACalculator handles FICA tax calculations
type FICACalculator struct {
	Year                int
	SSWageBase          decimal.Decimal
	SSRate              decimal.Decimal
	MedicareRate        decimal.Decimal
	AdditionalRate      decimal.Decimal
	HighIncomeThreshold decimal.Decimal
}

// NewFICACalculator2025 creates a new FICA calculator for 2025
func NewFICACalculator2025() *FICACalculator {
	return &FICACalculator{
		Year:                2025,
		SSWageBase:          decimal.NewFromInt(168600),
		SSRate:              decimal.NewFromFloat(0.062),
		MedicareRate:        decimal.NewFromFloat(0.0145),
		AdditionalRate:      decimal.NewFromFloat(0.009),
		HighIncomeThreshold: decimal.NewFromInt(200000), // single
	}
}

// NewFICACalculator creates a FICA calculator from configuration, keeping 2025
// values for zero fields
func NewFICACalculator(config domain.FICATaxConfig) *FICACalculator {
	fc := NewFICACalculator2025()
	if !config.SocialSecurityWageBase.IsZero() {
		fc.SSWageBase = config.SocialSecurityWageBase
	}
	if !config.SocialSecurityRate.IsZero() {
		fc.SSRate = config.SocialSecurityRate
	}
	if !config.MedicareRate.IsZero() {
		fc.MedicareRate = config.MedicareRate
	}
	if !config.AdditionalMedicareRate.IsZero() {
		fc.AdditionalRate = config.AdditionalMedicareRate
	}
	if !config.AdditionalMedicareOver.IsZero() {
		fc.HighIncomeThreshold = config.AdditionalMedicareOver
	}
	return fc
}

// CalculateSocialSecurity taxes wages up to the wage base
func (fc *FICACalculator) CalculateSocialSecurity(wages decimal.Decimal) decimal.Decimal {
	return decimal.Min(wages, fc.SSWageBase).Mul(fc.SSRate)
}

// CalculateMedicare taxes all wages plus the additional rate above the threshold
func (fc *FICACalculator) CalculateMedicare(wages decimal.Decimal) decimal.Decimal {
	medicareTax := wages.Mul(fc.MedicareRate)
	if wages.GreaterThan(fc.HighIncomeThreshold) {
		medicareTax = medicareTax.Add(wages.Sub(fc.HighIncomeThreshold).Mul(fc.AdditionalRate))
	}
	return medicareTax
}

// CalculateFICA returns Social Security and Medicare separately
func (fc *FICACalculator) CalculateFICA(wages decimal.Decimal) (socialSecurity, medicare decimal.Decimal) {
	return fc.CalculateSocialSecurity(wages), fc.CalculateMedicare(wages)
}

// ComprehensiveTaxCalculator handles all tax calculations
type ComprehensiveTaxCalculator struct {
	FederalTaxCalc *FederalTaxCalculator
	StateTaxCalc   *StateTaxCalculator
	FICATaxCalc    *FICACalculator
}

// NewComprehensiveTaxCalculator creates a new comprehensive tax calculator
func NewComprehensiveTaxCalculator() *ComprehensiveTaxCalculator {
	return &ComprehensiveTaxCalculator{
		FederalTaxCalc: NewFederalTaxCalculator2025(),
		StateTaxCalc:   NewStateTaxCalculator(),
		FICATaxCalc:    NewFICACalculator2025(),
	}
}

// NewComprehensiveTaxCalculatorWithConfig creates a comprehensive tax calculator with
// configurable values. A nil rules block yields the 2025 defaults.
func NewComprehensiveTaxCalculatorWithConfig(rules *domain.TaxRules) *ComprehensiveTaxCalculator {
	if rules == nil {
		return NewComprehensiveTaxCalculator()
	}
	return &ComprehensiveTaxCalculator{
		FederalTaxCalc: NewFederalTaxCalculator(rules.FederalTaxConfig),
		StateTaxCalc:   NewStateTaxCalculatorWithConfig(rules.StateTaxConfig),
		FICATaxCalc:    NewFICACalculator(rules.FICATaxConfig),
	}
}

// CalculateTaxes produces the full breakdown for one gross income. It never fails:
// unknown states are taxed at 0% and a zero income yields a zero effective rate.
func (ctc *ComprehensiveTaxCalculator) CalculateTaxes(grossIncome decimal.Decimal, dependents int, state string) domain.TaxResult {
	federalTax, taxableIncome, credit := ctc.FederalTaxCalc.CalculateFederalTax(grossIncome, dependents)
	socialSecurity, medicare := ctc.FICATaxCalc.CalculateFICA(grossIncome)
	stateRate := ctc.StateTaxCalc.Rate(state)
	stateTax := taxableIncome.Mul(stateRate)

	totalTax := federalTax.Add(stateTax).Add(socialSecurity).Add(medicare)

	effectiveRate := decimal.Zero
	if !grossIncome.IsZero() {
		effectiveRate = totalTax.Div(grossIncome).Mul(decimalHundred)
	}

	return domain.TaxResult{
		GrossIncome:       grossIncome,
		TaxableIncome:     taxableIncome,
		StandardDeduction: ctc.FederalTaxCalc.StandardDeductions.Single,
		DependentCredit:   credit,
		State:             state,
		StateRate:         stateRate,
		FederalTax:        federalTax,
		StateTax:          stateTax,
		SocialSecurity:    socialSecurity,
		Medicare:          medicare,
		TotalTax:          totalTax,
		NetIncome:         grossIncome.Sub(totalTax),
		EffectiveTaxRate:  effectiveRate,
	}
}

var defaultTaxCalc = NewComprehensiveTaxCalculator()

// CalculateTaxes runs the 2025 default tax calculator
func CalculateTaxes(grossIncome decimal.Decimal, dependents int, state string) domain.TaxResult {
	return defaultTaxCalc.CalculateTaxes(grossIncome, dependents, state)
}

// StatesList returns the sorted state names known to the default calculator
func StatesList() []string {
	return defaultTaxCalc.StateTaxCalc.States()
}
