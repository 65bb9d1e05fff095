package api

import (
	"github.com/shopspring/decimal"

	"github.com/stephenkarpeles/money-for-life/internal/config"
	"github.com/stephenkarpeles/money-for-life/internal/domain"
)

// =============================================================================
// REQUESTS
// =============================================================================

type TaxRequest struct {
	GrossIncome decimal.Decimal `json:"gross_income"`
	Dependents  int             `json:"dependents"`
	State       string          `json:"state"`
}

type GrowthRequest struct {
	AnnualInvestment decimal.Decimal  `json:"annual_investment"`
	Years            int              `json:"years"`
	StartingAge      *int             `json:"starting_age,omitempty"`
	AnnualReturn     *decimal.Decimal `json:"annual_return,omitempty"`
}

type MilestonesRequest struct {
	AnnualInvestment decimal.Decimal  `json:"annual_investment"`
	AnnualReturn     *decimal.Decimal `json:"annual_return,omitempty"`
}

// PlanRequest is form input: every value is a string the way the user typed it
type PlanRequest struct {
	config.RawProfile
	AnnualReturn string `json:"annual_return,omitempty"`
	HorizonAge   string `json:"horizon_age,omitempty"`
}

type SaveProfileRequest struct {
	Name        string              `json:"name"`
	Profile     domain.Profile      `json:"profile"`
	Assumptions *domain.Assumptions `json:"assumptions,omitempty"`
}

// =============================================================================
// RESPONSES
// =============================================================================

type StateDTO struct {
	Name string          `json:"name"`
	Rate decimal.Decimal `json:"rate"`
}

type StatesResponse struct {
	States []StateDTO `json:"states"`
}

type GrowthResponse struct {
	AnnualReturn decimal.Decimal             `json:"annual_return"`
	Projection   []domain.InvestmentSnapshot `json:"projection"`
}

type MilestonesResponse struct {
	AnnualReturn decimal.Decimal              `json:"annual_return"`
	Milestones   []domain.RetirementMilestone `json:"milestones"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
