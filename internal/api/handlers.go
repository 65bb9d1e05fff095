package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	json "github.com/goccy/go-json"
	"github.com/shopspring/decimal"

	"github.com/stephenkarpeles/money-for-life/internal/calculation"
	"github.com/stephenkarpeles/money-for-life/internal/config"
	"github.com/stephenkarpeles/money-for-life/internal/domain"
	"github.com/stephenkarpeles/money-for-life/internal/output"
	"github.com/stephenkarpeles/money-for-life/internal/store/sqlite"
)

// ProfileStore is the persistence the profile endpoints need
type ProfileStore interface {
	SaveProfile(ctx context.Context, rec sqlite.ProfileRecord) error
	GetProfile(ctx context.Context, name string) (*sqlite.ProfileRecord, error)
	ListProfiles(ctx context.Context) ([]sqlite.ProfileRecord, error)
	DeleteProfile(ctx context.Context, name string) error
}

// Handler serves the calculator API. Store may be nil, in which case the
// profile endpoints answer 503.
type Handler struct {
	Engine *calculation.CalculationEngine
	Store  ProfileStore
	Logger calculation.Logger
}

// NewHandler creates a handler around engine and store
func NewHandler(engine *calculation.CalculationEngine, store ProfileStore, logger calculation.Logger) *Handler {
	if engine == nil {
		engine = calculation.NewCalculationEngine()
	}
	if logger == nil {
		logger = calculation.NopLogger{}
	}
	return &Handler{Engine: engine, Store: store, Logger: logger}
}

func defaultAssumptions() domain.Assumptions {
	return domain.Assumptions{AnnualReturn: calculation.DefaultAnnualReturn, HorizonAge: calculation.DefaultHorizonAge}
}

// =============================================================================
// CALCULATOR ENDPOINTS
// =============================================================================

func (h *Handler) ListStates(w http.ResponseWriter, r *http.Request) {
	stc := h.Engine.TaxCalc.StateTaxCalc
	states := stc.States()
	resp := StatesResponse{States: make([]StateDTO, len(states))}
	for i, s := range states {
		resp.States[i] = StateDTO{Name: s, Rate: stc.Rate(s)}
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) CalculateTaxes(w http.ResponseWriter, r *http.Request) {
	var req TaxRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if req.GrossIncome.IsNegative() {
		writeError(w, http.StatusBadRequest, "gross_income must not be negative", nil)
		return
	}
	if req.Dependents < 0 {
		writeError(w, http.StatusBadRequest, "dependents must not be negative", nil)
		return
	}

	writeJSON(w, http.StatusOK, h.Engine.TaxCalc.CalculateTaxes(req.GrossIncome, req.Dependents, strings.TrimSpace(req.State)))
}

func (h *Handler) ProjectGrowth(w http.ResponseWriter, r *http.Request) {
	var req GrowthRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if err := config.ValidateYears(req.Years); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid years", err)
		return
	}

	gp := calculation.NewGrowthProjector()
	if req.StartingAge != nil {
		gp.StartingAge = config.ClampAge(*req.StartingAge)
	}
	if req.AnnualReturn != nil {
		if err := config.ValidateReturn(*req.AnnualReturn); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid annual_return", err)
			return
		}
		gp.AnnualReturn = *req.AnnualReturn
	}

	writeJSON(w, http.StatusOK, GrowthResponse{AnnualReturn: gp.AnnualReturn, Projection: gp.Project(req.AnnualInvestment, req.Years)})
}

func (h *Handler) FindMilestones(w http.ResponseWriter, r *http.Request) {
	var req MilestonesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	gp := calculation.NewGrowthProjector()
	if req.AnnualReturn != nil {
		if err := config.ValidateReturn(*req.AnnualReturn); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid annual_return", err)
			return
		}
		gp.AnnualReturn = *req.AnnualReturn
	}

	milestones := gp.Milestones(req.AnnualInvestment)
	if milestones == nil {
		milestones = []domain.RetirementMilestone{}
	}
	writeJSON(w, http.StatusOK, MilestonesResponse{AnnualReturn: gp.AnnualReturn, Milestones: milestones})
}

// planInputs turns form-style input into a normalized profile and assumptions
func planInputs(req PlanRequest) (domain.Profile, domain.Assumptions, error) {
	profile := config.ProfileFromRaw(req.RawProfile)
	assumptions := defaultAssumptions()

	if v := strings.TrimSpace(req.AnnualReturn); v != "" {
		ret, err := decimal.NewFromString(v)
		if err != nil {
			return profile, assumptions, fmt.Errorf("invalid annual_return %q: %w", v, err)
		}
		if err := config.ValidateReturn(ret); err != nil {
			return profile, assumptions, fmt.Errorf("invalid annual_return: %w", err)
		}
		assumptions.AnnualReturn = ret
	}
	if horizon := config.ParseIntDefault(req.HorizonAge, 0); horizon > 0 {
		assumptions.HorizonAge = horizon
	}
	return profile, assumptions, nil
}

func (h *Handler) RunPlan(w http.ResponseWriter, r *http.Request) {
	var req PlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	profile, assumptions, err := planInputs(req)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid plan input", err)
		return
	}

	result, err := h.Engine.RunPlan(r.Context(), profile, assumptions)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to run plan", err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// GenerateReport renders a single-plan report in the format named by the URL.
// Inputs come from the query string using the PlanRequest field names.
func (h *Handler) GenerateReport(w http.ResponseWriter, r *http.Request) {
	format := chi.URLParam(r, "format")
	formatter, err := output.Lookup(format)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Unsupported report format", err)
		return
	}

	q := r.URL.Query()
	profile, assumptions, err := planInputs(PlanRequest{
		RawProfile: config.RawProfile{
			Name:          q.Get("name"),
			Salary:        q.Get("salary"),
			Dependents:    q.Get("dependents"),
			State:         q.Get("state"),
			InvestPercent: q.Get("invest_percent"),
			StartingAge:   q.Get("starting_age"),
		},
		AnnualReturn: q.Get("annual_return"),
		HorizonAge:   q.Get("horizon_age"),
	})
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid plan input", err)
		return
	}

	comparison, err := h.Engine.RunScenarios(r.Context(), &domain.Configuration{Profile: profile, Assumptions: assumptions})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to run plan", err)
		return
	}

	data, err := formatter.Format(comparison)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to render report", err)
		return
	}

	w.Header().Set("Content-Type", output.ContentType(format))
	if ext := output.Extension(format); ext == "pdf" || ext == "csv" {
		w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="money_for_life_%s.%s"`, formatter.Name(), ext))
	}
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// =============================================================================
// PROFILE ENDPOINTS
// =============================================================================

func (h *Handler) requireStore(w http.ResponseWriter) bool {
	if h.Store == nil {
		writeError(w, http.StatusServiceUnavailable, "Profile store not configured", nil)
		return false
	}
	return true
}

func (h *Handler) ListProfiles(w http.ResponseWriter, r *http.Request) {
	if !h.requireStore(w) {
		return
	}
	profiles, err := h.Store.ListProfiles(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list profiles", err)
		return
	}
	if profiles == nil {
		profiles = []sqlite.ProfileRecord{}
	}
	writeJSON(w, http.StatusOK, profiles)
}

func (h *Handler) SaveProfile(w http.ResponseWriter, r *http.Request) {
	if !h.requireStore(w) {
		return
	}
	var req SaveProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	assumptions := defaultAssumptions()
	if req.Assumptions != nil {
		if !req.Assumptions.AnnualReturn.IsZero() {
			assumptions.AnnualReturn = req.Assumptions.AnnualReturn
		}
		if req.Assumptions.HorizonAge > 0 {
			assumptions.HorizonAge = req.Assumptions.HorizonAge
		}
	}
	if err := config.ValidateReturn(assumptions.AnnualReturn); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid annual_return", err)
		return
	}

	rec := sqlite.ProfileRecord{
		Name:        req.Name,
		Profile:     config.NormalizeProfile(req.Profile),
		Assumptions: assumptions,
	}
	if err := h.Store.SaveProfile(r.Context(), rec); err != nil {
		if errors.Is(err, sqlite.ErrProfileNameRequired) {
			writeError(w, http.StatusBadRequest, "Invalid profile", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to save profile", err)
		return
	}

	saved, err := h.Store.GetProfile(r.Context(), req.Name)
	if err != nil || saved == nil {
		writeError(w, http.StatusInternalServerError, "Failed to load saved profile", err)
		return
	}
	h.Logger.Infof("saved profile %q", saved.Name)
	writeJSON(w, http.StatusCreated, saved)
}

func (h *Handler) loadProfile(w http.ResponseWriter, r *http.Request) *sqlite.ProfileRecord {
	if !h.requireStore(w) {
		return nil
	}
	name := chi.URLParam(r, "name")
	rec, err := h.Store.GetProfile(r.Context(), name)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to get profile", err)
		return nil
	}
	if rec == nil {
		writeError(w, http.StatusNotFound, "Profile not found", fmt.Errorf("no profile named %q", name))
		return nil
	}
	return rec
}

func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	if rec := h.loadProfile(w, r); rec != nil {
		writeJSON(w, http.StatusOK, rec)
	}
}

func (h *Handler) GetProfilePlan(w http.ResponseWriter, r *http.Request) {
	rec := h.loadProfile(w, r)
	if rec == nil {
		return
	}
	result, err := h.Engine.RunPlan(r.Context(), rec.Profile, rec.Assumptions)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to run plan", err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *Handler) DeleteProfile(w http.ResponseWriter, r *http.Request) {
	if !h.requireStore(w) {
		return
	}
	name := chi.URLParam(r, "name")
	if err := h.Store.DeleteProfile(r.Context(), name); err != nil {
		if errors.Is(err, sqlite.ErrProfileNotFound) {
			writeError(w, http.StatusNotFound, "Profile not found", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to delete profile", err)
		return
	}
	h.Logger.Infof("deleted profile %q", name)
	w.WriteHeader(http.StatusNoContent)
}

// =============================================================================
// HELPERS
// =============================================================================

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}
