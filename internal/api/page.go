package api

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/a-h/templ"

	"github.com/stephenkarpeles/money-for-life/internal/config"
	"github.com/stephenkarpeles/money-for-life/internal/domain"
	"github.com/stephenkarpeles/money-for-life/internal/output"
)

const pageStyle = `body{font-family:system-ui,sans-serif;margin:0;background:#f8fafc;color:#111827}
main{max-width:860px;margin:0 auto;padding:24px}
form{display:grid;grid-template-columns:repeat(3,1fr);gap:12px;background:#fff;padding:16px;border:1px solid #e5e7eb}
label{display:flex;flex-direction:column;font-size:13px;color:#4b5563}
input,select{padding:6px;font-size:15px}
table{border-collapse:collapse;width:100%;margin:12px 0;background:#fff}
td,th{border-bottom:1px solid #e5e7eb;padding:6px 10px;text-align:right}
td:first-child,th:first-child{text-align:left}
.net{color:#047857;font-weight:600}`

// pageData is what the calculator page shows: the submitted form values and,
// once a salary has been entered, the resulting plan
type pageData struct {
	Input  config.RawProfile
	States []string
	Plan   *domain.PlanResult
	Query  string
}

// Index renders the calculator page. The form submits back to "/" with GET, so
// the page works without JavaScript.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	data := pageData{
		Input: config.RawProfile{
			Salary:        q.Get("salary"),
			Dependents:    q.Get("dependents"),
			State:         q.Get("state"),
			InvestPercent: q.Get("invest_percent"),
			StartingAge:   q.Get("starting_age"),
		},
		States: h.Engine.TaxCalc.StateTaxCalc.States(),
	}
	if data.Input.InvestPercent == "" {
		data.Input.InvestPercent = "15"
	}
	if data.Input.StartingAge == "" {
		data.Input.StartingAge = fmt.Sprint(config.ClampAge(0))
	}

	if data.Input.Salary != "" {
		result, err := h.Engine.RunPlan(r.Context(), config.ProfileFromRaw(data.Input), defaultAssumptions())
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		data.Plan = result
		data.Query = url.Values{
			"salary":         {data.Input.Salary},
			"dependents":     {data.Input.Dependents},
			"state":          {data.Input.State},
			"invest_percent": {data.Input.InvestPercent},
			"starting_age":   {data.Input.StartingAge},
		}.Encode()
	}

	render(w, r, calculatorPage(data))
}

// render writes a templ component to the response.
func render(w http.ResponseWriter, r *http.Request, c templ.Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := c.Render(r.Context(), w); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// pageRow is one label/value line of the taxes table
type pageRow struct {
	Label string
	Value string
}

// reportLinkFormats are the download links offered under a plan
var reportLinkFormats = []string{"pdf", "html", "csv", "json"}

func taxRows(t domain.TaxResult) []pageRow {
	return []pageRow{
		{"Gross income", output.FormatCurrency(t.GrossIncome)},
		{"Federal tax", output.FormatCurrency(t.FederalTax)},
		{"State tax (" + t.State + ", " + output.FormatRate(t.StateRate) + ")", output.FormatCurrency(t.StateTax)},
		{"Social Security", output.FormatCurrency(t.SocialSecurity)},
		{"Medicare", output.FormatCurrency(t.Medicare)},
		{"Total tax", output.FormatCurrency(t.TotalTax)},
		{"Effective tax rate", output.FormatPercentage(t.EffectiveTaxRate)},
	}
}
