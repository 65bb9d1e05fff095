package output

import (
	"bytes"
	_ "embed"
	"html/template"
	"time"

	json "github.com/goccy/go-json"

	"github.com/stephenkarpeles/money-for-life/internal/domain"
)

// HTMLFormatter produces a standalone HTML report with an inline SVG chart per plan.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"curr":  FormatCurrency,
	"cents": FormatCurrencyCents,
	"pct":   FormatPercentage,
	"rate":  FormatRate,
	"add":   func(i, j int) int { return i + j },
	"json": func(v interface{}) template.JS {
		b, _ := json.Marshal(v)
		return template.JS(b)
	},
}).Parse(htmlTemplateSource))

type htmlPlan struct {
	domain.PlanResult
	Chart Chart
	Rows  []domain.InvestmentSnapshot
}

func (h HTMLFormatter) Format(results *domain.PlanComparison) ([]byte, error) {
	var buf bytes.Buffer

	var plans []htmlPlan
	for _, p := range results.All() {
		plans = append(plans, htmlPlan{PlanResult: p, Chart: BuildChart(p.Projection), Rows: chartPoints(p.Projection)})
	}

	data := struct {
		*domain.PlanComparison
		Plans          []htmlPlan
		Recommendation Recommendation
		Assumptions    []string
		GeneratedAt    string
	}{results, plans, AnalyzeScenarios(results), assumptionsFor(results), nowFunc().Format(time.RFC1123)}
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
