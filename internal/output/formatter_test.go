package output

import (
	"bytes"
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	json "github.com/goccy/go-json"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stephenkarpeles/money-for-life/internal/calculation"
	"github.com/stephenkarpeles/money-for-life/internal/domain"
)

func buildTestComparison(t *testing.T) *domain.PlanComparison {
	t.Helper()
	twenty := decimal.NewFromInt(20)
	low := decimal.RequireFromString("0.06")
	config := &domain.Configuration{
		Profile: domain.Profile{
			Name:          "Baseline",
			GrossIncome:   decimal.NewFromInt(75000),
			State:         "Texas",
			InvestPercent: decimal.NewFromInt(15),
			StartingAge:   25,
		},
		Assumptions: domain.Assumptions{AnnualReturn: calculation.DefaultAnnualReturn, HorizonAge: 80},
		Scenarios: []domain.Scenario{
			{Name: "Invest 20%", InvestPercent: &twenty},
			{Name: "Low Return", AnnualReturn: &low},
		},
	}
	cmp, err := calculation.NewCalculationEngine().RunScenarios(context.Background(), config)
	require.NoError(t, err)
	return cmp
}

func fixedNow(t *testing.T) {
	t.Helper()
	SetNowFunc(func() time.Time { return time.Date(2025, 1, 1, 9, 30, 0, 0, time.UTC) })
	t.Cleanup(func() { SetNowFunc(time.Now) })
}

func TestConsoleLiteFormatter(t *testing.T) {
	out, err := ConsoleLiteFormatter{}.Format(buildTestComparison(t))
	require.NoError(t, err)

	content := string(out)
	assert.True(t, strings.HasPrefix(content, "INVESTMENT PLAN SUMMARY"))
	assert.Contains(t, content, "Net Income: $60,922")
	assert.Contains(t, content, "Best scenario: Invest 20%")
	assert.Contains(t, content, "Low Return: Invest=")
}

func TestConsoleFormatter(t *testing.T) {
	out, err := ConsoleFormatter{}.Format(buildTestComparison(t))
	require.NoError(t, err)

	content := string(out)
	assert.Contains(t, content, "MONEY FOR LIFE: TAKE-HOME PAY AND INVESTMENT GROWTH")
	assert.Contains(t, content, "KEY ASSUMPTIONS:")
	assert.Contains(t, content, "Federal Tax:")
	assert.Contains(t, content, "$8,341")
	assert.Contains(t, content, "State Tax (Texas 0.0%)")
	assert.Contains(t, content, "PLAN 1: Baseline")
	assert.Contains(t, content, "PLAN 3: Low Return")
	assert.Contains(t, content, "$100,000")
	assert.Contains(t, content, "Best scenario: Invest 20%")
}

func TestConsoleFormatter_NoMilestones(t *testing.T) {
	cmp := buildTestComparison(t)
	cmp.Baseline.Milestones = nil
	out, err := ConsoleFormatter{}.Format(cmp)
	require.NoError(t, err)
	assert.Contains(t, string(out), "none reached")
}

func TestCSVSummarizer(t *testing.T) {
	out, err := CSVSummarizer{}.Format(buildTestComparison(t))
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 4, "header + baseline + 2 scenarios")
	assert.Equal(t, "Scenario", records[0][0])
	assert.Equal(t, "Baseline", records[1][0])
	assert.Equal(t, "Invest 20%", records[2][0])
	assert.Equal(t, "Low Return", records[3][0])
	assert.Equal(t, "8341.00", records[1][4])
	assert.Equal(t, "60921.50", records[1][9])
	for _, r := range records {
		assert.Len(t, r, len(records[0]))
	}
}

func TestCSVDetailedExporter(t *testing.T) {
	cmp := buildTestComparison(t)
	out, err := CSVDetailedExporter{}.Format(cmp)
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	require.NoError(t, err)

	expected := 1
	for _, p := range cmp.All() {
		expected += len(p.Projection)
	}
	require.Len(t, records, expected)
	assert.Equal(t, []string{"Scenario", "Year", "Age", "Invested", "Value", "Gains"}, records[0])
	assert.Equal(t, []string{"Baseline", "0", "25", "0", "0", "0"}, records[1])
	assert.Equal(t, "9138", records[2][3])
}

func TestJSONFormatter(t *testing.T) {
	out, err := JSONFormatter{}.Format(buildTestComparison(t))
	require.NoError(t, err)

	var decoded struct {
		Baseline struct {
			Name  string `json:"name"`
			Taxes struct {
				FederalTax decimal.Decimal `json:"federal_tax"`
			} `json:"taxes"`
			Projection []domain.InvestmentSnapshot `json:"projection"`
		} `json:"baseline"`
		Scenarios    []json.RawMessage `json:"scenarios"`
		BestScenario string            `json:"best_scenario"`
	}
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.Equal(t, "Baseline", decoded.Baseline.Name)
	assert.True(t, decoded.Baseline.Taxes.FederalTax.Equal(decimal.NewFromInt(8341)))
	assert.Len(t, decoded.Baseline.Projection, 56)
	assert.Len(t, decoded.Scenarios, 2)
	assert.Equal(t, "Invest 20%", decoded.BestScenario)
	assert.Contains(t, string(out), "\n  \"baseline\"")
}

func TestHTMLFormatter(t *testing.T) {
	fixedNow(t)
	out, err := HTMLFormatter{}.Format(buildTestComparison(t))
	require.NoError(t, err)

	content := string(out)
	assert.True(t, strings.HasPrefix(content, "<!DOCTYPE html>"))
	assert.Contains(t, content, "Scenario Summary")
	assert.Contains(t, content, "Key Assumptions")
	assert.Contains(t, content, "Tax Breakdown: Baseline")
	assert.Contains(t, content, "$60,922")
	assert.Equal(t, 3, strings.Count(content, "<svg"))
	assert.Contains(t, content, "<polyline points=\"70.0,")
	assert.Contains(t, content, `class="best"`)
	assert.Contains(t, content, "Generated Wed, 01 Jan 2025 09:30:00 UTC")
	assert.Contains(t, content, `id="plan-data"`)
}

func TestHTMLAssumptionsFallback(t *testing.T) {
	cmp := buildTestComparison(t)
	cmp.Assumptions = nil
	out, err := HTMLFormatter{}.Format(cmp)
	require.NoError(t, err)
	assert.Contains(t, string(out), DefaultAssumptions[len(DefaultAssumptions)-1])
}

func TestPDFFormatter(t *testing.T) {
	fixedNow(t)
	out, err := PDFFormatter{}.Format(buildTestComparison(t))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
	assert.Greater(t, len(out), 1000)
}

func TestFormatterAliasResolution(t *testing.T) {
	tests := map[string]string{
		"console-verbose": "console",
		"VERBOSE":         "console",
		" csv-detailed ":  "detailed-csv",
		"json-pretty":     "json",
		"pdf":             "pdf",
		"summary":         "console-lite",
	}
	for alias, want := range tests {
		f := GetFormatterByName(alias)
		require.NotNil(t, f, "alias %q did not resolve", alias)
		assert.Equal(t, want, f.Name())
	}
	assert.Nil(t, GetFormatterByName("xml"))
}

func TestAvailableFormatterNames(t *testing.T) {
	assert.Equal(t, []string{"console", "console-lite", "csv", "detailed-csv", "html", "json", "pdf"}, AvailableFormatterNames())
	assert.Contains(t, AvailableFormatAliases(), "verbose")
}

func TestExtensionAndContentType(t *testing.T) {
	assert.Equal(t, "csv", Extension("csv-detailed"))
	assert.Equal(t, "txt", Extension("console"))
	assert.Equal(t, "pdf", Extension("pdf"))
	assert.Equal(t, "application/pdf", ContentType("pdf"))
	assert.Equal(t, "text/html; charset=utf-8", ContentType("html-report"))
	assert.Equal(t, "application/json", ContentType("json"))
	assert.Equal(t, "text/plain; charset=utf-8", ContentType("console-lite"))
}

func TestFormatterFunc(t *testing.T) {
	f := FormatterFunc{ID: "names", F: func(r *domain.PlanComparison) ([]byte, error) {
		return []byte(r.BestScenario), nil
	}}
	out, err := f.Format(&domain.PlanComparison{BestScenario: "x"})
	require.NoError(t, err)
	assert.Equal(t, "x", string(out))
	assert.Equal(t, "names", f.Name())
}

func TestWriteFormatted(t *testing.T) {
	fixedNow(t)
	dir := filepath.Join(t.TempDir(), "reports")

	file, err := WriteFormatted(CSVSummarizer{}, buildTestComparison(t), dir, "csv")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "money_for_life_csv_20250101_093000.csv"), file)

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "Scenario,"))
}
