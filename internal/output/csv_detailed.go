package output

import (
	"bytes"
	"encoding/csv"

	"github.com/stephenkarpeles/money-for-life/internal/domain"
)

// CSVDetailedExporter provides raw annual projection detail per plan/year.
type CSVDetailedExporter struct{}

func (c CSVDetailedExporter) Name() string { return "detailed-csv" }

func (c CSVDetailedExporter) Format(results *domain.PlanComparison) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "Year", "Age", "Invested", "Value", "Gains"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, plan := range results.All() {
		for _, yr := range plan.Projection {
			row := []string{
				plan.Name,
				intToString(yr.Year),
				intToString(yr.Age),
				yr.Invested.StringFixed(0),
				yr.Value.StringFixed(0),
				yr.Gains().StringFixed(0),
			}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
