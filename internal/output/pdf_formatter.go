package output

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/stephenkarpeles/money-for-life/internal/domain"
)

// PDFFormatter renders a printable report: a summary page followed by one
// page per plan with a growth chart and projection table.
type PDFFormatter struct{}

func (p PDFFormatter) Name() string { return "pdf" }

func (p PDFFormatter) Format(results *domain.PlanComparison) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "Letter", "")
	pdf.SetMargins(18, 18, 18)
	pdf.SetAutoPageBreak(true, 18)
	pdf.AliasNbPages("{nb}")
	pdf.SetCreationDate(nowFunc())
	pdf.SetTitle("Money for Life Report", false)

	pdf.AddPage()
	drawHeader(pdf, "MONEY FOR LIFE  INVESTMENT PLAN REPORT")
	if results.Baseline != nil {
		drawTaxTable(pdf, results.Baseline)
	}
	drawSummaryTable(pdf, results)
	drawAssumptions(pdf, assumptionsFor(results))

	for i, plan := range results.All() {
		pdf.AddPage()
		drawHeader(pdf, fmt.Sprintf("PLAN %d: %s", i+1, plan.Name))
		drawPlanPage(pdf, &plan)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func drawHeader(pdf *fpdf.Fpdf, title string) {
	pageW, _ := pdf.GetPageSize()
	marginL, marginT, marginR, _ := pdf.GetMargins()
	contentW := pageW - marginL - marginR

	pdf.SetFillColor(37, 99, 235)
	pdf.Rect(marginL, marginT, contentW, 10, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetXY(marginL+2, marginT+1.5)
	pdf.CellFormat(contentW-30, 7, title, "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(0, 7, "Page "+fmt.Sprint(pdf.PageNo())+" of {nb}", "", 1, "R", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.SetY(marginT + 14)
}

func sectionTitle(pdf *fpdf.Fpdf, title string) {
	pdf.Ln(2)
	pdf.SetFillColor(240, 240, 240)
	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(0, 6, title, "1", 1, "L", true, 0, "")
	pdf.SetFont("Helvetica", "", 9)
}

func drawTaxTable(pdf *fpdf.Fpdf, plan *domain.PlanResult) {
	t := plan.Taxes
	sectionTitle(pdf, "TAX BREAKDOWN: "+plan.Name)
	rows := [][2]string{
		{"Gross Income", FormatCurrency(t.GrossIncome)},
		{"Taxable Income", FormatCurrency(t.TaxableIncome)},
		{"Federal Tax", FormatCurrency(t.FederalTax)},
		{fmt.Sprintf("State Tax (%s, %s)", displayState(t.State), FormatRate(t.StateRate)), FormatCurrency(t.StateTax)},
		{"Social Security", FormatCurrency(t.SocialSecurity)},
		{"Medicare", FormatCurrency(t.Medicare)},
		{"Total Tax", FormatCurrency(t.TotalTax)},
		{"Effective Tax Rate", FormatPercentage(t.EffectiveTaxRate)},
		{"Net Income", FormatCurrency(t.NetIncome)},
		{"Monthly Take-Home", FormatCurrency(t.MonthlyNetIncome())},
	}
	for i, r := range rows {
		fill := i%2 == 0
		pdf.SetFillColor(250, 250, 250)
		pdf.CellFormat(110, 6, r[0], "LB", 0, "L", fill, 0, "")
		pdf.CellFormat(0, 6, r[1], "RB", 1, "R", fill, 0, "")
	}
}

func drawSummaryTable(pdf *fpdf.Fpdf, results *domain.PlanComparison) {
	sectionTitle(pdf, "SCENARIO SUMMARY")
	widths := []float64{52, 20, 20, 30, 28, 30}
	header := []string{"Plan", "Invest %", "Return", "Invested", "Final Value", "Gains"}

	pdf.SetFont("Helvetica", "B", 8.5)
	pdf.SetFillColor(30, 30, 30)
	pdf.SetTextColor(255, 255, 255)
	for i, h := range header {
		pdf.CellFormat(widths[i], 6.5, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetTextColor(0, 0, 0)

	for _, plan := range results.All() {
		if plan.Name == results.BestScenario {
			pdf.SetFont("Helvetica", "B", 8.5)
			pdf.SetFillColor(220, 240, 220)
		} else {
			pdf.SetFont("Helvetica", "", 8.5)
			pdf.SetFillColor(255, 255, 255)
		}
		cells := []string{
			plan.Name,
			FormatPercentage(plan.Profile.InvestPercent),
			FormatRate(plan.AnnualReturn),
			FormatCurrency(plan.Summary.TotalInvested),
			FormatCurrency(plan.Summary.FinalValue),
			FormatCurrency(plan.Summary.TotalGains),
		}
		for i, c := range cells {
			align := "R"
			if i == 0 {
				align = "L"
			}
			pdf.CellFormat(widths[i], 6.5, c, "1", 0, align, true, 0, "")
		}
		pdf.Ln(-1)
	}
}

func drawAssumptions(pdf *fpdf.Fpdf, assumptions []string) {
	sectionTitle(pdf, "KEY ASSUMPTIONS")
	for _, a := range assumptions {
		pdf.MultiCell(0, 5, "- "+a, "", "L", false)
	}
}

func drawPlanPage(pdf *fpdf.Fpdf, plan *domain.PlanResult) {
	s := plan.Summary
	pdf.SetFont("Helvetica", "", 9)
	pdf.MultiCell(0, 5, fmt.Sprintf("Investing %s of net income (%s per year, %s per month) from age %d at %s annual return.",
		FormatPercentage(plan.Profile.InvestPercent), FormatCurrency(s.AnnualInvestment), FormatCurrency(s.MonthlyInvestment),
		plan.Profile.StartingAge, FormatRate(plan.AnnualReturn)), "", "L", false)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(0, 7, fmt.Sprintf("Value at age %d: %s   Invested: %s   Gains: %s",
		s.FinalAge, FormatCurrency(s.FinalValue), FormatCurrency(s.TotalInvested), FormatCurrency(s.TotalGains)), "", 1, "L", false, 0, "")

	drawChart(pdf, plan.Projection)

	sectionTitle(pdf, "MILESTONES")
	if len(plan.Milestones) == 0 {
		pdf.CellFormat(0, 6, "No milestones reached within 80 years.", "", 1, "L", false, 0, "")
	}
	for _, m := range plan.Milestones {
		pdf.CellFormat(0, 5.5, fmt.Sprintf("%s in %d years (age %d)", FormatCurrency(m.Amount), m.Years, plan.Profile.StartingAge+m.Years), "", 1, "L", false, 0, "")
	}

	sectionTitle(pdf, "PROJECTION")
	widths := []float64{20, 20, 46, 46, 0}
	pdf.SetFont("Helvetica", "B", 8.5)
	for i, h := range []string{"Year", "Age", "Invested", "Value", "Gains"} {
		ln := 0
		if i == len(widths)-1 {
			ln = 1
		}
		pdf.CellFormat(widths[i], 6, h, "1", ln, "C", false, 0, "")
	}
	pdf.SetFont("Helvetica", "", 8.5)
	for _, p := range chartPoints(plan.Projection) {
		pdf.CellFormat(widths[0], 5.5, intToString(p.Year), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[1], 5.5, intToString(p.Age), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[2], 5.5, FormatCurrency(p.Invested), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[3], 5.5, FormatCurrency(p.Value), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[4], 5.5, FormatCurrency(p.Gains()), "1", 1, "R", false, 0, "")
	}
}

// drawChart scales the SVG chart geometry into a box on the current page.
func drawChart(pdf *fpdf.Fpdf, projection []domain.InvestmentSnapshot) {
	c := BuildChart(projection)
	pageW, _ := pdf.GetPageSize()
	marginL, _, marginR, _ := pdf.GetMargins()
	boxW := pageW - marginL - marginR
	boxH := boxW * c.Height / c.Width
	originX, originY := marginL, pdf.GetY()+2
	scale := boxW / c.Width

	tx := func(x float64) float64 { return originX + x*scale }
	ty := func(y float64) float64 { return originY + y*scale }

	pdf.SetFont("Helvetica", "", 7)
	pdf.SetDrawColor(229, 231, 235)
	pdf.SetLineWidth(0.2)
	for _, t := range c.YTicks {
		pdf.Line(tx(c.Left), ty(t.Pos), tx(c.Width), ty(t.Pos))
		pdf.Text(originX, ty(t.Pos)+1, t.Label)
	}
	for _, t := range c.XTicks {
		pdf.Text(tx(t.Pos)-2, ty(c.Height)-2, t.Label)
	}

	drawPolyline(pdf, c.Invested, tx, ty, 59, 130, 246)
	drawPolyline(pdf, c.Value, tx, ty, 16, 185, 129)

	pdf.SetDrawColor(0, 0, 0)
	pdf.SetY(originY + boxH + 2)
}

func drawPolyline(pdf *fpdf.Fpdf, pts []ChartPoint, tx, ty func(float64) float64, r, g, b int) {
	if len(pts) < 2 {
		return
	}
	pdf.SetDrawColor(r, g, b)
	pdf.SetLineWidth(0.6)
	for i := 1; i < len(pts); i++ {
		pdf.Line(tx(pts[i-1].X), ty(pts[i-1].Y), tx(pts[i].X), ty(pts[i].Y))
	}
}
