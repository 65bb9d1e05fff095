package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	json "github.com/goccy/go-json"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/stephenkarpeles/money-for-life/internal/calculation"
	"github.com/stephenkarpeles/money-for-life/internal/config"
	"github.com/stephenkarpeles/money-for-life/internal/output"
	"github.com/stephenkarpeles/money-for-life/pkg/money"
)

func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func parseReturn(s string) (decimal.Decimal, error) {
	r, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid return %q: %w", s, err)
	}
	if err := config.ValidateReturn(r); err != nil {
		return decimal.Zero, fmt.Errorf("invalid return %s: %w", r, err)
	}
	return r, nil
}

func newTaxesCmd() *cobra.Command {
	var (
		salary     string
		dependents int
		state      string
		asJSON     bool
	)
	cmd := &cobra.Command{
		Use:   "taxes",
		Short: "Show the 2025 tax breakdown for a salary",
		Example: `  mfl taxes --salary 75,000 --state Texas
  mfl taxes --salary 120000 --dependents 2 --state California --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			gross, err := config.ParseSalary(salary)
			if err != nil {
				return fmt.Errorf("--salary %q: %w", salary, err)
			}
			if dependents < 0 {
				return fmt.Errorf("--dependents must not be negative")
			}

			engine := newEngine()
			if !engine.TaxCalc.StateTaxCalc.IsKnown(state) {
				engine.Logger.Warnf("unknown state %q, state tax set to zero", state)
			}
			t := engine.TaxCalc.CalculateTaxes(gross, dependents, state)
			out := cmd.OutOrStdout()
			if asJSON {
				return writeJSON(out, t)
			}

			tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
			fmt.Fprintf(tw, "Gross Income\t%s\t\n", output.FormatCurrencyCents(t.GrossIncome))
			fmt.Fprintf(tw, "Taxable Income\t%s\t\n", output.FormatCurrencyCents(t.TaxableIncome))
			fmt.Fprintf(tw, "Federal Tax\t%s\t\n", output.FormatCurrencyCents(t.FederalTax))
			fmt.Fprintf(tw, "State Tax (%s)\t%s\t\n", output.FormatRate(t.StateRate), output.FormatCurrencyCents(t.StateTax))
			fmt.Fprintf(tw, "Social Security\t%s\t\n", output.FormatCurrencyCents(t.SocialSecurity))
			fmt.Fprintf(tw, "Medicare\t%s\t\n", output.FormatCurrencyCents(t.Medicare))
			fmt.Fprintf(tw, "Total Tax\t%s\t\n", output.FormatCurrencyCents(t.TotalTax))
			fmt.Fprintf(tw, "Net Income\t%s\t\n", output.FormatCurrencyCents(t.NetIncome))
			fmt.Fprintf(tw, "Monthly Take-Home\t%s\t\n", output.FormatCurrencyCents(t.MonthlyNetIncome()))
			fmt.Fprintf(tw, "Effective Tax Rate\t%s%%\t\n", t.EffectiveTaxRate.StringFixed(2))
			return tw.Flush()
		},
	}
	cmd.Flags().StringVar(&salary, "salary", "", "Annual gross salary in whole dollars (commas allowed)")
	cmd.Flags().IntVar(&dependents, "dependents", 0, "Number of dependents")
	cmd.Flags().StringVar(&state, "state", "", "US state name, e.g. Texas")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the result as JSON")
	cmd.MarkFlagRequired("salary")
	return cmd
}

func newGrowthCmd() *cobra.Command {
	var (
		annual  string
		years   int
		age     int
		returns string
		asJSON  bool
	)
	cmd := &cobra.Command{
		Use:     "growth",
		Short:   "Project compound growth of a fixed yearly investment",
		Example: `  mfl growth --annual 10000 --years 30 --age 30 --return 0.07`,
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := decimal.NewFromString(annual)
			if err != nil {
				return fmt.Errorf("invalid --annual %q: %w", annual, err)
			}
			if err := config.ValidateYears(years); err != nil {
				return fmt.Errorf("invalid --years: %w", err)
			}
			gp := calculation.NewGrowthProjector()
			gp.StartingAge = config.ClampAge(age)
			if gp.AnnualReturn, err = parseReturn(returns); err != nil {
				return err
			}

			projection := gp.Project(amount, years)
			out := cmd.OutOrStdout()
			if asJSON {
				return writeJSON(out, projection)
			}

			tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
			fmt.Fprintln(tw, "YEAR\tAGE\tINVESTED\tVALUE\tGAINS\t")
			for _, s := range projection {
				fmt.Fprintf(tw, "%d\t%d\t%s\t%s\t%s\t\n", s.Year, s.Age,
					output.FormatCurrency(s.Invested), output.FormatCurrency(s.Value), output.FormatCurrency(s.Gains()))
			}
			return tw.Flush()
		},
	}
	cmd.Flags().StringVar(&annual, "annual", "0", "Amount invested each year")
	cmd.Flags().IntVar(&years, "years", 10, "Number of years to project")
	cmd.Flags().IntVar(&age, "age", calculation.DefaultStartingAge, "Age at year 0")
	cmd.Flags().StringVar(&returns, "return", calculation.DefaultAnnualReturn.String(), "Annual return as a fraction")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the projection as JSON")
	return cmd
}

func newMilestonesCmd() *cobra.Command {
	var (
		annual  string
		age     int
		returns string
	)
	cmd := &cobra.Command{
		Use:     "milestones",
		Short:   "Show how many years a yearly investment takes to reach $100K through $2M",
		Example: `  mfl milestones --annual 9138 --age 25`,
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := decimal.NewFromString(annual)
			if err != nil {
				return fmt.Errorf("invalid --annual %q: %w", annual, err)
			}
			r, err := parseReturn(returns)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			milestones := calculation.CalculateRetirementMilestones(amount, r)
			if len(milestones) == 0 {
				fmt.Fprintf(out, "No milestone reached within %d years\n", calculation.MilestoneYearCap)
				return nil
			}
			startAge := config.ClampAge(age)
			for _, m := range milestones {
				fmt.Fprintf(out, "%-12s %2d years (age %d)\n", output.FormatCurrency(m.Amount), m.Years, startAge+m.Years)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&annual, "annual", "0", "Amount invested each year")
	cmd.Flags().IntVar(&age, "age", calculation.DefaultStartingAge, "Starting age used to label milestones")
	cmd.Flags().StringVar(&returns, "return", calculation.DefaultAnnualReturn.String(), "Annual return as a fraction")
	return cmd
}

func newStatesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "states",
		Short: "List supported states and their flat income tax rates",
		RunE: func(cmd *cobra.Command, args []string) error {
			stc := calculation.NewStateTaxCalculator()
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			for _, s := range calculation.StatesList() {
				fmt.Fprintf(tw, "%s\t%s\n", s, money.FormatRate(stc.Rate(s), 2))
			}
			return tw.Flush()
		},
	}
}
