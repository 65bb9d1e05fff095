package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/stephenkarpeles/money-for-life/internal/calculation"
	"github.com/stephenkarpeles/money-for-life/internal/config"
	"github.com/stephenkarpeles/money-for-life/internal/domain"
	"github.com/stephenkarpeles/money-for-life/internal/output"
)

// emitReport prints console-style formats to stdout when no output directory is
// given; every other case writes report files and lists them.
func emitReport(cmd *cobra.Command, results *domain.PlanComparison, format, outDir string) error {
	name := output.NormalizeFormatName(format)
	if outDir == "" && (name == "console" || name == "console-lite") {
		f, err := output.Lookup(name)
		if err != nil {
			return err
		}
		data, err := f.Format(results)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}

	files, err := output.GenerateReport(results, format, outDir)
	if err != nil {
		return err
	}
	for _, f := range files {
		fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", f)
	}
	return nil
}

func newPlanCmd() *cobra.Command {
	var (
		raw     config.RawProfile
		returns string
		horizon int
		format  string
		outDir  string
	)
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Calculate taxes and investment growth for one profile",
		Example: `  mfl plan --salary 75,000 --state Texas --percent 15 --age 25
  mfl plan --salary 90000 --state Oregon --percent 20 --format pdf --out reports`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := config.ParseSalary(raw.Salary); err != nil {
				return fmt.Errorf("--salary %q: %w", raw.Salary, err)
			}
			if _, err := decimal.NewFromString(raw.InvestPercent); err != nil {
				return fmt.Errorf("invalid --percent %q: %w", raw.InvestPercent, err)
			}
			r, err := parseReturn(returns)
			if err != nil {
				return err
			}

			profile := config.ProfileFromRaw(raw)
			engine := newEngine()
			results, err := engine.RunScenarios(cmd.Context(), &domain.Configuration{
				Profile:     profile,
				Assumptions: domain.Assumptions{AnnualReturn: r, HorizonAge: horizon},
			})
			if err != nil {
				return err
			}
			return emitReport(cmd, results, format, outDir)
		},
	}
	cmd.Flags().StringVar(&raw.Name, "name", "", "Plan name shown in reports")
	cmd.Flags().StringVar(&raw.Salary, "salary", "", "Annual gross salary in whole dollars (commas allowed)")
	cmd.Flags().StringVar(&raw.Dependents, "dependents", "0", "Number of dependents")
	cmd.Flags().StringVar(&raw.State, "state", "", "US state name, e.g. Texas")
	cmd.Flags().StringVar(&raw.InvestPercent, "percent", "15", "Percent of net income invested (0-100)")
	cmd.Flags().StringVar(&raw.StartingAge, "age", fmt.Sprint(calculation.DefaultStartingAge), "Age investing starts")
	cmd.Flags().StringVar(&returns, "return", calculation.DefaultAnnualReturn.String(), "Annual return as a fraction")
	cmd.Flags().IntVar(&horizon, "horizon", calculation.DefaultHorizonAge, "Age the projection runs to")
	cmd.Flags().StringVarP(&format, "format", "f", "console", "Output format ("+fmt.Sprint(output.AvailableFormatterNames())+" or all)")
	cmd.Flags().StringVarP(&outDir, "out", "o", "", "Directory for report files")
	cmd.MarkFlagRequired("salary")
	return cmd
}

func newRunCmd() *cobra.Command {
	var (
		configPath string
		format     string
		outDir     string
	)
	cmd := &cobra.Command{
		Use:     "run",
		Short:   "Run every scenario in a YAML plan file and compare them",
		Example: `  mfl run --config plan.yaml --format html --out reports`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.NewInputParser().LoadFromFile(configPath)
			if err != nil {
				return err
			}

			engine := calculation.NewCalculationEngineWithConfig(cfg.TaxRules)
			engine.SetLogger(calculation.NewSlogLogger(newLogger(slog.LevelInfo)))
			results, err := engine.RunScenarios(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			return emitReport(cmd, results, format, outDir)
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to the YAML plan file")
	cmd.Flags().StringVarP(&format, "format", "f", "console", "Output format ("+fmt.Sprint(output.AvailableFormatterNames())+" or all)")
	cmd.Flags().StringVarP(&outDir, "out", "o", "", "Directory for report files")
	cmd.MarkFlagRequired("config")
	return cmd
}

func newExampleCmd() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "example [file]",
		Short: "Write an example YAML plan file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "example_config.yaml"
			if len(args) == 1 {
				path = args[0]
			}
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			} else if err != nil && !errors.Is(err, os.ErrNotExist) {
				return err
			}

			if err := config.SaveConfiguration(config.NewInputParser().CreateExampleConfiguration(), path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Example configuration written to %s\n", path)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")
	return cmd
}
