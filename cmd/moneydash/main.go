// moneydash is a terminal personal finance dashboard with an investment
// growth projection.
package main

import (
	"fmt"
	"math"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jask/moneydash/internal/chart"
	"github.com/jask/moneydash/internal/config"
	"github.com/jask/moneydash/internal/format"
	"github.com/jask/moneydash/internal/ledger"
	"github.com/jask/moneydash/internal/logging"
	"github.com/jask/moneydash/internal/projection"
	"github.com/jask/moneydash/internal/report"
	"github.com/jask/moneydash/internal/tui"
)

// Build-time variables (set via -ldflags).
var (
	version = "dev"
	commit  = "unknown"
)

var cfg config.Config

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:          "moneydash",
	Short:        "Personal finance dashboard with investment projections",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if path, _ := cmd.Flags().GetString("config"); path != "" {
			if err := os.Setenv("MONEYDASH_CONFIG", path); err != nil {
				return err
			}
		}
		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if level, _ := cmd.Flags().GetString("log-level"); level != "" {
			cfg.Log.Level = level
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		log, err := logging.New(cfg.Log)
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()

		store, err := seededStore(log)
		if err != nil {
			return err
		}
		app := tui.New(cfg, store, log, time.Now)
		defer app.Close()

		log.Info("starting dashboard", zap.String("currency", cfg.UI.Currency))
		p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseAllMotion(), tea.WithReportFocus())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("run dashboard: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "config file path (default: ~/.config/moneydash/config.toml)")
	rootCmd.PersistentFlags().String("log-level", "", "log level override (debug, info, warn, error)")

	projectCmd.Flags().Float64("start", 0, "starting balance (default: invested balance of the sample ledger)")
	projectCmd.Flags().Float64("contribution", 0, "yearly contribution (default: projection.annual_contribution)")
	projectCmd.Flags().Int("years", 0, fmt.Sprintf("horizon in years, at most %d (default: projection.horizon_years)", config.MaxHorizonYears))

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(projectCmd)
}

func seededStore(log *zap.Logger) (*ledger.Store, error) {
	store := ledger.NewStore(log)
	if err := ledger.Seed(store, time.Now()); err != nil {
		return nil, fmt.Errorf("seed ledger: %w", err)
	}
	return store, nil
}

// --- Version Command ---

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("moneydash %s\n", version)
		fmt.Printf("  commit:  %s\n", commit)
	},
}

// --- Project Command ---

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Print the growth projection for every scenario",
	RunE: func(cmd *cobra.Command, args []string) error {
		logCfg := cfg.Log
		logCfg.Path = "stderr"
		log, err := logging.New(logCfg)
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()

		money := format.NewFormatter(cfg.UI.Currency)
		params := projection.Params{
			PeriodicContribution: cfg.Projection.AnnualContribution,
			HorizonPeriods:       cfg.Projection.HorizonYears,
		}
		if cmd.Flags().Changed("start") {
			params.StartValue, _ = cmd.Flags().GetFloat64("start")
		} else {
			store, err := seededStore(log)
			if err != nil {
				return err
			}
			params.StartValue = money.ToMajor(store.InvestedBalanceCents(cfg.Projection.InvestedAccountTypes))
		}
		if cmd.Flags().Changed("contribution") {
			params.PeriodicContribution, _ = cmd.Flags().GetFloat64("contribution")
		}
		if cmd.Flags().Changed("years") {
			params.HorizonPeriods, _ = cmd.Flags().GetInt("years")
		}

		if math.IsNaN(params.StartValue) || math.IsInf(params.StartValue, 0) {
			return fmt.Errorf("--start must be a finite amount")
		}
		flagged := cfg.Projection
		flagged.HorizonYears = params.HorizonPeriods
		flagged.AnnualContribution = params.PeriodicContribution
		if err := flagged.Validate(); err != nil {
			return err
		}

		scenarios := cfg.Projection.ProjectionScenarios()
		set, err := projection.BuildSeries(params, scenarios, time.Now().Year())
		if err != nil {
			return err
		}
		if err := projection.Validate(set); err != nil {
			return err
		}
		log.Debug("projection built", zap.Float64("start_value", params.StartValue), zap.Int("years", params.HorizonPeriods))

		md, err := report.Markdown(report.Build(params, set, money, 5).WithRates(scenarios))
		if err != nil {
			return err
		}
		out, err := report.Terminal(md)
		if err != nil {
			return err
		}
		fmt.Print(out)

		idle := chart.NoHover()
		fmt.Println(chart.Render(cfg.Chart.Surface(), set, idle))
		fmt.Println(chart.RenderLegend(chart.LegendRows(set, idle), money, false))
		return nil
	},
}
