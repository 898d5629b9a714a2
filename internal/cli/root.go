package cli

import (
	"fmt"
	"os"

	"github.com/peter-kozarec/linreg/internal/cfg"
	"github.com/peter-kozarec/linreg/internal/dbg"
	"github.com/peter-kozarec/linreg/pkg/analysis"
	"github.com/peter-kozarec/linreg/pkg/middleware"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// AppContext holds what every command needs once flags and environment are merged.
type AppContext struct {
	Config    *cfg.Config
	Logger    *zap.Logger
	Telemetry *middleware.Telemetry
	Monitor   *middleware.Monitor
}

func (a *AppContext) Analyzer() *analysis.Analyzer {
	return analysis.NewAnalyzer(a.Logger, a.Config.Analysis(), a.Telemetry, a.Monitor)
}

type globalFlags struct {
	logMode   string
	logLevel  string
	level     float64
	precision int
	workers   int
	bootstrap int
	seed      int64
	monitor   bool
}

func NewRootCommand() *cobra.Command {
	var (
		flags globalFlags
		app   AppContext
	)

	root := &cobra.Command{
		Use:   "linreg",
		Short: "Simple linear regression with inference and residual diagnostics",
		Long: `linreg fits y = b0 + b1*x by ordinary least squares and reports
confidence intervals, p-values, goodness of fit and residual diagnostics
(Jarque-Bera, Breusch-Pagan, Durbin-Watson).

Defaults come from LINREG_* environment variables; flags override them.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			c, err := cfg.Load()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			applyFlags(cmd, &flags, c)
			if err := c.Validate(); err != nil {
				return err
			}

			logger, err := dbg.NewLogger(c.LogMode, c.LogLevel)
			if err != nil {
				return fmt.Errorf("failed to create logger: %w", err)
			}

			monitorFlags := middleware.MonitorFailures
			if flags.monitor {
				monitorFlags |= middleware.MonitorAll
			}

			app = AppContext{
				Config:    c,
				Logger:    logger,
				Telemetry: middleware.NewTelemetry(logger),
				Monitor:   middleware.NewMonitor(logger, monitorFlags),
			}
			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if app.Logger != nil {
				_ = app.Logger.Sync()
			}
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&flags.logMode, "log-mode", "", "Log encoding: dev or prod (LINREG_LOG_MODE)")
	pf.StringVar(&flags.logLevel, "log-level", "", "Log level (LINREG_LOG_LEVEL)")
	pf.Float64Var(&flags.level, "level", 0, "Confidence level in (0, 1) (LINREG_CONFIDENCE_LEVEL)")
	pf.IntVar(&flags.precision, "precision", 0, "Decimal places in reports (LINREG_PRECISION)")
	pf.IntVar(&flags.workers, "workers", 0, "Parallel analyses in batch mode (LINREG_WORKERS)")
	pf.IntVar(&flags.bootstrap, "bootstrap", 0, "Pairs bootstrap resamples, 0 disables (LINREG_BOOTSTRAP_RESAMPLES)")
	pf.Int64Var(&flags.seed, "seed", 0, "Random seed (LINREG_SEED)")
	pf.BoolVar(&flags.monitor, "monitor", false, "Log every analysis stage")

	root.AddCommand(newFitCommand(&app))
	root.AddCommand(newBatchCommand(&app))
	root.AddCommand(newPredictCommand(&app))
	root.AddCommand(newGenerateCommand(&app))
	root.AddCommand(newConvertCommand(&app))
	return root
}

func applyFlags(cmd *cobra.Command, flags *globalFlags, c *cfg.Config) {
	changed := cmd.Flags().Changed
	if changed("log-mode") {
		c.LogMode = flags.logMode
	}
	if changed("log-level") {
		c.LogLevel = flags.logLevel
	}
	if changed("level") {
		c.ConfidenceLevel = flags.level
	}
	if changed("precision") {
		c.Precision = flags.precision
	}
	if changed("workers") {
		c.Workers = flags.workers
	}
	if changed("bootstrap") {
		c.BootstrapResamples = flags.bootstrap
	}
	if changed("seed") {
		c.Seed = flags.seed
	}
}

func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
