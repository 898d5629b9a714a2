package cli

import (
	"fmt"

	"github.com/peter-kozarec/linreg/pkg/analysis"
	"github.com/peter-kozarec/linreg/pkg/report"
	"github.com/spf13/cobra"
)

func newFitCommand(app *AppContext) *cobra.Command {
	var (
		source sourceFlags
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "fit [file]",
		Short: "Fit one dataset and report inference and diagnostics",
		Long: `Fit one dataset and report inference and diagnostics.

Examples:
  linreg fit data.csv -x height -y weight
  linreg fit pairs.bin --level 0.99 --bootstrap 2000
  linreg fit --db obs.duckdb --table samples -x dose -y response --json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}

			src, release, err := source.open(cmd.Context(), path)
			if err != nil {
				return err
			}
			defer release()

			r, err := app.Analyzer().Analyze(cmd.Context(), analysis.Job{Name: jobName(path), Source: src})
			if err != nil {
				return err
			}
			return emit(cmd, app, r, asJSON)
		},
	}

	source.register(cmd)
	cmd.Flags().BoolVar(&asJSON, "json", false, "Write the report as JSON to stdout")
	return cmd
}

func emit(cmd *cobra.Command, app *AppContext, r *report.Report, asJSON bool) error {
	if !asJSON {
		r.Print(app.Logger)
		return nil
	}
	data, err := r.MarshalJSON()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}

func jobName(path string) string {
	if path == "" {
		return "query"
	}
	return path
}
