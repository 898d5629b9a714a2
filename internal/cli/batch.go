package cli

import (
	"github.com/peter-kozarec/linreg/pkg/analysis"
	"github.com/spf13/cobra"
)

func newBatchCommand(app *AppContext) *cobra.Command {
	var (
		source sourceFlags
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "batch <file>...",
		Short: "Fit many datasets in parallel",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			jobs := make([]analysis.Job, 0, len(args))
			for _, path := range args {
				src, release, err := source.open(cmd.Context(), path)
				if err != nil {
					return err
				}
				defer release()
				jobs = append(jobs, analysis.Job{Name: path, Source: src})
			}

			reports, err := app.Analyzer().AnalyzeAll(cmd.Context(), jobs)
			if err != nil {
				return err
			}
			for _, r := range reports {
				if err := emit(cmd, app, r, asJSON); err != nil {
					return err
				}
			}
			app.Telemetry.PrintStatistics()
			return nil
		},
	}

	source.register(cmd)
	cmd.Flags().BoolVar(&asJSON, "json", false, "Write one JSON report per line to stdout")
	return cmd
}
