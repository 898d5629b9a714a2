package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/peter-kozarec/linreg/pkg/analysis"
	"github.com/peter-kozarec/linreg/pkg/inference"
	"github.com/peter-kozarec/linreg/pkg/utility"
	"github.com/spf13/cobra"
)

func newPredictCommand(app *AppContext) *cobra.Command {
	var (
		source sourceFlags
		at     []float64
		kind   string
	)

	cmd := &cobra.Command{
		Use:   "predict [file]",
		Short: "Predict the response at new x values",
		Long: `Fit one dataset and predict the response at the given x values, with
an interval for the mean response or for a new observation.

Examples:
  linreg predict data.csv --at 1.5,2.5
  linreg predict data.csv --at 10 --kind observation --level 0.9`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			predictionKind, err := inference.ParsePredictionKind(kind)
			if err != nil {
				return err
			}

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

			digits := app.Config.Precision
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "X\tPREDICTION\tSTD ERR\tLOWER\tUPPER")
			for _, x := range at {
				p, err := inference.PredictionInterval(r.Model(), x, app.Config.ConfidenceLevel, predictionKind)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					utility.FormatFixed(p.X, digits),
					utility.FormatFixed(p.Value, digits),
					utility.FormatFixed(p.StdErr, digits),
					utility.FormatFixed(p.Interval.Lower, digits),
					utility.FormatFixed(p.Interval.Upper, digits))
			}
			return w.Flush()
		},
	}

	source.register(cmd)
	cmd.Flags().Float64SliceVar(&at, "at", nil, "x values to predict at (required)")
	cmd.Flags().StringVar(&kind, "kind", "mean", "Interval kind: mean or observation")
	_ = cmd.MarkFlagRequired("at")
	return cmd
}
