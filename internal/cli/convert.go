package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/peter-kozarec/linreg/pkg/datasource"
	"github.com/peter-kozarec/linreg/pkg/datasource/csv"
	"github.com/peter-kozarec/linreg/pkg/datasource/mapper"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newConvertCommand(app *AppContext) *cobra.Command {
	var source sourceFlags

	cmd := &cobra.Command{
		Use:   "convert <in> <out.csv|out.bin>",
		Short: "Dump a dataset into the csv or memory mapped binary format",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, out := args[0], args[1]

			src, release, err := source.open(cmd.Context(), in)
			if err != nil {
				return err
			}
			defer release()

			pairs, err := datasource.CollectPairs(src)
			if err != nil {
				return fmt.Errorf("unable to read %q: %w", in, err)
			}

			switch strings.ToLower(filepath.Ext(out)) {
			case ".bin":
				err = mapper.Write(out, pairs)
			case ".csv":
				err = csv.Write(out, "x", "y", pairs)
			default:
				err = fmt.Errorf("unsupported output %q, use .csv or .bin", out)
			}
			if err != nil {
				return err
			}

			app.Logger.Info("dump finished", zap.String("from", in), zap.String("to", out), zap.Int("pairs", len(pairs)))
			return nil
		},
	}

	source.register(cmd)
	return cmd
}
