package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/peter-kozarec/linreg/pkg/datasource"
	"github.com/peter-kozarec/linreg/pkg/datasource/csv"
	"github.com/peter-kozarec/linreg/pkg/datasource/duckdb"
	"github.com/peter-kozarec/linreg/pkg/datasource/mapper"
	"github.com/spf13/cobra"
)

const (
	formatCSV    = "csv"
	formatBinary = "bin"
	formatDuckDB = "duckdb"
)

type sourceFlags struct {
	format string
	x      string
	y      string
	query  string
	table  string
	db     string
}

func (s *sourceFlags) register(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&s.format, "format", "", "Input format: csv, bin or duckdb (default: by file extension)")
	f.StringVarP(&s.x, "x", "x", "", "Predictor column (default: first column)")
	f.StringVarP(&s.y, "y", "y", "", "Response column (default: second column)")
	f.StringVar(&s.query, "query", "", "DuckDB query returning two numeric columns")
	f.StringVar(&s.table, "table", "", "DuckDB table to read the columns from")
	f.StringVar(&s.db, "db", "", "DuckDB database file (default: in-memory)")
}

func (s *sourceFlags) formatOf(path string) string {
	if s.format != "" {
		return strings.ToLower(s.format)
	}
	if s.query != "" || s.table != "" {
		return formatDuckDB
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".bin":
		return formatBinary
	case ".csv":
		return formatCSV
	default:
		return formatDuckDB
	}
}

// open returns a pair source for path and a function releasing it.
func (s *sourceFlags) open(ctx context.Context, path string) (datasource.PairSource, func(), error) {
	switch s.formatOf(path) {
	case formatCSV:
		r := csv.NewReader(path, s.x, s.y)
		if err := r.Open(); err != nil {
			return nil, nil, err
		}
		return r, r.Close, nil

	case formatBinary:
		source := mapper.NewSource[mapper.BinaryPair](path)
		if err := source.Open(); err != nil {
			return nil, nil, err
		}
		return mapper.NewPairReader(source), source.Close, nil

	case formatDuckDB:
		xs, ys, err := s.queryDuckDB(ctx, path)
		if err != nil {
			return nil, nil, err
		}
		src, err := datasource.NewSlice(xs, ys)
		if err != nil {
			return nil, nil, err
		}
		return src, func() {}, nil

	default:
		return nil, nil, fmt.Errorf("unknown format %q", s.format)
	}
}

func (s *sourceFlags) queryDuckDB(ctx context.Context, path string) (xs, ys []float64, err error) {
	r := duckdb.NewReader(s.db)
	if err := r.Connect(); err != nil {
		return nil, nil, err
	}
	defer r.Close()

	x, y := s.x, s.y
	if x == "" {
		x = "x"
	}
	if y == "" {
		y = "y"
	}

	query := s.query
	switch {
	case query != "":
	case s.table != "":
		query = duckdb.TableQuery(s.table, x, y)
	case path != "":
		query = duckdb.FileQuery(path, x, y)
	default:
		return nil, nil, fmt.Errorf("duckdb input needs a file, --table or --query")
	}
	return r.Collect(ctx, query)
}
