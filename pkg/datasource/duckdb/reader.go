package duckdb

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/marcboeker/go-duckdb"
	"github.com/peter-kozarec/linreg/pkg/datasource"
	"github.com/peter-kozarec/linreg/pkg/errs"
)

type Reader struct {
	dataSourceName string
	db             *sql.DB
}

// NewReader opens an in-memory database when dataSourceName is empty.
func NewReader(dataSourceName string) *Reader {
	return &Reader{
		dataSourceName: dataSourceName,
	}
}

func (r *Reader) Connect() error {
	db, err := sql.Open("duckdb", r.dataSourceName)
	if err != nil {
		return fmt.Errorf("sql.Open: %w", err)
	}
	r.db = db
	return nil
}

func (r *Reader) Close() {
	if r.db != nil {
		_ = r.db.Close()
	}
}

func (r *Reader) DB() *sql.DB { return r.db }

// FileQuery selects two columns from a csv or parquet file; duckdb picks the
// format from the extension.
func FileQuery(path, xColumn, yColumn string) string {
	return selectPairs(quoteLiteral(path), xColumn, yColumn)
}

func TableQuery(table, xColumn, yColumn string) string {
	return selectPairs(quoteIdentifier(table), xColumn, yColumn)
}

func selectPairs(from, xColumn, yColumn string) string {
	return fmt.Sprintf(`SELECT CAST(%s AS DOUBLE), CAST(%s AS DOUBLE) FROM %s`,
		quoteIdentifier(xColumn), quoteIdentifier(yColumn), from)
}

// LoadPairs runs a query returning two numeric columns and hands every row to handler.
func (r *Reader) LoadPairs(ctx context.Context, query string, handler func(pair datasource.Pair) error) error {
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return fmt.Errorf("error preparing query: %w", err)
	}
	defer func(rows *sql.Rows) {
		_ = rows.Close()
	}(rows)

	row := 0
	for rows.Next() {
		row++
		var x, y sql.NullFloat64
		if err := rows.Scan(&x, &y); err != nil {
			return fmt.Errorf("error scanning row %d: %w", row, err)
		}
		if !x.Valid || !y.Valid {
			return fmt.Errorf("%w: row %d contains NULL", errs.ErrMissingValue, row)
		}
		if err := handler(datasource.Pair{X: x.Float64, Y: y.Float64}); err != nil {
			return fmt.Errorf("error processing row %d: %w", row, err)
		}
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("error scanning rows: %w", err)
	}

	return nil
}

func (r *Reader) Collect(ctx context.Context, query string) (xs, ys []float64, err error) {
	err = r.LoadPairs(ctx, query, func(pair datasource.Pair) error {
		xs = append(xs, pair.X)
		ys = append(ys, pair.Y)
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return xs, ys, nil
}

func quoteIdentifier(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

func quoteLiteral(s string) string {
	return `'` + strings.ReplaceAll(s, `'`, `''`) + `'`
}
