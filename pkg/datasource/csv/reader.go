package csv

import (
	stdcsv "encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/peter-kozarec/linreg/pkg/datasource"
	"github.com/peter-kozarec/linreg/pkg/errs"
)

// Reader streams two numeric columns out of a CSV file with a header row.
// Empty column names select the first and second column.
type Reader struct {
	path    string
	xColumn string
	yColumn string

	file   *os.File
	reader *stdcsv.Reader
	xIdx   int
	yIdx   int
	line   int
}

func NewReader(path, xColumn, yColumn string) *Reader {
	return &Reader{
		path:    path,
		xColumn: xColumn,
		yColumn: yColumn,
	}
}

func (r *Reader) Open() error {
	file, err := os.Open(r.path)
	if err != nil {
		return fmt.Errorf("unable to open data source %q: %w", r.path, err)
	}

	reader := stdcsv.NewReader(file)
	reader.TrimLeadingSpace = true
	reader.ReuseRecord = true

	header, err := reader.Read()
	if err != nil {
		_ = file.Close()
		return fmt.Errorf("unable to read header of %q: %w", r.path, err)
	}
	if r.xIdx, err = lookup(header, r.xColumn, 0); err != nil {
		_ = file.Close()
		return err
	}
	if r.yIdx, err = lookup(header, r.yColumn, 1); err != nil {
		_ = file.Close()
		return err
	}

	r.file = file
	r.reader = reader
	r.line = 1
	return nil
}

func (r *Reader) Close() {
	if r.file != nil {
		_ = r.file.Close()
	}
}

func (r *Reader) GetNext() (datasource.Pair, error) {
	var pair datasource.Pair

	record, err := r.reader.Read()
	if errors.Is(err, io.EOF) {
		return pair, datasource.ErrEof
	}
	if err != nil {
		return pair, fmt.Errorf("unable to read %q: %w", r.path, err)
	}
	r.line++

	if pair.X, err = parse(record, r.xIdx, r.line); err != nil {
		return pair, err
	}
	if pair.Y, err = parse(record, r.yIdx, r.line); err != nil {
		return pair, err
	}
	return pair, nil
}

func lookup(header []string, name string, fallback int) (int, error) {
	if name == "" {
		if fallback >= len(header) {
			return 0, fmt.Errorf("%w: header has %d columns, need at least %d", errs.ErrShape, len(header), fallback+1)
		}
		return fallback, nil
	}
	for i, h := range header {
		if strings.EqualFold(strings.TrimSpace(h), name) {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: column %q not found", errs.ErrInvalidArgument, name)
}

func parse(record []string, idx, line int) (float64, error) {
	if idx >= len(record) {
		return 0, fmt.Errorf("%w: line %d has %d fields", errs.ErrShape, line, len(record))
	}

	field := strings.TrimSpace(record[idx])
	switch strings.ToLower(field) {
	case "", "na", "nan", "null":
		return 0, fmt.Errorf("%w: line %d column %d", errs.ErrMissingValue, line, idx+1)
	}

	v, err := strconv.ParseFloat(field, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: line %d column %d: %v", errs.ErrInvalidArgument, line, idx+1, err)
	}
	return v, nil
}
