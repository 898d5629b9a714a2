package csv

import (
	stdcsv "encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/peter-kozarec/linreg/pkg/datasource"
)

func Write(path, xColumn, yColumn string, pairs []datasource.Pair) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("unable to create %q: %w", path, err)
	}
	defer func(file *os.File) {
		_ = file.Close()
	}(file)

	w := stdcsv.NewWriter(file)
	if err := w.Write([]string{xColumn, yColumn}); err != nil {
		return err
	}
	for _, p := range pairs {
		record := []string{
			strconv.FormatFloat(p.X, 'g', -1, 64),
			strconv.FormatFloat(p.Y, 'g', -1, 64),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
