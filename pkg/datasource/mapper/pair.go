package mapper

import (
	"encoding/binary"
	"fmt"
	"os"

	"github.com/peter-kozarec/linreg/pkg/datasource"
)

// BinaryPair is the on-disk record, two little-endian float64 values.
type BinaryPair struct {
	X float64
	Y float64
}

type PairReader struct {
	source *Source[BinaryPair]
	idx    int64
}

func NewPairReader(source *Source[BinaryPair]) *PairReader {
	return &PairReader{source: source}
}

func (p *PairReader) GetNext() (datasource.Pair, error) {
	var entry BinaryPair
	if err := p.source.Read(p.idx, &entry); err != nil {
		return datasource.Pair{}, err
	}
	p.idx++
	return datasource.Pair{X: entry.X, Y: entry.Y}, nil
}

func Write(path string, pairs []datasource.Pair) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("unable to create %q: %w", path, err)
	}
	defer func(file *os.File) {
		_ = file.Close()
	}(file)

	for i, p := range pairs {
		if err := binary.Write(file, binary.LittleEndian, BinaryPair{X: p.X, Y: p.Y}); err != nil {
			return fmt.Errorf("unable to write pair %d: %w", i, err)
		}
	}
	return nil
}

// ReadAll opens path, drains it and closes it again.
func ReadAll(path string) (xs, ys []float64, err error) {
	source := NewSource[BinaryPair](path)
	if err := source.Open(); err != nil {
		return nil, nil, err
	}
	defer source.Close()

	return datasource.Collect(NewPairReader(source))
}
