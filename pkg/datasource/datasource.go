package datasource

import (
	"errors"
	"fmt"
)

var ErrEof = errors.New("EOF")

type Pair struct {
	X float64
	Y float64
}

type PairSource interface {
	GetNext() (Pair, error)
}

// CollectPairs drains src. ErrEof ends the stream.
func CollectPairs(src PairSource) ([]Pair, error) {
	var pairs []Pair
	for {
		pair, err := src.GetNext()
		if err != nil {
			if errors.Is(err, ErrEof) {
				return pairs, nil
			}
			return nil, fmt.Errorf("error reading pair %d: %w", len(pairs), err)
		}
		pairs = append(pairs, pair)
	}
}

// Collect drains src into two columns.
func Collect(src PairSource) (xs, ys []float64, err error) {
	pairs, err := CollectPairs(src)
	if err != nil {
		return nil, nil, err
	}
	xs = make([]float64, len(pairs))
	ys = make([]float64, len(pairs))
	for i, p := range pairs {
		xs[i], ys[i] = p.X, p.Y
	}
	return xs, ys, nil
}

// Slice serves pairs from memory.
type Slice struct {
	pairs []Pair
	idx   int
}

func NewSlice(xs, ys []float64) (*Slice, error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("column lengths differ: x has %d, y has %d", len(xs), len(ys))
	}
	pairs := make([]Pair, len(xs))
	for i := range xs {
		pairs[i] = Pair{X: xs[i], Y: ys[i]}
	}
	return &Slice{pairs: pairs}, nil
}

func (s *Slice) GetNext() (Pair, error) {
	if s.idx >= len(s.pairs) {
		return Pair{}, ErrEof
	}
	p := s.pairs[s.idx]
	s.idx++
	return p, nil
}
