package synthetic

import (
	"fmt"
	"math"
	"math/rand"
	"strings"

	"github.com/peter-kozarec/linreg/pkg/datasource"
	"github.com/peter-kozarec/linreg/pkg/errs"
	"github.com/peter-kozarec/linreg/pkg/utility"
)

type Noise uint8

const (
	Gaussian Noise = iota
	// Heteroscedastic noise has a standard deviation of sigma·(1+|x|).
	Heteroscedastic
	// HeavyTailed noise is Student t with 3 degrees of freedom, scaled by sigma.
	HeavyTailed
	// Skewed noise is a centred exponential, scaled by sigma.
	Skewed
)

const heavyTailDF = 3

func (n Noise) String() string {
	switch n {
	case Gaussian:
		return "gaussian"
	case Heteroscedastic:
		return "heteroscedastic"
	case HeavyTailed:
		return "heavy-tailed"
	case Skewed:
		return "skewed"
	default:
		return fmt.Sprintf("noise(%d)", uint8(n))
	}
}

func ParseNoise(s string) (Noise, error) {
	switch strings.ToLower(s) {
	case "gaussian", "normal", "":
		return Gaussian, nil
	case "heteroscedastic", "hetero":
		return Heteroscedastic, nil
	case "heavy-tailed", "heavy", "t":
		return HeavyTailed, nil
	case "skewed", "exp":
		return Skewed, nil
	default:
		return 0, fmt.Errorf("%w: unknown noise %q", errs.ErrInvalidArgument, s)
	}
}

// PairGenerator draws y = intercept + slope·x + ε with x uniform on [xMin, xMax).
type PairGenerator struct {
	rng *rand.Rand

	intercept float64
	slope     float64
	sigma     float64
	noise     Noise
	steps     int64
	t         int64

	xMin float64
	xMax float64

	normXDigits int
	normYDigits int
}

func NewPairGenerator(rng *rand.Rand, intercept, slope, sigma float64, noise Noise, steps int64) *PairGenerator {
	return &PairGenerator{
		rng:       rng,
		intercept: intercept,
		slope:     slope,
		sigma:     sigma,
		noise:     noise,
		steps:     steps,

		xMin: 0,
		xMax: 10,

		normXDigits: -1,
		normYDigits: -1,
	}
}

func (g *PairGenerator) SetRange(xMin, xMax float64) {
	g.xMin = xMin
	g.xMax = xMax
}

// SetDigits rounds generated values; a negative count disables rounding.
func (g *PairGenerator) SetDigits(xDigits, yDigits int) {
	g.normXDigits = xDigits
	g.normYDigits = yDigits
}

func (g *PairGenerator) GetNext() (datasource.Pair, error) {
	var pair datasource.Pair

	if g.t >= g.steps {
		return pair, datasource.ErrEof
	}
	g.t++

	pair.X = g.xMin + (g.xMax-g.xMin)*g.rng.Float64()
	pair.Y = g.intercept + g.slope*pair.X + g.sigma*g.draw(pair.X)

	if g.normXDigits >= 0 {
		pair.X = utility.Round(pair.X, g.normXDigits)
	}
	if g.normYDigits >= 0 {
		pair.Y = utility.Round(pair.Y, g.normYDigits)
	}
	return pair, nil
}

// Generate drains the generator.
func (g *PairGenerator) Generate() []datasource.Pair {
	pairs := make([]datasource.Pair, 0, g.steps-g.t)
	for {
		pair, err := g.GetNext()
		if err != nil {
			return pairs
		}
		pairs = append(pairs, pair)
	}
}

func (g *PairGenerator) draw(x float64) float64 {
	switch g.noise {
	case Heteroscedastic:
		return (1 + math.Abs(x)) * g.rng.NormFloat64()
	case HeavyTailed:
		var chi2 float64
		for i := 0; i < heavyTailDF; i++ {
			z := g.rng.NormFloat64()
			chi2 += z * z
		}
		return g.rng.NormFloat64() / math.Sqrt(chi2/heavyTailDF)
	case Skewed:
		return g.rng.ExpFloat64() - 1
	default:
		return g.rng.NormFloat64()
	}
}
