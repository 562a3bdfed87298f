package geometry2D

import (
	"math"
	"math/rand/v2"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/stat/distuv"
)

var (
	ErrDrawLimit                = errors.New("draw limit exceeded")
	ErrInvalidSamplerParameters = errors.New("invalid sampler parameters")
)

// GaussianDiscSampler draws points inside the closed unit disc by rejection
// from a pair of independent normal distributions, one per axis.
type GaussianDiscSampler struct {
	Mean, Spread float64 // Spread is the standard deviation of each axis
	Seed         uint64
	MaxDraws     int // Zero means unbounded
}

// NewGaussianDiscSamplerCV parameterizes the distribution with a coefficient
// of variation, Spread = cv*|mean|.
func NewGaussianDiscSamplerCV(mean, cv float64, seed uint64) *GaussianDiscSampler {
	return &GaussianDiscSampler{
		Mean:   mean,
		Spread: cv * math.Abs(mean),
		Seed:   seed,
	}
}

func (gs *GaussianDiscSampler) validate(n int) error {
	switch {
	case n < 0:
		return errors.Wrapf(ErrInvalidSamplerParameters, "negative point count %d", n)
	case math.IsNaN(gs.Mean) || math.IsInf(gs.Mean, 0):
		return errors.Wrapf(ErrInvalidSamplerParameters, "mean %v is not finite", gs.Mean)
	case !(gs.Spread > 0) || math.IsInf(gs.Spread, 0):
		return errors.Wrapf(ErrInvalidSamplerParameters, "spread %v must be positive and finite", gs.Spread)
	case gs.MaxDraws < 0:
		return errors.Wrapf(ErrInvalidSamplerParameters, "negative draw limit %d", gs.MaxDraws)
	}
	return nil
}

// Sample returns exactly n points in draw order. The same Seed reproduces the
// same points.
func (gs *GaussianDiscSampler) Sample(n int) (pts []Point, err error) {
	if err = gs.validate(n); err != nil {
		return
	}
	var (
		xDist = distuv.Normal{Mu: gs.Mean, Sigma: gs.Spread, Src: rand.NewPCG(gs.Seed, 1)}
		yDist = distuv.Normal{Mu: gs.Mean, Sigma: gs.Spread, Src: rand.NewPCG(gs.Seed, 2)}
		draws int
	)
	pts = make([]Point, 0, n)
	for len(pts) < n {
		if gs.MaxDraws > 0 && draws >= gs.MaxDraws {
			return pts, errors.Wrapf(ErrDrawLimit,
				"accepted %d of %d points in %d draws", len(pts), n, draws)
		}
		draws++
		pt := NewPoint(xDist.Rand(), yDist.Rand())
		if pt.Radius() <= 1 {
			pts = append(pts, pt)
		}
	}
	return
}
