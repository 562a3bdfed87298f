package InputParameters

import (
	"fmt"
	"math"

	"github.com/ghodss/yaml"
	"github.com/pkg/errors"
)

// Parameters obtained from the YAML input file
type InputParametersMesh struct {
	Title            string  `json:"Title"`
	NumPoints        int     `json:"NumPoints"`
	Mean             float64 `json:"Mean"`
	Spread           float64 `json:"Spread"` // Standard deviation, takes precedence over CV
	CV               float64 `json:"CV"`     // Coefficient of variation, Spread = CV*|Mean|
	Seed             uint64  `json:"Seed"`
	MaxDraws         int     `json:"MaxDraws"` // Zero is unbounded
	CloseBoundary    bool    `json:"CloseBoundary"`
	SmoothIterations int     `json:"SmoothIterations"`
	SmoothLambda     float64 `json:"SmoothLambda"`
	ParallelDegree   int     `json:"ParallelDegree"` // Below one uses all processors
}

func NewInputParametersMesh() *InputParametersMesh {
	return &InputParametersMesh{
		Title:        "Gaussian Disc",
		NumPoints:    1000,
		Mean:         0.5,
		CV:           0.3,
		SmoothLambda: 0.5,
	}
}

// Parse overlays the YAML document on the current values.
func (ip *InputParametersMesh) Parse(data []byte) error {
	if err := yaml.Unmarshal(data, ip); err != nil {
		return errors.Wrap(err, "unable to parse mesh input parameters")
	}
	return ip.Validate()
}

// SamplerSpread resolves the standard deviation of the point distribution.
func (ip *InputParametersMesh) SamplerSpread() float64 {
	if ip.Spread > 0 {
		return ip.Spread
	}
	return ip.CV * math.Abs(ip.Mean)
}

func (ip *InputParametersMesh) Validate() error {
	switch {
	case ip.NumPoints < 0:
		return errors.Errorf("NumPoints must not be negative, have %d", ip.NumPoints)
	case ip.Spread < 0 || ip.CV < 0:
		return errors.Errorf("Spread and CV must not be negative, have %v and %v", ip.Spread, ip.CV)
	case ip.MaxDraws < 0:
		return errors.Errorf("MaxDraws must not be negative, have %d", ip.MaxDraws)
	case ip.SmoothIterations < 0:
		return errors.Errorf("SmoothIterations must not be negative, have %d", ip.SmoothIterations)
	case ip.SmoothIterations > 0 && !(ip.SmoothLambda > 0 && ip.SmoothLambda <= 1):
		return errors.Errorf("SmoothLambda must be in (0,1], have %v", ip.SmoothLambda)
	}
	return nil
}

func (ip *InputParametersMesh) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ip.Title)
	fmt.Printf("[%d]\t\t\t= Number of Points\n", ip.NumPoints)
	fmt.Printf("%8.5f\t\t= Mean\n", ip.Mean)
	fmt.Printf("%8.5f\t\t= Spread\n", ip.SamplerSpread())
	fmt.Printf("[%d]\t\t\t= Seed\n", ip.Seed)
	if ip.MaxDraws > 0 {
		fmt.Printf("[%d]\t\t\t= Max Draws\n", ip.MaxDraws)
	}
	fmt.Printf("[%t]\t\t\t= Close Boundary\n", ip.CloseBoundary)
	if ip.SmoothIterations > 0 {
		fmt.Printf("[%d]\t\t\t= Smoothing Iterations\n", ip.SmoothIterations)
		fmt.Printf("%8.5f\t\t= Smoothing Lambda\n", ip.SmoothLambda)
	}
}
