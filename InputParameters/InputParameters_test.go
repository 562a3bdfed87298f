package InputParameters

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInputParametersMesh(t *testing.T) {
	{ // Overlay on defaults
		fileInput := []byte(`
Title: Test Case
NumPoints: 250
Seed: 17
CloseBoundary: true
SmoothIterations: 3
`)
		ip := NewInputParametersMesh()
		require.NoError(t, ip.Parse(fileInput))
		assert.Equal(t, "Test Case", ip.Title)
		assert.Equal(t, 250, ip.NumPoints)
		assert.Equal(t, uint64(17), ip.Seed)
		assert.True(t, ip.CloseBoundary)
		assert.Equal(t, 3, ip.SmoothIterations)
		assert.Equal(t, 0.5, ip.Mean)
		assert.InDelta(t, 0.15, ip.SamplerSpread(), 1e-15)
		ip.Print()
	}
	{ // Spread wins over CV
		ip := NewInputParametersMesh()
		require.NoError(t, ip.Parse([]byte("Spread: 0.25\nCV: 0.9\n")))
		assert.Equal(t, 0.25, ip.SamplerSpread())
	}
	{ // Rejected values
		for _, doc := range []string{
			"NumPoints: -1",
			"CV: -0.3",
			"MaxDraws: -5",
			"SmoothIterations: 2\nSmoothLambda: 1.5",
			"NumPoints: [1, 2]",
		} {
			ip := NewInputParametersMesh()
			assert.Error(t, ip.Parse([]byte(doc)), doc)
		}
	}
}
