package halfedge

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

func singleTriangle() ([]r3.Vec, [][3]int) {
	return []r3.Vec{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}},
		[][3]int{{0, 1, 2}}
}

func twoTriangles() ([]r3.Vec, [][3]int) {
	return []r3.Vec{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {1, 1, 0}},
		[][3]int{{0, 1, 2}, {1, 3, 2}}
}

// tetrahedron is closed, every face wound outward
func tetrahedron() ([]r3.Vec, [][3]int) {
	return []r3.Vec{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {0, 0, 1}},
		[][3]int{
			{0, 2, 1},
			{0, 1, 3},
			{0, 3, 2},
			{1, 2, 3},
		}
}

// hexagonFan is six triangles around vertex 0 at the origin
func hexagonFan() ([]r3.Vec, [][3]int) {
	pos := []r3.Vec{{0, 0, 0}}
	var tris [][3]int
	for i := 0; i < 6; i++ {
		theta := float64(i) * math.Pi / 3
		pos = append(pos, r3.Vec{X: math.Cos(theta), Y: math.Sin(theta)})
		tris = append(tris, [3]int{0, i + 1, (i+1)%6 + 1})
	}
	return pos, tris
}

// bowtie shares vertex 0 between two otherwise disjoint triangles
func bowtie() ([]r3.Vec, [][3]int) {
	return []r3.Vec{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {-1, 0, 0}, {-1, -1, 0}},
		[][3]int{{0, 1, 2}, {0, 3, 4}}
}

// grid is nx by ny unit squares, each split along the b-c diagonal into two
// counter clockwise triangles
func grid(nx, ny int) (pos []r3.Vec, tris [][3]int) {
	idx := func(i, j int) int { return j*(nx+1) + i }
	for j := 0; j <= ny; j++ {
		for i := 0; i <= nx; i++ {
			pos = append(pos, r3.Vec{X: float64(i), Y: float64(j)})
		}
	}
	for j := 0; j < ny; j++ {
		for i := 0; i < nx; i++ {
			a, b := idx(i, j), idx(i+1, j)
			c, d := idx(i, j+1), idx(i+1, j+1)
			tris = append(tris, [3]int{a, b, c}, [3]int{b, d, c})
		}
	}
	return
}

func mustBuild(t *testing.T, pos []r3.Vec, tris [][3]int, closeBoundary bool) *Mesh {
	t.Helper()
	b := Builder{CloseBoundary: closeBoundary}
	m, err := b.Build(pos, tris)
	require.NoError(t, err)
	require.NotNil(t, m)
	return m
}

func nearVec(t *testing.T, expected, actual r3.Vec, tol float64) {
	t.Helper()
	d := r3.Norm(r3.Sub(expected, actual))
	if d > tol {
		t.Errorf("expected %v, got %v (distance %g)", expected, actual, d)
	}
}
