package geometry2D

import (
	"math"

	"github.com/pkg/errors"
	"github.com/pradeep-pyro/triangle"
)

var ErrTooFewPoints = errors.New("too few points to triangulate")

// Triangulator turns a planar point set into vertex index triples.
type Triangulator interface {
	Triangulate(pts []Point) ([][3]int, error)
}

// DelaunayTriangulator uses Shewchuk's Triangle. Duplicate points are merged
// by Triangle, leaving their indices unreferenced.
type DelaunayTriangulator struct{}

func (DelaunayTriangulator) Triangulate(pts []Point) (tris [][3]int, err error) {
	if len(pts) < 3 {
		err = errors.Wrapf(ErrTooFewPoints, "have %d points, need 3", len(pts))
		return
	}
	xy := make([][2]float64, len(pts))
	for i, pt := range pts {
		xy[i] = pt.X
	}
	out := triangle.Delaunay(xy)
	tris = make([][3]int, len(out))
	for k, tri := range out {
		tris[k] = [3]int{int(tri[0]), int(tri[1]), int(tri[2])}
	}
	OrientCCW(pts, tris)
	return
}

// SignedArea is positive for a counter-clockwise triangle.
func SignedArea(a, b, c Point) float64 {
	return 0.5 * ((b.X[0]-a.X[0])*(c.X[1]-a.X[1]) - (c.X[0]-a.X[0])*(b.X[1]-a.X[1]))
}

// OrientCCW reorders clockwise triangles in place and reports how many it flipped.
func OrientCCW(pts []Point, tris [][3]int) (flipped int) {
	for k, tri := range tris {
		if SignedArea(pts[tri[0]], pts[tri[1]], pts[tri[2]]) < 0 {
			tris[k][1], tris[k][2] = tri[2], tri[1]
			flipped++
		}
	}
	return
}

func IsIllegalEdge(prX, prY, piX, piY, pjX, pjY, pkX, pkY float64) bool {
	/*
		pr is a new point for candidate triangle pi-pj-pr
		pi-pj is a shared edge between pi-pj-pk and pi-pj-pr
		if pr lies inside the circle defined by pi-pj-pk the edge pi-pj
		is illegal and should be swapped with pr-pk
	*/
	inCircle := func(ax, ay, bx, by, cx, cy, dx, dy float64) (inside bool) {
		// Handedness, counter-clockwise is positive
		signBit := math.Signbit((bx-ax)*(cy-ay) - (cx-ax)*(by-ay))
		ax_, ay_ := ax-dx, ay-dy
		bx_, by_ := bx-dx, by-dy
		cx_, cy_ := cx-dx, cy-dy
		det := (ax_*ax_+ay_*ay_)*(bx_*cy_-cx_*by_) -
			(bx_*bx_+by_*by_)*(ax_*cy_-cx_*ay_) +
			(cx_*cx_+cy_*cy_)*(ax_*by_-bx_*ay_)
		if signBit {
			return det < 0
		}
		return det > 0
	}
	return inCircle(piX, piY, pjX, pjY, pkX, pkY, prX, prY)
}

// IsDelaunay reports whether no point lies strictly inside the circumcircle of
// any triangle. Points on a circumcircle are accepted.
func IsDelaunay(pts []Point, tris [][3]int) bool {
	for _, tri := range tris {
		pi, pj, pk := pts[tri[0]], pts[tri[1]], pts[tri[2]]
		for r, pr := range pts {
			if r == tri[0] || r == tri[1] || r == tri[2] {
				continue
			}
			if IsIllegalEdge(pr.X[0], pr.X[1], pi.X[0], pi.X[1], pj.X[0], pj.X[1], pk.X[0], pk.X[1]) {
				return false
			}
		}
	}
	return true
}
