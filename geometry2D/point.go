package geometry2D

import "gonum.org/v1/gonum/spatial/r3"

type Point struct {
	X [2]float64
}

func NewPoint(x, y float64) Point {
	return Point{X: [2]float64{x, y}}
}

// Radius is the distance of the point from the origin.
func (pt Point) Radius() float64 {
	return r3.Norm(r3.Vec{X: pt.X[0], Y: pt.X[1]})
}

// Lift places planar points into 3D at height z, ready for the mesh builder.
func Lift(pts []Point, z float64) (pos []r3.Vec) {
	pos = make([]r3.Vec, len(pts))
	for i, pt := range pts {
		pos[i] = r3.Vec{X: pt.X[0], Y: pt.X[1], Z: z}
	}
	return
}
