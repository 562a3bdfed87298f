package halfedge

import "gonum.org/v1/gonum/spatial/r3"

// Vertex is one input point. Halfedge is the anchor: one of the halfedges
// leaving the vertex, the first one discovered during the build.
type Vertex struct {
	ID       VertexID
	Position r3.Vec
	Halfedge HalfedgeID // NoHalfedge for a vertex used by no triangle
}

// Edge is an undirected vertex pair, represented by either of its halfedges.
type Edge struct {
	ID       EdgeID
	Halfedge HalfedgeID
}

// Face is a closed loop of halfedges. Boundary faces are synthetic, they are
// only created by a Builder with CloseBoundary set and close a mesh hole.
type Face struct {
	ID       FaceID
	Halfedge HalfedgeID
	Boundary bool
}

type Halfedge struct {
	ID     HalfedgeID
	Twin   HalfedgeID // NoHalfedge on an open boundary
	Next   HalfedgeID // following halfedge around Face
	Origin VertexID
	Edge   EdgeID
	Face   FaceID
}
