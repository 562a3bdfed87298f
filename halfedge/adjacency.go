package halfedge

import (
	"github.com/james-bowman/sparse"
	"gonum.org/v1/gonum/spatial/r3"
)

// AdjacencyMatrix returns the symmetric vertex adjacency of the mesh, with a
// 1 at (i,j) for every edge i-j.
func (m *Mesh) AdjacencyMatrix() *sparse.CSR {
	nv := len(m.vertices)
	dok := sparse.NewDOK(nv, nv)
	for _, e := range m.edges {
		var (
			h = e.Halfedge
			a = m.halfedges[h].Origin
			b = m.Dest(h)
		)
		dok.Set(int(a), int(b), 1)
		dok.Set(int(b), int(a), 1)
	}
	return dok.ToCSR()
}

/*
Smooth applies iterations of Laplacian relaxation to the vertex positions:

	p' = p + lambda * (c - p)

where c is the neighborhood center of p taken from the adjacency matrix.
Boundary and isolated vertices keep their position. The mesh itself is not
changed, the relaxed positions are returned indexed by VertexID.
*/
func (m *Mesh) Smooth(iterations int, lambda float64) (pos []r3.Vec) {
	var (
		nv     = len(m.vertices)
		adj    = m.AdjacencyMatrix()
		fixed  = make([]bool, nv)
		degree = make([]float64, nv)
	)
	pos = m.Positions()
	for i := 0; i < nv; i++ {
		v := VertexID(i)
		fixed[i] = m.IsIsolated(v) || m.OnBoundary(v)
	}
	adj.DoNonZero(func(i, j int, val float64) {
		degree[i] += val
	})
	sum := make([]r3.Vec, nv)
	for it := 0; it < iterations; it++ {
		for i := range sum {
			sum[i] = r3.Vec{}
		}
		adj.DoNonZero(func(i, j int, val float64) {
			sum[i] = r3.Add(sum[i], r3.Scale(val, pos[j]))
		})
		for i := 0; i < nv; i++ {
			if fixed[i] || degree[i] == 0 {
				continue
			}
			center := r3.Scale(1/degree[i], sum[i])
			pos[i] = r3.Add(pos[i], r3.Scale(lambda, r3.Sub(center, pos[i])))
		}
	}
	return
}
