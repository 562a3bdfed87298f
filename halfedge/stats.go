package halfedge

import "fmt"

// Stats summarizes the topology of a mesh.
type Stats struct {
	Vertices            int `json:"vertices"`
	IsolatedVertices    int `json:"isolatedVertices"`
	BoundaryVertices    int `json:"boundaryVertices"`
	Edges               int `json:"edges"`
	BoundaryEdges       int `json:"boundaryEdges"`
	Faces               int `json:"faces"` // genuine faces only
	BoundaryFaces       int `json:"boundaryFaces"`
	Halfedges           int `json:"halfedges"`
	BoundaryLoops       int `json:"boundaryLoops"`
	MaxDegree           int `json:"maxDegree"`
	EulerCharacteristic int `json:"eulerCharacteristic"`
}

func (m *Mesh) Stats() (st Stats) {
	st = Stats{
		Vertices:      len(m.vertices),
		Edges:         len(m.edges),
		Faces:         m.genuineFaces,
		BoundaryFaces: len(m.faces) - m.genuineFaces,
		Halfedges:     len(m.halfedges),
		BoundaryLoops: len(m.BoundaryLoops()),
	}
	for i := range m.vertices {
		v := VertexID(i)
		if m.IsIsolated(v) {
			st.IsolatedVertices++
			continue
		}
		if m.OnBoundary(v) {
			st.BoundaryVertices++
		}
		if d := m.Degree(v); d > st.MaxDegree {
			st.MaxDegree = d
		}
	}
	for i := range m.edges {
		if m.IsBoundaryEdge(EdgeID(i)) {
			st.BoundaryEdges++
		}
	}
	// isolated vertices are not part of the surface
	st.EulerCharacteristic = st.Vertices - st.IsolatedVertices - st.Edges + st.Faces
	return
}

func (st Stats) Print() {
	fmt.Printf("Mesh Statistics:\n")
	fmt.Printf("  Vertices: %d (%d isolated, %d on boundary)\n",
		st.Vertices, st.IsolatedVertices, st.BoundaryVertices)
	fmt.Printf("  Edges: %d (%d on boundary)\n", st.Edges, st.BoundaryEdges)
	fmt.Printf("  Faces: %d (+%d synthetic boundary faces)\n", st.Faces, st.BoundaryFaces)
	fmt.Printf("  Halfedges: %d\n", st.Halfedges)
	fmt.Printf("  Boundary loops: %d\n", st.BoundaryLoops)
	fmt.Printf("  Max vertex degree: %d\n", st.MaxDegree)
	fmt.Printf("  Euler characteristic: %d\n", st.EulerCharacteristic)
}
