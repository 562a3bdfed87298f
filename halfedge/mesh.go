package halfedge

import (
	"gonum.org/v1/gonum/spatial/r3"
)

// Mesh is the built half-edge structure. It is never modified after Build
// returns, so any number of goroutines may query it concurrently.
type Mesh struct {
	vertices  []Vertex
	edges     []Edge
	faces     []Face
	halfedges []Halfedge
	// number of faces created from input triangles, synthetic boundary faces
	// follow them in faces
	genuineFaces int
}

func (m *Mesh) NumVertices() int { return len(m.vertices) }
func (m *Mesh) NumEdges() int { return len(m.edges) }
func (m *Mesh) NumFaces() int { return len(m.faces) }
func (m *Mesh) NumHalfedges() int { return len(m.halfedges) }

// NumGenuineFaces is the number of faces built from input triangles.
func (m *Mesh) NumGenuineFaces() int { return m.genuineFaces }

func (m *Mesh) Vertex(v VertexID) Vertex { return m.vertices[v] }
func (m *Mesh) Edge(e EdgeID) Edge { return m.edges[e] }
func (m *Mesh) Face(f FaceID) Face { return m.faces[f] }
func (m *Mesh) Halfedge(h HalfedgeID) Halfedge { return m.halfedges[h] }

func (m *Mesh) Position(v VertexID) r3.Vec { return m.vertices[v].Position }

// Vertices returns a copy of the vertex records, in input order.
func (m *Mesh) Vertices() (verts []Vertex) {
	verts = make([]Vertex, len(m.vertices))
	copy(verts, m.vertices)
	return
}

// Faces returns a copy of the face records, genuine faces first in input
// triangle order.
func (m *Mesh) Faces() (faces []Face) {
	faces = make([]Face, len(m.faces))
	copy(faces, m.faces)
	return
}

func (m *Mesh) Edges() (edges []Edge) {
	edges = make([]Edge, len(m.edges))
	copy(edges, m.edges)
	return
}

func (m *Mesh) Halfedges() (hes []Halfedge) {
	hes = make([]Halfedge, len(m.halfedges))
	copy(hes, m.halfedges)
	return
}

// Positions returns the vertex positions indexed by VertexID.
func (m *Mesh) Positions() (pos []r3.Vec) {
	pos = make([]r3.Vec, len(m.vertices))
	for i, v := range m.vertices {
		pos[i] = v.Position
	}
	return
}

func (m *Mesh) Twin(h HalfedgeID) HalfedgeID { return m.halfedges[h].Twin }
func (m *Mesh) Next(h HalfedgeID) HalfedgeID { return m.halfedges[h].Next }
func (m *Mesh) Origin(h HalfedgeID) VertexID { return m.halfedges[h].Origin }
func (m *Mesh) EdgeOf(h HalfedgeID) EdgeID { return m.halfedges[h].Edge }
func (m *Mesh) FaceOf(h HalfedgeID) FaceID { return m.halfedges[h].Face }
func (m *Mesh) Dest(h HalfedgeID) VertexID { return m.halfedges[m.halfedges[h].Next].Origin }
func (m *Mesh) IsSynthetic(h HalfedgeID) bool { return m.faces[m.halfedges[h].Face].Boundary }
func (m *Mesh) IsBoundaryFace(f FaceID) bool { return m.faces[f].Boundary }
func (m *Mesh) IsIsolated(v VertexID) bool { return m.vertices[v].Halfedge.IsNull() }
func (m *Mesh) Anchor(v VertexID) HalfedgeID { return m.vertices[v].Halfedge }
func (m *Mesh) FaceAnchor(f FaceID) HalfedgeID { return m.faces[f].Halfedge }

// Prev walks the face loop of h to the halfedge whose next is h.
func (m *Mesh) Prev(h HalfedgeID) (prev HalfedgeID) {
	prev = h
	for i := 0; i < len(m.halfedges); i++ {
		next := m.halfedges[prev].Next
		if next == h {
			return
		}
		prev = next
	}
	panic("face loop does not close")
}

// IsBoundaryHalfedge is true for a genuine halfedge on the mesh boundary:
// it has no twin, or its twin borders a synthetic face.
func (m *Mesh) IsBoundaryHalfedge(h HalfedgeID) bool {
	he := m.halfedges[h]
	if m.faces[he.Face].Boundary {
		return false
	}
	return he.Twin.IsNull() || m.faces[m.halfedges[he.Twin].Face].Boundary
}

// EdgeHalfedges returns the representative halfedge of e and its twin, which
// is NoHalfedge for an open boundary edge.
func (m *Mesh) EdgeHalfedges(e EdgeID) (h0, h1 HalfedgeID) {
	h0 = m.edges[e].Halfedge
	h1 = m.halfedges[h0].Twin
	return
}

func (m *Mesh) IsBoundaryEdge(e EdgeID) bool {
	h0, h1 := m.EdgeHalfedges(e)
	if h1.IsNull() {
		return true
	}
	return m.IsSynthetic(h0) || m.IsSynthetic(h1)
}
