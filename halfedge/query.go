package halfedge

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/notargets/gomesh/utils"
)

/*
fan gathers the halfedges leaving v in rotational order. The forward walk
follows twin->next from the anchor. If it reaches a halfedge without a twin
the fan is open, and the walk continues backwards from the anchor through
prev->twin until the incoming halfedge without a twin, returned as trailing.
A closed fan returns trailing == NoHalfedge.
*/
func (m *Mesh) fan(v VertexID) (out []HalfedgeID, trailing HalfedgeID, open bool) {
	trailing = NoHalfedge
	anchor := m.vertices[v].Halfedge
	if anchor.IsNull() {
		return
	}
	out = append(out, anchor)
	cur := anchor
	for {
		t := m.halfedges[cur].Twin
		if t.IsNull() {
			open = true
			break
		}
		cur = m.halfedges[t].Next
		if cur == anchor {
			break
		}
		if len(out) > len(m.halfedges) {
			panic("vertex fan does not close")
		}
		out = append(out, cur)
	}
	if !open {
		return
	}
	var back []HalfedgeID
	cur = anchor
	for {
		p := m.Prev(cur)
		t := m.halfedges[p].Twin
		if t.IsNull() {
			trailing = p
			break
		}
		cur = t
		back = append(back, cur)
	}
	// back was gathered against the rotation, reverse it in front of out
	ordered := make([]HalfedgeID, 0, len(back)+len(out))
	for i := len(back) - 1; i >= 0; i-- {
		ordered = append(ordered, back[i])
	}
	out = append(ordered, out...)
	return
}

// Degree is the number of edges incident to v. An isolated vertex has
// degree 0.
func (m *Mesh) Degree(v VertexID) (degree int) {
	out, trailing, _ := m.fan(v)
	degree = len(out)
	if !trailing.IsNull() {
		degree++
	}
	return
}

// OnBoundary reports whether v lies on an open edge of the mesh. For a mesh
// built with CloseBoundary that is any vertex touching a synthetic face.
func (m *Mesh) OnBoundary(v VertexID) bool {
	out, _, open := m.fan(v)
	if open {
		return true
	}
	for _, h := range out {
		if m.IsSynthetic(h) {
			return true
		}
	}
	return false
}

// Outgoing returns the halfedges leaving v in rotational order.
func (m *Mesh) Outgoing(v VertexID) (out []HalfedgeID) {
	out, _, _ = m.fan(v)
	return
}

// Neighbors returns the vertices adjacent to v in rotational order.
func (m *Mesh) Neighbors(v VertexID) (nbrs []VertexID) {
	out, trailing, _ := m.fan(v)
	nbrs = make([]VertexID, 0, len(out)+1)
	if !trailing.IsNull() {
		nbrs = append(nbrs, m.halfedges[trailing].Origin)
	}
	for _, h := range out {
		nbrs = append(nbrs, m.Dest(h))
	}
	return
}

// EdgeBetween returns the edge joining a and b, or NoEdge. The anchor fans of
// a and b are searched first; at pinch vertices the edge can lie outside both,
// so the halfedges are scanned as a last resort.
func (m *Mesh) EdgeBetween(a, b VertexID) EdgeID {
	if e := m.edgeInFan(a, b); !e.IsNull() {
		return e
	}
	if e := m.edgeInFan(b, a); !e.IsNull() {
		return e
	}
	for _, he := range m.halfedges {
		if d := m.Dest(he.ID); (he.Origin == a && d == b) || (he.Origin == b && d == a) {
			return he.Edge
		}
	}
	return NoEdge
}

func (m *Mesh) edgeInFan(a, b VertexID) EdgeID {
	out, trailing, _ := m.fan(a)
	if !trailing.IsNull() && m.halfedges[trailing].Origin == b {
		return m.halfedges[trailing].Edge
	}
	for _, h := range out {
		if m.Dest(h) == b {
			return m.halfedges[h].Edge
		}
	}
	return NoEdge
}

// Normal is the area weighted average of the genuine face normals around v,
// normalized. The zero vector is returned where it is undefined.
func (m *Mesh) Normal(v VertexID) (n r3.Vec) {
	for _, h := range m.Outgoing(v) {
		f := m.halfedges[h].Face
		if m.faces[f].Boundary {
			continue
		}
		n = r3.Add(n, m.faceCross(f))
	}
	return unitOrZero(n)
}

// faceCross is the cross product of the first two edge vectors of f in
// winding order, its length is twice the triangle area.
func (m *Mesh) faceCross(f FaceID) r3.Vec {
	var (
		h0 = m.faces[f].Halfedge
		h1 = m.halfedges[h0].Next
		h2 = m.halfedges[h1].Next
	)
	p0 := m.vertices[m.halfedges[h0].Origin].Position
	p1 := m.vertices[m.halfedges[h1].Origin].Position
	p2 := m.vertices[m.halfedges[h2].Origin].Position
	return r3.Cross(r3.Sub(p1, p0), r3.Sub(p2, p0))
}

// FaceNormal is the unit normal of f following its winding.
func (m *Mesh) FaceNormal(f FaceID) r3.Vec {
	return unitOrZero(m.faceCross(f))
}

// FaceArea is the area of a triangular face.
func (m *Mesh) FaceArea(f FaceID) float64 {
	return 0.5 * r3.Norm(m.faceCross(f))
}

func unitOrZero(v r3.Vec) r3.Vec {
	if r3.Norm(v) < utils.NODETOL {
		return r3.Vec{}
	}
	return r3.Unit(v)
}

// FaceDegree is the length of the halfedge loop of f.
func (m *Mesh) FaceDegree(f FaceID) (degree int) {
	h0 := m.faces[f].Halfedge
	h := h0
	for {
		degree++
		h = m.halfedges[h].Next
		if h == h0 {
			return
		}
	}
}

// FaceVertices returns the vertices of f in winding order, starting at the
// origin of the anchor.
func (m *Mesh) FaceVertices(f FaceID) (verts []VertexID) {
	var (
		degree = m.FaceDegree(f)
		h      = m.faces[f].Halfedge
	)
	verts = make([]VertexID, degree)
	for i := 0; i < degree; i++ {
		verts[i] = m.halfedges[h].Origin
		h = m.halfedges[h].Next
	}
	return
}

// Center is the centroid of the vertices of f.
func (m *Mesh) Center(f FaceID) (c r3.Vec) {
	verts := m.FaceVertices(f)
	for _, v := range verts {
		c = r3.Add(c, m.vertices[v].Position)
	}
	return r3.Scale(1/float64(len(verts)), c)
}

// NeighborhoodCenter is the centroid of the vertices adjacent to v. An
// isolated vertex is its own neighborhood center.
func (m *Mesh) NeighborhoodCenter(v VertexID) (c r3.Vec) {
	nbrs := m.Neighbors(v)
	if len(nbrs) == 0 {
		return m.vertices[v].Position
	}
	for _, nb := range nbrs {
		c = r3.Add(c, m.vertices[nb].Position)
	}
	return r3.Scale(1/float64(len(nbrs)), c)
}

// BoundaryLoops returns every hole of the mesh as the genuine boundary
// halfedges along it, in their winding order. A closed surface has none.
func (m *Mesh) BoundaryLoops() (loops [][]HalfedgeID) {
	visited := make(map[HalfedgeID]bool)
	for i := range m.halfedges {
		h := HalfedgeID(i)
		if visited[h] || !m.IsBoundaryHalfedge(h) {
			continue
		}
		var loop []HalfedgeID
		for cur := h; !visited[cur]; cur = m.nextOnBoundary(cur) {
			visited[cur] = true
			loop = append(loop, cur)
		}
		loops = append(loops, loop)
	}
	return
}

// nextOnBoundary rotates around the destination of the boundary halfedge h
// to the boundary halfedge leaving it.
func (m *Mesh) nextOnBoundary(h HalfedgeID) HalfedgeID {
	cur := m.halfedges[h].Next
	for i := 0; i < len(m.halfedges); i++ {
		if m.IsBoundaryHalfedge(cur) {
			return cur
		}
		cur = m.halfedges[m.halfedges[cur].Twin].Next
	}
	panic("boundary loop does not continue")
}
