package halfedge

import (
	"github.com/pkg/errors"
)

// Validate checks the structural invariants of a mesh: required references
// are set and in range, twins are symmetric and share an edge, face loops
// close, anchors originate at their vertex and no directed vertex pair
// appears twice.
func Validate(m *Mesh) error {
	var (
		nv, ne, nf, nh = len(m.vertices), len(m.edges), len(m.faces), len(m.halfedges)
	)
	fail := func(format string, args ...interface{}) error {
		return errors.Wrapf(ErrInvariantViolation, format, args...)
	}
	directed := make(map[directedEdge]HalfedgeID, nh)
	for i, he := range m.halfedges {
		h := HalfedgeID(i)
		switch {
		case he.ID != h:
			return fail("halfedge %d carries id %d", i, he.ID)
		case he.Next.IsNull() || int(he.Next) >= nh:
			return fail("%s: next %s", h, he.Next)
		case he.Origin.IsNull() || int(he.Origin) >= nv:
			return fail("%s: origin %s", h, he.Origin)
		case he.Edge.IsNull() || int(he.Edge) >= ne:
			return fail("%s: edge %s", h, he.Edge)
		case he.Face.IsNull() || int(he.Face) >= nf:
			return fail("%s: face %s", h, he.Face)
		case int(he.Twin) >= nh:
			return fail("%s: twin %s", h, he.Twin)
		}
		if !he.Twin.IsNull() {
			tw := m.halfedges[he.Twin]
			if tw.Twin != h {
				return fail("%s: twin %s does not point back", h, he.Twin)
			}
			if tw.Edge != he.Edge {
				return fail("%s: twin %s is on edge %s, not %s", h, he.Twin, tw.Edge, he.Edge)
			}
		}
		de := newDirectedEdge(he.Origin, m.halfedges[he.Next].Origin)
		if other, exists := directed[de]; exists {
			a, b := de.vertices()
			return fail("%s and %s both run %s->%s", other, h, a, b)
		}
		directed[de] = h
		if !he.Twin.IsNull() && m.halfedges[he.Twin].Origin != m.halfedges[he.Next].Origin {
			return fail("%s: twin %s does not start at the destination", h, he.Twin)
		}
	}
	for i, e := range m.edges {
		switch {
		case e.ID != EdgeID(i):
			return fail("edge %d carries id %d", i, e.ID)
		case e.Halfedge.IsNull() || int(e.Halfedge) >= nh:
			return fail("%s: halfedge %s", e.ID, e.Halfedge)
		case m.halfedges[e.Halfedge].Edge != e.ID:
			return fail("%s: representative %s is on edge %s", e.ID, e.Halfedge, m.halfedges[e.Halfedge].Edge)
		}
	}
	// every halfedge must be on exactly one face loop, the loop of its face
	seen := make([]bool, nh)
	for i, f := range m.faces {
		switch {
		case f.ID != FaceID(i):
			return fail("face %d carries id %d", i, f.ID)
		case f.Halfedge.IsNull() || int(f.Halfedge) >= nh:
			return fail("%s: halfedge %s", f.ID, f.Halfedge)
		}
		var degree int
		h := f.Halfedge
		for {
			if m.halfedges[h].Face != f.ID {
				return fail("%s: loop reaches %s of face %s", f.ID, h, m.halfedges[h].Face)
			}
			if seen[h] {
				return fail("%s: loop revisits %s", f.ID, h)
			}
			seen[h] = true
			degree++
			h = m.halfedges[h].Next
			if h == f.Halfedge {
				break
			}
		}
		if degree < 3 {
			return fail("%s: degree %d", f.ID, degree)
		}
		if f.Boundary != (i >= m.genuineFaces) {
			return fail("%s: boundary flag %v out of place, %d genuine faces", f.ID, f.Boundary, m.genuineFaces)
		}
	}
	for h, ok := range seen {
		if !ok {
			return fail("%s is on no face loop", HalfedgeID(h))
		}
	}
	for i, v := range m.vertices {
		switch {
		case v.ID != VertexID(i):
			return fail("vertex %d carries id %d", i, v.ID)
		case v.Halfedge.IsNull():
			continue
		case int(v.Halfedge) >= nh:
			return fail("%s: anchor %s", v.ID, v.Halfedge)
		case m.halfedges[v.Halfedge].Origin != v.ID:
			return fail("%s: anchor %s starts at %s", v.ID, v.Halfedge, m.halfedges[v.Halfedge].Origin)
		}
	}
	// a vertex without an anchor must not be reachable
	for _, he := range m.halfedges {
		if m.vertices[he.Origin].Halfedge.IsNull() {
			return fail("%s is used by %s but has no anchor", he.Origin, he.ID)
		}
	}
	return nil
}
