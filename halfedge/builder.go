package halfedge

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/spatial/r3"
)

// Builder converts a triangle soup into a Mesh. The zero value is ready to
// use; the working state lives in each Build call.
type Builder struct {
	// CloseBoundary adds a synthetic twin for every boundary halfedge and a
	// Boundary face for every hole, so no halfedge is left without a twin
	CloseBoundary bool
	// Logger receives a debug summary of each build, nil discards it
	Logger *log.Logger
}

// Build constructs a Mesh from positions and triangles using the default
// Builder.
func Build(positions []r3.Vec, triangles [][3]int) (*Mesh, error) {
	var b Builder
	return b.Build(positions, triangles)
}

// construction holds the arenas while a mesh is being assembled
type construction struct {
	m        *Mesh
	directed map[directedEdge]HalfedgeID
}

func (b *Builder) logger() *log.Logger {
	if b.Logger == nil {
		return log.New(io.Discard)
	}
	return b.Logger
}

// Build runs the construction. On error the returned Mesh is nil, no partial
// mesh escapes.
func (b *Builder) Build(positions []r3.Vec, triangles [][3]int) (m *Mesh, err error) {
	if len(positions) > maxHandle {
		return nil, errors.Wrapf(ErrInvalidIndex, "%d positions exceed the handle range", len(positions))
	}
	c := &construction{
		m: &Mesh{
			vertices:  make([]Vertex, len(positions)),
			edges:     make([]Edge, 0, 3*len(triangles)/2+1),
			faces:     make([]Face, 0, len(triangles)),
			halfedges: make([]Halfedge, 0, 3*len(triangles)),
		},
		directed: make(map[directedEdge]HalfedgeID, 3*len(triangles)),
	}
	for i, pos := range positions {
		c.m.vertices[i] = Vertex{
			ID:       VertexID(i),
			Position: pos,
			Halfedge: NoHalfedge,
		}
	}
	for k, tri := range triangles {
		if err = c.checkTriangle(k, tri); err != nil {
			return nil, err
		}
		if err = c.addTriangle(k, tri); err != nil {
			return nil, err
		}
	}
	c.m.genuineFaces = len(c.m.faces)
	var openEdges int
	for _, he := range c.m.halfedges {
		if he.Twin.IsNull() {
			openEdges++
		}
	}
	if b.CloseBoundary {
		c.closeBoundary()
	}
	if err = Validate(c.m); err != nil {
		return nil, err
	}
	b.logger().Debug("half-edge mesh built",
		"vertices", len(c.m.vertices), "faces", c.m.genuineFaces,
		"edges", len(c.m.edges), "halfedges", len(c.m.halfedges),
		"boundaryEdges", openEdges, "boundaryFaces", len(c.m.faces)-c.m.genuineFaces)
	return c.m, nil
}

func (c *construction) checkTriangle(k int, tri [3]int) error {
	for _, v := range tri {
		if v < 0 || v >= len(c.m.vertices) {
			return newBuildError(InvalidIndex, k, tri,
				"vertex %d outside [0,%d)", v, len(c.m.vertices))
		}
	}
	if tri[0] == tri[1] || tri[1] == tri[2] || tri[2] == tri[0] {
		return newBuildError(DegenerateTriangle, k, tri, "repeated vertex index")
	}
	return nil
}

func (c *construction) addTriangle(k int, tri [3]int) error {
	var (
		m     = c.m
		face  = FaceID(len(m.faces))
		first = HalfedgeID(len(m.halfedges))
	)
	// Check all three directed pairs before allocating anything, so a rejected
	// triangle leaves no half-linked records behind
	for i := 0; i < 3; i++ {
		a, b := VertexID(tri[i]), VertexID(tri[(i+1)%3])
		de := newDirectedEdge(a, b)
		if owner, exists := c.directed[de]; exists {
			return newBuildError(NonManifoldEdge, k, tri,
				"directed edge %d->%d already belongs to face %d", a, b, m.halfedges[owner].Face)
		}
		if rev, exists := c.directed[de.reversed()]; exists && !m.halfedges[rev].Twin.IsNull() {
			return newBuildError(NonManifoldEdge, k, tri,
				"edge %d-%d already shared by two faces", a, b)
		}
	}
	m.faces = append(m.faces, Face{ID: face, Halfedge: first})
	for i := 0; i < 3; i++ {
		var (
			a, b = VertexID(tri[i]), VertexID(tri[(i+1)%3])
			h    = HalfedgeID(len(m.halfedges))
			de   = newDirectedEdge(a, b)
		)
		he := Halfedge{
			ID:     h,
			Twin:   NoHalfedge,
			Next:   first + HalfedgeID((i+1)%3),
			Origin: a,
			Face:   face,
		}
		if m.vertices[a].Halfedge.IsNull() {
			m.vertices[a].Halfedge = h
		}
		if rev, exists := c.directed[de.reversed()]; exists {
			he.Twin = rev
			he.Edge = m.halfedges[rev].Edge
			m.halfedges[rev].Twin = h
		} else {
			he.Edge = EdgeID(len(m.edges))
			m.edges = append(m.edges, Edge{ID: he.Edge, Halfedge: h})
		}
		m.halfedges = append(m.halfedges, he)
		c.directed[de] = h
	}
	return nil
}

/*
closeBoundary gives every open halfedge h (a->b) a synthetic twin s (b->a) on
the same edge. The synthetic loop runs opposite to the genuine boundary: the
successor of s is the synthetic twin of the open halfedge g arriving at a.
g is found by rotating around a from h through prev/twin until a halfedge with
no twin is reached, which stays inside the fan of h at a non-manifold vertex.
*/
func (c *construction) closeBoundary() {
	var (
		m    = c.m
		open []HalfedgeID
	)
	for h := range m.halfedges {
		if m.halfedges[h].Twin.IsNull() {
			open = append(open, HalfedgeID(h))
		}
	}
	if len(open) == 0 {
		return
	}
	arriving := make(map[HalfedgeID]HalfedgeID, len(open))
	for _, h := range open {
		cur := h
		for {
			p := m.Prev(cur)
			t := m.halfedges[p].Twin
			if t.IsNull() {
				arriving[h] = p
				break
			}
			cur = t
		}
	}
	synthetic := make(map[HalfedgeID]HalfedgeID, len(open))
	for _, h := range open {
		s := HalfedgeID(len(m.halfedges))
		m.halfedges = append(m.halfedges, Halfedge{
			ID:     s,
			Twin:   h,
			Next:   NoHalfedge,
			Origin: m.Dest(h),
			Edge:   m.halfedges[h].Edge,
			Face:   NoFace,
		})
		synthetic[h] = s
	}
	for _, h := range open {
		m.halfedges[synthetic[h]].Next = synthetic[arriving[h]]
		m.halfedges[h].Twin = synthetic[h]
	}
	for _, h := range open {
		s := synthetic[h]
		if !m.halfedges[s].Face.IsNull() {
			continue
		}
		face := FaceID(len(m.faces))
		m.faces = append(m.faces, Face{ID: face, Halfedge: s, Boundary: true})
		for cur := s; m.halfedges[cur].Face.IsNull(); cur = m.halfedges[cur].Next {
			m.halfedges[cur].Face = face
		}
	}
}
