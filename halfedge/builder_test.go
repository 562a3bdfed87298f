package halfedge

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestBuild_SingleTriangle(t *testing.T) {
	pos, tris := singleTriangle()
	m := mustBuild(t, pos, tris, false)

	assert.Equal(t, 3, m.NumVertices())
	assert.Equal(t, 3, m.NumEdges())
	assert.Equal(t, 1, m.NumFaces())
	assert.Equal(t, 3, m.NumHalfedges())
	for _, he := range m.Halfedges() {
		assert.True(t, he.Twin.IsNull(), "halfedge %s should be open", he.ID)
		assert.Equal(t, FaceID(0), he.Face)
	}
	for v := VertexID(0); v < 3; v++ {
		assert.Equal(t, 2, m.Degree(v))
		assert.True(t, m.OnBoundary(v))
	}
	// loop follows the input winding, anchored at the first halfedge
	assert.Equal(t, HalfedgeID(0), m.FaceAnchor(0))
	assert.Equal(t, []VertexID{0, 1, 2}, m.FaceVertices(0))
	assert.False(t, m.Face(0).Boundary)
}

func TestBuild_SharedEdge(t *testing.T) {
	pos, tris := twoTriangles()
	m := mustBuild(t, pos, tris, false)

	assert.Equal(t, 4, m.NumVertices())
	assert.Equal(t, 5, m.NumEdges())
	assert.Equal(t, 2, m.NumFaces())
	assert.Equal(t, 6, m.NumHalfedges())

	var shared []EdgeID
	for _, e := range m.Edges() {
		h0, h1 := m.EdgeHalfedges(e.ID)
		if h1.IsNull() {
			assert.True(t, m.IsBoundaryEdge(e.ID))
			continue
		}
		shared = append(shared, e.ID)
		assert.Equal(t, h0, m.Twin(h1))
		assert.Equal(t, h1, m.Twin(h0))
		ends := []VertexID{m.Origin(h0), m.Dest(h0)}
		assert.ElementsMatch(t, []VertexID{1, 2}, ends)
	}
	require.Len(t, shared, 1)
	assert.Equal(t, []int{2, 3, 3, 2},
		[]int{m.Degree(0), m.Degree(1), m.Degree(2), m.Degree(3)})
}

func TestBuild_Errors(t *testing.T) {
	fourPoints := []r3.Vec{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {1, 1, 0}}
	fivePoints := append(fourPoints, r3.Vec{X: 2})
	tests := []struct {
		name     string
		pos      []r3.Vec
		tris     [][3]int
		sentinel error
		kind     ErrorKind
		triangle int
	}{
		{"repeated index", fourPoints, [][3]int{{0, 0, 1}}, ErrDegenerateTriangle, DegenerateTriangle, 0},
		{"repeated first and last", fourPoints, [][3]int{{0, 1, 2}, {3, 1, 3}}, ErrDegenerateTriangle, DegenerateTriangle, 1},
		{"index past the end", fourPoints, [][3]int{{0, 1, 2}, {1, 5, 2}}, ErrInvalidIndex, InvalidIndex, 1},
		{"negative index", fourPoints, [][3]int{{-1, 1, 2}}, ErrInvalidIndex, InvalidIndex, 0},
		{"index checked before degeneracy", fourPoints, [][3]int{{5, 5, 1}}, ErrInvalidIndex, InvalidIndex, 0},
		{"three faces on one directed edge", fivePoints,
			[][3]int{{0, 1, 2}, {0, 1, 3}, {0, 1, 4}}, ErrNonManifoldEdge, NonManifoldEdge, 1},
		{"third face on a paired edge", fivePoints,
			[][3]int{{0, 1, 2}, {1, 0, 3}, {1, 0, 4}}, ErrNonManifoldEdge, NonManifoldEdge, 2},
		{"duplicate triangle", fourPoints,
			[][3]int{{0, 1, 2}, {1, 2, 0}}, ErrNonManifoldEdge, NonManifoldEdge, 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m, err := Build(tc.pos, tc.tris)
			assert.Nil(t, m, "failed build must not return a mesh")
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.sentinel)
			var be *BuildError
			require.True(t, errors.As(err, &be))
			assert.Equal(t, tc.kind, be.Kind)
			assert.Equal(t, tc.triangle, be.Triangle)
			assert.Equal(t, tc.tris[tc.triangle], be.Vertices)
		})
	}
}

func TestBuild_TolerantInputs(t *testing.T) {
	{ // Coincident points are distinct vertices, topology follows the indices
		pos := []r3.Vec{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {0, 0, 0}}
		m := mustBuild(t, pos, [][3]int{{0, 1, 2}, {1, 3, 2}}, false)
		assert.Equal(t, 5, m.NumEdges())
		assert.Equal(t, 3, m.Degree(1))
	}
	{ // A vertex used by no triangle stays isolated
		pos := []r3.Vec{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {5, 5, 5}}
		m := mustBuild(t, pos, [][3]int{{0, 1, 2}}, false)
		assert.True(t, m.IsIsolated(3))
		assert.Equal(t, 0, m.Degree(3))
		assert.False(t, m.OnBoundary(3))
		assert.Equal(t, r3.Vec{}, m.Normal(3))
		assert.Equal(t, r3.Vec{X: 5, Y: 5, Z: 5}, m.NeighborhoodCenter(3))
		assert.Empty(t, m.Neighbors(3))
		assert.Equal(t, 1, m.Stats().IsolatedVertices)
	}
	{ // Nothing in, empty mesh out
		m := mustBuild(t, nil, nil, false)
		assert.Equal(t, 0, m.NumVertices())
		assert.Empty(t, m.BoundaryLoops())
	}
}

func TestBuild_Invariants(t *testing.T) {
	fixtures := map[string]func() ([]r3.Vec, [][3]int){
		"single":      singleTriangle,
		"shared":      twoTriangles,
		"tetrahedron": tetrahedron,
		"hexagon":     hexagonFan,
		"bowtie":      bowtie,
		"grid":        func() ([]r3.Vec, [][3]int) { return grid(5, 4) },
	}
	for name, fixture := range fixtures {
		pos, tris := fixture()
		for _, closeBoundary := range []bool{false, true} {
			m := mustBuild(t, pos, tris, closeBoundary)
			require.NoError(t, Validate(m), name)

			// Twin symmetry
			for _, he := range m.Halfedges() {
				if he.Twin.IsNull() {
					assert.False(t, closeBoundary, "%s: closed mesh has open %s", name, he.ID)
					continue
				}
				assert.Equal(t, he.ID, m.Twin(he.Twin), name)
			}
			// Loop closure, exactly FaceDegree steps
			for _, f := range m.Faces() {
				degree := m.FaceDegree(f.ID)
				assert.GreaterOrEqual(t, degree, 3, name)
				h := f.Halfedge
				for i := 0; i < degree; i++ {
					assert.Equal(t, f.ID, m.FaceOf(h))
					h = m.Next(h)
				}
				assert.Equal(t, f.Halfedge, h, name)
			}
			// Anchor validity
			for _, v := range m.Vertices() {
				if !v.Halfedge.IsNull() {
					assert.Equal(t, v.ID, m.Origin(v.Halfedge), name)
				}
			}
			// Every edge's halfedges reference the edge
			for _, e := range m.Edges() {
				h0, h1 := m.EdgeHalfedges(e.ID)
				assert.Equal(t, e.ID, m.EdgeOf(h0), name)
				if !h1.IsNull() {
					assert.Equal(t, e.ID, m.EdgeOf(h1), name)
				}
			}
		}

		// Edge cardinality and boundary consistency against the input soup
		m := mustBuild(t, pos, tris, false)
		inputDirected := make(map[[2]VertexID]bool)
		undirected := make(map[[2]VertexID]int)
		for _, tri := range tris {
			for i := 0; i < 3; i++ {
				a, b := VertexID(tri[i]), VertexID(tri[(i+1)%3])
				inputDirected[[2]VertexID{a, b}] = true
				if a > b {
					a, b = b, a
				}
				undirected[[2]VertexID{a, b}]++
			}
		}
		for pair, count := range undirected {
			assert.True(t, count == 1 || count == 2, "%s: pair %v has %d halfedges", name, pair, count)
		}
		assert.Equal(t, len(undirected), m.NumEdges(), name)
		for _, he := range m.Halfedges() {
			reverse := [2]VertexID{m.Dest(he.ID), he.Origin}
			assert.Equal(t, !inputDirected[reverse], he.Twin.IsNull(), "%s: %s", name, he.ID)
		}
	}
}

func TestBuild_CloseBoundary(t *testing.T) {
	{ // Single triangle gets one synthetic face running the other way
		pos, tris := singleTriangle()
		m := mustBuild(t, pos, tris, true)
		assert.Equal(t, 2, m.NumFaces())
		assert.Equal(t, 1, m.NumGenuineFaces())
		assert.Equal(t, 6, m.NumHalfedges())
		assert.Equal(t, 3, m.NumEdges())
		assert.True(t, m.Face(1).Boundary)
		assert.Equal(t, 3, m.FaceDegree(1))
		for v := VertexID(0); v < 3; v++ {
			assert.Equal(t, 2, m.Degree(v))
			assert.True(t, m.OnBoundary(v))
		}
		verts := m.FaceVertices(1)
		assert.ElementsMatch(t, []VertexID{0, 1, 2}, verts)
		assert.Equal(t, r3.Vec{Z: -1}, m.FaceNormal(1))
	}
	{ // Bowtie: the shared vertex splits into two boundary loops
		pos, tris := bowtie()
		m := mustBuild(t, pos, tris, true)
		assert.Equal(t, 4, m.NumFaces())
		for f := FaceID(2); f < 4; f++ {
			assert.True(t, m.IsBoundaryFace(f))
			assert.Equal(t, 3, m.FaceDegree(f))
		}
	}
	{ // Closed surfaces are left alone
		pos, tris := tetrahedron()
		m := mustBuild(t, pos, tris, true)
		assert.Equal(t, 4, m.NumFaces())
		assert.Equal(t, 12, m.NumHalfedges())
	}
	{ // Open and closed builds answer the vertex queries the same way
		pos, tris := grid(4, 3)
		open := mustBuild(t, pos, tris, false)
		closed := mustBuild(t, pos, tris, true)
		assert.Equal(t, open.NumGenuineFaces()+1, closed.NumFaces())
		for v := VertexID(0); int(v) < open.NumVertices(); v++ {
			assert.Equal(t, open.Degree(v), closed.Degree(v), "degree of %s", v)
			assert.Equal(t, open.OnBoundary(v), closed.OnBoundary(v), "boundary of %s", v)
			assert.ElementsMatch(t, open.Neighbors(v), closed.Neighbors(v))
			nearVec(t, open.Normal(v), closed.Normal(v), 1e-12)
		}
		assert.Equal(t, open.Stats().BoundaryEdges, closed.Stats().BoundaryEdges)
	}
}

func TestValidate_DetectsCorruption(t *testing.T) {
	pos, tris := twoTriangles()
	corrupt := []struct {
		name   string
		mutate func(m *Mesh)
	}{
		{"asymmetric twin", func(m *Mesh) { m.halfedges[0].Twin = 5 }},
		{"open loop", func(m *Mesh) { m.halfedges[2].Next = 3 }},
		{"anchor elsewhere", func(m *Mesh) { m.vertices[0].Halfedge = 1 }},
		{"null edge", func(m *Mesh) { m.halfedges[4].Edge = NoEdge }},
		{"edge representative", func(m *Mesh) { m.edges[0].Halfedge = 4 }},
		{"duplicate directed pair", func(m *Mesh) { m.halfedges[3].Origin = 0; m.halfedges[4].Origin = 1 }},
	}
	for _, tc := range corrupt {
		m := mustBuild(t, pos, tris, false)
		tc.mutate(m)
		err := Validate(m)
		assert.ErrorIs(t, err, ErrInvariantViolation, tc.name)
	}
}

func TestDirectedEdge(t *testing.T) {
	de := newDirectedEdge(7, 1<<30)
	a, b := de.vertices()
	assert.Equal(t, VertexID(7), a)
	assert.Equal(t, VertexID(1<<30), b)
	a, b = de.reversed().vertices()
	assert.Equal(t, VertexID(1<<30), a)
	assert.Equal(t, VertexID(7), b)
	assert.NotEqual(t, de, de.reversed())
	assert.Equal(t, de, de.reversed().reversed())
}
