package halfedge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractVertexData(t *testing.T) {
	pos, tris := grid(7, 5)
	m := mustBuild(t, pos, tris, false)
	for _, np := range []int{0, 1, 3, 8, 100} {
		data := ExtractVertexData(m, np)
		require.Len(t, data, m.NumVertices())
		for i, vd := range data {
			v := VertexID(i)
			assert.Equal(t, m.Position(v), vd.Position)
			assert.Equal(t, m.Normal(v), vd.Normal)
			assert.Equal(t, m.Degree(v), vd.Degree)
			assert.Equal(t, m.OnBoundary(v), vd.OnBoundary)
		}
	}
	assert.Empty(t, ExtractVertexData(mustBuild(t, nil, nil, false), 4))
}
