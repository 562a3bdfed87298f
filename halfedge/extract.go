package halfedge

import (
	"runtime"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/notargets/gomesh/utils"
)

// VertexData is the per-vertex record handed to vertex buffer consumers.
type VertexData struct {
	Position   r3.Vec
	Normal     r3.Vec
	Degree     int
	OnBoundary bool
}

// ExtractVertexData evaluates the vertex queries for every vertex, splitting
// the vertices over parallelDegree goroutines. A parallelDegree below one
// uses GOMAXPROCS.
func ExtractVertexData(m *Mesh, parallelDegree int) (data []VertexData) {
	if parallelDegree < 1 {
		parallelDegree = runtime.GOMAXPROCS(0)
	}
	data = make([]VertexData, m.NumVertices())
	pm := utils.NewPartitionMap(parallelDegree, m.NumVertices())
	// Each goroutine writes a disjoint range of data and only reads the mesh
	pm.ParallelDo(func(_, kMin, kMax int) {
		for k := kMin; k < kMax; k++ {
			v := VertexID(k)
			data[k] = VertexData{
				Position:   m.Position(v),
				Normal:     m.Normal(v),
				Degree:     m.Degree(v),
				OnBoundary: m.OnBoundary(v),
			}
		}
	})
	return
}
