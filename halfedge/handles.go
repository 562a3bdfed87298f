package halfedge

import (
	"fmt"
	"math"
)

/*
Every record is addressed by an index into the owning collection of the Mesh.
The handle types are distinct so a face index can't be used where a halfedge
is expected. The value -1 is the unset relationship.
*/
type (
	VertexID   int32
	EdgeID     int32
	FaceID     int32
	HalfedgeID int32
)

const (
	NoVertex   VertexID   = -1
	NoEdge     EdgeID     = -1
	NoFace     FaceID     = -1
	NoHalfedge HalfedgeID = -1
)

// maxHandle is the largest index representable by a handle
const maxHandle = math.MaxInt32

func (id VertexID) IsNull() bool { return id < 0 }
func (id EdgeID) IsNull() bool { return id < 0 }
func (id FaceID) IsNull() bool { return id < 0 }
func (id HalfedgeID) IsNull() bool { return id < 0 }

func (id VertexID) String() string { return handleString("v", int32(id)) }
func (id EdgeID) String() string { return handleString("e", int32(id)) }
func (id FaceID) String() string { return handleString("f", int32(id)) }
func (id HalfedgeID) String() string { return handleString("h", int32(id)) }

func handleString(prefix string, id int32) string {
	if id < 0 {
		return prefix + "<nil>"
	}
	return fmt.Sprintf("%s%d", prefix, id)
}

// directedEdge packs an ordered vertex pair into a single map key, origin in
// the high 32 bits. Unlike an undirected edge key the pair is not sorted, so
// (a,b) and (b,a) are different keys.
type directedEdge uint64

func newDirectedEdge(origin, dest VertexID) directedEdge {
	return directedEdge(uint64(uint32(origin))<<32 | uint64(uint32(dest)))
}

func (de directedEdge) reversed() directedEdge {
	return de>>32 | de<<32
}

func (de directedEdge) vertices() (origin, dest VertexID) {
	origin = VertexID(uint32(de >> 32))
	dest = VertexID(uint32(de))
	return
}
