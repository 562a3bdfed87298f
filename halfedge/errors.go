package halfedge

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrInvalidIndex       = errors.New("invalid vertex index")
	ErrDegenerateTriangle = errors.New("degenerate triangle")
	ErrNonManifoldEdge    = errors.New("non-manifold edge")
	ErrInvariantViolation = errors.New("half-edge invariant violated")
)

type ErrorKind uint8

const (
	InvalidIndex ErrorKind = iota
	DegenerateTriangle
	NonManifoldEdge
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidIndex:
		return "InvalidIndex"
	case DegenerateTriangle:
		return "DegenerateTriangle"
	case NonManifoldEdge:
		return "NonManifoldEdge"
	default:
		panic("unknown option")
	}
}

func (k ErrorKind) sentinel() error {
	switch k {
	case InvalidIndex:
		return ErrInvalidIndex
	case DegenerateTriangle:
		return ErrDegenerateTriangle
	default:
		return ErrNonManifoldEdge
	}
}

// BuildError reports the input triangle that aborted a build. It unwraps to
// one of ErrInvalidIndex, ErrDegenerateTriangle or ErrNonManifoldEdge.
type BuildError struct {
	Kind     ErrorKind
	Triangle int    // position in the input triangle list
	Vertices [3]int // the triangle as given
	err      error
}

func newBuildError(kind ErrorKind, triangle int, verts [3]int, format string, args ...interface{}) *BuildError {
	return &BuildError{
		Kind:     kind,
		Triangle: triangle,
		Vertices: verts,
		err:      errors.Wrapf(kind.sentinel(), format, args...),
	}
}

func (be *BuildError) Error() string {
	return fmt.Sprintf("triangle %d %v: %s", be.Triangle, be.Vertices, be.err.Error())
}

func (be *BuildError) Unwrap() error { return be.err }
