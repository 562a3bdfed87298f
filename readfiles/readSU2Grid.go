package readfiles

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/spatial/r3"
)

// From here: https://su2code.github.io/docs_v7/Mesh-File/
type SU2ElementType uint8

const (
	ELType_LINE          SU2ElementType = 3
	ELType_Triangle      SU2ElementType = 5
	ELType_Quadrilateral SU2ElementType = 9
	ELType_Tetrahedral   SU2ElementType = 10
)

func ReadSU2File(filename string) (*Grid, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to open SU2 file %s", filename)
	}
	defer file.Close()
	g, err := ReadSU2(file)
	return g, errors.Wrapf(err, "reading SU2 file %s", filename)
}

// ReadSU2 reads a triangulated SU2 grid in 2 or 3 space dimensions.
func ReadSU2(r io.Reader) (g *Grid, err error) {
	var (
		lr           = newLineReader(r)
		dim, nElem   int
		tris         [][3]int
		nPoin, nMark int
	)
	if dim, err = lr.readNumber("NDIME"); err != nil {
		return
	}
	if dim != 2 && dim != 3 {
		return nil, lr.errorf("space dimension %d is not 2 or 3", dim)
	}
	if nElem, err = lr.readCount("NELEM"); err != nil {
		return
	}
	if tris, err = lr.readElements(nElem); err != nil {
		return
	}
	if nPoin, err = lr.readCount("NPOIN"); err != nil {
		return
	}
	g = newGrid()
	g.Triangles = tris
	if g.Positions, err = lr.readVertices(dim, nPoin); err != nil {
		return nil, err
	}
	for _, tri := range g.Triangles {
		for _, v := range tri {
			if err = g.checkVertex(v); err != nil {
				return nil, err
			}
		}
	}
	if nMark, err = lr.readCount("NMARK"); err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) {
			// markers are optional
			return g, nil
		}
		return nil, err
	}
	if err = lr.readMarkers(nMark, g); err != nil {
		return nil, err
	}
	return
}

func (lr *lineReader) readElements(nElem int) (tris [][3]int, err error) {
	var (
		n, nType   int
		v1, v2, v3 int
	)
	tris = make([][3]int, 0, capHint(nElem))
	for k := 0; k < nElem; k++ {
		var line string
		if line, err = lr.getLine(); err != nil {
			return
		}
		if n, err = fmt.Sscanf(line, "%d %d %d %d", &nType, &v1, &v2, &v3); err != nil || n != 4 {
			return nil, lr.errorf("unable to read element from [%s]", line)
		}
		if SU2ElementType(nType) != ELType_Triangle {
			return nil, lr.errorf("element type %d is not a triangle", nType)
		}
		tris = append(tris, [3]int{v1, v2, v3})
	}
	return
}

func (lr *lineReader) readVertices(dim, nPoin int) (pos []r3.Vec, err error) {
	var (
		n       int
		x, y, z float64
	)
	pos = make([]r3.Vec, 0, capHint(nPoin))
	for i := 0; i < nPoin; i++ {
		var line string
		if line, err = lr.getLine(); err != nil {
			return nil, err
		}
		if dim == 2 {
			n, err = fmt.Sscanf(line, "%f %f", &x, &y)
		} else {
			n, err = fmt.Sscanf(line, "%f %f %f", &x, &y, &z)
		}
		if err != nil || n != dim {
			return nil, lr.errorf("unable to read coordinates from [%s]", line)
		}
		pos = append(pos, r3.Vec{X: x, Y: y, Z: z})
	}
	return
}

// readMarkers appends repeated tags to a common slice, periodic pairs arrive
// that way.
func (lr *lineReader) readMarkers(nMark int, g *Grid) (err error) {
	var (
		n, nType, v1, v2, nEdges int
		label                    string
	)
	for m := 0; m < nMark; m++ {
		if label, err = lr.readLabel("MARKER_TAG"); err != nil {
			return
		}
		if nEdges, err = lr.readCount("MARKER_ELEMS"); err != nil {
			return
		}
		for i := 0; i < nEdges; i++ {
			var line string
			if line, err = lr.getLine(); err != nil {
				return
			}
			if n, err = fmt.Sscanf(line, "%d %d %d", &nType, &v1, &v2); err != nil || n != 3 {
				return lr.errorf("unable to read marker edge from [%s]", line)
			}
			if SU2ElementType(nType) != ELType_LINE {
				return lr.errorf("marker %s holds element type %d, want line elements", label, nType)
			}
			if err = g.checkVertex(v1); err != nil {
				return
			}
			if err = g.checkVertex(v2); err != nil {
				return
			}
			g.Markers[label] = append(g.Markers[label], [2]int{v1, v2})
		}
	}
	return
}

// getToken returns what follows "KEY=" on the next line that is not a comment.
func (lr *lineReader) getToken(key string) (token string, err error) {
	var line string
	for {
		if line, err = lr.getLine(); err != nil {
			return
		}
		line = strings.TrimSpace(line)
		if len(line) != 0 && !strings.HasPrefix(line, "%") {
			break
		}
	}
	ind := strings.Index(line, "=")
	if ind < 0 {
		return "", lr.errorf("badly formed input line [%s], should have an =", line)
	}
	if got := strings.TrimSpace(line[:ind]); got != key {
		return "", lr.errorf("found %s, want %s", got, key)
	}
	token = strings.TrimSpace(line[ind+1:])
	return
}

func (lr *lineReader) readLabel(key string) (label string, err error) {
	if label, err = lr.getToken(key); err != nil {
		return
	}
	if len(label) == 0 {
		return "", lr.errorf("empty %s", key)
	}
	return
}

func (lr *lineReader) readNumber(key string) (num int, err error) {
	var token string
	if token, err = lr.getToken(key); err != nil {
		return
	}
	if _, err = fmt.Sscanf(token, "%d", &num); err != nil {
		return 0, lr.errorf("unable to read number from token: [%s]", token)
	}
	return
}

func (lr *lineReader) readCount(key string) (num int, err error) {
	if num, err = lr.readNumber(key); err != nil {
		return
	}
	if err = lr.checkCount(key, num); err != nil {
		return 0, err
	}
	return
}
