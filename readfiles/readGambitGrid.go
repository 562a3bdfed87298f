package readfiles

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/spatial/r3"
)

func ReadGambitFile(filename string) (*Grid, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to open Gambit neutral file %s", filename)
	}
	defer file.Close()
	g, err := ReadGambit2D(file)
	return g, errors.Wrapf(err, "reading Gambit neutral file %s", filename)
}

// ReadGambit2D reads a triangular Gambit neutral file. Boundary condition
// sets become Markers, keyed by their lower case name.
func ReadGambit2D(r io.Reader) (g *Grid, err error) {
	var (
		lr                      = newLineReader(r)
		nv, k, nMats, nBCs, nsd int
	)
	// Skip first six lines
	if err = lr.skipLines(6); err != nil {
		return
	}
	if nv, k, nMats, nBCs, nsd, err = lr.readHeader(); err != nil {
		return
	}
	if nsd != 2 {
		return nil, lr.errorf("%d space dimensions, only 2D triangle grids are supported", nsd)
	}
	g = newGrid()
	if err = lr.skipLines(2); err != nil {
		return nil, err
	}
	if g.Positions, err = lr.read2DVertices(nv); err != nil {
		return nil, err
	}
	if err = lr.skipLines(2); err != nil {
		return nil, err
	}
	if err = lr.readTris(g, k); err != nil {
		return nil, err
	}
	if err = lr.skipLines(2); err != nil {
		return nil, err
	}
	for i := 0; i < nMats; i++ {
		if err = lr.skipMaterialGroup(); err != nil {
			return nil, err
		}
		if err = lr.skipLines(2); err != nil {
			return nil, err
		}
	}
	if err = lr.readBCs(nBCs, g); err != nil {
		return nil, err
	}
	return
}

func (lr *lineReader) readHeader() (nv, k, nMats, nBCs, nsd int, err error) {
	/*
		nv      // num nodes in mesh
		k       // num elements
		nMats   // num material groups
		nBCs    // num boundary groups
		nsd     // num space dimensions
	*/
	var (
		line   string
		n, dum int
	)
	if line, err = lr.getLine(); err != nil {
		return
	}
	if n, err = fmt.Sscanf(line, "%d %d %d %d %d %d", &nv, &k, &nMats, &nBCs, &nsd, &dum); err != nil || n < 6 {
		err = lr.errorf("read %d of 6 dimensions, line: %s", n, line)
		return
	}
	switch {
	case nv < 0:
		err = lr.checkCount("node", nv)
	case k < 0:
		err = lr.checkCount("element", k)
	case nMats < 0:
		err = lr.checkCount("material group", nMats)
	case nBCs < 0:
		err = lr.checkCount("boundary group", nBCs)
	}
	return
}

type numberedVertex struct {
	ind int
	pos r3.Vec
}

// read2DVertices places vertices by their one based number once all nv
// lines are in.
func (lr *lineReader) read2DVertices(nv int) (pos []r3.Vec, err error) {
	var (
		n, ind int
		x, y   float64
		read   = make([]numberedVertex, 0, capHint(nv))
	)
	for i := 0; i < nv; i++ {
		var line string
		if line, err = lr.getLine(); err != nil {
			return nil, err
		}
		if n, err = fmt.Sscanf(line, "%d %f %f", &ind, &x, &y); err != nil || n < 3 {
			return nil, lr.errorf("unable to read vertex from [%s]", line)
		}
		if ind < 1 || ind > nv {
			return nil, lr.errorf("vertex number %d outside [1,%d]", ind, nv)
		}
		read = append(read, numberedVertex{ind: ind, pos: r3.Vec{X: x, Y: y}})
	}
	pos = make([]r3.Vec, len(read))
	for _, nvx := range read {
		pos[nvx.ind-1] = nvx.pos
	}
	return
}

func (lr *lineReader) readTris(g *Grid, k int) (err error) {
	//-------------------------------------
	//    ELEMENTS/CELLS 1.3.0
	//      1  3  3        1       2       3
	//      2  3  3        3       2       4
	//-------------------------------------
	var (
		n, ind, typ, nVerts, n1, n2, n3 int
		read                            = make([][4]int, 0, capHint(k))
	)
	for i := 0; i < k; i++ {
		var line string
		if line, err = lr.getLine(); err != nil {
			return
		}
		if n, err = fmt.Sscanf(line, "%d %d %d %d %d %d", &ind, &typ, &nVerts, &n1, &n2, &n3); err != nil || n < 6 {
			return lr.errorf("unable to read triangle from [%s]", line)
		}
		if nVerts != 3 {
			return lr.errorf("element %d has %d vertices, want 3", ind, nVerts)
		}
		if ind < 1 || ind > k {
			return lr.errorf("element number %d outside [1,%d]", ind, k)
		}
		tri := [3]int{n1 - 1, n2 - 1, n3 - 1}
		for _, v := range tri {
			if err = g.checkVertex(v); err != nil {
				return
			}
		}
		read = append(read, [4]int{ind, tri[0], tri[1], tri[2]})
	}
	g.Triangles = make([][3]int, len(read))
	for _, t := range read {
		g.Triangles[t[0]-1] = [3]int{t[1], t[2], t[3]}
	}
	return
}

func (lr *lineReader) skipMaterialGroup() (err error) {
	/*
	   GROUP:           1 ELEMENTS:        977 MATERIAL:      1.000 NFLAGS:          0
	                     epsilon: 1.000
	          0
	*/
	var line string
	if line, err = lr.getLine(); err != nil {
		return
	}
	fields := strings.Fields(line)
	var elnum int
	if len(fields) < 4 || fields[0] != "GROUP:" || fields[2] != "ELEMENTS:" {
		return lr.errorf("badly formed material group header [%s]", line)
	}
	if _, err = fmt.Sscanf(fields[3], "%d", &elnum); err != nil {
		return lr.errorf("unable to read element count from [%s]", line)
	}
	if err = lr.checkCount("material element", elnum); err != nil {
		return
	}
	// Title and flags, then ten element numbers per line
	numLines := 2 + (elnum+9)/10
	return lr.skipLines(numLines)
}

func (lr *lineReader) readBCs(nBCs int, g *Grid) (err error) {
	var (
		line, bctyp          string
		n, numFaces          int
		kp1, typ, faceNumber int
	)
	for i := 0; i < nBCs; i++ {
		// Each set sits in its own BOUNDARY CONDITIONS section, the first
		// header was consumed with the previous section
		if i != 0 {
			if err = lr.skipLines(1); err != nil {
				return
			}
		}
		if line, err = lr.getLine(); err != nil {
			return
		}
		fields := strings.Fields(line)
		if len(fields) < 3 {
			return lr.errorf("badly formed boundary condition header [%s]", line)
		}
		bctyp = strings.ToLower(fields[0])
		if _, err = fmt.Sscanf(fields[2], "%d", &numFaces); err != nil {
			return lr.errorf("unable to read face count from [%s]", line)
		}
		if err = lr.checkCount("boundary face", numFaces); err != nil {
			return
		}
		for j := 0; j < numFaces; j++ {
			if line, err = lr.getLine(); err != nil {
				return
			}
			if n, err = fmt.Sscanf(line, "%d %d %d", &kp1, &typ, &faceNumber); err != nil || n < 3 {
				return lr.errorf("unable to read boundary face from [%s]", line)
			}
			if kp1 < 1 || kp1 > len(g.Triangles) || faceNumber < 1 || faceNumber > 3 {
				return lr.errorf("boundary face %d of element %d does not exist", faceNumber, kp1)
			}
			tri := g.Triangles[kp1-1]
			g.Markers[bctyp] = append(g.Markers[bctyp], [2]int{tri[faceNumber-1], tri[faceNumber%3]})
		}
		if err = lr.skipLines(1); err != nil {
			return
		}
	}
	return
}
