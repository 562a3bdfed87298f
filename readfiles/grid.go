package readfiles

import (
	"bufio"
	"io"
	"strings"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/spatial/r3"
)

var ErrMalformedGrid = errors.New("malformed grid file")

// Grid is a triangle soup read from a grid file. Markers hold the boundary
// edges of each named boundary group as zero based vertex pairs.
type Grid struct {
	Positions []r3.Vec
	Triangles [][3]int
	Markers   map[string][][2]int
}

// Header counts only bound how much is preallocated, storage grows with the
// lines actually read.
const maxPrealloc = 1 << 16

func capHint(n int) int {
	return min(n, maxPrealloc)
}

func newGrid() *Grid {
	return &Grid{
		Markers: make(map[string][][2]int),
	}
}

func (g *Grid) checkVertex(v int) error {
	if v < 0 || v >= len(g.Positions) {
		return errors.Wrapf(ErrMalformedGrid, "vertex %d outside [0,%d)", v, len(g.Positions))
	}
	return nil
}

type lineReader struct {
	reader *bufio.Reader
	lineNo int
}

func newLineReader(r io.Reader) *lineReader {
	return &lineReader{reader: bufio.NewReader(r)}
}

func (lr *lineReader) getLine() (line string, err error) {
	line, err = lr.reader.ReadString('\n')
	if err == io.EOF && len(line) != 0 {
		err = nil
	}
	if err != nil {
		if err == io.EOF {
			err = errors.Wrapf(io.ErrUnexpectedEOF, "line %d: early end of file", lr.lineNo)
		}
		return "", err
	}
	lr.lineNo++
	line = strings.TrimRight(line, "\r\n")
	return
}

func (lr *lineReader) skipLines(n int) error {
	for i := 0; i < n; i++ {
		if _, err := lr.getLine(); err != nil {
			return err
		}
	}
	return nil
}

func (lr *lineReader) checkCount(what string, n int) error {
	if n < 0 {
		return lr.errorf("negative %s count %d", what, n)
	}
	return nil
}

func (lr *lineReader) errorf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrMalformedGrid, "line %d: "+format, append([]interface{}{lr.lineNo}, args...)...)
}
