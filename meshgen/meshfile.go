package meshgen

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/ghodss/yaml"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/notargets/gomesh/halfedge"
	"github.com/notargets/gomesh/readfiles"
)

// MeshFile is a triangle soup stored as YAML:
//
//	Positions: [[0, 0, 0], [1, 0, 0], [0, 1, 0]]
//	Triangles: [[0, 1, 2]]
//	Markers:
//	  wall: [[0, 1], [1, 2]]
type MeshFile struct {
	Positions [][3]float64        `json:"Positions"`
	Triangles [][3]int            `json:"Triangles"`
	Markers   map[string][][2]int `json:"Markers,omitempty"`
}

func ParseMeshFile(data []byte) (mf *MeshFile, err error) {
	mf = &MeshFile{}
	if err = yaml.Unmarshal(data, mf); err != nil {
		return nil, errors.Wrap(err, "unable to parse mesh file")
	}
	return
}

// ReadMeshFile picks the reader from the extension: .su2 for SU2, .neu for
// Gambit neutral files and YAML otherwise.
func ReadMeshFile(path string) (*MeshFile, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".su2":
		g, err := readfiles.ReadSU2File(path)
		if err != nil {
			return nil, err
		}
		return newMeshFileFromGrid(g), nil
	case ".neu":
		g, err := readfiles.ReadGambitFile(path)
		if err != nil {
			return nil, err
		}
		return newMeshFileFromGrid(g), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading mesh file %s", path)
	}
	return ParseMeshFile(data)
}

func newMeshFileFromGrid(g *readfiles.Grid) (mf *MeshFile) {
	mf = &MeshFile{
		Positions: make([][3]float64, len(g.Positions)),
		Triangles: g.Triangles,
		Markers:   g.Markers,
	}
	for i, p := range g.Positions {
		mf.Positions[i] = [3]float64{p.X, p.Y, p.Z}
	}
	return
}

// MisplacedMarkers counts, per marker, the edges that are not boundary edges
// of m. A marker edge missing from the mesh counts as misplaced.
func (mf *MeshFile) MisplacedMarkers(m *halfedge.Mesh) (misplaced map[string]int) {
	misplaced = make(map[string]int)
	for name, edges := range mf.Markers {
		for _, ab := range edges {
			a, b := halfedge.VertexID(ab[0]), halfedge.VertexID(ab[1])
			if int(a) >= m.NumVertices() || int(b) >= m.NumVertices() || a < 0 || b < 0 {
				misplaced[name]++
				continue
			}
			e := m.EdgeBetween(a, b)
			if e.IsNull() || !m.IsBoundaryEdge(e) {
				misplaced[name]++
			}
		}
	}
	return
}

func (mf *MeshFile) Vectors() (pos []r3.Vec) {
	pos = make([]r3.Vec, len(mf.Positions))
	for i, p := range mf.Positions {
		pos[i] = r3.Vec{X: p[0], Y: p[1], Z: p[2]}
	}
	return
}

// NewMeshFile captures the positions and faces of a built mesh, skipping
// Boundary faces.
func NewMeshFile(m *halfedge.Mesh) (mf *MeshFile) {
	mf = &MeshFile{
		Positions: make([][3]float64, m.NumVertices()),
		Triangles: make([][3]int, 0, m.NumGenuineFaces()),
	}
	for i, p := range m.Positions() {
		mf.Positions[i] = [3]float64{p.X, p.Y, p.Z}
	}
	for f := halfedge.FaceID(0); int(f) < m.NumGenuineFaces(); f++ {
		verts := m.FaceVertices(f)
		mf.Triangles = append(mf.Triangles, [3]int{int(verts[0]), int(verts[1]), int(verts[2])})
	}
	return
}

func (mf *MeshFile) Marshal() ([]byte, error) {
	return yaml.Marshal(mf)
}

func (mf *MeshFile) Write(path string) error {
	data, err := mf.Marshal()
	if err != nil {
		return errors.Wrap(err, "encoding mesh file")
	}
	return errors.Wrapf(os.WriteFile(path, data, 0o644), "writing mesh file %s", path)
}
