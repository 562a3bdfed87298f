package meshgen

import (
	"os"

	"github.com/ghodss/yaml"
	"github.com/pkg/errors"

	"github.com/notargets/gomesh/halfedge"
)

// Report is the YAML summary written by the generate command.
type Report struct {
	Title            string         `json:"title"`
	Points           int            `json:"points"`
	Triangles        int            `json:"triangles"`
	Stats            halfedge.Stats `json:"stats"`
	InteriorVertices int            `json:"interiorVertices"`
	MeanDegree       float64        `json:"meanDegree"`
	ElapsedSeconds   float64        `json:"elapsedSeconds"`
}

func NewReport(title string, res *Result) (rpt *Report) {
	rpt = &Report{
		Title:          title,
		Points:         res.Mesh.NumVertices(),
		Triangles:      len(res.Triangles),
		Stats:          res.Stats,
		ElapsedSeconds: res.Elapsed.Seconds(),
	}
	var degreeSum, used int
	for _, vd := range res.VertexData {
		if vd.Degree == 0 {
			continue
		}
		used++
		degreeSum += vd.Degree
		if !vd.OnBoundary {
			rpt.InteriorVertices++
		}
	}
	if used > 0 {
		rpt.MeanDegree = float64(degreeSum) / float64(used)
	}
	return
}

func (rpt *Report) Marshal() ([]byte, error) {
	return yaml.Marshal(rpt)
}

func (rpt *Report) Write(path string) error {
	data, err := rpt.Marshal()
	if err != nil {
		return errors.Wrap(err, "encoding report")
	}
	return errors.Wrapf(os.WriteFile(path, data, 0o644), "writing report %s", path)
}
