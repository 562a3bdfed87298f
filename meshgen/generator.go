package meshgen

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/notargets/gomesh/InputParameters"
	"github.com/notargets/gomesh/geometry2D"
	"github.com/notargets/gomesh/halfedge"
	"github.com/notargets/gomesh/utils"
)

// Generator samples the unit disc, triangulates the sample and assembles the
// half-edge mesh.
type Generator struct {
	Params       *InputParameters.InputParametersMesh
	Triangulator geometry2D.Triangulator
	Logger       *log.Logger
}

type Result struct {
	Points     []geometry2D.Point
	Triangles  [][3]int
	Mesh       *halfedge.Mesh
	VertexData []halfedge.VertexData
	Stats      halfedge.Stats
	Elapsed    time.Duration
}

func NewGenerator(ip *InputParameters.InputParametersMesh) *Generator {
	return &Generator{
		Params:       ip,
		Triangulator: geometry2D.DelaunayTriangulator{},
		Logger:       utils.Logger(),
	}
}

func (g *Generator) Sampler() *geometry2D.GaussianDiscSampler {
	return &geometry2D.GaussianDiscSampler{
		Mean:     g.Params.Mean,
		Spread:   g.Params.SamplerSpread(),
		Seed:     g.Params.Seed,
		MaxDraws: g.Params.MaxDraws,
	}
}

func (g *Generator) Run() (res *Result, err error) {
	if err = g.Params.Validate(); err != nil {
		return
	}
	start := time.Now()
	res = &Result{}
	if res.Points, err = g.Sampler().Sample(g.Params.NumPoints); err != nil {
		return nil, errors.Wrap(err, "sampling the unit disc")
	}
	g.Logger.Debug("sampled unit disc", "points", len(res.Points))
	if res.Triangles, err = g.Triangulator.Triangulate(res.Points); err != nil {
		return nil, errors.Wrap(err, "triangulating the sample")
	}
	g.Logger.Debug("triangulated sample", "triangles", len(res.Triangles))
	if res.Mesh, err = g.Assemble(geometry2D.Lift(res.Points, 0), res.Triangles); err != nil {
		return nil, err
	}
	res.VertexData = halfedge.ExtractVertexData(res.Mesh, g.Params.ParallelDegree)
	res.Stats = res.Mesh.Stats()
	res.Elapsed = time.Since(start)
	g.Logger.Info("mesh generated", "vertices", res.Stats.Vertices, "faces", res.Stats.Faces,
		"edges", res.Stats.Edges, "elapsed", res.Elapsed)
	return
}

// Assemble builds the mesh, then optionally relaxes the interior vertices and
// rebuilds over the same topology.
func (g *Generator) Assemble(pos []r3.Vec, tris [][3]int) (m *halfedge.Mesh, err error) {
	b := &halfedge.Builder{
		CloseBoundary: g.Params.CloseBoundary,
		Logger:        g.Logger,
	}
	if m, err = b.Build(pos, tris); err != nil {
		return nil, errors.Wrap(err, "building half-edge mesh")
	}
	if g.Params.SmoothIterations > 0 {
		smoothed := m.Smooth(g.Params.SmoothIterations, g.Params.SmoothLambda)
		if m, err = b.Build(smoothed, tris); err != nil {
			return nil, errors.Wrap(err, "rebuilding smoothed mesh")
		}
		g.Logger.Debug("smoothed mesh", "iterations", g.Params.SmoothIterations,
			"lambda", g.Params.SmoothLambda)
	}
	return
}
