/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/notargets/gomesh/InputParameters"
	"github.com/notargets/gomesh/halfedge"
	"github.com/notargets/gomesh/meshgen"
	"github.com/notargets/gomesh/utils"
)

type BuildOptions struct {
	MeshFile      string
	CloseBoundary bool
	ReportFile    string
}

// BuildCmd represents the build command
var BuildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build a half-edge mesh from a triangle file",
	Long: `
Reads positions and triangles from a mesh file, builds and validates the
half-edge mesh and prints its topology. Files ending in .su2 are read as SU2
grids, .neu as Gambit neutral files, anything else as YAML like:

Positions: [[0, 0, 0], [1, 0, 0], [0, 1, 0]]
Triangles: [[0, 1, 2]]

gomesh build -F mesh.yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := &BuildOptions{}
		opts.MeshFile, _ = cmd.Flags().GetString("meshFile")
		opts.CloseBoundary, _ = cmd.Flags().GetBool("closeBoundary")
		opts.ReportFile, _ = cmd.Flags().GetString("report")
		_, err := RunBuild(opts)
		return err
	},
}

func init() {
	rootCmd.AddCommand(BuildCmd)
	BuildCmd.Flags().StringP("meshFile", "F", "", "mesh file: YAML, SU2 (.su2) or Gambit neutral (.neu)")
	BuildCmd.Flags().Bool("closeBoundary", false, "pair boundary halfedges with synthetic twins")
	BuildCmd.Flags().String("report", "", "write topology statistics to this YAML file")
}

func RunBuild(opts *BuildOptions) (m *halfedge.Mesh, err error) {
	if len(opts.MeshFile) == 0 {
		return nil, errors.New("must supply a mesh file (-F, --meshFile)")
	}
	var mf *meshgen.MeshFile
	if mf, err = meshgen.ReadMeshFile(opts.MeshFile); err != nil {
		return
	}
	ip := InputParameters.NewInputParametersMesh()
	ip.CloseBoundary = opts.CloseBoundary
	g := meshgen.NewGenerator(ip)
	if m, err = g.Assemble(mf.Vectors(), mf.Triangles); err != nil {
		return nil, err
	}
	st := m.Stats()
	utils.LogInfo("built %s: %d vertices, %d faces", opts.MeshFile, st.Vertices, st.Faces)
	for name, count := range mf.MisplacedMarkers(m) {
		utils.LogWarn("boundary marker %s has %d edges off the mesh boundary", name, count)
	}
	st.Print()
	if len(opts.ReportFile) != 0 {
		res := &meshgen.Result{
			Triangles:  mf.Triangles,
			Mesh:       m,
			VertexData: halfedge.ExtractVertexData(m, 0),
			Stats:      st,
		}
		if err = meshgen.NewReport(opts.MeshFile, res).Write(opts.ReportFile); err != nil {
			return nil, err
		}
	}
	return
}
