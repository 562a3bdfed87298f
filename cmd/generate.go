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
	"os"

	"github.com/pkg/errors"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/notargets/gomesh/InputParameters"
	"github.com/notargets/gomesh/meshgen"
)

type GenerateOptions struct {
	InputFile  string
	ReportFile string
	OutputFile string
	Profile    string
}

// GenerateCmd represents the generate command
var GenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Sample the unit disc, triangulate and build a half-edge mesh",
	Long: `
Draws points from a Gaussian confined to the unit disc, triangulates them with
a Delaunay triangulation and builds the half-edge mesh, printing its topology.

Values come from, in increasing precedence: defaults, the config file, the
input parameters file (-I), GOMESH_ environment variables and flags.

gomesh generate -n 2000 --seed 7 --smooth 3 --report stats.yaml`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		opts := &GenerateOptions{}
		opts.InputFile, _ = cmd.Flags().GetString("inputParametersFile")
		opts.ReportFile, _ = cmd.Flags().GetString("report")
		opts.OutputFile, _ = cmd.Flags().GetString("output")
		opts.Profile, _ = cmd.Flags().GetString("profile")
		var ip *InputParameters.InputParametersMesh
		if ip, err = processGenerateInput(opts, viper.GetViper()); err != nil {
			return
		}
		switch opts.Profile {
		case "":
		case "cpu":
			defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
		case "mem":
			defer profile.Start(profile.MemProfile, profile.ProfilePath(".")).Stop()
		default:
			return errors.Errorf("unknown profile mode %q, want cpu or mem", opts.Profile)
		}
		return RunGenerate(opts, ip)
	},
}

var generateKeys = []string{"points", "mean", "spread", "cv", "seed", "maxDraws",
	"closeBoundary", "smooth", "smoothLambda", "parallel"}

func init() {
	rootCmd.AddCommand(GenerateCmd)
	ip := InputParameters.NewInputParametersMesh()
	GenerateCmd.Flags().IntP("points", "n", ip.NumPoints, "number of points to sample")
	GenerateCmd.Flags().Float64("mean", ip.Mean, "mean of the Gaussian on each axis")
	GenerateCmd.Flags().Float64("spread", ip.Spread, "standard deviation of the Gaussian, overrides cv")
	GenerateCmd.Flags().Float64("cv", ip.CV, "coefficient of variation, spread = cv*|mean|")
	GenerateCmd.Flags().Uint64("seed", ip.Seed, "random seed")
	GenerateCmd.Flags().Int("maxDraws", ip.MaxDraws, "upper bound on rejection draws, 0 is unbounded")
	GenerateCmd.Flags().Bool("closeBoundary", ip.CloseBoundary, "pair boundary halfedges with synthetic twins")
	GenerateCmd.Flags().Int("smooth", ip.SmoothIterations, "Laplacian smoothing iterations of interior vertices")
	GenerateCmd.Flags().Float64("smoothLambda", ip.SmoothLambda, "Laplacian smoothing step in (0,1]")
	GenerateCmd.Flags().Int("parallel", ip.ParallelDegree, "parallel degree of vertex extraction, 0 uses all processors")
	GenerateCmd.Flags().StringP("inputParametersFile", "I", "", "YAML file for input parameters like:\n\t- NumPoints\n\t- Mean, CV")
	GenerateCmd.Flags().String("report", "", "write topology statistics to this YAML file")
	GenerateCmd.Flags().StringP("output", "o", "", "write the mesh to this YAML file")
	GenerateCmd.Flags().String("profile", "", "profile the run: cpu or mem")
	for _, key := range generateKeys {
		_ = viper.BindPFlag(key, GenerateCmd.Flags().Lookup(key))
	}
}

func processGenerateInput(opts *GenerateOptions, v *viper.Viper) (ip *InputParameters.InputParametersMesh, err error) {
	ip = InputParameters.NewInputParametersMesh()
	if len(opts.InputFile) != 0 {
		var data []byte
		if data, err = os.ReadFile(opts.InputFile); err != nil {
			return nil, errors.Wrapf(err, "reading input parameters file %s", opts.InputFile)
		}
		if err = ip.Parse(data); err != nil {
			return nil, err
		}
	}
	if v.IsSet("points") {
		ip.NumPoints = v.GetInt("points")
	}
	if v.IsSet("mean") {
		ip.Mean = v.GetFloat64("mean")
	}
	if v.IsSet("spread") {
		ip.Spread = v.GetFloat64("spread")
	}
	if v.IsSet("cv") {
		ip.CV = v.GetFloat64("cv")
	}
	if v.IsSet("seed") {
		ip.Seed = v.GetUint64("seed")
	}
	if v.IsSet("maxDraws") {
		ip.MaxDraws = v.GetInt("maxDraws")
	}
	if v.IsSet("closeBoundary") {
		ip.CloseBoundary = v.GetBool("closeBoundary")
	}
	if v.IsSet("smooth") {
		ip.SmoothIterations = v.GetInt("smooth")
	}
	if v.IsSet("smoothLambda") {
		ip.SmoothLambda = v.GetFloat64("smoothLambda")
	}
	if v.IsSet("parallel") {
		ip.ParallelDegree = v.GetInt("parallel")
	}
	return ip, ip.Validate()
}

func RunGenerate(opts *GenerateOptions, ip *InputParameters.InputParametersMesh) (err error) {
	ip.Print()
	var res *meshgen.Result
	if res, err = meshgen.NewGenerator(ip).Run(); err != nil {
		return
	}
	res.Stats.Print()
	if len(opts.ReportFile) != 0 {
		if err = meshgen.NewReport(ip.Title, res).Write(opts.ReportFile); err != nil {
			return
		}
	}
	if len(opts.OutputFile) != 0 {
		err = meshgen.NewMeshFile(res.Mesh).Write(opts.OutputFile)
	}
	return
}
