package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/gomesh/meshgen"
)

func TestProcessGenerateInput(t *testing.T) {
	dir := t.TempDir()
	inputFile := filepath.Join(dir, "input.yaml")
	require.NoError(t, os.WriteFile(inputFile, []byte(`
Title: Test Case
NumPoints: 250
Mean: 0.4
CV: 0.25
CloseBoundary: true
`), 0o644))
	{ // File overlays defaults
		ip, err := processGenerateInput(&GenerateOptions{InputFile: inputFile}, viper.New())
		require.NoError(t, err)
		assert.Equal(t, "Test Case", ip.Title)
		assert.Equal(t, 250, ip.NumPoints)
		assert.InDelta(t, 0.1, ip.SamplerSpread(), 1e-15)
		assert.True(t, ip.CloseBoundary)
	}
	{ // Flags, env and config override the file
		v := viper.New()
		v.Set("points", 40)
		v.Set("seed", uint64(9))
		v.Set("smooth", 2)
		ip, err := processGenerateInput(&GenerateOptions{InputFile: inputFile}, v)
		require.NoError(t, err)
		assert.Equal(t, 40, ip.NumPoints)
		assert.Equal(t, uint64(9), ip.Seed)
		assert.Equal(t, 2, ip.SmoothIterations)
		assert.Equal(t, 0.4, ip.Mean)
	}
	{ // Failures
		_, err := processGenerateInput(&GenerateOptions{InputFile: filepath.Join(dir, "none.yaml")}, viper.New())
		assert.Error(t, err)
		v := viper.New()
		v.Set("points", -1)
		_, err = processGenerateInput(&GenerateOptions{}, v)
		assert.Error(t, err)
	}
}

func TestRunGenerateAndBuild(t *testing.T) {
	dir := t.TempDir()
	opts := &GenerateOptions{
		ReportFile: filepath.Join(dir, "report.yaml"),
		OutputFile: filepath.Join(dir, "mesh.yaml"),
	}
	v := viper.New()
	v.Set("points", 120)
	v.Set("seed", uint64(3))
	ip, err := processGenerateInput(opts, v)
	require.NoError(t, err)
	require.NoError(t, RunGenerate(opts, ip))

	data, err := os.ReadFile(opts.ReportFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "eulerCharacteristic: 1")

	mf, err := meshgen.ReadMeshFile(opts.OutputFile)
	require.NoError(t, err)
	assert.Len(t, mf.Positions, 120)

	buildReport := filepath.Join(dir, "build.yaml")
	m, err := RunBuild(&BuildOptions{MeshFile: opts.OutputFile, CloseBoundary: true, ReportFile: buildReport})
	require.NoError(t, err)
	assert.Equal(t, 1, m.Stats().BoundaryFaces)
	assert.FileExists(t, buildReport)

	_, err = RunBuild(&BuildOptions{})
	assert.Error(t, err)
}

func TestRootCommand(t *testing.T) {
	dir := t.TempDir()
	meshFile := filepath.Join(dir, "mesh.yaml")
	require.NoError(t, os.WriteFile(meshFile, []byte(`
Positions: [[0, 0, 0], [1, 0, 0], [1, 1, 0], [0, 1, 0]]
Triangles: [[0, 1, 2], [0, 2, 3], [0, 1, 3]]
`), 0o644))
	rootCmd.SetArgs([]string{"build", "-F", meshFile, "--config", filepath.Join(dir, "none.yaml")})
	assert.Error(t, rootCmd.Execute(), "directed edge 0->1 is used twice")

	rootCmd.SetArgs([]string{"build", "-F", meshFile, "--logLevel", "chatty"})
	assert.Error(t, rootCmd.Execute())
}
