package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/treespace/distance"
	"github.com/katalvlaran/treespace/phylo"
)

const (
	treeAB = "((a:1,b:1):1,c:1,d:1);"
	treeAC = "((a:1,c:1):1,b:1,d:1);"
	treeBC = "((a:1,d:1):1,b:1,c:1);"
)

// execute runs the CLI with args and returns stdout and stderr.
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd(strings.NewReader(stdin), &out, &errOut)
	err := run(context.Background(), root, args...)

	return out.String(), errOut.String(), err
}

func TestDist(t *testing.T) {
	cases := []struct {
		name string
		args []string
		want string
	}{
		{"geodesic", []string{"dist", treeAB, treeAC}, "2\n"},
		{"rf", []string{"dist", "-m", "rf", treeAB, treeAC}, "2\n"},
		{"normalized", []string{"dist", "--metric", "wrf", "--normalize", treeAB, treeAB}, "0\n"},
		{"edmonds-karp", []string{"dist", "--algorithm", "edmonds-karp", treeAB, treeAC}, "2\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, _, err := execute(t, "", tc.args...)
			require.NoError(t, err)
			assert.Equal(t, tc.want, out)
		})
	}
}

func TestDist_YAML(t *testing.T) {
	out, _, err := execute(t, "", "dist", "-o", "yaml", treeAB, treeAC)
	require.NoError(t, err)

	var got distResult
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	assert.Equal(t, distResult{Metric: "geodesic", Distance: 2}, got)
}

func TestPoint(t *testing.T) {
	out, _, err := execute(t, "", "point", "-p", "0.5", treeAB, treeAC)
	require.NoError(t, err)

	mid, err := phylo.Parse(strings.TrimSpace(out), false)
	require.NoError(t, err, out)
	assert.Equal(t, 0, mid.NumEdges())
	assert.Equal(t, []string{"a", "b", "c", "d"}, mid.Leaves())

	_, _, err = execute(t, "", "point", "--position", "1.5", treeAB, treeAC)
	assert.ErrorIs(t, err, distance.ErrPositionOutOfRange)
}

func TestMatrix_FromStdin(t *testing.T) {
	input := "# quartets\n" + treeAB + "\n\n" + treeAC + "\n" + treeBC + "\n"
	out, _, err := execute(t, input, "matrix", "--input", "-", "--metric", "rf", "--workers", "2")
	require.NoError(t, err)
	assert.Equal(t, "0\t2\t2\n2\t0\t2\n2\t2\t0\n", out)
}

func TestMatrix_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trees.nwk")
	require.NoError(t, os.WriteFile(path, []byte(treeAB+"\n"+treeAC+"\n"), 0o600))

	out, _, err := execute(t, "", "matrix", "-i", path, "-o", "yaml")
	require.NoError(t, err)

	var got matrixResult
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	assert.Equal(t, "geodesic", got.Metric)
	assert.Equal(t, [][]float64{{0, 2}, {2, 0}}, got.Matrix)
}

func TestConfigSources(t *testing.T) {
	t.Run("environment", func(t *testing.T) {
		t.Setenv("BHV_METRIC", "euclidean")
		out, _, err := execute(t, "", "dist", treeAB, treeAC)
		require.NoError(t, err)
		assert.Equal(t, "1.4142135623730951\n", out)
	})

	t.Run("yaml file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bhv.yaml")
		require.NoError(t, os.WriteFile(path, []byte("metric: rf\nformat: yaml\n"), 0o600))

		out, _, err := execute(t, "", "dist", "--config", path, treeAB, treeAC)
		require.NoError(t, err)
		assert.Contains(t, out, "metric: rf")
		assert.Contains(t, out, "distance: 2")
	})

	t.Run("flag beats environment", func(t *testing.T) {
		t.Setenv("BHV_METRIC", "euclidean")
		out, _, err := execute(t, "", "dist", "-m", "rf", treeAB, treeAC)
		require.NoError(t, err)
		assert.Equal(t, "2\n", out)
	})
}

func TestDebugLogging(t *testing.T) {
	_, logs, err := execute(t, "", "dist", "--log-level", "debug", treeAB, treeAC)
	require.NoError(t, err)
	assert.Contains(t, logs, "configuration loaded")
	assert.Contains(t, logs, "geodesic computed")
}

func TestErrors(t *testing.T) {
	cases := []struct {
		name string
		args []string
		msg  string
	}{
		{"leaf mismatch", []string{"dist", treeAB, "(a:1,b:1,e:1);"}, "mismatched leaves"},
		{"bad newick", []string{"dist", treeAB, "((a:1,b:1);"}, "tree 2"},
		{"one tree", []string{"dist", treeAB}, "need 2 trees"},
		{"no input", []string{"matrix"}, "no trees given"},
		{"bad format", []string{"dist", "-o", "json", treeAB, treeAC}, "unknown format"},
		{"bad metric", []string{"dist", "-m", "hamming", treeAB, treeAC}, "unknown metric"},
		{"bad algorithm", []string{"dist", "--algorithm", "push-relabel", treeAB, treeAC}, "push-relabel"},
		{"bad tolerance", []string{"dist", "--tolerance", "0", treeAB, treeAC}, "tolerance"},
		{"bad level", []string{"dist", "--log-level", "loud", treeAB, treeAC}, "log level"},
		{"position", []string{"point", "-p", "1.5", treeAB, treeAC}, "position"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := execute(t, "", tc.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.msg)
		})
	}
}
