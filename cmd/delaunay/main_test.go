package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/osuushi/delaunay/triangulation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"gopkg.in/yaml.v3"
)

func TestReadPoints(t *testing.T) {
	t.Run("plain", func(t *testing.T) {
		points, err := readPoints(strings.NewReader("0 0\n\n# comment\n  0.5 -0.25  \n-0.75\t0.125\n"))
		require.NoError(t, err)
		assert.Equal(t, []triangulation.Point{{0, 0}, {0.5, -0.25}, {-0.75, 0.125}}, points)
	})

	t.Run("bad lines", func(t *testing.T) {
		_, err := readPoints(strings.NewReader("0 0\n1\n"))
		assert.EqualError(t, err, `line 2: expected "x y", got "1"`)

		_, err = readPoints(strings.NewReader("0 zero\n"))
		assert.ErrorContains(t, err, `invalid y value "zero"`)
	})
}

func TestLoadPoints(t *testing.T) {
	dir := t.TempDir()

	t.Run("yaml", func(t *testing.T) {
		path := filepath.Join(dir, "points.yaml")
		require.NoError(t, os.WriteFile(path, []byte("points:\n  - [0.25, 0.5]\n  - [-0.5, 0.75]\n"), 0o644))
		points, err := loadPoints(path, nil)
		require.NoError(t, err)
		assert.Equal(t, []triangulation.Point{{0.25, 0.5}, {-0.5, 0.75}}, points)
	})

	t.Run("text file", func(t *testing.T) {
		path := filepath.Join(dir, "points.txt")
		require.NoError(t, os.WriteFile(path, []byte("0.25 0.5\n"), 0o644))
		points, err := loadPoints(path, nil)
		require.NoError(t, err)
		assert.Equal(t, []triangulation.Point{{0.25, 0.5}}, points)
	})

	t.Run("stdin", func(t *testing.T) {
		points, err := loadPoints("", strings.NewReader("0.25 0.5\n"))
		require.NoError(t, err)
		assert.Len(t, points, 1)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := loadPoints(filepath.Join(dir, "nope.txt"), nil)
		assert.Error(t, err)
	})
}

func TestInsertAll(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	tri := triangulation.New()
	points := []triangulation.Point{{0, 0}, {5, 5}, {0, -1}, {0.3, 0.4}}

	inserted, rejected := insertAll(zap.New(core), tri, points)
	assert.Equal(t, 2, inserted)
	assert.Equal(t, 2, rejected)
	assert.Equal(t, 7, tri.NumPoints())

	skipped := logs.FilterMessage("skipping point").All()
	require.Len(t, skipped, 2)
	assert.Equal(t, int64(1), skipped[0].ContextMap()["index"])
	assert.Equal(t, int64(2), skipped[1].ContextMap()["index"])
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	pngPath := filepath.Join(dir, "out.png")
	var stdout bytes.Buffer

	err := run(zap.NewNop(), "", pngPath, 32, false, true, strings.NewReader("0 0\n0.3 0.4\n"), &stdout)
	require.NoError(t, err)
	assert.FileExists(t, pngPath)

	var s snapshot
	require.NoError(t, yaml.Unmarshal(stdout.Bytes(), &s))
	assert.Len(t, s.Points, 7)
	assert.Len(t, s.Triangles, 8)
	assert.Equal(t, [2]float32{0.3, 0.4}, s.Points[6])
	for _, view := range s.Triangles {
		assert.Greater(t, view.Radius, 0.0)
	}
}
