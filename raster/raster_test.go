package raster

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/fornellas/slogxt/log"
	"github.com/stretchr/testify/require"

	"github.com/fornellas/surfdist/grid"
)

var testConfig = grid.Config{Size: 4, CellSize: 30, HeightScale: 11}

func testContext(t *testing.T) context.Context {
	return log.WithLogger(t.Context(), slog.New(slog.DiscardHandler))
}

func testSamples() []byte {
	samples := make([]byte, testConfig.Samples())
	for i := range samples {
		samples[i] = byte(i * 3)
	}
	return samples
}

func TestLoad(t *testing.T) {
	ctx := testContext(t)

	g, err := Load(ctx, bytes.NewReader(testSamples()), testConfig)
	require.NoError(t, err)
	require.Equal(t, testConfig, g.Config)
	require.Equal(t, byte(0), g.Sample(grid.Cell{Col: 0, Row: 0}))
	require.Equal(t, byte(3), g.Sample(grid.Cell{Col: 1, Row: 0}))
	require.Equal(t, byte(12), g.Sample(grid.Cell{Col: 0, Row: 1}))
	require.Equal(t, byte(45), g.Sample(grid.Cell{Col: 3, Row: 3}))
}

func TestLoadShortRead(t *testing.T) {
	ctx := testContext(t)
	for _, n := range []int{0, 1, 15} {
		_, err := Load(ctx, bytes.NewReader(testSamples()[:n]), testConfig)
		require.Error(t, err)
		require.True(t, errors.Is(err, ErrShortRead), err.Error())
	}
}

func TestLoadTrailingData(t *testing.T) {
	ctx := testContext(t)
	_, err := Load(ctx, bytes.NewReader(append(testSamples(), 1)), testConfig)
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrTrailingData), err.Error())
}

func TestLoadInvalidConfig(t *testing.T) {
	ctx := testContext(t)
	_, err := Load(ctx, bytes.NewReader(nil), grid.Config{})
	require.Error(t, err)
}

func TestLoadPair(t *testing.T) {
	ctx := testContext(t)
	dir := t.TempDir()

	prePath := filepath.Join(dir, "pre.data")
	require.NoError(t, os.WriteFile(prePath, testSamples(), 0644))
	postSamples := testSamples()
	postSamples[5] = 200
	postPath := filepath.Join(dir, "post.data")
	require.NoError(t, os.WriteFile(postPath, postSamples, 0644))

	pre, post, err := LoadPair(ctx, prePath, postPath, testConfig)
	require.NoError(t, err)
	require.Equal(t, byte(15), pre.Sample(grid.Cell{Col: 1, Row: 1}))
	require.Equal(t, byte(200), post.Sample(grid.Cell{Col: 1, Row: 1}))

	_, _, err = LoadPair(ctx, prePath, filepath.Join(dir, "missing.data"), testConfig)
	require.Error(t, err)
	require.True(t, errors.Is(err, os.ErrNotExist), err.Error())

	shortPath := filepath.Join(dir, "short.data")
	require.NoError(t, os.WriteFile(shortPath, testSamples()[:10], 0644))
	_, _, err = LoadPair(ctx, shortPath, postPath, testConfig)
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrShortRead), err.Error())
}
