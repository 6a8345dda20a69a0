// Package raster loads elevation grids stored as raw row-major byte samples.
package raster

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fornellas/slogxt/log"

	"github.com/fornellas/surfdist/grid"
)

var (
	// ErrShortRead is returned when the input holds fewer samples than the grid needs.
	ErrShortRead = errors.New("short read")
	// ErrTrailingData is returned when the input holds more samples than the grid needs.
	ErrTrailingData = errors.New("trailing data")
)

// Load reads a cfg.Size x cfg.Size grid of one byte samples from r.
func Load(ctx context.Context, r io.Reader, cfg grid.Config) (*grid.Grid, error) {
	logger := log.MustLogger(ctx)

	if err := cfg.Check(); err != nil {
		return nil, err
	}

	samples := make([]byte, cfg.Samples())
	n, err := io.ReadFull(r, samples)
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, fmt.Errorf("%w: expected %d samples, got %d", ErrShortRead, len(samples), n)
		}
		return nil, err
	}

	var extra [1]byte
	m, err := r.Read(extra[:])
	if m > 0 {
		return nil, fmt.Errorf("%w: expected %d samples", ErrTrailingData, len(samples))
	}
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	logger.Debug("Loaded grid", "size", cfg.Size, "samples", n)
	return grid.New(cfg, samples)
}

// LoadFile reads a grid from the file at path.
func LoadFile(ctx context.Context, path string, cfg grid.Config) (g *grid.Grid, err error) {
	ctx, logger := log.MustWithAttrs(ctx, "path", path)
	logger.Debug("Opening")

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { err = errors.Join(err, f.Close()) }()

	g, err = Load(ctx, f, cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

// LoadPair reads the pre and post grids. Both must load before any is returned.
func LoadPair(ctx context.Context, prePath, postPath string, cfg grid.Config) (pre, post *grid.Grid, err error) {
	pre, err = LoadFile(ctx, prePath, cfg)
	if err != nil {
		return nil, nil, err
	}
	post, err = LoadFile(ctx, postPath, cfg)
	if err != nil {
		return nil, nil, err
	}
	return pre, post, nil
}
