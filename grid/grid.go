package grid

import (
	"fmt"
)

// Grid is an immutable square raster of quantized elevation samples, stored row-major.
type Grid struct {
	Config
	samples []byte
}

// New creates a Grid from samples. samples must hold exactly cfg.Samples() values, and is
// retained by the Grid: it must not be modified afterwards.
func New(cfg Config, samples []byte) (*Grid, error) {
	if err := cfg.Check(); err != nil {
		return nil, err
	}
	if len(samples) != cfg.Samples() {
		return nil, fmt.Errorf("expected %d samples for a %dx%d grid, got %d", cfg.Samples(), cfg.Size, cfg.Size, len(samples))
	}
	return &Grid{
		Config:  cfg,
		samples: samples,
	}, nil
}

// Sample returns the raw sample at cell. It panics if cell is outside the grid.
func (g *Grid) Sample(cell Cell) byte {
	if !g.Contains(cell) {
		panic(fmt.Sprintf("bug: sample requested for cell outside grid: %s", cell))
	}
	return g.samples[g.Index(cell)]
}

// Height returns the elevation at cell, in distance units.
func (g *Grid) Height(cell Cell) float64 {
	return float64(g.Sample(cell)) * g.HeightScale
}
