package grid

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// ErrOutOfBounds is returned when a cell lies outside the grid.
var ErrOutOfBounds = errors.New("cell out of bounds")

// Config describes the geometry of a square elevation grid.
type Config struct {
	// Number of cells per side. The grid holds Size*Size samples.
	Size int
	// Physical width of a cell, in distance units.
	CellSize float64
	// Distance units per sample unit.
	HeightScale float64
}

// DefaultConfig is the reference 512x512 grid with 30 unit cells and 11 units per height quantum.
var DefaultConfig = Config{
	Size:        512,
	CellSize:    30.0,
	HeightScale: 11.0,
}

// Check returns an error if the configuration can not describe a grid.
func (c Config) Check() error {
	if c.Size < 1 {
		return fmt.Errorf("grid size must be positive: %d", c.Size)
	}
	if !(c.CellSize > 0) || math.IsInf(c.CellSize, 0) {
		return fmt.Errorf("cell size must be positive: %v", c.CellSize)
	}
	if math.IsNaN(c.HeightScale) || math.IsInf(c.HeightScale, 0) {
		return fmt.Errorf("height scale must be finite: %v", c.HeightScale)
	}
	return nil
}

// Radius is the neighbor influence radius: the farthest a sample may be from a point and still
// contribute to its height. It is also the maximum spacing between path quadrature points.
func (c Config) Radius() float64 {
	return c.CellSize * math.Sqrt2
}

// Samples is the number of samples a grid with this configuration holds.
func (c Config) Samples() int {
	return c.Size * c.Size
}

// Contains reports whether cell lies within the grid.
func (c Config) Contains(cell Cell) bool {
	return cell.Col >= 0 && cell.Col < c.Size && cell.Row >= 0 && cell.Row < c.Size
}

// Validate returns ErrOutOfBounds if cell is not within the grid.
func (c Config) Validate(cell Cell) error {
	if !c.Contains(cell) {
		return fmt.Errorf("%s: %w: valid range is [0,%d)", cell, ErrOutOfBounds, c.Size)
	}
	return nil
}

// Index returns the row-major sample index for cell. The result is meaningless for cells
// outside the grid, so callers must check Contains first.
func (c Config) Index(cell Cell) int {
	return cell.Col + cell.Row*c.Size
}

// World returns the world position of the center of cell, at zero height.
func (c Config) World(cell Cell) r3.Vec {
	half := c.CellSize / 2
	return r3.Vec{
		X: float64(cell.Col)*c.CellSize + half,
		Y: float64(cell.Row)*c.CellSize + half,
	}
}

// CellAt returns the cell containing world position x, y. The returned cell may be outside the
// grid for points at or beyond its edges.
func (c Config) CellAt(x, y float64) Cell {
	return Cell{
		Col: int(math.Floor(x / c.CellSize)),
		Row: int(math.Floor(y / c.CellSize)),
	}
}
