// Package heightfield reconstructs a continuous elevation from discrete grid samples, by
// weighting nearby samples with a compactly supported cubic falloff kernel.
package heightfield

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/fornellas/surfdist/grid"
)

// Stencil bounds, as offsets from the cell containing the query point. The column range is one
// shorter than the row range.
const (
	RowMin = -2
	RowMax = 2
	ColMin = -2
	ColMax = 1
)

// Weight returns the kernel weight for a sample at normalized distance rBar (distance divided by
// the influence radius). It falls smoothly from 1 at rBar=0 to 0 at rBar=1, and is 0 beyond.
func Weight(rBar float64) float64 {
	if rBar > 1 {
		return 0
	}
	// Rounding near rBar=1 may go slightly negative.
	return max(0, 1-3*rBar*rBar+2*rBar*rBar*rBar)
}

// Reconstruct returns the estimated height at the x, y position of p, using samples from g
// within radius rp. The z value of p is ignored. Returns nil when no sample has weight at p.
func Reconstruct(p r3.Vec, rp float64, g *grid.Grid) *float64 {
	center := g.CellAt(p.X, p.Y)
	p.Z = 0

	var hx, sx float64
	for dr := RowMin; dr <= RowMax; dr++ {
		for dc := ColMin; dc <= ColMax; dc++ {
			neighbor := grid.Cell{Col: center.Col + dc, Row: center.Row + dr}
			if !g.Contains(neighbor) {
				continue
			}
			rBar := r3.Norm(r3.Sub(p, g.World(neighbor))) / rp
			omega := Weight(rBar)
			if omega == 0 {
				continue
			}
			hx += g.Height(neighbor) * omega
			sx += omega
		}
	}

	if sx == 0 || math.IsNaN(sx) {
		return nil
	}
	z := hx / sx
	return &z
}
