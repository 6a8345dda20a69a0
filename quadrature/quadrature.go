// Package quadrature places query points along the straight segment between two grid cells.
package quadrature

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/fornellas/surfdist/grid"
)

// SegmentCount returns the smallest number of equal segments length can be split into so that
// no segment is longer than rp.
func SegmentCount(length, rp float64) int {
	count := 1
	segmentLength := length
	for segmentLength > rp {
		count++
		segmentLength = length / float64(count)
	}
	return count
}

// Build returns the quadrature points between the centers of cells a and b: the center of a,
// evenly spaced interior points, then the center of b. Consecutive points are at most
// cfg.Radius() apart. All points are at zero height.
func Build(cfg grid.Config, a, b grid.Cell) []r3.Vec {
	start := cfg.World(a)
	end := cfg.World(b)

	delta := r3.Sub(end, start)
	length := r3.Norm(delta)
	count := SegmentCount(length, cfg.Radius())
	segmentLength := length / float64(count)

	points := make([]r3.Vec, 0, count+1)
	points = append(points, start)
	if count > 1 {
		direction := r3.Unit(delta)
		for i := 1; i < count; i++ {
			points = append(points, r3.Add(start, r3.Scale(segmentLength*float64(i), direction)))
		}
	}
	points = append(points, end)
	return points
}
