// Package surface measures the length of the ground surface along a straight overhead path
// between two grid cells, and compares it between two elevation snapshots.
package surface

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/fornellas/surfdist/grid"
	"github.com/fornellas/surfdist/heightfield"
	"github.com/fornellas/surfdist/quadrature"
)

var (
	// ErrDegeneratePath is returned for endpoints that are the same cell or neighbors.
	ErrDegeneratePath = errors.New("endpoints must not be the same or adjacent cells")
	// ErrZeroWeight is returned when no grid sample has kernel weight at a path point.
	ErrZeroWeight = errors.New("no grid sample within influence radius")
	// ErrConfigMismatch is returned when comparing grids of different geometry.
	ErrConfigMismatch = errors.New("grid configurations differ")
)

// Comparison holds the surface distance between two cells before and after a change.
type Comparison struct {
	// Surface distance over the pre grid.
	Pre float64
	// Surface distance over the post grid.
	Post float64
	// Post - Pre.
	Delta float64
	// Number of quadrature segments along the path.
	Segments int
	// Planar length of each segment.
	SegmentLength float64
}

func (c Comparison) String() string {
	return fmt.Sprintf("pre=%f post=%f delta=%f", c.Pre, c.Post, c.Delta)
}

func checkEndpoints(cfg grid.Config, a, b grid.Cell) error {
	if err := cfg.Validate(a); err != nil {
		return fmt.Errorf("endpoint A: %w", err)
	}
	if err := cfg.Validate(b); err != nil {
		return fmt.Errorf("endpoint B: %w", err)
	}
	if a.Adjacent(b) {
		return fmt.Errorf("%s to %s: %w", a, b, ErrDegeneratePath)
	}
	return nil
}

// fill returns a copy of path with heights from g: direct lookup at the endpoints a and b,
// kernel reconstruction everywhere else.
func fill(path []r3.Vec, a, b grid.Cell, g *grid.Grid) ([]r3.Vec, error) {
	rp := g.Radius()
	points := make([]r3.Vec, len(path))
	copy(points, path)

	last := len(points) - 1
	points[0].Z = g.Height(a)
	points[last].Z = g.Height(b)
	for i := 1; i < last; i++ {
		z := heightfield.Reconstruct(points[i], rp, g)
		if z == nil {
			return nil, fmt.Errorf("point %d (%.3f, %.3f): %w", i, points[i].X, points[i].Y, ErrZeroWeight)
		}
		points[i].Z = *z
	}
	return points, nil
}

// Length returns the sum of the 3-D distances between consecutive points.
func Length(points []r3.Vec) float64 {
	if len(points) < 2 {
		return 0
	}
	segments := make([]float64, len(points)-1)
	for i := 1; i < len(points); i++ {
		segments[i-1] = r3.Norm(r3.Sub(points[i], points[i-1]))
	}
	return floats.Sum(segments)
}

// Profile returns the path between the centers of cells a and b, with heights from g.
func Profile(a, b grid.Cell, g *grid.Grid) ([]r3.Vec, error) {
	if err := checkEndpoints(g.Config, a, b); err != nil {
		return nil, err
	}
	return fill(quadrature.Build(g.Config, a, b), a, b, g)
}

// Distance returns the length of the ground surface of g along the straight path between the
// centers of cells a and b.
func Distance(a, b grid.Cell, g *grid.Grid) (float64, error) {
	points, err := Profile(a, b, g)
	if err != nil {
		return 0, err
	}
	return Length(points), nil
}

// Compare measures the surface distance between cells a and b over both pre and post. Both
// measurements use the same quadrature points.
func Compare(a, b grid.Cell, pre, post *grid.Grid) (*Comparison, error) {
	if pre.Config != post.Config {
		return nil, fmt.Errorf("%w: pre %+v, post %+v", ErrConfigMismatch, pre.Config, post.Config)
	}
	if err := checkEndpoints(pre.Config, a, b); err != nil {
		return nil, err
	}

	path := quadrature.Build(pre.Config, a, b)
	segments := len(path) - 1

	prePoints, err := fill(path, a, b, pre)
	if err != nil {
		return nil, fmt.Errorf("pre: %w", err)
	}
	postPoints, err := fill(path, a, b, post)
	if err != nil {
		return nil, fmt.Errorf("post: %w", err)
	}

	c := &Comparison{
		Pre:           Length(prePoints),
		Post:          Length(postPoints),
		Segments:      segments,
		SegmentLength: r3.Norm(r3.Sub(path[segments], path[0])) / float64(segments),
	}
	c.Delta = c.Post - c.Pre
	return c, nil
}
