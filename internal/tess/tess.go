// Package tess extracts the boundary of self-overlapping polygons with a
// Vatti polygon clipper. It is the robust fallback of the offset engine:
// arcs are flattened before they reach this package, so everything here is
// polygonal.
package tess

import (
	"errors"
	"fmt"
	"math"

	clipper "github.com/ctessum/go.clipper"
)

// Point is a 2D point.
// This is an internal copy to avoid import cycles with the root package.
type Point struct {
	X, Y float64
}

// Rule selects how overlapping areas are counted.
type Rule int

const (
	// Positive fills areas with winding number >= 1.
	Positive Rule = iota
	// NonZero fills areas with non-zero winding number.
	NonZero
)

// Scale converts coordinates to the clipper's integer grid. One unit is
// one micro-unit of the input, matching the vertex quantum of the exact
// resolver.
const Scale = 1e6

// ErrFailed is returned when the clipper cannot produce a result.
var ErrFailed = errors.New("tess: clipper failed")

// Boundary returns the outlines of the area covered by the polygons under
// rule. Outer outlines are counter-clockwise and holes clockwise, so the
// filled area is always on the left of travel.
func Boundary(polys [][]Point, rule Rule) (out [][]Point, err error) {
	defer func() {
		// The clipper panics on internal invariant violations.
		if r := recover(); r != nil {
			out, err = nil, fmt.Errorf("%w: %v", ErrFailed, r)
		}
	}()

	c := clipper.NewClipper(clipper.IoNone)
	added := 0
	for _, poly := range polys {
		path := toPath(poly)
		if len(path) < 3 {
			continue
		}
		if c.AddPath(path, clipper.PtSubject, true) {
			added++
		}
	}
	if added == 0 {
		return nil, nil
	}

	fill := clipper.PftPositive
	if rule == NonZero {
		fill = clipper.PftNonZero
	}
	solution, ok := c.Execute1(clipper.CtUnion, fill, fill)
	if !ok {
		return nil, ErrFailed
	}
	for _, path := range solution {
		if len(path) < 3 {
			continue
		}
		out = append(out, fromPath(path))
	}
	return out, nil
}

func toPath(poly []Point) clipper.Path {
	path := make(clipper.Path, 0, len(poly))
	var last *clipper.IntPoint
	for _, p := range poly {
		ip := &clipper.IntPoint{
			X: clipper.CInt(math.Round(p.X * Scale)),
			Y: clipper.CInt(math.Round(p.Y * Scale)),
		}
		if last != nil && last.X == ip.X && last.Y == ip.Y {
			continue
		}
		path = append(path, ip)
		last = ip
	}
	return path
}

func fromPath(path clipper.Path) []Point {
	out := make([]Point, len(path))
	for i, ip := range path {
		out[i] = Point{X: float64(ip.X) / Scale, Y: float64(ip.Y) / Scale}
	}
	return out
}
