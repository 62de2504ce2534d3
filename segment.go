package cam

import (
	"math"

	"github.com/golang/geo/r2"
)

// Segment is a contour primitive: either a Line or an Arc.
//
// The set of implementations is closed; algorithms switch on the concrete
// type and handle both cases. All methods return new values and never
// mutate the receiver.
type Segment interface {
	// Start returns the first point of the segment.
	Start() Point
	// End returns the last point of the segment.
	End() Point
	// StartTangent returns the direction of travel at Start, in radians.
	StartTangent() float64
	// EndTangent returns the direction of travel at End, in radians.
	EndTangent() float64
	// Length returns the arc length of the segment.
	Length() float64
	// PointAt returns the point at arc-length position s from Start.
	PointAt(s float64) Point
	// Cut returns the portion between arc-length positions from and to,
	// clamped to [0, Length].
	Cut(from, to float64) Segment
	// DistanceTo returns the shortest distance from p to the segment.
	DistanceTo(p Point) float64
	// Reversed returns the same segment traversed End to Start.
	Reversed() Segment
	// Bounds returns the tight axis-aligned bounding box.
	Bounds() r2.Rect

	isSegment()
}

// Coincident reports whether two points are the same within Epsilon.
func Coincident(a, b Point) bool {
	return a.Approx(b, Epsilon)
}

// -------------------------------------------------------------------
// Line
// -------------------------------------------------------------------

// Line represents a line segment from P0 to P1.
type Line struct {
	P0, P1 Point
}

// NewLine creates a new line segment.
func NewLine(p0, p1 Point) Line {
	return Line{P0: p0, P1: p1}
}

func (Line) isSegment() {}

// Start returns P0.
func (l Line) Start() Point { return l.P0 }

// End returns P1.
func (l Line) End() Point { return l.P1 }

// StartTangent returns the direction of the line.
func (l Line) StartTangent() float64 { return l.P1.Sub(l.P0).Angle() }

// EndTangent returns the direction of the line.
func (l Line) EndTangent() float64 { return l.StartTangent() }

// Length returns the length of the line segment.
func (l Line) Length() float64 {
	return l.P0.Distance(l.P1)
}

// Eval evaluates the line at parameter t (0 to 1).
func (l Line) Eval(t float64) Point {
	return l.P0.Lerp(l.P1, t)
}

// PointAt returns the point at distance s from P0.
func (l Line) PointAt(s float64) Point {
	n := l.Length()
	if n <= 0 {
		return l.P0
	}
	return l.Eval(s / n)
}

// Midpoint returns the midpoint of the line.
func (l Line) Midpoint() Point {
	return l.Eval(0.5)
}

// Cut returns the part of the line between distances from and to.
// A zero-length line is returned unchanged.
func (l Line) Cut(from, to float64) Segment {
	n := l.Length()
	if n <= 0 {
		return l
	}
	from = math.Max(from, 0)
	to = math.Min(to, n)
	if to < from {
		to = from
	}
	return Line{P0: l.Eval(from / n), P1: l.Eval(to / n)}
}

// DistanceTo returns the distance from p to the closest point of the line.
func (l Line) DistanceTo(p Point) float64 {
	d := l.P1.Sub(l.P0)
	n2 := d.Dot(d)
	if n2 == 0 {
		return p.Distance(l.P0)
	}
	t := p.Sub(l.P0).Dot(d) / n2
	t = math.Max(0, math.Min(1, t))
	return p.Distance(l.Eval(t))
}

// Reversed returns the line traversed from P1 to P0.
func (l Line) Reversed() Segment {
	return Line{P0: l.P1, P1: l.P0}
}

// Bounds returns the bounding box of the line.
func (l Line) Bounds() r2.Rect {
	return r2.RectFromPoints(l.P0.r2(), l.P1.r2())
}

// midpointOf returns the point halfway along any segment.
func midpointOf(s Segment) Point {
	return s.PointAt(s.Length() / 2)
}

// curvature returns the signed curvature of a segment: zero for lines,
// positive for counter-clockwise arcs.
func curvature(s Segment) float64 {
	switch s := s.(type) {
	case Line:
		return 0
	case Arc:
		if s.Radius <= 0 {
			return 0
		}
		if s.Span < 0 {
			return -1 / s.Radius
		}
		return 1 / s.Radius
	}
	return 0
}
