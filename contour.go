package cam

import (
	"math"

	"github.com/golang/geo/r2"
)

// Contour is an ordered chain of segments. A closed contour is read
// cyclically: the last segment ends where the first one starts.
type Contour []Segment

// Polygon returns the closed contour through the given points.
func Polygon(points ...Point) Contour {
	if len(points) < 2 {
		return nil
	}
	c := make(Contour, 0, len(points))
	for i, p := range points {
		q := points[(i+1)%len(points)]
		if Coincident(p, q) {
			continue
		}
		c = append(c, Line{P0: p, P1: q})
	}
	return c
}

// Rect returns the counter-clockwise rectangle with corner (x, y) and the
// given size.
func Rect(x, y, w, h float64) Contour {
	return Polygon(Pt(x, y), Pt(x+w, y), Pt(x+w, y+h), Pt(x, y+h))
}

// Circle returns a counter-clockwise circle made of two half arcs.
func Circle(center Point, r float64) Contour {
	return Contour{
		NewArc(center, r, 0, math.Pi),
		NewArc(center, r, math.Pi, math.Pi),
	}
}

// RoundedRect returns a counter-clockwise rectangle whose corners are
// quarter arcs of radius r.
func RoundedRect(x, y, w, h, r float64) Contour {
	r = math.Min(r, math.Min(w, h)/2)
	if r <= 0 {
		return Rect(x, y, w, h)
	}
	c := Contour{
		Line{P0: Pt(x+r, y), P1: Pt(x+w-r, y)},
		NewArc(Pt(x+w-r, y+r), r, -math.Pi/2, math.Pi/2),
		Line{P0: Pt(x+w, y+r), P1: Pt(x+w, y+h-r)},
		NewArc(Pt(x+w-r, y+h-r), r, 0, math.Pi/2),
		Line{P0: Pt(x+w-r, y+h), P1: Pt(x+r, y+h)},
		NewArc(Pt(x+r, y+h-r), r, math.Pi/2, math.Pi/2),
		Line{P0: Pt(x, y+h-r), P1: Pt(x, y+r)},
		NewArc(Pt(x+r, y+r), r, math.Pi, math.Pi/2),
	}
	out := c[:0]
	for _, s := range c {
		if s.Length() > Epsilon {
			out = append(out, s)
		}
	}
	return out
}

// Start returns the start point of the first segment.
func (c Contour) Start() Point {
	if len(c) == 0 {
		return Point{}
	}
	return c[0].Start()
}

// End returns the end point of the last segment.
func (c Contour) End() Point {
	if len(c) == 0 {
		return Point{}
	}
	return c[len(c)-1].End()
}

// Length returns the total arc length of the contour.
func (c Contour) Length() float64 {
	var n float64
	for _, s := range c {
		n += s.Length()
	}
	return n
}

// IsClosed reports whether every segment ends where the next one starts,
// including the wrap from the last segment to the first, within tol.
func (c Contour) IsClosed(tol float64) bool {
	if len(c) == 0 {
		return false
	}
	for i, s := range c {
		if !s.End().Approx(c[(i+1)%len(c)].Start(), tol) {
			return false
		}
	}
	return true
}

// Reversed returns the contour traversed in the opposite direction.
func (c Contour) Reversed() Contour {
	out := make(Contour, len(c))
	for i, s := range c {
		out[len(c)-1-i] = s.Reversed()
	}
	return out
}

// Cut returns the open sub-path between arc-length positions from and to,
// measured from the start of the first segment. The result is nil when the
// range does not overlap the contour.
func (c Contour) Cut(from, to float64) Contour {
	var out Contour
	var total float64
	for _, s := range c {
		n := s.Length()
		start := total
		if start > to {
			break
		}
		end := total + n
		total = end
		if end < from {
			continue
		}
		piece := s.Cut(from-start, to-start)
		if piece.Length() > Epsilon {
			out = append(out, piece)
		}
	}
	return out
}

// Bounds returns the bounding box of the contour.
func (c Contour) Bounds() r2.Rect {
	r := r2.EmptyRect()
	for _, s := range c {
		r = r.Union(s.Bounds())
	}
	return r
}

// DistanceTo returns the distance from p to the nearest segment.
func (c Contour) DistanceTo(p Point) float64 {
	d := math.Inf(1)
	for _, s := range c {
		d = math.Min(d, s.DistanceTo(p))
	}
	return d
}
