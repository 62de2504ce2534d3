package cam

import (
	"math"

	"github.com/golang/geo/r2"
)

// Arc is a circular arc around Center. Angle is the polar angle of the
// start point and Span the signed sweep: positive spans run
// counter-clockwise, negative spans clockwise.
type Arc struct {
	Center Point
	Radius float64
	Angle  float64
	Span   float64
}

// NewArc creates an arc with its start angle normalised to (-pi, pi].
func NewArc(center Point, radius, angle, span float64) Arc {
	return Arc{Center: center, Radius: radius, Angle: NormAngle(angle), Span: span}
}

func (Arc) isSegment() {}

// Start returns the first point of the arc.
func (a Arc) Start() Point { return Polar(a.Center, a.Radius, a.Angle) }

// End returns the last point of the arc.
func (a Arc) End() Point { return Polar(a.Center, a.Radius, a.Angle+a.Span) }

// direction is +1 for counter-clockwise arcs and -1 for clockwise ones.
func (a Arc) direction() float64 {
	if a.Span < 0 {
		return -1
	}
	return 1
}

// StartTangent returns the direction of travel at the start point.
func (a Arc) StartTangent() float64 {
	return NormAngle(a.Angle + a.direction()*math.Pi/2)
}

// EndTangent returns the direction of travel at the end point.
func (a Arc) EndTangent() float64 {
	return NormAngle(a.Angle + a.Span + a.direction()*math.Pi/2)
}

// Length returns the arc length.
func (a Arc) Length() float64 {
	return math.Abs(a.Span) * a.Radius
}

// PointAt returns the point at arc-length position s from the start.
func (a Arc) PointAt(s float64) Point {
	n := a.Length()
	if n <= 0 {
		return a.Start()
	}
	return Polar(a.Center, a.Radius, a.Angle+a.Span*s/n)
}

// Cut returns the sub-arc between arc-length positions from and to.
// A zero-length arc is returned unchanged.
func (a Arc) Cut(from, to float64) Segment {
	n := a.Length()
	if n <= 0 {
		return a
	}
	from = math.Max(from, 0)
	to = math.Min(to, n)
	if to < from {
		to = from
	}
	return Arc{
		Center: a.Center,
		Radius: a.Radius,
		Angle:  a.Angle + a.Span*from/n,
		Span:   a.Span * (to - from) / n,
	}
}

// Reversed returns the arc traversed in the opposite direction.
func (a Arc) Reversed() Segment {
	return Arc{Center: a.Center, Radius: a.Radius, Angle: NormAngle(a.Angle + a.Span), Span: -a.Span}
}

// sweepTo returns the angular distance from the start angle to theta,
// measured in the direction of travel, in [0, 2pi).
func (a Arc) sweepTo(theta float64) float64 {
	if a.Span < 0 {
		return positiveAngle(a.Angle - theta)
	}
	return positiveAngle(theta - a.Angle)
}

// InArc reports whether the polar angle theta lies within the arc's sweep.
func (a Arc) InArc(theta float64) bool {
	if a.Span == 0 {
		return false
	}
	d := a.sweepTo(theta)
	return d <= math.Abs(a.Span)+AngleEpsilon || d >= 2*math.Pi-AngleEpsilon
}

// containsPoint reports whether p, assumed to lie on the circle, lies on
// the arc. Points within Epsilon of an endpoint always count.
func (a Arc) containsPoint(p Point) bool {
	if Coincident(p, a.Start()) || Coincident(p, a.End()) {
		return true
	}
	return a.InArc(p.Sub(a.Center).Angle())
}

// DistanceTo returns the distance from p to the closest point of the arc.
func (a Arc) DistanceTo(p Point) float64 {
	v := p.Sub(a.Center)
	if v.Length() > 0 && a.InArc(v.Angle()) {
		return math.Abs(v.Length() - a.Radius)
	}
	return math.Min(p.Distance(a.Start()), p.Distance(a.End()))
}

// Bounds returns the tight bounding box, including the axis extremes the
// arc passes through.
func (a Arc) Bounds() r2.Rect {
	r := r2.RectFromPoints(a.Start().r2(), a.End().r2())
	for _, theta := range [...]float64{0, math.Pi / 2, math.Pi, -math.Pi / 2} {
		if a.InArc(theta) {
			r = r.AddPoint(Polar(a.Center, a.Radius, theta).r2())
		}
	}
	return r
}

// ArcFromTangents constructs the arc that leaves p1 in direction t1 and
// arrives at p2 in direction t2. It reports false when no such arc exists,
// for example when the tangents are parallel or the points are not
// equidistant from the implied centre.
func ArcFromTangents(p1, p2 Point, t1, t2 float64) (Arc, bool) {
	n1 := Polar(Point{}, 1, t1).Perp()
	n2 := Polar(Point{}, 1, t2).Perp()
	d := n1.Sub(n2)
	dd := d.Dot(d)
	if dd < 1e-12 {
		return Arc{}, false
	}
	chord := p2.Sub(p1)
	// centre = p1 + rho*n1 = p2 + rho*n2, rho > 0 for a left-turning arc
	rho := chord.Dot(d) / dd
	if chord.Sub(d.Mul(rho)).Length() > JoinTolerance {
		return Arc{}, false
	}
	if math.Abs(rho) < Epsilon {
		return Arc{}, false
	}
	c := p1.Add(n1.Mul(rho))
	span := NormAngle(t2 - t1)
	if rho > 0 && span < 0 {
		span += 2 * math.Pi
	} else if rho < 0 && span > 0 {
		span -= 2 * math.Pi
	}
	return NewArc(c, math.Abs(rho), p1.Sub(c).Angle(), span), true
}
