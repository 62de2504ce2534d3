package cam

import "math"

// Intersect returns the points where two segments meet. Parallel
// overlapping lines report the endpoints that lie on the other line, and
// overlapping arcs of the same circle report the shared endpoints, so
// callers can split both segments there.
func Intersect(a, b Segment) []Point {
	switch a := a.(type) {
	case Line:
		switch b := b.(type) {
		case Line:
			return intersectLines(a, b)
		case Arc:
			return intersectLineArc(a, b)
		}
	case Arc:
		switch b := b.(type) {
		case Line:
			return intersectLineArc(b, a)
		case Arc:
			return intersectArcs(a, b)
		}
	}
	return nil
}

// appendUnique appends p unless an equal point is already present.
func appendUnique(pts []Point, p Point) []Point {
	for _, q := range pts {
		if Coincident(p, q) {
			return pts
		}
	}
	return append(pts, p)
}

func intersectLines(a, b Line) []Point {
	d1 := a.P1.Sub(a.P0)
	d2 := b.P1.Sub(b.P0)
	n1 := d1.Length()
	n2 := d2.Length()
	if n1 <= Epsilon || n2 <= Epsilon {
		return nil
	}
	denom := d1.Cross(d2)
	if math.Abs(denom) <= AngleEpsilon*n1*n2 {
		// Parallel: only collinear overlap produces points.
		var pts []Point
		for _, p := range [...]Point{b.P0, b.P1} {
			if a.DistanceTo(p) <= Epsilon {
				pts = appendUnique(pts, p)
			}
		}
		for _, p := range [...]Point{a.P0, a.P1} {
			if b.DistanceTo(p) <= Epsilon {
				pts = appendUnique(pts, p)
			}
		}
		return pts
	}
	w := b.P0.Sub(a.P0)
	t := w.Cross(d2) / denom
	u := w.Cross(d1) / denom
	et := Epsilon / n1
	eu := Epsilon / n2
	if t < -et || t > 1+et || u < -eu || u > 1+eu {
		return nil
	}
	return []Point{a.Eval(math.Max(0, math.Min(1, t)))}
}

func intersectLineArc(l Line, a Arc) []Point {
	d := l.P1.Sub(l.P0)
	n := d.Length()
	if n <= Epsilon || a.Radius <= 0 {
		return nil
	}
	u := d.Mul(1 / n)
	// foot of the perpendicular from the centre
	v := a.Center.Sub(l.P0)
	along := v.Dot(u)
	across := u.Cross(v)
	if math.Abs(across) > a.Radius+Epsilon {
		return nil
	}
	third := math.Sqrt(math.Max(0, a.Radius*a.Radius-across*across))
	var pts []Point
	for _, s := range [...]float64{along - third, along + third} {
		if s < -Epsilon || s > n+Epsilon {
			continue
		}
		p := l.P0.Add(u.Mul(math.Max(0, math.Min(n, s))))
		if a.containsPoint(p) {
			pts = appendUnique(pts, p)
		}
	}
	return pts
}

func intersectArcs(a, b Arc) []Point {
	if a.Radius <= 0 || b.Radius <= 0 {
		return nil
	}
	dist := a.Center.Distance(b.Center)
	if dist <= Epsilon {
		if math.Abs(a.Radius-b.Radius) > Epsilon {
			return nil
		}
		// Same circle: report shared endpoints of the overlap.
		var pts []Point
		for _, p := range [...]Point{b.Start(), b.End()} {
			if a.containsPoint(p) {
				pts = appendUnique(pts, p)
			}
		}
		for _, p := range [...]Point{a.Start(), a.End()} {
			if b.containsPoint(p) {
				pts = appendUnique(pts, p)
			}
		}
		return pts
	}
	if dist > a.Radius+b.Radius+Epsilon || dist < math.Abs(a.Radius-b.Radius)-Epsilon {
		return nil
	}
	along := (a.Radius*a.Radius - b.Radius*b.Radius + dist*dist) / (2 * dist)
	across2 := a.Radius*a.Radius - along*along
	mid := a.Center.Lerp(b.Center, along/dist)
	h := math.Sqrt(math.Max(0, across2))
	off := b.Center.Sub(a.Center).Mul(1 / dist).Perp().Mul(h)
	var pts []Point
	for _, p := range [...]Point{mid.Add(off), mid.Sub(off)} {
		if a.containsPoint(p) && b.containsPoint(p) {
			pts = appendUnique(pts, p)
		}
	}
	return pts
}
