package cam

import "math"

// Contour operations for area calculation, winding number, containment
// testing and flattening.

// Area returns the signed area enclosed by the contour.
// Positive for counter-clockwise contours, negative for clockwise ones.
// Arcs contribute exactly (Green's theorem), not through their chords.
func (c Contour) Area() float64 {
	var area float64
	for _, s := range c {
		switch s := s.(type) {
		case Line:
			area += lineArea(s.P0, s.P1)
		case Arc:
			area += arcArea(s)
		}
	}
	return area
}

// lineArea computes the contribution of a line segment to the signed area.
// Uses the shoelace formula: 0.5 * (x0*y1 - x1*y0)
func lineArea(p0, p1 Point) float64 {
	return 0.5 * (p0.X*p1.Y - p1.X*p0.Y)
}

// arcArea integrates 0.5*(x dy - y dx) along the arc.
func arcArea(a Arc) float64 {
	t0 := a.Angle
	t1 := a.Angle + a.Span
	r := a.Radius
	return 0.5 * (r*a.Center.X*(math.Sin(t1)-math.Sin(t0)) -
		r*a.Center.Y*(math.Cos(t1)-math.Cos(t0)) +
		r*r*a.Span)
}

// Winding returns the winding number of a point relative to the contour.
// 0 = outside, non-zero = inside (for non-zero fill rule).
// Uses ray casting with a horizontal ray to the right.
func (c Contour) Winding(pt Point) int {
	var winding int
	for _, s := range c {
		winding += segmentWinding(s, pt)
	}
	return winding
}

// Contains tests if a point is inside the contour using the non-zero rule.
func (c Contour) Contains(pt Point) bool {
	return c.Winding(pt) != 0
}

// segmentWinding returns the signed number of times s crosses the ray
// from pt towards +X. Upward crossings count +1.
func segmentWinding(s Segment, pt Point) int {
	switch s := s.(type) {
	case Line:
		return lineWinding(s.P0, s.P1, pt)
	case Arc:
		return arcWinding(s, pt)
	}
	return 0
}

// lineWinding computes the winding contribution of a line segment.
func lineWinding(p0, p1, pt Point) int {
	if p0.Y <= pt.Y && p1.Y > pt.Y {
		// Upward crossing
		if isLeft(p0, p1, pt) > 0 {
			return 1
		}
	} else if p0.Y > pt.Y && p1.Y <= pt.Y {
		// Downward crossing
		if isLeft(p0, p1, pt) < 0 {
			return -1
		}
	}
	return 0
}

// isLeft returns positive if pt is left of line p0-p1, negative if right, 0 if on.
func isLeft(p0, p1, pt Point) float64 {
	return (p1.X-p0.X)*(pt.Y-p0.Y) - (pt.X-p0.X)*(p1.Y-p0.Y)
}

// arcWinding computes the winding contribution of an arc. Crossings at the
// arc's endpoints follow the same half-open convention as lineWinding:
// upward crossings count at the start, downward ones at the end.
func arcWinding(a Arc, pt Point) int {
	dy := pt.Y - a.Center.Y
	if a.Radius <= 0 || math.Abs(dy) >= a.Radius {
		return 0
	}
	dx := math.Sqrt(a.Radius*a.Radius - dy*dy)
	span := math.Abs(a.Span)
	var winding int
	for _, x := range [2]float64{a.Center.X + dx, a.Center.X - dx} {
		if x <= pt.X {
			continue
		}
		theta := math.Atan2(dy, x-a.Center.X)
		u := a.sweepTo(theta)
		if u > span+AngleEpsilon && u < 2*math.Pi-AngleEpsilon {
			continue
		}
		atStart := u < AngleEpsilon || u > 2*math.Pi-AngleEpsilon
		atEnd := math.Abs(u-span) < AngleEpsilon
		// vertical velocity of travel at theta
		up := math.Cos(theta)*a.direction() > 0
		switch {
		case atStart && atEnd:
			// full circle seam: one crossing
		case atStart && !up:
			continue
		case atEnd && up:
			continue
		}
		if up {
			winding++
		} else {
			winding--
		}
	}
	return winding
}

// Flatten converts the contour into a closed polyline. Arcs are replaced by
// chords whose sagitta does not exceed tolerance; the chord count grows
// with arc length. The first point is not repeated at the end.
func (c Contour) Flatten(tolerance float64) []Point {
	if len(c) == 0 {
		return nil
	}
	if tolerance <= 0 {
		tolerance = DefaultFlattenTolerance
	}
	points := []Point{c[0].Start()}
	for _, s := range c {
		switch s := s.(type) {
		case Line:
			points = append(points, s.P1)
		case Arc:
			points = append(points, flattenArc(s, tolerance)...)
		}
	}
	if len(points) > 1 && Coincident(points[0], points[len(points)-1]) {
		points = points[:len(points)-1]
	}
	return points
}

// flattenArc returns the chord end points of the arc, excluding its start.
func flattenArc(a Arc, tolerance float64) []Point {
	n := 1
	if a.Radius > tolerance {
		chord := 2 * math.Sqrt(tolerance*(2*a.Radius-tolerance))
		n = int(math.Ceil(a.Length() / chord))
	}
	n = max(n, int(math.Ceil(math.Abs(a.Span)/(math.Pi/2))), 1)
	points := make([]Point, 0, n)
	for i := 1; i <= n; i++ {
		points = append(points, Polar(a.Center, a.Radius, a.Angle+a.Span*float64(i)/float64(n)))
	}
	return points
}
