package cam

import (
	"log/slog"
	"math"
)

// piece is one offset segment together with the source vertex it starts
// from. Concave joins are routed through that vertex.
type piece struct {
	seg    Segment
	corner Point
}

// parallel returns the raw offset of a counter-clockwise contour: every
// segment moved by d along its left normal, with the joints stitched back
// together. Negative d moves a counter-clockwise contour outwards.
//
// Convex joints get a tangent-continuous arc. Concave joints are joined by
// two lines through the source vertex, which deliberately leaves a small
// reversed loop for the winding resolver to remove.
func parallel(c Contour, d float64, log *slog.Logger) Contour {
	pieces := make([]piece, 0, len(c))
	for _, s := range c {
		if seg, ok := offsetSegment(s, d); ok {
			pieces = append(pieces, piece{seg: seg, corner: s.Start()})
		}
	}
	if len(pieces) == 0 {
		return nil
	}

	out := make(Contour, 0, 2*len(pieces))
	var arcs, loops, fallbacks int
	for i, cur := range pieces {
		prev := pieces[(i+len(pieces)-1)%len(pieces)]
		p0, p1 := prev.seg.End(), cur.seg.Start()
		gap := p0.Distance(p1)
		if gap > Epsilon && gap <= JoinTolerance {
			out = append(out, Line{P0: p0, P1: p1})
		}
		if gap > JoinTolerance {
			turn := NormAngle(cur.seg.StartTangent() - prev.seg.EndTangent())
			convex := (d > 0 && turn < 0) || (d < 0 && turn > 0)
			switch {
			case convex:
				if a, ok := ArcFromTangents(p0, p1, prev.seg.EndTangent(), cur.seg.StartTangent()); ok {
					out = append(out, a)
					arcs++
					break
				}
				log.Warn("cam: no corner arc between offset segments, joining with a line",
					"x", cur.corner.X, "y", cur.corner.Y)
				out = append(out, Line{P0: p0, P1: p1})
				fallbacks++
			default:
				out = appendLine(out, p0, cur.corner)
				out = appendLine(out, cur.corner, p1)
				loops++
			}
		}
		out = append(out, cur.seg)
	}
	log.Debug("cam: raw offset",
		"distance", d,
		"segments", len(out),
		"corner_arcs", arcs,
		"corner_loops", loops,
		"corner_fallbacks", fallbacks)
	return out
}

// offsetSegment moves s by d along its left normal. An arc whose radius
// would vanish or turn negative degrades to the line between the moved end
// points; false is returned when nothing of the segment remains.
func offsetSegment(s Segment, d float64) (Segment, bool) {
	switch s := s.(type) {
	case Line:
		n := s.P1.Sub(s.P0).Normalize().Perp().Mul(d)
		return Line{P0: s.P0.Add(n), P1: s.P1.Add(n)}, s.Length() > Epsilon
	case Arc:
		// The centre lies on the left of a counter-clockwise arc.
		r := s.Radius + d
		if s.Span > 0 {
			r = s.Radius - d
		}
		if r > Epsilon {
			return Arc{Center: s.Center, Radius: r, Angle: s.Angle, Span: s.Span}, true
		}
		l := Line{
			P0: Polar(s.Center, r, s.Angle),
			P1: Polar(s.Center, r, s.Angle+s.Span),
		}
		return l, l.Length() > Epsilon
	}
	return s, false
}

// appendLine appends the line p0-p1 unless it has no length.
func appendLine(c Contour, p0, p1 Point) Contour {
	if p0.Distance(p1) <= Epsilon {
		return c
	}
	return append(c, Line{P0: p0, P1: p1})
}

// isFinite reports whether v is neither NaN nor infinite.
func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
