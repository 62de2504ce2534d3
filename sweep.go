package cam

import (
	"log/slog"
	"math"
	"sort"

	"github.com/golang/geo/r1"
	"github.com/golang/geo/r2"
)

// sweepItem is a segment as seen by the X sweep.
type sweepItem struct {
	index int
	x     r1.Interval
	box   r2.Rect
}

// splitCrossings finds every pairwise intersection between the segments
// and splits each segment at the points strictly inside it. Only segments
// whose X intervals overlap are tested: the items are swept in order of
// their left edge and an item leaves the active set once the sweep has
// passed its right edge.
func splitCrossings(segs []Segment, log *slog.Logger) []Segment {
	items := make([]sweepItem, len(segs))
	for i, s := range segs {
		box := s.Bounds().ExpandedByMargin(Epsilon)
		items[i] = sweepItem{index: i, x: box.X, box: box}
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].x.Lo < items[j].x.Lo
	})

	cuts := make([][]Point, len(segs))
	var active []sweepItem
	var tested, found int
	for _, it := range items {
		kept := active[:0]
		for _, a := range active {
			if a.x.Hi >= it.x.Lo {
				kept = append(kept, a)
			}
		}
		active = kept
		for _, a := range active {
			if !a.box.Intersects(it.box) {
				continue
			}
			tested++
			s1, s2 := segs[a.index], segs[it.index]
			for _, p := range Intersect(s1, s2) {
				found++
				if isInterior(s1, p) {
					cuts[a.index] = append(cuts[a.index], p)
				}
				if isInterior(s2, p) {
					cuts[it.index] = append(cuts[it.index], p)
				}
			}
		}
		active = append(active, it)
	}

	out := make([]Segment, 0, len(segs)+found)
	for i, s := range segs {
		if len(cuts[i]) == 0 {
			out = append(out, s)
			continue
		}
		out = append(out, splitAt(s, cuts[i])...)
	}
	log.Debug("cam: crossings eliminated",
		"segments", len(segs),
		"pairs_tested", tested,
		"intersections", found,
		"pieces", len(out))
	return out
}

// isInterior reports whether p lies on s away from both of its endpoints.
func isInterior(s Segment, p Point) bool {
	return !p.Approx(s.Start(), Quantum) && !p.Approx(s.End(), Quantum)
}

// splitAt cuts s at the given interior points, preserving direction.
func splitAt(s Segment, pts []Point) []Segment {
	switch s := s.(type) {
	case Line:
		sort.Slice(pts, func(i, j int) bool {
			return pts[i].Distance(s.P0) < pts[j].Distance(s.P0)
		})
		var out []Segment
		last := s.P0
		for _, p := range pts {
			if p.Approx(last, Quantum) {
				continue
			}
			out = append(out, Line{P0: last, P1: p})
			last = p
		}
		if !last.Approx(s.P1, Quantum) || len(out) == 0 {
			out = append(out, Line{P0: last, P1: s.P1})
		} else {
			// snap the final piece onto the true end point
			prev := out[len(out)-1].(Line)
			out[len(out)-1] = Line{P0: prev.P0, P1: s.P1}
		}
		return out
	case Arc:
		span := math.Abs(s.Span)
		sweeps := make([]float64, 0, len(pts))
		for _, p := range pts {
			u := s.sweepTo(p.Sub(s.Center).Angle())
			if u > span {
				u = span
			}
			sweeps = append(sweeps, u)
		}
		sort.Float64s(sweeps)
		dir := s.direction()
		minStep := Quantum / math.Max(s.Radius, Quantum)
		var out []Segment
		last := 0.0
		for _, u := range sweeps {
			if u-last <= minStep || span-u <= minStep {
				continue
			}
			out = append(out, Arc{Center: s.Center, Radius: s.Radius, Angle: s.Angle + dir*last, Span: dir * (u - last)})
			last = u
		}
		out = append(out, Arc{Center: s.Center, Radius: s.Radius, Angle: s.Angle + dir*last, Span: dir * (span - last)})
		return out
	}
	return []Segment{s}
}
