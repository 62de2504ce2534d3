package cam

import "log/slog"

// plug closes the gaps left between consecutive segments of a resolved
// contour. Gaps up to GapTolerance are closed by moving the end of an
// adjacent line, or by a short bridging line when neither neighbour is a
// line. Larger gaps are bridged as well but reported, since they point at
// an inconsistency upstream.
func plug(c Contour, log *slog.Logger) Contour {
	n := len(c)
	if n == 0 {
		return c
	}
	segs := make(Contour, n)
	copy(segs, c)
	bridges := make(map[int]Line)
	for i := range segs {
		j := (i + 1) % n
		a, b := segs[i], segs[j]
		gap := a.End().Distance(b.Start())
		if gap <= Epsilon {
			continue
		}
		if gap > GapTolerance {
			log.Warn("cam: gap in resolved contour exceeds tolerance",
				"gap", gap,
				"x", a.End().X, "y", a.End().Y)
			bridges[i] = Line{P0: a.End(), P1: b.Start()}
			continue
		}
		if l, ok := a.(Line); ok && i != j && l.P0.Distance(b.Start()) > Epsilon {
			segs[i] = Line{P0: l.P0, P1: b.Start()}
			continue
		}
		if l, ok := b.(Line); ok && i != j && a.End().Distance(l.P1) > Epsilon {
			segs[j] = Line{P0: a.End(), P1: l.P1}
			continue
		}
		bridges[i] = Line{P0: a.End(), P1: b.Start()}
	}
	if len(bridges) == 0 {
		return segs
	}
	out := make(Contour, 0, n+len(bridges))
	for i, s := range segs {
		out = append(out, s)
		if l, ok := bridges[i]; ok {
			out = append(out, l)
		}
	}
	return out
}
