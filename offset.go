package cam

import (
	"fmt"
	"log/slog"
	"math"
)

// Offset returns the boundary a tool centre must follow to stay at
// distance |r| from the contour. Positive r offsets outwards, negative r
// inwards, whatever the direction of the input. The result keeps the
// direction of the input contour.
//
// An empty result means the offset consumed the shape, or the input was
// degenerate. Offset is a pure function and safe to call concurrently.
//
// With MethodExact (the default) a numerically inconsistent intermediate
// graph is reported as ErrUnbalancedVertex or ErrInconsistentWinding;
// callers may retry with WithMethod(MethodTessellate).
func Offset(c Contour, r float64, opts ...OffsetOption) ([]Contour, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	log := o.log
	if log == nil {
		log = Logger()
	}
	if !isFinite(r) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRadius, r)
	}
	if len(c) == 0 || c.Length() <= Epsilon {
		return nil, nil
	}
	if !c.IsClosed(GapTolerance) {
		log.Warn("cam: offsetting an open contour",
			"gap", c.End().Distance(c.Start()))
	}

	src := c
	orient := c.orientation(log)
	switch orient {
	case Degenerate:
		return nil, nil
	case Clockwise:
		src = c.Reversed()
	}

	raw := parallel(src, -r, log)
	if len(raw) == 0 {
		return nil, nil
	}

	var rings []Contour
	var err error
	switch o.method {
	case MethodTessellate:
		rings, err = tessellate(raw, o.rule, o.tolerance, log)
	default:
		rings, err = resolveExact(raw, o.rule, log)
	}
	if err != nil {
		return nil, err
	}

	out := rings[:0]
	for _, ring := range rings {
		if ring.Length() <= Quantum || math.Abs(ring.Area()) <= Quantum*Quantum {
			continue
		}
		if orient == Clockwise {
			ring = ring.Reversed()
		}
		out = append(out, ring)
	}
	log.Debug("cam: offset done",
		"radius", r,
		"method", o.method.String(),
		"rule", o.rule.String(),
		"contours", len(out))
	if len(out) == 0 {
		return nil, nil
	}
	return out, nil
}

// resolveExact splits the raw offset at its crossings, keeps the edges the
// rule selects and closes the remaining gaps.
func resolveExact(raw Contour, rule FillRule, log *slog.Logger) ([]Contour, error) {
	split := splitCrossings(raw, log)
	rings, err := resolve(split, rule, log)
	if err != nil {
		return nil, err
	}
	for i, ring := range rings {
		rings[i] = plug(ring, log)
	}
	return rings, nil
}
