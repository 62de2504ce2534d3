package cam

import "log/slog"

// Method selects the boundary resolution algorithm used by Offset.
type Method int

const (
	// MethodExact splits the raw offset at its crossings and resolves the
	// boundary from edge winding numbers. Lines and arcs are preserved.
	MethodExact Method = iota

	// MethodTessellate flattens the raw offset into a polygon and extracts
	// the boundary with a polygon clipper. The output contains only lines.
	// Use it when MethodExact reports a numerical failure for a shape.
	MethodTessellate
)

// String returns the method name.
func (m Method) String() string {
	switch m {
	case MethodTessellate:
		return "tessellate"
	default:
		return "exact"
	}
}

// OffsetOption configures a single Offset call.
// Use functional options to customize resolution behavior.
//
// Example:
//
//	// Default: exact method, positive fill rule
//	rings, err := cam.Offset(c, -1)
//
//	// Polygon fallback with a finer flattening tolerance
//	rings, err := cam.Offset(c, -1,
//		cam.WithMethod(cam.MethodTessellate),
//		cam.WithTolerance(0.001))
type OffsetOption func(*offsetOptions)

// offsetOptions holds the per-call configuration.
type offsetOptions struct {
	rule      FillRule
	method    Method
	tolerance float64
	log       *slog.Logger
}

// defaultOptions returns the default offset options.
func defaultOptions() offsetOptions {
	return offsetOptions{
		rule:      FillPositive,
		method:    MethodExact,
		tolerance: DefaultFlattenTolerance,
		log:       nil, // resolved to Logger() at call time
	}
}

// WithFillRule sets the winding rule that decides which edges bound the
// result. The tessellation method uses the matching polygon fill type.
func WithFillRule(r FillRule) OffsetOption {
	return func(o *offsetOptions) {
		o.rule = r
	}
}

// WithMethod selects the resolution algorithm.
func WithMethod(m Method) OffsetOption {
	return func(o *offsetOptions) {
		o.method = m
	}
}

// WithTolerance sets the maximum chord deviation used when arcs are
// flattened by MethodTessellate. Non-positive values are ignored.
func WithTolerance(tol float64) OffsetOption {
	return func(o *offsetOptions) {
		if tol > 0 {
			o.tolerance = tol
		}
	}
}

// WithLogger routes the diagnostics of one call to l instead of the
// package logger set with SetLogger.
func WithLogger(l *slog.Logger) OffsetOption {
	return func(o *offsetOptions) {
		o.log = l
	}
}
