package cam

import "errors"

var (
	// ErrUnbalancedVertex is returned when the winding graph has a vertex
	// whose incoming and outgoing edge weights do not cancel. The input was
	// numerically inconsistent; retrying with MethodTessellate may help.
	ErrUnbalancedVertex = errors.New("cam: unbalanced vertex in winding graph")

	// ErrInconsistentWinding is returned when an edge is reached twice
	// during winding propagation with different winding numbers.
	ErrInconsistentWinding = errors.New("cam: inconsistent winding numbers")

	// ErrTessellation is returned when the polygon fallback fails.
	ErrTessellation = errors.New("cam: tessellation failed")

	// ErrInvalidRadius is returned for NaN or infinite offset distances.
	ErrInvalidRadius = errors.New("cam: invalid offset radius")
)
