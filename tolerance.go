package cam

// Numerical tolerances shared by the offsetting stages.
const (
	// Epsilon is the distance below which two points are the same point.
	Epsilon = 1e-9

	// AngleEpsilon is the tolerance for angular comparisons in radians.
	AngleEpsilon = 1e-9

	// Quantum is the grid used to merge segment endpoints into graph
	// vertices. It absorbs the jitter left by intersection arithmetic.
	Quantum = 1e-6

	// JoinTolerance is the gap between consecutive offset pieces above which
	// a corner connector is inserted. Smaller gaps are bridged by a line.
	JoinTolerance = 1e-4

	// GapTolerance is the largest gap the gap plugger closes silently.
	GapTolerance = 1e-3

	// DefaultFlattenTolerance is the maximum sagitta used when arcs are
	// flattened into chords.
	DefaultFlattenTolerance = 0.01
)
