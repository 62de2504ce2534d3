package cam

import (
	"log/slog"
	"math"
)

// Orientation describes the winding direction of a closed contour.
type Orientation int

const (
	// Degenerate is reported for empty or zero-length contours.
	Degenerate Orientation = iota
	// CounterClockwise contours turn left: total turning +2pi.
	CounterClockwise
	// Clockwise contours turn right: total turning -2pi.
	Clockwise
)

// String returns the orientation name.
func (o Orientation) String() string {
	switch o {
	case CounterClockwise:
		return "CounterClockwise"
	case Clockwise:
		return "Clockwise"
	default:
		return "Degenerate"
	}
}

// TurningAngle returns the total signed turning of the contour read
// cyclically: the span of every arc plus the turn at every joint, each
// joint turn normalised to (-pi, pi].
func (c Contour) TurningAngle() float64 {
	var angle float64
	for i, s := range c {
		if a, ok := s.(Arc); ok {
			angle += a.Span
		}
		next := c[(i+1)%len(c)]
		angle += NormAngle(next.StartTangent() - s.EndTangent())
	}
	return angle
}

// Orientation reports whether the contour runs clockwise or
// counter-clockwise. A contour whose turning does not add up to a full turn
// is not simple or not closed; that is logged and the sign of the turning
// is still used.
func (c Contour) Orientation() Orientation {
	return c.orientation(Logger())
}

func (c Contour) orientation(log *slog.Logger) Orientation {
	if len(c) == 0 || c.Length() <= Epsilon {
		return Degenerate
	}
	angle := c.TurningAngle()
	if math.Abs(math.Abs(angle)-2*math.Pi) > 1e-6 {
		log.Warn("cam: contour is not a simple closed shape",
			"turning_deg", angle*180/math.Pi,
			"segments", len(c))
	}
	switch {
	case angle > AngleEpsilon:
		return CounterClockwise
	case angle < -AngleEpsilon:
		return Clockwise
	}
	// Figure-of-eight shapes turn by zero; fall back to the area sign.
	if c.Area() < 0 {
		return Clockwise
	}
	return CounterClockwise
}
