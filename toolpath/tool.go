package toolpath

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidTool is returned for tools with a non-positive or non-finite
// diameter, or a stepover outside (0, 1].
var ErrInvalidTool = errors.New("toolpath: invalid tool")

// Tool describes the cutter.
type Tool struct {
	// Diameter of the cutter.
	Diameter float64

	// Stepover is the distance between pocket rings as a fraction of the
	// diameter. Zero selects DefaultStepover.
	Stepover float64
}

// DefaultStepover is used when Tool.Stepover is zero.
const DefaultStepover = 0.4

// Radius returns half the diameter.
func (t Tool) Radius() float64 { return t.Diameter / 2 }

// step returns the pocket ring spacing.
func (t Tool) step() float64 {
	s := t.Stepover
	if s == 0 {
		s = DefaultStepover
	}
	return s * t.Diameter
}

// Validate reports whether the tool can cut.
func (t Tool) Validate() error {
	if !(t.Diameter > 0) || math.IsInf(t.Diameter, 0) {
		return fmt.Errorf("%w: diameter %v", ErrInvalidTool, t.Diameter)
	}
	if t.Stepover < 0 || t.Stepover > 1 || math.IsNaN(t.Stepover) {
		return fmt.Errorf("%w: stepover %v", ErrInvalidTool, t.Stepover)
	}
	return nil
}
