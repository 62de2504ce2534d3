package toolpath

import (
	"fmt"
	"strings"
)

// Direction selects on which side of a shape the tool travels.
type Direction int

const (
	// Outline follows the shape itself, for engraving.
	Outline Direction = iota
	// Outside keeps the tool outside the shape, for cut-outs.
	Outside
	// Inside keeps the tool inside the shape, for holes.
	Inside
	// Pocket clears the whole area inside the shape.
	Pocket
)

var directionNames = [...]string{
	Outline: "outline",
	Outside: "outside",
	Inside:  "inside",
	Pocket:  "pocket",
}

// String returns the lower-case direction name.
func (d Direction) String() string {
	if d < 0 || int(d) >= len(directionNames) {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return directionNames[d]
}

// ParseDirection parses a direction name, ignoring case.
func ParseDirection(s string) (Direction, error) {
	for d, name := range directionNames {
		if strings.EqualFold(s, name) {
			return Direction(d), nil
		}
	}
	return 0, fmt.Errorf("toolpath: unknown direction %q", s)
}

// UnmarshalText implements encoding.TextUnmarshaler so directions can be
// read from job files.
func (d *Direction) UnmarshalText(text []byte) error {
	v, err := ParseDirection(string(text))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}
