package toolpath

import (
	"fmt"

	"github.com/gogpu/cam"
)

// maxRings bounds the pocket loop against pathological stepovers.
const maxRings = 10000

// linkFactor is the longest link between two rings, in tool diameters,
// that is cut instead of lifting the tool.
const linkFactor = 3

// PocketPaths clears the area inside shape. It offsets the shape inwards
// starting at half the tool diameter and moving in by the stepover until
// nothing remains, then orders the rings from the innermost outwards.
//
// When a level produces a single ring and the straight move from the end
// of the previous path to the start of that ring is short and stays clear
// of the pocket wall, the two are joined into one path with a linking
// line. Otherwise the ring starts a new path.
func PocketPaths(shape cam.Contour, tool Tool, opts ...cam.OffsetOption) ([]cam.Contour, error) {
	if err := tool.Validate(); err != nil {
		return nil, err
	}
	log := cam.Logger()

	// The wall the tool centre must never cross while linking rings.
	safe, err := cam.Offset(shape, -tool.Radius()+cam.JoinTolerance, opts...)
	if err != nil {
		return nil, fmt.Errorf("toolpath: pocket wall: %w", err)
	}

	var levels [][]cam.Contour
	r := -tool.Radius()
	for k := 0; k < maxRings; k++ {
		rings, err := cam.Offset(shape, r, opts...)
		if err != nil {
			return nil, fmt.Errorf("toolpath: pocket ring at %g: %w", r, err)
		}
		if len(rings) == 0 {
			break
		}
		levels = append(levels, rings)
		r -= tool.step()
	}

	var paths []cam.Contour
	var last cam.Point
	haveLast := false
	linked := 0
	for i := len(levels) - 1; i >= 0; i-- {
		level := levels[i]
		if haveLast && len(level) == 1 {
			ring := level[0]
			link := cam.NewLine(last, ring.Start())
			if link.Length() < linkFactor*tool.Diameter && !crosses(link, safe) {
				paths[len(paths)-1] = append(paths[len(paths)-1], link)
				paths[len(paths)-1] = append(paths[len(paths)-1], ring...)
				last = ring.End()
				linked++
				continue
			}
		}
		paths = append(paths, level...)
		last = level[len(level)-1].End()
		haveLast = true
	}
	log.Debug("toolpath: pocket",
		"levels", len(levels),
		"paths", len(paths),
		"links", linked)
	return paths, nil
}

// crosses reports whether the line touches any of the contours.
func crosses(l cam.Line, contours []cam.Contour) bool {
	for _, c := range contours {
		for _, s := range c {
			if len(cam.Intersect(l, s)) > 0 {
				return true
			}
		}
	}
	return false
}
