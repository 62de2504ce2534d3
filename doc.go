// Package cam computes tool-compensated boundaries of 2D contours.
//
// # Overview
//
// A contour is a closed chain of straight lines and circular arcs. Offset
// moves it by a signed distance, the way the centre of a milling cutter
// follows a part edge, and returns the clean boundary that results after
// the self-intersections created by offsetting have been removed.
//
// # Quick Start
//
//	import "github.com/gogpu/cam"
//
//	// A 10x10 square, counter-clockwise
//	sq := cam.Rect(0, 0, 10, 10)
//
//	// Path of a 2 mm cutter inside the square
//	rings, err := cam.Offset(sq, -1)
//	if err != nil {
//		return err
//	}
//	// rings[0] is the square (1,1)-(9,9)
//
// # Pipeline
//
// Offset runs these stages:
//   - normalise the contour to counter-clockwise travel
//   - move every segment along its normal; convex joints get a corner arc,
//     concave joints two lines through the source vertex
//   - split all segments where they cross (an X sweep prunes the pairs)
//   - build a planar graph over the pieces with weighted edges and assign
//     every edge the winding number of the face on its right
//   - keep the edges selected by the FillRule and chain them into contours
//   - close the small gaps left by coordinate quantisation
//
// MethodTessellate replaces the last four stages with arc flattening and a
// polygon clipper, trading arc output for robustness.
//
// # Conventions
//
// Positive offsets grow a shape, negative offsets shrink it, independent
// of its direction. Angles are in radians, counter-clockwise from +X, and
// Y points up. Arc spans are signed: positive spans run counter-clockwise.
//
// All tolerances are package constants (see Epsilon and Quantum).
//
// # Concurrency
//
// Offset keeps no state between calls and may be called from any number of
// goroutines. The toolpath package builds pocketing and profile operations
// on top of it.
package cam

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
