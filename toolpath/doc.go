// Package toolpath turns shapes into tool-centre paths for milling.
//
// It sits on top of the offset engine in package cam: a profile cut is one
// offset by half the tool diameter, a pocket is a series of offsets with a
// shrinking radius, and holding tabs are arc-length slices of a finished
// path.
//
// # Operations
//
//	tool := toolpath.Tool{Diameter: 3, Stepover: 0.4}
//	paths, err := toolpath.Profile(shape, toolpath.Outside, tool)
//	rings, err := toolpath.PocketPaths(shape, tool)
//
// Operations on independent shapes can be run concurrently with Run.
package toolpath
