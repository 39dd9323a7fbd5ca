// Package svgpath provides parsing and algebra for SVG path data.
//
// A path is parsed into a flat list of segments which can then be
// rewritten step by step: converted to absolute coordinates, normalized
// down to the M/L/C/Z subset, transformed by an affine matrix or an SVG
// transform string, rounded with error carrying, and measured with an
// exact bounding box.
//
//	pt := svgpath.NewTransformer("M10 10 L15 15")
//	out := pt.Translate(20, 30).Round(0).String()
//
// All coordinates are float64. The package never panics on malformed
// input; parse errors are returned from the entry points.
package svgpath
