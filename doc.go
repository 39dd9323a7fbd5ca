// Package rough generates vector graphics with a hand-drawn, sketchy
// appearance. Shapes are described once and expanded into randomized
// stroke and fill operation lists that can be serialized to SVG path
// data or rasterized directly.
//
// The entry point is [Generator]: each shape method returns a
// [Drawable] holding the op sets for the shape's fill and outline.
// Randomness is deterministic per drawable, controlled by
// [Options.Seed], so the same inputs always produce the same sketch.
//
//	g := rough.NewGenerator(rough.WithSeed[float64](42))
//	d := g.Rectangle(10, 10, 100, 60)
//	for _, p := range rough.ToPaths(d) {
//	    fmt.Println(p.D)
//	}
//
// The svgpath subpackage provides the path algebra (parsing,
// normalization, affine transforms, bounding boxes) the generator is
// built on; it is usable on its own.
package rough
