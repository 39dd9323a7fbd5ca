package rough

import (
	"strconv"
	"strings"
)

// OpType identifies a single drawing operation.
type OpType int

const (
	// OpMove starts a new subpath. Data is [x, y].
	OpMove OpType = iota
	// OpBCurveTo draws a cubic bezier. Data is [x1, y1, x2, y2, x, y].
	OpBCurveTo
	// OpLineTo draws a straight segment. Data is [x, y].
	OpLineTo
)

// OpSetType identifies what an op set draws.
type OpSetType int

const (
	// OpSetPath is a sketched outline.
	OpSetPath OpSetType = iota
	// OpSetFillPath is a filled region drawn as a single path.
	OpSetFillPath
	// OpSetFillSketch is a fill pattern drawn as strokes.
	OpSetFillSketch
)

// Op is one drawing operation.
type Op[F Float] struct {
	Op   OpType
	Data []F
}

// OpSet is a run of operations sharing one role (outline, fill path or
// fill sketch).
type OpSet[F Float] struct {
	Type OpSetType
	Ops  []Op[F]
	// Size is set for op sets derived from a sized shape.
	Size *Point[F]
	// Path carries the source path string for path-derived sets.
	Path string
}

// Drawable is a fully generated shape: the op sets for its fill and
// outline plus the options that produced them.
type Drawable[F Float] struct {
	Shape   string
	Options Options[F]
	Sets    []OpSet[F]
}

// FillRule selects the winding rule a renderer should use for a
// drawable's OpSetFillPath sets.
type FillRule int

const (
	FillRuleNonZero FillRule = iota
	FillRuleEvenOdd
)

// FillRule returns the rule for the drawable's filled paths. Shapes
// whose fill polygon can self-intersect (curves, beziers, polygons and
// svg paths) fill even-odd; the primitive shapes fill non-zero.
func (d Drawable[F]) FillRule() FillRule {
	switch d.Shape {
	case "curve", "bezierQuadratic", "bezierCubic", "polygon", "path":
		return FillRuleEvenOdd
	}
	return FillRuleNonZero
}

// PathInfo is one renderable path extracted from a Drawable.
type PathInfo struct {
	D           string
	Stroke      string
	StrokeWidth float64
	Fill        string
}

// formatFloat renders a coordinate the shortest way that round-trips,
// or with a fixed number of decimals when digits is non-nil.
func formatFloat[F Float](v F, digits *int) string {
	if digits != nil {
		return strconv.FormatFloat(float64(v), 'f', *digits, 64)
	}
	return strconv.FormatFloat(float64(v), 'f', -1, 64)
}

// OpsToPath serializes an op set to SVG path data.
func OpsToPath[F Float](set OpSet[F], digits *int) string {
	var b strings.Builder
	for _, op := range set.Ops {
		d := op.Data
		switch op.Op {
		case OpMove:
			b.WriteString("M" + formatFloat(d[0], digits) + " " + formatFloat(d[1], digits) + " ")
		case OpBCurveTo:
			b.WriteString("C" + formatFloat(d[0], digits) + " " + formatFloat(d[1], digits) + ", " +
				formatFloat(d[2], digits) + " " + formatFloat(d[3], digits) + ", " +
				formatFloat(d[4], digits) + " " + formatFloat(d[5], digits) + " ")
		case OpLineTo:
			b.WriteString("L" + formatFloat(d[0], digits) + " " + formatFloat(d[1], digits) + " ")
		}
	}
	return strings.TrimSpace(b.String())
}

// ToPaths extracts the renderable paths of a drawable, in paint order
// (fills before outline).
func ToPaths[F Float](d Drawable[F]) []PathInfo {
	o := &d.Options
	paths := make([]PathInfo, 0, len(d.Sets))
	for _, set := range d.Sets {
		var p PathInfo
		switch set.Type {
		case OpSetPath:
			p = PathInfo{
				D:           OpsToPath(set, o.FixedDecimalPlaceDigits),
				Stroke:      o.Stroke,
				StrokeWidth: float64(o.StrokeWidth),
				Fill:        "",
			}
		case OpSetFillPath:
			p = PathInfo{
				D:           OpsToPath(set, o.FixedDecimalPlaceDigits),
				Stroke:      "",
				StrokeWidth: 0,
				Fill:        o.Fill,
			}
		case OpSetFillSketch:
			p = fillSketchInfo(set, o)
		}
		paths = append(paths, p)
	}
	return paths
}

func fillSketchInfo[F Float](set OpSet[F], o *Options[F]) PathInfo {
	weight := float64(o.FillWeight)
	if weight < 0 {
		weight = float64(o.StrokeWidth) / 2
	}
	return PathInfo{
		D:           OpsToPath(set, o.FixedDecimalPlaceDigits),
		Stroke:      o.Fill,
		StrokeWidth: weight,
		Fill:        "",
	}
}
