package svgpath

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	mt "github.com/rustyoz/Mtransform"
)

// Transformer rewrites a parsed path through a stack of affine
// transforms. Transform calls only push matrices; the stack is collapsed
// into a single matrix and applied to the segments the first time the
// result is observed.
type Transformer struct {
	segments Path
	stack    []mt.Transform
	err      error
}

// NewTransformer parses d and wraps it in a Transformer. A parse error
// is held and returned from Err; the transformer then behaves as if the
// path were empty.
func NewTransformer(d string) *Transformer {
	p, err := Parse(d)
	return &Transformer{segments: p, err: err}
}

// FromPath wraps an already parsed path.
func FromPath(p Path) *Transformer {
	return &Transformer{segments: p.Clone()}
}

// Err returns the parse error, if any.
func (t *Transformer) Err() error { return t.err }

// Matrix pushes the affine matrix [a b c d e f].
func (t *Transformer) Matrix(m [6]float64) *Transformer {
	var tr mt.Transform
	tr[0] = [3]float64{m[0], m[2], m[4]}
	tr[1] = [3]float64{m[1], m[3], m[5]}
	tr[2] = [3]float64{0, 0, 1}
	t.stack = append(t.stack, tr)
	return t
}

// Translate pushes a translation by tx, ty.
func (t *Transformer) Translate(tx, ty float64) *Transformer {
	return t.Matrix([6]float64{1, 0, 0, 1, tx, ty})
}

// Scale pushes a scale by sx, sy.
func (t *Transformer) Scale(sx, sy float64) *Transformer {
	return t.Matrix([6]float64{sx, 0, 0, sy, 0, 0})
}

// Rotate pushes a rotation by angle degrees about (cx, cy).
func (t *Transformer) Rotate(angle, cx, cy float64) *Transformer {
	if angle != 0 {
		t.Translate(-cx, -cy)
		rad := angle * math.Pi / 180
		t.Matrix([6]float64{math.Cos(rad), math.Sin(rad), -math.Sin(rad), math.Cos(rad), 0, 0})
		t.Translate(cx, cy)
	}
	return t
}

// SkewX pushes a horizontal skew by angle degrees.
func (t *Transformer) SkewX(angle float64) *Transformer {
	return t.Matrix([6]float64{1, 0, math.Tan(angle * math.Pi / 180), 1, 0, 0})
}

// SkewY pushes a vertical skew by angle degrees.
func (t *Transformer) SkewY(angle float64) *Transformer {
	return t.Matrix([6]float64{1, math.Tan(angle * math.Pi / 180), 0, 1, 0, 0})
}

// Transform parses an SVG transform attribute value such as
// "translate(10, 20) rotate(45)" and pushes its operations. The list is
// applied right to left, matching attribute semantics.
func (t *Transformer) Transform(s string) *Transformer {
	ops, err := parseTransformList(s)
	if err != nil {
		Logger().Warn("svgpath: bad transform string", "value", s, "err", err)
		return t
	}
	for i := len(ops) - 1; i >= 0; i-- {
		op := ops[i]
		switch op.name {
		case "matrix":
			if len(op.args) == 6 {
				t.Matrix([6]float64{op.args[0], op.args[1], op.args[2], op.args[3], op.args[4], op.args[5]})
			}
		case "translate":
			switch len(op.args) {
			case 1:
				t.Translate(op.args[0], 0)
			case 2:
				t.Translate(op.args[0], op.args[1])
			}
		case "scale":
			switch len(op.args) {
			case 1:
				t.Scale(op.args[0], op.args[0])
			case 2:
				t.Scale(op.args[0], op.args[1])
			}
		case "rotate":
			switch len(op.args) {
			case 1:
				t.Rotate(op.args[0], 0, 0)
			case 3:
				t.Rotate(op.args[0], op.args[1], op.args[2])
			}
		case "skewX":
			if len(op.args) == 1 {
				t.SkewX(op.args[0])
			}
		case "skewY":
			if len(op.args) == 1 {
				t.SkewY(op.args[0])
			}
		}
	}
	return t
}

// TransformInbox fits the path's bounding box into the destination box
// described by params. Arcs and shorthands are expanded for the box
// computation only; the path itself is untouched beyond the pushed
// matrix.
func (t *Transformer) TransformInbox(params InboxParams) *Transformer {
	if t.err != nil {
		return t
	}
	b := bboxOfSegments(Unshort(Unarc(Absolutize(t.segments))))
	return t.Matrix(b.InboxMatrix(params))
}

type transformOp struct {
	name string
	args []float64
}

// parseTransformList tokenizes a transform attribute into named
// operations with numeric arguments.
func parseTransformList(s string) ([]transformOp, error) {
	var ops []transformOp
	i := 0
	for i < len(s) {
		c := s[i]
		if c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == ',' {
			i++
			continue
		}
		start := i
		for i < len(s) && (s[i] >= 'a' && s[i] <= 'z' || s[i] >= 'A' && s[i] <= 'Z') {
			i++
		}
		name := s[start:i]
		if name == "" {
			return nil, fmt.Errorf("svgpath: %w: unexpected %q in transform list", ErrMalformed, s[i])
		}
		for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
			i++
		}
		if i >= len(s) || s[i] != '(' {
			return nil, fmt.Errorf("svgpath: %w: expected ( after %q", ErrMalformed, name)
		}
		i++
		end := strings.IndexByte(s[i:], ')')
		if end < 0 {
			return nil, fmt.Errorf("svgpath: %w: unterminated %q", ErrMalformed, name)
		}
		fields := strings.FieldsFunc(s[i:i+end], func(r rune) bool {
			return r == ' ' || r == ',' || r == '\t' || r == '\n' || r == '\r'
		})
		args := make([]float64, 0, len(fields))
		for _, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("svgpath: %w: bad number %q in %q: %v", ErrMalformed, f, name, err)
			}
			args = append(args, v)
		}
		ops = append(ops, transformOp{name: name, args: args})
		i += end + 1
	}
	return ops, nil
}

// applyXY maps a point through tr with homogeneous coordinate w. Using
// w = 0 transforms a relative offset without translation.
func applyXY(tr mt.Transform, x, y, w float64) (float64, float64) {
	return tr[0][0]*x + tr[0][1]*y + tr[0][2]*w,
		tr[1][0]*x + tr[1][1]*y + tr[1][2]*w
}

// iterate walks the segments, handing each to fn together with its index
// and the absolute current point before the segment. fn returns the
// replacement segments, or nil to keep the segment unchanged.
// Replacements are spliced in after the walk so the position tracking
// always sees the original path.
func (t *Transformer) iterate(fn func(seg Segment, pos int, lastX, lastY float64) []Segment) {
	var lastX, lastY, startX, startY float64
	var replacements map[int][]Segment

	for pos, seg := range t.segments {
		res := fn(seg, pos, lastX, lastY)
		if res != nil {
			if replacements == nil {
				replacements = make(map[int][]Segment)
			}
			replacements[pos] = res
		}

		switch seg.Cmd {
		case 'M':
			lastX, lastY = seg.Args[0], seg.Args[1]
			startX, startY = lastX, lastY
		case 'm':
			lastX += seg.Args[0]
			lastY += seg.Args[1]
			startX, startY = lastX, lastY
		case 'H':
			lastX = seg.Args[0]
		case 'h':
			lastX += seg.Args[0]
		case 'V':
			lastY = seg.Args[0]
		case 'v':
			lastY += seg.Args[0]
		case 'Z', 'z':
			lastX, lastY = startX, startY
		default:
			n := len(seg.Args)
			if n >= 2 {
				if seg.Relative() {
					lastX += seg.Args[n-2]
					lastY += seg.Args[n-1]
				} else {
					lastX, lastY = seg.Args[n-2], seg.Args[n-1]
				}
			}
		}
	}

	if replacements == nil {
		return
	}
	out := make(Path, 0, len(t.segments))
	for pos, seg := range t.segments {
		if res, ok := replacements[pos]; ok {
			out = append(out, res...)
		} else {
			out = append(out, seg)
		}
	}
	t.segments = out
}

// evaluateStack collapses the pending matrix stack and applies it.
func (t *Transformer) evaluateStack() {
	if len(t.stack) == 0 {
		return
	}
	combined := mt.Identity()
	for len(t.stack) > 0 {
		top := t.stack[len(t.stack)-1]
		t.stack = t.stack[:len(t.stack)-1]
		combined = mt.MultiplyTransforms(combined, top)
	}
	t.applyMatrix(combined)
}

// applyMatrix transforms every segment by m. Horizontal and vertical
// lines survive only when the image stays axis-aligned; arcs map their
// radii through the ellipse transform and collapse to lines when the
// image degenerates.
func (t *Transformer) applyMatrix(m mt.Transform) {
	det := m[0][0]*m[1][1] - m[1][0]*m[0][1]

	t.iterate(func(seg Segment, pos int, x, y float64) []Segment {
		switch seg.Cmd {
		case 'M', 'm':
			// the leading m is processed as absolute; coordinate shifts
			// would otherwise be lost
			w := 1.0
			cmd := seg.Cmd
			if seg.Cmd == 'm' {
				if pos > 0 {
					w = 0
				} else {
					cmd = 'M'
				}
			}
			px, py := applyXY(m, seg.Args[0], seg.Args[1], w)
			return []Segment{{Cmd: cmd, Args: []float64{px, py}}}

		case 'L', 'l', 'T', 't':
			w := 1.0
			if seg.Relative() {
				w = 0
			}
			px, py := applyXY(m, seg.Args[0], seg.Args[1], w)
			return []Segment{{Cmd: seg.Cmd, Args: []float64{px, py}}}

		case 'H':
			px, py := applyXY(m, seg.Args[0], y, 1)
			_, cy := applyXY(m, x, y, 1)
			if py == cy {
				return []Segment{{Cmd: 'H', Args: []float64{px}}}
			}
			return []Segment{{Cmd: 'L', Args: []float64{px, py}}}
		case 'h':
			px, py := applyXY(m, seg.Args[0], 0, 0)
			if py == 0 {
				return []Segment{{Cmd: 'h', Args: []float64{px}}}
			}
			return []Segment{{Cmd: 'l', Args: []float64{px, py}}}

		case 'V':
			px, py := applyXY(m, x, seg.Args[0], 1)
			cx, _ := applyXY(m, x, y, 1)
			if px == cx {
				return []Segment{{Cmd: 'V', Args: []float64{py}}}
			}
			return []Segment{{Cmd: 'L', Args: []float64{px, py}}}
		case 'v':
			px, py := applyXY(m, 0, seg.Args[0], 0)
			if px == 0 {
				return []Segment{{Cmd: 'v', Args: []float64{py}}}
			}
			return []Segment{{Cmd: 'l', Args: []float64{px, py}}}

		case 'C', 'c', 'S', 's', 'Q', 'q':
			w := 1.0
			if seg.Relative() {
				w = 0
			}
			args := make([]float64, len(seg.Args))
			for i := 0; i < len(seg.Args); i += 2 {
				args[i], args[i+1] = applyXY(m, seg.Args[i], seg.Args[i+1], w)
			}
			return []Segment{{Cmd: seg.Cmd, Args: args}}

		case 'A', 'a':
			abs := seg.Cmd == 'A'
			w := 0.0
			if abs {
				w = 1
			}
			sweep := seg.Args[4]
			if det < 0 {
				if sweep == 0 {
					sweep = 1
				} else {
					sweep = 0
				}
			}

			e := &Ellipse{Rx: seg.Args[0], Ry: seg.Args[1], Ax: seg.Args[2]}
			e.Transform([4]float64{m[0][0], m[1][0], m[0][1], m[1][1]})

			px, py := applyXY(m, seg.Args[5], seg.Args[6], w)

			// empty arcs must not be dropped, or an S after them would
			// pick up the wrong reflection; emit an empty line instead
			lineCmd := byte('l')
			if abs {
				lineCmd = 'L'
			}
			if (abs && seg.Args[5] == x && seg.Args[6] == y) || (!abs && seg.Args[5] == 0 && seg.Args[6] == 0) {
				return []Segment{{Cmd: lineCmd, Args: []float64{px, py}}}
			}
			if e.Degenerate() {
				return []Segment{{Cmd: lineCmd, Args: []float64{px, py}}}
			}
			return []Segment{{Cmd: seg.Cmd, Args: []float64{
				e.Rx, e.Ry, e.Ax, seg.Args[3], sweep, px, py,
			}}}

		case 'Z', 'z':
			return nil
		}
		return nil
	})
}

// toFixed rounds v to d decimal digits.
func toFixed(v float64, d int) float64 {
	p := math.Pow(10, float64(d))
	return math.Round(v*p) / p
}

// Round collapses the transform stack and rounds all coordinates to d
// decimal digits. The rounding error of each endpoint is carried into
// the following relative coordinates so that long runs of relative
// segments do not drift, and the error is reset at every contour start.
func (t *Transformer) Round(d int) *Transformer {
	t.evaluateStack()

	var contourStartDeltaX, contourStartDeltaY float64
	var deltaX, deltaY float64

	t.iterate(func(seg Segment, pos int, x, y float64) []Segment {
		switch seg.Cmd {
		case 'H', 'h':
			sx := seg.Args[0]
			if seg.Cmd == 'h' {
				sx += deltaX
			}
			rounded := toFixed(sx, d)
			deltaX = sx - rounded
			return []Segment{{Cmd: seg.Cmd, Args: []float64{rounded}}}

		case 'V', 'v':
			sy := seg.Args[0]
			if seg.Cmd == 'v' {
				sy += deltaY
			}
			rounded := toFixed(sy, d)
			deltaY = sy - rounded
			return []Segment{{Cmd: seg.Cmd, Args: []float64{rounded}}}

		case 'Z', 'z':
			deltaX = contourStartDeltaX
			deltaY = contourStartDeltaY
			return nil

		case 'M', 'm':
			sx, sy := seg.Args[0], seg.Args[1]
			if seg.Cmd == 'm' {
				sx += deltaX
				sy += deltaY
			}
			deltaX = sx - toFixed(sx, d)
			deltaY = sy - toFixed(sy, d)
			contourStartDeltaX = deltaX
			contourStartDeltaY = deltaY
			return []Segment{{Cmd: seg.Cmd, Args: []float64{toFixed(sx, d), toFixed(sy, d)}}}

		case 'A', 'a':
			sx, sy := seg.Args[5], seg.Args[6]
			if seg.Cmd == 'a' {
				sx += deltaX
				sy += deltaY
			}
			deltaX = sx - toFixed(sx, d)
			deltaY = sy - toFixed(sy, d)
			return []Segment{{Cmd: seg.Cmd, Args: []float64{
				toFixed(seg.Args[0], d),
				toFixed(seg.Args[1], d),
				toFixed(seg.Args[2], d+2),
				seg.Args[3], seg.Args[4],
				toFixed(sx, d), toFixed(sy, d),
			}}}

		default:
			// L, C, S, Q, T: carry the error on the endpoint, round
			// control points plainly
			args := make([]float64, len(seg.Args))
			copy(args, seg.Args)
			n := len(args)
			if seg.Relative() {
				args[n-2] += deltaX
				args[n-1] += deltaY
			}
			deltaX = args[n-2] - toFixed(args[n-2], d)
			deltaY = args[n-1] - toFixed(args[n-1], d)
			for i := range args {
				args[i] = toFixed(args[i], d)
			}
			return []Segment{{Cmd: seg.Cmd, Args: args}}
		}
	})
	return t
}

// Abs collapses the transform stack and rewrites all segments to
// absolute coordinates.
func (t *Transformer) Abs() *Transformer {
	t.evaluateStack()
	t.iterate(func(seg Segment, pos int, x, y float64) []Segment {
		if !seg.Relative() {
			return nil
		}
		cmd := seg.upper()
		switch seg.Cmd {
		case 'z':
			return []Segment{{Cmd: 'Z'}}
		case 'h':
			return []Segment{{Cmd: 'H', Args: []float64{seg.Args[0] + x}}}
		case 'v':
			return []Segment{{Cmd: 'V', Args: []float64{seg.Args[0] + y}}}
		case 'a':
			return []Segment{{Cmd: 'A', Args: []float64{
				seg.Args[0], seg.Args[1], seg.Args[2], seg.Args[3], seg.Args[4],
				seg.Args[5] + x, seg.Args[6] + y,
			}}}
		default:
			args := make([]float64, len(seg.Args))
			for i := 0; i < len(seg.Args); i += 2 {
				args[i] = seg.Args[i] + x
				args[i+1] = seg.Args[i+1] + y
			}
			return []Segment{{Cmd: cmd, Args: args}}
		}
	})
	return t
}

// Rel collapses the transform stack and rewrites all segments to
// relative coordinates. The leading M stays absolute.
func (t *Transformer) Rel() *Transformer {
	t.evaluateStack()
	t.iterate(func(seg Segment, pos int, x, y float64) []Segment {
		if seg.Relative() {
			return nil
		}
		if seg.Cmd == 'M' && pos == 0 {
			return nil
		}
		cmd := seg.Cmd - 'A' + 'a'
		switch seg.Cmd {
		case 'Z':
			return []Segment{{Cmd: 'z'}}
		case 'H':
			return []Segment{{Cmd: 'h', Args: []float64{seg.Args[0] - x}}}
		case 'V':
			return []Segment{{Cmd: 'v', Args: []float64{seg.Args[0] - y}}}
		case 'A':
			return []Segment{{Cmd: 'a', Args: []float64{
				seg.Args[0], seg.Args[1], seg.Args[2], seg.Args[3], seg.Args[4],
				seg.Args[5] - x, seg.Args[6] - y,
			}}}
		default:
			args := make([]float64, len(seg.Args))
			for i := 0; i < len(seg.Args); i += 2 {
				args[i] = seg.Args[i] - x
				args[i+1] = seg.Args[i+1] - y
			}
			return []Segment{{Cmd: cmd, Args: args}}
		}
	})
	return t
}

// Segments collapses the transform stack and returns the current path.
func (t *Transformer) Segments() Path {
	t.evaluateStack()
	return t.segments
}

// String collapses the transform stack and renders the path.
func (t *Transformer) String() string {
	t.evaluateStack()
	return t.segments.String()
}
