package svgpath

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// BBox is an axis-aligned bounding box that starts undefined and grows
// as coordinates and curves are added.
type BBox struct {
	minX, minY, maxX, maxY float64
	hasX, hasY             bool
}

// ScaleType selects how a box is scaled when fit into another.
type ScaleType int

const (
	// Meet scales uniformly as much as possible while staying inside.
	Meet ScaleType = iota
	// Slice scales uniformly as little as possible while covering.
	Slice
	// Fit scales each axis independently; aspect ratio is not kept.
	Fit
	// Move translates only.
	Move
)

// Alignment selects which edge of a box an axis aligns to.
type Alignment int

const (
	AlignMin Alignment = iota
	AlignMid
	AlignMax
)

// InboxParams describes how to map one box into another.
type InboxParams struct {
	Destination BBox
	ScaleType   ScaleType
	AlignX      Alignment
	AlignY      Alignment
}

// BBoxFrom parses "x y width height" into a box. Malformed input yields
// an undefined box.
func BBoxFrom(s string) BBox {
	var b BBox
	fields := strings.Fields(strings.TrimSpace(s))
	nums := make([]float64, 0, len(fields))
	for _, f := range fields {
		if v, err := strconv.ParseFloat(f, 64); err == nil {
			nums = append(nums, v)
		}
	}
	if len(nums) >= 4 {
		b.AddX(nums[0])
		b.AddX(nums[0] + nums[2])
		b.AddY(nums[1])
		b.AddY(nums[1] + nums[3])
	}
	return b
}

// Undefined reports whether no coordinates have been added yet.
func (b *BBox) Undefined() bool { return !b.hasX || !b.hasY }

// Width returns the x extent, or 0 for an undefined box.
func (b *BBox) Width() float64 {
	if !b.hasX {
		return 0
	}
	return b.maxX - b.minX
}

// Height returns the y extent, or 0 for an undefined box.
func (b *BBox) Height() float64 {
	if !b.hasY {
		return 0
	}
	return b.maxY - b.minY
}

// MinX returns the left edge, or 0 for an undefined box.
func (b *BBox) MinX() float64 { return b.minX }

// MinY returns the top edge, or 0 for an undefined box.
func (b *BBox) MinY() float64 { return b.minY }

// MaxX returns the right edge, or 0 for an undefined box.
func (b *BBox) MaxX() float64 { return b.maxX }

// MaxY returns the bottom edge, or 0 for an undefined box.
func (b *BBox) MaxY() float64 { return b.maxY }

// AddX grows the box to include the x coordinate.
func (b *BBox) AddX(x float64) *BBox {
	if !b.hasX {
		b.minX, b.maxX = x, x
		b.hasX = true
	} else {
		b.minX = math.Min(b.minX, x)
		b.maxX = math.Max(b.maxX, x)
	}
	return b
}

// AddY grows the box to include the y coordinate.
func (b *BBox) AddY(y float64) *BBox {
	if !b.hasY {
		b.minY, b.maxY = y, y
		b.hasY = true
	} else {
		b.minY = math.Min(b.minY, y)
		b.maxY = math.Max(b.maxY, y)
	}
	return b
}

// AddPoint grows the box to include the point.
func (b *BBox) AddPoint(x, y float64) *BBox {
	return b.AddX(x).AddY(y)
}

// AddXQ grows the box to cover a quadratic curve's x coefficients.
func (b *BBox) AddXQ(a [3]float64) *BBox {
	mn, mx := minmaxQ(a)
	return b.AddX(mn).AddX(mx)
}

// AddYQ grows the box to cover a quadratic curve's y coefficients.
func (b *BBox) AddYQ(a [3]float64) *BBox {
	mn, mx := minmaxQ(a)
	return b.AddY(mn).AddY(mx)
}

// AddXC grows the box to cover a cubic curve's x coefficients.
func (b *BBox) AddXC(a [4]float64) *BBox {
	mn, mx := minmaxC(a)
	return b.AddX(mn).AddX(mx)
}

// AddYC grows the box to cover a cubic curve's y coefficients.
func (b *BBox) AddYC(a [4]float64) *BBox {
	mn, mx := minmaxC(a)
	return b.AddY(mn).AddY(mx)
}

// String renders the box as "minX minY width height" with pr decimal
// digits, or with shortest formatting when pr is negative. An undefined
// box renders as "0 0 0 0".
func (b *BBox) String(pr int) string {
	if b.Undefined() {
		return "0 0 0 0"
	}
	if pr < 0 {
		return fmt.Sprintf("%s %s %s %s",
			formatNum(b.minX), formatNum(b.minY), formatNum(b.Width()), formatNum(b.Height()))
	}
	return fmt.Sprintf("%.*f %.*f %.*f %.*f",
		pr, b.minX, pr, b.minY, pr, b.Width(), pr, b.Height())
}

// InboxMatrix returns the affine matrix [a b c d e f] mapping this box
// into the destination under the given scale and alignment rules.
func (b *BBox) InboxMatrix(params InboxParams) [6]float64 {
	rx, ry := b.scaleFactors(&params.Destination, params.ScaleType)
	srcX, srcY := b.origin(params.AlignX, params.AlignY)
	dstX, dstY := params.Destination.origin(params.AlignX, params.AlignY)
	return [6]float64{rx, 0, 0, ry, dstX - rx*srcX, dstY - ry*srcY}
}

func (b *BBox) scaleFactors(dst *BBox, st ScaleType) (float64, float64) {
	switch st {
	case Fit:
		rx, ry := 1.0, 1.0
		if b.Width() != 0 {
			rx = dst.Width() / b.Width()
		}
		if b.Height() != 0 {
			ry = dst.Height() / b.Height()
		}
		return rx, ry
	case Slice:
		if b.Width() != 0 && b.Height() != 0 {
			s := math.Max(dst.Width()/b.Width(), dst.Height()/b.Height())
			return s, s
		}
		return b.meetScale(dst)
	case Move:
		return 1, 1
	default:
		return b.meetScale(dst)
	}
}

func (b *BBox) meetScale(dst *BBox) (float64, float64) {
	if b.Width() == 0 && b.Height() == 0 {
		return 1, 1
	}
	s := math.Min(dst.Width()/b.Width(), dst.Height()/b.Height())
	return s, s
}

func (b *BBox) origin(ax, ay Alignment) (float64, float64) {
	var x, y float64
	switch ax {
	case AlignMin:
		x = b.minX
	case AlignMax:
		x = b.maxX
	default:
		x = (b.minX + b.maxX) / 2
	}
	switch ay {
	case AlignMin:
		y = b.minY
	case AlignMax:
		y = b.maxY
	default:
		y = (b.minY + b.maxY) / 2
	}
	return x, y
}

// minmaxQ returns the range of the quadratic bezier polynomial with
// bernstein coefficients a over t in [0, 1].
func minmaxQ(a [3]float64) (float64, float64) {
	min := math.Min(a[0], a[2])
	max := math.Max(a[0], a[2])

	// no interior extremum
	if (a[1] > a[0] && a[2] >= a[1]) || (a[1] <= a[0] && a[2] <= a[1]) {
		return min, max
	}

	e := (a[0]*a[2] - a[1]*a[1]) / (a[0] - 2*a[1] + a[2])
	if e < min {
		return e, max
	}
	return min, e
}

// minmaxC returns the range of the cubic bezier polynomial with
// bernstein coefficients a over t in [0, 1].
func minmaxC(a [4]float64) (float64, float64) {
	// (almost) quadratic, not cubic
	k := a[0] - 3*a[1] + 3*a[2] - a[3]
	if math.Abs(k) < epsilon {
		return minmaxQ([3]float64{a[0], -0.5*a[0] + 1.5*a[1], a[0] - 3*a[1] + 3*a[2]})
	}

	// reduced discriminant of the derivative
	t := -a[0]*a[2] + a[0]*a[3] - a[1]*a[2] - a[1]*a[3] + a[1]*a[1] + a[2]*a[2]

	// monotone on [0,1]
	if t <= 0 {
		return math.Min(a[0], a[3]), math.Max(a[0], a[3])
	}

	s := math.Sqrt(t)
	min := math.Min(a[0], a[3])
	max := math.Max(a[0], a[3])

	l := a[0] - 2*a[1] + a[2]
	for _, r := range [2]float64{(l + s) / k, (l - s) / k} {
		if r > 0 && r < 1 {
			omr := 1 - r
			q := a[0]*omr*omr*omr + a[1]*3*omr*omr*r + a[2]*3*omr*r*r + a[3]*r*r*r
			min = math.Min(min, q)
			max = math.Max(max, q)
		}
	}
	return min, max
}

// PathBBox computes the exact bounding box of path data. Arcs and
// shorthand segments are expanded first so only line and curve endpoints
// and extrema need to be accumulated.
func PathBBox(d string) (BBox, error) {
	p, err := Parse(d)
	if err != nil {
		return BBox{}, err
	}
	return bboxOfSegments(Unshort(Unarc(Absolutize(p)))), nil
}

// bboxOfSegments accumulates the box of an already absolute path with
// arcs and shorthands expanded.
func bboxOfSegments(p Path) BBox {
	var b BBox
	var cx, cy, subx, suby float64
	for _, seg := range p {
		switch seg.Cmd {
		case 'M':
			cx, cy = seg.Args[0], seg.Args[1]
			subx, suby = cx, cy
			b.AddPoint(cx, cy)
		case 'L':
			cx, cy = seg.Args[0], seg.Args[1]
			b.AddPoint(cx, cy)
		case 'Z':
			cx, cy = subx, suby
		case 'H':
			cx = seg.Args[0]
			b.AddX(cx)
		case 'V':
			cy = seg.Args[0]
			b.AddY(cy)
		case 'Q':
			b.AddXQ([3]float64{cx, seg.Args[0], seg.Args[2]})
			b.AddYQ([3]float64{cy, seg.Args[1], seg.Args[3]})
			cx, cy = seg.Args[2], seg.Args[3]
		case 'C':
			b.AddXC([4]float64{cx, seg.Args[0], seg.Args[2], seg.Args[4]})
			b.AddYC([4]float64{cy, seg.Args[1], seg.Args[3], seg.Args[5]})
			cx, cy = seg.Args[4], seg.Args[5]
		}
	}
	return b
}
