package rough

import "math"

// PatternFiller turns a set of polygons into the op set of one fill
// pattern.
type PatternFiller[F Float] interface {
	FillPolygons(polygons [][]Point[F], o *Options[F]) OpSet[F]
}

// newFiller returns the filler for a style. FillSolid never reaches
// here; the generator draws it directly.
func newFiller[F Float](style FillStyle) PatternFiller[F] {
	switch style {
	case FillZigZag:
		return zigZagFiller[F]{}
	case FillCrossHatch:
		return hatchFiller[F]{}
	case FillDots:
		return dotFiller[F]{}
	case FillDashed:
		return dashedFiller[F]{}
	case FillZigZagLine:
		return zigZagLineFiller[F]{}
	default:
		return hachureFiller[F]{}
	}
}

// fillGap resolves the hachure gap default.
func fillGap[F Float](o *Options[F]) F {
	gap := o.HachureGap
	if gap < 0 {
		gap = o.StrokeWidth * 4
	}
	return maxf[F](gap, 0.1)
}

// renderFillLines sketches every line with the fill multi-stroke
// setting.
func renderFillLines[F Float](lines []Line[F], o *Options[F], filling bool) []Op[F] {
	var ops []Op[F]
	for _, l := range lines {
		ops = append(ops, doubleLine(l.P0.X, l.P0.Y, l.P1.X, l.P1.Y, o, filling)...)
	}
	return ops
}

// ---- Hachure ----

type hachureFiller[F Float] struct{}

func (hachureFiller[F]) FillPolygons(polygons [][]Point[F], o *Options[F]) OpSet[F] {
	lines := polygonHachureLines(polygons, o)
	return OpSet[F]{Type: OpSetFillSketch, Ops: renderFillLines(lines, o, true)}
}

// ---- Cross-hatch ----

type hatchFiller[F Float] struct{}

func (hatchFiller[F]) FillPolygons(polygons [][]Point[F], o *Options[F]) OpSet[F] {
	set := hachureFiller[F]{}.FillPolygons(polygons, o)
	o2 := *o
	o2.HachureAngle = o.HachureAngle + 90
	second := hachureFiller[F]{}.FillPolygons(polygons, &o2)
	set.Ops = append(set.Ops, second.Ops...)
	return set
}

// ---- Zig-zag ----

type zigZagFiller[F Float] struct{}

func (zigZagFiller[F]) FillPolygons(polygons [][]Point[F], o *Options[F]) OpSet[F] {
	gap := fillGap(o)
	o2 := *o
	o2.HachureGap = gap
	lines := polygonHachureLines(polygons, &o2)

	zigZagAngle := pi[F]() / 180 * o.HachureAngle
	dgx := gap * 0.5 * cos(zigZagAngle)
	dgy := gap * 0.5 * sin(zigZagAngle)
	var zigzag []Line[F]
	for _, l := range lines {
		if l.Length() == 0 {
			continue
		}
		zigzag = append(zigzag,
			Line[F]{P0: Point[F]{X: l.P0.X - dgx, Y: l.P0.Y + dgy}, P1: l.P1},
			Line[F]{P0: Point[F]{X: l.P0.X + dgx, Y: l.P0.Y - dgy}, P1: l.P1})
	}
	return OpSet[F]{Type: OpSetFillSketch, Ops: renderFillLines(zigzag, o, true)}
}

// ---- Dots ----

type dotFiller[F Float] struct{}

func (dotFiller[F]) FillPolygons(polygons [][]Point[F], o *Options[F]) OpSet[F] {
	o2 := *o
	o2.HachureAngle = 0
	lines := polygonHachureLines(polygons, &o2)
	return dotsOnLines(lines, o)
}

func dotsOnLines[F Float](lines []Line[F], o *Options[F]) OpSet[F] {
	var ops []Op[F]
	gap := fillGap(o)
	fweight := o.FillWeight
	if fweight < 0 {
		fweight = o.StrokeWidth / 2
	}
	ro := gap / 4
	for _, l := range lines {
		length := l.Length()
		dl := length / gap
		count := int(ceil(dl)) - 1
		if count < 0 {
			continue
		}
		offset := length - F(count)*gap
		x := (l.P0.X+l.P1.X)/2 - gap/4
		minY := minf(l.P0.Y, l.P1.Y)
		for i := 0; i < count; i++ {
			y := minY + offset + F(i)*gap
			cx := (x - ro) + o.random()*2*ro
			cy := (y - ro) + o.random()*2*ro
			el := ellipseOps(cx, cy, fweight, fweight, o)
			ops = append(ops, el.Ops...)
		}
	}
	return OpSet[F]{Type: OpSetFillSketch, Ops: ops}
}

// ---- Dashed ----

type dashedFiller[F Float] struct{}

func (dashedFiller[F]) FillPolygons(polygons [][]Point[F], o *Options[F]) OpSet[F] {
	lines := polygonHachureLines(polygons, o)
	return OpSet[F]{Type: OpSetFillSketch, Ops: dashedLines(lines, o)}
}

func dashedLines[F Float](lines []Line[F], o *Options[F]) []Op[F] {
	offset := o.DashOffset
	if offset < 0 {
		offset = fillGap(o)
	}
	gap := o.DashGap
	if gap < 0 {
		gap = fillGap(o)
	}
	var ops []Op[F]
	for _, l := range lines {
		length := l.Length()
		count := int(floor(length / (offset + gap)))
		startOffset := (length + gap - F(count)*(offset+gap)) / 2
		p1, p2 := l.P0, l.P1
		if p1.X > p2.X {
			p1, p2 = p2, p1
		}
		alpha := atan((p2.Y - p1.Y) / (p2.X - p1.X))
		for i := 0; i < count; i++ {
			lstart := F(i) * (offset + gap)
			lend := lstart + offset
			start := Point[F]{
				X: p1.X + lstart*cos(alpha) + startOffset*cos(alpha),
				Y: p1.Y + lstart*sin(alpha) + startOffset*sin(alpha),
			}
			end := Point[F]{
				X: p1.X + lend*cos(alpha) + startOffset*cos(alpha),
				Y: p1.Y + lend*sin(alpha) + startOffset*sin(alpha),
			}
			ops = append(ops, doubleLine(start.X, start.Y, end.X, end.Y, o, false)...)
		}
	}
	return ops
}

// ---- Zig-zag line ----

type zigZagLineFiller[F Float] struct{}

func (zigZagLineFiller[F]) FillPolygons(polygons [][]Point[F], o *Options[F]) OpSet[F] {
	gap := o.HachureGap
	if gap < 0 {
		gap = o.StrokeWidth * 4
	}
	zo := o.ZigzagOffset
	if zo < 0 {
		zo = gap
	}
	o2 := *o
	o2.HachureGap = gap + zo
	lines := polygonHachureLines(polygons, &o2)
	return OpSet[F]{Type: OpSetFillSketch, Ops: zigzagLines(lines, zo, o)}
}

func zigzagLines[F Float](lines []Line[F], zo F, o *Options[F]) []Op[F] {
	var ops []Op[F]
	dz := sqrt(2 * zo * zo)
	for _, l := range lines {
		length := l.Length()
		count := int(math.Round(float64(length / (2 * zo))))
		p1, p2 := l.P0, l.P1
		if p1.X > p2.X {
			p1, p2 = p2, p1
		}
		alpha := atan((p2.Y - p1.Y) / (p2.X - p1.X))
		for i := 0; i < count; i++ {
			lstart := F(i) * 2 * zo
			lend := F(i+1) * 2 * zo
			start := Point[F]{X: p1.X + lstart*cos(alpha), Y: p1.Y + lstart*sin(alpha)}
			end := Point[F]{X: p1.X + lend*cos(alpha), Y: p1.Y + lend*sin(alpha)}
			middle := Point[F]{
				X: start.X + dz*cos(alpha+pi[F]()/4),
				Y: start.Y + dz*sin(alpha+pi[F]()/4),
			}
			ops = append(ops, doubleLine(start.X, start.Y, middle.X, middle.Y, o, false)...)
			ops = append(ops, doubleLine(middle.X, middle.Y, end.X, end.Y, o, false)...)
		}
	}
	return ops
}
