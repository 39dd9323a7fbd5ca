package rough

// Generator produces sketchy drawables from exact shapes. A generator
// carries base options; every call can layer call-site options on top.
// Generated drawables are deterministic for a given seed.
type Generator[F Float] struct {
	options Options[F]
}

// NewGenerator returns a generator with the given base options applied
// over the defaults.
func NewGenerator[F Float](opts ...Option[F]) *Generator[F] {
	return &Generator[F]{options: NewOptions(opts...)}
}

// newDrawable assembles a drawable from generated op sets.
func (g *Generator[F]) newDrawable(shape string, sets []OpSet[F], o Options[F]) Drawable[F] {
	return Drawable[F]{Shape: shape, Options: o, Sets: sets}
}

// opts copies the base options and applies call-site overrides. A
// seeded configuration gets a fresh stream per drawable; an explicitly
// supplied Randomizer is shared and keeps advancing across calls.
func (g *Generator[F]) opts(opts []Option[F]) Options[F] {
	o := g.options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Line generates a sketched line segment.
func (g *Generator[F]) Line(x1, y1, x2, y2 F, opts ...Option[F]) Drawable[F] {
	o := g.opts(opts)
	ops := doubleLine(x1, y1, x2, y2, &o, false)
	return g.newDrawable("line", []OpSet[F]{{Type: OpSetPath, Ops: ops}}, o)
}

// Rectangle generates a sketched rectangle with the top-left corner at
// (x, y).
func (g *Generator[F]) Rectangle(x, y, width, height F, opts ...Option[F]) Drawable[F] {
	o := g.opts(opts)
	var sets []OpSet[F]
	points := []Point[F]{
		{X: x, Y: y},
		{X: x + width, Y: y},
		{X: x + width, Y: y + height},
		{X: x, Y: y + height},
	}
	if o.Fill != "" {
		if o.FillStyle == FillSolid {
			sets = append(sets, solidFillPolygon([][]Point[F]{points}, &o))
		} else {
			sets = append(sets, patternFillPolygons([][]Point[F]{points}, &o))
		}
	}
	if o.Stroke != "" {
		sets = append(sets, OpSet[F]{Type: OpSetPath, Ops: rectangleOps(x, y, width, height, &o)})
	}
	return g.newDrawable("rectangle", sets, o)
}

// Ellipse generates a sketched ellipse centered at (x, y).
func (g *Generator[F]) Ellipse(x, y, width, height F, opts ...Option[F]) Drawable[F] {
	o := g.opts(opts)
	var sets []OpSet[F]

	params := generateEllipseParams(width, height, &o)
	outline, estimated := ellipseWithParams(x, y, &o, params)

	if o.Fill != "" {
		if o.FillStyle == FillSolid {
			shape, _ := ellipseWithParams(x, y, &o, params)
			shape.Type = OpSetFillPath
			sets = append(sets, shape)
		} else {
			sets = append(sets, patternFillPolygons([][]Point[F]{estimated}, &o))
		}
	}
	if o.Stroke != "" {
		sets = append(sets, outline)
	}
	return g.newDrawable("ellipse", sets, o)
}

// Circle generates a sketched circle centered at (x, y) with the given
// diameter.
func (g *Generator[F]) Circle(x, y, diameter F, opts ...Option[F]) Drawable[F] {
	d := g.Ellipse(x, y, diameter, diameter, opts...)
	d.Shape = "circle"
	return d
}

// Arc generates a sketched elliptical arc centered at (x, y). Angles
// are in radians. A closed arc is joined to the center like a pie
// slice and can be filled.
func (g *Generator[F]) Arc(x, y, width, height, start, stop F, closed bool, opts ...Option[F]) Drawable[F] {
	o := g.opts(opts)
	var sets []OpSet[F]

	outline := OpSet[F]{Type: OpSetPath, Ops: arcOps(x, y, width, height, start, stop, closed, true, &o)}
	if closed && o.Fill != "" {
		if o.FillStyle == FillSolid {
			fo := o
			fo.DisableMultiStroke = true
			shape := OpSet[F]{
				Type: OpSetFillPath,
				Ops:  arcOps(x, y, width, height, start, stop, true, false, &fo),
			}
			sets = append(sets, shape)
		} else {
			sets = append(sets, patternFillArc(x, y, width, height, start, stop, &o))
		}
	}
	if o.Stroke != "" {
		sets = append(sets, outline)
	}
	return g.newDrawable("arc", sets, o)
}

// Polygon generates a sketched closed polygon.
func (g *Generator[F]) Polygon(points []Point[F], opts ...Option[F]) Drawable[F] {
	o := g.opts(opts)
	var sets []OpSet[F]
	if o.Fill != "" {
		if o.FillStyle == FillSolid {
			sets = append(sets, solidFillPolygon([][]Point[F]{points}, &o))
		} else {
			sets = append(sets, patternFillPolygons([][]Point[F]{points}, &o))
		}
	}
	if o.Stroke != "" {
		sets = append(sets, OpSet[F]{Type: OpSetPath, Ops: polygonOps(points, &o)})
	}
	return g.newDrawable("polygon", sets, o)
}

// LinearPath generates a sketched open polyline.
func (g *Generator[F]) LinearPath(points []Point[F], opts ...Option[F]) Drawable[F] {
	o := g.opts(opts)
	ops := linearPath(points, false, &o)
	return g.newDrawable("linearPath", []OpSet[F]{{Type: OpSetPath, Ops: ops}}, o)
}

// Curve generates a sketched smooth curve through points. With three or
// more points a fill is derived by flattening the fitted curve.
func (g *Generator[F]) Curve(points []Point[F], opts ...Option[F]) Drawable[F] {
	o := g.opts(opts)
	var sets []OpSet[F]

	outline := OpSet[F]{Type: OpSetPath, Ops: curveOps(points, &o)}
	if o.Fill != "" && len(points) >= 3 {
		bcurve := curveToBezier(points, 0)
		polyPoints := pointsOnBezierCurves(bcurve, 10, 1+o.Roughness/2)
		if o.FillStyle == FillSolid {
			sets = append(sets, solidFillPolygon([][]Point[F]{polyPoints}, &o))
		} else {
			sets = append(sets, patternFillPolygons([][]Point[F]{polyPoints}, &o))
		}
	}
	if o.Stroke != "" {
		sets = append(sets, outline)
	}
	return g.newDrawable("curve", sets, o)
}

// BezierQuadratic generates a sketched quadratic bezier from start to
// end. The curve is raised to cubic degree before sketching.
func (g *Generator[F]) BezierQuadratic(start, cp, end Point[F], opts ...Option[F]) Drawable[F] {
	cp1 := Point[F]{X: start.X + 2*(cp.X-start.X)/3, Y: start.Y + 2*(cp.Y-start.Y)/3}
	cp2 := Point[F]{X: end.X + 2*(cp.X-end.X)/3, Y: end.Y + 2*(cp.Y-end.Y)/3}
	d := g.BezierCubic(start, cp1, cp2, end, opts...)
	d.Shape = "bezierQuadratic"
	return d
}

// BezierCubic generates a sketched cubic bezier from start to end.
func (g *Generator[F]) BezierCubic(start, cp1, cp2, end Point[F], opts ...Option[F]) Drawable[F] {
	o := g.opts(opts)
	var sets []OpSet[F]

	outline := OpSet[F]{
		Type: OpSetPath,
		Ops:  bezierToOps(cp1.X, cp1.Y, cp2.X, cp2.Y, end.X, end.Y, start, &o),
	}
	if o.Fill != "" {
		crv := []Point[F]{start, cp1, cp2, end}
		polyPoints := pointsOnBezierCurves(crv, 10, 1+o.Roughness/2)
		if o.FillStyle == FillSolid {
			sets = append(sets, solidFillPolygon([][]Point[F]{polyPoints}, &o))
		} else {
			sets = append(sets, patternFillPolygons([][]Point[F]{polyPoints}, &o))
		}
	}
	if o.Stroke != "" {
		sets = append(sets, outline)
	}
	return g.newDrawable("bezierCubic", sets, o)
}

// Path generates a sketched rendition of SVG path data. When
// Simplification is below 1 the path is flattened and simplified into
// polylines instead of sketched segment by segment.
func (g *Generator[F]) Path(d string, opts ...Option[F]) (Drawable[F], error) {
	o := g.opts(opts)
	var sets []OpSet[F]
	if d == "" {
		return g.newDrawable("path", sets, o), nil
	}

	simplified := o.Simplification < 1
	var distance F
	if simplified {
		distance = 4 - 4*o.Simplification
	} else {
		distance = (1 + o.Roughness) / 2
	}
	fillPoints, err := pointsOnPath[F](d, 1, distance)
	if err != nil {
		return Drawable[F]{}, err
	}

	if o.Fill != "" {
		if o.FillStyle == FillSolid {
			sets = append(sets, solidFillPolygon(fillPoints, &o))
		} else {
			sets = append(sets, patternFillPolygons(fillPoints, &o))
		}
	}
	if o.Stroke != "" {
		if simplified {
			var ops []Op[F]
			for _, set := range fillPoints {
				ops = append(ops, linearPath(set, false, &o)...)
			}
			sets = append(sets, OpSet[F]{Type: OpSetPath, Ops: ops})
		} else {
			ops, err := svgPathOps(d, &o)
			if err != nil {
				return Drawable[F]{}, err
			}
			sets = append(sets, OpSet[F]{Type: OpSetPath, Ops: ops})
		}
	}
	return g.newDrawable("path", sets, o), nil
}
