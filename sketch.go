package rough

// The sketcher turns exact geometry into jittered op lists. Every
// function here draws from the options' random source, so call order
// is part of the output contract: reordering calls changes the sketch
// for a given seed.

// offsetRange returns a random offset in [min, max] scaled by
// roughness and gain.
func offsetRange[F Float](min, max F, o *Options[F], gain F) F {
	return o.Roughness * gain * (o.random()*(max-min) + min)
}

// offsetOpt returns a random offset in [-x, x] scaled by roughness
// and gain.
func offsetOpt[F Float](x F, o *Options[F], gain F) F {
	return offsetRange(-x, x, o, gain)
}

// ---- Lines ----

// sketchLine draws one jittered pass of the segment (x1,y1)-(x2,y2).
// The overlay pass uses half the jitter amplitude of the base pass.
func sketchLine[F Float](x1, y1, x2, y2 F, o *Options[F], mover, overlay bool) []Op[F] {
	lengthSq := (x1-x2)*(x1-x2) + (y1-y2)*(y1-y2)
	length := sqrt(lengthSq)

	var roughnessGain F
	switch {
	case length < 200:
		roughnessGain = 1
	case length > 500:
		roughnessGain = 0.4
	default:
		roughnessGain = -0.0016668*length + 1.233334
	}

	offset := o.MaxRandomnessOffset
	if offset*offset*100 > lengthSq {
		offset = length / 10
	}
	halfOffset := offset / 2

	divergePoint := 0.2 + o.random()*0.2

	// Bow the midpoint perpendicular to the segment, then randomize
	// the displacement within that envelope.
	midDispX := o.Bowing * o.MaxRandomnessOffset * (y2 - y1) / 200
	midDispY := o.Bowing * o.MaxRandomnessOffset * (x1 - x2) / 200
	midDispX = offsetOpt(midDispX, o, roughnessGain)
	midDispY = offsetOpt(midDispY, o, roughnessGain)

	randomHalf := func() F { return offsetOpt(halfOffset, o, roughnessGain) }
	randomFull := func() F { return offsetOpt(offset, o, roughnessGain) }

	var ops []Op[F]
	pv := o.PreserveVertices
	vertexJitter := func(jitter func() F) F {
		if pv {
			return 0
		}
		return jitter()
	}

	if mover {
		if overlay {
			ops = append(ops, Op[F]{Op: OpMove, Data: []F{
				x1 + vertexJitter(randomHalf),
				y1 + vertexJitter(randomHalf),
			}})
		} else {
			ops = append(ops, Op[F]{Op: OpMove, Data: []F{
				x1 + vertexJitter(randomFull),
				y1 + vertexJitter(randomFull),
			}})
		}
	}

	if overlay {
		ops = append(ops, Op[F]{Op: OpBCurveTo, Data: []F{
			midDispX + x1 + (x2-x1)*divergePoint + randomHalf(),
			midDispY + y1 + (y2-y1)*divergePoint + randomHalf(),
			midDispX + x1 + 2*(x2-x1)*divergePoint + randomHalf(),
			midDispY + y1 + 2*(y2-y1)*divergePoint + randomHalf(),
			x2 + vertexJitter(randomHalf),
			y2 + vertexJitter(randomHalf),
		}})
	} else {
		ops = append(ops, Op[F]{Op: OpBCurveTo, Data: []F{
			midDispX + x1 + (x2-x1)*divergePoint + randomFull(),
			midDispY + y1 + (y2-y1)*divergePoint + randomFull(),
			midDispX + x1 + 2*(x2-x1)*divergePoint + randomFull(),
			midDispY + y1 + 2*(y2-y1)*divergePoint + randomFull(),
			x2 + vertexJitter(randomFull),
			y2 + vertexJitter(randomFull),
		}})
	}
	return ops
}

// doubleLine draws a segment in two overlapping passes, or one when
// multi-stroke is disabled for the current role.
func doubleLine[F Float](x1, y1, x2, y2 F, o *Options[F], filling bool) []Op[F] {
	singleStroke := o.DisableMultiStroke
	if filling {
		singleStroke = o.DisableMultiStrokeFill
	}
	ops := sketchLine(x1, y1, x2, y2, o, true, false)
	if singleStroke {
		return ops
	}
	return append(ops, sketchLine(x1, y1, x2, y2, o, true, true)...)
}

// linearPath sketches consecutive segments through points, optionally
// closing back to the first point.
func linearPath[F Float](points []Point[F], close bool, o *Options[F]) []Op[F] {
	n := len(points)
	switch {
	case n > 2:
		var ops []Op[F]
		for i := 0; i < n-1; i++ {
			ops = append(ops, doubleLine(points[i].X, points[i].Y, points[i+1].X, points[i+1].Y, o, false)...)
		}
		if close {
			ops = append(ops, doubleLine(points[n-1].X, points[n-1].Y, points[0].X, points[0].Y, o, false)...)
		}
		return ops
	case n == 2:
		return doubleLine(points[0].X, points[0].Y, points[1].X, points[1].Y, o, false)
	default:
		return nil
	}
}

func polygonOps[F Float](points []Point[F], o *Options[F]) []Op[F] {
	return linearPath(points, true, o)
}

func rectangleOps[F Float](x, y, width, height F, o *Options[F]) []Op[F] {
	return polygonOps([]Point[F]{
		{X: x, Y: y},
		{X: x + width, Y: y},
		{X: x + width, Y: y + height},
		{X: x, Y: y + height},
	}, o)
}

// ---- Curves ----

// curveOps sketches a smooth curve through points in two passes, the
// second wider and reseeded so the strokes diverge.
func curveOps[F Float](points []Point[F], o *Options[F]) []Op[F] {
	ops := curveWithOffset(points, 1*(1+o.Roughness*0.2), o)
	if !o.DisableMultiStroke {
		o2 := o.cloneAlterSeed()
		ops = append(ops, curveWithOffset(points, 1.5*(1+o.Roughness*0.22), &o2)...)
	}
	return ops
}

// curveWithOffset jitters the control points (doubling the endpoints)
// and fits a spline through them.
func curveWithOffset[F Float](points []Point[F], offset F, o *Options[F]) []Op[F] {
	if len(points) == 0 {
		return nil
	}
	ps := make([]Point[F], 0, len(points)+2)
	jitter := func(p Point[F]) Point[F] {
		return Point[F]{X: p.X + offsetOpt(offset, o, 1), Y: p.Y + offsetOpt(offset, o, 1)}
	}
	ps = append(ps, jitter(points[0]), jitter(points[0]))
	for i := 1; i < len(points); i++ {
		ps = append(ps, jitter(points[i]))
		if i == len(points)-1 {
			ps = append(ps, jitter(points[i]))
		}
	}
	return spline(ps, nil, o)
}

// spline emits cubic segments through points using Catmull-Rom-style
// control points. The first and last points act as phantom anchors.
func spline[F Float](points []Point[F], closePoint *Point[F], o *Options[F]) []Op[F] {
	n := len(points)
	var ops []Op[F]
	switch {
	case n > 3:
		s := 1 - o.CurveTightness
		ops = append(ops, Op[F]{Op: OpMove, Data: []F{points[1].X, points[1].Y}})
		for i := 1; i+2 < n; i++ {
			p := points[i]
			b1 := Point[F]{
				X: p.X + (s*points[i+1].X-s*points[i-1].X)/6,
				Y: p.Y + (s*points[i+1].Y-s*points[i-1].Y)/6,
			}
			b2 := Point[F]{
				X: points[i+1].X + (s*p.X-s*points[i+2].X)/6,
				Y: points[i+1].Y + (s*p.Y-s*points[i+2].Y)/6,
			}
			ops = append(ops, Op[F]{Op: OpBCurveTo, Data: []F{
				b1.X, b1.Y, b2.X, b2.Y, points[i+1].X, points[i+1].Y,
			}})
		}
		if closePoint != nil {
			ro := o.MaxRandomnessOffset
			ops = append(ops, Op[F]{Op: OpLineTo, Data: []F{
				closePoint.X + offsetOpt(ro, o, 1),
				closePoint.Y + offsetOpt(ro, o, 1),
			}})
		}
	case n == 3:
		ops = append(ops,
			Op[F]{Op: OpMove, Data: []F{points[1].X, points[1].Y}},
			Op[F]{Op: OpBCurveTo, Data: []F{
				points[1].X, points[1].Y,
				points[2].X, points[2].Y,
				points[2].X, points[2].Y,
			}})
	case n == 2:
		ops = doubleLine(points[0].X, points[0].Y, points[1].X, points[1].Y, o, false)
	}
	return ops
}

// ---- Ellipses ----

// ellipseParams carries the sampling increment and pre-jittered radii
// shared by an ellipse's outline and fill.
type ellipseParams[F Float] struct {
	rx, ry, increment F
}

// generateEllipseParams estimates the perimeter to pick a sample count
// and jitters the radii within the curve-fitting headroom.
func generateEllipseParams[F Float](width, height F, o *Options[F]) ellipseParams[F] {
	psq := sqrt(pi[F]() * 2 * sqrt(((width/2)*(width/2)+(height/2)*(height/2))/2))
	stepCount := ceil(maxf(o.CurveStepCount, o.CurveStepCount/sqrt[F](200)*psq))
	increment := pi[F]() * 2 / stepCount
	rx := absf(width / 2)
	ry := absf(height / 2)
	curveFitRandomness := 1 - o.CurveFitting
	rx += offsetOpt(rx*curveFitRandomness, o, 1)
	ry += offsetOpt(ry*curveFitRandomness, o, 1)
	return ellipseParams[F]{rx: rx, ry: ry, increment: increment}
}

// ellipseOps sketches a full ellipse outline.
func ellipseOps[F Float](x, y, width, height F, o *Options[F]) OpSet[F] {
	ep := generateEllipseParams(width, height, o)
	set, _ := ellipseWithParams(x, y, o, ep)
	return set
}

// ellipseWithParams sketches the outline and returns the estimated
// perimeter points used for pattern filling.
func ellipseWithParams[F Float](x, y F, o *Options[F], ep ellipseParams[F]) (OpSet[F], []Point[F]) {
	overlap := ep.increment * randOffsetWithRange(0.1, randOffsetWithRange[F](0.4, 1, o), o)
	ap1, cp1 := computeEllipsePoints(ep.increment, x, y, ep.rx, ep.ry, 1, overlap, o)
	ops := spline(ap1, nil, o)
	if !o.DisableMultiStroke && o.Roughness != 0 {
		ap2, _ := computeEllipsePoints(ep.increment, x, y, ep.rx, ep.ry, 1.5, 0, o)
		ops = append(ops, spline(ap2, nil, o)...)
	}
	return OpSet[F]{Type: OpSetPath, Ops: ops}, cp1
}

// computeEllipsePoints samples a full perimeter. With zero roughness
// the sampling is exact at a quarter of the increment; otherwise both
// phase and points are jittered, and three trailing points at tapering
// radii tuck the closing overlap inward.
func computeEllipsePoints[F Float](increment, cx, cy, rx, ry, offset, overlap F, o *Options[F]) (all, core []Point[F]) {
	if o.Roughness == 0 {
		increment /= 4
		all = append(all, Point[F]{X: cx + rx*cos(-increment), Y: cy + ry*sin(-increment)})
		for angle := F(0); angle <= pi[F]()*2; angle += increment {
			p := Point[F]{X: cx + rx*cos(angle), Y: cy + ry*sin(angle)}
			core = append(core, p)
			all = append(all, p)
		}
		all = append(all,
			Point[F]{X: cx + rx, Y: cy},
			Point[F]{X: cx + rx*cos(increment), Y: cy + ry*sin(increment)})
		return all, core
	}

	radOffset := offsetOpt[F](0.5, o, 1) - pi[F]()/2
	all = append(all, Point[F]{
		X: offsetOpt(offset, o, 1) + cx + 0.9*rx*cos(radOffset-increment),
		Y: offsetOpt(offset, o, 1) + cy + 0.9*ry*sin(radOffset-increment),
	})
	endAngle := pi[F]()*2 + radOffset - 0.01
	for angle := radOffset; angle < endAngle; angle += increment {
		p := Point[F]{
			X: offsetOpt(offset, o, 1) + cx + rx*cos(angle),
			Y: offsetOpt(offset, o, 1) + cy + ry*sin(angle),
		}
		core = append(core, p)
		all = append(all, p)
	}
	all = append(all,
		Point[F]{
			X: offsetOpt(offset, o, 1) + cx + rx*cos(radOffset+pi[F]()*2+overlap*0.5),
			Y: offsetOpt(offset, o, 1) + cy + ry*sin(radOffset+pi[F]()*2+overlap*0.5),
		},
		Point[F]{
			X: offsetOpt(offset, o, 1) + cx + 0.98*rx*cos(radOffset+overlap),
			Y: offsetOpt(offset, o, 1) + cy + 0.98*ry*sin(radOffset+overlap),
		},
		Point[F]{
			X: offsetOpt(offset, o, 1) + cx + 0.9*rx*cos(radOffset+overlap*0.5),
			Y: offsetOpt(offset, o, 1) + cy + 0.9*ry*sin(radOffset+overlap*0.5),
		})
	return all, core
}

// ---- Arcs ----

// normalizeArcAngles shifts a negative start into [0, 2π) and clamps
// spans wider than a full turn to exactly one turn.
func normalizeArcAngles[F Float](start, stop F) (F, F) {
	for start < 0 {
		start += pi[F]() * 2
		stop += pi[F]() * 2
	}
	if stop-start > pi[F]()*2 {
		start = 0
		stop = pi[F]() * 2
	}
	return start, stop
}

func arcOps[F Float](x, y, width, height, start, stop F, closed, roughClosure bool, o *Options[F]) []Op[F] {
	cx, cy := x, y
	rx := absf(width / 2)
	ry := absf(height / 2)
	rx += offsetOpt(rx*0.01, o, 1)
	ry += offsetOpt(ry*0.01, o, 1)
	strt, stp := normalizeArcAngles(start, stop)

	ellipseInc := pi[F]() * 2 / o.CurveStepCount
	arcInc := minf(ellipseInc/2, (stp-strt)/2)
	ops := arcSketch(arcInc, cx, cy, rx, ry, strt, stp, 1, o)
	if !o.DisableMultiStroke {
		ops = append(ops, arcSketch(arcInc, cx, cy, rx, ry, strt, stp, 1.5, o)...)
	}

	if closed {
		if roughClosure {
			ops = append(ops, doubleLine(cx, cy, cx+rx*cos(strt), cy+ry*sin(strt), o, false)...)
			ops = append(ops, doubleLine(cx, cy, cx+rx*cos(stp), cy+ry*sin(stp), o, false)...)
		} else {
			ops = append(ops,
				Op[F]{Op: OpLineTo, Data: []F{cx, cy}},
				Op[F]{Op: OpLineTo, Data: []F{cx + rx*cos(strt), cy + ry*sin(strt)}})
		}
	}
	return ops
}

// arcSketch samples one jittered pass of the arc. The exact stop point
// is appended twice so the spline's phantom anchor lands on it.
func arcSketch[F Float](increment, cx, cy, rx, ry, strt, stp, offset F, o *Options[F]) []Op[F] {
	radOffset := strt + offsetOpt[F](0.1, o, 1)
	points := []Point[F]{{
		X: offsetOpt(offset, o, 1) + cx + 0.9*rx*cos(radOffset-increment),
		Y: offsetOpt(offset, o, 1) + cy + 0.9*ry*sin(radOffset-increment),
	}}
	for angle := radOffset; angle <= stp; angle += increment {
		points = append(points, Point[F]{
			X: offsetOpt(offset, o, 1) + cx + rx*cos(angle),
			Y: offsetOpt(offset, o, 1) + cy + ry*sin(angle),
		})
	}
	end := Point[F]{X: cx + rx*cos(stp), Y: cy + ry*sin(stp)}
	points = append(points, end, end)
	return spline(points, nil, o)
}

// ---- Beziers ----

// bezierToOps sketches a cubic from current, in up to two passes with
// widening jitter amplitudes.
func bezierToOps[F Float](x1, y1, x2, y2, x, y F, current Point[F], o *Options[F]) []Op[F] {
	var ops []Op[F]
	ros := [2]F{o.MaxRandomnessOffset, o.MaxRandomnessOffset + 0.3}
	iterations := 2
	if o.DisableMultiStroke {
		iterations = 1
	}
	pv := o.PreserveVertices
	for i := 0; i < iterations; i++ {
		if i == 0 {
			ops = append(ops, Op[F]{Op: OpMove, Data: []F{current.X, current.Y}})
		} else {
			var jx, jy F
			if !pv {
				jx = offsetOpt(ros[0], o, 1)
				jy = offsetOpt(ros[0], o, 1)
			}
			ops = append(ops, Op[F]{Op: OpMove, Data: []F{current.X + jx, current.Y + jy}})
		}
		end := Point[F]{X: x, Y: y}
		if !pv {
			end = Point[F]{X: x + offsetOpt(ros[i], o, 1), Y: y + offsetOpt(ros[i], o, 1)}
		}
		ops = append(ops, Op[F]{Op: OpBCurveTo, Data: []F{
			x1 + offsetOpt(ros[i], o, 1), y1 + offsetOpt(ros[i], o, 1),
			x2 + offsetOpt(ros[i], o, 1), y2 + offsetOpt(ros[i], o, 1),
			end.X, end.Y,
		}})
	}
	return ops
}

// ---- Fills ----

// solidFillPolygon emits each polygon as a jittered closed path.
func solidFillPolygon[F Float](polygons [][]Point[F], o *Options[F]) OpSet[F] {
	var ops []Op[F]
	for _, points := range polygons {
		if len(points) <= 2 {
			continue
		}
		offset := o.MaxRandomnessOffset
		ops = append(ops, Op[F]{Op: OpMove, Data: []F{
			points[0].X + randOffset(offset, o),
			points[0].Y + randOffset(offset, o),
		}})
		for i := 1; i < len(points); i++ {
			ops = append(ops, Op[F]{Op: OpLineTo, Data: []F{
				points[i].X + randOffset(offset, o),
				points[i].Y + randOffset(offset, o),
			}})
		}
	}
	return OpSet[F]{Type: OpSetFillPath, Ops: ops}
}

// patternFillPolygons dispatches to the filler for the current style.
func patternFillPolygons[F Float](polygons [][]Point[F], o *Options[F]) OpSet[F] {
	return newFiller[F](o.FillStyle).FillPolygons(polygons, o)
}

// patternFillArc fills a pie slice by sampling the arc into a polygon
// closed through the center.
func patternFillArc[F Float](x, y, width, height, start, stop F, o *Options[F]) OpSet[F] {
	cx, cy := x, y
	rx := absf(width / 2)
	ry := absf(height / 2)
	rx += offsetOpt(rx*0.01, o, 1)
	ry += offsetOpt(ry*0.01, o, 1)
	strt, stp := normalizeArcAngles(start, stop)

	increment := (stp - strt) / o.CurveStepCount
	var points []Point[F]
	for angle := strt; angle <= stp; angle += increment {
		points = append(points, Point[F]{X: cx + rx*cos(angle), Y: cy + ry*sin(angle)})
	}
	points = append(points,
		Point[F]{X: cx + rx*cos(stp), Y: cy + ry*sin(stp)},
		Point[F]{X: cx, Y: cy})
	return patternFillPolygons([][]Point[F]{points}, o)
}

// randOffset returns a jitter in [-x, x] under the options' roughness.
func randOffset[F Float](x F, o *Options[F]) F {
	return offsetOpt(x, o, 1)
}

// randOffsetWithRange returns a jitter in [min, max] under the
// options' roughness.
func randOffsetWithRange[F Float](min, max F, o *Options[F]) F {
	return offsetRange(min, max, o, 1)
}
