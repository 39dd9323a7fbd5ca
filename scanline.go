package rough

import "sort"

// sweepEpsilon guards edge retirement against accumulated step error:
// an edge whose ymax is within this distance of the scan line is
// treated as already passed.
const sweepEpsilon = 1e-10

// polygonHachureLines computes the hachure lines covering polygons at
// the options' angle and gap. The sweep itself is axis-aligned: the
// polygons are rotated about the origin so the lines come out
// horizontal, then both are rotated back.
func polygonHachureLines[F Float](polygons [][]Point[F], o *Options[F]) []Line[F] {
	angle := o.HachureAngle + 90
	gap := o.HachureGap
	if gap < 0 {
		gap = o.StrokeWidth * 4
	}
	gap = maxf[F](gap, 0.1)

	center := Point[F]{}
	rotated := polygons
	if angle != 0 {
		rotated = make([][]Point[F], len(polygons))
		for i, polygon := range polygons {
			rotated[i] = rotatePoints(polygon, center, angle)
		}
	}
	lines := straightHachureLines(rotated, gap)
	if angle != 0 {
		lines = rotateLines(lines, center, -angle)
	}
	return lines
}

// scanEdge is one non-horizontal polygon edge in the sweep table.
// x tracks the crossing abscissa at the current scan line.
type scanEdge[F Float] struct {
	ymin, ymax F
	x, islope  F
}

// straightHachureLines sweeps horizontal lines over the polygons at
// the given vertical gap. Edges enter the active list as the sweep
// reaches their ymin and leave once it passes their ymax; crossings
// are paired left-to-right into spans. The sweep runs until both the
// pending table and the active list are empty.
func straightHachureLines[F Float](polygons [][]Point[F], gap F) []Line[F] {
	var vertexArrays [][]Point[F]
	for _, polygon := range polygons {
		vertices := polygon
		if len(vertices) > 0 && vertices[0] != vertices[len(vertices)-1] {
			vertices = append(append([]Point[F]{}, vertices...), vertices[0])
		}
		if len(vertices) > 2 {
			vertexArrays = append(vertexArrays, vertices)
		}
	}

	gap = maxf[F](gap, 0.1)

	var edges []scanEdge[F]
	for _, vertices := range vertexArrays {
		for i := 0; i < len(vertices)-1; i++ {
			p1 := vertices[i]
			p2 := vertices[i+1]
			if p1.Y == p2.Y {
				continue
			}
			ymin := minf(p1.Y, p2.Y)
			x := p1.X
			if ymin != p1.Y {
				x = p2.X
			}
			edges = append(edges, scanEdge[F]{
				ymin:   ymin,
				ymax:   maxf(p1.Y, p2.Y),
				x:      x,
				islope: (p2.X - p1.X) / (p2.Y - p1.Y),
			})
		}
	}
	sort.Slice(edges, func(i, j int) bool {
		a, b := edges[i], edges[j]
		if a.ymin != b.ymin {
			return a.ymin < b.ymin
		}
		if a.x != b.x {
			return a.x < b.x
		}
		return a.ymax < b.ymax
	})
	if len(edges) == 0 {
		return nil
	}

	var lines []Line[F]
	var active []scanEdge[F]
	y := edges[0].ymin
	for len(active) > 0 || len(edges) > 0 {
		if len(edges) > 0 {
			ix := 0
			for ix < len(edges) && edges[ix].ymin <= y {
				ix++
			}
			active = append(active, edges[:ix]...)
			edges = edges[ix:]
		}
		kept := active[:0]
		for _, e := range active {
			if e.ymax > y+sweepEpsilon {
				kept = append(kept, e)
			}
		}
		active = kept
		sort.Slice(active, func(i, j int) bool { return active[i].x < active[j].x })

		// Crossings alternate between entering and leaving the
		// interior, so consecutive pairs bound interior spans.
		for i := 0; i+1 < len(active); i += 2 {
			lines = append(lines, Line[F]{
				P0: Point[F]{X: active[i].x, Y: y},
				P1: Point[F]{X: active[i+1].x, Y: y},
			})
		}

		y += gap
		for i := range active {
			active[i].x += gap * active[i].islope
		}
	}
	return lines
}
