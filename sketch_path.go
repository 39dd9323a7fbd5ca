package rough

import (
	"github.com/gogpu/rough/svgpath"
)

// svgPathOps sketches SVG path data. The path is reduced to moves,
// lines and cubics first; each then goes through the usual jittered
// renderers.
func svgPathOps[F Float](d string, o *Options[F]) ([]Op[F], error) {
	parsed, err := svgpath.Parse(d)
	if err != nil {
		return nil, err
	}
	segments := svgpath.Normalize(svgpath.Absolutize(parsed))

	var ops []Op[F]
	var first, current Point[F]
	for _, seg := range segments {
		switch seg.Cmd {
		case 'M':
			ro := 1 * o.MaxRandomnessOffset
			target := Point[F]{X: F(seg.Args[0]), Y: F(seg.Args[1])}
			move := target
			if !o.PreserveVertices {
				move.X += offsetOpt(ro, o, 1)
				move.Y += offsetOpt(ro, o, 1)
			}
			ops = append(ops, Op[F]{Op: OpMove, Data: []F{move.X, move.Y}})
			current = target
			first = target
		case 'L':
			target := Point[F]{X: F(seg.Args[0]), Y: F(seg.Args[1])}
			ops = append(ops, doubleLine(current.X, current.Y, target.X, target.Y, o, false)...)
			current = target
		case 'C':
			x1, y1 := F(seg.Args[0]), F(seg.Args[1])
			x2, y2 := F(seg.Args[2]), F(seg.Args[3])
			x, y := F(seg.Args[4]), F(seg.Args[5])
			ops = append(ops, bezierToOps(x1, y1, x2, y2, x, y, current, o)...)
			current = Point[F]{X: x, Y: y}
		case 'Z':
			ops = append(ops, doubleLine(current.X, current.Y, first.X, first.Y, o, false)...)
			current = first
		}
	}
	return ops, nil
}

// pointsOnPath flattens SVG path data into polylines, one per subpath.
// tolerance bounds the curve flattening error; a positive distance
// additionally simplifies each polyline.
func pointsOnPath[F Float](d string, tolerance, distance F) ([][]Point[F], error) {
	parsed, err := svgpath.Parse(d)
	if err != nil {
		return nil, err
	}
	segments := svgpath.Normalize(svgpath.Absolutize(parsed))

	var sets [][]Point[F]
	var currentPoints []Point[F]
	var start, current Point[F]
	var pendingCurve []Point[F]

	flushCurve := func() {
		if len(pendingCurve) == 0 {
			return
		}
		currentPoints = append(currentPoints, pointsOnBezierCurves(pendingCurve, tolerance, 0)...)
		pendingCurve = pendingCurve[:0]
	}
	flushSet := func() {
		flushCurve()
		if len(currentPoints) > 0 {
			sets = append(sets, currentPoints)
			currentPoints = nil
		}
	}

	for _, seg := range segments {
		switch seg.Cmd {
		case 'M':
			flushSet()
			start = Point[F]{X: F(seg.Args[0]), Y: F(seg.Args[1])}
			current = start
			currentPoints = append(currentPoints, start)
		case 'L':
			flushCurve()
			current = Point[F]{X: F(seg.Args[0]), Y: F(seg.Args[1])}
			currentPoints = append(currentPoints, current)
		case 'C':
			if len(pendingCurve) == 0 {
				pendingCurve = append(pendingCurve, current)
			}
			pendingCurve = append(pendingCurve,
				Point[F]{X: F(seg.Args[0]), Y: F(seg.Args[1])},
				Point[F]{X: F(seg.Args[2]), Y: F(seg.Args[3])},
				Point[F]{X: F(seg.Args[4]), Y: F(seg.Args[5])})
			current = Point[F]{X: F(seg.Args[4]), Y: F(seg.Args[5])}
		case 'Z':
			flushCurve()
			current = start
			currentPoints = append(currentPoints, start)
		}
	}
	flushSet()

	if distance <= 0 {
		return sets, nil
	}
	out := make([][]Point[F], 0, len(sets))
	for _, set := range sets {
		simplified := simplify(set, distance)
		if len(simplified) > 0 {
			out = append(out, simplified)
		}
	}
	return out, nil
}
