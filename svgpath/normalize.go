package svgpath

import "math"

// Normalize reduces an absolutized path to the M, L, C and Z commands.
// H and V become lines, S and T have their reflected control points made
// explicit, Q is raised to cubic degree and A is approximated by cubic
// curves. The input must already be absolute.
func Normalize(p Path) Path {
	out := make(Path, 0, len(p))
	var cx, cy, subx, suby float64
	var lcx, lcy float64
	var lastCmd byte

	for _, seg := range p {
		switch seg.Cmd {
		case 'M':
			cx, cy = seg.Args[0], seg.Args[1]
			subx, suby = cx, cy
			out = append(out, Segment{Cmd: 'M', Args: []float64{cx, cy}})
		case 'L':
			cx, cy = seg.Args[0], seg.Args[1]
			out = append(out, Segment{Cmd: 'L', Args: []float64{cx, cy}})
		case 'H':
			cx = seg.Args[0]
			out = append(out, Segment{Cmd: 'L', Args: []float64{cx, cy}})
		case 'V':
			cy = seg.Args[0]
			out = append(out, Segment{Cmd: 'L', Args: []float64{cx, cy}})
		case 'C':
			out = append(out, Segment{Cmd: 'C', Args: append([]float64(nil), seg.Args...)})
			lcx, lcy = seg.Args[2], seg.Args[3]
			cx, cy = seg.Args[4], seg.Args[5]
		case 'S':
			// reflect the previous cubic control point, or reuse the
			// current point when the previous segment was not a curve
			cx1, cy1 := cx, cy
			if lastCmd == 'C' || lastCmd == 'S' {
				cx1 = cx + (cx - lcx)
				cy1 = cy + (cy - lcy)
			}
			out = append(out, Segment{Cmd: 'C', Args: []float64{
				cx1, cy1, seg.Args[0], seg.Args[1], seg.Args[2], seg.Args[3],
			}})
			lcx, lcy = seg.Args[0], seg.Args[1]
			cx, cy = seg.Args[2], seg.Args[3]
		case 'Q':
			x1, y1 := seg.Args[0], seg.Args[1]
			x, y := seg.Args[2], seg.Args[3]
			out = append(out, Segment{Cmd: 'C', Args: []float64{
				cx + 2*(x1-cx)/3, cy + 2*(y1-cy)/3,
				x + 2*(x1-x)/3, y + 2*(y1-y)/3,
				x, y,
			}})
			lcx, lcy = x1, y1
			cx, cy = x, y
		case 'T':
			x1, y1 := cx, cy
			if lastCmd == 'Q' || lastCmd == 'T' {
				x1 = cx + (cx - lcx)
				y1 = cy + (cy - lcy)
			}
			x, y := seg.Args[0], seg.Args[1]
			out = append(out, Segment{Cmd: 'C', Args: []float64{
				cx + 2*(x1-cx)/3, cy + 2*(y1-cy)/3,
				x + 2*(x1-x)/3, y + 2*(y1-y)/3,
				x, y,
			}})
			lcx, lcy = x1, y1
			cx, cy = x, y
		case 'A':
			r1, r2 := seg.Args[0], seg.Args[1]
			angle := seg.Args[2]
			largeArc := seg.Args[3] != 0
			sweep := seg.Args[4] != 0
			x, y := seg.Args[5], seg.Args[6]
			switch {
			case r1 == 0 || r2 == 0:
				out = append(out, Segment{Cmd: 'C', Args: []float64{cx, cy, x, y, x, y}})
				cx, cy = x, y
			case cx == x && cy == y:
				// zero-length arc contributes nothing
			default:
				curves := arcToCubicCurves(cx, cy, x, y, r1, r2, angle, largeArc, sweep, nil)
				for _, c := range curves {
					out = append(out, Segment{Cmd: 'C', Args: c})
				}
				cx, cy = x, y
			}
		case 'Z':
			cx, cy = subx, suby
			out = append(out, Segment{Cmd: 'Z'})
		}
		lastCmd = seg.Cmd
	}
	return out
}

// arcToCubicCurves converts an endpoint-parameterized elliptical arc to
// a list of cubic curve argument groups. Arcs spanning more than 120
// degrees are split recursively; recursive holds the carried angles and
// center of the outer call.
func arcToCubicCurves(x1, y1, x2, y2, r1, r2, angle float64, largeArc, sweep bool, recursive []float64) [][]float64 {
	angleRad := angle * math.Pi / 180

	var f1, f2, cx, cy float64
	if recursive != nil {
		f1, f2, cx, cy = recursive[0], recursive[1], recursive[2], recursive[3]
	} else {
		x1, y1 = rotatePoint(x1, y1, -angleRad)
		x2, y2 = rotatePoint(x2, y2, -angleRad)

		x := (x1 - x2) / 2
		y := (y1 - y2) / 2
		h := x*x/(r1*r1) + y*y/(r2*r2)
		if h > 1 {
			h = math.Sqrt(h)
			r1 *= h
			r2 *= h
		}

		sign := 1.0
		if largeArc == sweep {
			sign = -1.0
		}
		r1Pow := r1 * r1
		r2Pow := r2 * r2
		left := r1Pow*r2Pow - r1Pow*y*y - r2Pow*x*x
		right := r1Pow*y*y + r2Pow*x*x
		k := sign * math.Sqrt(math.Abs(left/right))

		cx = k*r1*y/r2 + (x1+x2)/2
		cy = k*(-r2)*x/r1 + (y1+y2)/2

		f1 = math.Asin((y1 - cy) / r2)
		f2 = math.Asin((y2 - cy) / r2)
		if x1 < cx {
			f1 = math.Pi - f1
		}
		if x2 < cx {
			f2 = math.Pi - f2
		}
		if f1 < 0 {
			f1 += 2 * math.Pi
		}
		if f2 < 0 {
			f2 += 2 * math.Pi
		}
		if sweep && f1 > f2 {
			f1 -= 2 * math.Pi
		}
		if !sweep && f2 > f1 {
			f2 -= 2 * math.Pi
		}
	}

	var params [][]float64
	df := f2 - f1
	if math.Abs(df) > 120*math.Pi/180 {
		f2Old, x2Old, y2Old := f2, x2, y2
		dir := 1.0
		if !(sweep && f2 > f1) {
			dir = -1.0
		}
		f2 = f1 + 120*math.Pi/180*dir
		x2 = cx + r1*math.Cos(f2)
		y2 = cy + r2*math.Sin(f2)
		params = arcToCubicCurves(x2, y2, x2Old, y2Old, r1, r2, angle, largeArc, sweep, []float64{f2, f2Old, cx, cy})
	}

	df = f2 - f1
	c1 := math.Cos(f1)
	s1 := math.Sin(f1)
	c2 := math.Cos(f2)
	s2 := math.Sin(f2)
	t := math.Tan(df / 4)
	hx := 4.0 / 3.0 * r1 * t
	hy := 4.0 / 3.0 * r2 * t

	m1x, m1y := x1, y1
	m2x := x1 + hx*s1
	m2y := y1 - hy*c1
	m3x := x2 + hx*s2
	m3y := y2 - hy*c2
	m2x = 2*m1x - m2x
	m2y = 2*m1y - m2y

	curves := [][]float64{{m2x, m2y, m3x, m3y, x2, y2}}
	curves = append(curves, params...)

	if recursive != nil {
		return curves
	}

	// rotate everything back into place and regroup
	var flat []float64
	for _, c := range curves {
		flat = append(flat, c...)
	}
	out := make([][]float64, 0, len(flat)/6)
	for i := 0; i+5 < len(flat); i += 6 {
		group := make([]float64, 6)
		for j := 0; j < 6; j += 2 {
			group[j], group[j+1] = rotatePoint(flat[i+j], flat[i+j+1], angleRad)
		}
		out = append(out, group)
	}
	return out
}

func rotatePoint(x, y, rad float64) (float64, float64) {
	c := math.Cos(rad)
	s := math.Sin(rad)
	return x*c - y*s, x*s + y*c
}
