package svgpath

// Unarc replaces the arc segments of an absolute path with cubic curve
// approximations. Degenerate arcs become lines rather than being
// dropped, so shorthand segments around them keep their meaning.
func Unarc(p Path) Path {
	out := make(Path, 0, len(p))
	var cx, cy, subx, suby float64

	for _, seg := range p {
		switch seg.Cmd {
		case 'M':
			cx, cy = seg.Args[0], seg.Args[1]
			subx, suby = cx, cy
			out = append(out, seg)
		case 'H':
			cx = seg.Args[0]
			out = append(out, seg)
		case 'V':
			cy = seg.Args[0]
			out = append(out, seg)
		case 'Z':
			cx, cy = subx, suby
			out = append(out, seg)
		case 'A':
			x, y := seg.Args[5], seg.Args[6]
			curves := a2c(cx, cy, x, y, seg.Args[3] != 0, seg.Args[4] != 0,
				seg.Args[0], seg.Args[1], seg.Args[2])
			if len(curves) == 0 {
				out = append(out, Segment{Cmd: 'L', Args: []float64{x, y}})
			} else {
				for _, c := range curves {
					out = append(out, Segment{Cmd: 'C', Args: []float64{
						c[2], c[3], c[4], c[5], c[6], c[7],
					}})
				}
			}
			cx, cy = x, y
		default:
			n := len(seg.Args)
			if n >= 2 {
				cx, cy = seg.Args[n-2], seg.Args[n-1]
			}
			out = append(out, seg)
		}
	}
	return out
}
