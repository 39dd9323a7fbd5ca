package svgpath

// Unshort expands the shorthand segments of an absolute path: S becomes
// C and T becomes Q, with the reflected control points made explicit.
func Unshort(p Path) Path {
	out := make(Path, 0, len(p))
	var cx, cy, subx, suby float64
	var lcx, lcy float64
	var lastCmd byte

	for _, seg := range p {
		cmd := seg.Cmd
		switch seg.Cmd {
		case 'M':
			cx, cy = seg.Args[0], seg.Args[1]
			subx, suby = cx, cy
			out = append(out, seg)
		case 'L':
			cx, cy = seg.Args[0], seg.Args[1]
			out = append(out, seg)
		case 'H':
			cx = seg.Args[0]
			out = append(out, seg)
		case 'V':
			cy = seg.Args[0]
			out = append(out, seg)
		case 'C':
			lcx, lcy = seg.Args[2], seg.Args[3]
			cx, cy = seg.Args[4], seg.Args[5]
			out = append(out, seg)
		case 'S':
			x1, y1 := cx, cy
			if lastCmd == 'C' || lastCmd == 'S' {
				x1 = cx + (cx - lcx)
				y1 = cy + (cy - lcy)
			}
			out = append(out, Segment{Cmd: 'C', Args: []float64{
				x1, y1, seg.Args[0], seg.Args[1], seg.Args[2], seg.Args[3],
			}})
			lcx, lcy = seg.Args[0], seg.Args[1]
			cx, cy = seg.Args[2], seg.Args[3]
			cmd = 'C'
		case 'Q':
			lcx, lcy = seg.Args[0], seg.Args[1]
			cx, cy = seg.Args[2], seg.Args[3]
			out = append(out, seg)
		case 'T':
			x1, y1 := cx, cy
			if lastCmd == 'Q' || lastCmd == 'T' {
				x1 = cx + (cx - lcx)
				y1 = cy + (cy - lcy)
			}
			out = append(out, Segment{Cmd: 'Q', Args: []float64{
				x1, y1, seg.Args[0], seg.Args[1],
			}})
			lcx, lcy = x1, y1
			cx, cy = seg.Args[0], seg.Args[1]
			cmd = 'Q'
		case 'A':
			cx, cy = seg.Args[5], seg.Args[6]
			out = append(out, seg)
		case 'Z':
			cx, cy = subx, suby
			out = append(out, seg)
		default:
			out = append(out, seg)
		}
		lastCmd = cmd
	}
	return out
}
