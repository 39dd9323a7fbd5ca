package svgpath

// Absolutize rewrites every segment into its absolute form, tracking the
// current point and the start of the current subpath. The result uses
// only upper-case commands.
func Absolutize(p Path) Path {
	out := make(Path, 0, len(p))
	var cx, cy, subx, suby float64

	for _, seg := range p {
		switch seg.Cmd {
		case 'M':
			cx, cy = seg.Args[0], seg.Args[1]
			subx, suby = cx, cy
			out = append(out, Segment{Cmd: 'M', Args: []float64{cx, cy}})
		case 'm':
			cx += seg.Args[0]
			cy += seg.Args[1]
			subx, suby = cx, cy
			out = append(out, Segment{Cmd: 'M', Args: []float64{cx, cy}})
		case 'L':
			cx, cy = seg.Args[0], seg.Args[1]
			out = append(out, Segment{Cmd: 'L', Args: []float64{cx, cy}})
		case 'l':
			cx += seg.Args[0]
			cy += seg.Args[1]
			out = append(out, Segment{Cmd: 'L', Args: []float64{cx, cy}})
		case 'H':
			cx = seg.Args[0]
			out = append(out, Segment{Cmd: 'H', Args: []float64{cx}})
		case 'h':
			cx += seg.Args[0]
			out = append(out, Segment{Cmd: 'H', Args: []float64{cx}})
		case 'V':
			cy = seg.Args[0]
			out = append(out, Segment{Cmd: 'V', Args: []float64{cy}})
		case 'v':
			cy += seg.Args[0]
			out = append(out, Segment{Cmd: 'V', Args: []float64{cy}})
		case 'C':
			cx, cy = seg.Args[4], seg.Args[5]
			out = append(out, Segment{Cmd: 'C', Args: append([]float64(nil), seg.Args...)})
		case 'c':
			out = append(out, Segment{Cmd: 'C', Args: []float64{
				seg.Args[0] + cx, seg.Args[1] + cy,
				seg.Args[2] + cx, seg.Args[3] + cy,
				seg.Args[4] + cx, seg.Args[5] + cy,
			}})
			cx += seg.Args[4]
			cy += seg.Args[5]
		case 'S':
			cx, cy = seg.Args[2], seg.Args[3]
			out = append(out, Segment{Cmd: 'S', Args: append([]float64(nil), seg.Args...)})
		case 's':
			out = append(out, Segment{Cmd: 'S', Args: []float64{
				seg.Args[0] + cx, seg.Args[1] + cy,
				seg.Args[2] + cx, seg.Args[3] + cy,
			}})
			cx += seg.Args[2]
			cy += seg.Args[3]
		case 'Q':
			cx, cy = seg.Args[2], seg.Args[3]
			out = append(out, Segment{Cmd: 'Q', Args: append([]float64(nil), seg.Args...)})
		case 'q':
			out = append(out, Segment{Cmd: 'Q', Args: []float64{
				seg.Args[0] + cx, seg.Args[1] + cy,
				seg.Args[2] + cx, seg.Args[3] + cy,
			}})
			cx += seg.Args[2]
			cy += seg.Args[3]
		case 'T':
			cx, cy = seg.Args[0], seg.Args[1]
			out = append(out, Segment{Cmd: 'T', Args: []float64{cx, cy}})
		case 't':
			cx += seg.Args[0]
			cy += seg.Args[1]
			out = append(out, Segment{Cmd: 'T', Args: []float64{cx, cy}})
		case 'A':
			cx, cy = seg.Args[5], seg.Args[6]
			out = append(out, Segment{Cmd: 'A', Args: append([]float64(nil), seg.Args...)})
		case 'a':
			out = append(out, Segment{Cmd: 'A', Args: []float64{
				seg.Args[0], seg.Args[1], seg.Args[2], seg.Args[3], seg.Args[4],
				seg.Args[5] + cx, seg.Args[6] + cy,
			}})
			cx += seg.Args[5]
			cy += seg.Args[6]
		case 'Z', 'z':
			cx, cy = subx, suby
			out = append(out, Segment{Cmd: 'Z'})
		}
	}
	return out
}
