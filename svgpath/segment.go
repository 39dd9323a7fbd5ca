package svgpath

import (
	"strconv"
	"strings"
)

// Segment is a single path command with its numeric arguments. Cmd holds
// the command letter exactly as written, so case carries the
// absolute/relative distinction.
type Segment struct {
	Cmd  byte
	Args []float64
}

// Relative reports whether the segment uses relative coordinates.
func (s Segment) Relative() bool {
	return s.Cmd >= 'a' && s.Cmd <= 'z'
}

// upper returns the command letter folded to upper case.
func (s Segment) upper() byte {
	if s.Relative() {
		return s.Cmd - 'a' + 'A'
	}
	return s.Cmd
}

// Path is an ordered list of path segments.
type Path []Segment

// argCount returns the number of arguments a command letter takes, or -1
// for an unknown letter.
func argCount(cmd byte) int {
	switch cmd {
	case 'M', 'm', 'L', 'l', 'T', 't':
		return 2
	case 'H', 'h', 'V', 'v':
		return 1
	case 'C', 'c':
		return 6
	case 'S', 's', 'Q', 'q':
		return 4
	case 'A', 'a':
		return 7
	case 'Z', 'z':
		return 0
	}
	return -1
}

// formatNum renders a coordinate the shortest way that round-trips.
func formatNum(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// String renders the segment as the command letter followed by its
// space-separated arguments. Arc flags print as 0 or 1.
func (s Segment) String() string {
	if len(s.Args) == 0 {
		return string(s.Cmd)
	}
	var sb strings.Builder
	sb.WriteByte(s.Cmd)
	for _, a := range s.Args {
		sb.WriteByte(' ')
		sb.WriteString(formatNum(a))
	}
	return sb.String()
}

// String renders the path with single spaces between segments.
func (p Path) String() string {
	parts := make([]string, len(p))
	for i, s := range p {
		parts[i] = s.String()
	}
	return strings.Join(parts, " ")
}

// Clone returns a deep copy of the path.
func (p Path) Clone() Path {
	out := make(Path, len(p))
	for i, s := range p {
		args := make([]float64, len(s.Args))
		copy(args, s.Args)
		out[i] = Segment{Cmd: s.Cmd, Args: args}
	}
	return out
}
