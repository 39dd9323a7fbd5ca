package svgpath

import (
	"errors"
	"fmt"
	"strconv"

	gl "github.com/rustyoz/genericlexer"
)

// ErrMalformed wraps every parse failure of path data or transform
// lists, so callers can branch with errors.Is without matching message
// text.
var ErrMalformed = errors.New("malformed input")

// Parse tokenizes SVG path data into a Path. Implicit command repetition
// is expanded: extra coordinate groups after a command repeat it, with M
// and m repeating as L and l per the SVG grammar. Unknown command
// letters and malformed numbers are reported as errors wrapping
// [ErrMalformed].
func Parse(d string) (Path, error) {
	lex, _ := gl.Lex("svgpath", d)

	var path Path
	for {
		i := lex.NextItem()
		switch i.Type {
		case gl.ItemError:
			return nil, fmt.Errorf("svgpath: %w: %s", ErrMalformed, i.Value)
		case gl.ItemEOS:
			return path, nil
		case gl.ItemLetter:
			if len(i.Value) != 1 || argCount(i.Value[0]) < 0 {
				return nil, fmt.Errorf("svgpath: %w: unknown command %q", ErrMalformed, i.Value)
			}
			segs, err := parseCommand(lex, i.Value[0])
			if err != nil {
				return nil, err
			}
			path = append(path, segs...)
		default:
			// separators between commands
		}
	}
}

// parseCommand reads the arguments for cmd, repeating the command while
// further numbers follow.
func parseCommand(lex *gl.Lexer, cmd byte) ([]Segment, error) {
	n := argCount(cmd)
	if n == 0 {
		return []Segment{{Cmd: cmd}}, nil
	}

	var segs []Segment
	for {
		args := make([]float64, 0, n)
		for len(args) < n {
			v, err := parseNumber(lex)
			if err != nil {
				return nil, fmt.Errorf("svgpath: command %q: %w: %w", cmd, ErrMalformed, err)
			}
			args = append(args, v)
		}
		segs = append(segs, Segment{Cmd: cmd, Args: args})

		if !numberFollows(lex) {
			return segs, nil
		}
		// implicit repetition: a moveto continues as a lineto
		switch cmd {
		case 'M':
			cmd = 'L'
		case 'm':
			cmd = 'l'
		}
	}
}

// parseNumber consumes separators until the next number item and parses
// it.
func parseNumber(lex *gl.Lexer) (float64, error) {
	for {
		lex.ConsumeWhiteSpace()
		i := lex.PeekItem()
		switch i.Type {
		case gl.ItemNumber:
			i = lex.NextItem()
			v, err := strconv.ParseFloat(i.Value, 64)
			if err != nil {
				return 0, fmt.Errorf("bad number %q: %w", i.Value, err)
			}
			return v, nil
		case gl.ItemEOS, gl.ItemError, gl.ItemLetter:
			return 0, fmt.Errorf("expected number, got %q", i.Value)
		default:
			lex.NextItem()
		}
	}
}

// numberFollows reports whether the next non-separator item is a number,
// consuming any separators on the way.
func numberFollows(lex *gl.Lexer) bool {
	for {
		lex.ConsumeWhiteSpace()
		i := lex.PeekItem()
		switch i.Type {
		case gl.ItemNumber:
			return true
		case gl.ItemEOS, gl.ItemError, gl.ItemLetter:
			return false
		default:
			lex.NextItem()
		}
	}
}
