package curve

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// TextOptions specifies optional settings for [Text] and [WriteText].
type TextOptions struct {
	// The maximum precision with which to format coordinates. A value of 0
	// chooses the highest precision necessary to unambiguously represent any
	// given coordinate.
	MaxPrecision int
	// The distance below which a segment is considered to start where the
	// previous one ended. Gaps at least this large are written as a new M
	// command. A value of 0 uses 1e-9.
	Tolerance float64
}

// Text converts a path to its textual representation.
//
// See [WriteText] for a version that writes to an [io.Writer] instead of
// returning a string, and for a description of the format.
func Text(p Path, opts TextOptions) string {
	sb := &strings.Builder{}
	WriteText(sb, p, opts)
	return sb.String()
}

// WriteText writes the textual representation of a path to w.
//
// The format resembles SVG path data, with three coordinates per point,
// separated by commas, and only absolute commands:
//
//	M x,y,z               move to
//	L x,y,z               line to
//	Q x,y,z x,y,z         quadratic Bézier to
//	C x,y,z x,y,z x,y,z   cubic Bézier to
//	A x,y,z x,y,z         circular arc through the first point to the second
//	Z                     close the subpath with a line
//
// Polylines are written as a series of lines. Arcs that sweep more than half
// a circle are written as two arcs.
func WriteText(w io.Writer, p Path, opts TextOptions) error {
	tol := opts.Tolerance
	if tol == 0 {
		tol = 1e-9
	}
	space := []byte(" ")
	var err error
	write := func(s []byte) {
		if err != nil {
			return
		}
		_, err = w.Write(s)
	}
	writef := func(s string, v ...any) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, s, v...)
	}
	format := func(n float64) string {
		var s string
		if maxPrec := opts.MaxPrecision; maxPrec <= 0 {
			s = strconv.FormatFloat(n, 'f', -1, 64)
		} else {
			s = strconv.FormatFloat(n, 'f', maxPrec, 64)
			s = strings.TrimRight(s, "0")
			s = strings.TrimSuffix(s, ".")
		}
		if s == "-0" {
			s = "0"
		}
		return s
	}
	pt := func(p Point) string {
		return format(p.X) + "," + format(p.Y) + "," + format(p.Z)
	}
	cmd := func(c byte, pts ...Point) {
		write(space)
		writef("%c", c)
		for i, p := range pts {
			if i > 0 {
				write(space)
			}
			writef("%s", pt(p))
		}
	}

	var arc func(a Arc)
	arc = func(a Arc) {
		if math.Abs(a.SweepAngle) > math.Pi {
			arc(a.Subsegment(0, 0.5))
			arc(a.Subsegment(0.5, 1))
			return
		}
		cmd('A', a.Eval(0.5), a.End())
	}

	first := true
	var last Point
	for _, seg := range p {
		if err != nil {
			return err
		}
		if first {
			writef("M%s", pt(seg.Start()))
			first = false
		} else if last.Distance(seg.Start()) >= tol {
			cmd('M', seg.Start())
		}
		switch seg := seg.(type) {
		case Line:
			cmd('L', seg.P1)
		case QuadBez:
			cmd('Q', seg.P1, seg.P2)
		case CubicBez:
			cmd('C', seg.P1, seg.P2, seg.P3)
		case Arc:
			arc(seg)
		case Polyline:
			for _, v := range seg[min(1, len(seg)):] {
				cmd('L', v)
			}
		default:
			panic(fmt.Sprintf("unhandled segment type %T", seg))
		}
		last = seg.End()
	}
	return err
}

// SyntaxError describes malformed input to [ParseText].
type SyntaxError struct {
	// Byte offset into the input at which the error was detected.
	Offset int
	Msg    string
}

func (err *SyntaxError) Error() string {
	return fmt.Sprintf("curve: syntax error at offset %d: %s", err.Offset, err.Msg)
}

type textParser struct {
	s   string
	off int
}

func (tp *textParser) errorf(format string, args ...any) error {
	return &SyntaxError{Offset: tp.off, Msg: fmt.Sprintf(format, args...)}
}

func (tp *textParser) skipSpace() {
	for tp.off < len(tp.s) {
		switch tp.s[tp.off] {
		case ' ', '\t', '\n', '\r':
			tp.off++
		default:
			return
		}
	}
}

func (tp *textParser) eof() bool {
	tp.skipSpace()
	return tp.off >= len(tp.s)
}

// peekCommand returns the command letter at the current offset, or 0 if the
// next token isn't a command.
func (tp *textParser) peekCommand() byte {
	if tp.eof() {
		return 0
	}
	switch c := tp.s[tp.off]; c {
	case 'M', 'L', 'Q', 'C', 'A', 'Z':
		return c
	default:
		return 0
	}
}

func (tp *textParser) number() (float64, error) {
	start := tp.off
	for tp.off < len(tp.s) {
		c := tp.s[tp.off]
		if (c >= '0' && c <= '9') || c == '.' || c == '-' || c == '+' || c == 'e' {
			tp.off++
			continue
		}
		break
	}
	if start == tp.off {
		return 0, tp.errorf("expected number")
	}
	tok := tp.s[start:tp.off]
	n, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		tp.off = start
		return 0, tp.errorf("invalid number %q", tok)
	}
	return n, nil
}

func (tp *textParser) point() (Point, error) {
	tp.skipSpace()
	var out [3]float64
	for i := range out {
		if i > 0 {
			if tp.off >= len(tp.s) || tp.s[tp.off] != ',' {
				return Point{}, tp.errorf("expected ','")
			}
			tp.off++
		}
		n, err := tp.number()
		if err != nil {
			return Point{}, err
		}
		out[i] = n
	}
	return Pt(out[0], out[1], out[2]), nil
}

func (tp *textParser) points(pts []Point) error {
	for i := range pts {
		pt, err := tp.point()
		if err != nil {
			return err
		}
		pts[i] = pt
	}
	return nil
}

// ParseText parses the textual representation of a path, as written by
// [WriteText].
//
// As in SVG, a command letter may be followed by several sets of points, in
// which case the command repeats. Points following an M command are treated
// as lines. A path consisting of several subpaths results in a [Path] that
// isn't continuous. Errors are of type *[SyntaxError].
func ParseText(s string) (Path, error) {
	tp := &textParser{s: s}
	var out Path
	var cur, subpathStart Point
	var started bool
	var command byte
	for !tp.eof() {
		if c := tp.peekCommand(); c != 0 {
			command = c
			tp.off++
		} else if command == 0 {
			return nil, tp.errorf("expected command")
		}
		if !started && command != 'M' {
			return nil, tp.errorf("path must start with M")
		}

		switch command {
		case 'M':
			pt, err := tp.point()
			if err != nil {
				return nil, err
			}
			cur, subpathStart, started = pt, pt, true
			command = 'L'
			continue
		case 'L':
			pt, err := tp.point()
			if err != nil {
				return nil, err
			}
			out = append(out, Line{cur, pt})
			cur = pt
		case 'Q':
			var pts [2]Point
			if err := tp.points(pts[:]); err != nil {
				return nil, err
			}
			out = append(out, QuadBez{cur, pts[0], pts[1]})
			cur = pts[1]
		case 'C':
			var pts [3]Point
			if err := tp.points(pts[:]); err != nil {
				return nil, err
			}
			out = append(out, CubicBez{cur, pts[0], pts[1], pts[2]})
			cur = pts[2]
		case 'A':
			off := tp.off
			var pts [2]Point
			if err := tp.points(pts[:]); err != nil {
				return nil, err
			}
			a, ok := NewArcThroughPoints(cur, pts[0], pts[1])
			if !ok {
				tp.off = off
				return nil, tp.errorf("arc points are collinear")
			}
			out = append(out, a)
			cur = pts[1]
		case 'Z':
			if cur != subpathStart {
				out = append(out, Line{cur, subpathStart})
				cur = subpathStart
			}
			// Z takes no points, so it can't repeat.
			command = 0
		}
	}
	return out, nil
}
