// Command crvtess tessellates the curved segments of a path.
//
// The path is read in the text format of the curve package, for example
//
//	M10,-10,0 L10,0,0 A7.0710678,7.0710678,0 0,10,0
//
// and written back in the same format, with every curved segment replaced by
// a polyline. A summary of the number of curved segments is printed to
// standard error.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	"golang.org/x/term"
	"honnef.co/go/tessellate"
	"honnef.co/go/tessellate/curve"
)

// pipeName is the file name that indicates stdin/stdout is being used.
const pipeName = "-"

// Bounds of the -div flag.
const (
	minDivisions = 1
	maxDivisions = 10
)

const (
	defaultColor = "\x1b[0m"
	statusColor  = "\x1b[36m"
	errorColor   = "\x1b[31m"
)

var (
	source      = flag.String("in", pipeName, "Source path file")
	destination = flag.String("out", pipeName, "Destination path file")
	divisions   = flag.Int("div", tessellate.DefaultDivisions, "Number of edges per curved segment")
	samples     = flag.Int("samples", tessellate.DefaultSamples, "Tangent samples per segment")
	angle       = flag.Float64("angle", curve.DefaultAngleTolerance, "Angle tolerance in radians")
	tolerance   = flag.Float64("tol", tessellate.DefaultTolerance, "Join tolerance")
	precision   = flag.Int("prec", 0, "Maximum number of decimals in the output, 0 for exact")
	workers     = flag.Int("workers", 1, "Number of goroutines processing segments")
	verbose     = flag.Bool("v", false, "Log each segment's classification")
)

func main() {
	log.SetFlags(0)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: crvtess [flags]\n\nTessellates the curved segments of a path.\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *divisions < minDivisions || *divisions > maxDivisions {
		log.Fatal(decorate(fmt.Sprintf("division count must be between %d and %d", minDivisions, maxDivisions), errorColor))
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	tessellate.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	opts := tessellate.Options{
		Samples:        *samples,
		AngleTolerance: *angle,
		Tolerance:      *tolerance,
		Workers:        *workers,
	}
	status, err := process(*source, *destination, *divisions, opts, curve.TextOptions{MaxPrecision: *precision})
	if err != nil {
		log.Fatal(decorate(err.Error(), errorColor))
	}
	fmt.Fprintln(os.Stderr, decorate(status, statusColor))
}

// process tessellates the path in the file in and writes the result to the
// file out, closing both before returning.
func process(in, out string, divisions int, opts tessellate.Options, textOpts curve.TextOptions) (status string, err error) {
	src, dst, err := pathToFile(in, out)
	if err != nil {
		return "", err
	}
	if c, ok := src.(io.Closer); ok && src != os.Stdin {
		defer c.Close()
	}
	if c, ok := dst.(io.Closer); ok && dst != os.Stdout {
		defer func() {
			if cerr := c.Close(); err == nil {
				err = cerr
			}
		}()
	}

	status, err = run(src, dst, divisions, opts, textOpts)
	if err != nil {
		return "", fmt.Errorf("error tessellating the path: %w", err)
	}
	return status, nil
}

// run reads a path from r, tessellates it and writes the result to w. It
// returns the status line.
func run(r io.Reader, w io.Writer, divisions int, opts tessellate.Options, textOpts curve.TextOptions) (string, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	p, err := curve.ParseText(string(b))
	if err != nil {
		return "", err
	}
	res, err := tessellate.Tessellate(p, divisions, opts)
	if err != nil {
		return "", err
	}
	if err := curve.WriteText(w, res.Path, textOpts); err != nil {
		return "", err
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return "", err
	}
	return res.Status, nil
}

// pathToFile converts the source and destination paths to readable and writable files.
func pathToFile(in, out string) (io.Reader, io.Writer, error) {
	var (
		src io.Reader
		dst io.Writer
		err error
	)
	if in == pipeName {
		if term.IsTerminal(int(os.Stdin.Fd())) {
			return nil, nil, errors.New("`-` should be used with a pipe for stdin")
		}
		src = os.Stdin
	} else {
		src, err = os.Open(in)
		if err != nil {
			return nil, nil, fmt.Errorf("unable to open the source file: %v", err)
		}
	}

	if out == pipeName {
		if term.IsTerminal(int(os.Stdout.Fd())) {
			return nil, nil, errors.New("`-` should be used with a pipe for stdout")
		}
		dst = os.Stdout
	} else {
		dst, err = os.Create(out)
		if err != nil {
			if c, ok := src.(io.Closer); ok && src != os.Stdin {
				c.Close()
			}
			return nil, nil, fmt.Errorf("unable to create the destination file: %v", err)
		}
	}
	return src, dst, nil
}

// decorate colors s if standard error is a terminal.
func decorate(s string, color string) string {
	if !term.IsTerminal(int(os.Stderr.Fd())) {
		return s
	}
	return color + s + defaultColor
}
