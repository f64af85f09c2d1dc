// Command padinfo prints how each border policy extends a sequence.
//
// Usage:
//
//	padinfo [flags] [border-name ...]
//
// Without arguments it prints the extension under every border policy.
//
// Examples:
//
//	padinfo -src 1,2,3 -size 7
//	padinfo -src 1,2,3 -size 11 mirror circular
//	padinfo -src 1,2,3,4 -cols 2 -out 4x5 nearest
//	padinfo -value 9 constant
//	padinfo -list
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-border/dsp/pad"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type options struct {
	src   []float64
	size  int
	cols  int
	out   pad.Shape
	value float64
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("padinfo", flag.ContinueOnError)
	fs.SetOutput(stderr)
	srcFlag := fs.String("src", "1,2,3", "comma separated source samples")
	size := fs.Int("size", 0, "output length for 1D sources (default 3x the source length)")
	cols := fs.Int("cols", 0, "treat -src as a row-major grid with this many columns")
	outFlag := fs.String("out", "", "output shape RxC for grid sources (default 3x each extent)")
	value := fs.Float64("value", 0, "border value for the constant policy")
	list := fs.Bool("list", false, "list available border names")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: padinfo [flags] [border-name ...]\n\n")
		fmt.Fprintf(stderr, "Prints how border policies extend a 1D or 2D source.\n")
		fmt.Fprintf(stderr, "Without border names, prints every policy.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  padinfo -src 1,2,3 -size 7\n")
		fmt.Fprintf(stderr, "  padinfo -src 1,2,3,4 -cols 2 -out 4x5 nearest\n")
		fmt.Fprintf(stderr, "  padinfo -list\n")
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if *list {
		for _, b := range pad.Borders() {
			fmt.Fprintln(stdout, b)
		}
		return 0
	}

	borders, err := resolveBorders(fs.Args())
	if err != nil {
		fmt.Fprintf(stderr, "error: %v (use -list to see available)\n", err)
		return 1
	}

	src, err := parseSamples(*srcFlag)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	opts := options{src: src, size: *size, cols: *cols, value: *value}
	if *outFlag != "" {
		if opts.out, err = parseShape(*outFlag); err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return 1
		}
	}

	if opts.cols > 0 {
		err = print2D(stdout, borders, opts)
	} else {
		err = print1D(stdout, borders, opts)
	}
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	return 0
}

func resolveBorders(names []string) ([]pad.Border, error) {
	if len(names) == 0 {
		return pad.Borders(), nil
	}
	borders := make([]pad.Border, 0, len(names))
	for _, name := range names {
		b, err := pad.ParseBorder(name)
		if err != nil {
			return nil, err
		}
		borders = append(borders, b)
	}
	return borders, nil
}

func parseSamples(s string) ([]float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	fields := strings.Split(s, ",")
	out := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid sample %q: %w", f, err)
		}
		out[i] = v
	}
	return out, nil
}

func parseShape(s string) (pad.Shape, error) {
	r, c, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return nil, fmt.Errorf("invalid shape %q, want RxC", s)
	}
	rows, err := strconv.Atoi(strings.TrimSpace(r))
	if err != nil {
		return nil, fmt.Errorf("invalid shape %q: %w", s, err)
	}
	cols, err := strconv.Atoi(strings.TrimSpace(c))
	if err != nil {
		return nil, fmt.Errorf("invalid shape %q: %w", s, err)
	}
	return pad.Shape{rows, cols}, nil
}

func formatRow(v []float64) string {
	parts := make([]string, len(v))
	for i, x := range v {
		parts[i] = strconv.FormatFloat(x, 'g', -1, 64)
	}
	return strings.Join(parts, "\t")
}

func print1D(w io.Writer, borders []pad.Border, o options) error {
	size := o.size
	if size == 0 {
		size = 3 * len(o.src)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Border\tOffset\tOutput\n")
	fmt.Fprintf(tw, "------\t------\t------\n")
	for _, b := range borders {
		out, err := pad.Padded(o.src, size, b, o.value)
		if err != nil {
			return err
		}
		fmt.Fprintf(tw, "%s\t%d\t%s\n", b, pad.Offset(size, len(o.src)), formatRow(out))
	}
	return tw.Flush()
}

func print2D(w io.Writer, borders []pad.Border, o options) error {
	if len(o.src)%o.cols != 0 {
		return fmt.Errorf("%d samples do not fill rows of %d columns", len(o.src), o.cols)
	}
	src, err := pad.GridFrom(len(o.src)/o.cols, o.cols, o.src)
	if err != nil {
		return err
	}
	out := o.out
	if out == nil {
		out = pad.Shape{3 * src.Rows, 3 * src.Cols}
	}

	for i, b := range borders {
		g, err := pad.Padded2D(src, out[0], out[1], b, o.value)
		if err != nil {
			return err
		}
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "%s %v (offset %v):\n", b, g.Shape(), out.Offsets(src.Shape()))
		tw := tabwriter.NewWriter(w, 0, 0, 1, ' ', tabwriter.AlignRight)
		for r := 0; r < g.Rows; r++ {
			fmt.Fprintf(tw, "%s\t\n", formatRow(g.Row(r)))
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}
	return nil
}
