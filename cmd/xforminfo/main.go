// Command xforminfo prints the matrix produced by a chain of 2D affine
// transform operations applied to the identity.
//
// Usage:
//
//	xforminfo [flags] [op ...]
//
// Each op is NAME:ARGS with comma-separated numeric arguments.
//
// Examples:
//
//	xforminfo scale:2,4
//	xforminfo scale:2,4 translate:1,1 rotate:30
//	xforminfo -square rotate:90
//	xforminfo -list
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-affine/affine"
)

type opEntry struct {
	name  string
	nargs int
	usage string
	apply func(m *affine.Mat, args []float64) error
}

var registry = []opEntry{
	{"scale", 2, "scale:SX,SY", func(m *affine.Mat, a []float64) error {
		return affine.ScaleInPlace(m, a[0], a[1])
	}},
	{"translate", 2, "translate:TX,TY", func(m *affine.Mat, a []float64) error {
		return affine.TranslateInPlace(m, a[0], a[1])
	}},
	{"rotate", 1, "rotate:DEG", func(m *affine.Mat, a []float64) error {
		return affine.RotateDegInPlace(m, a[0])
	}},
	{"skew", 2, "skew:XDEG,YDEG", func(m *affine.Mat, a []float64) error {
		return affine.SkewDegInPlace(m, a[0], a[1])
	}},
}

func main() {
	square := flag.Bool("square", false, "also print the image of the unit square")
	list := flag.Bool("list", false, "list available operations")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: xforminfo [flags] [op ...]\n\n")
		fmt.Fprintf(os.Stderr, "Applies a chain of affine operations to the identity matrix\n")
		fmt.Fprintf(os.Stderr, "and prints the result. Each op is NAME:ARGS.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  xforminfo scale:2,4 translate:1,1\n")
		fmt.Fprintf(os.Stderr, "  xforminfo -square rotate:90\n")
		fmt.Fprintf(os.Stderr, "  xforminfo -list\n")
	}
	flag.Parse()

	if *list {
		printList()
		return
	}

	args := flag.Args()
	if len(args) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	m := affine.Identity()
	for _, arg := range args {
		if err := applyOp(m, arg); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	}

	printMatrix(m)

	if *square {
		printSquare(m)
	}
}

func printList() {
	for _, e := range registry {
		fmt.Println(e.usage)
	}
}

func applyOp(m *affine.Mat, arg string) error {
	name, rest, _ := strings.Cut(strings.TrimSpace(arg), ":")
	name = strings.ToLower(name)

	for _, e := range registry {
		if e.name != name {
			continue
		}

		parts := strings.Split(rest, ",")
		if rest == "" || len(parts) != e.nargs {
			return fmt.Errorf("op %q wants %d argument(s), use %s", name, e.nargs, e.usage)
		}

		vals := make([]float64, len(parts))
		for i, p := range parts {
			v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
			if err != nil {
				return fmt.Errorf("op %q: bad argument %q", name, p)
			}
			vals[i] = v
		}

		return e.apply(m, vals)
	}

	return fmt.Errorf("unknown op %q (use -list to see available)", name)
}

func printMatrix(m *affine.Mat) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	for r := 0; r < m.Rows(); r++ {
		for c := 0; c < m.Cols(); c++ {
			fmt.Fprintf(tw, "%.6g\t", m.At(r, c))
		}
		fmt.Fprintln(tw)
	}
	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}

func printSquare(m *affine.Mat) {
	srcX := []float64{0, 1, 1, 0}
	srcY := []float64{0, 0, 1, 1}
	dstX := make([]float64, 4)
	dstY := make([]float64, 4)

	if err := affine.TransformPoints(dstX, dstY, srcX, srcY, m); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println()
	fmt.Println("unit square:")
	for i := range dstX {
		fmt.Printf("  (%g, %g) -> (%.6g, %.6g)\n", srcX[i], srcY[i], dstX[i], dstY[i])
	}
}
