// Command segx intersects two 3D line segments and prints the result.
//
// Without flags it solves the sample pair (0,3,3)->(3,3,3) and
// (0,0,0)->(11,5,0), which does not intersect. Use -scenario to solve the
// pairs of a YAML file and -png to draw a diagram of the first pair.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/geom3"
	"github.com/gogpu/geom3/internal/plot"
	"github.com/gogpu/geom3/internal/scenario"
)

// noHit is printed when a pair does not intersect.
const noHit = "No intersection point found."

func main() {
	log.SetFlags(0)
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		log.Fatalf("segx: %v", err)
	}
}

func sample() []scenario.Case {
	return []scenario.Case{{
		Name: "sample",
		A:    geom3.Seg(geom3.V3(0, 3, 3), geom3.V3(3, 3, 3)),
		B:    geom3.Seg(geom3.V3(0, 0, 0), geom3.V3(11, 5, 0)),
	}}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("segx", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		file    = fs.String("scenario", "", "YAML file with segment pairs")
		detail  = fs.Bool("detail", false, "print kind, parameters and gap")
		output  = fs.String("png", "", "write a diagram of the first pair to this file")
		plane   = fs.String("plane", "xy", "diagram projection plane: xy, xz or yz")
		size    = fs.Int("size", 512, "diagram width and height in pixels")
		eps     = fs.Float64("eps", 0, "parallel tolerance (default 1e-8)")
		verbose = fs.Bool("v", false, "log solver decisions to stderr")
	)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	var p plot.Plane
	if *output != "" {
		var err error
		if p, err = plot.ParsePlane(*plane); err != nil {
			return err
		}
		if *size <= 0 {
			return fmt.Errorf("size must be positive, got %d", *size)
		}
	}

	if *verbose {
		prev := geom3.Logger()
		geom3.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
		defer geom3.SetLogger(prev)
	}

	cases := sample()
	var opts []geom3.Option
	named := false
	if *file != "" {
		s, err := scenario.Load(*file)
		if err != nil {
			return err
		}
		if cases, err = s.Cases(); err != nil {
			return err
		}
		opts = s.Options()
		named = true
	}
	if *eps > 0 {
		opts = append(opts, geom3.WithEpsilon(*eps))
	}

	results := make([]geom3.Result, len(cases))
	for i, c := range cases {
		results[i] = geom3.Solve(c.A, c.B, opts...)
		line := format(results[i], *detail)
		if named {
			line = c.Name + ": " + line
		}
		if _, err := fmt.Fprintln(stdout, line); err != nil {
			return err
		}
	}

	if *output != "" {
		o := plot.DefaultOptions()
		o.Width, o.Height, o.Plane = *size, *size, p
		o.Margin = float64(*size) / 16
		img := plot.Draw(cases[0].A, cases[0].B, results[0], o)
		if err := plot.Save(*output, img); err != nil {
			return err
		}
		geom3.Logger().Debug("segx: diagram saved", "path", *output)
	}
	return nil
}

// format renders a result the way the demo prints it: the point, or the
// no-intersection message.
func format(r geom3.Result, detail bool) string {
	s := noHit
	if r.Hit() {
		s = r.Point.String()
	}
	if detail {
		s += fmt.Sprintf(" [%s t1=%g t2=%g gap=%g]", r.Kind, r.T1, r.T2, r.Gap)
	}
	return s
}
