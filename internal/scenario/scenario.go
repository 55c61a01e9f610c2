// Package scenario reads YAML descriptions of segment pairs for the segx demo.
//
// A scenario file looks like:
//
//	epsilon: 1e-8        # optional, parallel tolerance
//	pairs:
//	  - name: shipped
//	    a: {start: [0, 3, 3], end: [3, 3, 3]}
//	    b: {start: [0, 0, 0], end: [11, 5, 0]}
//	  - a: {start: [0, 0], end: [1, 0]}   # two coordinates: z = 0
//	    b: {start: [1, 0], end: [1, 1]}
package scenario

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/geom3"
)

var (
	// ErrNoPairs is returned for a scenario without any pair.
	ErrNoPairs = errors.New("scenario: no pairs")

	// ErrBadPoint is returned for a point that does not have 2 or 3 coordinates.
	ErrBadPoint = errors.New("scenario: point needs 2 or 3 coordinates")
)

// Point is a point as written in YAML: [x, y] or [x, y, z].
type Point []float64

// Vec3 converts the point. A missing z is zero.
func (p Point) Vec3() (geom3.Vec3, error) {
	switch len(p) {
	case 2:
		return geom3.XY(p[0], p[1]), nil
	case 3:
		return geom3.V3(p[0], p[1], p[2]), nil
	default:
		return geom3.Vec3{}, fmt.Errorf("%w, got %d", ErrBadPoint, len(p))
	}
}

// Segment is a segment as written in YAML.
type Segment struct {
	Start Point `yaml:"start"`
	End   Point `yaml:"end"`
}

// Segment converts the segment.
func (s Segment) Segment() (geom3.Segment, error) {
	start, err := s.Start.Vec3()
	if err != nil {
		return geom3.Segment{}, fmt.Errorf("start: %w", err)
	}
	end, err := s.End.Vec3()
	if err != nil {
		return geom3.Segment{}, fmt.Errorf("end: %w", err)
	}
	return geom3.Seg(start, end), nil
}

// Pair is one named intersection query.
type Pair struct {
	Name string  `yaml:"name"`
	A    Segment `yaml:"a"`
	B    Segment `yaml:"b"`
}

// Scenario is a decoded scenario file.
type Scenario struct {
	Epsilon float64 `yaml:"epsilon"`
	Pairs   []Pair  `yaml:"pairs"`
}

// Case is a validated pair ready for geom3.Solve.
type Case struct {
	Name string
	A, B geom3.Segment
}

// Options returns the solver options the scenario asks for.
func (s *Scenario) Options() []geom3.Option {
	if s.Epsilon > 0 {
		return []geom3.Option{geom3.WithEpsilon(s.Epsilon)}
	}
	return nil
}

// Cases validates every pair and converts it.
// Unnamed pairs are called "pair-N", counting from 1.
func (s *Scenario) Cases() ([]Case, error) {
	if len(s.Pairs) == 0 {
		return nil, ErrNoPairs
	}

	cases := make([]Case, 0, len(s.Pairs))
	for i, p := range s.Pairs {
		name := p.Name
		if name == "" {
			name = fmt.Sprintf("pair-%d", i+1)
		}
		a, err := p.A.Segment()
		if err != nil {
			return nil, fmt.Errorf("%s: a: %w", name, err)
		}
		b, err := p.B.Segment()
		if err != nil {
			return nil, fmt.Errorf("%s: b: %w", name, err)
		}
		cases = append(cases, Case{Name: name, A: a, B: b})
	}
	return cases, nil
}

// Decode reads a scenario from r. Unknown keys are rejected.
func Decode(r io.Reader) (*Scenario, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var s Scenario
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoPairs
		}
		return nil, fmt.Errorf("scenario: decode: %w", err)
	}
	return &s, nil
}

// Load reads a scenario file.
func Load(path string) (*Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: %w", err)
	}
	defer f.Close()

	return Decode(f)
}
