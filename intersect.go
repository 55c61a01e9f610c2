package geom3

// Kind classifies the outcome of Solve.
type Kind int

const (
	// Parallel means |d1 × d2|² is below the tolerance: the segments are
	// parallel (collinear ones included) or one of them is degenerate.
	// It is the zero Kind, so a zero Result is never a hit.
	Parallel Kind = iota

	// OutOfRange means the lines are not parallel but at least one parameter lies
	// outside [0, 1].
	OutOfRange

	// Crossing means both line parameters fall in [0, 1].
	Crossing
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case Crossing:
		return "crossing"
	case Parallel:
		return "parallel"
	case OutOfRange:
		return "out of range"
	default:
		return "unknown"
	}
}

// Result is the detailed outcome of Solve.
type Result struct {
	Kind Kind

	// Point is a.At(T1). Zero unless Kind is Crossing.
	Point Vec3

	// T1 and T2 are the solved parameters along the first and second
	// segment. Both are zero for Parallel.
	T1, T2 float64

	// Gap is the distance between a.At(T1) and b.At(T2). It is zero for
	// lines that really meet and positive for skew lines. Gap does not take
	// part in the decision.
	Gap float64
}

// Hit reports whether the segments intersect.
func (r Result) Hit() bool {
	return r.Kind == Crossing
}

// Skew reports whether an accepted intersection lies farther than tol from
// the second segment's line, i.e. the input lines were skew.
func (r Result) Skew(tol float64) bool {
	return r.Hit() && r.Gap > tol
}

// Intersect returns the intersection point of segments a and b.
// The boolean is false when there is no intersection; the reason is not
// reported (use Solve for that).
//
// Touching at an endpoint counts as an intersection. Parallel segments,
// including collinear overlapping ones, never intersect.
//
// The parameters are solved without first checking that the two lines are
// coplanar. For skew lines the returned point lies on a but not necessarily
// on b. Result.Gap from Solve measures how far off it is.
func Intersect(a, b Segment) (Vec3, bool) {
	r := Solve(a, b)
	return r.Point, r.Hit()
}

// Solve computes the intersection of segments a and b and reports why it was
// accepted or rejected.
//
// With d1 = a.End − a.Start, d2 = b.End − b.Start, d12 = b.Start − a.Start
// and n = d1 × d2:
//
//	t1 = ((d12 × d2) · n) / |n|²
//	t2 = ((d12 × d1) · n) / |n|²
//
// The segments are Parallel when |n|² is below the tolerance (DefaultEpsilon
// unless overridden by WithEpsilon) and cross when 0 ≤ t1, t2 ≤ 1.
func Solve(a, b Segment, opts ...Option) Result {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	d1 := Sub(a.End, a.Start)
	d2 := Sub(b.End, b.Start)
	d12 := Sub(b.Start, a.Start)

	n := Cross(d1, d2)
	m := n.LengthSquared()
	if m < o.epsilon {
		Logger().Debug("geom3: segments parallel",
			"cross_length_sq", m, "epsilon", o.epsilon)
		return Result{Kind: Parallel}
	}

	t1 := Dot(Cross(d12, d2), n) / m
	t2 := Dot(Cross(d12, d1), n) / m

	p1 := a.Start.Add(d1.Mul(t1))
	p2 := b.Start.Add(d2.Mul(t2))
	r := Result{
		Kind: OutOfRange,
		T1:   t1,
		T2:   t2,
		Gap:  p1.Sub(p2).Length(),
	}

	if !inUnit(t1) || !inUnit(t2) {
		Logger().Debug("geom3: parameter outside segment",
			"t1", t1, "t2", t2)
		return r
	}

	r.Kind = Crossing
	r.Point = p1
	return r
}

// inUnit reports whether t lies in the closed interval [0, 1].
func inUnit(t float64) bool {
	return t >= 0 && t <= 1
}
