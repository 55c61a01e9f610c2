package geom3

// Segment is a directed 3D line segment from Start to End.
//
// Degenerate segments (Start == End) are allowed. They have a zero direction
// and never intersect anything.
type Segment struct {
	Start Vec3
	End   Vec3
}

// Seg is a convenience function to create a Segment.
func Seg(start, end Vec3) Segment {
	return Segment{Start: start, End: end}
}

// Direction returns End − Start.
func (s Segment) Direction() Vec3 {
	return Sub(s.End, s.Start)
}

// SquaredLength returns the squared length of the segment.
func (s Segment) SquaredLength() float64 {
	d := s.Direction()
	return Dot(d, d)
}

// Length returns the Euclidean length of the segment.
func (s Segment) Length() float64 {
	return s.Direction().Length()
}

// At returns the point Start + t·(End − Start).
// t=0 is Start, t=1 is End; values outside [0, 1] lie on the extension.
func (s Segment) At(t float64) Vec3 {
	return s.Start.Add(s.Direction().Mul(t))
}

// Reverse returns the segment with its endpoints swapped.
func (s Segment) Reverse() Segment {
	return Segment{Start: s.End, End: s.Start}
}

// IsDegenerate reports whether both endpoints coincide.
func (s Segment) IsDegenerate() bool {
	return s.Start == s.End
}

func (s Segment) String() string {
	return s.Start.String() + "->" + s.End.String()
}
