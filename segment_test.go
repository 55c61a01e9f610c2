package geom3

import (
	"math"
	"testing"
)

func TestSegment_SquaredLength(t *testing.T) {
	tests := []struct {
		name   string
		s      Segment
		expect float64
	}{
		{"degenerate", Seg(V3(1, 1, 1), V3(1, 1, 1)), 0},
		{"unit", Seg(V3(0, 0, 0), V3(1, 0, 0)), 1},
		{"shipped example", Seg(V3(0, 3, 3), V3(3, 3, 3)), 9},
		{"1-2-2 reversed", Seg(V3(1, 2, 2), V3(0, 0, 0)), 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.s.SquaredLength(); math.Abs(got-tt.expect) > 1e-10 {
				t.Errorf("%v.SquaredLength() = %v, want %v", tt.s, got, tt.expect)
			}
			if got := tt.s.Length(); math.Abs(got-math.Sqrt(tt.expect)) > 1e-10 {
				t.Errorf("%v.Length() = %v, want %v", tt.s, got, math.Sqrt(tt.expect))
			}
		})
	}
}

func TestSegment_At(t *testing.T) {
	s := Seg(V3(0, 0, 0), V3(2, 4, -6))

	tests := []struct {
		t      float64
		expect Vec3
	}{
		{0, V3(0, 0, 0)},
		{1, V3(2, 4, -6)},
		{0.5, V3(1, 2, -3)},
		{2, V3(4, 8, -12)},
	}

	for _, tt := range tests {
		if got := s.At(tt.t); !got.Approx(tt.expect, 1e-10) {
			t.Errorf("At(%v) = %v, want %v", tt.t, got, tt.expect)
		}
	}
}

func TestSegment_Reverse(t *testing.T) {
	s := Seg(V3(1, 2, 3), V3(4, 5, 6))
	r := s.Reverse()
	if r.Start != s.End || r.End != s.Start {
		t.Errorf("Reverse() = %v", r)
	}
	if r.Direction() != s.Direction().Neg() {
		t.Errorf("Reverse().Direction() = %v, want %v", r.Direction(), s.Direction().Neg())
	}
}

func TestSegment_IsDegenerate(t *testing.T) {
	if !Seg(V3(1, 1, 1), V3(1, 1, 1)).IsDegenerate() {
		t.Error("equal endpoints should be degenerate")
	}
	if Seg(V3(1, 1, 1), V3(1, 1, 1.5)).IsDegenerate() {
		t.Error("distinct endpoints should not be degenerate")
	}
}

func TestSegment_String(t *testing.T) {
	s := Seg(V3(0, 3, 3), V3(3, 3, 3))
	if got, want := s.String(), "(0, 3, 3)->(3, 3, 3)"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
