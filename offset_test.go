package cam

import (
	"errors"
	"math"
	"testing"
)

// samples returns points spread along every segment of the contours.
func samples(cs []Contour, per int) []Point {
	var pts []Point
	for _, c := range cs {
		for _, s := range c {
			for i := 0; i <= per; i++ {
				pts = append(pts, s.PointAt(s.Length()*float64(i)/float64(per)))
			}
		}
	}
	return pts
}

func totalArea(cs []Contour) float64 {
	var a float64
	for _, c := range cs {
		a += c.Area()
	}
	return a
}

func TestOffset_Circle(t *testing.T) {
	circle := Circle(Pt(1, 2), 5)
	tests := []struct {
		name     string
		in       Contour
		r        float64
		contours int
		area     float64
	}{
		{"inwards", circle, -2, 1, 9 * math.Pi},
		{"outwards", circle, 2, 1, 49 * math.Pi},
		{"clockwise inwards", circle.Reversed(), -2, 1, -9 * math.Pi},
		{"clockwise outwards", circle.Reversed(), 2, 1, -49 * math.Pi},
		{"consumed exactly", circle, -5, 0, 0},
		{"consumed", circle, -6, 0, 0},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got, err := Offset(tt.in, tt.r)
			if err != nil {
				t.Fatalf("Offset: %v", err)
			}
			if len(got) != tt.contours {
				t.Fatalf("contours = %d, want %d", len(got), tt.contours)
			}
			if a := totalArea(got); !near(a, tt.area, 1e-9) {
				t.Errorf("area = %v, want %v", a, tt.area)
			}
			for _, c := range got {
				for _, s := range c {
					if _, ok := s.(Arc); !ok {
						t.Errorf("segment %T, want Arc", s)
					}
				}
			}
		})
	}
}

func TestOffset_SquareInwards(t *testing.T) {
	got, err := Offset(Rect(0, 0, 10, 10), -1)
	if err != nil {
		t.Fatalf("Offset: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("contours = %d, want 1", len(got))
	}
	c := got[0]
	if len(c) != 4 {
		t.Errorf("segments = %d, want 4", len(c))
	}
	if a := c.Area(); !near(a, 64, 1e-9) {
		t.Errorf("area = %v, want 64", a)
	}
	b := c.Bounds()
	if !near(b.X.Lo, 1, 1e-9) || !near(b.X.Hi, 9, 1e-9) || !near(b.Y.Lo, 1, 1e-9) || !near(b.Y.Hi, 9, 1e-9) {
		t.Errorf("bounds = %v, want [1,9]x[1,9]", b)
	}
	if !c.IsClosed(Epsilon) {
		t.Error("result is not closed")
	}
}

func TestOffset_SquareOutwards(t *testing.T) {
	src := Rect(0, 0, 10, 10)
	got, err := Offset(src, 1)
	if err != nil {
		t.Fatalf("Offset: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("contours = %d, want 1", len(got))
	}
	if len(got[0]) != 8 {
		t.Errorf("segments = %d, want 8", len(got[0]))
	}
	if a := got[0].Area(); !near(a, 140+math.Pi, 1e-9) {
		t.Errorf("area = %v, want %v", a, 140+math.Pi)
	}
	for _, p := range samples(got, 8) {
		if d := src.DistanceTo(p); !near(d, 1, 1e-9) {
			t.Errorf("point %v is %v from the square, want 1", p, d)
		}
	}
}

func TestOffset_ShrinkToNothing(t *testing.T) {
	for _, r := range []float64{-5, -6, -100} {
		got, err := Offset(Rect(0, 0, 10, 10), r)
		if err != nil {
			t.Fatalf("Offset(%v): %v", r, err)
		}
		if got != nil {
			t.Errorf("Offset(%v) = %d contours, want none", r, len(got))
		}
	}
}

func TestOffset_RoundTrip(t *testing.T) {
	tri := Polygon(Pt(0, 0), Pt(10, 0), Pt(3, 8))
	grown, err := Offset(tri, 1)
	if err != nil || len(grown) != 1 {
		t.Fatalf("Offset(+1) = %d contours, %v", len(grown), err)
	}
	back, err := Offset(grown[0], -1)
	if err != nil || len(back) != 1 {
		t.Fatalf("Offset(-1) = %d contours, %v", len(back), err)
	}
	if a := back[0].Area(); !near(a, tri.Area(), 1e-6) {
		t.Errorf("area = %v, want %v", a, tri.Area())
	}
	for _, p := range samples(back, 4) {
		if d := tri.DistanceTo(p); d > 1e-6 {
			t.Errorf("point %v is %v off the triangle", p, d)
		}
	}
}

func TestOffset_ReflexCornerGetsArc(t *testing.T) {
	l := Polygon(Pt(0, 0), Pt(20, 0), Pt(20, 8), Pt(8, 8), Pt(8, 20), Pt(0, 20))
	got, err := Offset(l, -2)
	if err != nil {
		t.Fatalf("Offset: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("contours = %d, want 1", len(got))
	}
	if a := got[0].Area(); !near(a, 116-math.Pi, 1e-9) {
		t.Errorf("area = %v, want %v", a, 116-math.Pi)
	}
	var arcs int
	for _, s := range got[0] {
		if a, ok := s.(Arc); ok {
			arcs++
			if !nearPoint(a.Center, Pt(8, 8), 1e-9) || !near(a.Radius, 2, 1e-9) {
				t.Errorf("arc %+v, want radius 2 around (8, 8)", a)
			}
		}
	}
	if arcs != 1 {
		t.Errorf("arcs = %d, want 1", arcs)
	}
}

func TestOffset_SplitsIntoIslands(t *testing.T) {
	dumbbell := Polygon(
		Pt(0, 0), Pt(10, 0), Pt(10, 4), Pt(14, 4), Pt(14, 0), Pt(24, 0),
		Pt(24, 10), Pt(14, 10), Pt(14, 6), Pt(10, 6), Pt(10, 10), Pt(0, 10),
	)
	got, err := Offset(dumbbell, -1.2)
	if err != nil {
		t.Fatalf("Offset: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("contours = %d, want 2", len(got))
	}
	var left, right int
	for _, c := range got {
		if c.Orientation() != CounterClockwise {
			t.Errorf("island is %v", c.Orientation())
		}
		b := c.Bounds()
		switch {
		case b.X.Hi < 12:
			left++
		case b.X.Lo > 12:
			right++
		}
	}
	if left != 1 || right != 1 {
		t.Errorf("islands left/right = %d/%d, want 1/1", left, right)
	}
	for _, p := range samples(got, 4) {
		if d := dumbbell.DistanceTo(p); !near(d, 1.2, 1e-6) {
			t.Errorf("point %v is %v from the source, want 1.2", p, d)
		}
	}
}

func TestOffset_NonZeroKeepsCornerLoops(t *testing.T) {
	got, err := Offset(Rect(0, 0, 10, 10), -1, WithFillRule(FillNonZero))
	if err != nil {
		t.Fatalf("Offset: %v", err)
	}
	if len(got) != 5 {
		t.Fatalf("contours = %d, want 5", len(got))
	}
	if a := totalArea(got); !near(a, 68, 1e-9) {
		t.Errorf("area = %v, want 68", a)
	}
}

func TestOffset_Tessellate(t *testing.T) {
	tests := []struct {
		name string
		in   Contour
		r    float64
		area float64
		tol  float64
	}{
		{"square inwards", Rect(0, 0, 10, 10), -1, 64, 1e-3},
		{"circle inwards", Circle(Pt(0, 0), 5), -2, 9 * math.Pi, 0.2},
		{"clockwise circle outwards", Circle(Pt(0, 0), 5).Reversed(), 1, -36 * math.Pi, 0.3},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got, err := Offset(tt.in, tt.r, WithMethod(MethodTessellate))
			if err != nil {
				t.Fatalf("Offset: %v", err)
			}
			if len(got) != 1 {
				t.Fatalf("contours = %d, want 1", len(got))
			}
			if a := got[0].Area(); !near(a, tt.area, tt.tol) {
				t.Errorf("area = %v, want %v", a, tt.area)
			}
			for _, s := range got[0] {
				if _, ok := s.(Line); !ok {
					t.Errorf("segment %T, want Line", s)
				}
			}
		})
	}
}

func TestOffset_ZeroRadius(t *testing.T) {
	got, err := Offset(Rect(0, 0, 10, 10), 0)
	if err != nil {
		t.Fatalf("Offset: %v", err)
	}
	if len(got) != 1 || !near(got[0].Area(), 100, 1e-9) {
		t.Errorf("Offset(0) = %v, want the square", got)
	}
}

func TestOffset_InvalidInput(t *testing.T) {
	for _, r := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		if _, err := Offset(Rect(0, 0, 1, 1), r); !errors.Is(err, ErrInvalidRadius) {
			t.Errorf("Offset(%v) error = %v, want ErrInvalidRadius", r, err)
		}
	}
	degenerate := []struct {
		name string
		in   Contour
	}{
		{"nil", nil},
		{"zero length", Contour{NewLine(Pt(1, 1), Pt(1, 1))}},
	}
	for _, tt := range degenerate {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got, err := Offset(tt.in, -1)
			if err != nil || got != nil {
				t.Errorf("Offset = %v, %v, want nil, nil", got, err)
			}
		})
	}
}
