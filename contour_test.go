package cam

import (
	"math"
	"testing"
)

func TestBuilders(t *testing.T) {
	tests := []struct {
		name     string
		c        Contour
		segments int
		length   float64
		area     float64
	}{
		{"rect", Rect(0, 0, 10, 5), 4, 30, 50},
		{"polygon skips repeated points", Polygon(Pt(0, 0), Pt(0, 0), Pt(4, 0), Pt(0, 3)), 3, 12, 6},
		{"circle", Circle(Pt(1, 2), 3), 2, 6 * math.Pi, 9 * math.Pi},
		{"rounded rect", RoundedRect(0, 0, 20, 10, 2), 8, 60 - 16 + 4*math.Pi, 200 - (4-math.Pi)*4},
		{"rounded rect without radius", RoundedRect(0, 0, 20, 10, 0), 4, 60, 200},
		{"rounded rect full round ends", RoundedRect(0, 0, 20, 10, 8), 6, 20 + 10*math.Pi, 100 + 25*math.Pi},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if len(tt.c) != tt.segments {
				t.Errorf("segments = %d, want %d", len(tt.c), tt.segments)
			}
			if !tt.c.IsClosed(Epsilon) {
				t.Error("contour is not closed")
			}
			if got := tt.c.Length(); !near(got, tt.length, 1e-9) {
				t.Errorf("Length = %v, want %v", got, tt.length)
			}
			if got := tt.c.Area(); !near(got, tt.area, 1e-9) {
				t.Errorf("Area = %v, want %v", got, tt.area)
			}
		})
	}
}

func TestPolygon_TooFewPoints(t *testing.T) {
	if c := Polygon(Pt(1, 1)); c != nil {
		t.Errorf("Polygon of one point = %v, want nil", c)
	}
}

func TestContour_Reversed(t *testing.T) {
	c := Circle(Pt(0, 0), 2)
	r := c.Reversed()
	if !r.IsClosed(Epsilon) {
		t.Fatal("reversed contour is not closed")
	}
	if !nearPoint(r.Start(), c.End(), testTol) {
		t.Errorf("reversed start = %v, want %v", r.Start(), c.End())
	}
	if !near(r.Area(), -c.Area(), 1e-9) {
		t.Errorf("reversed area = %v, want %v", r.Area(), -c.Area())
	}
}

func TestContour_Cut(t *testing.T) {
	sq := Rect(0, 0, 10, 10)
	tests := []struct {
		name       string
		from, to   float64
		segments   int
		start, end Point
	}{
		{"across a corner", 5, 15, 2, Pt(5, 0), Pt(10, 5)},
		{"inside one side", 21, 29, 1, Pt(9, 10), Pt(1, 10)},
		{"whole contour", 0, 40, 4, Pt(0, 0), Pt(0, 0)},
		{"past the end", 30, 55, 1, Pt(0, 10), Pt(0, 0)},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got := sq.Cut(tt.from, tt.to)
			if len(got) != tt.segments {
				t.Fatalf("segments = %d, want %d: %v", len(got), tt.segments, got)
			}
			if !nearPoint(got.Start(), tt.start, testTol) || !nearPoint(got.End(), tt.end, testTol) {
				t.Errorf("runs %v -> %v, want %v -> %v", got.Start(), got.End(), tt.start, tt.end)
			}
		})
	}

	if got := sq.Cut(50, 60); got != nil {
		t.Errorf("Cut beyond the contour = %v, want nil", got)
	}
}

func TestContour_BoundsAndDistance(t *testing.T) {
	c := Circle(Pt(1, 2), 3)
	b := c.Bounds()
	if !near(b.X.Lo, -2, testTol) || !near(b.X.Hi, 4, testTol) ||
		!near(b.Y.Lo, -1, testTol) || !near(b.Y.Hi, 5, testTol) {
		t.Errorf("Bounds = %v", b)
	}
	if got := c.DistanceTo(Pt(1, 2)); !near(got, 3, testTol) {
		t.Errorf("DistanceTo(centre) = %v, want 3", got)
	}
	if got := Rect(0, 0, 10, 10).DistanceTo(Pt(12, 5)); !near(got, 2, testTol) {
		t.Errorf("DistanceTo outside rect = %v, want 2", got)
	}
}
