package tess

import (
	"math"
	"testing"
)

func area(ring []Point) float64 {
	var a float64
	for i, p := range ring {
		q := ring[(i+1)%len(ring)]
		a += p.X*q.Y - q.X*p.Y
	}
	return a / 2
}

func square(x, y, s float64) []Point {
	return []Point{{x, y}, {x + s, y}, {x + s, y + s}, {x, y + s}}
}

func reversed(poly []Point) []Point {
	out := make([]Point, len(poly))
	for i, p := range poly {
		out[len(poly)-1-i] = p
	}
	return out
}

func TestBoundary(t *testing.T) {
	tests := []struct {
		name  string
		polys [][]Point
		rule  Rule
		rings int
		area  float64
	}{
		{"square", [][]Point{square(0, 0, 10)}, Positive, 1, 100},
		{"overlapping squares", [][]Point{square(0, 0, 10), square(5, 5, 10)}, Positive, 1, 175},
		{"square with hole", [][]Point{square(0, 0, 10), reversed(square(2, 2, 6))}, Positive, 2, 64},
		{"clockwise square under positive", [][]Point{reversed(square(0, 0, 10))}, Positive, 0, 0},
		{"clockwise square under nonzero", [][]Point{reversed(square(0, 0, 10))}, NonZero, 1, 100},
		{"too few points", [][]Point{{{0, 0}, {1, 1}}}, Positive, 0, 0},
		{"empty", nil, NonZero, 0, 0},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got, err := Boundary(tt.polys, tt.rule)
			if err != nil {
				t.Fatalf("Boundary: %v", err)
			}
			if len(got) != tt.rings {
				t.Fatalf("rings = %d, want %d", len(got), tt.rings)
			}
			var total float64
			for _, r := range got {
				total += area(r)
			}
			if math.Abs(total-tt.area) > 1e-6 {
				t.Errorf("area = %v, want %v", total, tt.area)
			}
		})
	}
}

func TestToPath_DropsRepeatedPoints(t *testing.T) {
	path := toPath([]Point{{0, 0}, {0, 0}, {1, 0}, {1, 1e-8}, {1, 1}})
	if len(path) != 3 {
		t.Errorf("points = %d, want 3", len(path))
	}
	back := fromPath(path)
	if back[2] != (Point{1, 1}) {
		t.Errorf("last point = %v, want (1, 1)", back[2])
	}
}
