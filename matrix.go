package cam

import "math"

// Matrix represents a 2D affine transformation matrix.
// It uses a 2x3 matrix in row-major order:
//
//	| a  b  c |
//	| d  e  f |
//
// This represents the transformation:
//
//	x' = a*x + b*y + c
//	y' = d*x + e*y + f
type Matrix struct {
	A, B, C float64
	D, E, F float64
}

// Identity returns the identity transformation matrix.
func Identity() Matrix {
	return Matrix{A: 1, E: 1}
}

// Translate creates a translation matrix.
func Translate(x, y float64) Matrix {
	return Matrix{A: 1, C: x, E: 1, F: y}
}

// Scale creates a scaling matrix.
func Scale(x, y float64) Matrix {
	return Matrix{A: x, E: y}
}

// Rotate creates a rotation matrix (angle in radians).
func Rotate(angle float64) Matrix {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return Matrix{
		A: cos, B: -sin,
		D: sin, E: cos,
	}
}

// MirrorY returns the transformation that flips the Y axis around y = h/2.
// Board layouts drawn with Y pointing down use it to reach machine space.
func MirrorY(h float64) Matrix {
	return Matrix{A: 1, E: -1, F: h}
}

// Multiply multiplies two matrices (m * other).
func (m Matrix) Multiply(other Matrix) Matrix {
	return Matrix{
		A: m.A*other.A + m.B*other.D,
		B: m.A*other.B + m.B*other.E,
		C: m.A*other.C + m.B*other.F + m.C,
		D: m.D*other.A + m.E*other.D,
		E: m.D*other.B + m.E*other.E,
		F: m.D*other.C + m.E*other.F + m.F,
	}
}

// TransformPoint applies the transformation to a point.
func (m Matrix) TransformPoint(p Point) Point {
	return Point{
		X: m.A*p.X + m.B*p.Y + m.C,
		Y: m.D*p.X + m.E*p.Y + m.F,
	}
}

// Determinant returns the determinant of the linear part.
func (m Matrix) Determinant() float64 {
	return m.A*m.E - m.B*m.D
}

// IsSimilarity reports whether the matrix preserves angles, so circles map
// to circles. Reflections count.
func (m Matrix) IsSimilarity() bool {
	const eps = 1e-12
	rot := math.Abs(m.A-m.E) < eps && math.Abs(m.B+m.D) < eps
	ref := math.Abs(m.A+m.E) < eps && math.Abs(m.B-m.D) < eps
	return (rot || ref) && math.Abs(m.Determinant()) > eps
}

// Transform returns the contour mapped through m. Arcs survive as arcs
// under similarity transforms; otherwise they are flattened into lines.
func (c Contour) Transform(m Matrix) Contour {
	out := make(Contour, 0, len(c))
	for _, s := range c {
		switch s := s.(type) {
		case Line:
			out = append(out, Line{P0: m.TransformPoint(s.P0), P1: m.TransformPoint(s.P1)})
		case Arc:
			if !m.IsSimilarity() {
				pts := flattenArc(s, DefaultFlattenTolerance)
				prev := m.TransformPoint(s.Start())
				for _, p := range pts {
					q := m.TransformPoint(p)
					out = append(out, Line{P0: prev, P1: q})
					prev = q
				}
				continue
			}
			det := m.Determinant()
			center := m.TransformPoint(s.Center)
			start := m.TransformPoint(s.Start())
			span := s.Span
			if det < 0 {
				span = -span
			}
			out = append(out, NewArc(center, s.Radius*math.Sqrt(math.Abs(det)), start.Sub(center).Angle(), span))
		}
	}
	return out
}
