package cam

import (
	"fmt"
	"log/slog"

	"github.com/gogpu/cam/internal/tess"
)

// tessellate resolves the raw offset by flattening it into one polygon and
// letting the polygon clipper extract the boundary under the matching fill
// rule. The result holds lines only.
func tessellate(raw Contour, rule FillRule, tolerance float64, log *slog.Logger) ([]Contour, error) {
	pts := raw.Flatten(tolerance)
	if len(pts) < 3 {
		return nil, nil
	}
	poly := make([]tess.Point, len(pts))
	for i, p := range pts {
		poly[i] = tess.Point{X: p.X, Y: p.Y}
	}
	r := tess.Positive
	if rule == FillNonZero {
		r = tess.NonZero
	}
	rings, err := tess.Boundary([][]tess.Point{poly}, r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTessellation, err)
	}
	out := make([]Contour, 0, len(rings))
	for _, ring := range rings {
		points := make([]Point, len(ring))
		for i, p := range ring {
			points[i] = Point{X: p.X, Y: p.Y}
		}
		if c := Polygon(points...); len(c) > 0 {
			out = append(out, c)
		}
	}
	log.Debug("cam: tessellated offset",
		"polygon_points", len(pts),
		"rings", len(out))
	return out, nil
}
