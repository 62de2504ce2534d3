package cam

import (
	"bytes"
	"log/slog"
	"math"
	"strings"
	"testing"
)

func TestPlug(t *testing.T) {
	stretched := Rect(0, 0, 10, 10)
	stretched[0] = Line{P0: Pt(0, 0), P1: Pt(10.0005, 0)}

	shifted := Contour{
		NewArc(Pt(0, 0), 1, 0, math.Pi),
		NewArc(Pt(0, 1e-4), 1, math.Pi, math.Pi),
	}

	tests := []struct {
		name     string
		in       Contour
		segments int
	}{
		{"closed contour is unchanged", Rect(0, 0, 10, 10), 4},
		{"line end is moved", stretched, 4},
		{"arcs get bridges", shifted, 4},
		{"circle is unchanged", Circle(Pt(1, 1), 3), 2},
		{"empty", nil, 0},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got := plug(tt.in, Logger())
			if len(got) != tt.segments {
				t.Fatalf("segments = %d, want %d", len(got), tt.segments)
			}
			for i, s := range got {
				next := got[(i+1)%len(got)]
				if gap := s.End().Distance(next.Start()); gap > Epsilon {
					t.Errorf("gap %g after segment %d", gap, i)
				}
			}
		})
	}
}

func TestPlug_DoesNotModifyInput(t *testing.T) {
	in := Rect(0, 0, 10, 10)
	in[0] = Line{P0: Pt(0, 0), P1: Pt(10.0005, 0)}
	_ = plug(in, Logger())
	if got := in[0].End(); got != Pt(10.0005, 0) {
		t.Errorf("input changed to %v", got)
	}
}

func TestPlug_WarnsAboutLargeGaps(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn}))
	in := Contour{
		Line{P0: Pt(0, 0), P1: Pt(10, 0)},
		Line{P0: Pt(10, 1), P1: Pt(0, 1)},
	}
	got := plug(in, log)
	if len(got) != 4 {
		t.Fatalf("segments = %d, want 4", len(got))
	}
	if n := strings.Count(buf.String(), "gap in resolved contour exceeds tolerance"); n != 2 {
		t.Errorf("warnings = %d, want 2\n%s", n, buf.String())
	}
}
