package toolpath

import (
	"math"
	"testing"

	"github.com/gogpu/cam"
)

func TestTabSpec_Count(t *testing.T) {
	tests := []struct {
		name   string
		spec   TabSpec
		length float64
		want   int
	}{
		{"short path gets the minimum", DefaultTabs(), 100, 2},
		{"one per spacing", DefaultTabs(), 450, 3},
		{"capped at the maximum", DefaultTabs(), 1000, 4},
		{"no spacing", TabSpec{Min: 2, Max: 4}, 1000, 2},
		{"tabs disabled", TabSpec{}, 1000, 0},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.spec.Count(tt.length); got != tt.want {
				t.Errorf("Count(%v) = %d, want %d", tt.length, got, tt.want)
			}
		})
	}
}

func TestTabs(t *testing.T) {
	got := Tabs(100, Tool{Diameter: 2}, DefaultTabs())
	want := []Slice{
		{From: 0, To: 47},
		{From: 47, To: 50, Tab: true},
		{From: 50, To: 97},
		{From: 97, To: 100, Tab: true},
	}
	if len(got) != len(want) {
		t.Fatalf("slices = %v, want %v", got, want)
	}
	for i := range want {
		if math.Abs(got[i].From-want[i].From) > 1e-9 || math.Abs(got[i].To-want[i].To) > 1e-9 || got[i].Tab != want[i].Tab {
			t.Errorf("slice %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestTabs_Edges(t *testing.T) {
	tests := []struct {
		name   string
		length float64
		spec   TabSpec
		want   []Slice
	}{
		{"disabled", 50, TabSpec{}, []Slice{{From: 0, To: 50}}},
		{"tab wider than part", 4, TabSpec{Width: 10, Min: 2, Max: 2}, []Slice{
			{From: 0, To: 2, Tab: true},
			{From: 2, To: 4, Tab: true},
		}},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got := Tabs(tt.length, Tool{Diameter: 2}, tt.spec)
			if len(got) != len(tt.want) {
				t.Fatalf("slices = %v, want %v", got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("slice %d = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestApplyTabs(t *testing.T) {
	path := cam.Rect(0, 0, 25, 25)
	cuts, tabs := ApplyTabs(path, Tabs(path.Length(), Tool{Diameter: 2}, DefaultTabs()))
	if len(cuts) != 2 || len(tabs) != 2 {
		t.Fatalf("cuts, tabs = %d, %d, want 2, 2", len(cuts), len(tabs))
	}
	for _, c := range cuts {
		if math.Abs(c.Length()-47) > 1e-9 {
			t.Errorf("cut length = %v, want 47", c.Length())
		}
	}
	for _, tab := range tabs {
		if math.Abs(tab.Length()-3) > 1e-9 {
			t.Errorf("tab length = %v, want 3", tab.Length())
		}
	}
}
