package toolpath

import "github.com/gogpu/cam"

// TabSpec configures the holding tabs left on profile cuts.
type TabSpec struct {
	// Width of each tab along the path, not counting the tool. Zero
	// selects half the tool diameter.
	Width float64 `toml:"width" yaml:"width"`

	// Spacing is the path length per additional tab.
	Spacing float64 `toml:"spacing" yaml:"spacing"`

	// Min and Max bound the number of tabs.
	Min int `toml:"min" yaml:"min"`
	Max int `toml:"max" yaml:"max"`
}

// DefaultTabs returns the tab settings used when a job does not override
// them.
func DefaultTabs() TabSpec {
	return TabSpec{Spacing: 200, Min: 2, Max: 4}
}

// Count returns the number of tabs for a path of the given length.
func (s TabSpec) Count(length float64) int {
	n := 1
	if s.Spacing > 0 {
		n = 1 + int(length/s.Spacing)
	}
	return max(s.Min, min(s.Max, n))
}

// Slice is an arc-length interval of a path. Tab slices are left uncut at
// full depth.
type Slice struct {
	From, To float64
	Tab      bool
}

// Tabs divides a path of the given length into equal parts, each ending
// in a tab. The tab width is widened by the tool diameter since the tool
// centre must stop that much earlier.
func Tabs(length float64, tool Tool, spec TabSpec) []Slice {
	n := spec.Count(length)
	if n <= 0 || length <= 0 {
		return []Slice{{From: 0, To: length}}
	}
	w := spec.Width
	if w <= 0 {
		w = tool.Diameter / 2
	}
	w += tool.Diameter
	part := length / float64(n)
	w = min(w, part)

	slices := make([]Slice, 0, 2*n)
	for i := 0; i < n; i++ {
		start := float64(i) * part
		end := float64(i+1) * part
		if end-w > start {
			slices = append(slices, Slice{From: start, To: end - w})
		}
		slices = append(slices, Slice{From: end - w, To: end, Tab: true})
	}
	return slices
}

// ApplyTabs cuts the path along the slices and returns the pieces to cut
// at full depth and the tab pieces separately.
func ApplyTabs(path cam.Contour, slices []Slice) (cuts, tabs []cam.Contour) {
	for _, s := range slices {
		piece := path.Cut(s.From, s.To)
		if len(piece) == 0 {
			continue
		}
		if s.Tab {
			tabs = append(tabs, piece)
		} else {
			cuts = append(cuts, piece)
		}
	}
	return cuts, tabs
}
