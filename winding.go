package cam

import (
	"fmt"
	"log/slog"
	"math"
	"sort"
)

// vertexKey is a cell of the quantisation grid.
type vertexKey struct {
	x, y int64
}

// quantize maps a point onto the vertex grid. It is the only place where
// coordinates are rounded; Quantum sets the cell size.
func quantize(p Point) vertexKey {
	return vertexKey{
		x: int64(math.Round(p.X / Quantum)),
		y: int64(math.Round(p.Y / Quantum)),
	}
}

// neighbours returns the key and its eight surrounding cells, so points
// that straddle a cell boundary still find each other.
func (k vertexKey) neighbours() [9]vertexKey {
	var out [9]vertexKey
	i := 0
	for dx := int64(-1); dx <= 1; dx++ {
		for dy := int64(-1); dy <= 1; dy++ {
			out[i] = vertexKey{x: k.x + dx, y: k.y + dy}
			i++
		}
	}
	return out
}

type vertex struct {
	pos  Point
	half []halfEdge // sorted counter-clockwise by leaving angle
}

// halfEdge is an edge as seen from one of its endpoints.
type halfEdge struct {
	edge  int
	out   bool    // the edge leaves the vertex
	angle float64 // direction pointing away from the vertex, [0, 2pi)
	curve float64 // signed curvature when walking away from the vertex
}

// edge is a directed piece of the split offset curve. weight is the net
// number of times the curve runs along it from -> to; right is the winding
// number of the face on its right-hand side.
type edge struct {
	seg      Segment
	from, to int
	weight   int
	right    int
	known    bool
	comp     int
}

// windingGraph is a planar graph over the split segments with vertices
// held in an arena and addressed by index.
type windingGraph struct {
	verts []vertex
	cells map[vertexKey]int
	edges []edge
	log   *slog.Logger
}

type edgeKey struct {
	from, to int
	mid      vertexKey
}

// newWindingGraph merges coincident endpoints into vertices and collapses
// duplicate edges into weighted ones. Anti-parallel duplicates cancel and
// edges whose weight drops to zero are removed.
func newWindingGraph(segs []Segment, log *slog.Logger) *windingGraph {
	g := &windingGraph{cells: make(map[vertexKey]int), log: log}
	keys := make(map[edgeKey]int)
	var raw []edge
	for _, s := range segs {
		if s.Length() <= Epsilon {
			continue
		}
		from, to := g.vertexAt(s.Start()), g.vertexAt(s.End())
		if _, ok := s.(Line); ok && from == to {
			continue
		}
		mid := quantize(midpointOf(s))
		if i, ok := lookupEdge(keys, from, to, mid); ok {
			raw[i].weight++
			continue
		}
		if i, ok := lookupEdge(keys, to, from, mid); ok {
			raw[i].weight--
			continue
		}
		keys[edgeKey{from: from, to: to, mid: mid}] = len(raw)
		raw = append(raw, edge{seg: s, from: from, to: to, weight: 1})
	}

	for _, e := range raw {
		switch {
		case e.weight == 0:
			continue
		case e.weight < 0:
			e = edge{seg: e.seg.Reversed(), from: e.to, to: e.from, weight: -e.weight}
		}
		g.edges = append(g.edges, e)
	}

	for i, e := range g.edges {
		g.verts[e.from].half = append(g.verts[e.from].half, halfEdge{
			edge:  i,
			out:   true,
			angle: leavingAngle(e.seg.StartTangent()),
			curve: curvature(e.seg),
		})
		g.verts[e.to].half = append(g.verts[e.to].half, halfEdge{
			edge:  i,
			out:   false,
			angle: leavingAngle(e.seg.EndTangent() + math.Pi),
			curve: -curvature(e.seg),
		})
	}
	for i := range g.verts {
		h := g.verts[i].half
		sort.SliceStable(h, func(a, b int) bool {
			if math.Abs(h[a].angle-h[b].angle) > AngleEpsilon {
				return h[a].angle < h[b].angle
			}
			return h[a].curve < h[b].curve
		})
	}
	log.Debug("cam: winding graph built",
		"segments", len(segs),
		"vertices", len(g.verts),
		"edges", len(g.edges),
		"cancelled", len(raw)-len(g.edges))
	return g
}

func lookupEdge(keys map[edgeKey]int, from, to int, mid vertexKey) (int, bool) {
	for _, m := range mid.neighbours() {
		if i, ok := keys[edgeKey{from: from, to: to, mid: m}]; ok {
			return i, true
		}
	}
	return 0, false
}

// leavingAngle maps a direction into [0, 2pi), folding values just below
// 2pi onto 0 so that sorting does not split equal directions.
func leavingAngle(a float64) float64 {
	a = positiveAngle(a)
	if a > 2*math.Pi-AngleEpsilon {
		return 0
	}
	return a
}

// vertexAt returns the vertex for p, creating it if no vertex lies within
// one grid cell.
func (g *windingGraph) vertexAt(p Point) int {
	k := quantize(p)
	for _, n := range k.neighbours() {
		if i, ok := g.cells[n]; ok && g.verts[i].pos.Approx(p, 2*Quantum) {
			return i
		}
	}
	g.cells[k] = len(g.verts)
	g.verts = append(g.verts, vertex{pos: p})
	return len(g.verts) - 1
}

// balance returns the weight flowing into v minus the weight flowing out.
// Every vertex of a closed curve balances to zero.
func (g *windingGraph) balance(v int) int {
	var b int
	for _, h := range g.verts[v].half {
		w := g.edges[h.edge].weight
		if h.out {
			b -= w
		} else {
			b += w
		}
	}
	return b
}

// components labels connected components and returns their count.
func (g *windingGraph) components() int {
	comp := make([]int, len(g.verts))
	for i := range comp {
		comp[i] = -1
	}
	n := 0
	for start := range g.verts {
		if comp[start] >= 0 || len(g.verts[start].half) == 0 {
			continue
		}
		queue := []int{start}
		comp[start] = n
		for len(queue) > 0 {
			v := queue[0]
			queue = queue[1:]
			for _, h := range g.verts[v].half {
				e := g.edges[h.edge]
				for _, w := range [2]int{e.from, e.to} {
					if comp[w] < 0 {
						comp[w] = n
						queue = append(queue, w)
					}
				}
			}
		}
		n++
	}
	for i := range g.edges {
		g.edges[i].comp = comp[g.edges[i].from]
	}
	return n
}

// assignWindings gives every edge the winding number of the face on its
// right. Each component is seeded at its leftmost extreme, where the face
// to the west is the one the rest of the drawing surrounds it with, and
// the numbers are then carried breadth-first from vertex to vertex.
func (g *windingGraph) assignWindings() error {
	n := g.components()
	for c := 0; c < n; c++ {
		if err := g.assignComponent(c); err != nil {
			return err
		}
	}
	return nil
}

func (g *windingGraph) assignComponent(c int) error {
	// leftmost extreme among the component's edges
	best := -1
	minX := math.Inf(1)
	for i, e := range g.edges {
		if e.comp != c {
			continue
		}
		if x := e.seg.Bounds().X.Lo; x < minX {
			minX, best = x, i
		}
	}
	if best < 0 {
		return nil
	}
	bestV := -1
	for i, v := range g.verts {
		if len(v.half) == 0 || g.edges[v.half[0].edge].comp != c {
			continue
		}
		if bestV < 0 || v.pos.X < g.verts[bestV].pos.X ||
			(v.pos.X == g.verts[bestV].pos.X && v.pos.Y < g.verts[bestV].pos.Y) {
			bestV = i
		}
	}

	arc, isArc := g.edges[best].seg.(Arc)
	var queue []int
	if !isArc || g.verts[bestV].pos.X <= minX+2*Quantum {
		v := g.verts[bestV]
		outside := g.outerWinding(c, v.pos.Sub(Pt(10*Quantum, 0)))
		i := sort.Search(len(v.half), func(i int) bool { return v.half[i].angle > math.Pi })
		if i == len(v.half) {
			i = 0
		}
		next, err := g.settle(bestV, i, outside)
		if err != nil {
			return err
		}
		queue = next
	} else {
		// The extreme lies inside an arc, where its tangent is vertical.
		e := &g.edges[best]
		extreme := Polar(arc.Center, arc.Radius, math.Pi)
		outside := g.outerWinding(c, extreme.Sub(Pt(10*Quantum, 0)))
		if arc.Span > 0 {
			e.right = outside
		} else {
			e.right = outside - e.weight
		}
		e.known = true
		queue = []int{e.from, e.to}
	}

	visited := make(map[int]bool)
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		if visited[v] {
			continue
		}
		visited[v] = true
		h := g.verts[v].half
		start := -1
		face := 0
		for i, he := range h {
			e := g.edges[he.edge]
			if !e.known {
				continue
			}
			start = i
			face = e.right
			if !he.out {
				face = e.right + e.weight
			}
			break
		}
		if start < 0 {
			continue
		}
		next, err := g.settle(v, start, face)
		if err != nil {
			return err
		}
		queue = append(queue, next...)
	}
	return nil
}

// settle walks counter-clockwise around v starting just before half-edge
// start, where the face has winding number face. Crossing an edge that
// leaves v adds its weight, crossing one that arrives subtracts it. It
// returns the far endpoints of the edges that received a winding number.
func (g *windingGraph) settle(v, start, face int) ([]int, error) {
	h := g.verts[v].half
	var next []int
	f := face
	for j := range h {
		he := h[(start+j)%len(h)]
		e := &g.edges[he.edge]
		right := f
		if !he.out {
			right = f - e.weight
		}
		switch {
		case !e.known:
			e.right = right
			e.known = true
			other := e.to
			if !he.out {
				other = e.from
			}
			next = append(next, other)
		case e.right != right:
			return nil, fmt.Errorf("%w: edge %d at vertex (%g, %g) has %d, expected %d",
				ErrInconsistentWinding, he.edge, g.verts[v].pos.X, g.verts[v].pos.Y, e.right, right)
		}
		if he.out {
			f += e.weight
		} else {
			f -= e.weight
		}
	}
	if f != face {
		return nil, fmt.Errorf("%w: vertex (%g, %g) is off by %d",
			ErrUnbalancedVertex, g.verts[v].pos.X, g.verts[v].pos.Y, f-face)
	}
	return next, nil
}

// outerWinding returns the winding number at p contributed by the edges of
// every component other than c.
func (g *windingGraph) outerWinding(c int, p Point) int {
	var w int
	for _, e := range g.edges {
		if e.comp != c {
			w += e.weight * segmentWinding(e.seg, p)
		}
	}
	return w
}

// FillRule selects which edges of the winding graph form the boundary.
type FillRule int

const (
	// FillPositive keeps edges with winding <= 0 on the right and >= 1 on
	// the left: the boundary of the region the offset curve wraps
	// counter-clockwise at least once.
	FillPositive FillRule = iota

	// FillNonZero keeps edges that separate zero from non-zero winding.
	// It also keeps loops wound the wrong way, which the positive rule
	// discards.
	FillNonZero
)

// String returns the rule name.
func (r FillRule) String() string {
	switch r {
	case FillNonZero:
		return "nonzero"
	default:
		return "positive"
	}
}

// keep reports whether an edge with the given right-hand winding and weight
// lies on the boundary, and whether it must be reversed to put the filled
// side on its left.
func (r FillRule) keep(right, weight int) (keep, reverse bool) {
	left := right + weight
	switch r {
	case FillNonZero:
		if (right == 0) == (left == 0) {
			return false, false
		}
		return true, left == 0
	default:
		return right <= 0 && left >= 1, false
	}
}

// boundary selects the edges the rule keeps and chains them into closed
// contours, each with the filled region on its left.
func (g *windingGraph) boundary(rule FillRule) []Contour {
	type link struct {
		seg      Segment
		from, to int
		used     bool
	}
	var links []link
	outgoing := make(map[int][]int)
	for _, e := range g.edges {
		keep, reverse := rule.keep(e.right, e.weight)
		if !keep {
			continue
		}
		l := link{seg: e.seg, from: e.from, to: e.to}
		if reverse {
			l = link{seg: e.seg.Reversed(), from: e.to, to: e.from}
		}
		outgoing[l.from] = append(outgoing[l.from], len(links))
		links = append(links, l)
	}

	var out []Contour
	for i := range links {
		if links[i].used {
			continue
		}
		links[i].used = true
		origin := links[i].from
		c := Contour{links[i].seg}
		cur := i
		for links[cur].to != origin {
			inDir := links[cur].seg.EndTangent()
			next := -1
			bestTurn := math.Inf(-1)
			for _, j := range outgoing[links[cur].to] {
				if links[j].used {
					continue
				}
				turn := NormAngle(links[j].seg.StartTangent() - inDir)
				if next < 0 || turn > bestTurn+AngleEpsilon ||
					(math.Abs(turn-bestTurn) <= AngleEpsilon && curvature(links[j].seg) > curvature(links[next].seg)) {
					next, bestTurn = j, turn
				}
			}
			if next < 0 {
				g.log.Warn("cam: boundary chain does not close",
					"segments", len(c),
					"end_x", links[cur].seg.End().X,
					"end_y", links[cur].seg.End().Y)
				break
			}
			links[next].used = true
			c = append(c, links[next].seg)
			cur = next
		}
		out = append(out, c)
	}
	return out
}

// resolve runs the winding-number stage over split segments.
func resolve(segs []Segment, rule FillRule, log *slog.Logger) ([]Contour, error) {
	g := newWindingGraph(segs, log)
	if len(g.edges) == 0 {
		return nil, nil
	}
	if err := g.assignWindings(); err != nil {
		return nil, err
	}
	return g.boundary(rule), nil
}
