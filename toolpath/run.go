package toolpath

import (
	"github.com/gogpu/cam"
	"github.com/gogpu/cam/internal/parallel"
)

// Operation is one machining step on one shape.
type Operation struct {
	Name      string
	Shape     cam.Contour
	Direction Direction
	Tool      Tool

	// Tabs, when set, splits Outside and Inside profiles into cut and tab
	// slices. It is ignored for Outline and Pocket.
	Tabs *TabSpec

	Options []cam.OffsetOption
}

// Result holds the paths of one operation.
type Result struct {
	Name  string
	Paths []cam.Contour

	// Slices holds the tab slices of each path, or nil without tabs.
	Slices [][]Slice

	Err error
}

// Run executes the operations on up to workers goroutines and returns the
// results in operation order. Operations share no state, so the results
// do not depend on the number of workers. If workers is 0 or negative,
// GOMAXPROCS is used.
func Run(ops []Operation, workers int) []Result {
	results := make([]Result, len(ops))
	if len(ops) == 0 {
		return results
	}
	pool := parallel.NewPool(min(max(workers, 0), len(ops)))
	defer pool.Close()

	jobs := make([]func(), len(ops))
	for i, op := range ops {
		op := op
		i := i
		jobs[i] = func() {
			results[i] = op.run()
		}
	}
	pool.Do(jobs)

	log := cam.Logger()
	for _, r := range results {
		if r.Err != nil {
			log.Warn("toolpath: operation failed", "name", r.Name, "err", r.Err)
		}
	}
	return results
}

func (op Operation) run() Result {
	res := Result{Name: op.Name}
	res.Paths, res.Err = Profile(op.Shape, op.Direction, op.Tool, op.Options...)
	if res.Err != nil || op.Tabs == nil {
		return res
	}
	if op.Direction != Outside && op.Direction != Inside {
		return res
	}
	res.Slices = make([][]Slice, len(res.Paths))
	for i, p := range res.Paths {
		res.Slices[i] = Tabs(p.Length(), op.Tool, *op.Tabs)
	}
	return res
}
