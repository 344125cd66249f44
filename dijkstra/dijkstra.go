package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/gridpath/cost"
	"github.com/katalvlaran/gridpath/grid"
)

// DistanceField computes the minimal cost from source to every cell of g,
// moving under model.Mode and paying model.Step per move.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGrid).
//  2. Options must be valid (ErrBadMaxDistance).
//  3. source must be inside g (ErrSourceOutOfRange) and traversable (ErrSourceBlocked).
func DistanceField(g *grid.Grid, source int, model cost.Model, opts ...Option) (*Field, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	c, ok := g.Cell(source)
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrSourceOutOfRange, source)
	}
	if !c.Traversable {
		return nil, fmt.Errorf("%w: %d", ErrSourceBlocked, source)
	}

	n := g.Len()
	r := &runner{
		g:       g,
		model:   model,
		options: cfg,
		field: &Field{
			Source: source,
			Dist:   make([]int64, n),
			Prev:   make([]int, n),
		},
		visited: make([]bool, n),
		pq:      make(nodePQ, 0, n),
	}
	r.init()
	r.process()

	return r.field, nil
}

// Between returns the exact minimal cost from a to b, or Unreachable.
func Between(g *grid.Grid, a, b int, model cost.Model) (int64, error) {
	f, err := DistanceField(g, a, model)
	if err != nil {
		return 0, err
	}
	if b < 0 || b >= len(f.Dist) {
		return 0, fmt.Errorf("%w: %d", ErrSourceOutOfRange, b)
	}
	return f.Dist[b], nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *grid.Grid
	model   cost.Model
	options Options
	field   *Field
	visited []bool // finalized cells
	pq      nodePQ
}

// init sets every distance to Unreachable and pushes the source at 0.
func (r *runner) init() {
	for i := range r.field.Dist {
		r.field.Dist[i] = Unreachable
		r.field.Prev[i] = -1
	}
	r.field.Dist[r.field.Source] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: r.field.Source, dist: 0})
}

// process pops the closest cell until the heap drains or MaxDistance is passed.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id
		if r.visited[u] {
			continue // stale entry
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[u] = true
		r.relax(u)
	}
}

// relax tries to improve each traversable neighbour of u.
func (r *runner) relax(u int) {
	from, _ := r.g.Cell(u)
	for _, v := range r.g.Neighbors(u, r.model.Mode) {
		if r.visited[v] {
			continue
		}
		to, _ := r.g.Cell(v)
		nd := r.field.Dist[u] + int64(r.model.Step(from, to))
		if nd > r.options.MaxDistance || nd >= r.field.Dist[v] {
			continue
		}
		r.field.Dist[v] = nd
		r.field.Prev[v] = u
		heap.Push(&r.pq, &nodeItem{id: v, dist: nd})
	}
}

// nodeItem is a cell and a tentative distance.
type nodeItem struct {
	id   int
	dist int64
}

// nodePQ is a min-heap of *nodeItem ordered by dist.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
