package astar

import (
	"fmt"

	"github.com/katalvlaran/gridpath/cost"
	"github.com/katalvlaran/gridpath/grid"
)

// FindPath searches g for a cheapest route from start to goal under mode.
//
// Preconditions and validation (in order), all before any search work:
//  1. g must be non-nil (ErrNilGrid).
//  2. Options must be valid (ErrOptionViolation).
//  3. start and goal must be in range and traversable (ErrInvalidCell).
//  4. The cost model must be valid for mode (ErrOptionViolation).
//
// An unreachable goal is not an error: the Result has Found == false and an
// empty Path.
func FindPath(g *grid.Grid, start, goal int, mode grid.Movement, opts ...Option) (*Result, error) {
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

	if err := checkCell(g, "start", start); err != nil {
		return nil, err
	}
	if err := checkCell(g, "goal", goal); err != nil {
		return nil, err
	}

	model, err := buildModel(mode, cfg)
	if err != nil {
		return nil, err
	}

	r := newRunner(g, mode, model, cfg, goal)
	r.init(start)

	return r.process()
}

func checkCell(g *grid.Grid, role string, idx int) error {
	c, ok := g.Cell(idx)
	if !ok {
		return fmt.Errorf("%w: %s index %d out of range [0,%d)", ErrInvalidCell, role, idx, g.Len())
	}
	if !c.Traversable {
		return fmt.Errorf("%w: %s index %d is not traversable", ErrInvalidCell, role, idx)
	}
	return nil
}

func buildModel(mode grid.Movement, cfg Options) (cost.Model, error) {
	if cfg.Model != nil {
		m := *cfg.Model
		if m.Mode != mode {
			return cost.Model{}, fmt.Errorf("%w: cost model is for %s movement, search uses %s",
				ErrOptionViolation, m.Mode, mode)
		}
		// A hand-built Model is validated like one from cost.New.
		m, err := cost.New(mode, cost.WithUnitCosts(m.Straight, m.Diagonal), cost.WithHeuristic(m.Heuristic))
		if err != nil {
			return cost.Model{}, fmt.Errorf("%w: %w", ErrOptionViolation, err)
		}
		return m, nil
	}
	m, err := cost.New(mode, cost.WithUnitCosts(cfg.Straight, cfg.Diagonal), cost.WithHeuristic(cfg.Heuristic))
	if err != nil {
		return cost.Model{}, fmt.Errorf("%w: %w", ErrOptionViolation, err)
	}
	return m, nil
}

// runner holds the mutable state for a single A* execution.
type runner struct {
	g       *grid.Grid    // read-only board
	mode    grid.Movement // adjacency rule
	model   cost.Model    // step costs and heuristic
	options Options
	goal    grid.Cell

	nodes  []Node   // per-run node store indexed by cell index
	closed []bool   // closed-set membership by cell index
	open   *openSet // frontier
	order  []Node   // closed-set history in selection order
	seq    int      // next insertion number for FIFO tie-break
}

func newRunner(g *grid.Grid, mode grid.Movement, model cost.Model, cfg Options, goal int) *runner {
	nodes := make([]Node, g.Len())
	goalCell, _ := g.Cell(goal)

	return &runner{
		g:       g,
		mode:    mode,
		model:   model,
		options: cfg,
		goal:    goalCell,
		nodes:   nodes,
		closed:  make([]bool, len(nodes)),
		open:    newOpenSet(nodes),
	}
}

// init resets every node and seeds the open set with start (g = 0, f = h).
func (r *runner) init(start int) {
	for i := range r.nodes {
		x, y := r.g.Coordinate(i)
		r.nodes[i] = Node{Index: i, X: x, Y: y, Parent: NoParent}
	}

	c, _ := r.g.Cell(start)
	n := &r.nodes[start]
	n.G = 0
	n.H = r.model.H(c, r.goal)
	n.F = n.G + n.H
	r.push(start)
}

// process is the main A* loop: select the cheapest open node, close it, stop
// at the goal, otherwise expand its neighbours.
func (r *runner) process() (*Result, error) {
	for r.open.Len() > 0 {
		// 1) Cancellation check.
		select {
		case <-r.options.Ctx.Done():
			return nil, r.options.Ctx.Err()
		default:
		}

		// 2) Budget: at most MaxExpansions nodes are ever closed.
		if r.options.MaxExpansions > 0 && len(r.order) >= r.options.MaxExpansions {
			return nil, fmt.Errorf("%w: %d nodes closed", ErrSearchExceededBudget, len(r.order))
		}

		// 3) Select the open node with the lowest (F, seq) and close it.
		cur := r.open.popMin()
		r.closed[cur] = true
		node := r.nodes[cur]
		r.order = append(r.order, node)
		r.options.OnExpand(node)

		// 4) Goal check is by index only.
		if cur == r.goal.Index {
			return r.found(node)
		}

		// 5) Relax neighbours.
		r.expand(cur)
	}

	// 6) Open set exhausted: the goal is unreachable.
	return &Result{
		Closed:   r.order,
		Expanded: len(r.order),
	}, nil
}

// expand relaxes every traversable, not yet closed neighbour of cur.
func (r *runner) expand(cur int) {
	from, _ := r.g.Cell(cur)
	base := r.nodes[cur].G

	for _, nb := range r.g.Neighbors(cur, r.mode) {
		// a) Closed cells are final.
		if r.closed[nb] {
			continue
		}

		// b) Tentative cost through cur.
		to, _ := r.g.Cell(nb)
		g := base + r.model.Step(from, to)
		n := &r.nodes[nb]

		// c) Already open: lower its key only on a strict improvement.
		if r.open.contains(nb) {
			if !r.options.DecreaseKey || g >= n.G {
				continue
			}
			n.G = g
			n.F = g + n.H
			n.Parent = cur
			r.open.fix(nb)
			r.options.OnImprove(*n)
			continue
		}

		// d) First discovery: H is computed once per run.
		n.G = g
		n.H = r.model.H(to, r.goal)
		n.F = n.G + n.H
		n.Parent = cur
		r.push(nb)
		r.options.OnDiscover(*n)
	}
}

func (r *runner) push(cell int) {
	r.open.add(cell, r.seq)
	r.seq++
}

// found rebuilds the route and packs the Result.
func (r *runner) found(goal Node) (*Result, error) {
	nodes, err := Reconstruct(r.order, goal)
	if err != nil {
		return nil, err
	}
	path := make([]CellSnapshot, len(nodes))
	for i, n := range nodes {
		path[i] = CellSnapshot{Index: n.Index, X: n.X, Y: n.Y, G: n.G}
	}

	return &Result{
		Path:     path,
		Cost:     goal.G,
		Found:    true,
		Goal:     goal,
		Closed:   r.order,
		Expanded: len(r.order),
	}, nil
}
