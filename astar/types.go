package astar

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/gridpath/cost"
)

// Sentinel errors returned by the A* implementation.
var (
	// ErrNilGrid indicates that a nil *grid.Grid was passed to FindPath.
	ErrNilGrid = errors.New("astar: grid is nil")

	// ErrInvalidCell indicates a start or goal index outside the grid or on a wall.
	ErrInvalidCell = errors.New("astar: invalid cell")

	// ErrOptionViolation indicates an invalid option or cost model.
	ErrOptionViolation = errors.New("astar: invalid option supplied")

	// ErrSearchExceededBudget indicates the expansion cap was reached before the goal.
	ErrSearchExceededBudget = errors.New("astar: search exceeded expansion budget")

	// ErrBrokenParentChain indicates a parent link that does not lead back to the
	// start through closed cells. It signals an internal defect.
	ErrBrokenParentChain = errors.New("astar: broken parent chain")
)

// NoParent marks the start node of a search.
const NoParent = -1

// Node is the search state of one cell within a single run.
// Set membership is decided by Index alone.
type Node struct {
	Index  int // row-major cell index
	X, Y   int // cell coordinates
	Parent int // index of the predecessor, NoParent for the start
	G      int // cost from start
	H      int // heuristic estimate to goal
	F      int // G + H
}

// CellSnapshot is one step of a returned path.
type CellSnapshot struct {
	Index int
	X, Y  int
	G     int // cost from start to this cell along the path
}

// Result is the outcome of FindPath.
type Result struct {
	// Path lists the cells from start to goal; empty when Found is false.
	Path []CellSnapshot
	// Cost is the goal's g, the sum of step costs along Path.
	Cost int
	// Found reports whether the goal was reached.
	Found bool
	// Goal is the goal's final node when Found is true.
	Goal Node
	// Closed is the closed-set history in selection order.
	Closed []Node
	// Expanded is the number of closed nodes, len(Closed).
	Expanded int
}

// Indices returns the cell indices of Path.
func (r *Result) Indices() []int {
	out := make([]int, len(r.Path))
	for i, c := range r.Path {
		out[i] = c.Index
	}
	return out
}

// Steps returns the number of moves along Path (0 for an empty or one-cell path).
func (r *Result) Steps() int {
	if len(r.Path) == 0 {
		return 0
	}
	return len(r.Path) - 1
}

// Options configures a FindPath run.
//
// Ctx           – cancellation; checked once per selected node.
// Model         – explicit cost model; when nil one is built from Heuristic and the unit costs.
// Heuristic     – heuristic kind for the built model (cost.Auto by default).
// Straight      – straight step cost for the built model (default 10).
// Diagonal      – diagonal step cost for the built model (default 14).
// DecreaseKey   – update an open cell when a cheaper route is found (default true).
// MaxExpansions – cap on closed nodes; 0 means unlimited.
type Options struct {
	Ctx           context.Context
	Model         *cost.Model
	Heuristic     cost.Heuristic
	Straight      int
	Diagonal      int
	DecreaseKey   bool
	MaxExpansions int

	// OnExpand is called after a node is moved to the closed set.
	OnExpand func(n Node)
	// OnDiscover is called when a node first enters the open set.
	OnDiscover func(n Node)
	// OnImprove is called when decrease-key lowers an open node's g.
	OnImprove func(n Node)

	// internal error recorded during option parsing
	err error
}

// Option represents a functional option for configuring FindPath.
type Option func(*Options)

// DefaultOptions returns Options with:
//   - context.Background()
//   - default unit costs 10 / 14 and cost.Auto heuristic
//   - decrease-key enabled
//   - no expansion cap
//   - no-op hooks
func DefaultOptions() Options {
	return Options{
		Ctx:         context.Background(),
		Heuristic:   cost.Auto,
		Straight:    cost.DefaultStraight,
		Diagonal:    cost.DefaultDiagonal,
		DecreaseKey: true,
		OnExpand:    func(Node) {},
		OnDiscover:  func(Node) {},
		OnImprove:   func(Node) {},
	}
}

// WithContext sets a context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithCostModel supplies a ready cost model. Its movement must match the
// movement passed to FindPath.
func WithCostModel(m cost.Model) Option {
	return func(o *Options) {
		o.Model = &m
	}
}

// WithHeuristic selects the heuristic kind of the built cost model.
func WithHeuristic(h cost.Heuristic) Option {
	return func(o *Options) {
		o.Heuristic = h
	}
}

// WithUnitCosts sets the straight and diagonal step costs of the built cost model.
func WithUnitCosts(straight, diagonal int) Option {
	return func(o *Options) {
		o.Straight = straight
		o.Diagonal = diagonal
	}
}

// WithoutDecreaseKey keeps the first route found to an open cell even when a
// cheaper one turns up later.
func WithoutDecreaseKey() Option {
	return func(o *Options) {
		o.DecreaseKey = false
	}
}

// WithMaxExpansions caps the number of closed nodes.
//
//	n > 0: at most n nodes are closed, then ErrSearchExceededBudget
//	n == 0: no cap
//	n < 0: invalid option → ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// WithOnExpand registers a callback run for every closed node.
func WithOnExpand(fn func(n Node)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithOnDiscover registers a callback run when a node enters the open set.
func WithOnDiscover(fn func(n Node)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDiscover = fn
		}
	}
}

// WithOnImprove registers a callback run when an open node gets a cheaper route.
func WithOnImprove(fn func(n Node)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnImprove = fn
		}
	}
}
