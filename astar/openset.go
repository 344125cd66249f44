package astar

import "container/heap"

// openItem is a heap entry: a cell index and the order it entered the open set.
type openItem struct {
	cell int
	seq  int
}

// openSet is an indexed min-heap of cells ordered by (F, seq). Priorities are
// read from the run's node store, so updating a node and calling fix is a
// decrease-key. pos maps a cell index to its heap slot, or -1 when absent.
type openSet struct {
	items []openItem
	pos   []int
	nodes []Node
}

func newOpenSet(nodes []Node) *openSet {
	pos := make([]int, len(nodes))
	for i := range pos {
		pos[i] = -1
	}
	return &openSet{nodes: nodes, pos: pos}
}

// Len returns the number of open cells.
func (s *openSet) Len() int { return len(s.items) }

// Less orders by F, then by insertion order.
func (s *openSet) Less(i, j int) bool {
	fi, fj := s.nodes[s.items[i].cell].F, s.nodes[s.items[j].cell].F
	if fi != fj {
		return fi < fj
	}
	return s.items[i].seq < s.items[j].seq
}

// Swap swaps two heap slots and keeps pos in sync.
func (s *openSet) Swap(i, j int) {
	s.items[i], s.items[j] = s.items[j], s.items[i]
	s.pos[s.items[i].cell] = i
	s.pos[s.items[j].cell] = j
}

// Push is called by heap.Push; x must be an openItem.
func (s *openSet) Push(x any) {
	it := x.(openItem)
	s.pos[it.cell] = len(s.items)
	s.items = append(s.items, it)
}

// Pop is called by heap.Pop and returns the removed openItem.
func (s *openSet) Pop() any {
	old := s.items
	n := len(old)
	it := old[n-1]
	s.items = old[:n-1]
	s.pos[it.cell] = -1

	return it
}

func (s *openSet) contains(cell int) bool { return s.pos[cell] >= 0 }

func (s *openSet) add(cell, seq int) { heap.Push(s, openItem{cell: cell, seq: seq}) }

func (s *openSet) popMin() int { return heap.Pop(s).(openItem).cell }

// fix restores heap order after the cell's F changed.
func (s *openSet) fix(cell int) { heap.Fix(s, s.pos[cell]) }
