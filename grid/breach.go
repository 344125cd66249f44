package grid

import (
	"container/list"
	"fmt"
)

// MinBreach finds a route from cell a to cell b that crosses as few walls as
// possible and returns it together with the number of walls on it.
// Entering a wall costs 1, entering a free cell costs 0; a and b themselves may
// be walls and are counted like any other cell on the route (a only when it is
// a wall). A result of 0 walls means b is already reachable from a.
//
// Behavior:
//  1. Validate both indices (ErrIndexOutOfRange).
//  2. 0-1 BFS from a over every in-bounds neighbour under mode.
//  3. Stop when b is popped; rebuild the route from the predecessor slice.
//
// Complexity: O(W·H·d) time, O(W·H) memory.
func (g *Grid) MinBreach(a, b int, mode Movement) (path []int, walls int, err error) {
	if !g.Contains(a) {
		return nil, 0, fmt.Errorf("%w: %d", ErrIndexOutOfRange, a)
	}
	if !g.Contains(b) {
		return nil, 0, fmt.Errorf("%w: %d", ErrIndexOutOfRange, b)
	}

	// 1) Initialize distances (wall count) and predecessors.
	n := len(g.cells)
	const inf = int(^uint(0) >> 1)
	dist := make([]int, n)
	prev := make([]int, n)
	for i := range dist {
		dist[i] = inf
		prev[i] = -1
	}

	// 0-1 BFS: deque processes cost0 at front, cost1 at back
	dq := list.New()
	dist[a] = g.wallCost(a)
	dq.PushFront(a)

	// 2) Main loop: pop the front, stop at b.
	offsets := mode.Offsets()
	for dq.Len() > 0 {
		e := dq.Front()
		dq.Remove(e)
		u := e.Value.(int)
		if u == b {
			break
		}
		// 3) Relax every in-bounds neighbour, walls included.
		ux, uy := g.Coordinate(u)
		for _, d := range offsets {
			vx, vy := ux+d[0], uy+d[1]
			if !g.InBounds(vx, vy) {
				continue
			}
			v := g.Index(vx, vy)
			step := g.wallCost(v)
			if nd := dist[u] + step; nd < dist[v] {
				dist[v] = nd
				prev[v] = u
				if step == 0 {
					dq.PushFront(v)
				} else {
					dq.PushBack(v)
				}
			}
		}
	}

	// 4) Rebuild the route b → a, then reverse.
	for at := b; at >= 0; at = prev[at] {
		path = append(path, at)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, dist[b], nil
}

func (g *Grid) wallCost(i int) int {
	if g.cells[i].Traversable {
		return 0
	}
	return 1
}
