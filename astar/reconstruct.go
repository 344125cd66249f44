package astar

import "fmt"

// Reconstruct rebuilds the route start → goal by following Parent links from
// goal through the closed nodes until a node with NoParent is reached.
//
// Returns ErrBrokenParentChain when a parent is not among closed, or when the
// walk takes more hops than there are closed nodes (a cycle).
// Complexity: O(len(closed)) time and memory.
func Reconstruct(closed []Node, goal Node) ([]Node, error) {
	byIndex := make(map[int]int, len(closed))
	for i, n := range closed {
		byIndex[n.Index] = i
	}

	path := []Node{goal}
	cur := goal
	for hops := 0; cur.Parent != NoParent; hops++ {
		if hops >= len(closed) {
			return nil, fmt.Errorf("%w: cycle through cell %d", ErrBrokenParentChain, cur.Index)
		}
		p, ok := byIndex[cur.Parent]
		if !ok {
			return nil, fmt.Errorf("%w: parent %d of cell %d is not closed", ErrBrokenParentChain, cur.Parent, cur.Index)
		}
		cur = closed[p]
		path = append(path, cur)
	}

	// reverse to get start → goal
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
