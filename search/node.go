package search

import (
	"github.com/tolmaren/gridsearch/grid"
)

// noParent marks the root node's parent index.
const noParent int32 = -1

// node is one entry of the search tree/graph backbone. The parent link is
// an index into the owning arena, never a pointer: reconstruction is an
// index walk and the whole arena is dropped in one piece when the search
// returns.
type node struct {
	state  grid.Coord
	parent int32
	action grid.Action
	cost   float64
	depth  int
}

// nodeArena stores every node generated during one search run. It is
// owned by exactly one runner and never shared across invocations.
type nodeArena struct {
	nodes []node
}

// newNodeArena pre-sizes the backing slice; tree-mode runs routinely
// generate hundreds of thousands of nodes.
func newNodeArena(capacity int) *nodeArena {
	return &nodeArena{nodes: make([]node, 0, capacity)}
}

// add appends a node and returns its index.
func (a *nodeArena) add(n node) int32 {
	a.nodes = append(a.nodes, n)
	return int32(len(a.nodes) - 1)
}

// at returns the node at index id.
func (a *nodeArena) at(id int32) node {
	return a.nodes[id]
}

// len returns the number of nodes generated so far.
func (a *nodeArena) len() int {
	return len(a.nodes)
}

// path reconstructs the state sequence from the root to id by walking
// parent indices, then reversing. O(depth).
func (a *nodeArena) path(id int32) []grid.Coord {
	out := make([]grid.Coord, 0, a.nodes[id].depth+1)
	for cur := id; cur != noParent; cur = a.nodes[cur].parent {
		out = append(out, a.nodes[cur].state)
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// actions reconstructs the action sequence along the same walk, excluding
// the root (which was not reached by any action). O(depth).
func (a *nodeArena) actions(id int32) []grid.Action {
	out := make([]grid.Action, 0, a.nodes[id].depth)
	for cur := id; a.nodes[cur].parent != noParent; cur = a.nodes[cur].parent {
		out = append(out, a.nodes[cur].action)
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}
