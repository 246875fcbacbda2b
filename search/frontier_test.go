package search

import (
	"testing"

	"github.com/tolmaren/gridsearch/grid"
)

func coord(r, c int) grid.Coord { return grid.Coord{Row: r, Col: c} }

// TestFIFOFrontier_Order verifies insertion-order pops and length tracking.
func TestFIFOFrontier_Order(t *testing.T) {
	f := &fifoFrontier{}
	for i := int32(0); i < 5; i++ {
		f.push(i, 0)
	}
	if f.len() != 5 {
		t.Fatalf("len = %d; want 5", f.len())
	}
	for want := int32(0); want < 5; want++ {
		id, ok := f.pop()
		if !ok || id != want {
			t.Errorf("pop = (%d,%v); want (%d,true)", id, ok, want)
		}
	}
	if _, ok := f.pop(); ok {
		t.Error("pop on empty frontier returned ok")
	}
}

// TestFIFOFrontier_Compaction pushes past the compaction threshold and
// checks order survives the internal shift.
func TestFIFOFrontier_Compaction(t *testing.T) {
	f := &fifoFrontier{}
	const n = 5000
	for i := int32(0); i < n; i++ {
		f.push(i, 0)
	}
	for want := int32(0); want < n; want++ {
		id, ok := f.pop()
		if !ok || id != want {
			t.Fatalf("pop #%d = (%d,%v); want (%d,true)", want, id, ok, want)
		}
		// Interleave pushes to exercise compaction mid-stream.
		if want%3 == 0 {
			f.push(n+want, 0)
		}
	}
}

// TestLIFOFrontier_Order verifies stack pops.
func TestLIFOFrontier_Order(t *testing.T) {
	f := &lifoFrontier{}
	for i := int32(0); i < 4; i++ {
		f.push(i, 0)
	}
	for want := int32(3); want >= 0; want-- {
		id, ok := f.pop()
		if !ok || id != want {
			t.Errorf("pop = (%d,%v); want (%d,true)", id, ok, want)
		}
	}
}

// TestHeapFrontier_PriorityOrder verifies ascending-priority pops.
func TestHeapFrontier_PriorityOrder(t *testing.T) {
	f := newHeapFrontier()
	f.push(1, 3.0)
	f.push(2, 1.0)
	f.push(3, 2.0)

	want := []int32{2, 3, 1}
	for _, w := range want {
		id, ok := f.pop()
		if !ok || id != w {
			t.Errorf("pop = (%d,%v); want (%d,true)", id, ok, w)
		}
	}
}

// TestHeapFrontier_StableTieBreak verifies that equal priorities pop in
// insertion order. Benchmark reproducibility depends on this.
func TestHeapFrontier_StableTieBreak(t *testing.T) {
	f := newHeapFrontier()
	for i := int32(0); i < 50; i++ {
		f.push(i, 7.5)
	}
	for want := int32(0); want < 50; want++ {
		id, ok := f.pop()
		if !ok || id != want {
			t.Fatalf("tie-break pop = (%d,%v); want (%d,true)", id, ok, want)
		}
	}
}

// TestFrontierFor maps algorithms to their frontier kinds.
func TestFrontierFor(t *testing.T) {
	if _, ok := frontierFor(BFS).(*fifoFrontier); !ok {
		t.Error("BFS frontier is not FIFO")
	}
	if _, ok := frontierFor(DFS).(*lifoFrontier); !ok {
		t.Error("DFS frontier is not LIFO")
	}
	if _, ok := frontierFor(UCS).(*heapFrontier); !ok {
		t.Error("UCS frontier is not a heap")
	}
	if _, ok := frontierFor(AStar).(*heapFrontier); !ok {
		t.Error("A* frontier is not a heap")
	}
}

// TestNodeArena_PathReconstruction walks a three-node chain.
func TestNodeArena_PathReconstruction(t *testing.T) {
	a := newNodeArena(4)
	root := a.add(node{state: coord(0, 0), parent: noParent})
	mid := a.add(node{state: coord(0, 1), parent: root, cost: 1, depth: 1})
	leaf := a.add(node{state: coord(0, 2), parent: mid, cost: 2, depth: 2})

	path := a.path(leaf)
	if len(path) != 3 {
		t.Fatalf("path length = %d; want 3", len(path))
	}
	for i, want := range []int{0, 1, 2} {
		if path[i].Col != want {
			t.Errorf("path[%d].Col = %d; want %d", i, path[i].Col, want)
		}
	}
	if got := a.path(root); len(got) != 1 {
		t.Errorf("root path length = %d; want 1", len(got))
	}
}
