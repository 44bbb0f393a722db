package aquant

import "testing"

func TestArenaNodesDoNotAlias(t *testing.T) {
	var pool arena
	const count = 3*arenaChunkNodes + 17 // span several chunks

	nodes := make([]*hashNode, count)
	for i := range nodes {
		n := pool.newNode()
		if n.color != 0 || n.weight != 0 || n.next != nil {
			t.Fatalf("node %d not zeroed: %+v", i, *n)
		}
		n.color = PackedColor(i)
		n.weight = float32(i)
		nodes[i] = n
	}

	if got := pool.nodes(); got != count {
		t.Fatalf("arena reports %d nodes, want %d", got, count)
	}

	// Values written early must survive every later allocation: chunks
	// never move and allocations never overlap.
	for i, n := range nodes {
		if n.color != PackedColor(i) || n.weight != float32(i) {
			t.Fatalf("node %d clobbered: %+v", i, *n)
		}
	}
}

func TestArenaRelease(t *testing.T) {
	var pool arena
	for i := 0; i < 10; i++ {
		pool.newNode()
	}
	pool.Release()
	if got := pool.nodes(); got != 0 {
		t.Fatalf("released arena reports %d nodes", got)
	}

	// A released arena is reusable.
	n := pool.newNode()
	if n == nil || pool.nodes() != 1 {
		t.Fatal("arena not reusable after Release")
	}
}
