package aquant

// arenaChunkNodes is how many hash nodes each backing chunk holds.
const arenaChunkNodes = 2048

// arena is a bump allocator for hash chain nodes. Nodes are handed out
// from growing backing chunks; individual nodes are never reclaimed,
// and Release drops the whole region in one operation. Chunks never
// move once allocated, so node pointers stay valid until Release. An
// arena belongs to exactly one histogram build and is not safe for
// concurrent use.
type arena struct {
	chunks [][]hashNode
}

// newNode returns a pointer to a zeroed node valid until Release.
func (a *arena) newNode() *hashNode {
	n := len(a.chunks)
	if n == 0 || len(a.chunks[n-1]) == cap(a.chunks[n-1]) {
		a.chunks = append(a.chunks, make([]hashNode, 0, arenaChunkNodes))
		n++
	}
	chunk := &a.chunks[n-1]
	*chunk = append(*chunk, hashNode{})
	return &(*chunk)[len(*chunk)-1]
}

// nodes reports how many nodes have been handed out.
func (a *arena) nodes() int {
	total := 0
	for _, c := range a.chunks {
		total += len(c)
	}
	return total
}

// Release invalidates every node the arena has handed out. After
// Release the arena is empty and may be reused.
func (a *arena) Release() {
	a.chunks = nil
}
