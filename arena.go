package treeml

const arenaChunkSize = 1024

// arena is an append-only byte store. Chunks are never resized or moved once
// allocated, so any view handed out stays valid for the arena's lifetime.
type arena struct {
	chunks [][]byte
}

// alloc returns a writable span of n bytes backed by the arena.
func (a *arena) alloc(n int) []byte {
	if n == 0 {
		return nil
	}

	if len(a.chunks) > 0 {
		last := a.chunks[len(a.chunks)-1]
		if len(last)+n <= cap(last) {
			start := len(last)
			a.chunks[len(a.chunks)-1] = last[:start+n]
			return last[start : start+n : start+n]
		}
	}

	size := arenaChunkSize
	if n > size {
		size = n
	}

	chunk := make([]byte, n, size)
	a.chunks = append(a.chunks, chunk)

	return chunk[0:n:n]
}

// intern copies b into the arena and returns the stable copy. Empty input
// returns nil without allocating.
func (a *arena) intern(b []byte) []byte {
	if len(b) == 0 {
		return nil
	}

	dst := a.alloc(len(b))
	copy(dst, b)

	return dst
}
