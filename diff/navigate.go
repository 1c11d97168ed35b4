package diff

// Move is a successful navigation target: which chunk is now current and the
// result row the view should scroll to.
type Move struct {
	Chunk int
	Line  int
}

// Navigator is a cursor over a result's chunk list. A current index of -1
// means no chunk is selected. Boundary conditions (already at the first or
// last chunk, no chunks at all) are reported as an invalid move, not an
// error, so callers can give non-exceptional feedback.
type Navigator struct {
	chunks  []Chunk
	current int
}

// NewNavigator creates a navigator over a fresh chunk list with no selection.
func NewNavigator(chunks []Chunk) *Navigator {
	return &Navigator{chunks: chunks, current: -1}
}

// Current returns the index of the selected chunk, or -1.
func (n *Navigator) Current() int {
	return n.current
}

// Chunks returns the chunk list the navigator is tracking.
func (n *Navigator) Chunks() []Chunk {
	return n.chunks
}

// Next moves to the next chunk, or to the first chunk when nothing is
// selected yet. At the last chunk the cursor stays put and the move is
// invalid.
func (n *Navigator) Next() (Move, bool) {
	if len(n.chunks) == 0 {
		return Move{}, false
	}
	if n.current == -1 {
		n.current = 0
		return n.moveTo(n.current), true
	}
	if n.current < len(n.chunks)-1 {
		n.current++
		return n.moveTo(n.current), true
	}
	return Move{}, false
}

// Prev moves to the previous chunk, or to the last chunk when nothing is
// selected yet. At the first chunk the cursor stays put and the move is
// invalid.
func (n *Navigator) Prev() (Move, bool) {
	if len(n.chunks) == 0 {
		return Move{}, false
	}
	if n.current == -1 {
		n.current = len(n.chunks) - 1
		return n.moveTo(n.current), true
	}
	if n.current > 0 {
		n.current--
		return n.moveTo(n.current), true
	}
	return Move{}, false
}

// First jumps to the first chunk; invalid when there are no chunks or the
// cursor is already there.
func (n *Navigator) First() (Move, bool) {
	if len(n.chunks) == 0 || n.current == 0 {
		return Move{}, false
	}
	n.current = 0
	return n.moveTo(n.current), true
}

// Last jumps to the last chunk; invalid when there are no chunks or the
// cursor is already there.
func (n *Navigator) Last() (Move, bool) {
	if len(n.chunks) == 0 || n.current == len(n.chunks)-1 {
		return Move{}, false
	}
	n.current = len(n.chunks) - 1
	return n.moveTo(n.current), true
}

// Reconcile adopts the chunk list produced by a recompute after an edit and
// repositions the cursor:
//
//   - no chunks left: deselect.
//   - fewer chunks (the edit consumed one): wrap to the first chunk if the
//     cursor sat on the last chunk, otherwise keep the index so the chunk
//     that slid into that slot becomes current.
//   - same or more chunks: advance to the next chunk, wrapping past the end,
//     on the theory that the current chunk was just acted on.
//
// The index is clamped to the new list so it always stays in range even if a
// single edit collapsed several chunks at once.
func (n *Navigator) Reconcile(chunks []Chunk) {
	oldCount := len(n.chunks)
	oldIndex := n.current
	n.chunks = chunks

	newCount := len(chunks)
	switch {
	case newCount == 0:
		n.current = -1
	case newCount < oldCount:
		if oldIndex == oldCount-1 {
			n.current = 0
		} else {
			n.current = min(oldIndex, newCount-1)
		}
	default:
		n.current = (oldIndex + 1) % newCount
	}
}

func (n *Navigator) moveTo(index int) Move {
	return Move{Chunk: index, Line: n.chunks[index].Start}
}
