package design

// MaxSnapshots bounds the undo log. Snapshots are full deep copies, so the
// cap keeps memory proportional to design size rather than edit count.
const MaxSnapshots = 50

// History is a bounded undo/redo log of graph snapshots.
//
// The cursor always points at the snapshot representing the current state,
// or -1 when the log is empty. Pushing after one or more undos truncates the
// redo tail first, exactly like an editor history.
type History struct {
	snapshots []Snapshot
	cursor    int
}

// NewHistory creates an empty history.
func NewHistory() *History {
	return &History{cursor: -1}
}

// Push records the post-mutation state. Every undoable graph operation calls
// this exactly once, after the complete batch of mutations; in-progress
// operations (live drag) defer it to the operation's logical end.
func (h *History) Push(parts []Part, connections []Connection) {
	h.snapshots = append(h.snapshots[:h.cursor+1], Snapshot{
		Parts:       cloneParts(parts),
		Connections: cloneConnections(connections),
	})
	h.cursor = len(h.snapshots) - 1
	if len(h.snapshots) > MaxSnapshots {
		h.snapshots = h.snapshots[1:]
		h.cursor--
	}
}

// CanUndo reports whether an earlier snapshot exists.
func (h *History) CanUndo() bool { return h.cursor > 0 }

// CanRedo reports whether a later snapshot exists.
func (h *History) CanRedo() bool { return h.cursor < len(h.snapshots)-1 }

// Undo steps the cursor back and returns a deep copy of the snapshot at the
// new position. At the base of the log it is a no-op and returns ok=false.
func (h *History) Undo() (Snapshot, bool) {
	if !h.CanUndo() {
		return Snapshot{}, false
	}
	h.cursor--
	return h.current(), true
}

// Redo steps the cursor forward and returns a deep copy of the snapshot at
// the new position. At the tip of the log it is a no-op and returns ok=false.
func (h *History) Redo() (Snapshot, bool) {
	if !h.CanRedo() {
		return Snapshot{}, false
	}
	h.cursor++
	return h.current(), true
}

// Len returns the number of retained snapshots.
func (h *History) Len() int { return len(h.snapshots) }

// Cursor returns the current cursor position (-1 when empty).
func (h *History) Cursor() int { return h.cursor }

func (h *History) current() Snapshot {
	s := h.snapshots[h.cursor]
	return Snapshot{
		Parts:       cloneParts(s.Parts),
		Connections: cloneConnections(s.Connections),
	}
}
