package design_test

import (
	"fmt"
	"testing"

	"github.com/archmind/archmind/pkg/design"
)

func pushN(h *design.History, n int) {
	for i := 1; i <= n; i++ {
		h.Push([]design.Part{part(i, fmt.Sprintf("p%d", i))}, nil)
	}
}

func TestHistoryBound(t *testing.T) {
	h := design.NewHistory()
	pushN(h, design.MaxSnapshots+25)

	if h.Len() != design.MaxSnapshots {
		t.Fatalf("Len = %d, want %d", h.Len(), design.MaxSnapshots)
	}
	if h.Cursor() != design.MaxSnapshots-1 {
		t.Fatalf("Cursor = %d, want %d", h.Cursor(), design.MaxSnapshots-1)
	}

	// The retained snapshots are the most recent 50: walking all the way
	// back lands on push #26.
	var last design.Snapshot
	for h.CanUndo() {
		last, _ = h.Undo()
	}
	if last.Parts[0].ID != 26 {
		t.Fatalf("oldest retained snapshot has part id %d, want 26", last.Parts[0].ID)
	}
}

func TestUndoRedoSymmetry(t *testing.T) {
	h := design.NewHistory()
	pushN(h, 5)

	before, ok := h.Undo()
	if !ok {
		t.Fatal("Undo failed")
	}
	if before.Parts[0].ID != 4 {
		t.Fatalf("after undo, state = %d, want 4", before.Parts[0].ID)
	}
	after, ok := h.Redo()
	if !ok {
		t.Fatal("Redo failed")
	}
	if after.Parts[0].ID != 5 {
		t.Fatalf("redo restored state %d, want 5", after.Parts[0].ID)
	}
}

func TestRedoAtTipIsNoop(t *testing.T) {
	h := design.NewHistory()
	pushN(h, 2)
	if _, ok := h.Redo(); ok {
		t.Fatal("Redo at tip should be a no-op")
	}
	if h.Cursor() != 1 {
		t.Fatalf("Cursor = %d, want 1", h.Cursor())
	}
}

func TestUndoAtBaseIsNoop(t *testing.T) {
	h := design.NewHistory()
	if _, ok := h.Undo(); ok {
		t.Fatal("Undo on empty history should be a no-op")
	}
	pushN(h, 1)
	if _, ok := h.Undo(); ok {
		t.Fatal("Undo at cursor 0 should be a no-op")
	}
}

func TestPushTruncatesRedoTail(t *testing.T) {
	h := design.NewHistory()
	pushN(h, 3)
	h.Undo()
	h.Undo()
	h.Push([]design.Part{part(99, "branch")}, nil)

	if h.Len() != 2 {
		t.Fatalf("Len = %d, want 2 (redo tail truncated)", h.Len())
	}
	if h.CanRedo() {
		t.Fatal("CanRedo should be false right after a push")
	}
}

func TestSnapshotsAreDeepCopies(t *testing.T) {
	h := design.NewHistory()
	parts := []design.Part{part(1, "orig")}
	h.Push(parts, nil)
	parts[0].Name = "mutated"

	h.Push([]design.Part{part(2, "second")}, nil)
	s, _ := h.Undo()
	if s.Parts[0].Name != "orig" {
		t.Fatalf("snapshot leaked caller mutation: %q", s.Parts[0].Name)
	}
}
