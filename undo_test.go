package main

import (
	"reflect"
	"testing"
)

func newHistoryFixture(t *testing.T) (*FileStore, *History, string) {
	t.Helper()
	path := writeTempFile(t, "a.txt", "one\ntwo\nthree\n")
	store := NewFileStore()
	return store, NewHistory(store), path
}

func storeLines(t *testing.T, store *FileStore, path string) []string {
	t.Helper()
	lines, err := store.Lines(path)
	if err != nil {
		t.Fatalf("Lines returned error: %v", err)
	}
	return lines
}

func TestHistoryUndoCopy(t *testing.T) {
	store, history, path := newHistoryFixture(t)

	pos, err := store.CopyLine("inserted", path, 2)
	if err != nil {
		t.Fatal(err)
	}
	history.Record("copy line", Operation{Type: OpCopy, Path: path, LineNumber: pos, LineContent: "inserted"})

	desc, err := history.Undo()
	if err != nil {
		t.Fatalf("Undo returned error: %v", err)
	}
	if desc != "copy line" {
		t.Errorf("description = %q, want %q", desc, "copy line")
	}

	want := []string{"one", "two", "three"}
	if got := storeLines(t, store, path); !reflect.DeepEqual(got, want) {
		t.Errorf("lines after undo = %q, want %q", got, want)
	}
}

func TestHistoryUndoRemove(t *testing.T) {
	store, history, path := newHistoryFixture(t)

	removed, err := store.RemoveLine(path, 2)
	if err != nil {
		t.Fatal(err)
	}
	history.Record("remove line", Operation{Type: OpRemove, Path: path, LineNumber: 2, LineContent: removed})

	if _, err := history.Undo(); err != nil {
		t.Fatalf("Undo returned error: %v", err)
	}

	want := []string{"one", "two", "three"}
	if got := storeLines(t, store, path); !reflect.DeepEqual(got, want) {
		t.Errorf("lines after undo = %q, want %q", got, want)
	}
}

func TestHistoryRedo(t *testing.T) {
	store, history, path := newHistoryFixture(t)

	if _, err := store.RemoveLine(path, 1); err != nil {
		t.Fatal(err)
	}
	history.Record("remove line", Operation{Type: OpRemove, Path: path, LineNumber: 1, LineContent: "one"})

	if _, err := history.Undo(); err != nil {
		t.Fatal(err)
	}
	desc, err := history.Redo()
	if err != nil {
		t.Fatalf("Redo returned error: %v", err)
	}
	if desc != "remove line" {
		t.Errorf("description = %q, want %q", desc, "remove line")
	}

	want := []string{"two", "three"}
	if got := storeLines(t, store, path); !reflect.DeepEqual(got, want) {
		t.Errorf("lines after redo = %q, want %q", got, want)
	}
}

func TestHistoryGroupUndoneInReverse(t *testing.T) {
	store, history, path := newHistoryFixture(t)

	// Simulate a chunk copy inserting two lines at positions 1 and 2.
	p1, _ := store.CopyLine("first", path, 1)
	p2, _ := store.CopyLine("second", path, 2)
	history.Record("copy chunk",
		Operation{Type: OpCopy, Path: path, LineNumber: p1, LineContent: "first"},
		Operation{Type: OpCopy, Path: path, LineNumber: p2, LineContent: "second"},
	)

	if _, err := history.Undo(); err != nil {
		t.Fatalf("Undo returned error: %v", err)
	}

	want := []string{"one", "two", "three"}
	if got := storeLines(t, store, path); !reflect.DeepEqual(got, want) {
		t.Errorf("lines after group undo = %q, want %q", got, want)
	}
}

func TestHistoryStackState(t *testing.T) {
	_, history, path := newHistoryFixture(t)

	if history.CanUndo() || history.CanRedo() {
		t.Error("fresh history should have empty stacks")
	}
	if _, err := history.Undo(); err == nil {
		t.Error("Undo on empty history should fail")
	}
	if _, err := history.Redo(); err == nil {
		t.Error("Redo on empty history should fail")
	}

	history.Record("noop", Operation{Type: OpRemove, Path: path, LineNumber: 1, LineContent: "one"})
	if !history.CanUndo() {
		t.Error("CanUndo should be true after Record")
	}
}

func TestHistoryRecordClearsRedo(t *testing.T) {
	store, history, path := newHistoryFixture(t)

	if _, err := store.RemoveLine(path, 1); err != nil {
		t.Fatal(err)
	}
	history.Record("remove line", Operation{Type: OpRemove, Path: path, LineNumber: 1, LineContent: "one"})
	if _, err := history.Undo(); err != nil {
		t.Fatal(err)
	}
	if !history.CanRedo() {
		t.Fatal("CanRedo should be true after Undo")
	}

	pos, _ := store.CopyLine("fresh", path, 1)
	history.Record("copy line", Operation{Type: OpCopy, Path: path, LineNumber: pos, LineContent: "fresh"})
	if history.CanRedo() {
		t.Error("Record should clear the redo stack")
	}
}

func TestHistoryClear(t *testing.T) {
	_, history, path := newHistoryFixture(t)

	history.Record("edit", Operation{Type: OpRemove, Path: path, LineNumber: 1, LineContent: "one"})
	history.Clear()
	if history.CanUndo() || history.CanRedo() {
		t.Error("Clear should drop both stacks")
	}
}

func TestHistorySizeLimit(t *testing.T) {
	_, history, path := newHistoryFixture(t)

	for i := 0; i < maxHistorySize+10; i++ {
		history.Record("edit", Operation{Type: OpRemove, Path: path, LineNumber: 1, LineContent: "x"})
	}

	history.mu.Lock()
	depth := len(history.undo)
	history.mu.Unlock()
	if depth != maxHistorySize {
		t.Errorf("undo stack depth = %d, want %d", depth, maxHistorySize)
	}
}

func TestHistoryEmptyRecordIgnored(t *testing.T) {
	_, history, _ := newHistoryFixture(t)

	if id := history.Record("nothing"); id != "" {
		t.Errorf("Record with no operations returned id %q, want empty", id)
	}
	if history.CanUndo() {
		t.Error("empty record should not be pushed")
	}
}
