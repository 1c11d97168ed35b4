package main

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// OperationType identifies an edit recorded for undo.
type OperationType string

const (
	OpCopy   OperationType = "copy"
	OpRemove OperationType = "remove"
)

// Operation is one atomic store edit.
type Operation struct {
	Type        OperationType
	Path        string
	LineNumber  int
	LineContent string
}

// OperationGroup is a set of operations undone together, e.g. a copy-chunk
// that inserted several lines.
type OperationGroup struct {
	ID          string
	Description string
	Operations  []Operation
	Timestamp   time.Time
}

const maxHistorySize = 50

// History records edit groups and replays their inverses against a FileStore.
// Edits performed by Undo and Redo are not themselves recorded.
type History struct {
	mu    sync.Mutex
	store *FileStore
	undo  []OperationGroup
	redo  []OperationGroup
}

// NewHistory creates a history bound to the store the operations ran against.
func NewHistory(store *FileStore) *History {
	return &History{store: store}
}

// Record commits a group of already-applied operations. The redo stack is
// cleared: a fresh edit invalidates anything previously undone.
func (h *History) Record(description string, ops ...Operation) string {
	if len(ops) == 0 {
		return ""
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	group := OperationGroup{
		ID:          uuid.New().String(),
		Description: description,
		Operations:  ops,
		Timestamp:   time.Now(),
	}
	h.undo = append(h.undo, group)
	if len(h.undo) > maxHistorySize {
		h.undo = h.undo[len(h.undo)-maxHistorySize:]
	}
	h.redo = nil
	return group.ID
}

// Undo reverts the most recent group, replaying inverse operations in
// reverse order, and returns its description.
func (h *History) Undo() (string, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.undo) == 0 {
		return "", fmt.Errorf("nothing to undo")
	}

	group := h.undo[len(h.undo)-1]
	for i := len(group.Operations) - 1; i >= 0; i-- {
		if err := h.invert(group.Operations[i]); err != nil {
			return "", fmt.Errorf("undo %s: %w", group.Description, err)
		}
	}

	h.undo = h.undo[:len(h.undo)-1]
	h.redo = append(h.redo, group)
	return group.Description, nil
}

// Redo reapplies the most recently undone group in original order.
func (h *History) Redo() (string, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.redo) == 0 {
		return "", fmt.Errorf("nothing to redo")
	}

	group := h.redo[len(h.redo)-1]
	for _, op := range group.Operations {
		if err := h.apply(op); err != nil {
			return "", fmt.Errorf("redo %s: %w", group.Description, err)
		}
	}

	h.redo = h.redo[:len(h.redo)-1]
	h.undo = append(h.undo, group)
	return group.Description, nil
}

// CanUndo reports whether any group is available to undo.
func (h *History) CanUndo() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.undo) > 0
}

// CanRedo reports whether any group is available to redo.
func (h *History) CanRedo() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.redo) > 0
}

// Clear drops both stacks, e.g. after discarding all buffers.
func (h *History) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.undo = nil
	h.redo = nil
}

func (h *History) invert(op Operation) error {
	switch op.Type {
	case OpCopy:
		_, err := h.store.RemoveLine(op.Path, op.LineNumber)
		return err
	case OpRemove:
		_, err := h.store.CopyLine(op.LineContent, op.Path, op.LineNumber)
		return err
	default:
		return fmt.Errorf("unknown operation type %q", op.Type)
	}
}

func (h *History) apply(op Operation) error {
	switch op.Type {
	case OpCopy:
		_, err := h.store.CopyLine(op.LineContent, op.Path, op.LineNumber)
		return err
	case OpRemove:
		_, err := h.store.RemoveLine(op.Path, op.LineNumber)
		return err
	default:
		return fmt.Errorf("unknown operation type %q", op.Type)
	}
}
