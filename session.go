package main

import (
	"errors"
	"fmt"
	"io"
	"sync"

	"pairdiff/diff"
)

// Side selects one of the two compared files.
type Side int

const (
	SideLeft Side = iota
	SideRight
)

func (s Side) String() string {
	if s == SideLeft {
		return "left"
	}
	return "right"
}

// maxCompareLines bounds the O(m*n) alignment; beyond this the comparison is
// refused rather than blocking for minutes.
const maxCompareLines = 100000

// ErrFileTooLarge is returned when either side exceeds maxCompareLines.
var ErrFileTooLarge = errors.New("file too large for comparison")

// ErrEditNotApplicable marks edits that make no sense for the addressed row,
// e.g. removing the left line of an added row. Callers treat it as an invalid
// move, not a failure.
var ErrEditNotApplicable = errors.New("edit not applicable to this line")

// Session owns one comparison: the edit-buffer store, the engine, the current
// result with its chunks, the navigator, and the undo history. Edits and
// recomputes are serialized by one mutex, and every mutation is followed by
// an explicit Recompute; nothing updates reactively.
type Session struct {
	mu      sync.Mutex
	store   *FileStore
	engine  *diff.Engine
	history *History
	logger  *Logger

	leftPath     string
	rightPath    string
	leftFromHead bool

	result *diff.Result
	chunks []diff.Chunk
	nav    *diff.Navigator
}

// NewSession creates a session comparing leftPath against rightPath. When
// leftFromHead is set, the left side is rightPath's committed content at HEAD
// and is read-only.
func NewSession(store *FileStore, engine *diff.Engine, logger *Logger, leftPath, rightPath string, leftFromHead bool) *Session {
	return &Session{
		store:        store,
		engine:       engine,
		history:      NewHistory(store),
		logger:       logger,
		leftPath:     leftPath,
		rightPath:    rightPath,
		leftFromHead: leftFromHead,
	}
}

// Compare runs the full pipeline from scratch and resets the navigator, with
// no chunk selected.
func (s *Session) Compare() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.recomputeLocked(); err != nil {
		return err
	}
	s.nav = diff.NewNavigator(s.chunks)
	return nil
}

// Recompute reruns the full pipeline after an edit or an external change and
// reconciles the navigator against the new chunk list.
func (s *Session) Recompute() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.recomputeReconcileLocked()
}

func (s *Session) recomputeReconcileLocked() error {
	if err := s.recomputeLocked(); err != nil {
		return err
	}
	s.nav.Reconcile(s.chunks)
	return nil
}

func (s *Session) recomputeLocked() error {
	leftLines, err := s.leftLines()
	if err != nil {
		return fmt.Errorf("read left side: %w", err)
	}
	rightLines, err := s.store.Lines(s.rightPath)
	if err != nil {
		return fmt.Errorf("read right side: %w", err)
	}
	if len(leftLines) > maxCompareLines || len(rightLines) > maxCompareLines {
		return fmt.Errorf("%w (max %d lines)", ErrFileTooLarge, maxCompareLines)
	}

	s.result = s.engine.Compare(leftLines, rightLines)
	s.chunks = diff.ChunksOf(s.result)
	return nil
}

func (s *Session) leftLines() ([]string, error) {
	if s.leftFromHead {
		return headLines(s.rightPath)
	}
	return s.store.Lines(s.leftPath)
}

// Result returns the current diff result.
func (s *Session) Result() *diff.Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.result
}

// Chunks returns the current chunk list.
func (s *Session) Chunks() []diff.Chunk {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.chunks
}

// Navigator returns the session's chunk cursor.
func (s *Session) Navigator() *diff.Navigator {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.nav
}

// History returns the session's undo history.
func (s *Session) History() *History {
	return s.history
}

// Paths returns the two compared paths.
func (s *Session) Paths() (left, right string) {
	return s.leftPath, s.rightPath
}

// Editable reports whether the given side accepts edits.
func (s *Session) Editable(side Side) bool {
	return !(side == SideLeft && s.leftFromHead)
}

// CopyRow copies the line at result row index from one side into the other
// file, then recomputes. The line lands right after the nearest target-side
// line at or above the row.
func (s *Session) CopyRow(from Side, row int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.result == nil || row < 0 || row >= len(s.result.Lines) {
		return fmt.Errorf("row %d is out of range", row)
	}
	target := otherSide(from)
	if !s.Editable(target) {
		return fmt.Errorf("%w: %s side is read-only", ErrEditNotApplicable, target)
	}

	line := s.result.Lines[row]
	text, ok := sideText(line, from)
	if !ok {
		return fmt.Errorf("%w: no %s content at this line", ErrEditNotApplicable, from)
	}

	number := s.insertPosition(target, row)
	actual, err := s.store.CopyLine(text, s.sidePath(target), number)
	if err != nil {
		return err
	}

	s.history.Record(fmt.Sprintf("copy line to %s", target), Operation{
		Type:        OpCopy,
		Path:        s.sidePath(target),
		LineNumber:  actual,
		LineContent: text,
	})
	return s.recomputeReconcileLocked()
}

// CopyChunk copies every line of the chunk at result row index from one side
// into the other file as a single undo group, then recomputes.
func (s *Session) CopyChunk(from Side, chunk diff.Chunk) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.result == nil || chunk.End >= len(s.result.Lines) {
		return fmt.Errorf("chunk out of range")
	}
	target := otherSide(from)
	if !s.Editable(target) {
		return fmt.Errorf("%w: %s side is read-only", ErrEditNotApplicable, target)
	}

	var ops []Operation
	number := s.insertPosition(target, chunk.Start)
	for row := chunk.Start; row <= chunk.End; row++ {
		text, ok := sideText(s.result.Lines[row], from)
		if !ok {
			continue
		}
		actual, err := s.store.CopyLine(text, s.sidePath(target), number)
		if err != nil {
			return err
		}
		ops = append(ops, Operation{
			Type:        OpCopy,
			Path:        s.sidePath(target),
			LineNumber:  actual,
			LineContent: text,
		})
		number = actual + 1
	}
	if len(ops) == 0 {
		return fmt.Errorf("%w: chunk has no %s content", ErrEditNotApplicable, from)
	}

	s.history.Record(fmt.Sprintf("copy chunk to %s", target), ops...)
	return s.recomputeReconcileLocked()
}

// RemoveRow deletes the line at result row index from the given side, then
// recomputes.
func (s *Session) RemoveRow(side Side, row int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.result == nil || row < 0 || row >= len(s.result.Lines) {
		return fmt.Errorf("row %d is out of range", row)
	}
	if !s.Editable(side) {
		return fmt.Errorf("%w: %s side is read-only", ErrEditNotApplicable, side)
	}

	number, ok := sideNumber(s.result.Lines[row], side)
	if !ok {
		return fmt.Errorf("%w: no %s line number at this row", ErrEditNotApplicable, side)
	}

	removed, err := s.store.RemoveLine(s.sidePath(side), number)
	if err != nil {
		return err
	}

	s.history.Record(fmt.Sprintf("remove line from %s", side), Operation{
		Type:        OpRemove,
		Path:        s.sidePath(side),
		LineNumber:  number,
		LineContent: removed,
	})
	return s.recomputeReconcileLocked()
}

// Undo reverts the last edit group and recomputes.
func (s *Session) Undo() (string, error) {
	description, err := s.history.Undo()
	if err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return description, s.recomputeReconcileLocked()
}

// Redo reapplies the last undone edit group and recomputes.
func (s *Session) Redo() (string, error) {
	description, err := s.history.Redo()
	if err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return description, s.recomputeReconcileLocked()
}

// WriteUnified writes the current comparison as a unified diff.
func (s *Session) WriteUnified(w io.Writer, contextLines int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	leftLines, err := s.leftLines()
	if err != nil {
		return err
	}
	rightLines, err := s.store.Lines(s.rightPath)
	if err != nil {
		return err
	}
	leftName := s.leftPath
	if s.leftFromHead {
		leftName = s.rightPath + "@HEAD"
	}
	return diff.WriteUnified(w, leftName, s.rightPath, leftLines, rightLines, contextLines)
}

func (s *Session) sidePath(side Side) string {
	if side == SideLeft {
		return s.leftPath
	}
	return s.rightPath
}

// insertPosition finds where a line copied toward side should land relative
// to row: right after the nearest line above it that exists on that side.
func (s *Session) insertPosition(side Side, row int) int {
	for i := row - 1; i >= 0; i-- {
		if number, ok := sideNumber(s.result.Lines[i], side); ok {
			return number + 1
		}
	}
	return 1
}

func otherSide(side Side) Side {
	if side == SideLeft {
		return SideRight
	}
	return SideLeft
}

func sideText(line diff.Line, side Side) (string, bool) {
	if number, ok := sideNumber(line, side); !ok || number == 0 {
		return "", false
	}
	if side == SideLeft {
		return line.LeftText, true
	}
	return line.RightText, true
}

func sideNumber(line diff.Line, side Side) (int, bool) {
	if side == SideLeft {
		return line.LeftNumber, line.LeftNumber != 0
	}
	return line.RightNumber, line.RightNumber != 0
}
