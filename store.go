package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"
)

// ErrBinaryContent marks files rejected by the binary sniff; they never reach
// the diff engine.
var ErrBinaryContent = errors.New("binary content")

// ErrNoPendingChanges is returned when saving a path with no edit buffer.
var ErrNoPendingChanges = errors.New("no pending changes")

// FileStore reads files as line sequences and holds unsaved per-path edit
// buffers. Every read-modify-write runs under one mutex so concurrent edits
// and recomputes see a consistent buffer. The store is created by the caller
// and injected; there is no process-wide instance.
type FileStore struct {
	mu      sync.Mutex
	pending map[string][]string
}

// NewFileStore creates an empty store.
func NewFileStore() *FileStore {
	return &FileStore{pending: make(map[string][]string)}
}

// Lines returns the edit buffer for path if one exists, otherwise the file's
// content from disk. The returned slice is a copy; callers may keep it across
// later edits.
func (s *FileStore) Lines(path string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.linesLocked(path)
}

func (s *FileStore) linesLocked(path string) ([]string, error) {
	if lines, ok := s.pending[path]; ok {
		out := make([]string, len(lines))
		copy(out, lines)
		return out, nil
	}
	return readFileLines(path)
}

// CopyLine inserts text into path's buffer at the 1-based position number,
// clamped into [0, len]. It returns the actual 1-based position the line
// landed at, for undo.
func (s *FileStore) CopyLine(text, path string, number int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines, err := s.linesLocked(path)
	if err != nil {
		return 0, fmt.Errorf("read target file: %w", err)
	}

	index := number - 1
	if index < 0 {
		index = 0
	}
	if index > len(lines) {
		index = len(lines)
	}

	updated := make([]string, 0, len(lines)+1)
	updated = append(updated, lines[:index]...)
	updated = append(updated, text)
	updated = append(updated, lines[index:]...)
	s.pending[path] = updated

	return index + 1, nil
}

// RemoveLine deletes the line at the 1-based position number from path's
// buffer and returns the removed text. Positions outside [1, len] are an
// explicit error, never silently clamped.
func (s *FileStore) RemoveLine(path string, number int) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines, err := s.linesLocked(path)
	if err != nil {
		return "", fmt.Errorf("read target file: %w", err)
	}

	index := number - 1
	if index < 0 || index >= len(lines) {
		return "", fmt.Errorf("line number %d is out of range", number)
	}

	removed := lines[index]
	updated := make([]string, 0, len(lines)-1)
	updated = append(updated, lines[:index]...)
	updated = append(updated, lines[index+1:]...)
	s.pending[path] = updated

	return removed, nil
}

// Save writes path's edit buffer to disk and drops the buffer on success.
func (s *FileStore) Save(path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines, ok := s.pending[path]
	if !ok {
		return fmt.Errorf("%w for %s", ErrNoPendingChanges, path)
	}

	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0o644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}

	delete(s.pending, path)
	return nil
}

// Discard drops the edit buffer for path, if any.
func (s *FileStore) Discard(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.pending, path)
}

// DiscardAll drops every edit buffer.
func (s *FileStore) DiscardAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = make(map[string][]string)
}

// HasPending reports whether path has unsaved changes.
func (s *FileStore) HasPending(path string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.pending[path]
	return ok
}

// PendingPaths returns the paths with unsaved changes, sorted.
func (s *FileStore) PendingPaths() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	paths := make([]string, 0, len(s.pending))
	for path := range s.pending {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}

// readFileLines reads path as text lines with terminators stripped. Binary
// content is rejected before any diffing can happen.
func readFileLines(path string) ([]string, error) {
	if path == "" {
		return []string{}, nil
	}

	binary, err := isBinaryFile(path)
	if err != nil {
		return nil, fmt.Errorf("check file type: %w", err)
	}
	if binary {
		return nil, fmt.Errorf("%w: %s", ErrBinaryContent, path)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	// Raise the token limit so minified or generated files with very long
	// lines still load.
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines, scanner.Err()
}

// isBinaryFile sniffs the first 512 bytes: any NUL byte, or more than 30%
// non-printable characters, marks the file as binary.
func isBinaryFile(path string) (bool, error) {
	file, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer file.Close()

	buf := make([]byte, 512)
	n, err := file.Read(buf)
	if err != nil && err != io.EOF {
		return false, err
	}
	if n == 0 {
		return false, nil
	}

	nonPrintable := 0
	for _, b := range buf[:n] {
		if b == 0 {
			return true, nil
		}
		if (b < 32 || b > 126) && b != '\t' && b != '\n' && b != '\r' {
			nonPrintable++
		}
	}
	return float64(nonPrintable)/float64(n) > 0.3, nil
}
