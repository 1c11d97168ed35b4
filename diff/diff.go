// Package diff computes line-level diffs between two files and tracks
// navigation over the resulting change chunks.
package diff

// LineType classifies a single row of a diff result.
type LineType int

const (
	LineSame LineType = iota
	LineAdded
	LineRemoved
	LineModified
)

// String returns the string representation of the line type.
func (t LineType) String() string {
	switch t {
	case LineSame:
		return "same"
	case LineAdded:
		return "added"
	case LineRemoved:
		return "removed"
	case LineModified:
		return "modified"
	default:
		return "unknown"
	}
}

// Line is a single row of a diff result. LeftNumber and RightNumber are
// 1-based; 0 means the line has no counterpart on that side.
type Line struct {
	Type        LineType
	LeftText    string
	RightText   string
	LeftNumber  int
	RightNumber int
}

// Result is the complete diff between two line sequences. A Result is built
// fresh on every comparison and never patched in place.
type Result struct {
	Lines []Line
}

// LeftLines reconstructs the original left side from the result.
func (r *Result) LeftLines() []string {
	var lines []string
	for _, line := range r.Lines {
		if line.Type == LineSame || line.Type == LineRemoved || line.Type == LineModified {
			lines = append(lines, line.LeftText)
		}
	}
	return lines
}

// RightLines reconstructs the original right side from the result.
func (r *Result) RightLines() []string {
	var lines []string
	for _, line := range r.Lines {
		if line.Type == LineSame || line.Type == LineAdded || line.Type == LineModified {
			lines = append(lines, line.RightText)
		}
	}
	return lines
}

// Config controls when a removed/added pair is reported as a modification.
type Config struct {
	// SimilarityThreshold is the minimum similarity ratio (0.0-1.0) for two
	// lines to count as a modification of each other.
	SimilarityThreshold float64
	// MinLineLength is the minimum line length for fuzzy similarity; shorter
	// lines must match exactly.
	MinLineLength int
}

// DefaultConfig returns the default engine configuration.
func DefaultConfig() Config {
	return Config{
		SimilarityThreshold: 0.7,
		MinLineLength:       10,
	}
}

// Engine computes diffs between two sequences of lines.
type Engine struct {
	config Config
}

// NewEngine creates an engine with the given configuration.
func NewEngine(config Config) *Engine {
	return &Engine{config: config}
}

// NewEngineDefault creates an engine with the default configuration.
func NewEngineDefault() *Engine {
	return NewEngine(DefaultConfig())
}

// Config returns the engine's configuration.
func (e *Engine) Config() Config {
	return e.config
}

// Compare aligns the two sides and merges removed/added pairs into
// modifications. The pipeline is pure and deterministic; it is safe to call
// concurrently as long as the inputs are not mutated underneath it.
func (e *Engine) Compare(leftLines, rightLines []string) *Result {
	aligned := align(leftLines, rightLines)
	merged := mergeModifications(aligned, e.config)
	return &Result{Lines: merged}
}
