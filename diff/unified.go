package diff

import (
	"fmt"
	"io"

	"github.com/pmezard/go-difflib/difflib"
)

// WriteUnified writes a classic unified diff of the two sides to w. The
// output is meant for patch files and terminals, so it uses difflib's
// SequenceMatcher grouping rather than this package's own alignment.
func WriteUnified(w io.Writer, leftName, rightName string, leftLines, rightLines []string, contextLines int) error {
	unified := difflib.UnifiedDiff{
		A:        appendNewlines(leftLines),
		B:        appendNewlines(rightLines),
		FromFile: leftName,
		ToFile:   rightName,
		Context:  max(0, contextLines),
	}
	if err := difflib.WriteUnifiedDiff(w, unified); err != nil {
		return fmt.Errorf("write unified diff: %w", err)
	}
	return nil
}

func appendNewlines(lines []string) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = line + "\n"
	}
	return out
}
