package diff

import (
	"strings"
	"testing"
)

func TestWriteUnified(t *testing.T) {
	var buf strings.Builder
	left := []string{"one", "two", "three"}
	right := []string{"one", "2", "three"}

	err := WriteUnified(&buf, "a/file.txt", "b/file.txt", left, right, 3)
	if err != nil {
		t.Fatalf("WriteUnified returned error: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"--- a/file.txt", "+++ b/file.txt", "-two", "+2", " one"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestWriteUnifiedNoChanges(t *testing.T) {
	var buf strings.Builder
	lines := []string{"same", "lines"}

	if err := WriteUnified(&buf, "a", "b", lines, lines, 3); err != nil {
		t.Fatalf("WriteUnified returned error: %v", err)
	}
	if strings.Contains(buf.String(), "@@") {
		t.Errorf("identical input should produce no hunks:\n%s", buf.String())
	}
}
