package main

import (
	"io"
	"os"
	"strings"
	"testing"
)

// captureStdout redirects os.Stdout for the duration of fn and returns what
// was written.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()

	old := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("create pipe: %v", err)
	}
	os.Stdout = w
	defer func() { os.Stdout = old }()

	fn()

	w.Close()
	data, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("read captured output: %v", err)
	}
	return string(data)
}

func TestResolvePaths(t *testing.T) {
	t.Run("two files", func(t *testing.T) {
		left, right, err := resolvePaths([]string{"a.txt", "b.txt"}, false)
		if err != nil {
			t.Fatalf("resolvePaths returned error: %v", err)
		}
		if left != "a.txt" || right != "b.txt" {
			t.Errorf("paths = (%q, %q), want (a.txt, b.txt)", left, right)
		}
	})

	t.Run("git mode takes one file", func(t *testing.T) {
		left, right, err := resolvePaths([]string{"a.txt"}, true)
		if err != nil {
			t.Fatalf("resolvePaths returned error: %v", err)
		}
		if left != "a.txt" || right != "a.txt" {
			t.Errorf("paths = (%q, %q), want the same file twice", left, right)
		}
	})

	t.Run("wrong arity", func(t *testing.T) {
		cases := []struct {
			args    []string
			gitMode bool
		}{
			{nil, false},
			{[]string{"a.txt"}, false},
			{[]string{"a.txt", "b.txt", "c.txt"}, false},
			{nil, true},
			{[]string{"a.txt", "b.txt"}, true},
		}
		for _, tc := range cases {
			if _, _, err := resolvePaths(tc.args, tc.gitMode); err == nil {
				t.Errorf("resolvePaths(%v, git=%v) succeeded, want error", tc.args, tc.gitMode)
			}
		}
	})
}

func TestWatchPaths(t *testing.T) {
	if got := watchPaths("a.txt", "b.txt", false); len(got) != 2 {
		t.Errorf("watchPaths = %v, want both files", got)
	}
	if got := watchPaths("a.txt", "a.txt", true); len(got) != 1 || got[0] != "a.txt" {
		t.Errorf("git mode watchPaths = %v, want just the worktree file", got)
	}
	if got := watchPaths("a.txt", "a.txt", false); len(got) != 1 {
		t.Errorf("same-file watchPaths = %v, want one entry", got)
	}
}

func TestPrintVersion(t *testing.T) {
	out := captureStdout(t, printVersion)
	if !strings.Contains(out, "pairdiff") || !strings.Contains(out, appVersion) {
		t.Errorf("version output = %q", out)
	}
}

func TestRunVersionFlag(t *testing.T) {
	out := captureStdout(t, func() {
		if err := run([]string{"--version"}); err != nil {
			t.Errorf("run --version returned error: %v", err)
		}
	})
	if !strings.Contains(out, appVersion) {
		t.Errorf("output = %q, want version string", out)
	}
}

func TestRunArgumentErrors(t *testing.T) {
	if err := run([]string{"--no-config"}); err == nil {
		t.Error("run without files should fail")
	}
	if err := run([]string{"--no-config", "--git", "a.txt", "b.txt"}); err == nil {
		t.Error("git mode with two files should fail")
	}
	if err := run([]string{"--definitely-not-a-flag"}); err == nil {
		t.Error("unknown flag should fail")
	}
}

func TestRunUnifiedOutput(t *testing.T) {
	left := writeTempFile(t, "left.txt", "shared\nold line text\n")
	right := writeTempFile(t, "right.txt", "shared\nnew line text\n")

	out := captureStdout(t, func() {
		if err := run([]string{"--no-config", "-u", left, right}); err != nil {
			t.Errorf("run -u returned error: %v", err)
		}
	})

	for _, want := range []string{"-old line text", "+new line text"} {
		if !strings.Contains(out, want) {
			t.Errorf("unified output missing %q:\n%s", want, out)
		}
	}
}
