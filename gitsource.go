package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5"
)

// headLines reads a file's content at HEAD of the repository containing it
// and returns it as lines. Used by --git mode to compare a worktree file
// against its committed version.
func headLines(path string) ([]string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve path: %w", err)
	}

	repo, err := git.PlainOpenWithOptions(filepath.Dir(abs), &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("open repository: %w", err)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("get worktree: %w", err)
	}
	rel, err := filepath.Rel(worktree.Filesystem.Root(), abs)
	if err != nil {
		return nil, fmt.Errorf("locate file in repository: %w", err)
	}
	rel = filepath.ToSlash(rel)

	head, err := repo.Head()
	if err != nil {
		return nil, fmt.Errorf("get HEAD: %w", err)
	}
	commit, err := repo.CommitObject(head.Hash())
	if err != nil {
		return nil, fmt.Errorf("get HEAD commit: %w", err)
	}

	file, err := commit.File(rel)
	if err != nil {
		return nil, fmt.Errorf("file %s not in HEAD: %w", rel, err)
	}
	content, err := file.Contents()
	if err != nil {
		return nil, fmt.Errorf("read %s from HEAD: %w", rel, err)
	}

	return splitLines(content), nil
}

// splitLines splits file content into lines with terminators stripped. A
// trailing newline does not produce an extra empty line.
func splitLines(content string) []string {
	if content == "" {
		return []string{}
	}
	content = strings.TrimSuffix(content, "\n")
	return strings.Split(strings.ReplaceAll(content, "\r\n", "\n"), "\n")
}
