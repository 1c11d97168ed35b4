package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/adrg/xdg"
	tea "github.com/charmbracelet/bubbletea"

	"pairdiff/diff"
)

const appVersion = "1.0.0"

const (
	flagNameThreshold     = "threshold"
	flagNameMinLineLength = "min-line-length"
	flagNameContext       = "context"
	flagNameTheme         = "theme"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	flags := flag.NewFlagSet("pairdiff", flag.ContinueOnError)
	flags.Usage = func() {
		fmt.Fprintf(flags.Output(), "usage: pairdiff [flags] LEFT RIGHT\n       pairdiff [flags] --git FILE\n\n")
		flags.PrintDefaults()
	}

	var (
		showVersion   bool
		gitMode       bool
		unifiedOnly   bool
		threshold     float64
		minLineLength int
		contextLines  int
		theme         string
		configPath    string
		noConfig      bool
		debug         bool
	)
	flags.BoolVar(&showVersion, "version", false, "print version and exit")
	flags.BoolVar(&gitMode, "git", false, "compare FILE against its committed content at HEAD")
	flags.BoolVar(&unifiedOnly, "u", false, "print a unified diff to stdout and exit")
	flags.Float64Var(&threshold, flagNameThreshold, diff.DefaultConfig().SimilarityThreshold, "similarity threshold for modification detection (0.0-1.0)")
	flags.IntVar(&minLineLength, flagNameMinLineLength, diff.DefaultConfig().MinLineLength, "minimum line length for fuzzy similarity")
	flags.IntVar(&contextLines, flagNameContext, 3, "context lines in unified diff output")
	flags.StringVar(&theme, flagNameTheme, "monokai", "chroma syntax highlighting style")
	flags.StringVar(&configPath, "config", "", "path to YAML config file")
	flags.BoolVar(&noConfig, "no-config", false, "disable config file loading")
	flags.BoolVar(&debug, "debug", false, "enable debug logging")
	if err := flags.Parse(args); err != nil {
		return err
	}

	if showVersion {
		printVersion()
		return nil
	}

	explicit := map[string]bool{}
	flags.Visit(func(f *flag.Flag) {
		explicit[f.Name] = true
	})

	cfg, err := loadStartupConfig(xdg.ConfigHome, configPath, noConfig)
	if err != nil {
		return err
	}
	applyStartupConfig(cfg, explicit, &threshold, &minLineLength, &contextLines, &theme)

	leftPath, rightPath, err := resolvePaths(flags.Args(), gitMode)
	if err != nil {
		flags.Usage()
		return err
	}

	engine := diff.NewEngine(diff.Config{
		SimilarityThreshold: threshold,
		MinLineLength:       minLineLength,
	})
	store := NewFileStore()

	level := INFO
	if debug {
		level = DEBUG
	}
	logger, err := NewLogger(level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
	}
	defer func() {
		if closeErr := logger.Close(); closeErr != nil {
			fmt.Fprintf(os.Stderr, "warning: close logger: %v\n", closeErr)
		}
	}()

	session := NewSession(store, engine, logger, leftPath, rightPath, gitMode)

	if unifiedOnly {
		return session.WriteUnified(os.Stdout, contextLines)
	}

	logger.Info("pairdiff starting", map[string]any{
		"version": appVersion,
		"left":    leftPath,
		"right":   rightPath,
		"git":     gitMode,
	})

	if err := session.Compare(); err != nil {
		return fmt.Errorf("compare files: %w", err)
	}

	watcher, err := NewWatcher(logger, watchPaths(leftPath, rightPath, gitMode)...)
	if err != nil {
		logger.Error("create watcher", err, nil)
		watcher = nil
	} else {
		defer watcher.Close()
	}

	program := tea.NewProgram(
		NewModel(session, watcher, logger, theme, contextLines),
		tea.WithAltScreen(),
	)
	if _, err := program.Run(); err != nil {
		logger.Error("program error", err, nil)
		return fmt.Errorf("run program: %w", err)
	}

	reportLoggerStats(logger)
	return nil
}

// resolvePaths maps positional arguments to the two compared paths. In git
// mode a single FILE is compared against its HEAD content, so both sides
// resolve to the same path.
func resolvePaths(args []string, gitMode bool) (left, right string, err error) {
	if gitMode {
		if len(args) != 1 {
			return "", "", fmt.Errorf("--git mode takes exactly one file, got %d", len(args))
		}
		return args[0], args[0], nil
	}
	if len(args) != 2 {
		return "", "", fmt.Errorf("expected two files to compare, got %d", len(args))
	}
	return args[0], args[1], nil
}

func watchPaths(leftPath, rightPath string, gitMode bool) []string {
	if gitMode || leftPath == rightPath {
		return []string{rightPath}
	}
	return []string{leftPath, rightPath}
}

func reportLoggerStats(logger *Logger) {
	if !logger.HasErrors() {
		return
	}
	stats := logger.GetStats()
	fmt.Fprintf(os.Stderr, "\ncompleted with %d error(s)\n", stats.TotalErrors)
	if stats.TotalWarnings > 0 {
		fmt.Fprintf(os.Stderr, "warnings: %d\n", stats.TotalWarnings)
	}
}

func printVersion() {
	fmt.Printf("pairdiff %s\n", appVersion)
}
