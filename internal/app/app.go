// Package app wires configuration, ignore rules, selection policy,
// walker, aggregator and output sink into one run.
package app

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fatih/color"

	"github.com/bethropolis/ctx-clip/internal/aggregate"
	"github.com/bethropolis/ctx-clip/internal/clip"
	"github.com/bethropolis/ctx-clip/internal/config"
	"github.com/bethropolis/ctx-clip/internal/ignore"
	"github.com/bethropolis/ctx-clip/internal/logger"
	"github.com/bethropolis/ctx-clip/internal/policy"
	"github.com/bethropolis/ctx-clip/internal/summary"
	"github.com/bethropolis/ctx-clip/internal/walker"
)

// App encapsulates the main application functionality
type App struct {
	cfg *config.Config
	log *logger.Logger
}

// New creates a new App instance
func New(cfg *config.Config) *App {
	// Configure color globally
	color.NoColor = !cfg.UseColors

	log := logger.New(os.Stderr, cfg.Verbose, cfg.UseColors)
	if cfg.Quiet {
		log.WithLevel(logger.LevelWarn)
	}

	return &App{
		cfg: cfg,
		log: log,
	}
}

// Run executes the scan and delivers the artifact. The returned error
// is fatal to the invocation: a bad root directory, a critical walk
// failure, or a sink failure. Local per-entry errors are logged by
// the walker and never surface here.
func (a *App) Run() error {
	startTime := time.Now()

	// Helper for info messages, suppressed by quiet flag
	infoLog := func(format string, args ...interface{}) {
		if !a.cfg.Quiet {
			a.log.Info(format, args...)
		}
	}

	// --- Directory validation ---
	absRoot, err := filepath.Abs(a.cfg.RootDir)
	if err != nil {
		return fmt.Errorf("invalid root directory path %q: %w", a.cfg.RootDir, err)
	}
	dirInfo, err := os.Stat(absRoot)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("root directory %q not found", absRoot)
		}
		return fmt.Errorf("could not access root directory %q: %w", absRoot, err)
	}
	if !dirInfo.IsDir() {
		return fmt.Errorf("specified path %q is not a directory", absRoot)
	}

	if len(a.cfg.Extensions) > 0 {
		infoLog("Including extensions: %v", a.cfg.Extensions)
	}
	if len(a.cfg.IncludeNames) > 0 {
		infoLog("Including names/patterns: %v", a.cfg.IncludeNames)
	}
	if len(a.cfg.ExcludePatterns) > 0 {
		infoLog("Using custom exclude patterns: %v", a.cfg.ExcludePatterns)
	}

	// --- Load ignore rules (root .gitignore only) ---
	rules := ignore.New(absRoot, ignore.WithLogger(a.log))

	// --- Build the selection policy ---
	pol := policy.New(
		policy.WithUserExcludes(a.cfg.ExcludePatterns),
		policy.WithExtensions(a.cfg.Extensions),
		policy.WithIncludes(a.cfg.IncludeNames),
		policy.WithIgnoreRules(rules),
		policy.WithLogger(a.log),
	)

	// --- Create the aggregator ---
	agg := aggregate.New(aggregate.WithPrompt(a.cfg.IncludePrompt))

	// --- Set up walk options ---
	walkOptions := []walker.Option{
		walker.WithLogger(a.log),
		walker.WithConcurrency(a.cfg.Concurrent),
		walker.WithMaxWorkers(a.cfg.MaxWorkers),
	}
	if a.cfg.MaxFileSizeMB > 0 {
		walkOptions = append(walkOptions, walker.WithMaxFileSize(a.cfg.MaxFileSizeMB*1024*1024))
		infoLog("Ignoring files larger than %d MB.", a.cfg.MaxFileSizeMB)
	}

	collect := func(relativePath string, content []byte, err error) error {
		if err != nil {
			a.log.Warn("Skipping file %q due to error: %v", relativePath, err)
			return nil // Error handled by logging
		}
		agg.Append(relativePath, content)
		return nil
	}

	// --- Start the directory walk ---
	infoLog("Scanning directory: %s", absRoot)
	if a.cfg.Concurrent {
		infoLog("Using concurrent reads with %d workers.", a.cfg.MaxWorkers)
	}

	skippedItems, err := walker.Walk(absRoot, pol, collect, walkOptions...)
	if err != nil {
		return fmt.Errorf("critical error during directory walk: %w", err)
	}

	// --- Deliver the artifact ---
	sink := clip.New(
		clip.WithOutputFile(a.cfg.OutputFile),
		clip.WithStdout(a.cfg.Stdout),
	)
	if err := sink.Deliver(agg.Finalize()); err != nil {
		return err
	}

	summary.DisplayResults(a.log, agg.Count(), sink.Destination(), time.Since(startTime), a.cfg.Quiet)

	if a.cfg.ShowSkipped {
		summary.DisplaySkippedItems(a.log, skippedItems, os.Stderr, a.cfg.Quiet)
	}

	return nil
}
