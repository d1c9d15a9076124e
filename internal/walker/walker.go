// Package walker handles directory traversal and file reading
//
// The walk runs in two phases. Phase one selects: a depth-first
// pre-order traversal in filesystem enumeration order, consulting the
// selection policy to prune excluded directories and collect admitted
// regular files. Phase two reads the admitted files, sequentially or
// on a worker pool, and delivers every file to the callback in
// admission order regardless of read completion order.
package walker

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/bethropolis/ctx-clip/internal/policy"
)

// entry is one admitted file, pending its content read.
type entry struct {
	path         string // absolute
	relativePath string // relative to the walk root
}

// Walk traverses the directory tree starting at rootDir and invokes
// walkFn for every admitted file, in admission order. It returns the
// list of skipped items and any critical error. Local failures
// (unlistable subdirectories, unreadable files) are logged and tracked
// but never abort the walk; only an unusable root is fatal.
func Walk(rootDir string, pol *policy.Policy, walkFn WalkFunc, opts ...Option) ([]SkippedItem, error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	absRoot, err := filepath.Abs(rootDir)
	if err != nil {
		return nil, fmt.Errorf("walker: failed to get absolute path for %q: %w", rootDir, err)
	}

	tracker := NewSkippedTracker(64)
	options.Logger.Debug("walker.Walk started. Root: %s, Concurrent: %v, Workers: %d",
		absRoot, options.Concurrent, options.MaxWorkers)

	// Phase one: selection.
	var admitted []entry
	walkErr := filepath.WalkDir(absRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// An unreadable root leaves nothing to do.
			if path == absRoot {
				return fmt.Errorf("walker: cannot read root directory %q: %w", absRoot, err)
			}
			// A local failure costs only its own subtree.
			rel := relativeOrSelf(absRoot, path)
			isDir := d != nil && d.IsDir()
			reason := ReasonSkippedWalkError
			if os.IsPermission(err) {
				reason = ReasonSkippedPermError
			}
			options.Logger.Warn("walker: Cannot access %q: %v. Skipping.", rel, err)
			tracker.Track(rel, reason, isDir)
			if isDir {
				return fs.SkipDir
			}
			return nil
		}

		// Skip the root entry itself
		if path == absRoot {
			return nil
		}

		relativePath, relErr := filepath.Rel(absRoot, path)
		if relErr != nil {
			options.Logger.Error("walker: Path calculation failed for %q: %v", path, relErr)
			tracker.Track(path, ReasonSkippedPathError, d.IsDir())
			return nil
		}

		isDir := d.IsDir()
		options.Logger.Debug("walker: Evaluating entry %q (isDir: %v)", relativePath, isDir)

		// Symlinks, devices and other non-regular kinds are never admitted
		if !isDir && !d.Type().IsRegular() {
			options.Logger.Debug("walker: Skipping %q (not a regular file)", relativePath)
			tracker.Track(relativePath, ReasonSkippedNotRegular, false)
			return nil
		}

		if pol.ShouldExclude(relativePath, isDir) {
			tracker.Track(relativePath, ReasonExcluded, isDir)
			if isDir {
				// Prune: never descend into an excluded directory
				options.Logger.Debug("walker: Pruning directory %q", relativePath)
				return fs.SkipDir
			}
			return nil
		}

		if isDir {
			options.Logger.Debug("walker: Descending into directory %q", relativePath)
			return nil
		}

		if !pol.ShouldAdmit(relativePath) {
			tracker.Track(relativePath, ReasonNotAdmitted, false)
			return nil
		}

		options.Logger.Debug("walker: Admitted file %q", relativePath)
		admitted = append(admitted, entry{path: path, relativePath: relativePath})
		return nil
	})
	if walkErr != nil {
		return tracker.Items(), walkErr
	}

	// Phase two: reads, delivered in admission order.
	if options.Concurrent && len(admitted) > 1 {
		readConcurrent(admitted, options, walkFn, tracker)
	} else {
		for _, e := range admitted {
			content, readErr := readFile(e, options, tracker)
			deliver(walkFn, e, content, readErr, options)
		}
	}

	return tracker.Items(), nil
}

// relativeOrSelf falls back to the raw path when the relative path
// cannot be computed, so error reports always carry something useful.
func relativeOrSelf(absRoot, path string) string {
	if rel, err := filepath.Rel(absRoot, path); err == nil {
		return rel
	}
	return path
}
