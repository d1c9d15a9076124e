// Package ignore loads and evaluates the root .gitignore rules
//
// Only the ignore file at the root of the scanned directory is read;
// ignore files in nested directories are not consulted. The usual
// conventions apply: blank lines and '#' comments are skipped, '!'
// negates a rule, and a trailing '/' anchors a rule to directories.
package ignore

import (
	"os"
	"path/filepath"

	gitignore "github.com/denormal/go-gitignore"

	"github.com/bethropolis/ctx-clip/internal/utils"
)

// FileName is the ignore file loaded from the root directory.
const FileName = ".gitignore"

// New creates a Matcher from the ignore file at the root directory.
// A missing ignore file yields an empty rule set. Any other read
// failure is reported as a warning and also yields an empty rule set;
// loading is never fatal to the run.
func New(rootDir string, opts ...Option) *Matcher {
	matcher := &Matcher{
		rootDir: rootDir,
		logger:  &utils.NoopLogger{},
	}

	for _, opt := range opts {
		opt(matcher)
	}

	if matcher.disabled {
		matcher.logger.Debug("ignore.New: Matcher is disabled, skipping ignore file load")
		return matcher
	}

	path := filepath.Join(rootDir, FileName)
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			matcher.logger.Debug("ignore.New: No %s found in %q. Continuing without ignore rules.", FileName, rootDir)
		} else {
			matcher.logger.Warn("ignore.New: Could not access %q: %v. Continuing without ignore rules.", path, err)
		}
		return matcher
	}

	rules, err := gitignore.NewFromFile(path)
	if err != nil {
		matcher.logger.Warn("ignore.New: Failed to parse %q: %v. Continuing without ignore rules.", path, err)
		return matcher
	}

	matcher.rules = rules
	matcher.logger.Debug("ignore.New: Loaded ignore rules from %q", path)
	return matcher
}
