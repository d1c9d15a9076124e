package ignore

import (
	"path/filepath"
)

// Ignored reports whether the loaded ignore rules exclude relativePath.
// Negations are resolved by the rule engine with last-match-wins
// semantics, so a later '!' rule can re-admit an earlier exclusion.
func (m *Matcher) Ignored(relativePath string, isDir bool) bool {
	// Return early if matcher is nil, disabled, or has no rules
	if m == nil || m.disabled || m.rules == nil {
		return false
	}

	// Never ignore the root itself
	if relativePath == "" || relativePath == "." {
		return false
	}

	unixPath := filepath.ToSlash(relativePath)
	m.logger.Debug("ignore.Ignored: Checking path %q (isDir: %v)", unixPath, isDir)

	ignored := false
	// The pattern engine has panicked on odd inputs before; treat a
	// panic as "no match" rather than taking the whole walk down.
	func() {
		defer func() {
			if r := recover(); r != nil {
				m.logger.Error("PANIC recovered in gitignore engine for path %q: %v", relativePath, r)
				ignored = false
			}
		}()
		if match := m.rules.Relative(unixPath, isDir); match != nil {
			ignored = match.Ignore()
		}
	}()

	if ignored {
		m.logger.Debug("ignore.Ignored: Path %q excluded by ignore rules", relativePath)
	}
	return ignored
}
