// Package pattern evaluates glob patterns against relative paths.
//
// Matching uses shell-style extended globbing: '*' matches within a
// path segment, '**' matches across segments, '?' matches a single
// character, and '[...]' matches a character class. Dotfiles are
// matched literally; a leading '.' is not treated specially.
package pattern

import (
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
)

// Matches reports whether relativePath matches the glob pattern.
// Paths are normalized to forward slashes before matching. A malformed
// pattern never matches; the function is pure and never fails.
func Matches(relativePath, pattern string) bool {
	ok, err := doublestar.Match(pattern, filepath.ToSlash(relativePath))
	if err != nil {
		return false
	}
	return ok
}

// MatchesPathOrName reports whether the pattern matches either the full
// relative path or its final path element. This lets a bare pattern
// like "node_modules" or "*.min.js" apply at any directory depth.
func MatchesPathOrName(relativePath, pattern string) bool {
	if Matches(relativePath, pattern) {
		return true
	}
	return Matches(filepath.Base(relativePath), pattern)
}

// MatchesAny reports whether any pattern in the list matches, testing
// both the full relative path and its final path element.
func MatchesAny(relativePath string, patterns []string) bool {
	for _, p := range patterns {
		if MatchesPathOrName(relativePath, p) {
			return true
		}
	}
	return false
}
