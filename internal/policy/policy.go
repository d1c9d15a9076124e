// Package policy combines every exclusion and admission rule source
// into one decision per filesystem entry.
//
// Exclusion is the OR of three independent predicates, evaluated in
// order: built-in patterns, user-supplied glob patterns, and the root
// ignore-file rules. The ignore-file rules resolve their own '!'
// negations internally (last match wins), but a negation there can
// never re-admit a path excluded by a built-in or user glob. That
// asymmetry can surprise users; it is deliberate and documented, not
// a bug.
package policy

import (
	"path/filepath"
	"strings"

	"github.com/bethropolis/ctx-clip/internal/ignore"
	"github.com/bethropolis/ctx-clip/internal/pattern"
	"github.com/bethropolis/ctx-clip/internal/utils"
)

// Policy answers whether a filesystem entry is excluded from the walk
// and, for files, whether it is admitted into the output artifact.
type Policy struct {
	excludeGlobs []string // built-ins first, then user patterns
	extensions   []string // lowercased, each starting with "."
	includes     []string
	ignoreRules  *ignore.Matcher
	logger       utils.Logger
}

// New creates a Policy. The built-in exclusion patterns are always
// present; options append user rules and admission filters.
func New(opts ...Option) *Policy {
	p := &Policy{
		excludeGlobs: append([]string(nil), BuiltinExcludes...),
		logger:       &utils.NoopLogger{},
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// ShouldExclude reports whether the entry at relativePath is excluded.
// An excluded directory is pruned: the walker never descends into it,
// so its contents are never evaluated individually.
func (p *Policy) ShouldExclude(relativePath string, isDir bool) bool {
	// Never exclude the root itself
	if relativePath == "" || relativePath == "." {
		return false
	}

	for _, glob := range p.excludeGlobs {
		if pattern.MatchesPathOrName(relativePath, glob) {
			p.logger.Debug("policy.ShouldExclude: Excluded %q (pattern %q)", relativePath, glob)
			return true
		}
	}

	if p.ignoreRules.Ignored(relativePath, isDir) {
		p.logger.Debug("policy.ShouldExclude: Excluded %q (ignore-file rule)", relativePath)
		return true
	}

	return false
}

// ShouldAdmit reports whether a file that survived exclusion belongs
// in the output: its name ends with a configured extension, or its
// name or full relative path equals or glob-matches an include
// pattern. With no extensions and no includes configured nothing is
// admitted, a state configuration validation already rejects.
func (p *Policy) ShouldAdmit(relativePath string) bool {
	name := filepath.Base(relativePath)
	lowerName := strings.ToLower(name)

	for _, ext := range p.extensions {
		if strings.HasSuffix(lowerName, ext) {
			p.logger.Debug("policy.ShouldAdmit: Admitted %q (extension %q)", relativePath, ext)
			return true
		}
	}

	unixPath := filepath.ToSlash(relativePath)
	for _, inc := range p.includes {
		if inc == name || inc == unixPath {
			p.logger.Debug("policy.ShouldAdmit: Admitted %q (include %q)", relativePath, inc)
			return true
		}
		if pattern.MatchesPathOrName(relativePath, inc) {
			p.logger.Debug("policy.ShouldAdmit: Admitted %q (include pattern %q)", relativePath, inc)
			return true
		}
	}

	return false
}
