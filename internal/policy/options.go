package policy

import (
	"strings"

	"github.com/bethropolis/ctx-clip/internal/ignore"
	"github.com/bethropolis/ctx-clip/internal/utils"
)

// Option functions for configuration
type Option func(*Policy)

// WithUserExcludes appends user glob patterns after the built-in list.
func WithUserExcludes(patterns []string) Option {
	return func(p *Policy) {
		p.excludeGlobs = append(p.excludeGlobs, patterns...)
	}
}

// WithExtensions sets the admission suffix filters. Each extension is
// expected to start with "."; comparison is case-insensitive.
func WithExtensions(extensions []string) Option {
	return func(p *Policy) {
		p.extensions = p.extensions[:0]
		for _, ext := range extensions {
			p.extensions = append(p.extensions, strings.ToLower(ext))
		}
	}
}

// WithIncludes sets explicit filename/path admission patterns.
func WithIncludes(includes []string) Option {
	return func(p *Policy) {
		p.includes = includes
	}
}

// WithIgnoreRules sets the root ignore-file matcher.
func WithIgnoreRules(rules *ignore.Matcher) Option {
	return func(p *Policy) {
		p.ignoreRules = rules
	}
}

func WithLogger(logger utils.Logger) Option {
	return func(p *Policy) {
		if logger != nil {
			p.logger = logger
		}
	}
}
