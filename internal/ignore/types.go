// Package ignore loads and evaluates the root .gitignore rules
package ignore

import (
	gitignore "github.com/denormal/go-gitignore"

	"github.com/bethropolis/ctx-clip/internal/utils"
)

// Matcher evaluates paths against the rules loaded from the root
// directory's ignore file. A Matcher with no rules ignores nothing.
type Matcher struct {
	// The core gitignore object handling the loaded rules
	rules gitignore.GitIgnore

	rootDir  string
	logger   utils.Logger
	disabled bool
}
