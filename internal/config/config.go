// Package config holds the immutable run configuration built from
// command-line flags.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// Config holds all application configuration settings. It is built once
// by the CLI layer and never mutated after validation.
type Config struct {
	// Directory settings
	RootDir string

	// Selection settings
	Extensions      []string // suffix filters, each starting with "."
	IncludeNames    []string // literal filenames or glob patterns
	ExcludePatterns []string // user globs, appended after built-ins

	// Output settings
	IncludePrompt bool
	OutputFile    string
	Stdout        bool

	// Logging settings
	Verbose     bool
	Quiet       bool
	NoColor     bool
	UseColors   bool
	ShowSkipped bool

	// Processing settings
	Concurrent    bool
	MaxWorkers    int
	MaxFileSizeMB int64
}

// SetupColors determines whether log output should use colors.
func (c *Config) SetupColors() {
	c.UseColors = !c.NoColor && isatty.IsTerminal(os.Stderr.Fd())
}

// Validate checks the configuration before any filesystem access.
// A validation error is fatal to the invocation.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.RootDir) == "" {
		return fmt.Errorf("config: a root directory is required (--dir)")
	}
	for _, ext := range c.Extensions {
		if !strings.HasPrefix(ext, ".") {
			return fmt.Errorf("config: extension %q must start with %q", ext, ".")
		}
		if ext == "." {
			return fmt.Errorf("config: extension %q has no suffix after the dot", ext)
		}
	}
	if len(c.Extensions) == 0 && len(c.IncludeNames) == 0 {
		return fmt.Errorf("config: at least one of --ext or --include must be provided")
	}
	if c.MaxWorkers < 1 {
		return fmt.Errorf("config: --workers must be at least 1")
	}
	return nil
}
