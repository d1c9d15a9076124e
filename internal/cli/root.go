// Package cli defines the command-line surface of ctx-clip.
package cli

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/bethropolis/ctx-clip/internal/app"
	"github.com/bethropolis/ctx-clip/internal/config"
)

// NewRootCmd builds the root command. All flag validation runs in
// PreRunE, before any filesystem access.
func NewRootCmd() *cobra.Command {
	cfg := &config.Config{}

	cmd := &cobra.Command{
		Use:   "ctx-clip",
		Short: "Copy a project's source files to the clipboard for LLM chats",
		Long: `ctx-clip walks a directory tree, selects files by extension or explicit
include patterns after applying built-in, user-supplied and .gitignore
exclusions, and copies the labeled combined contents to the system
clipboard, ready for pasting into an LLM conversation.`,
		SilenceUsage: true,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			cfg.SetupColors()
			return cfg.Validate()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.New(cfg).Run()
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&cfg.RootDir, "dir", "d", "", "root directory to scan (required)")
	flags.StringArrayVarP(&cfg.Extensions, "ext", "e", nil, `file extension to include, e.g. ".go" (repeatable)`)
	flags.StringArrayVarP(&cfg.IncludeNames, "include", "i", nil, "filename or glob pattern to include (repeatable)")
	flags.StringArrayVarP(&cfg.ExcludePatterns, "exclude", "x", nil, "glob pattern to exclude, appended after built-ins (repeatable)")
	flags.BoolVar(&cfg.IncludePrompt, "include-prompt", false, "prepend the introductory prompt sentence")
	flags.StringVarP(&cfg.OutputFile, "output", "o", "", "write the artifact to a file instead of the clipboard")
	flags.BoolVar(&cfg.Stdout, "stdout", false, "print the artifact to stdout instead of the clipboard")
	flags.BoolVarP(&cfg.Verbose, "verbose", "v", false, "enable debug logging")
	flags.BoolVarP(&cfg.Quiet, "quiet", "q", false, "suppress informational messages")
	flags.BoolVar(&cfg.NoColor, "no-color", false, "disable colored log output")
	flags.BoolVar(&cfg.ShowSkipped, "show-skipped", false, "list skipped files/directories and reasons at the end")
	flags.BoolVar(&cfg.Concurrent, "concurrent", false, "read files concurrently")
	flags.IntVar(&cfg.MaxWorkers, "workers", runtime.NumCPU(), "max number of concurrent workers")
	flags.Int64Var(&cfg.MaxFileSizeMB, "max-size", 0, "max file size to include in MB (0 = no limit)")

	cmd.AddCommand(newVersionCmd())

	return cmd
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
