// Package clip delivers the finalized artifact to its destination:
// the system clipboard by default, or a file or stdout when requested.
package clip

import (
	"fmt"
	"io"
	"os"

	"github.com/atotto/clipboard"
)

// Sink writes the final artifact exactly once at the end of a run.
// Delivery failure is fatal to the invocation: producing the artifact
// is the tool's entire purpose.
type Sink struct {
	outputFile string
	stdout     bool
	out        io.Writer
}

// Option is a functional option for configuring the Sink
type Option func(*Sink)

// WithOutputFile redirects delivery to a file instead of the clipboard
func WithOutputFile(path string) Option {
	return func(s *Sink) {
		s.outputFile = path
	}
}

// WithStdout redirects delivery to stdout instead of the clipboard
func WithStdout(enabled bool) Option {
	return func(s *Sink) {
		s.stdout = enabled
	}
}

// WithWriter overrides the stdout writer
func WithWriter(w io.Writer) Option {
	return func(s *Sink) {
		if w != nil {
			s.out = w
		}
	}
}

// New creates a new Sink
func New(opts ...Option) *Sink {
	s := &Sink{out: os.Stdout}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Deliver writes the artifact to the configured destination.
func (s *Sink) Deliver(artifact string) error {
	if s.outputFile != "" {
		if err := os.WriteFile(s.outputFile, []byte(artifact), 0o644); err != nil {
			return fmt.Errorf("clip: failed to write output file %q: %w", s.outputFile, err)
		}
		return nil
	}
	if s.stdout {
		if _, err := io.WriteString(s.out, artifact); err != nil {
			return fmt.Errorf("clip: failed to write to stdout: %w", err)
		}
		return nil
	}
	if err := clipboard.WriteAll(artifact); err != nil {
		return fmt.Errorf("clip: failed to copy to clipboard: %w", err)
	}
	return nil
}

// Destination describes where Deliver will write, for user messages.
func (s *Sink) Destination() string {
	switch {
	case s.outputFile != "":
		return s.outputFile
	case s.stdout:
		return "stdout"
	default:
		return "clipboard"
	}
}
