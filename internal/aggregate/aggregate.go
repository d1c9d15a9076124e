// Package aggregate assembles admitted file contents into the final
// text artifact.
package aggregate

import (
	"path/filepath"
	"strings"
	"sync/atomic"
)

// Prompt is the fixed introductory sentence prepended to the artifact
// when prompt emission is enabled.
const Prompt = "This is my project, just reply ack when you receive this project, I will give you further instructions soon."

// Aggregator accumulates file blocks in admission order. It has
// exactly one logical writer; Finalize is called once at the end of
// the walk and the returned artifact is immutable.
type Aggregator struct {
	buf           strings.Builder
	count         atomic.Int64
	includePrompt bool
}

// Option is a functional option for configuring the Aggregator
type Option func(*Aggregator)

// WithPrompt enables prepending the fixed prompt sentence
func WithPrompt(enabled bool) Option {
	return func(a *Aggregator) {
		a.includePrompt = enabled
	}
}

// New creates a new Aggregator
func New(opts ...Option) *Aggregator {
	a := &Aggregator{}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Append adds one file block to the artifact. The block format is
// fixed for compatibility: a leading newline, the "=== path ==="
// header, a blank line, the raw content, and a trailing newline.
func (a *Aggregator) Append(relativePath string, content []byte) {
	a.count.Add(1)
	a.buf.WriteString("\n=== ")
	a.buf.WriteString(filepath.ToSlash(relativePath))
	a.buf.WriteString(" ===\n\n")
	a.buf.Write(content)
	a.buf.WriteString("\n")
}

// Finalize returns the complete artifact, prepending the prompt
// sentence and two newlines ahead of the first block when enabled.
func (a *Aggregator) Finalize() string {
	if a.includePrompt {
		return Prompt + "\n\n" + a.buf.String()
	}
	return a.buf.String()
}

// Count returns the number of appended files
func (a *Aggregator) Count() int64 {
	return a.count.Load()
}
