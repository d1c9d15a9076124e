package ignore

import "github.com/bethropolis/ctx-clip/internal/utils"

// Option functions for configuration
type Option func(*Matcher)

func WithLogger(logger utils.Logger) Option {
	return func(m *Matcher) {
		if logger != nil {
			m.logger = logger
		}
	}
}

func WithDisabled(disabled bool) Option {
	return func(m *Matcher) {
		m.disabled = disabled
	}
}
