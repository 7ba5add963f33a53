package engine

import (
	"github.com/rs/zerolog"

	"github.com/cursive-editor/cursive/internal/config"
)

// Option configures an Engine at construction time.
type Option func(*Engine)

// WithContent seeds the document with initial text.
func WithContent(content string) Option {
	return func(e *Engine) {
		e.initContent = content
	}
}

// WithConfig sets the editing configuration.
func WithConfig(cfg config.CursorConfig) Option {
	return func(e *Engine) {
		e.cfg = cfg
	}
}

// WithLogger sets the session logger. Without it the engine logs
// nothing.
func WithLogger(log zerolog.Logger) Option {
	return func(e *Engine) {
		e.log = log
	}
}
