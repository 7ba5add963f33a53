package cursor

import (
	"github.com/cursive-editor/cursive/internal/config"
	"github.com/cursive-editor/cursive/internal/engine/doc"
	"github.com/cursive-editor/cursive/internal/engine/view"
)

// Context bundles the collaborators a cursor needs to validate and
// convert itself: the document accessor, the view accessor, the
// coordinate convertor, and the active editing configuration.
//
// A Context is valid for a single operation only. The document or
// view model behind it can be swapped between operations, so callers
// construct a fresh Context per call rather than caching one.
type Context struct {
	Model     doc.Model
	View      view.View
	Converter view.Converter
	Config    *config.CursorConfig
}

// NewContext creates a context over the given collaborators.
func NewContext(model doc.Model, v view.View, converter view.Converter, cfg *config.CursorConfig) *Context {
	return &Context{Model: model, View: v, Converter: converter, Config: cfg}
}
