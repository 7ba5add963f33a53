package view

import (
	"github.com/cursive-editor/cursive/internal/engine/doc"
	"github.com/cursive-editor/cursive/internal/engine/text"
)

// IdentityView is the view layer used when no folding or wrapping is
// installed: view coordinates equal document coordinates. It
// implements both View and Converter by delegating validation to the
// underlying document.
type IdentityView struct {
	model doc.Model
}

// NewIdentityView creates an identity view over model.
func NewIdentityView(model doc.Model) *IdentityView {
	return &IdentityView{model: model}
}

// NormalizePosition clamps p to legal document coordinates. Affinity
// has no effect in an unwrapped view.
func (v *IdentityView) NormalizePosition(p text.Position, _ PositionAffinity) text.Position {
	return v.model.ValidatePosition(p)
}

// ViewPositionToModelPosition converts a view position into document
// space, clamping it to document bounds.
func (v *IdentityView) ViewPositionToModelPosition(p text.Position) text.Position {
	return v.model.ValidatePosition(p)
}

// ViewRangeToModelRange converts a view range into document space.
func (v *IdentityView) ViewRangeToModelRange(r text.Range) text.Range {
	return v.model.ValidateRange(r)
}

// ModelPositionToViewPosition converts a document position into view
// space.
func (v *IdentityView) ModelPositionToViewPosition(p text.Position) text.Position {
	return v.model.ValidatePosition(p)
}

// ValidateViewPosition returns the reference model position: in an
// identity view every model position is its own view position.
func (v *IdentityView) ValidateViewPosition(_ text.Position, refModel text.Position) text.Position {
	return refModel
}

// ValidateViewRange returns the reference model range.
func (v *IdentityView) ValidateViewRange(_ text.Range, refModel text.Range) text.Range {
	return refModel
}
