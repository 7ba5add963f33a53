package view

import (
	"github.com/cursive-editor/cursive/internal/engine/text"
)

// PositionAffinity biases position normalization when a view position
// is ambiguous, e.g. at the seam of a wrapped line.
type PositionAffinity uint8

const (
	// AffinityNone lets the view pick its default side.
	AffinityNone PositionAffinity = iota
	// AffinityLeft prefers the earlier of two candidate positions.
	AffinityLeft
	// AffinityRight prefers the later of two candidate positions.
	AffinityRight
)

// View is the rendered-representation accessor: a coordinate space
// that may fold, wrap, or hide lines of the underlying document.
type View interface {
	// NormalizePosition snaps a view position onto a visible, legal
	// location in the view.
	NormalizePosition(p text.Position, affinity PositionAffinity) text.Position
}

// Converter maps between document (model) coordinates and view
// coordinates, validating in each direction.
type Converter interface {
	// ViewPositionToModelPosition converts a view position into
	// document space.
	ViewPositionToModelPosition(p text.Position) text.Position

	// ViewRangeToModelRange converts a view range into document space.
	ViewRangeToModelRange(r text.Range) text.Range

	// ModelPositionToViewPosition converts a document position into
	// view space.
	ModelPositionToViewPosition(p text.Position) text.Position

	// ValidateViewPosition clamps a candidate view position so it maps
	// onto the given, already-validated model position.
	ValidateViewPosition(candidate text.Position, refModel text.Position) text.Position

	// ValidateViewRange clamps a candidate view range so it maps onto
	// the given, already-validated model range.
	ValidateViewRange(candidate text.Range, refModel text.Range) text.Range
}
