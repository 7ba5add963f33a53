package cursor

import (
	"fmt"

	"github.com/cursive-editor/cursive/internal/engine/doc"
	"github.com/cursive-editor/cursive/internal/engine/text"
	"github.com/cursive-editor/cursive/internal/engine/view"
)

// Cursor is one insertion point with its selection, kept consistent
// in two coordinate spaces: modelState addresses the raw document,
// viewState the rendered view. The two always describe the same
// logical selection; whichever side a mutation supplies, the other is
// re-derived through the context's convertor.
//
// A cursor can register its selection as a tracked range in the
// document, which keeps the selection glued to the surrounding text
// while edits land elsewhere in the buffer.
type Cursor struct {
	modelState *SingleCursorState
	viewState  *SingleCursorState

	selTrackedRange doc.TrackedRangeID
	trackSelection  bool
}

// NewCursor creates a cursor at the document start.
func NewCursor(ctx *Context) *Cursor {
	c := &Cursor{}
	start := text.NewPosition(1, 1)
	initial := NewSingleCursorState(text.CollapsedRange(start), SelectionStartSimple, 0, start, 0)
	c.setState(ctx, initial, initial)
	return c
}

// ModelState returns the document-space state.
func (c *Cursor) ModelState() *SingleCursorState {
	return c.modelState
}

// ViewState returns the view-space state.
func (c *Cursor) ViewState() *SingleCursorState {
	return c.viewState
}

// Dispose releases the cursor's tracked range.
func (c *Cursor) Dispose(ctx *Context) {
	c.removeTrackedRange(ctx)
}

// StartTrackingSelection registers the current selection as a tracked
// range so it survives concurrent document edits.
func (c *Cursor) StartTrackingSelection(ctx *Context) {
	c.trackSelection = true
	c.updateTrackedRange(ctx)
}

// StopTrackingSelection releases the tracked range.
func (c *Cursor) StopTrackingSelection(ctx *Context) {
	c.trackSelection = false
	c.removeTrackedRange(ctx)
}

func (c *Cursor) updateTrackedRange(ctx *Context) {
	if !c.trackSelection {
		c.removeTrackedRange(ctx)
		return
	}
	r := c.modelState.Selection.Range()
	c.selTrackedRange = ctx.Model.SetTrackedRange(c.selTrackedRange, &r, doc.AlwaysGrowsWhenTypingAtEdges)
}

func (c *Cursor) removeTrackedRange(ctx *Context) {
	c.selTrackedRange = ctx.Model.SetTrackedRange(c.selTrackedRange, nil, doc.AlwaysGrowsWhenTypingAtEdges)
}

// ReadSelectionFromMarkers recovers the selection from the tracked
// range after an external document edit. A caret whose tracked range
// grew (an edit landed exactly on it) collapses to the range's end:
// caret gestures must not surface an unintended selection.
//
// Calling this for a cursor that never started tracking is a defect.
func (c *Cursor) ReadSelectionFromMarkers(ctx *Context) text.Selection {
	r := ctx.Model.TrackedRange(c.selTrackedRange)
	if r == nil {
		panic(fmt.Sprintf("cursor: no tracked range registered (id %q)", c.selTrackedRange))
	}
	if c.modelState.Selection.IsEmpty() && !r.IsEmpty() {
		return text.CaretSelection(r.End)
	}
	return text.SelectionFromRange(*r, c.modelState.Selection.Direction())
}

// EnsureValidState re-validates the cursor against the (possibly
// changed) document and view without moving it logically.
func (c *Cursor) EnsureValidState(ctx *Context) {
	c.setState(ctx, c.modelState, c.viewState)
}

// SetState applies a partial state: either side may be nil and is
// then derived from the other. Both nil is a defect.
func (c *Cursor) SetState(ctx *Context, modelState, viewState *SingleCursorState) {
	c.setState(ctx, modelState, viewState)
}

func (c *Cursor) setState(ctx *Context, modelState, viewState *SingleCursorState) {
	if modelState == nil && viewState == nil {
		panic("cursor: setState requires a model state or a view state")
	}

	if viewState != nil {
		viewState = validateViewState(ctx.View, viewState)
	}

	if modelState == nil {
		selectionStart := ctx.Model.ValidateRange(
			ctx.Converter.ViewRangeToModelRange(viewState.SelectionStart))
		position := ctx.Model.ValidatePosition(
			ctx.Converter.ViewPositionToModelPosition(viewState.Position))
		modelState = NewSingleCursorState(
			selectionStart, viewState.SelectionStartKind, viewState.SelectionStartLeftoverColumns,
			position, viewState.LeftoverColumns)
	} else {
		selectionStart := ctx.Model.ValidateRange(modelState.SelectionStart)
		selectionStartLeftover := 0
		if modelState.SelectionStart.Equals(selectionStart) {
			selectionStartLeftover = modelState.SelectionStartLeftoverColumns
		}
		position := ctx.Model.ValidatePosition(modelState.Position)
		leftover := 0
		if modelState.Position.Equals(position) {
			leftover = modelState.LeftoverColumns
		}
		modelState = NewSingleCursorState(
			selectionStart, modelState.SelectionStartKind, selectionStartLeftover,
			position, leftover)
	}

	if viewState == nil {
		viewSelectionStart1 := ctx.Converter.ModelPositionToViewPosition(modelState.SelectionStart.Start)
		viewSelectionStart2 := ctx.Converter.ModelPositionToViewPosition(modelState.SelectionStart.End)
		viewSelectionStart := text.Range{Start: viewSelectionStart1, End: viewSelectionStart2}
		viewPosition := ctx.Converter.ModelPositionToViewPosition(modelState.Position)
		viewState = NewSingleCursorState(
			viewSelectionStart, modelState.SelectionStartKind, modelState.SelectionStartLeftoverColumns,
			viewPosition, modelState.LeftoverColumns)
	} else {
		viewSelectionStart := ctx.Converter.ValidateViewRange(viewState.SelectionStart, modelState.SelectionStart)
		viewPosition := ctx.Converter.ValidateViewPosition(viewState.Position, modelState.Position)
		viewState = NewSingleCursorState(
			viewSelectionStart, modelState.SelectionStartKind, modelState.SelectionStartLeftoverColumns,
			viewPosition, modelState.LeftoverColumns)
	}

	c.modelState = modelState
	c.viewState = viewState
	c.updateTrackedRange(ctx)
}

// validateViewState re-normalizes a view state's positions through the
// view. The one-entry cache reuses the previous normalization result
// when consecutive inputs coincide; it must be behaviorally identical
// to normalizing each position independently.
func validateViewState(v view.View, s *SingleCursorState) *SingleCursorState {
	position := s.Position
	sStart := s.SelectionStart.Start
	sEnd := s.SelectionStart.End

	validPosition := v.NormalizePosition(position, view.AffinityNone)
	validSStart := normalizeWithCache(v, sStart, position, validPosition)
	validSEnd := normalizeWithCache(v, sEnd, sStart, validSStart)

	if position.Equals(validPosition) && sStart.Equals(validSStart) && sEnd.Equals(validSEnd) {
		return s
	}
	return NewSingleCursorState(
		text.FromPositions(validSStart, validSEnd),
		s.SelectionStartKind,
		s.SelectionStartLeftoverColumns+sStart.Column-validSStart.Column,
		validPosition,
		s.LeftoverColumns+position.Column-validPosition.Column,
	)
}

func normalizeWithCache(v view.View, p, cacheInput, cacheOutput text.Position) text.Position {
	if p.Equals(cacheInput) {
		return cacheOutput
	}
	return v.NormalizePosition(p, view.AffinityNone)
}
