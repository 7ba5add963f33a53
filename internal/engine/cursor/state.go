package cursor

import (
	"fmt"

	"github.com/cursive-editor/cursive/internal/engine/text"
)

// SelectionStartKind records what gesture established the selection
// anchor, so extending the selection can snap to the original unit.
type SelectionStartKind uint8

const (
	// SelectionStartSimple anchors at a single position.
	SelectionStartSimple SelectionStartKind = iota
	// SelectionStartWord anchors at a whole word.
	SelectionStartWord
	// SelectionStartLine anchors at a whole line.
	SelectionStartLine
)

// SingleCursorState is one cursor's state in one coordinate space.
// The same shape serves document space and view space; a Cursor keeps
// one of each and re-derives either side from the other.
//
// LeftoverColumns carries the virtual-column overshoot accumulated
// when moving vertically across tabs or short lines, so repeated
// vertical moves return to the intended visual column. It survives
// validation only while validation leaves the corresponding position
// untouched.
//
// SingleCursorState is immutable: every change builds a new state.
type SingleCursorState struct {
	SelectionStart                text.Range
	SelectionStartKind            SelectionStartKind
	SelectionStartLeftoverColumns int
	Position                      text.Position
	LeftoverColumns               int
	Selection                     text.Selection
}

// NewSingleCursorState builds a state and derives its selection. The
// anchor is the selection start's start position, unless the cursor
// position sits at or before the start of a non-empty selection-start
// range, in which case the range's end anchors (dragging leftward
// across a word keeps the whole word selected).
func NewSingleCursorState(selectionStart text.Range, kind SelectionStartKind, selectionStartLeftoverColumns int, position text.Position, leftoverColumns int) *SingleCursorState {
	var selection text.Selection
	if selectionStart.IsEmpty() || !position.IsBeforeOrEqual(selectionStart.Start) {
		selection = text.SelectionFromPositions(selectionStart.Start, position)
	} else {
		selection = text.SelectionFromPositions(selectionStart.End, position)
	}
	return &SingleCursorState{
		SelectionStart:                selectionStart,
		SelectionStartKind:            kind,
		SelectionStartLeftoverColumns: selectionStartLeftoverColumns,
		Position:                      position,
		LeftoverColumns:               leftoverColumns,
		Selection:                     selection,
	}
}

// Equals returns true if two states are identical in every field.
func (s *SingleCursorState) Equals(other *SingleCursorState) bool {
	if other == nil {
		return false
	}
	return s.SelectionStart.Equals(other.SelectionStart) &&
		s.SelectionStartKind == other.SelectionStartKind &&
		s.SelectionStartLeftoverColumns == other.SelectionStartLeftoverColumns &&
		s.Position.Equals(other.Position) &&
		s.LeftoverColumns == other.LeftoverColumns
}

// HasSelection returns true if the state describes a non-empty
// selection.
func (s *SingleCursorState) HasSelection() bool {
	return !s.Selection.IsEmpty() || !s.SelectionStart.IsEmpty()
}

// Move returns a new state with the cursor at the given line/column.
// In selection mode the selection start is kept; otherwise it
// collapses to the new position.
func (s *SingleCursorState) Move(inSelectionMode bool, lineNumber, column, leftoverColumns int) *SingleCursorState {
	p := text.NewPosition(lineNumber, column)
	if inSelectionMode {
		return NewSingleCursorState(s.SelectionStart, s.SelectionStartKind, s.SelectionStartLeftoverColumns, p, leftoverColumns)
	}
	return NewSingleCursorState(text.CollapsedRange(p), SelectionStartSimple, leftoverColumns, p, leftoverColumns)
}

// String returns a human-readable representation of the state.
func (s *SingleCursorState) String() string {
	return fmt.Sprintf("state(selStart: %s, pos: %s, leftover: %d)", s.SelectionStart, s.Position, s.LeftoverColumns)
}

// State is a partial cursor state: the document-space side, the
// view-space side, or both. A nil side is derived from the other on
// SetState.
type State struct {
	ModelState *SingleCursorState
	ViewState  *SingleCursorState
}

// StateFromModelState wraps a document-space state; the view side is
// derived on application.
func StateFromModelState(modelState *SingleCursorState) State {
	return State{ModelState: modelState}
}

// StateFromViewState wraps a view-space state; the document side is
// derived on application.
func StateFromViewState(viewState *SingleCursorState) State {
	return State{ViewState: viewState}
}

// StateFromModelSelection builds a document-space state from a plain
// selection: the anchor becomes a collapsed selection start, the head
// the position.
func StateFromModelSelection(sel text.Selection) State {
	return StateFromModelState(NewSingleCursorState(
		text.CollapsedRange(sel.Anchor), SelectionStartSimple, 0, sel.Head, 0,
	))
}

// StatesFromModelSelections builds one state per selection.
func StatesFromModelSelections(selections []text.Selection) []State {
	states := make([]State, len(selections))
	for i, sel := range selections {
		states[i] = StateFromModelSelection(sel)
	}
	return states
}
