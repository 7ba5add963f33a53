package cursor

import (
	"sort"

	"github.com/cursive-editor/cursive/internal/engine/text"
)

// Collection owns the ordered set of cursors. Index 0 is the primary
// cursor; it is never removed, only repositioned. The collection is
// never empty.
type Collection struct {
	cursors []*Cursor

	// lastAddedCursorIndex remembers the most recently user-added
	// cursor (index into cursors). It only breaks direction ties when
	// cursors merge: the latest gesture's drag direction survives a
	// collision.
	lastAddedCursorIndex int
}

// NewCollection creates a collection holding a single primary cursor
// at the document start.
func NewCollection(ctx *Context) *Collection {
	return &Collection{
		cursors:              []*Cursor{NewCursor(ctx)},
		lastAddedCursorIndex: 0,
	}
}

// Dispose releases every cursor's tracked range.
func (cc *Collection) Dispose(ctx *Context) {
	for _, c := range cc.cursors {
		c.Dispose(ctx)
	}
}

// Count returns the number of cursors, always >= 1.
func (cc *Collection) Count() int {
	return len(cc.cursors)
}

// StartTrackingSelections registers every cursor's selection as a
// tracked range ahead of a document mutation.
func (cc *Collection) StartTrackingSelections(ctx *Context) {
	for _, c := range cc.cursors {
		c.StartTrackingSelection(ctx)
	}
}

// StopTrackingSelections releases every cursor's tracked range.
func (cc *Collection) StopTrackingSelections(ctx *Context) {
	for _, c := range cc.cursors {
		c.StopTrackingSelection(ctx)
	}
}

// EnsureValidState re-validates every cursor against the current
// document and view.
func (cc *Collection) EnsureValidState(ctx *Context) {
	for _, c := range cc.cursors {
		c.EnsureValidState(ctx)
	}
}

// ReadSelectionsFromMarkers recovers every cursor's selection from its
// tracked range after a document mutation.
func (cc *Collection) ReadSelectionsFromMarkers(ctx *Context) []text.Selection {
	selections := make([]text.Selection, len(cc.cursors))
	for i, c := range cc.cursors {
		selections[i] = c.ReadSelectionFromMarkers(ctx)
	}
	return selections
}

// GetAll returns every cursor's full dual state, primary first.
func (cc *Collection) GetAll() []State {
	states := make([]State, len(cc.cursors))
	for i, c := range cc.cursors {
		states[i] = State{ModelState: c.ModelState(), ViewState: c.ViewState()}
	}
	return states
}

// Selections returns every cursor's document-space selection.
func (cc *Collection) Selections() []text.Selection {
	selections := make([]text.Selection, len(cc.cursors))
	for i, c := range cc.cursors {
		selections[i] = c.ModelState().Selection
	}
	return selections
}

// ViewSelections returns every cursor's view-space selection.
func (cc *Collection) ViewSelections() []text.Selection {
	selections := make([]text.Selection, len(cc.cursors))
	for i, c := range cc.cursors {
		selections[i] = c.ViewState().Selection
	}
	return selections
}

// ViewPositions returns every cursor's view-space position.
func (cc *Collection) ViewPositions() []text.Position {
	positions := make([]text.Position, len(cc.cursors))
	for i, c := range cc.cursors {
		positions[i] = c.ViewState().Position
	}
	return positions
}

// Primary returns the primary cursor's dual state.
func (cc *Collection) Primary() State {
	return State{ModelState: cc.cursors[0].ModelState(), ViewState: cc.cursors[0].ViewState()}
}

// PrimaryCursor returns the primary cursor itself.
func (cc *Collection) PrimaryCursor() *Cursor {
	return cc.cursors[0]
}

// TopMostViewPosition returns the minimum view position across all
// cursors, by line-then-column order.
func (cc *Collection) TopMostViewPosition() text.Position {
	result := cc.cursors[0].ViewState().Position
	for _, c := range cc.cursors[1:] {
		if c.ViewState().Position.IsBefore(result) {
			result = c.ViewState().Position
		}
	}
	return result
}

// BottomMostViewPosition returns the maximum view position across all
// cursors.
func (cc *Collection) BottomMostViewPosition() text.Position {
	result := cc.cursors[0].ViewState().Position
	for _, c := range cc.cursors[1:] {
		if result.IsBefore(c.ViewState().Position) {
			result = c.ViewState().Position
		}
	}
	return result
}

// LastAddedCursorIndex returns the index of the most recently added
// cursor, or 0 when only the primary exists.
func (cc *Collection) LastAddedCursorIndex() int {
	if len(cc.cursors) == 1 || cc.lastAddedCursorIndex == 0 {
		return 0
	}
	return cc.lastAddedCursorIndex
}

// KillSecondaryCursors collapses the collection to the primary cursor.
func (cc *Collection) KillSecondaryCursors(ctx *Context) {
	cc.setSecondaryStates(ctx, nil)
}

// SetStates applies desired states 1:1 onto the cursors: the primary
// takes states[0]; secondaries are created or disposed to match the
// remainder. A nil slice is a no-op.
func (cc *Collection) SetStates(ctx *Context, states []State) {
	if states == nil {
		return
	}
	cc.cursors[0].SetState(ctx, states[0].ModelState, states[0].ViewState)
	cc.setSecondaryStates(ctx, states[1:])
}

func (cc *Collection) setSecondaryStates(ctx *Context, secondaryStates []State) {
	secondaryCursorsLength := len(cc.cursors) - 1
	if secondaryCursorsLength < len(secondaryStates) {
		createCnt := len(secondaryStates) - secondaryCursorsLength
		for i := 0; i < createCnt; i++ {
			cc.addSecondaryCursor(ctx)
		}
	} else if secondaryCursorsLength > len(secondaryStates) {
		removeCnt := secondaryCursorsLength - len(secondaryStates)
		for i := 0; i < removeCnt; i++ {
			cc.removeSecondaryCursor(ctx, len(cc.cursors)-2)
		}
	}
	for i := range secondaryStates {
		cc.cursors[i+1].SetState(ctx, secondaryStates[i].ModelState, secondaryStates[i].ViewState)
	}
}

func (cc *Collection) addSecondaryCursor(ctx *Context) {
	cc.cursors = append(cc.cursors, NewCursor(ctx))
	cc.lastAddedCursorIndex = len(cc.cursors) - 1
}

// removeSecondaryCursor removes the secondary at the given index into
// the secondary sub-list (0 is the first secondary).
func (cc *Collection) removeSecondaryCursor(ctx *Context, removeIndex int) {
	if cc.lastAddedCursorIndex >= removeIndex+1 {
		cc.lastAddedCursorIndex--
	}
	cc.cursors[removeIndex+1].Dispose(ctx)
	cc.cursors = append(cc.cursors[:removeIndex+1], cc.cursors[removeIndex+2:]...)
}

type sortedCursor struct {
	index     int
	selection text.Selection
}

// Normalize merges cursors that collide: touching carets and strictly
// overlapping ranges. The lower-indexed cursor of a colliding pair
// wins its slot; the merged selection spans both. The winner keeps its
// own direction unless the loser is the most recently added cursor, in
// which case the loser's direction survives and the most-recently-added
// marker transfers to the winner.
func (cc *Collection) Normalize(ctx *Context) {
	if len(cc.cursors) == 1 {
		return
	}
	if !ctx.Config.MultiCursorMergeOverlapping {
		return
	}

	sortedCursors := make([]sortedCursor, len(cc.cursors))
	for i, c := range cc.cursors {
		sortedCursors[i] = sortedCursor{index: i, selection: c.ModelState().Selection}
	}
	sort.SliceStable(sortedCursors, func(i, j int) bool {
		return text.CompareUsingStarts(sortedCursors[i].selection.Range(), sortedCursors[j].selection.Range()) < 0
	})

	for sortedIndex := 0; sortedIndex < len(sortedCursors)-1; sortedIndex++ {
		current := sortedCursors[sortedIndex]
		next := sortedCursors[sortedIndex+1]

		var shouldMerge bool
		if current.selection.IsEmpty() || next.selection.IsEmpty() {
			shouldMerge = next.selection.Start().IsBeforeOrEqual(current.selection.End())
		} else {
			shouldMerge = next.selection.Start().IsBefore(current.selection.End())
		}
		if !shouldMerge {
			continue
		}

		winnerSortedIndex := sortedIndex
		loserSortedIndex := sortedIndex + 1
		if next.index < current.index {
			winnerSortedIndex, loserSortedIndex = loserSortedIndex, winnerSortedIndex
		}
		winnerIndex := sortedCursors[winnerSortedIndex].index
		loserIndex := sortedCursors[loserSortedIndex].index
		winnerSelection := sortedCursors[winnerSortedIndex].selection
		loserSelection := sortedCursors[loserSortedIndex].selection

		if !winnerSelection.Equals(loserSelection) {
			resultingRange := loserSelection.Range().PlusRange(winnerSelection.Range())
			direction := winnerSelection.Direction()
			if loserIndex == cc.lastAddedCursorIndex {
				direction = loserSelection.Direction()
				cc.lastAddedCursorIndex = winnerIndex
			}
			resultingSelection := text.SelectionFromRange(resultingRange, direction)
			sortedCursors[winnerSortedIndex].selection = resultingSelection
			resultingState := StateFromModelSelection(resultingSelection)
			cc.cursors[winnerIndex].SetState(ctx, resultingState.ModelState, resultingState.ViewState)
		}

		for i := range sortedCursors {
			if sortedCursors[i].index > loserIndex {
				sortedCursors[i].index--
			}
		}
		cc.removeSecondaryCursor(ctx, loserIndex-1)
		sortedCursors = append(sortedCursors[:loserSortedIndex], sortedCursors[loserSortedIndex+1:]...)

		// The merged entry may collide with its next neighbor too.
		sortedIndex--
	}
}
