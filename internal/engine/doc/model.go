package doc

import (
	"errors"

	"github.com/cursive-editor/cursive/internal/engine/text"
)

// ErrEditsOverlap indicates a batch contains edits whose ranges
// overlap; a batch must describe disjoint mutations.
var ErrEditsOverlap = errors.New("edits overlap")

// TrackedRangeID is an opaque handle into a document's tracked-range
// table. The empty string means "no tracked range". The document owns
// the range's lifetime; holders of an ID only look it up or release it.
type TrackedRangeID string

// TrackedRangeStickiness controls how a tracked range reacts to text
// typed exactly at one of its edges.
type TrackedRangeStickiness uint8

const (
	// AlwaysGrowsWhenTypingAtEdges extends the range when text is
	// inserted at either edge.
	AlwaysGrowsWhenTypingAtEdges TrackedRangeStickiness = iota
	// NeverGrowsWhenTypingAtEdges leaves inserted edge text outside
	// the range on both sides.
	NeverGrowsWhenTypingAtEdges
	// GrowsOnlyWhenTypingBefore extends the range only for insertions
	// at its start edge.
	GrowsOnlyWhenTypingBefore
	// GrowsOnlyWhenTypingAfter extends the range only for insertions
	// at its end edge.
	GrowsOnlyWhenTypingAfter
)

// String returns a string representation of the stickiness policy.
func (s TrackedRangeStickiness) String() string {
	switch s {
	case AlwaysGrowsWhenTypingAtEdges:
		return "alwaysGrows"
	case NeverGrowsWhenTypingAtEdges:
		return "neverGrows"
	case GrowsOnlyWhenTypingBefore:
		return "growsBefore"
	case GrowsOnlyWhenTypingAfter:
		return "growsAfter"
	default:
		return "unknown"
	}
}

// Model is the narrow document-accessor contract the cursor engine
// consumes. Out-of-range positions and ranges are never rejected: the
// validators clamp them into legal document coordinates.
//
// Columns are 1-based byte offsets within a line's content; the
// validators additionally snap columns onto grapheme-cluster
// boundaries so a cursor can never sit inside a combining sequence.
type Model interface {
	// ValidatePosition clamps a position into legal document bounds.
	ValidatePosition(p text.Position) text.Position

	// ValidateRange clamps both endpoints of a range into legal
	// document bounds.
	ValidateRange(r text.Range) text.Range

	// LineContent returns the content of a line without its
	// terminating newline. Lines are 1-based.
	LineContent(lineNumber int) string

	// LineMaxColumn returns the column one past the last character of
	// the line (len(content)+1).
	LineMaxColumn(lineNumber int) int

	// LineCount returns the number of lines in the document, >= 1.
	LineCount() int

	// SetTrackedRange registers, moves, or releases a tracked range.
	// With id == "" and a range, a new range is registered and its ID
	// returned. With an existing id and a range, the range is moved.
	// With an existing id and newRange == nil, the range is released
	// and "" returned.
	SetTrackedRange(id TrackedRangeID, newRange *text.Range, stickiness TrackedRangeStickiness) TrackedRangeID

	// TrackedRange returns the current extent of a tracked range, or
	// nil if the ID is unknown.
	TrackedRange(id TrackedRangeID) *text.Range
}

// Edit replaces a range of the document with new text. An empty Text
// deletes the range; an empty Range inserts at a point.
type Edit struct {
	Range text.Range
	Text  string
}

// IsNoOp returns true if the edit changes nothing.
func (e Edit) IsNoOp() bool {
	return e.Range.IsEmpty() && e.Text == ""
}
