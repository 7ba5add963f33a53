package text

import "fmt"

// SelectionDirection records which side of a selection holds the anchor.
type SelectionDirection uint8

const (
	// LTR means the anchor is at the start and the head at the end.
	LTR SelectionDirection = iota
	// RTL means the anchor is at the end and the head at the start.
	RTL
)

// String returns a string representation of the direction.
func (d SelectionDirection) String() string {
	if d == RTL {
		return "rtl"
	}
	return "ltr"
}

// Selection is a range with a remembered anchor side. The anchor is
// where the selection started; the head is where the cursor sits and
// where typing occurs. Anchor == Head describes a bare caret.
// Selection is an immutable value type.
type Selection struct {
	Anchor Position
	Head   Position
}

// NewSelection creates a selection from anchor to head.
func NewSelection(anchorLine, anchorColumn, headLine, headColumn int) Selection {
	return Selection{
		Anchor: Position{LineNumber: anchorLine, Column: anchorColumn},
		Head:   Position{LineNumber: headLine, Column: headColumn},
	}
}

// SelectionFromPositions creates a selection anchored at anchor with
// the head at head.
func SelectionFromPositions(anchor, head Position) Selection {
	return Selection{Anchor: anchor, Head: head}
}

// SelectionFromRange re-expresses a range as a selection with the
// given direction.
func SelectionFromRange(r Range, direction SelectionDirection) Selection {
	if direction == RTL {
		return Selection{Anchor: r.End, Head: r.Start}
	}
	return Selection{Anchor: r.Start, Head: r.End}
}

// CaretSelection creates an empty selection (a caret) at p.
func CaretSelection(p Position) Selection {
	return Selection{Anchor: p, Head: p}
}

// String returns a human-readable representation of the selection.
func (s Selection) String() string {
	if s.IsEmpty() {
		return fmt.Sprintf("Caret%s", s.Head)
	}
	return fmt.Sprintf("Selection[%s -> %s]", s.Anchor, s.Head)
}

// IsEmpty returns true if the selection is a bare caret.
func (s Selection) IsEmpty() bool {
	return s.Anchor.Equals(s.Head)
}

// Direction returns which side the anchor sits on. A caret is LTR.
func (s Selection) Direction() SelectionDirection {
	if s.Head.IsBefore(s.Anchor) {
		return RTL
	}
	return LTR
}

// Start returns the earlier endpoint of the selection.
func (s Selection) Start() Position {
	return Min(s.Anchor, s.Head)
}

// End returns the later endpoint of the selection.
func (s Selection) End() Position {
	return Max(s.Anchor, s.Head)
}

// Range returns the selection as an ordered range, dropping direction.
func (s Selection) Range() Range {
	return Range{Start: s.Start(), End: s.End()}
}

// Equals returns true if two selections have the same anchor and head.
func (s Selection) Equals(other Selection) bool {
	return s.Anchor.Equals(other.Anchor) && s.Head.Equals(other.Head)
}

// CollapseToEnd collapses the selection to a caret at its end.
func (s Selection) CollapseToEnd() Selection {
	end := s.End()
	return Selection{Anchor: end, Head: end}
}
