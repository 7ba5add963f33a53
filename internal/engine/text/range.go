package text

import "fmt"

// Range is an ordered span of positions: Start is never after End.
// Range is an immutable value type.
type Range struct {
	Start Position
	End   Position
}

// NewRange creates a range between two line/column pairs, swapping the
// endpoints if they are given out of order.
func NewRange(startLineNumber, startColumn, endLineNumber, endColumn int) Range {
	start := Position{LineNumber: startLineNumber, Column: startColumn}
	end := Position{LineNumber: endLineNumber, Column: endColumn}
	return FromPositions(start, end)
}

// FromPositions creates a range between two positions, ordering them.
func FromPositions(a, b Position) Range {
	if b.IsBefore(a) {
		a, b = b, a
	}
	return Range{Start: a, End: b}
}

// CollapsedRange creates an empty range at the given position.
func CollapsedRange(p Position) Range {
	return Range{Start: p, End: p}
}

// String returns a human-readable representation of the range.
func (r Range) String() string {
	return fmt.Sprintf("[%s -> %s]", r.Start, r.End)
}

// IsEmpty returns true if the range covers no characters.
func (r Range) IsEmpty() bool {
	return r.Start.Equals(r.End)
}

// IsSingleLine returns true if the range starts and ends on one line.
func (r Range) IsSingleLine() bool {
	return r.Start.LineNumber == r.End.LineNumber
}

// Equals returns true if two ranges have identical endpoints.
func (r Range) Equals(other Range) bool {
	return r.Start.Equals(other.Start) && r.End.Equals(other.End)
}

// ContainsPosition returns true if p lies within the range, endpoints
// included.
func (r Range) ContainsPosition(p Position) bool {
	return r.Start.IsBeforeOrEqual(p) && p.IsBeforeOrEqual(r.End)
}

// ContainsRange returns true if other lies entirely within the range.
func (r Range) ContainsRange(other Range) bool {
	return r.Start.IsBeforeOrEqual(other.Start) && other.End.IsBeforeOrEqual(r.End)
}

// PlusRange returns the smallest range covering both ranges.
func (r Range) PlusRange(other Range) Range {
	return Range{
		Start: Min(r.Start, other.Start),
		End:   Max(r.End, other.End),
	}
}

// Intersects returns true if the two ranges strictly overlap: sharing
// only an endpoint does not count.
func (r Range) Intersects(other Range) bool {
	return r.Start.IsBefore(other.End) && other.Start.IsBefore(r.End)
}

// Touches returns true if the two ranges overlap or share an endpoint.
func (r Range) Touches(other Range) bool {
	return r.Start.IsBeforeOrEqual(other.End) && other.Start.IsBeforeOrEqual(r.End)
}

// CompareUsingStarts orders ranges by start position, breaking ties by
// end position. Returns -1, 0, or 1.
func CompareUsingStarts(a, b Range) int {
	if c := a.Start.Compare(b.Start); c != 0 {
		return c
	}
	return a.End.Compare(b.End)
}
