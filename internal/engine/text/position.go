package text

import "fmt"

// Position is a location in the document, addressed by line and column.
// Both LineNumber and Column are 1-based: (1, 1) is the start of the
// document, and a column of LineMaxColumn(line) sits after the last
// character of the line.
// Position is an immutable value type.
type Position struct {
	LineNumber int
	Column     int
}

// NewPosition creates a position at the given line and column.
func NewPosition(lineNumber, column int) Position {
	return Position{LineNumber: lineNumber, Column: column}
}

// String returns a human-readable representation of the position.
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.LineNumber, p.Column)
}

// With returns a position with the given line and column, reusing the
// receiver when nothing changes.
func (p Position) With(lineNumber, column int) Position {
	if lineNumber == p.LineNumber && column == p.Column {
		return p
	}
	return Position{LineNumber: lineNumber, Column: column}
}

// Delta returns a position shifted by the given line and column deltas.
func (p Position) Delta(deltaLine, deltaColumn int) Position {
	return Position{LineNumber: p.LineNumber + deltaLine, Column: p.Column + deltaColumn}
}

// Compare returns -1 if p < other, 0 if p == other, 1 if p > other,
// ordering by line first, then column.
func (p Position) Compare(other Position) int {
	if p.LineNumber < other.LineNumber {
		return -1
	}
	if p.LineNumber > other.LineNumber {
		return 1
	}
	if p.Column < other.Column {
		return -1
	}
	if p.Column > other.Column {
		return 1
	}
	return 0
}

// Equals returns true if two positions are identical.
func (p Position) Equals(other Position) bool {
	return p.LineNumber == other.LineNumber && p.Column == other.Column
}

// IsBefore returns true if p comes strictly before other.
func (p Position) IsBefore(other Position) bool {
	return p.Compare(other) < 0
}

// IsBeforeOrEqual returns true if p comes before other or equals it.
func (p Position) IsBeforeOrEqual(other Position) bool {
	return p.Compare(other) <= 0
}

// Min returns the earlier of two positions.
func Min(a, b Position) Position {
	if b.IsBefore(a) {
		return b
	}
	return a
}

// Max returns the later of two positions.
func Max(a, b Position) Position {
	if a.IsBefore(b) {
		return b
	}
	return a
}
