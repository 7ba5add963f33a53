package doc

import (
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/cursive-editor/cursive/internal/engine/text"
)

// LineModel is an in-memory reference implementation of Model backed
// by a slice of lines. It exists for the session layer and for tests;
// a production text store (rope, piece table) satisfies the same
// contract.
//
// LineModel is not safe for concurrent use.
type LineModel struct {
	lines  []string
	ranges map[TrackedRangeID]*trackedRange
}

type trackedRange struct {
	r          text.Range
	stickiness TrackedRangeStickiness
}

// NewLineModel creates a model from content. Content is split on "\n";
// an empty string yields a single empty line.
func NewLineModel(content string) *LineModel {
	return &LineModel{
		lines:  strings.Split(content, "\n"),
		ranges: make(map[TrackedRangeID]*trackedRange),
	}
}

// Value returns the document content as a single string.
func (m *LineModel) Value() string {
	return strings.Join(m.lines, "\n")
}

// LineCount returns the number of lines, always >= 1.
func (m *LineModel) LineCount() int {
	return len(m.lines)
}

// LineContent returns the content of a 1-based line. Out-of-range
// lines are clamped.
func (m *LineModel) LineContent(lineNumber int) string {
	return m.lines[m.clampLine(lineNumber)-1]
}

// LineMaxColumn returns the column just past the end of the line.
func (m *LineModel) LineMaxColumn(lineNumber int) int {
	return len(m.LineContent(lineNumber)) + 1
}

func (m *LineModel) clampLine(lineNumber int) int {
	if lineNumber < 1 {
		return 1
	}
	if lineNumber > len(m.lines) {
		return len(m.lines)
	}
	return lineNumber
}

// ValidatePosition clamps p to legal document coordinates and snaps
// the column onto a grapheme boundary.
func (m *LineModel) ValidatePosition(p text.Position) text.Position {
	line := m.clampLine(p.LineNumber)
	content := m.lines[line-1]
	column := p.Column
	if column < 1 {
		column = 1
	} else if column > len(content)+1 {
		column = len(content) + 1
	} else {
		column = SnapToGraphemeBoundary(content, column)
	}
	return p.With(line, column)
}

// ValidateRange clamps both endpoints of r into legal coordinates.
func (m *LineModel) ValidateRange(r text.Range) text.Range {
	return text.FromPositions(m.ValidatePosition(r.Start), m.ValidatePosition(r.End))
}

// SetTrackedRange registers, moves, or releases a tracked range.
func (m *LineModel) SetTrackedRange(id TrackedRangeID, newRange *text.Range, stickiness TrackedRangeStickiness) TrackedRangeID {
	if newRange == nil {
		delete(m.ranges, id)
		return ""
	}
	validated := m.ValidateRange(*newRange)
	if id == "" {
		id = TrackedRangeID(uuid.NewString())
	}
	m.ranges[id] = &trackedRange{r: validated, stickiness: stickiness}
	return id
}

// TrackedRange returns the current extent of a tracked range, or nil
// for an unknown ID.
func (m *LineModel) TrackedRange(id TrackedRangeID) *text.Range {
	tr, ok := m.ranges[id]
	if !ok {
		return nil
	}
	r := tr.r
	return &r
}

// ApplyEdits applies a batch of edits as one atomic document mutation
// and adjusts every tracked range per its stickiness. Edits must not
// overlap; they may be supplied in any order and are applied from the
// bottom of the document upward so earlier edits do not invalidate the
// coordinates of later ones.
func (m *LineModel) ApplyEdits(edits []Edit) error {
	sorted := make([]Edit, 0, len(edits))
	for _, e := range edits {
		if e.IsNoOp() {
			continue
		}
		sorted = append(sorted, Edit{Range: m.ValidateRange(e.Range), Text: e.Text})
	}
	sort.Slice(sorted, func(i, j int) bool {
		return text.CompareUsingStarts(sorted[j].Range, sorted[i].Range) < 0
	})
	for i := 1; i < len(sorted); i++ {
		if sorted[i].Range.Intersects(sorted[i-1].Range) {
			return fmt.Errorf("apply edits: %s and %s: %w", sorted[i].Range, sorted[i-1].Range, ErrEditsOverlap)
		}
	}
	for _, e := range sorted {
		m.applyOne(e)
	}
	return nil
}

func (m *LineModel) applyOne(e Edit) {
	start, end := e.Range.Start, e.Range.End
	startLine := m.lines[start.LineNumber-1]
	endLine := m.lines[end.LineNumber-1]
	joined := startLine[:start.Column-1] + e.Text + endLine[end.Column-1:]
	newLines := strings.Split(joined, "\n")

	replaced := make([]string, 0, len(m.lines)-(end.LineNumber-start.LineNumber+1)+len(newLines))
	replaced = append(replaced, m.lines[:start.LineNumber-1]...)
	replaced = append(replaced, newLines...)
	replaced = append(replaced, m.lines[end.LineNumber:]...)
	m.lines = replaced

	for _, tr := range m.ranges {
		// A growing edge swallows text inserted exactly at it: a
		// growing start stays put, a growing end moves to the end of
		// the insertion.
		startGrows := tr.stickiness == AlwaysGrowsWhenTypingAtEdges || tr.stickiness == GrowsOnlyWhenTypingBefore
		endGrows := tr.stickiness == AlwaysGrowsWhenTypingAtEdges || tr.stickiness == GrowsOnlyWhenTypingAfter
		tr.r = text.FromPositions(
			transformPosition(tr.r.Start, e, !startGrows),
			transformPosition(tr.r.End, e, endGrows),
		)
	}
}

// editEndPosition returns where the end of the replaced region lands
// after the edit.
func editEndPosition(e Edit) text.Position {
	start := e.Range.Start
	if i := strings.LastIndexByte(e.Text, '\n'); i >= 0 {
		return text.NewPosition(
			start.LineNumber+strings.Count(e.Text, "\n"),
			len(e.Text)-i,
		)
	}
	return text.NewPosition(start.LineNumber, start.Column+len(e.Text))
}

// transformPosition maps a position across an edit. stickToInserted
// controls the boundary case of an insertion landing exactly at p:
// when true, p moves to the end of the inserted text; when false, p
// stays put (the insertion lands after it).
func transformPosition(p text.Position, e Edit, stickToInserted bool) text.Position {
	start, end := e.Range.Start, e.Range.End
	if p.IsBefore(start) {
		return p
	}
	if p.Equals(start) && e.Range.IsEmpty() {
		if stickToInserted {
			return editEndPosition(e)
		}
		return p
	}
	if p.IsBefore(end) {
		// Inside the replaced region: collapse to its start.
		return start
	}
	newEnd := editEndPosition(e)
	if p.LineNumber == end.LineNumber {
		return text.NewPosition(newEnd.LineNumber, newEnd.Column+(p.Column-end.Column))
	}
	return text.NewPosition(p.LineNumber+(newEnd.LineNumber-end.LineNumber), p.Column)
}
