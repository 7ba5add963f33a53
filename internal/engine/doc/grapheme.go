package doc

import (
	"github.com/rivo/uniseg"

	"github.com/cursive-editor/cursive/internal/engine/text"
)

// NextGraphemeLength returns the byte length of the grapheme cluster
// starting at column within lineContent, or 0 if the column is at or
// past the end of the line.
func NextGraphemeLength(lineContent string, column int) int {
	idx := column - 1
	if idx < 0 || idx >= len(lineContent) {
		return 0
	}
	cluster, _, _, _ := uniseg.FirstGraphemeClusterInString(lineContent[idx:], -1)
	return len(cluster)
}

// PrevGraphemeLength returns the byte length of the grapheme cluster
// ending just before column within lineContent, or 0 if the column is
// at the start of the line.
func PrevGraphemeLength(lineContent string, column int) int {
	idx := column - 1
	if idx <= 0 {
		return 0
	}
	if idx > len(lineContent) {
		idx = len(lineContent)
	}
	prev := 0
	state := -1
	for rest, pos := lineContent, 0; pos < idx; {
		cluster, tail, _, st := uniseg.FirstGraphemeClusterInString(rest, state)
		if cluster == "" {
			break
		}
		prev = len(cluster)
		pos += len(cluster)
		rest = tail
		state = st
	}
	return prev
}

// SnapToGraphemeBoundary moves column left onto the nearest grapheme
// cluster start, so a position never addresses the middle of a
// combining sequence.
func SnapToGraphemeBoundary(lineContent string, column int) int {
	idx := column - 1
	if idx <= 0 {
		return 1
	}
	if idx >= len(lineContent) {
		return len(lineContent) + 1
	}
	state := -1
	for rest, pos := lineContent, 0; ; {
		cluster, tail, _, st := uniseg.FirstGraphemeClusterInString(rest, state)
		if cluster == "" {
			return pos + 1
		}
		if pos+len(cluster) > idx {
			return pos + 1
		}
		pos += len(cluster)
		rest = tail
		state = st
	}
}

// NextPosition returns the position one grapheme-aware unit to the
// right of p, stepping onto the next line when p sits at end of line.
// At the true end of the document it returns p unchanged.
func NextPosition(m Model, p text.Position) text.Position {
	content := m.LineContent(p.LineNumber)
	if n := NextGraphemeLength(content, p.Column); n > 0 {
		return text.NewPosition(p.LineNumber, p.Column+n)
	}
	if p.LineNumber < m.LineCount() {
		return text.NewPosition(p.LineNumber+1, 1)
	}
	return p
}

// PrevPosition returns the position one grapheme-aware unit to the
// left of p, stepping onto the previous line's end when p sits at
// column 1. At the true start of the document it returns p unchanged.
func PrevPosition(m Model, p text.Position) text.Position {
	if p.Column > 1 {
		content := m.LineContent(p.LineNumber)
		n := PrevGraphemeLength(content, p.Column)
		if n == 0 {
			n = 1
		}
		return text.NewPosition(p.LineNumber, p.Column-n)
	}
	if p.LineNumber > 1 {
		return text.NewPosition(p.LineNumber-1, m.LineMaxColumn(p.LineNumber-1))
	}
	return p
}
