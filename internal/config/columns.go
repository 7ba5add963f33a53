package config

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Visible columns are 0-based screen columns: tabs expand to the next
// tab stop and wide runes (CJK, emoji) occupy their display width.
// Buffer columns are the 1-based byte columns used everywhere else.

// VisibleColumnFromColumn returns the visible column at which the
// given buffer column renders, for a tab size in visible columns.
func (c *CursorConfig) VisibleColumnFromColumn(lineContent string, column int) int {
	end := column - 1
	if end > len(lineContent) {
		end = len(lineContent)
	}
	visible := 0
	state := -1
	for rest, pos := lineContent, 0; pos < end; {
		cluster, tail, _, st := uniseg.FirstGraphemeClusterInString(rest, state)
		if cluster == "" {
			break
		}
		visible += c.clusterWidth(cluster, visible)
		pos += len(cluster)
		rest = tail
		state = st
	}
	return visible
}

// ColumnFromVisibleColumn returns the buffer column nearest to the
// given visible column. When the target falls inside a tab or a wide
// rune, the closer edge wins.
func (c *CursorConfig) ColumnFromVisibleColumn(lineContent string, visibleColumn int) int {
	if visibleColumn <= 0 {
		return 1
	}
	before := 0
	state := -1
	for rest, pos := lineContent, 0; ; {
		cluster, tail, _, st := uniseg.FirstGraphemeClusterInString(rest, state)
		if cluster == "" {
			return pos + 1
		}
		after := before + c.clusterWidth(cluster, before)
		if after >= visibleColumn {
			if after-visibleColumn < visibleColumn-before {
				return pos + len(cluster) + 1
			}
			return pos + 1
		}
		before = after
		pos += len(cluster)
		rest = tail
		state = st
	}
}

func (c *CursorConfig) clusterWidth(cluster string, atVisibleColumn int) int {
	if cluster == "\t" {
		return c.TabSize - atVisibleColumn%c.TabSize
	}
	return runewidth.StringWidth(cluster)
}

// PrevIndentTabStop returns the visible column of the previous indent
// stop strictly before visibleColumn.
func (c *CursorConfig) PrevIndentTabStop(visibleColumn int) int {
	if visibleColumn <= 0 {
		return 0
	}
	return (visibleColumn - 1) / c.IndentSize * c.IndentSize
}

// NextIndentTabStop returns the visible column of the next indent stop
// strictly after visibleColumn.
func (c *CursorConfig) NextIndentTabStop(visibleColumn int) int {
	return visibleColumn/c.IndentSize*c.IndentSize + c.IndentSize
}

// FirstNonWhitespaceColumn returns the 1-based column of the first
// character that is not a space or tab, or 0 if the line is entirely
// whitespace.
func FirstNonWhitespaceColumn(lineContent string) int {
	i := strings.IndexFunc(lineContent, func(r rune) bool {
		return r != ' ' && r != '\t'
	})
	if i < 0 {
		return 0
	}
	return i + 1
}

// LastIndentationColumn returns the column just past the leading
// whitespace of the line: the first non-whitespace column, or the
// line's max column when the whole line is whitespace.
func LastIndentationColumn(lineContent string) int {
	if col := FirstNonWhitespaceColumn(lineContent); col > 0 {
		return col
	}
	return len(lineContent) + 1
}
