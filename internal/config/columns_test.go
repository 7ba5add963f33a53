package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVisibleColumnFromColumn(t *testing.T) {
	cfg := DefaultCursorConfig()

	tests := []struct {
		name   string
		line   string
		column int
		want   int
	}{
		{"start of line", "abc", 1, 0},
		{"ascii", "abc", 3, 2},
		{"tab expands to stop", "\tx", 2, 4},
		{"after tab", "\tx", 3, 5},
		{"mid-line tab pads to next stop", "ab\tx", 4, 4},
		{"wide rune", "世x", 4, 2},
		{"column past end clamps", "ab", 99, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cfg.VisibleColumnFromColumn(tt.line, tt.column))
		})
	}
}

func TestColumnFromVisibleColumn(t *testing.T) {
	cfg := DefaultCursorConfig()

	tests := []struct {
		name    string
		line    string
		visible int
		want    int
	}{
		{"zero clamps to start", "abc", 0, 1},
		{"negative clamps to start", "abc", -3, 1},
		{"exact ascii", "abc", 2, 3},
		{"past end clamps", "ab", 99, 3},
		{"tab far edge", "\tx", 4, 2},
		{"inside tab nearer start", "\tx", 1, 1},
		{"inside tab nearer end", "\tx", 3, 2},
		{"inside wide rune rounds to nearer edge", "世x", 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cfg.ColumnFromVisibleColumn(tt.line, tt.visible))
		})
	}
}

func TestIndentTabStops(t *testing.T) {
	cfg := DefaultCursorConfig()

	assert.Equal(t, 0, cfg.PrevIndentTabStop(0))
	assert.Equal(t, 0, cfg.PrevIndentTabStop(1))
	assert.Equal(t, 0, cfg.PrevIndentTabStop(4))
	assert.Equal(t, 4, cfg.PrevIndentTabStop(5))
	assert.Equal(t, 4, cfg.PrevIndentTabStop(8))

	assert.Equal(t, 4, cfg.NextIndentTabStop(0))
	assert.Equal(t, 4, cfg.NextIndentTabStop(3))
	assert.Equal(t, 8, cfg.NextIndentTabStop(4))
}

func TestFirstNonWhitespaceColumn(t *testing.T) {
	assert.Equal(t, 1, FirstNonWhitespaceColumn("abc"))
	assert.Equal(t, 3, FirstNonWhitespaceColumn("  abc"))
	assert.Equal(t, 2, FirstNonWhitespaceColumn("\tabc"))
	assert.Equal(t, 0, FirstNonWhitespaceColumn("   "))
	assert.Equal(t, 0, FirstNonWhitespaceColumn(""))
}

func TestLastIndentationColumn(t *testing.T) {
	assert.Equal(t, 3, LastIndentationColumn("  abc"))
	assert.Equal(t, 1, LastIndentationColumn("abc"))
	assert.Equal(t, 4, LastIndentationColumn("   "))
	assert.Equal(t, 1, LastIndentationColumn(""))
}
