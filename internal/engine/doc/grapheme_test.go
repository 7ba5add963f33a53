package doc

import (
	"testing"

	"github.com/cursive-editor/cursive/internal/engine/text"
)

// Escapes are used for non-ASCII content so the byte counts under test
// are unambiguous: é is precomposed (2 bytes), "é" is a
// combining sequence (3 bytes).

func TestNextGraphemeLength(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		column int
		want   int
	}{
		{"ascii", "abc", 1, 1},
		{"end of line", "abc", 4, 0},
		{"past end", "abc", 9, 0},
		{"empty line", "", 1, 0},
		{"two-byte rune", "héllo", 2, 2},
		{"combining sequence", "éx", 1, 3},
		{"emoji zwj sequence", "a\U0001F469‍\U0001F4bbb", 2, 11},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NextGraphemeLength(tt.line, tt.column); got != tt.want {
				t.Errorf("NextGraphemeLength(%q, %d) = %d, want %d", tt.line, tt.column, got, tt.want)
			}
		})
	}
}

func TestPrevGraphemeLength(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		column int
		want   int
	}{
		{"ascii", "abc", 2, 1},
		{"start of line", "abc", 1, 0},
		{"combining sequence", "xé", 5, 3},
		{"two-byte rune", "hé", 4, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PrevGraphemeLength(tt.line, tt.column); got != tt.want {
				t.Errorf("PrevGraphemeLength(%q, %d) = %d, want %d", tt.line, tt.column, got, tt.want)
			}
		})
	}
}

func TestSnapToGraphemeBoundary(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		column int
		want   int
	}{
		{"boundary stays", "abc", 2, 2},
		{"before start clamps", "abc", 0, 1},
		{"past end clamps", "abc", 10, 4},
		{"inside rune snaps left", "hé", 3, 2},
		{"inside combining sequence snaps left", "éx", 2, 1},
		{"after combining sequence stays", "éx", 4, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SnapToGraphemeBoundary(tt.line, tt.column); got != tt.want {
				t.Errorf("SnapToGraphemeBoundary(%q, %d) = %d, want %d", tt.line, tt.column, got, tt.want)
			}
		})
	}
}

func TestNextPrevPosition(t *testing.T) {
	m := NewLineModel("ab\ncd")

	if got := NextPosition(m, text.NewPosition(1, 2)); !got.Equals(text.NewPosition(1, 3)) {
		t.Errorf("next within line = %s", got)
	}
	if got := NextPosition(m, text.NewPosition(1, 3)); !got.Equals(text.NewPosition(2, 1)) {
		t.Errorf("next at end of line should wrap, got %s", got)
	}
	if got := NextPosition(m, text.NewPosition(2, 3)); !got.Equals(text.NewPosition(2, 3)) {
		t.Errorf("next at document end should stay, got %s", got)
	}

	if got := PrevPosition(m, text.NewPosition(2, 2)); !got.Equals(text.NewPosition(2, 1)) {
		t.Errorf("prev within line = %s", got)
	}
	if got := PrevPosition(m, text.NewPosition(2, 1)); !got.Equals(text.NewPosition(1, 3)) {
		t.Errorf("prev at column 1 should wrap to previous line end, got %s", got)
	}
	if got := PrevPosition(m, text.NewPosition(1, 1)); !got.Equals(text.NewPosition(1, 1)) {
		t.Errorf("prev at document start should stay, got %s", got)
	}
}
