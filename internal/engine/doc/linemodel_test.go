package doc

import (
	"errors"
	"testing"

	"github.com/cursive-editor/cursive/internal/engine/text"
)

func TestNewLineModel(t *testing.T) {
	m := NewLineModel("")
	if m.LineCount() != 1 {
		t.Errorf("empty content should yield one line, got %d", m.LineCount())
	}
	if m.LineContent(1) != "" {
		t.Errorf("LineContent(1) = %q", m.LineContent(1))
	}

	m = NewLineModel("one\ntwo\n")
	if m.LineCount() != 3 {
		t.Errorf("trailing newline yields a final empty line, got %d lines", m.LineCount())
	}
	if m.Value() != "one\ntwo\n" {
		t.Errorf("Value round-trip = %q", m.Value())
	}
}

func TestValidatePosition(t *testing.T) {
	m := NewLineModel("short\nlonger line")

	tests := []struct {
		name string
		in   text.Position
		want text.Position
	}{
		{"valid stays", text.NewPosition(2, 3), text.NewPosition(2, 3)},
		{"line clamped low", text.NewPosition(0, 3), text.NewPosition(1, 3)},
		{"line clamped high", text.NewPosition(9, 2), text.NewPosition(2, 2)},
		{"column clamped low", text.NewPosition(1, 0), text.NewPosition(1, 1)},
		{"column clamped high", text.NewPosition(1, 99), text.NewPosition(1, 6)},
		{"max column valid", text.NewPosition(1, 6), text.NewPosition(1, 6)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.ValidatePosition(tt.in); !got.Equals(tt.want) {
				t.Errorf("ValidatePosition(%s) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}

func TestValidatePositionSnapsGrapheme(t *testing.T) {
	// One precomposed rune: "h" + 2-byte "é" + "x".
	m := NewLineModel("héx")
	got := m.ValidatePosition(text.NewPosition(1, 3))
	if !got.Equals(text.NewPosition(1, 2)) {
		t.Errorf("column inside a rune should snap left, got %s", got)
	}
}

func TestApplyEditsSingle(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		edit Edit
		want string
	}{
		{"delete within line", "hello", Edit{Range: text.NewRange(1, 2, 1, 4)}, "hlo"},
		{"insert at point", "hello", Edit{Range: text.CollapsedRange(text.NewPosition(1, 6)), Text: "!"}, "hello!"},
		{"replace across lines", "ab\ncd\nef", Edit{Range: text.NewRange(1, 2, 3, 1), Text: "-"}, "a-ef"},
		{"join lines", "ab\ncd", Edit{Range: text.NewRange(1, 3, 2, 1)}, "abcd"},
		{"insert newline", "abcd", Edit{Range: text.CollapsedRange(text.NewPosition(1, 3)), Text: "\n"}, "ab\ncd"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewLineModel(tt.doc)
			if err := m.ApplyEdits([]Edit{tt.edit}); err != nil {
				t.Fatalf("ApplyEdits: %v", err)
			}
			if m.Value() != tt.want {
				t.Errorf("Value = %q, want %q", m.Value(), tt.want)
			}
		})
	}
}

func TestApplyEditsBatchOrderIndependent(t *testing.T) {
	edits := []Edit{
		{Range: text.NewRange(1, 1, 1, 2)},
		{Range: text.NewRange(1, 3, 1, 4)},
		{Range: text.NewRange(2, 1, 2, 2)},
	}
	for name, batch := range map[string][]Edit{
		"ascending":  {edits[0], edits[1], edits[2]},
		"descending": {edits[2], edits[1], edits[0]},
	} {
		t.Run(name, func(t *testing.T) {
			m := NewLineModel("abcd\nefgh")
			if err := m.ApplyEdits(batch); err != nil {
				t.Fatalf("ApplyEdits: %v", err)
			}
			if m.Value() != "bd\nfgh" {
				t.Errorf("Value = %q, want %q", m.Value(), "bd\nfgh")
			}
		})
	}
}

func TestApplyEditsOverlapRejected(t *testing.T) {
	m := NewLineModel("abcdef")
	err := m.ApplyEdits([]Edit{
		{Range: text.NewRange(1, 1, 1, 4)},
		{Range: text.NewRange(1, 3, 1, 6)},
	})
	if !errors.Is(err, ErrEditsOverlap) {
		t.Fatalf("expected ErrEditsOverlap, got %v", err)
	}
	if m.Value() != "abcdef" {
		t.Error("a rejected batch must not modify the document")
	}
}

func TestApplyEditsTouchingAllowed(t *testing.T) {
	m := NewLineModel("abcdef")
	err := m.ApplyEdits([]Edit{
		{Range: text.NewRange(1, 1, 1, 3)},
		{Range: text.NewRange(1, 3, 1, 5)},
	})
	if err != nil {
		t.Fatalf("edits sharing an endpoint are disjoint: %v", err)
	}
	if m.Value() != "ef" {
		t.Errorf("Value = %q, want %q", m.Value(), "ef")
	}
}

func TestTrackedRangeLifecycle(t *testing.T) {
	m := NewLineModel("hello world")
	r := text.NewRange(1, 1, 1, 6)

	id := m.SetTrackedRange("", &r, NeverGrowsWhenTypingAtEdges)
	if id == "" {
		t.Fatal("registering a range should return an ID")
	}
	if got := m.TrackedRange(id); got == nil || !got.Equals(r) {
		t.Fatalf("TrackedRange = %v, want %s", got, r)
	}

	moved := text.NewRange(1, 7, 1, 12)
	if got := m.SetTrackedRange(id, &moved, NeverGrowsWhenTypingAtEdges); got != id {
		t.Errorf("moving a range keeps its ID, got %q", got)
	}
	if got := m.TrackedRange(id); !got.Equals(moved) {
		t.Errorf("TrackedRange after move = %s", got)
	}

	if got := m.SetTrackedRange(id, nil, NeverGrowsWhenTypingAtEdges); got != "" {
		t.Errorf("releasing a range returns the empty ID, got %q", got)
	}
	if m.TrackedRange(id) != nil {
		t.Error("released range should be unknown")
	}
}

func TestTrackedRangeAdjustsAcrossEdits(t *testing.T) {
	tests := []struct {
		name string
		edit Edit
		want text.Range
	}{
		{
			"insert before shifts right",
			Edit{Range: text.CollapsedRange(text.NewPosition(1, 1)), Text: "xx"},
			text.NewRange(1, 7, 1, 10),
		},
		{
			"delete before shifts left",
			Edit{Range: text.NewRange(1, 1, 1, 3)},
			text.NewRange(1, 3, 1, 6),
		},
		{
			"edit after leaves range alone",
			Edit{Range: text.CollapsedRange(text.NewPosition(1, 9)), Text: "xx"},
			text.NewRange(1, 5, 1, 8),
		},
		{
			"delete across start collapses to edit start",
			Edit{Range: text.NewRange(1, 3, 1, 6)},
			text.NewRange(1, 3, 1, 5),
		},
		{
			"newline before moves to next line",
			Edit{Range: text.CollapsedRange(text.NewPosition(1, 2)), Text: "\n"},
			text.NewRange(2, 4, 2, 7),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewLineModel("abcdefghij")
			r := text.NewRange(1, 5, 1, 8)
			id := m.SetTrackedRange("", &r, NeverGrowsWhenTypingAtEdges)
			if err := m.ApplyEdits([]Edit{tt.edit}); err != nil {
				t.Fatalf("ApplyEdits: %v", err)
			}
			if got := m.TrackedRange(id); !got.Equals(tt.want) {
				t.Errorf("TrackedRange = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestTrackedRangeStickiness(t *testing.T) {
	// Insert "xx" exactly at both edges of the range [5, 8).
	atStart := Edit{Range: text.CollapsedRange(text.NewPosition(1, 5)), Text: "xx"}
	atEnd := Edit{Range: text.CollapsedRange(text.NewPosition(1, 8)), Text: "xx"}

	tests := []struct {
		name       string
		stickiness TrackedRangeStickiness
		edit       Edit
		want       text.Range
	}{
		{"always grows at start", AlwaysGrowsWhenTypingAtEdges, atStart, text.NewRange(1, 5, 1, 10)},
		{"always grows at end", AlwaysGrowsWhenTypingAtEdges, atEnd, text.NewRange(1, 5, 1, 10)},
		{"never grows at start", NeverGrowsWhenTypingAtEdges, atStart, text.NewRange(1, 7, 1, 10)},
		{"never grows at end", NeverGrowsWhenTypingAtEdges, atEnd, text.NewRange(1, 5, 1, 8)},
		{"grows before at start", GrowsOnlyWhenTypingBefore, atStart, text.NewRange(1, 5, 1, 10)},
		{"grows before at end", GrowsOnlyWhenTypingBefore, atEnd, text.NewRange(1, 5, 1, 8)},
		{"grows after at start", GrowsOnlyWhenTypingAfter, atStart, text.NewRange(1, 7, 1, 10)},
		{"grows after at end", GrowsOnlyWhenTypingAfter, atEnd, text.NewRange(1, 5, 1, 10)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewLineModel("abcdefghij")
			r := text.NewRange(1, 5, 1, 8)
			id := m.SetTrackedRange("", &r, tt.stickiness)
			if err := m.ApplyEdits([]Edit{tt.edit}); err != nil {
				t.Fatalf("ApplyEdits: %v", err)
			}
			if got := m.TrackedRange(id); !got.Equals(tt.want) {
				t.Errorf("TrackedRange = %s, want %s", got, tt.want)
			}
		})
	}
}
