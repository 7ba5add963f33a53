package deleteops

import (
	"github.com/cursive-editor/cursive/internal/engine/doc"
	"github.com/cursive-editor/cursive/internal/engine/text"
)

// OperationKind identifies the kind of the previous edit operation.
// Repeated deletes in the same direction group into one undo entry;
// a change of kind starts a fresh undo boundary.
type OperationKind uint8

const (
	// KindOther is any operation that is not a directional delete.
	KindOther OperationKind = iota
	// KindDeletingLeft is a backward delete (backspace).
	KindDeletingLeft
	// KindDeletingRight is a forward delete.
	KindDeletingRight
)

// String returns a string representation of the kind.
func (k OperationKind) String() string {
	switch k {
	case KindDeletingLeft:
		return "deletingLeft"
	case KindDeletingRight:
		return "deletingRight"
	default:
		return "other"
	}
}

// ReplaceCommand replaces a document range with text. Delete
// operations produce commands with empty replacement text. A nil
// command in a per-cursor slice means that cursor contributes no edit.
type ReplaceCommand struct {
	Range text.Range
	Text  string
}

// Edit converts the command into a document edit.
func (c *ReplaceCommand) Edit() doc.Edit {
	return doc.Edit{Range: c.Range, Text: c.Text}
}

// Result is a computed batch edit: one optional command per cursor
// plus undo-grouping hints for the edit-application layer.
type Result struct {
	Kind     OperationKind
	Commands []*ReplaceCommand

	// ShouldPushStackElementBefore asks for a fresh undo boundary
	// before applying the commands.
	ShouldPushStackElementBefore bool

	// ShouldPushStackElementAfter asks for a fresh undo boundary
	// after applying the commands.
	ShouldPushStackElementAfter bool
}
