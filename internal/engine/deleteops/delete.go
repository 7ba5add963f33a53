package deleteops

import (
	"sort"

	"github.com/cursive-editor/cursive/internal/config"
	"github.com/cursive-editor/cursive/internal/engine/doc"
	"github.com/cursive-editor/cursive/internal/engine/text"
)

// DeleteRight computes the forward-delete range for every selection.
// An empty selection deletes one grapheme-aware unit to the right; a
// caret at the true end of the document contributes no command. The
// returned flag asks for a fresh undo boundary; consecutive forward
// deletes group together unless a span crosses a line boundary.
func DeleteRight(prev OperationKind, model doc.Model, selections []text.Selection) (bool, []*ReplaceCommand) {
	commands := make([]*ReplaceCommand, len(selections))
	shouldPushStackElementBefore := prev != KindDeletingRight

	for i, sel := range selections {
		deleteRange := sel.Range()
		if deleteRange.IsEmpty() {
			pos := sel.Head
			deleteRange = text.FromPositions(pos, doc.NextPosition(model, pos))
		}
		if deleteRange.IsEmpty() {
			commands[i] = nil
			continue
		}
		if !deleteRange.IsSingleLine() {
			shouldPushStackElementBefore = true
		}
		commands[i] = &ReplaceCommand{Range: deleteRange}
	}
	return shouldPushStackElementBefore, commands
}

// IsAutoClosingPairDelete reports whether backspace should delete an
// auto-closing pair as a unit. The decision is all-or-nothing across
// cursors: every caret must sit exactly between a configured opening
// delimiter and its matching closer, gated by the independent bracket
// and quote settings. Under the "auto" policy the opening delimiter's
// position must additionally appear in autoClosed, the set of ranges
// the editor auto-inserted since the last edit.
func IsAutoClosingPairDelete(cfg *config.CursorConfig, model doc.Model, selections []text.Selection, autoClosed []text.Range) bool {
	if !cfg.AutoClosingBrackets.IsEnabled() && !cfg.AutoClosingQuotes.IsEnabled() {
		return false
	}
	if !cfg.AutoClosingDelete.IsEnabled() {
		return false
	}

	for _, sel := range selections {
		if !sel.IsEmpty() {
			return false
		}
		pos := sel.Head
		// A pair needs one character on each side of the caret.
		lineText := model.LineContent(pos.LineNumber)
		if pos.Column < 2 || pos.Column > len(lineText) {
			return false
		}
		before := lineText[pos.Column-2 : pos.Column-1]
		candidates := cfg.PairsForOpen(before)
		if len(candidates) == 0 {
			return false
		}
		if config.IsQuote(before) {
			if !cfg.AutoClosingQuotes.IsEnabled() {
				return false
			}
		} else {
			if !cfg.AutoClosingBrackets.IsEnabled() {
				return false
			}
		}
		after := lineText[pos.Column-1 : pos.Column]
		foundPair := false
		for _, candidate := range candidates {
			if candidate.Open == before && candidate.Close == after {
				foundPair = true
				break
			}
		}
		if !foundPair {
			return false
		}
		if cfg.AutoClosingDelete == config.ClosingAuto {
			beforePos := text.NewPosition(pos.LineNumber, pos.Column-1)
			foundAutoClosed := false
			for _, r := range autoClosed {
				if r.Start.Equals(beforePos) {
					foundAutoClosed = true
					break
				}
			}
			if !foundAutoClosed {
				return false
			}
		}
	}
	return true
}

// DeleteLeft computes the backward-delete range for every selection.
// When IsAutoClosingPairDelete holds, every caret deletes its
// surrounding pair in one span and a fresh undo boundary is started.
// Otherwise an empty selection deletes one indent level inside leading
// whitespace (with UseTabStops), one grapheme-aware unit within a
// line, or the joining newline at column 1; the true document start
// contributes no command.
func DeleteLeft(prev OperationKind, cfg *config.CursorConfig, model doc.Model, selections []text.Selection, autoClosed []text.Range) (bool, []*ReplaceCommand) {
	if IsAutoClosingPairDelete(cfg, model, selections, autoClosed) {
		commands := make([]*ReplaceCommand, len(selections))
		for i, sel := range selections {
			pos := sel.Head
			commands[i] = &ReplaceCommand{Range: text.NewRange(
				pos.LineNumber, pos.Column-1,
				pos.LineNumber, pos.Column+1,
			)}
		}
		return true, commands
	}

	commands := make([]*ReplaceCommand, len(selections))
	shouldPushStackElementBefore := prev != KindDeletingLeft

	for i, sel := range selections {
		deleteRange := deleteLeftRange(cfg, model, sel)
		if deleteRange.IsEmpty() {
			commands[i] = nil
			continue
		}
		if !deleteRange.IsSingleLine() {
			shouldPushStackElementBefore = true
		}
		commands[i] = &ReplaceCommand{Range: deleteRange}
	}
	return shouldPushStackElementBefore, commands
}

func deleteLeftRange(cfg *config.CursorConfig, model doc.Model, sel text.Selection) text.Range {
	if !sel.IsEmpty() {
		return sel.Range()
	}
	pos := sel.Head

	if cfg.UseTabStops && pos.Column > 1 {
		lineContent := model.LineContent(pos.LineNumber)
		if pos.Column <= config.LastIndentationColumn(lineContent) {
			// Inside leading whitespace: snap back to the previous
			// indent stop instead of deleting a single character.
			fromVisible := cfg.VisibleColumnFromColumn(lineContent, pos.Column)
			toVisible := cfg.PrevIndentTabStop(fromVisible)
			toColumn := cfg.ColumnFromVisibleColumn(lineContent, toVisible)
			return text.NewRange(pos.LineNumber, toColumn, pos.LineNumber, pos.Column)
		}
	}
	return text.FromPositions(doc.PrevPosition(model, pos), pos)
}

// Cut computes the delete ranges for a cut gesture. Non-empty
// selections delete as-is. With EmptySelectionClipboard, a caret cuts
// its whole line including the trailing newline (the leading newline
// on the document's last line; the bare content when the document has
// one line). Cut never groups with adjacent edits: it pushes an undo
// boundary on both sides.
func Cut(cfg *config.CursorConfig, model doc.Model, selections []text.Selection) Result {
	sorted := make([]text.Selection, len(selections))
	copy(sorted, selections)
	sort.SliceStable(sorted, func(i, j int) bool {
		return text.CompareUsingStarts(sorted[i].Range(), sorted[j].Range()) < 0
	})

	commands := make([]*ReplaceCommand, len(sorted))
	var prevLineCut *text.Range
	for i, sel := range sorted {
		if !sel.IsEmpty() {
			commands[i] = &ReplaceCommand{Range: sel.Range()}
			continue
		}
		if !cfg.EmptySelectionClipboard {
			commands[i] = nil
			continue
		}

		pos := sel.Head
		var deleteRange text.Range
		switch {
		case pos.LineNumber < model.LineCount():
			deleteRange = text.NewRange(pos.LineNumber, 1, pos.LineNumber+1, 1)
		case pos.LineNumber > 1:
			deleteRange = text.NewRange(
				pos.LineNumber-1, model.LineMaxColumn(pos.LineNumber-1),
				pos.LineNumber, model.LineMaxColumn(pos.LineNumber),
			)
		default:
			deleteRange = text.NewRange(pos.LineNumber, 1, pos.LineNumber, model.LineMaxColumn(pos.LineNumber))
		}
		// Carets on the same (or already-merged) line must not
		// double-delete its range.
		if deleteRange.IsEmpty() || (prevLineCut != nil && prevLineCut.Intersects(deleteRange)) {
			commands[i] = nil
			continue
		}
		commands[i] = &ReplaceCommand{Range: deleteRange}
		r := deleteRange
		prevLineCut = &r
	}

	return Result{
		Kind:                         KindOther,
		Commands:                     commands,
		ShouldPushStackElementBefore: true,
		ShouldPushStackElementAfter:  true,
	}
}
