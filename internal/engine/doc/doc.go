// Package doc defines the narrow document-accessor contract the
// cursor engine consumes, plus LineModel, an in-memory reference
// implementation used by the session layer and by tests.
//
// The contract deliberately excludes the storage representation: the
// engine only needs line content, line bounds, clamping validation,
// and a tracked-range table. Tracked ranges are document-owned spans
// that the document adjusts as unrelated edits occur, per a
// stickiness policy; cursors hold only weak TrackedRangeID handles
// into the table.
//
// Columns are 1-based byte offsets into a line's content. Grapheme
// helpers (NextPosition, PrevPosition) step over whole grapheme
// clusters so combining sequences and surrogate-pair-encoded runes
// are treated as single editing units.
package doc
