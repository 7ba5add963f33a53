// Package cursor implements multi-cursor state management for text
// editing.
//
// The package handles:
//
//   - One cursor's dual state (document space and view space) via
//     Cursor and SingleCursorState
//   - Selection anchoring across concurrent edits via document
//     tracked ranges
//   - The ordered cursor set with primary/secondary lifecycle via
//     Collection
//   - Merging of cursors that collide after an edit via Normalize
//
// State model:
//
// Every cursor keeps a SingleCursorState per coordinate space. States
// are immutable values: mutations build a new state, and whichever
// side an operation supplies (model or view), the other is re-derived
// through the Context's convertor so the two can never drift apart.
//
// Collection invariants:
//
//   - The collection always holds at least one cursor.
//   - Index 0 is the primary cursor; it is repositioned, never
//     removed.
//   - After Normalize, no two cursors overlap (touching carets merge;
//     ranges merge only on strict overlap).
//
// All operations are synchronous and must run against a single
// consistent document/view snapshot; the package performs no locking
// of its own.
package cursor
