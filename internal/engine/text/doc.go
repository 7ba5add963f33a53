// Package text provides the coordinate vocabulary shared by the
// editing engine: positions, ordered ranges, and direction-carrying
// selections.
//
// All coordinates are 1-based line/column pairs over the document
// buffer. Types in this package are immutable values; operations
// return new values rather than mutating in place, so they are safe to
// share across cursors and goroutines.
//
// Two coordinate spaces use the same vocabulary: document (buffer)
// space and view space. The types carry no marker of which space they
// belong to; the cursor package keeps the two apart structurally by
// storing one state per space.
package text
