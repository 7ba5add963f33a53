// Package engine ties the editing core together into a session: a
// document model, a view, a cursor collection, and the delete
// operations, driven through one atomic read-compute-apply cycle per
// gesture.
//
// Subpackages hold the parts: text (positions, ranges, selections),
// doc (document accessor contract and line-backed model), view
// (view-space conversion), cursor (dual-coordinate cursor state and
// the collection), and deleteops (delete, backspace, cut).
package engine
