// Package deleteops computes the text-range edits produced by
// deletion gestures: forward delete, backward delete (tab-stop and
// auto-closing-pair aware), and cut.
//
// Every function is pure: given the previous operation kind, the
// editing configuration, a document accessor, and the current
// selections, it returns one optional ReplaceCommand per cursor plus
// undo-grouping hints. Nothing here mutates the document; applying
// the commands is the edit-application layer's job.
//
// A multi-cursor batch is all-or-nothing: there is no partial-success
// state, and the pair-aware delete decision applies to every cursor
// or none.
package deleteops
