package engine

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/cursive-editor/cursive/internal/config"
	"github.com/cursive-editor/cursive/internal/engine/cursor"
	"github.com/cursive-editor/cursive/internal/engine/deleteops"
	"github.com/cursive-editor/cursive/internal/engine/doc"
	"github.com/cursive-editor/cursive/internal/engine/text"
	"github.com/cursive-editor/cursive/internal/engine/view"
)

// Re-export commonly used types for convenience.
type (
	// Position is a 1-based line/column document position.
	Position = text.Position

	// Range is an ordered span of positions.
	Range = text.Range

	// Selection is a direction-carrying range.
	Selection = text.Selection

	// Result is a computed batch edit with undo-grouping hints.
	Result = deleteops.Result
)

// Engine is an editing session: a document, a view, the editing
// configuration, and a cursor collection. Every operation runs as one
// atomic step against a consistent document snapshot: read selections,
// compute commands, apply the batched mutation, re-derive cursor
// state from tracked ranges, normalize.
//
// Engine is not safe for concurrent use; the editing core is
// single-threaded by design.
type Engine struct {
	model   *doc.LineModel
	idView  *view.IdentityView
	cfg     config.CursorConfig
	cursors *cursor.Collection

	prevKind   deleteops.OperationKind
	autoClosed []text.Range

	log         zerolog.Logger
	sessionID   string
	initContent string
}

// New creates an engine with the given options.
func New(opts ...Option) *Engine {
	e := &Engine{
		cfg: config.DefaultCursorConfig(),
		log: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.sessionID = uuid.NewString()
	e.model = doc.NewLineModel(e.initContent)
	e.idView = view.NewIdentityView(e.model)
	e.cursors = cursor.NewCollection(e.context())
	e.log = e.log.With().Str("session", e.sessionID).Logger()
	return e
}

// context builds the per-operation collaborator bundle. It is rebuilt
// on every call so a swapped model or view is never validated against
// stale accessors.
func (e *Engine) context() *cursor.Context {
	return cursor.NewContext(e.model, e.idView, e.idView, &e.cfg)
}

// Dispose releases all cursor tracked ranges.
func (e *Engine) Dispose() {
	e.cursors.Dispose(e.context())
}

// Value returns the current document content.
func (e *Engine) Value() string {
	return e.model.Value()
}

// Model returns the document model.
func (e *Engine) Model() *doc.LineModel {
	return e.model
}

// Config returns the active editing configuration.
func (e *Engine) Config() *config.CursorConfig {
	return &e.cfg
}

// SetConfig replaces the editing configuration, e.g. after a config
// file reload.
func (e *Engine) SetConfig(cfg config.CursorConfig) {
	e.cfg = cfg
}

// Selections returns every cursor's document-space selection, primary
// first.
func (e *Engine) Selections() []text.Selection {
	return e.cursors.Selections()
}

// ViewSelections returns every cursor's view-space selection.
func (e *Engine) ViewSelections() []text.Selection {
	return e.cursors.ViewSelections()
}

// Cursors returns the cursor collection.
func (e *Engine) Cursors() *cursor.Collection {
	return e.cursors
}

// SetSelections replaces all cursors with the given selections and
// merges any that collide. The first selection becomes the primary
// cursor.
func (e *Engine) SetSelections(selections []text.Selection) {
	ctx := e.context()
	e.cursors.SetStates(ctx, cursor.StatesFromModelSelections(selections))
	e.cursors.Normalize(ctx)
	e.prevKind = deleteops.KindOther
}

// AddCursor appends a secondary caret at p and merges collisions.
func (e *Engine) AddCursor(p text.Position) {
	selections := append(e.cursors.Selections(), text.CaretSelection(p))
	ctx := e.context()
	e.cursors.SetStates(ctx, cursor.StatesFromModelSelections(selections))
	e.cursors.Normalize(ctx)
}

// KillSecondaryCursors collapses the collection to the primary cursor.
func (e *Engine) KillSecondaryCursors() {
	e.cursors.KillSecondaryCursors(e.context())
}

// SetAutoClosedRanges records the delimiter ranges the typing layer
// auto-inserted since the last edit; pair-aware backward delete under
// the "auto" policy consults them. Any applied edit clears the set.
func (e *Engine) SetAutoClosedRanges(ranges []text.Range) {
	e.autoClosed = ranges
}

// DeleteLeft computes and applies a backward delete for every cursor.
func (e *Engine) DeleteLeft() (Result, error) {
	ctx := e.context()
	shouldPush, commands := deleteops.DeleteLeft(e.prevKind, &e.cfg, e.model, e.cursors.Selections(), e.autoClosed)
	result := Result{
		Kind:                         deleteops.KindDeletingLeft,
		Commands:                     commands,
		ShouldPushStackElementBefore: shouldPush,
	}
	if err := e.apply(ctx, result); err != nil {
		return Result{}, err
	}
	e.prevKind = deleteops.KindDeletingLeft
	return result, nil
}

// DeleteRight computes and applies a forward delete for every cursor.
func (e *Engine) DeleteRight() (Result, error) {
	ctx := e.context()
	shouldPush, commands := deleteops.DeleteRight(e.prevKind, e.model, e.cursors.Selections())
	result := Result{
		Kind:                         deleteops.KindDeletingRight,
		Commands:                     commands,
		ShouldPushStackElementBefore: shouldPush,
	}
	if err := e.apply(ctx, result); err != nil {
		return Result{}, err
	}
	e.prevKind = deleteops.KindDeletingRight
	return result, nil
}

// Cut computes and applies a cut for every cursor.
func (e *Engine) Cut() (Result, error) {
	ctx := e.context()
	result := deleteops.Cut(&e.cfg, e.model, e.cursors.Selections())
	if err := e.apply(ctx, result); err != nil {
		return Result{}, err
	}
	e.prevKind = deleteops.KindOther
	return result, nil
}

// apply executes a computed batch: selections are glued to the
// document through tracked ranges, the mutation lands as one batch,
// and cursors re-derive their state from the markers before merging
// collisions.
func (e *Engine) apply(ctx *cursor.Context, result Result) error {
	edits := make([]doc.Edit, 0, len(result.Commands))
	for _, cmd := range result.Commands {
		if cmd == nil {
			continue
		}
		edits = append(edits, cmd.Edit())
	}
	if len(edits) == 0 {
		e.log.Debug().Stringer("op", result.Kind).Msg("no edits to apply")
		return nil
	}

	e.cursors.StartTrackingSelections(ctx)
	err := e.model.ApplyEdits(edits)
	if err != nil {
		e.cursors.StopTrackingSelections(ctx)
		return err
	}
	selections := e.cursors.ReadSelectionsFromMarkers(ctx)
	e.cursors.StopTrackingSelections(ctx)

	e.cursors.SetStates(ctx, cursor.StatesFromModelSelections(selections))
	e.cursors.Normalize(ctx)
	e.autoClosed = nil

	e.log.Debug().
		Stringer("op", result.Kind).
		Int("edits", len(edits)).
		Int("cursors", e.cursors.Count()).
		Msg("applied batch")
	return nil
}
