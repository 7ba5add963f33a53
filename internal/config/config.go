package config

// ClosingMode controls an auto-closing behavior.
type ClosingMode string

const (
	// ClosingNever disables the behavior.
	ClosingNever ClosingMode = "never"
	// ClosingAuto enables the behavior only for pairs the editor
	// itself inserted.
	ClosingAuto ClosingMode = "auto"
	// ClosingAlways enables the behavior unconditionally.
	ClosingAlways ClosingMode = "always"
)

// IsEnabled returns true unless the mode is "never".
func (m ClosingMode) IsEnabled() bool {
	return m != ClosingNever
}

// AutoClosingPair is a matching open/close delimiter pair.
type AutoClosingPair struct {
	Open  string `toml:"open" yaml:"open"`
	Close string `toml:"close" yaml:"close"`
}

// CursorConfig is the editing configuration consumed by the cursor
// engine. Callers hand it to the engine by pointer for the duration of
// one operation; it is never cached across operations.
type CursorConfig struct {
	// TabSize is the visible width of a tab character.
	TabSize int `toml:"tabSize" yaml:"tabSize"`

	// IndentSize is the number of visible columns per indent level.
	IndentSize int `toml:"indentSize" yaml:"indentSize"`

	// UseTabStops makes backward deletion inside leading whitespace
	// remove a whole indent level at once.
	UseTabStops bool `toml:"useTabStops" yaml:"useTabStops"`

	// AutoClosingBrackets gates pair-aware behavior for brackets.
	AutoClosingBrackets ClosingMode `toml:"autoClosingBrackets" yaml:"autoClosingBrackets"`

	// AutoClosingQuotes gates pair-aware behavior for quotes.
	AutoClosingQuotes ClosingMode `toml:"autoClosingQuotes" yaml:"autoClosingQuotes"`

	// AutoClosingDelete gates pair-aware backward deletion. "auto"
	// restricts it to pairs the editor inserted since the last edit.
	AutoClosingDelete ClosingMode `toml:"autoClosingDelete" yaml:"autoClosingDelete"`

	// AutoClosingPairs is the delimiter pair table.
	AutoClosingPairs []AutoClosingPair `toml:"autoClosingPairs" yaml:"autoClosingPairs"`

	// MultiCursorMergeOverlapping merges cursors that collide after an
	// edit or movement.
	MultiCursorMergeOverlapping bool `toml:"multiCursorMergeOverlapping" yaml:"multiCursorMergeOverlapping"`

	// EmptySelectionClipboard makes cut with an empty selection
	// operate on the whole line.
	EmptySelectionClipboard bool `toml:"emptySelectionClipboard" yaml:"emptySelectionClipboard"`
}

// DefaultCursorConfig returns the default editing configuration.
func DefaultCursorConfig() CursorConfig {
	return CursorConfig{
		TabSize:             4,
		IndentSize:          4,
		UseTabStops:         true,
		AutoClosingBrackets: ClosingAuto,
		AutoClosingQuotes:   ClosingAuto,
		AutoClosingDelete:   ClosingAuto,
		AutoClosingPairs: []AutoClosingPair{
			{Open: "(", Close: ")"},
			{Open: "[", Close: "]"},
			{Open: "{", Close: "}"},
			{Open: "\"", Close: "\""},
			{Open: "'", Close: "'"},
			{Open: "`", Close: "`"},
		},
		MultiCursorMergeOverlapping: true,
		EmptySelectionClipboard:     true,
	}
}

// PairsForOpen returns the candidate pairs whose opening delimiter is
// open, or nil if open is not a configured opener.
func (c *CursorConfig) PairsForOpen(open string) []AutoClosingPair {
	var pairs []AutoClosingPair
	for _, p := range c.AutoClosingPairs {
		if p.Open == open {
			pairs = append(pairs, p)
		}
	}
	return pairs
}

// IsQuote reports whether the delimiter is a quote character. Quotes
// are gated by AutoClosingQuotes rather than AutoClosingBrackets.
func IsQuote(delimiter string) bool {
	switch delimiter {
	case "'", "\"", "`":
		return true
	}
	return false
}
