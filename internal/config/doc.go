// Package config holds the editing configuration consumed by the
// cursor engine and the machinery to load it.
//
// Configuration is layered: built-in defaults, then an optional TOML
// or YAML file, then CURSIVE_* environment variables. A Watcher can
// reload the file on change for live configuration updates.
//
// The package also owns the visible-column arithmetic (tab stops,
// wide-rune widths) because it depends only on TabSize and IndentSize
// and is needed by both cursor movement and deletion.
package config
