// Package main is a command-line driver for the cursive editing core.
// It loads a document, places one or more cursors, applies a deletion
// operation, and prints the result. It exists for manual testing and
// scripted experiments against the engine.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/cursive-editor/cursive/internal/config"
	"github.com/cursive-editor/cursive/internal/engine"
	"github.com/cursive-editor/cursive/internal/engine/text"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		configPath  string
		cursorSpec  string
		op          string
		count       int
		logLevel    string
		showVersion bool
	)

	flag.StringVar(&configPath, "config", "", "Path to configuration file")
	flag.StringVar(&cursorSpec, "cursors", "1:1", "Cursor positions as line:col[,line:col...]")
	flag.StringVar(&op, "op", "delete-left", "Operation: delete-left, delete-right, cut")
	flag.IntVar(&count, "count", 1, "Number of times to apply the operation")
	flag.StringVar(&logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "cursive - multi-cursor editing core driver\n\n")
		fmt.Fprintf(os.Stderr, "Usage: cursive [options] [file]\n\n")
		fmt.Fprintf(os.Stderr, "Reads the file (or stdin), applies the operation at each cursor,\n")
		fmt.Fprintf(os.Stderr, "and writes the resulting document to stdout.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if showVersion {
		fmt.Printf("cursive %s (%s)\n", version, commit)
		return 0
	}

	level, err := zerolog.ParseLevel(logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid log level %q\n", logLevel)
		return 1
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: load config: %v\n", err)
		return 1
	}

	content, err := readInput(flag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	selections, err := parseCursors(cursorSpec)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	eng := engine.New(
		engine.WithContent(content),
		engine.WithConfig(cfg.Cursor),
		engine.WithLogger(log),
	)
	defer eng.Dispose()
	eng.SetSelections(selections)

	for i := 0; i < count; i++ {
		var err error
		switch op {
		case "delete-left":
			_, err = eng.DeleteLeft()
		case "delete-right":
			_, err = eng.DeleteRight()
		case "cut":
			_, err = eng.Cut()
		default:
			fmt.Fprintf(os.Stderr, "Error: unknown operation %q\n", op)
			return 1
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %s: %v\n", op, err)
			return 1
		}
	}

	fmt.Print(eng.Value())
	for _, sel := range eng.Selections() {
		fmt.Fprintf(os.Stderr, "cursor %s\n", sel)
	}
	return 0
}

func readInput(args []string) (string, error) {
	if len(args) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("read %s: %w", args[0], err)
	}
	return string(data), nil
}

// parseCursors parses "line:col[,line:col...]" into caret selections.
func parseCursors(spec string) ([]text.Selection, error) {
	parts := strings.Split(spec, ",")
	selections := make([]text.Selection, 0, len(parts))
	for _, part := range parts {
		lc := strings.SplitN(strings.TrimSpace(part), ":", 2)
		if len(lc) != 2 {
			return nil, fmt.Errorf("invalid cursor %q (want line:col)", part)
		}
		line, err := strconv.Atoi(lc[0])
		if err != nil {
			return nil, fmt.Errorf("invalid cursor line %q", lc[0])
		}
		col, err := strconv.Atoi(lc[1])
		if err != nil {
			return nil, fmt.Errorf("invalid cursor column %q", lc[1])
		}
		selections = append(selections, text.CaretSelection(text.NewPosition(line, col)))
	}
	return selections, nil
}
