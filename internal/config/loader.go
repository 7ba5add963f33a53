package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is the prefix of environment variables that override file
// configuration.
const EnvPrefix = "CURSIVE_"

// Config is the root of the configuration file.
type Config struct {
	Cursor  CursorConfig  `toml:"cursor" yaml:"cursor"`
	Logging LoggingConfig `toml:"logging" yaml:"logging"`
}

// LoggingConfig configures the session logger.
type LoggingConfig struct {
	// Level is the minimum level to emit: debug, info, warn, error.
	Level string `toml:"level" yaml:"level"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Cursor:  DefaultCursorConfig(),
		Logging: LoggingConfig{Level: "info"},
	}
}

// Load builds the effective configuration: defaults, overlaid with the
// file at path (if any), overlaid with CURSIVE_* environment
// variables. A missing file is not an error; an empty path skips the
// file layer entirely.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("reading config file %s: %w", path, err)
			}
		} else if err := unmarshal(path, data, cfg); err != nil {
			return nil, err
		}
	}

	applyEnv(cfg)
	return cfg, nil
}

func unmarshal(path string, data []byte, cfg *Config) error {
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("parsing %s: %w", path, err)
		}
	default:
		if err := toml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("parsing %s: %w", path, err)
		}
	}
	return nil
}

// applyEnv overlays CURSIVE_* environment variables onto cfg.
// Unparseable values are ignored rather than failing the load.
func applyEnv(cfg *Config) {
	if v, ok := lookupInt("TAB_SIZE"); ok && v > 0 {
		cfg.Cursor.TabSize = v
	}
	if v, ok := lookupInt("INDENT_SIZE"); ok && v > 0 {
		cfg.Cursor.IndentSize = v
	}
	if v, ok := lookupBool("USE_TAB_STOPS"); ok {
		cfg.Cursor.UseTabStops = v
	}
	if v, ok := lookupMode("AUTO_CLOSING_BRACKETS"); ok {
		cfg.Cursor.AutoClosingBrackets = v
	}
	if v, ok := lookupMode("AUTO_CLOSING_QUOTES"); ok {
		cfg.Cursor.AutoClosingQuotes = v
	}
	if v, ok := lookupMode("AUTO_CLOSING_DELETE"); ok {
		cfg.Cursor.AutoClosingDelete = v
	}
	if v, ok := lookupBool("MULTI_CURSOR_MERGE"); ok {
		cfg.Cursor.MultiCursorMergeOverlapping = v
	}
	if v, ok := lookupBool("EMPTY_SELECTION_CLIPBOARD"); ok {
		cfg.Cursor.EmptySelectionClipboard = v
	}
	if v, ok := os.LookupEnv(EnvPrefix + "LOG_LEVEL"); ok && v != "" {
		cfg.Logging.Level = v
	}
}

func lookupInt(name string) (int, bool) {
	v, ok := os.LookupEnv(EnvPrefix + name)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, false
	}
	return n, true
}

func lookupBool(name string) (bool, bool) {
	v, ok := os.LookupEnv(EnvPrefix + name)
	if !ok {
		return false, false
	}
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		return false, false
	}
	return b, true
}

func lookupMode(name string) (ClosingMode, bool) {
	v, ok := os.LookupEnv(EnvPrefix + name)
	if !ok {
		return "", false
	}
	switch m := ClosingMode(strings.TrimSpace(v)); m {
	case ClosingNever, ClosingAuto, ClosingAlways:
		return m, true
	}
	return "", false
}
