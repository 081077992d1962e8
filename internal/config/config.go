// Package config loads and saves input-layer settings from a small
// JSON file. A missing file is not an error: callers get the defaults,
// matching how an editor treats an absent rc file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/willibrandon/termkey/internal/source"
	"github.com/willibrandon/termkey/internal/vt100"
)

// Config holds the tunables of the input layer.
type Config struct {
	// EscapeTimeout is how long the reader waits after a lone Escape
	// byte before force-resolving it as a standalone key press.
	EscapeTimeout time.Duration

	// Mouse enables recognition of mouse report sequences.
	Mouse bool

	// BracketedPaste enables accumulation of bracketed paste blocks.
	BracketedPaste bool

	// ReadChunkSize is the read buffer size in bytes for OS-backed
	// sources.
	ReadChunkSize int
}

// Default returns the settings used when no file overrides them.
func Default() Config {
	return Config{
		EscapeTimeout:  50 * time.Millisecond,
		Mouse:          true,
		BracketedPaste: true,
		ReadChunkSize:  1024,
	}
}

// Load reads the config file at path. A missing file yields the
// defaults and a nil error; a file that exists but cannot be read or
// parsed is an error.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if !gjson.ValidBytes(data) {
		return cfg, fmt.Errorf("parse config %s: invalid JSON", path)
	}

	if v := gjson.GetBytes(data, "escape_timeout_ms"); v.Exists() {
		cfg.EscapeTimeout = time.Duration(v.Int()) * time.Millisecond
	}
	if v := gjson.GetBytes(data, "mouse"); v.Exists() {
		cfg.Mouse = v.Bool()
	}
	if v := gjson.GetBytes(data, "bracketed_paste"); v.Exists() {
		cfg.BracketedPaste = v.Bool()
	}
	if v := gjson.GetBytes(data, "read_chunk_bytes"); v.Exists() {
		cfg.ReadChunkSize = int(v.Int())
	}
	return cfg, cfg.validate(path)
}

func (c Config) validate(path string) error {
	if c.EscapeTimeout < 0 {
		return fmt.Errorf("config %s: escape_timeout_ms is negative", path)
	}
	if c.ReadChunkSize < 0 {
		return fmt.Errorf("config %s: read_chunk_bytes is negative", path)
	}
	return nil
}

// Save writes the config as JSON at path, creating parent directories
// as needed.
func Save(path string, cfg Config) error {
	json := "{}"
	var err error
	if json, err = sjson.Set(json, "escape_timeout_ms", cfg.EscapeTimeout.Milliseconds()); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if json, err = sjson.Set(json, "mouse", cfg.Mouse); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if json, err = sjson.Set(json, "bracketed_paste", cfg.BracketedPaste); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if json, err = sjson.Set(json, "read_chunk_bytes", cfg.ReadChunkSize); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config dir: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(json+"\n"), 0o644); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	return nil
}

// ParserOptions converts the config into parser options.
func (c Config) ParserOptions() vt100.Options {
	return vt100.Options{
		Mouse:          c.Mouse,
		BracketedPaste: c.BracketedPaste,
	}
}

// SourceOptions converts the config into source construction options.
func (c Config) SourceOptions() source.Options {
	return source.Options{
		Parser:        c.ParserOptions(),
		ReadChunkSize: c.ReadChunkSize,
	}
}
