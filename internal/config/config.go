package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"iconbundle/internal/css"
	"iconbundle/internal/domain"
)

// DefaultOutput is where the bundle lands when the config does not say.
const DefaultOutput = "dist/iconbundle.css"

// Emission vocabulary, re-exported from the emitter for config readers.
const (
	DefaultSelector  = css.DefaultSelector
	FormatExpanded   = css.FormatExpanded
	FormatCompressed = css.FormatCompressed
)

// SVGDir declares a directory of raw SVG files to import.
type SVGDir struct {
	Dir      string `json:"dir" toml:"dir"`
	Prefix   string `json:"prefix" toml:"prefix"`
	Monotone bool   `json:"monotone,omitempty" toml:"monotone"`
}

// JSONEntry declares an icon-set file, optionally filtered to Icons.
// In JSON config files the entry may be a bare path string.
type JSONEntry struct {
	Source string   `toml:"source"`
	Icons  []string `toml:"icons"`
}

// UnmarshalJSON accepts either "path/to/set.json" or
// {"source": "...", "icons": [...]}.
func (e *JSONEntry) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*e = JSONEntry{Source: s}
		return nil
	}
	var p struct {
		Source string   `json:"source"`
		Icons  []string `json:"icons"`
	}
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*e = JSONEntry{Source: p.Source, Icons: p.Icons}
	return nil
}

// MarshalJSON mirrors UnmarshalJSON, emitting the compact string form
// when no filter is present.
func (e JSONEntry) MarshalJSON() ([]byte, error) {
	if len(e.Icons) == 0 {
		return json.Marshal(e.Source)
	}
	return json.Marshal(struct {
		Source string   `json:"source"`
		Icons  []string `json:"icons"`
	}{e.Source, e.Icons})
}

// Config is the declarative description of one bundle run.
type Config struct {
	Output      string      `json:"output,omitempty" toml:"output"`
	Selector    string      `json:"selector,omitempty" toml:"selector"`
	Format      string      `json:"format,omitempty" toml:"format"`
	Fingerprint bool        `json:"fingerprint,omitempty" toml:"fingerprint"`
	SVG         []SVGDir    `json:"svg,omitempty" toml:"svg"`
	Icons       []string    `json:"icons,omitempty" toml:"icons"`
	JSON        []JSONEntry `json:"json,omitempty" toml:"json"`
	Builtin     []string    `json:"builtin,omitempty" toml:"builtin"`
}

// Default returns a config with emission defaults filled in and no sources.
func Default() Config {
	return Config{
		Output:   DefaultOutput,
		Selector: DefaultSelector,
		Format:   FormatExpanded,
	}
}

// Load reads a bundle file (JSON or TOML by extension), applies defaults,
// rebases relative paths against the file's directory and validates the
// result.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	default:
		if err := json.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	cfg.applyDefaults()
	cfg.rebase(filepath.Dir(path))
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Output == "" {
		c.Output = DefaultOutput
	}
	if c.Selector == "" {
		c.Selector = DefaultSelector
	}
	if c.Format == "" {
		c.Format = FormatExpanded
	}
}

// rebase makes source and output paths relative to dir so a bundle file
// behaves the same regardless of the working directory it is run from.
func (c *Config) rebase(dir string) {
	if dir == "" || dir == "." {
		return
	}
	c.Output = rebasePath(dir, c.Output)
	for i := range c.SVG {
		c.SVG[i].Dir = rebasePath(dir, c.SVG[i].Dir)
	}
	for i := range c.JSON {
		c.JSON[i].Source = rebasePath(dir, c.JSON[i].Source)
	}
}

func rebasePath(dir, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}

// Validate checks emission options and source declarations. Bare icon
// references are not validated here: malformed references are skipped
// during resolution, not rejected up front.
func (c Config) Validate() error {
	switch c.Format {
	case FormatExpanded, FormatCompressed:
	default:
		return fmt.Errorf("unknown format %q", c.Format)
	}
	if !strings.Contains(c.Selector, "{name}") {
		return fmt.Errorf("selector template %q must contain {name}", c.Selector)
	}
	if c.Output == "" {
		return fmt.Errorf("output path is empty")
	}
	for _, s := range c.SVG {
		if s.Dir == "" {
			return fmt.Errorf("svg source with empty dir")
		}
		if !domain.ValidName(s.Prefix) {
			return fmt.Errorf("svg source %s: invalid prefix %q", s.Dir, s.Prefix)
		}
	}
	for _, j := range c.JSON {
		if j.Source == "" {
			return fmt.Errorf("json source with empty path")
		}
	}
	for _, b := range c.Builtin {
		if !domain.ValidName(b) {
			return fmt.Errorf("invalid builtin collection name %q", b)
		}
	}
	return nil
}
