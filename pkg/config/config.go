// Package config loads, validates and saves the sugoi YAML configuration.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"github.com/germanamz/sugoi/pkg/router"
	"github.com/germanamz/sugoi/pkg/texttools/baseconv"
	"github.com/germanamz/sugoi/pkg/texttools/digest"
	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in the working directory.
const FileName = "sugoi.yaml"

// Config is the top-level configuration.
type Config struct {
	StartRoute    string              `yaml:"start_route"`
	Language      string              `yaml:"language"`
	Theme         string              `yaml:"theme"`
	Log           LogConfig           `yaml:"log"`
	Base64        Base64Config        `yaml:"base64"`
	Digest        DigestConfig        `yaml:"digest"`
	BaseConverter BaseConverterConfig `yaml:"base_converter"`
	Regex         RegexConfig         `yaml:"regex"`
	SuddenDeath   SuddenDeathConfig   `yaml:"sudden_death"`
}

// LogConfig controls the slog file logger. An empty File disables logging.
type LogConfig struct {
	File  string `yaml:"file,omitempty"`
	Level string `yaml:"level"`
}

// Base64Config holds the variant a freshly mounted base64 view starts with.
type Base64Config struct {
	URLSafe bool `yaml:"url_safe"`
	Padded  bool `yaml:"padded"`
}

// DigestConfig lists the algorithms shown and the one highlighted.
type DigestConfig struct {
	Algorithms []string `yaml:"algorithms"`
	Chosen     string   `yaml:"chosen"`
}

// BaseConverterConfig holds the initial source and target bases.
type BaseConverterConfig struct {
	From int `yaml:"from"`
	To   int `yaml:"to"`
}

// RegexConfig controls the regex generator.
type RegexConfig struct {
	Samples int `yaml:"samples"` // strings produced in generate mode
}

// SuddenDeathConfig controls the sudden death generator.
type SuddenDeathConfig struct {
	DefaultText string `yaml:"default_text,omitempty"`
}

// Default returns the built-in configuration used when no file exists.
func Default() Config {
	algs := digest.DefaultAlgorithms()
	names := make([]string, len(algs))
	for i, a := range algs {
		names[i] = string(a)
	}

	return Config{
		StartRoute: "",
		Language:   "en",
		Theme:      "auto",
		Log:        LogConfig{Level: "info"},
		Base64:     Base64Config{Padded: true},
		Digest: DigestConfig{
			Algorithms: names,
			Chosen:     string(digest.SHA256),
		},
		BaseConverter: BaseConverterConfig{From: 10, To: 16},
		Regex:         RegexConfig{Samples: 5},
	}
}

// ResolvePath picks the config file: explicit path, then ./sugoi.yaml, then
// <user config dir>/sugoi/config.yaml. It returns "" when none exists and no
// explicit path was given.
func ResolvePath(explicit string) string {
	if explicit != "" {
		return explicit
	}

	if _, err := os.Stat(FileName); err == nil {
		return FileName
	}

	if dir, err := os.UserConfigDir(); err == nil {
		p := filepath.Join(dir, "sugoi", "config.yaml")
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}

	return ""
}

// DefaultPath is where `sugoi config` writes when no file exists yet.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return FileName
	}
	return filepath.Join(dir, "sugoi", "config.yaml")
}

// Load reads path over the defaults, expanding ${VAR} references first.
// An empty path yields Default().
func Load(path string) (Config, error) {
	return load(path, true)
}

// LoadRaw is Load without environment expansion, so that ${VAR} references
// survive a load/save round trip in the editor.
func LoadRaw(path string) (Config, error) {
	return load(path, false)
}

func load(path string, expand bool) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path) //nolint:gosec // path is caller-provided configuration
	if err != nil {
		return Config{}, fmt.Errorf("config: load: %w", err)
	}

	if commentedRoute.Match(data) {
		return Config{}, fmt.Errorf("config: parse %s: start_route: a value starting with '#' is read as a YAML comment; write the route name (e.g. digest) or quote it", path)
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if doc.Kind == 0 {
		return cfg, nil
	}

	// Expanding scalars after parsing keeps values such as "#/wc" intact.
	if expand {
		expandScalars(&doc)
	}

	if err := doc.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// commentedRoute matches an unquoted fragment, which YAML drops as a comment.
var commentedRoute = regexp.MustCompile(`(?m)^start_route:[ \t]+#`)

// expandScalars replaces ${VAR} references in every scalar value.
func expandScalars(n *yaml.Node) {
	if n.Kind == yaml.ScalarNode {
		n.Value = os.ExpandEnv(n.Value)
		return
	}
	for _, c := range n.Content {
		expandScalars(c)
	}
}

// Save writes cfg as YAML to path, creating parent directories.
func Save(cfg Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("config: create parent dir: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("config: marshal: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil { //nolint:gosec // config file, not secret
		return fmt.Errorf("config: write: %w", err)
	}

	return nil
}

// Languages are the supported UI languages.
var Languages = []string{"en", "ja"}

// Themes are the supported theme names.
var Themes = []string{"auto", "light", "dark"}

// Validate checks that every value is usable.
func (c Config) Validate() error {
	var errs []error

	if _, ok := router.Lookup(c.StartRoute); !ok {
		errs = append(errs, fmt.Errorf("config: start_route %q is not a known route", c.StartRoute))
	}
	if !slices.Contains(Languages, c.Language) {
		errs = append(errs, fmt.Errorf("config: language %q must be one of %s", c.Language, strings.Join(Languages, ", ")))
	}
	if !slices.Contains(Themes, c.Theme) {
		errs = append(errs, fmt.Errorf("config: theme %q must be one of %s", c.Theme, strings.Join(Themes, ", ")))
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		errs = append(errs, err)
	}

	if len(c.Digest.Algorithms) == 0 {
		errs = append(errs, errors.New("config: digest: at least one algorithm is required"))
	}
	for _, name := range c.Digest.Algorithms {
		if _, err := digest.Parse(name); err != nil {
			errs = append(errs, fmt.Errorf("config: digest: %w", err))
		}
	}
	if c.Digest.Chosen != "" {
		if _, err := digest.Parse(c.Digest.Chosen); err != nil {
			errs = append(errs, fmt.Errorf("config: digest: chosen: %w", err))
		}
	}

	for _, b := range []struct {
		name string
		base int
	}{{"from", c.BaseConverter.From}, {"to", c.BaseConverter.To}} {
		if b.base < baseconv.MinBase || b.base > baseconv.MaxBase {
			errs = append(errs, fmt.Errorf("config: base_converter: %s base %d out of range [%d, %d]",
				b.name, b.base, baseconv.MinBase, baseconv.MaxBase))
		}
	}

	if c.Regex.Samples < 1 || c.Regex.Samples > 100 {
		errs = append(errs, fmt.Errorf("config: regex: samples %d out of range [1, 100]", c.Regex.Samples))
	}

	return errors.Join(errs...)
}

// DigestAlgorithms returns the configured algorithms, skipping unknown names.
func (c Config) DigestAlgorithms() []digest.Algorithm {
	out := make([]digest.Algorithm, 0, len(c.Digest.Algorithms))
	for _, name := range c.Digest.Algorithms {
		if a, err := digest.Parse(name); err == nil {
			out = append(out, a)
		}
	}
	return out
}

// SlogLevel maps Level to a slog.Level. Empty means info.
func (l LogConfig) SlogLevel() (slog.Level, error) {
	switch strings.ToLower(l.Level) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("config: log: unknown level %q", l.Level)
	}
}
