// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for wordguess.
//
// Supports both TOML and JSON configuration formats, with defaults and
// validation. Flag and environment overrides are layered on top by the
// command line.
//
// Configuration file locations (in order of precedence):
//   - ~/.wordguess/config.toml
//   - ~/.wordguess/config.json
//   - Built-in defaults
package config

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/jeranaias/wordguess-tui/internal/util"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete wordguess configuration.
type Config struct {
	Version string `toml:"version" json:"version"`

	Backend BackendConfig `toml:"backend" json:"backend"`
	Game    GameConfig    `toml:"game" json:"game"`
	UI      UIConfig      `toml:"ui" json:"ui"`
	Log     LogConfig     `toml:"log" json:"log"`
}

// Reply strategies.
const (
	StrategyBuffered  = "buffered"
	StrategyStreaming = "streaming"
)

// BackendConfig describes the game server.
type BackendConfig struct {
	// URL is the server base URL
	URL string `toml:"url" json:"url"`
	// Strategy is how /chat replies are read: "buffered" or "streaming"
	Strategy string `toml:"strategy" json:"strategy"`
	// GameAware sends seedWord and difficulty with every guess
	GameAware bool `toml:"game_aware" json:"game_aware"`
}

// GameConfig holds defaults for new games.
type GameConfig struct {
	// Difficulty preselected in the setup controls
	Difficulty string `toml:"difficulty" json:"difficulty"`
}

// UIConfig contains UI configuration.
type UIConfig struct {
	// Theme is the UI theme: "dark", "light", "auto"
	Theme string `toml:"theme" json:"theme"`
	// Plain forces the line-mode interface even on a terminal
	Plain bool `toml:"plain" json:"plain"`
	// WordWrap is the column limit for rendered help text
	WordWrap int `toml:"word_wrap" json:"word_wrap"`
}

// LogConfig controls diagnostic logging.
type LogConfig struct {
	// Debug writes diagnostics to File
	Debug bool `toml:"debug" json:"debug"`
	// File is the log path; relative paths are under the config directory
	File string `toml:"file" json:"file"`
}

// =============================================================================
// DEFAULT CONFIGURATION
// =============================================================================

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Version: "1",
		Backend: BackendConfig{
			URL:       "http://localhost:5000",
			Strategy:  StrategyBuffered,
			GameAware: true,
		},
		Game: GameConfig{
			Difficulty: "medium",
		},
		UI: UIConfig{
			Theme:    "auto",
			WordWrap: 80,
		},
		Log: LogConfig{
			File: "debug.log",
		},
	}
}

// =============================================================================
// CONFIG PATH HELPERS
// =============================================================================

// ConfigDir returns the wordguess configuration directory path.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".wordguess"), nil
}

// ConfigPathTOML returns the path to the TOML config file.
func ConfigPathTOML() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// ConfigPathJSON returns the path to the JSON config file.
func ConfigPathJSON() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// ResolvePath returns the file Load would read: the TOML file if it exists,
// else the JSON file if it exists, else the TOML path.
func ResolvePath() (string, error) {
	tomlPath, err := ConfigPathTOML()
	if err != nil {
		return "", err
	}
	if _, err := os.Stat(tomlPath); err == nil {
		return tomlPath, nil
	}
	jsonPath, err := ConfigPathJSON()
	if err != nil {
		return "", err
	}
	if _, err := os.Stat(jsonPath); err == nil {
		return jsonPath, nil
	}
	return tomlPath, nil
}

// LogPath resolves the debug log location.
func (c *Config) LogPath() (string, error) {
	if filepath.IsAbs(c.Log.File) {
		return c.Log.File, nil
	}
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, c.Log.File), nil
}

// =============================================================================
// LOAD FUNCTIONS
// =============================================================================

// Load loads configuration from the default location, falling back to
// defaults when no file exists.
func Load() (*Config, error) {
	path, err := ResolvePath()
	if err != nil {
		return Default(), nil
	}
	if _, statErr := os.Stat(path); statErr != nil {
		return Default(), nil
	}
	return LoadFromPath(path)
}

// LoadFromPath loads configuration from a specific file path with full
// validation. The format is chosen by extension; anything but .json is TOML.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()

	if strings.HasSuffix(path, ".json") {
		if err := LoadJSON(cfg, path); err != nil {
			return nil, fmt.Errorf("failed to load JSON config from %s: %w", path, err)
		}
	} else {
		if err := LoadTOML(cfg, path); err != nil {
			return nil, fmt.Errorf("failed to load TOML config from %s: %w", path, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// LoadTOML loads configuration from a TOML file over cfg.
func LoadTOML(cfg *Config, path string) error {
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return fmt.Errorf("failed to decode TOML file: %w", err)
	}
	fillDefaults(cfg)
	return nil
}

// LoadJSON loads configuration from a JSON file over cfg.
func LoadJSON(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read JSON file: %w", err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to decode JSON file: %w", err)
	}
	fillDefaults(cfg)
	return nil
}

// fillDefaults fills in any missing values with defaults.
func fillDefaults(cfg *Config) {
	defaults := Default()

	if cfg.Version == "" {
		cfg.Version = defaults.Version
	}
	if cfg.Backend.URL == "" {
		cfg.Backend.URL = defaults.Backend.URL
	}
	if cfg.Backend.Strategy == "" {
		cfg.Backend.Strategy = defaults.Backend.Strategy
	}
	cfg.Backend.Strategy = strings.ToLower(cfg.Backend.Strategy)
	if cfg.Game.Difficulty == "" {
		cfg.Game.Difficulty = defaults.Game.Difficulty
	}
	cfg.Game.Difficulty = strings.ToLower(cfg.Game.Difficulty)
	if cfg.UI.Theme == "" {
		cfg.UI.Theme = defaults.UI.Theme
	}
	if cfg.UI.WordWrap == 0 {
		cfg.UI.WordWrap = defaults.UI.WordWrap
	}
	if cfg.Log.File == "" {
		cfg.Log.File = defaults.Log.File
	}
}

// =============================================================================
// SAVE FUNCTIONS
// =============================================================================

// SaveTOML writes the configuration as TOML, atomically.
func SaveTOML(cfg *Config, path string) error {
	var buf strings.Builder
	buf.WriteString("# wordguess configuration file\n\n")
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := util.AtomicWriteFile(path, []byte(buf.String()), 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// SaveJSON writes the configuration as JSON, atomically.
func SaveJSON(cfg *Config, path string) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := util.AtomicWriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// =============================================================================
// VALIDATION
// =============================================================================

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateErrors is a collection of validation errors.
type ValidateErrors []ValidationError

func (e ValidateErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

// Validate validates the configuration and returns any errors.
func (c *Config) Validate() error {
	var errs ValidateErrors

	if u, err := url.Parse(c.Backend.URL); err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		errs = append(errs, ValidationError{
			Field:   "backend.url",
			Message: fmt.Sprintf("invalid URL '%s', must be an http or https URL with a host", c.Backend.URL),
		})
	}

	switch c.Backend.Strategy {
	case StrategyBuffered, StrategyStreaming:
	default:
		errs = append(errs, ValidationError{
			Field:   "backend.strategy",
			Message: fmt.Sprintf("invalid strategy '%s', must be one of: buffered, streaming", c.Backend.Strategy),
		})
	}

	switch c.Game.Difficulty {
	case "easy", "medium", "hard":
	default:
		errs = append(errs, ValidationError{
			Field:   "game.difficulty",
			Message: fmt.Sprintf("invalid difficulty '%s', must be one of: easy, medium, hard", c.Game.Difficulty),
		})
	}

	switch strings.ToLower(c.UI.Theme) {
	case "auto", "dark", "light":
	default:
		errs = append(errs, ValidationError{
			Field:   "ui.theme",
			Message: fmt.Sprintf("invalid theme '%s', must be one of: auto, dark, light", c.UI.Theme),
		})
	}

	if c.UI.WordWrap < 20 || c.UI.WordWrap > 400 {
		errs = append(errs, ValidationError{
			Field:   "ui.word_wrap",
			Message: fmt.Sprintf("word_wrap %d out of range (20-400)", c.UI.WordWrap),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// =============================================================================
// HELPERS
// =============================================================================

// String returns the configuration as indented JSON for debugging.
func (c *Config) String() string {
	data, _ := json.MarshalIndent(c, "", "  ")
	return string(data)
}
