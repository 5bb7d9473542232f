// wordguess - A terminal client for the semantic word-guessing game.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/wordguess-tui/internal/backend"
	"github.com/jeranaias/wordguess-tui/internal/cli"
	"github.com/jeranaias/wordguess-tui/internal/config"
	"github.com/jeranaias/wordguess-tui/internal/model"
	"github.com/jeranaias/wordguess-tui/internal/session"
	"github.com/jeranaias/wordguess-tui/internal/ui/chat"
	"github.com/jeranaias/wordguess-tui/internal/ui/styles"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func main() {
	flags := &Flags{}
	cmd := newCmd(flags)

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// =============================================================================
// STARTUP
// =============================================================================

// run loads the configuration and starts the full-screen or line-mode
// interface.
func run(ctx context.Context, flags *Flags) error {
	cfg, path, err := loadConfig(flags)
	if err != nil {
		return err
	}

	closeLog, err := setupLogging(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	client := backend.NewClientWithConfig(&backend.ClientConfig{BaseURL: cfg.Backend.URL})
	sessCfg := session.Config{
		Strategy:  session.ParseStrategy(cfg.Backend.Strategy),
		GameAware: cfg.Backend.GameAware,
	}
	difficulty, err := model.ParseDifficulty(cfg.Game.Difficulty)
	if err != nil {
		difficulty = model.DefaultDifficulty
	}

	log.Printf("STARTUP | version=%s url=%s strategy=%s config=%s", Version, client.BaseURL(), sessCfg.Strategy, path)

	if cfg.UI.Plain || !cli.Interactive() {
		return runPlain(ctx, cfg, client, sessCfg, difficulty)
	}
	return runTUI(ctx, cfg, path, flags, client, sessCfg, difficulty)
}

// runTUI starts the full-screen interface.
func runTUI(ctx context.Context, cfg *config.Config, path string, flags *Flags, client *backend.Client, sessCfg session.Config, difficulty model.Difficulty) error {
	theme := styles.NewThemeWithMode(cfg.UI.Theme)

	bridge := chat.NewBridge()
	s := session.New(client, bridge, bridge, sessCfg)
	m := chat.New(s, bridge, theme, chat.Options{
		Context:    ctx,
		Server:     client,
		Difficulty: difficulty,
	})

	p := tea.NewProgram(m, tea.WithAltScreen())
	bridge.Start(p.Send)
	defer bridge.Stop()

	// Reload the config file on change, keeping command-line overrides.
	if watcher, err := config.NewWatcher(path, config.DefaultDebounce, func(reloaded *config.Config) {
		flags.apply(reloaded)
		p.Send(chat.ConfigReloadedMsg{Config: reloaded})
	}); err != nil {
		log.Printf("CONFIG_WATCH_FAILED | path=%s error=%v", path, err)
	} else {
		if err := watcher.Watch(); err != nil {
			log.Printf("CONFIG_WATCH_FAILED | path=%s error=%v", path, err)
		}
		defer watcher.Close()
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running wordguess: %w", err)
	}
	return nil
}

// runPlain starts the line-mode interface.
func runPlain(ctx context.Context, cfg *config.Config, client *backend.Client, sessCfg session.Config, difficulty model.Difficulty) error {
	input := cli.NewChatCLI()
	defer input.Close()

	s := session.New(client, cli.NewPrinter(os.Stdout), cli.NewLineConfirmer(input), sessCfg)
	repl := cli.NewREPL(s, cli.Options{
		In:              input,
		Out:             os.Stdout,
		Difficulty:      difficulty,
		ServerURL:       client.BaseURL(),
		WordWrap:        cfg.UI.WordWrap,
		CatchInterrupts: true,
	})
	return repl.Run(ctx)
}

// =============================================================================
// CONFIGURATION
// =============================================================================

// configPath returns the file --config names, or the default location.
func configPath(flags *Flags) (string, error) {
	if flags.configPath != "" {
		return flags.configPath, nil
	}
	return config.ResolvePath()
}

// loadConfig reads the config file, applies overrides and validates the
// result. A missing default file means defaults; a missing --config file
// is an error.
func loadConfig(flags *Flags) (*config.Config, string, error) {
	path, err := configPath(flags)
	if err != nil {
		return nil, "", err
	}

	var cfg *config.Config
	if flags.configPath != "" {
		cfg, err = config.LoadFromPath(path)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, "", err
	}

	flags.apply(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, "", fmt.Errorf("invalid settings: %w", err)
	}
	return cfg, path, nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// setupLogging sends the standard logger to the log file with --debug and
// discards it otherwise; the terminal belongs to the interface.
func setupLogging(cfg *config.Config) (func(), error) {
	if !cfg.Log.Debug {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}

	path, err := cfg.LogPath()
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := tea.LogToFile(path, "wordguess")
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return func() { f.Close() }, nil
}
