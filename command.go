// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/jeranaias/wordguess-tui/internal/config"
)

// =============================================================================
// FLAGS
// =============================================================================

// Flags holds command-line overrides. A flag only overrides the config
// file when it was given on the command line or through the environment.
type Flags struct {
	configPath string
	url        string
	stream     bool
	difficulty string
	theme      string
	plain      bool
	debug      bool
	gameAware  bool

	fs *pflag.FlagSet
}

// apply copies every set flag into cfg.
func (f *Flags) apply(cfg *config.Config) {
	if f.fs == nil {
		return
	}
	if f.fs.Changed("url") {
		cfg.Backend.URL = f.url
	}
	if f.fs.Changed("stream") {
		cfg.Backend.Strategy = config.StrategyBuffered
		if f.stream {
			cfg.Backend.Strategy = config.StrategyStreaming
		}
	}
	if f.fs.Changed("game-aware") {
		cfg.Backend.GameAware = f.gameAware
	}
	if f.fs.Changed("difficulty") {
		cfg.Game.Difficulty = strings.ToLower(f.difficulty)
	}
	if f.fs.Changed("theme") {
		cfg.UI.Theme = f.theme
	}
	if f.fs.Changed("plain") {
		cfg.UI.Plain = f.plain
	}
	if f.fs.Changed("debug") {
		cfg.Log.Debug = f.debug
	}
}

// =============================================================================
// COMMANDS
// =============================================================================

func newCmd(flags *Flags) *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("WORDGUESS")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:   "wordguess",
		Short: "Play the semantic word-guessing game from your terminal.",
		Long: "wordguess talks to a word-guessing game server. Start a game with a seed word,\n" +
			"then guess the secret word; every guess comes back with a similarity score\n" +
			"and a hint.",
		Args:    cobra.NoArgs,
		Version: Version,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), flags)
		},
	}

	fs := cmd.Flags()
	pfs := cmd.PersistentFlags()
	flags.fs = fs

	normalize := func(_ *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	}
	fs.SetNormalizeFunc(normalize)
	pfs.SetNormalizeFunc(normalize)

	pfs.StringVarP(&flags.configPath, "config", "c", "", "config file (default ~/.wordguess/config.toml) (env: WORDGUESS_CONFIG)")
	fs.StringVarP(&flags.url, "url", "u", "", "game server base URL (env: WORDGUESS_URL)")
	fs.BoolVarP(&flags.stream, "stream", "s", false, "show replies as they stream in (env: WORDGUESS_STREAM)")
	fs.StringVarP(&flags.difficulty, "difficulty", "d", "", "preselected difficulty: easy, medium or hard (env: WORDGUESS_DIFFICULTY)")
	fs.StringVar(&flags.theme, "theme", "", "color theme: auto, dark or light (env: WORDGUESS_THEME)")
	fs.BoolVar(&flags.plain, "plain", false, "use the line-mode interface (env: WORDGUESS_PLAIN)")
	fs.BoolVar(&flags.debug, "debug", false, "write diagnostics to the log file (env: WORDGUESS_DEBUG)")
	fs.BoolVar(&flags.gameAware, "game-aware", true, "send the seed word and difficulty with each guess (env: WORDGUESS_GAME_AWARE)")

	for _, set := range []*pflag.FlagSet{pfs, fs} {
		set.VisitAll(func(f *pflag.Flag) {
			_ = v.BindPFlag(f.Name, f)
			_ = v.BindEnv(f.Name)
			if !f.Changed && v.IsSet(f.Name) {
				_ = set.Set(f.Name, fmt.Sprintf("%v", v.Get(f.Name)))
			}
		})
	}

	cmd.AddCommand(newVersionCmd(), newConfigCmd(flags))

	cmd.CompletionOptions.HiddenDefaultCmd = true
	cmd.SetHelpCommand(&cobra.Command{Hidden: true})
	cmd.SetVersionTemplate("wordguess v{{.Version}}\n")

	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "wordguess v%s\n", Version)
			fmt.Fprintf(out, "  Commit: %s\n", GitCommit)
			fmt.Fprintf(out, "  Built:  %s\n", BuildDate)
		},
	}
}

func newConfigCmd(flags *Flags) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Show or create the configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := loadConfig(flags)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), cfg.String())
			return nil
		},
	}

	configCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print the configuration file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := configPath(flags)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	})

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := configPath(flags)
			if err != nil {
				return err
			}
			if !force && fileExists(path) {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}
			cfg := config.Default()
			if strings.HasSuffix(path, ".json") {
				err = config.SaveJSON(cfg, path)
			} else {
				err = config.SaveTOML(cfg, path)
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}
	initCmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing file")
	configCmd.AddCommand(initCmd)

	return configCmd
}
