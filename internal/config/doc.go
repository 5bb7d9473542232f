// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for wordguess.
//
// # Configuration File
//
// The default location is ~/.wordguess/config.toml:
//
//	[backend]
//	url = "http://localhost:5000"
//	strategy = "streaming"
//	game_aware = true
//
//	[game]
//	difficulty = "hard"
//
//	[ui]
//	theme = "auto"
//
// # Hot Reload
//
// NewWatcher reloads the file on change so a running client picks up a new
// server URL or reply strategy for its next request.
package config
