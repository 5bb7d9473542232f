// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package session owns the conversation and game state of one player.
//
// A Session sits between a View (the TUI or the line-mode REPL) and the game
// server. It keeps two conversations: the history that goes to the server
// with every guess, and the transcript on screen, which also carries the
// informational bot messages the server never sees.
//
// # Key Types
//
//   - Session: the player's state and the five user operations
//   - View: what a front end implements to show the transcript and controls
//   - Confirmer: the yes/no prompt used before giving up
//
// # Usage
//
//	s := session.New(backend.NewClientWithConfig(nil), view, confirmer, session.DefaultConfig())
//	s.Welcome()
//	s.StartGame(ctx, "ocean", model.DifficultyEasy)
//	s.SendMessage(ctx, "water")
//	s.GiveUp(ctx)
//	s.ClearChat()
//
// # Failure Handling
//
// No operation returns an error or retries. A failed request is logged and
// replaced on screen by a fixed message; the guess that triggered it stays
// in the history.
package session
