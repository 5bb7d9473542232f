// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package session owns the conversation and game state of one player.
package session

// User-facing text. The error strings are fixed so a failure always reads
// the same no matter what went wrong underneath.
const (
	WelcomeText = "Welcome to the Word Guessing Game! Try to guess my secret word!"

	ChatErrorText = "Error processing your guess."

	SeedRequiredText = "Please enter a seed word."
	StartedFormat    = "Game started! Seed word: %s, Difficulty: %s"
	StartHintText    = "Start guessing! I'll tell you how close you are to the secret word."
	StartErrorText   = "Failed to start game. Please try again."

	GiveUpPrompt    = "Are you sure you want to give up? The secret word will be revealed."
	NewWordText     = "A new secret word has been selected. Keep guessing!"
	GiveUpErrorText = "Failed to give up. Please try again."

	StartLabel     = "Start Game"
	StartBusyLabel = "Starting..."
)
