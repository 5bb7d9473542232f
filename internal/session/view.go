// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package session owns the conversation and game state of one player.
package session

import (
	"context"

	"github.com/jeranaias/wordguess-tui/internal/model"
)

// =============================================================================
// VIEW
// =============================================================================

// View is the surface a Session draws on. Calls arrive in the order the
// session makes them, possibly from a network goroutine; implementations
// hand them to their own UI loop and must not block for long.
type View interface {
	// AppendMessage shows a new transcript entry and scrolls to it.
	AppendMessage(msg model.Message)

	// UpdateMessage replaces the content of an entry already shown.
	UpdateMessage(msg model.Message)

	// ClearMessages empties the visible transcript.
	ClearMessages()

	// ClearInput empties the guess input.
	ClearInput()

	// SetPhase swaps between setup and active-game controls.
	SetPhase(phase model.Phase)

	// SetStartBusy toggles the start control between its idle and busy labels.
	SetStartBusy(busy bool)

	// Alert shows a notice the user has to acknowledge.
	Alert(text string)
}

// NopView discards everything.
type NopView struct{}

func (NopView) AppendMessage(model.Message) {}
func (NopView) UpdateMessage(model.Message) {}
func (NopView) ClearMessages()              {}
func (NopView) ClearInput()                 {}
func (NopView) SetPhase(model.Phase)        {}
func (NopView) SetStartBusy(bool)           {}
func (NopView) Alert(string)                {}

// =============================================================================
// CONFIRMER
// =============================================================================

// Confirmer asks the user a yes/no question and waits for the answer.
// A cancelled context counts as no.
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) bool
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(ctx context.Context, prompt string) bool

// Confirm calls f.
func (f ConfirmFunc) Confirm(ctx context.Context, prompt string) bool {
	return f(ctx, prompt)
}
