// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the chat view component for the TUI.
//
// This file defines the Bubble Tea message types used by the chat screen.
// Most of them carry a session View call into the Update loop.
package chat

import (
	"github.com/jeranaias/wordguess-tui/internal/config"
	"github.com/jeranaias/wordguess-tui/internal/model"
)

// =============================================================================
// SESSION VIEW MESSAGES
// =============================================================================

// AppendMsg adds a transcript entry.
type AppendMsg struct {
	Message model.Message
}

// UpdateMsg rewrites a transcript entry already shown.
type UpdateMsg struct {
	Message model.Message
}

// ClearMessagesMsg empties the transcript.
type ClearMessagesMsg struct{}

// ClearInputMsg empties the guess input.
type ClearInputMsg struct{}

// PhaseMsg swaps the control set.
type PhaseMsg struct {
	Phase model.Phase
}

// StartBusyMsg toggles the start button label.
type StartBusyMsg struct {
	Busy bool
}

// AlertMsg opens a notice the user has to acknowledge.
type AlertMsg struct {
	Text string
}

// ConfirmRequestMsg opens a yes/no dialog. The answer goes to Reply, which
// must be buffered.
type ConfirmRequestMsg struct {
	Prompt string
	Reply  chan<- bool
}

// =============================================================================
// OPERATION MESSAGES
// =============================================================================

// Operation names carried by opDoneMsg.
const (
	opSend      = "send"
	opStartGame = "start_game"
	opGiveUp    = "give_up"
)

// opDoneMsg reports that a session operation returned.
type opDoneMsg struct {
	op string
}

// ConfigReloadedMsg carries a config file change into the Update loop.
type ConfigReloadedMsg struct {
	Config *config.Config
}
