// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the chat view component for the TUI.
package chat

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/wordguess-tui/internal/model"
	"github.com/jeranaias/wordguess-tui/internal/session"
	"github.com/jeranaias/wordguess-tui/internal/ui/components"
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	// Session view calls, in the order the session made them
	case AppendMsg:
		m.messages = append(m.messages, msg.Message)
		m.refresh(true)
		return m, nil

	case UpdateMsg:
		for i := range m.messages {
			if m.messages[i].ID == msg.Message.ID {
				m.messages[i] = msg.Message
				break
			}
		}
		m.refresh(m.viewport.AtBottom())
		return m, nil

	case ClearMessagesMsg:
		m.messages = nil
		m.showRaw = false
		m.refresh(true)
		return m, nil

	case ClearInputMsg:
		m.guess.Reset()
		return m, nil

	case PhaseMsg:
		m.phase = msg.Phase
		m.header.Phase = msg.Phase
		m.header.Difficulty = m.difficulty
		if msg.Phase == model.PhaseActive {
			m.setFocus(focusGuess)
		}
		m.layout()
		return m, nil

	case StartBusyMsg:
		m.startBusy = msg.Busy
		return m, nil

	case AlertMsg:
		m.dialog.Show(components.DialogAlert, msg.Text)
		return m, nil

	case ConfirmRequestMsg:
		id := m.dialog.Show(components.DialogConfirm, msg.Prompt)
		m.confirms[id] = msg.Reply
		return m, nil

	case components.DialogResultMsg:
		m.answer(msg)
		return m, nil

	case opDoneMsg:
		if m.pending > 0 {
			m.pending--
		}
		if msg.op == opStartGame {
			m.startBusy = false
		}
		return m, nil

	case ConfigReloadedMsg:
		m.applyConfig(msg.Config)
		return m, nil

	case spinner.TickMsg:
		if m.pending == 0 {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		m.refresh(m.viewport.AtBottom())
		return m, cmd
	}

	return m, nil
}

// =============================================================================
// MESSAGE HANDLERS
// =============================================================================

func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.ready = true

	m.header.SetWidth(m.width)
	m.list.SetWidth(m.width - 2)
	m.dialog.SetSize(m.width, m.height)
	m.help.Width = m.width

	inputWidth := m.width - 8
	if inputWidth < 10 {
		inputWidth = 10
	}
	m.guess.Width = inputWidth
	m.seed.Width = 24

	m.layout()
	m.refresh(true)
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, m.quit()
	}

	if cmd, handled := m.dialog.Update(msg); handled {
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.layout()
		return m, nil

	case key.Matches(msg, m.keys.Clear):
		m.session.ClearChat()
		return m, nil

	case key.Matches(msg, m.keys.GiveUp):
		if m.phase != model.PhaseActive {
			return m, nil
		}
		return m, m.giveUp()

	case key.Matches(msg, m.keys.Raw):
		m.showRaw = !m.showRaw
		m.refresh(true)
		return m, nil

	case key.Matches(msg, m.keys.Stream):
		strategy := session.StrategyStreaming
		if m.session.Strategy() == session.StrategyStreaming {
			strategy = session.StrategyBuffered
		}
		m.session.SetStrategy(strategy)
		m.header.Strategy = strategy.String()
		return m, nil

	case key.Matches(msg, m.keys.PageUp):
		m.viewport.HalfViewUp()
		return m, nil

	case key.Matches(msg, m.keys.PageDown):
		m.viewport.HalfViewDown()
		return m, nil

	case key.Matches(msg, m.keys.NextField):
		m.cycleFocus(1)
		return m, nil

	case key.Matches(msg, m.keys.PrevField):
		m.cycleFocus(-1)
		return m, nil

	case key.Matches(msg, m.keys.Submit):
		if m.focus == focusGuess {
			return m, m.sendGuess()
		}
		return m, m.startGame()
	}

	if m.focus == focusDifficulty && key.Matches(msg, m.keys.Difficulty) {
		if msg.String() == "left" {
			m.difficulty = m.difficulty.Prev()
		} else {
			m.difficulty = m.difficulty.Next()
		}
		return m, nil
	}

	var cmd tea.Cmd
	switch m.focus {
	case focusGuess:
		m.guess, cmd = m.guess.Update(msg)
	case focusSeed:
		m.seed, cmd = m.seed.Update(msg)
	}
	return m, cmd
}

// =============================================================================
// VIEWPORT
// =============================================================================

// refresh re-renders the transcript into the viewport.
func (m *Model) refresh(toBottom bool) {
	m.viewport.SetContent(m.transcriptView())
	if toBottom {
		m.viewport.GotoBottom()
	}
}
