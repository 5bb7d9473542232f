// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the chat view component for the TUI.
package chat

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/wordguess-tui/internal/model"
	"github.com/jeranaias/wordguess-tui/internal/ui/components"
	"github.com/jeranaias/wordguess-tui/internal/ui/styles"
)

// =============================================================================
// LAYOUT
// =============================================================================

// layout sizes the viewport to whatever the header, controls and footer
// leave free. Called when any of them can change height.
func (m *Model) layout() {
	reserved := lipgloss.Height(m.renderHeader()) +
		lipgloss.Height(m.renderControls()) +
		lipgloss.Height(m.renderFooter())

	height := m.height - reserved
	if height < 3 {
		height = 3
	}
	width := m.width
	if width < 20 {
		width = 20
	}
	m.viewport.Width = width
	m.viewport.Height = height
}

// =============================================================================
// RENDERING
// =============================================================================

func (m Model) render() string {
	if m.quitting {
		return ""
	}
	if m.dialog.IsVisible() {
		return m.dialog.View()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		m.viewport.View(),
		m.renderControls(),
		m.renderFooter(),
	)
}

func (m Model) renderHeader() string {
	if m.height > 0 && m.height < 16 {
		return m.header.ViewCompact()
	}
	return m.header.View()
}

// transcriptView is the viewport content: the message list, then the raw
// payload of the last reply when toggled on.
func (m Model) transcriptView() string {
	m.list.SetMessages(m.messages)
	m.list.SpinnerFrame = ""
	if m.pending > 0 {
		m.list.SpinnerFrame = m.spinner.View()
	}
	content := m.list.View()

	if m.showRaw {
		raw := m.session.LastReply()
		if raw == "" {
			raw = "(no reply yet)"
		}
		content += "\n\n" + m.theme.Muted.Render("Last raw reply:") + "\n" +
			components.RenderRaw(raw, m.width-2)
	}
	return content
}

// renderControls draws the setup controls or the in-game controls, with the
// guess input in both.
func (m Model) renderControls() string {
	var rows []string

	if m.phase == model.PhaseSetup {
		rows = append(rows, m.renderSetup())
	}

	guessBox := m.theme.InputContainer
	if m.focus == focusGuess {
		guessBox = m.theme.InputContainerFocus
	}
	guessWidth := m.width - 4
	if guessWidth < 20 {
		guessWidth = 20
	}
	rows = append(rows, guessBox.Width(guessWidth).Render(m.guess.View()))

	if m.phase == model.PhaseActive {
		giveUp := m.theme.Button.Render("Give Up") + " " +
			m.theme.ShortcutDesc.Render(m.keys.GiveUp.Help().Key)
		rows = append(rows, giveUp)
	}
	return strings.Join(rows, "\n")
}

func (m Model) renderSetup() string {
	seedBox := m.theme.InputContainer
	if m.focus == focusSeed {
		seedBox = m.theme.InputContainerFocus
	}
	seed := lipgloss.JoinHorizontal(lipgloss.Center,
		m.theme.InputLabel.Render("Seed word "),
		seedBox.Render(m.seed.View()),
	)

	items := make([]string, 0, len(model.Difficulties))
	for _, d := range model.Difficulties {
		style := m.theme.DifficultyItem
		if d == m.difficulty {
			style = m.theme.DifficultySelected
		}
		items = append(items, style.Render(d.DisplayName()))
	}
	label := m.theme.InputLabel
	if m.focus == focusDifficulty {
		label = label.Foreground(styles.Cyan)
	}
	difficulty := label.Render("Difficulty ") + strings.Join(items, "")

	button := m.theme.Button
	switch {
	case m.startBusy:
		button = m.theme.ButtonBusy
	case m.focus == focusStart:
		button = m.theme.ButtonFocus
	}
	start := button.Render(m.StartLabel())

	return lipgloss.JoinHorizontal(lipgloss.Center, seed, "  ", difficulty, "  ", start)
}

func (m Model) renderFooter() string {
	status := m.theme.StatusBar.Render(
		m.theme.ShortcutDesc.Render("reply: ") + m.theme.ShortcutKey.Render(m.session.Strategy().String()),
	)
	return status + "\n" + m.help.View(m.keys)
}
