// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for the wordguess TUI.
package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/wordguess-tui/internal/model"
	"github.com/jeranaias/wordguess-tui/internal/ui/styles"
	"github.com/jeranaias/wordguess-tui/internal/util"
)

// =============================================================================
// HEADER COMPONENT
// =============================================================================

// Header is the title bar: brand, game phase and the server in use.
type Header struct {
	Title      string
	Phase      model.Phase
	Difficulty model.Difficulty
	Strategy   string
	ServerURL  string
	Width      int
	theme      *styles.Theme
}

// NewHeader creates a new Header component with default values
func NewHeader(theme *styles.Theme) *Header {
	return &Header{
		Title: "wordguess",
		Phase: model.PhaseSetup,
		Width: 80,
		theme: theme,
	}
}

// SetWidth updates the header width
func (h *Header) SetWidth(width int) {
	h.Width = width
}

// View renders the header.
func (h *Header) View() string {
	width := h.Width
	if width < 40 {
		width = 40
	}
	innerWidth := width - 6

	accent := lipgloss.NewStyle().Foreground(styles.Purple)
	brand := accent.Render("< ") + h.theme.HeaderTitle.Render(h.Title) + accent.Render(" >")

	parts := []string{h.phaseBadge()}
	if h.Phase == model.PhaseActive && h.Difficulty != "" {
		parts = append(parts, h.Difficulty.DisplayName())
	}
	if h.Strategy != "" {
		parts = append(parts, h.Strategy)
	}
	if h.ServerURL != "" {
		parts = append(parts, util.TruncateWidth(h.ServerURL, innerWidth/2))
	}

	brandLine := lipgloss.NewStyle().
		Width(innerWidth).
		Align(lipgloss.Center).
		Render(brand)
	subtitleLine := lipgloss.NewStyle().
		Width(innerWidth).
		Align(lipgloss.Center).
		Foreground(styles.TextMuted).
		Render(strings.Join(parts, " | "))

	return h.theme.Header.
		Width(width).
		Render(lipgloss.JoinVertical(lipgloss.Center, brandLine, subtitleLine))
}

// ViewCompact renders a single line for short terminals.
func (h *Header) ViewCompact() string {
	line := h.theme.HeaderTitle.Render(h.Title) + " " + h.phaseBadge()
	return lipgloss.NewStyle().Width(h.Width).Render(line)
}

func (h *Header) phaseBadge() string {
	if h.Phase == model.PhaseActive {
		return lipgloss.NewStyle().Bold(true).Foreground(styles.Emerald).Render("[PLAYING]")
	}
	return lipgloss.NewStyle().Foreground(styles.Amber).Render("[SETUP]")
}
