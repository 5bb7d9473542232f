// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// styles.go - Shared styles for line-mode output.
//
// Colors are disabled for non-TTY output and when NO_COLOR is set; see
// terminal.go.

package cli

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/wordguess-tui/internal/model"
	"github.com/jeranaias/wordguess-tui/internal/ui/styles"
)

// init configures the lipgloss color profile from terminal capabilities.
func init() {
	lipgloss.SetColorProfile(GetColorProfile())
}

// =============================================================================
// SHARED STYLES
// =============================================================================

var (
	// promptStyle is the REPL prompt
	promptStyle = lipgloss.NewStyle().
			Foreground(styles.Cyan).
			Bold(true)

	// welcomeStyle is the banner title
	welcomeStyle = lipgloss.NewStyle().
			Foreground(styles.Purple).
			Bold(true)

	infoStyle = lipgloss.NewStyle().
			Foreground(styles.TextSecondary)

	commandStyle = lipgloss.NewStyle().
			Foreground(styles.Emerald)

	warningStyle = lipgloss.NewStyle().
			Foreground(styles.Amber)

	userLabelStyle = lipgloss.NewStyle().
			Foreground(styles.UserBubbleBorder).
			Bold(true)

	botLabelStyle = lipgloss.NewStyle().
			Foreground(styles.AssistantBubbleBorder).
			Bold(true)

	bannerStyle = lipgloss.NewStyle().
			Foreground(styles.Emerald).
			Bold(true)
)

// roleLabel renders "You: " or "Bot: ".
func roleLabel(role model.Role) string {
	style := botLabelStyle
	if role == model.RoleUser {
		style = userLabelStyle
	}
	return style.Render(role.DisplayName() + ":")
}

// similarityStyle colors a similarity line by how close the guess was.
func similarityStyle(pct float64) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(styles.SimilarityColor(pct)).Bold(true)
}
