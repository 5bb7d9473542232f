// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for the wordguess TUI.
package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme modes accepted in the config file.
const (
	ModeAuto  = "auto"
	ModeDark  = "dark"
	ModeLight = "light"
)

// Theme holds all the styled components for the application.
// It detects the terminal's color capability and adjusts accordingly.
type Theme struct {
	// Terminal capabilities
	Mode         string
	IsDark       bool
	ColorProfile termenv.Profile

	// ==========================================================================
	// HEADER
	// ==========================================================================

	Header      lipgloss.Style
	HeaderTitle lipgloss.Style
	HeaderPhase lipgloss.Style

	// ==========================================================================
	// MESSAGES
	// ==========================================================================

	UserBubble      lipgloss.Style
	AssistantBubble lipgloss.Style
	RoleLabel       lipgloss.Style
	Timestamp       lipgloss.Style
	HintText        lipgloss.Style
	SuccessBanner   lipgloss.Style
	PendingText     lipgloss.Style

	// ==========================================================================
	// CONTROLS
	// ==========================================================================

	InputContainer      lipgloss.Style
	InputContainerFocus lipgloss.Style
	InputLabel          lipgloss.Style
	Button              lipgloss.Style
	ButtonFocus         lipgloss.Style
	ButtonBusy          lipgloss.Style
	DifficultyItem      lipgloss.Style
	DifficultySelected  lipgloss.Style

	// ==========================================================================
	// STATUS BAR
	// ==========================================================================

	StatusBar    lipgloss.Style
	ShortcutKey  lipgloss.Style
	ShortcutDesc lipgloss.Style

	// ==========================================================================
	// OVERLAYS
	// ==========================================================================

	OverlayBox   lipgloss.Style
	OverlayTitle lipgloss.Style
	OverlayText  lipgloss.Style
	OverlayKeys  lipgloss.Style

	// ==========================================================================
	// CODE BLOCK
	// ==========================================================================

	CodeBlock     lipgloss.Style
	CodeLangBadge lipgloss.Style

	Muted lipgloss.Style
}

// NewTheme creates a theme for the terminal's detected background.
func NewTheme() *Theme {
	return NewThemeWithMode(ModeAuto)
}

// NewThemeWithMode creates a theme, forcing a dark or light background
// unless mode is auto. Unknown modes are treated as auto.
func NewThemeWithMode(mode string) *Theme {
	mode = strings.ToLower(strings.TrimSpace(mode))

	isDark := termenv.HasDarkBackground()
	switch mode {
	case ModeDark:
		isDark = true
	case ModeLight:
		isDark = false
	default:
		mode = ModeAuto
	}
	lipgloss.SetHasDarkBackground(isDark)

	t := &Theme{
		Mode:         mode,
		IsDark:       isDark,
		ColorProfile: termenv.ColorProfile(),
	}
	t.initStyles()
	return t
}

// initStyles initializes all the lip gloss styles.
func (t *Theme) initStyles() {
	// Header
	t.Header = lipgloss.NewStyle().
		Bold(true).
		Foreground(Cyan).
		Background(SurfaceDim).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Purple).
		Padding(0, 2)
	t.HeaderTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(Cyan)
	t.HeaderPhase = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Italic(true)

	// Messages
	t.UserBubble = lipgloss.NewStyle().
		Foreground(UserBubbleFg).
		BorderStyle(lipgloss.NormalBorder()).
		BorderLeft(true).
		BorderForeground(UserBubbleBorder).
		PaddingLeft(1)
	t.AssistantBubble = lipgloss.NewStyle().
		Foreground(AssistantBubbleFg).
		BorderStyle(lipgloss.NormalBorder()).
		BorderLeft(true).
		BorderForeground(AssistantBubbleBorder).
		PaddingLeft(1)
	t.RoleLabel = lipgloss.NewStyle().Bold(true)
	t.Timestamp = lipgloss.NewStyle().Foreground(TextMuted)
	t.HintText = lipgloss.NewStyle().Foreground(TextPrimary)
	t.SuccessBanner = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextInverse).
		Background(Emerald).
		Padding(0, 1)
	t.PendingText = lipgloss.NewStyle().
		Foreground(TextMuted).
		Italic(true)

	// Controls
	t.InputContainer = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Overlay).
		Padding(0, 1)
	t.InputContainerFocus = t.InputContainer.
		BorderForeground(Cyan)
	t.InputLabel = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Bold(true)
	t.Button = lipgloss.NewStyle().
		Foreground(TextPrimary).
		Background(Overlay).
		Padding(0, 2)
	t.ButtonFocus = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextInverse).
		Background(Cyan).
		Padding(0, 2)
	t.ButtonBusy = lipgloss.NewStyle().
		Foreground(TextInverse).
		Background(Amber).
		Padding(0, 2)
	t.DifficultyItem = lipgloss.NewStyle().
		Foreground(TextMuted).
		Padding(0, 1)
	t.DifficultySelected = lipgloss.NewStyle().
		Bold(true).
		Foreground(Purple).
		Underline(true).
		Padding(0, 1)

	// Status bar
	t.StatusBar = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Background(SurfaceDim).
		Padding(0, 1)
	t.ShortcutKey = lipgloss.NewStyle().
		Bold(true).
		Foreground(Cyan)
	t.ShortcutDesc = lipgloss.NewStyle().
		Foreground(TextMuted)

	// Overlays
	t.OverlayBox = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Amber).
		Padding(1, 2)
	t.OverlayTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(Amber)
	t.OverlayText = lipgloss.NewStyle().
		Foreground(TextPrimary)
	t.OverlayKeys = lipgloss.NewStyle().
		Foreground(TextMuted)

	// Code block
	t.CodeBlock = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Overlay).
		Padding(0, 1)
	t.CodeLangBadge = lipgloss.NewStyle().
		Foreground(TextInverse).
		Background(Purple).
		Padding(0, 1)

	t.Muted = lipgloss.NewStyle().Foreground(TextMuted)
}

// Similarity returns the style for a similarity line at percentage.
func (t *Theme) Similarity(percentage float64) lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(SimilarityColor(percentage))
}

// Bubble returns the bubble style for a user or bot message.
func (t *Theme) Bubble(user bool) lipgloss.Style {
	if user {
		return t.UserBubble
	}
	return t.AssistantBubble
}
