// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for the wordguess TUI.
package components

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/wordguess-tui/internal/model"
	"github.com/jeranaias/wordguess-tui/internal/ui/styles"
	"github.com/jeranaias/wordguess-tui/internal/util"
)

// PendingText is shown in a reply bubble until the first content arrives.
const PendingText = "Thinking..."

// =============================================================================
// MESSAGE BUBBLE
// =============================================================================

// MessageBubble renders one transcript entry.
type MessageBubble struct {
	Message       model.Message
	Width         int
	ShowTimestamp bool

	// SpinnerFrame is drawn in front of PendingText for empty placeholders.
	SpinnerFrame string

	theme *styles.Theme
}

// NewMessageBubble creates a new MessageBubble
func NewMessageBubble(msg model.Message, theme *styles.Theme) *MessageBubble {
	return &MessageBubble{
		Message:       msg,
		Width:         80,
		ShowTimestamp: true,
		theme:         theme,
	}
}

// SetWidth sets the bubble width
func (b *MessageBubble) SetWidth(width int) {
	b.Width = width
}

// View renders the message bubble
func (b *MessageBubble) View() string {
	role := b.Message.Role()

	label := b.theme.RoleLabel.
		Foreground(roleColor(role)).
		Render(role.DisplayName())
	if b.ShowTimestamp && !b.Message.Timestamp.IsZero() {
		label += " " + b.theme.Timestamp.Render(formatTime(b.Message.Timestamp))
	}

	body := b.renderBody()
	return lipgloss.JoinVertical(lipgloss.Left, label, b.theme.Bubble(role == model.RoleUser).Render(body))
}

func (b *MessageBubble) renderBody() string {
	msg := b.Message
	width := b.contentWidth()

	if msg.Pending && msg.IsEmpty() {
		text := PendingText
		if b.SpinnerFrame != "" {
			text = b.SpinnerFrame + " " + text
		}
		return b.theme.PendingText.Render(text)
	}

	if msg.Role() == model.RoleAssistant && !msg.Pending {
		if result, ok := msg.Decode(); ok {
			return RenderResult(result, width, b.theme)
		}
	}

	text := wrap(msg.Content, width)
	if msg.Pending {
		text += b.theme.PendingText.Render("_")
	}
	return text
}

func (b *MessageBubble) contentWidth() int {
	w := b.Width - 4
	if w < 20 {
		w = 20
	}
	return w
}

// =============================================================================
// GUESS RESULT
// =============================================================================

// RenderResult draws a decoded guess result: the success banner when the
// guess was right, then the similarity and hint lines.
func RenderResult(result model.GuessResult, width int, theme *styles.Theme) string {
	var lines []string
	if result.Solved() {
		lines = append(lines, theme.SuccessBanner.Render(util.TruncateWidth(result.Success, width-2)))
	}
	lines = append(lines, theme.Similarity(result.Percentage).Render(result.SimilarityLine()))
	lines = append(lines, theme.HintText.Render(wrap(result.HintLine(), width)))
	return strings.Join(lines, "\n")
}

// =============================================================================
// MESSAGE LIST
// =============================================================================

// MessageList renders the whole transcript.
type MessageList struct {
	Messages       []model.Message
	Width          int
	ShowTimestamps bool
	SpinnerFrame   string
	theme          *styles.Theme
}

// NewMessageList creates a new MessageList
func NewMessageList(theme *styles.Theme) *MessageList {
	return &MessageList{
		Width:          80,
		ShowTimestamps: true,
		theme:          theme,
	}
}

// SetMessages sets the messages to display
func (ml *MessageList) SetMessages(messages []model.Message) {
	ml.Messages = messages
}

// SetWidth sets the list width
func (ml *MessageList) SetWidth(width int) {
	ml.Width = width
}

// View renders all messages
func (ml *MessageList) View() string {
	if len(ml.Messages) == 0 {
		return lipgloss.NewStyle().
			Foreground(styles.TextMuted).
			Italic(true).
			Width(ml.Width).
			Align(lipgloss.Center).
			Padding(1, 0).
			Render("No messages yet. Start a game or make a guess!")
	}

	bubbles := make([]string, 0, len(ml.Messages))
	for _, msg := range ml.Messages {
		bubble := NewMessageBubble(msg, ml.theme)
		bubble.SetWidth(ml.Width)
		bubble.ShowTimestamp = ml.ShowTimestamps
		bubble.SpinnerFrame = ml.SpinnerFrame
		bubbles = append(bubbles, bubble.View())
	}
	return strings.Join(bubbles, "\n\n")
}

// =============================================================================
// HELPERS
// =============================================================================

func roleColor(role model.Role) lipgloss.AdaptiveColor {
	if role == model.RoleUser {
		return styles.Cyan
	}
	return styles.Purple
}

func wrap(text string, width int) string {
	return strings.Join(util.WrapWidth(text, width), "\n")
}

// formatTime formats a time as "3:04 PM", adding the date when it is not
// today.
func formatTime(t time.Time) string {
	now := time.Now()
	if t.Year() == now.Year() && t.YearDay() == now.YearDay() {
		return t.Format("3:04 PM")
	}
	return t.Format("Jan 2, 3:04 PM")
}
