// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides UI components for the wordguess TUI.
package components

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/wordguess-tui/internal/ui/styles"
)

// =============================================================================
// DIALOG
// =============================================================================

// DialogKind selects the buttons a dialog offers.
type DialogKind int

const (
	// DialogConfirm asks yes or no.
	DialogConfirm DialogKind = iota
	// DialogAlert only needs acknowledging.
	DialogAlert
)

// DialogResultMsg is sent when the user closes a dialog. Yes is false for
// alerts and for declined confirmations.
type DialogResultMsg struct {
	ID   int
	Kind DialogKind
	Yes  bool
}

type dialogEntry struct {
	id     int
	kind   DialogKind
	prompt string
}

// Dialog is a modal box over the chat. Dialogs raised while one is open
// wait their turn.
type Dialog struct {
	queue    []dialogEntry
	nextID   int
	selected int // 0=Yes/OK, 1=No
	width    int
	height   int

	theme *styles.Theme
}

// Button options
const (
	ButtonYes = 0
	ButtonNo  = 1
)

// NewDialog creates an empty dialog.
func NewDialog(theme *styles.Theme) *Dialog {
	return &Dialog{theme: theme}
}

// Show queues a dialog and returns its ID.
func (d *Dialog) Show(kind DialogKind, prompt string) int {
	d.nextID++
	if len(d.queue) == 0 {
		d.selected = ButtonNo
		if kind == DialogAlert {
			d.selected = ButtonYes
		}
	}
	d.queue = append(d.queue, dialogEntry{id: d.nextID, kind: kind, prompt: prompt})
	return d.nextID
}

// IsVisible returns whether a dialog is open.
func (d *Dialog) IsVisible() bool {
	return len(d.queue) > 0
}

// Prompt returns the text of the open dialog.
func (d *Dialog) Prompt() string {
	if len(d.queue) == 0 {
		return ""
	}
	return d.queue[0].prompt
}

// SetSize updates the dimensions used to center the box.
func (d *Dialog) SetSize(width, height int) {
	d.width = width
	d.height = height
}

// =============================================================================
// BUBBLE TEA METHODS
// =============================================================================

// Update handles keys while a dialog is open. The bool reports whether the
// key was consumed.
func (d *Dialog) Update(msg tea.Msg) (tea.Cmd, bool) {
	if len(d.queue) == 0 {
		return nil, false
	}
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil, false
	}
	head := d.queue[0]

	if head.kind == DialogAlert {
		switch key.String() {
		case "enter", " ", "esc", "y", "n":
			return d.close(false), true
		}
		return nil, true
	}

	switch key.String() {
	case "left", "right", "tab", "shift+tab", "h", "l":
		d.selected = 1 - d.selected
	case "enter", " ":
		return d.close(d.selected == ButtonYes), true
	case "y":
		return d.close(true), true
	case "n", "esc":
		return d.close(false), true
	}
	return nil, true
}

func (d *Dialog) close(yes bool) tea.Cmd {
	head := d.queue[0]
	d.queue = d.queue[1:]
	if len(d.queue) > 0 {
		d.selected = ButtonNo
		if d.queue[0].kind == DialogAlert {
			d.selected = ButtonYes
		}
	}

	result := DialogResultMsg{ID: head.id, Kind: head.kind, Yes: yes && head.kind == DialogConfirm}
	return func() tea.Msg { return result }
}

// CloseAll dismisses every queued dialog, answering no.
func (d *Dialog) CloseAll() []DialogResultMsg {
	results := make([]DialogResultMsg, len(d.queue))
	for i, e := range d.queue {
		results[i] = DialogResultMsg{ID: e.id, Kind: e.kind}
	}
	d.queue = nil
	return results
}

// =============================================================================
// VIEW RENDERING
// =============================================================================

// View renders the open dialog centered in the terminal.
func (d *Dialog) View() string {
	if len(d.queue) == 0 {
		return ""
	}
	head := d.queue[0]

	boxWidth := 60
	if d.width > 0 && d.width < 80 {
		boxWidth = d.width - 10
	}
	if boxWidth < 30 {
		boxWidth = 30
	}

	title := "Notice"
	keys := "Enter=OK"
	if head.kind == DialogConfirm {
		title = "Confirm"
		keys = "y=Yes  n=No  Tab=Navigate"
	}

	var content strings.Builder
	content.WriteString(d.theme.OverlayTitle.Render(title))
	content.WriteString("\n\n")
	content.WriteString(d.theme.OverlayText.Render(wrap(head.prompt, boxWidth-6)))
	content.WriteString("\n\n")
	content.WriteString(d.renderButtons(head.kind))
	content.WriteString("\n\n")
	content.WriteString(d.theme.OverlayKeys.Render(keys))

	box := d.theme.OverlayBox.Width(boxWidth).Render(content.String())

	if d.width > 0 && d.height > 0 {
		return lipgloss.Place(d.width, d.height, lipgloss.Center, lipgloss.Center, box)
	}
	return box
}

func (d *Dialog) renderButtons(kind DialogKind) string {
	button := d.theme.Button.MarginRight(1)
	active := d.theme.ButtonFocus.MarginRight(1)

	if kind == DialogAlert {
		return active.Render("OK")
	}

	yes, no := button.Render("Yes"), button.Render("No")
	if d.selected == ButtonYes {
		yes = active.Background(styles.Rose).Render("Yes")
	} else {
		no = active.Render("No")
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, yes, no)
}
