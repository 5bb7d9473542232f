// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// view.go - Line-mode rendering of a session.
//
// Messages are printed once, in order. A streamed reply is printed as its
// fragments arrive and, if the finished reply turns out to be a guess
// result, the rendered result follows on its own lines.

package cli

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/jeranaias/wordguess-tui/internal/model"
	"github.com/jeranaias/wordguess-tui/internal/session"
	"github.com/jeranaias/wordguess-tui/internal/ui/styles"
)

// Printer writes a session to a plain output stream. It implements
// session.View.
type Printer struct {
	mu  sync.Mutex
	out io.Writer

	// The streamed reply being printed, if any
	openID  string
	printed string
}

// NewPrinter creates a printer writing to out.
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

var _ session.View = (*Printer)(nil)

// AppendMessage prints a message. A pending placeholder only prints the
// label; its content follows through UpdateMessage.
func (p *Printer) AppendMessage(msg model.Message) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if msg.Pending {
		p.closeOpen()
		fmt.Fprint(p.out, roleLabel(msg.Role())+" ")
		p.openID = msg.ID
		p.printed = msg.Content
		fmt.Fprint(p.out, msg.Content)
		return
	}
	fmt.Fprintln(p.out, roleLabel(msg.Role())+" "+renderBody(msg))
}

// UpdateMessage prints whatever a placeholder gained since the last call.
func (p *Printer) UpdateMessage(msg model.Message) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if msg.ID != p.openID {
		if !msg.Pending {
			fmt.Fprintln(p.out, roleLabel(msg.Role())+" "+renderBody(msg))
		}
		return
	}

	if msg.Pending {
		p.writeDelta(msg.Content)
		return
	}

	switch {
	case p.printed == "":
		fmt.Fprint(p.out, renderBody(msg))
	case isResult(msg):
		fmt.Fprint(p.out, "\n"+renderBody(msg))
	default:
		p.writeDelta(msg.Content)
	}
	fmt.Fprintln(p.out)
	p.openID, p.printed = "", ""
}

// writeDelta prints the new tail of content. Content that no longer
// extends what was printed starts over on a fresh line.
func (p *Printer) writeDelta(content string) {
	if strings.HasPrefix(content, p.printed) {
		fmt.Fprint(p.out, content[len(p.printed):])
	} else {
		fmt.Fprint(p.out, "\n"+content)
	}
	p.printed = content
}

// closeOpen ends a reply line left open.
func (p *Printer) closeOpen() {
	if p.openID != "" {
		fmt.Fprintln(p.out)
		p.openID, p.printed = "", ""
	}
}

// ClearMessages prints a marker; a terminal scrollback cannot be unprinted.
func (p *Printer) ClearMessages() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closeOpen()
	fmt.Fprintln(p.out, infoStyle.Render("[Chat cleared]"))
}

// ClearInput does nothing: the prompt is empty again after every line.
func (p *Printer) ClearInput() {}

// SetPhase announces the switch to the in-game commands.
func (p *Printer) SetPhase(phase model.Phase) {
	if phase != model.PhaseActive {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintln(p.out, commandStyle.Render("[Game active]")+" "+
		infoStyle.Render("Type a guess, /giveup to reveal the word."))
}

// SetStartBusy prints the busy label while a start request is in flight.
func (p *Printer) SetStartBusy(busy bool) {
	if !busy {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintln(p.out, infoStyle.Render(session.StartBusyLabel))
}

// Alert prints a notice.
func (p *Printer) Alert(text string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closeOpen()
	fmt.Fprintln(p.out, styles.RenderWarning(text))
}

// =============================================================================
// BODY RENDERING
// =============================================================================

func isResult(msg model.Message) bool {
	if msg.Role() != model.RoleAssistant {
		return false
	}
	_, ok := msg.Decode()
	return ok
}

// renderBody renders a message the same way model.RenderText does, with
// colors on the result lines.
func renderBody(msg model.Message) string {
	result, ok := msg.Decode()
	if !ok || !ColorsEnabled() {
		return model.RenderText(msg.Role(), msg.Content)
	}

	lines := make([]string, 0, 3)
	if result.Solved() {
		lines = append(lines, bannerStyle.Render(result.Success))
	}
	lines = append(lines,
		similarityStyle(result.Percentage).Render(result.SimilarityLine()),
		result.HintLine(),
	)
	return strings.Join(lines, "\n")
}
