// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the chat view component for the TUI.
package chat

import (
	"context"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/wordguess-tui/internal/model"
)

// =============================================================================
// BRIDGE
// =============================================================================

// Bridge turns session View calls into Bubble Tea messages. Calls never
// block: messages are queued and a single goroutine hands them to the
// program in order. It also implements session.Confirmer through the
// dialog overlay.
type Bridge struct {
	mu      sync.Mutex
	queue   []tea.Msg
	signal  chan struct{}
	done    chan struct{}
	started bool
	stopped bool
}

// NewBridge creates a bridge that queues until Start is called.
func NewBridge() *Bridge {
	return &Bridge{
		signal: make(chan struct{}, 1),
		done:   make(chan struct{}),
	}
}

// Start forwards queued and future messages to send, usually
// (*tea.Program).Send.
func (b *Bridge) Start(send func(tea.Msg)) {
	b.mu.Lock()
	if b.started || b.stopped {
		b.mu.Unlock()
		return
	}
	b.started = true
	b.mu.Unlock()

	go b.forward(send)
	b.wake()
}

// Stop ends forwarding and answers no to any pending confirmation.
func (b *Bridge) Stop() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.stopped {
		return
	}
	b.stopped = true
	close(b.done)
}

// Drain removes and returns the queued messages. Used when no program is
// attached.
func (b *Bridge) Drain() []tea.Msg {
	b.mu.Lock()
	defer b.mu.Unlock()
	msgs := b.queue
	b.queue = nil
	return msgs
}

func (b *Bridge) forward(send func(tea.Msg)) {
	for {
		select {
		case <-b.done:
			return
		case <-b.signal:
		}
		for _, msg := range b.Drain() {
			send(msg)
		}
	}
}

func (b *Bridge) post(msg tea.Msg) {
	b.mu.Lock()
	if b.stopped {
		b.mu.Unlock()
		return
	}
	b.queue = append(b.queue, msg)
	b.mu.Unlock()
	b.wake()
}

func (b *Bridge) wake() {
	select {
	case b.signal <- struct{}{}:
	default:
	}
}

// =============================================================================
// session.View
// =============================================================================

func (b *Bridge) AppendMessage(msg model.Message) { b.post(AppendMsg{Message: msg}) }
func (b *Bridge) UpdateMessage(msg model.Message) { b.post(UpdateMsg{Message: msg}) }
func (b *Bridge) ClearMessages()                  { b.post(ClearMessagesMsg{}) }
func (b *Bridge) ClearInput()                     { b.post(ClearInputMsg{}) }
func (b *Bridge) SetPhase(phase model.Phase)      { b.post(PhaseMsg{Phase: phase}) }
func (b *Bridge) SetStartBusy(busy bool)          { b.post(StartBusyMsg{Busy: busy}) }
func (b *Bridge) Alert(text string)               { b.post(AlertMsg{Text: text}) }

// =============================================================================
// session.Confirmer
// =============================================================================

// Confirm opens the confirm dialog and waits for the answer. A cancelled
// context or a stopped bridge counts as no.
func (b *Bridge) Confirm(ctx context.Context, prompt string) bool {
	reply := make(chan bool, 1)
	b.post(ConfirmRequestMsg{Prompt: prompt, Reply: reply})

	select {
	case yes := <-reply:
		return yes
	case <-ctx.Done():
		return false
	case <-b.done:
		return false
	}
}
