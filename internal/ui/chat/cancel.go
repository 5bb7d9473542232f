// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the chat view component for the TUI.
package chat

import (
	"context"
	"sync"
)

// =============================================================================
// REQUEST CONTEXT (THREAD-SAFE)
// =============================================================================

// cancelManager owns the context every request runs under. Cancelling it
// stops all requests in flight; a fresh context is created for later ones.
// It must be used as a pointer so Bubble Tea's model copies share it.
type cancelManager struct {
	mu     sync.Mutex
	parent context.Context
	ctx    context.Context
	cancel context.CancelFunc
}

func newCancelManager(parent context.Context) *cancelManager {
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithCancel(parent)
	return &cancelManager{parent: parent, ctx: ctx, cancel: cancel}
}

// context returns the context for a new request.
func (cm *cancelManager) context() context.Context {
	cm.mu.Lock()
	defer cm.mu.Unlock()
	return cm.ctx
}

// cancelAll cancels every request started so far and installs a fresh
// context for later ones. Safe to call repeatedly.
func (cm *cancelManager) cancelAll() {
	cm.mu.Lock()
	defer cm.mu.Unlock()
	cm.cancel()
	cm.ctx, cm.cancel = context.WithCancel(cm.parent)
}
