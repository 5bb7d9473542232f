// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for conversations and game state.
package model

import (
	"time"

	"github.com/google/uuid"
)

// =============================================================================
// ROLE TYPE
// =============================================================================

// Role represents the sender of a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// String returns the string representation of the role.
func (r Role) String() string {
	return string(r)
}

// DisplayName returns a human-readable name for the role.
func (r Role) DisplayName() string {
	switch r {
	case RoleUser:
		return "You"
	case RoleAssistant:
		return "Bot"
	default:
		return string(r)
	}
}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAssistant
}

// =============================================================================
// MESSAGE TYPE
// =============================================================================

// Message represents a single message in a conversation.
// The role is fixed when the message is created.
type Message struct {
	ID        string
	Timestamp time.Time
	Content   string

	// Pending is set while an assistant reply is still being produced.
	Pending bool

	role Role
}

// NewMessage creates a new message with a generated ID.
func NewMessage(role Role, content string) Message {
	return Message{
		ID:        uuid.NewString(),
		Timestamp: time.Now(),
		Content:   content,
		role:      role,
	}
}

// NewUserMessage creates a new user message.
func NewUserMessage(content string) Message {
	return NewMessage(RoleUser, content)
}

// NewAssistantMessage creates a new assistant message.
func NewAssistantMessage(content string) Message {
	return NewMessage(RoleAssistant, content)
}

// NewPlaceholder creates an empty assistant message awaiting a reply.
func NewPlaceholder() Message {
	msg := NewMessage(RoleAssistant, "")
	msg.Pending = true
	return msg
}

// =============================================================================
// MESSAGE METHODS
// =============================================================================

// Role returns who sent the message.
func (m Message) Role() Role {
	return m.role
}

// IsEmpty returns true if the message has no content.
func (m Message) IsEmpty() bool {
	return len(m.Content) == 0
}

// Decode interprets the content for display. Only assistant messages can
// carry a guess result; user text is always plain.
func (m Message) Decode() (GuessResult, bool) {
	if m.role != RoleAssistant {
		return GuessResult{}, false
	}
	return DecodeContent(m.Content)
}
