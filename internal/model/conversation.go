// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for conversations and game state.
package model

import (
	"time"

	"github.com/jeranaias/wordguess-tui/internal/backend"
)

// =============================================================================
// CONVERSATION TYPE
// =============================================================================

// Conversation is an ordered, append-only list of messages that can be
// cleared as a whole. It is not safe for concurrent use; the owner locks.
type Conversation struct {
	messages  []Message
	UpdatedAt time.Time
}

// NewConversation creates an empty conversation.
func NewConversation() *Conversation {
	return &Conversation{
		messages:  make([]Message, 0),
		UpdatedAt: time.Now(),
	}
}

// =============================================================================
// MESSAGE MANAGEMENT
// =============================================================================

// AddMessage adds a message to the conversation.
func (c *Conversation) AddMessage(msg Message) Message {
	c.messages = append(c.messages, msg)
	c.UpdatedAt = time.Now()
	return msg
}

// AddAssistantMessage creates and adds an assistant message.
func (c *Conversation) AddAssistantMessage(content string) Message {
	return c.AddMessage(NewAssistantMessage(content))
}

// AddPlaceholder adds a pending assistant message.
func (c *Conversation) AddPlaceholder() Message {
	return c.AddMessage(NewPlaceholder())
}

// SetContent replaces the content of the message with the given ID.
// Returns false if no such message exists (for example after a clear).
func (c *Conversation) SetContent(id, content string, pending bool) bool {
	for i := range c.messages {
		if c.messages[i].ID == id {
			c.messages[i].Content = content
			c.messages[i].Pending = pending
			c.UpdatedAt = time.Now()
			return true
		}
	}
	return false
}

// GetMessageByID returns a message by its ID.
func (c *Conversation) GetMessageByID(id string) (Message, bool) {
	for _, msg := range c.messages {
		if msg.ID == id {
			return msg, true
		}
	}
	return Message{}, false
}

// GetLastAssistantMessage returns the most recent settled assistant message.
func (c *Conversation) GetLastAssistantMessage() (Message, bool) {
	for i := len(c.messages) - 1; i >= 0; i-- {
		if c.messages[i].role == RoleAssistant && !c.messages[i].Pending {
			return c.messages[i], true
		}
	}
	return Message{}, false
}

// Messages returns a copy of the messages in order.
func (c *Conversation) Messages() []Message {
	out := make([]Message, len(c.messages))
	copy(out, c.messages)
	return out
}

// Clear removes all messages from the conversation.
func (c *Conversation) Clear() {
	c.messages = make([]Message, 0)
	c.UpdatedAt = time.Now()
}

// MessageCount returns the number of messages.
func (c *Conversation) MessageCount() int {
	return len(c.messages)
}

// CountByRole returns how many messages have the given role.
func (c *Conversation) CountByRole(role Role) int {
	n := 0
	for _, msg := range c.messages {
		if msg.role == role {
			n++
		}
	}
	return n
}

// =============================================================================
// WIRE CONVERSION
// =============================================================================

// ToBackendMessages converts the conversation to the server's message
// format. Pending placeholders are left out.
func (c *Conversation) ToBackendMessages() []backend.Message {
	messages := make([]backend.Message, 0, len(c.messages))
	for _, msg := range c.messages {
		if msg.Pending {
			continue
		}
		messages = append(messages, backend.Message{
			Role:    msg.role.String(),
			Content: msg.Content,
		})
	}
	return messages
}
