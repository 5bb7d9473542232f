// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package backend provides the HTTP client for the word-guessing game server.
package backend

import (
	"bytes"
	"encoding/json"
)

// =============================================================================
// ROUTES
// =============================================================================

const (
	ChatPath      = "/chat"
	StartGamePath = "/start-game"
	GiveUpPath    = "/give-up"
)

// =============================================================================
// MESSAGE TYPES
// =============================================================================

// Message is one conversation entry as the server expects it.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest is the body of POST /chat.
type ChatRequest struct {
	Messages   []Message `json:"messages"`
	SeedWord   string    `json:"seedWord,omitempty"`
	Difficulty string    `json:"difficulty,omitempty"`
}

// ChatResponse is the buffered body of POST /chat.
type ChatResponse struct {
	Content Content `json:"content"`
}

// StartGameRequest is the body of POST /start-game.
type StartGameRequest struct {
	SeedWord   string `json:"seedWord"`
	Difficulty string `json:"difficulty"`
}

// StartGameResponse is the optional body of a successful POST /start-game.
// Only the status code decides success.
type StartGameResponse struct {
	Status  string `json:"status,omitempty"`
	Message string `json:"message,omitempty"`
}

// GiveUpResponse is the body of POST /give-up.
type GiveUpResponse struct {
	Message string `json:"message"`
	OldWord string `json:"old_word,omitempty"`
	NewWord string `json:"new_word,omitempty"`
}

// ErrorResponse is what the server sends with a non-2xx status, when it
// sends anything at all.
type ErrorResponse struct {
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
}

// =============================================================================
// CONTENT
// =============================================================================

// Content holds the raw JSON of a content field. Some servers send a string
// (which may itself hold JSON text), others send the structured object.
type Content json.RawMessage

// UnmarshalJSON keeps the raw value.
func (c *Content) UnmarshalJSON(data []byte) error {
	*c = append((*c)[:0], data...)
	return nil
}

// MarshalJSON writes the raw value back out.
func (c Content) MarshalJSON() ([]byte, error) {
	if len(c) == 0 {
		return []byte("null"), nil
	}
	return c, nil
}

// IsZero reports whether the field was absent or null.
func (c Content) IsZero() bool {
	trimmed := bytes.TrimSpace(c)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

// Text returns the content as display text. A JSON string is unquoted once,
// any other JSON value is returned as its compact source text.
func (c Content) Text() string {
	if c.IsZero() {
		return ""
	}
	trimmed := bytes.TrimSpace(c)
	if trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err == nil {
			return s
		}
	}
	var compact bytes.Buffer
	if err := json.Compact(&compact, trimmed); err == nil {
		return compact.String()
	}
	return string(trimmed)
}

// NewTextContent wraps a plain string as Content.
func NewTextContent(s string) Content {
	data, _ := json.Marshal(s)
	return Content(data)
}

// =============================================================================
// STREAMING TYPES
// =============================================================================

// StreamChunk is one decoded fragment of a streamed /chat reply.
type StreamChunk struct {
	// Content is this fragment's text.
	Content string

	// Accumulated is every fragment so far, in arrival order.
	Accumulated string

	// Index counts decoded fragments from zero.
	Index int
}

// streamFrame is the wire shape of one streamed object.
type streamFrame struct {
	Content Content `json:"content"`
}
