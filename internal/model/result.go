// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for conversations and game state.
package model

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// GuessResult is the structured verdict on a guess. It is never stored;
// callers decode it from message content each time they render.
type GuessResult struct {
	Percentage float64
	Hint       string
	Success    string
}

// guessWire accepts the payload loosely so shape checks happen once, here.
type guessWire struct {
	Percentage *json.Number     `json:"percentage"`
	Hint       *json.RawMessage `json:"hint"`
	Success    *json.RawMessage `json:"success"`
}

// DecodeContent is the single place assistant content is interpreted.
// It returns ok only for a JSON object holding a numeric percentage and a
// hint; anything else is plain text.
func DecodeContent(content string) (GuessResult, bool) {
	trimmed := strings.TrimSpace(content)
	if !strings.HasPrefix(trimmed, "{") {
		return GuessResult{}, false
	}

	dec := json.NewDecoder(strings.NewReader(trimmed))
	dec.UseNumber()
	var wire guessWire
	if err := dec.Decode(&wire); err != nil || dec.More() {
		return GuessResult{}, false
	}
	if wire.Percentage == nil || wire.Hint == nil {
		return GuessResult{}, false
	}

	pct, err := wire.Percentage.Float64()
	if err != nil {
		return GuessResult{}, false
	}

	hint, ok := scalarText(*wire.Hint)
	if !ok {
		return GuessResult{}, false
	}

	result := GuessResult{Percentage: pct, Hint: hint}
	if wire.Success != nil {
		if s, ok := scalarText(*wire.Success); ok {
			result.Success = s
		}
	}
	return result, true
}

// scalarText renders a JSON string, number or bool as text.
func scalarText(raw json.RawMessage) (string, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return "", false
	}
	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", false
		}
		return s, true
	case '{', '[':
		return "", false
	}
	if bytes.Equal(raw, []byte("null")) {
		return "", false
	}
	return string(raw), true
}

// PercentageText formats the percentage the way it arrived: 87 stays "87",
// 87.5 stays "87.5".
func (r GuessResult) PercentageText() string {
	return strconv.FormatFloat(r.Percentage, 'f', -1, 64)
}

// SimilarityLine is the first line of a rendered result.
func (r GuessResult) SimilarityLine() string {
	return "Similarity: " + r.PercentageText() + "%"
}

// HintLine is the second line of a rendered result.
func (r GuessResult) HintLine() string {
	return "Hint: " + r.Hint
}

// Solved reports whether the server flagged the guess as correct.
func (r GuessResult) Solved() bool {
	return r.Success != ""
}

// Lines returns the plain-text rendering: the success banner when present,
// then similarity and hint.
func (r GuessResult) Lines() []string {
	lines := make([]string, 0, 3)
	if r.Solved() {
		lines = append(lines, r.Success)
	}
	return append(lines, r.SimilarityLine(), r.HintLine())
}

// RenderText renders content for a plain-text surface. Structured results
// become their lines; everything else is returned unchanged.
func RenderText(role Role, content string) string {
	if role == RoleAssistant {
		if result, ok := DecodeContent(content); ok {
			return strings.Join(result.Lines(), "\n")
		}
	}
	return content
}
