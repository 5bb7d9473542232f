// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for conversations and game state.
package model

import (
	"strings"
	"testing"
)

// =============================================================================
// DECODE TESTS
// =============================================================================

func TestDecodeContent_Structured(t *testing.T) {
	tests := []struct {
		name    string
		content string
		pct     string
		hint    string
		success string
	}{
		{"integer", `{"percentage": 87, "hint": "It's a fruit"}`, "87", "It's a fruit", ""},
		{"fraction", `{"percentage":12.5,"hint":"cold"}`, "12.5", "cold", ""},
		{"zero", `{"percentage":0,"hint":"nothing alike"}`, "0", "nothing alike", ""},
		{"success", `{"percentage":100,"hint":"exact","success":"You got it!"}`, "100", "exact", "You got it!"},
		{"padded", "  \n{\"percentage\":5,\"hint\":\"far\"}\n", "5", "far", ""},
		{"numeric hint", `{"percentage":5,"hint":3}`, "5", "3", ""},
		{"extra fields", `{"percentage":5,"hint":"x","word":"apple"}`, "5", "x", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result, ok := DecodeContent(tc.content)
			if !ok {
				t.Fatalf("DecodeContent(%q) ok = false, want true", tc.content)
			}
			if result.PercentageText() != tc.pct {
				t.Errorf("PercentageText() = %q, want %q", result.PercentageText(), tc.pct)
			}
			if result.Hint != tc.hint {
				t.Errorf("Hint = %q, want %q", result.Hint, tc.hint)
			}
			if result.Success != tc.success {
				t.Errorf("Success = %q, want %q", result.Success, tc.success)
			}
		})
	}
}

func TestDecodeContent_PlainText(t *testing.T) {
	inputs := []string{
		"",
		"hello there",
		"{not json",
		`{"percentage": 87}`,
		`{"hint": "no number"}`,
		`{"percentage": "high", "hint": "x"}`,
		`{"percentage": null, "hint": "x"}`,
		`{"percentage": 10, "hint": {"nested": true}}`,
		`[{"percentage": 10, "hint": "x"}]`,
		`{"percentage": 10, "hint": "x"} trailing`,
		`"{\"percentage\":10,\"hint\":\"x\"}"`,
		"<b>markup</b>",
	}

	for _, in := range inputs {
		if _, ok := DecodeContent(in); ok {
			t.Errorf("DecodeContent(%q) ok = true, want false", in)
		}
	}
}

func TestRenderText(t *testing.T) {
	t.Run("structured contains literal values", func(t *testing.T) {
		got := RenderText(RoleAssistant, `{"percentage": 73, "hint": "grows on trees"}`)
		if !strings.Contains(got, "73") || !strings.Contains(got, "grows on trees") {
			t.Errorf("RenderText() = %q, want percentage and hint", got)
		}
		if got != "Similarity: 73%\nHint: grows on trees" {
			t.Errorf("RenderText() = %q", got)
		}
	})

	t.Run("success banner first", func(t *testing.T) {
		got := RenderText(RoleAssistant, `{"percentage":100,"hint":"h","success":"Correct!"}`)
		if !strings.HasPrefix(got, "Correct!\n") {
			t.Errorf("RenderText() = %q, want success banner first", got)
		}
	})

	t.Run("plain text unchanged", func(t *testing.T) {
		raw := "Error processing your guess. {oops"
		if got := RenderText(RoleAssistant, raw); got != raw {
			t.Errorf("RenderText() = %q, want %q", got, raw)
		}
	})

	t.Run("user content never decoded", func(t *testing.T) {
		raw := `{"percentage": 1, "hint": "x"}`
		if got := RenderText(RoleUser, raw); got != raw {
			t.Errorf("RenderText() = %q, want raw user text", got)
		}
	})
}

// =============================================================================
// MESSAGE TESTS
// =============================================================================

func TestNewMessage(t *testing.T) {
	user := NewUserMessage("apple")
	if user.Role() != RoleUser {
		t.Errorf("Role() = %q, want user", user.Role())
	}
	if user.ID == "" {
		t.Error("ID should be generated")
	}

	other := NewUserMessage("apple")
	if other.ID == user.ID {
		t.Error("IDs should be unique")
	}

	placeholder := NewPlaceholder()
	if placeholder.Role() != RoleAssistant || !placeholder.Pending || !placeholder.IsEmpty() {
		t.Errorf("placeholder = %+v", placeholder)
	}
}

func TestMessage_Decode(t *testing.T) {
	content := `{"percentage":3,"hint":"h"}`
	if _, ok := NewAssistantMessage(content).Decode(); !ok {
		t.Error("assistant Decode() ok = false")
	}
	if _, ok := NewUserMessage(content).Decode(); ok {
		t.Error("user Decode() ok = true")
	}
}

func TestRole_DisplayName(t *testing.T) {
	if RoleUser.DisplayName() != "You" || RoleAssistant.DisplayName() != "Bot" {
		t.Error("unexpected display names")
	}
	if Role("system").Valid() {
		t.Error("system should not be a valid role")
	}
}

// =============================================================================
// CONVERSATION TESTS
// =============================================================================

func TestConversation_AppendAndClear(t *testing.T) {
	conv := NewConversation()
	conv.AddMessage(NewUserMessage("one"))
	conv.AddAssistantMessage("two")

	if conv.MessageCount() != 2 {
		t.Fatalf("MessageCount() = %d, want 2", conv.MessageCount())
	}
	msgs := conv.Messages()
	if msgs[0].Content != "one" || msgs[1].Content != "two" {
		t.Errorf("order = %q, %q", msgs[0].Content, msgs[1].Content)
	}

	conv.Clear()
	if conv.MessageCount() != 0 {
		t.Error("MessageCount() != 0 after Clear")
	}
	conv.Clear()
	if conv.MessageCount() != 0 {
		t.Error("Clear should be idempotent")
	}
}

func TestConversation_SetContent(t *testing.T) {
	conv := NewConversation()
	p := conv.AddPlaceholder()

	if !conv.SetContent(p.ID, "Hel", true) {
		t.Fatal("SetContent() = false")
	}
	got, _ := conv.GetMessageByID(p.ID)
	if got.Content != "Hel" || !got.Pending {
		t.Errorf("message = %+v", got)
	}
	if got.Role() != RoleAssistant {
		t.Error("role changed")
	}

	conv.Clear()
	if conv.SetContent(p.ID, "late", false) {
		t.Error("SetContent() after Clear = true, want false")
	}
}

func TestConversation_MessagesIsACopy(t *testing.T) {
	conv := NewConversation()
	conv.AddMessage(NewUserMessage("a"))
	msgs := conv.Messages()
	msgs[0].Content = "changed"

	if conv.Messages()[0].Content != "a" {
		t.Error("Messages() exposed internal storage")
	}
}

func TestConversation_ToBackendMessages(t *testing.T) {
	conv := NewConversation()
	conv.AddMessage(NewUserMessage("apple"))
	conv.AddAssistantMessage(`{"percentage":10,"hint":"h"}`)
	conv.AddPlaceholder()

	wire := conv.ToBackendMessages()
	if len(wire) != 2 {
		t.Fatalf("len = %d, want 2 (placeholder excluded)", len(wire))
	}
	if wire[0].Role != "user" || wire[1].Role != "assistant" {
		t.Errorf("roles = %q, %q", wire[0].Role, wire[1].Role)
	}
	if conv.CountByRole(RoleAssistant) != 2 || conv.CountByRole(RoleUser) != 1 {
		t.Errorf("CountByRole() = %d assistant, %d user", conv.CountByRole(RoleAssistant), conv.CountByRole(RoleUser))
	}
}

func TestConversation_GetLastAssistantMessage(t *testing.T) {
	conv := NewConversation()
	if _, ok := conv.GetLastAssistantMessage(); ok {
		t.Error("empty conversation should have no assistant message")
	}
	conv.AddAssistantMessage("settled")
	conv.AddPlaceholder()

	got, ok := conv.GetLastAssistantMessage()
	if !ok || got.Content != "settled" {
		t.Errorf("GetLastAssistantMessage() = %+v, %v", got, ok)
	}
}

// =============================================================================
// GAME TESTS
// =============================================================================

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		in      string
		want    Difficulty
		wantErr bool
	}{
		{"easy", DifficultyEasy, false},
		{" HARD ", DifficultyHard, false},
		{"", DifficultyMedium, false},
		{"impossible", "", true},
	}

	for _, tc := range tests {
		got, err := ParseDifficulty(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseDifficulty(%q) error = %v", tc.in, err)
		}
		if got != tc.want {
			t.Errorf("ParseDifficulty(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestDifficulty_Cycle(t *testing.T) {
	if DifficultyHard.Next() != DifficultyEasy {
		t.Error("Next should wrap")
	}
	if DifficultyEasy.Prev() != DifficultyHard {
		t.Error("Prev should wrap")
	}
	if Difficulty("bogus").Next() != DefaultDifficulty {
		t.Error("unknown level should reset to default")
	}
}

func TestGame_Activate(t *testing.T) {
	g := NewGame()
	if g.IsActive() || g.Phase.String() != "setup" {
		t.Fatalf("new game phase = %s", g.Phase)
	}

	g.Activate("apple", DifficultyEasy)
	if !g.IsActive() || g.SeedWord != "apple" || g.Difficulty != DifficultyEasy {
		t.Errorf("game = %+v", g)
	}
}
