// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package backend provides the HTTP client for the word-guessing game server.
package backend

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClientWithConfig(&ClientConfig{BaseURL: server.URL + "/"})
}

// =============================================================================
// CONFIG TESTS
// =============================================================================

func TestNewClientWithConfig_Defaults(t *testing.T) {
	c := NewClientWithConfig(nil)
	if c.BaseURL() != DefaultBaseURL {
		t.Errorf("BaseURL() = %q, want %q", c.BaseURL(), DefaultBaseURL)
	}
	if c.httpClient.Timeout != 0 {
		t.Errorf("httpClient.Timeout = %v, want no timeout", c.httpClient.Timeout)
	}
}

func TestClient_SetBaseURL(t *testing.T) {
	c := NewClientWithConfig(nil)
	c.SetBaseURL("http://example.test:9000/")
	if c.BaseURL() != "http://example.test:9000" {
		t.Errorf("BaseURL() = %q", c.BaseURL())
	}
	c.SetBaseURL("")
	if c.BaseURL() != DefaultBaseURL {
		t.Errorf("BaseURL() after reset = %q", c.BaseURL())
	}
}

// =============================================================================
// CHAT TESTS
// =============================================================================

func TestClient_Chat(t *testing.T) {
	var got ChatRequest
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != ChatPath {
			t.Errorf("request = %s %s, want POST %s", r.Method, r.URL.Path, ChatPath)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type = %q", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode request: %v", err)
		}
		io.WriteString(w, `{"content":"{\"percentage\":55,\"hint\":\"red\"}"}`)
	})

	resp, err := c.Chat(context.Background(), ChatRequest{
		Messages:   []Message{{Role: "user", Content: "apple"}},
		SeedWord:   "fruit",
		Difficulty: "easy",
	})
	if err != nil {
		t.Fatalf("Chat() error = %v", err)
	}

	if want := `{"percentage":55,"hint":"red"}`; resp.Content.Text() != want {
		t.Errorf("Content.Text() = %q, want %q", resp.Content.Text(), want)
	}
	if len(got.Messages) != 1 || got.Messages[0].Content != "apple" {
		t.Errorf("server saw messages %+v", got.Messages)
	}
	if got.SeedWord != "fruit" || got.Difficulty != "easy" {
		t.Errorf("server saw seedWord=%q difficulty=%q", got.SeedWord, got.Difficulty)
	}
}

func TestClient_Chat_OmitsGameFieldsAndSendsEmptyArray(t *testing.T) {
	var raw map[string]json.RawMessage
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&raw)
		io.WriteString(w, `{"content":"hi"}`)
	})

	if _, err := c.Chat(context.Background(), ChatRequest{}); err != nil {
		t.Fatalf("Chat() error = %v", err)
	}
	if string(raw["messages"]) != "[]" {
		t.Errorf("messages = %s, want []", raw["messages"])
	}
	if _, ok := raw["seedWord"]; ok {
		t.Error("seedWord should be omitted when empty")
	}
}

func TestClient_Chat_Errors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		isError func(error) bool
	}{
		{"server error", http.StatusInternalServerError, `{"error":"boom"}`, IsStatus},
		{"not found", http.StatusNotFound, ``, IsStatus},
		{"not json", http.StatusOK, `<html>`, IsMalformed},
		{"missing content", http.StatusOK, `{"other":"x"}`, IsMalformed},
		{"null content", http.StatusOK, `{"content":null}`, IsMalformed},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				io.WriteString(w, tc.body)
			})
			_, err := c.Chat(context.Background(), ChatRequest{})
			if err == nil {
				t.Fatal("Chat() error = nil, want error")
			}
			if !tc.isError(err) {
				t.Errorf("Chat() error = %v, wrong type", err)
			}
		})
	}
}

func TestClient_Chat_StatusMessageFromBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		io.WriteString(w, `{"error":"No game in progress"}`)
	})

	_, err := c.Chat(context.Background(), ChatRequest{})
	var clientErr *ClientError
	if !errors.As(err, &clientErr) {
		t.Fatalf("error = %T, want *ClientError", err)
	}
	if clientErr.StatusCode != http.StatusBadRequest {
		t.Errorf("StatusCode = %d", clientErr.StatusCode)
	}
	if clientErr.Message != "chat request failed: No game in progress" {
		t.Errorf("Message = %q", clientErr.Message)
	}
	if !errors.Is(err, ErrBadStatus) {
		t.Error("errors.Is(err, ErrBadStatus) = false")
	}
}

func TestClient_Chat_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	c := NewClientWithConfig(&ClientConfig{BaseURL: url})
	_, err := c.Chat(context.Background(), ChatRequest{})
	if !IsTransport(err) {
		t.Errorf("Chat() error = %v, want transport error", err)
	}
	if !errors.Is(err, ErrUnreachable) {
		t.Error("errors.Is(err, ErrUnreachable) = false")
	}
}

// =============================================================================
// STREAMING TESTS
// =============================================================================

func TestClient_ChatStream(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		flusher := w.(http.Flusher)
		for _, part := range []string{`{"content":"Hel"}`, `garbage`, "\n", `{"content":"lo"}`} {
			io.WriteString(w, part)
			flusher.Flush()
		}
	})

	var seen []string
	err := c.ChatStream(context.Background(), ChatRequest{}, func(chunk StreamChunk) {
		seen = append(seen, chunk.Accumulated)
	})
	if err != nil {
		t.Fatalf("ChatStream() error = %v", err)
	}

	if len(seen) != 2 || seen[0] != "Hel" || seen[1] != "Hello" {
		t.Errorf("accumulated progression = %q, want [Hel Hello]", seen)
	}
}

func TestClient_ChatStream_NoContent(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, "nothing useful")
	})

	err := c.ChatStream(context.Background(), ChatRequest{}, nil)
	if !IsMalformed(err) {
		t.Errorf("ChatStream() error = %v, want malformed", err)
	}
}

func TestClient_ChatStream_BadStatus(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	called := false
	err := c.ChatStream(context.Background(), ChatRequest{}, func(StreamChunk) { called = true })
	if !IsStatus(err) {
		t.Errorf("ChatStream() error = %v, want status error", err)
	}
	if called {
		t.Error("callback should not run for a failed request")
	}
}

// =============================================================================
// GAME TESTS
// =============================================================================

func TestClient_StartGame(t *testing.T) {
	var got StartGameRequest
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != StartGamePath {
			t.Errorf("path = %q", r.URL.Path)
		}
		json.NewDecoder(r.Body).Decode(&got)
		io.WriteString(w, `{"status":"success","message":"Game started"}`)
	})

	resp, err := c.StartGame(context.Background(), "apple", "hard")
	if err != nil {
		t.Fatalf("StartGame() error = %v", err)
	}
	if got.SeedWord != "apple" || got.Difficulty != "hard" {
		t.Errorf("server saw %+v", got)
	}
	if resp.Status != "success" {
		t.Errorf("Status = %q", resp.Status)
	}
}

func TestClient_StartGame_BodyIgnored(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	if _, err := c.StartGame(context.Background(), "apple", "easy"); err != nil {
		t.Errorf("StartGame() error = %v, want nil for 204", err)
	}
}

func TestClient_StartGame_Failure(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	if _, err := c.StartGame(context.Background(), "apple", "easy"); !IsStatus(err) {
		t.Errorf("StartGame() error = %v, want status error", err)
	}
}

func TestClient_GiveUp(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != GiveUpPath {
			t.Errorf("path = %q", r.URL.Path)
		}
		body, _ := io.ReadAll(r.Body)
		if len(body) != 0 {
			t.Errorf("give-up body = %q, want empty", body)
		}
		io.WriteString(w, `{"old_word":"apple","new_word":"pear","message":"The word was: apple. New word selected!"}`)
	})

	resp, err := c.GiveUp(context.Background())
	if err != nil {
		t.Fatalf("GiveUp() error = %v", err)
	}
	if resp.Message != "The word was: apple. New word selected!" {
		t.Errorf("Message = %q", resp.Message)
	}
	if resp.OldWord != "apple" || resp.NewWord != "pear" {
		t.Errorf("words = %q/%q", resp.OldWord, resp.NewWord)
	}
}

func TestClient_GiveUp_Malformed(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `oops`)
	})

	if _, err := c.GiveUp(context.Background()); !IsMalformed(err) {
		t.Errorf("GiveUp() error = %v, want malformed", err)
	}
}

func TestErrorType_String(t *testing.T) {
	if ErrTypeTransport.String() != "transport" || ErrTypeMalformed.String() != "malformed" {
		t.Error("unexpected ErrorType names")
	}
	if ErrorType(99).String() != "unknown" {
		t.Error("out-of-range ErrorType should be unknown")
	}
}
