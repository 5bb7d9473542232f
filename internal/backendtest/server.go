// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package backendtest provides a scripted stand-in for the game server.
//
// It answers the three game routes with canned replies and records what it
// received. It implements no game rules.
package backendtest

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/julienschmidt/httprouter"

	"github.com/jeranaias/wordguess-tui/internal/backend"
)

// =============================================================================
// REPLIES
// =============================================================================

// Reply is a canned response. A zero Status means 200. When Chunks is set
// each chunk is written and flushed separately and Body is ignored.
type Reply struct {
	Status int
	Body   string
	Chunks []string
}

// JSON builds a 200 reply from any value.
func JSON(v any) Reply {
	data, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return Reply{Body: string(data)}
}

// Text is a buffered chat reply whose content is a plain string.
func Text(content string) Reply {
	return JSON(backend.ChatResponse{Content: backend.NewTextContent(content)})
}

// Guess is a buffered chat reply carrying a guess result double-encoded
// inside the content string.
func Guess(percentage float64, hint string) Reply {
	inner, _ := json.Marshal(map[string]any{"percentage": percentage, "hint": hint})
	return Text(string(inner))
}

// Stream is a chat reply that sends each fragment as its own
// {"content": ...} object.
func Stream(fragments ...string) Reply {
	chunks := make([]string, len(fragments))
	for i, f := range fragments {
		data, _ := json.Marshal(map[string]string{"content": f})
		chunks[i] = string(data)
	}
	return Reply{Chunks: chunks}
}

// Fail is an error status with a JSON error body.
func Fail(status int, message string) Reply {
	data, _ := json.Marshal(map[string]string{"error": message})
	return Reply{Status: status, Body: string(data)}
}

// =============================================================================
// SERVER
// =============================================================================

// Server is a running fake game server.
type Server struct {
	URL string

	srv *httptest.Server

	mu        sync.Mutex
	chat      []Reply
	startGame Reply
	giveUp    Reply
	counts    map[string]int
	chats     []backend.ChatRequest
	starts    []backend.StartGameRequest
	giveUps   [][]byte
}

// New starts a server that is closed when the test ends. By default every
// route succeeds.
func New(t testing.TB) *Server {
	t.Helper()

	s := &Server{
		startGame: JSON(backend.StartGameResponse{Status: "success", Message: "Game started"}),
		giveUp: JSON(backend.GiveUpResponse{
			Message: "The word was: apple. New word selected!",
			OldWord: "apple",
			NewWord: "pear",
		}),
		counts: make(map[string]int),
	}
	s.chat = []Reply{Text("ok")}

	router := httprouter.New()
	router.POST(backend.ChatPath, s.handleChat)
	router.POST(backend.StartGamePath, s.handleStartGame)
	router.POST(backend.GiveUpPath, s.handleGiveUp)

	s.srv = httptest.NewServer(router)
	s.URL = s.srv.URL
	t.Cleanup(s.srv.Close)
	return s
}

// Client returns a game server client pointed at s.
func (s *Server) Client() *backend.Client {
	return backend.NewClientWithConfig(&backend.ClientConfig{BaseURL: s.URL})
}

// Close shuts the server down; later requests fail at the transport.
func (s *Server) Close() {
	s.srv.Close()
}

// SetChat scripts /chat. Replies are used in order and the last one
// repeats.
func (s *Server) SetChat(replies ...Reply) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(replies) == 0 {
		replies = []Reply{Text("ok")}
	}
	s.chat = replies
}

// SetStartGame scripts /start-game.
func (s *Server) SetStartGame(r Reply) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.startGame = r
}

// SetGiveUp scripts /give-up.
func (s *Server) SetGiveUp(r Reply) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.giveUp = r
}

// Count returns how many requests hit path.
func (s *Server) Count(path string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.counts[path]
}

// Total returns how many requests hit any route.
func (s *Server) Total() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, c := range s.counts {
		n += c
	}
	return n
}

// ChatRequests returns the decoded /chat bodies in arrival order.
func (s *Server) ChatRequests() []backend.ChatRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]backend.ChatRequest(nil), s.chats...)
}

// StartRequests returns the decoded /start-game bodies in arrival order.
func (s *Server) StartRequests() []backend.StartGameRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]backend.StartGameRequest(nil), s.starts...)
}

// GiveUpBodies returns the raw /give-up bodies in arrival order.
func (s *Server) GiveUpBodies() [][]byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([][]byte(nil), s.giveUps...)
}

// =============================================================================
// HANDLERS
// =============================================================================

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req backend.ChatRequest
	_ = json.NewDecoder(r.Body).Decode(&req)

	s.mu.Lock()
	s.counts[backend.ChatPath]++
	s.chats = append(s.chats, req)
	reply := s.chat[0]
	if len(s.chat) > 1 {
		s.chat = s.chat[1:]
	}
	s.mu.Unlock()

	write(w, reply)
}

func (s *Server) handleStartGame(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req backend.StartGameRequest
	_ = json.NewDecoder(r.Body).Decode(&req)

	s.mu.Lock()
	s.counts[backend.StartGamePath]++
	s.starts = append(s.starts, req)
	reply := s.startGame
	s.mu.Unlock()

	write(w, reply)
}

func (s *Server) handleGiveUp(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	body, _ := io.ReadAll(r.Body)

	s.mu.Lock()
	s.counts[backend.GiveUpPath]++
	s.giveUps = append(s.giveUps, body)
	reply := s.giveUp
	s.mu.Unlock()

	write(w, reply)
}

func write(w http.ResponseWriter, reply Reply) {
	w.Header().Set("Content-Type", "application/json")
	status := reply.Status
	if status == 0 {
		status = http.StatusOK
	}
	w.WriteHeader(status)

	if len(reply.Chunks) == 0 {
		io.WriteString(w, reply.Body)
		return
	}

	flusher, _ := w.(http.Flusher)
	for _, chunk := range reply.Chunks {
		io.WriteString(w, chunk)
		if flusher != nil {
			flusher.Flush()
		}
	}
}
