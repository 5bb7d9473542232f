// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package session owns the conversation and game state of one player.
package session

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/jeranaias/wordguess-tui/internal/backend"
	"github.com/jeranaias/wordguess-tui/internal/model"
	"github.com/jeranaias/wordguess-tui/internal/util"
)

// =============================================================================
// BACKEND
// =============================================================================

// Backend is the subset of the game server client a Session needs.
type Backend interface {
	Chat(ctx context.Context, request backend.ChatRequest) (*backend.ChatResponse, error)
	ChatStream(ctx context.Context, request backend.ChatRequest, callback backend.StreamCallback) error
	StartGame(ctx context.Context, seedWord, difficulty string) (*backend.StartGameResponse, error)
	GiveUp(ctx context.Context) (*backend.GiveUpResponse, error)
}

// =============================================================================
// STRATEGY
// =============================================================================

// Strategy decides how a /chat reply is read.
type Strategy int

const (
	// StrategyBuffered decodes the whole body once it has arrived.
	StrategyBuffered Strategy = iota
	// StrategyStreaming shows each fragment as it arrives.
	StrategyStreaming
)

// String returns the strategy name used in config files.
func (s Strategy) String() string {
	if s == StrategyStreaming {
		return "streaming"
	}
	return "buffered"
}

// ParseStrategy maps a config value to a Strategy. Unknown values are
// buffered.
func ParseStrategy(s string) Strategy {
	if strings.EqualFold(strings.TrimSpace(s), "streaming") {
		return StrategyStreaming
	}
	return StrategyBuffered
}

// =============================================================================
// CONFIG
// =============================================================================

// Config holds the options for a Session.
type Config struct {
	// Strategy is how chat replies are read (default: buffered)
	Strategy Strategy

	// GameAware adds seedWord and difficulty to chat requests once a game
	// is active
	GameAware bool
}

// DefaultConfig returns the default session configuration.
func DefaultConfig() Config {
	return Config{
		Strategy:  StrategyBuffered,
		GameAware: true,
	}
}

// =============================================================================
// SESSION
// =============================================================================

// Session owns the history sent to the server, the transcript shown to the
// user and the game phase. Its operations never return errors: every
// failure becomes a message in the transcript.
//
// Sends are not serialised. Two overlapping sends each get their own reply
// placeholder and each reply lands in its own placeholder.
type Session struct {
	mu sync.Mutex

	client  Backend
	view    View
	confirm Confirmer

	strategy  Strategy
	gameAware bool

	// history is what the server sees; transcript is what the user sees.
	history    *model.Conversation
	transcript *model.Conversation
	game       *model.Game
}

// New creates a session. A nil view discards output; a nil confirmer
// declines every confirmation.
func New(client Backend, view View, confirm Confirmer, cfg Config) *Session {
	if view == nil {
		view = NopView{}
	}
	if confirm == nil {
		confirm = ConfirmFunc(func(context.Context, string) bool { return false })
	}
	return &Session{
		client:     client,
		view:       view,
		confirm:    confirm,
		strategy:   cfg.Strategy,
		gameAware:  cfg.GameAware,
		history:    model.NewConversation(),
		transcript: model.NewConversation(),
		game:       model.NewGame(),
	}
}

// =============================================================================
// TRANSCRIPT
// =============================================================================

// AppendMessage shows one message. It only touches the transcript, never
// the history the server sees.
func (s *Session) AppendMessage(role model.Role, content string) model.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.appendLocked(role, content)
}

func (s *Session) appendLocked(role model.Role, content string) model.Message {
	msg := s.transcript.AddMessage(model.NewMessage(role, content))
	s.view.AppendMessage(msg)
	return msg
}

// Welcome shows the greeting.
func (s *Session) Welcome() {
	s.AppendMessage(model.RoleAssistant, WelcomeText)
}

// ClearChat empties the history and the visible transcript.
func (s *Session) ClearChat() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clearLocked()
}

func (s *Session) clearLocked() {
	s.history.Clear()
	s.transcript.Clear()
	s.view.ClearMessages()
}

// =============================================================================
// CHAT
// =============================================================================

// SendMessage sends a guess. Blank input does nothing. The guess stays in
// the history whatever happens to the request; the reply placeholder ends
// up holding either the reply or ChatErrorText.
func (s *Session) SendMessage(ctx context.Context, userText string) {
	text := util.NormalizeInput(userText)
	if text == "" {
		return
	}

	s.mu.Lock()
	user := model.NewUserMessage(text)
	s.history.AddMessage(user)
	s.transcript.AddMessage(user)
	s.view.AppendMessage(user)
	s.view.ClearInput()

	placeholder := s.transcript.AddPlaceholder()
	s.view.AppendMessage(placeholder)

	request := s.chatRequestLocked()
	strategy := s.strategy
	s.mu.Unlock()

	var (
		content string
		err     error
	)
	switch strategy {
	case StrategyStreaming:
		err = s.client.ChatStream(ctx, request, func(chunk backend.StreamChunk) {
			content = chunk.Accumulated
			s.updateReply(placeholder.ID, content, true)
		})
	default:
		var resp *backend.ChatResponse
		resp, err = s.client.Chat(ctx, request)
		if err == nil {
			content = resp.Content.Text()
		}
	}

	if err != nil {
		log.Printf("CHAT_FAILED | strategy=%s type=%s error=%v", strategy, errorType(err), err)
		s.updateReply(placeholder.ID, ChatErrorText, false)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.setReplyLocked(placeholder.ID, content, false) {
		log.Printf("CHAT_REPLY_DROPPED | reason=transcript_cleared")
		return
	}
	s.history.AddAssistantMessage(content)
}

func (s *Session) chatRequestLocked() backend.ChatRequest {
	request := backend.ChatRequest{Messages: s.history.ToBackendMessages()}
	if s.gameAware && s.game.IsActive() {
		request.SeedWord = s.game.SeedWord
		request.Difficulty = s.game.Difficulty.String()
	}
	return request
}

func (s *Session) updateReply(id, content string, pending bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setReplyLocked(id, content, pending)
}

// setReplyLocked rewrites a placeholder in place. It reports false when the
// placeholder was cleared away while the request was in flight.
func (s *Session) setReplyLocked(id, content string, pending bool) bool {
	if !s.transcript.SetContent(id, content, pending) {
		return false
	}
	msg, _ := s.transcript.GetMessageByID(id)
	s.view.UpdateMessage(msg)
	return true
}

// =============================================================================
// GAME
// =============================================================================

// StartGame asks the server for a new game. A blank seed word raises an
// alert and sends nothing. The start control is busy for the duration of
// the request and always returns to idle.
func (s *Session) StartGame(ctx context.Context, seedWord string, difficulty model.Difficulty) {
	seed := util.NormalizeInput(seedWord)
	if seed == "" {
		s.view.Alert(SeedRequiredText)
		return
	}
	if !difficulty.Valid() {
		difficulty = model.DefaultDifficulty
	}

	s.view.SetStartBusy(true)
	defer s.view.SetStartBusy(false)

	resp, err := s.client.StartGame(ctx, seed, difficulty.String())

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		log.Printf("START_GAME_FAILED | type=%s error=%v", errorType(err), err)
		s.appendLocked(model.RoleAssistant, StartErrorText)
		return
	}
	if resp != nil && resp.Message != "" {
		log.Printf("START_GAME | status=%s message=%q", resp.Status, resp.Message)
	}

	s.game.Activate(seed, difficulty)
	s.view.SetPhase(model.PhaseActive)
	s.clearLocked()
	s.appendLocked(model.RoleAssistant, fmt.Sprintf(StartedFormat, seed, difficulty))
	s.appendLocked(model.RoleAssistant, StartHintText)
}

// GiveUp asks for confirmation, then has the server reveal the secret word
// and pick another. History and phase are left alone.
func (s *Session) GiveUp(ctx context.Context) {
	if !s.confirm.Confirm(ctx, GiveUpPrompt) {
		log.Printf("GIVE_UP_DECLINED")
		return
	}

	resp, err := s.client.GiveUp(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		log.Printf("GIVE_UP_FAILED | type=%s error=%v", errorType(err), err)
		s.appendLocked(model.RoleAssistant, GiveUpErrorText)
		return
	}

	log.Printf("GIVE_UP | old_word=%s new_word_set=%t", resp.OldWord, resp.NewWord != "")
	if resp.Message != "" {
		s.appendLocked(model.RoleAssistant, resp.Message)
	}
	s.appendLocked(model.RoleAssistant, NewWordText)
}

// =============================================================================
// ACCESSORS
// =============================================================================

// Phase returns the current game phase.
func (s *Session) Phase() model.Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.Phase
}

// Game returns a copy of the game state.
func (s *Session) Game() model.Game {
	s.mu.Lock()
	defer s.mu.Unlock()
	return *s.game
}

// History returns the messages the server will see on the next send.
func (s *Session) History() []model.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.history.Messages()
}

// Transcript returns the messages on screen.
func (s *Session) Transcript() []model.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.transcript.Messages()
}

// LastReply returns the raw content of the most recent successful reply
// still in the history. It is empty again after the chat is cleared.
func (s *Session) LastReply() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if msg, ok := s.history.GetLastAssistantMessage(); ok {
		return msg.Content
	}
	return ""
}

// HistoryCounts returns how many messages the history holds and how many of
// them are guesses.
func (s *Session) HistoryCounts() (messages, guesses int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.history.MessageCount(), s.history.CountByRole(model.RoleUser)
}

// Strategy returns how replies are currently read.
func (s *Session) Strategy() Strategy {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.strategy
}

// SetStrategy changes how later replies are read. Requests already in
// flight keep their strategy.
func (s *Session) SetStrategy(strategy Strategy) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.strategy = strategy
}

// SetGameAware toggles sending game parameters with each guess.
func (s *Session) SetGameAware(on bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gameAware = on
}

func errorType(err error) string {
	switch {
	case backend.IsTransport(err):
		return backend.ErrTypeTransport.String()
	case backend.IsStatus(err):
		return backend.ErrTypeStatus.String()
	case backend.IsMalformed(err):
		return backend.ErrTypeMalformed.String()
	default:
		return backend.ErrTypeUnknown.String()
	}
}
