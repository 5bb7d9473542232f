// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/peterh/liner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/wordguess-tui/internal/backend"
	"github.com/jeranaias/wordguess-tui/internal/backendtest"
	"github.com/jeranaias/wordguess-tui/internal/model"
	"github.com/jeranaias/wordguess-tui/internal/session"
)

// =============================================================================
// TEST HELPERS
// =============================================================================

// script feeds fixed lines to the REPL and fixed answers to confirmations.
type script struct {
	lines   []string
	answers []string
	prompts []string
}

func (s *script) ReadInput(string) (string, error) {
	if len(s.lines) == 0 {
		return "", io.EOF
	}
	line := s.lines[0]
	s.lines = s.lines[1:]
	return line, nil
}

func (s *script) Prompt(prompt string) (string, error) {
	s.prompts = append(s.prompts, prompt)
	if len(s.answers) == 0 {
		return "", liner.ErrPromptAborted
	}
	answer := s.answers[0]
	s.answers = s.answers[1:]
	return answer, nil
}

type replHarness struct {
	srv  *backendtest.Server
	sess *session.Session
	in   *script
	out  *bytes.Buffer
}

func runREPL(t *testing.T, in *script, setup func(*backendtest.Server)) *replHarness {
	t.Helper()
	srv := backendtest.New(t)
	if setup != nil {
		setup(srv)
	}

	out := &bytes.Buffer{}
	sess := session.New(srv.Client(), NewPrinter(out), NewLineConfirmer(in), session.DefaultConfig())
	repl := NewREPL(sess, Options{In: in, Out: out, ServerURL: srv.URL, WordWrap: 80})

	require.NoError(t, repl.Run(context.Background()))
	return &replHarness{srv: srv, sess: sess, in: in, out: out}
}

// =============================================================================
// PRINTER TESTS
// =============================================================================

func TestPrinter_Messages(t *testing.T) {
	var out bytes.Buffer
	p := NewPrinter(&out)

	p.AppendMessage(model.NewUserMessage("river"))
	p.AppendMessage(model.NewAssistantMessage(`{"percentage": 42, "hint": "warm"}`))
	p.AppendMessage(model.NewAssistantMessage("plain text"))

	assert.Equal(t, "You: river\nBot: Similarity: 42%\nHint: warm\nBot: plain text\n", out.String())
}

func TestPrinter_SuccessBanner(t *testing.T) {
	var out bytes.Buffer
	p := NewPrinter(&out)

	p.AppendMessage(model.NewAssistantMessage(`{"percentage": 100, "hint": "yes", "success": "You got it!"}`))

	assert.Equal(t, "Bot: You got it!\nSimilarity: 100%\nHint: yes\n", out.String())
}

func TestPrinter_StreamedReply(t *testing.T) {
	var out bytes.Buffer
	p := NewPrinter(&out)

	msg := model.NewPlaceholder()
	p.AppendMessage(msg)
	for _, content := range []string{"Hel", "Hello"} {
		msg.Content = content
		p.UpdateMessage(msg)
	}
	msg.Pending = false
	p.UpdateMessage(msg)

	assert.Equal(t, "Bot: Hello\n", out.String())
}

func TestPrinter_StreamedResult(t *testing.T) {
	var out bytes.Buffer
	p := NewPrinter(&out)

	msg := model.NewPlaceholder()
	p.AppendMessage(msg)
	msg.Content = `{"percentage": 7, "hint": "cold"}`
	p.UpdateMessage(msg)
	msg.Pending = false
	p.UpdateMessage(msg)

	assert.Equal(t, "Bot: {\"percentage\": 7, \"hint\": \"cold\"}\nSimilarity: 7%\nHint: cold\n", out.String())
}

func TestPrinter_ErrorAfterPartialStream(t *testing.T) {
	var out bytes.Buffer
	p := NewPrinter(&out)

	msg := model.NewPlaceholder()
	p.AppendMessage(msg)
	msg.Content = "Hel"
	p.UpdateMessage(msg)
	msg.Content, msg.Pending = session.ChatErrorText, false
	p.UpdateMessage(msg)

	assert.Equal(t, "Bot: Hel\n"+session.ChatErrorText+"\n", out.String())
}

func TestPrinter_BufferedPlaceholder(t *testing.T) {
	var out bytes.Buffer
	p := NewPrinter(&out)

	msg := model.NewPlaceholder()
	p.AppendMessage(msg)
	msg.Content, msg.Pending = "ok", false
	p.UpdateMessage(msg)

	assert.Equal(t, "Bot: ok\n", out.String())
}

// =============================================================================
// REPL TESTS
// =============================================================================

func TestREPL_Welcome(t *testing.T) {
	h := runREPL(t, &script{}, nil)

	assert.Contains(t, h.out.String(), "Bot: "+session.WelcomeText)
	assert.Contains(t, h.out.String(), h.srv.URL)
	assert.Zero(t, h.srv.Total())
}

func TestREPL_StartAndGuess(t *testing.T) {
	h := runREPL(t, &script{lines: []string{
		"/start ocean hard",
		"river",
		"/quit",
		"never read",
	}}, func(srv *backendtest.Server) {
		srv.SetChat(backendtest.Guess(42, "warm"))
	})

	starts := h.srv.StartRequests()
	require.Len(t, starts, 1)
	assert.Equal(t, backend.StartGameRequest{SeedWord: "ocean", Difficulty: "hard"}, starts[0])

	chats := h.srv.ChatRequests()
	require.Len(t, chats, 1)
	assert.Equal(t, "ocean", chats[0].SeedWord)

	out := h.out.String()
	assert.Contains(t, out, session.StartBusyLabel)
	assert.Contains(t, out, "Game started! Seed word: ocean, Difficulty: hard")
	assert.Contains(t, out, "You: river\nBot: Similarity: 42%\nHint: warm\n")
	assert.Equal(t, model.PhaseActive, h.sess.Phase())
	assert.Equal(t, []string{"never read"}, h.in.lines, "input after /quit is not consumed")
}

func TestREPL_StartDefaultsDifficulty(t *testing.T) {
	h := runREPL(t, &script{lines: []string{"/start ocean"}}, nil)

	starts := h.srv.StartRequests()
	require.Len(t, starts, 1)
	assert.Equal(t, model.DefaultDifficulty.String(), starts[0].Difficulty)
}

func TestREPL_StartWithoutSeed(t *testing.T) {
	h := runREPL(t, &script{lines: []string{"/start"}}, nil)

	assert.Contains(t, h.out.String(), "[!] "+session.SeedRequiredText)
	assert.Zero(t, h.srv.Total())
}

func TestREPL_StartBadDifficulty(t *testing.T) {
	h := runREPL(t, &script{lines: []string{"/start ocean extreme"}}, nil)

	assert.Contains(t, h.out.String(), "[X] ")
	assert.Zero(t, h.srv.Total())
}

func TestREPL_StartFailure(t *testing.T) {
	h := runREPL(t, &script{lines: []string{"/start ocean"}}, func(srv *backendtest.Server) {
		srv.SetStartGame(backendtest.Fail(http.StatusInternalServerError, "down"))
	})

	assert.Contains(t, h.out.String(), "Bot: "+session.StartErrorText)
	assert.Equal(t, model.PhaseSetup, h.sess.Phase())
}

func TestREPL_GiveUp(t *testing.T) {
	tests := []struct {
		name     string
		answers  []string
		requests int
	}{
		{name: "confirmed", answers: []string{"y"}, requests: 1},
		{name: "confirmed long form", answers: []string{" YES "}, requests: 1},
		{name: "declined", answers: []string{"n"}, requests: 0},
		{name: "empty answer", answers: []string{""}, requests: 0},
		{name: "aborted", answers: nil, requests: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := runREPL(t, &script{lines: []string{"/start ocean", "/giveup"}, answers: tt.answers}, nil)

			require.Len(t, h.in.prompts, 1)
			assert.Contains(t, h.in.prompts[0], session.GiveUpPrompt)
			assert.Equal(t, tt.requests, h.srv.Count(backend.GiveUpPath))
			if tt.requests > 0 {
				assert.Contains(t, h.out.String(), "Bot: The word was: apple. New word selected!")
				assert.Contains(t, h.out.String(), "Bot: "+session.NewWordText)
			} else {
				assert.NotContains(t, h.out.String(), session.NewWordText)
			}
		})
	}
}

func TestREPL_GiveUpBeforeStart(t *testing.T) {
	for _, line := range []string{"/giveup", "/g"} {
		t.Run(line, func(t *testing.T) {
			h := runREPL(t, &script{lines: []string{line}, answers: []string{"y"}}, nil)

			assert.Empty(t, h.in.prompts, "no confirmation without a game")
			assert.Zero(t, h.srv.Total())
			assert.Contains(t, h.out.String(), noGameText)
		})
	}
}

func TestREPL_Clear(t *testing.T) {
	h := runREPL(t, &script{lines: []string{"hello", "/clear"}}, nil)

	assert.Contains(t, h.out.String(), "[Chat cleared]")
	assert.Empty(t, h.sess.History())
	assert.Empty(t, h.sess.Transcript())
}

func TestREPL_Stream(t *testing.T) {
	h := runREPL(t, &script{lines: []string{"/stream on", "hi", "/stream"}}, func(srv *backendtest.Server) {
		srv.SetChat(backendtest.Stream("Hel", "lo"))
	})

	assert.Equal(t, session.StrategyStreaming, h.sess.Strategy())
	assert.Contains(t, h.out.String(), "Bot: Hello\n")
	assert.Contains(t, h.out.String(), "[Replies] streaming")
}

func TestREPL_StreamBadArgument(t *testing.T) {
	h := runREPL(t, &script{lines: []string{"/stream sideways"}}, nil)

	assert.Contains(t, h.out.String(), "usage: /stream")
	assert.Equal(t, session.StrategyBuffered, h.sess.Strategy())
}

func TestREPL_Raw(t *testing.T) {
	h := runREPL(t, &script{lines: []string{"/raw", "river", "/raw"}}, func(srv *backendtest.Server) {
		srv.SetChat(backendtest.Guess(42, "warm"))
	})

	out := h.out.String()
	assert.Contains(t, out, "(no reply yet)")
	assert.Contains(t, out, `"percentage": 42`)
}

func TestREPL_Status(t *testing.T) {
	h := runREPL(t, &script{lines: []string{"/start ocean easy", "river", "lake", "/status"}}, nil)

	out := h.out.String()
	assert.Contains(t, out, "active")
	assert.Contains(t, out, "Seed word:  ocean")
	assert.Contains(t, out, "Easy")
	assert.Contains(t, out, "Guesses:    2")
	assert.Contains(t, out, "Messages:   4")
}

func TestREPL_Help(t *testing.T) {
	h := runREPL(t, &script{lines: []string{"/help"}}, nil)

	out := h.out.String()
	for _, cmd := range []string{"/start", "/giveup", "/clear", "/raw", "/quit"} {
		assert.Contains(t, out, cmd)
	}
}

func TestREPL_UnknownCommand(t *testing.T) {
	h := runREPL(t, &script{lines: []string{"/dance"}}, nil)

	assert.Contains(t, h.out.String(), "unknown command: /dance")
	assert.Zero(t, h.srv.Total())
}

func TestREPL_BlankLinesIgnored(t *testing.T) {
	h := runREPL(t, &script{lines: []string{"", "   "}}, nil)

	assert.Zero(t, h.srv.Total())
	assert.Len(t, h.sess.Transcript(), 1, "only the welcome")
}

func TestREPL_CancelledContext(t *testing.T) {
	srv := backendtest.New(t)
	in := &script{lines: []string{"river"}}
	var out bytes.Buffer
	sess := session.New(srv.Client(), NewPrinter(&out), NewLineConfirmer(in), session.DefaultConfig())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.NoError(t, NewREPL(sess, Options{In: in, Out: &out}).Run(ctx))

	assert.Zero(t, srv.Total())
	assert.Equal(t, []string{"river"}, in.lines)
}

// =============================================================================
// CONFIRMATION TESTS
// =============================================================================

func TestIsYes(t *testing.T) {
	tests := []struct {
		answer string
		want   bool
	}{
		{"y", true},
		{"Y", true},
		{"yes", true},
		{" Yes\n", true},
		{"n", false},
		{"no", false},
		{"", false},
		{"yep", false},
	}
	for _, tt := range tests {
		if got := IsYes(tt.answer); got != tt.want {
			t.Errorf("IsYes(%q) = %v, want %v", tt.answer, got, tt.want)
		}
	}
}

func TestLineConfirmer_CancelledContext(t *testing.T) {
	in := &script{answers: []string{"y"}}
	c := NewLineConfirmer(in)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.False(t, c.Confirm(ctx, "sure?"))
	assert.Empty(t, in.prompts, "no prompt once cancelled")
}

func TestRenderMarkdownFallsBackToSource(t *testing.T) {
	out := renderMarkdown("plain words", 40)
	assert.True(t, strings.Contains(out, "plain words"))
}
