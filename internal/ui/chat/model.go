// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the chat view component for the TUI.
package chat

import (
	"context"
	"log"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/wordguess-tui/internal/config"
	"github.com/jeranaias/wordguess-tui/internal/model"
	"github.com/jeranaias/wordguess-tui/internal/session"
	"github.com/jeranaias/wordguess-tui/internal/ui/components"
	"github.com/jeranaias/wordguess-tui/internal/ui/styles"
	"github.com/jeranaias/wordguess-tui/internal/util"
)

// =============================================================================
// FOCUS
// =============================================================================

// focus is the control that receives typed keys.
type focus int

const (
	focusGuess focus = iota
	focusSeed
	focusDifficulty
	focusStart
)

// =============================================================================
// CHAT MODEL
// =============================================================================

// ServerTarget is the part of the game server client the screen can
// repoint when the config file changes.
type ServerTarget interface {
	BaseURL() string
	SetBaseURL(url string)
}

// Options configures a Model.
type Options struct {
	// Context bounds every request; cancelled on quit.
	Context context.Context

	// Server is repointed on config reload. Optional.
	Server ServerTarget

	// Difficulty preselected in the setup controls.
	Difficulty model.Difficulty
}

// Model is the Bubble Tea model for the chat screen.
type Model struct {
	session *session.Session
	bridge  *Bridge
	server  ServerTarget
	theme   *styles.Theme
	keys    KeyMap

	// Widgets
	viewport viewport.Model
	guess    textinput.Model
	seed     textinput.Model
	spinner  spinner.Model
	help     help.Model
	dialog   *components.Dialog
	header   *components.Header
	list     *components.MessageList

	// Screen state, mutated only by Update
	messages   []model.Message
	phase      model.Phase
	difficulty model.Difficulty
	startBusy  bool
	focus      focus
	showRaw    bool
	pending    int
	confirms   map[int]chan<- bool

	cancelMgr *cancelManager

	width    int
	height   int
	ready    bool
	quitting bool
}

// New creates the chat screen for s. The bridge must be the View and
// Confirmer s was created with.
func New(s *session.Session, bridge *Bridge, theme *styles.Theme, opts Options) Model {
	if theme == nil {
		theme = styles.NewTheme()
	}
	difficulty := opts.Difficulty
	if !difficulty.Valid() {
		difficulty = model.DefaultDifficulty
	}

	guess := textinput.New()
	guess.Placeholder = "Type your guess..."
	guess.Prompt = "> "
	guess.CharLimit = 200

	seed := textinput.New()
	seed.Placeholder = "Seed word"
	seed.Prompt = ""
	seed.CharLimit = 64

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = theme.PendingText

	header := components.NewHeader(theme)
	header.Strategy = s.Strategy().String()
	header.Difficulty = difficulty
	if opts.Server != nil {
		header.ServerURL = opts.Server.BaseURL()
	}

	m := Model{
		session:    s,
		bridge:     bridge,
		server:     opts.Server,
		theme:      theme,
		keys:       DefaultKeyMap(),
		viewport:   viewport.New(80, 20),
		guess:      guess,
		seed:       seed,
		spinner:    sp,
		help:       help.New(),
		dialog:     components.NewDialog(theme),
		header:     header,
		list:       components.NewMessageList(theme),
		phase:      model.PhaseSetup,
		difficulty: difficulty,
		confirms:   make(map[int]chan<- bool),
		cancelMgr:  newCancelManager(opts.Context),
		width:      80,
		height:     24,
	}
	m.setFocus(focusSeed)
	return m
}

// =============================================================================
// BUBBLE TEA INTERFACE
// =============================================================================

// Init shows the welcome message.
func (m Model) Init() tea.Cmd {
	s := m.session
	return tea.Batch(textinput.Blink, func() tea.Msg {
		s.Welcome()
		return nil
	})
}

// View renders the chat screen.
func (m Model) View() string {
	return m.render()
}

// =============================================================================
// OPERATIONS
// =============================================================================

// runOp runs a session operation off the Update loop. Its View calls come
// back through the bridge.
func (m *Model) runOp(name string, fn func(ctx context.Context)) tea.Cmd {
	m.pending++
	ctx := m.cancelMgr.context()
	op := func() tea.Msg {
		fn(ctx)
		return opDoneMsg{op: name}
	}
	if m.pending == 1 {
		return tea.Batch(op, m.spinner.Tick)
	}
	return op
}

func (m *Model) sendGuess() tea.Cmd {
	s, text := m.session, m.guess.Value()
	return m.runOp(opSend, func(ctx context.Context) {
		s.SendMessage(ctx, text)
	})
}

// startGame marks the start button busy before the request is queued so a
// second Enter cannot start another game. A blank seed only raises the
// session's alert and leaves the button idle.
func (m *Model) startGame() tea.Cmd {
	if m.startBusy {
		return nil
	}
	s, seed, difficulty := m.session, m.seed.Value(), m.difficulty
	if util.NormalizeInput(seed) != "" {
		m.startBusy = true
	}
	return m.runOp(opStartGame, func(ctx context.Context) {
		s.StartGame(ctx, seed, difficulty)
	})
}

func (m *Model) giveUp() tea.Cmd {
	s := m.session
	return m.runOp(opGiveUp, func(ctx context.Context) {
		s.GiveUp(ctx)
	})
}

// quit cancels requests, declines open confirmations and stops the bridge.
func (m *Model) quit() tea.Cmd {
	m.quitting = true
	m.cancelMgr.cancelAll()
	for _, result := range m.dialog.CloseAll() {
		m.answer(result)
	}
	if m.bridge != nil {
		m.bridge.Stop()
	}
	return tea.Quit
}

func (m *Model) answer(result components.DialogResultMsg) {
	reply, ok := m.confirms[result.ID]
	if !ok {
		return
	}
	delete(m.confirms, result.ID)
	reply <- result.Yes
}

// applyConfig takes the reloadable settings from a changed config file.
func (m *Model) applyConfig(cfg *config.Config) {
	if cfg == nil {
		return
	}
	if m.server != nil && cfg.Backend.URL != "" && cfg.Backend.URL != m.server.BaseURL() {
		m.server.SetBaseURL(cfg.Backend.URL)
		m.header.ServerURL = cfg.Backend.URL
	}
	strategy := session.ParseStrategy(cfg.Backend.Strategy)
	m.session.SetStrategy(strategy)
	m.session.SetGameAware(cfg.Backend.GameAware)
	m.header.Strategy = strategy.String()
	log.Printf("CONFIG_APPLIED | url=%s strategy=%s game_aware=%t", cfg.Backend.URL, strategy, cfg.Backend.GameAware)
}

// =============================================================================
// FOCUS
// =============================================================================

func (m *Model) focusOrder() []focus {
	if m.phase == model.PhaseActive {
		return []focus{focusGuess}
	}
	return []focus{focusSeed, focusDifficulty, focusStart, focusGuess}
}

func (m *Model) setFocus(f focus) {
	m.focus = f
	m.guess.Blur()
	m.seed.Blur()
	switch f {
	case focusGuess:
		m.guess.Focus()
	case focusSeed:
		m.seed.Focus()
	}
}

func (m *Model) cycleFocus(step int) {
	order := m.focusOrder()
	idx := 0
	for i, f := range order {
		if f == m.focus {
			idx = i
		}
	}
	idx = (idx + step + len(order)) % len(order)
	m.setFocus(order[idx])
}

// =============================================================================
// GETTERS
// =============================================================================

// Messages returns the transcript as shown.
func (m Model) Messages() []model.Message {
	return m.messages
}

// Phase returns the control set on screen.
func (m Model) Phase() model.Phase {
	return m.phase
}

// StartLabel returns the current label of the start button.
func (m Model) StartLabel() string {
	if m.startBusy {
		return session.StartBusyLabel
	}
	return session.StartLabel
}

// Difficulty returns the selected difficulty.
func (m Model) Difficulty() model.Difficulty {
	return m.difficulty
}

// GuessValue returns the text in the guess input.
func (m Model) GuessValue() string {
	return m.guess.Value()
}

// DialogPrompt returns the text of the open dialog, if any.
func (m Model) DialogPrompt() string {
	return m.dialog.Prompt()
}

// Busy reports whether any operation is in flight.
func (m Model) Busy() bool {
	return m.pending > 0
}
