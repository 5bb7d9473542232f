// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// chat.go - Line-mode game client for wordguess.
//
// Used when stdin or stdout is not a terminal, or with --plain. Every line
// that is not a slash command is sent as a guess.
//
// Interactive Commands:
//   /start <seed> [difficulty]  Start a game
//   /giveup, /g                 Reveal the word and pick a new one
//   /clear, /c                  Clear the conversation
//   /stream [on|off]            Show or switch streamed replies
//   /raw                        Show the last raw reply
//   /status, /s                 Show game and connection state
//   /help, /h                   Show available commands
//   /quit, /q                   Exit
//   Ctrl+C                      Cancel the current request
//   Ctrl+D                      Exit

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/peterh/liner"

	"github.com/jeranaias/wordguess-tui/internal/config"
	"github.com/jeranaias/wordguess-tui/internal/model"
	"github.com/jeranaias/wordguess-tui/internal/session"
	"github.com/jeranaias/wordguess-tui/internal/ui/components"
	"github.com/jeranaias/wordguess-tui/internal/ui/styles"
)

// =============================================================================
// INPUT HISTORY
// =============================================================================

// ChatCLI provides input history and line editing for the line mode.
type ChatCLI struct {
	line        *liner.State
	historyFile string
}

// NewChatCLI creates a ChatCLI and loads the saved input history.
func NewChatCLI() *ChatCLI {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)

	configDir, err := config.ConfigDir()
	if err != nil {
		configDir = os.TempDir()
	}

	cli := &ChatCLI{
		line:        line,
		historyFile: filepath.Join(configDir, "history"),
	}
	cli.LoadHistory()
	return cli
}

// LoadHistory loads input history from file.
func (c *ChatCLI) LoadHistory() {
	if f, err := os.Open(c.historyFile); err == nil {
		c.line.ReadHistory(f)
		f.Close()
	}
}

// ReadInput reads a line with history navigation and records it.
func (c *ChatCLI) ReadInput(prompt string) (string, error) {
	input, err := c.line.Prompt(prompt)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(input) != "" {
		c.line.AppendHistory(input)
	}
	return input, nil
}

// Prompt reads a line without recording it. Used for confirmations.
func (c *ChatCLI) Prompt(prompt string) (string, error) {
	return c.line.Prompt(prompt)
}

// SaveHistory persists input history, readable by the owner only.
func (c *ChatCLI) SaveHistory() {
	if err := os.MkdirAll(filepath.Dir(c.historyFile), 0700); err != nil {
		return
	}
	f, err := os.OpenFile(c.historyFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return
	}
	defer f.Close()
	c.line.WriteHistory(f)
}

// Close saves history and restores the terminal.
func (c *ChatCLI) Close() {
	c.SaveHistory()
	c.line.Close()
}

// =============================================================================
// REPL
// =============================================================================

// LineReader reads one line of user input.
type LineReader interface {
	ReadInput(prompt string) (string, error)
}

// Options configures a REPL.
type Options struct {
	// In supplies input lines. Required.
	In LineReader

	// Out receives banners, help and command output (default: os.Stdout).
	// Session output goes to whatever View the session was created with.
	Out io.Writer

	// Difficulty used by /start when none is given
	Difficulty model.Difficulty

	// ServerURL is shown by /status
	ServerURL string

	// WordWrap is the column limit for rendered help (default: terminal width)
	WordWrap int

	// CatchInterrupts makes Ctrl+C cancel the running request instead of
	// killing the process.
	CatchInterrupts bool
}

// REPL runs a session from a line-oriented terminal.
type REPL struct {
	session *session.Session
	opts    Options

	mu     sync.Mutex
	cancel context.CancelFunc
}

// NewREPL creates a REPL driving s.
func NewREPL(s *session.Session, opts Options) *REPL {
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if !opts.Difficulty.Valid() {
		opts.Difficulty = model.DefaultDifficulty
	}
	if opts.WordWrap <= 0 {
		opts.WordWrap = GetTerminalWidth()
	}
	return &REPL{session: s, opts: opts}
}

// errQuit ends the loop without an error.
var errQuit = errors.New("quit")

// Run reads lines until EOF, an aborted prompt, /quit or ctx ends.
func (r *REPL) Run(ctx context.Context) error {
	if r.opts.In == nil {
		return errors.New("no input source")
	}

	if r.opts.CatchInterrupts {
		stop := r.catchInterrupts()
		defer stop()
	}

	r.printWelcome()
	r.session.Welcome()

	for ctx.Err() == nil {
		input, err := r.opts.In.ReadInput(promptStyle.Render("guess> "))
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
				fmt.Fprintln(r.opts.Out)
				return nil
			}
			return fmt.Errorf("read input: %w", err)
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		if strings.HasPrefix(input, "/") {
			if err := r.handleSlashCommand(ctx, input); err != nil {
				if errors.Is(err, errQuit) {
					return nil
				}
				fmt.Fprintln(r.opts.Out, styles.RenderError(err.Error()))
			}
			continue
		}

		r.cancellable(ctx, func(ctx context.Context) {
			r.session.SendMessage(ctx, input)
		})
	}
	return nil
}

// cancellable runs one session operation that Ctrl+C can cancel.
func (r *REPL) cancellable(ctx context.Context, fn func(ctx context.Context)) {
	opCtx, cancel := context.WithCancel(ctx)
	r.mu.Lock()
	r.cancel = cancel
	r.mu.Unlock()

	defer func() {
		r.mu.Lock()
		r.cancel = nil
		r.mu.Unlock()
		cancel()
	}()
	fn(opCtx)
}

// catchInterrupts cancels the running operation on SIGINT. The returned
// function stops listening.
func (r *REPL) catchInterrupts() func() {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt)
	done := make(chan struct{})

	go func() {
		for {
			select {
			case <-done:
				return
			case <-sigChan:
				r.mu.Lock()
				cancel := r.cancel
				r.mu.Unlock()
				if cancel != nil {
					cancel()
					log.Printf("REQUEST_CANCELLED | source=interrupt")
					fmt.Fprintln(r.opts.Out, "\n"+warningStyle.Render("[Cancelled]"))
				}
			}
		}
	}()

	return func() {
		signal.Stop(sigChan)
		close(done)
	}
}

// =============================================================================
// SLASH COMMANDS
// =============================================================================

const noGameText = "No game in progress. Start one with /start <seed> first."

// handleSlashCommand runs one command. errQuit means exit.
func (r *REPL) handleSlashCommand(ctx context.Context, cmd string) error {
	parts := strings.Fields(cmd)
	if len(parts) == 0 {
		return nil
	}

	command := strings.ToLower(parts[0])
	args := parts[1:]

	switch command {
	case "/help", "/h", "/?", "/":
		r.printHelp()

	case "/start":
		return r.handleStart(ctx, args)

	case "/giveup", "/g":
		if r.session.Phase() != model.PhaseActive {
			fmt.Fprintln(r.opts.Out, styles.RenderWarning(noGameText))
			return nil
		}
		r.cancellable(ctx, r.session.GiveUp)

	case "/clear", "/c":
		r.session.ClearChat()

	case "/stream":
		return r.handleStream(args)

	case "/raw":
		r.printRaw()

	case "/status", "/s":
		r.printStatus()

	case "/quit", "/q", "/exit":
		return errQuit

	default:
		return fmt.Errorf("unknown command: %s (type /help for commands)", command)
	}
	return nil
}

// handleStart parses "/start <seed> [difficulty]". A missing seed still
// goes to the session, which raises the seed-required notice.
func (r *REPL) handleStart(ctx context.Context, args []string) error {
	seed := ""
	if len(args) > 0 {
		seed = args[0]
	}

	difficulty := r.opts.Difficulty
	if len(args) > 1 {
		d, err := model.ParseDifficulty(args[1])
		if err != nil {
			return err
		}
		difficulty = d
	}
	if len(args) > 2 {
		return fmt.Errorf("usage: /start <seed> [easy|medium|hard]")
	}

	r.cancellable(ctx, func(ctx context.Context) {
		r.session.StartGame(ctx, seed, difficulty)
	})
	return nil
}

func (r *REPL) handleStream(args []string) error {
	if len(args) == 0 {
		fmt.Fprintf(r.opts.Out, "%s %s\n", infoStyle.Render("[Replies]"), commandStyle.Render(r.session.Strategy().String()))
		return nil
	}

	var strategy session.Strategy
	switch strings.ToLower(args[0]) {
	case "on", "streaming":
		strategy = session.StrategyStreaming
	case "off", "buffered":
		strategy = session.StrategyBuffered
	default:
		return fmt.Errorf("usage: /stream [on|off]")
	}
	r.session.SetStrategy(strategy)
	fmt.Fprintln(r.opts.Out, styles.RenderSuccess("Replies are now "+strategy.String()))
	return nil
}

// =============================================================================
// DISPLAY FUNCTIONS
// =============================================================================

func (r *REPL) printWelcome() {
	out := r.opts.Out
	fmt.Fprintln(out)
	fmt.Fprintln(out, welcomeStyle.Render("wordguess"))
	fmt.Fprintln(out, infoStyle.Render(strings.Repeat("─", 30)))
	if r.opts.ServerURL != "" {
		fmt.Fprintf(out, "%s %s\n", infoStyle.Render("Server:"), commandStyle.Render(r.opts.ServerURL))
	}
	fmt.Fprintf(out, "%s %s\n", infoStyle.Render("Replies:"), commandStyle.Render(r.session.Strategy().String()))
	fmt.Fprintln(out)
	fmt.Fprintln(out, infoStyle.Render("Start with /start <seed word>, then type guesses. Commands: /help, /quit"))
	fmt.Fprintln(out)
}

const helpMarkdown = "# Commands\n\n" +
	"- `/start <seed> [difficulty]` starts a game; difficulty is easy, medium or hard\n" +
	"- `/giveup` reveals the secret word and picks a new one\n" +
	"- `/clear` clears the conversation\n" +
	"- `/stream [on|off]` shows or switches streamed replies\n" +
	"- `/raw` shows the last reply as the server sent it\n" +
	"- `/status` shows the game and connection state\n" +
	"- `/quit` exits\n\n" +
	"Anything else is sent as a guess. **Ctrl+C** cancels a request, **Ctrl+D** exits.\n"

func (r *REPL) printHelp() {
	fmt.Fprint(r.opts.Out, renderMarkdown(helpMarkdown, r.opts.WordWrap))
}

// renderMarkdown renders markdown for the terminal. Without colors the
// notty style is used; on failure the source is returned.
func renderMarkdown(content string, wrap int) string {
	style := glamour.WithStandardStyle("notty")
	if ColorsEnabled() {
		style = glamour.WithAutoStyle()
	}
	renderer, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(wrap))
	if err != nil {
		return content
	}
	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}

// printRaw shows the last reply, pretty-printed and highlighted when it
// is JSON.
func (r *REPL) printRaw() {
	raw := r.session.LastReply()
	if raw == "" {
		fmt.Fprintln(r.opts.Out, infoStyle.Render("(no reply yet)"))
		return
	}
	code, language := components.FormatRaw(raw)
	if ColorsEnabled() {
		code = components.Highlight(code, language)
	}
	fmt.Fprintln(r.opts.Out, strings.TrimRight(code, "\n"))
}

func (r *REPL) printStatus() {
	out := r.opts.Out
	game := r.session.Game()

	fmt.Fprintf(out, "%s %s\n", infoStyle.Render("Phase:     "), commandStyle.Render(game.Phase.String()))
	if game.IsActive() {
		fmt.Fprintf(out, "%s %s\n", infoStyle.Render("Seed word: "), game.SeedWord)
		fmt.Fprintf(out, "%s %s\n", infoStyle.Render("Difficulty:"), game.Difficulty.DisplayName())
	}
	fmt.Fprintf(out, "%s %s\n", infoStyle.Render("Replies:   "), r.session.Strategy())
	if r.opts.ServerURL != "" {
		fmt.Fprintf(out, "%s %s\n", infoStyle.Render("Server:    "), r.opts.ServerURL)
	}
	messages, guesses := r.session.HistoryCounts()
	fmt.Fprintf(out, "%s %d\n", infoStyle.Render("Guesses:   "), guesses)
	fmt.Fprintf(out, "%s %d\n", infoStyle.Render("Messages:  "), messages)
}
