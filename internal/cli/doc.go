// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli provides the line-mode interface for wordguess.
//
// The line mode runs the same session as the full-screen interface, reading
// guesses and slash commands from a liner prompt and printing the
// transcript as plain lines. It is used when stdin or stdout is not a
// terminal, or when --plain is given.
//
// # Key Types
//
//   - ChatCLI: liner-backed input with history in ~/.wordguess/history
//   - REPL: the read loop and slash commands
//   - Printer: session.View writing to an io.Writer
//   - LineConfirmer: session.Confirmer asking [y/N] on the prompt line
//
// # Usage
//
//	input := cli.NewChatCLI()
//	defer input.Close()
//
//	s := session.New(client, cli.NewPrinter(os.Stdout), cli.NewLineConfirmer(input), session.DefaultConfig())
//	repl := cli.NewREPL(s, cli.Options{In: input})
//	return repl.Run(ctx)
package cli
