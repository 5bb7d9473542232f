// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package chat provides the full-screen chat view for the wordguess TUI.

# Key Components

## Model (model.go, update.go, view.go)

The Bubble Tea model. It owns the widgets (transcript viewport, guess and
seed inputs, difficulty selector, start button, spinner, help, dialogs) and
the visible copy of the transcript. Two control sets exist:

  - setup: seed word, difficulty and start button, plus the guess input
  - active: the guess input and the give-up control

## Bridge (bridge.go)

Session operations run in tea.Cmd goroutines. The session reports back
through the Bridge, which implements session.View and session.Confirmer by
queueing messages for the program. Messages reach Update in the order the
session produced them, so stream chunks are applied in arrival order.

# Usage

	bridge := chat.NewBridge()
	s := session.New(client, bridge, bridge, cfg)
	m := chat.New(s, bridge, theme, chat.Options{Server: client})
	p := tea.NewProgram(m, tea.WithAltScreen())
	bridge.Start(p.Send)
	_, err := p.Run()
*/
package chat
