// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package components provides the styled pieces the chat screen is built from.

  - MessageBubble and MessageList (message.go): transcript entries. Bot replies
    that decode as a guess result are drawn as a success banner, a
    similarity line colored by closeness, and a hint line.
  - CodeBlock and RenderRaw (codeblock.go): chroma-highlighted view of the
    last raw reply.
  - Dialog (dialog.go): modal confirm and alert boxes.
  - Header (header.go): title bar with the game phase.

Components are plain structs with a View method; the chat model owns them
and feeds them state.
*/
package components
