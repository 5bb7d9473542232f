// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for conversations and game state.
//
// # Key Types
//
//   - Conversation: ordered message list, cleared as a whole
//   - Message: one entry with an ID and a role fixed at creation
//   - Game: seed word, difficulty and setup/active phase
//   - GuessResult: similarity and hint decoded from assistant content
//
// # Usage
//
//	conv := model.NewConversation()
//	conv.AddMessage(model.NewUserMessage("banana"))
//	reply := conv.AddAssistantMessage(`{"percentage": 40, "hint": "yellow"}`)
//	if result, ok := reply.Decode(); ok {
//	    fmt.Println(result.SimilarityLine())
//	}
//
// DecodeContent is the only function that parses assistant content. Anything
// it rejects is shown as plain text.
package model
