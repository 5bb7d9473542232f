// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package backend provides the HTTP client for the word-guessing game server.
//
// The game server exposes three routes. This package covers all of them and
// leaves the game rules to the server.
//
// # Key Types
//
//   - Client: HTTP client for /chat, /start-game and /give-up
//   - ChatRequest: full conversation plus optional game parameters
//   - Content: the content field of a reply, sent as a JSON string or a raw value
//   - StreamReader: reassembles streamed JSON objects across read boundaries
//   - ClientError: transport, status and malformed-body failures
//
// # Usage
//
// Buffered chat:
//
//	client := backend.NewClientWithConfig(nil)
//	resp, err := client.Chat(ctx, backend.ChatRequest{
//	    Messages: []backend.Message{{Role: "user", Content: "apple"}},
//	})
//	fmt.Println(resp.Content.Text())
//
// Streaming chat:
//
//	err := client.ChatStream(ctx, req, func(chunk backend.StreamChunk) {
//	    fmt.Print(chunk.Content)
//	})
//
// No request carries a timeout. Cancel the context to abandon one.
package backend
