// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package backendtest

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/wordguess-tui/internal/backend"
)

func TestServer_ScriptedChat(t *testing.T) {
	srv := New(t)
	srv.SetChat(Guess(42, "warm"), Text("second"))
	client := srv.Client()

	first, err := client.Chat(context.Background(), backend.ChatRequest{})
	require.NoError(t, err)
	assert.Equal(t, `{"hint":"warm","percentage":42}`, first.Content.Text())

	for i := 0; i < 2; i++ {
		resp, err := client.Chat(context.Background(), backend.ChatRequest{})
		require.NoError(t, err)
		assert.Equal(t, "second", resp.Content.Text(), "last reply repeats")
	}
	assert.Equal(t, 3, srv.Count(backend.ChatPath))
}

func TestServer_Stream(t *testing.T) {
	srv := New(t)
	srv.SetChat(Stream("Hel", "lo"))

	var got []string
	err := srv.Client().ChatStream(context.Background(), backend.ChatRequest{}, func(c backend.StreamChunk) {
		got = append(got, c.Accumulated)
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Hel", "Hello"}, got)
}

func TestServer_RecordsRequests(t *testing.T) {
	srv := New(t)
	client := srv.Client()
	ctx := context.Background()

	_, err := client.StartGame(ctx, "apple", "easy")
	require.NoError(t, err)
	_, err = client.GiveUp(ctx)
	require.NoError(t, err)

	starts := srv.StartRequests()
	require.Len(t, starts, 1)
	assert.Equal(t, backend.StartGameRequest{SeedWord: "apple", Difficulty: "easy"}, starts[0])

	bodies := srv.GiveUpBodies()
	require.Len(t, bodies, 1)
	assert.Empty(t, bodies[0])
	assert.Equal(t, 2, srv.Total())
}

func TestServer_Fail(t *testing.T) {
	srv := New(t)
	srv.SetStartGame(Fail(http.StatusInternalServerError, "no words left"))

	_, err := srv.Client().StartGame(context.Background(), "apple", "easy")
	require.Error(t, err)
	assert.True(t, backend.IsStatus(err))
	assert.Contains(t, err.Error(), "no words left")
}
