// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package backend provides the HTTP client for the word-guessing game server.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"sync"
)

// =============================================================================
// ERROR TYPES
// =============================================================================

// ClientError represents an error from the game server client.
type ClientError struct {
	Type       ErrorType
	Message    string
	StatusCode int
	Cause      error
}

func (e *ClientError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *ClientError) Unwrap() error {
	return e.Cause
}

// Is matches sentinel errors by type.
func (e *ClientError) Is(target error) bool {
	t, ok := target.(*ClientError)
	if !ok {
		return false
	}
	return t.Type == e.Type && t.StatusCode == 0 && t.Cause == nil
}

// ErrorType categorizes client errors for handling.
type ErrorType int

const (
	ErrTypeUnknown ErrorType = iota
	ErrTypeTransport
	ErrTypeStatus
	ErrTypeMalformed
)

// String returns the error type name used in logs.
func (t ErrorType) String() string {
	switch t {
	case ErrTypeTransport:
		return "transport"
	case ErrTypeStatus:
		return "status"
	case ErrTypeMalformed:
		return "malformed"
	default:
		return "unknown"
	}
}

// Sentinel errors for easy checking.
var (
	ErrUnreachable = &ClientError{Type: ErrTypeTransport, Message: "game server is not reachable"}
	ErrBadStatus   = &ClientError{Type: ErrTypeStatus, Message: "game server returned an error status"}
	ErrMalformed   = &ClientError{Type: ErrTypeMalformed, Message: "malformed response from game server"}
)

// =============================================================================
// CLIENT CONFIGURATION
// =============================================================================

// DefaultBaseURL is where the game server listens unless configured otherwise.
const DefaultBaseURL = "http://localhost:5000"

// ClientConfig holds configuration options for the game server client.
type ClientConfig struct {
	// BaseURL is the server base URL (default: http://localhost:5000)
	BaseURL string

	// HTTPClient overrides the transport. Requests never get a timeout of
	// their own; cancel the context instead.
	HTTPClient *http.Client
}

// DefaultConfig returns the default client configuration.
func DefaultConfig() *ClientConfig {
	return &ClientConfig{
		BaseURL: DefaultBaseURL,
	}
}

// =============================================================================
// CLIENT
// =============================================================================

// Client handles communication with the game server.
//
// The Client is safe for concurrent use. The base URL may be swapped while
// requests are in flight; a request keeps the URL it started with.
type Client struct {
	mu         sync.RWMutex
	baseURL    string
	httpClient *http.Client
}

// NewClientWithConfig creates a new client with custom configuration.
func NewClientWithConfig(config *ClientConfig) *Client {
	if config == nil {
		config = DefaultConfig()
	}

	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// BaseURL returns the current server base URL.
func (c *Client) BaseURL() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.baseURL
}

// SetBaseURL points subsequent requests at a different server.
func (c *Client) SetBaseURL(baseURL string) {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c.mu.Lock()
	c.baseURL = strings.TrimRight(baseURL, "/")
	c.mu.Unlock()
}

// =============================================================================
// CHAT OPERATIONS
// =============================================================================

// Chat sends the conversation and decodes the whole reply body.
func (c *Client) Chat(ctx context.Context, request ChatRequest) (*ChatResponse, error) {
	resp, err := c.postJSON(ctx, ChatPath, chatBody(request))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if err := checkStatus(resp, "chat request failed"); err != nil {
		return nil, err
	}

	var result ChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, &ClientError{Type: ErrTypeMalformed, Message: "failed to decode chat response", Cause: err}
	}
	if result.Content.IsZero() {
		return nil, &ClientError{Type: ErrTypeMalformed, Message: "chat response has no content"}
	}

	return &result, nil
}

// =============================================================================
// STREAMING CHAT
// =============================================================================

// StreamCallback is called for each fragment decoded from a streamed reply.
type StreamCallback func(chunk StreamChunk)

// ChatStream sends the conversation and reads the reply incrementally.
// The callback is called synchronously in arrival order. Fragments that do
// not decode are logged and skipped. A reply with no decodable fragment at
// all is reported as malformed.
func (c *Client) ChatStream(ctx context.Context, request ChatRequest, callback StreamCallback) error {
	resp, err := c.postJSON(ctx, ChatPath, chatBody(request))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := checkStatus(resp, "stream request failed"); err != nil {
		return err
	}

	reader := NewStreamReader(resp.Body)
	if err := reader.Process(ctx, callback); err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return &ClientError{Type: ErrTypeTransport, Message: "stream cancelled", Cause: err}
		}
		return &ClientError{Type: ErrTypeTransport, Message: "stream interrupted", Cause: err}
	}

	if reader.ChunkCount() == 0 {
		return &ClientError{
			Type:    ErrTypeMalformed,
			Message: fmt.Sprintf("stream carried no content (%d fragments skipped)", reader.SkippedCount()),
		}
	}

	log.Printf("STREAM_COMPLETE | fragments=%d skipped=%d length=%d",
		reader.ChunkCount(), reader.SkippedCount(), len(reader.GetAccumulated()))
	return nil
}

// =============================================================================
// GAME OPERATIONS
// =============================================================================

// StartGame asks the server to begin a game around seedWord. Success is
// decided by the status code alone; the body is decoded when it can be.
func (c *Client) StartGame(ctx context.Context, seedWord, difficulty string) (*StartGameResponse, error) {
	resp, err := c.postJSON(ctx, StartGamePath, StartGameRequest{
		SeedWord:   seedWord,
		Difficulty: difficulty,
	})
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if err := checkStatus(resp, "start game failed"); err != nil {
		return nil, err
	}

	var result StartGameResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil && !errors.Is(err, io.EOF) {
		log.Printf("START_GAME_BODY_IGNORED | error=%v", err)
	}

	return &result, nil
}

// GiveUp reveals the current secret word and asks for a new one.
// The request has no body.
func (c *Client) GiveUp(ctx context.Context) (*GiveUpResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL()+GiveUpPath, http.NoBody)
	if err != nil {
		return nil, &ClientError{Type: ErrTypeTransport, Message: "failed to create request", Cause: err}
	}

	resp, err := c.do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if err := checkStatus(resp, "give up failed"); err != nil {
		return nil, err
	}

	var result GiveUpResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, &ClientError{Type: ErrTypeMalformed, Message: "failed to decode give-up response", Cause: err}
	}

	return &result, nil
}

// =============================================================================
// REQUEST HELPERS
// =============================================================================

// chatBody guarantees messages is sent as an array, never null.
func chatBody(request ChatRequest) ChatRequest {
	if request.Messages == nil {
		request.Messages = []Message{}
	}
	return request
}

func (c *Client) postJSON(ctx context.Context, path string, payload any) (*http.Response, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, &ClientError{Type: ErrTypeUnknown, Message: "failed to marshal request", Cause: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL()+path, bytes.NewReader(body))
	if err != nil {
		return nil, &ClientError{Type: ErrTypeTransport, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req)
}

func (c *Client) do(req *http.Request) (*http.Response, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, &ClientError{Type: ErrTypeTransport, Message: "request cancelled", Cause: err}
		}
		return nil, &ClientError{Type: ErrTypeTransport, Message: ErrUnreachable.Message, Cause: err}
	}
	return resp, nil
}

// checkStatus turns a non-2xx response into a ClientError, using the
// server's error body when it has one.
func checkStatus(resp *http.Response, action string) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	msg := action + ": " + resp.Status
	var serverErr ErrorResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, 64<<10)).Decode(&serverErr); err == nil {
		switch {
		case serverErr.Error != "":
			msg = action + ": " + serverErr.Error
		case serverErr.Message != "":
			msg = action + ": " + serverErr.Message
		}
	}

	return &ClientError{
		Type:       ErrTypeStatus,
		Message:    msg,
		StatusCode: resp.StatusCode,
	}
}

// =============================================================================
// ERROR PREDICATES
// =============================================================================

// IsTransport checks if an error is a network or transport failure.
func IsTransport(err error) bool {
	return hasType(err, ErrTypeTransport)
}

// IsStatus checks if an error came from a non-2xx response.
func IsStatus(err error) bool {
	return hasType(err, ErrTypeStatus)
}

// IsMalformed checks if an error came from an undecodable body.
func IsMalformed(err error) bool {
	return hasType(err, ErrTypeMalformed)
}

func hasType(err error, t ErrorType) bool {
	var clientErr *ClientError
	if errors.As(err, &clientErr) {
		return clientErr.Type == t
	}
	return false
}
