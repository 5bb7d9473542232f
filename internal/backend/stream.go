// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package backend provides the HTTP client for the word-guessing game server.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"strings"
)

// readBufferSize is the size of a single read from the response body.
const readBufferSize = 4096

// =============================================================================
// STREAM READER
// =============================================================================

// StreamReader decodes a stream of {"content": ...} objects. Objects may be
// newline separated, back to back, or split across reads; each is decoded as
// soon as its last byte arrives.
type StreamReader struct {
	reader io.Reader

	// pending holds bytes not yet decoded.
	pending []byte

	// PERFORMANCE: strings.Builder avoids quadratic allocations
	accumulator strings.Builder
	chunkCount  int
	skipped     int
}

// NewStreamReader creates a new stream reader from an io.Reader.
func NewStreamReader(r io.Reader) *StreamReader {
	return &StreamReader{reader: r}
}

// Process reads the stream and calls the callback for each decoded fragment.
// Blocks until the stream ends, a read fails or the context is cancelled.
func (s *StreamReader) Process(ctx context.Context, callback StreamCallback) error {
	buf := make([]byte, readBufferSize)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		n, err := s.reader.Read(buf)
		if n > 0 {
			s.pending = append(s.pending, buf[:n]...)
			s.drain(callback, false)
		}

		if err != nil {
			if errors.Is(err, io.EOF) {
				s.drain(callback, true)
				return nil
			}
			return err
		}
	}
}

// drain decodes every complete object in pending. When final is set the
// stream has ended and any leftover bytes are dropped.
func (s *StreamReader) drain(callback StreamCallback, final bool) {
	for {
		s.pending = bytes.TrimLeft(s.pending, " \t\r\n")
		if len(s.pending) == 0 {
			s.pending = nil
			return
		}

		dec := json.NewDecoder(bytes.NewReader(s.pending))
		var frame streamFrame
		err := dec.Decode(&frame)

		var syntaxErr *json.SyntaxError
		switch {
		case err == nil:
			s.pending = s.pending[dec.InputOffset():]
			s.emit(frame, callback)

		case errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF):
			// Incomplete object; wait for more bytes.
			if final {
				log.Printf("STREAM_CHUNK_SKIPPED | reason=truncated bytes=%d", len(s.pending))
				s.skipped++
				s.pending = nil
			}
			return

		case errors.As(err, &syntaxErr):
			log.Printf("STREAM_CHUNK_SKIPPED | reason=syntax error=%v", err)
			s.skipped++
			s.discardSegment()

		default:
			// Well-formed JSON of the wrong shape. The decoder has
			// already consumed it.
			log.Printf("STREAM_CHUNK_SKIPPED | reason=shape error=%v", err)
			s.skipped++
			s.pending = s.pending[dec.InputOffset():]
		}
	}
}

// discardSegment drops the undecodable prefix of pending: through the next
// newline if there is one, otherwise up to the next object start.
func (s *StreamReader) discardSegment() {
	if i := bytes.IndexByte(s.pending, '\n'); i >= 0 {
		s.pending = s.pending[i+1:]
		return
	}
	if i := bytes.IndexByte(s.pending[1:], '{'); i >= 0 {
		s.pending = s.pending[i+1:]
		return
	}
	s.pending = nil
}

func (s *StreamReader) emit(frame streamFrame, callback StreamCallback) {
	if frame.Content.IsZero() {
		log.Printf("STREAM_CHUNK_SKIPPED | reason=no_content")
		s.skipped++
		return
	}

	text := frame.Content.Text()
	s.accumulator.WriteString(text)
	chunk := StreamChunk{
		Content:     text,
		Accumulated: s.accumulator.String(),
		Index:       s.chunkCount,
	}
	s.chunkCount++

	if callback != nil {
		callback(chunk)
	}
}

// GetAccumulated returns all accumulated content.
func (s *StreamReader) GetAccumulated() string {
	return s.accumulator.String()
}

// ChunkCount returns the number of fragments decoded.
func (s *StreamReader) ChunkCount() int {
	return s.chunkCount
}

// SkippedCount returns the number of fragments that were dropped.
func (s *StreamReader) SkippedCount() int {
	return s.skipped
}
