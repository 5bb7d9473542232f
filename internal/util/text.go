// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides text and file helpers shared across wordguess.
package util

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/unicode/norm"
)

// NormalizeInput trims surrounding whitespace and puts the text in NFC form,
// so "café" typed with a combining accent reaches the server the same way as
// the precomposed spelling.
func NormalizeInput(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

// StringWidth returns the display width of a string.
// Double-width characters (CJK, most emoji) count as 2 columns.
func StringWidth(s string) int {
	return runewidth.StringWidth(s)
}

// TruncateWidth truncates a string to a maximum display width, ending with
// "..." when anything was cut.
func TruncateWidth(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	if maxWidth <= 3 {
		return runewidth.Truncate(s, maxWidth, "")
	}
	return runewidth.Truncate(s, maxWidth, "...")
}

// WrapWidth breaks text into lines no wider than width columns without
// changing any character: joining the lines of a paragraph gives the
// paragraph back. Lines break before a word that no longer fits; a run of
// spaces that overflows continues on the next line, and a word wider than
// the line is split. Existing newlines are preserved.
func WrapWidth(text string, width int) []string {
	paragraphs := strings.Split(text, "\n")
	if width <= 0 {
		return paragraphs
	}

	var lines []string
	for _, paragraph := range paragraphs {
		lines = append(lines, wrapParagraph(paragraph, width)...)
	}
	return lines
}

func wrapParagraph(paragraph string, width int) []string {
	if runewidth.StringWidth(paragraph) <= width {
		return []string{paragraph}
	}

	var (
		lines        []string
		current      strings.Builder
		currentWidth int
	)
	flush := func() {
		lines = append(lines, current.String())
		current.Reset()
		currentWidth = 0
	}

	for _, run := range splitRuns(paragraph) {
		w := runewidth.StringWidth(run)
		if currentWidth+w <= width {
			current.WriteString(run)
			currentWidth += w
			continue
		}

		// Words move to a fresh line; spaces fill what is left of this one.
		if !isSpaceRun(run) && currentWidth > 0 {
			flush()
		}
		for run != "" {
			head, rest := cutWidth(run, width-currentWidth)
			if head == "" && currentWidth == 0 {
				// A rune wider than the whole line still has to go somewhere.
				_, size := utf8.DecodeRuneInString(run)
				head, rest = run[:size], run[size:]
			}
			current.WriteString(head)
			currentWidth += runewidth.StringWidth(head)
			if rest == "" {
				break
			}
			flush()
			run = rest
		}
	}
	if current.Len() > 0 {
		flush()
	}
	return lines
}

// splitRuns cuts s into alternating runs of whitespace and non-whitespace.
func splitRuns(s string) []string {
	var runs []string
	start := 0
	prevSpace := false
	for i, r := range s {
		space := unicode.IsSpace(r)
		if i > 0 && space != prevSpace {
			runs = append(runs, s[start:i])
			start = i
		}
		prevSpace = space
	}
	if start < len(s) {
		runs = append(runs, s[start:])
	}
	return runs
}

func isSpaceRun(run string) bool {
	r, _ := utf8.DecodeRuneInString(run)
	return unicode.IsSpace(r)
}

// cutWidth splits s after the longest prefix that fits in room columns.
// Zero-width runes stay with the text before them.
func cutWidth(s string, room int) (head, rest string) {
	w := 0
	for i, r := range s {
		rw := runewidth.RuneWidth(r)
		if rw > 0 && w+rw > room {
			return s[:i], s[i:]
		}
		w += rw
	}
	return s, ""
}
