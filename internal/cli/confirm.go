// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// confirm.go - Yes/no confirmation for the line mode.
//
// Anything other than an explicit "y" or "yes" is a no, including a read
// error, an aborted prompt and a cancelled context.

package cli

import (
	"context"
	"strings"

	"github.com/jeranaias/wordguess-tui/internal/session"
)

// Prompter reads one answer without recording it in the input history.
type Prompter interface {
	Prompt(prompt string) (string, error)
}

// LineConfirmer asks confirmations on the prompt line. It implements
// session.Confirmer.
type LineConfirmer struct {
	in Prompter
}

// NewLineConfirmer creates a confirmer reading answers from in.
func NewLineConfirmer(in Prompter) *LineConfirmer {
	return &LineConfirmer{in: in}
}

var _ session.Confirmer = (*LineConfirmer)(nil)

// Confirm prints the question with a [y/N] suffix and reads the answer.
func (c *LineConfirmer) Confirm(ctx context.Context, prompt string) bool {
	if ctx.Err() != nil || c.in == nil {
		return false
	}
	answer, err := c.in.Prompt(warningStyle.Render(prompt) + " [y/N]: ")
	if err != nil {
		return false
	}
	if ctx.Err() != nil {
		return false
	}
	return IsYes(answer)
}

// IsYes reports whether answer is an affirmative response.
func IsYes(answer string) bool {
	response := strings.ToLower(strings.TrimSpace(answer))
	return response == "y" || response == "yes"
}
