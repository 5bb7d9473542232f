// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for conversations and game state.
package model

import (
	"fmt"
	"strings"
)

// =============================================================================
// DIFFICULTY
// =============================================================================

// Difficulty is how hard the server should make the secret word.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// DefaultDifficulty is used when none is chosen.
const DefaultDifficulty = DifficultyMedium

// Difficulties lists the levels in selector order.
var Difficulties = []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}

// String returns the wire form.
func (d Difficulty) String() string {
	return string(d)
}

// DisplayName returns the capitalised label for selectors.
func (d Difficulty) DisplayName() string {
	switch d {
	case DifficultyEasy:
		return "Easy"
	case DifficultyMedium:
		return "Medium"
	case DifficultyHard:
		return "Hard"
	default:
		return string(d)
	}
}

// Valid reports whether d is a known level.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// Next cycles to the following level, wrapping around.
func (d Difficulty) Next() Difficulty {
	for i, level := range Difficulties {
		if level == d {
			return Difficulties[(i+1)%len(Difficulties)]
		}
	}
	return DefaultDifficulty
}

// Prev cycles to the preceding level, wrapping around.
func (d Difficulty) Prev() Difficulty {
	for i, level := range Difficulties {
		if level == d {
			return Difficulties[(i+len(Difficulties)-1)%len(Difficulties)]
		}
	}
	return DefaultDifficulty
}

// ParseDifficulty accepts a level name in any case. Empty input yields the
// default.
func ParseDifficulty(s string) (Difficulty, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return DefaultDifficulty, nil
	}
	d := Difficulty(s)
	if !d.Valid() {
		return "", fmt.Errorf("unknown difficulty %q (want easy, medium or hard)", s)
	}
	return d, nil
}

// =============================================================================
// PHASE
// =============================================================================

// Phase decides which controls the user sees.
type Phase int

const (
	PhaseSetup Phase = iota
	PhaseActive
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseSetup:
		return "setup"
	case PhaseActive:
		return "active"
	default:
		return "unknown"
	}
}

// =============================================================================
// GAME
// =============================================================================

// Game is the client's view of the current round. It only ever moves from
// setup to active.
type Game struct {
	SeedWord   string
	Difficulty Difficulty
	Phase      Phase
}

// NewGame returns a game in the setup phase.
func NewGame() *Game {
	return &Game{
		Difficulty: DefaultDifficulty,
		Phase:      PhaseSetup,
	}
}

// Activate records a successful start.
func (g *Game) Activate(seedWord string, difficulty Difficulty) {
	g.SeedWord = seedWord
	g.Difficulty = difficulty
	g.Phase = PhaseActive
}

// IsActive reports whether a round is under way.
func (g *Game) IsActive() bool {
	return g.Phase == PhaseActive
}
