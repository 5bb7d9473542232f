// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package styles provides the visual styling system for the wordguess TUI.

All colors use Lip Gloss AdaptiveColor so one palette works on dark and light
terminals.

# Colors (colors.go)

  - Cyan: player messages and focus
  - Purple: bot messages and selections
  - Emerald: solved guesses
  - Amber: busy states and confirmations
  - Rose: errors

Similarity lines are colored cold to hot by SimilarityColor.

# Theme (theme.go)

	theme := styles.NewThemeWithMode(cfg.UI.Theme)
	line := theme.Similarity(87).Render("Similarity: 87%")

The mode is "auto", "dark" or "light". Auto asks the terminal for its
background through termenv.
*/
package styles
