// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides text and file helpers shared across wordguess.
//
// # Key Functions
//
//   - NormalizeInput: trim and NFC-normalise what the user typed
//   - StringWidth, TruncateWidth, WrapWidth: display-width aware layout
//   - AtomicWriteFile: crash-safe file writing with fsync
//
// # Usage
//
//	guess := util.NormalizeInput(raw)
//	for _, line := range util.WrapWidth(reply, 60) {
//	    fmt.Println(line)
//	}
package util
