// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides utility functions for the bsi-agent application.
//
// This package contains common helper functions used throughout the
// application for string manipulation and display formatting.
//
// # Key Functions
//
// String Utilities:
//   - TruncateRunes: UTF-8 safe string truncation with ellipsis
//   - TruncateWidth: display-width truncation for terminal columns
//
// Formatting:
//   - FormatClock: short HH:MM timestamps for the transcript
//   - FormatRelative: human friendly "2m ago" style timestamps
//
// # Usage
//
//	// Truncate long strings safely for display
//	display := util.TruncateRunes(longText, 50)
//
//	// Format a timestamp for the status bar
//	ts := util.FormatClock(msg.Timestamp)
package util
