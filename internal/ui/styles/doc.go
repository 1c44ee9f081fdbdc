// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package styles provides the visual styling system for the bsi-agent TUI.

This package defines the color palette and component styles used throughout
the application. All colors use Lip Gloss AdaptiveColor for automatic
light/dark terminal detection.

# Color System (colors.go)

  - Cyan - Brand color for the header and user highlights
  - Purple - Accent for agent messages
  - Rose - Errors and failed exchanges
  - Amber - Warnings

Message bubbles use semantic color tokens:

	UserBubbleBg  - Background for user messages
	UserBubbleFg  - Text color for user messages
	BotBubbleBg   - Background for agent messages
	BotBubbleFg   - Text color for agent messages

# Theme (theme.go)

Theme bundles the configured lipgloss styles. NewTheme detects the terminal
background via termenv; NewThemeWithMode forces "dark" or "light" when the
user configured an explicit theme.
*/
package styles
