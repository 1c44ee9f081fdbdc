// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package chat provides the interactive chat screen for the bsi-agent TUI.

The screen is a Bubble Tea model composed from the components package. It
renders the conversation newest-first in a scrollable viewport, a text input
at the bottom and a status bar with key hints.

All conversation state lives in the conversation.Controller; the screen is a
pure observer. Controller transitions arrive as ControllerEventMsg values via
a long-lived listening command, so the Update loop stays single-threaded the
way Bubble Tea expects.
*/
package chat
