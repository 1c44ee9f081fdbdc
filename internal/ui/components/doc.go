// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package components provides the visual UI components for the bsi-agent TUI.

Components are stateless renderers or small Bubble Tea sub-models that the
chat screen composes:

  - MessageBubble: a single chat message, styled per sender
  - CodeBlock: syntax highlighted fenced code via chroma
  - Spinner: the "Thinking" indicator shown while an exchange is in flight
  - Header: application title bar
  - StatusBar: connection target, state and key hints
*/
package components
