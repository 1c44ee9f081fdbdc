// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the interactive chat screen for the bsi-agent TUI.
package chat

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/bsi-agent-tui/internal/conversation"
	"github.com/jeranaias/bsi-agent-tui/internal/ui/components"
	"github.com/jeranaias/bsi-agent-tui/internal/ui/styles"
)

// =============================================================================
// CHAT MODEL
// =============================================================================

// Model is the Bubble Tea model for the chat screen.
type Model struct {
	// Styling
	theme *styles.Theme

	// Dimensions
	width  int
	height int

	// Conversation state. The controller owns it; snapshot is the view's
	// last observed copy.
	controller *conversation.Controller
	snapshot   conversation.State

	// UI components
	viewport  viewport.Model
	input     *components.InputArea
	spinner   components.Spinner
	header    *components.Header
	statusBar *components.StatusBar

	// Key bindings
	keyMap KeyMap

	// Display options
	showTimestamps bool

	quitting bool
}

// Options configure the chat screen.
type Options struct {
	// Endpoint is shown in the header so the user knows where questions go.
	Endpoint string

	// ShowTimestamps adds message timestamps to the transcript.
	ShowTimestamps bool
}

// New creates the chat screen bound to a controller.
func New(controller *conversation.Controller, theme *styles.Theme, opts Options) Model {
	header := components.NewHeader(theme)
	header.SetEndpoint(opts.Endpoint)

	vp := viewport.New(80, 20)

	return Model{
		theme:          theme,
		width:          80,
		height:         24,
		controller:     controller,
		snapshot:       controller.Snapshot(),
		viewport:       vp,
		input:          components.NewInputArea(theme),
		spinner:        components.NewSpinner(),
		header:         header,
		statusBar:      components.NewStatusBar(theme),
		keyMap:         DefaultKeyMap(),
		showTimestamps: opts.ShowTimestamps,
	}
}

// Init starts the event listener and focuses the input.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.input.Focus(),
		listenForEvents(m.controller),
	)
}

// Snapshot exposes the last observed conversation state.
func (m Model) Snapshot() conversation.State {
	return m.snapshot
}
