// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the interactive chat screen for the bsi-agent TUI.
package chat

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/bsi-agent-tui/internal/conversation"
	"github.com/jeranaias/bsi-agent-tui/internal/ui/components"
)

// =============================================================================
// UPDATE
// =============================================================================

// Update handles all incoming messages for the chat screen.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg), nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case ControllerEventMsg:
		return m.handleControllerEvent(msg)

	case ConfigReloadedMsg:
		return m.handleConfigReloaded(msg), nil

	default:
		// Spinner ticks and other component messages
		var cmds []tea.Cmd
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)
	}
}

// handleResize recalculates component dimensions.
func (m Model) handleResize(msg tea.WindowSizeMsg) Model {
	m.width = msg.Width
	m.height = msg.Height
	m.theme.SetSize(msg.Width, msg.Height)

	m.header.SetWidth(msg.Width)
	m.statusBar.SetWidth(msg.Width)
	m.input.SetWidth(msg.Width)

	m.viewport.Width = msg.Width
	m.viewport.Height = m.transcriptHeight()
	m.refreshTranscript()

	return m
}

// handleKey routes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keyMap.Quit):
		m.quitting = true
		m.controller.Close()
		return m, tea.Quit

	case key.Matches(msg, m.keyMap.Submit):
		return m.handleSubmit()

	case key.Matches(msg, m.keyMap.Up), key.Matches(msg, m.keyMap.Down),
		key.Matches(msg, m.keyMap.PageUp), key.Matches(msg, m.keyMap.PageDown):
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd

	default:
		// Typing continues even while waiting; only submission is gated.
		cmd := m.input.Update(msg)
		m.controller.SetPendingInput(m.input.Value())
		return m, cmd
	}
}

// handleSubmit forwards the input to the controller. Rejected submissions
// (empty input, exchange in flight) leave the screen untouched.
func (m Model) handleSubmit() (tea.Model, tea.Cmd) {
	if !m.controller.Submit(m.input.Value()) {
		return m, nil
	}

	m.input.Reset()
	return m, nil
}

// handleControllerEvent applies a conversation state transition.
func (m Model) handleControllerEvent(msg ControllerEventMsg) (tea.Model, tea.Cmd) {
	m.snapshot = msg.Event.State
	m.refreshTranscript()

	m.statusBar.SetMessageCount(len(m.snapshot.Messages))

	cmds := []tea.Cmd{listenForEvents(m.controller)}

	switch msg.Event.Kind {
	case conversation.EventSubmitted:
		m.statusBar.SetStatus(components.StatusWaiting)
		m.input.SetDisabled(true)
		cmds = append(cmds, m.spinner.Start())

	case conversation.EventResolved:
		m.statusBar.SetStatus(components.StatusReady)
		m.input.SetDisabled(false)
		m.spinner.Stop()
	}

	return m, tea.Batch(cmds...)
}

// handleConfigReloaded applies a config file change to the running screen:
// theme mode, timestamp display and the endpoint shown in the header. The
// backend client itself is retargeted by the watcher callback before this
// message arrives.
func (m Model) handleConfigReloaded(msg ConfigReloadedMsg) Model {
	if msg.Config == nil {
		return m
	}

	m.theme.SetMode(msg.Config.UI.Theme)
	m.showTimestamps = msg.Config.UI.ShowTimestamps
	m.header.SetEndpoint(msg.Config.Backend.URL)
	m.refreshTranscript()

	return m
}

// refreshTranscript re-renders the conversation into the viewport and keeps
// the view pinned to the newest message at the top.
func (m *Model) refreshTranscript() {
	m.viewport.SetContent(m.renderTranscript())
	m.viewport.GotoTop()
}

// transcriptHeight is the viewport height after the fixed chrome.
func (m Model) transcriptHeight() int {
	// Header (4 lines), input (3), status bar (1), spinner line (1)
	h := m.height - 9
	if h < 3 {
		h = 3
	}
	return h
}
