// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the interactive chat screen for the bsi-agent TUI.
//
// This file defines the Bubble Tea message types used by the chat screen and
// the commands that produce them.
package chat

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/bsi-agent-tui/internal/config"
	"github.com/jeranaias/bsi-agent-tui/internal/conversation"
)

// =============================================================================
// CONTROLLER MESSAGES
// =============================================================================

// ControllerEventMsg delivers a conversation state transition to the screen.
type ControllerEventMsg struct {
	Event conversation.Event
}

// ConfigReloadedMsg carries a freshly loaded configuration after the config
// file changed on disk.
type ConfigReloadedMsg struct {
	Config *config.Config
}

// listenForEvents blocks on the controller's event channel and converts the
// next transition into a tea.Msg. The Update loop re-issues it after every
// delivery, keeping exactly one listener alive.
func listenForEvents(c *conversation.Controller) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-c.Events()
		if !ok {
			return nil
		}
		return ControllerEventMsg{Event: ev}
	}
}
