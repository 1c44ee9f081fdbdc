// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the interactive chat screen for the bsi-agent TUI.
package chat

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/bsi-agent-tui/internal/agent"
	"github.com/jeranaias/bsi-agent-tui/internal/config"
	"github.com/jeranaias/bsi-agent-tui/internal/conversation"
	"github.com/jeranaias/bsi-agent-tui/internal/ui/styles"
)

// Run wires the backend client and controller together and runs the chat
// screen until the user quits.
func Run(cfg *config.Config) error {
	client := agent.NewClient(cfg.Backend.URL).WithTimeout(cfg.Backend.Timeout())
	controller := conversation.NewController(client)
	defer controller.Close()

	theme := styles.NewThemeWithMode(cfg.UI.Theme)

	m := New(controller, theme, Options{
		Endpoint:       client.Endpoint(),
		ShowTimestamps: cfg.UI.ShowTimestamps,
	})

	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	// Reload endpoint and UI settings when the config file changes on disk.
	// A missing config path or watch failure leaves the session on its
	// startup settings.
	if path, err := config.ConfigPath(); err == nil {
		watcher, err := config.NewWatcher(path, func(updated *config.Config) {
			client.SetEndpoint(updated.Backend.URL)
			p.Send(ConfigReloadedMsg{Config: updated})
		})
		if err == nil {
			if watcher.Watch() == nil {
				defer watcher.Close()
			} else {
				watcher.Close()
			}
		}
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("chat screen failed: %w", err)
	}
	return nil
}
