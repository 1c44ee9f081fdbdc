// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the interactive chat screen for the bsi-agent TUI.
package chat

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/bsi-agent-tui/internal/ui/components"
	"github.com/jeranaias/bsi-agent-tui/internal/ui/styles"
)

// =============================================================================
// VIEW
// =============================================================================

// View renders the full chat screen.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{
		m.header.View(),
		m.viewport.View(),
		m.renderSpinnerLine(),
		m.input.View(),
		m.statusBar.View(),
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderTranscript renders the conversation newest-first, top to bottom.
func (m Model) renderTranscript() string {
	if len(m.snapshot.Messages) == 0 {
		return m.renderWelcome()
	}

	bubbles := make([]string, 0, len(m.snapshot.Messages))
	for _, msg := range m.snapshot.Messages {
		bubble := components.NewMessageBubble(msg, m.theme)
		bubble.SetWidth(m.width)
		bubble.ShowTimestamp = m.showTimestamps
		bubbles = append(bubbles, bubble.View())
	}

	return strings.Join(bubbles, "\n\n")
}

// renderWelcome fills the empty transcript with a short hint.
func (m Model) renderWelcome() string {
	hint := lipgloss.NewStyle().
		Foreground(styles.TextMuted).
		Italic(true).
		Render("Ask the assistant anything. Your newest exchange appears at the top.")

	return lipgloss.NewStyle().
		Width(m.width).
		Align(lipgloss.Center).
		PaddingTop(2).
		Render(hint)
}

// renderSpinnerLine shows the thinking indicator while waiting.
func (m Model) renderSpinnerLine() string {
	if !m.snapshot.IsWaiting {
		return ""
	}
	return lipgloss.NewStyle().
		PaddingLeft(2).
		Render(m.spinner.View())
}
