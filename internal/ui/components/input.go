// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for the bsi-agent TUI.
package components

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/bsi-agent-tui/internal/ui/styles"
)

// =============================================================================
// INPUT AREA COMPONENT
// =============================================================================

// InputArea represents the styled text input component.
type InputArea struct {
	input    textinput.Model
	width    int
	focused  bool
	disabled bool
	theme    *styles.Theme
}

// NewInputArea creates a new InputArea component.
func NewInputArea(theme *styles.Theme) *InputArea {
	ti := textinput.New()
	ti.Placeholder = "Type a message..."
	ti.CharLimit = 4096
	ti.Width = 70
	ti.Prompt = "> "

	ti.PromptStyle = lipgloss.NewStyle().
		Foreground(styles.Cyan).
		Bold(true)

	ti.TextStyle = lipgloss.NewStyle().
		Foreground(styles.TextPrimary)

	ti.PlaceholderStyle = lipgloss.NewStyle().
		Foreground(styles.TextMuted).
		Italic(true)

	ti.Cursor.Style = lipgloss.NewStyle().
		Foreground(styles.Cyan)

	return &InputArea{
		input: ti,
		width: 80,
		theme: theme,
	}
}

// Focus focuses the input.
func (i *InputArea) Focus() tea.Cmd {
	i.focused = true
	return i.input.Focus()
}

// Blur removes focus from the input.
func (i *InputArea) Blur() {
	i.focused = false
	i.input.Blur()
}

// Focused returns whether the input is focused.
func (i *InputArea) Focused() bool {
	return i.focused
}

// SetDisabled marks the input as disabled while an exchange is in flight.
// A disabled input keeps its text but swallows no keystrokes; submission is
// gated by the caller.
func (i *InputArea) SetDisabled(disabled bool) {
	i.disabled = disabled
	if disabled {
		i.input.Placeholder = "Waiting for the assistant..."
	} else {
		i.input.Placeholder = "Type a message..."
	}
}

// Disabled returns whether the input is disabled.
func (i *InputArea) Disabled() bool {
	return i.disabled
}

// SetWidth sets the input area width.
func (i *InputArea) SetWidth(width int) {
	i.width = width
	inputWidth := width - 10
	if inputWidth < 20 {
		inputWidth = 20
	}
	i.input.Width = inputWidth
}

// Value returns the current input text.
func (i *InputArea) Value() string {
	return i.input.Value()
}

// SetValue replaces the current input text.
func (i *InputArea) SetValue(value string) {
	i.input.SetValue(value)
}

// Reset clears the input.
func (i *InputArea) Reset() {
	i.input.Reset()
}

// Update handles messages for the input.
func (i *InputArea) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	i.input, cmd = i.input.Update(msg)
	return cmd
}

// View renders the input area.
func (i *InputArea) View() string {
	return i.theme.InputContainer.Width(i.width - 2).Render(i.input.View())
}
