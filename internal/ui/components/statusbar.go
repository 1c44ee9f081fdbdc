// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for the bsi-agent TUI.
package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/bsi-agent-tui/internal/ui/styles"
)

// =============================================================================
// STATUS TYPES
// =============================================================================

// Status represents the current exchange state shown in the bar.
type Status int

const (
	StatusReady Status = iota
	StatusWaiting
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusReady:
		return "READY"
	case StatusWaiting:
		return "WAITING"
	case StatusError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Icon returns an ASCII status indicator.
func (s Status) Icon() string {
	switch s {
	case StatusReady:
		return "*"
	case StatusWaiting:
		return "~"
	case StatusError:
		return "!"
	default:
		return "?"
	}
}

// =============================================================================
// STATUS BAR COMPONENT
// =============================================================================

// StatusBar renders the bottom status line: state, message count and key
// hints.
type StatusBar struct {
	Width        int
	Status       Status
	MessageCount int
	theme        *styles.Theme
}

// NewStatusBar creates a new StatusBar.
func NewStatusBar(theme *styles.Theme) *StatusBar {
	return &StatusBar{
		Width:  80,
		Status: StatusReady,
		theme:  theme,
	}
}

// SetWidth updates the bar width.
func (s *StatusBar) SetWidth(width int) {
	s.Width = width
}

// SetStatus updates the exchange state.
func (s *StatusBar) SetStatus(status Status) {
	s.Status = status
}

// SetMessageCount updates the message counter.
func (s *StatusBar) SetMessageCount(n int) {
	s.MessageCount = n
}

// View renders the status bar sized to the current width.
func (s *StatusBar) View() string {
	statusStyle := s.theme.StatusReady
	if s.Status == StatusWaiting {
		statusStyle = s.theme.StatusBusy
	}
	statusBadge := statusStyle.Render(s.Status.Icon() + " " + s.Status.String())

	countView := lipgloss.NewStyle().
		Foreground(styles.TextMuted).
		Render(fmt.Sprintf("%d messages", s.MessageCount))

	hints := s.renderHints()

	left := statusBadge + "  " + countView
	gap := s.Width - lipgloss.Width(left) - lipgloss.Width(hints) - 2
	if gap < 1 {
		gap = 1
	}

	line := left + strings.Repeat(" ", gap) + hints

	return s.theme.StatusBar.Width(s.Width).Render(line)
}

// renderHints renders the keyboard shortcut hints.
func (s *StatusBar) renderHints() string {
	key := s.theme.ShortcutKey
	desc := s.theme.ShortcutDesc

	parts := []string{
		key.Render("enter") + desc.Render(" send"),
		key.Render("ctrl+c") + desc.Render(" quit"),
	}
	return strings.Join(parts, "  ")
}
