// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for the bsi-agent TUI.
package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/bsi-agent-tui/internal/agent"
	"github.com/jeranaias/bsi-agent-tui/internal/model"
	"github.com/jeranaias/bsi-agent-tui/internal/ui/styles"
	"github.com/jeranaias/bsi-agent-tui/internal/util"
)

// =============================================================================
// MESSAGE BUBBLE COMPONENT
// =============================================================================

// MessageBubble represents a styled message bubble.
type MessageBubble struct {
	Message       model.Message
	Width         int
	ShowTimestamp bool
	theme         *styles.Theme
}

// NewMessageBubble creates a new MessageBubble.
func NewMessageBubble(msg model.Message, theme *styles.Theme) *MessageBubble {
	return &MessageBubble{
		Message:       msg,
		Width:         80,
		ShowTimestamp: false,
		theme:         theme,
	}
}

// SetWidth sets the bubble width.
func (b *MessageBubble) SetWidth(width int) {
	b.Width = width
}

// View renders the message bubble.
func (b *MessageBubble) View() string {
	switch b.Message.Sender {
	case model.RoleUser:
		return b.renderUserBubble()
	case model.RoleBot:
		if agent.IsFailureText(b.Message.Text) {
			return b.renderFailureBubble()
		}
		return b.renderBotBubble()
	default:
		return b.renderBotBubble()
	}
}

// ==========================================================================
// USER BUBBLE - Blue tones, right-aligned feel
// ==========================================================================

func (b *MessageBubble) renderUserBubble() string {
	content := b.Message.Text
	if content == "" {
		content = "..."
	}

	// Word wrap the content
	maxContentWidth := b.Width - 12 // Account for margins and padding
	if maxContentWidth < 20 {
		maxContentWidth = 20
	}
	wrappedContent := wordWrap(content, maxContentWidth)

	contentWidth := minInt(maxLineWidth(wrappedContent)+4, b.Width-8)

	bubbleStyle := lipgloss.NewStyle().
		Foreground(styles.UserBubbleFg).
		Background(styles.UserBubbleBg).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(styles.UserBubbleBorder).
		Padding(0, 2).
		Width(contentWidth)

	bubble := bubbleStyle.Render(wrappedContent)

	header := b.renderHeader("you")

	// Right-align the bubble with left margin
	leftMargin := b.Width - contentWidth - 4
	if leftMargin < 0 {
		leftMargin = 0
	}
	marginStyle := lipgloss.NewStyle().MarginLeft(leftMargin)

	headerLine := marginStyle.Render(header)
	bubbleLine := marginStyle.Render(bubble)

	return lipgloss.JoinVertical(lipgloss.Right, headerLine, bubbleLine)
}

// ==========================================================================
// AGENT BUBBLE - Purple/violet tones, left-aligned
// ==========================================================================

// botAvatar is the glyph shown next to the agent label.
const botAvatar = "◉"

func (b *MessageBubble) renderBotBubble() string {
	content := b.Message.Text
	if content == "" {
		content = "..."
	}

	maxContentWidth := b.Width - 12
	if maxContentWidth < 20 {
		maxContentWidth = 20
	}

	// The body is glamour-rendered markdown; if that is unavailable, fenced
	// code blocks get their own chroma-highlighted rendering and the
	// remaining prose is word wrapped.
	wrappedContent, ok := renderMarkdownBody(content, maxContentWidth)
	if !ok {
		wrappedContent = wrapProse(ParseCodeBlocks(content, maxContentWidth), maxContentWidth)
	}

	contentWidth := minInt(lipgloss.Width(wrappedContent)+4, b.Width-8)

	bubbleStyle := lipgloss.NewStyle().
		Foreground(styles.BotBubbleFg).
		Background(styles.BotBubbleBg).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(styles.BotBubbleBorder).
		Padding(0, 2).
		Width(contentWidth).
		MarginRight(4)

	bubble := bubbleStyle.Render(wrappedContent)

	header := b.renderBotHeader(styles.Purple)

	return lipgloss.JoinVertical(lipgloss.Left, header, bubble)
}

// ==========================================================================
// FAILURE BUBBLE - Rose tones for failed exchanges
// ==========================================================================

func (b *MessageBubble) renderFailureBubble() string {
	content := b.Message.Text

	maxContentWidth := b.Width - 12
	if maxContentWidth < 20 {
		maxContentWidth = 20
	}
	wrappedContent := wordWrap(content, maxContentWidth)

	contentWidth := minInt(maxLineWidth(wrappedContent)+4, b.Width-8)

	bubbleStyle := lipgloss.NewStyle().
		Foreground(styles.FailureBubbleFg).
		Background(styles.FailureBubbleBg).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(styles.FailureBubbleBorder).
		BorderLeft(true).
		PaddingLeft(2).
		Width(contentWidth).
		MarginRight(4)

	bubble := bubbleStyle.Render(wrappedContent)

	header := b.renderBotHeader(styles.Rose)

	return lipgloss.JoinVertical(lipgloss.Left, header, bubble)
}

// ==========================================================================
// HELPER METHODS
// ==========================================================================

// renderBotHeader renders the avatar glyph and the agent label.
func (b *MessageBubble) renderBotHeader(avatarColor lipgloss.AdaptiveColor) string {
	avatar := lipgloss.NewStyle().Foreground(avatarColor).Render(botAvatar)
	return avatar + " " + b.renderHeader("agent")
}

// renderHeader renders the sender label with an optional dimmed timestamp.
func (b *MessageBubble) renderHeader(role string) string {
	roleStyle := lipgloss.NewStyle().
		Foreground(styles.TextMuted).
		Italic(true)
	header := roleStyle.Render(role)

	if b.ShowTimestamp && !b.Message.Timestamp.IsZero() {
		tsStyle := lipgloss.NewStyle().
			Foreground(styles.TextMuted).
			Italic(true)
		header += " " + tsStyle.Render(util.FormatClock(b.Message.Timestamp))
	}
	return header
}

// ==========================================================================
// UTILITY FUNCTIONS
// ==========================================================================

// wordWrap wraps text to fit within the specified width.
func wordWrap(text string, width int) string {
	if width <= 0 {
		return text
	}

	var result strings.Builder
	lines := strings.Split(text, "\n")

	for lineIdx, line := range lines {
		if lineIdx > 0 {
			result.WriteString("\n")
		}

		words := strings.Fields(line)
		if len(words) == 0 {
			continue
		}

		currentLine := words[0]

		for _, word := range words[1:] {
			if util.RuneLen(currentLine)+1+util.RuneLen(word) <= width {
				currentLine += " " + word
			} else {
				result.WriteString(currentLine)
				result.WriteString("\n")
				currentLine = word
			}
		}

		result.WriteString(currentLine)
	}

	return result.String()
}

// wrapProse wraps only lines that carry no ANSI escapes, leaving rendered
// code blocks untouched.
func wrapProse(text string, width int) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if strings.ContainsRune(line, '\x1b') {
			continue
		}
		lines[i] = wordWrap(line, width)
	}
	return strings.Join(lines, "\n")
}

// maxLineWidth returns the width of the longest line in runes (characters).
func maxLineWidth(text string) int {
	maxWidth := 0
	for _, line := range strings.Split(text, "\n") {
		lineWidth := util.RuneLen(line)
		if lineWidth > maxWidth {
			maxWidth = lineWidth
		}
	}
	return maxWidth
}

// minInt returns the minimum of two integers.
func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
