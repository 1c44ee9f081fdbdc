// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for the bsi-agent TUI.
package components

import (
	"strings"
	"testing"

	"github.com/jeranaias/bsi-agent-tui/internal/model"
	"github.com/jeranaias/bsi-agent-tui/internal/ui/styles"
)

// =============================================================================
// MESSAGE BUBBLE TESTS
// =============================================================================

func TestMessageBubbleUser(t *testing.T) {
	theme := styles.NewTheme()
	msg := model.NewUserMessage("hello there")

	bubble := NewMessageBubble(msg, theme)
	out := bubble.View()

	if !strings.Contains(out, "hello there") {
		t.Error("user bubble should contain the message text")
	}
	if !strings.Contains(out, "you") {
		t.Error("user bubble should carry the sender label")
	}
}

func TestMessageBubbleBot(t *testing.T) {
	theme := styles.NewTheme()
	msg := model.NewBotMessage("certainly, here you go")

	bubble := NewMessageBubble(msg, theme)
	out := bubble.View()

	if !strings.Contains(out, "certainly, here you go") {
		t.Error("agent bubble should contain the message text")
	}
	if !strings.Contains(out, "agent") {
		t.Error("agent bubble should carry the sender label")
	}
}

func TestMessageBubbleBotRendersMarkdown(t *testing.T) {
	theme := styles.NewTheme()
	msg := model.NewBotMessage("Here is **bold** text, a [link](https://example.com) and:\n\n- first\n- second")

	bubble := NewMessageBubble(msg, theme)
	out := bubble.View()

	if strings.Contains(out, "**bold**") {
		t.Error("markdown emphasis should be rendered, not passed through raw")
	}
	if !strings.Contains(out, "bold") {
		t.Error("emphasised text should survive rendering")
	}
	if !strings.Contains(out, "first") || !strings.Contains(out, "second") {
		t.Error("list items should survive rendering")
	}
}

func TestMessageBubbleBotShowsAvatar(t *testing.T) {
	theme := styles.NewTheme()
	msg := model.NewBotMessage("hello")

	bubble := NewMessageBubble(msg, theme)
	if !strings.Contains(bubble.View(), botAvatar) {
		t.Error("agent bubble should carry the avatar glyph")
	}
}

func TestRenderMarkdownBody(t *testing.T) {
	out, ok := renderMarkdownBody("plain sentence", 40)
	if !ok {
		t.Fatal("markdown rendering should be available")
	}
	if !strings.Contains(out, "plain sentence") {
		t.Errorf("rendered body %q should contain the source text", out)
	}
}

func TestMessageBubbleFailure(t *testing.T) {
	theme := styles.NewTheme()
	msg := model.NewBotMessage("Could not reach the assistant: connection refused")

	bubble := NewMessageBubble(msg, theme)
	out := bubble.View()

	if !strings.Contains(out, "Could not reach the assistant") {
		t.Error("failure bubble should contain the failure text")
	}
}

func TestMessageBubbleEmptyText(t *testing.T) {
	theme := styles.NewTheme()
	msg := model.NewUserMessage("")

	bubble := NewMessageBubble(msg, theme)
	if bubble.View() == "" {
		t.Error("bubble with empty text should still render a placeholder")
	}
}

func TestMessageBubbleNarrowWidth(t *testing.T) {
	theme := styles.NewTheme()
	msg := model.NewBotMessage(strings.Repeat("word ", 40))

	bubble := NewMessageBubble(msg, theme)
	bubble.SetWidth(24)
	if bubble.View() == "" {
		t.Error("bubble should render at narrow widths")
	}
}

// =============================================================================
// WORD WRAP TESTS
// =============================================================================

func TestWordWrap(t *testing.T) {
	wrapped := wordWrap("one two three four five", 10)
	for _, line := range strings.Split(wrapped, "\n") {
		if len([]rune(line)) > 10 {
			t.Errorf("line %q exceeds width 10", line)
		}
	}
}

func TestWordWrapPreservesNewlines(t *testing.T) {
	wrapped := wordWrap("first\nsecond", 20)
	if !strings.Contains(wrapped, "\n") {
		t.Error("existing newlines should survive wrapping")
	}
}

func TestMaxLineWidth(t *testing.T) {
	if got := maxLineWidth("ab\nabcd\na"); got != 4 {
		t.Errorf("maxLineWidth = %d, want 4", got)
	}
}

// =============================================================================
// CODE BLOCK TESTS
// =============================================================================

func TestCodeBlockRender(t *testing.T) {
	cb := NewCodeBlock("go", "package main\n\nfunc main() {}")
	out := cb.Render()

	if out == "" {
		t.Fatal("code block should render")
	}
	if !strings.Contains(out, "go") {
		t.Error("code block should show the language badge")
	}
}

func TestParseCodeBlocks(t *testing.T) {
	text := "intro\n```go\nfmt.Println(1)\n```\noutro"
	out := ParseCodeBlocks(text, 80)

	if !strings.Contains(out, "intro") || !strings.Contains(out, "outro") {
		t.Error("prose around code blocks should pass through")
	}
	if strings.Contains(out, "```") {
		t.Error("code fences should be consumed")
	}
}

func TestParseCodeBlocksUnclosed(t *testing.T) {
	text := "before\n```python\nprint(1)"
	out := ParseCodeBlocks(text, 80)

	if !strings.Contains(out, "before") {
		t.Error("prose before an unclosed fence should pass through")
	}
}

// =============================================================================
// SPINNER TESTS
// =============================================================================

func TestSpinnerLifecycle(t *testing.T) {
	s := NewSpinner()

	if s.IsActive() {
		t.Error("spinner should start inactive")
	}
	if s.View() != "" {
		t.Error("inactive spinner should render nothing")
	}

	cmd := s.Start()
	if cmd == nil {
		t.Error("Start() should return the tick command")
	}
	if !s.IsActive() {
		t.Error("spinner should be active after Start()")
	}
	if !strings.Contains(s.View(), "Thinking") {
		t.Error("active spinner should show the thinking message")
	}

	s.Stop()
	if s.IsActive() {
		t.Error("spinner should be inactive after Stop()")
	}
}

// =============================================================================
// HEADER AND STATUS BAR TESTS
// =============================================================================

func TestHeaderView(t *testing.T) {
	theme := styles.NewTheme()
	h := NewHeader(theme)
	h.SetEndpoint("http://localhost:8080/ask")

	out := h.View()
	if !strings.Contains(out, "bsi-agent") {
		t.Error("header should show the application title")
	}
}

func TestStatusBarView(t *testing.T) {
	theme := styles.NewTheme()
	sb := NewStatusBar(theme)
	sb.SetMessageCount(4)

	out := sb.View()
	if !strings.Contains(out, "READY") {
		t.Error("status bar should show READY when idle")
	}
	if !strings.Contains(out, "4 messages") {
		t.Error("status bar should show the message count")
	}

	sb.SetStatus(StatusWaiting)
	if !strings.Contains(sb.View(), "WAITING") {
		t.Error("status bar should show WAITING during an exchange")
	}
}

// =============================================================================
// INPUT AREA TESTS
// =============================================================================

func TestInputAreaDisabled(t *testing.T) {
	theme := styles.NewTheme()
	in := NewInputArea(theme)

	in.SetValue("draft text")
	in.SetDisabled(true)

	if !in.Disabled() {
		t.Error("input should report disabled")
	}
	if in.Value() != "draft text" {
		t.Error("disabling the input should not clear its text")
	}

	in.SetDisabled(false)
	if in.Disabled() {
		t.Error("input should report enabled again")
	}
}
