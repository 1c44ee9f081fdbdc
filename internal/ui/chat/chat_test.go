// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the interactive chat screen for the bsi-agent TUI.
package chat

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/bsi-agent-tui/internal/config"
	"github.com/jeranaias/bsi-agent-tui/internal/conversation"
	"github.com/jeranaias/bsi-agent-tui/internal/model"
	"github.com/jeranaias/bsi-agent-tui/internal/ui/styles"
)

// staticBackend answers every exchange with a fixed reply.
type staticBackend struct {
	reply string
}

func (s *staticBackend) Exchange(_ context.Context, _ string, _ []model.Message) model.Message {
	return model.NewBotMessage(s.reply)
}

func newTestModel(t *testing.T) (Model, *conversation.Controller) {
	t.Helper()
	controller := conversation.NewController(&staticBackend{reply: "Hi"})
	t.Cleanup(controller.Close)

	theme := styles.NewThemeWithMode("dark")
	m := New(controller, theme, Options{Endpoint: "http://localhost:8080/ask"})
	return m, controller
}

func TestNewModelStartsEmpty(t *testing.T) {
	m, _ := newTestModel(t)

	assert.Empty(t, m.Snapshot().Messages)
	assert.False(t, m.Snapshot().IsWaiting)
}

func TestResizeUpdatesDimensions(t *testing.T) {
	m, _ := newTestModel(t)

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	got := updated.(Model)

	assert.Equal(t, 120, got.width)
	assert.Equal(t, 40, got.height)
	assert.Equal(t, 120, got.viewport.Width)
}

func TestSubmitEventDisablesInputAndStartsSpinner(t *testing.T) {
	m, _ := newTestModel(t)

	snap := conversation.State{
		Messages:  []model.Message{model.NewUserMessage("Hello")},
		IsWaiting: true,
	}
	updated, cmd := m.Update(ControllerEventMsg{
		Event: conversation.Event{Kind: conversation.EventSubmitted, State: snap},
	})
	got := updated.(Model)

	assert.True(t, got.Snapshot().IsWaiting)
	assert.True(t, got.input.Disabled())
	assert.True(t, got.spinner.IsActive())
	require.NotNil(t, cmd, "a submitted event should re-arm the listener and tick the spinner")
}

func TestResolvedEventReenablesInput(t *testing.T) {
	m, _ := newTestModel(t)

	snap := conversation.State{
		Messages: []model.Message{
			model.NewBotMessage("Hi"),
			model.NewUserMessage("Hello"),
		},
		IsWaiting: false,
	}
	updated, _ := m.Update(ControllerEventMsg{
		Event: conversation.Event{Kind: conversation.EventResolved, State: snap},
	})
	got := updated.(Model)

	assert.False(t, got.Snapshot().IsWaiting)
	assert.False(t, got.input.Disabled())
	assert.False(t, got.spinner.IsActive())
}

func TestTranscriptShowsNewestFirst(t *testing.T) {
	m, _ := newTestModel(t)
	m.width = 80

	m.snapshot = conversation.State{
		Messages: []model.Message{
			model.NewBotMessage("newest reply"),
			model.NewUserMessage("older question"),
		},
	}

	transcript := m.renderTranscript()
	newestIdx := strings.Index(transcript, "newest reply")
	olderIdx := strings.Index(transcript, "older question")

	require.GreaterOrEqual(t, newestIdx, 0)
	require.GreaterOrEqual(t, olderIdx, 0)
	assert.Less(t, newestIdx, olderIdx, "newest message should render above older ones")
}

func TestEmptyTranscriptShowsWelcome(t *testing.T) {
	m, _ := newTestModel(t)
	m.width = 80

	transcript := m.renderTranscript()
	assert.Contains(t, transcript, "Ask the assistant")
}

func TestSubmitKeyForwardsToController(t *testing.T) {
	m, controller := newTestModel(t)

	m.input.SetValue("Hello")
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	got := updated.(Model)

	// The controller accepted the submission and cleared the input.
	assert.Empty(t, got.input.Value())
	assert.GreaterOrEqual(t, controller.MessageCount(), 1)
}

func TestSubmitEmptyInputIsIgnored(t *testing.T) {
	m, controller := newTestModel(t)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	got := updated.(Model)

	assert.Empty(t, got.input.Value())
	assert.Equal(t, 0, controller.MessageCount())
}

func TestConfigReloadUpdatesScreen(t *testing.T) {
	m, _ := newTestModel(t)
	require.True(t, m.theme.IsDark)

	cfg := config.Default()
	cfg.UI.Theme = "light"
	cfg.UI.ShowTimestamps = true
	cfg.Backend.URL = "http://moved.example.com/ask"

	updated, _ := m.Update(ConfigReloadedMsg{Config: cfg})
	got := updated.(Model)

	assert.False(t, got.theme.IsDark)
	assert.True(t, got.showTimestamps)
	assert.Contains(t, got.header.View(), "moved.example.com")
}

func TestConfigReloadWithNilConfigIsIgnored(t *testing.T) {
	m, _ := newTestModel(t)

	updated, _ := m.Update(ConfigReloadedMsg{})
	got := updated.(Model)

	assert.Equal(t, m.showTimestamps, got.showTimestamps)
}

func TestViewRendersAllSections(t *testing.T) {
	m, _ := newTestModel(t)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = updated.(Model)

	out := m.View()
	assert.Contains(t, out, "bsi-agent")
	assert.Contains(t, out, "READY")
}
