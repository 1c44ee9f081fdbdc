// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for conversations and messages.
package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// MESSAGE TESTS
// =============================================================================

func TestNewMessage(t *testing.T) {
	msg := NewUserMessage("hello")

	assert.Equal(t, RoleUser, msg.Sender)
	assert.Equal(t, "hello", msg.Text)
	assert.NotEmpty(t, msg.ID)
	assert.False(t, msg.Timestamp.IsZero())
}

func TestNewMessage_UniqueIDs(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		msg := NewBotMessage("x")
		require.False(t, seen[msg.ID], "duplicate message ID %q", msg.ID)
		seen[msg.ID] = true
	}
}

func TestMessage_Preview(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		maxLen int
		want   string
	}{
		{"short text unchanged", "hi", 10, "hi"},
		{"long text truncated", "hello world out there", 10, "hello w..."},
		{"unicode safe", "héllo wörld ünicode", 10, "héllo w..."},
		{"tiny max", "hello", 2, "he"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			msg := NewUserMessage(tc.text)
			assert.Equal(t, tc.want, msg.Preview(tc.maxLen))
		})
	}
}

func TestRole_DisplayName(t *testing.T) {
	assert.Equal(t, "You", RoleUser.DisplayName())
	assert.Equal(t, "Agent", RoleBot.DisplayName())
	assert.Equal(t, "other", Role("other").DisplayName())
}

func TestRole_Valid(t *testing.T) {
	assert.True(t, RoleUser.Valid())
	assert.True(t, RoleBot.Valid())
	assert.False(t, Role("system").Valid())
}

// =============================================================================
// CONVERSATION TESTS
// =============================================================================

func TestConversation_PrependOrdering(t *testing.T) {
	conv := NewConversation()
	conv.PrependUserMessage("first")
	conv.PrependBotMessage("second")
	conv.PrependUserMessage("third")

	require.Equal(t, 3, conv.MessageCount())

	// Display order is newest first.
	assert.Equal(t, "third", conv.Messages[0].Text)
	assert.Equal(t, "second", conv.Messages[1].Text)
	assert.Equal(t, "first", conv.Messages[2].Text)
}

func TestConversation_History_Chronological(t *testing.T) {
	conv := NewConversation()
	conv.PrependUserMessage("first")
	conv.PrependBotMessage("second")
	conv.PrependUserMessage("third")

	history := conv.History()
	require.Len(t, history, 3)
	assert.Equal(t, "first", history[0].Text)
	assert.Equal(t, "second", history[1].Text)
	assert.Equal(t, "third", history[2].Text)
}

func TestConversation_History_CopyIsIndependent(t *testing.T) {
	conv := NewConversation()
	conv.PrependUserMessage("original")

	history := conv.History()
	history[0].Text = "mutated"

	assert.Equal(t, "original", conv.Messages[0].Text)
}

func TestConversation_Newest(t *testing.T) {
	conv := NewConversation()

	_, ok := conv.Newest()
	assert.False(t, ok)

	conv.PrependUserMessage("a")
	conv.PrependBotMessage("b")

	newest, ok := conv.Newest()
	require.True(t, ok)
	assert.Equal(t, "b", newest.Text)
}

func TestConversation_Clone(t *testing.T) {
	conv := NewConversation()
	conv.PrependUserMessage("hello")

	clone := conv.Clone()
	clone.PrependBotMessage("extra")

	assert.Equal(t, 1, conv.MessageCount())
	assert.Equal(t, 2, clone.MessageCount())
	assert.Equal(t, conv.ID, clone.ID)
}

func TestConversation_Preview(t *testing.T) {
	conv := NewConversation()
	assert.Equal(t, "New Conversation", conv.Preview())

	conv.PrependUserMessage("what is the weather today")
	conv.PrependBotMessage("sunny")
	assert.Equal(t, "what is the weather today", conv.Preview())
}
