// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for conversations and messages.
package model

import (
	"time"

	"github.com/google/uuid"
)

// =============================================================================
// CONVERSATION TYPE
// =============================================================================

// Conversation holds an ordered sequence of messages, newest first.
// It is append-only: messages are prepended and never mutated in place.
type Conversation struct {
	// Identity
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Messages, newest first.
	Messages []Message `json:"messages"`
}

// NewConversation creates a new empty conversation with a generated ID.
func NewConversation() *Conversation {
	return &Conversation{
		ID:        uuid.NewString(),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
		Messages:  make([]Message, 0),
	}
}

// =============================================================================
// MESSAGE MANAGEMENT
// =============================================================================

// Prepend adds a message to the front of the conversation, preserving the
// newest-first ordering.
func (c *Conversation) Prepend(msg Message) {
	c.Messages = append([]Message{msg}, c.Messages...)
	c.UpdatedAt = time.Now()
}

// PrependUserMessage creates and prepends a user message.
func (c *Conversation) PrependUserMessage(text string) Message {
	msg := NewUserMessage(text)
	c.Prepend(msg)
	return msg
}

// PrependBotMessage creates and prepends a bot message.
func (c *Conversation) PrependBotMessage(text string) Message {
	msg := NewBotMessage(text)
	c.Prepend(msg)
	return msg
}

// Newest returns the most recent message and true, or a zero Message and
// false if the conversation is empty.
func (c *Conversation) Newest() (Message, bool) {
	if len(c.Messages) == 0 {
		return Message{}, false
	}
	return c.Messages[0], true
}

// MessageCount returns the number of messages.
func (c *Conversation) MessageCount() int {
	return len(c.Messages)
}

// IsEmpty returns true if there are no messages.
func (c *Conversation) IsEmpty() bool {
	return len(c.Messages) == 0
}

// =============================================================================
// SERIALIZATION ORDER
// =============================================================================

// History returns a copy of the messages in chronological order (oldest
// first), which is the order the backend expects.
func (c *Conversation) History() []Message {
	history := make([]Message, len(c.Messages))
	for i, msg := range c.Messages {
		history[len(c.Messages)-1-i] = msg
	}
	return history
}

// Display returns the messages in display order (newest first). The returned
// slice is a copy so callers cannot mutate conversation state.
func (c *Conversation) Display() []Message {
	display := make([]Message, len(c.Messages))
	copy(display, c.Messages)
	return display
}

// Clone creates a deep copy of the conversation.
func (c *Conversation) Clone() *Conversation {
	clone := &Conversation{
		ID:        c.ID,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
		Messages:  make([]Message, len(c.Messages)),
	}
	copy(clone.Messages, c.Messages)
	return clone
}

// Preview returns a short preview of the latest user message, or a default
// for an empty conversation.
func (c *Conversation) Preview() string {
	for _, msg := range c.Messages {
		if msg.Sender == RoleUser {
			return msg.Preview(50)
		}
	}
	return "New Conversation"
}
