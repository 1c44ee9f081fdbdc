// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package conversation owns the chat state machine.
package conversation

import (
	"context"
	"strings"
	"sync"

	"github.com/jeranaias/bsi-agent-tui/internal/model"
)

// =============================================================================
// EXCHANGER INTERFACE
// =============================================================================

// Exchanger resolves one question/answer round trip to exactly one bot
// message, never failing past its own boundary. *agent.Client satisfies it.
type Exchanger interface {
	Exchange(ctx context.Context, question string, history []model.Message) model.Message
}

// =============================================================================
// STATE SNAPSHOT
// =============================================================================

// State is an immutable snapshot of the conversation as seen by observers.
type State struct {
	// Messages in display order, newest first.
	Messages []model.Message

	// PendingInput is the text currently typed but not submitted.
	PendingInput string

	// IsWaiting is true strictly while an exchange is in flight.
	IsWaiting bool
}

// EventKind identifies a state transition.
type EventKind int

const (
	// EventSubmitted fires after a user message was accepted: the message
	// is prepended and IsWaiting is true.
	EventSubmitted EventKind = iota

	// EventResolved fires after the exchange completed: the bot message is
	// prepended and IsWaiting is false. Both appear in the same snapshot.
	EventResolved
)

// Event carries a state transition and the snapshot taken at that instant.
type Event struct {
	Kind  EventKind
	State State
}

// =============================================================================
// CONTROLLER
// =============================================================================

// Controller owns the message log and the waiting flag. All mutation happens
// through Submit and the exchange completion path; everything else is
// read-only snapshots.
type Controller struct {
	mu           sync.Mutex
	conv         *model.Conversation
	pendingInput string
	waiting      bool
	closed       bool

	backend Exchanger

	// Session lifetime. Close cancels the in-flight exchange.
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	events chan Event
}

// NewController creates a controller with an empty log.
func NewController(backend Exchanger) *Controller {
	ctx, cancel := context.WithCancel(context.Background())
	return &Controller{
		conv:    model.NewConversation(),
		backend: backend,
		ctx:     ctx,
		cancel:  cancel,
		events:  make(chan Event, 32),
	}
}

// Events returns the channel on which state transitions are published.
// Delivery is best-effort when the buffer is full; Snapshot always reflects
// the latest state.
func (c *Controller) Events() <-chan Event {
	return c.events
}

// Snapshot returns a copy of the current state.
func (c *Controller) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

// snapshotLocked builds a State copy. Caller holds mu.
func (c *Controller) snapshotLocked() State {
	return State{
		Messages:     c.conv.Display(),
		PendingInput: c.pendingInput,
		IsWaiting:    c.waiting,
	}
}

// SetPendingInput records the text currently typed in the input field.
func (c *Controller) SetPendingInput(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pendingInput = text
}

// Submit accepts a user utterance and starts one exchange.
//
// Empty (after trimming) utterances and submissions while an exchange is in
// flight are rejected as no-ops; the return value reports whether the
// submission was accepted. On acceptance the user message is prepended, the
// pending input cleared and the waiting flag raised before Submit returns;
// the exchange itself runs asynchronously against the history as it existed
// immediately before this submission.
func (c *Controller) Submit(utterance string) bool {
	trimmed := strings.TrimSpace(utterance)
	if trimmed == "" {
		return false
	}

	c.mu.Lock()
	if c.waiting || c.closed {
		c.mu.Unlock()
		return false
	}

	// History for the backend excludes the message being submitted: the
	// question travels in its own field.
	history := c.conv.History()

	c.conv.PrependUserMessage(trimmed)
	c.pendingInput = ""
	c.waiting = true
	snap := c.snapshotLocked()
	c.mu.Unlock()

	c.publish(Event{Kind: EventSubmitted, State: snap})

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		reply := c.backend.Exchange(c.ctx, trimmed, history)
		c.resolve(reply)
	}()

	return true
}

// resolve applies the exchange completion: the bot message prepend and the
// waiting-flag clear happen under one lock hold, so no observer can see one
// without the other.
func (c *Controller) resolve(reply model.Message) {
	c.mu.Lock()
	c.conv.Prepend(reply)
	c.waiting = false
	snap := c.snapshotLocked()
	c.mu.Unlock()

	c.publish(Event{Kind: EventResolved, State: snap})
}

// publish sends an event without ever blocking the state machine.
func (c *Controller) publish(ev Event) {
	select {
	case c.events <- ev:
	default:
	}
}

// IsWaiting reports whether an exchange is in flight.
func (c *Controller) IsWaiting() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.waiting
}

// MessageCount returns the number of messages in the log.
func (c *Controller) MessageCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conv.MessageCount()
}

// Close ends the session: it rejects further submissions, cancels any
// in-flight exchange and waits for its completion handler to finish, so a
// torn-down session does not leak a pending operation.
func (c *Controller) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	c.mu.Unlock()

	c.cancel()
	c.wg.Wait()
}
