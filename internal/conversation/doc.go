// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package conversation owns the chat state machine.
//
// The Controller holds the message log, the pending input and the waiting
// flag, and is the only place they are mutated. Submitting an utterance
// prepends the user message synchronously, then runs exactly one exchange
// against the backend; completion prepends the bot reply and clears the
// waiting flag in a single state transition. Presentation layers observe the
// controller through Snapshot and the Events channel and never touch state
// directly.
package conversation
