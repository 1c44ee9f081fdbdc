// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for conversations and messages.
//
// A Conversation holds its messages newest-first, which matches how the UI
// renders them (latest bubble at the bottom of an inverted list). When the
// conversation is serialized for the backend it is flipped to chronological
// order via History().
package model
