// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package server provides a small development backend for bsi-agent.
//
// It speaks the same exchange protocol the client does: POST /ask with a
// JSON body of {"question": ..., "history": [...]} answered by
// {"answer": ...}. The built-in responder echoes a canned reply, which is
// enough to develop and demo the TUI without a real assistant behind it.
package server
