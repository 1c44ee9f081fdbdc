// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package agent implements the client side of the question-answering
// exchange protocol.
//
// One exchange is a single POST of {"question", "history"} to the backend,
// answered by {"answer"}. There are no retries: every outcome of an exchange
// (answer, transport failure, server error, malformed body) is resolved
// locally into exactly one bot message, so callers never see an error escape
// the exchange boundary.
package agent
