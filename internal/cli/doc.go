// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli provides command line parsing and command handlers for
// bsi-agent.
//
// The binary defaults to the full-screen TUI; subcommands cover one-shot
// questions (ask), a line-based REPL (chat), the built-in development
// backend (serve) and configuration management (config).
package cli
