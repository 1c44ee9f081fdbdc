// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// ask.go - Single query command handler for the bsi-agent CLI.
//
// Handles the "bsi-agent ask" command which sends a single question to the
// backend and prints the answer to stdout.
//
// Command: ask [question]
// Short:   Ask a single question
//
// Examples:
//   bsi-agent ask "What is the capital of France?"
//   bsi-agent ask --url http://10.0.0.5:8080/ask "Explain this error"
//   bsi-agent -q ask "List the planets" | less
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/bsi-agent-tui/internal/agent"
	"github.com/jeranaias/bsi-agent-tui/internal/config"
	"github.com/jeranaias/bsi-agent-tui/internal/ui/styles"
)

// =============================================================================
// MARKDOWN RENDERING
// =============================================================================

// markdownRenderer is the global glamour renderer for markdown output.
var markdownRenderer *glamour.TermRenderer

func init() {
	var err error
	markdownRenderer, err = glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		// Fallback to plain text if renderer initialization fails
		markdownRenderer = nil
	}
}

// renderMarkdown renders markdown content for terminal display.
// Returns the original content if rendering fails or renderer is unavailable.
func renderMarkdown(content string) string {
	if markdownRenderer == nil {
		return content
	}

	rendered, err := markdownRenderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}

// displayResponse displays a response with markdown rendering when appropriate.
// Only renders markdown when stdout is a TTY to avoid corrupting piped output.
func displayResponse(response string) {
	if IsStdoutTTY() {
		fmt.Print(renderMarkdown(response))
	} else {
		fmt.Println(response)
	}
}

// =============================================================================
// STYLES
// =============================================================================

var (
	// Endpoint info style
	endpointStyle = lipgloss.NewStyle().
			Foreground(styles.Cyan)

	// Error style
	errorStyle = lipgloss.NewStyle().
			Foreground(styles.Rose)
)

// =============================================================================
// ASK COMMAND
// =============================================================================

// HandleAsk sends a single question to the backend and prints the answer.
// History is empty for a one-shot query.
func HandleAsk(args Args) error {
	if args.Query == "" {
		fmt.Fprintln(os.Stderr, errorStyle.Render("Error: ask requires a question"))
		fmt.Fprintln(os.Stderr, "Usage: bsi-agent ask \"your question\"")
		return fmt.Errorf("missing question")
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error: %v", err)))
		return err
	}
	if args.URL != "" {
		cfg.Backend.URL = args.URL
	}

	if args.Verbose {
		fmt.Fprintln(os.Stderr, endpointStyle.Render("endpoint: "+cfg.Backend.URL))
	}

	client := agent.NewClient(cfg.Backend.URL).WithTimeout(cfg.Backend.Timeout())

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Backend.Timeout())
	defer cancel()

	answer, err := client.Ask(ctx, args.Query, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error: %v", err)))
		return err
	}

	displayResponse(answer)
	return nil
}
