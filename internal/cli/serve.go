// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// serve.go - Development server command handler for the bsi-agent CLI.
//
// Handles the "bsi-agent serve" command which runs a local echo backend
// so the TUI and REPL can be exercised without a real assistant service.
//
// Command: serve
// Short:   Run a local development backend
//
// Examples:
//   bsi-agent serve
//   bsi-agent serve --addr 0.0.0.0:9090
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jeranaias/bsi-agent-tui/internal/config"
	"github.com/jeranaias/bsi-agent-tui/internal/server"
)

// HandleServe runs the development backend until interrupted.
func HandleServe(args Args) error {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error: %v", err)))
		return err
	}

	addr := cfg.Server.Addr
	if args.Addr != "" {
		addr = args.Addr
	}

	srv := server.New(server.WithRateLimit(cfg.Server.RatePerSec))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if !args.Quiet {
		fmt.Println(infoStyle.Render("Listening on http://" + addr))
		fmt.Println(infoStyle.Render("POST /ask accepts {question, history}; /health reports status."))
	}

	if err := srv.ListenAndServe(ctx, addr); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error: %v", err)))
		return err
	}

	if !args.Quiet {
		fmt.Println(infoStyle.Render("Server stopped."))
	}
	return nil
}
