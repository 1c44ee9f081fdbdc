// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// cli.go - CLI parsing and command dispatch for bsi-agent.
package cli

import (
	"fmt"
	"os"
	"runtime"
	"strings"
)

// Version information (can be overridden at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Command represents the CLI command to execute.
type Command int

const (
	CmdTUI Command = iota
	CmdAsk
	CmdChat
	CmdServe
	CmdConfig
	CmdVersion
	CmdHelp
)

// Args holds parsed CLI arguments.
type Args struct {
	// Global flags
	Quiet   bool
	Verbose bool
	URL     string // --url overrides backend.url

	// Command-specific
	Query      string
	Subcommand string
	ConfigKey  string
	ConfigVal  string
	Addr       string // serve listen address

	// Raw args (remaining after flag parsing)
	Raw []string
}

const usageText = `bsi-agent - terminal client for a question answering assistant

Bsi-agent talks to an HTTP question answering backend and keeps the
conversation on your side of the wire.

It provides:
  - A full-screen chat TUI (newest exchange on top)
  - One-shot questions with markdown rendering
  - A line-based REPL with input history
  - A built-in development backend for offline work

Usage:
  bsi-agent                    Start TUI (default)
  bsi-agent ask "question"     Ask a single question
  bsi-agent chat               Interactive line-based chat
  bsi-agent serve              Run the development backend
  bsi-agent config [show|path|set]  Configuration
  bsi-agent version            Show version
  bsi-agent help               Show this help

Global flags:
  --url URL        Override the backend endpoint
  -q, --quiet      Minimal output
  -v, --verbose    Verbose output

Environment:
  BSI_AGENT_URL            Backend endpoint
  BSI_AGENT_TIMEOUT_SECS   Exchange timeout in seconds
  BSI_AGENT_THEME          UI theme (auto, dark, light)
`

// Parse parses os.Args into a command and its arguments.
func Parse() (Command, Args) {
	return ParseArgs(os.Args[1:])
}

// ParseArgs parses an argument list into a command and its arguments.
func ParseArgs(args []string) (Command, Args) {
	remaining, parsedArgs := parseGlobalFlags(args)

	if len(remaining) == 0 {
		return CmdTUI, parsedArgs
	}

	// -V is matched before lowercasing; -v is already taken by --verbose.
	if remaining[0] == "-V" {
		parsedArgs.Raw = remaining[1:]
		return CmdVersion, parsedArgs
	}

	cmd := strings.ToLower(remaining[0])
	remaining = remaining[1:]
	parsedArgs.Raw = remaining

	switch cmd {
	case "tui":
		return CmdTUI, parsedArgs

	case "ask":
		parsedArgs.Query = strings.Join(remaining, " ")
		return CmdAsk, parsedArgs

	case "chat":
		return CmdChat, parsedArgs

	case "serve":
		parseServeArgs(&parsedArgs, remaining)
		return CmdServe, parsedArgs

	case "config":
		parseConfigArgs(&parsedArgs, remaining)
		return CmdConfig, parsedArgs

	case "version", "--version":
		return CmdVersion, parsedArgs

	case "help", "-h", "--help":
		return CmdHelp, parsedArgs

	default:
		// Unknown word: treat it as an ask query, the most common intent.
		parsedArgs.Query = strings.Join(append([]string{cmd}, remaining...), " ")
		return CmdAsk, parsedArgs
	}
}

// parseGlobalFlags extracts flags valid for every command.
func parseGlobalFlags(args []string) ([]string, Args) {
	var parsed Args
	remaining := make([]string, 0, len(args))

	i := 0
	for i < len(args) {
		switch args[i] {
		case "-q", "--quiet":
			parsed.Quiet = true
			i++
		case "-v", "--verbose":
			parsed.Verbose = true
			i++
		case "--url":
			if i+1 < len(args) {
				parsed.URL = args[i+1]
				i += 2
			} else {
				i++
			}
		default:
			if strings.HasPrefix(args[i], "--url=") {
				parsed.URL = strings.TrimPrefix(args[i], "--url=")
				i++
				continue
			}
			remaining = append(remaining, args[i])
			i++
		}
	}

	return remaining, parsed
}

// parseServeArgs parses flags for the serve command.
func parseServeArgs(parsed *Args, args []string) {
	for i := 0; i < len(args); i++ {
		switch {
		case args[i] == "--addr" && i+1 < len(args):
			parsed.Addr = args[i+1]
			i++
		case strings.HasPrefix(args[i], "--addr="):
			parsed.Addr = strings.TrimPrefix(args[i], "--addr=")
		}
	}
}

// parseConfigArgs parses the config subcommand and key/value.
func parseConfigArgs(parsed *Args, args []string) {
	if len(args) == 0 {
		parsed.Subcommand = "show"
		return
	}
	parsed.Subcommand = strings.ToLower(args[0])
	if parsed.Subcommand == "set" {
		if len(args) > 1 {
			parsed.ConfigKey = args[1]
		}
		if len(args) > 2 {
			parsed.ConfigVal = args[2]
		}
	}
}

// =============================================================================
// SIMPLE HANDLERS
// =============================================================================

// HandleVersion prints version information.
func HandleVersion(args Args) {
	if args.Quiet {
		fmt.Println(Version)
		return
	}
	fmt.Printf("bsi-agent %s\n", Version)
	fmt.Printf("  commit: %s\n", GitCommit)
	fmt.Printf("  built:  %s\n", BuildDate)
	fmt.Printf("  go:     %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
}

// HandleHelp prints usage.
func HandleHelp() {
	fmt.Print(usageText)
}
