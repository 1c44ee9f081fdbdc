// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// chat_repl.go - Interactive chat command handler for the bsi-agent CLI.
//
// Handles the "bsi-agent chat" command which provides a line-based REPL
// for conversing with the backend, for terminals where the full-screen
// TUI is not wanted.
//
// Command: chat
// Short:   Start an interactive chat session
//
// Interactive Commands (during chat):
//   /help, /h           Show available commands
//   /clear, /c          Clear conversation history
//   /history            Show conversation history
//   /quit, /q           Exit chat
//   Ctrl+C              Exit chat
//   Ctrl+D              Exit chat
package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/peterh/liner"

	"github.com/jeranaias/bsi-agent-tui/internal/agent"
	"github.com/jeranaias/bsi-agent-tui/internal/config"
	"github.com/jeranaias/bsi-agent-tui/internal/model"
	"github.com/jeranaias/bsi-agent-tui/internal/ui/styles"
	"github.com/jeranaias/bsi-agent-tui/internal/util"
)

// =============================================================================
// STYLES
// =============================================================================

var (
	// Prompt style
	promptStyle = lipgloss.NewStyle().
			Foreground(styles.Cyan).
			Bold(true)

	// Welcome banner style
	welcomeStyle = lipgloss.NewStyle().
			Foreground(styles.Purple).
			Bold(true)

	// Info style
	infoStyle = lipgloss.NewStyle().
			Foreground(styles.TextSecondary)

	// Command style
	commandStyle = lipgloss.NewStyle().
			Foreground(styles.Emerald)
)

// =============================================================================
// INPUT HISTORY
// =============================================================================

// ChatCLI provides input history and line editing for interactive chat.
type ChatCLI struct {
	line        *liner.State
	historyFile string
}

// NewChatCLI creates a new ChatCLI with input history support.
func NewChatCLI() *ChatCLI {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)

	configDir, err := config.ConfigDir()
	if err != nil {
		// Fallback to temp directory if config dir unavailable
		configDir = os.TempDir()
	}
	historyFile := filepath.Join(configDir, "chat_history")

	cli := &ChatCLI{
		line:        line,
		historyFile: historyFile,
	}

	cli.LoadHistory()

	return cli
}

// LoadHistory loads command history from file.
func (c *ChatCLI) LoadHistory() {
	if f, err := os.Open(c.historyFile); err == nil {
		c.line.ReadHistory(f)
		f.Close()
	}
}

// ReadInput reads a line of input with the given prompt.
// Supports history navigation with arrow keys.
func (c *ChatCLI) ReadInput(prompt string) (string, error) {
	input, err := c.line.Prompt(prompt)
	if err != nil {
		return "", err
	}

	if strings.TrimSpace(input) != "" {
		c.line.AppendHistory(input)
	}

	return input, nil
}

// SaveHistory persists command history to file with secure permissions.
func (c *ChatCLI) SaveHistory() {
	if err := config.EnsureConfigDir(); err != nil {
		return
	}

	f, err := os.OpenFile(c.historyFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return
	}
	defer f.Close()

	c.line.WriteHistory(f)
}

// Close saves history and closes the liner.
func (c *ChatCLI) Close() {
	c.SaveHistory()
	c.line.Close()
}

// =============================================================================
// SESSION STATE
// =============================================================================

// ReplSession holds the state for an interactive chat session.
type ReplSession struct {
	// Conversation history, oldest first
	History []model.Message

	Config *config.Config
	Quiet  bool

	StartTime time.Time
	Turns     int

	Client *agent.Client

	// Input history handler
	InputCLI *ChatCLI
}

// NewReplSession creates a new chat session.
func NewReplSession(args Args) (*ReplSession, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if args.URL != "" {
		cfg.Backend.URL = args.URL
	}

	client := agent.NewClient(cfg.Backend.URL).WithTimeout(cfg.Backend.Timeout())

	return &ReplSession{
		History:   make([]model.Message, 0),
		Config:    cfg,
		Quiet:     args.Quiet,
		StartTime: time.Now(),
		Client:    client,
		InputCLI:  NewChatCLI(),
	}, nil
}

// =============================================================================
// CHAT HANDLER
// =============================================================================

// HandleChat handles the "chat" command with full interactive support.
func HandleChat(args Args) error {
	session, err := NewReplSession(args)
	if err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error: %v", err)))
		return err
	}

	if !session.Quiet {
		printReplWelcome(session)
	}

	// Ensure input history is saved on exit
	defer session.InputCLI.Close()

	// Main REPL loop using liner for input history
	for {
		input, err := session.InputCLI.ReadInput(promptStyle.Render("bsi-agent> "))
		if err != nil {
			if err == liner.ErrPromptAborted {
				// Ctrl+C pressed - exit gracefully
				fmt.Println()
				printExitSummary(session)
				return nil
			}
			// EOF (Ctrl+D) or other error - exit gracefully
			fmt.Println()
			printExitSummary(session)
			return nil
		}

		input = strings.TrimSpace(input)

		if input == "" {
			continue
		}

		// Handle slash commands
		if strings.HasPrefix(input, "/") {
			shouldContinue := handleSlashCommand(input, session)
			if !shouldContinue {
				printExitSummary(session)
				return nil
			}
			continue
		}

		// Handle exit/quit without slash
		if strings.EqualFold(input, "exit") || strings.EqualFold(input, "quit") {
			printExitSummary(session)
			return nil
		}

		if err := processMessage(session, input); err != nil {
			fmt.Fprintf(os.Stderr, "%s %v\n",
				errorStyle.Render("[Error]"),
				err)
		}
	}
}

// =============================================================================
// MESSAGE PROCESSING
// =============================================================================

// processMessage sends a message to the backend and prints the reply.
// History is captured before the question is appended, so the question
// travels only in its own request field.
func processMessage(session *ReplSession, input string) error {
	ctx, cancel := context.WithTimeout(context.Background(), session.Config.Backend.Timeout())
	defer cancel()

	history := session.History

	fmt.Println() // Space before response

	answer, err := session.Client.Ask(ctx, input, history)
	if err != nil {
		return err
	}

	displayResponse(answer)
	fmt.Println()

	session.History = append(session.History, model.NewUserMessage(input))
	session.History = append(session.History, model.NewBotMessage(answer))
	session.Turns++

	return nil
}

// =============================================================================
// SLASH COMMANDS
// =============================================================================

// handleSlashCommand processes a slash command. Returns false when the
// session should end.
func handleSlashCommand(input string, session *ReplSession) bool {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "/help", "/h":
		printSlashHelp()
	case "/clear", "/c":
		session.History = session.History[:0]
		fmt.Println(infoStyle.Render("Conversation cleared."))
	case "/history":
		printHistory(session)
	case "/quit", "/q":
		return false
	default:
		fmt.Println(infoStyle.Render("Unknown command. Type /help for available commands."))
	}
	return true
}

func printSlashHelp() {
	fmt.Println(welcomeStyle.Render("Commands:"))
	fmt.Printf("  %s  Show this help\n", commandStyle.Render("/help, /h  "))
	fmt.Printf("  %s  Clear conversation history\n", commandStyle.Render("/clear, /c "))
	fmt.Printf("  %s  Show conversation history\n", commandStyle.Render("/history   "))
	fmt.Printf("  %s  Exit chat\n", commandStyle.Render("/quit, /q  "))
}

func printHistory(session *ReplSession) {
	if len(session.History) == 0 {
		fmt.Println(infoStyle.Render("No messages yet."))
		return
	}
	for _, msg := range session.History {
		label := msg.Sender.DisplayName()
		fmt.Printf("%s %s\n",
			promptStyle.Render("["+label+"]"),
			util.TruncateRunes(msg.Text, 120))
	}
}

// =============================================================================
// BANNERS
// =============================================================================

func printReplWelcome(session *ReplSession) {
	fmt.Println(welcomeStyle.Render("< bsi-agent >"))
	fmt.Println(infoStyle.Render("endpoint: " + session.Config.Backend.URL))
	fmt.Println(infoStyle.Render("Type /help for commands, /quit to exit."))
	fmt.Println()
}

func printExitSummary(session *ReplSession) {
	if session.Quiet {
		return
	}
	elapsed := time.Since(session.StartTime).Round(time.Second)
	fmt.Printf("%s %d exchanges in %s\n",
		infoStyle.Render("Session:"),
		session.Turns,
		elapsed)
}
