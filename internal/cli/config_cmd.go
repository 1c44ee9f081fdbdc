// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// config_cmd.go - Configuration command handler for the bsi-agent CLI.
//
// Handles the "bsi-agent config" command for inspecting and editing the
// persisted configuration.
//
// Command: config [show|path|set KEY VALUE]
// Short:   Show or change configuration
//
// Examples:
//   bsi-agent config                  Show current configuration
//   bsi-agent config path             Print the config file path
//   bsi-agent config set backend.url http://10.0.0.5:8080/ask
//   bsi-agent config set ui.theme dark
package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/jeranaias/bsi-agent-tui/internal/config"
)

// HandleConfig dispatches the config subcommands.
func HandleConfig(args Args) error {
	switch args.Subcommand {
	case "show", "":
		return handleConfigShow()
	case "path":
		return handleConfigPath()
	case "set":
		return handleConfigSet(args.ConfigKey, args.ConfigVal)
	default:
		err := fmt.Errorf("unknown config subcommand: %s", args.Subcommand)
		fmt.Fprintln(os.Stderr, errorStyle.Render("Error: "+err.Error()))
		fmt.Fprintln(os.Stderr, "Usage: bsi-agent config [show|path|set KEY VALUE]")
		return err
	}
}

func handleConfigShow() error {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error: %v", err)))
		return err
	}

	fmt.Println(welcomeStyle.Render("Configuration"))
	fmt.Printf("  backend.url           %s\n", cfg.Backend.URL)
	fmt.Printf("  backend.timeout_secs  %d\n", cfg.Backend.TimeoutSecs)
	fmt.Printf("  ui.theme              %s\n", cfg.UI.Theme)
	fmt.Printf("  ui.show_timestamps    %t\n", cfg.UI.ShowTimestamps)
	fmt.Printf("  ui.compact_mode       %t\n", cfg.UI.CompactMode)
	fmt.Printf("  server.addr           %s\n", cfg.Server.Addr)
	fmt.Printf("  server.rate_per_sec   %g\n", cfg.Server.RatePerSec)
	return nil
}

func handleConfigPath() error {
	path, err := config.ConfigPath()
	if err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error: %v", err)))
		return err
	}
	fmt.Println(path)
	return nil
}

func handleConfigSet(key, value string) error {
	if key == "" || value == "" {
		err := fmt.Errorf("config set requires a key and a value")
		fmt.Fprintln(os.Stderr, errorStyle.Render("Error: "+err.Error()))
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error: %v", err)))
		return err
	}

	if err := applyConfigKey(cfg, key, value); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error: %v", err)))
		return err
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error: %v", err)))
		return err
	}

	if err := config.Save(cfg); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error: %v", err)))
		return err
	}

	fmt.Printf("%s %s = %s\n", infoStyle.Render("Set"), key, value)
	return nil
}

// applyConfigKey routes a dotted key to the matching config field.
func applyConfigKey(cfg *config.Config, key, value string) error {
	switch key {
	case "backend.url":
		cfg.Backend.URL = value
	case "backend.timeout_secs":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("backend.timeout_secs must be an integer: %q", value)
		}
		cfg.Backend.TimeoutSecs = n
	case "ui.theme":
		cfg.UI.Theme = value
	case "ui.show_timestamps":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("ui.show_timestamps must be true or false: %q", value)
		}
		cfg.UI.ShowTimestamps = b
	case "ui.compact_mode":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("ui.compact_mode must be true or false: %q", value)
		}
		cfg.UI.CompactMode = b
	case "server.addr":
		cfg.Server.Addr = value
	case "server.rate_per_sec":
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("server.rate_per_sec must be a number: %q", value)
		}
		cfg.Server.RatePerSec = f
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
	return nil
}
