// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "http://localhost:8080/ask", cfg.Backend.URL)
	assert.Equal(t, 30, cfg.Backend.TimeoutSecs)
	assert.Equal(t, 30*time.Second, cfg.Backend.Timeout())
	assert.Equal(t, "auto", cfg.UI.Theme)
	assert.NoError(t, cfg.Validate())
}

func TestLoadFromPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
version = "1.0"

[backend]
url = "https://qa.example.com/ask"
timeout_secs = 10

[ui]
theme = "dark"
show_timestamps = true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := LoadFromPath(path)
	require.NoError(t, err)

	assert.Equal(t, "https://qa.example.com/ask", cfg.Backend.URL)
	assert.Equal(t, 10, cfg.Backend.TimeoutSecs)
	assert.Equal(t, "dark", cfg.UI.Theme)
	assert.True(t, cfg.UI.ShowTimestamps)

	// Fields absent from the file keep their defaults.
	assert.Equal(t, "localhost:8080", cfg.Server.Addr)
}

func TestLoadFromPathInvalidTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("not = [valid"), 0o600))

	_, err := LoadFromPath(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "valid defaults",
			mutate: func(c *Config) {},
		},
		{
			name:    "empty backend url",
			mutate:  func(c *Config) { c.Backend.URL = "" },
			wantErr: "backend.url",
		},
		{
			name:    "malformed backend url",
			mutate:  func(c *Config) { c.Backend.URL = "://nope" },
			wantErr: "backend.url",
		},
		{
			name:    "zero timeout",
			mutate:  func(c *Config) { c.Backend.TimeoutSecs = 0 },
			wantErr: "backend.timeout_secs",
		},
		{
			name:    "unknown theme",
			mutate:  func(c *Config) { c.UI.Theme = "solarized" },
			wantErr: "ui.theme",
		},
		{
			name:    "negative rate",
			mutate:  func(c *Config) { c.Server.RatePerSec = -1 },
			wantErr: "server.rate_per_sec",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("BSI_AGENT_URL", "http://override:9000/ask")
	t.Setenv("BSI_AGENT_TIMEOUT_SECS", "5")
	t.Setenv("BSI_AGENT_THEME", "light")
	t.Setenv("BSI_AGENT_COMPACT", "true")

	cfg := Default()
	cfg.ApplyEnvOverrides()

	assert.Equal(t, "http://override:9000/ask", cfg.Backend.URL)
	assert.Equal(t, 5, cfg.Backend.TimeoutSecs)
	assert.Equal(t, "light", cfg.UI.Theme)
	assert.True(t, cfg.UI.CompactMode)
}

func TestApplyEnvOverridesIgnoresBadTimeout(t *testing.T) {
	t.Setenv("BSI_AGENT_TIMEOUT_SECS", "not-a-number")

	cfg := Default()
	cfg.ApplyEnvOverrides()

	assert.Equal(t, 30, cfg.Backend.TimeoutSecs)
}

func TestSaveAndReload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	cfg := Default()
	cfg.Backend.URL = "http://saved.example.com/ask"
	require.NoError(t, SaveTOML(cfg, path))

	loaded, err := LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, "http://saved.example.com/ask", loaded.Backend.URL)
}

func TestSaveTOMLCreatesOnlyTargetDirectory(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "config.toml")
	require.NoError(t, SaveTOML(Default(), path))

	_, err := os.Stat(path)
	assert.NoError(t, err)

	_, err = os.Stat(filepath.Join(home, ".bsi-agent"))
	assert.True(t, os.IsNotExist(err))
}

func TestWatcherReloadsOnChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	cfg := Default()
	require.NoError(t, SaveTOML(cfg, path))

	changed := make(chan *Config, 1)
	w, err := NewWatcher(path, func(c *Config) {
		select {
		case changed <- c:
		default:
		}
	})
	require.NoError(t, err)
	defer w.Close()
	require.NoError(t, w.Watch())

	cfg.UI.Theme = "dark"
	require.NoError(t, SaveTOML(cfg, path))

	select {
	case got := <-changed:
		assert.Equal(t, "dark", got.UI.Theme)
	case <-time.After(3 * time.Second):
		t.Fatal("watcher did not deliver the reloaded config")
	}
}
