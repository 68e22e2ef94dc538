// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MarlyasDad

package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that building with no configs returns a
// zero-value StructuredConfig.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_LaterSourceOverrides verifies that a non-zero field of a later
// config wins, while zero fields keep the earlier value.
func TestBuild_LaterSourceOverrides(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Connection: Connection{Host: "first", ReadPort: 5000}},
		&StructuredConfig{Connection: Connection{Host: "second"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "second", cfg.Connection.Host)
	assert.Equal(t, 5000, cfg.Connection.ReadPort)
}

// TestWithDefaults verifies the built-in defaults.
func TestWithDefaults(t *testing.T) {
	cfg, err := newConfigBuilder().withDefaults().build()
	require.NoError(t, err)

	assert.Equal(t, DefaultHost, cfg.Connection.Host)
	assert.Equal(t, DefaultReadPort, cfg.Connection.ReadPort)
	assert.Equal(t, DefaultWritePort, cfg.Connection.WritePort)
	assert.Equal(t, DefaultHistoryPath, cfg.Storage.HistoryPath)
	assert.Equal(t, DefaultTokenPath, cfg.Storage.TokenPath)
	assert.Equal(t, DefaultNickname, cfg.Session.Nickname)
	assert.Equal(t, "None", cfg.Session.AnonymousToken)
	assert.Equal(t, 15*time.Second, cfg.Session.WatchdogInterval)
	assert.Equal(t, 10*time.Second, cfg.Session.WatchdogTimeout)
	assert.Equal(t, 5*time.Second, cfg.Session.ReconnectDelay)
	assert.Equal(t, DefaultLogPath, cfg.App.LogPath)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

func TestWithFlags_BadFlagSetsError(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"--no-such-flag"})
	require.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

// TestWithJSON_NoPathSkipsJSON verifies that no JSON config is appended when
// no source specifies a path.
func TestWithJSON_NoPathSkipsJSON(t *testing.T) {
	b := newConfigBuilder().withDefaults().withJSON()
	require.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

// TestWithJSON_MissingFileSetsError verifies that a JSON path pointing to a
// non-existent file records an error.
func TestWithJSON_MissingFileSetsError(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/nonexistent/config.json"})
	b.withJSON()
	require.Error(t, b.err)
}

// TestGetStructuredConfig_Priority verifies defaults < env < flags < JSON.
func TestGetStructuredConfig_Priority(t *testing.T) {
	jsonPath := writeTempJSONConfig(t, map[string]any{
		"session": map[string]any{"nickname": "from-json"},
	})

	t.Setenv("CONNECTION_HOST", "env.example.org")
	t.Setenv("CONNECTION_READ_PORT", "7000")
	t.Setenv("SESSION_NICKNAME", "from-env")

	cfg, err := GetStructuredConfig([]string{
		"--r_port", "7100",
		"--nickname", "from-flag",
		"--config", jsonPath,
	})
	require.NoError(t, err)

	assert.Equal(t, "env.example.org", cfg.Connection.Host)
	assert.Equal(t, 7100, cfg.Connection.ReadPort)
	assert.Equal(t, DefaultWritePort, cfg.Connection.WritePort)
	assert.Equal(t, "from-json", cfg.Session.Nickname)
}
