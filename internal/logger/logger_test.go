package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewLogger_RoleField verifies that every log entry contains the
// expected "role" field.
func TestNewLogger_RoleField(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("test-role", &buf)

	l.Info().Msg("hello")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "test-role", entry["role"])
	assert.Equal(t, "hello", entry["message"])
}

// TestNewLogger_ContainsTimestamp verifies that log entries contain a timestamp field.
func TestNewLogger_ContainsTimestamp(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("ts-role", &buf)

	l.Info().Msg("ts check")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	_, hasTime := entry["time"]
	assert.True(t, hasTime, "expected 'time' field in log entry")
}

// TestNewLogger_CallerField verifies that the caller is recorded as a
// function name under the "func" key.
func TestNewLogger_CallerField(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("caller-role", &buf)

	l.Info().Msg("caller")

	assert.Equal(t, "func", zerolog.CallerFieldName)
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	fn, ok := entry["func"].(string)
	require.True(t, ok)
	assert.Contains(t, fn, "TestNewLogger_CallerField")
}

// TestNewLogger_GlobalLevelIsDebug verifies that NewLogger sets the global
// zerolog level to Debug.
func TestNewLogger_GlobalLevelIsDebug(t *testing.T) {
	var buf bytes.Buffer
	NewLogger("level-role", &buf)
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

// TestNewClientLogger_WritesToFile verifies that entries are appended to
// the configured log file.
func TestNewClientLogger_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chat.log")

	l, closeFn := NewClientLogger("client", path)
	l.Info().Str("session_id", "s-1").Msg("connected")
	require.NoError(t, closeFn())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"session_id":"s-1"`)
	assert.Contains(t, string(data), `"role":"client"`)
}

// TestNewClientLogger_Appends verifies that a second logger keeps earlier
// entries in place.
func TestNewClientLogger_Appends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chat.log")

	for _, msg := range []string{"first", "second"} {
		l, closeFn := NewClientLogger("client", path)
		l.Info().Msg(msg)
		require.NoError(t, closeFn())
	}

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	assert.Len(t, lines, 2)
}

// TestNewClientLogger_UnopenablePathDiscards verifies the fallback when the
// log file cannot be created.
func TestNewClientLogger_UnopenablePathDiscards(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing-dir", "chat.log")

	l, closeFn := NewClientLogger("client", path)
	require.NotNil(t, l)
	require.NotNil(t, closeFn)

	l.Info().Msg("dropped")
	assert.NoError(t, closeFn())
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

// TestNop_DiscardsOutput verifies that a Nop logger produces no output.
func TestNop_DiscardsOutput(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	l.Logger = l.Output(&buf)

	l.Info().Msg("should be discarded")

	assert.Empty(t, buf.String(), "Nop logger should produce no output")
}

// TestGetChildLogger_InheritsFields verifies that the child logger is a
// distinct instance carrying the parent's fields.
func TestGetChildLogger_InheritsFields(t *testing.T) {
	var buf bytes.Buffer
	parent := NewLogger("inherited-role", &buf)

	child := parent.GetChildLogger()
	assert.NotSame(t, parent, child)

	child.Info().Msg("child message")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "inherited-role", entry["role"])
}

// TestFromContext_NotNil verifies that FromContext never returns nil, even
// when no logger has been explicitly attached to the context.
func TestFromContext_NotNil(t *testing.T) {
	l := FromContext(context.Background())
	require.NotNil(t, l)
}

// TestFromContext_ReturnsAttachedLogger verifies that FromContext returns the
// logger that was previously attached to the context via zerolog.
func TestFromContext_ReturnsAttachedLogger(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("ctx-role", &buf)
	ctx := l.With().Str("session_id", "abc").Logger().WithContext(context.Background())

	got := FromContext(ctx)
	require.NotNil(t, got)

	got.Info().Msg("from context")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "abc", entry["session_id"])
}

func TestFromContextOr(t *testing.T) {
	var fallbackBuf, ctxBuf bytes.Buffer
	fallback := NewLogger("fallback", &fallbackBuf)

	t.Run("empty context uses fallback", func(t *testing.T) {
		got := FromContextOr(context.Background(), fallback)
		assert.Same(t, fallback, got)
	})

	t.Run("attached logger wins", func(t *testing.T) {
		ctx := NewLogger("attached", &ctxBuf).WithContext(context.Background())

		FromContextOr(ctx, fallback).Info().Msg("from context")

		assert.Contains(t, ctxBuf.String(), `"role":"attached"`)
		assert.Empty(t, fallbackBuf.String())
	})

	t.Run("nil fallback", func(t *testing.T) {
		assert.NotNil(t, FromContextOr(context.Background(), nil))
	})
}
