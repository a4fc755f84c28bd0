package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_RoleField(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, "server", "debug")

	l.Info().Msg("hello")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "server", entry["role"])
	assert.Equal(t, "hello", entry["message"])
	assert.Contains(t, entry, "time")
}

func TestNewLogger_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, "server", "warn")

	l.Info().Msg("dropped")
	assert.Zero(t, buf.Len())

	l.Warn().Msg("kept")
	assert.NotZero(t, buf.Len())
}

func TestNewLogger_UnknownLevelDefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, "server", "verbose")

	l.Debug().Msg("dropped")
	assert.Zero(t, buf.Len())
	l.Info().Msg("kept")
	assert.NotZero(t, buf.Len())
}

func TestFromContext_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, "server", "info")

	ctx := l.WithContext(context.Background())
	FromContext(ctx).Info().Msg("via ctx")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "via ctx", entry["message"])
}

func TestFromRequest_WithoutLoggerDoesNotPanic(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	assert.NotPanics(t, func() {
		FromRequest(r).Info().Msg("nothing")
	})
}

func TestNop(t *testing.T) {
	assert.NotPanics(t, func() { Nop().Error().Msg("discarded") })
}
