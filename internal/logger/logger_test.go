package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithWriterLevels(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, "warn")
	assert.Equal(t, zerolog.WarnLevel, l.GetLevel())

	l.Info().Msg("dropped")
	assert.Zero(t, buf.Len())

	l.Warn().Str("collection", "users").Msg("kept")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "kept", entry["message"])
	assert.Equal(t, "users", entry["collection"])
	assert.Equal(t, "doctors-portal-api", entry["service"])
	assert.Contains(t, entry, "time")
}

func TestNewWithWriterUnknownLevel(t *testing.T) {
	l := NewWithWriter(&bytes.Buffer{}, "chatty")
	assert.Equal(t, zerolog.InfoLevel, l.GetLevel())

	l = NewWithWriter(&bytes.Buffer{}, "")
	assert.Equal(t, zerolog.InfoLevel, l.GetLevel())
}
