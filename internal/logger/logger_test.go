package logger

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"", zerolog.InfoLevel},
		{"debug", zerolog.DebugLevel},
		{"trace", zerolog.TraceLevel},
		{"disabled", zerolog.Disabled},
		{"loud", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Logger{Level: tt.in}.level(), "level %q", tt.in)
	}
}

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	l := Logger{Format: "json"}.New(&buf)
	l.Info().Str("map", "demo").Msg("hello")

	assert.Contains(t, buf.String(), `"map":"demo"`)
	assert.Contains(t, buf.String(), `"message":"hello"`)
}

func TestNewText(t *testing.T) {
	var buf bytes.Buffer
	l := Logger{Format: "text"}.New(&buf)
	l.Info().Str("map", "demo").Msg("hello")

	assert.Contains(t, buf.String(), "hello")
	assert.NotContains(t, buf.String(), `"message"`)
}
