package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"", zerolog.InfoLevel},
		{"debug", zerolog.DebugLevel},
		{"warn", zerolog.WarnLevel},
		{"off", zerolog.Disabled},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseLevel("loud")
	assert.Error(t, err)
}

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	cfg := DefaultConfig()
	cfg.Format = "json"
	cfg.Level = zerolog.DebugLevel
	log := New(cfg, &buf)

	ctx := WithComponent(WithContext(context.Background(), log), "tui")
	FromContext(ctx).Debug().Int("panes", 3).Msg("layout")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "tui", entry["component"])
	assert.Equal(t, "layout", entry["message"])
	assert.Equal(t, float64(3), entry["panes"])
	assert.Contains(t, entry, "time")
}

func TestNewLevelFilters(t *testing.T) {
	var buf bytes.Buffer
	log := New(DefaultConfig(), &buf)
	log.Debug().Msg("hidden")
	assert.Empty(t, buf.String())

	log.Info().Msg("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestFromContextWithoutLogger(t *testing.T) {
	l := FromContext(context.Background())
	require.NotNil(t, l)
	assert.Equal(t, zerolog.Disabled, l.GetLevel())
}
