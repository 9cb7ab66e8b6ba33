package logging

import (
	"os"
	"strings"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/video-player/internal/platform"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want log.Level
	}{
		{"debug", log.DebugLevel},
		{"WARN", log.WarnLevel},
		{"error", log.ErrorLevel},
		{"", DefaultLevel},
		{"loud", DefaultLevel},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseLevel(tt.in), "level %q", tt.in)
	}
}

func TestSetup_File(t *testing.T) {
	platform.SetMemMapFs()
	t.Cleanup(platform.SetOsFs)
	t.Cleanup(func() {
		log.SetLevel(DefaultLevel)
		log.SetOutput(os.Stderr)
	})

	closer, err := Setup("debug", "/logs/player.log")
	require.NoError(t, err)

	log.Debug("hello from the player")
	require.NoError(t, closer.Close())

	data, err := platform.API().ReadFile("/logs/player.log")
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "hello from the player"))
	assert.Equal(t, log.DebugLevel, log.GetLevel())
}

func TestSetup_Stderr(t *testing.T) {
	t.Cleanup(func() { log.SetLevel(DefaultLevel) })

	closer, err := Setup("nonsense", "")
	require.NoError(t, err)
	require.NotNil(t, closer)
	assert.NoError(t, closer.Close())
	assert.Equal(t, DefaultLevel, log.GetLevel())
}
