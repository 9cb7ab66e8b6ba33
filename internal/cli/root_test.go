package cli

import (
	"bytes"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/video-player/internal/config"
	"github.com/ytget/video-player/internal/platform"
)

func TestVersionFlag(t *testing.T) {
	called := false
	cmd := NewRootCommand(viper.New(), "1.2.3", func(*config.Config, string) error {
		called = true
		return nil
	})
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--version"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "Video Player 1.2.3\n", out.String())
	assert.False(t, called)
}

func TestFlagsOverrideConfig(t *testing.T) {
	platform.SetMemMapFs()
	t.Cleanup(platform.SetOsFs)
	t.Cleanup(func() { log.SetLevel(log.InfoLevel) })
	require.NoError(t, platform.API().WriteFile("/cfg/player.yaml", []byte("video_dir: /from/file\nmpv:\n  binary: /from/file/mpv\n"), 0644))

	var got *config.Config
	cmd := NewRootCommand(viper.New(), "dev", func(cfg *config.Config, version string) error {
		got = cfg
		assert.Equal(t, "dev", version)
		return nil
	})
	cmd.SetArgs([]string{"--config", "/cfg/player.yaml", "--video-dir", "/from/flag", "--log-level", "warn"})

	require.NoError(t, cmd.Execute())
	require.NotNil(t, got)
	assert.Equal(t, "/from/flag", got.VideoDir)
	assert.Equal(t, "/from/file/mpv", got.MPV.Binary)
	assert.Equal(t, "warn", got.Log.Level)
}

func TestMissingConfigFile(t *testing.T) {
	platform.SetMemMapFs()
	t.Cleanup(platform.SetOsFs)

	cmd := NewRootCommand(viper.New(), "dev", func(*config.Config, string) error { return nil })
	cmd.SetArgs([]string{"--config", "/nope.yaml"})
	assert.Error(t, cmd.Execute())
}

func TestRejectsArguments(t *testing.T) {
	cmd := NewRootCommand(viper.New(), "dev", func(*config.Config, string) error { return nil })
	cmd.SetArgs([]string{"extra"})
	assert.Error(t, cmd.Execute())
}
