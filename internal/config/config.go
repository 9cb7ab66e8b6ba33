package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/ytget/video-player/internal/model"
	"github.com/ytget/video-player/internal/platform"
)

// Configuration keys
const (
	KeyVideoDir     = "video_dir"
	KeyVideos       = "videos"
	KeyVolume       = "volume"
	KeyRate         = "rate"
	KeyMode         = "mode"
	KeyLanguage     = "language"
	KeyMPVBinary    = "mpv.binary"
	KeyMPVArgs      = "mpv.args"
	KeyLogLevel     = "log.level"
	KeyLogFile      = "log.file"
	KeyWindowWidth  = "window.width"
	KeyWindowHeight = "window.height"
)

const (
	EnvPrefix          = "VIDEO_PLAYER"
	ConfigName         = "config"
	ConfigType         = "yaml"
	DefaultLogLevel    = "info"
	DefaultMPV         = "mpv"
	DefaultWidth       = 1000
	DefaultHeight      = 800
	DefaultVideoSubdir = "video"
)

// Video is one configured catalog item
type Video struct {
	Title string `mapstructure:"title"`
	File  string `mapstructure:"file"`
}

// MPVConfig holds media engine settings
type MPVConfig struct {
	Binary string   `mapstructure:"binary"`
	Args   []string `mapstructure:"args"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

// WindowConfig holds the initial window size
type WindowConfig struct {
	Width  int `mapstructure:"width"`
	Height int `mapstructure:"height"`
}

// Config is the startup configuration. It is read once and never written
// back.
type Config struct {
	VideoDir string       `mapstructure:"video_dir"`
	Videos   []Video      `mapstructure:"videos"`
	Volume   int          `mapstructure:"volume"`
	Rate     float64      `mapstructure:"rate"`
	Mode     string       `mapstructure:"mode"`
	Language string       `mapstructure:"language"`
	MPV      MPVConfig    `mapstructure:"mpv"`
	Log      LogConfig    `mapstructure:"log"`
	Window   WindowConfig `mapstructure:"window"`
}

// DefaultVideos returns the built-in catalog: video/video1.mp4..video4.mp4
func DefaultVideos() []Video {
	return lo.Map(lo.Range(4), func(i int, _ int) Video {
		return Video{
			Title: fmt.Sprintf("Video %d", i+1),
			File:  filepath.Join(DefaultVideoSubdir, fmt.Sprintf("video%d.mp4", i+1)),
		}
	})
}

// SetDefaults registers default values on v
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyVideoDir, "")
	v.SetDefault(KeyVolume, model.DefaultVolume)
	v.SetDefault(KeyRate, model.DefaultRate)
	v.SetDefault(KeyMode, model.ModeNameSequential)
	v.SetDefault(KeyLanguage, DefaultLanguage)
	v.SetDefault(KeyMPVBinary, DefaultMPV)
	v.SetDefault(KeyMPVArgs, []string{})
	v.SetDefault(KeyLogLevel, DefaultLogLevel)
	v.SetDefault(KeyLogFile, "")
	v.SetDefault(KeyWindowWidth, DefaultWidth)
	v.SetDefault(KeyWindowHeight, DefaultHeight)
}

// Load reads configuration into a Config. An explicit path must exist; when
// path is empty the per-user config file is optional.
func Load(v *viper.Viper, path string) (*Config, error) {
	SetDefaults(v)
	v.SetFs(platform.API().Fs)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(ConfigName)
		v.SetConfigType(ConfigType)
		if dir, err := platform.ConfigDir(); err == nil {
			v.AddConfigPath(dir)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
		log.Debug("No config file found, using defaults")
	} else {
		log.Infof("Loaded config from %s", v.ConfigFileUsed())
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.normalize()
	return &cfg, nil
}

// normalize clamps values into their valid ranges and fills blanks
func (c *Config) normalize() {
	c.Volume = lo.Clamp(c.Volume, model.MinVolume, model.MaxVolume)
	c.Rate = lo.Clamp(c.Rate, model.MinRate, model.MaxRate)
	c.Mode = model.ParsePlaybackMode(c.Mode).String()
	if c.Language == "" {
		c.Language = DefaultLanguage
	}
	if c.MPV.Binary == "" {
		c.MPV.Binary = DefaultMPV
	}
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
	if c.Window.Width <= 0 {
		c.Window.Width = DefaultWidth
	}
	if c.Window.Height <= 0 {
		c.Window.Height = DefaultHeight
	}
	c.Videos = lo.Filter(c.Videos, func(v Video, _ int) bool {
		return strings.TrimSpace(v.File) != ""
	})
	if len(c.Videos) == 0 {
		c.Videos = DefaultVideos()
	}
}

// PlaybackMode returns the configured initial mode
func (c *Config) PlaybackMode() model.PlaybackMode {
	return model.ParsePlaybackMode(c.Mode)
}

// Catalog builds the media catalog. Relative files are resolved against
// VideoDir, or the executable directory when VideoDir is empty.
func (c *Config) Catalog() *model.Catalog {
	entries := lo.Map(c.Videos, func(v Video, i int) model.CatalogEntry {
		title := v.Title
		if title == "" {
			title = strings.TrimSuffix(filepath.Base(v.File), filepath.Ext(v.File))
		}
		return model.CatalogEntry{
			Index: i + 1,
			Title: title,
			Path:  platform.ResourcePath(c.VideoDir, v.File),
		}
	})
	return model.NewCatalog(entries)
}

// CatalogFor builds the catalog with videoDir replacing the configured
// directory; an empty videoDir keeps the configuration
func (c *Config) CatalogFor(videoDir string) *model.Catalog {
	if videoDir == "" {
		return c.Catalog()
	}
	override := *c
	override.VideoDir = videoDir
	return override.Catalog()
}
