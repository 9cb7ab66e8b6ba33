package config

import (
	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyPrefLanguage = "app_language"
	KeyPrefVideoDir = "video_directory"
)

// Default values
const (
	DefaultLanguage = "system"
)

// Settings stores user preferences chosen in the settings dialog. Playback
// state is never persisted here.
type Settings struct {
	app             fyne.App
	defaultLanguage string
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app, defaultLanguage: DefaultLanguage}
}

// WithDefaultLanguage sets the language used until the user picks one
func (s *Settings) WithDefaultLanguage(lang string) *Settings {
	if lang != "" {
		s.defaultLanguage = lang
	}
	return s
}

// GetVideoDirectory returns the user's video directory override, or "" when
// the configured directory should be used
func (s *Settings) GetVideoDirectory() string {
	return s.app.Preferences().String(KeyPrefVideoDir)
}

// SetVideoDirectory sets the video directory override; "" clears it
func (s *Settings) SetVideoDirectory(dir string) {
	if dir == "" {
		s.app.Preferences().RemoveValue(KeyPrefVideoDir)
		return
	}
	s.app.Preferences().SetString(KeyPrefVideoDir, dir)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	return s.app.Preferences().StringWithFallback(KeyPrefLanguage, s.defaultLanguage)
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyPrefLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"fr":     "Français",
		"ru":     "Русский",
		"pt":     "Português",
	}
}
