package config

import (
	"testing"

	"fyne.io/fyne/v2/test"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestVideoDirectory(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// No override by default
	if dir := settings.GetVideoDirectory(); dir != "" {
		t.Errorf("Expected empty override, got %s", dir)
	}

	customDir := "/custom/videos"
	settings.SetVideoDirectory(customDir)
	if dir := settings.GetVideoDirectory(); dir != customDir {
		t.Errorf("Expected video directory %s, got %s", customDir, dir)
	}

	// Clearing restores the configured directory
	settings.SetVideoDirectory("")
	if dir := settings.GetVideoDirectory(); dir != "" {
		t.Errorf("Expected cleared override, got %s", dir)
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	lang := settings.GetLanguage()
	if lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	// Test setting custom value
	settings.SetLanguage("en")

	retrievedLang := settings.GetLanguage()
	if retrievedLang != "en" {
		t.Errorf("Expected language 'en', got %s", retrievedLang)
	}
}

func TestLanguage_ConfiguredDefault(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app).WithDefaultLanguage("fr")

	if lang := settings.GetLanguage(); lang != "fr" {
		t.Errorf("Expected configured default 'fr', got %s", lang)
	}

	settings.SetLanguage("ru")
	if lang := settings.GetLanguage(); lang != "ru" {
		t.Errorf("Stored preference should win, got %s", lang)
	}
}

func TestGetLanguageOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetLanguageOptions()

	expectedLangs := []string{"system", "en", "fr", "ru", "pt"}
	for _, lang := range expectedLangs {
		if _, exists := options[lang]; !exists {
			t.Errorf("Expected language option '%s' to exist", lang)
		}
	}

	if len(options) != len(expectedLangs) {
		t.Errorf("Expected %d language options, got %d", len(expectedLangs), len(options))
	}
}
