package cli

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	log "github.com/sirupsen/logrus"

	"github.com/ytget/video-player/internal/config"
	"github.com/ytget/video-player/internal/media"
	"github.com/ytget/video-player/internal/platform"
	"github.com/ytget/video-player/internal/player"
	"github.com/ytget/video-player/internal/ui"
)

const (
	AppID      = "com.ytget.video-player"
	AppName    = "Video Player"
	AppCommand = "video-player"
)

// runApp wires the backend, controller and window, then blocks in the Fyne
// event loop
func runApp(cfg *config.Config, version string) error {
	a := app.NewWithID(AppID)
	a.Settings().SetTheme(ui.NewCompactTheme())

	window := a.NewWindow(AppName)
	window.Resize(fyne.NewSize(float32(cfg.Window.Width), float32(cfg.Window.Height)))
	if icon, err := ui.LoadLogoResource(); err == nil {
		window.SetIcon(icon)
	} else {
		log.Debugf("No application icon: %v", err)
	}

	backend := media.NewMPV(media.MPVConfig{
		Binary:     cfg.MPV.Binary,
		SocketPath: platform.SocketPath(),
		Args:       cfg.MPV.Args,
		Title:      AppName,
		Volume:     cfg.Volume,
		Speed:      cfg.Rate,
	})
	controller := player.NewController(backend,
		player.WithDispatcher(fyne.Do),
		player.WithDefaults(cfg.Volume, cfg.Rate, cfg.PlaybackMode()),
	)

	settings := config.NewSettings(a).WithDefaultLanguage(cfg.Language)
	ui.NewRootUI(window, controller, settings, cfg.CatalogFor).SetVersion(version)

	window.SetOnClosed(func() {
		if err := controller.Close(); err != nil {
			log.Warnf("Closing media backend: %v", err)
		}
	})

	window.ShowAndRun()
	return nil
}
