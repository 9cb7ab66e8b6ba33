package ui

import (
	"fyne.io/fyne/v2"

	"github.com/ytget/video-player/internal/platform"
)

const (
	AppIcon = "video-player.png"
)

// LoadLogoResource loads the application icon next to the executable
func LoadLogoResource() (fyne.Resource, error) {
	return fyne.LoadResourceFromPath(platform.ResourcePath("", AppIcon))
}
