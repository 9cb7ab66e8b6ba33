package player

import (
	"github.com/ytget/video-player/internal/model"
)

// Listener receives controller notifications on the UI thread. Nil fields
// are skipped.
type Listener struct {
	OnPosition   func(positionMs int64)
	OnDuration   func(durationMs int64)
	OnState      func(state model.PlayerState)
	OnNowPlaying func(session model.Session)
}

// Player defines the playback operations used by the screens.
type Player interface {
	LoadCatalog(entries []model.CatalogEntry, startIndex int) error
	PlayFromCatalog(entries []model.CatalogEntry, row int) error
	TogglePlayPause() error
	Previous() error
	Next() error
	Restart() error
	SeekTo(positionMs int64) error
	SetVolume(volume int) error
	SetRate(rate float64) error
	SetMode(mode model.PlaybackMode)
	Stop() error
	ToggleFullscreen() error
	Subscribe(listener Listener)

	// Session returns a copy of the live session; ok is false when nothing is loaded
	Session() (session model.Session, ok bool)

	// Volume and Rate survive across sessions
	Volume() int
	Rate() float64
}
