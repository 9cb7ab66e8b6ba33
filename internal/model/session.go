package model

import "time"

// Playback rate and volume limits
const (
	MinRate       = 0.5
	MaxRate       = 2.0
	DefaultRate   = 1.0
	MinVolume     = 0
	MaxVolume     = 100
	DefaultVolume = 50
)

// Session is the live playback state of the currently loaded queue.
// It is owned by the playback controller and handed out by value.
type Session struct {
	ID           string
	CurrentIndex int // position in the playback queue, not in the catalog
	Current      CatalogEntry
	QueueLength  int
	Mode         PlaybackMode
	Rate         float64
	Volume       int
	PositionMs   int64
	DurationMs   int64 // 0 while unknown
	State        PlayerState
	StartedAt    time.Time
}

// IsPlaying reports whether the backend last reported the Playing state
func (s Session) IsPlaying() bool {
	return s.State.IsPlaying()
}

// DurationKnown reports whether the backend has reported a duration yet
func (s Session) DurationKnown() bool {
	return s.DurationMs > 0
}
