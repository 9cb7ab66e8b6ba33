package model

// PlayerState represents the state reported by the media backend
type PlayerState string

const (
	// PlayerStateStopped means nothing is loaded or playback reached the end
	PlayerStateStopped PlayerState = "Stopped"

	// PlayerStatePlaying means media is playing
	PlayerStatePlaying PlayerState = "Playing"

	// PlayerStatePaused means media is loaded but paused
	PlayerStatePaused PlayerState = "Paused"
)

// String returns the string representation of PlayerState
func (ps PlayerState) String() string {
	return string(ps)
}

// IsPlaying returns true if media is currently playing
func (ps PlayerState) IsPlaying() bool {
	return ps == PlayerStatePlaying
}

// HasMedia returns true if a media item is loaded (playing or paused)
func (ps PlayerState) HasMedia() bool {
	return ps == PlayerStatePlaying || ps == PlayerStatePaused
}
