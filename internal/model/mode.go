package model

// PlaybackMode selects what happens when the current item reaches its end
type PlaybackMode int

const (
	// ModeLoop repeats the current item
	ModeLoop PlaybackMode = iota
	// ModeSequential advances to the next item and stops after the last one
	ModeSequential
	// ModeRandom picks a random item
	ModeRandom
)

// Playback mode names used in configuration files
const (
	ModeNameLoop       = "loop"
	ModeNameSequential = "sequential"
	ModeNameRandom     = "random"
)

// String returns the configuration name of the mode
func (m PlaybackMode) String() string {
	switch m {
	case ModeLoop:
		return ModeNameLoop
	case ModeSequential:
		return ModeNameSequential
	case ModeRandom:
		return ModeNameRandom
	default:
		return "unknown"
	}
}

// IsValid reports whether m is one of the known modes
func (m PlaybackMode) IsValid() bool {
	return m == ModeLoop || m == ModeSequential || m == ModeRandom
}

// ParsePlaybackMode converts a configuration name to a mode.
// Unknown names fall back to ModeSequential.
func ParsePlaybackMode(s string) PlaybackMode {
	switch s {
	case ModeNameLoop:
		return ModeLoop
	case ModeNameRandom:
		return ModeRandom
	default:
		return ModeSequential
	}
}

// PlaybackModes returns all modes in the order they are offered to the user
func PlaybackModes() []PlaybackMode {
	return []PlaybackMode{ModeLoop, ModeSequential, ModeRandom}
}
