// Package media adapts the external multimedia engine. The controller talks to a
// Backend; MPV is the production implementation driving an mpv process over
// its JSON IPC socket.
package media

import (
	"context"

	"github.com/ytget/video-player/internal/model"
)

// EventKind identifies a backend notification
type EventKind int

const (
	// EventPosition carries a new playback position
	EventPosition EventKind = iota
	// EventDuration carries the duration of the loaded media
	EventDuration
	// EventState carries a play/pause/stop state change
	EventState
	// EventEndOfFile signals that the loaded media played to its natural end
	EventEndOfFile
)

// String returns a short name for logging
func (k EventKind) String() string {
	switch k {
	case EventPosition:
		return "position"
	case EventDuration:
		return "duration"
	case EventState:
		return "state"
	case EventEndOfFile:
		return "end-of-file"
	default:
		return "unknown"
	}
}

// Event is a notification emitted by a backend. Handlers may be called from
// any goroutine.
type Event struct {
	Kind       EventKind
	PositionMs int64
	DurationMs int64
	State      model.PlayerState
}

// Backend is the playback engine contract used by the controller.
// Backends play one file at a time; queueing is the caller's job.
type Backend interface {
	// SetEventHandler registers the single notification handler
	SetEventHandler(handler func(Event))

	// Load replaces the current media with path and starts playing it
	Load(ctx context.Context, path string) error
	Play() error
	Pause() error
	Stop() error

	// SeekTo moves to an absolute position
	SeekTo(positionMs int64) error

	// SetVolume sets the output volume in [0,100]
	SetVolume(volume int) error

	// SetSpeed sets the playback rate multiplier
	SetSpeed(rate float64) error

	ToggleFullscreen() error

	// Close releases the engine and its resources
	Close() error
}
