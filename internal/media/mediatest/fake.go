// Package mediatest provides an in-memory media.Backend for tests.
package mediatest

import (
	"context"
	"sync"

	"github.com/ytget/video-player/internal/media"
	"github.com/ytget/video-player/internal/model"
)

// Method names recorded by Backend
const (
	MethodLoad             = "Load"
	MethodPlay             = "Play"
	MethodPause            = "Pause"
	MethodStop             = "Stop"
	MethodSeek             = "SeekTo"
	MethodSetVolume        = "SetVolume"
	MethodSetSpeed         = "SetSpeed"
	MethodToggleFullscreen = "ToggleFullscreen"
	MethodClose            = "Close"
)

// Call is one recorded backend invocation
type Call struct {
	Method string
	Arg    any
}

// Backend records every call. With AutoState set it reports state changes the
// way mpv does after load/play/pause/stop.
type Backend struct {
	AutoState bool
	LoadErr   error

	mu      sync.Mutex
	calls   []Call
	state   model.PlayerState
	handler func(media.Event)
}

var _ media.Backend = (*Backend)(nil)

// NewBackend returns a fake with AutoState enabled
func NewBackend() *Backend {
	return &Backend{AutoState: true, state: model.PlayerStateStopped}
}

func (b *Backend) record(method string, arg any) {
	b.mu.Lock()
	b.calls = append(b.calls, Call{Method: method, Arg: arg})
	b.mu.Unlock()
}

// setState is called without holding mu so handlers may call back in
func (b *Backend) setState(state model.PlayerState) {
	b.mu.Lock()
	changed := b.state != state
	b.state = state
	auto := b.AutoState
	b.mu.Unlock()
	if changed && auto {
		b.Emit(media.Event{Kind: media.EventState, State: state})
	}
}

// SetEventHandler registers the notification handler
func (b *Backend) SetEventHandler(handler func(media.Event)) {
	b.mu.Lock()
	b.handler = handler
	b.mu.Unlock()
}

// Emit delivers an event to the registered handler
func (b *Backend) Emit(event media.Event) {
	b.mu.Lock()
	handler := b.handler
	b.mu.Unlock()
	if handler != nil {
		handler(event)
	}
}

func (b *Backend) Load(_ context.Context, path string) error {
	b.record(MethodLoad, path)
	if b.LoadErr != nil {
		return b.LoadErr
	}
	b.setState(model.PlayerStatePlaying)
	return nil
}

func (b *Backend) Play() error {
	b.record(MethodPlay, nil)
	if b.State() == model.PlayerStatePaused {
		b.setState(model.PlayerStatePlaying)
	}
	return nil
}

func (b *Backend) Pause() error {
	b.record(MethodPause, nil)
	if b.State() == model.PlayerStatePlaying {
		b.setState(model.PlayerStatePaused)
	}
	return nil
}

func (b *Backend) Stop() error {
	b.record(MethodStop, nil)
	b.setState(model.PlayerStateStopped)
	return nil
}

func (b *Backend) SeekTo(positionMs int64) error {
	b.record(MethodSeek, positionMs)
	return nil
}

func (b *Backend) SetVolume(volume int) error {
	b.record(MethodSetVolume, volume)
	return nil
}

func (b *Backend) SetSpeed(rate float64) error {
	b.record(MethodSetSpeed, rate)
	return nil
}

func (b *Backend) ToggleFullscreen() error {
	b.record(MethodToggleFullscreen, nil)
	return nil
}

func (b *Backend) Close() error {
	b.record(MethodClose, nil)
	return nil
}

// State returns the state the fake believes mpv is in
func (b *Backend) State() model.PlayerState {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

// Calls returns all recorded calls in order
func (b *Backend) Calls() []Call {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]Call, len(b.calls))
	copy(out, b.calls)
	return out
}

// CallsTo returns recorded calls of one method
func (b *Backend) CallsTo(method string) []Call {
	var out []Call
	for _, c := range b.Calls() {
		if c.Method == method {
			out = append(out, c)
		}
	}
	return out
}

// Count returns how many times method was called
func (b *Backend) Count(method string) int {
	return len(b.CallsTo(method))
}

// LoadedPaths returns the paths passed to Load, in order
func (b *Backend) LoadedPaths() []string {
	var paths []string
	for _, c := range b.CallsTo(MethodLoad) {
		paths = append(paths, c.Arg.(string))
	}
	return paths
}

// Reset forgets recorded calls
func (b *Backend) Reset() {
	b.mu.Lock()
	b.calls = nil
	b.mu.Unlock()
}
