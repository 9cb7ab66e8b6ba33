package player

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"

	"github.com/ytget/video-player/internal/media"
	"github.com/ytget/video-player/internal/model"
	"github.com/ytget/video-player/internal/platform"
	"github.com/ytget/video-player/internal/playlist"
)

var (
	// ErrEmptyQueue is returned when none of the selected entries exist on disk
	ErrEmptyQueue = errors.New("no playable entries")
	// ErrNoSession is returned by transport operations when nothing is loaded
	ErrNoSession = errors.New("no active session")
)

const loadTimeout = 5 * time.Second

// Option configures a Controller
type Option func(*Controller)

// WithDispatcher sets the function used to run backend notifications on the
// UI thread. The default runs them inline.
func WithDispatcher(dispatch func(func())) Option {
	return func(c *Controller) {
		if dispatch != nil {
			c.dispatch = dispatch
		}
	}
}

// WithFileCheck replaces the on-disk existence check used by LoadCatalog
func WithFileCheck(exists func(path string) bool) Option {
	return func(c *Controller) {
		if exists != nil {
			c.fileExists = exists
		}
	}
}

// WithRand sets the random source for Random mode
func WithRand(rng *rand.Rand) Option {
	return func(c *Controller) {
		c.rng = rng
	}
}

// WithDefaults sets the initial volume, rate and the mode each new session
// starts in
func WithDefaults(volume int, rate float64, mode model.PlaybackMode) Option {
	return func(c *Controller) {
		c.volume = lo.Clamp(volume, model.MinVolume, model.MaxVolume)
		c.rate = lo.Clamp(rate, model.MinRate, model.MaxRate)
		if mode.IsValid() {
			c.initialMode = mode
		}
	}
}

// WithContext sets the parent context for backend loads
func WithContext(ctx context.Context) Option {
	return func(c *Controller) {
		c.ctx = ctx
	}
}

// Controller drives one backend and one playback queue. All methods and
// listener callbacks run on the UI thread.
type Controller struct {
	backend    media.Backend
	queue      *playlist.Playlist
	rng        *rand.Rand
	dispatch   func(func())
	fileExists func(string) bool
	ctx        context.Context

	listeners []Listener

	active       bool
	session      model.Session
	backendState model.PlayerState // last state reported by the backend
	volume       int
	rate         float64
	initialMode  model.PlaybackMode
}

var _ Player = (*Controller)(nil)

// NewController creates a controller and registers it as the backend's event
// handler
func NewController(backend media.Backend, opts ...Option) *Controller {
	c := &Controller{
		backend:     backend,
		dispatch:    func(f func()) { f() },
		fileExists:  platform.FileExists,
		ctx:         context.Background(),
		volume:      model.DefaultVolume,
		rate:        model.DefaultRate,
		initialMode: model.ModeSequential,

		backendState: model.PlayerStateStopped,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.queue = playlist.New(c.rng)

	backend.SetEventHandler(func(ev media.Event) {
		c.dispatch(func() { c.handleEvent(ev) })
	})
	return c
}

// Subscribe registers a listener
func (c *Controller) Subscribe(listener Listener) {
	c.listeners = append(c.listeners, listener)
}

// Session returns a copy of the live session
func (c *Controller) Session() (model.Session, bool) {
	return c.session, c.active
}

// Volume returns the current output volume
func (c *Controller) Volume() int {
	return c.volume
}

// Rate returns the current playback rate
func (c *Controller) Rate() float64 {
	return c.rate
}

func (c *Controller) logger() *log.Entry {
	return log.WithField("session", c.session.ID)
}

// LoadCatalog replaces the queue with the entries that exist on disk, in
// order, and starts playing the one at startIndex clamped into the queue.
// The session starts in the initial mode.
func (c *Controller) LoadCatalog(entries []model.CatalogEntry, startIndex int) error {
	present := lo.Filter(entries, func(e model.CatalogEntry, _ int) bool {
		return c.fileExists(e.Path)
	})
	if skipped := len(entries) - len(present); skipped > 0 {
		log.Debugf("Skipping %d missing catalog files", skipped)
	}
	if len(present) == 0 {
		log.Warn("None of the catalog files exist on disk")
		return ErrEmptyQueue
	}

	if c.active {
		c.stopSession()
	}

	c.queue.Clear()
	for _, entry := range present {
		c.queue.Add(entry)
	}
	start := lo.Clamp(startIndex, 0, len(present)-1)
	if err := c.queue.SetCurrentIndex(start); err != nil {
		return fmt.Errorf("set start index: %w", err)
	}
	c.queue.SetMode(c.initialMode)

	c.session = model.Session{
		ID:          uuid.NewString(),
		QueueLength: len(present),
		Mode:        c.initialMode,
		Rate:        c.rate,
		Volume:      c.volume,
		State:       c.backendState,
		StartedAt:   time.Now(),
	}
	c.active = true
	c.logger().Infof("Session started with %d of %d entries, start index %d", len(present), len(entries), start)

	return c.playIndex(start)
}

// PlayFromCatalog starts a session from a catalog row. The row is mapped to
// its position in the filtered queue; a missing row starts at the next
// present entry, wrapping to the first one like Next does.
func (c *Controller) PlayFromCatalog(entries []model.CatalogEntry, row int) error {
	present := lo.Map(entries, func(e model.CatalogEntry, _ int) bool {
		return c.fileExists(e.Path)
	})
	before := present
	if row >= 0 && row < len(present) {
		before = present[:row]
	}
	start := lo.Count(before, true)
	if start >= lo.Count(present, true) {
		start = 0
	}
	return c.LoadCatalog(entries, start)
}

// playIndex loads the queue item at index and announces it
func (c *Controller) playIndex(index int) error {
	if err := c.queue.SetCurrentIndex(index); err != nil {
		return err
	}
	entry, _ := c.queue.Current()

	c.session.CurrentIndex = index
	c.session.Current = entry
	c.session.PositionMs = 0
	c.session.DurationMs = 0

	c.logger().Infof("Now playing %d/%d: %s", index+1, c.session.QueueLength, entry.Title)

	ctx, cancel := context.WithTimeout(c.ctx, loadTimeout)
	defer cancel()
	if err := c.backend.Load(ctx, entry.Path); err != nil {
		c.logger().Errorf("Failed to load %s: %v", entry.Path, err)
		return fmt.Errorf("load %s: %w", entry.Title, err)
	}

	c.notifyNowPlaying()
	return nil
}

// TogglePlayPause pauses while playing and plays otherwise. A stopped
// session reloads its current item.
func (c *Controller) TogglePlayPause() error {
	if !c.active {
		return ErrNoSession
	}
	switch {
	case c.session.IsPlaying():
		return c.wrap("pause", c.backend.Pause())
	case c.session.State.HasMedia():
		return c.wrap("play", c.backend.Play())
	default:
		return c.playIndex(c.queue.CurrentIndex())
	}
}

// Previous plays the previous item, wrapping to the last
func (c *Controller) Previous() error {
	if !c.active {
		return ErrNoSession
	}
	index, _ := c.queue.Previous()
	return c.playIndex(index)
}

// Next plays the next item, wrapping to the first
func (c *Controller) Next() error {
	if !c.active {
		return ErrNoSession
	}
	index, _ := c.queue.Next()
	return c.playIndex(index)
}

// Restart seeks to the beginning and plays
func (c *Controller) Restart() error {
	if !c.active {
		return ErrNoSession
	}
	if !c.session.State.HasMedia() {
		return c.playIndex(c.queue.CurrentIndex())
	}
	if err := c.backend.SeekTo(0); err != nil {
		return c.wrap("seek", err)
	}
	return c.wrap("play", c.backend.Play())
}

// SeekTo jumps to positionMs. Positions outside [0, duration] are ignored.
func (c *Controller) SeekTo(positionMs int64) error {
	if !c.active {
		return ErrNoSession
	}
	if positionMs < 0 || positionMs > c.session.DurationMs {
		return nil
	}
	return c.wrap("seek", c.backend.SeekTo(positionMs))
}

// SetVolume sets the output volume
func (c *Controller) SetVolume(volume int) error {
	c.volume = lo.Clamp(volume, model.MinVolume, model.MaxVolume)
	c.session.Volume = c.volume
	return c.wrap("set volume", c.backend.SetVolume(c.volume))
}

// SetRate sets the playback rate
func (c *Controller) SetRate(rate float64) error {
	c.rate = lo.Clamp(rate, model.MinRate, model.MaxRate)
	c.session.Rate = c.rate
	c.logger().Debugf("Playback rate %.2f", c.rate)
	return c.wrap("set rate", c.backend.SetSpeed(c.rate))
}

// SetMode selects the end-of-track behavior
func (c *Controller) SetMode(mode model.PlaybackMode) {
	c.queue.SetMode(mode)
	c.session.Mode = c.queue.Mode()
	c.logger().Debugf("Playback mode %s", c.session.Mode)
}

// ToggleFullscreen flips fullscreen on the video output
func (c *Controller) ToggleFullscreen() error {
	return c.wrap("toggle fullscreen", c.backend.ToggleFullscreen())
}

// Stop stops playback and discards the session
func (c *Controller) Stop() error {
	err := c.backend.Stop()
	if c.active {
		c.stopSession()
	}
	return c.wrap("stop", err)
}

// Close stops playback and releases the backend
func (c *Controller) Close() error {
	if err := c.Stop(); err != nil {
		log.Warnf("Stop before close failed: %v", err)
	}
	return c.backend.Close()
}

func (c *Controller) stopSession() {
	c.logger().Infof("Session ended after %s", time.Since(c.session.StartedAt).Round(time.Second))
	c.active = false
	c.queue.Clear()
	c.session = model.Session{State: model.PlayerStateStopped, Volume: c.volume, Rate: c.rate}
}

func (c *Controller) wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	c.logger().Errorf("Backend %s failed: %v", op, err)
	return fmt.Errorf("%s: %w", op, err)
}

// handleEvent applies one backend notification. Apart from the backend state,
// events arriving without a session are dropped.
func (c *Controller) handleEvent(ev media.Event) {
	if ev.Kind == media.EventState {
		c.backendState = ev.State
	}
	if !c.active {
		return
	}

	switch ev.Kind {
	case media.EventPosition:
		pos := max(ev.PositionMs, 0)
		if c.session.DurationKnown() {
			pos = min(pos, c.session.DurationMs)
		}
		c.session.PositionMs = pos
		for _, l := range c.listeners {
			if l.OnPosition != nil {
				l.OnPosition(pos)
			}
		}

	case media.EventDuration:
		c.session.DurationMs = max(ev.DurationMs, 0)
		for _, l := range c.listeners {
			if l.OnDuration != nil {
				l.OnDuration(c.session.DurationMs)
			}
		}

	case media.EventState:
		if c.session.State == ev.State {
			return
		}
		c.session.State = ev.State
		for _, l := range c.listeners {
			if l.OnState != nil {
				l.OnState(ev.State)
			}
		}

	case media.EventEndOfFile:
		c.endOfTrack()
	}
}

// endOfTrack asks the queue what to play next under the current mode
func (c *Controller) endOfTrack() {
	index, ok := c.queue.Advance()
	if !ok {
		c.logger().Info("End of queue reached")
		return
	}
	if err := c.playIndex(index); err != nil {
		c.logger().Errorf("Could not continue playback: %v", err)
	}
}

func (c *Controller) notifyNowPlaying() {
	for _, l := range c.listeners {
		if l.OnNowPlaying != nil {
			l.OnNowPlaying(c.session)
		}
	}
}
