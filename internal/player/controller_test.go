package player

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/video-player/internal/media"
	"github.com/ytget/video-player/internal/media/mediatest"
	"github.com/ytget/video-player/internal/model"
)

func catalogEntries(n int) []model.CatalogEntry {
	entries := make([]model.CatalogEntry, n)
	for i := range entries {
		entries[i] = model.CatalogEntry{
			Index: i + 1,
			Title: "Video " + string(rune('1'+i)),
			Path:  "/videos/video" + string(rune('1'+i)) + ".mp4",
		}
	}
	return entries
}

// onDisk builds a file check accepting only the given paths
func onDisk(paths ...string) func(string) bool {
	set := make(map[string]bool, len(paths))
	for _, p := range paths {
		set[p] = true
	}
	return func(p string) bool { return set[p] }
}

func allOnDisk(string) bool { return true }

func newTestController(t *testing.T, exists func(string) bool, opts ...Option) (*Controller, *mediatest.Backend) {
	t.Helper()
	backend := mediatest.NewBackend()
	opts = append([]Option{WithFileCheck(exists), WithRand(rand.New(rand.NewPCG(1, 2)))}, opts...)
	return NewController(backend, opts...), backend
}

func TestLoadCatalog_SkipsMissingFiles(t *testing.T) {
	entries := catalogEntries(4)
	c, backend := newTestController(t, onDisk(entries[0].Path, entries[2].Path, entries[3].Path))

	require.NoError(t, c.LoadCatalog(entries, 0))

	assert.Equal(t, 3, c.queue.Len())
	session, ok := c.Session()
	require.True(t, ok)
	assert.Equal(t, 3, session.QueueLength)
	assert.Equal(t, entries[0], session.Current)
	assert.Equal(t, model.ModeSequential, session.Mode)
	assert.Equal(t, model.PlayerStatePlaying, session.State)
	assert.NotEmpty(t, session.ID)
	assert.Equal(t, []string{entries[0].Path}, backend.LoadedPaths())

	require.NoError(t, c.Next())
	require.NoError(t, c.Next())
	require.NoError(t, c.Next())
	assert.Equal(t, []string{entries[0].Path, entries[2].Path, entries[3].Path, entries[0].Path}, backend.LoadedPaths())
}

func TestLoadCatalog_ClampsStartIndex(t *testing.T) {
	entries := catalogEntries(4)

	tests := []struct {
		name  string
		start int
		want  int
	}{
		{"negative", -3, 0},
		{"in range", 1, 1},
		{"past end", 10, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestController(t, onDisk(entries[1].Path, entries[3].Path))
			require.NoError(t, c.LoadCatalog(entries, tt.start))
			session, _ := c.Session()
			assert.Equal(t, tt.want, session.CurrentIndex)
		})
	}
}

func TestLoadCatalog_NothingOnDisk(t *testing.T) {
	c, backend := newTestController(t, onDisk())

	err := c.LoadCatalog(catalogEntries(3), 0)
	assert.ErrorIs(t, err, ErrEmptyQueue)
	_, ok := c.Session()
	assert.False(t, ok)
	assert.Zero(t, backend.Count(mediatest.MethodLoad))
}

func TestLoadCatalog_ResetsModeAndNotifies(t *testing.T) {
	c, _ := newTestController(t, allOnDisk)
	var nowPlaying []model.Session
	c.Subscribe(Listener{OnNowPlaying: func(s model.Session) { nowPlaying = append(nowPlaying, s) }})

	entries := catalogEntries(3)
	require.NoError(t, c.LoadCatalog(entries, 0))
	c.SetMode(model.ModeRandom)
	first, _ := c.Session()

	require.NoError(t, c.LoadCatalog(entries, 2))
	second, _ := c.Session()

	assert.Equal(t, model.ModeSequential, second.Mode)
	assert.Equal(t, model.ModeSequential, c.queue.Mode())
	assert.NotEqual(t, first.ID, second.ID)
	require.Len(t, nowPlaying, 2)
	assert.Equal(t, entries[2], nowPlaying[1].Current)
}

func TestPlayFromCatalog_MapsRowToQueue(t *testing.T) {
	entries := catalogEntries(4)

	tests := []struct {
		name    string
		row     int
		present []int
		want    model.CatalogEntry
	}{
		{"all present", 2, []int{0, 1, 2, 3}, entries[2]},
		{"earlier row missing", 2, []int{1, 2, 3}, entries[2]},
		{"selected row missing", 1, []int{0, 2, 3}, entries[2]},
		{"last rows missing wraps", 3, []int{0, 1}, entries[0]},
		{"missing row wraps past the end", 2, []int{1}, entries[1]},
		{"row out of range", 7, []int{1, 3}, entries[1]},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var paths []string
			for _, i := range tt.present {
				paths = append(paths, entries[i].Path)
			}
			c, _ := newTestController(t, onDisk(paths...))
			require.NoError(t, c.PlayFromCatalog(entries, tt.row))
			session, _ := c.Session()
			assert.Equal(t, tt.want, session.Current)
		})
	}
}

func TestNextPrevious_WrapInEveryMode(t *testing.T) {
	entries := catalogEntries(3)

	for _, mode := range model.PlaybackModes() {
		t.Run(mode.String(), func(t *testing.T) {
			c, _ := newTestController(t, allOnDisk)
			require.NoError(t, c.LoadCatalog(entries, 2))
			c.SetMode(mode)

			require.NoError(t, c.Next())
			s, _ := c.Session()
			assert.Equal(t, 0, s.CurrentIndex, "next at last wraps to first")

			require.NoError(t, c.Previous())
			s, _ = c.Session()
			assert.Equal(t, 2, s.CurrentIndex, "previous at first wraps to last")

			require.NoError(t, c.Previous())
			s, _ = c.Session()
			assert.Equal(t, 1, s.CurrentIndex)
		})
	}
}

func TestTogglePlayPause(t *testing.T) {
	c, backend := newTestController(t, allOnDisk)
	var states []model.PlayerState
	c.Subscribe(Listener{OnState: func(s model.PlayerState) { states = append(states, s) }})

	assert.ErrorIs(t, c.TogglePlayPause(), ErrNoSession)

	require.NoError(t, c.LoadCatalog(catalogEntries(2), 0))
	require.NoError(t, c.TogglePlayPause())
	require.NoError(t, c.TogglePlayPause())

	assert.Equal(t, 1, backend.Count(mediatest.MethodPause))
	assert.Equal(t, 1, backend.Count(mediatest.MethodPlay))
	assert.Equal(t, []model.PlayerState{
		model.PlayerStatePlaying,
		model.PlayerStatePaused,
		model.PlayerStatePlaying,
	}, states)
}

func TestTogglePlayPause_ReloadsWhenStopped(t *testing.T) {
	c, backend := newTestController(t, allOnDisk)
	entries := catalogEntries(2)
	require.NoError(t, c.LoadCatalog(entries, 1))

	// mpv went idle after the last item
	backend.Emit(media.Event{Kind: media.EventState, State: model.PlayerStateStopped})
	require.NoError(t, c.TogglePlayPause())

	assert.Equal(t, []string{entries[1].Path, entries[1].Path}, backend.LoadedPaths())
}

func TestRestart(t *testing.T) {
	c, backend := newTestController(t, allOnDisk)
	require.NoError(t, c.LoadCatalog(catalogEntries(2), 0))
	require.NoError(t, c.TogglePlayPause())

	require.NoError(t, c.Restart())

	seeks := backend.CallsTo(mediatest.MethodSeek)
	require.Len(t, seeks, 1)
	assert.Equal(t, int64(0), seeks[0].Arg)
	assert.Equal(t, model.PlayerStatePlaying, backend.State())
}

func TestSeekTo_IgnoresOutOfRange(t *testing.T) {
	c, backend := newTestController(t, allOnDisk)
	require.NoError(t, c.LoadCatalog(catalogEntries(1), 0))
	backend.Emit(media.Event{Kind: media.EventDuration, DurationMs: 60000})

	require.NoError(t, c.SeekTo(-1))
	require.NoError(t, c.SeekTo(60001))
	require.NoError(t, c.SeekTo(30000))
	require.NoError(t, c.SeekTo(60000))

	seeks := backend.CallsTo(mediatest.MethodSeek)
	require.Len(t, seeks, 2)
	assert.Equal(t, int64(30000), seeks[0].Arg)
	assert.Equal(t, int64(60000), seeks[1].Arg)
}

func TestSetVolumeAndRate(t *testing.T) {
	c, backend := newTestController(t, allOnDisk, WithDefaults(30, 1.25, model.ModeLoop))
	assert.Equal(t, 30, c.Volume())
	assert.Equal(t, 1.25, c.Rate())

	require.NoError(t, c.SetVolume(75))
	require.NoError(t, c.SetRate(0.9))
	require.NoError(t, c.SetRate(5))

	assert.Equal(t, 75, backend.CallsTo(mediatest.MethodSetVolume)[0].Arg)
	rates := backend.CallsTo(mediatest.MethodSetSpeed)
	require.Len(t, rates, 2)
	assert.Equal(t, 0.9, rates[0].Arg)
	assert.Equal(t, model.MaxRate, rates[1].Arg)

	// volume and rate carry into the next session
	require.NoError(t, c.LoadCatalog(catalogEntries(1), 0))
	s, _ := c.Session()
	assert.Equal(t, 75, s.Volume)
	assert.Equal(t, model.MaxRate, s.Rate)
	assert.Equal(t, model.ModeLoop, s.Mode)
}

func TestEndOfTrack(t *testing.T) {
	entries := catalogEntries(3)

	t.Run("sequential advances then stops", func(t *testing.T) {
		c, backend := newTestController(t, allOnDisk)
		require.NoError(t, c.LoadCatalog(entries, 1))

		backend.Emit(media.Event{Kind: media.EventEndOfFile})
		backend.Emit(media.Event{Kind: media.EventEndOfFile})

		assert.Equal(t, []string{entries[1].Path, entries[2].Path}, backend.LoadedPaths())
		s, _ := c.Session()
		assert.Equal(t, 2, s.CurrentIndex)
	})

	t.Run("loop repeats current", func(t *testing.T) {
		c, backend := newTestController(t, allOnDisk)
		require.NoError(t, c.LoadCatalog(entries, 1))
		c.SetMode(model.ModeLoop)

		backend.Emit(media.Event{Kind: media.EventEndOfFile})

		assert.Equal(t, []string{entries[1].Path, entries[1].Path}, backend.LoadedPaths())
	})

	t.Run("random never repeats", func(t *testing.T) {
		c, backend := newTestController(t, allOnDisk)
		require.NoError(t, c.LoadCatalog(entries, 0))
		c.SetMode(model.ModeRandom)

		for i := 0; i < 20; i++ {
			before, _ := c.Session()
			backend.Emit(media.Event{Kind: media.EventEndOfFile})
			after, _ := c.Session()
			assert.NotEqual(t, before.CurrentIndex, after.CurrentIndex)
		}
	})
}

func TestPositionNotifications(t *testing.T) {
	c, backend := newTestController(t, allOnDisk)
	var positions, durations []int64
	c.Subscribe(Listener{
		OnPosition: func(ms int64) { positions = append(positions, ms) },
		OnDuration: func(ms int64) { durations = append(durations, ms) },
	})

	// ignored without a session
	backend.Emit(media.Event{Kind: media.EventPosition, PositionMs: 100})

	require.NoError(t, c.LoadCatalog(catalogEntries(1), 0))
	backend.Emit(media.Event{Kind: media.EventDuration, DurationMs: 65000})
	backend.Emit(media.Event{Kind: media.EventPosition, PositionMs: 5000})
	backend.Emit(media.Event{Kind: media.EventPosition, PositionMs: 70000})

	assert.Equal(t, []int64{65000}, durations)
	assert.Equal(t, []int64{5000, 65000}, positions)
	s, _ := c.Session()
	assert.Equal(t, int64(65000), s.PositionMs)
}

func TestStop_DiscardsSession(t *testing.T) {
	c, backend := newTestController(t, allOnDisk)
	require.NoError(t, c.LoadCatalog(catalogEntries(2), 0))

	require.NoError(t, c.Stop())

	_, ok := c.Session()
	assert.False(t, ok)
	assert.Equal(t, 1, backend.Count(mediatest.MethodStop))
	assert.Equal(t, model.PlayerStateStopped, backend.State())
	assert.Zero(t, c.queue.Len())
	assert.ErrorIs(t, c.Next(), ErrNoSession)
}

func TestLoadFailure(t *testing.T) {
	c, backend := newTestController(t, allOnDisk)
	backend.LoadErr = errors.New("mpv not found")

	err := c.LoadCatalog(catalogEntries(1), 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, backend.LoadErr)
}

func TestDispatcher(t *testing.T) {
	var queued []func()
	backend := mediatest.NewBackend()
	c := NewController(backend,
		WithFileCheck(allOnDisk),
		WithDispatcher(func(f func()) { queued = append(queued, f) }),
	)

	require.NoError(t, c.LoadCatalog(catalogEntries(1), 0))
	s, _ := c.Session()
	assert.Equal(t, model.PlayerStateStopped, s.State, "state applies only once dispatched")

	for _, f := range queued {
		f()
	}
	s, _ = c.Session()
	assert.Equal(t, model.PlayerStatePlaying, s.State)
}

func TestCloseReleasesBackend(t *testing.T) {
	c, backend := newTestController(t, allOnDisk)
	require.NoError(t, c.Close())
	assert.Equal(t, 1, backend.Count(mediatest.MethodClose))
}
