// Package playlist implements the ordered media queue played by the controller:
// manual wrap-around navigation plus the end-of-track policy of each playback mode.
package playlist

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/ytget/video-player/internal/model"
)

// ErrOutOfRange is returned when an index does not name a queued item.
var ErrOutOfRange = errors.New("playlist index out of range")

// Playlist is an ordered queue of catalog entries with a current position.
// It is not safe for concurrent use; the controller touches it from the UI thread only.
type Playlist struct {
	items   []model.CatalogEntry
	current int
	mode    model.PlaybackMode
	rng     *rand.Rand
}

// New creates an empty playlist in sequential mode.
// A nil rng uses a randomly seeded generator.
func New(rng *rand.Rand) *Playlist {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Playlist{
		current: -1,
		mode:    model.ModeSequential,
		rng:     rng,
	}
}

// Clear removes all items
func (p *Playlist) Clear() {
	p.items = nil
	p.current = -1
}

// Add appends an entry to the end of the queue
func (p *Playlist) Add(entry model.CatalogEntry) {
	p.items = append(p.items, entry)
	if p.current < 0 {
		p.current = 0
	}
}

// Len returns the number of queued items
func (p *Playlist) Len() int {
	return len(p.items)
}

// CurrentIndex returns the current position, or -1 when the queue is empty
func (p *Playlist) CurrentIndex() int {
	return p.current
}

// Current returns the entry at the current position
func (p *Playlist) Current() (model.CatalogEntry, bool) {
	if p.current < 0 || p.current >= len(p.items) {
		return model.CatalogEntry{}, false
	}
	return p.items[p.current], true
}

// SetCurrentIndex moves the current position
func (p *Playlist) SetCurrentIndex(index int) error {
	if index < 0 || index >= len(p.items) {
		return fmt.Errorf("%w: %d (queue has %d items)", ErrOutOfRange, index, len(p.items))
	}
	p.current = index
	return nil
}

// Mode returns the end-of-track mode
func (p *Playlist) Mode() model.PlaybackMode {
	return p.mode
}

// SetMode sets the end-of-track mode. It never moves the current position.
func (p *Playlist) SetMode(mode model.PlaybackMode) {
	if !mode.IsValid() {
		mode = model.ModeSequential
	}
	p.mode = mode
}

// Next moves one item forward, wrapping from the last item to the first.
// Manual navigation ignores the mode.
func (p *Playlist) Next() (int, bool) {
	if len(p.items) == 0 {
		return -1, false
	}
	p.current = (p.current + 1) % len(p.items)
	return p.current, true
}

// Previous moves one item back, wrapping from the first item to the last.
func (p *Playlist) Previous() (int, bool) {
	if len(p.items) == 0 {
		return -1, false
	}
	p.current = (p.current - 1 + len(p.items)) % len(p.items)
	return p.current, true
}

// Advance applies the mode at the natural end of the current item and returns
// the index to play next. ok is false when playback should stop.
func (p *Playlist) Advance() (int, bool) {
	if len(p.items) == 0 {
		return -1, false
	}

	switch p.mode {
	case model.ModeLoop:
		return p.current, true
	case model.ModeRandom:
		p.current = p.randomIndex()
		return p.current, true
	default:
		if p.current+1 >= len(p.items) {
			return p.current, false
		}
		p.current++
		return p.current, true
	}
}

// randomIndex picks any index other than the current one when there is a choice
func (p *Playlist) randomIndex() int {
	n := len(p.items)
	if n == 1 {
		return 0
	}
	next := p.rng.IntN(n - 1)
	if next >= p.current {
		next++
	}
	return next
}
