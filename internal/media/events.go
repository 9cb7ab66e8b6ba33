package media

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net"
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/ytget/video-player/internal/model"
)

// Observed mpv properties and their observer IDs
const (
	propTimePos    = "time-pos"
	propDuration   = "duration"
	propPause      = "pause"
	propIdleActive = "idle-active"

	eventPropertyChange = "property-change"
	eventEndFile        = "end-file"
	endFileReasonEOF    = "eof"
)

var observedProperties = []struct {
	id   int
	name string
}{
	{1, propTimePos},
	{2, propDuration},
	{3, propPause},
	{4, propIdleActive},
}

// stateTracker turns raw mpv messages into backend events.
// pause and idle-active together determine the player state.
type stateTracker struct {
	paused bool
	idle   bool
	last   model.PlayerState
}

func newStateTracker() *stateTracker {
	return &stateTracker{idle: true, last: model.PlayerStateStopped}
}

func (t *stateTracker) state() model.PlayerState {
	switch {
	case t.idle:
		return model.PlayerStateStopped
	case t.paused:
		return model.PlayerStatePaused
	default:
		return model.PlayerStatePlaying
	}
}

// translate converts one message. ok is false when nothing should be emitted.
func (t *stateTracker) translate(msg ipcMessage) (Event, bool) {
	switch msg.Event {
	case eventEndFile:
		if msg.Reason == endFileReasonEOF {
			return Event{Kind: EventEndOfFile}, true
		}
		return Event{}, false

	case eventPropertyChange:
		switch msg.Name {
		case propTimePos:
			secs, ok := decodeSeconds(msg.Data)
			if !ok {
				return Event{}, false
			}
			return Event{Kind: EventPosition, PositionMs: secondsToMs(secs)}, true

		case propDuration:
			secs, ok := decodeSeconds(msg.Data)
			if !ok {
				return Event{}, false
			}
			return Event{Kind: EventDuration, DurationMs: secondsToMs(secs)}, true

		case propPause:
			var paused bool
			if err := json.Unmarshal(msg.Data, &paused); err != nil {
				return Event{}, false
			}
			t.paused = paused
			return t.stateChange()

		case propIdleActive:
			var idle bool
			if err := json.Unmarshal(msg.Data, &idle); err != nil {
				return Event{}, false
			}
			t.idle = idle
			return t.stateChange()
		}
	}
	return Event{}, false
}

func (t *stateTracker) stateChange() (Event, bool) {
	next := t.state()
	if next == t.last {
		return Event{}, false
	}
	t.last = next
	return Event{Kind: EventState, State: next}, true
}

// decodeSeconds reads a numeric property; mpv sends null when nothing is loaded
func decodeSeconds(data json.RawMessage) (float64, bool) {
	if len(data) == 0 {
		return 0, false
	}
	var secs *float64
	if err := json.Unmarshal(data, &secs); err != nil || secs == nil {
		return 0, false
	}
	return *secs, true
}

func secondsToMs(secs float64) int64 {
	if secs < 0 {
		return 0
	}
	return int64(math.Round(secs * 1000))
}

// eventListener keeps one connection open, observes properties on it and
// forwards translated events to the handler.
type eventListener struct {
	conn    net.Conn
	tracker *stateTracker
	handler func(Event)
	done    chan struct{}
	once    sync.Once
}

// startEventListener connects to the socket, subscribes to the observed
// properties and starts the read loop. Property observers are per-client in
// mpv, so they are registered on the listening connection itself.
func startEventListener(socketPath string, handler func(Event)) (*eventListener, error) {
	conn, err := net.Dial("unix", socketPath)
	if err != nil {
		return nil, fmt.Errorf("event listener connect: %w", err)
	}

	enc := json.NewEncoder(conn)
	for _, prop := range observedProperties {
		cmd := ipcCommand{Command: []any{"observe_property", prop.id, prop.name}}
		if err := enc.Encode(cmd); err != nil {
			conn.Close()
			return nil, fmt.Errorf("observe %s: %w", prop.name, err)
		}
	}

	el := &eventListener{
		conn:    conn,
		tracker: newStateTracker(),
		handler: handler,
		done:    make(chan struct{}),
	}
	go el.readLoop()

	log.Debugf("mpv event listener started on %s", socketPath)
	return el, nil
}

func (el *eventListener) readLoop() {
	defer close(el.done)

	scanner := bufio.NewScanner(el.conn)
	for scanner.Scan() {
		var msg ipcMessage
		if err := json.Unmarshal(scanner.Bytes(), &msg); err != nil {
			log.Warnf("Could not parse line from mpv: %s", scanner.Text())
			continue
		}
		if msg.isReply() {
			continue
		}
		if event, ok := el.tracker.translate(msg); ok && el.handler != nil {
			el.handler(event)
		}
	}

	if err := scanner.Err(); err != nil && !errors.Is(err, net.ErrClosed) {
		log.Warnf("mpv event listener read error: %v", err)
	}
}

// stop closes the connection and waits for the read loop to finish
func (el *eventListener) stop() {
	el.once.Do(func() {
		el.conn.Close()
	})
	<-el.done
}
