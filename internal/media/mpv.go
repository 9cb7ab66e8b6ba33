package media

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/exec"
	"strconv"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/ytget/video-player/internal/model"
)

const (
	DefaultBinary = "mpv"

	socketWaitRetries = 20
	socketWaitDelay   = 100 * time.Millisecond
	processExitWait   = 2 * time.Second
)

// MPVConfig configures the mpv process
type MPVConfig struct {
	Binary     string   // executable name or path
	SocketPath string   // IPC socket path
	Args       []string // extra command-line arguments
	Title      string   // window title
	Volume     int      // initial volume
	Speed      float64  // initial playback rate
}

// MPV implements Backend by driving an mpv process through JSON IPC.
// The process is started lazily on the first Load and kept idle between files.
type MPV struct {
	binary     string
	socketPath string
	extraArgs  []string
	title      string

	mu       sync.Mutex // guards process lifecycle and pending settings
	cmd      *exec.Cmd
	exited   chan struct{}
	listener *eventListener
	volume   int
	speed    float64

	handlerMu sync.RWMutex
	handler   func(Event)

	ipcMu     sync.Mutex // serializes socket writes
	requestID int64
}

// NewMPV creates a backend; no process is started until Load
func NewMPV(cfg MPVConfig) *MPV {
	binary := cfg.Binary
	if binary == "" {
		binary = DefaultBinary
	}
	speed := cfg.Speed
	if speed <= 0 {
		speed = model.DefaultRate
	}
	return &MPV{
		binary:     binary,
		socketPath: cfg.SocketPath,
		extraArgs:  cfg.Args,
		title:      cfg.Title,
		volume:     cfg.Volume,
		speed:      speed,
	}
}

// SetEventHandler registers the notification handler
func (m *MPV) SetEventHandler(handler func(Event)) {
	m.handlerMu.Lock()
	m.handler = handler
	m.handlerMu.Unlock()
}

func (m *MPV) emit(event Event) {
	m.handlerMu.RLock()
	handler := m.handler
	m.handlerMu.RUnlock()
	if handler != nil {
		handler(event)
	}
}

func (m *MPV) nextRequestID() int64 {
	m.requestID++
	return m.requestID
}

// buildArgs returns the mpv command line. The process idles between files and
// never advances on its own: the playlist lives in the controller.
func (m *MPV) buildArgs() []string {
	args := []string{
		"--idle=yes",
		"--force-window=yes",
		"--keep-open=no",
		"--no-terminal",
		"--input-ipc-server=" + m.socketPath,
		"--volume=" + strconv.Itoa(m.volume),
		"--speed=" + strconv.FormatFloat(m.speed, 'f', 2, 64),
	}
	if m.title != "" {
		args = append(args, "--title="+m.title)
	}
	return append(args, m.extraArgs...)
}

func (m *MPV) running() bool {
	if m.cmd == nil || m.exited == nil {
		return false
	}
	select {
	case <-m.exited:
		return false
	default:
		return true
	}
}

// ensureRunning starts mpv and its event listener if needed
func (m *MPV) ensureRunning(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.running() {
		return nil
	}
	if m.listener != nil {
		m.listener.stop()
		m.listener = nil
	}

	_ = os.Remove(m.socketPath)

	log.Infof("Starting mpv process: %s", m.binary)
	cmd := exec.Command(m.binary, m.buildArgs()...)
	cmd.SysProcAttr = sysProcAttr()
	cmd.Stdin = nil
	cmd.Stdout = nil
	cmd.Stderr = nil

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start mpv: %w", err)
	}

	exited := make(chan struct{})
	m.cmd = cmd
	m.exited = exited
	go func() {
		err := cmd.Wait()
		close(exited)
		log.Infof("mpv process exited: %v", err)
		m.emit(Event{Kind: EventState, State: model.PlayerStateStopped})
	}()

	if err := m.waitForSocket(ctx, exited); err != nil {
		log.Warnf("Killing mpv: socket never became ready")
		_ = killProcess(cmd)
		return fmt.Errorf("mpv socket not ready: %w", err)
	}

	listener, err := startEventListener(m.socketPath, m.emit)
	if err != nil {
		_ = killProcess(cmd)
		return err
	}
	m.listener = listener

	log.Infof("mpv ready on %s", m.socketPath)
	return nil
}

// waitForSocket polls until the IPC socket accepts connections
func (m *MPV) waitForSocket(ctx context.Context, exited <-chan struct{}) error {
	for i := 0; i < socketWaitRetries; i++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-exited:
			return fmt.Errorf("mpv exited before socket was ready")
		case <-time.After(socketWaitDelay):
		}

		conn, err := net.Dial("unix", m.socketPath)
		if err == nil {
			conn.Close()
			return nil
		}
	}
	return fmt.Errorf("socket %s not ready after %d attempts", m.socketPath, socketWaitRetries)
}

// isRunning reports process liveness without holding the lock across IPC
func (m *MPV) isRunning() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.running()
}

// Load replaces the current file and starts playing it
func (m *MPV) Load(ctx context.Context, path string) error {
	if err := m.ensureRunning(ctx); err != nil {
		return err
	}
	if _, err := m.sendCommand("loadfile", path, "replace"); err != nil {
		return err
	}
	_, err := m.sendCommand("set_property", "pause", false)
	return err
}

// Play resumes playback
func (m *MPV) Play() error {
	if !m.isRunning() {
		return nil
	}
	_, err := m.sendCommand("set_property", "pause", false)
	return err
}

// Pause suspends playback
func (m *MPV) Pause() error {
	if !m.isRunning() {
		return nil
	}
	_, err := m.sendCommand("set_property", "pause", true)
	return err
}

// Stop unloads the current file; mpv stays idle
func (m *MPV) Stop() error {
	if !m.isRunning() {
		return nil
	}
	_, err := m.sendCommand("stop")
	return err
}

// SeekTo jumps to an absolute position
func (m *MPV) SeekTo(positionMs int64) error {
	if !m.isRunning() {
		return nil
	}
	_, err := m.sendCommand("seek", float64(positionMs)/1000, "absolute")
	return err
}

// SetVolume sets the output volume; it is remembered for the next start
func (m *MPV) SetVolume(volume int) error {
	m.mu.Lock()
	m.volume = volume
	running := m.running()
	m.mu.Unlock()
	if !running {
		return nil
	}
	_, err := m.sendCommand("set_property", "volume", volume)
	return err
}

// SetSpeed sets the playback rate; it is remembered for the next start
func (m *MPV) SetSpeed(rate float64) error {
	m.mu.Lock()
	m.speed = rate
	running := m.running()
	m.mu.Unlock()
	if !running {
		return nil
	}
	_, err := m.sendCommand("set_property", "speed", rate)
	return err
}

// ToggleFullscreen flips fullscreen on the mpv window
func (m *MPV) ToggleFullscreen() error {
	if !m.isRunning() {
		return nil
	}
	_, err := m.sendCommand("cycle", "fullscreen")
	return err
}

// Close terminates mpv and removes the socket
func (m *MPV) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.listener != nil {
		m.listener.stop()
		m.listener = nil
	}

	if m.running() {
		if err := killProcess(m.cmd); err != nil {
			log.Errorf("Error terminating mpv process: %v", err)
		}
		select {
		case <-m.exited:
		case <-time.After(processExitWait):
			log.Warnf("mpv did not exit within %s", processExitWait)
		}
	}

	if m.socketPath != "" {
		_ = os.Remove(m.socketPath)
	}
	return nil
}
