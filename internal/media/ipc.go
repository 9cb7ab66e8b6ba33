package media

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"time"
)

const (
	ipcMaxRetries   = 3
	ipcRetryDelay   = 100 * time.Millisecond
	ipcReadDeadline = 1 * time.Second
)

// ipcCommand is the JSON structure sent to mpv's IPC socket
type ipcCommand struct {
	Command   []any `json:"command"`
	RequestID int64 `json:"request_id,omitempty"`
}

// ipcMessage is any newline-delimited JSON object received from mpv:
// a command reply (request_id + error) or an event.
type ipcMessage struct {
	Event     string          `json:"event,omitempty"`
	Name      string          `json:"name,omitempty"`
	ID        int64           `json:"id,omitempty"`
	Data      json.RawMessage `json:"data,omitempty"`
	Reason    string          `json:"reason,omitempty"`
	Error     string          `json:"error,omitempty"`
	RequestID int64           `json:"request_id,omitempty"`
}

// isReply reports whether the message answers a command
func (m ipcMessage) isReply() bool {
	return m.Event == ""
}

// sendCommand sends one command with retries for transient socket errors
func (m *MPV) sendCommand(args ...any) (json.RawMessage, error) {
	m.ipcMu.Lock()
	defer m.ipcMu.Unlock()

	cmd := ipcCommand{Command: args, RequestID: m.nextRequestID()}

	var lastErr error
	for attempt := 0; attempt < ipcMaxRetries; attempt++ {
		if attempt > 0 {
			time.Sleep(ipcRetryDelay)
		}

		data, err := roundTrip(m.socketPath, cmd)
		if err == nil {
			return data, nil
		}
		lastErr = err
		var mpvErr *commandError
		if errors.As(err, &mpvErr) {
			break
		}
	}

	return nil, fmt.Errorf("mpv command %v: %w", args[0], lastErr)
}

// commandError is an error reported by mpv itself; it is not retried
type commandError struct {
	Reason string
}

func (e *commandError) Error() string {
	return "mpv error: " + e.Reason
}

// roundTrip performs a single request/reply exchange on a fresh connection.
// Event lines broadcast to every client are skipped.
func roundTrip(socketPath string, cmd ipcCommand) (json.RawMessage, error) {
	conn, err := net.Dial("unix", socketPath)
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}
	defer conn.Close()

	if err := conn.SetDeadline(time.Now().Add(ipcReadDeadline)); err != nil {
		return nil, fmt.Errorf("set deadline: %w", err)
	}

	if err := json.NewEncoder(conn).Encode(cmd); err != nil {
		return nil, fmt.Errorf("write: %w", err)
	}

	scanner := bufio.NewScanner(conn)
	for scanner.Scan() {
		var msg ipcMessage
		if err := json.Unmarshal(scanner.Bytes(), &msg); err != nil {
			continue
		}
		if !msg.isReply() || msg.RequestID != cmd.RequestID {
			continue
		}
		if msg.Error != "" && msg.Error != "success" {
			return nil, &commandError{Reason: msg.Error}
		}
		return msg.Data, nil
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	return nil, fmt.Errorf("read: connection closed before reply")
}
