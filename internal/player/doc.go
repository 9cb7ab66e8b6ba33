// Package player implements the playback controller. It owns the playback
// queue and the media backend, turns backend notifications into session
// updates on the UI thread and fans them out to listeners.
package player
