package model

// Package model defines domain data structures used across the app: catalog
// entries, playback modes, player states and the playback session. Structures
// are plain values so the UI can render them without locking.
