// Package ui contains the Fyne desktop interface: the video list screen, the
// player screen and the RootUI host switching between them. Playback is
// driven through player.Player. All UI strings are localized via
// Localization.
package ui
