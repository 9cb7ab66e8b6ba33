package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconBack = "←"
)

// Speed slider works in hundredths so it can snap to 0.01x steps
const (
	SpeedSliderMin     = 50
	SpeedSliderMax     = 200
	SpeedSliderScale   = 100.0
	SpeedLabelFormat   = "%.2fx"
	VolumeSliderMin    = 0
	VolumeSliderMax    = 100
	PositionSliderStep = 1000 // milliseconds
)

// Layout sizing
const (
	ListRowHeight       float32 = 35
	VideoSurfaceMinW    float32 = 640
	VideoSurfaceMinH    float32 = 480
	TransportButtonW    float32 = 80
	RestartButtonW      float32 = 100
	SideSliderWidth     float32 = 100
	SpeedLabelWidth     float32 = 48
	ModeSelectWidth     float32 = 120
	ScreenPadding       float32 = 20
	SettingsDialogWidth float32 = 500
	SettingsDialogH     float32 = 300
)

// Fonts
const (
	HeadingTextSize float32 = 18
)
