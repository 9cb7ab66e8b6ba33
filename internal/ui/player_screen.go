package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"

	"github.com/ytget/video-player/internal/model"
	"github.com/ytget/video-player/internal/player"
)

// modeKeys lists mode labels in the order of model.PlaybackModes
var modeKeys = []string{KeyModeLoop, KeyModeSequential, KeyModeRandom}

// PlayerScreen holds the video surface and playback controls
type PlayerScreen struct {
	player       player.Player
	localization *Localization
	onBack       func()

	backBtn      *widget.Button
	prevBtn      *widget.Button
	playPauseBtn *widget.Button
	nextBtn      *widget.Button
	restartBtn   *widget.Button

	positionSlider *widget.Slider
	timeLabel      *widget.Label

	volumeTitle  *widget.Label
	volumeSlider *widget.Slider
	speedTitle   *widget.Label
	speedSlider  *widget.Slider
	speedLabel   *widget.Label
	modeTitle    *widget.Label
	modeSelect   *widget.Select

	surface *videoSurface
	content fyne.CanvasObject

	// updating is set while controls are changed programmatically so their
	// change handlers do not feed the value back to the player
	updating bool

	state      model.PlayerState
	title      string
	positionMs int64
	durationMs int64
}

// NewPlayerScreen builds the player screen and subscribes it to p
func NewPlayerScreen(p player.Player, localization *Localization, onBack func()) *PlayerScreen {
	ps := &PlayerScreen{
		player:       p,
		localization: localization,
		onBack:       onBack,
		state:        model.PlayerStateStopped,
	}
	ps.createUI()

	p.Subscribe(player.Listener{
		OnPosition:   ps.updatePosition,
		OnDuration:   ps.updateDuration,
		OnState:      ps.updateState,
		OnNowPlaying: ps.syncSession,
	})
	return ps
}

func (ps *PlayerScreen) createUI() {
	l := ps.localization

	ps.backBtn = widget.NewButton(l.GetText(KeyBack), ps.goBack)
	ps.prevBtn = widget.NewButton(l.GetText(KeyPrevious), func() { ps.report("previous", ps.player.Previous()) })
	ps.playPauseBtn = widget.NewButton(l.GetText(KeyPlay), func() { ps.report("play/pause", ps.player.TogglePlayPause()) })
	ps.nextBtn = widget.NewButton(l.GetText(KeyNext), func() { ps.report("next", ps.player.Next()) })
	ps.restartBtn = widget.NewButton(l.GetText(KeyRestart), func() { ps.report("restart", ps.player.Restart()) })
	for _, btn := range []*widget.Button{ps.prevBtn, ps.playPauseBtn, ps.nextBtn, ps.restartBtn} {
		btn.Importance = widget.HighImportance
	}

	ps.positionSlider = widget.NewSlider(0, 1)
	ps.positionSlider.Step = PositionSliderStep
	ps.positionSlider.OnChanged = ps.onPositionChanged
	ps.timeLabel = widget.NewLabel(model.FormatTimeLabel(0, 0))

	ps.volumeTitle = widget.NewLabel(l.GetText(KeyVolume))
	ps.volumeSlider = widget.NewSlider(VolumeSliderMin, VolumeSliderMax)
	ps.volumeSlider.OnChanged = ps.onVolumeChanged

	ps.speedTitle = widget.NewLabel(l.GetText(KeySpeed))
	ps.speedSlider = widget.NewSlider(SpeedSliderMin, SpeedSliderMax)
	ps.speedSlider.OnChanged = ps.onSpeedDragged
	ps.speedSlider.OnChangeEnded = ps.onSpeedReleased
	ps.speedLabel = widget.NewLabel(formatSpeed(model.DefaultRate))

	ps.modeTitle = widget.NewLabel(l.GetText(KeyMode))
	ps.modeSelect = widget.NewSelect(ps.modeOptions(), ps.onModeChanged)

	ps.surface = newVideoSurface(func() { ps.report("fullscreen", ps.player.ToggleFullscreen()) })

	ps.setControls(ps.player.Volume(), ps.player.Rate(), model.ModeSequential)
	ps.refreshSurface()

	top := container.NewBorder(nil, nil, sized(ps.backBtn, TransportButtonW), nil)

	transport := container.NewHBox(
		sized(ps.prevBtn, TransportButtonW),
		sized(ps.playPauseBtn, TransportButtonW),
		sized(ps.nextBtn, TransportButtonW),
	)
	controls := container.NewBorder(nil, nil,
		transport,
		container.NewHBox(ps.timeLabel, sized(ps.restartBtn, RestartButtonW)),
		ps.positionSlider,
	)

	settingsRow := container.NewHBox(
		ps.volumeTitle, sized(ps.volumeSlider, SideSliderWidth),
		layout.NewSpacer(),
		ps.speedTitle, sized(ps.speedSlider, SideSliderWidth), sized(ps.speedLabel, SpeedLabelWidth),
		layout.NewSpacer(),
		ps.modeTitle, sized(ps.modeSelect, ModeSelectWidth),
	)

	ps.content = container.NewBorder(
		top,
		container.NewVBox(controls, settingsRow),
		nil, nil,
		ps.surface,
	)
}

// sized gives obj a fixed minimum width
func sized(obj fyne.CanvasObject, width float32) fyne.CanvasObject {
	return container.NewGridWrap(fyne.NewSize(width, obj.MinSize().Height), obj)
}

func formatSpeed(rate float64) string {
	return fmt.Sprintf(SpeedLabelFormat, rate)
}

func (ps *PlayerScreen) modeOptions() []string {
	return lo.Map(modeKeys, func(key string, _ int) string {
		return ps.localization.GetText(key)
	})
}

// Content returns the root object of the screen
func (ps *PlayerScreen) Content() fyne.CanvasObject {
	return ps.content
}

// setControls moves volume, speed and mode controls without applying them
func (ps *PlayerScreen) setControls(volume int, rate float64, mode model.PlaybackMode) {
	ps.updating = true
	defer func() { ps.updating = false }()

	ps.volumeSlider.SetValue(float64(volume))
	ps.speedSlider.SetValue(rate * SpeedSliderScale)
	ps.speedLabel.SetText(formatSpeed(rate))
	if idx := lo.IndexOf(model.PlaybackModes(), mode); idx >= 0 {
		ps.modeSelect.SetSelectedIndex(idx)
	}
}

// syncSession resets the screen for a newly loaded item
func (ps *PlayerScreen) syncSession(session model.Session) {
	ps.title = session.Current.DisplayLabel()
	ps.positionMs = 0
	ps.durationMs = 0
	ps.setControls(session.Volume, session.Rate, session.Mode)
	ps.updateDuration(0)
	ps.updateState(session.State)
	ps.refreshSurface()
}

// updatePosition moves the slider without seeking
func (ps *PlayerScreen) updatePosition(positionMs int64) {
	ps.positionMs = positionMs
	ps.updating = true
	ps.positionSlider.SetValue(float64(positionMs))
	ps.updating = false
	ps.timeLabel.SetText(model.FormatTimeLabel(ps.positionMs, ps.durationMs))
}

// updateDuration sets the slider range to [0, duration]
func (ps *PlayerScreen) updateDuration(durationMs int64) {
	ps.durationMs = durationMs
	ps.updating = true
	ps.positionSlider.Max = float64(max(durationMs, 1))
	ps.positionSlider.SetValue(float64(min(ps.positionMs, durationMs)))
	ps.positionSlider.Refresh()
	ps.updating = false
	ps.timeLabel.SetText(model.FormatTimeLabel(ps.positionMs, ps.durationMs))
}

// updateState is the only place the play/pause label changes
func (ps *PlayerScreen) updateState(state model.PlayerState) {
	ps.state = state
	if state.IsPlaying() {
		ps.playPauseBtn.SetText(ps.localization.GetText(KeyPause))
	} else {
		ps.playPauseBtn.SetText(ps.localization.GetText(KeyPlay))
	}
}

func (ps *PlayerScreen) onPositionChanged(value float64) {
	if ps.updating {
		return
	}
	ps.report("seek", ps.player.SeekTo(int64(value)))
}

func (ps *PlayerScreen) onVolumeChanged(value float64) {
	if ps.updating {
		return
	}
	ps.report("volume", ps.player.SetVolume(int(value)))
}

// onSpeedDragged only previews the rate
func (ps *PlayerScreen) onSpeedDragged(value float64) {
	ps.speedLabel.SetText(formatSpeed(value / SpeedSliderScale))
}

// onSpeedReleased commits the rate once the drag ends
func (ps *PlayerScreen) onSpeedReleased(value float64) {
	if ps.updating {
		return
	}
	rate := value / SpeedSliderScale
	ps.speedLabel.SetText(formatSpeed(rate))
	ps.report("rate", ps.player.SetRate(rate))
}

// onModeChanged maps the option position, not its localized text
func (ps *PlayerScreen) onModeChanged(string) {
	if ps.updating {
		return
	}
	idx := ps.modeSelect.SelectedIndex()
	modes := model.PlaybackModes()
	if idx < 0 || idx >= len(modes) {
		return
	}
	ps.player.SetMode(modes[idx])
}

func (ps *PlayerScreen) goBack() {
	if ps.onBack != nil {
		ps.onBack()
	}
}

// HandleKey runs keyboard shortcuts. It reports whether the key was used.
func (ps *PlayerScreen) HandleKey(ev *fyne.KeyEvent) bool {
	switch ev.Name {
	case fyne.KeySpace:
		ps.report("play/pause", ps.player.TogglePlayPause())
	case fyne.KeyLeft:
		ps.report("previous", ps.player.Previous())
	case fyne.KeyRight:
		ps.report("next", ps.player.Next())
	case fyne.KeyEscape:
		ps.goBack()
	default:
		return false
	}
	return true
}

func (ps *PlayerScreen) refreshSurface() {
	title := ps.title
	if title == "" {
		title = ps.localization.GetText(KeyNothingPlaying)
	}
	ps.surface.setTitle(title, ps.localization.GetText(KeyFullscreenHint))
}

func (ps *PlayerScreen) refreshTexts() {
	l := ps.localization
	ps.backBtn.SetText(l.GetText(KeyBack))
	ps.prevBtn.SetText(l.GetText(KeyPrevious))
	ps.nextBtn.SetText(l.GetText(KeyNext))
	ps.restartBtn.SetText(l.GetText(KeyRestart))
	ps.volumeTitle.SetText(l.GetText(KeyVolume))
	ps.speedTitle.SetText(l.GetText(KeySpeed))
	ps.modeTitle.SetText(l.GetText(KeyMode))
	ps.updateState(ps.state)

	ps.updating = true
	idx := ps.modeSelect.SelectedIndex()
	ps.modeSelect.SetOptions(ps.modeOptions())
	if idx >= 0 {
		ps.modeSelect.SetSelectedIndex(idx)
	}
	ps.updating = false

	ps.refreshSurface()
}

// report logs failed player operations; the screen keeps running
func (ps *PlayerScreen) report(op string, err error) {
	if err != nil {
		log.Warnf("Player %s failed: %v", op, err)
	}
}
