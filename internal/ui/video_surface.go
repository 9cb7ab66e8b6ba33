package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// videoSurface stands in for the video output. mpv draws frames in its own
// window; this area shows the current title and forwards double-taps.
type videoSurface struct {
	widget.BaseWidget

	background *canvas.Rectangle
	title      *widget.Label
	hint       *widget.Label

	onDoubleTap func()
}

var _ fyne.DoubleTappable = (*videoSurface)(nil)

func newVideoSurface(onDoubleTap func()) *videoSurface {
	v := &videoSurface{
		background:  canvas.NewRectangle(colorSurface),
		title:       widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
		hint:        widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Italic: true}),
		onDoubleTap: onDoubleTap,
	}
	v.background.SetMinSize(fyne.NewSize(VideoSurfaceMinW, VideoSurfaceMinH))
	v.title.Importance = widget.HighImportance
	v.ExtendBaseWidget(v)
	return v
}

func (v *videoSurface) setTitle(title, hint string) {
	v.title.SetText(title)
	v.hint.SetText(hint)
}

// DoubleTapped toggles fullscreen
func (v *videoSurface) DoubleTapped(*fyne.PointEvent) {
	if v.onDoubleTap != nil {
		v.onDoubleTap()
	}
}

// CreateRenderer creates the widget renderer
func (v *videoSurface) CreateRenderer() fyne.WidgetRenderer {
	labels := container.NewCenter(container.NewVBox(v.title, v.hint))
	return widget.NewSimpleRenderer(container.NewStack(v.background, labels))
}
