package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// Palette of the player: light grey background, blue accents, slate text
var (
	colorBackground = color.RGBA{R: 0xec, G: 0xf0, B: 0xf1, A: 0xff}
	colorPrimary    = color.RGBA{R: 0x34, G: 0x98, B: 0xdb, A: 0xff}
	colorHover      = color.RGBA{R: 0x29, G: 0x80, B: 0xb9, A: 0xff}
	colorForeground = color.RGBA{R: 0x2c, G: 0x3e, B: 0x50, A: 0xff}
	colorTrack      = color.RGBA{R: 0xbd, G: 0xc3, B: 0xc7, A: 0xff}
	colorSurface    = color.RGBA{R: 0x1e, G: 0x27, B: 0x2e, A: 0xff}
)

// CompactTheme defines a compact theme for the UI with reduced padding and font sizes
type CompactTheme struct{}

// NewCompactTheme creates a new compact theme
func NewCompactTheme() fyne.Theme {
	return &CompactTheme{}
}

// Color returns theme colors
func (t *CompactTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNamePrimary, theme.ColorNameFocus:
		return colorPrimary
	case theme.ColorNameHover:
		return colorHover
	case theme.ColorNameInputBackground:
		return colorTrack
	case theme.ColorNameBackground:
		if variant == theme.VariantDark {
			return colorSurface
		}
		return colorBackground
	case theme.ColorNameForeground:
		if variant == theme.VariantDark {
			return colorBackground
		}
		return colorForeground
	}

	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *CompactTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *CompactTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes with compact adjustments
func (t *CompactTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 3
	case theme.SizeNameInnerPadding:
		return 6
	case theme.SizeNameLineSpacing:
		return 2
	case theme.SizeNameScrollBar:
		return 12
	case theme.SizeNameText:
		return 14
	case theme.SizeNameHeadingText:
		return HeadingTextSize
	case theme.SizeNameInputRadius:
		return 5 // rounded buttons
	case theme.SizeNameSelectionRadius:
		return 4
	}

	return theme.DefaultTheme().Size(name)
}
