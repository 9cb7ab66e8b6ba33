package ui

import (
	"slices"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/samber/lo"

	"github.com/ytget/video-player/internal/config"
)

// SettingsDialog edits the user preferences: language and video directory
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func(languageChanged, videoDirChanged bool)

	// UI components
	videoDirEntry  *widget.Entry
	languageSelect *widget.Select
	languageCodes  []string
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, onSaved func(languageChanged, videoDirChanged bool)) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	l := sd.localization

	sd.videoDirEntry = widget.NewEntry()
	sd.videoDirEntry.SetPlaceHolder(l.GetText(KeyVideoDirectory))

	browseDirBtn := widget.NewButton(l.GetText(KeyBrowse), sd.onBrowseDirectory)
	videoDirRow := container.NewBorder(nil, nil, nil, browseDirBtn, sd.videoDirEntry)

	// Language codes are sorted so the select is stable across runs
	labels := sd.settings.GetLanguageOptions()
	sd.languageCodes = lo.Keys(labels)
	slices.Sort(sd.languageCodes)
	sd.languageSelect = widget.NewSelect(lo.Map(sd.languageCodes, func(code string, _ int) string {
		return labels[code]
	}), nil)

	form := container.NewVBox(
		widget.NewLabel(l.GetText(KeyVideoDirectory)),
		videoDirRow,

		widget.NewSeparator(),

		widget.NewLabel(l.GetText(KeyLanguage)),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		l.GetText(KeySettings),
		l.GetText(KeySave),
		l.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogH))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.videoDirEntry.SetText(sd.settings.GetVideoDirectory())
	if idx := lo.IndexOf(sd.languageCodes, sd.settings.GetLanguage()); idx >= 0 {
		sd.languageSelect.SetSelectedIndex(idx)
	}
}

// onBrowseDirectory handles directory browsing
func (sd *SettingsDialog) onBrowseDirectory() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		sd.videoDirEntry.SetText(uri.Path())
	}, sd.window)
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	videoDirChanged := sd.videoDirEntry.Text != sd.settings.GetVideoDirectory()
	if videoDirChanged {
		sd.settings.SetVideoDirectory(sd.videoDirEntry.Text)
	}

	languageChanged := false
	if idx := sd.languageSelect.SelectedIndex(); idx >= 0 {
		code := sd.languageCodes[idx]
		languageChanged = code != sd.settings.GetLanguage()
		sd.settings.SetLanguage(code)
	}

	if sd.onSaved != nil {
		sd.onSaved(languageChanged, videoDirChanged)
	}

	dialog.ShowInformation(sd.localization.GetText(KeySettings), sd.localization.GetText(KeySettingsSaved), sd.window)
}
