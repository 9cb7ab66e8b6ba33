package ui

import (
	"errors"
	"fmt"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	log "github.com/sirupsen/logrus"

	"github.com/ytget/video-player/internal/config"
	"github.com/ytget/video-player/internal/model"
	"github.com/ytget/video-player/internal/platform"
	"github.com/ytget/video-player/internal/player"
)

// View identifies the visible screen
type View int

const (
	ListView View = iota
	PlayerView
)

// String returns the view name for logging
func (v View) String() string {
	switch v {
	case ListView:
		return "list"
	case PlayerView:
		return "player"
	default:
		return "unknown"
	}
}

// CatalogFunc builds the catalog for a video directory; "" means the
// configured directory
type CatalogFunc func(videoDir string) *model.Catalog

// RootUI hosts the list and player screens in one window
type RootUI struct {
	window       fyne.Window
	player       player.Player
	settings     *config.Settings
	localization *Localization
	catalogFor   CatalogFunc
	catalog      *model.Catalog
	version      string

	listScreen   *ListScreen
	playerScreen *PlayerScreen
	view         View
}

// NewRootUI creates the screens and shows the list view
func NewRootUI(window fyne.Window, p player.Player, settings *config.Settings, catalogFor CatalogFunc) *RootUI {
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		player:       p,
		settings:     settings,
		localization: localization,
		catalogFor:   catalogFor,
	}
	ui.catalog = catalogFor(settings.GetVideoDirectory())

	ui.updateTitle()
	ui.setupUI()

	log.Infof("UI ready with %d catalog entries", ui.catalog.Len())
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.listScreen = NewListScreen(ui.localization, ui.catalog.Entries(), ui.onSelect)
	ui.playerScreen = NewPlayerScreen(ui.player, ui.localization, ui.goBack)

	ui.window.SetContent(container.NewStack(
		screenPadded(ui.listScreen.Content()),
		screenPadded(ui.playerScreen.Content()),
	))
	ui.window.Canvas().SetOnTypedKey(ui.onTypedKey)
	ui.showView(ListView)
}

// screenPadded surrounds a screen with the window margin
func screenPadded(obj fyne.CanvasObject) *fyne.Container {
	return container.New(layout.NewCustomPaddedLayout(ScreenPadding, ScreenPadding, ScreenPadding, ScreenPadding), obj)
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)
	folderItem := fyne.NewMenuItem(ui.localization.GetText(KeyOpenVideoFolder), ui.onOpenVideoFolder)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		langItem.Checked = ui.localization.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem, folderItem),
		languageMenu,
	))
}

// SetVersion shows the build version after the localized window title
func (ui *RootUI) SetVersion(version string) {
	ui.version = version
	ui.updateTitle()
}

func (ui *RootUI) updateTitle() {
	title := ui.localization.GetText(KeyAppTitle)
	if ui.version != "" {
		title = fmt.Sprintf("%s v%s", title, ui.version)
	}
	ui.window.SetTitle(title)
}

// View returns the visible screen
func (ui *RootUI) View() View {
	return ui.view
}

func (ui *RootUI) showView(view View) {
	ui.view = view
	list, play := ui.listScreen.Content(), ui.playerScreen.Content()
	if view == PlayerView {
		list.Hide()
		play.Show()
	} else {
		play.Hide()
		list.Show()
	}
	log.Debugf("Showing %s view", view)
}

// onSelect loads the catalog starting at row and switches to the player
func (ui *RootUI) onSelect(row int) {
	if err := ui.player.PlayFromCatalog(ui.listScreen.Entries(), row); err != nil {
		log.Errorf("Could not start playback at row %d: %v", row, err)
		if errors.Is(err, player.ErrEmptyQueue) {
			dialog.ShowInformation(ui.localization.GetText(KeyPlaybackError), ui.localization.GetText(KeyNoPlayableVideos), ui.window)
		} else {
			dialog.ShowError(fmt.Errorf("%s: %w", ui.localization.GetText(KeyPlaybackError), err), ui.window)
		}
		return
	}
	ui.showView(PlayerView)
}

// goBack stops playback unconditionally and returns to the list
func (ui *RootUI) goBack() {
	if err := ui.player.Stop(); err != nil {
		log.Warnf("Stop on back navigation failed: %v", err)
	}
	ui.showView(ListView)
}

func (ui *RootUI) onTypedKey(ev *fyne.KeyEvent) {
	if ui.view != PlayerView {
		return
	}
	ui.playerScreen.HandleKey(ev)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.updateTitle()
	ui.listScreen.refreshTexts()
	ui.playerScreen.refreshTexts()
}

// reloadCatalog rebuilds the catalog after the video directory changed
func (ui *RootUI) reloadCatalog() {
	ui.catalog = ui.catalogFor(ui.settings.GetVideoDirectory())
	ui.listScreen.SetEntries(ui.catalog.Entries())
	log.Infof("Catalog reloaded with %d entries", ui.catalog.Len())
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.localization, ui.window, func(languageChanged, videoDirChanged bool) {
		if videoDirChanged {
			ui.reloadCatalog()
		}
		if languageChanged {
			ui.onLanguageChange(ui.settings.GetLanguage())
		}
	}).Show()
}

// onOpenVideoFolder reveals the directory of the first catalog entry
func (ui *RootUI) onOpenVideoFolder() {
	entry, err := ui.catalog.EntryAt(0)
	if err != nil {
		return
	}
	if err := platform.OpenFolder(filepath.Dir(entry.Path)); err != nil {
		log.Warnf("Could not open video folder: %v", err)
		dialog.ShowError(err, ui.window)
	}
}
