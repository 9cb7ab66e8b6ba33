package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/video-player/internal/model"
)

// ListScreen shows the catalog as a list of selectable rows
type ListScreen struct {
	localization *Localization
	entries      []model.CatalogEntry
	onSelect     func(index int)

	heading *widget.Label
	list    *widget.List
	content fyne.CanvasObject
}

// NewListScreen builds the list screen. onSelect receives the catalog row.
func NewListScreen(localization *Localization, entries []model.CatalogEntry, onSelect func(index int)) *ListScreen {
	s := &ListScreen{
		localization: localization,
		entries:      entries,
		onSelect:     onSelect,
	}
	s.createUI()
	return s
}

func (s *ListScreen) createUI() {
	s.heading = widget.NewLabelWithStyle(s.localization.GetText(KeyVideoList), fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	s.heading.SizeName = theme.SizeNameHeadingText

	s.list = widget.NewList(
		func() int { return len(s.entries) },
		func() fyne.CanvasObject {
			label := widget.NewLabel("")
			label.Truncation = fyne.TextTruncateEllipsis
			return label
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			if id < 0 || id >= len(s.entries) {
				return
			}
			obj.(*widget.Label).SetText(s.entries[id].DisplayLabel())
		},
	)
	s.list.OnSelected = s.onRowSelected
	s.applyRowHeights()

	s.content = container.NewBorder(
		container.NewVBox(s.heading, widget.NewSeparator()),
		nil, nil, nil,
		s.list,
	)
}

// onRowSelected forwards the row and clears the selection so the same row
// can be picked again after returning from the player
func (s *ListScreen) onRowSelected(id widget.ListItemID) {
	s.list.UnselectAll()
	if s.onSelect != nil && id >= 0 && id < len(s.entries) {
		s.onSelect(id)
	}
}

// Content returns the root object of the screen
func (s *ListScreen) Content() fyne.CanvasObject {
	return s.content
}

// Entries returns the rows currently displayed; a selected row indexes them
func (s *ListScreen) Entries() []model.CatalogEntry {
	return s.entries
}

// SetEntries replaces the displayed catalog
func (s *ListScreen) SetEntries(entries []model.CatalogEntry) {
	s.entries = entries
	s.applyRowHeights()
	s.list.Refresh()
}

func (s *ListScreen) applyRowHeights() {
	for id := range s.entries {
		s.list.SetItemHeight(id, ListRowHeight)
	}
}

// Select selects a row as if the user clicked it
func (s *ListScreen) Select(index int) {
	s.list.Select(index)
}

func (s *ListScreen) refreshTexts() {
	s.heading.SetText(s.localization.GetText(KeyVideoList))
}
