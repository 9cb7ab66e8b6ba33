package model

import (
	"errors"
	"testing"
)

func testEntries() []CatalogEntry {
	return []CatalogEntry{
		{Index: 1, Title: "Video 1", Path: "/videos/video1.mp4"},
		{Index: 2, Title: "Video 2", Path: "/videos/video2.mp4"},
		{Index: 3, Title: "Video 3", Path: "/videos/video3.mp4"},
	}
}

func TestCatalog_EntryAt(t *testing.T) {
	catalog := NewCatalog(testEntries())

	if catalog.Len() != 3 {
		t.Fatalf("Expected 3 entries, got %d", catalog.Len())
	}

	entry, err := catalog.EntryAt(1)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if entry.Title != "Video 2" {
		t.Errorf("Expected 'Video 2', got '%s'", entry.Title)
	}

	for _, index := range []int{-1, 3, 100} {
		_, err := catalog.EntryAt(index)
		if !errors.Is(err, ErrOutOfRange) {
			t.Errorf("EntryAt(%d): expected ErrOutOfRange, got %v", index, err)
		}
	}
}

func TestCatalog_IsImmutable(t *testing.T) {
	source := testEntries()
	catalog := NewCatalog(source)

	source[0].Title = "changed"
	entries := catalog.Entries()
	entries[1].Title = "changed too"

	first, _ := catalog.EntryAt(0)
	second, _ := catalog.EntryAt(1)
	if first.Title != "Video 1" || second.Title != "Video 2" {
		t.Errorf("Catalog was mutated through a caller slice: %q, %q", first.Title, second.Title)
	}
}

func TestCatalogEntry_DisplayLabel(t *testing.T) {
	entry := CatalogEntry{Index: 4, Title: "Video 4"}
	if got := entry.DisplayLabel(); got != "4. Video 4" {
		t.Errorf("DisplayLabel() = %q, expected %q", got, "4. Video 4")
	}
}

func TestParsePlaybackMode(t *testing.T) {
	tests := []struct {
		name     string
		expected PlaybackMode
	}{
		{"loop", ModeLoop},
		{"sequential", ModeSequential},
		{"random", ModeRandom},
		{"", ModeSequential},
		{"shuffle", ModeSequential},
	}

	for _, test := range tests {
		if got := ParsePlaybackMode(test.name); got != test.expected {
			t.Errorf("ParsePlaybackMode(%q) = %v, expected %v", test.name, got, test.expected)
		}
	}

	for _, mode := range PlaybackModes() {
		if ParsePlaybackMode(mode.String()) != mode {
			t.Errorf("Mode %v does not survive String/Parse", mode)
		}
	}
}
