package main

import (
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"crate/internal/library"
	"crate/internal/testsupport"
)

// seedScenario stores the two-row fixture: one untagged-genre track and one
// Rock track on the same album, both without an album artist.
func seedScenario(t *testing.T) string {
	t.Helper()

	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	testsupport.UpsertRow(t, store, library.Row{
		Path:        filepath.Join(cfg.Paths.LibraryDir, "a.mp3"),
		Title:       "Song A",
		Artist:      "X",
		Album:       "Album1",
		Year:        2001,
		TrackNumber: 1,
		DurationMS:  181000,
	})
	testsupport.UpsertRow(t, store, library.Row{
		Path:        filepath.Join(cfg.Paths.LibraryDir, "b.mp3"),
		Title:       "Song B",
		Artist:      "X",
		Album:       "Album1",
		Genre:       "Rock",
		Year:        2001,
		TrackNumber: 2,
		DurationMS:  245000,
	})
	if err := store.Close(); err != nil {
		t.Fatalf("close store: %v", err)
	}

	configPath := filepath.Join(testsupport.BaseDir(cfg), "config.toml")
	writeTestConfig(t, configPath, cfg)
	return configPath
}

func TestStatsJSON(t *testing.T) {
	configPath := seedScenario(t)

	out, err := runCommand(t, "stats", "--json", "-c", configPath)
	if err != nil {
		t.Fatalf("stats failed: %v", err)
	}

	var counts map[string]int
	if err := json.Unmarshal([]byte(out), &counts); err != nil {
		t.Fatalf("parse stats output: %v", err)
	}
	want := map[string]int{
		"tracks":        2,
		"albums":        1,
		"artists":       1,
		"album_artists": 1,
		"genres":        1,
		"years":         1,
	}
	for key, expected := range want {
		if counts[key] != expected {
			t.Fatalf("expected %s=%d, got %d", key, expected, counts[key])
		}
	}
}

func TestAlbumsJSONResolvesArtist(t *testing.T) {
	configPath := seedScenario(t)

	out, err := runCommand(t, "albums", "--json", "-c", configPath)
	if err != nil {
		t.Fatalf("albums failed: %v", err)
	}

	var albums []albumView
	if err := json.Unmarshal([]byte(out), &albums); err != nil {
		t.Fatalf("parse albums output: %v", err)
	}
	if len(albums) != 1 {
		t.Fatalf("expected 1 album, got %d", len(albums))
	}
	album := albums[0]
	if album.Title != "Album1" || album.Artist != "X" || album.Year != 2001 || album.Tracks != 2 {
		t.Fatalf("unexpected album view: %+v", album)
	}
}

func TestAlbumArtistsJSONUsesUnknownLabel(t *testing.T) {
	configPath := seedScenario(t)

	out, err := runCommand(t, "albumartists", "--json", "-c", configPath)
	if err != nil {
		t.Fatalf("albumartists failed: %v", err)
	}

	var artists []artistView
	if err := json.Unmarshal([]byte(out), &artists); err != nil {
		t.Fatalf("parse albumartists output: %v", err)
	}
	if len(artists) != 1 {
		t.Fatalf("expected 1 album artist, got %d", len(artists))
	}
	if artists[0].Name != "Unknown Artist" || artists[0].Tracks != 2 {
		t.Fatalf("unexpected album artist view: %+v", artists[0])
	}
}

func TestGenresJSONExcludesUntagged(t *testing.T) {
	configPath := seedScenario(t)

	out, err := runCommand(t, "genres", "--json", "-c", configPath)
	if err != nil {
		t.Fatalf("genres failed: %v", err)
	}

	var genres []genreView
	if err := json.Unmarshal([]byte(out), &genres); err != nil {
		t.Fatalf("parse genres output: %v", err)
	}
	if len(genres) != 1 {
		t.Fatalf("expected 1 genre, got %d", len(genres))
	}
	if genres[0].Name != "Rock" || genres[0].Tracks != 1 {
		t.Fatalf("unexpected genre view: %+v", genres[0])
	}
}

func TestTracksTableRendersDurations(t *testing.T) {
	configPath := seedScenario(t)

	out, err := runCommand(t, "tracks", "-c", configPath)
	if err != nil {
		t.Fatalf("tracks failed: %v", err)
	}
	if !strings.Contains(out, "3:01") || !strings.Contains(out, "4:05") {
		t.Fatalf("expected formatted durations in output: %q", out)
	}
	if !strings.Contains(out, "Song A") || !strings.Contains(out, "Song B") {
		t.Fatalf("expected track titles in output: %q", out)
	}
}
