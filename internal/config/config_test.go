package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"crate/internal/config"
)

func TestLoadDefaultConfigExpandsPaths(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}

	wantLibrary := filepath.Join(tempHome, "music")
	if cfg.Paths.LibraryDir != wantLibrary {
		t.Fatalf("unexpected library dir: got %q want %q", cfg.Paths.LibraryDir, wantLibrary)
	}
	wantDB := filepath.Join(tempHome, ".local", "share", "crate", "crate.db")
	if cfg.Paths.DatabasePath != wantDB {
		t.Fatalf("unexpected database path: %q", cfg.Paths.DatabasePath)
	}
	if cfg.Library.UnknownArtistLabel != "Unknown Artist" {
		t.Fatalf("unexpected unknown artist label: %q", cfg.Library.UnknownArtistLabel)
	}
	if cfg.Library.UnknownGenreLabel != "Unknown Genre" {
		t.Fatalf("unexpected unknown genre label: %q", cfg.Library.UnknownGenreLabel)
	}
	if cfg.Scan.Workers != 4 {
		t.Fatalf("unexpected scan workers: %d", cfg.Scan.Workers)
	}
	if !cfg.RecognizesExtension(".MP3") {
		t.Fatal("expected .mp3 to be recognized regardless of case")
	}
	if cfg.RecognizesExtension(".txt") {
		t.Fatal("expected .txt to be rejected")
	}

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories failed: %v", err)
	}
	for _, dir := range []string{cfg.Paths.LogDir, cfg.Paths.ArtworkDir, filepath.Dir(cfg.Paths.DatabasePath)} {
		info, err := os.Stat(dir)
		if err != nil {
			t.Fatalf("expected directory %q to exist: %v", dir, err)
		}
		if !info.IsDir() {
			t.Fatalf("expected %q to be directory", dir)
		}
	}
	if _, err := os.Stat(cfg.Paths.LibraryDir); !os.IsNotExist(err) {
		t.Fatalf("expected library dir to stay untouched, stat err: %v", err)
	}
}

func TestLoadExplicitFileOverridesDefaults(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	path := filepath.Join(t.TempDir(), "crate.toml")
	content := strings.Join([]string{
		"[paths]",
		`library_dir = "~/tunes"`,
		"[library]",
		`unknown_artist_label = "Artiste inconnu"`,
		"[scan]",
		"workers = 2",
		`extensions = ["MP3", ".Flac"]`,
		"[logging]",
		`format = "json"`,
	}, "\n")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected config file to exist")
	}
	if resolved != path {
		t.Fatalf("unexpected resolved path: %q", resolved)
	}
	if cfg.Paths.LibraryDir != filepath.Join(tempHome, "tunes") {
		t.Fatalf("unexpected library dir: %q", cfg.Paths.LibraryDir)
	}
	if cfg.Library.UnknownArtistLabel != "Artiste inconnu" {
		t.Fatalf("unexpected label: %q", cfg.Library.UnknownArtistLabel)
	}
	if cfg.Library.UnknownGenreLabel != "Unknown Genre" {
		t.Fatalf("expected default genre label, got %q", cfg.Library.UnknownGenreLabel)
	}
	if cfg.Scan.Workers != 2 {
		t.Fatalf("unexpected workers: %d", cfg.Scan.Workers)
	}
	want := []string{".mp3", ".flac"}
	if len(cfg.Scan.Extensions) != len(want) {
		t.Fatalf("unexpected extensions: %v", cfg.Scan.Extensions)
	}
	for i, ext := range want {
		if cfg.Scan.Extensions[i] != ext {
			t.Fatalf("extension %d = %q, want %q", i, cfg.Scan.Extensions[i], ext)
		}
	}
	if cfg.Logging.Format != "json" {
		t.Fatalf("unexpected logging format: %q", cfg.Logging.Format)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(cfg *config.Config)
		want   string
	}{
		{
			name:   "empty library dir",
			mutate: func(cfg *config.Config) { cfg.Paths.LibraryDir = "" },
			want:   "paths.library_dir",
		},
		{
			name:   "empty database path",
			mutate: func(cfg *config.Config) { cfg.Paths.DatabasePath = "" },
			want:   "paths.database_path",
		},
		{
			name:   "empty artist label",
			mutate: func(cfg *config.Config) { cfg.Library.UnknownArtistLabel = "" },
			want:   "unknown_artist_label",
		},
		{
			name:   "zero workers",
			mutate: func(cfg *config.Config) { cfg.Scan.Workers = 0 },
			want:   "scan.workers",
		},
		{
			name:   "bad logging format",
			mutate: func(cfg *config.Config) { cfg.Logging.Format = "xml" },
			want:   "logging.format",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.Default()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("error %q does not mention %q", err.Error(), tc.want)
			}
		})
	}
}

func TestExpandPathTilde(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	expanded, err := config.ExpandPath("~/music/album")
	if err != nil {
		t.Fatalf("ExpandPath returned error: %v", err)
	}
	if expanded != filepath.Join(tempHome, "music", "album") {
		t.Fatalf("unexpected expansion: %q", expanded)
	}
}
