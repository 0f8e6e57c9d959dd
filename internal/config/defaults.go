package config

const (
	defaultLibraryDir         = "~/music"
	defaultDatabasePath       = "~/.local/share/crate/crate.db"
	defaultArtworkDir         = "~/.local/share/crate/artwork"
	defaultLogDir             = "~/.local/share/crate/logs"
	defaultUnknownArtistLabel = "Unknown Artist"
	defaultUnknownGenreLabel  = "Unknown Genre"
	defaultScanWorkers        = 4
	defaultLogFormat          = "console"
	defaultLogLevel           = "info"
)

func defaultExtensions() []string {
	return []string{".mp3", ".flac", ".ogg", ".opus", ".m4a", ".m4b", ".wav"}
}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			LibraryDir:   defaultLibraryDir,
			DatabasePath: defaultDatabasePath,
			ArtworkDir:   defaultArtworkDir,
			LogDir:       defaultLogDir,
		},
		Library: Library{
			UnknownArtistLabel: defaultUnknownArtistLabel,
			UnknownGenreLabel:  defaultUnknownGenreLabel,
		},
		Scan: Scan{
			Workers:    defaultScanWorkers,
			Extensions: defaultExtensions(),
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
