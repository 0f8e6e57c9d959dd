package library

// Row is one raw track record as delivered by the row source. String fields
// may be empty and numeric fields zero; the indexer passes malformed values
// through rather than rejecting them.
type Row struct {
	ID           int64
	Title        string
	Artist       string
	Album        string
	AlbumArtist  string
	Genre        string
	Path         string
	Year         int
	AlbumGroupID int64
	ContentType  string
	DiscNumber   int
	TrackNumber  int
	DurationMS   int64
}

// Track is the canonical, normalized representation of one audio file. Tracks
// are built once per run and shared by reference between the master list and
// every entity member list.
type Track struct {
	ID           int64
	Title        string
	Artist       string
	Album        string
	AlbumArtist  string
	Genre        string
	Year         int
	DiscNumber   int
	TrackNumber  int
	DurationMS   int64
	Path         string
	ContentType  string
	ArtworkPath  string
	AlbumGroupID int64
}

// Album groups the tracks sharing a title and release year. Artist holds the
// display name resolved from the first track-number-sorted member.
type Album struct {
	ID     int
	Title  string
	Artist string
	Year   int
	Tracks []*Track
}

// Artist groups tracks by exact name. The same shape backs both the artist
// and album-artist views.
type Artist struct {
	ID     int
	Name   string
	Tracks []*Track
}

// Genre groups the tracks carrying the same genre tag. Untagged tracks belong
// to no genre group.
type Genre struct {
	ID     int
	Name   string
	Tracks []*Track
}

// ReleaseDate groups tracks sharing a release year. Year zero is a regular
// bucket for tracks without a year tag.
type ReleaseDate struct {
	ID     int
	Year   int
	Tracks []*Track
}

// Snapshot is the immutable result of one indexing run: the master track list
// in source order, the five sorted entity lists, and the per-track lookup
// tables.
type Snapshot struct {
	Tracks       []*Track
	Albums       []Album
	Artists      []Artist
	AlbumArtists []Artist
	Genres       []Genre
	ReleaseDates []ReleaseDate
	Durations    map[int64]int64
	Locations    map[int64]string
	ContentTypes map[int64]string
}

// Config carries the caller-injected settings the indexer needs.
//
// UnknownGenreLabel is accepted for parity with UnknownArtistLabel but the
// grouping logic never applies it: tracks without a genre tag are omitted from
// the genre view rather than labeled.
type Config struct {
	UnknownArtistLabel string
	UnknownGenreLabel  string
	ArtworkBasePath    string
}
