package library

// Indexer builds library snapshots from raw track rows. Construct once with
// the caller's configuration and reuse across runs; each Index call allocates
// fresh state.
type Indexer struct {
	cfg Config
}

// NewIndexer returns an Indexer applying the supplied configuration.
func NewIndexer(cfg Config) *Indexer {
	return &Indexer{cfg: cfg}
}

// Index runs the full pipeline over rows and assembles the snapshot: rows are
// normalized in order, folded into buckets in a single pass, and materialized
// into sorted entity lists. The call is synchronous and single-threaded; an
// empty input yields a valid snapshot with empty lists and maps.
func (ix *Indexer) Index(rows []Row) *Snapshot {
	tracks := make([]*Track, 0, len(rows))
	for _, row := range rows {
		tracks = append(tracks, ix.normalizeRow(row))
	}

	agg := newAggregation()
	for _, track := range tracks {
		agg.add(track, ix.cfg.UnknownArtistLabel)
	}

	return &Snapshot{
		Tracks:       tracks,
		Albums:       buildAlbums(agg),
		Artists:      buildArtists(agg.artists, agg.artistOrder),
		AlbumArtists: buildArtists(agg.albumArtists, agg.albumArtistOrder),
		Genres:       buildGenres(agg),
		ReleaseDates: buildReleaseDates(agg),
		Durations:    agg.durations,
		Locations:    agg.locations,
		ContentTypes: agg.contentTypes,
	}
}
