package library

// albumKey identifies an album bucket. Two albums with the same title but
// different years are distinct entities.
type albumKey struct {
	title string
	year  int
}

// aggregation accumulates the five bucket maps and the three auxiliary
// lookups during one indexing pass. Each map carries a companion slice
// recording first-insertion order, since Go map iteration order is random and
// entity tie-breaks must follow source order.
type aggregation struct {
	albums           map[albumKey][]*Track
	albumOrder       []albumKey
	artists          map[string][]*Track
	artistOrder      []string
	albumArtists     map[string][]*Track
	albumArtistOrder []string
	genres           map[string][]*Track
	genreOrder       []string
	years            map[int][]*Track
	yearOrder        []int

	durations    map[int64]int64
	locations    map[int64]string
	contentTypes map[int64]string
}

func newAggregation() *aggregation {
	return &aggregation{
		albums:       make(map[albumKey][]*Track),
		artists:      make(map[string][]*Track),
		albumArtists: make(map[string][]*Track),
		genres:       make(map[string][]*Track),
		years:        make(map[int][]*Track),
		durations:    make(map[int64]int64),
		locations:    make(map[int64]string),
		contentTypes: make(map[int64]string),
	}
}

// add inserts one track into every bucket it belongs to and records its
// auxiliary values. Tracks without a genre tag are omitted from the genre
// buckets; an absent album-artist folds into the unknownArtist bucket, which
// also absorbs any real album-artist whose name equals that label.
func (agg *aggregation) add(track *Track, unknownArtist string) {
	appendBucket(agg.albums, &agg.albumOrder, albumKey{title: track.Album, year: track.Year}, track)
	appendBucket(agg.artists, &agg.artistOrder, track.Artist, track)

	albumArtist := track.AlbumArtist
	if albumArtist == "" {
		albumArtist = unknownArtist
	}
	appendBucket(agg.albumArtists, &agg.albumArtistOrder, albumArtist, track)

	if track.Genre != "" {
		appendBucket(agg.genres, &agg.genreOrder, track.Genre, track)
	}
	appendBucket(agg.years, &agg.yearOrder, track.Year, track)

	agg.durations[track.ID] = track.DurationMS
	agg.locations[track.ID] = track.Path
	agg.contentTypes[track.ID] = track.ContentType
}

// appendBucket implements get-or-create semantics: an absent key starts a new
// bucket and is noted in the order slice, an existing key appends.
func appendBucket[K comparable](buckets map[K][]*Track, order *[]K, key K, track *Track) {
	if _, ok := buckets[key]; !ok {
		*order = append(*order, key)
	}
	buckets[key] = append(buckets[key], track)
}
