package library

import "sort"

// buildAlbums materializes the album view: members ordered by track number,
// entities ordered by title then year, identifiers assigned by final
// position. All sorts are stable so buckets with equal keys keep their
// first-insertion order.
func buildAlbums(agg *aggregation) []Album {
	albums := make([]Album, 0, len(agg.albumOrder))
	for _, key := range agg.albumOrder {
		members := agg.albums[key]
		sortTracksByNumber(members)
		albums = append(albums, Album{
			Title:  key.title,
			Artist: albumDisplayArtist(members),
			Year:   key.year,
			Tracks: members,
		})
	}
	sort.SliceStable(albums, func(i, j int) bool {
		if albums[i].Title != albums[j].Title {
			return albums[i].Title < albums[j].Title
		}
		return albums[i].Year < albums[j].Year
	})
	for idx := range albums {
		albums[idx].ID = idx
	}
	return albums
}

// albumDisplayArtist resolves the name shown for an album from its first
// track-number-sorted member: the member's album-artist when tagged,
// otherwise its artist.
func albumDisplayArtist(members []*Track) string {
	if len(members) == 0 {
		return ""
	}
	first := members[0]
	if first.AlbumArtist != "" {
		return first.AlbumArtist
	}
	return first.Artist
}

// buildArtists materializes a name-keyed view: members ordered by title,
// entities ordered by name. Backs both the artist and album-artist lists.
func buildArtists(buckets map[string][]*Track, order []string) []Artist {
	artists := make([]Artist, 0, len(order))
	for _, name := range order {
		members := buckets[name]
		sortTracksByTitle(members)
		artists = append(artists, Artist{Name: name, Tracks: members})
	}
	sort.SliceStable(artists, func(i, j int) bool {
		return artists[i].Name < artists[j].Name
	})
	for idx := range artists {
		artists[idx].ID = idx
	}
	return artists
}

// buildGenres materializes the genre view: members ordered by title, entities
// ordered by name. Only genres with at least one tagged track appear.
func buildGenres(agg *aggregation) []Genre {
	genres := make([]Genre, 0, len(agg.genreOrder))
	for _, name := range agg.genreOrder {
		members := agg.genres[name]
		sortTracksByTitle(members)
		genres = append(genres, Genre{Name: name, Tracks: members})
	}
	sort.SliceStable(genres, func(i, j int) bool {
		return genres[i].Name < genres[j].Name
	})
	for idx := range genres {
		genres[idx].ID = idx
	}
	return genres
}

// buildReleaseDates materializes the release-year view: members ordered by
// title, entities ordered by year descending so the most recent year comes
// first.
func buildReleaseDates(agg *aggregation) []ReleaseDate {
	dates := make([]ReleaseDate, 0, len(agg.yearOrder))
	for _, year := range agg.yearOrder {
		members := agg.years[year]
		sortTracksByTitle(members)
		dates = append(dates, ReleaseDate{Year: year, Tracks: members})
	}
	sort.SliceStable(dates, func(i, j int) bool {
		return dates[i].Year > dates[j].Year
	})
	for idx := range dates {
		dates[idx].ID = idx
	}
	return dates
}

func sortTracksByNumber(tracks []*Track) {
	sort.SliceStable(tracks, func(i, j int) bool {
		return tracks[i].TrackNumber < tracks[j].TrackNumber
	})
}

// sortTracksByTitle orders members by title using case-sensitive byte
// comparison; ordering stays reproducible across locales.
func sortTracksByTitle(tracks []*Track) {
	sort.SliceStable(tracks, func(i, j int) bool {
		return tracks[i].Title < tracks[j].Title
	})
}
