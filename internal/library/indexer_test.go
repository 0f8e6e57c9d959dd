package library

import "testing"

const testUnknownArtist = "Unknown Artist"

func testIndexer() *Indexer {
	return NewIndexer(Config{
		UnknownArtistLabel: testUnknownArtist,
		UnknownGenreLabel:  "Unknown Genre",
		ArtworkBasePath:    "/art",
	})
}

func TestIndexTwoRowScenario(t *testing.T) {
	rows := []Row{
		{ID: 1, Title: "Song A", Artist: "X", Album: "Album1", Year: 2001, TrackNumber: 1},
		{ID: 2, Title: "Song B", Artist: "X", Album: "Album1", Genre: "Rock", Year: 2001, TrackNumber: 2},
	}

	snap := testIndexer().Index(rows)

	if len(snap.Tracks) != 2 {
		t.Fatalf("expected 2 tracks, got %d", len(snap.Tracks))
	}
	if len(snap.Albums) != 1 {
		t.Fatalf("expected 1 album, got %d", len(snap.Albums))
	}
	album := snap.Albums[0]
	if album.Title != "Album1" || album.Year != 2001 {
		t.Fatalf("unexpected album: %+v", album)
	}
	if album.Artist != "X" {
		t.Fatalf("expected display artist X for untagged album-artist, got %q", album.Artist)
	}
	if len(album.Tracks) != 2 || album.Tracks[0].Title != "Song A" || album.Tracks[1].Title != "Song B" {
		t.Fatalf("unexpected album members: %v", trackTitles(album.Tracks))
	}

	if len(snap.Artists) != 1 || snap.Artists[0].Name != "X" || len(snap.Artists[0].Tracks) != 2 {
		t.Fatalf("unexpected artists: %+v", snap.Artists)
	}
	if len(snap.AlbumArtists) != 1 || snap.AlbumArtists[0].Name != testUnknownArtist {
		t.Fatalf("unexpected album artists: %+v", snap.AlbumArtists)
	}
	if len(snap.AlbumArtists[0].Tracks) != 2 {
		t.Fatalf("expected both tracks under the fallback album artist, got %d", len(snap.AlbumArtists[0].Tracks))
	}
	if len(snap.Genres) != 1 || snap.Genres[0].Name != "Rock" {
		t.Fatalf("unexpected genres: %+v", snap.Genres)
	}
	if len(snap.Genres[0].Tracks) != 1 || snap.Genres[0].Tracks[0].Title != "Song B" {
		t.Fatalf("expected only the tagged track under Rock, got %v", trackTitles(snap.Genres[0].Tracks))
	}
	if len(snap.ReleaseDates) != 1 || snap.ReleaseDates[0].Year != 2001 || len(snap.ReleaseDates[0].Tracks) != 2 {
		t.Fatalf("unexpected release dates: %+v", snap.ReleaseDates)
	}
}

func TestIndexCoverageAcrossViews(t *testing.T) {
	rows := []Row{
		{ID: 1, Title: "Alpha", Artist: "Ann", Album: "First", AlbumArtist: "Ann", Genre: "Jazz", Year: 1999, TrackNumber: 1},
		{ID: 2, Title: "Beta", Artist: "Bob", Album: "First", Year: 1999, TrackNumber: 2},
		{ID: 3, Title: "Gamma", Artist: "Ann", Album: "Second", Genre: "Jazz", Year: 2003, TrackNumber: 1},
		{ID: 4, Title: "Delta", Artist: "Cid", Album: "Third", TrackNumber: 4},
	}

	snap := testIndexer().Index(rows)

	for _, track := range snap.Tracks {
		if got := countMemberships(track, albumMembers(snap.Albums)); got != 1 {
			t.Fatalf("track %d in %d albums", track.ID, got)
		}
		if got := countMemberships(track, artistMembers(snap.Artists)); got != 1 {
			t.Fatalf("track %d in %d artists", track.ID, got)
		}
		if got := countMemberships(track, artistMembers(snap.AlbumArtists)); got != 1 {
			t.Fatalf("track %d in %d album artists", track.ID, got)
		}
		if got := countMemberships(track, releaseDateMembers(snap.ReleaseDates)); got != 1 {
			t.Fatalf("track %d in %d release dates", track.ID, got)
		}
		wantGenres := 0
		if track.Genre != "" {
			wantGenres = 1
		}
		if got := countMemberships(track, genreMembers(snap.Genres)); got != wantGenres {
			t.Fatalf("track %d in %d genres, want %d", track.ID, got, wantGenres)
		}
	}

	for _, track := range snap.Tracks {
		if _, ok := snap.Durations[track.ID]; !ok {
			t.Fatalf("missing duration entry for track %d", track.ID)
		}
		if _, ok := snap.Locations[track.ID]; !ok {
			t.Fatalf("missing location entry for track %d", track.ID)
		}
		if _, ok := snap.ContentTypes[track.ID]; !ok {
			t.Fatalf("missing content type entry for track %d", track.ID)
		}
	}
}

func TestIndexSyntheticIdentifierDensity(t *testing.T) {
	rows := []Row{
		{ID: 1, Title: "a", Artist: "A", Album: "P", Genre: "g1", Year: 1990, TrackNumber: 1},
		{ID: 2, Title: "b", Artist: "B", Album: "Q", Genre: "g2", Year: 1991, TrackNumber: 1},
		{ID: 3, Title: "c", Artist: "C", Album: "R", Genre: "g3", Year: 1992, TrackNumber: 1},
		{ID: 4, Title: "d", Artist: "D", Album: "S", AlbumArtist: "D", Year: 1993, TrackNumber: 1},
	}

	snap := testIndexer().Index(rows)

	checkDense := func(name string, ids []int) {
		for want, got := range ids {
			if got != want {
				t.Fatalf("%s ids not dense: position %d holds %d (all: %v)", name, want, got, ids)
			}
		}
	}
	checkDense("albums", albumIDs(snap.Albums))
	checkDense("artists", artistIDs(snap.Artists))
	checkDense("album artists", artistIDs(snap.AlbumArtists))
	checkDense("genres", genreIDs(snap.Genres))
	checkDense("release dates", releaseDateIDs(snap.ReleaseDates))
}

func TestIndexIdempotentAcrossRuns(t *testing.T) {
	build := func() []Row {
		return []Row{
			{ID: 1, Title: "Same", Artist: "Dup", Album: "One", Genre: "Rock", Year: 2000, TrackNumber: 2},
			{ID: 2, Title: "Same", Artist: "Dup", Album: "One", Genre: "Rock", Year: 2000, TrackNumber: 1},
			{ID: 3, Title: "Other", Artist: "Else", Album: "Two", Year: 1995, TrackNumber: 1},
		}
	}

	first := testIndexer().Index(build())
	second := testIndexer().Index(build())

	if len(first.Albums) != len(second.Albums) {
		t.Fatalf("album counts differ: %d vs %d", len(first.Albums), len(second.Albums))
	}
	for i := range first.Albums {
		a, b := first.Albums[i], second.Albums[i]
		if a.ID != b.ID || a.Title != b.Title || a.Year != b.Year || a.Artist != b.Artist {
			t.Fatalf("album %d differs: %+v vs %+v", i, a, b)
		}
		if got, want := trackIDs(a.Tracks), trackIDs(b.Tracks); !equalIDs(got, want) {
			t.Fatalf("album %d members differ: %v vs %v", i, got, want)
		}
	}
	for i := range first.Artists {
		if first.Artists[i].Name != second.Artists[i].Name || first.Artists[i].ID != second.Artists[i].ID {
			t.Fatalf("artist %d differs", i)
		}
		if !equalIDs(trackIDs(first.Artists[i].Tracks), trackIDs(second.Artists[i].Tracks)) {
			t.Fatalf("artist %d members differ", i)
		}
	}
	for i := range first.ReleaseDates {
		if first.ReleaseDates[i].Year != second.ReleaseDates[i].Year {
			t.Fatalf("release date %d differs", i)
		}
	}
}

func TestIndexEmptyInput(t *testing.T) {
	snap := testIndexer().Index(nil)
	if len(snap.Tracks) != 0 || len(snap.Albums) != 0 || len(snap.Artists) != 0 ||
		len(snap.AlbumArtists) != 0 || len(snap.Genres) != 0 || len(snap.ReleaseDates) != 0 {
		t.Fatalf("expected empty snapshot, got %+v", snap)
	}
	if snap.Durations == nil || snap.Locations == nil || snap.ContentTypes == nil {
		t.Fatal("expected auxiliary maps to be allocated")
	}
	if len(snap.Durations) != 0 {
		t.Fatalf("expected empty duration map, got %d entries", len(snap.Durations))
	}
}

func TestMemberListsShareTrackInstances(t *testing.T) {
	rows := []Row{
		{ID: 1, Title: "Shared", Artist: "A", Album: "Alb", Genre: "Pop", Year: 2010, TrackNumber: 1},
	}
	snap := testIndexer().Index(rows)

	master := snap.Tracks[0]
	for _, got := range []*Track{
		snap.Albums[0].Tracks[0],
		snap.Artists[0].Tracks[0],
		snap.AlbumArtists[0].Tracks[0],
		snap.Genres[0].Tracks[0],
		snap.ReleaseDates[0].Tracks[0],
	} {
		if got != master {
			t.Fatalf("expected shared track instance, got distinct pointer %p vs %p", got, master)
		}
	}
}

func trackTitles(tracks []*Track) []string {
	titles := make([]string, 0, len(tracks))
	for _, track := range tracks {
		titles = append(titles, track.Title)
	}
	return titles
}

func trackIDs(tracks []*Track) []int64 {
	ids := make([]int64, 0, len(tracks))
	for _, track := range tracks {
		ids = append(ids, track.ID)
	}
	return ids
}

func equalIDs(a, b []int64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func countMemberships(track *Track, lists [][]*Track) int {
	count := 0
	for _, list := range lists {
		for _, member := range list {
			if member == track {
				count++
			}
		}
	}
	return count
}

func albumMembers(albums []Album) [][]*Track {
	out := make([][]*Track, 0, len(albums))
	for _, album := range albums {
		out = append(out, album.Tracks)
	}
	return out
}

func artistMembers(artists []Artist) [][]*Track {
	out := make([][]*Track, 0, len(artists))
	for _, artist := range artists {
		out = append(out, artist.Tracks)
	}
	return out
}

func genreMembers(genres []Genre) [][]*Track {
	out := make([][]*Track, 0, len(genres))
	for _, genre := range genres {
		out = append(out, genre.Tracks)
	}
	return out
}

func releaseDateMembers(dates []ReleaseDate) [][]*Track {
	out := make([][]*Track, 0, len(dates))
	for _, date := range dates {
		out = append(out, date.Tracks)
	}
	return out
}

func albumIDs(albums []Album) []int {
	ids := make([]int, 0, len(albums))
	for _, album := range albums {
		ids = append(ids, album.ID)
	}
	return ids
}

func artistIDs(artists []Artist) []int {
	ids := make([]int, 0, len(artists))
	for _, artist := range artists {
		ids = append(ids, artist.ID)
	}
	return ids
}

func genreIDs(genres []Genre) []int {
	ids := make([]int, 0, len(genres))
	for _, genre := range genres {
		ids = append(ids, genre.ID)
	}
	return ids
}

func releaseDateIDs(dates []ReleaseDate) []int {
	ids := make([]int, 0, len(dates))
	for _, date := range dates {
		ids = append(ids, date.ID)
	}
	return ids
}
