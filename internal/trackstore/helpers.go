package trackstore

import (
	"database/sql"

	"crate/internal/library"
)

const trackColumns = "id, path, title, artist, album, album_artist, genre, year, album_group_id, content_type, disc_number, track_number, duration_ms"

func scanRow(scanner interface{ Scan(dest ...any) error }) (library.Row, error) {
	var (
		id           int64
		path         string
		title        string
		artist       string
		album        string
		albumArtist  sql.NullString
		genre        sql.NullString
		year         int
		albumGroupID int64
		contentType  string
		discNumber   int
		trackNumber  int
		durationMS   int64
	)

	if err := scanner.Scan(
		&id,
		&path,
		&title,
		&artist,
		&album,
		&albumArtist,
		&genre,
		&year,
		&albumGroupID,
		&contentType,
		&discNumber,
		&trackNumber,
		&durationMS,
	); err != nil {
		return library.Row{}, err
	}

	return library.Row{
		ID:           id,
		Path:         path,
		Title:        title,
		Artist:       artist,
		Album:        album,
		AlbumArtist:  albumArtist.String,
		Genre:        genre.String,
		Year:         year,
		AlbumGroupID: albumGroupID,
		ContentType:  contentType,
		DiscNumber:   discNumber,
		TrackNumber:  trackNumber,
		DurationMS:   durationMS,
	}, nil
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}
