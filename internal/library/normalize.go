package library

import (
	"path/filepath"
	"strconv"
)

// combinedTrackThreshold marks raw track numbers that carry a disc component:
// values of 1000 and above encode discNumber*100 + trackNumber in one field.
const combinedTrackThreshold = 1000

// normalizeRow converts one raw row into a canonical Track. There is no error
// path; whatever defaults the source provided are carried through.
func (ix *Indexer) normalizeRow(row Row) *Track {
	disc, number := decodeTrackNumber(row.DiscNumber, row.TrackNumber)
	return &Track{
		ID:           row.ID,
		Title:        row.Title,
		Artist:       row.Artist,
		Album:        row.Album,
		AlbumArtist:  row.AlbumArtist,
		Genre:        row.Genre,
		Year:         row.Year,
		DiscNumber:   disc,
		TrackNumber:  number,
		DurationMS:   row.DurationMS,
		Path:         row.Path,
		ContentType:  row.ContentType,
		ArtworkPath:  artworkRef(ix.cfg.ArtworkBasePath, row.AlbumGroupID),
		AlbumGroupID: row.AlbumGroupID,
	}
}

// decodeTrackNumber resolves the combined disc/track convention. A raw track
// number at or above the threshold overrides both fields; below it, both pass
// through unchanged.
func decodeTrackNumber(disc, track int) (int, int) {
	if track >= combinedTrackThreshold {
		return track / 100, track % 100
	}
	return disc, track
}

// artworkRef derives the artwork reference for an album grouping id. Pure
// formatting; whether a file exists at the path is the artwork cache's
// concern.
func artworkRef(base string, groupID int64) string {
	return filepath.Join(base, strconv.FormatInt(groupID, 10))
}
