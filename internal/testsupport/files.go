package testsupport

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/bogem/id3v2"
)

// TrackTags describes the ID3 frames written into a generated test file.
// Zero values leave the corresponding frame out entirely.
type TrackTags struct {
	Title       string
	Artist      string
	Album       string
	AlbumArtist string
	Genre       string
	Year        int
	Track       int
	Disc        int
	Artwork     []byte
}

// WriteTrackFile authors an MP3 file carrying the provided ID3v2.3 tags so
// scanner tests can exercise real tag reads. The audio payload is a short
// filler; duration probing on it is expected to fail and default to zero.
func WriteTrackFile(t testing.TB, path string, tags TrackTags) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}

	tag := id3v2.NewEmptyTag()
	tag.SetVersion(3)
	if tags.Title != "" {
		tag.SetTitle(tags.Title)
	}
	if tags.Artist != "" {
		tag.SetArtist(tags.Artist)
	}
	if tags.Album != "" {
		tag.SetAlbum(tags.Album)
	}
	if tags.AlbumArtist != "" {
		tag.AddTextFrame("TPE2", id3v2.EncodingUTF8, tags.AlbumArtist)
	}
	if tags.Genre != "" {
		tag.SetGenre(tags.Genre)
	}
	if tags.Year != 0 {
		tag.AddTextFrame("TYER", id3v2.EncodingUTF8, strconv.Itoa(tags.Year))
	}
	if tags.Track != 0 {
		tag.AddTextFrame(tag.CommonID("Track number/Position in set"), id3v2.EncodingUTF8, strconv.Itoa(tags.Track))
	}
	if tags.Disc != 0 {
		tag.AddTextFrame(tag.CommonID("Part of a set"), id3v2.EncodingUTF8, strconv.Itoa(tags.Disc))
	}
	if len(tags.Artwork) > 0 {
		tag.AddAttachedPicture(id3v2.PictureFrame{
			Encoding:    id3v2.EncodingUTF8,
			MimeType:    "image/png",
			PictureType: id3v2.PTFrontCover,
			Description: "Cover",
			Picture:     tags.Artwork,
		})
	}

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()

	if _, err := tag.WriteTo(f); err != nil {
		t.Fatalf("write tags to %s: %v", path, err)
	}
	if _, err := f.Write(mpegFiller()); err != nil {
		t.Fatalf("write audio filler to %s: %v", path, err)
	}
}

// mpegFiller returns a few bytes resembling an MPEG frame header so content
// sniffing recognizes the file as audio.
func mpegFiller() []byte {
	frame := []byte{0xFF, 0xFB, 0x90, 0x00}
	return append(frame, make([]byte, 412)...)
}

// WriteFile fills the target path with the requested number of bytes using a
// simple repeating pattern. A size <= 0 writes a single byte.
func WriteFile(t testing.TB, path string, size int64) {
	t.Helper()

	if size <= 0 {
		size = 1
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()

	const chunkSize = 32 * 1024
	buf := make([]byte, chunkSize)
	for i := range buf {
		buf[i] = 0x42
	}

	remaining := size
	for remaining > 0 {
		toWrite := int64(chunkSize)
		if remaining < toWrite {
			toWrite = remaining
		}
		if _, err := f.Write(buf[:toWrite]); err != nil {
			t.Fatalf("write %s: %v", path, err)
		}
		remaining -= toWrite
	}
}
