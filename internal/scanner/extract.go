package scanner

import (
	"hash/fnv"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode"

	"github.com/dhowden/tag"
	"github.com/h2non/filetype"
	"go.senan.xyz/taglib"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"crate/internal/library"
)

// extraction is the result of reading one audio file. picture carries the
// embedded cover bytes when the file has one; tagErr records a failed tag
// read that fell back to filename-derived metadata.
type extraction struct {
	row     library.Row
	picture []byte
	tagErr  error
}

// extract reads tags, duration, and content type for one audio file. It does
// not return an error: unreadable tags degrade to filename-derived values so
// every recognized file still yields a row.
func extract(path string) extraction {
	var out extraction
	out.row.Path = path

	meta, tagErr := readTags(path)
	out.tagErr = tagErr
	if meta != nil {
		out.row.Title = strings.TrimSpace(meta.Title())
		out.row.Artist = strings.TrimSpace(meta.Artist())
		out.row.Album = strings.TrimSpace(meta.Album())
		out.row.AlbumArtist = strings.TrimSpace(meta.AlbumArtist())
		out.row.Genre = strings.TrimSpace(meta.Genre())
		out.row.Year = meta.Year()
		out.row.TrackNumber, _ = meta.Track()
		out.row.DiscNumber, _ = meta.Disc()
		if pic := meta.Picture(); pic != nil {
			out.picture = pic.Data
		}
	}
	if out.row.Title == "" {
		out.row.Title = deriveTitle(path)
	}

	out.row.DurationMS = probeDuration(path)
	out.row.ContentType = sniffContentType(path)
	out.row.AlbumGroupID = albumGroupID(out.row.Album, out.row.Year)
	return out
}

func readTags(path string) (tag.Metadata, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	meta, err := tag.ReadFrom(file)
	if err != nil {
		return nil, err
	}
	return meta, nil
}

// probeDuration reads the audio properties and reports the length in
// milliseconds. Failure is expected for exotic or truncated files and yields
// zero.
func probeDuration(path string) int64 {
	properties, err := taglib.ReadProperties(path)
	if err != nil {
		return 0
	}
	return properties.Length.Milliseconds()
}

// sniffHeaderSize covers the largest magic-number offset filetype checks.
const sniffHeaderSize = 261

// sniffContentType identifies the MIME type from the file header, falling
// back to the extension when the header is unrecognized.
func sniffContentType(path string) string {
	if kind := sniffHeader(path); kind != "" {
		return kind
	}
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	if t := filetype.GetType(ext); t != filetype.Unknown {
		return t.MIME.Value
	}
	return "application/octet-stream"
}

func sniffHeader(path string) string {
	file, err := os.Open(path)
	if err != nil {
		return ""
	}
	defer file.Close()

	head := make([]byte, sniffHeaderSize)
	n, err := file.Read(head)
	if n == 0 && err != nil {
		return ""
	}
	kind, err := filetype.Match(head[:n])
	if err != nil || kind == filetype.Unknown {
		return ""
	}
	return kind.MIME.Value
}

// albumGroupID derives a stable positive identifier from the album grouping
// attributes, so every row of one album key shares artwork.
func albumGroupID(album string, year int) int64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(album))
	_, _ = h.Write([]byte{0})
	_, _ = h.Write([]byte(strconv.Itoa(year)))
	return int64(h.Sum64() & (1<<63 - 1))
}

// deriveTitle builds a display title from the file name when the title tag is
// missing: separators become spaces and words are title-cased.
func deriveTitle(path string) string {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	cleaned := strings.Builder{}
	prevSpace := false
	for _, r := range base {
		switch {
		case unicode.IsLetter(r) || unicode.IsNumber(r):
			cleaned.WriteRune(r)
			prevSpace = false
		case unicode.IsSpace(r) || r == '-' || r == '_' || r == '.':
			if !prevSpace {
				cleaned.WriteRune(' ')
				prevSpace = true
			}
		}
	}
	title := strings.TrimSpace(cleaned.String())
	if title == "" {
		title = "Untitled"
	}
	return cases.Title(language.Und).String(title)
}
