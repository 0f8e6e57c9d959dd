// Package scanner walks the music library and refreshes the track store.
//
// A scan run discovers audio files by extension, reads their tags and audio
// properties concurrently, then upserts one row per file and prunes rows
// whose files vanished. Embedded cover art is handed to the artwork cache
// keyed by album grouping id. Tag values are stored exactly as read; the
// library indexer owns all normalization, including combined disc/track
// decoding.
//
// Extraction failures are per-file and non-fatal: an unreadable tag block
// falls back to a title derived from the file name, and a failed duration
// probe stores zero.
package scanner
