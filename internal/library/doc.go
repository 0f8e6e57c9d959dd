// Package library builds normalized, sorted music library snapshots from raw
// track rows.
//
// It owns the one-shot indexing pipeline: normalizing each row into a
// canonical Track (decoding combined disc/track numbers and deriving artwork
// references), folding the track sequence into album, artist, album-artist,
// genre, and release-year buckets, and materializing sorted entity lists with
// dense synthetic identifiers assigned by final position. The package performs
// no I/O and never rejects a row; missing tags are handled by bucket policy,
// not errors.
//
// Callers construct an Indexer with the localized fallback labels and artwork
// base path, then call Index once per run. The returned Snapshot is a single
// immutable unit; build a fresh one instead of mutating it.
package library
