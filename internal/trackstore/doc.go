// Package trackstore persists scanned track metadata between runs.
//
// It owns the SQLite database that holds one row per audio file found in the
// music library. The scanner upserts rows keyed by file path; the CLI reads
// them back, ordered by title, as input for the library indexer. Schema
// changes ship as additive migrations applied on open.
//
// The store never interprets tag values. Combined disc/track encodings and
// missing fields are persisted as scanned; decoding them is the indexer's
// job.
package trackstore
