// Package artwork caches cover images extracted from audio files.
//
// The scanner hands it embedded pictures together with the album grouping id
// they belong to; the cache downscales each image to a bounded edge, encodes
// it as JPEG, and writes it under the configured artwork directory named by
// that id. The library indexer derives artwork references with the same
// naming rule, so a cached file is resolvable from any snapshot without the
// two packages knowing about each other.
//
// Corrupt or unsupported images are reported as errors; callers are expected
// to treat them as skippable, not fatal.
package artwork
