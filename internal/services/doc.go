// Package services defines shared utilities consumed by the store, scanner,
// and command layers.
//
// Key responsibilities:
//   - Context helpers that stamp scan run identifiers and file paths for
//     logging and tracing.
//   - Structured error markers plus the Wrap helper that keep failure
//     classification consistent across components.
//
// Use these helpers when wiring new service logic so operational behaviour
// (error handling, observability) stays uniform across the tool.
package services
