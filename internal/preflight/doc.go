// Package preflight provides readiness checks for the filesystem paths
// crate depends on.
//
// The CLI "crate doctor" command runs the full set before a user relies on
// scanning: the library root must exist and be listable, and the database,
// artwork, and log locations must be writable. Each check reports a
// pass/fail result with a human-readable detail line rather than an error,
// so all findings render together.
package preflight
