// Package watch listens for removable-media events and triggers rescans.
//
// It subscribes to kernel uevents over a udev netlink socket and matches
// block-subsystem partition additions, the signal that a USB stick or
// external drive with music on it just appeared. Matched events are
// debounced, then handed to a callback that typically runs a library scan.
//
// Monitor errors are logged and non-fatal; the monitor keeps listening until
// stopped or its context is cancelled.
package watch
