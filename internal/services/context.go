package services

import "context"

type contextKey string

const (
	runIDKey     contextKey = "run_id"
	trackPathKey contextKey = "track_path"
)

// WithRunID annotates context with the scan run identifier.
func WithRunID(ctx context.Context, id string) context.Context {
	if id == "" {
		return ctx
	}
	return context.WithValue(ctx, runIDKey, id)
}

// RunIDFromContext extracts the scan run identifier if present.
func RunIDFromContext(ctx context.Context) (string, bool) {
	if v, ok := ctx.Value(runIDKey).(string); ok && v != "" {
		return v, true
	}
	return "", false
}

// WithTrackPath annotates context with the audio file path being processed.
func WithTrackPath(ctx context.Context, path string) context.Context {
	if path == "" {
		return ctx
	}
	return context.WithValue(ctx, trackPathKey, path)
}

// TrackPathFromContext returns the audio file path if present.
func TrackPathFromContext(ctx context.Context) (string, bool) {
	if v, ok := ctx.Value(trackPathKey).(string); ok && v != "" {
		return v, true
	}
	return "", false
}
