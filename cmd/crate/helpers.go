package main

import (
	"fmt"
	"os"
	"time"

	"github.com/mattn/go-isatty"
)

// timeRounding keeps elapsed-time output readable.
const timeRounding = time.Millisecond

const (
	ansiReset = "\x1b[0m"
	ansiRed   = "\x1b[31m"
	ansiGreen = "\x1b[32m"
)

// formatDurationMS renders a millisecond duration as m:ss (or h:mm:ss past an
// hour). Zero means the duration probe failed and renders as a placeholder.
func formatDurationMS(ms int64) string {
	if ms <= 0 {
		return "-"
	}
	totalSeconds := ms / 1000
	hours := totalSeconds / 3600
	minutes := (totalSeconds % 3600) / 60
	seconds := totalSeconds % 60
	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%d:%02d", minutes, seconds)
}

func stdoutIsTerminal() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func colorize(value, color string, enabled bool) string {
	if !enabled {
		return value
	}
	return color + value + ansiReset
}
