package textutil

// Truncate shortens value to at most max runes, replacing the tail with an
// ellipsis when trimming occurs. A max below 2 returns the bare prefix.
func Truncate(value string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(value)
	if len(runes) <= max {
		return value
	}
	if max == 1 {
		return string(runes[:1])
	}
	return string(runes[:max-1]) + "…"
}
