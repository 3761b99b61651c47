package ui

import "strings"

const ellipsis = "…"

// truncate shortens a string to the given limit, ending it with an ellipsis
// if anything was cut.
func truncate(value string, limit int) string {
	value = strings.TrimSpace(value)
	if limit <= 0 {
		return value
	}
	runes := []rune(value)
	if len(runes) <= limit {
		return value
	}
	if limit == 1 {
		return string(runes[:1])
	}
	return string(runes[:limit-1]) + ellipsis
}

// truncateMiddle shortens a string by removing characters from the middle.
// Paths keep their file name when it fits.
func truncateMiddle(value string, limit int) string {
	value = strings.TrimSpace(value)
	if limit <= 0 || value == "" {
		return value
	}
	runes := []rune(value)
	if len(runes) <= limit {
		return value
	}
	marker := []rune(ellipsis + "/")
	if limit <= len(marker)+1 {
		return string(runes[:limit])
	}

	if slash := strings.LastIndex(value, "/"); slash >= 0 {
		base := []rune(value[slash+1:])
		if len(base) > 0 && len(base)+len(marker) < limit {
			prefix := limit - len(base) - len(marker)
			return string(runes[:prefix]) + string(marker) + string(base)
		}
	}

	keep := limit - 1
	prefix := keep / 2
	suffix := keep - prefix
	return string(runes[:prefix]) + ellipsis + string(runes[len(runes)-suffix:])
}

// padRight pads a string with spaces to the given width.
func padRight(s string, width int) string {
	if width <= 0 {
		return s
	}
	r := []rune(s)
	if len(r) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(r))
}

// fit truncates or pads s to exactly width runes.
func fit(s string, width int) string {
	return padRight(truncate(s, width), width)
}
