package tui

import "strings"

const uiDivider = "──────────────────────────────────────────────────────"

func divider(width int) string {
	if width <= 0 || width >= len([]rune(uiDivider)) {
		return uiDivider
	}
	return string([]rune(uiDivider)[:width])
}

func fitText(v string, max int) string {
	r := []rune(v)
	if max <= 0 || len(r) <= max {
		return v
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}

func lastNonEmpty(lines []string) (string, bool) {
	for i := len(lines) - 1; i >= 0; i-- {
		if strings.TrimSpace(lines[i]) != "" {
			return lines[i], true
		}
	}
	return "", false
}
