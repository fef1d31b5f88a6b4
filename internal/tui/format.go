package tui

import (
	"github.com/akyairhashvil/countdown/internal/config"
	"github.com/charmbracelet/x/ansi"
)

func truncateLabel(text string, max int) string {
	if max <= 0 {
		return ""
	}
	if ansi.StringWidth(text) <= max {
		return text
	}
	return ansi.Truncate(text, max, config.TruncationSuffix)
}

func cursorMark(active bool) string {
	if active {
		return "> "
	}
	return "  "
}
