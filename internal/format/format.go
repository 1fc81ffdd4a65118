package format

import (
	"strings"
	"time"
)

// FmtDateTime formats a card timestamp with a long month and 24h minutes.
// Example: FmtDateTime(t, "zh") => "2025年3月9日 08:05"
func FmtDateTime(t time.Time, lang string) string {
	switch langBase(lang) {
	case "zh", "ja":
		return t.Format("2006年1月2日 15:04")
	default:
		return t.Format("January 2, 2006 15:04")
	}
}

func langBase(lang string) string {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if i := strings.IndexAny(lang, "-_"); i != -1 {
		lang = lang[:i]
	}
	return lang
}
