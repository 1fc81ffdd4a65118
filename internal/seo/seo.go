// Package seo builds the document metadata shown when a card is shared.
package seo

import (
	"html"
	"strings"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"
)

// DescriptionLimit is the rune budget for meta descriptions.
const DescriptionLimit = 160

var strict = bluemonday.StrictPolicy()

type OpenGraph struct {
	Title       string
	Description string
	Type        string
}

type Meta struct {
	Title       string
	Description string
	OG          OpenGraph
}

// Article returns metadata for a standalone page.
func Article(title, description string) Meta {
	description = Truncate(description, DescriptionLimit)
	return Meta{
		Title:       title,
		Description: description,
		OG: OpenGraph{
			Title:       title,
			Description: description,
			Type:        "article",
		},
	}
}

// PlainText strips markup from an HTML fragment and collapses whitespace.
func PlainText(fragment string) string {
	if strings.TrimSpace(fragment) == "" {
		return ""
	}
	text := html.UnescapeString(strict.Sanitize(fragment))
	return strings.Join(strings.Fields(text), " ")
}

// Truncate shortens s to at most limit runes, ending with an ellipsis when cut.
func Truncate(s string, limit int) string {
	if limit <= 0 || utf8.RuneCountInString(s) <= limit {
		return s
	}
	runes := []rune(s)
	return strings.TrimSpace(string(runes[:limit-1])) + "…"
}
