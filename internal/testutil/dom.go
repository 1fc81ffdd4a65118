package testutil

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

// ParseHTML parses a rendered card or response body into a goquery document for assertions.
func ParseHTML(t testing.TB, body string) *goquery.Document {
	t.Helper()

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		t.Fatalf("parse html: %v", err)
	}
	return doc
}

// SectionKeys returns the data-section attribute of every rendered section, in order.
func SectionKeys(doc *goquery.Document) []string {
	var keys []string
	doc.Find("section.card-section").Each(func(_ int, s *goquery.Selection) {
		keys = append(keys, s.AttrOr("data-section", ""))
	})
	return keys
}
