package hh

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// hiddenMarker is the phrase hh.ru renders when a resume was hidden or
// deleted by its owner. It appears in the human-facing copy even when the
// embedded state still parses, so the check runs on page text, not on the
// state.
const hiddenMarker = "резюме скрыто"

// CheckVisible scans the page's visible text for the hidden/removed marker
// and returns an UnavailableError when it is present. The scan is
// case-insensitive and covers the whole page text, matching the upstream
// site's own behavior.
func CheckVisible(html, url string) error {
	text := visibleText(html)
	if strings.Contains(strings.ToLower(text), hiddenMarker) {
		return &UnavailableError{URL: url}
	}
	return nil
}

// visibleText strips non-rendered nodes and returns the remaining text.
// Unparseable markup falls back to the raw input so the guard still runs.
func visibleText(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return html
	}
	doc.Find("script, style, noscript, template").Remove()
	return doc.Text()
}
