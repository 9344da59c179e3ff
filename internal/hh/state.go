package hh

import (
	"encoding/json"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// PageState is the nested JSON document embedded in a resume page. Any key
// may be absent; absence is never an error.
type PageState map[string]any

// stateSelector identifies the markup node carrying the serialized page
// state on hh.ru resume pages.
const stateSelector = `template#HH-Lux-initialState`

// DecodeState locates the embedded state payload in the page markup and
// parses it. A missing node or malformed payload yields an empty state
// rather than an error: downstream extractors treat a missing key exactly
// like a missing section, so degrading here keeps the record well-formed.
func DecodeState(html string) PageState {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return PageState{}
	}

	raw := strings.TrimSpace(doc.Find(stateSelector).First().Text())
	if raw == "" {
		return PageState{}
	}

	var state PageState
	if err := json.Unmarshal([]byte(raw), &state); err != nil {
		return PageState{}
	}
	if state == nil {
		return PageState{}
	}
	return state
}
