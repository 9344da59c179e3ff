package hh

import (
	"context"
	"sync"

	"github.com/anton/hh-resume-extractor/internal/fetch"
)

// Extractor runs the resume extraction pipeline for one URL at a time:
// fetch, visibility check, state decode, then the eight field-group
// extractors. It holds no per-call state, so a single Extractor is safe for
// concurrent use.
type Extractor struct {
	fetchOpts *fetch.Options
	browser   bool

	// Opt-in diagnostic side channel: when enabled, the last fetched raw
	// markup is retained for replay. Never written anywhere by the
	// pipeline itself.
	keepRaw bool
	mu      sync.Mutex
	lastRaw string
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithFetchOptions overrides the HTTP request identity and timeout.
func WithFetchOptions(opts *fetch.Options) Option {
	return func(e *Extractor) { e.fetchOpts = opts }
}

// WithBrowser fetches through a headless browser instead of plain HTTP, for
// pages that inject the state payload client-side.
func WithBrowser() Option {
	return func(e *Extractor) { e.browser = true }
}

// WithRawRetention keeps the last fetched markup available via LastRaw.
func WithRawRetention() Option {
	return func(e *Extractor) { e.keepRaw = true }
}

// New returns an Extractor with the default fetch identity.
func New(opts ...Option) *Extractor {
	e := &Extractor{fetchOpts: fetch.DefaultOptions()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ExtractResume fetches the page at url and assembles its resume record.
//
// It fails with *fetch.TransportError or *fetch.StatusError when the page
// cannot be retrieved, and with *UnavailableError when the page says the
// resume was hidden or deleted. On any of those the returned record is the
// canonical empty record. Past a successful decode nothing fails: malformed
// sections degrade individually to their empty defaults.
func (e *Extractor) ExtractResume(ctx context.Context, url string) (ResumeRecord, error) {
	var html string
	if e.browser {
		rendered, err := fetch.WithBrowser(ctx, url, e.fetchOpts.Timeout)
		if err != nil {
			return EmptyRecord(), err
		}
		html = rendered
	} else {
		result, err := fetch.URL(ctx, url, e.fetchOpts)
		if err != nil {
			return EmptyRecord(), err
		}
		html = result.HTML
	}

	if e.keepRaw {
		e.mu.Lock()
		e.lastRaw = html
		e.mu.Unlock()
	}

	if err := CheckVisible(html, url); err != nil {
		return EmptyRecord(), err
	}

	return Extract(DecodeState(html), html), nil
}

// LastRaw returns the most recently fetched markup when raw retention is
// enabled, and "" otherwise.
func (e *Extractor) LastRaw() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.lastRaw
}

// Extract assembles a record from an already decoded page state. The raw
// markup is only consulted for per-section fallbacks and may be empty.
// Every section is isolated: a fault inside one extractor yields that
// section's empty default and leaves the rest intact.
func Extract(state PageState, html string) ResumeRecord {
	return ResumeRecord{
		PersonalInfo:   mapSection(func() map[string]any { return extractPersonalInfo(state, html) }),
		Position:       mapSection(func() map[string]any { return extractPosition(state) }),
		Location:       mapSection(func() map[string]any { return extractLocation(state) }),
		Experience:     listSection(func() []ExperienceEntry { return extractExperience(state) }),
		Education:      listSection(func() []EducationEntry { return extractEducation(state) }),
		Skills:         listSection(func() []SkillEntry { return extractSkills(state) }),
		Languages:      listSection(func() []LanguageEntry { return extractLanguages(state) }),
		Contacts:       mapSection(func() map[string]any { return extractContacts(state) }),
		AdditionalInfo: mapSection(func() map[string]any { return extractAdditionalInfo(state) }),
		RawJSON:        state,
	}
}
