// Package fetch retrieves resume pages over HTTP with a fixed request
// identity and a bounded timeout.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// DefaultTimeout bounds a single page fetch. There are no internal retries;
// exceeding it surfaces as a TransportError.
const DefaultTimeout = 15 * time.Second

// DefaultUserAgent is the fixed browser identity sent with every request.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) " +
	"AppleWebKit/537.36 (KHTML, like Gecko) " +
	"Chrome/117.0.0.0 Safari/537.36"

// DefaultAcceptLanguage matches the locale of the pages being fetched.
const DefaultAcceptLanguage = "ru-RU,ru;q=0.9,en-US;q=0.8,en;q=0.7"

// Result holds the raw content returned for a URL.
type Result struct {
	URL         string
	HTML        string
	ContentType string
	StatusCode  int
}

// TransportError indicates the page could not be reached: connection
// failure, invalid URL, or timeout. Callers cannot distinguish slow from
// unreachable and must treat both the same way.
type TransportError struct {
	URL   string
	Cause error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("fetch failed for %s: %v", e.URL, e.Cause)
}

func (e *TransportError) Unwrap() error {
	return e.Cause
}

// StatusError indicates the server responded with a non-success status
// after redirects were followed.
type StatusError struct {
	URL    string
	Status int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d for %s", e.Status, e.URL)
}

// Options configures the fetch behavior.
type Options struct {
	Timeout        time.Duration
	UserAgent      string
	AcceptLanguage string
	Headers        map[string]string
}

// DefaultOptions returns the fixed identity used for resume pages.
func DefaultOptions() *Options {
	return &Options{
		Timeout:        DefaultTimeout,
		UserAgent:      DefaultUserAgent,
		AcceptLanguage: DefaultAcceptLanguage,
	}
}

// URL retrieves the page at urlStr. Redirects are followed transparently.
// It fails with *TransportError when the request cannot complete and with
// *StatusError on a non-2xx response; in the latter case the partial Result
// is still returned for inspection.
func URL(ctx context.Context, urlStr string, opts *Options) (*Result, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	parsed, err := url.Parse(urlStr)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, &TransportError{URL: urlStr, Cause: fmt.Errorf("invalid URL: %w", err)}
	}

	client := &http.Client{
		Timeout: opts.Timeout,
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlStr, nil)
	if err != nil {
		return nil, &TransportError{URL: urlStr, Cause: err}
	}

	req.Header.Set("User-Agent", opts.UserAgent)
	if opts.AcceptLanguage != "" {
		req.Header.Set("Accept-Language", opts.AcceptLanguage)
	}
	for key, value := range opts.Headers {
		req.Header.Set(key, value)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, &TransportError{URL: urlStr, Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{URL: urlStr, Cause: err}
	}

	result := &Result{
		URL:         urlStr,
		HTML:        string(body),
		ContentType: resp.Header.Get("Content-Type"),
		StatusCode:  resp.StatusCode,
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return result, &StatusError{URL: urlStr, Status: resp.StatusCode}
	}

	return result, nil
}
