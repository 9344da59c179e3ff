package fetch

import (
	"context"
	"time"

	"github.com/chromedp/chromedp"
)

// renderSettle is how long the browser waits after body readiness for
// scripts to finish injecting the state payload.
const renderSettle = 2 * time.Second

// WithBrowser renders the page in a headless browser and returns the final
// markup. Requires Chrome/Chromium on the system. Failures are reported as
// *TransportError: from the pipeline's point of view an unreachable browser
// and an unreachable server are the same condition.
func WithBrowser(ctx context.Context, url string, timeout time.Duration) (string, error) {
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	allocCtx, cancel := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
			chromedp.UserAgent(DefaultUserAgent),
		)...,
	)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	browserCtx, cancel = context.WithTimeout(browserCtx, timeout)
	defer cancel()

	var html string
	err := chromedp.Run(browserCtx,
		chromedp.Navigate(url),
		chromedp.WaitReady("body"),
		chromedp.Sleep(renderSettle),
		chromedp.OuterHTML("html", &html),
	)
	if err != nil {
		return "", &TransportError{URL: url, Cause: err}
	}

	return html, nil
}
