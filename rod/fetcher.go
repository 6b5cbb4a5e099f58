// Package rod provides a headless Chrome implementation of
// novelfetch.Fetcher for chapter pages that are assembled by JavaScript.
package rod

import (
	"context"
	"time"

	"github.com/fwojciec/novelfetch"
	"github.com/go-rod/rod/lib/proto"
)

// DefaultFetchTimeout bounds a single page render.
// Kept consistent with http.DefaultFetchTimeout (10s).
const DefaultFetchTimeout = 10 * time.Second

// Ensure Fetcher implements novelfetch.Fetcher at compile time.
var _ novelfetch.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves rendered HTML from URLs using Chrome browser automation.
// Fetcher is safe for concurrent use by multiple goroutines.
type Fetcher struct {
	manager *BrowserManager
	timeout time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithFetchTimeout sets the per-page render timeout.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithFetchTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// NewFetcher launches a headless browser and returns a Fetcher using it.
// Close must be called when the Fetcher is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewFetcher(opts ...Option) (*Fetcher, error) {
	f := &Fetcher{timeout: DefaultFetchTimeout}
	for _, opt := range opts {
		opt(f)
	}

	manager, err := NewBrowserManager()
	if err != nil {
		return nil, novelfetch.Errorf(novelfetch.ETRANSPORT, "%v", err)
	}
	f.manager = manager
	return f, nil
}

// Fetch navigates to the URL and returns the HTML once the page has loaded.
// Every failure is returned as ETRANSPORT. HTTP status codes are not
// visible to the browser, so an error page is returned like any other.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	page, err := f.manager.Browser().Page(proto.TargetCreateTarget{})
	if err != nil {
		return "", novelfetch.Errorf(novelfetch.ETRANSPORT, "open page for %s: %v", url, err)
	}
	defer page.Close()

	page = page.Context(ctx)

	if err := page.Navigate(url); err != nil {
		return "", novelfetch.Errorf(novelfetch.ETRANSPORT, "navigate to %s: %v", url, err)
	}
	if err := page.WaitLoad(); err != nil {
		return "", novelfetch.Errorf(novelfetch.ETRANSPORT, "load %s: %v", url, err)
	}

	html, err := page.HTML()
	if err != nil {
		return "", novelfetch.Errorf(novelfetch.ETRANSPORT, "read %s: %v", url, err)
	}

	f.manager.PageDone()
	return html, nil
}

// Close releases browser resources.
func (f *Fetcher) Close() error {
	return f.manager.Close()
}

// LauncherPID returns the process ID of the browser launcher.
func (f *Fetcher) LauncherPID() int {
	return f.manager.LauncherPID()
}
