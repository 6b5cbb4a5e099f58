// Package http fetches novel pages with plain GET requests. Pages that
// only render with JavaScript need package rod instead.
package http

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/novelfetch"
)

// DefaultFetchTimeout bounds a single request, body included.
const DefaultFetchTimeout = 10 * time.Second

// DefaultMaxBodySize caps how much of a response body is read.
const DefaultMaxBodySize = 16 << 20

var _ novelfetch.Fetcher = (*Fetcher)(nil)

// Fetcher implements novelfetch.Fetcher over net/http. It sends no
// credentials, follows redirects like the default client and never retries.
type Fetcher struct {
	client      *http.Client
	timeout     time.Duration
	maxBodySize int64
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) { f.timeout = d }
}

// WithMaxBodySize sets the largest body Fetch accepts.
func WithMaxBodySize(n int64) Option {
	return func(f *Fetcher) { f.maxBodySize = n }
}

// WithTransport sends requests through rt.
func WithTransport(rt http.RoundTripper) Option {
	return func(f *Fetcher) { f.client.Transport = rt }
}

// NewFetcher returns a Fetcher with a DefaultFetchTimeout timeout.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		client:      &http.Client{},
		timeout:     DefaultFetchTimeout,
		maxBodySize: DefaultMaxBodySize,
	}
	for _, opt := range opts {
		opt(f)
	}
	f.client.Timeout = f.timeout
	return f
}

// Fetch returns the body served at url. A canceled ctx yields the context
// error; every other failure, non-200 statuses included, is ETRANSPORT.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", novelfetch.Errorf(novelfetch.ETRANSPORT, "bad request URL %s: %v", url, err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", ctxErr
		}
		return "", novelfetch.Errorf(novelfetch.ETRANSPORT, "fetch %s: %v", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", novelfetch.Errorf(novelfetch.ETRANSPORT, "HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBodySize+1))
	switch {
	case err != nil:
		return "", novelfetch.Errorf(novelfetch.ETRANSPORT, "read %s: %v", url, err)
	case int64(len(body)) > f.maxBodySize:
		return "", novelfetch.Errorf(novelfetch.ETRANSPORT, "response from %s exceeds %d bytes", url, f.maxBodySize)
	}
	return string(body), nil
}

// Close is a no-op; the client holds no resources that need releasing.
func (f *Fetcher) Close() error {
	return nil
}
