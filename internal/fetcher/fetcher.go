package fetcher

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
)

const requestTimeout = 10 * time.Second

// PageFetcher fetches one listing page and returns its HTML body.
type PageFetcher interface {
	Fetch(ctx context.Context, pageURL string) (string, error)
}

// Fetcher is a rate-limited HTTP client. A single instance represents one
// logical client: the inter-request spacing is enforced across all Fetch
// calls, measured from the end of the previous request to the start of the
// next one.
type Fetcher struct {
	log       *slog.Logger
	client    *resty.Client
	rateLimit time.Duration

	mu       sync.Mutex
	lastDone time.Time
}

// New creates a Fetcher that waits at least rateLimit between requests and
// retries failed requests up to maxRetries times with exponential backoff
// (2^attempt seconds). Timeouts, connection errors and non-2xx statuses all
// count as failures.
func New(log *slog.Logger, rateLimit time.Duration, maxRetries int) *Fetcher {
	client := resty.New()
	client.SetTimeout(requestTimeout)
	client.SetHeaders(map[string]string{
		"User-Agent":      "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36",
		"Accept":          "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8",
		"Accept-Language": "fr-FR,fr;q=0.9,en;q=0.8",
	})
	client.SetRetryCount(maxRetries)
	client.AddRetryCondition(func(resp *resty.Response, err error) bool {
		return err != nil || !resp.IsSuccess()
	})
	client.SetRetryAfter(func(_ *resty.Client, resp *resty.Response) (time.Duration, error) {
		// Attempt is 1-based, so the waits come out as 1s, 2s, 4s, ...
		return time.Duration(1<<uint(resp.Request.Attempt-1)) * time.Second, nil
	})

	return &Fetcher{log: log, client: client, rateLimit: rateLimit}
}

// Fetch issues a GET request for the page and returns the response body.
// After exhausting retries it returns an error, never panics, so the caller
// can record a per-page failure and move on.
func (f *Fetcher) Fetch(ctx context.Context, pageURL string) (string, error) {
	const opn = "fetcher.Fetch"

	f.waitTurn(ctx)

	resp, err := f.client.R().SetContext(ctx).Get(pageURL)
	f.markDone()

	if err != nil {
		return "", fmt.Errorf("%s: request failed after retries: %w", opn, err)
	}
	if !resp.IsSuccess() {
		return "", fmt.Errorf("%s: status code error: [%d] %s", opn, resp.StatusCode(), resp.Status())
	}

	f.log.DebugContext(ctx, "Successfully fetched page", "url", pageURL, "bytes", len(resp.Body()))

	return string(resp.Body()), nil
}

// waitTurn suspends until the rate-limit window since the previous request
// has elapsed.
func (f *Fetcher) waitTurn(ctx context.Context) {
	f.mu.Lock()
	last := f.lastDone
	f.mu.Unlock()

	if last.IsZero() {
		return
	}

	remaining := f.rateLimit - time.Since(last)
	if remaining <= 0 {
		return
	}

	select {
	case <-time.After(remaining):
	case <-ctx.Done():
	}
}

func (f *Fetcher) markDone() {
	f.mu.Lock()
	f.lastDone = time.Now()
	f.mu.Unlock()
}
