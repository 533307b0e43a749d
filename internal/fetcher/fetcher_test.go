package fetcher_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Houeta/price-scout/internal/fetcher"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestFetch_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("<html><body>listing</body></html>"))
	}))
	defer server.Close()

	f := fetcher.New(noopLogger(), 0, 0)

	body, err := f.Fetch(context.Background(), server.URL)

	require.NoError(t, err)
	assert.Contains(t, body, "listing")
}

func TestFetch_RetriesThenSucceeds(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte("recovered"))
	}))
	defer server.Close()

	f := fetcher.New(noopLogger(), 0, 1)

	body, err := f.Fetch(context.Background(), server.URL)

	require.NoError(t, err)
	assert.Equal(t, "recovered", body)
	assert.Equal(t, int32(2), calls.Load())
}

func TestFetch_FailureAfterRetries(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	f := fetcher.New(noopLogger(), 0, 1)

	// The failure comes back as an error value, never a panic.
	_, err := f.Fetch(context.Background(), server.URL)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
	assert.Equal(t, int32(2), calls.Load(), "initial attempt plus one retry")
}

func TestFetch_ConnectionError(t *testing.T) {
	f := fetcher.New(noopLogger(), 0, 0)

	_, err := f.Fetch(context.Background(), "http://127.0.0.1:1/unreachable")

	require.Error(t, err)
}

func TestFetch_RateLimitSpacing(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("ok"))
	}))
	defer server.Close()

	const rateLimit = 150 * time.Millisecond
	f := fetcher.New(noopLogger(), rateLimit, 0)

	_, err := f.Fetch(context.Background(), server.URL)
	require.NoError(t, err)

	start := time.Now()
	_, err = f.Fetch(context.Background(), server.URL)
	require.NoError(t, err)

	assert.GreaterOrEqual(t, time.Since(start), rateLimit-10*time.Millisecond,
		"second request must wait out the rate-limit window")
}
