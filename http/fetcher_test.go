package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fwojciec/navdoc"
	navhttp "github.com/fwojciec/navdoc/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("returns body from server", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/markdown")
			_, _ = w.Write([]byte("# Intro\n\nHello World"))
		}))
		defer server.Close()

		fetcher := navhttp.NewFetcher()
		defer fetcher.Close()

		body, err := fetcher.Fetch(context.Background(), server.URL+"/intro.md")
		require.NoError(t, err)
		assert.Equal(t, "# Intro\n\nHello World", body)
	})

	t.Run("respects custom timeout option", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(100 * time.Millisecond)
			_, _ = w.Write([]byte("response"))
		}))
		defer server.Close()

		// Use a very short timeout that will expire before server responds
		fetcher := navhttp.NewFetcher(navhttp.WithTimeout(10 * time.Millisecond))
		defer fetcher.Close()

		_, err := fetcher.Fetch(context.Background(), server.URL)
		require.Error(t, err)
		assert.NotEqual(t, navdoc.EUNAVAILABLE, navdoc.ErrorCode(err), "timeouts are transport errors")
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(100 * time.Millisecond)
			_, _ = w.Write([]byte("response"))
		}))
		defer server.Close()

		fetcher := navhttp.NewFetcher()
		defer fetcher.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel() // Cancel immediately

		_, err := fetcher.Fetch(ctx, server.URL)
		require.Error(t, err)
	})

	t.Run("returns transport error for non-existent host", func(t *testing.T) {
		t.Parallel()

		fetcher := navhttp.NewFetcher(navhttp.WithTimeout(100 * time.Millisecond))
		defer fetcher.Close()

		_, err := fetcher.Fetch(context.Background(), "http://non-existent-host.invalid/page.md")
		require.Error(t, err)
		assert.Equal(t, navdoc.EINTERNAL, navdoc.ErrorCode(err))
	})

	t.Run("returns unavailable error for non-200 status codes", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = w.Write([]byte("slow down"))
		}))
		defer server.Close()

		fetcher := navhttp.NewFetcher()
		defer fetcher.Close()

		_, err := fetcher.Fetch(context.Background(), server.URL)
		require.Error(t, err)
		assert.Equal(t, navdoc.EUNAVAILABLE, navdoc.ErrorCode(err))
		assert.Contains(t, err.Error(), "429")
	})

	t.Run("routes requests through the proxy", func(t *testing.T) {
		t.Parallel()

		// Given: a proxy that answers every request itself
		var proxied atomic.Int32
		proxy := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			proxied.Add(1)
			assert.Equal(t, "docs.example.test", r.Host)
			_, _ = w.Write([]byte("via proxy"))
		}))
		defer proxy.Close()

		proxyURL, err := url.Parse(proxy.URL)
		require.NoError(t, err)

		fetcher := navhttp.NewFetcher(navhttp.WithProxy(proxyURL))
		defer fetcher.Close()

		// When: fetching a host that does not resolve
		body, err := fetcher.Fetch(context.Background(), "http://docs.example.test/intro.md")

		// Then: the proxy served the request
		require.NoError(t, err)
		assert.Equal(t, "via proxy", body)
		assert.Equal(t, int32(1), proxied.Load())
	})
}
