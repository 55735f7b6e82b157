package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/mvetrov/assetmart-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type countingHandler struct {
	calls atomic.Int64
	delay time.Duration
	body  string
}

func (h *countingHandler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	h.calls.Add(1)
	if h.delay > 0 {
		time.Sleep(h.delay)
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(h.body))
}

func TestGetJSONDeduplicatesConcurrentReads(t *testing.T) {
	handler := &countingHandler{delay: 50 * time.Millisecond, body: `{"value":42}`}
	server := httptest.NewServer(handler)
	defer server.Close()

	client := New(server.URL, server.Client(), nil, zap.NewNop())

	var wg sync.WaitGroup
	results := make([]map[string]int, 5)
	errs := make([]error, 5)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = client.GetJSON(context.Background(), "listings", nil, &results[i], QueryOptions{})
		}(i)
	}
	wg.Wait()

	assert.EqualValues(t, 1, handler.calls.Load())
	for i := range results {
		require.NoError(t, errs[i])
		assert.Equal(t, map[string]int{"value": 42}, results[i])
	}
}

func TestGetJSONCachesSequentialReads(t *testing.T) {
	handler := &countingHandler{body: `{"value":1}`}
	server := httptest.NewServer(handler)
	defer server.Close()

	client := New(server.URL, server.Client(), nil, zap.NewNop())

	var first, second map[string]int
	require.NoError(t, client.GetJSON(context.Background(), "listings", nil, &first, QueryOptions{}))
	require.NoError(t, client.GetJSON(context.Background(), "listings", nil, &second, QueryOptions{}))

	assert.EqualValues(t, 1, handler.calls.Load())
	assert.Equal(t, first, second)
}

func TestGetJSONFreshBypassesCache(t *testing.T) {
	handler := &countingHandler{body: `{"value":1}`}
	server := httptest.NewServer(handler)
	defer server.Close()

	client := New(server.URL, server.Client(), nil, zap.NewNop())

	var out map[string]int
	require.NoError(t, client.GetJSON(context.Background(), "listings", nil, &out, QueryOptions{}))
	require.NoError(t, client.GetJSON(context.Background(), "listings", nil, &out, QueryOptions{Fresh: true}))

	assert.EqualValues(t, 2, handler.calls.Load())
}

func TestGetJSONSkipMakesNoCall(t *testing.T) {
	handler := &countingHandler{body: `{"value":1}`}
	server := httptest.NewServer(handler)
	defer server.Close()

	client := New(server.URL, server.Client(), nil, zap.NewNop())

	out := map[string]int{"untouched": 1}
	require.NoError(t, client.GetJSON(context.Background(), "listings", nil, &out, QueryOptions{Skip: true}))

	assert.Zero(t, handler.calls.Load())
	assert.Equal(t, map[string]int{"untouched": 1}, out)
}

func TestGetJSONCacheKeyIgnoresArgumentOrder(t *testing.T) {
	handler := &countingHandler{body: `{"value":1}`}
	server := httptest.NewServer(handler)
	defer server.Close()

	client := New(server.URL, server.Client(), nil, zap.NewNop())

	first := url.Values{}
	first.Set("page", "2")
	first.Set("page_size", "10")
	second := url.Values{}
	second.Set("page_size", "10")
	second.Set("page", "2")

	var out map[string]int
	require.NoError(t, client.GetJSON(context.Background(), "listings", first, &out, QueryOptions{}))
	require.NoError(t, client.GetJSON(context.Background(), "listings", second, &out, QueryOptions{}))

	assert.EqualValues(t, 1, handler.calls.Load())
}

func TestMutationInvalidatesMatchingTag(t *testing.T) {
	var gets atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			gets.Add(1)
		}
		_, _ = w.Write([]byte(`{"value":1}`))
	}))
	defer server.Close()

	client := New(server.URL, server.Client(), nil, zap.NewNop())

	var out map[string]int
	require.NoError(t, client.GetJSON(context.Background(), "listings", nil, &out, QueryOptions{}))
	require.NoError(t, client.GetJSON(context.Background(), "offers", nil, &out, QueryOptions{}))
	require.NoError(t, client.PostJSON(context.Background(), "listings", map[string]string{"title": "x"}, nil, "listings"))

	// Only the listings entry was dropped; offers stays cached.
	require.NoError(t, client.GetJSON(context.Background(), "listings", nil, &out, QueryOptions{}))
	require.NoError(t, client.GetJSON(context.Background(), "offers", nil, &out, QueryOptions{}))

	assert.EqualValues(t, 3, gets.Load())
}

func TestRequestsCarryBearerToken(t *testing.T) {
	var authorization string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authorization = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := New(server.URL, server.Client(), func() string { return "session-token" }, zap.NewNop())

	require.NoError(t, client.GetJSON(context.Background(), "auth/me", nil, nil, QueryOptions{Fresh: true}))
	assert.Equal(t, "Bearer session-token", authorization)
}

func TestAnonymousRequestsOmitAuthorization(t *testing.T) {
	var authorization string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authorization = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := New(server.URL, server.Client(), nil, zap.NewNop())

	require.NoError(t, client.GetJSON(context.Background(), "faqs", nil, nil, QueryOptions{}))
	assert.Empty(t, authorization)
}

func TestRejectedRequestsReturnNormalizedError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"detail":"token expired"}`))
	}))
	defer server.Close()

	client := New(server.URL, server.Client(), nil, zap.NewNop())

	err := client.GetJSON(context.Background(), "auth/me", nil, nil, QueryOptions{Fresh: true})
	require.Error(t, err)

	var normalized *domain.NormalizedError
	require.True(t, errors.As(err, &normalized))
	assert.Equal(t, "token expired", normalized.Message)
	assert.True(t, normalized.Unauthorized())
}

func TestFailedReadsAreNotCached(t *testing.T) {
	var calls atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte(`{"value":1}`))
	}))
	defer server.Close()

	client := New(server.URL, server.Client(), nil, zap.NewNop())

	var out map[string]int
	require.Error(t, client.GetJSON(context.Background(), "listings", nil, &out, QueryOptions{}))
	require.NoError(t, client.GetJSON(context.Background(), "listings", nil, &out, QueryOptions{}))

	assert.EqualValues(t, 2, calls.Load())
	assert.Equal(t, map[string]int{"value": 1}, out)
}
