package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/mvetrov/assetmart-cli/internal/ports"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const maxResponseBytes = 1 << 20

// QueryOptions tune a single cached read.
type QueryOptions struct {
	// Skip suppresses the call entirely; the output value is left untouched.
	// Used for endpoints that require a token when none is held.
	Skip bool
	// Fresh bypasses the result cache but still de-duplicates against
	// identical in-flight calls.
	Fresh bool
}

type cacheEntry struct {
	body []byte
	tag  string
}

// Client is the transport layer: it attaches the current session token,
// collapses identical concurrent reads into one network call, caches read
// results until a mutation invalidates their tag, and normalizes every
// failure before it escapes. It performs no retries.
type Client struct {
	baseURL string
	doer    ports.Doer
	token   func() string
	logger  *zap.Logger

	group singleflight.Group
	mu    sync.RWMutex
	cache map[string]cacheEntry
}

func New(baseURL string, doer ports.Doer, token func() string, logger *zap.Logger) *Client {
	if doer == nil {
		doer = http.DefaultClient
	}
	if token == nil {
		token = func() string { return "" }
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		doer:    doer,
		token:   token,
		logger:  logger,
		cache:   map[string]cacheEntry{},
	}
}

// GetJSON performs a cached read. The cache key is the endpoint plus the
// stable (sorted-key) encoding of args, so argument order never splits the
// cache. Concurrent callers with the same key share one in-flight request and
// receive the same payload or the same normalized error.
func (c *Client) GetJSON(ctx context.Context, endpoint string, args url.Values, out any, opts QueryOptions) error {
	if opts.Skip {
		return nil
	}

	key := cacheKey(endpoint, args)

	if !opts.Fresh {
		if body, ok := c.cached(key); ok {
			return decodeInto(body, out)
		}
	}

	// The request runs on the first caller's context; followers share its
	// outcome.
	value, err, shared := c.group.Do(key, func() (any, error) {
		body, err := c.do(ctx, http.MethodGet, requestPath(endpoint, args), nil)
		if err != nil {
			return nil, err
		}

		if !opts.Fresh {
			c.store(key, tagOf(endpoint), body)
		}

		return body, nil
	})
	if err != nil {
		return err
	}
	if shared {
		c.logger.Debug("request de-duplicated", zap.String("key", key))
	}

	return decodeInto(value.([]byte), out)
}

func (c *Client) PostJSON(ctx context.Context, endpoint string, in, out any, tags ...string) error {
	return c.mutate(ctx, http.MethodPost, endpoint, in, out, tags)
}

func (c *Client) PutJSON(ctx context.Context, endpoint string, in, out any, tags ...string) error {
	return c.mutate(ctx, http.MethodPut, endpoint, in, out, tags)
}

func (c *Client) DeleteJSON(ctx context.Context, endpoint string, out any, tags ...string) error {
	return c.mutate(ctx, http.MethodDelete, endpoint, nil, out, tags)
}

// Invalidate drops every cached read whose tag matches, so the next read of
// that resource refetches.
func (c *Client) Invalidate(tags ...string) {
	if len(tags) == 0 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for key, entry := range c.cache {
		for _, tag := range tags {
			if entry.tag == tag {
				delete(c.cache, key)
				break
			}
		}
	}
}

func (c *Client) mutate(ctx context.Context, method, endpoint string, in, out any, tags []string) error {
	var body io.Reader
	if in != nil {
		encoded, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		body = bytes.NewReader(encoded)
	}

	payload, err := c.do(ctx, method, endpoint, body)
	if err != nil {
		return err
	}

	c.Invalidate(tags...)

	return decodeInto(payload, out)
}

func (c *Client) do(ctx context.Context, method, endpoint string, body io.Reader) ([]byte, error) {
	request, err := http.NewRequestWithContext(ctx, method, c.baseURL+"/"+strings.TrimLeft(endpoint, "/"), body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	request.Header.Set("Accept", "application/json")
	if body != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	if token := c.token(); token != "" {
		request.Header.Set("Authorization", "Bearer "+token)
	}

	response, err := c.doer.Do(request)
	if err != nil {
		c.logger.Debug("request failed", zap.String("endpoint", endpoint), zap.Error(err))
		return nil, NormalizeTransport(err)
	}
	defer func() { _ = response.Body.Close() }()

	payload, err := io.ReadAll(io.LimitReader(response.Body, maxResponseBytes))
	if err != nil {
		c.logger.Debug("read response failed", zap.String("endpoint", endpoint), zap.Error(err))
		return nil, NormalizeTransport(err)
	}

	if response.StatusCode < 200 || response.StatusCode > 299 {
		normalized := Normalize(response.StatusCode, payload)
		c.logger.Debug("request rejected",
			zap.String("endpoint", endpoint),
			zap.Int("status", response.StatusCode),
			zap.String("message", normalized.Message))
		return nil, normalized
	}

	return payload, nil
}

func (c *Client) cached(key string) ([]byte, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.cache[key]
	return entry.body, ok
}

func (c *Client) store(key, tag string, body []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cache[key] = cacheEntry{body: body, tag: tag}
}

func decodeInto(body []byte, out any) error {
	if out == nil || len(body) == 0 {
		return nil
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}

func cacheKey(endpoint string, args url.Values) string {
	if len(args) == 0 {
		return endpoint
	}

	// url.Values.Encode sorts keys, which makes the serialization stable.
	return endpoint + "?" + args.Encode()
}

func requestPath(endpoint string, args url.Values) string {
	if len(args) == 0 {
		return endpoint
	}

	return endpoint + "?" + args.Encode()
}

func tagOf(endpoint string) string {
	if i := strings.IndexByte(endpoint, '/'); i > 0 {
		return endpoint[:i]
	}

	return endpoint
}
