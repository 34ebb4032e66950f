package upstream

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/ohiapp/ohi-gateway/app/cache"
)

// Client performs GET requests against the configured upstream base URL.
// It issues exactly one request per call, without retries, and honors
// revalidate cache hints through the shared response cache.
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	cache      *cache.ResponseCache
}

func NewClient(httpClient *http.Client, baseURL, userAgent string, responseCache *cache.ResponseCache) *Client {
	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		userAgent:  userAgent,
		cache:      responseCache,
	}
}

// Do executes the upstream request. Non-2xx responses are returned as a
// Result; the error return covers transport failures only.
func (c *Client) Do(ctx context.Context, req Request) (*Result, error) {
	target, err := c.buildURL(req)
	if err != nil {
		return nil, err
	}

	if req.CacheHint.Mode == CacheRevalidate && c.cache != nil {
		if entry, ok := c.cache.Get(target); ok {
			slog.Debug("Serving upstream response from cache", "kind", req.Kind.String(), "url", target)
			return &Result{StatusCode: entry.StatusCode, Body: entry.Body}, nil
		}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", req.Kind.String(), err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		slog.Warn("Upstream returned non-2xx status",
			"kind", req.Kind.String(),
			"id", req.ID,
			"status", resp.StatusCode)
	} else if req.CacheHint.Mode == CacheRevalidate && c.cache != nil {
		c.cache.Set(target, cache.Entry{StatusCode: resp.StatusCode, Body: body}, req.CacheHint.MaxAge)
	}

	return &Result{StatusCode: resp.StatusCode, Body: body}, nil
}

// buildURL joins the base URL, resource path, identifier and only the query
// parameters present on the request.
func (c *Client) buildURL(req Request) (string, error) {
	if req.ID == "" {
		return "", fmt.Errorf("missing identifier for %s request", req.Kind.String())
	}

	target := fmt.Sprintf("%s/%s/%s", c.baseURL, req.Kind.path(), url.PathEscape(req.ID))
	if len(req.Query) > 0 {
		target += "?" + req.Query.Encode()
	}
	return target, nil
}
