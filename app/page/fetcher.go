package page

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/ohiapp/ohi-gateway/app/envelope"
)

// Fetcher is the proxy-endpoint surface a page orchestrator consumes. The
// error return covers transport and decoding failures; upstream-caused
// failures arrive as empty-success envelopes per the proxy contract.
type Fetcher interface {
	User(ctx context.Context, userID string) (envelope.Envelope, error)
	Posts(ctx context.Context, userID string, brandStories bool) (envelope.Envelope, error)
	Stories(ctx context.Context, brandID string) (envelope.Envelope, error)
	BrandPosts(ctx context.Context, brandID string, page, pageSize int) (envelope.Envelope, error)
}

// Client fetches envelopes from the gateway's own proxy endpoints, playing
// the role the browser plays for the original pages.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

var _ Fetcher = (*Client)(nil)

func NewClient(httpClient *http.Client, baseURL string) *Client {
	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
	}
}

func (c *Client) User(ctx context.Context, userID string) (envelope.Envelope, error) {
	return c.get(ctx, "/api/user/"+url.PathEscape(userID))
}

func (c *Client) Posts(ctx context.Context, userID string, brandStories bool) (envelope.Envelope, error) {
	path := "/api/posts/" + url.PathEscape(userID)
	if brandStories {
		path += "?brandStories=true"
	}
	return c.get(ctx, path)
}

func (c *Client) Stories(ctx context.Context, brandID string) (envelope.Envelope, error) {
	return c.get(ctx, "/api/stories/"+url.PathEscape(brandID))
}

func (c *Client) BrandPosts(ctx context.Context, brandID string, page, pageSize int) (envelope.Envelope, error) {
	return c.get(ctx, fmt.Sprintf("/api/brand-posts/%s?page=%d&pageSize=%d", url.PathEscape(brandID), page, pageSize))
}

func (c *Client) get(ctx context.Context, path string) (envelope.Envelope, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return envelope.Envelope{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return envelope.Envelope{}, fmt.Errorf("failed to fetch %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return envelope.Envelope{}, fmt.Errorf("unexpected status %d from %s", resp.StatusCode, path)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return envelope.Envelope{}, fmt.Errorf("failed to read response body: %w", err)
	}

	var env envelope.Envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return envelope.Envelope{}, fmt.Errorf("failed to decode envelope from %s: %w", path, err)
	}
	if env.Data == nil {
		env.Data = []json.RawMessage{}
	}

	return env, nil
}

// isSuccess reports whether the envelope carries a healthy upstream answer.
func isSuccess(env envelope.Envelope) bool {
	return env.StatusCode == 200 && env.Status == "success"
}
