package api

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ohiapp/ohi-gateway/app/upstream"
)

func NewHandler(client UpstreamClientInterface, normalizer NormalizerInterface, cacheTTL time.Duration) *Handler {
	return &Handler{
		client:     client,
		normalizer: normalizer,
		cacheTTL:   cacheTTL,
	}
}

// GetUser proxies GET /api/user/:userId.
func (h *Handler) GetUser(c *gin.Context) {
	userID, ok := requireID(c, "userId")
	if !ok {
		return
	}

	h.proxy(c, upstream.Request{
		Kind:      upstream.UserProfile,
		ID:        userID,
		CacheHint: upstream.Revalidate(h.cacheTTL),
	})
}

// GetPosts proxies GET /api/posts/:userId. The optional brandStories flag is
// forwarded verbatim; the upstream interprets it, not this proxy.
func (h *Handler) GetPosts(c *gin.Context) {
	userID, ok := requireID(c, "userId")
	if !ok {
		return
	}

	h.proxy(c, upstream.Request{
		Kind:      upstream.PostsForUser,
		ID:        userID,
		Query:     forwardParams(c, "brandStories"),
		CacheHint: upstream.Revalidate(h.cacheTTL),
	})
}

// GetStories proxies GET /api/stories/:brandId.
func (h *Handler) GetStories(c *gin.Context) {
	brandID, ok := requireID(c, "brandId")
	if !ok {
		return
	}

	h.proxy(c, upstream.Request{
		Kind:      upstream.StoriesForBrand,
		ID:        brandID,
		Query:     forwardParams(c, "page", "pageSize", "shortStoriesForLast24Hrs"),
		CacheHint: upstream.Revalidate(h.cacheTTL),
	})
}

// GetBrandPosts proxies GET /api/brand-posts/:brandId. The upstream is known
// to answer 500 when its purchased-posts record is null, so this endpoint is
// the reason the empty-success envelope exists; it never caches.
func (h *Handler) GetBrandPosts(c *gin.Context) {
	brandID, ok := requireID(c, "brandId")
	if !ok {
		return
	}

	h.proxy(c, upstream.Request{
		Kind:      upstream.BrandPosts,
		ID:        brandID,
		Query:     forwardParams(c, "page", "pageSize"),
		CacheHint: upstream.NoStore(),
	})
}

// proxy runs one upstream call through the normalizer and always answers 200
// with the envelope, whatever the upstream did.
func (h *Handler) proxy(c *gin.Context, req upstream.Request) {
	res, err := h.client.Do(c.Request.Context(), req)
	env := h.normalizer.Run(res, err)
	c.JSON(http.StatusOK, env)
}

// requireID rejects blank path identifiers with a 400 before any upstream
// call is made.
func requireID(c *gin.Context, name string) (string, bool) {
	id := strings.TrimSpace(c.Param(name))
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing " + name + " parameter"})
		return "", false
	}
	return id, true
}

// forwardParams copies only the listed query parameters that are present on
// the inbound request. Absent parameters stay absent upstream.
func forwardParams(c *gin.Context, names ...string) url.Values {
	inbound := c.Request.URL.Query()
	outbound := url.Values{}
	for _, name := range names {
		if inbound.Has(name) {
			outbound.Set(name, inbound.Get(name))
		}
	}
	return outbound
}

func (h *Handler) GetHealth(c *gin.Context) {
	health := map[string]interface{}{
		"timestamp": time.Now().In(time.Local).Format(time.RFC3339),
	}

	c.JSON(http.StatusOK, health)
}
