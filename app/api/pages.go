package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ohiapp/ohi-gateway/app/demo"
	"github.com/ohiapp/ohi-gateway/app/envelope"
	"github.com/ohiapp/ohi-gateway/app/page"
	"github.com/ohiapp/ohi-gateway/app/upstream"
)

// localFetcher satisfies page.Fetcher in-process: it runs the same upstream
// call plus normalization the proxy endpoints run, without a loopback HTTP
// hop.
type localFetcher struct {
	client     UpstreamClientInterface
	normalizer NormalizerInterface
	cacheTTL   time.Duration
}

var _ page.Fetcher = (*localFetcher)(nil)

func (f *localFetcher) User(ctx context.Context, userID string) (envelope.Envelope, error) {
	res, err := f.client.Do(ctx, upstream.Request{
		Kind:      upstream.UserProfile,
		ID:        userID,
		CacheHint: upstream.Revalidate(f.cacheTTL),
	})
	return f.normalizer.Run(res, err), err
}

func (f *localFetcher) Posts(ctx context.Context, userID string, brandStories bool) (envelope.Envelope, error) {
	query := url.Values{}
	if brandStories {
		query.Set("brandStories", "true")
	}
	res, err := f.client.Do(ctx, upstream.Request{
		Kind:      upstream.PostsForUser,
		ID:        userID,
		Query:     query,
		CacheHint: upstream.Revalidate(f.cacheTTL),
	})
	return f.normalizer.Run(res, err), err
}

func (f *localFetcher) Stories(ctx context.Context, brandID string) (envelope.Envelope, error) {
	res, err := f.client.Do(ctx, upstream.Request{
		Kind:      upstream.StoriesForBrand,
		ID:        brandID,
		CacheHint: upstream.Revalidate(f.cacheTTL),
	})
	return f.normalizer.Run(res, err), err
}

func (f *localFetcher) BrandPosts(ctx context.Context, brandID string, pageNum, pageSize int) (envelope.Envelope, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(pageNum))
	query.Set("pageSize", strconv.Itoa(pageSize))
	res, err := f.client.Do(ctx, upstream.Request{
		Kind:      upstream.BrandPosts,
		ID:        brandID,
		Query:     query,
		CacheHint: upstream.NoStore(),
	})
	return f.normalizer.Run(res, err), err
}

// PageHandler serves pre-orchestrated page view state, one orchestrator per
// request. The login-modal timer belongs to a live page mount, so it is not
// armed here.
type PageHandler struct {
	fetcher  page.Fetcher
	fixture  *demo.Fixture
	demoMode bool
}

func NewPageHandler(client UpstreamClientInterface, normalizer NormalizerInterface,
	cacheTTL time.Duration, fixture *demo.Fixture, demoMode bool) *PageHandler {
	return &PageHandler{
		fetcher:  &localFetcher{client: client, normalizer: normalizer, cacheTTL: cacheTTL},
		fixture:  fixture,
		demoMode: demoMode,
	}
}

// GetBrandPage serves GET /pages/brand/:brandId.
func (h *PageHandler) GetBrandPage(c *gin.Context) {
	brandID, ok := requireID(c, "brandId")
	if !ok {
		return
	}

	o := page.NewBrandOrchestrator(h.fetcher, nil, 0)
	o.Load(c.Request.Context(), brandID)
	s := o.State()

	c.JSON(http.StatusOK, gin.H{
		"brand_id":           brandID,
		"brand_name":         s.BrandName,
		"display_brand_name": page.DisplayBrandName(s),
		"stories":            s.Stories,
		"brand_posts":        s.BrandPosts,
		"brand_hosts":        page.BrandHosts(s, h.fixture.BrandHosts),
	})
}

// GetProfilePage serves GET /pages/profile/:userId. An optional tab query
// parameter selects which fetched post array is sliced for display.
func (h *PageHandler) GetProfilePage(c *gin.Context) {
	userID, ok := requireID(c, "userId")
	if !ok {
		return
	}

	o := page.NewProfileOrchestrator(h.fetcher, h.fixture, h.demoMode, nil, 0)
	o.Load(c.Request.Context(), userID)

	if c.Query("tab") == string(page.TabAll) {
		o.SwitchTab(page.TabAll)
	}
	s := o.State()

	if s.Err != "" {
		c.JSON(http.StatusOK, gin.H{
			"user_id":    userID,
			"error":      s.Err,
			"error_hint": s.ErrHint,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user_id":         userID,
		"title":           page.Title(s),
		"user":            s.User,
		"current_tab":     s.CurrentTab,
		"visible_posts":   page.VisiblePosts(s),
		"using_demo_data": s.UsingDemoData,
	})
}
