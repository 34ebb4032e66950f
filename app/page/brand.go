package page

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/ohiapp/ohi-gateway/app/envelope"
)

const brandPostsPageSize = 20

// BrandOrchestrator drives the brand page: stories and brand posts are
// fetched concurrently, each call's failure is absorbed locally as an empty
// result, and the login modal is armed once the pair settles.
type BrandOrchestrator struct {
	fetcher    Fetcher
	clock      Clock
	modalDelay time.Duration

	mu    sync.Mutex
	state State
}

func NewBrandOrchestrator(fetcher Fetcher, clock Clock, modalDelay time.Duration) *BrandOrchestrator {
	if clock == nil {
		clock = SystemClock
	}
	return &BrandOrchestrator{
		fetcher:    fetcher,
		clock:      clock,
		modalDelay: modalDelay,
		state:      NewState(),
	}
}

// Load fetches the brand page data. In-flight results from a previous Load
// are not canceled; the last writer wins.
func (o *BrandOrchestrator) Load(ctx context.Context, brandID string) {
	o.Dispatch(FetchStarted{})

	var stories []envelope.Story
	var posts []envelope.BrandPost

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		env, err := o.fetcher.Stories(gctx, brandID)
		if err != nil {
			slog.Warn("Brand stories fetch failed", "brand", brandID, "error", err)
			return nil
		}
		if !isSuccess(env) {
			slog.Warn("Brand stories envelope not successful", "brand", brandID, "status", env.Status)
			return nil
		}
		stories = envelope.DecodeStories(env)
		return nil
	})
	g.Go(func() error {
		env, err := o.fetcher.BrandPosts(gctx, brandID, 0, brandPostsPageSize)
		if err != nil {
			slog.Warn("Brand posts fetch failed", "brand", brandID, "error", err)
			return nil
		}
		if !isSuccess(env) {
			slog.Warn("Brand posts envelope not successful", "brand", brandID, "status", env.Status)
			return nil
		}
		posts = envelope.DecodeBrandPosts(env)
		return nil
	})
	g.Wait()

	if stories == nil {
		stories = []envelope.Story{}
	}
	if posts == nil {
		posts = []envelope.BrandPost{}
	}

	o.Dispatch(FetchSucceeded{Payload: Payload{Stories: stories, BrandPosts: posts}})
	o.armModalTimer()
}

// Dispatch applies an event to the page state.
func (o *BrandOrchestrator) Dispatch(e Event) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.state = Reduce(o.state, e)
}

// Click reports the first user interaction on the page surface.
func (o *BrandOrchestrator) Click() {
	o.Dispatch(UserClicked{})
}

func (o *BrandOrchestrator) CloseModal() {
	o.Dispatch(ModalClosed{})
}

// State returns a snapshot of the current page state.
func (o *BrandOrchestrator) State() State {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}

func (o *BrandOrchestrator) armModalTimer() {
	if o.modalDelay <= 0 {
		return
	}
	o.clock.AfterFunc(o.modalDelay, func() {
		o.Dispatch(TimerFired{})
	})
}
