package page

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/ohiapp/ohi-gateway/app/demo"
	"github.com/ohiapp/ohi-gateway/app/envelope"
)

const demoDisabledHint = "The profile service could not be reached. Try again later, " +
	"or run the gateway with demo mode enabled to serve placeholder data."

// ProfileOrchestrator drives the profile page: user profile, brand-story
// posts and all posts are fetched concurrently. If any of the three calls
// fails, the whole triple is discarded and replaced with the demo fixture
// when demo mode is enabled, or an error state otherwise.
type ProfileOrchestrator struct {
	fetcher    Fetcher
	fixture    *demo.Fixture
	demoMode   bool
	clock      Clock
	modalDelay time.Duration

	mu    sync.Mutex
	state State
}

func NewProfileOrchestrator(fetcher Fetcher, fixture *demo.Fixture, demoMode bool, clock Clock, modalDelay time.Duration) *ProfileOrchestrator {
	if clock == nil {
		clock = SystemClock
	}
	if fixture == nil {
		fixture = demo.Default()
	}
	return &ProfileOrchestrator{
		fetcher:    fetcher,
		fixture:    fixture,
		demoMode:   demoMode,
		clock:      clock,
		modalDelay: modalDelay,
		state:      NewState(),
	}
}

// Load fetches the profile page data. In-flight results from a previous Load
// are not canceled; the last writer wins.
func (o *ProfileOrchestrator) Load(ctx context.Context, userID string) {
	o.Dispatch(FetchStarted{})

	var user *envelope.UserProfile
	var brandStories, allPosts []string

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		env, err := o.fetcher.User(gctx, userID)
		if err != nil {
			return err
		}
		if !isSuccess(env) {
			return fmt.Errorf("user envelope not successful: %s", env.Status)
		}
		profile, err := envelope.DecodeUserProfile(env)
		if err != nil {
			return err
		}
		user = profile
		return nil
	})
	g.Go(func() error {
		env, err := o.fetcher.Posts(gctx, userID, true)
		if err != nil {
			return err
		}
		brandStories = envelope.DecodePostURLs(env)
		return nil
	})
	g.Go(func() error {
		env, err := o.fetcher.Posts(gctx, userID, false)
		if err != nil {
			return err
		}
		allPosts = envelope.DecodePostURLs(env)
		return nil
	})

	if err := g.Wait(); err != nil {
		if o.demoMode {
			slog.Warn("Profile fetch failed, substituting demo data", "user", userID, "error", err)
			o.Dispatch(FetchSucceeded{Payload: Payload{
				User:         &o.fixture.User,
				BrandStories: o.fixture.BrandStories,
				AllPosts:     o.fixture.BrandStories,
				Demo:         true,
			}})
		} else {
			slog.Error("Profile fetch failed", "user", userID, "error", err)
			o.Dispatch(FetchFailed{Err: err, Hint: demoDisabledHint})
		}
	} else {
		o.Dispatch(FetchSucceeded{Payload: Payload{
			User:         user,
			BrandStories: brandStories,
			AllPosts:     allPosts,
		}})
	}

	o.armModalTimer()
}

// Dispatch applies an event to the page state.
func (o *ProfileOrchestrator) Dispatch(e Event) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.state = Reduce(o.state, e)
}

// SwitchTab changes which already-fetched post array is displayed. It never
// triggers a new fetch.
func (o *ProfileOrchestrator) SwitchTab(tab Tab) {
	o.Dispatch(TabChanged{Tab: tab})
}

// Click reports the first user interaction on the page surface.
func (o *ProfileOrchestrator) Click() {
	o.Dispatch(UserClicked{})
}

func (o *ProfileOrchestrator) CloseModal() {
	o.Dispatch(ModalClosed{})
}

// State returns a snapshot of the current page state.
func (o *ProfileOrchestrator) State() State {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}

func (o *ProfileOrchestrator) armModalTimer() {
	if o.modalDelay <= 0 {
		return
	}
	o.clock.AfterFunc(o.modalDelay, func() {
		o.Dispatch(TimerFired{})
	})
}
