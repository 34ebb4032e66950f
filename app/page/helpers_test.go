package page

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/ohiapp/ohi-gateway/app/envelope"
)

// fakeClock collects timers and fires them when advanced past their deadline.
type fakeClock struct {
	mu     sync.Mutex
	now    time.Duration
	timers []*fakeTimer
}

type fakeTimer struct {
	deadline time.Duration
	fn       func()
	stopped  bool
	fired    bool
}

func (t *fakeTimer) Stop() bool {
	t.stopped = true
	return !t.fired
}

func newFakeClock() *fakeClock {
	return &fakeClock{}
}

func (c *fakeClock) AfterFunc(d time.Duration, fn func()) Timer {
	c.mu.Lock()
	defer c.mu.Unlock()

	timer := &fakeTimer{deadline: c.now + d, fn: fn}
	c.timers = append(c.timers, timer)
	return timer
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now += d
	var due []*fakeTimer
	for _, timer := range c.timers {
		if !timer.fired && !timer.stopped && timer.deadline <= c.now {
			timer.fired = true
			due = append(due, timer)
		}
	}
	c.mu.Unlock()

	for _, timer := range due {
		timer.fn()
	}
}

// fakeFetcher plays back configured envelopes and errors, counting calls.
type fakeFetcher struct {
	mu sync.Mutex

	userEnv    envelope.Envelope
	userErr    error
	postsEnv   map[bool]envelope.Envelope
	postsErr   map[bool]error
	storiesEnv envelope.Envelope
	storiesErr error
	brandEnv   envelope.Envelope
	brandErr   error

	calls int
}

func newFakeFetcher() *fakeFetcher {
	return &fakeFetcher{
		userEnv:    envelope.Empty(),
		postsEnv:   map[bool]envelope.Envelope{true: envelope.Empty(), false: envelope.Empty()},
		postsErr:   map[bool]error{},
		storiesEnv: envelope.Empty(),
		brandEnv:   envelope.Empty(),
	}
}

func (f *fakeFetcher) count() {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
}

func (f *fakeFetcher) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func (f *fakeFetcher) User(ctx context.Context, userID string) (envelope.Envelope, error) {
	f.count()
	return f.userEnv, f.userErr
}

func (f *fakeFetcher) Posts(ctx context.Context, userID string, brandStories bool) (envelope.Envelope, error) {
	f.count()
	return f.postsEnv[brandStories], f.postsErr[brandStories]
}

func (f *fakeFetcher) Stories(ctx context.Context, brandID string) (envelope.Envelope, error) {
	f.count()
	return f.storiesEnv, f.storiesErr
}

func (f *fakeFetcher) BrandPosts(ctx context.Context, brandID string, page, pageSize int) (envelope.Envelope, error) {
	f.count()
	return f.brandEnv, f.brandErr
}

func envelopeOf(elements ...string) envelope.Envelope {
	env := envelope.Empty()
	for _, el := range elements {
		env.Data = append(env.Data, json.RawMessage(el))
	}
	return env
}

const validProfileJSON = `{"full_name":"Gagan Sharma","is_profile_private":false,` +
	`"total_posts_count":50,"total_followers_count":7,"total_following_count":3,` +
	`"interest_details":[{"interest_id":1,"name":"Reading"}],` +
	`"profile_image":"https://x/p.jpg","user_bio":"Sab chnga C","is_business_profile":false}`
