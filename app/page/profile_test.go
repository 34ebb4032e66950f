package page

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ohiapp/ohi-gateway/app/demo"
)

func TestProfileLoadSuccess(t *testing.T) {
	fetcher := newFakeFetcher()
	fetcher.userEnv = envelopeOf(validProfileJSON)
	fetcher.postsEnv[true] = envelopeOf(`"https://x/b1.jpg"`, `"https://x/b2.jpg"`)
	fetcher.postsEnv[false] = envelopeOf(`"https://x/a1.jpg"`)

	o := NewProfileOrchestrator(fetcher, demo.Default(), true, newFakeClock(), 30*time.Second)
	o.Load(context.Background(), "1174158")

	s := o.State()
	require.False(t, s.Loading)
	require.False(t, s.UsingDemoData)
	require.NotNil(t, s.User)
	require.Equal(t, "Gagan Sharma", s.User.FullName)
	require.Equal(t, []string{"https://x/b1.jpg", "https://x/b2.jpg"}, s.BrandStories)
	require.Equal(t, []string{"https://x/a1.jpg"}, s.AllPosts)
	require.Equal(t, TabBrand, s.CurrentTab)
}

func TestProfileAnyFailureTriggersDemoFallback(t *testing.T) {
	cases := []struct {
		name  string
		wire  func(f *fakeFetcher)
	}{
		{"user call fails", func(f *fakeFetcher) { f.userErr = errors.New("dial tcp: refused") }},
		{"brand posts call fails", func(f *fakeFetcher) { f.postsErr[true] = errors.New("dial tcp: refused") }},
		{"all posts call fails", func(f *fakeFetcher) { f.postsErr[false] = errors.New("dial tcp: refused") }},
		{"user profile missing from data", func(f *fakeFetcher) {}}, // empty user envelope
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fetcher := newFakeFetcher()
			fetcher.postsEnv[true] = envelopeOf(`"https://x/real.jpg"`)
			tc.wire(fetcher)

			o := NewProfileOrchestrator(fetcher, demo.Default(), true, newFakeClock(), 30*time.Second)
			o.Load(context.Background(), "999")

			s := o.State()
			require.False(t, s.Loading)
			require.True(t, s.UsingDemoData)
			require.NotNil(t, s.User)
			require.Equal(t, "Gagan Sharma", s.User.FullName)
			require.Len(t, s.BrandStories, 9)
			require.Empty(t, s.Err)
		})
	}
}

func TestProfileFailureWithDemoDisabledSetsError(t *testing.T) {
	fetcher := newFakeFetcher()
	fetcher.userErr = errors.New("dial tcp: refused")

	o := NewProfileOrchestrator(fetcher, demo.Default(), false, newFakeClock(), 30*time.Second)
	o.Load(context.Background(), "999")

	s := o.State()
	require.False(t, s.Loading)
	require.False(t, s.UsingDemoData)
	require.Nil(t, s.User)
	require.NotEmpty(t, s.Err)
	require.NotEmpty(t, s.ErrHint)
}

func TestProfileTabSwitchDoesNotRefetch(t *testing.T) {
	fetcher := newFakeFetcher()
	fetcher.userEnv = envelopeOf(validProfileJSON)

	o := NewProfileOrchestrator(fetcher, demo.Default(), true, newFakeClock(), 30*time.Second)
	o.Load(context.Background(), "1174158")

	calls := fetcher.callCount()
	require.Equal(t, 3, calls)

	o.SwitchTab(TabAll)
	require.Equal(t, TabAll, o.State().CurrentTab)
	o.SwitchTab(TabBrand)

	require.Equal(t, calls, fetcher.callCount())
}

func TestProfileModalTimer(t *testing.T) {
	fetcher := newFakeFetcher()
	fetcher.userEnv = envelopeOf(validProfileJSON)
	clock := newFakeClock()

	o := NewProfileOrchestrator(fetcher, demo.Default(), true, clock, 30*time.Second)
	o.Load(context.Background(), "1174158")

	require.False(t, o.State().ShowLoginModal)

	clock.Advance(30 * time.Second)
	require.True(t, o.State().ShowLoginModal)
}

func TestProfileDemoFallbackUsesLoadedFixture(t *testing.T) {
	fetcher := newFakeFetcher()
	fetcher.userErr = errors.New("refused")

	fixture := demo.Default()
	fixture.User.FullName = "Override User"

	o := NewProfileOrchestrator(fetcher, fixture, true, newFakeClock(), 30*time.Second)
	o.Load(context.Background(), "1")

	require.Equal(t, "Override User", o.State().User.FullName)
}
