package page

import "github.com/ohiapp/ohi-gateway/app/envelope"

// Tab selects which already-fetched post array a profile page displays.
type Tab string

const (
	TabBrand Tab = "brand"
	TabAll   Tab = "all"
)

// Event is a page-level state transition trigger. The full set: FetchStarted,
// FetchSucceeded, FetchFailed, TabChanged, TimerFired, UserClicked,
// ModalClosed.
type Event interface {
	event()
}

// Payload carries the merged results of a page's parallel fetches. Nil slices
// and a nil user mean "not part of this page", so a brand payload does not
// clobber profile fields and vice versa.
type Payload struct {
	Stories      []envelope.Story
	BrandPosts   []envelope.BrandPost
	User         *envelope.UserProfile
	BrandStories []string
	AllPosts     []string
	Demo         bool
}

type FetchStarted struct{}

type FetchSucceeded struct {
	Payload Payload
}

type FetchFailed struct {
	Err  error
	Hint string
}

type TabChanged struct {
	Tab Tab
}

type TimerFired struct{}

type UserClicked struct{}

type ModalClosed struct{}

func (FetchStarted) event()   {}
func (FetchSucceeded) event() {}
func (FetchFailed) event()    {}
func (TabChanged) event()     {}
func (TimerFired) event()     {}
func (UserClicked) event()    {}
func (ModalClosed) event()    {}
