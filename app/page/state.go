package page

import "github.com/ohiapp/ohi-gateway/app/envelope"

// State is the full view state of one page instance. It is only ever mutated
// through Reduce, so every transition is explicit and testable.
type State struct {
	Loading bool

	// Brand page data
	Stories    []envelope.Story
	BrandPosts []envelope.BrandPost
	BrandName  string

	// Profile page data
	User         *envelope.UserProfile
	BrandStories []string
	AllPosts     []string
	CurrentTab   Tab

	UsingDemoData bool

	// Login modal state machine:
	// Hidden -> (timer or first click) -> Visible -> (close) -> Hidden, terminal.
	ShowLoginModal bool
	ModalDismissed bool

	Err     string
	ErrHint string
}

func NewState() State {
	return State{CurrentTab: TabBrand}
}

// Reduce applies one event to the state and returns the next state.
func Reduce(s State, e Event) State {
	switch ev := e.(type) {
	case FetchStarted:
		s.Loading = true
		s.Err = ""
		s.ErrHint = ""

	case FetchSucceeded:
		s.Loading = false
		s.UsingDemoData = ev.Payload.Demo
		if ev.Payload.Stories != nil {
			s.Stories = ev.Payload.Stories
			s.BrandName = ""
			if len(s.Stories) > 0 {
				s.BrandName = s.Stories[0].BrandName
			}
		}
		if ev.Payload.BrandPosts != nil {
			s.BrandPosts = ev.Payload.BrandPosts
		}
		if ev.Payload.User != nil {
			s.User = ev.Payload.User
		}
		if ev.Payload.BrandStories != nil {
			s.BrandStories = ev.Payload.BrandStories
		}
		if ev.Payload.AllPosts != nil {
			s.AllPosts = ev.Payload.AllPosts
		}

	case FetchFailed:
		s.Loading = false
		if ev.Err != nil {
			s.Err = ev.Err.Error()
		} else {
			s.Err = "Failed to load page data"
		}
		s.ErrHint = ev.Hint

	case TabChanged:
		s.CurrentTab = ev.Tab

	case TimerFired, UserClicked:
		// Whichever fires first wins; showing is idempotent and never re-arms
		// after an explicit close.
		if !s.ModalDismissed {
			s.ShowLoginModal = true
		}

	case ModalClosed:
		s.ShowLoginModal = false
		s.ModalDismissed = true
	}

	return s
}
