package upstream

import (
	"net/url"
	"time"
)

// ResourceKind identifies one of the four public resource families exposed by
// the Ohi backend.
type ResourceKind int

const (
	UserProfile ResourceKind = iota
	PostsForUser
	StoriesForBrand
	BrandPosts
)

func (k ResourceKind) String() string {
	switch k {
	case UserProfile:
		return "user"
	case PostsForUser:
		return "posts"
	case StoriesForBrand:
		return "stories"
	case BrandPosts:
		return "brand-posts"
	default:
		return "unknown"
	}
}

// path returns the upstream path prefix for the resource kind.
func (k ResourceKind) path() string {
	switch k {
	case UserProfile:
		return "user"
	case PostsForUser:
		return "posts"
	case StoriesForBrand:
		return "stories"
	case BrandPosts:
		return "posts/purchased-and-non-purchased"
	default:
		return ""
	}
}

// CacheMode selects how a response may be reused across requests.
type CacheMode int

const (
	CacheNoStore CacheMode = iota
	CacheRevalidate
)

// CacheHint tells the client whether a response can be served from the
// revalidate cache and for how long a fetched response stays fresh.
type CacheHint struct {
	Mode   CacheMode
	MaxAge time.Duration
}

func NoStore() CacheHint {
	return CacheHint{Mode: CacheNoStore}
}

func Revalidate(maxAge time.Duration) CacheHint {
	return CacheHint{Mode: CacheRevalidate, MaxAge: maxAge}
}

// Request describes one upstream GET. Query holds only the parameters that
// were present on the inbound request; absent parameters must never reach the
// upstream, which applies different defaults otherwise.
type Request struct {
	Kind      ResourceKind
	ID        string
	Query     url.Values
	CacheHint CacheHint
}

// Result is the raw upstream outcome. A non-2xx status is a valid Result, not
// an error; only transport failure surfaces as an error from the client.
type Result struct {
	StatusCode int
	Body       []byte
}
