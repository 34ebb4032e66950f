package envelope

import "encoding/json"

// Envelope is the fixed response wrapper shared by every proxy endpoint:
// {statusCode, status, message, data}. Data is always an array, never null,
// regardless of what the upstream answered. Elements are kept as raw JSON so
// the pass-through path is byte-faithful per element.
type Envelope struct {
	StatusCode int               `json:"statusCode"`
	Status     string            `json:"status"`
	Message    *string           `json:"message"`
	Data       []json.RawMessage `json:"data"`
}

// Empty returns the empty-success envelope used for every absorbed failure.
func Empty() Envelope {
	return Envelope{
		StatusCode: 200,
		Status:     "success",
		Message:    nil,
		Data:       []json.RawMessage{},
	}
}

// Story is a short-lived media item associated with a brand and a posting user.
type Story struct {
	StoryID    int    `json:"story_id" yaml:"story_id"`
	URL        string `json:"url" yaml:"url"`
	BrandName  string `json:"brand_name" yaml:"brand_name"`
	Username   string `json:"username" yaml:"username"`
	UserImage  string `json:"user_image" yaml:"user_image"`
	TotalViews int    `json:"total_views" yaml:"total_views"`
}

// BrandPost is a media item that may be purchase-gated for unlocked viewing.
type BrandPost struct {
	URL         string `json:"url" yaml:"url"`
	IsPurchased bool   `json:"is_purchased" yaml:"is_purchased"`
	BrandName   string `json:"brand_name,omitempty" yaml:"brand_name,omitempty"`
}

// Interest is one entry of a user's interest list.
type Interest struct {
	InterestID int    `json:"interest_id" yaml:"interest_id"`
	Name       string `json:"name" yaml:"name"`
}

// UserProfile is the public profile record served by the user endpoint.
type UserProfile struct {
	FullName            string     `json:"full_name" yaml:"full_name"`
	IsProfilePrivate    bool       `json:"is_profile_private" yaml:"is_profile_private"`
	TotalPostsCount     int        `json:"total_posts_count" yaml:"total_posts_count"`
	TotalFollowersCount int        `json:"total_followers_count" yaml:"total_followers_count"`
	TotalFollowingCount int        `json:"total_following_count" yaml:"total_following_count"`
	InterestDetails     []Interest `json:"interest_details" yaml:"interest_details"`
	ProfileImage        string     `json:"profile_image" yaml:"profile_image"`
	UserBio             string     `json:"user_bio" yaml:"user_bio"`
	IsBusinessProfile   bool       `json:"is_business_profile" yaml:"is_business_profile"`
	PostViews           *int       `json:"post_views,omitempty" yaml:"post_views,omitempty"`
}
