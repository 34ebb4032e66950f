package envelope

import (
	"encoding/json"
	"fmt"
	"log/slog"
)

// DecodeStories decodes the envelope's data elements as stories. Elements
// that do not decode are skipped, so one malformed record cannot take down
// the page.
func DecodeStories(env Envelope) []Story {
	stories := make([]Story, 0, len(env.Data))
	for i, item := range env.Data {
		var story Story
		if err := json.Unmarshal(item, &story); err != nil {
			slog.Debug("Skipping undecodable story record", "index", i, "error", err)
			continue
		}
		stories = append(stories, story)
	}
	return stories
}

// DecodeBrandPosts decodes the envelope's data elements as brand posts.
func DecodeBrandPosts(env Envelope) []BrandPost {
	posts := make([]BrandPost, 0, len(env.Data))
	for i, item := range env.Data {
		var post BrandPost
		if err := json.Unmarshal(item, &post); err != nil {
			slog.Debug("Skipping undecodable brand post record", "index", i, "error", err)
			continue
		}
		posts = append(posts, post)
	}
	return posts
}

// DecodePostURLs decodes the envelope's data elements as plain image URLs,
// the shape the posts endpoint serves for profile grids. Records that are
// objects with a url field are accepted too.
func DecodePostURLs(env Envelope) []string {
	urls := make([]string, 0, len(env.Data))
	for i, item := range env.Data {
		var u string
		if err := json.Unmarshal(item, &u); err == nil {
			urls = append(urls, u)
			continue
		}

		var post BrandPost
		if err := json.Unmarshal(item, &post); err == nil && post.URL != "" {
			urls = append(urls, post.URL)
			continue
		}

		slog.Debug("Skipping undecodable post record", "index", i)
	}
	return urls
}

// DecodeUserProfile decodes the first data element as a user profile. An
// empty or undecodable data array is an error: a profile page without a user
// record is unusable, and the caller decides between demo fallback and error
// state.
func DecodeUserProfile(env Envelope) (*UserProfile, error) {
	if len(env.Data) == 0 {
		return nil, fmt.Errorf("user profile missing from response data")
	}

	var profile UserProfile
	if err := json.Unmarshal(env.Data[0], &profile); err != nil {
		return nil, fmt.Errorf("failed to decode user profile: %w", err)
	}

	profile.InterestDetails = dedupeInterests(profile.InterestDetails)
	return &profile, nil
}

// dedupeInterests keeps the first occurrence of each interest_id, preserving
// order.
func dedupeInterests(interests []Interest) []Interest {
	seen := make(map[int]bool, len(interests))
	unique := make([]Interest, 0, len(interests))
	for _, interest := range interests {
		if seen[interest.InterestID] {
			continue
		}
		seen[interest.InterestID] = true
		unique = append(unique, interest)
	}
	return unique
}
