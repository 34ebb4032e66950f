package page

import "github.com/ohiapp/ohi-gateway/app/demo"

const (
	maxVisiblePosts = 9
	maxBrandHosts   = 6
)

// VisiblePosts returns the slice of the current tab's posts that the grid
// displays. Switching tabs never refetches; it only changes which fetched
// array is sliced.
func VisiblePosts(s State) []string {
	posts := s.BrandStories
	if s.CurrentTab == TabAll {
		posts = s.AllPosts
	}
	if len(posts) > maxVisiblePosts {
		posts = posts[:maxVisiblePosts]
	}
	return posts
}

// BrandHosts derives the featured-host list from the fetched stories: the
// first occurrence of each username, capped at six. With no stories the
// fallback host list is shown instead.
func BrandHosts(s State, fallback []demo.Host) []demo.Host {
	if len(s.Stories) == 0 {
		return fallback
	}

	seen := make(map[string]bool, len(s.Stories))
	hosts := make([]demo.Host, 0, maxBrandHosts)
	for _, story := range s.Stories {
		if seen[story.Username] {
			continue
		}
		seen[story.Username] = true

		host := demo.Host{
			ID:   len(hosts) + 1,
			Name: story.Username,
		}
		if len(hosts) < len(s.Stories) {
			host.Image = s.Stories[len(hosts)].URL
		}
		hosts = append(hosts, host)

		if len(hosts) == maxBrandHosts {
			break
		}
	}
	return hosts
}

// Title returns the browser title for a profile page.
func Title(s State) string {
	if s.User == nil {
		return "Ohi Profile"
	}
	return s.User.FullName + " - Ohi Profile"
}

// DisplayBrandName returns the brand heading, defaulting when no story named
// the brand.
func DisplayBrandName(s State) string {
	if s.BrandName == "" {
		return "Brand"
	}
	return s.BrandName
}
