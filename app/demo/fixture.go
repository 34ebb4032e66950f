package demo

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/ohiapp/ohi-gateway/app/envelope"
)

// Host is a featured brand host shown when no stories are available.
type Host struct {
	ID    int    `yaml:"id"`
	Name  string `yaml:"name"`
	Image string `yaml:"image"`
}

// Fixture is the static dataset substituted when every real data call for a
// page fails. Staging can override it from a fixtures file without a rebuild.
type Fixture struct {
	User         envelope.UserProfile `yaml:"user"`
	BrandStories []string             `yaml:"brand_stories"`
	BrandHosts   []Host               `yaml:"brand_hosts"`
}

// Default returns the built-in fixture dataset.
func Default() *Fixture {
	return &Fixture{
		User: envelope.UserProfile{
			FullName:            "Gagan Sharma",
			IsProfilePrivate:    false,
			TotalPostsCount:     50,
			TotalFollowersCount: 7,
			TotalFollowingCount: 3,
			InterestDetails: []envelope.Interest{
				{InterestID: 1, Name: "Reading"},
				{InterestID: 2, Name: "At Office"},
				{InterestID: 3, Name: "Night-Out"},
				{InterestID: 4, Name: "DIY"},
			},
			ProfileImage:      "https://images.unsplash.com/photo-1494790108377-be9c29b29330?w=200&h=200&fit=crop",
			UserBio:           "Sab chnga C",
			IsBusinessProfile: false,
		},
		BrandStories: []string{
			"https://images.unsplash.com/photo-1438761681033-6461ffad8d80?w=400&h=400&fit=crop",
			"https://images.unsplash.com/photo-1565299624946-b28f40a0ae38?w=400&h=400&fit=crop",
			"https://images.unsplash.com/photo-1515886657613-9f3515b0c78f?w=400&h=400&fit=crop",
			"https://images.unsplash.com/photo-1488426862026-3ee34a7d66df?w=400&h=400&fit=crop",
			"https://images.unsplash.com/photo-1494790108377-be9c29b29330?w=400&h=400&fit=crop",
			"https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=400&h=400&fit=crop",
			"https://images.unsplash.com/photo-1506794778202-cad84cf45f1d?w=400&h=400&fit=crop",
			"https://images.unsplash.com/photo-1500648767791-00dcc994a43e?w=400&h=400&fit=crop",
			"https://images.unsplash.com/photo-1502823403499-6ccfcf4fb453?w=400&h=400&fit=crop",
		},
		BrandHosts: []Host{
			{ID: 1, Name: "John Jacobs", Image: "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=100&h=100&fit=crop"},
			{ID: 2, Name: "Mickabana", Image: "https://images.unsplash.com/photo-1565299624946-b28f40a0ae38?w=100&h=100&fit=crop"},
			{ID: 3, Name: "Nike", Image: "https://images.unsplash.com/photo-1515886657613-9f3515b0c78f?w=100&h=100&fit=crop"},
			{ID: 4, Name: "Ordinary", Image: "https://images.unsplash.com/photo-1488426862026-3ee34a7d66df?w=100&h=100&fit=crop"},
			{ID: 5, Name: "Bobby Brown", Image: "https://images.unsplash.com/photo-1494790108377-be9c29b29330?w=100&h=100&fit=crop"},
			{ID: 6, Name: "Ralph Lauren", Image: "https://images.unsplash.com/photo-1506794778202-cad84cf45f1d?w=100&h=100&fit=crop"},
		},
	}
}

// Load reads the fixture file from fixturesDir, falling back to the built-in
// dataset when the file does not exist.
func Load(fixturesDir string) (*Fixture, error) {
	path := filepath.Join(fixturesDir, "demo.yml")

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			slog.Debug("No demo fixture file, using built-in dataset", "path", path)
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read fixture file %s: %w", path, err)
	}

	var fixture Fixture
	if err := yaml.Unmarshal(data, &fixture); err != nil {
		return nil, fmt.Errorf("failed to parse fixture file %s: %w", path, err)
	}

	if err := validate(&fixture); err != nil {
		return nil, fmt.Errorf("invalid fixture file %s: %w", path, err)
	}

	slog.Debug("Demo fixture loaded", "path", path, "stories", len(fixture.BrandStories))
	return &fixture, nil
}

func validate(f *Fixture) error {
	if f.User.FullName == "" {
		return fmt.Errorf("user full_name is required")
	}
	if len(f.BrandStories) == 0 {
		return fmt.Errorf("at least one brand story URL is required")
	}
	return nil
}
