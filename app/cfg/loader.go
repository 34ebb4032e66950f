package cfg

import (
	"cmp"
	"fmt"
	"time"

	"github.com/jessevdk/go-flags"
)

// Version is set at build time via -ldflags
var Version = "dev"

func GetVersion() string {
	return cmp.Or(Version, "unknown")
}

const (
	stagingBaseURL    = "https://staging.ohiapp.com/api/v2/public"
	productionBaseURL = "https://app.ohiapp.com/api/v2/public"
)

type rawCfg struct {
	// HTTP server configuration
	Port string `long:"port" env:"PORT" default:"8080" description:"HTTP server port"`

	// Upstream configuration
	UpstreamEnv     string `long:"upstream-env" env:"UPSTREAM_ENV" default:"staging" choice:"staging" choice:"production" description:"Upstream environment to proxy"`
	UpstreamBaseURL string `long:"upstream-base-url" env:"UPSTREAM_BASE_URL" description:"Explicit upstream base URL (overrides --upstream-env)"`
	UpstreamTimeout int    `long:"upstream-timeout" env:"UPSTREAM_TIMEOUT" default:"10" description:"Upstream request timeout in seconds"`
	CacheTTL        int    `long:"cache-ttl" env:"CACHE_TTL" default:"60" description:"Revalidate cache TTL in seconds"`

	// Page orchestration configuration
	DisableDemo bool   `long:"disable-demo" env:"DISABLE_DEMO" description:"Disable demo-data fallback on profile fetch failure"`
	FixturesDir string `long:"fixtures-dir" env:"FIXTURES_DIR" default:"./fixtures" description:"Directory containing demo fixture files"`
	ModalDelay  int    `long:"modal-delay" env:"MODAL_DELAY" default:"30" description:"Login modal timer delay in seconds"`

	// Application metadata
	UserAgent string `long:"user-agent" env:"USER_AGENT" default:"Ohi Gateway/1.0" description:"User agent string for upstream requests"`
	Timezone  string `long:"timezone" env:"TZ" default:"UTC" description:"Timezone for timestamps (e.g., UTC, America/New_York)"`
	Debug     bool   `long:"debug" env:"DEBUG" description:"Enable debug logging"`
}

var globalCfg *Cfg

func Load() (*Cfg, error) {
	var raw rawCfg

	parser := flags.NewParser(&raw, flags.Default)

	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			if flagsErr.Type == flags.ErrHelp {
				return nil, nil
			}
		}
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	cfg := &Cfg{
		Port:            raw.Port,
		UpstreamEnv:     raw.UpstreamEnv,
		UpstreamBaseURL: resolveBaseURL(raw.UpstreamEnv, raw.UpstreamBaseURL),
		UpstreamTimeout: raw.UpstreamTimeout,
		CacheTTL:        raw.CacheTTL,
		DemoMode:        !raw.DisableDemo,
		FixturesDir:     raw.FixturesDir,
		ModalDelay:      raw.ModalDelay,
		UserAgent:       raw.UserAgent,
		Timezone:        raw.Timezone,
		Debug:           raw.Debug,
		Version:         GetVersion(),
	}

	if err := applyTimezone(cfg.Timezone); err != nil {
		fmt.Printf("Warning: Invalid timezone '%s', using system default: %v\n", cfg.Timezone, err)
	}

	globalCfg = cfg

	return cfg, nil
}

func Get() *Cfg {
	if globalCfg == nil {
		panic("configuration not loaded - call cfg.Load() first")
	}
	return globalCfg
}

func resolveBaseURL(env, override string) string {
	if override != "" {
		return override
	}
	if env == "production" {
		return productionBaseURL
	}
	return stagingBaseURL
}

func applyTimezone(timezone string) error {
	if timezone != "" {
		if loc, err := time.LoadLocation(timezone); err != nil {
			return err
		} else {
			time.Local = loc
			fmt.Printf("Timezone configured: %s\n", timezone)
		}
	}
	return nil
}
