package cfg

type Cfg struct {
	// HTTP server configuration
	Port string

	// Upstream configuration
	UpstreamEnv     string
	UpstreamBaseURL string
	UpstreamTimeout int
	CacheTTL        int

	// Page orchestration configuration
	DemoMode    bool
	FixturesDir string
	ModalDelay  int

	// Application metadata
	UserAgent string
	Timezone  string
	Debug     bool
	Version   string
}
