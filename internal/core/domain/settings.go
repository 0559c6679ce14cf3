package domain

// Settings holds process-wide configuration resolved at startup. The
// cache root is passed explicitly rather than read from global state so
// tests can run against temporary roots.
type Settings struct {
	// CacheDir is the root directory for materialized projects.
	CacheDir string

	// MaxCacheEntries bounds the LRU index of cache entries.
	MaxCacheEntries int

	// CargoBin is the toolchain binary invoked by the build driver.
	CargoBin string
}

// DefaultSettings returns the settings used when no config file is
// present.
func DefaultSettings() Settings {
	return Settings{
		CacheDir:        DefaultCachePath(),
		MaxCacheEntries: DefaultMaxCacheEntries,
		CargoBin:        DefaultCargoBin,
	}
}
