package domain

import "time"

// CacheEntry records a materialized project directory keyed by the
// fingerprint of its dependency mapping.
type CacheEntry struct {
	// Key is the fingerprint the entry was created under.
	Key string `json:"key"`

	// ProjectDir is the on-disk location of the materialized project.
	ProjectDir string `json:"project_dir"`

	// Dependencies is the mapping that produced Key. It is persisted so
	// the cache manager can verify the entry has not drifted from its
	// key before serving it.
	Dependencies map[string]VersionSpec `json:"dependencies"`

	// CreatedAt is when the entry was first materialized.
	CreatedAt time.Time `json:"created_at"`

	// LastUsed is refreshed on every evaluation that reuses the entry.
	LastUsed time.Time `json:"last_used"`
}

// Consistent reports whether the recorded dependency mapping still
// fingerprints to the entry's key. A false result means the entry was
// torn or tampered with and must be treated as a cache miss.
func (e *CacheEntry) Consistent() bool {
	return e.Key != "" && Fingerprint(e.Dependencies) == e.Key
}
