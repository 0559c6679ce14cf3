package ports

import "go.trai.ch/evalrs/internal/core/domain"

// ProjectCache manages materialized project directories keyed by the
// fingerprint of their dependency mapping.
//
//go:generate go run go.uber.org/mock/mockgen -source=cache.go -destination=mocks/mock_cache.go -package=mocks
type ProjectCache interface {
	// Acquire returns the cache entry for the manifest's fingerprint,
	// materializing a new project directory on a miss. hit reports
	// whether an existing, consistent entry was reused. The entry is
	// held under a per-key lock until release is called; release must
	// be called exactly once. When refresh is true the manifest is
	// re-materialized even on a hit.
	Acquire(manifest domain.Manifest, refresh bool) (entry *domain.CacheEntry, hit bool, release func(), err error)

	// Clean removes every cache entry.
	Clean() error
}
