package domain

import (
	"fmt"
	"slices"

	"github.com/cespare/xxhash/v2"
)

// Fingerprint computes a deterministic cache key from a dependency
// mapping. The key is order-independent (pairs are hashed in sorted
// name order) and sensitive to the version spec, so "A with no version"
// and "A = 1.2.0" produce different keys.
func Fingerprint(deps map[string]VersionSpec) string {
	names := make([]string, 0, len(deps))
	for name := range deps {
		names = append(names, name)
	}
	slices.Sort(names)

	h := xxhash.New()
	for _, name := range names {
		_, _ = h.WriteString(name)
		_, _ = h.Write([]byte{0})
		_, _ = h.WriteString(deps[name].Canonical())
		_, _ = h.Write([]byte{0})
	}
	return fmt.Sprintf("%016x", h.Sum64())
}
