package domain

import (
	"os"
	"path/filepath"
)

const (
	// CacheDirName is the name of the project cache directory.
	CacheDirName = "evalrs-cache"

	// EntryFileName is the name of the per-entry metadata file.
	EntryFileName = "entry.json"

	// ManifestFileName is the name of the project manifest file.
	ManifestFileName = "Cargo.toml"

	// SourceFileName is the path of the source file inside a project.
	SourceFileName = "src/main.rs"

	// ConfigFileName is the name of the optional configuration file.
	ConfigFileName = "evalrs.yaml"

	// DefaultMaxCacheEntries bounds the cache entry index.
	DefaultMaxCacheEntries = 32

	// DefaultCargoBin is the toolchain binary used by the build driver.
	DefaultCargoBin = "cargo"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultCachePath returns the default cache root, under the system
// temporary directory.
func DefaultCachePath() string {
	return filepath.Join(os.TempDir(), CacheDirName)
}
