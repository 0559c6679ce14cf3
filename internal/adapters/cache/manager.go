// Package cache implements the fingerprint-keyed project cache.
package cache

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.trai.ch/evalrs/internal/core/domain"
	"go.trai.ch/evalrs/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ProjectCache = (*Manager)(nil)

// Manager implements ports.ProjectCache on a local directory tree. Each
// entry lives under <root>/<fingerprint>/ next to a JSON metadata file
// recording the dependency mapping that produced the key; the metadata
// is written atomically (temp file + rename) so a torn write can never
// be misread as a valid entry.
//
// Concurrent evaluations of the same key are serialized through a
// per-key mutex; different keys proceed independently. An LRU index
// bounds the number of retained entries, and eviction skips entries
// held by an in-flight evaluation.
type Manager struct {
	root   string
	mat    ports.ProjectMaterializer
	logger ports.Logger

	mu       sync.Mutex
	locks    map[string]*sync.Mutex
	inflight map[string]int
	index    *lru.Cache[string, time.Time]
}

// NewManager creates a Manager rooted at root, restoring the index from
// entries already on disk. Entries beyond maxEntries are evicted oldest
// first.
func NewManager(root string, maxEntries int, mat ports.ProjectMaterializer, logger ports.Logger) (*Manager, error) {
	if err := os.MkdirAll(root, domain.DirPerm); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to create cache root"), "path", root)
	}

	m := &Manager{
		root:     filepath.Clean(root),
		mat:      mat,
		logger:   logger,
		locks:    make(map[string]*sync.Mutex),
		inflight: make(map[string]int),
	}

	index, err := lru.NewWithEvict(maxEntries, m.onEvict)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to create cache index")
	}
	m.index = index

	m.loadIndex()
	return m, nil
}

// Acquire locks the manifest's cache key, reuses the existing project
// directory when its recorded dependency mapping still matches the key,
// and materializes a fresh one otherwise. The returned release func
// refreshes the entry's last-used timestamp and unlocks the key.
func (m *Manager) Acquire(manifest domain.Manifest, refresh bool) (*domain.CacheEntry, bool, func(), error) {
	key := manifest.Fingerprint()
	lock := m.keyLock(key)
	lock.Lock()
	m.trackInflight(key, 1)

	fail := func(err error) (*domain.CacheEntry, bool, func(), error) {
		m.trackInflight(key, -1)
		lock.Unlock()
		return nil, false, nil, err
	}

	dir := filepath.Join(m.root, key)
	entry := m.readEntry(key, dir)
	hit := entry != nil && !refresh

	if !hit {
		if err := m.mat.WriteProject(dir, manifest); err != nil {
			return fail(err)
		}
		now := time.Now()
		created := now
		if entry != nil {
			created = entry.CreatedAt
		}
		entry = &domain.CacheEntry{
			Key:          key,
			ProjectDir:   dir,
			Dependencies: manifest.Dependencies,
			CreatedAt:    created,
			LastUsed:     now,
		}
		if err := m.writeEntry(dir, entry); err != nil {
			return fail(err)
		}
	}

	release := func() {
		entry.LastUsed = time.Now()
		if err := m.writeEntry(dir, entry); err != nil {
			m.logger.Warn(fmt.Sprintf("failed to refresh cache entry %s: %v", key, err))
		}
		m.index.Add(key, entry.LastUsed)
		m.trackInflight(key, -1)
		lock.Unlock()
	}
	return entry, hit, release, nil
}

// Clean removes every cache entry and resets the index.
func (m *Manager) Clean() error {
	if err := os.RemoveAll(m.root); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to remove cache root"), "path", m.root)
	}
	m.index.Purge()
	if err := os.MkdirAll(m.root, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to recreate cache root"), "path", m.root)
	}
	return nil
}

// readEntry loads and validates the metadata for key. Any inconsistency
// discards the entry and reports a miss; corruption is self-healed here
// and never surfaced to the caller.
func (m *Manager) readEntry(key, dir string) *domain.CacheEntry {
	path := filepath.Join(dir, domain.EntryFileName)
	//nolint:gosec // Path is derived from the trusted cache root
	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			m.heal(key, dir, zerr.Wrap(err, "unreadable cache metadata"))
		}
		return nil
	}

	var entry domain.CacheEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		m.heal(key, dir, zerr.Wrap(err, "undecodable cache metadata"))
		return nil
	}

	if entry.Key != key || !entry.Consistent() {
		m.heal(key, dir, domain.ErrCacheCorrupted)
		return nil
	}
	if _, err := os.Stat(filepath.Join(dir, domain.ManifestFileName)); err != nil {
		m.heal(key, dir, zerr.Wrap(err, "cache entry missing its manifest"))
		return nil
	}

	// The root may have moved since the entry was written.
	entry.ProjectDir = dir
	return &entry
}

// heal discards a broken entry so the caller rebuilds it from scratch.
func (m *Manager) heal(key, dir string, cause error) {
	m.logger.Warn(fmt.Sprintf("discarding cache entry %s: %v", key, cause))
	if err := os.RemoveAll(dir); err != nil {
		m.logger.Warn(fmt.Sprintf("failed to discard cache entry %s: %v", key, err))
	}
	m.index.Remove(key)
}

// writeEntry persists the metadata atomically so a crash mid-write
// leaves either the previous entry or a detectable partial temp file,
// never a torn entry.json.
func (m *Manager) writeEntry(dir string, entry *domain.CacheEntry) error {
	data, err := json.MarshalIndent(entry, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal cache entry")
	}

	path := filepath.Join(dir, domain.EntryFileName)
	tmp := path + ".tmp"
	//nolint:gosec // Path is derived from the trusted cache root
	if err := os.WriteFile(tmp, data, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write cache entry"), "path", tmp)
	}
	if err := os.Rename(tmp, path); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to commit cache entry"), "path", path)
	}
	return nil
}

// loadIndex restores the LRU index from entries already on disk,
// oldest first so adding them in order preserves recency. Inserting
// past the capacity evicts stale entries left by earlier runs.
func (m *Manager) loadIndex() {
	dirs, err := os.ReadDir(m.root)
	if err != nil {
		m.logger.Warn(fmt.Sprintf("failed to scan cache root: %v", err))
		return
	}

	type indexed struct {
		key      string
		lastUsed time.Time
	}
	var entries []indexed
	for _, d := range dirs {
		if !d.IsDir() {
			continue
		}
		if entry := m.readEntry(d.Name(), filepath.Join(m.root, d.Name())); entry != nil {
			entries = append(entries, indexed{key: entry.Key, lastUsed: entry.LastUsed})
		}
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].lastUsed.Before(entries[j].lastUsed) })
	for _, e := range entries {
		m.index.Add(e.key, e.lastUsed)
	}
}

// onEvict removes an evicted entry's project directory. Entries held by
// an in-flight evaluation are skipped; their directory is reclaimed on
// a later eviction or clean.
func (m *Manager) onEvict(key string, _ time.Time) {
	m.mu.Lock()
	busy := m.inflight[key] > 0
	m.mu.Unlock()
	if busy {
		return
	}
	if err := os.RemoveAll(filepath.Join(m.root, key)); err != nil {
		m.logger.Warn(fmt.Sprintf("failed to evict cache entry %s: %v", key, err))
		return
	}
	m.logger.Info("evicted cache entry " + key)
}

func (m *Manager) keyLock(key string) *sync.Mutex {
	m.mu.Lock()
	defer m.mu.Unlock()
	lock, ok := m.locks[key]
	if !ok {
		lock = &sync.Mutex{}
		m.locks[key] = lock
	}
	return lock
}

func (m *Manager) trackInflight(key string, delta int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.inflight[key] += delta
	if m.inflight[key] <= 0 {
		delete(m.inflight, key)
	}
}
