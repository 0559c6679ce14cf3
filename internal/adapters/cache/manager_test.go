package cache_test

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"go.trai.ch/evalrs/internal/adapters/cache"
	"go.trai.ch/evalrs/internal/adapters/cargo"
	"go.trai.ch/evalrs/internal/core/domain"
)

type nopLogger struct{}

func (nopLogger) Info(string) {}
func (nopLogger) Warn(string) {}
func (nopLogger) Error(error) {}

func newTestManager(t *testing.T, root string, maxEntries int) *cache.Manager {
	t.Helper()
	m, err := cache.NewManager(root, maxEntries, cargo.NewMaterializer(), nopLogger{})
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}
	return m
}

func manifestFor(decls ...domain.Declaration) domain.Manifest {
	return domain.NewManifest(decls)
}

func TestManager_MissThenHit(t *testing.T) {
	root := t.TempDir()
	m := newTestManager(t, root, 8)
	manifest := manifestFor(domain.Declaration{Name: "num_cpus"})

	entry, hit, release, err := m.Acquire(manifest, false)
	if err != nil {
		t.Fatalf("Acquire failed: %v", err)
	}
	if hit {
		t.Error("expected first acquire to miss")
	}
	if entry.Key != manifest.Fingerprint() {
		t.Errorf("expected entry keyed by fingerprint, got %q", entry.Key)
	}

	// Simulate resolution metadata produced by the first build.
	lock := filepath.Join(entry.ProjectDir, "Cargo.lock")
	if err := os.WriteFile(lock, []byte("# lock"), 0o644); err != nil {
		t.Fatalf("failed to write lock file: %v", err)
	}
	release()

	entry2, hit2, release2, err := m.Acquire(manifest, false)
	if err != nil {
		t.Fatalf("second Acquire failed: %v", err)
	}
	defer release2()

	if !hit2 {
		t.Error("expected second acquire to hit")
	}
	if entry2.ProjectDir != entry.ProjectDir {
		t.Errorf("expected the same project directory, got %q and %q", entry.ProjectDir, entry2.ProjectDir)
	}
	// A hit must reuse the resolved lock metadata rather than rebuild it.
	if _, err := os.Stat(lock); err != nil {
		t.Errorf("expected lock file preserved on hit: %v", err)
	}
}

func TestManager_RefreshForcesMaterialization(t *testing.T) {
	root := t.TempDir()
	m := newTestManager(t, root, 8)
	manifest := manifestFor(domain.Declaration{Name: "num_cpus"})

	_, _, release, err := m.Acquire(manifest, false)
	if err != nil {
		t.Fatalf("Acquire failed: %v", err)
	}
	release()

	_, hit, release2, err := m.Acquire(manifest, true)
	if err != nil {
		t.Fatalf("refresh Acquire failed: %v", err)
	}
	defer release2()
	if hit {
		t.Error("expected refresh acquire to report a miss")
	}
}

func TestManager_DistinctKeysDistinctDirs(t *testing.T) {
	root := t.TempDir()
	m := newTestManager(t, root, 8)

	a, _, releaseA, err := m.Acquire(manifestFor(domain.Declaration{Name: "num_cpus"}), false)
	if err != nil {
		t.Fatalf("Acquire a failed: %v", err)
	}
	releaseA()

	b, _, releaseB, err := m.Acquire(manifestFor(domain.Declaration{Name: "num_cpus", Spec: domain.VersionSpec{Version: "1.2.0"}}), false)
	if err != nil {
		t.Fatalf("Acquire b failed: %v", err)
	}
	releaseB()

	if a.ProjectDir == b.ProjectDir {
		t.Error("expected differently-keyed manifests to use different directories")
	}
}

func TestManager_CorruptMetadataTreatedAsMiss(t *testing.T) {
	root := t.TempDir()
	manifest := manifestFor(domain.Declaration{Name: "rand", Spec: domain.VersionSpec{Version: "0.8"}})

	m := newTestManager(t, root, 8)
	entry, _, release, err := m.Acquire(manifest, false)
	if err != nil {
		t.Fatalf("Acquire failed: %v", err)
	}
	release()

	// A torn write leaves undecodable metadata behind.
	metaPath := filepath.Join(entry.ProjectDir, domain.EntryFileName)
	if err := os.WriteFile(metaPath, []byte(`{"key": "ran`), 0o644); err != nil {
		t.Fatalf("failed to corrupt metadata: %v", err)
	}

	_, hit, release2, err := m.Acquire(manifest, false)
	if err != nil {
		t.Fatalf("Acquire after corruption failed: %v", err)
	}
	release2()
	if hit {
		t.Error("expected corrupted entry to be treated as a miss")
	}

	// The rebuilt entry must be fully usable again.
	_, hit3, release3, err := m.Acquire(manifest, false)
	if err != nil {
		t.Fatalf("Acquire after heal failed: %v", err)
	}
	release3()
	if !hit3 {
		t.Error("expected rebuilt entry to hit")
	}
}

func TestManager_DriftedMappingTreatedAsMiss(t *testing.T) {
	root := t.TempDir()
	manifest := manifestFor(domain.Declaration{Name: "rand", Spec: domain.VersionSpec{Version: "0.8"}})

	m := newTestManager(t, root, 8)
	entry, _, release, err := m.Acquire(manifest, false)
	if err != nil {
		t.Fatalf("Acquire failed: %v", err)
	}
	release()

	// Rewrite the metadata with a mapping that no longer matches the
	// key: decodable, but inconsistent.
	data := []byte(`{"key":"` + entry.Key + `","project_dir":"` + entry.ProjectDir + `","dependencies":{"rand":{"version":"0.9"}}}`)
	if err := os.WriteFile(filepath.Join(entry.ProjectDir, domain.EntryFileName), data, 0o644); err != nil {
		t.Fatalf("failed to rewrite metadata: %v", err)
	}

	_, hit, release2, err := m.Acquire(manifest, false)
	if err != nil {
		t.Fatalf("Acquire after drift failed: %v", err)
	}
	release2()
	if hit {
		t.Error("expected drifted entry to be treated as a miss")
	}
}

func TestManager_PersistsAcrossInstances(t *testing.T) {
	root := t.TempDir()
	manifest := manifestFor(domain.Declaration{Name: "num_cpus"})

	m1 := newTestManager(t, root, 8)
	_, _, release, err := m1.Acquire(manifest, false)
	if err != nil {
		t.Fatalf("Acquire failed: %v", err)
	}
	release()

	m2 := newTestManager(t, root, 8)
	_, hit, release2, err := m2.Acquire(manifest, false)
	if err != nil {
		t.Fatalf("Acquire on new manager failed: %v", err)
	}
	release2()
	if !hit {
		t.Error("expected entry to survive across manager instances")
	}
}

func TestManager_EvictsLeastRecentlyUsed(t *testing.T) {
	root := t.TempDir()
	m := newTestManager(t, root, 1)

	a, _, releaseA, err := m.Acquire(manifestFor(domain.Declaration{Name: "a"}), false)
	if err != nil {
		t.Fatalf("Acquire a failed: %v", err)
	}
	releaseA()

	b, _, releaseB, err := m.Acquire(manifestFor(domain.Declaration{Name: "b"}), false)
	if err != nil {
		t.Fatalf("Acquire b failed: %v", err)
	}
	releaseB()

	if _, err := os.Stat(a.ProjectDir); !os.IsNotExist(err) {
		t.Error("expected least-recently-used entry to be evicted from disk")
	}
	if _, err := os.Stat(b.ProjectDir); err != nil {
		t.Errorf("expected newest entry to remain: %v", err)
	}
}

func TestManager_EvictionSkipsInflightEntries(t *testing.T) {
	root := t.TempDir()
	m := newTestManager(t, root, 1)

	a, _, releaseA, err := m.Acquire(manifestFor(domain.Declaration{Name: "a"}), false)
	if err != nil {
		t.Fatalf("Acquire a failed: %v", err)
	}

	// While a is still in flight, pushing b over the capacity must not
	// delete a's project directory out from under its evaluation.
	b, _, releaseB, err := m.Acquire(manifestFor(domain.Declaration{Name: "b"}), false)
	if err != nil {
		t.Fatalf("Acquire b failed: %v", err)
	}
	releaseB()

	if _, err := os.Stat(a.ProjectDir); err != nil {
		t.Errorf("expected in-flight entry to survive eviction: %v", err)
	}
	_ = b
	releaseA()
}

func TestManager_SameKeySerialized(t *testing.T) {
	root := t.TempDir()
	m := newTestManager(t, root, 8)
	manifest := manifestFor(domain.Declaration{Name: "num_cpus"})

	var active, maxActive int
	var mu sync.Mutex
	var wg sync.WaitGroup
	for range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _, release, err := m.Acquire(manifest, false)
			if err != nil {
				t.Errorf("Acquire failed: %v", err)
				return
			}
			mu.Lock()
			active++
			if active > maxActive {
				maxActive = active
			}
			mu.Unlock()

			mu.Lock()
			active--
			mu.Unlock()
			release()
		}()
	}
	wg.Wait()

	if maxActive != 1 {
		t.Errorf("expected same-key acquisitions to be serialized, saw %d concurrent holders", maxActive)
	}
}

func TestManager_Clean(t *testing.T) {
	root := t.TempDir()
	m := newTestManager(t, root, 8)

	entry, _, release, err := m.Acquire(manifestFor(domain.Declaration{Name: "num_cpus"}), false)
	if err != nil {
		t.Fatalf("Acquire failed: %v", err)
	}
	release()

	if err := m.Clean(); err != nil {
		t.Fatalf("Clean failed: %v", err)
	}
	if _, err := os.Stat(entry.ProjectDir); !os.IsNotExist(err) {
		t.Error("expected project directory removed by Clean")
	}

	// The cache must be usable again after cleaning.
	_, hit, release2, err := m.Acquire(manifestFor(domain.Declaration{Name: "num_cpus"}), false)
	if err != nil {
		t.Fatalf("Acquire after Clean failed: %v", err)
	}
	release2()
	if hit {
		t.Error("expected a miss after Clean")
	}
}
