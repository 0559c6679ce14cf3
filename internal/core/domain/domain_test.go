package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/evalrs/internal/core/domain"
	"go.trai.ch/zerr"
)

func TestFingerprint_OrderIndependent(t *testing.T) {
	a := map[string]domain.VersionSpec{
		"num_cpus": {},
		"rand":     {Version: "0.8"},
	}
	b := map[string]domain.VersionSpec{
		"rand":     {Version: "0.8"},
		"num_cpus": {},
	}

	if domain.Fingerprint(a) != domain.Fingerprint(b) {
		t.Error("expected identical fingerprints regardless of declaration order")
	}
}

func TestFingerprint_VersionSensitive(t *testing.T) {
	unversioned := map[string]domain.VersionSpec{"num_cpus": {}}
	versioned := map[string]domain.VersionSpec{"num_cpus": {Version: "1.2.0"}}

	if domain.Fingerprint(unversioned) == domain.Fingerprint(versioned) {
		t.Error("expected version spec to change the fingerprint")
	}
}

func TestFingerprint_PathSensitive(t *testing.T) {
	local := map[string]domain.VersionSpec{"mylib": {Path: "../mylib"}}
	registry := map[string]domain.VersionSpec{"mylib": {Version: "1.0"}}

	if domain.Fingerprint(local) == domain.Fingerprint(registry) {
		t.Error("expected path spec to change the fingerprint")
	}
}

func TestVersionSpec_Canonical(t *testing.T) {
	tests := []struct {
		name     string
		spec     domain.VersionSpec
		expected string
	}{
		{"wildcard", domain.VersionSpec{}, "*"},
		{"version", domain.VersionSpec{Version: "1.2.0"}, "version=1.2.0"},
		{"path", domain.VersionSpec{Path: "/x"}, "path=/x"},
		{"both", domain.VersionSpec{Version: "1.0", Path: "/x"}, "version=1.0,path=/x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.spec.Canonical())
		})
	}
}

func TestNewManifest(t *testing.T) {
	decls := []domain.Declaration{
		{Name: "num_cpus", Spec: domain.VersionSpec{}},
		{Name: "rand", Spec: domain.VersionSpec{Version: "0.8"}},
	}

	m := domain.NewManifest(decls)

	if len(m.Dependencies) != 2 {
		t.Fatalf("expected 2 dependencies, got %d", len(m.Dependencies))
	}
	if m.ProjectName != "evalrs_"+m.Fingerprint() {
		t.Errorf("expected project name keyed off fingerprint, got %q", m.ProjectName)
	}
}

func TestCacheEntry_Consistent(t *testing.T) {
	deps := map[string]domain.VersionSpec{"num_cpus": {}}
	entry := domain.CacheEntry{
		Key:          domain.Fingerprint(deps),
		Dependencies: deps,
		CreatedAt:    time.Now(),
	}

	if !entry.Consistent() {
		t.Error("expected entry to be consistent with its key")
	}

	// Drifted mapping must be detected.
	entry.Dependencies = map[string]domain.VersionSpec{"num_cpus": {Version: "1.2.0"}}
	if entry.Consistent() {
		t.Error("expected drifted entry to be inconsistent")
	}
}

func TestExitStatus(t *testing.T) {
	err := zerr.With(domain.ErrBuildFailed, "exit_code", 101)
	assert.Equal(t, 101, domain.ExitStatus(err))

	// Errors without a recorded code default to 1.
	assert.Equal(t, 1, domain.ExitStatus(zerr.New("boom")))
}
