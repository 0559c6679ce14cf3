// Package cargo materializes snippet projects for the Cargo toolchain.
package cargo

import (
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"go.trai.ch/evalrs/internal/core/domain"
	"go.trai.ch/evalrs/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ProjectMaterializer = (*Materializer)(nil)

// Materializer implements ports.ProjectMaterializer for Cargo projects.
type Materializer struct{}

// NewMaterializer creates a new Materializer.
func NewMaterializer() *Materializer {
	return &Materializer{}
}

// RenderManifest renders the Cargo.toml content for a manifest. Entries
// are emitted in sorted name order so the rendering is deterministic.
func RenderManifest(m domain.Manifest) string {
	var b strings.Builder
	b.WriteString("[package]\n")
	b.WriteString("name = " + strconv.Quote(m.ProjectName) + "\n")
	b.WriteString("version = \"0.0.0\"\n")
	b.WriteString("edition = \"2021\"\n")
	b.WriteString("\n[dependencies]\n")

	names := make([]string, 0, len(m.Dependencies))
	for name := range m.Dependencies {
		names = append(names, name)
	}
	slices.Sort(names)

	for _, name := range names {
		b.WriteString(name + " = " + renderSpec(m.Dependencies[name]) + "\n")
	}
	return b.String()
}

// renderSpec renders a version spec as a manifest value: a plain
// constraint string, an inline table for local path dependencies, or
// "*" when unconstrained.
func renderSpec(spec domain.VersionSpec) string {
	switch {
	case spec.IsWildcard():
		return "\"*\""
	case spec.Path == "":
		return strconv.Quote(spec.Version)
	case spec.Version == "":
		return "{ path = " + strconv.Quote(spec.Path) + " }"
	default:
		return "{ version = " + strconv.Quote(spec.Version) + ", path = " + strconv.Quote(spec.Path) + " }"
	}
}

// WriteProject writes the project skeleton and manifest file into dir.
func (m *Materializer) WriteProject(dir string, manifest domain.Manifest) error {
	if err := os.MkdirAll(filepath.Join(dir, "src"), domain.DirPerm); err != nil {
		return zerr.Wrap(err, "failed to create project directory")
	}

	path := filepath.Join(dir, domain.ManifestFileName)
	//nolint:gosec // Path is derived from the trusted cache root
	if err := os.WriteFile(path, []byte(RenderManifest(manifest)), domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write manifest"), "path", path)
	}
	return nil
}

// WriteSource overwrites the project's source file with the wrapped
// snippet body. The dependency graph is what's cached, never the source
// of a specific snippet, so this runs before every build.
func (m *Materializer) WriteSource(dir string, source string) error {
	path := filepath.Join(dir, filepath.FromSlash(domain.SourceFileName))
	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return zerr.Wrap(err, "failed to create source directory")
	}
	//nolint:gosec // Path is derived from the trusted cache root
	if err := os.WriteFile(path, []byte(source), domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write source file"), "path", path)
	}
	return nil
}
