package domain

// Manifest describes the synthesized project handed to the build
// driver: a deterministic name and the dependency table derived from
// the snippet's declarations.
type Manifest struct {
	// ProjectName is deterministic per cache key so repeated runs with
	// the same dependency set reuse the same project directory.
	ProjectName string

	// Dependencies maps crate name to its version spec. The mapping is
	// exactly the set of parsed declarations; the parser rejects
	// duplicates before a Manifest is built.
	Dependencies map[string]VersionSpec
}

// NewManifest builds a Manifest from parsed declarations.
func NewManifest(decls []Declaration) Manifest {
	deps := make(map[string]VersionSpec, len(decls))
	for _, d := range decls {
		deps[d.Name] = d.Spec
	}
	m := Manifest{Dependencies: deps}
	m.ProjectName = "evalrs_" + m.Fingerprint()
	return m
}

// Fingerprint returns the cache key for the manifest's dependency set.
func (m Manifest) Fingerprint() string {
	return Fingerprint(m.Dependencies)
}
