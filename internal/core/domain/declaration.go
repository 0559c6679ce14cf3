// Package domain contains the core data model for snippet evaluation.
package domain

import "strings"

// VersionSpec describes how a declared dependency should be resolved.
// The zero value means "resolve to the newest available version".
type VersionSpec struct {
	// Version is a plain version constraint (e.g., "1.2.0").
	Version string `json:"version,omitzero"`

	// Path points at a local filesystem dependency. When set, the
	// dependency is emitted as a path entry in the manifest.
	Path string `json:"path,omitzero"`
}

// IsWildcard reports whether the spec carries no constraint at all.
func (v VersionSpec) IsWildcard() bool {
	return v.Version == "" && v.Path == ""
}

// Canonical returns a stable textual form of the spec, used for
// fingerprinting. Two specs are cache-equivalent iff their canonical
// forms are byte-identical.
func (v VersionSpec) Canonical() string {
	if v.IsWildcard() {
		return "*"
	}
	var b strings.Builder
	if v.Version != "" {
		b.WriteString("version=")
		b.WriteString(v.Version)
	}
	if v.Path != "" {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString("path=")
		b.WriteString(v.Path)
	}
	return b.String()
}

// Declaration is a single external-dependency declaration extracted
// from a snippet.
type Declaration struct {
	// Name is the crate identifier as written in the snippet.
	Name string

	// Spec is the parsed version annotation, if any.
	Spec VersionSpec

	// Raw is the normalized declaration statement ("extern crate x;")
	// re-emitted above the synthesized entry point.
	Raw string

	// Line is the 1-based line number the declaration was found on.
	Line int
}
