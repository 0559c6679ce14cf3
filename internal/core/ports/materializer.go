package ports

import "go.trai.ch/evalrs/internal/core/domain"

// ProjectMaterializer turns a manifest and wrapped source into an
// on-disk project the toolchain can build.
//
//go:generate go run go.uber.org/mock/mockgen -source=materializer.go -destination=mocks/mock_materializer.go -package=mocks
type ProjectMaterializer interface {
	// WriteProject writes the project skeleton and manifest file into
	// dir. It is called on cache misses only; on hits the manifest and
	// its lock/resolution metadata are reused as-is.
	WriteProject(dir string, manifest domain.Manifest) error

	// WriteSource overwrites the project's source file with the wrapped
	// snippet body. It is called before every build, cached or not.
	WriteSource(dir string, source string) error
}
