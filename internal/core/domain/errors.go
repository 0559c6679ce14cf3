package domain

import (
	"errors"

	"go.trai.ch/zerr"
)

var (
	// ErrMalformedDeclaration is returned when a declaration-shaped line
	// cannot be parsed (e.g., missing identifier or terminator).
	ErrMalformedDeclaration = zerr.New("malformed dependency declaration")

	// ErrMalformedAnnotation is returned when a declaration carries a
	// trailing version annotation that cannot be parsed.
	ErrMalformedAnnotation = zerr.New("malformed version annotation")

	// ErrDuplicateDependency is returned when the same crate is declared
	// more than once in a snippet.
	ErrDuplicateDependency = zerr.New("dependency declared twice")

	// ErrCacheCorrupted marks an on-disk cache entry that is inconsistent
	// with its key. It is recovered locally by treating the lookup as a
	// miss and is never surfaced to the user.
	ErrCacheCorrupted = zerr.New("cache entry inconsistent with its key")

	// ErrBuildFailed wraps a non-zero exit from the build driver. The
	// child's output has already been relayed verbatim; the exit code is
	// attached as metadata.
	ErrBuildFailed = zerr.New("build failed")
)

// ExitStatus extracts the child process exit code carried by an
// ErrBuildFailed error. It returns 1 when no code is recorded.
func ExitStatus(err error) int {
	var z *zerr.Error
	if errors.As(err, &z) {
		if code, ok := z.Metadata()["exit_code"].(int); ok {
			return code
		}
	}
	return 1
}
