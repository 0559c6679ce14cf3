// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/evalrs/internal/core/domain"
)

// BuildDriver runs the toolchain against a materialized project and
// relays its output verbatim.
//
//go:generate go run go.uber.org/mock/mockgen -source=driver.go -destination=mocks/mock_driver.go -package=mocks
type BuildDriver interface {
	// Run executes the toolchain in the given project directory. It
	// returns the child's exit code together with an ErrBuildFailed
	// error when the code is non-zero. Any retry policy for transient
	// failures belongs to the driver, not its callers.
	Run(ctx context.Context, projectDir string, opts domain.EvalOptions) (int, error)
}
