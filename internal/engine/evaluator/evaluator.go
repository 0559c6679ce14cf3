// Package evaluator orchestrates a single snippet evaluation: parse,
// wrap, acquire a cached project, write the source, and hand off to the
// build driver.
package evaluator

import (
	"context"
	"fmt"

	"go.trai.ch/evalrs/internal/core/domain"
	"go.trai.ch/evalrs/internal/core/ports"
	"go.trai.ch/evalrs/internal/snippet"
	"go.trai.ch/zerr"
)

// Evaluator translates a snippet into a runnable cargo project and
// executes it.
type Evaluator struct {
	cache  ports.ProjectCache
	mat    ports.ProjectMaterializer
	driver ports.BuildDriver
	logger ports.Logger
}

// NewEvaluator creates a new Evaluator.
func NewEvaluator(cache ports.ProjectCache, mat ports.ProjectMaterializer, driver ports.BuildDriver, logger ports.Logger) *Evaluator {
	return &Evaluator{
		cache:  cache,
		mat:    mat,
		driver: driver,
		logger: logger,
	}
}

// Evaluate runs the given snippet. The project directory stays locked
// for the full build so concurrent evaluations with the same dependency
// set cannot interleave inside one directory.
func (e *Evaluator) Evaluate(ctx context.Context, input string, opts domain.EvalOptions) error {
	snip, err := snippet.Parse(input)
	if err != nil {
		return err
	}
	source := snippet.Wrap(snip, snippet.WrapOptions{PrintResult: opts.PrintResult})

	manifest := domain.NewManifest(snip.Declarations)
	entry, hit, release, err := e.cache.Acquire(manifest, opts.NoCache)
	if err != nil {
		return zerr.Wrap(err, "failed to acquire project")
	}
	defer release()

	if hit {
		e.logger.Info(fmt.Sprintf("reusing cached project %s", entry.Key))
	} else {
		e.logger.Info(fmt.Sprintf("materialized project %s", entry.Key))
	}

	if err := e.mat.WriteSource(entry.ProjectDir, source); err != nil {
		return zerr.Wrap(err, "failed to write snippet source")
	}

	if _, err := e.driver.Run(ctx, entry.ProjectDir, opts); err != nil {
		return err
	}
	return nil
}
