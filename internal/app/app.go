// Package app implements the application layer for evalrs.
package app

import (
	"context"

	"go.trai.ch/evalrs/internal/core/domain"
	"go.trai.ch/evalrs/internal/core/ports"
	"go.trai.ch/evalrs/internal/engine/evaluator"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	evaluator *evaluator.Evaluator
	cache     ports.ProjectCache
	logger    ports.Logger
}

// New creates a new App instance.
func New(eval *evaluator.Evaluator, cache ports.ProjectCache, logger ports.Logger) *App {
	return &App{
		evaluator: eval,
		cache:     cache,
		logger:    logger,
	}
}

// Eval evaluates a single snippet.
func (a *App) Eval(ctx context.Context, input string, opts domain.EvalOptions) error {
	return a.evaluator.Evaluate(ctx, input, opts)
}

// Clean removes every cached project.
func (a *App) Clean(_ context.Context) error {
	if err := a.cache.Clean(); err != nil {
		return zerr.Wrap(err, "failed to clean project cache")
	}
	a.logger.Info("project cache cleaned")
	return nil
}

// Components bundles the application with the dependencies the CLI
// needs direct access to.
type Components struct {
	App    *App
	Logger ports.Logger
}
