package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/evalrs/internal/adapters/cache"  //nolint:depguard // Wired in app layer
	"go.trai.ch/evalrs/internal/adapters/logger" //nolint:depguard // Wired in app layer
	"go.trai.ch/evalrs/internal/core/ports"
	"go.trai.ch/evalrs/internal/engine/evaluator"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			evaluator.NodeID,
			cache.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			eval, err := graft.Dep[*evaluator.Evaluator](ctx)
			if err != nil {
				return nil, err
			}

			projectCache, err := graft.Dep[ports.ProjectCache](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(eval, projectCache, log), nil
		},
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			a, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: a, Logger: log}, nil
		},
	})
}
