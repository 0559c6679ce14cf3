package evaluator

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/evalrs/internal/adapters/cache"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/evalrs/internal/adapters/cargo"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/evalrs/internal/adapters/logger" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/evalrs/internal/adapters/shell"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/evalrs/internal/core/ports"
)

// NodeID is the unique identifier for the evaluator Graft node.
const NodeID graft.ID = "engine.evaluator"

func init() {
	graft.Register(graft.Node[*Evaluator]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			cache.NodeID,
			cargo.NodeID,
			shell.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Evaluator, error) {
			projectCache, err := graft.Dep[ports.ProjectCache](ctx)
			if err != nil {
				return nil, err
			}

			mat, err := graft.Dep[ports.ProjectMaterializer](ctx)
			if err != nil {
				return nil, err
			}

			driver, err := graft.Dep[ports.BuildDriver](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewEvaluator(projectCache, mat, driver, log), nil
		},
	})
}
