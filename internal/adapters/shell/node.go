package shell

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/evalrs/internal/adapters/config"
	"go.trai.ch/evalrs/internal/adapters/logger"
	"go.trai.ch/evalrs/internal/core/domain"
	"go.trai.ch/evalrs/internal/core/ports"
)

const NodeID graft.ID = "adapter.build_driver"

func init() {
	graft.Register(graft.Node[ports.BuildDriver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (ports.BuildDriver, error) {
			settings, err := graft.Dep[domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewDriver(settings.CargoBin, os.Stdout, os.Stderr, log), nil
		},
	})
}
