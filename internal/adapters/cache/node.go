package cache

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/evalrs/internal/adapters/cargo"
	"go.trai.ch/evalrs/internal/adapters/config"
	"go.trai.ch/evalrs/internal/adapters/logger"
	"go.trai.ch/evalrs/internal/core/domain"
	"go.trai.ch/evalrs/internal/core/ports"
)

const NodeID graft.ID = "adapter.project_cache"

func init() {
	graft.Register(graft.Node[ports.ProjectCache]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			cargo.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (ports.ProjectCache, error) {
			settings, err := graft.Dep[domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			mat, err := graft.Dep[ports.ProjectMaterializer](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewManager(settings.CacheDir, settings.MaxCacheEntries, mat, log)
		},
	})
}
