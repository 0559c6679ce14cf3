package cargo

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/evalrs/internal/core/ports"
)

const NodeID graft.ID = "adapter.materializer"

func init() {
	graft.Register(graft.Node[ports.ProjectMaterializer]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.ProjectMaterializer, error) {
			return NewMaterializer(), nil
		},
	})
}
