package mcp

import (
	"context"
	"fmt"

	"github.com/honeycarbs/skillnet/internal/domain/network"
	"github.com/honeycarbs/skillnet/internal/repository"
)

// graphExportAdapter binds the built graph to a GraphRepository so the
// export_graph tool does not need to know about either.
type graphExportAdapter struct {
	network network.Service
	repo    repository.GraphRepository
}

func (a *graphExportAdapter) Export(ctx context.Context) (repository.ExportSummary, error) {
	if a.repo == nil {
		return repository.ExportSummary{}, fmt.Errorf("mcp: graph repository not configured")
	}
	return a.repo.ExportGraph(ctx, a.network.Graph())
}
