//go:build wireinject
// +build wireinject

package mcp

import (
	"context"

	"github.com/google/wire"

	"github.com/honeycarbs/skillnet/internal/config"
)

// InitializeResources creates Resources with all resources wired up
func InitializeResources(ctx context.Context, cfg config.Config) (*Resources, error) {
	wire.Build(
		// Ingestion
		provideRecords,

		// Network service (aggregation + graph build)
		provideNetworkService,

		// Optional integrations
		provideNeo4jClient,
		provideGraphExporter,
		provideReportExporter,

		newResources,
	)

	return &Resources{}, nil
}
