package mcp

import (
	"context"

	"github.com/honeycarbs/skillnet/internal/config"
	"github.com/honeycarbs/skillnet/internal/domain/network"
	"github.com/honeycarbs/skillnet/internal/mcp/tools"
	"github.com/honeycarbs/skillnet/pkg/logging"
	pkgneo4j "github.com/honeycarbs/skillnet/pkg/neo4j"
)

// Resources bundles everything the tool surface depends on.
// GraphExporter and Reporter stay nil when their integration is not
// configured; the tools report that instead of failing registration.
type Resources struct {
	Network       network.Service
	GraphExporter tools.GraphExporter
	Reporter      tools.ReportExporter
	Neo4jClient   *pkgneo4j.Client
}

// Close releases long-lived connections held by the resources
func (r *Resources) Close(ctx context.Context) error {
	if r.Neo4jClient != nil {
		return r.Neo4jClient.Close(ctx)
	}
	return nil
}

// Initialize builds the resource set and logs which optional integrations
// are active.
func Initialize(ctx context.Context, cfg config.Config, logger *logging.Logger) (*Resources, error) {
	res, err := InitializeResources(ctx, cfg)
	if err != nil {
		return nil, err
	}

	if res.Neo4jClient != nil {
		logger.Info("Neo4j export enabled", "uri", cfg.Neo4j.URI)
	} else {
		logger.Info("Neo4j export disabled")
	}

	if res.Reporter != nil {
		logger.Info("Sheets report export enabled")
	} else {
		logger.Info("Sheets report export disabled")
	}

	return res, nil
}
