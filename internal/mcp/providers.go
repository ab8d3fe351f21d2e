package mcp

import (
	"context"
	"time"

	"github.com/honeycarbs/skillnet/internal/config"
	"github.com/honeycarbs/skillnet/internal/domain"
	"github.com/honeycarbs/skillnet/internal/domain/network"
	"github.com/honeycarbs/skillnet/internal/ingest"
	"github.com/honeycarbs/skillnet/internal/mcp/tools"
	"github.com/honeycarbs/skillnet/internal/metrics"
	storage "github.com/honeycarbs/skillnet/internal/storage/neo4j"
	pkgneo4j "github.com/honeycarbs/skillnet/pkg/neo4j"
	sheetsclient "github.com/honeycarbs/skillnet/pkg/sheets"
)

// provideRecords loads the skills dataset from the configured path
func provideRecords(cfg config.Config) ([]domain.SkillRecord, error) {
	return ingest.LoadCSV(cfg.DatasetPath)
}

// provideNetworkService aggregates the records and builds the graph once,
// recording build duration and graph size metrics.
func provideNetworkService(cfg config.Config, records []domain.SkillRecord) (network.Service, error) {
	start := time.Now()

	svc, err := network.NewService(
		network.WithRecords(records),
		network.WithWorkers(cfg.AggregateWorkers),
	)
	if err != nil {
		return nil, err
	}

	metrics.GraphBuildDuration.Observe(time.Since(start).Seconds())

	g := svc.Graph()
	metrics.SkillCount.Set(float64(g.NodeCount()))
	metrics.EdgeCount.Set(float64(g.EdgeCount()))

	return svc, nil
}

// provideNeo4jClient connects to Neo4j when configured, nil otherwise
func provideNeo4jClient(cfg config.Config) (*pkgneo4j.Client, error) {
	if !cfg.Neo4jConfigured() {
		return nil, nil
	}
	return pkgneo4j.NewClient(pkgneo4j.Config{
		URI:      cfg.Neo4j.URI,
		Username: cfg.Neo4j.Username,
		Password: cfg.Neo4j.Password,
	})
}

// provideGraphExporter binds the graph repository to the built network
func provideGraphExporter(client *pkgneo4j.Client, svc network.Service) tools.GraphExporter {
	if client == nil {
		return nil
	}
	return &graphExportAdapter{
		network: svc,
		repo:    storage.NewGraphRepository(client),
	}
}

// provideReportExporter creates the Sheets report adapter when configured
func provideReportExporter(ctx context.Context, cfg config.Config, svc network.Service) (tools.ReportExporter, error) {
	if !cfg.SheetsConfigured() {
		return nil, nil
	}

	client, err := sheetsclient.NewClient(ctx, sheetsclient.Config{
		CredentialsPath: cfg.Sheets.CredentialsPath,
	})
	if err != nil {
		return nil, err
	}

	return &sheetsReportAdapter{
		client:  client,
		network: svc,
		clock:   time.Now,
	}, nil
}

// newResources creates the Resources struct
func newResources(
	svc network.Service,
	neo4jClient *pkgneo4j.Client,
	graphExporter tools.GraphExporter,
	reporter tools.ReportExporter,
) *Resources {
	return &Resources{
		Network:       svc,
		GraphExporter: graphExporter,
		Reporter:      reporter,
		Neo4jClient:   neo4jClient,
	}
}
