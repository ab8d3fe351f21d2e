// Package network owns the long-lived skill graph: it aggregates the input
// records once, builds the graph, and serves queries and insight projections
// over the finished artifact.
package network

import (
	"context"
	"fmt"
	"time"

	"github.com/honeycarbs/skillnet/internal/domain"
	"github.com/honeycarbs/skillnet/internal/domain/cooccur"
	"github.com/honeycarbs/skillnet/internal/domain/insight"
	"github.com/honeycarbs/skillnet/internal/domain/skillgraph"
)

// DefaultNeighborLimit caps top-K queries that do not specify a limit.
const DefaultNeighborLimit = 10

const topHubCount = 5

// Stats summarizes the built network
type Stats struct {
	Skills   int              `json:"skills"`
	Edges    int              `json:"edges"`
	JobTypes int              `json:"job_types"`
	Regions  int              `json:"regions"`
	TopHubs  []skillgraph.Hub `json:"top_hubs,omitempty"`
	BuiltAt  time.Time        `json:"built_at"`
}

// Service answers queries over the skill co-occurrence network
type Service interface {
	TopNeighbors(ctx context.Context, skillID string, limit int) ([]skillgraph.Neighbor, error)
	RegionalInsights(ctx context.Context) []domain.RegionCount
	Stats(ctx context.Context) Stats
	Graph() *skillgraph.Graph
}

// Option configures Service
type Option func(*config)

type config struct {
	records []domain.SkillRecord
	workers int
	clock   func() time.Time
}

// WithRecords sets the input records
func WithRecords(records []domain.SkillRecord) Option {
	return func(c *config) {
		c.records = records
	}
}

// WithWorkers enables partitioned aggregation across n workers
func WithWorkers(n int) Option {
	return func(c *config) {
		c.workers = n
	}
}

// WithClock sets a custom clock
func WithClock(clock func() time.Time) Option {
	return func(c *config) {
		c.clock = clock
	}
}

// NewService aggregates the records, builds the graph, and returns a service
// over the finished network. The records themselves are not retained; the
// regional projection is computed up front.
func NewService(opts ...Option) (Service, error) {
	cfg := &config{
		workers: 1,
		clock:   time.Now,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.records == nil {
		return nil, fmt.Errorf("network.Service: records are required")
	}

	agg := cooccur.AggregateParallel(cfg.records, cfg.workers)

	graph, err := skillgraph.Build(agg)
	if err != nil {
		return nil, fmt.Errorf("network.Service: build graph: %w", err)
	}

	regions := insight.RegionJobTypeCounts(cfg.records)

	return &service{
		graph:    graph,
		regions:  insight.RegionRows(regions),
		jobTypes: agg.JobTypes,
		builtAt:  cfg.clock().UTC(),
	}, nil
}

type service struct {
	graph    *skillgraph.Graph
	regions  []domain.RegionCount
	jobTypes int
	builtAt  time.Time
}

// TopNeighbors returns the most related skills for skillID
func (s *service) TopNeighbors(ctx context.Context, skillID string, limit int) ([]skillgraph.Neighbor, error) {
	_ = ctx
	if limit <= 0 {
		limit = DefaultNeighborLimit
	}
	return s.graph.TopNeighbors(skillID, limit)
}

// RegionalInsights returns distinct job-type counts per region
func (s *service) RegionalInsights(ctx context.Context) []domain.RegionCount {
	_ = ctx
	out := make([]domain.RegionCount, len(s.regions))
	copy(out, s.regions)
	return out
}

// Stats returns network-level counts and the highest-degree skills
func (s *service) Stats(ctx context.Context) Stats {
	_ = ctx
	return Stats{
		Skills:   s.graph.NodeCount(),
		Edges:    s.graph.EdgeCount(),
		JobTypes: s.jobTypes,
		Regions:  len(s.regions),
		TopHubs:  s.graph.TopHubs(topHubCount),
		BuiltAt:  s.builtAt,
	}
}

// Graph exposes the built graph to export collaborators
func (s *service) Graph() *skillgraph.Graph {
	return s.graph
}
