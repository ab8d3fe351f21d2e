package repository

import (
	"context"
	"time"

	"github.com/honeycarbs/skillnet/internal/domain/skillgraph"
)

// ExportSummary reports what an export run wrote
type ExportSummary struct {
	RunID       string    `json:"run_id"`
	Nodes       int       `json:"nodes"`
	Edges       int       `json:"edges"`
	CompletedAt time.Time `json:"completed_at"`
}

// GraphRepository defines the one-way export of a finished skill graph to
// external graph storage. The in-memory graph stays the source of truth;
// exporting never mutates it.
type GraphRepository interface {
	ExportGraph(ctx context.Context, g *skillgraph.Graph) (ExportSummary, error)
}
