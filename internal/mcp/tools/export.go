package tools

import (
	"context"
	"fmt"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/honeycarbs/skillnet/internal/repository"
	"github.com/honeycarbs/skillnet/pkg/logging"
)

// GraphExporter writes the built skill graph to external graph storage
type GraphExporter interface {
	Export(ctx context.Context) (repository.ExportSummary, error)
}

// ExportGraphParams defines the arguments for the export_graph tool
type ExportGraphParams struct{}

type exportGraphTool struct {
	exporter GraphExporter
	logger   *logging.Logger
}

// WithExportGraph registers the export_graph tool
func WithExportGraph(exporter GraphExporter, logger *logging.Logger) Option {
	return func(reg *registry) {
		handler := exportGraphTool{exporter: exporter, logger: logger}
		sdkmcp.AddTool(reg.server, &sdkmcp.Tool{
			Name:        "export_graph",
			Description: "Export the skill network to Neo4j as Skill nodes and CO_OCCURS relationships",
		}, handler.handle)
	}
}

func (t exportGraphTool) handle(ctx context.Context, req *sdkmcp.CallToolRequest, params *ExportGraphParams) (*sdkmcp.CallToolResult, any, error) {
	if t.exporter == nil {
		err := fmt.Errorf("graph exporter not configured")
		observe("export_graph", "error")
		return textResult("export_graph unavailable: Neo4j is not configured"), nil, err
	}

	summary, err := t.exporter.Export(ctx)
	if err != nil {
		observe("export_graph", "error")
		if t.logger != nil {
			t.logger.Error("graph export failed", "err", err)
		}
		return textResult(fmt.Sprintf("export_graph error: %v", err)), nil, err
	}

	observe("export_graph", "ok")
	if t.logger != nil {
		t.logger.Info("graph exported",
			"run_id", summary.RunID,
			"nodes", summary.Nodes,
			"edges", summary.Edges,
		)
	}

	msg := fmt.Sprintf("Exported %d skills and %d edges (run %s)", summary.Nodes, summary.Edges, summary.RunID)
	return textResult(msg), summary, nil
}
