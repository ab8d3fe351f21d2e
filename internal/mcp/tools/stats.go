package tools

import (
	"context"
	"fmt"
	"strings"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// GraphStatsParams defines the arguments for the graph_stats tool
type GraphStatsParams struct{}

type graphStatsTool struct {
	svc NetworkService
}

// WithGraphStats registers the graph_stats tool
func WithGraphStats(svc NetworkService) Option {
	return func(reg *registry) {
		handler := graphStatsTool{svc: svc}
		sdkmcp.AddTool(reg.server, &sdkmcp.Tool{
			Name:        "graph_stats",
			Description: "Summarize the skill network: node/edge counts and highest-degree skills",
		}, handler.handle)
	}
}

func (t graphStatsTool) handle(ctx context.Context, req *sdkmcp.CallToolRequest, params *GraphStatsParams) (*sdkmcp.CallToolResult, any, error) {
	if t.svc == nil {
		err := fmt.Errorf("network service not configured")
		observe("graph_stats", "error")
		return textResult("graph_stats unavailable: network service not configured"), nil, err
	}

	stats := t.svc.Stats(ctx)
	observe("graph_stats", "ok")

	var sb strings.Builder
	fmt.Fprintf(&sb, "Skill network: %d skills, %d edges, %d job types, %d regions (built %s)\n",
		stats.Skills, stats.Edges, stats.JobTypes, stats.Regions, stats.BuiltAt.Format("2006-01-02 15:04:05 MST"))
	if len(stats.TopHubs) > 0 {
		sb.WriteString("Most connected skills:\n")
		for _, hub := range stats.TopHubs {
			fmt.Fprintf(&sb, "- %s (degree %d)\n", hub.SkillID, hub.Degree)
		}
	}

	return textResult(sb.String()), stats, nil
}
