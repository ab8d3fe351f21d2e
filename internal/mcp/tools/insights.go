package tools

import (
	"context"
	"fmt"
	"strings"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/honeycarbs/skillnet/internal/domain"
)

// RegionalInsightsParams defines the arguments for the regional_insights tool
type RegionalInsightsParams struct{}

// RegionalInsightsResult lists distinct job-type counts per region
type RegionalInsightsResult struct {
	Regions []domain.RegionCount `json:"regions" jsonschema:"Per-region distinct job-type counts, sorted by region"`
}

type regionalInsightsTool struct {
	svc NetworkService
}

// WithRegionalInsights registers the regional_insights tool
func WithRegionalInsights(svc NetworkService) Option {
	return func(reg *registry) {
		handler := regionalInsightsTool{svc: svc}
		sdkmcp.AddTool(reg.server, &sdkmcp.Tool{
			Name:        "regional_insights",
			Description: "Count distinct job types per region across the ingested dataset",
		}, handler.handle)
	}
}

func (t regionalInsightsTool) handle(ctx context.Context, req *sdkmcp.CallToolRequest, params *RegionalInsightsParams) (*sdkmcp.CallToolResult, any, error) {
	if t.svc == nil {
		err := fmt.Errorf("network service not configured")
		observe("regional_insights", "error")
		return textResult("regional_insights unavailable: network service not configured"), nil, err
	}

	rows := t.svc.RegionalInsights(ctx)
	observe("regional_insights", "ok")

	result := RegionalInsightsResult{Regions: rows}

	if len(rows) == 0 {
		return textResult("No regional data available"), result, nil
	}

	var sb strings.Builder
	sb.WriteString("Job types by region:\n")
	for _, row := range rows {
		fmt.Fprintf(&sb, "- %s: %d\n", row.Region, row.JobTypes)
	}

	return textResult(sb.String()), result, nil
}
