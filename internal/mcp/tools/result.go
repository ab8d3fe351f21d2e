package tools

import (
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/honeycarbs/skillnet/internal/metrics"
)

// textResult returns a text-only ToolResult
func textResult(msg string) *sdkmcp.CallToolResult {
	return &sdkmcp.CallToolResult{
		Content: []sdkmcp.Content{
			&sdkmcp.TextContent{Text: msg},
		},
	}
}

// observe records a tool invocation outcome
func observe(tool, outcome string) {
	metrics.ToolCallsTotal.WithLabelValues(tool, outcome).Inc()
}
