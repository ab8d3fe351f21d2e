package tools

import (
	"strings"
	"testing"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// contentText concatenates the text content of a tool result
func contentText(t *testing.T, res *sdkmcp.CallToolResult) string {
	t.Helper()

	if res == nil {
		t.Fatal("nil tool result")
	}

	var sb strings.Builder
	for _, c := range res.Content {
		if tc, ok := c.(*sdkmcp.TextContent); ok {
			sb.WriteString(tc.Text)
		}
	}
	return sb.String()
}
