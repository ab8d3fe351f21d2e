// Interactive terminal client for the skill network server. Prompts for a
// skill identifier and prints its most related skills via the
// skill_neighbors tool.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	mcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

func main() {
	endpoint := flag.String("endpoint", "http://localhost:8080/mcp/stream", "MCP server endpoint")
	limit := flag.Int("limit", 10, "maximum related skills per query")
	flag.Parse()

	ctx := context.Background()

	client := mcp.NewClient(&mcp.Implementation{
		Name:    "skillnet-query-client",
		Version: "0.1.0",
	}, nil)

	session, err := client.Connect(ctx, &mcp.StreamableClientTransport{
		Endpoint: *endpoint,
	}, nil)
	if err != nil {
		log.Fatalf("Failed to connect: %v", err)
	}
	defer func() { _ = session.Close() }()

	fmt.Printf("Connected to %s (session ID: %s)\n", *endpoint, session.ID())
	fmt.Println("Enter a Skill ID (e.g. 2.A.1.a), or blank to quit.")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}

		skillID := strings.TrimSpace(scanner.Text())
		if skillID == "" {
			break
		}

		result, err := session.CallTool(ctx, &mcp.CallToolParams{
			Name: "skill_neighbors",
			Arguments: map[string]any{
				"skill_id": skillID,
				"limit":    *limit,
			},
		})
		if err != nil {
			fmt.Printf("query failed: %v\n", err)
			continue
		}

		printResult(result)
	}

	if err := scanner.Err(); err != nil {
		log.Fatalf("read input: %v", err)
	}
}

func printResult(result *mcp.CallToolResult) {
	for _, content := range result.Content {
		if text, ok := content.(*mcp.TextContent); ok {
			fmt.Println(text.Text)
		}
	}
}
