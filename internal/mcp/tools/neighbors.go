package tools

import (
	"context"
	"errors"
	"fmt"
	"strings"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/honeycarbs/skillnet/internal/domain"
	"github.com/honeycarbs/skillnet/internal/domain/network"
	"github.com/honeycarbs/skillnet/internal/domain/skillgraph"
	"github.com/honeycarbs/skillnet/pkg/logging"
)

// NetworkService answers queries over the built skill network
type NetworkService interface {
	TopNeighbors(ctx context.Context, skillID string, limit int) ([]skillgraph.Neighbor, error)
	RegionalInsights(ctx context.Context) []domain.RegionCount
	Stats(ctx context.Context) network.Stats
}

// SkillNeighborsParams defines the arguments for the skill_neighbors tool
type SkillNeighborsParams struct {
	SkillID string `json:"skill_id" jsonschema:"Skill identifier to look up (e.g. 2.A.1.a)"`
	Limit   int    `json:"limit,omitempty" jsonschema:"Maximum neighbors to return; defaults to 10"`
}

// SkillNeighborsResult lists the most related skills by co-occurrence weight
type SkillNeighborsResult struct {
	SkillID   string                `json:"skill_id" jsonschema:"Skill that was queried"`
	Neighbors []skillgraph.Neighbor `json:"neighbors" jsonschema:"Related skills ordered by descending weight"`
}

type skillNeighborsTool struct {
	svc    NetworkService
	logger *logging.Logger
}

// WithSkillNeighbors registers the skill_neighbors tool
func WithSkillNeighbors(svc NetworkService, logger *logging.Logger) Option {
	return func(reg *registry) {
		handler := skillNeighborsTool{svc: svc, logger: logger}
		sdkmcp.AddTool(reg.server, &sdkmcp.Tool{
			Name:        "skill_neighbors",
			Description: "Look up the most related skills by job-type co-occurrence weight",
		}, handler.handle)
	}
}

func (t skillNeighborsTool) handle(ctx context.Context, req *sdkmcp.CallToolRequest, params *SkillNeighborsParams) (*sdkmcp.CallToolResult, any, error) {
	if t.svc == nil {
		err := fmt.Errorf("network service not configured")
		observe("skill_neighbors", "error")
		return textResult("skill_neighbors unavailable: network service not configured"), nil, err
	}

	if params == nil || strings.TrimSpace(params.SkillID) == "" {
		err := fmt.Errorf("skill_id is required")
		observe("skill_neighbors", "error")
		return textResult("skill_neighbors requires a skill_id"), nil, err
	}

	skillID := strings.TrimSpace(params.SkillID)

	neighbors, err := t.svc.TopNeighbors(ctx, skillID, params.Limit)
	if err != nil {
		if errors.Is(err, skillgraph.ErrSkillNotFound) {
			observe("skill_neighbors", "not_found")
			if t.logger != nil {
				t.logger.Debug("skill_neighbors miss", "skill_id", skillID)
			}
			return textResult(fmt.Sprintf("Skill ID %q not found in the network", skillID)), nil, err
		}
		observe("skill_neighbors", "error")
		return textResult(fmt.Sprintf("skill_neighbors error: %v", err)), nil, err
	}

	observe("skill_neighbors", "ok")

	result := SkillNeighborsResult{
		SkillID:   skillID,
		Neighbors: neighbors,
	}

	return textResult(formatNeighbors(skillID, neighbors)), result, nil
}

func formatNeighbors(skillID string, neighbors []skillgraph.Neighbor) string {
	if len(neighbors) == 0 {
		return fmt.Sprintf("%s has no co-occurring skills", skillID)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Top related skills for %s:\n", skillID)
	for _, n := range neighbors {
		fmt.Fprintf(&sb, "- %s (co-occurrence weight: %d)\n", n.SkillID, n.Weight)
	}
	return sb.String()
}
