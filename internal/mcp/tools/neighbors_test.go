package tools

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/honeycarbs/skillnet/internal/domain"
	"github.com/honeycarbs/skillnet/internal/domain/network"
	"github.com/honeycarbs/skillnet/internal/domain/skillgraph"
)

type fakeNetworkService struct {
	neighbors map[string][]skillgraph.Neighbor
	regions   []domain.RegionCount
	stats     network.Stats
}

func (f *fakeNetworkService) TopNeighbors(_ context.Context, skillID string, _ int) ([]skillgraph.Neighbor, error) {
	n, ok := f.neighbors[skillID]
	if !ok {
		return nil, skillgraph.ErrSkillNotFound
	}
	return n, nil
}

func (f *fakeNetworkService) RegionalInsights(_ context.Context) []domain.RegionCount {
	return f.regions
}

func (f *fakeNetworkService) Stats(_ context.Context) network.Stats {
	return f.stats
}

func TestSkillNeighbors_Found(t *testing.T) {
	svc := &fakeNetworkService{
		neighbors: map[string][]skillgraph.Neighbor{
			"A": {{SkillID: "B", Weight: 2}, {SkillID: "C", Weight: 1}},
		},
	}
	handler := skillNeighborsTool{svc: svc}

	res, out, err := handler.handle(context.Background(), nil, &SkillNeighborsParams{SkillID: "A"})
	if err != nil {
		t.Fatalf("handle: %v", err)
	}

	result, ok := out.(SkillNeighborsResult)
	if !ok {
		t.Fatalf("unexpected result type %T", out)
	}
	if result.SkillID != "A" || len(result.Neighbors) != 2 {
		t.Errorf("unexpected result: %+v", result)
	}

	text := contentText(t, res)
	if !strings.Contains(text, "B (co-occurrence weight: 2)") {
		t.Errorf("text should list B with weight 2, got: %s", text)
	}
}

func TestSkillNeighbors_NotFound(t *testing.T) {
	handler := skillNeighborsTool{svc: &fakeNetworkService{}}

	res, _, err := handler.handle(context.Background(), nil, &SkillNeighborsParams{SkillID: "ghost"})
	if !errors.Is(err, skillgraph.ErrSkillNotFound) {
		t.Fatalf("expected ErrSkillNotFound, got %v", err)
	}

	text := contentText(t, res)
	if !strings.Contains(text, "not found") {
		t.Errorf("text should report the miss, got: %s", text)
	}
}

func TestSkillNeighbors_MissingSkillID(t *testing.T) {
	handler := skillNeighborsTool{svc: &fakeNetworkService{}}

	_, _, err := handler.handle(context.Background(), nil, &SkillNeighborsParams{})
	if err == nil {
		t.Fatal("expected error without skill_id")
	}
}

func TestSkillNeighbors_NilService(t *testing.T) {
	handler := skillNeighborsTool{}

	_, _, err := handler.handle(context.Background(), nil, &SkillNeighborsParams{SkillID: "A"})
	if err == nil {
		t.Fatal("expected error without a service")
	}
}
