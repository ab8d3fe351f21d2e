package skillgraph

import (
	"fmt"
	"sort"
)

// Neighbor is one entry in a top-K query result
type Neighbor struct {
	SkillID string `json:"skill_id"`
	Weight  int    `json:"weight"`
}

// TopNeighbors returns up to k neighbors of skillID ordered by descending
// co-occurrence weight, ties broken by ascending skill identifier. Returns
// ErrSkillNotFound when skillID is not a node. k <= 0 yields an empty result.
func (g *Graph) TopNeighbors(skillID string, k int) ([]Neighbor, error) {
	adjacent, ok := g.adj[skillID]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrSkillNotFound, skillID)
	}

	out := make([]Neighbor, 0, len(adjacent))
	for id, w := range adjacent {
		out = append(out, Neighbor{SkillID: id, Weight: w})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Weight != out[j].Weight {
			return out[i].Weight > out[j].Weight
		}
		return out[i].SkillID < out[j].SkillID
	})

	if k < 0 {
		k = 0
	}
	if len(out) > k {
		out = out[:k]
	}

	return out, nil
}

// Hub pairs a skill with its degree, used for network-level summaries
type Hub struct {
	SkillID string `json:"skill_id"`
	Degree  int    `json:"degree"`
}

// TopHubs returns up to k skills with the highest degree, ties broken by
// ascending skill identifier.
func (g *Graph) TopHubs(k int) []Hub {
	out := make([]Hub, 0, len(g.order))
	for _, id := range g.order {
		out = append(out, Hub{SkillID: id, Degree: len(g.adj[id])})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Degree != out[j].Degree {
			return out[i].Degree > out[j].Degree
		}
		return out[i].SkillID < out[j].SkillID
	})

	if k < 0 {
		k = 0
	}
	if len(out) > k {
		out = out[:k]
	}

	return out
}
