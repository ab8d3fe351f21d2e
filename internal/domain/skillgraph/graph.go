// Package skillgraph materializes the weighted undirected skill network and
// answers nearest-neighbor queries over it. A Graph is built once from an
// aggregation and never mutated afterwards.
package skillgraph

import (
	"sort"

	"github.com/honeycarbs/skillnet/internal/domain/cooccur"
)

// Node is one skill in the network
type Node struct {
	ID     string `json:"id"`
	Region string `json:"region,omitempty"`
}

// Edge connects two skills with their co-occurrence weight, A < B canonical
type Edge struct {
	A      string `json:"a"`
	B      string `json:"b"`
	Weight int    `json:"weight"`
}

// Graph is the immutable weighted skill network.
// Skills with no co-occurring partner remain as degree-0 nodes.
type Graph struct {
	nodes map[string]Node
	order []string // node ids in first-seen record order
	adj   map[string]map[string]int
	edges int
}

// Build materializes a Graph from an aggregation: one node per skill with its
// resolved region, one edge per counted pair. Returns a *ValidationError when
// a pair references a skill missing from the skill set.
func Build(agg cooccur.Aggregation) (*Graph, error) {
	g := &Graph{
		nodes: make(map[string]Node, len(agg.Skills)),
		order: make([]string, 0, len(agg.Skills)),
		adj:   make(map[string]map[string]int, len(agg.Skills)),
	}

	for _, id := range agg.Skills {
		if _, ok := g.nodes[id]; ok {
			continue
		}
		g.nodes[id] = Node{ID: id, Region: agg.Regions[id]}
		g.order = append(g.order, id)
		g.adj[id] = make(map[string]int)
	}

	for pair, weight := range agg.Pairs {
		if _, ok := g.nodes[pair.A]; !ok {
			return nil, &ValidationError{SkillID: pair.A, PairA: pair.A, PairB: pair.B}
		}
		if _, ok := g.nodes[pair.B]; !ok {
			return nil, &ValidationError{SkillID: pair.B, PairA: pair.A, PairB: pair.B}
		}
		if pair.A == pair.B {
			// excluded upstream by distinct-index enumeration; a self pair
			// here means the aggregation was not produced by the aggregator
			return nil, &ValidationError{SkillID: pair.A, PairA: pair.A, PairB: pair.B}
		}
		g.adj[pair.A][pair.B] = weight
		g.adj[pair.B][pair.A] = weight
		g.edges++
	}

	return g, nil
}

// Node returns the node for id, reporting whether it exists
func (g *Graph) Node(id string) (Node, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

// HasSkill reports whether id is a node in the graph
func (g *Graph) HasSkill(id string) bool {
	_, ok := g.nodes[id]
	return ok
}

// Nodes returns all nodes in first-seen record order
func (g *Graph) Nodes() []Node {
	out := make([]Node, 0, len(g.order))
	for _, id := range g.order {
		out = append(out, g.nodes[id])
	}
	return out
}

// Edges returns all edges sorted by (A, B)
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, g.edges)
	for a, neighbors := range g.adj {
		for b, w := range neighbors {
			if a < b {
				out = append(out, Edge{A: a, B: b, Weight: w})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].A != out[j].A {
			return out[i].A < out[j].A
		}
		return out[i].B < out[j].B
	})
	return out
}

// NodeCount returns the number of skills in the graph
func (g *Graph) NodeCount() int {
	return len(g.order)
}

// EdgeCount returns the number of distinct co-occurring pairs
func (g *Graph) EdgeCount() int {
	return g.edges
}

// Degree returns the number of neighbors of id
func (g *Graph) Degree(id string) (int, error) {
	neighbors, ok := g.adj[id]
	if !ok {
		return 0, ErrSkillNotFound
	}
	return len(neighbors), nil
}

// Weight returns the co-occurrence weight between a and b, reporting whether
// the edge exists. Missing nodes and missing edges both report false.
func (g *Graph) Weight(a, b string) (int, bool) {
	neighbors, ok := g.adj[a]
	if !ok {
		return 0, false
	}
	w, ok := neighbors[b]
	return w, ok
}
