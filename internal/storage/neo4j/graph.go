package neo4j

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/honeycarbs/skillnet/internal/domain/skillgraph"
	"github.com/honeycarbs/skillnet/internal/repository"
	pkgneo4j "github.com/honeycarbs/skillnet/pkg/neo4j"
)

var _ repository.GraphRepository = (*GraphRepository)(nil)

// GraphRepository exports the skill graph to Neo4j
type GraphRepository struct {
	client *pkgneo4j.Client
	clock  func() time.Time
}

// NewGraphRepository creates a GraphRepository with a Neo4j client
func NewGraphRepository(client *pkgneo4j.Client) *GraphRepository {
	return &GraphRepository{
		client: client,
		clock:  time.Now,
	}
}

// ExportGraph merges Skill nodes and CO_OCCURS relationships into Neo4j.
// Nodes keyed by skill id, relationships by the node pair; weights and the
// export run id overwrite previous values so repeated exports converge.
func (r *GraphRepository) ExportGraph(ctx context.Context, g *skillgraph.Graph) (repository.ExportSummary, error) {
	summary := repository.ExportSummary{
		RunID: uuid.NewString(),
	}

	if g == nil {
		return summary, fmt.Errorf("neo4j: graph is nil")
	}

	session := r.client.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close(ctx)

	nodeQuery := `
		UNWIND $nodes AS node
		MERGE (s:Skill {id: node.id})
		SET s.region = CASE WHEN node.region <> "" THEN node.region ELSE s.region END,
		    s.exportRun = $runId
	`

	edgeQuery := `
		UNWIND $edges AS edge
		MATCH (a:Skill {id: edge.a})
		MATCH (b:Skill {id: edge.b})
		MERGE (a)-[rel:CO_OCCURS]-(b)
		SET rel.weight = edge.weight,
		    rel.exportRun = $runId
	`

	nodes := g.Nodes()
	nodesData := make([]map[string]interface{}, 0, len(nodes))
	for _, node := range nodes {
		nodesData = append(nodesData, map[string]interface{}{
			"id":     node.ID,
			"region": node.Region,
		})
	}

	edges := g.Edges()
	edgesData := make([]map[string]interface{}, 0, len(edges))
	for _, edge := range edges {
		edgesData = append(edgesData, map[string]interface{}{
			"a":      edge.A,
			"b":      edge.B,
			"weight": edge.Weight,
		})
	}

	_, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		result, err := tx.Run(ctx, nodeQuery, map[string]interface{}{
			"nodes": nodesData,
			"runId": summary.RunID,
		})
		if err != nil {
			return nil, fmt.Errorf("merge skill nodes: %w", err)
		}
		if _, err := result.Consume(ctx); err != nil {
			return nil, err
		}

		if len(edgesData) > 0 {
			result, err = tx.Run(ctx, edgeQuery, map[string]interface{}{
				"edges": edgesData,
				"runId": summary.RunID,
			})
			if err != nil {
				return nil, fmt.Errorf("merge co-occurrence edges: %w", err)
			}
			if _, err := result.Consume(ctx); err != nil {
				return nil, err
			}
		}

		return nil, nil
	})
	if err != nil {
		return summary, fmt.Errorf("neo4j: export graph: %w", err)
	}

	summary.Nodes = len(nodesData)
	summary.Edges = len(edgesData)
	summary.CompletedAt = r.clock().UTC()

	return summary, nil
}
