package skillgraph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/honeycarbs/skillnet/internal/domain"
	"github.com/honeycarbs/skillnet/internal/domain/cooccur"
)

func queryFixture(t *testing.T) *Graph {
	t.Helper()

	// A co-occurs with B in two job types, with C and D in one each.
	records := []domain.SkillRecord{
		{ElementID: "1", ElementName: "A"},
		{ElementID: "1", ElementName: "B"},
		{ElementID: "2", ElementName: "A"},
		{ElementID: "2", ElementName: "B"},
		{ElementID: "3", ElementName: "A"},
		{ElementID: "3", ElementName: "D"},
		{ElementID: "4", ElementName: "A"},
		{ElementID: "4", ElementName: "C"},
		{ElementID: "5", ElementName: "E"},
	}

	g, err := Build(cooccur.Aggregate(records))
	require.NoError(t, err)
	return g
}

func TestTopNeighbors_OrderAndTieBreak(t *testing.T) {
	g := queryFixture(t)

	neighbors, err := g.TopNeighbors("A", 10)
	require.NoError(t, err)

	// B first on weight; C before D on the lexicographic tie-break.
	assert.Equal(t, []Neighbor{
		{SkillID: "B", Weight: 2},
		{SkillID: "C", Weight: 1},
		{SkillID: "D", Weight: 1},
	}, neighbors)
}

func TestTopNeighbors_SharedJobTypes(t *testing.T) {
	records := []domain.SkillRecord{
		{ElementID: "1", ElementName: "A"},
		{ElementID: "1", ElementName: "B"},
		{ElementID: "1", ElementName: "C"},
		{ElementID: "2", ElementName: "A"},
		{ElementID: "2", ElementName: "B"},
	}

	g, err := Build(cooccur.Aggregate(records))
	require.NoError(t, err)

	neighbors, err := g.TopNeighbors("A", 2)
	require.NoError(t, err)
	assert.Equal(t, []Neighbor{
		{SkillID: "B", Weight: 2},
		{SkillID: "C", Weight: 1},
	}, neighbors)
}

func TestTopNeighbors_TruncatesToK(t *testing.T) {
	g := queryFixture(t)

	neighbors, err := g.TopNeighbors("A", 1)
	require.NoError(t, err)
	require.Len(t, neighbors, 1)
	assert.Equal(t, "B", neighbors[0].SkillID)
}

func TestTopNeighbors_DegreeBelowK(t *testing.T) {
	g := queryFixture(t)

	neighbors, err := g.TopNeighbors("C", 10)
	require.NoError(t, err)
	assert.Equal(t, []Neighbor{{SkillID: "A", Weight: 1}}, neighbors)
}

func TestTopNeighbors_IsolatedSkill(t *testing.T) {
	g := queryFixture(t)

	neighbors, err := g.TopNeighbors("E", 10)
	require.NoError(t, err)
	assert.Empty(t, neighbors)
}

func TestTopNeighbors_UnknownSkill(t *testing.T) {
	g := queryFixture(t)

	_, err := g.TopNeighbors("ghost", 10)
	assert.ErrorIs(t, err, ErrSkillNotFound)
}

func TestTopNeighbors_ZeroK(t *testing.T) {
	g := queryFixture(t)

	neighbors, err := g.TopNeighbors("A", 0)
	require.NoError(t, err)
	assert.Empty(t, neighbors)
}

func TestTopNeighbors_DoesNotMutate(t *testing.T) {
	g := queryFixture(t)

	before := g.Edges()
	_, err := g.TopNeighbors("A", 2)
	require.NoError(t, err)
	assert.Equal(t, before, g.Edges())
}

func TestTopHubs(t *testing.T) {
	g := queryFixture(t)

	hubs := g.TopHubs(2)
	require.Len(t, hubs, 2)
	assert.Equal(t, Hub{SkillID: "A", Degree: 3}, hubs[0])
	assert.Equal(t, Hub{SkillID: "B", Degree: 1}, hubs[1]) // degree tie broken by id
}
