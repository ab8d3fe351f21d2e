package skillgraph

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/honeycarbs/skillnet/internal/domain"
	"github.com/honeycarbs/skillnet/internal/domain/cooccur"
)

func buildFixture(t *testing.T) *Graph {
	t.Helper()

	records := []domain.SkillRecord{
		{ElementID: "1", ElementName: "A", Region: "west"},
		{ElementID: "1", ElementName: "B"},
		{ElementID: "1", ElementName: "C"},
		{ElementID: "2", ElementName: "A", Region: "east"},
		{ElementID: "2", ElementName: "B"},
		{ElementID: "3", ElementName: "D", Region: "north"}, // isolated skill
	}

	g, err := Build(cooccur.Aggregate(records))
	require.NoError(t, err)
	return g
}

func TestBuild_NodesAndEdges(t *testing.T) {
	g := buildFixture(t)

	assert.Equal(t, 4, g.NodeCount())
	assert.Equal(t, 3, g.EdgeCount())

	nodes := g.Nodes()
	require.Len(t, nodes, 4)
	assert.Equal(t, []Node{
		{ID: "A", Region: "west"},
		{ID: "B"},
		{ID: "C"},
		{ID: "D", Region: "north"},
	}, nodes)

	assert.Equal(t, []Edge{
		{A: "A", B: "B", Weight: 2},
		{A: "A", B: "C", Weight: 1},
		{A: "B", B: "C", Weight: 1},
	}, g.Edges())
}

func TestBuild_IsolatedNodeKept(t *testing.T) {
	g := buildFixture(t)

	require.True(t, g.HasSkill("D"))
	degree, err := g.Degree("D")
	require.NoError(t, err)
	assert.Zero(t, degree)
}

func TestBuild_NoSelfLoops(t *testing.T) {
	g := buildFixture(t)

	for _, e := range g.Edges() {
		assert.NotEqual(t, e.A, e.B)
	}
	_, ok := g.Weight("A", "A")
	assert.False(t, ok)
}

func TestBuild_Symmetry(t *testing.T) {
	g := buildFixture(t)

	for _, e := range g.Edges() {
		ab, okAB := g.Weight(e.A, e.B)
		ba, okBA := g.Weight(e.B, e.A)
		require.True(t, okAB)
		require.True(t, okBA)
		assert.Equal(t, ab, ba)
		assert.Equal(t, e.Weight, ab)
	}
}

func TestBuild_UnknownSkillInPair(t *testing.T) {
	agg := cooccur.Aggregation{
		Pairs:   cooccur.PairCounts{cooccur.MakePair("A", "ghost"): 1},
		Skills:  []string{"A"},
		Regions: map[string]string{},
	}

	g, err := Build(agg)

	require.Nil(t, g)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInconsistentInput)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "ghost", verr.SkillID)
}

func TestBuild_Deterministic(t *testing.T) {
	first := buildFixture(t)
	second := buildFixture(t)

	assert.Equal(t, first.Nodes(), second.Nodes())
	assert.Equal(t, first.Edges(), second.Edges())
}

func TestGraph_WeightMissingNode(t *testing.T) {
	g := buildFixture(t)

	_, ok := g.Weight("ghost", "A")
	assert.False(t, ok)

	_, err := g.Degree("ghost")
	assert.ErrorIs(t, err, ErrSkillNotFound)
}
