package cooccur

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/honeycarbs/skillnet/internal/domain"
)

// nine job types with overlapping skill sets, enough groups to occupy
// several partitions
func partitionedFixture() []domain.SkillRecord {
	var records []domain.SkillRecord
	skills := []string{"A", "B", "C", "D", "E", "F"}
	for g := 0; g < 9; g++ {
		jobType := fmt.Sprintf("job-%d", g)
		for s := 0; s < 3; s++ {
			skill := skills[(g+s)%len(skills)]
			records = append(records, domain.SkillRecord{
				ElementID:   jobType,
				ElementName: skill,
				Region:      fmt.Sprintf("region-%d", g%2),
			})
		}
	}
	return records
}

func TestAggregateParallel_MatchesSequential(t *testing.T) {
	records := partitionedFixture()
	want := Aggregate(records)

	for _, workers := range []int{1, 2, 4, 16} {
		got := AggregateParallel(records, workers)

		assert.Equal(t, want.Pairs, got.Pairs, "workers=%d", workers)
		assert.Equal(t, want.Skills, got.Skills, "workers=%d", workers)
		assert.Equal(t, want.Regions, got.Regions, "workers=%d", workers)
		assert.Equal(t, want.JobTypes, got.JobTypes, "workers=%d", workers)
	}
}

func TestAggregateParallel_EmptyInput(t *testing.T) {
	agg := AggregateParallel(nil, 4)

	assert.Empty(t, agg.Pairs)
	assert.Empty(t, agg.Skills)
}

func TestAggregateParallel_MoreWorkersThanGroups(t *testing.T) {
	records := []domain.SkillRecord{
		{ElementID: "1", ElementName: "A"},
		{ElementID: "1", ElementName: "B"},
	}

	agg := AggregateParallel(records, 8)

	assert.Equal(t, 1, agg.Pairs[MakePair("A", "B")])
}
