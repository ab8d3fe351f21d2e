package insight

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/honeycarbs/skillnet/internal/domain"
)

func TestRegionJobTypeCounts(t *testing.T) {
	records := []domain.SkillRecord{
		{ElementID: "1", ElementName: "A", Region: "west"},
		{ElementID: "1", ElementName: "B", Region: "west"}, // same job type, counts once
		{ElementID: "2", ElementName: "A", Region: "west"},
		{ElementID: "3", ElementName: "C", Region: "east"},
		{ElementID: "4", ElementName: "D"}, // no region, skipped
	}

	counts := RegionJobTypeCounts(records)

	assert.Equal(t, map[string]int{"west": 2, "east": 1}, counts)
}

func TestRegionJobTypeCounts_JobTypeSpanningRegions(t *testing.T) {
	records := []domain.SkillRecord{
		{ElementID: "1", ElementName: "A", Region: "west"},
		{ElementID: "1", ElementName: "B", Region: "east"},
	}

	counts := RegionJobTypeCounts(records)

	assert.Equal(t, map[string]int{"west": 1, "east": 1}, counts)
}

func TestRegionJobTypeCounts_Empty(t *testing.T) {
	assert.Empty(t, RegionJobTypeCounts(nil))
}

func TestRegionRows_SortedByRegion(t *testing.T) {
	rows := RegionRows(map[string]int{"west": 2, "east": 1, "north": 5})

	assert.Equal(t, []domain.RegionCount{
		{Region: "east", JobTypes: 1},
		{Region: "north", JobTypes: 5},
		{Region: "west", JobTypes: 2},
	}, rows)
}
