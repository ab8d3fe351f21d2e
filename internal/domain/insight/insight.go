// Package insight derives read-only regional projections over skill records.
// These projections are independent of the co-occurrence graph.
package insight

import (
	"sort"

	"github.com/honeycarbs/skillnet/internal/domain"
)

// RegionJobTypeCounts counts distinct job-type identifiers per region.
// Records without a region are skipped; a job type spanning several regions
// counts once in each.
func RegionJobTypeCounts(records []domain.SkillRecord) map[string]int {
	jobTypes := make(map[string]map[string]struct{})

	for _, rec := range records {
		if rec.Region == "" || rec.ElementID == "" {
			continue
		}
		set := jobTypes[rec.Region]
		if set == nil {
			set = make(map[string]struct{})
			jobTypes[rec.Region] = set
		}
		set[rec.ElementID] = struct{}{}
	}

	counts := make(map[string]int, len(jobTypes))
	for region, set := range jobTypes {
		counts[region] = len(set)
	}

	return counts
}

// RegionRows flattens a region count map into rows sorted by region name
func RegionRows(counts map[string]int) []domain.RegionCount {
	rows := make([]domain.RegionCount, 0, len(counts))
	for region, n := range counts {
		rows = append(rows, domain.RegionCount{Region: region, JobTypes: n})
	}
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].Region < rows[j].Region
	})
	return rows
}
