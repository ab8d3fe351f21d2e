package cooccur

import (
	"golang.org/x/sync/errgroup"

	"github.com/honeycarbs/skillnet/internal/domain"
)

// AggregateParallel produces the same result as Aggregate by partitioning
// job-type groups across workers and merging partial PairCounts additively.
// Skill order and region resolution happen in the sequential collect pass,
// so they are independent of how groups land in partitions.
func AggregateParallel(records []domain.SkillRecord, workers int) Aggregation {
	agg, groups := collect(records)

	if workers <= 1 || len(groups) < 2 {
		for _, skills := range groups {
			countPairs(agg.Pairs, skills)
		}
		return agg
	}

	if workers > len(groups) {
		workers = len(groups)
	}

	partitions := make([][][]string, workers)
	i := 0
	for _, skills := range groups {
		partitions[i%workers] = append(partitions[i%workers], skills)
		i++
	}

	partials := make([]PairCounts, workers)

	var g errgroup.Group
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			local := make(PairCounts)
			for _, skills := range partitions[w] {
				countPairs(local, skills)
			}
			partials[w] = local
			return nil
		})
	}
	_ = g.Wait() // workers never fail; counting is pure

	for _, partial := range partials {
		agg.Pairs.Merge(partial)
	}

	return agg
}
