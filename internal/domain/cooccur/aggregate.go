// Package cooccur folds skill records into pairwise co-occurrence counts.
//
// Counting is per job-type group: two skills co-occurring in a group add
// exactly 1 to their pair, no matter how many duplicate rows produced the
// pairing. Group iteration order is never observable in the output; the
// first-seen region for a skill is resolved strictly by original record
// order.
package cooccur

import (
	"github.com/honeycarbs/skillnet/internal/domain"
)

// Pair is a canonical unordered pair of skill identifiers, A < B lexicographically
type Pair struct {
	A string
	B string
}

// MakePair canonicalizes two skill identifiers so that (a,b) and (b,a) collide
func MakePair(a, b string) Pair {
	if b < a {
		a, b = b, a
	}
	return Pair{A: a, B: b}
}

// PairCounts maps canonical skill pairs to the number of distinct job-type
// groups in which both skills appeared.
type PairCounts map[Pair]int

// Merge adds counts from other into pc. Addition is commutative and
// associative, so partial counts from partitioned groups merge in any order.
func (pc PairCounts) Merge(other PairCounts) {
	for p, n := range other {
		pc[p] += n
	}
}

// Aggregation is the output of a full pass over the input records
type Aggregation struct {
	// Pairs holds the co-occurrence counter per canonical skill pair.
	Pairs PairCounts

	// Skills lists every distinct skill identifier in first-seen record order.
	Skills []string

	// Regions maps a skill to the first non-empty region observed for it,
	// resolved by original record order regardless of grouping.
	Regions map[string]string

	// JobTypes is the number of distinct job-type groups seen.
	JobTypes int
}

// Aggregate groups records by job type and counts unordered skill pairs.
// Duplicate rows within a group collapse; a group with fewer than two
// distinct skills contributes no pairs. Empty input yields an empty result.
func Aggregate(records []domain.SkillRecord) Aggregation {
	agg, groups := collect(records)

	for _, skills := range groups {
		countPairs(agg.Pairs, skills)
	}

	return agg
}

// collect performs the sequential pass: skill order, region resolution, and
// per-group distinct skill lists. Shared by the serial and parallel paths so
// the first-seen guarantees never depend on partitioning.
func collect(records []domain.SkillRecord) (Aggregation, map[string][]string) {
	agg := Aggregation{
		Pairs:   make(PairCounts),
		Regions: make(map[string]string),
	}

	seen := make(map[string]struct{})
	groups := make(map[string][]string)
	inGroup := make(map[string]map[string]struct{})

	for _, rec := range records {
		if rec.ElementName == "" {
			continue
		}

		if _, ok := seen[rec.ElementName]; !ok {
			seen[rec.ElementName] = struct{}{}
			agg.Skills = append(agg.Skills, rec.ElementName)
		}

		if rec.Region != "" {
			if _, ok := agg.Regions[rec.ElementName]; !ok {
				agg.Regions[rec.ElementName] = rec.Region
			}
		}

		members := inGroup[rec.ElementID]
		if members == nil {
			members = make(map[string]struct{})
			inGroup[rec.ElementID] = members
		}
		if _, ok := members[rec.ElementName]; !ok {
			members[rec.ElementName] = struct{}{}
			groups[rec.ElementID] = append(groups[rec.ElementID], rec.ElementName)
		}
	}

	agg.JobTypes = len(groups)

	return agg, groups
}

// countPairs increments every unordered pair among skills by one.
// Indices i < j guarantee no self-pairs.
func countPairs(pc PairCounts, skills []string) {
	for i := 0; i < len(skills); i++ {
		for j := i + 1; j < len(skills); j++ {
			pc[MakePair(skills[i], skills[j])]++
		}
	}
}
