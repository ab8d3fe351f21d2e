package domain

// SkillRecord is one normalized row of the skills dataset
type SkillRecord struct {
	// ElementID is the job-type grouping key. Opaque; compared for equality only.
	ElementID string

	// ElementName is the skill identifier, globally unique per skill (e.g. "2.A.1.a").
	ElementName string

	// Region is optional; empty when the source row carried none.
	Region string
}

// RegionCount pairs a region with the number of distinct job types observed there
type RegionCount struct {
	Region   string `json:"region"`
	JobTypes int    `json:"job_types"`
}
