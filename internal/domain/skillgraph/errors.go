package skillgraph

import (
	"errors"
	"fmt"
)

// ErrSkillNotFound indicates a query referenced a skill that is not a node.
// Recoverable; the calling layer decides how to present it.
var ErrSkillNotFound = errors.New("skillgraph: skill not found")

// ErrInconsistentInput indicates the aggregation handed to Build references
// skills outside the skill set. Always a caller sequencing bug, never
// expected when aggregator and builder share the same records.
var ErrInconsistentInput = errors.New("skillgraph: inconsistent aggregation input")

// ValidationError reports which pair broke the build invariant
type ValidationError struct {
	SkillID string
	PairA   string
	PairB   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("skillgraph: pair (%s, %s) references unknown skill %q", e.PairA, e.PairB, e.SkillID)
}

func (e *ValidationError) Unwrap() error {
	return ErrInconsistentInput
}
