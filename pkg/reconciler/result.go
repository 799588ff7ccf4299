package reconciler

import (
	"fmt"
	"time"

	"github.com/fairwaylabs/coursesync/pkg/catalog"
)

// Outcome is the terminal state of one catalog entry within a run.
type Outcome string

// Terminal per-entry outcomes.
const (
	OutcomeUpdated Outcome = "updated"
	OutcomeSkipped Outcome = "skipped"
	OutcomeFailed  Outcome = "failed"
)

// Reason is the closed vocabulary of per-entry failure causes. Failures are
// recorded, never fatal to the run.
type Reason string

// Per-entry failure reasons.
const (
	ReasonEmptySearchQuery Reason = "empty_search_query"
	ReasonNoSearchResults  Reason = "no_search_results"
	ReasonLowMatchScore    Reason = "low_match_score"
	ReasonTeeNotFound      Reason = "tee_not_found"
	ReasonHolesMissing     Reason = "holes_missing"
	ReasonRequestFailed    Reason = "request_failed"
)

// Failure records one per-entry failure with enough context to diagnose and
// re-run just that entry later.
type Failure struct {
	ID      string   `json:"id" yaml:"id"`
	Reason  Reason   `json:"reason" yaml:"reason"`
	Query   string   `json:"query,omitempty" yaml:"query,omitempty"`
	Queries []string `json:"queries,omitempty" yaml:"queries,omitempty"`
	Score   float64  `json:"score,omitempty" yaml:"score,omitempty"`
	Message string   `json:"message,omitempty" yaml:"message,omitempty"`
}

// Result is the accumulated outcome of a reconciliation run. It is owned by
// the driver for the run's duration and returned at the end; there is no
// ambient run state.
type Result struct {
	StartTime time.Time
	EndTime   time.Time

	Attempted int
	Updated   int
	Skipped   int
	Failed    int

	Failures []Failure
}

// NewResult creates a result accumulator for a run starting now.
func NewResult() *Result {
	return &Result{
		StartTime: time.Now(),
		Failures:  []Failure{},
	}
}

// fail records a failure and bumps the counter.
func (r *Result) fail(f Failure) {
	r.Failed++
	r.Failures = append(r.Failures, f)
}

// Counts converts the counters into the catalog run-metadata shape.
func (r *Result) Counts() catalog.RunCounts {
	return catalog.RunCounts{
		Attempted: r.Attempted,
		Updated:   r.Updated,
		Skipped:   r.Skipped,
		Failed:    r.Failed,
	}
}

// Summary returns a human-readable one-line summary of the run.
func (r *Result) Summary() string {
	return fmt.Sprintf("Updated %d, skipped %d, failed %d (attempted %d)",
		r.Updated, r.Skipped, r.Failed, r.Attempted)
}
