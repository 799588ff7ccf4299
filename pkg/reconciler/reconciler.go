// Package reconciler drives the batch reconciliation of the local course
// catalog against the remote course data provider: one entry at a time, one
// query at a time, with explicit pacing between requests. Per-entry failures
// come from a closed vocabulary and never abort the run.
package reconciler

import (
	"context"
	"time"

	"github.com/fairwaylabs/coursesync/internal/golfcourseapi"
	"github.com/fairwaylabs/coursesync/pkg/catalog"
	"github.com/fairwaylabs/coursesync/pkg/constants"
	"github.com/fairwaylabs/coursesync/pkg/names"
	"github.com/fairwaylabs/coursesync/pkg/pars"
)

// Searcher is the remote lookup dependency of the driver.
type Searcher interface {
	Search(ctx context.Context, query string) ([]golfcourseapi.Course, error)
}

// state tracks an entry's progress through one reconciliation attempt.
// Entries move forward only; terminal outcomes live in Outcome.
type state int

const (
	statePending state = iota
	stateQuerying
	stateResolving
	stateExtracting
)

func (s state) String() string {
	switch s {
	case stateQuerying:
		return "querying"
	case stateResolving:
		return "resolving"
	case stateExtracting:
		return "extracting"
	default:
		return "pending"
	}
}

// Reconciler iterates the catalog and reconciles each eligible entry.
type Reconciler struct {
	client Searcher
	opts   *options
}

// New creates a Reconciler around a remote lookup client.
func New(client Searcher, opts ...Option) *Reconciler {
	return &Reconciler{
		client: client,
		opts:   newOptions(opts...),
	}
}

// Run processes the entries sequentially and returns the accumulated result.
// Successful entries are mutated in place; failed and skipped entries are
// left untouched. A context cancellation aborts the run with an error, in
// which case the caller must not persist the partially updated catalog.
func (r *Reconciler) Run(ctx context.Context, entries []*catalog.Entry) (*Result, error) {
	result := NewResult()
	filter := newAreaFilter(r.opts.areas)

	for _, entry := range entries {
		if entry == nil || entry.ID == "" {
			continue
		}
		if r.opts.limit > 0 && result.Attempted >= r.opts.limit {
			break
		}
		if filter != nil && !filter.matches(entry.AreaCodes) {
			continue
		}
		if !r.opts.force && hasRealPars(entry) {
			result.Skipped++
			continue
		}

		queries := names.Queries(entry.Name, entry.NameKana)
		if len(queries) == 0 {
			result.fail(Failure{ID: entry.ID, Reason: ReasonEmptySearchQuery})
			continue
		}

		if err := r.reconcile(ctx, entry, queries, result); err != nil {
			result.EndTime = time.Now()
			return result, err
		}

		result.Attempted++
		if result.Attempted%r.opts.progressEvery == 0 {
			r.opts.logger.Info().
				Int("attempted", result.Attempted).
				Int("updated", result.Updated).
				Int("failed", result.Failed).
				Msg("Reconciliation progress")
		}
		if err := r.opts.sleep(ctx, r.opts.delay); err != nil {
			result.EndTime = time.Now()
			return result, err
		}
	}

	result.EndTime = time.Now()
	return result, nil
}

// reconcile runs one entry through querying, resolving, and extracting. Any
// failure is recorded on the result; only a context cancellation is returned
// as an error.
func (r *Reconciler) reconcile(ctx context.Context, entry *catalog.Entry, queries []string, result *Result) error {
	current := statePending
	advance := func(next state) {
		current = next
		r.opts.logger.Debug().
			Str("course_id", entry.ID).
			Str("state", current.String()).
			Msg("Reconciling")
	}

	advance(stateQuerying)
	var candidates []golfcourseapi.Course
	usedQuery := ""
	for _, query := range queries {
		found, err := r.client.Search(ctx, query)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			result.fail(Failure{ID: entry.ID, Reason: ReasonRequestFailed, Query: query, Message: err.Error()})
			return nil
		}
		if len(found) > 0 {
			candidates = found
			usedQuery = query
			break
		}
		if err := r.opts.sleep(ctx, interQueryDelay(r.opts.delay)); err != nil {
			return err
		}
	}
	if len(candidates) == 0 {
		result.fail(Failure{ID: entry.ID, Reason: ReasonNoSearchResults, Queries: queries})
		return nil
	}

	advance(stateResolving)
	targets := []string{entry.Name, entry.NameKana, usedQuery}
	best, ok := r.opts.scorer.Best(candidates, targets)
	if !ok || best.Score < r.opts.threshold {
		result.fail(Failure{ID: entry.ID, Reason: ReasonLowMatchScore, Query: usedQuery, Score: best.Score})
		return nil
	}

	advance(stateExtracting)
	tee, ok := pars.SelectTee(best.Course, r.opts.teeName, r.opts.allowFallback)
	if !ok {
		result.fail(Failure{ID: entry.ID, Reason: ReasonTeeNotFound, Query: usedQuery})
		return nil
	}
	values, ok := pars.Extract(tee)
	if !ok {
		result.fail(Failure{ID: entry.ID, Reason: ReasonHolesMissing, Query: usedQuery})
		return nil
	}

	teeName := tee.TeeName
	if teeName == "" {
		teeName = r.opts.teeName
	}
	entry.ApplyPars(values, constants.ParSourceProvider, teeName, best.Course.ID)
	result.Updated++
	return nil
}

// hasRealPars reports whether the entry already carries a full 18-hole par
// array that is not the all-par-4 placeholder pattern. Placeholder data is
// treated as not yet real and stays eligible for re-sync.
func hasRealPars(entry *catalog.Entry) bool {
	return len(entry.Pars) == constants.HolesPerRound && !pars.IsPlaceholder(entry.Pars)
}

// interQueryDelay bounds the pause between successive queries for one entry.
func interQueryDelay(delay time.Duration) time.Duration {
	if delay < constants.MaxInterQueryDelay {
		return delay
	}
	return constants.MaxInterQueryDelay
}
