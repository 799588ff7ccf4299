package reconciler

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/fairwaylabs/coursesync/internal/transport"
	"github.com/fairwaylabs/coursesync/pkg/constants"
	"github.com/fairwaylabs/coursesync/pkg/logging"
	"github.com/fairwaylabs/coursesync/pkg/match"
)

// options holds the run policy for a Reconciler.
type options struct {
	teeName       string
	allowFallback bool
	force         bool
	limit         int
	areas         []string
	delay         time.Duration
	threshold     float64
	scorer        match.Scorer
	progressEvery int
	sleep         func(ctx context.Context, d time.Duration) error
	logger        *zerolog.Logger
}

// newOptions applies opts over the defaults.
func newOptions(opts ...Option) *options {
	o := &options{
		teeName:       constants.DefaultTeeName,
		allowFallback: true,
		delay:         constants.DefaultRequestDelay,
		threshold:     constants.DefaultMatchThreshold,
		scorer:        match.NewScorer(),
		progressEvery: constants.ProgressInterval,
		sleep:         transport.SleepContext,
		logger:        logging.Default(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Option configures a Reconciler.
type Option func(*options)

// WithTeeName sets the preferred tee configuration name.
func WithTeeName(name string) Option {
	return func(o *options) {
		if name != "" {
			o.teeName = name
		}
	}
}

// WithAllowFallback controls whether a non-preferred tee may be used when no
// tee name matches.
func WithAllowFallback(allow bool) Option {
	return func(o *options) {
		o.allowFallback = allow
	}
}

// WithForce overwrites entries even when they already carry real pars.
func WithForce(force bool) Option {
	return func(o *options) {
		o.force = force
	}
}

// WithLimit caps the number of attempted entries. Zero means unlimited.
func WithLimit(limit int) Option {
	return func(o *options) {
		o.limit = limit
	}
}

// WithAreas restricts the run to entries matching the area-code allow-list.
func WithAreas(codes []string) Option {
	return func(o *options) {
		o.areas = codes
	}
}

// WithDelay sets the pause between attempted entries.
func WithDelay(delay time.Duration) Option {
	return func(o *options) {
		if delay >= 0 {
			o.delay = delay
		}
	}
}

// WithThreshold sets the minimum resolver score for accepting a match.
func WithThreshold(threshold float64) Option {
	return func(o *options) {
		o.threshold = threshold
	}
}

// WithScorer overrides the candidate scorer.
func WithScorer(scorer match.Scorer) Option {
	return func(o *options) {
		o.scorer = scorer
	}
}

// WithSleep overrides the pacing primitive. Tests use this to run without
// real delays.
func WithSleep(sleep func(ctx context.Context, d time.Duration) error) Option {
	return func(o *options) {
		if sleep != nil {
			o.sleep = sleep
		}
	}
}

// WithLogger sets the run logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}
