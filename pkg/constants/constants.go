// Package constants provides shared constants used throughout the coursesync
// codebase. This includes timeouts, heuristic scoring defaults, file
// permissions, and other configuration values that should be consistent
// across the application.
package constants

import "time"

// Timeout and pacing constants.
const (
	// DefaultHTTPTimeout is the standard timeout for HTTP requests to the
	// course data provider.
	DefaultHTTPTimeout = 30 * time.Second

	// DefaultRequestDelay is the pause inserted between catalog entries to
	// respect the provider's rate limits.
	DefaultRequestDelay = 800 * time.Millisecond

	// MaxInterQueryDelay caps the pause between successive search queries
	// for the same catalog entry.
	MaxInterQueryDelay = 200 * time.Millisecond

	// DefaultRetryBackoff is the base backoff duration for retries. The
	// backoff grows linearly with the attempt number.
	DefaultRetryBackoff = 1200 * time.Millisecond
)

// Retry and diagnostics limits.
const (
	// DefaultMaxRetries is the number of retry attempts after the initial
	// request when the provider returns 429 or a 5xx status.
	DefaultMaxRetries = 2

	// ErrorBodyLimit is the maximum number of response body bytes retained
	// in error messages.
	ErrorBodyLimit = 200

	// ProgressInterval is how many attempted entries pass between progress
	// log lines during a reconciliation run.
	ProgressInterval = 25
)

// Matching heuristics. Policy defaults, overridable through reconciler
// options.
const (
	// DefaultMatchThreshold is the minimum resolver score for a remote
	// candidate to be accepted as a match.
	DefaultMatchThreshold = 0.35

	// ContainmentScore is the similarity assigned when one normalized name
	// contains the other.
	ContainmentScore = 0.9

	// JapanCountryBonus is added to a candidate's score when its country
	// field indicates Japan. A domain prior, not a correctness guarantee.
	JapanCountryBonus = 0.05

	// MinQueryLength is the minimum rune count for a usable search query.
	MinQueryLength = 2
)

// Course shape constants.
const (
	// HolesPerRound is the number of holes in a full round.
	HolesPerRound = 18

	// FrontNine is the number of holes on the front nine.
	FrontNine = 9
)

// Provider defaults.
const (
	// DefaultBaseURL is the course data provider's API root.
	DefaultBaseURL = "https://api.golfcourseapi.com"

	// DefaultTeeName is the preferred tee configuration name.
	DefaultTeeName = "Regular"

	// ParSourceProvider tags par data that originated from the provider.
	ParSourceProvider = "golfcourseapi"
)

// File permission constants.
const (
	// DirPermissions is the default permission for created directories.
	DirPermissions = 0755

	// FilePermissions is the default permission for created files.
	FilePermissions = 0644
)
