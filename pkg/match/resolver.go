package match

import (
	"sort"
	"strings"

	"github.com/fairwaylabs/coursesync/internal/golfcourseapi"
	"github.com/fairwaylabs/coursesync/pkg/constants"
)

// Scored pairs a remote candidate with its resolver score.
type Scored struct {
	Course golfcourseapi.Course
	Score  float64
}

// Scorer scores remote candidates against target names. The zero value is
// not useful; construct with NewScorer and adjust fields for boundary tests.
type Scorer struct {
	// CountryBonus is added when a candidate's country indicates Japan.
	CountryBonus float64
}

// NewScorer returns a Scorer with the default heuristics.
func NewScorer() Scorer {
	return Scorer{
		CountryBonus: constants.JapanCountryBonus,
	}
}

// Best picks the top-scoring candidate against the target names, or false
// when no candidate or no usable target exists. Each candidate's course and
// club names are combined, normalized, and scored with the maximum
// similarity over all normalized targets.
func (s Scorer) Best(candidates []golfcourseapi.Course, targets []string) (Scored, bool) {
	var normalizedTargets []string
	for _, target := range targets {
		if normalized := Normalize(target); normalized != "" {
			normalizedTargets = append(normalizedTargets, normalized)
		}
	}
	if len(normalizedTargets) == 0 || len(candidates) == 0 {
		return Scored{}, false
	}

	scored := make([]Scored, 0, len(candidates))
	for _, course := range candidates {
		combined := combineNames(course.CourseName, course.ClubName)
		normalized := Normalize(combined)
		score := 0.0
		for _, target := range normalizedTargets {
			if sim := Similarity(target, normalized); sim > score {
				score = sim
			}
		}
		if isJapanCourse(course) {
			score += s.CountryBonus
		}
		scored = append(scored, Scored{Course: course, Score: score})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	return scored[0], true
}

// combineNames joins the non-empty name fields with a space.
func combineNames(parts ...string) string {
	var nonEmpty []string
	for _, part := range parts {
		if part != "" {
			nonEmpty = append(nonEmpty, part)
		}
	}
	return strings.Join(nonEmpty, " ")
}

// isJapanCourse reports whether the candidate's country field indicates
// Japan.
func isJapanCourse(course golfcourseapi.Course) bool {
	country := strings.ToLower(course.Location.Country)
	return strings.Contains(country, "japan") || country == "jp" || country == "jpn"
}
