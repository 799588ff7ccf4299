// Package pars selects a tee configuration from a resolved remote course and
// extracts a validated 18-hole par array from it.
package pars

import (
	"strings"

	"github.com/fairwaylabs/coursesync/internal/golfcourseapi"
	"github.com/fairwaylabs/coursesync/pkg/constants"
)

// SelectTee picks a tee configuration from the course. Male tees are
// considered before female tees. Tees declaring 18 holes with at least 18
// hole descriptors are preferred; if none qualify the full list is used.
// Within the candidate set the first tee whose name contains preferred
// (case-insensitive) wins; when none does and allowFallback is set, the
// first candidate is returned instead.
func SelectTee(course golfcourseapi.Course, preferred string, allowFallback bool) (golfcourseapi.Tee, bool) {
	tees := append(append([]golfcourseapi.Tee{}, course.Tees.Male...), course.Tees.Female...)
	if len(tees) == 0 {
		return golfcourseapi.Tee{}, false
	}

	var withHoles []golfcourseapi.Tee
	for _, tee := range tees {
		holeCount := len(tee.Holes)
		if tee.NumberOfHoles != nil {
			holeCount = *tee.NumberOfHoles
		}
		if holeCount == constants.HolesPerRound && len(tee.Holes) >= constants.HolesPerRound {
			withHoles = append(withHoles, tee)
		}
	}
	candidates := tees
	if len(withHoles) > 0 {
		candidates = withHoles
	}

	target := strings.ToLower(preferred)
	if target != "" {
		for _, tee := range candidates {
			if strings.Contains(strings.ToLower(tee.TeeName), target) {
				return tee, true
			}
		}
	}
	if allowFallback {
		return candidates[0], true
	}
	return golfcourseapi.Tee{}, false
}

// Extract takes the first 18 hole descriptors of a tee and returns their par
// values. It fails when fewer than 18 descriptors exist or any of the first
// 18 is missing its par.
func Extract(tee golfcourseapi.Tee) ([]int, bool) {
	if len(tee.Holes) < constants.HolesPerRound {
		return nil, false
	}
	pars := make([]int, 0, constants.HolesPerRound)
	for _, hole := range tee.Holes[:constants.HolesPerRound] {
		if hole.Par == nil {
			return nil, false
		}
		pars = append(pars, *hole.Par)
	}
	return pars, true
}

// IsPlaceholder reports whether an 18-value par array is the all-par-4
// pattern some data sources emit for unverified layouts. Arrays of any other
// length are never placeholders.
func IsPlaceholder(pars []int) bool {
	if len(pars) != constants.HolesPerRound {
		return false
	}
	for _, par := range pars {
		if par != 4 {
			return false
		}
	}
	return true
}

// Out sums the front-nine pars.
func Out(pars []int) int {
	return sum(pars[:constants.FrontNine])
}

// In sums the back-nine pars.
func In(pars []int) int {
	return sum(pars[constants.FrontNine:constants.HolesPerRound])
}

// Total sums all pars.
func Total(pars []int) int {
	return sum(pars)
}

func sum(pars []int) int {
	total := 0
	for _, par := range pars {
		total += par
	}
	return total
}
