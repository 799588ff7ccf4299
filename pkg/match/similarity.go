// Package match resolves remote course candidates against local catalog
// names. Both sides are reduced to a normalized comparison token, scored
// with exact/containment checks and character-bigram Jaccard similarity,
// and the best-scoring candidate wins.
package match

import (
	"regexp"
	"strings"

	"github.com/fairwaylabs/coursesync/pkg/constants"
	"github.com/fairwaylabs/coursesync/pkg/names"
)

var (
	punctuation = regexp.MustCompile(`[\s\-_,.'"]`)
	// Token order matters: "golfcourse" must lose "golf" before "course".
	golfTokens = regexp.MustCompile(`golf|country|club|course|gc|cc`)
)

// Normalize reduces a display name to the token used for comparison: strip
// bracket decorations, lower-case, drop whitespace and common punctuation,
// then drop golf/club vocabulary and its abbreviations. The result is never
// shown to users.
func Normalize(value string) string {
	if value == "" {
		return ""
	}
	normalized := strings.ToLower(names.StripDecorations(value))
	normalized = punctuation.ReplaceAllString(normalized, "")
	return golfTokens.ReplaceAllString(normalized, "")
}

// Similarity scores two normalized strings in [0, 1]. Exact matches score
// 1.0, containment scores constants.ContainmentScore (so "XX Country Club"
// still matches "XX"), everything else falls back to bigram Jaccard.
func Similarity(a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}
	if a == b {
		return 1
	}
	if strings.Contains(a, b) || strings.Contains(b, a) {
		return constants.ContainmentScore
	}

	gramsA := bigrams(a)
	gramsB := bigrams(b)
	if len(gramsA) == 0 || len(gramsB) == 0 {
		return 0
	}
	intersection := 0
	for gram := range gramsA {
		if _, ok := gramsB[gram]; ok {
			intersection++
		}
	}
	union := len(gramsA) + len(gramsB) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}

// bigrams returns the set of overlapping 2-rune substrings of value.
func bigrams(value string) map[string]struct{} {
	grams := make(map[string]struct{})
	runes := []rune(value)
	for i := 0; i+1 < len(runes); i++ {
		grams[string(runes[i:i+2])] = struct{}{}
	}
	return grams
}
