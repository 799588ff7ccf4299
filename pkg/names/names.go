// Package names derives search queries from a catalog entry's raw name
// fields. Japanese course names mix scripts and decorations, so the package
// strips bracketed annotations, expands separator and suffix variants, and
// transliterates kana readings into romaji the provider can match.
package names

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/fairwaylabs/coursesync/pkg/constants"
)

// Paired-bracket decorations seen in catalog names: ASCII and full-width
// parentheses, lenticular brackets, and full/half-width square brackets.
var decorations = []*regexp.Regexp{
	regexp.MustCompile(`\([^)]*\)`),
	regexp.MustCompile(`（[^）]*）`),
	regexp.MustCompile(`【[^】]*】`),
	regexp.MustCompile(`［[^］]*］`),
	regexp.MustCompile(`\[[^\]]*\]`),
}

var (
	separators      = regexp.MustCompile(`[・/]`)
	multiSpace      = regexp.MustCompile(`\s+`)
	directionCourse = regexp.MustCompile(`(?i)(東|西|南|北|中|OUT|IN)コース.*$`)
	clubSuffix      = regexp.MustCompile(`ゴルフ倶楽部|ゴルフクラブ|ゴルフ場|カントリークラブ|カントリー倶楽部`)
)

// StripDecorations removes bracketed annotations in all recognized paired
// bracket styles and trims the result.
func StripDecorations(value string) string {
	if value == "" {
		return ""
	}
	for _, re := range decorations {
		value = re.ReplaceAllString(value, "")
	}
	return strings.TrimSpace(value)
}

// Queries derives a deduplicated, ordered list of search queries from a
// course name and its kana reading. An empty result is valid and signals
// that no usable query exists.
func Queries(name, kana string) []string {
	var queries []string
	seen := make(map[string]bool)
	add := func(q string) {
		q = strings.TrimSpace(q)
		if utf8.RuneCountInString(q) < constants.MinQueryLength || seen[q] {
			return
		}
		seen[q] = true
		queries = append(queries, q)
	}

	if rawName := StripDecorations(name); rawName != "" {
		add(rawName)
		add(multiSpace.ReplaceAllString(separators.ReplaceAllString(rawName, " "), " "))
		add(directionCourse.ReplaceAllString(rawName, ""))
		add(clubSuffix.ReplaceAllString(rawName, ""))
	}

	if kanaName := StripDecorations(kana); kanaName != "" {
		add(kanaName)
		romaji := Romanize(kanaName)
		add(romaji)
		add(MapGolfTerms(romaji))
	}

	return queries
}
