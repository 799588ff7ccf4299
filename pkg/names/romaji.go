package names

import (
	"regexp"
	"strings"

	"github.com/gojp/kana"
	"golang.org/x/text/width"
)

var (
	longVowelMarks = strings.NewReplacer("ー", "", "ｰ", "")
	nonAlnum       = regexp.MustCompile(`[^a-z0-9\s]`)
)

// Transliterated golf vocabulary, rewritten to the English spellings the
// provider indexes. The two-word compounds come last so the single-word
// rewrites can produce them. The transliterator spells ふ as "hu", so both
// spellings of the golf fragment are listed.
var golfTerms = []struct {
	pattern     *regexp.Regexp
	replacement string
}{
	{regexp.MustCompile(`goruhu|gorufu`), "golf"},
	{regexp.MustCompile(`koosu|kosu|ko-su`), "course"},
	{regexp.MustCompile(`kantorii|kantori|kantory`), "country"},
	{regexp.MustCompile(`kurabu`), "club"},
	{regexp.MustCompile(`countryclub`), "country club"},
	{regexp.MustCompile(`golfcourse`), "golf course"},
}

// Romanize transliterates a kana reading into lower-case romaji with runs of
// non-alphanumeric characters collapsed to single spaces. Width variants are
// folded first so half-width katakana romanizes the same as full-width, and
// long-vowel marks are dropped so コース comes out as "kosu" rather than a
// hyphenated form.
func Romanize(value string) string {
	if value == "" {
		return ""
	}
	folded := width.Fold.String(value)
	romaji := kana.KanaToRomaji(longVowelMarks.Replace(folded))
	romaji = strings.ToLower(romaji)
	romaji = nonAlnum.ReplaceAllString(romaji, " ")
	romaji = multiSpace.ReplaceAllString(romaji, " ")
	return strings.TrimSpace(romaji)
}

// MapGolfTerms rewrites transliterated golf vocabulary fragments to their
// English spellings.
func MapGolfTerms(value string) string {
	if value == "" {
		return ""
	}
	result := value
	for _, term := range golfTerms {
		result = term.pattern.ReplaceAllString(result, term.replacement)
	}
	result = multiSpace.ReplaceAllString(result, " ")
	return strings.TrimSpace(result)
}
