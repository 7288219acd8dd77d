package search

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

var (
	// Standalone four-digit years, 2000-2099. "2100" is left in the text as literal digits.
	fullYearPattern = regexp.MustCompile(`\b(20[0-9]{2})\b`)
	// Standalone two-digit tokens, interpreted as 2000+NN.
	bareYearPattern = regexp.MustCompile(`\b([0-9]{2})\b`)
	// A two-digit year glued onto a word ("yc25"). The letters survive, the digits do not.
	suffixYearPattern = regexp.MustCompile(`([a-z]+)([0-9]{2})(\s|$)`)
)

// YearExtraction is the outcome of [ExtractYears]: the years referenced by a query
// and the query text with those references removed.
type YearExtraction struct {
	Years     []int  // sorted ascending, deduplicated
	Remainder string // normalized text with year tokens stripped
}

// ExtractYears detects year references in normalizer output and separates them from
// the remaining semantic tokens. The three patterns run in a fixed order, each one
// collecting years and erasing its matches before the next runs:
//
//  1. standalone "20xx" tokens ("jovenes 2025" → 2025, "jovenes")
//  2. remaining standalone two-digit tokens ("conf 25" → 2025, "conf")
//  3. word-attached two-digit suffixes ("yc25" → 2025, "yc")
//
// Input must already be normalized; behavior on raw text is unspecified.
func ExtractYears(normalized string) YearExtraction {
	found := make(map[int]struct{})
	text := normalized

	for _, m := range fullYearPattern.FindAllStringSubmatch(text, -1) {
		year, _ := strconv.Atoi(m[1])
		found[year] = struct{}{}
	}
	text = fullYearPattern.ReplaceAllString(text, " ")

	for _, m := range bareYearPattern.FindAllStringSubmatch(text, -1) {
		suffix, _ := strconv.Atoi(m[1])
		found[2000+suffix] = struct{}{}
	}
	text = bareYearPattern.ReplaceAllString(text, " ")

	for _, m := range suffixYearPattern.FindAllStringSubmatch(text, -1) {
		suffix, _ := strconv.Atoi(m[2])
		found[2000+suffix] = struct{}{}
	}
	text = suffixYearPattern.ReplaceAllString(text, "$1 ")

	years := make([]int, 0, len(found))
	for year := range found {
		years = append(years, year)
	}
	sort.Ints(years)

	return YearExtraction{
		Years:     years,
		Remainder: strings.Join(strings.Fields(text), " "),
	}
}
