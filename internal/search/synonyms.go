package search

import (
	"regexp"
	"sort"
	"strings"
)

// synonymGroups are interchangeable single words: any member found as a whole word
// generates one variant per other member.
var synonymGroups = [][]string{
	{"conf", "conference", "conferencia"},
	{"jovenes", "youth"},
}

// compoundPhrases collapse a multi-word phrase to single-word substitutes.
// "youth conference" yields "youth" and "jovenes" - the conference word is dropped,
// not translated.
var compoundPhrases = []struct {
	phrase string
	subs   []string
}{
	{"youth conference", []string{"youth", "jovenes"}},
	{"youth conf", []string{"youth", "jovenes"}},
	{"jovenes conference", []string{"jovenes", "youth"}},
	{"jovenes conf", []string{"jovenes", "youth"}},
}

var wordPatterns = map[string]*regexp.Regexp{}

func init() {
	for _, group := range synonymGroups {
		for _, word := range group {
			wordPatterns[word] = wholeWordPattern(word)
		}
	}
	for _, c := range compoundPhrases {
		wordPatterns[c.phrase] = wholeWordPattern(c.phrase)
	}
}

func wholeWordPattern(word string) *regexp.Regexp {
	return regexp.MustCompile(`\b` + word + `\b`)
}

// Expand generates the lexical variants of a normalized phrase using the fixed
// bilingual synonym table. The result always contains the input itself and is
// returned sorted so callers iterate deterministically.
func Expand(normalized string) []string {
	variants := map[string]struct{}{normalized: {}}

	add := func(v string) {
		variants[strings.Join(strings.Fields(v), " ")] = struct{}{}
	}

	for _, group := range synonymGroups {
		for _, word := range group {
			pattern := wordPatterns[word]
			if !pattern.MatchString(normalized) {
				continue
			}
			for _, substitute := range group {
				if substitute == word {
					continue
				}
				add(pattern.ReplaceAllString(normalized, substitute))
			}
		}
	}

	for _, compound := range compoundPhrases {
		pattern := wordPatterns[compound.phrase]
		if !pattern.MatchString(normalized) {
			continue
		}
		for _, substitute := range compound.subs {
			add(pattern.ReplaceAllString(normalized, substitute))
		}
	}

	result := make([]string, 0, len(variants))
	for v := range variants {
		result = append(result, v)
	}
	sort.Strings(result)
	return result
}
