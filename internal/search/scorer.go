package search

import (
	"sort"
	"strings"

	"github.com/desertthunder/predica/internal/models"
)

// Scoring weights and the inclusion threshold. These are fixed values, not
// runtime configuration.
const (
	exactMatchScore        = 100 // alias equals a query variant (once per alias)
	containsMatchScore     = 50  // alias contains a variant (per alias/variant pair)
	allTokensMatchScore    = 75  // every search token found across the alias text
	partialTokenMatchScore = 25  // per matching token when coverage is partial
	yearMatchBoost         = 80  // record year appears in the query
	minimumPlaylistScore   = 1
)

// Search resolves a free-text query against a registry snapshot and returns the
// matching records ranked by relevance. It is a pure function: given the same query
// and snapshot it always returns the same ordered list, and reordering the input
// registry does not change the output order.
func Search(query string, registry []models.PlaylistRecord) models.SearchResult {
	ranked := Rank(query, registry)
	playlists := make([]models.PlaylistRecord, len(ranked))
	for i, sp := range ranked {
		playlists[i] = sp.Playlist
	}
	return models.SearchResult{Playlists: playlists}
}

// Rank is [Search] with the per-record scores still attached, for callers that
// surface or log them. Records scoring below the threshold are excluded.
func Rank(query string, registry []models.PlaylistRecord) []models.ScoredPlaylist {
	if strings.TrimSpace(query) == "" {
		return []models.ScoredPlaylist{}
	}

	normalized := Normalize(query)
	if normalized == "" {
		// Punctuation-only queries normalize away entirely.
		return []models.ScoredPlaylist{}
	}

	extraction := ExtractYears(normalized)
	variants := Expand(extraction.Remainder)
	tokens := searchTokens(variants)

	candidates := make([]models.ScoredPlaylist, 0, len(registry))
	for _, record := range registry {
		score := scoreRecord(record, variants, tokens, extraction.Years)
		if score >= minimumPlaylistScore {
			candidates = append(candidates, models.ScoredPlaylist{Playlist: record, Score: score})
		}
	}

	sort.Slice(candidates, func(i, j int) bool {
		return rankLess(candidates[i], candidates[j])
	})

	return candidates
}

// searchTokens is the union of every space-split token of every variant plus each
// full variant string, so multi-word variants can match as a whole. Sorted for
// deterministic iteration.
func searchTokens(variants []string) []string {
	set := make(map[string]struct{})
	for _, variant := range variants {
		for _, token := range strings.Fields(variant) {
			set[token] = struct{}{}
		}
		if variant != "" {
			set[variant] = struct{}{}
		}
	}

	tokens := make([]string, 0, len(set))
	for token := range set {
		tokens = append(tokens, token)
	}
	sort.Strings(tokens)
	return tokens
}

func scoreRecord(record models.PlaylistRecord, variants, tokens []string, queryYears []int) int {
	aliasSet := BuildAliases(record)
	aliases := make([]string, 0, len(aliasSet))
	for alias := range aliasSet {
		aliases = append(aliases, alias)
	}
	sort.Strings(aliases)

	score := 0

	// Exact match: each alias contributes at most once, however many variants equal it.
	for _, alias := range aliases {
		for _, variant := range variants {
			if alias == variant {
				score += exactMatchScore
				break
			}
		}
	}

	// Containment stacks per alias/variant pair. Deliberately not deduplicated:
	// a record whose tags all contain "youth" accumulates emphasis for it.
	for _, alias := range aliases {
		for _, variant := range variants {
			if variant != "" && strings.Contains(alias, variant) {
				score += containsMatchScore
			}
		}
	}

	// Token coverage over the concatenated alias text.
	aliasText := strings.Join(aliases, " ")
	matching := 0
	for _, token := range tokens {
		if strings.Contains(aliasText, token) {
			matching++
		}
	}
	if matching == len(tokens) && len(tokens) > 0 {
		score += allTokensMatchScore
	} else if matching > 0 {
		score += partialTokenMatchScore * matching
	}

	if year, ok := record.YearValue(); ok && len(queryYears) > 0 {
		for _, queryYear := range queryYears {
			if year == queryYear {
				score += yearMatchBoost
				break
			}
		}
	}

	return score
}

// rankLess orders candidates: score descending, then records with a year before
// records without (higher year first), then title ascending case-insensitively,
// then ID ascending as a final total-order tiebreak.
func rankLess(a, b models.ScoredPlaylist) bool {
	if a.Score != b.Score {
		return a.Score > b.Score
	}

	aYear, aHas := a.Playlist.YearValue()
	bYear, bHas := b.Playlist.YearValue()
	if aHas != bHas {
		return aHas
	}
	if aHas && aYear != bYear {
		return aYear > bYear
	}

	aTitle := strings.ToLower(a.Playlist.Title)
	bTitle := strings.ToLower(b.Playlist.Title)
	if aTitle != bTitle {
		return aTitle < bTitle
	}

	return a.Playlist.ID < b.Playlist.ID
}
