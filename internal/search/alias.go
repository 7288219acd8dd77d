package search

import (
	"fmt"
	"strconv"

	"github.com/desertthunder/predica/internal/models"
)

// youthConferenceSeriesID gets hard-coded Spanish aliases injected so the legacy
// Spanish-language audience finds the series whatever language the titles use.
const youthConferenceSeriesID = "youth-conference"

// BuildAliases produces the complete set of normalized strings a record can be
// matched against: explicit aliases, title, slug, series ID, tags, and the
// shortCode×year shorthands ("yc25", "yc 25", "yc2025", "yc 2025").
//
// The two-digit year half is zero-padded, so 2005 with code "yc" yields "yc05".
// The empty string never appears in the result.
func BuildAliases(record models.PlaylistRecord) map[string]struct{} {
	aliases := make(map[string]struct{})
	add := func(s string) {
		if s != "" {
			aliases[s] = struct{}{}
		}
	}

	for _, alias := range record.Aliases {
		add(Normalize(alias))
	}

	add(Normalize(record.Title))
	add(Normalize(record.Slug))

	if record.SeriesID != "" {
		add(Normalize(record.SeriesID))
		if record.SeriesID == youthConferenceSeriesID {
			add("jovenes")
			add("conferencia de jovenes")
		}
	}

	for _, tag := range record.Tags {
		add(Normalize(tag))
	}

	if code := Normalize(record.ShortCode); code != "" {
		if year, ok := record.YearValue(); ok {
			yy := fmt.Sprintf("%02d", year%100)
			full := strconv.Itoa(year)
			add(code + yy)
			add(code + " " + yy)
			add(code + full)
			add(code + " " + full)
		}
	}

	return aliases
}
