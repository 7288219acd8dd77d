// Package search implements the playlist registry scoring engine: resolving a free-text
// query ("yc25", "Jóvenes Conference 2025", "conf 25") against a registry of playlist
// records and returning a ranked result list.
//
// The pipeline, leaf to root:
//   - [Normalize] : canonical comparable text (lowercase, accent-stripped, alphanumeric)
//   - [ExtractYears] : pulls year references (2025, 25, yc25) out of a normalized query
//   - [Expand] : bilingual synonym variants (conf/conference/conferencia, jovenes/youth)
//   - [BuildAliases] : every normalized string a record can be matched against
//   - [Search] / [Rank] : scores each record, filters by threshold, orders deterministically
//
// The whole package is pure computation: no I/O, no shared mutable state, safe to call
// concurrently against the same registry snapshot. Scoring weights are fixed constants,
// not configuration.
package search
